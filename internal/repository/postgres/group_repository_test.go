package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bagdasarian/group-service/internal/domain"
	"github.com/bagdasarian/group-service/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGroupRepository_Create - создание группы вместе с членством создателя.
// Обе вставки идут в одной транзакции: группа без записанного админа
// не должна быть наблюдаема.
func TestGroupRepository_Create(t *testing.T) {
	t.Run("группа и админ создаются в одной транзакции", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewGroupRepository(db)

		now := time.Now()
		group := &domain.Group{Name: "backend", CreatorID: 7}

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO groups").
			WithArgs("backend", 7, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, now))
		mock.ExpectExec("INSERT INTO group_members").
			WithArgs(1, 7, string(domain.RoleAdmin), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.Create(context.Background(), group)

		require.NoError(t, err)
		assert.Equal(t, 1, group.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка на вставке членства откатывает группу", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewGroupRepository(db)

		group := &domain.Group{Name: "backend", CreatorID: 7}

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO groups").
			WithArgs("backend", 7, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, time.Now()))
		mock.ExpectExec("INSERT INTO group_members").
			WithArgs(1, 7, string(domain.RoleAdmin), sqlmock.AnyArg()).
			WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		err := repo.Create(context.Background(), group)

		require.Error(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGroupRepository_Delete(t *testing.T) {
	t.Run("успешное удаление", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewGroupRepository(db)

		mock.ExpectExec("DELETE FROM groups").
			WithArgs(1).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(context.Background(), 1)

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка: группы нет", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewGroupRepository(db)

		mock.ExpectExec("DELETE FROM groups").
			WithArgs(99).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), 99)

		require.Error(t, err)
		assert.True(t, errors.Is(err, repository.ErrNotFound))
	})
}

func TestGroupRepository_GetByUserID(t *testing.T) {
	t.Run("возвращает группы пользователя", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewGroupRepository(db)

		now := time.Now()
		rows := sqlmock.NewRows([]string{"id", "name", "creator_id", "created_at"}).
			AddRow(1, "backend", 7, now).
			AddRow(2, "frontend", 8, now)
		mock.ExpectQuery("SELECT g.id, g.name, g.creator_id, g.created_at").
			WithArgs(7).
			WillReturnRows(rows)

		groups, err := repo.GetByUserID(context.Background(), 7)

		require.NoError(t, err)
		require.Len(t, groups, 2)
		assert.Equal(t, "backend", groups[0].Name)
	})
}
