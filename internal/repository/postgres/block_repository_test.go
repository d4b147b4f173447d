package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bagdasarian/group-service/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBlockRepository_Block - блокировка атомарна: удаление членства
// и вставка записи блокировки либо проходят вместе, либо не проходят вовсе
func TestBlockRepository_Block(t *testing.T) {
	t.Run("членство удаляется, запись блокировки вставляется", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewBlockRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM group_members").
			WithArgs(1, 8).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO blocked_members").
			WithArgs(1, 8, 7, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.Block(context.Background(), 1, 8, 7)

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("членства нет - транзакция откатывается без вставки", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewBlockRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM group_members").
			WithArgs(1, 42).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.Block(context.Background(), 1, 42, 7)

		require.Error(t, err)
		assert.True(t, errors.Is(err, repository.ErrNotFound))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка на вставке блокировки откатывает удаление членства", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewBlockRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM group_members").
			WithArgs(1, 8).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO blocked_members").
			WithArgs(1, 8, 7, sqlmock.AnyArg()).
			WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		err := repo.Block(context.Background(), 1, 8, 7)

		require.Error(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBlockRepository_Unblock(t *testing.T) {
	t.Run("запись блокировки удаляется", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewBlockRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM blocked_members").
			WithArgs(1, 8).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.Unblock(context.Background(), 1, 8)

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка: блокировки не было", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewBlockRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM blocked_members").
			WithArgs(1, 8).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.Unblock(context.Background(), 1, 8)

		require.Error(t, err)
		assert.True(t, errors.Is(err, repository.ErrNotFound))
	})
}

func TestBlockRepository_GetByGroupID(t *testing.T) {
	t.Run("записи с данными блокирующего, свежие первыми", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewBlockRepository(db)

		now := time.Now()
		rows := sqlmock.NewRows([]string{"group_id", "user_id", "username", "blocked_by", "username", "blocked_at"}).
			AddRow(1, 9, "carol", 7, "alice", now).
			AddRow(1, 8, "bob", 7, "alice", now.Add(-time.Hour))
		mock.ExpectQuery("SELECT b.group_id, b.user_id").
			WithArgs(1).
			WillReturnRows(rows)

		entries, err := repo.GetByGroupID(context.Background(), 1)

		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "carol", entries[0].Username)
		assert.Equal(t, "alice", entries[0].BlockedByName)
	})
}
