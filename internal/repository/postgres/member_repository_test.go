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

func TestMemberRepository_Get(t *testing.T) {
	t.Run("возвращает строку членства", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewMemberRepository(db)

		now := time.Now()
		mock.ExpectQuery("SELECT group_id, user_id, role, joined_at").
			WithArgs(1, 8).
			WillReturnRows(sqlmock.NewRows([]string{"group_id", "user_id", "role", "joined_at"}).
				AddRow(1, 8, "member", now))

		m, err := repo.Get(context.Background(), 1, 8)

		require.NoError(t, err)
		assert.Equal(t, domain.RoleMember, m.Role)
	})

	t.Run("ошибка: строки нет", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewMemberRepository(db)

		mock.ExpectQuery("SELECT group_id, user_id, role, joined_at").
			WithArgs(1, 42).
			WillReturnRows(sqlmock.NewRows([]string{"group_id", "user_id", "role", "joined_at"}))

		m, err := repo.Get(context.Background(), 1, 42)

		require.Error(t, err)
		assert.True(t, errors.Is(err, repository.ErrNotFound))
		assert.Nil(t, m)
	})
}

// TestMemberRepository_Add - повторная вставка пары (group, user) не ошибка:
// ON CONFLICT DO NOTHING, наружу отдается существующая строка
func TestMemberRepository_Add(t *testing.T) {
	t.Run("новая строка вставляется", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewMemberRepository(db)

		mock.ExpectExec("INSERT INTO group_members").
			WithArgs(1, 9, string(domain.RoleMember), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		m := &domain.Membership{GroupID: 1, UserID: 9, Role: domain.RoleMember}
		err := repo.Add(context.Background(), m)

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("конфликт разрешается как уже-участник", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewMemberRepository(db)

		joined := time.Now().Add(-24 * time.Hour)
		mock.ExpectExec("INSERT INTO group_members").
			WithArgs(1, 9, string(domain.RoleMember), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT group_id, user_id, role, joined_at").
			WithArgs(1, 9).
			WillReturnRows(sqlmock.NewRows([]string{"group_id", "user_id", "role", "joined_at"}).
				AddRow(1, 9, "admin", joined))

		m := &domain.Membership{GroupID: 1, UserID: 9, Role: domain.RoleMember}
		err := repo.Add(context.Background(), m)

		require.NoError(t, err)
		// существующая роль не затирается
		assert.Equal(t, domain.RoleAdmin, m.Role)
		assert.WithinDuration(t, joined, m.JoinedAt, time.Second)
	})
}
