package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/group-service/internal/domain"
	"github.com/bagdasarian/group-service/internal/repository"
)

type memberRepository struct {
	executor DBExecutor
}

func NewMemberRepository(db *sql.DB) *memberRepository {
	return &memberRepository{executor: db}
}

func NewMemberRepositoryWithTx(tx *sql.Tx) *memberRepository {
	return &memberRepository{executor: tx}
}

func (r *memberRepository) Get(ctx context.Context, groupID, userID int) (*domain.Membership, error) {
	query := `
		SELECT group_id, user_id, role, joined_at
		FROM group_members
		WHERE group_id = $1 AND user_id = $2
	`

	m := &domain.Membership{}
	err := r.executor.QueryRowContext(ctx, query, groupID, userID).Scan(
		&m.GroupID,
		&m.UserID,
		&m.Role,
		&m.JoinedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return m, nil
}

func (r *memberRepository) GetByGroupID(ctx context.Context, groupID int) ([]*domain.Member, error) {
	query := `
		SELECT u.id, u.username, u.email, gm.role, gm.joined_at
		FROM group_members gm
		JOIN users u ON u.id = gm.user_id
		WHERE gm.group_id = $1
		ORDER BY gm.joined_at
	`

	rows, err := r.executor.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []*domain.Member
	for rows.Next() {
		member := &domain.Member{}
		err := rows.Scan(
			&member.UserID,
			&member.Username,
			&member.Email,
			&member.Role,
			&member.JoinedAt,
		)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}

	return members, rows.Err()
}

// Add вставляет членство. Повторная вставка той же пары (group, user)
// не ошибка: ON CONFLICT DO NOTHING, наружу возвращается существующая строка.
func (r *memberRepository) Add(ctx context.Context, m *domain.Membership) error {
	query := `
		INSERT INTO group_members (group_id, user_id, role, joined_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (group_id, user_id) DO NOTHING
	`

	if m.JoinedAt.IsZero() {
		m.JoinedAt = time.Now()
	}

	result, err := r.executor.ExecContext(ctx, query, m.GroupID, m.UserID, m.Role, m.JoinedAt)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		existing, err := r.Get(ctx, m.GroupID, m.UserID)
		if err != nil {
			return err
		}
		*m = *existing
	}

	return nil
}
