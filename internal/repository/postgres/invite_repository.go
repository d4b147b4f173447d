package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/group-service/internal/domain"
	"github.com/bagdasarian/group-service/internal/repository"
)

type inviteRepository struct {
	executor DBExecutor
}

func NewInviteRepository(db *sql.DB) *inviteRepository {
	return &inviteRepository{executor: db}
}

func NewInviteRepositoryWithTx(tx *sql.Tx) *inviteRepository {
	return &inviteRepository{executor: tx}
}

func (r *inviteRepository) Create(ctx context.Context, invite *domain.PendingInvite) error {
	query := `
		INSERT INTO pending_invites (group_id, email, token, invited_by, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	return r.executor.QueryRowContext(
		ctx,
		query,
		invite.GroupID,
		invite.Email,
		invite.Token,
		invite.InvitedBy,
		time.Now(),
		invite.ExpiresAt,
	).Scan(&invite.ID, &invite.CreatedAt)
}

func (r *inviteRepository) GetByToken(ctx context.Context, token string) (*domain.PendingInvite, error) {
	query := `
		SELECT i.id, i.group_id, g.name, i.email, i.token, i.invited_by, i.created_at, i.expires_at
		FROM pending_invites i
		JOIN groups g ON g.id = i.group_id
		WHERE i.token = $1
	`

	invite := &domain.PendingInvite{}
	err := r.executor.QueryRowContext(ctx, query, token).Scan(
		&invite.ID,
		&invite.GroupID,
		&invite.GroupName,
		&invite.Email,
		&invite.Token,
		&invite.InvitedBy,
		&invite.CreatedAt,
		&invite.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return invite, nil
}

// GetLiveByEmail возвращает непросроченные приглашения на адрес,
// от старых к новым
func (r *inviteRepository) GetLiveByEmail(ctx context.Context, email string, now time.Time) ([]*domain.PendingInvite, error) {
	query := `
		SELECT i.id, i.group_id, g.name, i.email, i.token, i.invited_by, i.created_at, i.expires_at
		FROM pending_invites i
		JOIN groups g ON g.id = i.group_id
		WHERE i.email = $1 AND i.expires_at > $2
		ORDER BY i.created_at
	`

	rows, err := r.executor.QueryContext(ctx, query, email, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invites []*domain.PendingInvite
	for rows.Next() {
		invite := &domain.PendingInvite{}
		err := rows.Scan(
			&invite.ID,
			&invite.GroupID,
			&invite.GroupName,
			&invite.Email,
			&invite.Token,
			&invite.InvitedBy,
			&invite.CreatedAt,
			&invite.ExpiresAt,
		)
		if err != nil {
			return nil, err
		}
		invites = append(invites, invite)
	}

	return invites, rows.Err()
}

func (r *inviteRepository) HasLive(ctx context.Context, groupID int, email string, now time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM pending_invites
			WHERE group_id = $1 AND email = $2 AND expires_at > $3
		)
	`

	var exists bool
	err := r.executor.QueryRowContext(ctx, query, groupID, email, now).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (r *inviteRepository) DeleteForEmail(ctx context.Context, groupID int, email string) error {
	query := `DELETE FROM pending_invites WHERE group_id = $1 AND email = $2`

	_, err := r.executor.ExecContext(ctx, query, groupID, email)
	return err
}
