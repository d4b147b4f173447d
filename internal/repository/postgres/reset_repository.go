package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/group-service/internal/domain"
	"github.com/bagdasarian/group-service/internal/repository"
	"github.com/google/uuid"
)

type resetRepository struct {
	executor DBExecutor
}

func NewResetRepository(db *sql.DB) *resetRepository {
	return &resetRepository{executor: db}
}

func (r *resetRepository) Create(ctx context.Context, reset *domain.PasswordReset) error {
	query := `
		INSERT INTO password_resets (id, user_id, otp_hash, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	if reset.ID == uuid.Nil {
		reset.ID = uuid.New()
	}

	return r.executor.QueryRowContext(
		ctx,
		query,
		reset.ID,
		reset.UserID,
		reset.OTPHash,
		time.Now(),
		reset.ExpiresAt,
	).Scan(&reset.CreatedAt)
}

// GetActiveByUserID возвращает последний непогашенный и непросроченный код
func (r *resetRepository) GetActiveByUserID(ctx context.Context, userID int) (*domain.PasswordReset, error) {
	query := `
		SELECT id, user_id, otp_hash, created_at, expires_at, consumed_at
		FROM password_resets
		WHERE user_id = $1 AND consumed_at IS NULL AND expires_at > $2
		ORDER BY created_at DESC
		LIMIT 1
	`

	reset := &domain.PasswordReset{}
	var consumedAt sql.NullTime
	err := r.executor.QueryRowContext(ctx, query, userID, time.Now()).Scan(
		&reset.ID,
		&reset.UserID,
		&reset.OTPHash,
		&reset.CreatedAt,
		&reset.ExpiresAt,
		&consumedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	if consumedAt.Valid {
		reset.ConsumedAt = &consumedAt.Time
	}

	return reset, nil
}

func (r *resetRepository) Consume(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE password_resets
		SET consumed_at = $2
		WHERE id = $1 AND consumed_at IS NULL
	`

	result, err := r.executor.ExecContext(ctx, query, id, time.Now())
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}
