package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/group-service/internal/domain"
	"github.com/bagdasarian/group-service/internal/repository"
)

type blockRepository struct {
	db       *sql.DB
	executor DBExecutor
}

func NewBlockRepository(db *sql.DB) *blockRepository {
	return &blockRepository{db: db, executor: db}
}

// Block в одной транзакции удаляет членство и вставляет запись блокировки.
// Если членство уже исчезло (гонка с другим админом), транзакция
// откатывается целиком: пара (group, user) никогда не бывает
// одновременно и участником, и заблокированной, и никогда ни тем, ни другим.
func (r *blockRepository) Block(ctx context.Context, groupID, userID, adminID int) error {
	return execTx(ctx, r.db, func(tx *sql.Tx) error {
		deleteQuery := `
			DELETE FROM group_members
			WHERE group_id = $1 AND user_id = $2
		`
		result, err := tx.ExecContext(ctx, deleteQuery, groupID, userID)
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

		insertQuery := `
			INSERT INTO blocked_members (group_id, user_id, blocked_by, blocked_at)
			VALUES ($1, $2, $3, $4)
		`
		_, err = tx.ExecContext(ctx, insertQuery, groupID, userID, adminID, time.Now())
		return err
	})
}

// Unblock удаляет запись блокировки. Членство не восстанавливается:
// разблокированный пользователь возвращается только по новому приглашению.
func (r *blockRepository) Unblock(ctx context.Context, groupID, userID int) error {
	return execTx(ctx, r.db, func(tx *sql.Tx) error {
		query := `
			DELETE FROM blocked_members
			WHERE group_id = $1 AND user_id = $2
		`
		result, err := tx.ExecContext(ctx, query, groupID, userID)
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
	})
}

func (r *blockRepository) Get(ctx context.Context, groupID, userID int) (*domain.BlockedMember, error) {
	query := `
		SELECT group_id, user_id, blocked_by, blocked_at
		FROM blocked_members
		WHERE group_id = $1 AND user_id = $2
	`

	blocked := &domain.BlockedMember{}
	err := r.executor.QueryRowContext(ctx, query, groupID, userID).Scan(
		&blocked.GroupID,
		&blocked.UserID,
		&blocked.BlockedBy,
		&blocked.BlockedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return blocked, nil
}

func (r *blockRepository) GetByGroupID(ctx context.Context, groupID int) ([]*domain.BlockedEntry, error) {
	query := `
		SELECT b.group_id, b.user_id, u.username, b.blocked_by, a.username, b.blocked_at
		FROM blocked_members b
		JOIN users u ON u.id = b.user_id
		JOIN users a ON a.id = b.blocked_by
		WHERE b.group_id = $1
		ORDER BY b.blocked_at DESC
	`

	rows, err := r.executor.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.BlockedEntry
	for rows.Next() {
		entry := &domain.BlockedEntry{}
		err := rows.Scan(
			&entry.GroupID,
			&entry.UserID,
			&entry.Username,
			&entry.BlockedBy,
			&entry.BlockedByName,
			&entry.BlockedAt,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
