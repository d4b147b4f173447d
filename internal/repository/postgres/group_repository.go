package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/group-service/internal/domain"
	"github.com/bagdasarian/group-service/internal/repository"
)

type groupRepository struct {
	db       *sql.DB
	executor DBExecutor
}

func NewGroupRepository(db *sql.DB) *groupRepository {
	return &groupRepository{db: db, executor: db}
}

// Create вставляет группу и членство создателя с ролью admin.
// Обе вставки идут в одной транзакции: группа не должна существовать
// без записанного админа.
func (r *groupRepository) Create(ctx context.Context, group *domain.Group) error {
	return execTx(ctx, r.db, func(tx *sql.Tx) error {
		groupQuery := `
			INSERT INTO groups (name, creator_id, created_at)
			VALUES ($1, $2, $3)
			RETURNING id, created_at
		`

		now := time.Now()
		err := tx.QueryRowContext(ctx, groupQuery, group.Name, group.CreatorID, now).
			Scan(&group.ID, &group.CreatedAt)
		if err != nil {
			return err
		}

		memberQuery := `
			INSERT INTO group_members (group_id, user_id, role, joined_at)
			VALUES ($1, $2, $3, $4)
		`
		_, err = tx.ExecContext(ctx, memberQuery, group.ID, group.CreatorID, domain.RoleAdmin, now)
		return err
	})
}

func (r *groupRepository) GetByID(ctx context.Context, id int) (*domain.Group, error) {
	query := `
		SELECT id, name, creator_id, created_at
		FROM groups
		WHERE id = $1
	`

	group := &domain.Group{}
	err := r.executor.QueryRowContext(ctx, query, id).Scan(
		&group.ID,
		&group.Name,
		&group.CreatorID,
		&group.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return group, nil
}

func (r *groupRepository) GetByUserID(ctx context.Context, userID int) ([]*domain.Group, error) {
	query := `
		SELECT g.id, g.name, g.creator_id, g.created_at
		FROM groups g
		JOIN group_members gm ON gm.group_id = g.id
		WHERE gm.user_id = $1
		ORDER BY g.created_at
	`

	rows, err := r.executor.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []*domain.Group
	for rows.Next() {
		group := &domain.Group{}
		err := rows.Scan(&group.ID, &group.Name, &group.CreatorID, &group.CreatedAt)
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}

	return groups, rows.Err()
}

// Delete удаляет группу; членства, приглашения и блокировки
// снимаются каскадом по внешним ключам
func (r *groupRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM groups WHERE id = $1`

	result, err := r.executor.ExecContext(ctx, query, id)
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
