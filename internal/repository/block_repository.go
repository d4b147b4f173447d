package repository

import (
	"context"

	"github.com/bagdasarian/group-service/internal/domain"
)

type BlockRepository interface {
	// Block удаляет строку членства и вставляет запись блокировки
	// в одной транзакции. Если членства нет, возвращает ErrNotFound
	// и не оставляет частичного состояния.
	Block(ctx context.Context, groupID, userID, adminID int) error
	// Unblock удаляет запись блокировки; ErrNotFound, если её не было.
	// Членство не восстанавливается.
	Unblock(ctx context.Context, groupID, userID int) error
	Get(ctx context.Context, groupID, userID int) (*domain.BlockedMember, error)
	GetByGroupID(ctx context.Context, groupID int) ([]*domain.BlockedEntry, error)
}
