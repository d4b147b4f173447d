package repository

import (
	"context"
	"time"

	"github.com/bagdasarian/group-service/internal/domain"
)

type InviteRepository interface {
	Create(ctx context.Context, invite *domain.PendingInvite) error
	GetByToken(ctx context.Context, token string) (*domain.PendingInvite, error)
	// GetLiveByEmail возвращает непросроченные приглашения на адрес email
	GetLiveByEmail(ctx context.Context, email string, now time.Time) ([]*domain.PendingInvite, error)
	// HasLive сообщает, есть ли непросроченное приглашение для пары (group, email)
	HasLive(ctx context.Context, groupID int, email string, now time.Time) (bool, error)
	// DeleteForEmail удаляет все приглашения пары (group, email) после принятия
	DeleteForEmail(ctx context.Context, groupID int, email string) error
}
