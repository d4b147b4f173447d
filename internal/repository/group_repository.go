package repository

import (
	"context"

	"github.com/bagdasarian/group-service/internal/domain"
)

type GroupRepository interface {
	// Create вставляет группу и строку членства создателя с ролью admin
	// в одной транзакции
	Create(ctx context.Context, group *domain.Group) error
	GetByID(ctx context.Context, id int) (*domain.Group, error)
	GetByUserID(ctx context.Context, userID int) ([]*domain.Group, error)
	Delete(ctx context.Context, id int) error
}

type MemberRepository interface {
	Get(ctx context.Context, groupID, userID int) (*domain.Membership, error)
	GetByGroupID(ctx context.Context, groupID int) ([]*domain.Member, error)
	// Add вставляет строку членства; если пара (group, user) уже есть,
	// возвращает существующую строку без ошибки
	Add(ctx context.Context, m *domain.Membership) error
}
