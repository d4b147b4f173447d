package repository

import (
	"context"

	"github.com/bagdasarian/group-service/internal/domain"
	"github.com/google/uuid"
)

type ResetRepository interface {
	Create(ctx context.Context, reset *domain.PasswordReset) error
	// GetActiveByUserID возвращает последний непогашенный код пользователя
	GetActiveByUserID(ctx context.Context, userID int) (*domain.PasswordReset, error)
	Consume(ctx context.Context, id uuid.UUID) error
}
