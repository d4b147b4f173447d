package service

import (
	"context"

	"github.com/bagdasarian/group-service/internal/domain"
)

type AuthService interface {
	Register(ctx context.Context, email, username, password string) (*domain.User, error)
	// Login проверяет учетные данные и возвращает JWT сессии
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	GetUser(ctx context.Context, userID int) (*domain.User, error)
	// RequestPasswordReset выпускает одноразовый код; возвращает сам код,
	// доставка почтой вне рамок сервиса
	RequestPasswordReset(ctx context.Context, email string) (string, error)
	ConfirmPasswordReset(ctx context.Context, email, otp, newPassword string) error
}
