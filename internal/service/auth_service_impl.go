package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/bagdasarian/group-service/internal/domain"
	"github.com/bagdasarian/group-service/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

type authService struct {
	userRepo   repository.UserRepository
	resetRepo  repository.ResetRepository
	tokens     *TokenManager
	bcryptCost int
	otpTTL     time.Duration
}

// NewAuthService создает новый экземпляр AuthService
func NewAuthService(
	userRepo repository.UserRepository,
	resetRepo repository.ResetRepository,
	tokens *TokenManager,
	bcryptCost int,
	otpTTL time.Duration,
) AuthService {
	return &authService{
		userRepo:   userRepo,
		resetRepo:  resetRepo,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		otpTTL:     otpTTL,
	}
}

// Register создает аккаунт; email должен быть свободен
func (s *authService) Register(ctx context.Context, email, username, password string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	username = strings.TrimSpace(username)
	if email == "" || !strings.Contains(email, "@") {
		return nil, domain.NewValidationError("valid email is required")
	}
	if username == "" {
		return nil, domain.NewValidationError("username is required")
	}
	if len(password) < 8 {
		return nil, domain.NewValidationError("password must be at least 8 characters")
	}

	_, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, domain.ErrEmailExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Email:        email,
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login проверяет пароль и выпускает токен сессии.
// Несуществующий email и неверный пароль дают одинаковый ответ.
func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, domain.ErrUnauthorized
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, domain.ErrUnauthorized
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	return token, user, nil
}

func (s *authService) GetUser(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewNotFoundError("user")
		}
		return nil, err
	}
	return user, nil
}

// RequestPasswordReset выпускает шестизначный код со сроком действия otpTTL.
// В хранилище попадает только bcrypt-хэш кода.
func (s *authService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", domain.NewNotFoundError("user with this email")
		}
		return "", err
	}

	otp, err := generateOTP()
	if err != nil {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(otp), s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash otp: %w", err)
	}

	reset := &domain.PasswordReset{
		UserID:    user.ID,
		OTPHash:   string(hash),
		ExpiresAt: time.Now().Add(s.otpTTL),
	}
	if err := s.resetRepo.Create(ctx, reset); err != nil {
		return "", err
	}

	return otp, nil
}

// ConfirmPasswordReset проверяет код, меняет пароль и гасит код
func (s *authService) ConfirmPasswordReset(ctx context.Context, email, otp, newPassword string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if len(newPassword) < 8 {
		return domain.NewValidationError("password must be at least 8 characters")
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.ErrInvalidOTP
		}
		return err
	}

	reset, err := s.resetRepo.GetActiveByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.ErrInvalidOTP
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(reset.OTPHash), []byte(otp)); err != nil {
		return domain.ErrInvalidOTP
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		return err
	}

	return s.resetRepo.Consume(ctx, reset.ID)
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
