package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bagdasarian/group-service/internal/domain"
	"github.com/bagdasarian/group-service/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthServiceForTest(userRepo *MockUserRepository, resetRepo *MockResetRepository) AuthService {
	tokens := NewTokenManager("test-secret", time.Hour)
	return NewAuthService(userRepo, resetRepo, tokens, bcrypt.MinCost, 15*time.Minute)
}

func TestAuthService_Register(t *testing.T) {
	t.Run("успешная регистрация", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		mockResetRepo := new(MockResetRepository)
		svc := newAuthServiceForTest(mockUserRepo, mockResetRepo)

		mockUserRepo.On("GetByEmail", mock.Anything, "a@example.com").
			Return(nil, repository.ErrNotFound).Once()
		mockUserRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			return u.Email == "a@example.com" && u.Username == "alice" && u.PasswordHash != "password123"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.User).ID = 1
		}).Return(nil).Once()

		user, err := svc.Register(context.Background(), " A@example.com ", "alice", "password123")

		require.NoError(t, err)
		assert.Equal(t, 1, user.ID)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("ошибка: email занят", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		mockResetRepo := new(MockResetRepository)
		svc := newAuthServiceForTest(mockUserRepo, mockResetRepo)

		mockUserRepo.On("GetByEmail", mock.Anything, "a@example.com").
			Return(&domain.User{ID: 1, Email: "a@example.com"}, nil).Once()

		user, err := svc.Register(context.Background(), "a@example.com", "alice", "password123")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrEmailExists))
		assert.Nil(t, user)
		mockUserRepo.AssertNotCalled(t, "Create")
	})

	t.Run("ошибка: короткий пароль", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		mockResetRepo := new(MockResetRepository)
		svc := newAuthServiceForTest(mockUserRepo, mockResetRepo)

		_, err := svc.Register(context.Background(), "a@example.com", "alice", "short")

		require.Error(t, err)
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "BAD_REQUEST", domainErr.Code)
	})
}

func TestAuthService_Login(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)

	t.Run("успешный вход возвращает токен", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		mockResetRepo := new(MockResetRepository)
		svc := newAuthServiceForTest(mockUserRepo, mockResetRepo)

		mockUserRepo.On("GetByEmail", mock.Anything, "a@example.com").
			Return(&domain.User{ID: 1, Email: "a@example.com", PasswordHash: string(hash)}, nil).Once()

		token, user, err := svc.Login(context.Background(), "a@example.com", "password123")

		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, 1, user.ID)

		// токен должен разбираться обратно в id пользователя
		userID, err := NewTokenManager("test-secret", time.Hour).Parse(token)
		require.NoError(t, err)
		assert.Equal(t, 1, userID)
	})

	t.Run("ошибка: неверный пароль", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		mockResetRepo := new(MockResetRepository)
		svc := newAuthServiceForTest(mockUserRepo, mockResetRepo)

		mockUserRepo.On("GetByEmail", mock.Anything, "a@example.com").
			Return(&domain.User{ID: 1, Email: "a@example.com", PasswordHash: string(hash)}, nil).Once()

		_, _, err := svc.Login(context.Background(), "a@example.com", "wrong-password")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrUnauthorized))
	})

	t.Run("ошибка: неизвестный email неотличим от неверного пароля", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		mockResetRepo := new(MockResetRepository)
		svc := newAuthServiceForTest(mockUserRepo, mockResetRepo)

		mockUserRepo.On("GetByEmail", mock.Anything, "ghost@example.com").
			Return(nil, repository.ErrNotFound).Once()

		_, _, err := svc.Login(context.Background(), "ghost@example.com", "password123")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrUnauthorized))
	})
}

func TestAuthService_PasswordReset(t *testing.T) {
	t.Run("полный цикл: запрос кода и смена пароля", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		mockResetRepo := new(MockResetRepository)
		svc := newAuthServiceForTest(mockUserRepo, mockResetRepo)
		ctx := context.Background()

		user := &domain.User{ID: 1, Email: "a@example.com"}
		mockUserRepo.On("GetByEmail", mock.Anything, "a@example.com").Return(user, nil)

		var stored *domain.PasswordReset
		mockResetRepo.On("Create", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				stored = args.Get(1).(*domain.PasswordReset)
			}).Return(nil).Once()

		otp, err := svc.RequestPasswordReset(ctx, "a@example.com")
		require.NoError(t, err)
		require.Len(t, otp, 6)
		require.NotNil(t, stored)
		// в хранилище только хэш, не сам код
		assert.NotEqual(t, otp, stored.OTPHash)

		mockResetRepo.On("GetActiveByUserID", mock.Anything, 1).Return(stored, nil).Once()
		mockUserRepo.On("UpdatePassword", mock.Anything, 1, mock.AnythingOfType("string")).Return(nil).Once()
		mockResetRepo.On("Consume", mock.Anything, stored.ID).Return(nil).Once()

		err = svc.ConfirmPasswordReset(ctx, "a@example.com", otp, "new-password-1")
		require.NoError(t, err)
		mockResetRepo.AssertExpectations(t)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("ошибка: неверный код", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		mockResetRepo := new(MockResetRepository)
		svc := newAuthServiceForTest(mockUserRepo, mockResetRepo)

		hash, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.MinCost)
		mockUserRepo.On("GetByEmail", mock.Anything, "a@example.com").
			Return(&domain.User{ID: 1, Email: "a@example.com"}, nil).Once()
		mockResetRepo.On("GetActiveByUserID", mock.Anything, 1).
			Return(&domain.PasswordReset{UserID: 1, OTPHash: string(hash)}, nil).Once()

		err := svc.ConfirmPasswordReset(context.Background(), "a@example.com", "000000", "new-password-1")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidOTP))
		mockUserRepo.AssertNotCalled(t, "UpdatePassword")
	})
}
