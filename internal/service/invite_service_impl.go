package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bagdasarian/group-service/internal/domain"
	"github.com/bagdasarian/group-service/internal/repository"
	"github.com/google/uuid"
)

type inviteService struct {
	inviteRepo repository.InviteRepository
	memberRepo repository.MemberRepository
	userRepo   repository.UserRepository
	guard      memberGuard
	inviteTTL  time.Duration
	now        func() time.Time
}

// NewInviteService создает новый экземпляр InviteService.
// inviteTTL - срок действия приглашения с момента создания.
func NewInviteService(
	inviteRepo repository.InviteRepository,
	memberRepo repository.MemberRepository,
	userRepo repository.UserRepository,
	inviteTTL time.Duration,
) InviteService {
	return &inviteService{
		inviteRepo: inviteRepo,
		memberRepo: memberRepo,
		userRepo:   userRepo,
		guard:      memberGuard{members: memberRepo},
		inviteTTL:  inviteTTL,
		now:        time.Now,
	}
}

// InviteMember создает приглашение по email; достаточно роли member.
// Повторное приглашение того же адреса создает ещё одну строку.
func (s *inviteService) InviteMember(ctx context.Context, groupID, callerID int, email string) (*domain.PendingInvite, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, domain.NewValidationError("valid email is required")
	}

	if err := s.guard.require(ctx, groupID, callerID, domain.RoleMember); err != nil {
		return nil, err
	}

	invite := &domain.PendingInvite{
		GroupID:   groupID,
		Email:     email,
		Token:     uuid.NewString(),
		InvitedBy: callerID,
		ExpiresAt: s.now().Add(s.inviteTTL),
	}

	if err := s.inviteRepo.Create(ctx, invite); err != nil {
		return nil, err
	}

	return invite, nil
}

// AcceptInvite превращает приглашение в членство с ролью member.
// Повторное принятие уже состоящим участником - не ошибка: уникальность
// пары (group, user) разрешает конфликт как "уже участник". После принятия
// все приглашения этой пары (group, email) удаляются.
func (s *inviteService) AcceptInvite(ctx context.Context, token string, callerID int) (*domain.Membership, error) {
	if token == "" {
		return nil, domain.NewValidationError("invite token is required")
	}

	invite, err := s.inviteRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewNotFoundError("invite")
		}
		return nil, err
	}

	if invite.Expired(s.now()) {
		return nil, domain.ErrInviteExpired
	}

	membership := &domain.Membership{
		GroupID: invite.GroupID,
		UserID:  callerID,
		Role:    domain.RoleMember,
	}
	if err := s.memberRepo.Add(ctx, membership); err != nil {
		return nil, err
	}

	if err := s.inviteRepo.DeleteForEmail(ctx, invite.GroupID, invite.Email); err != nil {
		return nil, err
	}

	return membership, nil
}

// GetPendingInvites возвращает непросроченные приглашения
// на зарегистрированный email вызывающего
func (s *inviteService) GetPendingInvites(ctx context.Context, callerID int) ([]*domain.PendingInvite, error) {
	user, err := s.userRepo.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewNotFoundError("user")
		}
		return nil, err
	}

	return s.inviteRepo.GetLiveByEmail(ctx, user.Email, s.now())
}

// VerifyMembership: сначала прямое членство, затем живое приглашение
// на email пользователя. Это сознательно мягче строгой проверки guard -
// держатель приглашения может посмотреть группу до вступления.
func (s *inviteService) VerifyMembership(ctx context.Context, groupID, userID int) (bool, error) {
	_, err := s.memberRepo.Get(ctx, groupID, userID)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return false, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	return s.inviteRepo.HasLive(ctx, groupID, user.Email, s.now())
}
