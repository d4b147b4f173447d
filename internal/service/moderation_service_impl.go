package service

import (
	"context"
	"errors"

	"github.com/bagdasarian/group-service/internal/domain"
	"github.com/bagdasarian/group-service/internal/repository"
)

type moderationService struct {
	blockRepo  repository.BlockRepository
	memberRepo repository.MemberRepository
	guard      memberGuard
}

// NewModerationService создает новый экземпляр ModerationService
func NewModerationService(blockRepo repository.BlockRepository, memberRepo repository.MemberRepository) ModerationService {
	return &moderationService{
		blockRepo:  blockRepo,
		memberRepo: memberRepo,
		guard:      memberGuard{members: memberRepo},
	}
}

// Block блокирует участника группы; требуется роль admin.
// Отдельные отказы: самоблокировка, цель не участник, цель - админ.
// Само удаление членства и вставка записи блокировки идут в одной
// транзакции на уровне репозитория.
func (s *moderationService) Block(ctx context.Context, groupID, memberID, adminID int) error {
	if err := s.guard.require(ctx, groupID, adminID, domain.RoleAdmin); err != nil {
		return err
	}

	if memberID == adminID {
		return domain.ErrSelfBlock
	}

	target, err := s.memberRepo.Get(ctx, groupID, memberID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.ErrNotAMember
		}
		return err
	}
	if target.Role == domain.RoleAdmin {
		return domain.ErrCannotBlockAdmin
	}

	err = s.blockRepo.Block(ctx, groupID, memberID, adminID)
	if errors.Is(err, repository.ErrNotFound) {
		// членство исчезло между проверкой и транзакцией
		return domain.ErrNotAMember
	}
	return err
}

// Unblock снимает блокировку; требуется роль admin.
// Членство не восстанавливается - нужен новый инвайт.
func (s *moderationService) Unblock(ctx context.Context, groupID, memberID, adminID int) error {
	if err := s.guard.require(ctx, groupID, adminID, domain.RoleAdmin); err != nil {
		return err
	}

	err := s.blockRepo.Unblock(ctx, groupID, memberID)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.ErrNotBlocked
	}
	return err
}

// ListBlocked возвращает записи блокировок группы, свежие первыми
func (s *moderationService) ListBlocked(ctx context.Context, groupID, adminID int) ([]*domain.BlockedEntry, error) {
	if err := s.guard.require(ctx, groupID, adminID, domain.RoleAdmin); err != nil {
		return nil, err
	}

	return s.blockRepo.GetByGroupID(ctx, groupID)
}
