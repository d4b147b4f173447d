package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bagdasarian/group-service/internal/domain"
	"github.com/bagdasarian/group-service/internal/repository"
)

type groupService struct {
	groupRepo  repository.GroupRepository
	memberRepo repository.MemberRepository
	guard      memberGuard
}

// NewGroupService создает новый экземпляр GroupService
func NewGroupService(groupRepo repository.GroupRepository, memberRepo repository.MemberRepository) GroupService {
	return &groupService{
		groupRepo:  groupRepo,
		memberRepo: memberRepo,
		guard:      memberGuard{members: memberRepo},
	}
}

// CreateGroup создает группу и записывает создателя админом.
// Обе вставки репозиторий выполняет в одной транзакции.
func (s *groupService) CreateGroup(ctx context.Context, creatorID int, name string) (*domain.Group, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewValidationError("group name is required")
	}

	group := &domain.Group{
		Name:      name,
		CreatorID: creatorID,
	}

	if err := s.groupRepo.Create(ctx, group); err != nil {
		return nil, err
	}

	return group, nil
}

// DeleteGroup удаляет группу; требуется роль admin.
// Членства, приглашения и блокировки удаляются каскадом.
func (s *groupService) DeleteGroup(ctx context.Context, groupID, callerID int) error {
	if _, err := s.groupRepo.GetByID(ctx, groupID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.NewNotFoundError(fmt.Sprintf("group with id %d", groupID))
		}
		return err
	}

	if err := s.guard.require(ctx, groupID, callerID, domain.RoleAdmin); err != nil {
		return err
	}

	err := s.groupRepo.Delete(ctx, groupID)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.NewNotFoundError(fmt.Sprintf("group with id %d", groupID))
	}
	return err
}

// GetGroupInfo возвращает данные группы; требуется членство
func (s *groupService) GetGroupInfo(ctx context.Context, groupID, callerID int) (*domain.Group, error) {
	if err := s.guard.require(ctx, groupID, callerID, domain.RoleMember); err != nil {
		return nil, err
	}

	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewNotFoundError(fmt.Sprintf("group with id %d", groupID))
		}
		return nil, err
	}

	return group, nil
}

// GetMembers возвращает участников группы; требуется членство
func (s *groupService) GetMembers(ctx context.Context, groupID, callerID int) ([]*domain.Member, error) {
	if err := s.guard.require(ctx, groupID, callerID, domain.RoleMember); err != nil {
		return nil, err
	}

	return s.memberRepo.GetByGroupID(ctx, groupID)
}

// GetUserGroups возвращает все группы, где у вызывающего есть членство
func (s *groupService) GetUserGroups(ctx context.Context, callerID int) ([]*domain.Group, error) {
	return s.groupRepo.GetByUserID(ctx, callerID)
}
