package service

import (
	"context"

	"github.com/bagdasarian/group-service/internal/domain"
)

type GroupService interface {
	CreateGroup(ctx context.Context, creatorID int, name string) (*domain.Group, error)
	DeleteGroup(ctx context.Context, groupID, callerID int) error
	GetGroupInfo(ctx context.Context, groupID, callerID int) (*domain.Group, error)
	GetMembers(ctx context.Context, groupID, callerID int) ([]*domain.Member, error)
	GetUserGroups(ctx context.Context, callerID int) ([]*domain.Group, error)
}
