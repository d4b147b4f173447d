package service

import (
	"context"

	"github.com/bagdasarian/group-service/internal/domain"
)

type ModerationService interface {
	Block(ctx context.Context, groupID, memberID, adminID int) error
	Unblock(ctx context.Context, groupID, memberID, adminID int) error
	ListBlocked(ctx context.Context, groupID, adminID int) ([]*domain.BlockedEntry, error)
}
