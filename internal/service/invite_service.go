package service

import (
	"context"

	"github.com/bagdasarian/group-service/internal/domain"
)

type InviteService interface {
	InviteMember(ctx context.Context, groupID, callerID int, email string) (*domain.PendingInvite, error)
	AcceptInvite(ctx context.Context, token string, callerID int) (*domain.Membership, error)
	GetPendingInvites(ctx context.Context, callerID int) ([]*domain.PendingInvite, error)
	// VerifyMembership отвечает, является ли пользователь фактическим
	// участником группы: прямое членство либо живое приглашение на его email.
	// Чистое чтение, без побочных эффектов.
	VerifyMembership(ctx context.Context, groupID, userID int) (bool, error)
}
