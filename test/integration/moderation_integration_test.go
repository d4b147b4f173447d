//go:build integration
// +build integration

package integration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bagdasarian/group-service/internal/domain"
	"github.com/bagdasarian/group-service/internal/repository"
	"github.com/bagdasarian/group-service/internal/repository/postgres"
	"github.com/bagdasarian/group-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Сценарий блокировки: после block членство исчезает и появляется запись
// блокировки; unblock убирает запись, но членство не возвращает
func TestModeration_Integration(t *testing.T) {
	dbConn := setupTestDB(t)
	ctx := context.Background()

	userRepo := postgres.NewUserRepository(dbConn)
	groupRepo := postgres.NewGroupRepository(dbConn)
	memberRepo := postgres.NewMemberRepository(dbConn)
	inviteRepo := postgres.NewInviteRepository(dbConn)
	blockRepo := postgres.NewBlockRepository(dbConn)

	groupSvc := service.NewGroupService(groupRepo, memberRepo)
	inviteSvc := service.NewInviteService(inviteRepo, memberRepo, userRepo, 7*24*time.Hour)
	moderationSvc := service.NewModerationService(blockRepo, memberRepo)

	adminID := createTestUser(t, dbConn, "a@example.com", "alice")
	memberID := createTestUser(t, dbConn, "b@example.com", "bob")

	group, err := groupSvc.CreateGroup(ctx, adminID, "backend")
	require.NoError(t, err)

	invite, err := inviteSvc.InviteMember(ctx, group.ID, adminID, "b@example.com")
	require.NoError(t, err)
	_, err = inviteSvc.AcceptInvite(ctx, invite.Token, memberID)
	require.NoError(t, err)

	// самоблокировка и блокировка админа отклоняются до транзакции
	err = moderationSvc.Block(ctx, group.ID, adminID, adminID)
	assert.True(t, errors.Is(err, domain.ErrSelfBlock))

	// блокировка участника: членство исчезло, запись блокировки есть
	require.NoError(t, moderationSvc.Block(ctx, group.ID, memberID, adminID))

	_, err = memberRepo.Get(ctx, group.ID, memberID)
	assert.True(t, errors.Is(err, repository.ErrNotFound))

	blocked, err := blockRepo.Get(ctx, group.ID, memberID)
	require.NoError(t, err)
	assert.Equal(t, adminID, blocked.BlockedBy)

	// приглашение уже израсходовано принятием, членства нет - isMember false
	ok, err := inviteSvc.VerifyMembership(ctx, group.ID, memberID)
	require.NoError(t, err)
	assert.False(t, ok)

	// повторная блокировка: цель уже не участник
	err = moderationSvc.Block(ctx, group.ID, memberID, adminID)
	assert.True(t, errors.Is(err, domain.ErrNotAMember))

	entries, err := moderationSvc.ListBlocked(ctx, group.ID, adminID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "bob", entries[0].Username)

	// разблокировка убирает запись, но не восстанавливает членство
	require.NoError(t, moderationSvc.Unblock(ctx, group.ID, memberID, adminID))

	_, err = blockRepo.Get(ctx, group.ID, memberID)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
	_, err = memberRepo.Get(ctx, group.ID, memberID)
	assert.True(t, errors.Is(err, repository.ErrNotFound))

	// повторная разблокировка - NOT_BLOCKED
	err = moderationSvc.Unblock(ctx, group.ID, memberID, adminID)
	assert.True(t, errors.Is(err, domain.ErrNotBlocked))

	// вернуться можно только по новому приглашению
	invite2, err := inviteSvc.InviteMember(ctx, group.ID, adminID, "b@example.com")
	require.NoError(t, err)
	_, err = inviteSvc.AcceptInvite(ctx, invite2.Token, memberID)
	require.NoError(t, err)

	m, err := memberRepo.Get(ctx, group.ID, memberID)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleMember, m.Role)
}
