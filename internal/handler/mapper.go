package handler

import (
	"time"

	"github.com/bagdasarian/group-service/internal/domain"
)

func domainUserToHTTP(user *domain.User) UserResponse {
	return UserResponse{
		UserID:   user.ID,
		Email:    user.Email,
		Username: user.Username,
	}
}

func domainGroupToHTTP(group *domain.Group) GroupResponse {
	return GroupResponse{
		GroupID:   group.ID,
		Name:      group.Name,
		CreatorID: group.CreatorID,
		CreatedAt: group.CreatedAt.Format(time.RFC3339),
	}
}

func domainGroupsToHTTP(groups []*domain.Group) []GroupResponse {
	out := make([]GroupResponse, 0, len(groups))
	for _, group := range groups {
		out = append(out, domainGroupToHTTP(group))
	}
	return out
}

func domainMembersToHTTP(members []*domain.Member) []MemberResponse {
	out := make([]MemberResponse, 0, len(members))
	for _, member := range members {
		out = append(out, MemberResponse{
			UserID:   member.UserID,
			Username: member.Username,
			Email:    member.Email,
			Role:     string(member.Role),
			JoinedAt: member.JoinedAt.Format(time.RFC3339),
		})
	}
	return out
}

func domainInviteToHTTP(invite *domain.PendingInvite) InviteResponse {
	return InviteResponse{
		InviteID:  invite.ID,
		GroupID:   invite.GroupID,
		GroupName: invite.GroupName,
		Email:     invite.Email,
		Token:     invite.Token,
		ExpiresAt: invite.ExpiresAt.Format(time.RFC3339),
	}
}

func domainInvitesToHTTP(invites []*domain.PendingInvite) []InviteResponse {
	out := make([]InviteResponse, 0, len(invites))
	for _, invite := range invites {
		out = append(out, domainInviteToHTTP(invite))
	}
	return out
}

func domainMembershipToHTTP(m *domain.Membership) MembershipResponse {
	return MembershipResponse{
		GroupID:  m.GroupID,
		UserID:   m.UserID,
		Role:     string(m.Role),
		JoinedAt: m.JoinedAt.Format(time.RFC3339),
	}
}

func domainBlockedToHTTP(entries []*domain.BlockedEntry) []BlockedEntryResponse {
	out := make([]BlockedEntryResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, BlockedEntryResponse{
			UserID:        entry.UserID,
			Username:      entry.Username,
			BlockedBy:     entry.BlockedBy,
			BlockedByName: entry.BlockedByName,
			BlockedAt:     entry.BlockedAt.Format(time.RFC3339),
		})
	}
	return out
}
