package handler

import "github.com/bagdasarian/group-service/internal/service"

type Handler struct {
	authService       service.AuthService
	groupService      service.GroupService
	inviteService     service.InviteService
	moderationService service.ModerationService
	tokens            *service.TokenManager
}

func NewHandler(
	authService service.AuthService,
	groupService service.GroupService,
	inviteService service.InviteService,
	moderationService service.ModerationService,
	tokens *service.TokenManager,
) *Handler {
	return &Handler{
		authService:       authService,
		groupService:      groupService,
		inviteService:     inviteService,
		moderationService: moderationService,
		tokens:            tokens,
	}
}
