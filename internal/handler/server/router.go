package server

import (
	"net/http"

	"github.com/bagdasarian/group-service/internal/handler"
)

func SetupRoutes(mux *http.ServeMux, h *handler.Handler) {
	mux.HandleFunc("POST /auth/register", h.Register)
	mux.HandleFunc("POST /auth/login", h.Login)
	mux.HandleFunc("GET /auth/me", h.WithAuth(h.Me))
	mux.HandleFunc("POST /auth/password-reset/request", h.RequestPasswordReset)
	mux.HandleFunc("POST /auth/password-reset/confirm", h.ConfirmPasswordReset)

	mux.HandleFunc("POST /groups", h.WithAuth(h.CreateGroup))
	mux.HandleFunc("GET /groups", h.WithAuth(h.GetUserGroups))
	mux.HandleFunc("GET /groups/{id}", h.WithAuth(h.GetGroupInfo))
	mux.HandleFunc("DELETE /groups/{id}", h.WithAuth(h.DeleteGroup))
	mux.HandleFunc("GET /groups/{id}/members", h.WithAuth(h.GetMembers))
	mux.HandleFunc("GET /groups/{id}/membership", h.WithAuth(h.VerifyMembership))
	mux.HandleFunc("POST /groups/join", h.WithAuth(h.AcceptInvite))

	mux.HandleFunc("POST /groups/{id}/invites", h.WithAuth(h.InviteMember))
	mux.HandleFunc("GET /invites", h.WithAuth(h.GetPendingInvites))
	mux.HandleFunc("POST /invites/accept", h.WithAuth(h.AcceptInvite))

	mux.HandleFunc("POST /groups/{id}/blocks", h.WithAuth(h.BlockMember))
	mux.HandleFunc("DELETE /groups/{id}/blocks/{memberID}", h.WithAuth(h.UnblockMember))
	mux.HandleFunc("GET /groups/{id}/blocks", h.WithAuth(h.ListBlocked))
}
