package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bagdasarian/group-service/internal/domain"
)

func (h *Handler) InviteMember(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		h.handleError(w, domain.ErrUnauthorized)
		return
	}

	groupID, err := pathInt(r, "id")
	if err != nil {
		h.handleError(w, err)
		return
	}

	var req InviteMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}

	invite, err := h.inviteService.InviteMember(r.Context(), groupID, userID, req.Email)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, InviteMemberResponse{
		Success: true,
		Invite:  domainInviteToHTTP(invite),
	})
}

// AcceptInvite обслуживает и POST /invites/accept, и POST /groups/join:
// оба принимают токен приглашения в теле запроса
func (h *Handler) AcceptInvite(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		h.handleError(w, domain.ErrUnauthorized)
		return
	}

	var req AcceptInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}

	membership, err := h.inviteService.AcceptInvite(r.Context(), req.Token, userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, AcceptInviteResponse{
		Success:    true,
		Membership: domainMembershipToHTTP(membership),
	})
}

func (h *Handler) GetPendingInvites(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		h.handleError(w, domain.ErrUnauthorized)
		return
	}

	invites, err := h.inviteService.GetPendingInvites(r.Context(), userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, GetPendingInvitesResponse{
		Success: true,
		Invites: domainInvitesToHTTP(invites),
	})
}

func (h *Handler) VerifyMembership(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		h.handleError(w, domain.ErrUnauthorized)
		return
	}

	groupID, err := pathInt(r, "id")
	if err != nil {
		h.handleError(w, err)
		return
	}

	isMember, err := h.inviteService.VerifyMembership(r.Context(), groupID, userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, VerifyMembershipResponse{
		Success:  true,
		IsMember: isMember,
	})
}
