package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bagdasarian/group-service/internal/domain"
)

func (h *Handler) BlockMember(w http.ResponseWriter, r *http.Request) {
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

	var req BlockMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}
	if req.MemberID <= 0 {
		h.handleError(w, domain.NewValidationError("member_id must be a positive integer"))
		return
	}

	if err := h.moderationService.Block(r.Context(), groupID, req.MemberID, userID); err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{
		Success: true,
		Message: "member blocked",
	})
}

func (h *Handler) UnblockMember(w http.ResponseWriter, r *http.Request) {
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

	memberID, err := pathInt(r, "memberID")
	if err != nil {
		h.handleError(w, err)
		return
	}

	if err := h.moderationService.Unblock(r.Context(), groupID, memberID, userID); err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{
		Success: true,
		Message: "member unblocked",
	})
}

func (h *Handler) ListBlocked(w http.ResponseWriter, r *http.Request) {
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

	entries, err := h.moderationService.ListBlocked(r.Context(), groupID, userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ListBlockedResponse{
		Success:        true,
		BlockedMembers: domainBlockedToHTTP(entries),
	})
}
