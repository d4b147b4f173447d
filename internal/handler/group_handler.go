package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bagdasarian/group-service/internal/domain"
)

func (h *Handler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		h.handleError(w, domain.ErrUnauthorized)
		return
	}

	var req CreateGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}

	group, err := h.groupService.CreateGroup(r.Context(), userID, req.Name)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, CreateGroupResponse{
		Success: true,
		Group:   domainGroupToHTTP(group),
	})
}

func (h *Handler) DeleteGroup(w http.ResponseWriter, r *http.Request) {
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

	if err := h.groupService.DeleteGroup(r.Context(), groupID, userID); err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{
		Success: true,
		Message: "group deleted",
	})
}

func (h *Handler) GetGroupInfo(w http.ResponseWriter, r *http.Request) {
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

	group, err := h.groupService.GetGroupInfo(r.Context(), groupID, userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, GetGroupResponse{
		Success: true,
		Group:   domainGroupToHTTP(group),
	})
}

func (h *Handler) GetMembers(w http.ResponseWriter, r *http.Request) {
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

	members, err := h.groupService.GetMembers(r.Context(), groupID, userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, GetMembersResponse{
		Success: true,
		Members: domainMembersToHTTP(members),
	})
}

func (h *Handler) GetUserGroups(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		h.handleError(w, domain.ErrUnauthorized)
		return
	}

	groups, err := h.groupService.GetUserGroups(r.Context(), userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, GetUserGroupsResponse{
		Success: true,
		Groups:  domainGroupsToHTTP(groups),
	})
}
