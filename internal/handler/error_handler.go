package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/bagdasarian/group-service/internal/domain"
)

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

// handleError переводит доменную ошибку в HTTP-ответ с флагом success=false.
// Всё, что не доменная ошибка, логируется и наружу уходит как generic 500
// без внутренних деталей.
func (h *Handler) handleError(w http.ResponseWriter, err error) {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		writeJSON(w, getStatusCode(domainErr.Code), ErrorResponse{
			Success: false,
			Message: domainErr.Message,
		})
		return
	}

	log.Printf("internal error: %v", err)
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Success: false,
		Message: "internal server error",
	})
}

func getStatusCode(errorCode string) int {
	switch errorCode {
	case "BAD_REQUEST":
		return http.StatusBadRequest
	case "UNAUTHORIZED":
		return http.StatusUnauthorized
	case "FORBIDDEN":
		return http.StatusForbidden
	case "NOT_FOUND":
		return http.StatusNotFound
	case "INVITE_EXPIRED":
		return http.StatusGone
	case "EMAIL_EXISTS", "SELF_BLOCK_FORBIDDEN", "NOT_A_MEMBER", "CANNOT_BLOCK_ADMIN", "NOT_BLOCKED", "INVALID_OTP":
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
