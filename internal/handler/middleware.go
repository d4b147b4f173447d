package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/bagdasarian/group-service/internal/domain"
)

type contextKey string

const userIDKey contextKey = "userID"

// WithAuth проверяет Bearer-токен и кладет id пользователя в контекст запроса
func (h *Handler) WithAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || token == "" {
			h.handleError(w, domain.ErrUnauthorized)
			return
		}

		userID, err := h.tokens.Parse(token)
		if err != nil {
			h.handleError(w, domain.ErrUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next(w, r.WithContext(ctx))
	}
}

func callerID(r *http.Request) (int, bool) {
	userID, ok := r.Context().Value(userIDKey).(int)
	return userID, ok
}

// pathInt читает числовой сегмент пути вида /groups/{id}
func pathInt(r *http.Request, name string) (int, error) {
	value, err := strconv.Atoi(r.PathValue(name))
	if err != nil || value <= 0 {
		return 0, domain.NewValidationError(name + " must be a positive integer")
	}
	return value, nil
}
