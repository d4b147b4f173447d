package domain

import (
	"time"

	"github.com/google/uuid"
)

// PasswordReset - одноразовый код восстановления пароля.
// Хранится только хэш кода, сам код отдается пользователю один раз.
type PasswordReset struct {
	ID         uuid.UUID
	UserID     int
	OTPHash    string
	CreatedAt  time.Time
	ExpiresAt  time.Time
	ConsumedAt *time.Time
}

// Usable сообщает, можно ли ещё применить код на момент now
func (r *PasswordReset) Usable(now time.Time) bool {
	return r.ConsumedAt == nil && r.ExpiresAt.After(now)
}
