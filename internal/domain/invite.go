package domain

import "time"

// PendingInvite - приглашение в группу по email, действительно до ExpiresAt.
// Просроченные строки не удаляются, срок проверяется в каждом запросе.
type PendingInvite struct {
	ID        int
	GroupID   int
	GroupName string
	Email     string
	Token     string
	InvitedBy int
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired сообщает, истёк ли срок приглашения на момент now
func (i *PendingInvite) Expired(now time.Time) bool {
	return !i.ExpiresAt.After(now)
}
