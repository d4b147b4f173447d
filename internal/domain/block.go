package domain

import "time"

// BlockedMember - запись о блокировке пользователя в группе.
// Пара (group, user) либо заблокирована, либо состоит в группе - никогда и то и другое.
type BlockedMember struct {
	GroupID   int
	UserID    int
	BlockedBy int
	BlockedAt time.Time
}

// BlockedEntry - запись блокировки вместе с отображаемыми полями
// заблокированного и заблокировавшего
type BlockedEntry struct {
	GroupID       int
	UserID        int
	Username      string
	BlockedBy     int
	BlockedByName string
	BlockedAt     time.Time
}
