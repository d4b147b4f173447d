package domain

import "time"

type Group struct {
	ID        int
	Name      string
	CreatorID int
	CreatedAt time.Time
}

// Membership - строка членства, не больше одной на пару (group, user)
type Membership struct {
	GroupID  int
	UserID   int
	Role     Role
	JoinedAt time.Time
}

// Member - участник группы вместе с отображаемыми полями пользователя
type Member struct {
	UserID   int
	Username string
	Email    string
	Role     Role
	JoinedAt time.Time
}
