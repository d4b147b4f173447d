package handler

// Каждый ответ несет флаг success; при ошибке - человекочитаемое message

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	UserID   int    `json:"user_id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

type AuthResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token,omitempty"`
	User    UserResponse `json:"user"`
}

type ResetRequestRequest struct {
	Email string `json:"email"`
}

type ResetRequestResponse struct {
	Success bool `json:"success"`
	// Код возвращается в ответе: почтовой интеграции у сервиса нет
	OTP string `json:"otp"`
}

type ResetConfirmRequest struct {
	Email       string `json:"email"`
	OTP         string `json:"otp"`
	NewPassword string `json:"new_password"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type CreateGroupRequest struct {
	Name string `json:"name"`
}

type GroupResponse struct {
	GroupID   int    `json:"group_id"`
	Name      string `json:"name"`
	CreatorID int    `json:"creator_id"`
	CreatedAt string `json:"created_at"`
}

type CreateGroupResponse struct {
	Success bool          `json:"success"`
	Group   GroupResponse `json:"group"`
}

type GetGroupResponse struct {
	Success bool          `json:"success"`
	Group   GroupResponse `json:"group"`
}

type GetUserGroupsResponse struct {
	Success bool            `json:"success"`
	Groups  []GroupResponse `json:"groups"`
}

type MemberResponse struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	JoinedAt string `json:"joined_at"`
}

type GetMembersResponse struct {
	Success bool             `json:"success"`
	Members []MemberResponse `json:"members"`
}

type InviteMemberRequest struct {
	Email string `json:"email"`
}

type InviteResponse struct {
	InviteID  int    `json:"invite_id"`
	GroupID   int    `json:"group_id"`
	GroupName string `json:"group_name,omitempty"`
	Email     string `json:"email"`
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

type InviteMemberResponse struct {
	Success bool           `json:"success"`
	Invite  InviteResponse `json:"invite"`
}

type GetPendingInvitesResponse struct {
	Success bool             `json:"success"`
	Invites []InviteResponse `json:"invites"`
}

type AcceptInviteRequest struct {
	Token string `json:"token"`
}

type MembershipResponse struct {
	GroupID  int    `json:"group_id"`
	UserID   int    `json:"user_id"`
	Role     string `json:"role"`
	JoinedAt string `json:"joined_at"`
}

type AcceptInviteResponse struct {
	Success    bool               `json:"success"`
	Membership MembershipResponse `json:"membership"`
}

type VerifyMembershipResponse struct {
	Success  bool `json:"success"`
	IsMember bool `json:"is_member"`
}

type BlockMemberRequest struct {
	MemberID int `json:"member_id"`
}

type BlockedEntryResponse struct {
	UserID        int    `json:"user_id"`
	Username      string `json:"username"`
	BlockedBy     int    `json:"blocked_by"`
	BlockedByName string `json:"blocked_by_name"`
	BlockedAt     string `json:"blocked_at"`
}

type ListBlockedResponse struct {
	Success        bool                   `json:"success"`
	BlockedMembers []BlockedEntryResponse `json:"blocked_members"`
}
