package domain

// Role - роль участника внутри группы (закрытое перечисление)
type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

// Valid проверяет, что роль входит в перечисление
func (r Role) Valid() bool {
	return r == RoleMember || r == RoleAdmin
}

// Satisfies проверяет, достаточно ли роли r для требуемого уровня required.
// Админ проходит проверку на member, обратное - нет.
func (r Role) Satisfies(required Role) bool {
	if required == RoleAdmin {
		return r == RoleAdmin
	}
	return r.Valid()
}
