package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_Satisfies(t *testing.T) {
	tests := []struct {
		name     string
		role     Role
		required Role
		want     bool
	}{
		{"member проходит проверку на member", RoleMember, RoleMember, true},
		{"admin проходит проверку на member", RoleAdmin, RoleMember, true},
		{"admin проходит проверку на admin", RoleAdmin, RoleAdmin, true},
		{"member не проходит проверку на admin", RoleMember, RoleAdmin, false},
		{"неизвестная роль не проходит ничего", Role("owner"), RoleMember, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.Satisfies(tt.required))
		})
	}
}
