package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	member := &Identity{Email: "student@university.edu", Role: RoleMember}
	admin := &Identity{Email: "admin@university.edu", Role: RoleAdmin}

	tests := []struct {
		name          string
		identity      *Identity
		requiredRoles []Role
		want          Decision
	}{
		{
			name:          "no identity is denied before roles are considered",
			identity:      nil,
			requiredRoles: []Role{},
			want:          DecisionDenyNoSession,
		},
		{
			name:          "no identity with required roles",
			identity:      nil,
			requiredRoles: []Role{RoleAdmin},
			want:          DecisionDenyNoSession,
		},
		{
			name:          "empty role set allows any authenticated identity",
			identity:      member,
			requiredRoles: nil,
			want:          DecisionAllow,
		},
		{
			name:          "role in required set",
			identity:      admin,
			requiredRoles: []Role{RoleAdmin},
			want:          DecisionAllow,
		},
		{
			name:          "role in multi-role set",
			identity:      member,
			requiredRoles: []Role{RoleClubLeader, RoleMember},
			want:          DecisionAllow,
		},
		{
			name:          "member denied admin route",
			identity:      member,
			requiredRoles: []Role{RoleAdmin},
			want:          DecisionDenyWrongRole,
		},
		{
			name:          "no hierarchy: admin does not imply member",
			identity:      admin,
			requiredRoles: []Role{RoleMember},
			want:          DecisionDenyWrongRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Authorize(tt.identity, tt.requiredRoles))
		})
	}
}
