package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role represents the role of an identity
type Role string

const (
	RoleAdmin          Role = "admin"
	RoleMember         Role = "member"
	RoleClubLeader     Role = "club_leader"
	RoleClubViceLeader Role = "club_vice_leader"
	RoleGuest          Role = "guest"
)

// ValidRoles lists every role the directory may assign
var ValidRoles = []Role{RoleAdmin, RoleMember, RoleClubLeader, RoleClubViceLeader, RoleGuest}

// IsValid returns true if the role is one of the closed set
func (r Role) IsValid() bool {
	for _, valid := range ValidRoles {
		if r == valid {
			return true
		}
	}
	return false
}

// requestedRoleAliases maps historical login-form role tokens to actual roles.
// Any token not listed here must match the actual role verbatim.
var requestedRoleAliases = map[string]Role{
	"administrator": RoleAdmin,
	"student":       RoleMember,
	"leader":        RoleClubLeader,
}

// RoleCompatible reports whether a requested login role token is accepted
// for an identity holding the given actual role.
func RoleCompatible(requested string, actual Role) bool {
	if alias, ok := requestedRoleAliases[requested]; ok {
		return alias == actual
	}
	return Role(requested) == actual
}

// Permission represents a capability tag attached to an identity
type Permission string

const (
	PermissionClubsManage       Permission = "clubs:manage"
	PermissionClubsView         Permission = "clubs:view"
	PermissionEventsCreate      Permission = "events:create"
	PermissionEventsJoin        Permission = "events:join"
	PermissionMembersApprove    Permission = "members:approve"
	PermissionAnnouncementsPost Permission = "announcements:post"
	PermissionAdminAll          Permission = "admin:all"
)

// Identity represents one known user from the directory
type Identity struct {
	ID          uuid.UUID    `json:"id"`
	Email       string       `json:"email"`
	Secret      string       `json:"-"` // Exclude from JSON
	FirstName   string       `json:"first_name"`
	LastName    string       `json:"last_name"`
	Role        Role         `json:"role"`
	Permissions []Permission `json:"permissions"`
	Department  string       `json:"department,omitempty"`
	Year        string       `json:"year,omitempty"`
	Phone       string       `json:"phone,omitempty"`
	Bio         string       `json:"bio,omitempty"`
	Interests   []string     `json:"interests,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	LastLoginAt *time.Time   `json:"last_login_at,omitempty"`
}

// EmailMatches compares emails case-insensitively
func (i *Identity) EmailMatches(email string) bool {
	return strings.EqualFold(i.Email, email)
}

// HasPermission returns true if the identity carries the capability tag
func (i *Identity) HasPermission(permission Permission) bool {
	for _, p := range i.Permissions {
		if p == permission {
			return true
		}
		if p == PermissionAdminAll {
			return true
		}
	}
	return false
}

// IsAdmin returns true if the identity has the admin role
func (i *Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// IsClubLeader returns true for club leadership roles
func (i *Identity) IsClubLeader() bool {
	return i.Role == RoleClubLeader || i.Role == RoleClubViceLeader
}

// IsMember returns true if the identity has the member role
func (i *Identity) IsMember() bool {
	return i.Role == RoleMember
}

// RecordLogin records the last login time
func (i *Identity) RecordLogin(loginTime time.Time) {
	i.LastLoginAt = &loginTime
}

// Clone returns a deep copy of the identity
func (i *Identity) Clone() *Identity {
	if i == nil {
		return nil
	}
	c := *i
	if i.Permissions != nil {
		c.Permissions = append([]Permission(nil), i.Permissions...)
	}
	if i.Interests != nil {
		c.Interests = append([]string(nil), i.Interests...)
	}
	if i.LastLoginAt != nil {
		t := *i.LastLoginAt
		c.LastLoginAt = &t
	}
	return &c
}

// ProfileUpdate carries the profile fields a user may change.
// Nil fields are left untouched; set fields win, last write per field.
type ProfileUpdate struct {
	FirstName  *string   `json:"first_name,omitempty"`
	LastName   *string   `json:"last_name,omitempty"`
	Department *string   `json:"department,omitempty"`
	Year       *string   `json:"year,omitempty"`
	Phone      *string   `json:"phone,omitempty"`
	Bio        *string   `json:"bio,omitempty"`
	Interests  *[]string `json:"interests,omitempty"`
}

// ApplyProfile merges the set fields of the update into the identity
func (i *Identity) ApplyProfile(update ProfileUpdate) {
	if update.FirstName != nil {
		i.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		i.LastName = *update.LastName
	}
	if update.Department != nil {
		i.Department = *update.Department
	}
	if update.Year != nil {
		i.Year = *update.Year
	}
	if update.Phone != nil {
		i.Phone = *update.Phone
	}
	if update.Bio != nil {
		i.Bio = *update.Bio
	}
	if update.Interests != nil {
		i.Interests = append([]string(nil), *update.Interests...)
	}
}
