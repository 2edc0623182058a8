package models

import "strings"

// Role is a user's position in the marina security hierarchy.
type Role string

const (
	RoleGuard      Role = "GUARD"
	RoleSupervisor Role = "SUPERVISOR"
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

// Permission thresholds
const (
	RoleCanManageShifts = RoleSupervisor
	RoleCanManageUsers  = RoleAdmin
)

var roleRank = map[Role]int{
	RoleGuard:      1,
	RoleSupervisor: 2,
	RoleAdmin:      3,
	RoleSuperAdmin: 4,
}

// Rank returns the position of the role in the hierarchy. Unknown roles rank 0.
func (r Role) Rank() int {
	return roleRank[r]
}

// IsValid checks if the Role is one of the known tiers
func (r Role) IsValid() bool {
	_, ok := roleRank[r]
	return ok
}

// IsElevated reports whether the role is above the base field role.
func (r Role) IsElevated() bool {
	return r.Rank() > RoleGuard.Rank()
}

// HasRole reports whether actual is at or above required.
func HasRole(actual, required Role) bool {
	if !actual.IsValid() || !required.IsValid() {
		return false
	}
	return actual.Rank() >= required.Rank()
}

// ParseRole converts a case-insensitive name into a Role.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	return r, r.IsValid()
}

// Roles returns all roles ordered from lowest to highest.
func Roles() []Role {
	return []Role{RoleGuard, RoleSupervisor, RoleAdmin, RoleSuperAdmin}
}
