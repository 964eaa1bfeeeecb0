package models

// Role is the specialization a sub-agent is bound to for its lifetime.
type Role string

const (
	RoleDeveloper  Role = "developer"
	RoleResearcher Role = "researcher"
	RoleReviewer   Role = "reviewer"
	RoleTester     Role = "tester"
	RoleDesigner   Role = "designer"
)

// roleRotation is the fixed assignment order for decomposed sub-tasks.
// Index-based rotation keeps role diversity across a plan without any
// knowledge of task content.
var roleRotation = [...]Role{
	RoleDeveloper,
	RoleResearcher,
	RoleReviewer,
	RoleTester,
	RoleDesigner,
}

// RoleForIndex returns the role assigned to the sub-task at the given index.
func RoleForIndex(index int) Role {
	if index < 0 {
		index = -index
	}
	return roleRotation[index%len(roleRotation)]
}

// AllRoles returns the full role set in rotation order.
func AllRoles() []Role {
	roles := make([]Role, len(roleRotation))
	copy(roles, roleRotation[:])
	return roles
}

// IsValid checks if the role is one of the known specializations.
func (r Role) IsValid() bool {
	switch r {
	case RoleDeveloper, RoleResearcher, RoleReviewer, RoleTester, RoleDesigner:
		return true
	default:
		return false
	}
}
