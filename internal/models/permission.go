// internal/models/permission.go
package models

// Permission is the collaboration mode granted by a share.
type Permission string

const (
	PermissionRead       Permission = "read"
	PermissionWrite      Permission = "write"
	PermissionIndividual Permission = "individual"
)

// Valid reports whether p is one of the known share permissions.
func (p Permission) Valid() bool {
	switch p {
	case PermissionRead, PermissionWrite, PermissionIndividual:
		return true
	}
	return false
}

// Role is the resolved relationship between a user and a plan. RoleNone
// is indistinguishable from "plan not found" to callers so that plan
// existence never leaks.
type Role string

const (
	RoleNone       Role = ""
	RoleOwner      Role = "owner"
	RoleRead       Role = "read"
	RoleWrite      Role = "write"
	RoleIndividual Role = "individual"
)

// CanView reports whether the role may fetch the plan at all.
func (r Role) CanView() bool {
	return r != RoleNone
}

// CanEdit reports whether the role may mutate the plan's shared state:
// its tasks, its cursor, its shared completion flags.
func (r Role) CanEdit() bool {
	return r == RoleOwner || r == RoleWrite
}

// CanProgress reports whether the role may call CompleteCurrentTask.
// Individual-mode users progress privately, without touching shared rows.
func (r Role) CanProgress() bool {
	return r.CanEdit() || r == RoleIndividual
}
