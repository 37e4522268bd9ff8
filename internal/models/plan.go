// internal/models/plan.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// TaskView is a task as seen by one viewer: Completed is resolved per
// the viewer's permission mode, so individual-mode shares see their own
// progress instead of the shared column.
type TaskView struct {
	ID          uuid.UUID
	Title       string
	Description string
	Date        time.Time
	Order       int
	Priority    int
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PlanView is a materialized plan: plan fields, tasks ordered by
// plan_order, and completion state resolved for the viewing user.
type PlanView struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Title       string
	Description string
	Date        time.Time
	Progress    Progress
	Completed   bool
	IsShared    bool
	// The viewer's permission; empty when the viewer is the owner.
	Permission Permission
	Tasks      []TaskView
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ShareView is a share grant as returned to the owner.
type ShareView struct {
	PlanID     uuid.UUID
	OwnerID    uuid.UUID
	UserID     uuid.UUID
	Permission Permission
	SharedAt   time.Time
}

// SharedUserView joins a share target with the user it grants access to.
type SharedUserView struct {
	UserID      uuid.UUID
	Email       string
	DisplayName string
	Permission  Permission
	SharedAt    time.Time
}
