// internal/repository/permission.go
package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	ent "github.com/planmaster/planmaster/ent/generated"
	"github.com/planmaster/planmaster/ent/generated/plan"
	"github.com/planmaster/planmaster/ent/generated/sharedplan"
	"github.com/planmaster/planmaster/internal/models"
)

// resolveRole determines the caller's relationship to a plan. A missing
// plan and a caller with no relationship both come back as ErrNotFound;
// callers must not be able to tell the two apart.
func resolveRole(ctx context.Context, c *ent.Client, planID, userID uuid.UUID) (models.Role, *ent.Plan, error) {
	p, err := c.Plan.Query().
		Where(plan.ID(planID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return models.RoleNone, nil, ErrNotFound
		}
		return models.RoleNone, nil, fmt.Errorf("load plan: %w", err)
	}

	if p.OwnerID == userID {
		return models.RoleOwner, p, nil
	}

	share, err := c.SharedPlan.Query().
		Where(
			sharedplan.PlanIDEQ(planID),
			sharedplan.SharedWithIDEQ(userID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return models.RoleNone, nil, ErrNotFound
		}
		return models.RoleNone, nil, fmt.Errorf("load share: %w", err)
	}

	return roleFromPermission(models.Permission(share.Permission)), p, nil
}

func roleFromPermission(p models.Permission) models.Role {
	switch p {
	case models.PermissionRead:
		return models.RoleRead
	case models.PermissionWrite:
		return models.RoleWrite
	case models.PermissionIndividual:
		return models.RoleIndividual
	default:
		return models.RoleNone
	}
}

// requireEdit gates shared-state mutations: owner and write may edit,
// read and individual may not, and the distinction between "no access"
// and "not enough access" follows the error taxonomy.
func requireEdit(role models.Role) error {
	if role.CanEdit() {
		return nil
	}
	if role.CanView() {
		return fmt.Errorf("%w: %s access cannot modify the plan", ErrPermissionDenied, role)
	}
	return ErrNotFound
}
