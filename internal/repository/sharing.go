// internal/repository/sharing.go
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	ent "github.com/planmaster/planmaster/ent/generated"
	"github.com/planmaster/planmaster/ent/generated/sharedplan"
	"github.com/planmaster/planmaster/ent/generated/user"
	"github.com/planmaster/planmaster/internal/models"
)

// SharePlan grants or replaces a share of a plan for a target user.
// Only the owner may share, self-sharing is rejected, and re-sharing
// updates the permission instead of erroring.
func (r *PlanRepository) SharePlan(ctx context.Context, planID, ownerID, targetID uuid.UUID, permission models.Permission) (*models.ShareView, error) {
	if !permission.Valid() {
		return nil, fmt.Errorf("%w: unknown permission %q", ErrInvalidOperation, permission)
	}

	var view *models.ShareView
	err := r.withTx(ctx, func(tx *ent.Tx) error {
		c := tx.Client()

		role, p, err := resolveRole(ctx, c, planID, ownerID)
		if err != nil {
			return err
		}
		if role != models.RoleOwner {
			return fmt.Errorf("%w: only the owner may share a plan", ErrPermissionDenied)
		}
		if targetID == ownerID {
			return fmt.Errorf("%w: cannot share a plan with yourself", ErrInvalidOperation)
		}

		exists, err := c.User.Query().
			Where(user.ID(targetID)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("query target user: %w", err)
		}
		if !exists {
			return ErrNotFound
		}

		now := time.Now()
		share, err := c.SharedPlan.Query().
			Where(
				sharedplan.PlanIDEQ(planID),
				sharedplan.SharedWithIDEQ(targetID),
			).
			Only(ctx)
		switch {
		case err == nil:
			share, err = share.Update().
				SetPermission(sharedplan.Permission(permission)).
				SetCreatedAt(now).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("replace share: %w", err)
			}
		case ent.IsNotFound(err):
			share, err = c.SharedPlan.Create().
				SetPlanID(planID).
				SetOwnerID(p.OwnerID).
				SetSharedWithID(targetID).
				SetPermission(sharedplan.Permission(permission)).
				SetCreatedAt(now).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("create share: %w", err)
			}
		default:
			return fmt.Errorf("query share: %w", err)
		}

		view = &models.ShareView{
			PlanID:     share.PlanID,
			OwnerID:    share.OwnerID,
			UserID:     share.SharedWithID,
			Permission: models.Permission(share.Permission),
			SharedAt:   share.CreatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// UnsharePlan revokes a share. Owner-only and idempotent: revoking a
// share that does not exist succeeds with a zero count.
func (r *PlanRepository) UnsharePlan(ctx context.Context, planID, ownerID, targetID uuid.UUID) (int, error) {
	deleted := 0
	err := r.withTx(ctx, func(tx *ent.Tx) error {
		c := tx.Client()

		role, _, err := resolveRole(ctx, c, planID, ownerID)
		if err != nil {
			return err
		}
		if role != models.RoleOwner {
			return fmt.Errorf("%w: only the owner may unshare a plan", ErrPermissionDenied)
		}

		deleted, err = c.SharedPlan.Delete().
			Where(
				sharedplan.PlanIDEQ(planID),
				sharedplan.SharedWithIDEQ(targetID),
			).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("delete share: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

// SharedUsers returns the users a plan is shared with, joined with
// their permission and share time. Owner-only.
func (r *PlanRepository) SharedUsers(ctx context.Context, planID, ownerID uuid.UUID) ([]models.SharedUserView, error) {
	role, _, err := resolveRole(ctx, r.client, planID, ownerID)
	if err != nil {
		return nil, err
	}
	if role != models.RoleOwner {
		return nil, fmt.Errorf("%w: only the owner may list shares", ErrPermissionDenied)
	}

	shares, err := r.client.SharedPlan.Query().
		Where(sharedplan.PlanIDEQ(planID)).
		WithSharedWith().
		Order(ent.Asc(sharedplan.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query shares: %w", err)
	}

	views := make([]models.SharedUserView, 0, len(shares))
	for _, s := range shares {
		target := s.Edges.SharedWith
		if target == nil {
			continue
		}
		views = append(views, models.SharedUserView{
			UserID:      target.ID,
			Email:       target.Email,
			DisplayName: target.DisplayName,
			Permission:  models.Permission(s.Permission),
			SharedAt:    s.CreatedAt,
		})
	}
	return views, nil
}
