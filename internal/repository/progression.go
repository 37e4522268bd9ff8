// internal/repository/progression.go
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	ent "github.com/planmaster/planmaster/ent/generated"
	"github.com/planmaster/planmaster/ent/generated/plan"
	"github.com/planmaster/planmaster/internal/models"
)

// CompleteCurrentTask advances the caller-relevant cursor of a plan by
// one task.
//
// Owner and write-mode callers advance the plan's shared cursor: the
// current task's shared completed flag is set, current_task_index moves
// forward, and the owner's per-user completion record is kept in step.
// Individual-mode callers progress privately: only their own
// TaskCompletion/PlanCompletion rows change, so other viewers never see
// their progress.
//
// Every write happens in one transaction; the shared-cursor update is a
// compare-and-swap, so a lost race surfaces as ErrConflict with nothing
// applied.
func (r *PlanRepository) CompleteCurrentTask(ctx context.Context, planID, userID uuid.UUID) (*models.PlanView, error) {
	err := r.withTx(ctx, func(tx *ent.Tx) error {
		c := tx.Client()

		role, p, err := resolveRole(ctx, c, planID, userID)
		if err != nil {
			return err
		}
		if !role.CanProgress() {
			return fmt.Errorf("%w: %s access cannot complete tasks", ErrPermissionDenied, role)
		}

		tasks, err := orderedTasks(ctx, c, planID)
		if err != nil {
			return err
		}

		now := time.Now()
		if role == models.RoleIndividual {
			return completeIndividual(ctx, c, p, tasks, userID, now)
		}
		return completeShared(ctx, c, p, tasks, now)
	})
	if err != nil {
		return nil, err
	}

	return r.GetPlan(ctx, planID, userID)
}

// completeShared is the owner/write path: it mutates the shared task
// row and the plan's cursor.
func completeShared(ctx context.Context, c *ent.Client, p *ent.Plan, tasks []*ent.Task, now time.Time) error {
	progress := models.NewProgress(p.CurrentTaskIndex, len(tasks))
	idx, ok := progress.Current()
	if !ok {
		return fmt.Errorf("%w: no current task", ErrInvalidOperation)
	}

	current := tasks[idx]
	if err := c.Task.UpdateOneID(current.ID).SetCompleted(true).Exec(ctx); err != nil {
		return fmt.Errorf("complete task %s: %w", current.ID, err)
	}

	next := progress.Advance()

	// Compare-and-swap on the cursor: if another writer advanced it
	// since the read above, zero rows match and the whole transaction
	// rolls back.
	n, err := c.Plan.Update().
		Where(
			plan.ID(p.ID),
			plan.CurrentTaskIndexEQ(progress.Index),
		).
		SetCurrentTaskIndex(next.Index).
		SetCompleted(next.Done()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("advance plan cursor: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: plan cursor advanced concurrently", ErrConflict)
	}

	// Keep the owner's per-user record in step with the shared cursor
	// so "is this plan done for user X" reads uniformly for every path.
	return upsertPlanCompletion(ctx, c, p.ID, p.OwnerID, next.Done(), now)
}

// completeIndividual is the individual-share path: the caller's cursor
// is derived, not stored, as the lowest-ordered task they have not
// completed. Shared rows are never touched.
func completeIndividual(ctx context.Context, c *ent.Client, p *ent.Plan, tasks []*ent.Task, userID uuid.UUID, now time.Time) error {
	if len(tasks) == 0 {
		return fmt.Errorf("%w: no current task", ErrInvalidOperation)
	}

	taskIDs := make([]uuid.UUID, len(tasks))
	for i, t := range tasks {
		taskIDs[i] = t.ID
	}
	done, err := completedTaskSet(ctx, c, userID, taskIDs)
	if err != nil {
		return err
	}

	var current *ent.Task
	remaining := 0
	for _, t := range tasks {
		if done[t.ID] {
			continue
		}
		if current == nil {
			current = t
		} else {
			remaining++
		}
	}
	if current == nil {
		return fmt.Errorf("%w: no current task", ErrInvalidOperation)
	}

	if err := upsertTaskCompletion(ctx, c, current.ID, userID, now); err != nil {
		return err
	}

	return upsertPlanCompletion(ctx, c, p.ID, userID, remaining == 0, now)
}
