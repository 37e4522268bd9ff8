// internal/repository/tasks.go
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	ent "github.com/planmaster/planmaster/ent/generated"
	"github.com/planmaster/planmaster/ent/generated/plancompletion"
	"github.com/planmaster/planmaster/ent/generated/sharedplan"
	"github.com/planmaster/planmaster/ent/generated/task"
	"github.com/planmaster/planmaster/ent/generated/taskcompletion"
	"github.com/planmaster/planmaster/internal/models"
)

// AddTask appends a task to the end of a plan's sequence. Requires
// owner or write access. The task date defaults to the plan date.
func (r *PlanRepository) AddTask(ctx context.Context, planID, userID uuid.UUID, input *TaskInput) (*models.PlanView, error) {
	err := r.withTx(ctx, func(tx *ent.Tx) error {
		c := tx.Client()

		role, p, err := resolveRole(ctx, c, planID, userID)
		if err != nil {
			return err
		}
		if err := requireEdit(role); err != nil {
			return err
		}

		count, err := c.Task.Query().
			Where(task.PlanIDEQ(planID)).
			Count(ctx)
		if err != nil {
			return fmt.Errorf("count plan tasks: %w", err)
		}

		date := p.Date
		if input.Date != nil {
			date = *input.Date
		}
		priority := input.Priority
		if priority == 0 {
			priority = 3
		}

		create := c.Task.Create().
			SetUserID(userID).
			SetPlanID(planID).
			SetTitle(input.Title).
			SetDate(date).
			SetPlanOrder(count).
			SetPriority(priority)
		if input.Description != "" {
			create = create.SetDescription(input.Description)
		}

		if _, err := create.Save(ctx); err != nil {
			return fmt.Errorf("create task: %w", err)
		}

		// Appending to a finished plan reopens it for every viewer.
		return reconcileCompletions(ctx, c, p, time.Now())
	})
	if err != nil {
		return nil, err
	}

	return r.GetPlan(ctx, planID, userID)
}

// UpdateTask applies an allow-listed update to a plan task: title,
// description, priority, date and completed. Requires owner or write
// access. Toggling completed keeps the plan's legacy completion flag
// and the owner's completion record consistent, even though the cursor
// is being bypassed.
func (r *PlanRepository) UpdateTask(ctx context.Context, planID, taskID, userID uuid.UUID, input *TaskUpdateInput) (*models.PlanView, error) {
	if input.Empty() {
		return nil, fmt.Errorf("%w: no valid fields to update", ErrInvalidOperation)
	}

	err := r.withTx(ctx, func(tx *ent.Tx) error {
		c := tx.Client()

		role, p, err := resolveRole(ctx, c, planID, userID)
		if err != nil {
			return err
		}
		if err := requireEdit(role); err != nil {
			return err
		}

		t, err := c.Task.Query().
			Where(task.ID(taskID), task.PlanIDEQ(planID)).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return ErrNotFound
			}
			return fmt.Errorf("load task: %w", err)
		}

		update := t.Update()
		if input.Title != nil {
			update = update.SetTitle(*input.Title)
		}
		if input.Description != nil {
			update = update.SetDescription(*input.Description)
		}
		if input.Priority != nil {
			update = update.SetPriority(*input.Priority)
		}
		if input.Date != nil {
			update = update.SetDate(*input.Date)
		}
		if input.Completed != nil {
			update = update.SetCompleted(*input.Completed)
		}
		if err := update.Exec(ctx); err != nil {
			return fmt.Errorf("update task: %w", err)
		}

		if input.Completed == nil || *input.Completed == t.Completed {
			return nil
		}
		return reconcilePlanCompletion(ctx, c, p, time.Now())
	})
	if err != nil {
		return nil, err
	}

	return r.GetPlan(ctx, planID, userID)
}

// reconcilePlanCompletion re-derives the plan's legacy completion state
// after a task's completed flag was toggled directly. When every task
// is complete the plan is marked done and the cursor jumps to the task
// count; when the plan was done and a task reopened, only the flag and
// the owner's record are cleared — the cursor never moves backwards
// except through deletion.
func reconcilePlanCompletion(ctx context.Context, c *ent.Client, p *ent.Plan, now time.Time) error {
	tasks, err := orderedTasks(ctx, c, p.ID)
	if err != nil {
		return err
	}

	all := len(tasks) > 0
	for _, t := range tasks {
		if !t.Completed {
			all = false
			break
		}
	}

	if all {
		err := c.Plan.UpdateOneID(p.ID).
			SetCompleted(true).
			SetCurrentTaskIndex(len(tasks)).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("mark plan completed: %w", err)
		}
		return upsertPlanCompletion(ctx, c, p.ID, p.OwnerID, true, now)
	}

	if p.Completed {
		if err := c.Plan.UpdateOneID(p.ID).SetCompleted(false).Exec(ctx); err != nil {
			return fmt.Errorf("reopen plan: %w", err)
		}
		return upsertPlanCompletion(ctx, c, p.ID, p.OwnerID, false, now)
	}
	return nil
}

// reconcileCompletions re-derives every viewer's completion state after
// the task set itself changed (a task added or deleted): first the
// shared flag and the owner's record, then each individual sharer's
// record from their own task coverage.
func reconcileCompletions(ctx context.Context, c *ent.Client, p *ent.Plan, now time.Time) error {
	if err := reconcilePlanCompletion(ctx, c, p, now); err != nil {
		return err
	}
	return reconcileIndividualCompletions(ctx, c, p.ID, now)
}

// reconcileIndividualCompletions recomputes "is the plan done for this
// sharer" for every individual-mode share, the same coverage rule
// completeIndividual applies. Sharers with no record and an unfinished
// plan are left without one.
func reconcileIndividualCompletions(ctx context.Context, c *ent.Client, planID uuid.UUID, now time.Time) error {
	shares, err := c.SharedPlan.Query().
		Where(
			sharedplan.PlanIDEQ(planID),
			sharedplan.PermissionEQ(sharedplan.PermissionIndividual),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query individual shares: %w", err)
	}
	if len(shares) == 0 {
		return nil
	}

	tasks, err := orderedTasks(ctx, c, planID)
	if err != nil {
		return err
	}
	taskIDs := make([]uuid.UUID, len(tasks))
	for i, t := range tasks {
		taskIDs[i] = t.ID
	}

	for _, s := range shares {
		done, err := completedTaskSet(ctx, c, s.SharedWithID, taskIDs)
		if err != nil {
			return err
		}
		finished := len(tasks) > 0
		for _, t := range tasks {
			if !done[t.ID] {
				finished = false
				break
			}
		}

		rec, err := c.PlanCompletion.Query().
			Where(
				plancompletion.PlanIDEQ(planID),
				plancompletion.UserIDEQ(s.SharedWithID),
			).
			Only(ctx)
		if err != nil {
			if !ent.IsNotFound(err) {
				return fmt.Errorf("query plan completion: %w", err)
			}
			if !finished {
				continue
			}
			rec = nil
		}
		if rec != nil && rec.Completed == finished {
			continue
		}
		if err := upsertPlanCompletion(ctx, c, planID, s.SharedWithID, finished, now); err != nil {
			return err
		}
	}
	return nil
}

// DeleteTask removes a task from a plan, closes the resulting gap in
// plan_order, and recomputes the cursor. Requires owner or write
// access; a plan may never be left with zero tasks.
func (r *PlanRepository) DeleteTask(ctx context.Context, planID, taskID, userID uuid.UUID) (*models.PlanView, error) {
	err := r.withTx(ctx, func(tx *ent.Tx) error {
		c := tx.Client()

		role, p, err := resolveRole(ctx, c, planID, userID)
		if err != nil {
			return err
		}
		if err := requireEdit(role); err != nil {
			return err
		}

		t, err := c.Task.Query().
			Where(task.ID(taskID), task.PlanIDEQ(planID)).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return ErrNotFound
			}
			return fmt.Errorf("load task: %w", err)
		}

		count, err := c.Task.Query().
			Where(task.PlanIDEQ(planID)).
			Count(ctx)
		if err != nil {
			return fmt.Errorf("count plan tasks: %w", err)
		}
		if count <= 1 {
			return fmt.Errorf("%w: a plan cannot be left without tasks", ErrInvalidOperation)
		}

		// Per-user records referencing the task go with it.
		if _, err := c.TaskCompletion.Delete().
			Where(taskcompletion.TaskIDEQ(t.ID)).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete task completions: %w", err)
		}

		if err := c.Task.DeleteOneID(t.ID).Exec(ctx); err != nil {
			return fmt.Errorf("delete task: %w", err)
		}

		// Close the gap so plan_order stays dense 0..N-1.
		if _, err := c.Task.Update().
			Where(
				task.PlanIDEQ(planID),
				task.PlanOrderGT(t.PlanOrder),
			).
			AddPlanOrder(-1).
			Save(ctx); err != nil {
			return fmt.Errorf("reindex plan tasks: %w", err)
		}

		// A deletion below the cursor shifts it down; a deletion at the
		// cursor leaves it alone (the next task slides into the slot).
		if t.PlanOrder < p.CurrentTaskIndex {
			next := p.CurrentTaskIndex - 1
			if next < 0 {
				next = 0
			}
			if err := c.Plan.UpdateOneID(p.ID).SetCurrentTaskIndex(next).Exec(ctx); err != nil {
				return fmt.Errorf("recompute plan cursor: %w", err)
			}
		}

		// Removing the last incomplete task may have finished the plan
		// for the owner, for individual sharers, or both.
		return reconcileCompletions(ctx, c, p, time.Now())
	})
	if err != nil {
		return nil, err
	}

	return r.GetPlan(ctx, planID, userID)
}
