// internal/repository/materialize.go
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

// orderedTasks loads a plan's tasks by plan_order.
func orderedTasks(ctx context.Context, c *ent.Client, planID uuid.UUID) ([]*ent.Task, error) {
	tasks, err := c.Task.Query().
		Where(task.PlanIDEQ(planID)).
		Order(ent.Asc(task.FieldPlanOrder)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query plan tasks: %w", err)
	}
	return tasks, nil
}

// materialize builds the viewer-resolved view of a single plan.
func materialize(ctx context.Context, c *ent.Client, p *ent.Plan, userID uuid.UUID, role models.Role) (*models.PlanView, error) {
	tasks, err := orderedTasks(ctx, c, p.ID)
	if err != nil {
		return nil, err
	}

	rec, err := c.PlanCompletion.Query().
		Where(
			plancompletion.PlanIDEQ(p.ID),
			plancompletion.UserIDEQ(userID),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("query plan completion: %w", err)
	}

	var individualDone map[uuid.UUID]bool
	if role == models.RoleIndividual && len(tasks) > 0 {
		taskIDs := make([]uuid.UUID, len(tasks))
		for i, t := range tasks {
			taskIDs[i] = t.ID
		}
		individualDone, err = completedTaskSet(ctx, c, userID, taskIDs)
		if err != nil {
			return nil, err
		}
	}

	isShared := true
	if role == models.RoleOwner {
		isShared, err = c.SharedPlan.Query().
			Where(sharedplan.PlanIDEQ(p.ID)).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("query plan shares: %w", err)
		}
	}

	return materializeView(p, role, tasks, rec, individualDone, isShared), nil
}

// completedTaskSet returns which of the given tasks the user has
// completed under individual mode.
func completedTaskSet(ctx context.Context, c *ent.Client, userID uuid.UUID, taskIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	recs, err := c.TaskCompletion.Query().
		Where(
			taskcompletion.UserIDEQ(userID),
			taskcompletion.TaskIDIn(taskIDs...),
			taskcompletion.CompletedEQ(true),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query task completions: %w", err)
	}

	done := make(map[uuid.UUID]bool, len(recs))
	for _, rec := range recs {
		done[rec.TaskID] = true
	}
	return done, nil
}

// planContext carries the batched lookups behind a bulk materialization.
type planContext struct {
	tasksByPlan    map[uuid.UUID][]*ent.Task
	recordByPlan   map[uuid.UUID]*ent.PlanCompletion
	individualDone map[uuid.UUID]bool
	sharedPlans    map[uuid.UUID]bool
}

// loadPlanContext batches every task, share and completion lookup for a
// set of plans so bulk fetches never degrade into per-plan queries.
func loadPlanContext(ctx context.Context, c *ent.Client, plans []*ent.Plan, userID uuid.UUID, roleByPlan map[uuid.UUID]models.Role) (*planContext, error) {
	planIDs := make([]uuid.UUID, len(plans))
	for i, p := range plans {
		planIDs[i] = p.ID
	}

	tasks, err := c.Task.Query().
		Where(task.PlanIDIn(planIDs...)).
		Order(ent.Asc(task.FieldPlanOrder)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query plan tasks: %w", err)
	}

	bulk := &planContext{
		tasksByPlan:  make(map[uuid.UUID][]*ent.Task, len(plans)),
		recordByPlan: make(map[uuid.UUID]*ent.PlanCompletion),
		sharedPlans:  make(map[uuid.UUID]bool),
	}
	var individualTaskIDs []uuid.UUID
	for _, t := range tasks {
		pid := *t.PlanID
		bulk.tasksByPlan[pid] = append(bulk.tasksByPlan[pid], t)
		if roleByPlan[pid] == models.RoleIndividual {
			individualTaskIDs = append(individualTaskIDs, t.ID)
		}
	}

	recs, err := c.PlanCompletion.Query().
		Where(
			plancompletion.PlanIDIn(planIDs...),
			plancompletion.UserIDEQ(userID),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query plan completions: %w", err)
	}
	for _, rec := range recs {
		bulk.recordByPlan[rec.PlanID] = rec
	}

	if len(individualTaskIDs) > 0 {
		bulk.individualDone, err = completedTaskSet(ctx, c, userID, individualTaskIDs)
		if err != nil {
			return nil, err
		}
	}

	shares, err := c.SharedPlan.Query().
		Where(sharedplan.PlanIDIn(planIDs...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query plan shares: %w", err)
	}
	for _, s := range shares {
		bulk.sharedPlans[s.PlanID] = true
	}

	return bulk, nil
}

// materializeView assembles the final view from already-loaded rows.
func materializeView(p *ent.Plan, role models.Role, tasks []*ent.Task, rec *ent.PlanCompletion, individualDone map[uuid.UUID]bool, isShared bool) *models.PlanView {
	views := make([]models.TaskView, len(tasks))
	for i, t := range tasks {
		completed := t.Completed
		if role == models.RoleIndividual {
			completed = individualDone[t.ID]
		}
		views[i] = taskView(t, completed)
	}

	// Individual viewers carry a derived cursor: the lowest-ordered task
	// they have not completed themselves.
	progress := models.NewProgress(p.CurrentTaskIndex, len(tasks))
	if role == models.RoleIndividual {
		idx := len(views)
		for i, v := range views {
			if !v.Completed {
				idx = i
				break
			}
		}
		progress = models.NewProgress(idx, len(views))
	}

	var permission models.Permission
	switch role {
	case models.RoleRead:
		permission = models.PermissionRead
	case models.RoleWrite:
		permission = models.PermissionWrite
	case models.RoleIndividual:
		permission = models.PermissionIndividual
	}

	return &models.PlanView{
		ID:          p.ID,
		OwnerID:     p.OwnerID,
		Title:       p.Title,
		Description: p.Description,
		Date:        p.Date,
		Progress:    progress,
		Completed:   resolveCompletion(role, p, rec, views),
		IsShared:    isShared,
		Permission:  permission,
		Tasks:       views,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// resolveCompletion answers "is this plan done for this viewer". The
// per-user record takes precedence over the legacy global flag; an
// individual viewer with no record derives the answer from their own
// task coverage.
func resolveCompletion(role models.Role, p *ent.Plan, rec *ent.PlanCompletion, tasks []models.TaskView) bool {
	if rec != nil {
		return rec.Completed
	}
	if role == models.RoleIndividual {
		if len(tasks) == 0 {
			return false
		}
		for _, t := range tasks {
			if !t.Completed {
				return false
			}
		}
		return true
	}
	return p.Completed
}

func taskView(t *ent.Task, completed bool) models.TaskView {
	return models.TaskView{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Date:        t.Date,
		Order:       t.PlanOrder,
		Priority:    t.Priority,
		Completed:   completed,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// upsertPlanCompletion writes the per-user completion record for a
// plan, creating the row on first touch.
func upsertPlanCompletion(ctx context.Context, c *ent.Client, planID, userID uuid.UUID, done bool, now time.Time) error {
	rec, err := c.PlanCompletion.Query().
		Where(
			plancompletion.PlanIDEQ(planID),
			plancompletion.UserIDEQ(userID),
		).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("query plan completion: %w", err)
		}
		create := c.PlanCompletion.Create().
			SetPlanID(planID).
			SetUserID(userID).
			SetCompleted(done)
		if done {
			create = create.SetCompletedAt(now)
		}
		if _, err := create.Save(ctx); err != nil {
			return fmt.Errorf("create plan completion: %w", err)
		}
		return nil
	}

	update := rec.Update().SetCompleted(done)
	if done {
		update = update.SetCompletedAt(now)
	} else {
		update = update.ClearCompletedAt()
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("update plan completion: %w", err)
	}
	return nil
}

// upsertTaskCompletion marks a task complete for one user under
// individual mode.
func upsertTaskCompletion(ctx context.Context, c *ent.Client, taskID, userID uuid.UUID, now time.Time) error {
	rec, err := c.TaskCompletion.Query().
		Where(
			taskcompletion.TaskIDEQ(taskID),
			taskcompletion.UserIDEQ(userID),
		).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("query task completion: %w", err)
		}
		_, err := c.TaskCompletion.Create().
			SetTaskID(taskID).
			SetUserID(userID).
			SetCompleted(true).
			SetCompletedAt(now).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create task completion: %w", err)
		}
		return nil
	}

	if err := rec.Update().SetCompleted(true).SetCompletedAt(now).Exec(ctx); err != nil {
		return fmt.Errorf("update task completion: %w", err)
	}
	return nil
}
