// internal/repository/plan_repository.go
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	ent "github.com/planmaster/planmaster/ent/generated"
	"github.com/planmaster/planmaster/ent/generated/plan"
	"github.com/planmaster/planmaster/ent/generated/sharedplan"
	"github.com/planmaster/planmaster/ent/generated/task"
	"github.com/planmaster/planmaster/internal/models"
)

// PlanRepository is the entity store and progression engine in one
// place: every multi-step mutation runs inside a single transaction and
// returns the rematerialized plan for the calling user.
type PlanRepository struct {
	client *ent.Client
}

func NewPlanRepository(client *ent.Client) *PlanRepository {
	return &PlanRepository{
		client: client,
	}
}

// withTx runs fn inside a transaction; any error rolls back every write.
func (r *PlanRepository) withTx(ctx context.Context, fn func(tx *ent.Tx) error) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() {
		if v := recover(); v != nil {
			_ = tx.Rollback()
			panic(v)
		}
	}()
	if err := fn(tx); err != nil {
		return rollback(tx, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Helper function for transaction rollback
func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		err = fmt.Errorf("%w: %v", err, rerr)
	}
	return err
}

// CreatePlan creates a plan and its ordered tasks in one transaction.
// A plan must be created with at least one task.
func (r *PlanRepository) CreatePlan(ctx context.Context, ownerID uuid.UUID, input *PlanInput) (*models.PlanView, error) {
	if len(input.Tasks) == 0 {
		return nil, fmt.Errorf("%w: a plan needs at least one task", ErrInvalidOperation)
	}

	var planID uuid.UUID
	err := r.withTx(ctx, func(tx *ent.Tx) error {
		create := tx.Plan.Create().
			SetOwnerID(ownerID).
			SetTitle(input.Title).
			SetDate(input.Date)
		if input.Description != "" {
			create = create.SetDescription(input.Description)
		}

		p, err := create.Save(ctx)
		if err != nil {
			return fmt.Errorf("create plan: %w", err)
		}
		planID = p.ID

		builders := make([]*ent.TaskCreate, len(input.Tasks))
		for i, t := range input.Tasks {
			date := p.Date
			if t.Date != nil {
				date = *t.Date
			}
			priority := t.Priority
			if priority == 0 {
				priority = 3
			}

			builder := tx.Task.Create().
				SetUserID(ownerID).
				SetPlanID(p.ID).
				SetTitle(t.Title).
				SetDate(date).
				SetPlanOrder(i).
				SetPriority(priority)
			if t.Description != "" {
				builder = builder.SetDescription(t.Description)
			}

			builders[i] = builder
		}

		if _, err := tx.Task.CreateBulk(builders...).Save(ctx); err != nil {
			return fmt.Errorf("create plan tasks: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetPlan(ctx, planID, ownerID)
}

// GetPlan materializes a single plan for the viewing user.
func (r *PlanRepository) GetPlan(ctx context.Context, planID, userID uuid.UUID) (*models.PlanView, error) {
	role, p, err := resolveRole(ctx, r.client, planID, userID)
	if err != nil {
		return nil, err
	}
	return materialize(ctx, r.client, p, userID, role)
}

// ListPlans materializes every plan the user owns or has been shared,
// newest first. All task, share and completion lookups are batched
// across plans.
func (r *PlanRepository) ListPlans(ctx context.Context, userID uuid.UUID) ([]*models.PlanView, error) {
	return r.listPlans(ctx, userID, nil)
}

// ListPlansByDate is ListPlans restricted to plans scheduled on the
// given day.
func (r *PlanRepository) ListPlansByDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]*models.PlanView, error) {
	start := date.Truncate(24 * time.Hour)
	return r.listPlans(ctx, userID, &start)
}

func (r *PlanRepository) listPlans(ctx context.Context, userID uuid.UUID, day *time.Time) ([]*models.PlanView, error) {
	c := r.client

	ownedQuery := c.Plan.Query().Where(plan.OwnerIDEQ(userID))
	if day != nil {
		ownedQuery = ownedQuery.Where(plan.DateGTE(*day), plan.DateLT(day.Add(24*time.Hour)))
	}
	owned, err := ownedQuery.Order(ent.Desc(plan.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query owned plans: %w", err)
	}

	shares, err := c.SharedPlan.Query().
		Where(sharedplan.SharedWithIDEQ(userID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query incoming shares: %w", err)
	}

	roleByPlan := make(map[uuid.UUID]models.Role, len(owned)+len(shares))
	for _, p := range owned {
		roleByPlan[p.ID] = models.RoleOwner
	}

	var sharedIDs []uuid.UUID
	for _, s := range shares {
		roleByPlan[s.PlanID] = roleFromPermission(models.Permission(s.Permission))
		sharedIDs = append(sharedIDs, s.PlanID)
	}

	plans := owned
	if len(sharedIDs) > 0 {
		sharedQuery := c.Plan.Query().Where(plan.IDIn(sharedIDs...))
		if day != nil {
			sharedQuery = sharedQuery.Where(plan.DateGTE(*day), plan.DateLT(day.Add(24*time.Hour)))
		}
		sharedPlans, err := sharedQuery.Order(ent.Desc(plan.FieldCreatedAt)).All(ctx)
		if err != nil {
			return nil, fmt.Errorf("query shared plans: %w", err)
		}
		plans = append(plans, sharedPlans...)
	}

	if len(plans) == 0 {
		return []*models.PlanView{}, nil
	}

	bulk, err := loadPlanContext(ctx, c, plans, userID, roleByPlan)
	if err != nil {
		return nil, err
	}

	views := make([]*models.PlanView, len(plans))
	for i, p := range plans {
		views[i] = materializeView(p, roleByPlan[p.ID],
			bulk.tasksByPlan[p.ID],
			bulk.recordByPlan[p.ID],
			bulk.individualDone,
			bulk.sharedPlans[p.ID])
	}
	return views, nil
}

// OpenTasksByDate returns the caller's incomplete tasks scheduled for
// the given day, the raw material for time-block suggestions.
func (r *PlanRepository) OpenTasksByDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]models.TaskView, error) {
	start := date.Truncate(24 * time.Hour)
	tasks, err := r.client.Task.Query().
		Where(
			task.UserIDEQ(userID),
			task.CompletedEQ(false),
			task.DateGTE(start),
			task.DateLT(start.Add(24*time.Hour)),
		).
		Order(ent.Asc(task.FieldPlanOrder), ent.Asc(task.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query open tasks: %w", err)
	}

	views := make([]models.TaskView, len(tasks))
	for i, t := range tasks {
		views[i] = taskView(t, t.Completed)
	}
	return views, nil
}

// Types for repository input

type PlanInput struct {
	Title       string
	Description string
	Date        time.Time
	Tasks       []TaskInput
}

type TaskInput struct {
	Title       string
	Description string
	Date        *time.Time // defaults to the plan date
	Priority    int        // defaults to 3
}

type TaskUpdateInput struct {
	Title       *string
	Description *string
	Priority    *int
	Date        *time.Time
	Completed   *bool
}

// Empty reports whether the update carries no mutable fields.
func (in *TaskUpdateInput) Empty() bool {
	return in.Title == nil && in.Description == nil && in.Priority == nil &&
		in.Date == nil && in.Completed == nil
}
