// Code generated by ent, DO NOT EDIT.

package generated

import (
	"time"

	"github.com/google/uuid"
	"github.com/planmaster/planmaster/ent/generated/plan"
	"github.com/planmaster/planmaster/ent/generated/plancompletion"
	"github.com/planmaster/planmaster/ent/generated/sharedplan"
	"github.com/planmaster/planmaster/ent/generated/task"
	"github.com/planmaster/planmaster/ent/generated/taskcompletion"
	"github.com/planmaster/planmaster/ent/generated/user"
	"github.com/planmaster/planmaster/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	planFields := schema.Plan{}.Fields()
	_ = planFields
	// planDescTitle is the schema descriptor for title field.
	planDescTitle := planFields[2].Descriptor()
	// plan.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	plan.TitleValidator = planDescTitle.Validators[0].(func(string) error)
	// planDescCurrentTaskIndex is the schema descriptor for current_task_index field.
	planDescCurrentTaskIndex := planFields[5].Descriptor()
	// plan.DefaultCurrentTaskIndex holds the default value on creation for the current_task_index field.
	plan.DefaultCurrentTaskIndex = planDescCurrentTaskIndex.Default.(int)
	// plan.CurrentTaskIndexValidator is a validator for the "current_task_index" field. It is called by the builders before save.
	plan.CurrentTaskIndexValidator = planDescCurrentTaskIndex.Validators[0].(func(int) error)
	// planDescCompleted is the schema descriptor for completed field.
	planDescCompleted := planFields[6].Descriptor()
	// plan.DefaultCompleted holds the default value on creation for the completed field.
	plan.DefaultCompleted = planDescCompleted.Default.(bool)
	// planDescCreatedAt is the schema descriptor for created_at field.
	planDescCreatedAt := planFields[7].Descriptor()
	// plan.DefaultCreatedAt holds the default value on creation for the created_at field.
	plan.DefaultCreatedAt = planDescCreatedAt.Default.(func() time.Time)
	// planDescUpdatedAt is the schema descriptor for updated_at field.
	planDescUpdatedAt := planFields[8].Descriptor()
	// plan.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	plan.DefaultUpdatedAt = planDescUpdatedAt.Default.(func() time.Time)
	// plan.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	plan.UpdateDefaultUpdatedAt = planDescUpdatedAt.UpdateDefault.(func() time.Time)
	// planDescID is the schema descriptor for id field.
	planDescID := planFields[0].Descriptor()
	// plan.DefaultID holds the default value on creation for the id field.
	plan.DefaultID = planDescID.Default.(func() uuid.UUID)
	plancompletionFields := schema.PlanCompletion{}.Fields()
	_ = plancompletionFields
	// plancompletionDescCompleted is the schema descriptor for completed field.
	plancompletionDescCompleted := plancompletionFields[3].Descriptor()
	// plancompletion.DefaultCompleted holds the default value on creation for the completed field.
	plancompletion.DefaultCompleted = plancompletionDescCompleted.Default.(bool)
	// plancompletionDescID is the schema descriptor for id field.
	plancompletionDescID := plancompletionFields[0].Descriptor()
	// plancompletion.DefaultID holds the default value on creation for the id field.
	plancompletion.DefaultID = plancompletionDescID.Default.(func() uuid.UUID)
	sharedplanFields := schema.SharedPlan{}.Fields()
	_ = sharedplanFields
	// sharedplanDescCreatedAt is the schema descriptor for created_at field.
	sharedplanDescCreatedAt := sharedplanFields[5].Descriptor()
	// sharedplan.DefaultCreatedAt holds the default value on creation for the created_at field.
	sharedplan.DefaultCreatedAt = sharedplanDescCreatedAt.Default.(func() time.Time)
	// sharedplanDescID is the schema descriptor for id field.
	sharedplanDescID := sharedplanFields[0].Descriptor()
	// sharedplan.DefaultID holds the default value on creation for the id field.
	sharedplan.DefaultID = sharedplanDescID.Default.(func() uuid.UUID)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescTitle is the schema descriptor for title field.
	taskDescTitle := taskFields[3].Descriptor()
	// task.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	task.TitleValidator = taskDescTitle.Validators[0].(func(string) error)
	// taskDescPlanOrder is the schema descriptor for plan_order field.
	taskDescPlanOrder := taskFields[6].Descriptor()
	// task.DefaultPlanOrder holds the default value on creation for the plan_order field.
	task.DefaultPlanOrder = taskDescPlanOrder.Default.(int)
	// task.PlanOrderValidator is a validator for the "plan_order" field. It is called by the builders before save.
	task.PlanOrderValidator = taskDescPlanOrder.Validators[0].(func(int) error)
	// taskDescPriority is the schema descriptor for priority field.
	taskDescPriority := taskFields[7].Descriptor()
	// task.DefaultPriority holds the default value on creation for the priority field.
	task.DefaultPriority = taskDescPriority.Default.(int)
	// task.PriorityValidator is a validator for the "priority" field. It is called by the builders before save.
	task.PriorityValidator = func() func(int) error {
		validators := taskDescPriority.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(priority int) error {
			for _, fn := range fns {
				if err := fn(priority); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// taskDescCompleted is the schema descriptor for completed field.
	taskDescCompleted := taskFields[8].Descriptor()
	// task.DefaultCompleted holds the default value on creation for the completed field.
	task.DefaultCompleted = taskDescCompleted.Default.(bool)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[9].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescUpdatedAt is the schema descriptor for updated_at field.
	taskDescUpdatedAt := taskFields[10].Descriptor()
	// task.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	task.DefaultUpdatedAt = taskDescUpdatedAt.Default.(func() time.Time)
	// task.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	task.UpdateDefaultUpdatedAt = taskDescUpdatedAt.UpdateDefault.(func() time.Time)
	// taskDescID is the schema descriptor for id field.
	taskDescID := taskFields[0].Descriptor()
	// task.DefaultID holds the default value on creation for the id field.
	task.DefaultID = taskDescID.Default.(func() uuid.UUID)
	taskcompletionFields := schema.TaskCompletion{}.Fields()
	_ = taskcompletionFields
	// taskcompletionDescCompleted is the schema descriptor for completed field.
	taskcompletionDescCompleted := taskcompletionFields[3].Descriptor()
	// taskcompletion.DefaultCompleted holds the default value on creation for the completed field.
	taskcompletion.DefaultCompleted = taskcompletionDescCompleted.Default.(bool)
	// taskcompletionDescID is the schema descriptor for id field.
	taskcompletionDescID := taskcompletionFields[0].Descriptor()
	// taskcompletion.DefaultID holds the default value on creation for the id field.
	taskcompletion.DefaultID = taskcompletionDescID.Default.(func() uuid.UUID)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[2].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescDisplayName is the schema descriptor for display_name field.
	userDescDisplayName := userFields[3].Descriptor()
	// user.DisplayNameValidator is a validator for the "display_name" field. It is called by the builders before save.
	user.DisplayNameValidator = func() func(string) error {
		validators := userDescDisplayName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(display_name string) error {
			for _, fn := range fns {
				if err := fn(display_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[4].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[5].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
