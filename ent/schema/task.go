// ent/schema/task.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Task holds the schema definition for the Task entity. A task either
// belongs to a plan (plan_id set, dense plan_order within the plan) or
// is standalone (plan_id null, no ordering constraint).
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),

		field.UUID("user_id", uuid.UUID{}).
			Comment("User that created the task"),

		field.UUID("plan_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Owning plan; null for standalone tasks"),

		field.String("title").
			NotEmpty().
			Comment("Task title"),

		field.Text("description").
			Optional().
			Comment("Detailed description of the task"),

		field.Time("date").
			Comment("Day the task is scheduled for; defaults to the plan date for plan tasks"),

		field.Int("plan_order").
			Default(0).
			Min(0).
			Comment("Position within the plan; dense 0..N-1, meaningless for standalone tasks"),

		field.Int("priority").
			Default(3).
			Min(1).
			Max(5).
			Comment("Priority from 1 (lowest) to 5 (highest)"),

		field.Bool("completed").
			Default(false).
			Comment("Shared completion flag; authoritative for standalone tasks and the owner view of plan tasks"),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the task was created"),

		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("When the task was last updated"),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("creator", User.Type).
			Ref("tasks").
			Field("user_id").
			Unique().
			Required(),

		edge.From("plan", Plan.Type).
			Ref("tasks").
			Field("plan_id").
			Unique(),

		edge.To("completions", TaskCompletion.Type).
			Comment("Per-user completion records for individual-mode shares"),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		// Ordered reads within a plan
		index.Fields("plan_id", "plan_order"),

		// Per-user task listing
		index.Fields("user_id", "date"),

		index.Fields("created_at"),
	}
}
