// ent/schema/plan.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Plan holds the schema definition for the Plan entity. A plan is an
// ordered sequence of tasks completed in order; current_task_index is
// the owner-view cursor over that sequence.
type Plan struct {
	ent.Schema
}

// Fields of the Plan.
func (Plan) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),

		field.UUID("owner_id", uuid.UUID{}).
			Comment("User that created the plan; sole sharing authority"),

		field.String("title").
			NotEmpty().
			Comment("Plan title"),

		field.Text("description").
			Optional().
			Comment("Detailed description of the plan"),

		field.Time("date").
			Comment("Day the plan is scheduled for"),

		field.Int("current_task_index").
			Default(0).
			Min(0).
			Comment("Zero-based position of the active task for the owner view; equals the task count once the plan is fully advanced"),

		field.Bool("completed").
			Default(false).
			Comment("Legacy global completion flag; per-user records take precedence"),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the plan was created"),

		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("When the plan was last updated"),
	}
}

// Edges of the Plan.
func (Plan) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("owner", User.Type).
			Ref("plans").
			Field("owner_id").
			Unique().
			Required(),

		edge.To("tasks", Task.Type).
			Comment("Ordered tasks of this plan"),

		edge.To("shares", SharedPlan.Type).
			Comment("Active share grants for this plan"),

		edge.To("completions", PlanCompletion.Type).
			Comment("Per-user completion records"),
	}
}

// Indexes of the Plan.
func (Plan) Indexes() []ent.Index {
	return []ent.Index{
		// Bulk fetch by owner and by owner+date
		index.Fields("owner_id"),
		index.Fields("owner_id", "date"),

		index.Fields("created_at"),
	}
}
