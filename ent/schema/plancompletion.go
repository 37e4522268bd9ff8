// ent/schema/plancompletion.go
package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// PlanCompletion holds the schema definition for a per-user plan
// completion record. The plan's legacy completed flag reflects only
// the owner's shared progress; this table answers "is the plan done
// for user X" uniformly for every viewer.
type PlanCompletion struct {
	ent.Schema
}

// Fields of the PlanCompletion.
func (PlanCompletion) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),

		field.UUID("plan_id", uuid.UUID{}).
			Comment("Plan this record belongs to"),

		field.UUID("user_id", uuid.UUID{}).
			Comment("User whose completion state this records"),

		field.Bool("completed").
			Default(false),

		field.Time("completed_at").
			Optional().
			Nillable().
			Comment("When the user finished the plan"),
	}
}

// Edges of the PlanCompletion.
func (PlanCompletion) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("plan", Plan.Type).
			Ref("completions").
			Field("plan_id").
			Unique().
			Required(),
	}
}

// Indexes of the PlanCompletion.
func (PlanCompletion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("plan_id", "user_id").
			Unique(),

		// Stats queries scan by user and completion time
		index.Fields("user_id", "completed_at"),
	}
}
