// ent/schema/taskcompletion.go
package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// TaskCompletion holds the schema definition for a per-user task
// completion record. Only individual-mode shares write here: each
// shared user progresses through the same task sequence without
// touching the shared Task.completed column.
type TaskCompletion struct {
	ent.Schema
}

// Fields of the TaskCompletion.
func (TaskCompletion) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),

		field.UUID("task_id", uuid.UUID{}).
			Comment("Task this record belongs to"),

		field.UUID("user_id", uuid.UUID{}).
			Comment("User whose completion state this records"),

		field.Bool("completed").
			Default(false),

		field.Time("completed_at").
			Optional().
			Nillable().
			Comment("When the user finished the task"),
	}
}

// Edges of the TaskCompletion.
func (TaskCompletion) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("completions").
			Field("task_id").
			Unique().
			Required(),
	}
}

// Indexes of the TaskCompletion.
func (TaskCompletion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "user_id").
			Unique(),

		// Bulk resolution of a viewer's progress across many tasks
		index.Fields("user_id"),
	}
}
