// ent/schema/user.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// User holds the schema definition for the User entity.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),

		field.String("email").
			NotEmpty().
			Unique().
			Comment("User email address"),

		field.String("password_hash").
			NotEmpty().
			Sensitive(). // Won't be included in logs
			Comment("Hashed password"),

		field.String("display_name").
			NotEmpty().
			MaxLen(100).
			Comment("Name shown to collaborators"),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the user was created"),

		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("When the user was last updated"),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		// Plans owned by this user
		edge.To("plans", Plan.Type).
			Comment("Plans created by this user"),

		// Tasks created by this user (plan tasks and standalone tasks)
		edge.To("tasks", Task.Type).
			Comment("Tasks created by this user"),

		// Shares where this user is the target
		edge.To("incoming_shares", SharedPlan.Type).
			Comment("Plans shared with this user"),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email").
			Unique(),

		index.Fields("created_at"),
	}
}
