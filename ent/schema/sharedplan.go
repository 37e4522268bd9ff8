// ent/schema/sharedplan.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// SharedPlan holds the schema definition for a share grant: access to
// one plan for one non-owner user at a given permission level. At most
// one active row exists per (plan, target user); re-sharing replaces
// the permission.
type SharedPlan struct {
	ent.Schema
}

// Fields of the SharedPlan.
func (SharedPlan) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),

		field.UUID("plan_id", uuid.UUID{}).
			Comment("Plan being shared"),

		field.UUID("owner_id", uuid.UUID{}).
			Comment("Owner granting the share"),

		field.UUID("shared_with_id", uuid.UUID{}).
			Comment("User the plan is shared with"),

		field.Enum("permission").
			Values("read", "write", "individual").
			Comment("Collaboration mode granted to the target user"),

		field.Time("created_at").
			Default(time.Now).
			Comment("When the share was granted or last replaced"),
	}
}

// Edges of the SharedPlan.
func (SharedPlan) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("plan", Plan.Type).
			Ref("shares").
			Field("plan_id").
			Unique().
			Required(),

		edge.From("shared_with", User.Type).
			Ref("incoming_shares").
			Field("shared_with_id").
			Unique().
			Required(),
	}
}

// Indexes of the SharedPlan.
func (SharedPlan) Indexes() []ent.Index {
	return []ent.Index{
		// One active share per (plan, target user)
		index.Fields("plan_id", "shared_with_id").
			Unique(),

		// Bulk fetch of plans shared with a user
		index.Fields("shared_with_id"),
	}
}
