package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Team holds the schema definition for the Team entity.
type Team struct {
	ent.Schema
}

// Fields of the Team.
func (Team) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Comment("Team display name"),
		field.Int("owner_id").
			Comment("Owning user ID"),
		field.Int("subscription_id").
			Optional().
			Comment("Back-reference to the subscription granting this team's entitlements"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last update timestamp"),
	}
}

// Edges of the Team.
func (Team) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("owner", User.Type).
			Ref("owned_teams").
			Field("owner_id").
			Unique().
			Required().
			Comment("Team owner"),
		edge.To("members", TeamMember.Type).
			Comment("Team members"),
		edge.To("invitations", TeamInvitation.Type).
			Comment("Pending and accepted invitations"),
	}
}

// Indexes of the Team.
func (Team) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id"),
		index.Fields("subscription_id"),
	}
}
