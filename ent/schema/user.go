package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds the schema definition for the User entity.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("email").
			Unique().
			NotEmpty().
			Comment("User email address"),
		field.String("password_hash").
			Sensitive().
			NotEmpty().
			Comment("Bcrypt hashed password"),
		field.String("name").
			NotEmpty().
			Comment("User full name"),
		field.String("phone").
			Optional().
			Nillable().
			Comment("Contact phone in E.164 format"),
		field.String("agency_name").
			Optional().
			Nillable().
			Comment("Travel agency display name"),
		field.String("logo_url").
			Optional().
			Nillable().
			Comment("Agency logo URL shown on itineraries and quotes"),
		field.Bool("email_verified").
			Default(false).
			Comment("Whether email is verified"),
		field.String("stripe_customer_id").
			Optional().
			Nillable().
			Comment("Stripe customer ID"),
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

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("subscriptions", Subscription.Type).
			Comment("User's subscription history"),
		edge.To("owned_teams", Team.Type).
			Comment("Teams owned by this user"),
		edge.To("team_memberships", TeamMember.Type).
			Comment("Team memberships"),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email").Unique(),
		index.Fields("stripe_customer_id"),
		index.Fields("created_at"),
	}
}
