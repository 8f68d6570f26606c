package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TeamMember holds the schema definition for the TeamMember entity.
type TeamMember struct {
	ent.Schema
}

// Fields of the TeamMember.
func (TeamMember) Fields() []ent.Field {
	return []ent.Field{
		field.Int("team_id").
			Comment("Team ID"),
		field.Int("user_id").
			Comment("User ID"),
		field.Enum("role").
			Values("owner", "admin", "member").
			Default("member").
			Comment("Member role in team"),
		field.Time("joined_at").
			Default(time.Now).
			Comment("When member joined the team"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
	}
}

// Edges of the TeamMember.
func (TeamMember) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("team", Team.Type).
			Ref("members").
			Unique().
			Required().
			Field("team_id").
			Comment("Team this member belongs to"),
		edge.From("user", User.Type).
			Ref("team_memberships").
			Unique().
			Required().
			Field("user_id").
			Comment("User who is a member"),
	}
}

// Indexes of the TeamMember.
func (TeamMember) Indexes() []ent.Index {
	return []ent.Index{
		// Composite unique index: user can only be in a team once
		index.Fields("team_id", "user_id").Unique(),
		index.Fields("team_id"),
		index.Fields("user_id"),
	}
}
