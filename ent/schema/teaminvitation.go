package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TeamInvitation holds the schema definition for the TeamInvitation entity.
//
// Tokens are single use. Expiry is enforced when the invitation is
// accepted, not when it is issued.
type TeamInvitation struct {
	ent.Schema
}

// Fields of the TeamInvitation.
func (TeamInvitation) Fields() []ent.Field {
	return []ent.Field{
		field.Int("team_id").
			Comment("Team ID"),
		field.String("email").
			NotEmpty().
			Comment("Invitee email address"),
		field.Enum("role").
			Values("admin", "member").
			Default("member").
			Comment("Role granted on acceptance"),
		field.String("token").
			Unique().
			Sensitive().
			NotEmpty().
			Comment("Single-use invitation token"),
		field.Enum("status").
			Values("pending", "accepted").
			Default("pending").
			Comment("Invitation status"),
		field.Time("expires_at").
			Comment("Expiry deadline, checked at acceptance time"),
		field.Int("invited_by").
			Comment("User ID of the inviter"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
	}
}

// Edges of the TeamInvitation.
func (TeamInvitation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("team", Team.Type).
			Ref("invitations").
			Unique().
			Required().
			Field("team_id").
			Comment("Team the invitation is for"),
	}
}

// Indexes of the TeamInvitation.
func (TeamInvitation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("token").Unique(),
		index.Fields("team_id", "email"),
		index.Fields("status"),
	}
}
