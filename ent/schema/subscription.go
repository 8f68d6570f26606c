package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Subscription holds the schema definition for the Subscription entity.
//
// One row per user: every write path upserts keyed on user_id so that
// webhook replays and manual plan changes can never fan out into
// duplicate rows.
type Subscription struct {
	ent.Schema
}

// Fields of the Subscription.
func (Subscription) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id").
			Positive().
			Comment("User ID foreign key"),
		field.Int("team_id").
			Optional().
			Comment("Team whose entitlements this subscription grants"),
		field.Enum("plan_type").
			Values("free", "starter", "pro", "agency", "enterprise").
			Default("free").
			Comment("Subscription plan"),
		field.Enum("status").
			Values("active", "canceled", "past_due", "unpaid", "trialing").
			Default("active").
			Comment("Subscription status"),
		field.String("stripe_subscription_id").
			Optional().
			Comment("Stripe subscription ID"),
		field.String("stripe_customer_id").
			Optional().
			Comment("Stripe customer ID"),
		field.Time("current_period_start").
			Optional().
			Comment("Current billing period start"),
		field.Time("current_period_end").
			Optional().
			Comment("Current billing period end"),
		field.Bool("cancel_at_period_end").
			Default(false).
			Comment("Whether to cancel at period end"),
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

// Edges of the Subscription.
func (Subscription) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("subscriptions").
			Field("user_id").
			Unique().
			Required().
			Comment("Subscription owner"),
	}
}

// Indexes of the Subscription.
func (Subscription) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id").Unique(),
		index.Fields("stripe_subscription_id"),
		index.Fields("stripe_customer_id"),
		index.Fields("status"),
	}
}
