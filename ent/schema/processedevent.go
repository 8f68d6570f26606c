package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProcessedEvent holds the schema definition for the ProcessedEvent entity.
//
// Append-only idempotency ledger for webhook events. The presence of a
// row for an event ID is the sole signal that its side effects have
// already been applied; rows are never updated or deleted.
type ProcessedEvent struct {
	ent.Schema
}

// Fields of the ProcessedEvent.
func (ProcessedEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("event_id").
			Unique().
			NotEmpty().
			Comment("External event identifier"),
		field.String("event_type").
			NotEmpty().
			Comment("Event type, kept for triage"),
		field.Time("recorded_at").
			Default(time.Now).
			Immutable().
			Comment("When the event was applied"),
	}
}

// Indexes of the ProcessedEvent.
func (ProcessedEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("event_id").Unique(),
		index.Fields("recorded_at"),
	}
}
