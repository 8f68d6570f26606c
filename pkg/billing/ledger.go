package billing

import (
	"context"
	"fmt"

	"github.com/tripfolio/tripfolio-api/ent"
	"github.com/tripfolio/tripfolio-api/ent/processedevent"
)

// Ledger is the durable idempotency gate for webhook events. A row per
// event ID means its side effects have been applied; at-least-once
// delivery from the processor becomes effectively-once locally.
type Ledger struct {
	db *ent.Client
}

// NewLedger creates a new idempotency ledger
func NewLedger(db *ent.Client) *Ledger {
	return &Ledger{db: db}
}

// Seen reports whether an event ID has already been processed.
func (l *Ledger) Seen(ctx context.Context, eventID string) (bool, error) {
	exists, err := l.db.ProcessedEvent.Query().
		Where(processedevent.EventIDEQ(eventID)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check event ledger: %w", err)
	}
	return exists, nil
}

// Record appends an event ID to the ledger. A concurrent duplicate
// insert trips the unique constraint, which means another delivery of
// the same event won the race; that is treated as success.
func (l *Ledger) Record(ctx context.Context, eventID, eventType string) error {
	_, err := l.db.ProcessedEvent.Create().
		SetEventID(eventID).
		SetEventType(eventType).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil
		}
		return fmt.Errorf("failed to record event: %w", err)
	}
	return nil
}
