package billing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/stripe/stripe-go/v76"

	"github.com/tripfolio/tripfolio-api/pkg/models"
)

// ErrInvalidSignature is returned when a webhook payload fails
// signature verification. Handlers must answer these with a client
// error and never process the payload.
var ErrInvalidSignature = errors.New("webhook signature verification failed")

// eventHandler applies one event type's side effects. Every handler
// must be safe to re-run: the processor delivers at least once and the
// ledger is the only duplicate guard.
type eventHandler func(ctx context.Context, event stripe.Event) error

// dispatchTable maps event types to their handlers. Unknown types are
// acknowledged without side effects.
func (s *Service) dispatchTable() map[string]eventHandler {
	return map[string]eventHandler{
		"checkout.session.completed":    s.handleCheckoutCompleted,
		"customer.subscription.created": s.handleSubscriptionCreated,
		"customer.subscription.updated": s.handleSubscriptionUpdated,
		"customer.subscription.deleted": s.handleSubscriptionDeleted,
	}
}

// HandleWebhookEvent runs the webhook pipeline: verify the signature,
// short-circuit duplicates through the ledger, dispatch by event type,
// then record the event as processed. An error from a handler aborts
// before the ledger write so the processor's retry redelivers.
func (s *Service) HandleWebhookEvent(ctx context.Context, payload []byte, signature string) (*models.WebhookResponse, error) {
	event, err := s.processor.ConstructWebhookEvent(payload, signature)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	eventType := string(event.Type)
	log.Printf("📨 Webhook received: %s (%s)", eventType, event.ID)

	seen, err := s.ledger.Seen(ctx, event.ID)
	if err != nil {
		return nil, err
	}
	if seen {
		log.Printf("🔁 Duplicate event %s, skipping", event.ID)
		s.recordWebhookOutcome(eventType, "duplicate")
		return &models.WebhookResponse{Received: true}, nil
	}

	if handler, ok := s.dispatchTable()[eventType]; ok {
		if err := handler(ctx, event); err != nil {
			s.recordWebhookOutcome(eventType, "failed")
			return nil, fmt.Errorf("failed to process %s: %w", eventType, err)
		}
	} else {
		log.Printf("⚠️  Unhandled webhook event type: %s", eventType)
	}

	if err := s.ledger.Record(ctx, event.ID, eventType); err != nil {
		s.recordWebhookOutcome(eventType, "failed")
		return nil, err
	}

	s.recordWebhookOutcome(eventType, "processed")
	return &models.WebhookResponse{Received: true}, nil
}

func (s *Service) recordWebhookOutcome(eventType, outcome string) {
	if s.metrics != nil {
		s.metrics.RecordWebhookEvent(eventType, outcome)
	}
}

// handleCheckoutCompleted handles checkout.session.completed. For new
// signups it provisions the account first; either way it pulls the
// canonical subscription state from the processor.
func (s *Service) handleCheckoutCompleted(ctx context.Context, event stripe.Event) error {
	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return fmt.Errorf("failed to unmarshal session: %w", err)
	}

	metadata, err := ParseSessionMetadata(sess.Metadata)
	if err != nil {
		// Not a session we created; nothing to reconcile
		log.Printf("⚠️  Checkout session %s has no usable metadata: %v", sess.ID, err)
		return nil
	}

	userID := metadata.UserID
	if metadata.NeedsAccountCreation {
		userID, err = s.provisionAccount(ctx, &sess, metadata)
		if err != nil {
			// Provisioning problems don't fail the event: a redelivery
			// would hit the same bad payload, so log and move on.
			log.Printf("❌ Account provisioning aborted for session %s: %v", sess.ID, err)
			return nil
		}
	}

	if userID == 0 {
		log.Printf("⚠️  Checkout session %s completed with no resolvable user", sess.ID)
		return nil
	}

	if metadata.TrialConversion {
		log.Printf("🔄 Trial conversion for user %d (prior period end %s)", userID, metadata.PriorPeriodEnd.Format("2006-01-02"))
	}

	return s.syncFromCheckout(ctx, userID, &sess)
}

// handleSubscriptionCreated handles customer.subscription.created.
// The event can race the checkout-completion branch, so attribution
// falls back to the processor's own checkout session records.
func (s *Service) handleSubscriptionCreated(ctx context.Context, event stripe.Event) error {
	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		return fmt.Errorf("failed to unmarshal subscription: %w", err)
	}

	userID, err := s.resolveSubscriptionOwner(ctx, &sub)
	if err != nil {
		return err
	}
	if userID == 0 {
		log.Printf("⚠️  Cannot attribute subscription %s to a user, dropping event", sub.ID)
		return nil
	}

	if err := s.upsertFromProcessor(ctx, userID, &sub); err != nil {
		return err
	}

	if err := s.linkTeamSubscription(ctx, userID, sub.ID); err != nil {
		log.Printf("⚠️  Team link skipped for user %d: %v", userID, err)
	}
	return nil
}

// handleSubscriptionUpdated handles customer.subscription.updated.
func (s *Service) handleSubscriptionUpdated(ctx context.Context, event stripe.Event) error {
	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		return fmt.Errorf("failed to unmarshal subscription: %w", err)
	}

	userID, err := s.resolveSubscriptionOwner(ctx, &sub)
	if err != nil {
		return err
	}
	if userID == 0 {
		log.Printf("⚠️  Cannot attribute subscription %s to a user, dropping event", sub.ID)
		return nil
	}

	if err := s.upsertFromProcessor(ctx, userID, &sub); err != nil {
		return err
	}

	if err := s.linkTeamSubscription(ctx, userID, sub.ID); err != nil {
		log.Printf("⚠️  Team link skipped for user %d: %v", userID, err)
	}

	s.notifyStatusChange(ctx, userID, sub.Status)
	return nil
}

// handleSubscriptionDeleted handles customer.subscription.deleted by
// marking the local row canceled. The row is kept for history.
func (s *Service) handleSubscriptionDeleted(ctx context.Context, event stripe.Event) error {
	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		return fmt.Errorf("failed to unmarshal subscription: %w", err)
	}

	userID, err := s.resolveSubscriptionOwner(ctx, &sub)
	if err != nil {
		return err
	}
	if userID == 0 {
		log.Printf("⚠️  Deleted subscription %s has no local record", sub.ID)
		return nil
	}

	if err := s.upsertFromProcessor(ctx, userID, &sub); err != nil {
		return err
	}

	s.notifyStatusChange(ctx, userID, sub.Status)
	return nil
}
