package billing

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/stripe/stripe-go/v76"

	"github.com/tripfolio/tripfolio-api/ent"
	"github.com/tripfolio/tripfolio-api/ent/subscription"
	"github.com/tripfolio/tripfolio-api/ent/user"
)

// subscriptionFields is the field set every synchronization path writes.
// Empty strings and zero times mean "leave the stored value alone".
type subscriptionFields struct {
	Plan                 PlanType
	Status               subscription.Status
	StripeSubscriptionID string
	StripeCustomerID     string
	PeriodStart          time.Time
	PeriodEnd            time.Time
	CancelAtPeriodEnd    bool
}

// upsertSubscription writes subscription state keyed on user_id. It
// never inserts a second row for a user: a concurrent create loses the
// race on the unique index and converges by updating instead.
func (s *Service) upsertSubscription(ctx context.Context, userID int, f subscriptionFields) (*ent.Subscription, error) {
	existing, err := s.db.Subscription.Query().
		Where(subscription.UserIDEQ(userID)).
		Only(ctx)
	if err == nil {
		return s.applyFields(ctx, existing, f)
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query subscription: %w", err)
	}

	create := s.db.Subscription.Create().
		SetUserID(userID).
		SetPlanType(subscription.PlanType(f.Plan)).
		SetStatus(f.Status).
		SetCancelAtPeriodEnd(f.CancelAtPeriodEnd)
	if f.StripeSubscriptionID != "" {
		create.SetStripeSubscriptionID(f.StripeSubscriptionID)
	}
	if f.StripeCustomerID != "" {
		create.SetStripeCustomerID(f.StripeCustomerID)
	}
	if !f.PeriodStart.IsZero() {
		create.SetCurrentPeriodStart(f.PeriodStart)
	}
	if !f.PeriodEnd.IsZero() {
		create.SetCurrentPeriodEnd(f.PeriodEnd)
	}

	created, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost the race to another writer; update their row
			existing, qerr := s.db.Subscription.Query().
				Where(subscription.UserIDEQ(userID)).
				Only(ctx)
			if qerr != nil {
				return nil, fmt.Errorf("failed to re-query subscription after conflict: %w", qerr)
			}
			return s.applyFields(ctx, existing, f)
		}
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}
	return created, nil
}

func (s *Service) applyFields(ctx context.Context, sub *ent.Subscription, f subscriptionFields) (*ent.Subscription, error) {
	update := sub.Update().
		SetPlanType(subscription.PlanType(f.Plan)).
		SetStatus(f.Status).
		SetCancelAtPeriodEnd(f.CancelAtPeriodEnd)
	if f.StripeSubscriptionID != "" {
		update.SetStripeSubscriptionID(f.StripeSubscriptionID)
	}
	if f.StripeCustomerID != "" {
		update.SetStripeCustomerID(f.StripeCustomerID)
	}
	if !f.PeriodStart.IsZero() {
		update.SetCurrentPeriodStart(f.PeriodStart)
	}
	if !f.PeriodEnd.IsZero() {
		update.SetCurrentPeriodEnd(f.PeriodEnd)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update subscription: %w", err)
	}
	return updated, nil
}

// syncFromCheckout pulls the canonical subscription referenced by a
// completed checkout session and overwrites the local row.
func (s *Service) syncFromCheckout(ctx context.Context, userID int, sess *stripe.CheckoutSession) error {
	if sess.Subscription == nil || sess.Subscription.ID == "" {
		log.Printf("⚠️  Checkout session %s has no subscription reference", sess.ID)
		return nil
	}

	sub, err := s.processor.GetSubscription(sess.Subscription.ID, nil)
	if err != nil {
		return fmt.Errorf("failed to fetch subscription %s: %w", sess.Subscription.ID, err)
	}

	return s.upsertFromProcessor(ctx, userID, sub)
}

// upsertFromProcessor overwrites the local row with the processor's
// canonical state for a subscription.
func (s *Service) upsertFromProcessor(ctx context.Context, userID int, sub *stripe.Subscription) error {
	customerID := ""
	if sub.Customer != nil {
		customerID = sub.Customer.ID
	}

	fields := subscriptionFields{
		Plan:                 s.planFromProcessor(sub),
		Status:               statusFromProcessor(sub.Status),
		StripeSubscriptionID: sub.ID,
		StripeCustomerID:     customerID,
		CancelAtPeriodEnd:    sub.CancelAtPeriodEnd,
	}
	if sub.CurrentPeriodStart > 0 {
		fields.PeriodStart = time.Unix(sub.CurrentPeriodStart, 0)
	}
	if sub.CurrentPeriodEnd > 0 {
		fields.PeriodEnd = time.Unix(sub.CurrentPeriodEnd, 0)
	}

	_, err := s.upsertSubscription(ctx, userID, fields)
	if err != nil {
		return err
	}

	log.Printf("🔄 Synced subscription %s for user %d (status=%s)", sub.ID, userID, sub.Status)
	return nil
}

// planFromProcessor derives the plan type from a processor
// subscription: its metadata when our checkout stamped it, otherwise
// the price on its first line item.
func (s *Service) planFromProcessor(sub *stripe.Subscription) PlanType {
	if planStr, ok := sub.Metadata[metaPlanType]; ok {
		if plan, err := ParsePlanType(planStr); err == nil {
			return plan
		}
	}
	if sub.Items != nil && len(sub.Items.Data) > 0 && sub.Items.Data[0].Price != nil {
		return s.policy.PlanForPriceID(sub.Items.Data[0].Price.ID)
	}
	return PlanStarter
}

// statusFromProcessor maps the processor's status vocabulary onto ours.
func statusFromProcessor(status stripe.SubscriptionStatus) subscription.Status {
	switch status {
	case stripe.SubscriptionStatusActive:
		return subscription.StatusActive
	case stripe.SubscriptionStatusTrialing:
		return subscription.StatusTrialing
	case stripe.SubscriptionStatusCanceled, stripe.SubscriptionStatusIncompleteExpired:
		return subscription.StatusCanceled
	case stripe.SubscriptionStatusPastDue:
		return subscription.StatusPastDue
	case stripe.SubscriptionStatusUnpaid:
		return subscription.StatusUnpaid
	default:
		return subscription.StatusActive
	}
}

// resolveSubscriptionOwner attributes a processor subscription to a
// local user. Lifecycle events can land before the checkout-completion
// branch has persisted the customer ID, so after the local lookups fail
// it asks the processor which checkout session created the subscription
// and reads the user from that session's metadata. Returns 0 when every
// avenue is exhausted.
func (s *Service) resolveSubscriptionOwner(ctx context.Context, sub *stripe.Subscription) (int, error) {
	// Stored processor subscription ID is the strongest link
	existing, err := s.db.Subscription.Query().
		Where(subscription.StripeSubscriptionIDEQ(sub.ID)).
		Only(ctx)
	if err == nil {
		return existing.UserID, nil
	}
	if !ent.IsNotFound(err) {
		return 0, fmt.Errorf("failed to query subscription by processor id: %w", err)
	}

	if sub.Customer != nil && sub.Customer.ID != "" {
		existing, err = s.db.Subscription.Query().
			Where(subscription.StripeCustomerIDEQ(sub.Customer.ID)).
			Only(ctx)
		if err == nil {
			return existing.UserID, nil
		}
		if !ent.IsNotFound(err) {
			return 0, fmt.Errorf("failed to query subscription by customer id: %w", err)
		}

		u, err := s.db.User.Query().
			Where(user.StripeCustomerIDEQ(sub.Customer.ID)).
			Only(ctx)
		if err == nil {
			return u.ID, nil
		}
		if !ent.IsNotFound(err) {
			return 0, fmt.Errorf("failed to query user by customer id: %w", err)
		}
	}

	return s.recoverOwnerFromSession(ctx, sub.ID)
}

// recoverOwnerFromSession asks the processor for the checkout session
// that created a subscription and pulls the user from its metadata.
func (s *Service) recoverOwnerFromSession(_ context.Context, subscriptionID string) (int, error) {
	params := &stripe.CheckoutSessionListParams{
		Subscription: stripe.String(subscriptionID),
	}
	params.Limit = stripe.Int64(1)

	sessions, err := s.processor.ListCheckoutSessions(params)
	if err != nil {
		log.Printf("⚠️  Session recovery lookup failed for subscription %s: %v", subscriptionID, err)
		return 0, nil
	}
	if len(sessions) == 0 {
		return 0, nil
	}

	metadata, err := ParseSessionMetadata(sessions[0].Metadata)
	if err != nil {
		log.Printf("⚠️  Recovered session %s has no usable metadata: %v", sessions[0].ID, err)
		return 0, nil
	}
	return metadata.UserID, nil
}
