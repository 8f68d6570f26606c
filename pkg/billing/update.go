package billing

import (
	"context"
	"fmt"
	"log"

	"github.com/stripe/stripe-go/v76"

	"github.com/tripfolio/tripfolio-api/ent"
	"github.com/tripfolio/tripfolio-api/ent/subscription"
	"github.com/tripfolio/tripfolio-api/pkg/models"
)

// UpdateSubscriptionPlan is the synchronous plan change path: the
// processor is mutated first, then the local row. Because no
// transaction spans the two systems, the response reports processor and
// local outcomes separately; when they disagree the caller gets
// stripeSuccess=true with success=false and a diagnostic listing, and
// the next webhook reconciles the drift.
func (s *Service) UpdateSubscriptionPlan(ctx context.Context, req *models.UpdateSubscriptionRequest) (*models.UpdateSubscriptionResponse, error) {
	sub, err := s.processor.GetSubscription(req.SubscriptionID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch subscription %s: %w", req.SubscriptionID, err)
	}
	if sub.Items == nil || len(sub.Items.Data) == 0 {
		return nil, fmt.Errorf("subscription %s has no line items", req.SubscriptionID)
	}
	itemID := sub.Items.Data[0].ID

	plan := s.policy.PlanForPriceID(req.NewPriceID)

	params := &stripe.SubscriptionParams{
		Items: []*stripe.SubscriptionItemsParams{
			{
				ID:    stripe.String(itemID),
				Price: stripe.String(req.NewPriceID),
			},
		},
		ProrationBehavior: stripe.String("create_prorations"),
		// Stamp the plan so later webhook events carry it
		Metadata: map[string]string{metaPlanType: string(plan)},
	}
	updated, err := s.processor.UpdateSubscription(req.SubscriptionID, params)
	if err != nil {
		return nil, fmt.Errorf("failed to update subscription %s: %w", req.SubscriptionID, err)
	}

	local, err := s.db.Subscription.Query().
		Where(subscription.StripeSubscriptionIDEQ(req.SubscriptionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			log.Printf("❌ Processor subscription %s updated but no local record matches", req.SubscriptionID)
			return &models.UpdateSubscriptionResponse{
				Success:            false,
				StripeSuccess:      true,
				Error:              "subscription updated with the payment processor but no matching local record was found",
				KnownSubscriptions: s.listKnownSubscriptions(ctx),
			}, nil
		}
		return &models.UpdateSubscriptionResponse{
			Success:       false,
			StripeSuccess: true,
			Error:         fmt.Sprintf("failed to look up local subscription: %v", err),
		}, nil
	}

	// Upsert by user_id, not by processor id, so a stale processor id
	// on another row can never be clobbered
	if err := s.upsertFromProcessor(ctx, local.UserID, updated); err != nil {
		log.Printf("❌ Local write failed after processor update for subscription %s: %v", req.SubscriptionID, err)
		return &models.UpdateSubscriptionResponse{
			Success:       false,
			StripeSuccess: true,
			Error:         fmt.Sprintf("payment processor updated but local bookkeeping failed: %v", err),
		}, nil
	}

	if err := s.linkTeamSubscription(ctx, local.UserID, updated.ID); err != nil {
		log.Printf("⚠️  Team link skipped after plan change for user %d: %v", local.UserID, err)
	}

	if s.metrics != nil {
		s.metrics.RecordPlanChange(string(plan))
	}

	log.Printf("✅ Subscription %s moved to %s plan", req.SubscriptionID, plan)
	return &models.UpdateSubscriptionResponse{
		Success:       true,
		StripeSuccess: true,
		PlanType:      string(plan),
	}, nil
}

// listKnownSubscriptions produces the support-triage listing attached
// to drift responses.
func (s *Service) listKnownSubscriptions(ctx context.Context) []models.SubscriptionDiagnostic {
	rows, err := s.db.Subscription.Query().
		Order(ent.Desc(subscription.FieldUpdatedAt)).
		Limit(20).
		All(ctx)
	if err != nil {
		log.Printf("⚠️  Failed to list subscriptions for diagnostics: %v", err)
		return nil
	}

	diagnostics := make([]models.SubscriptionDiagnostic, 0, len(rows))
	for _, row := range rows {
		diagnostics = append(diagnostics, models.SubscriptionDiagnostic{
			ID:                   row.ID,
			UserID:               row.UserID,
			PlanType:             string(row.PlanType),
			Status:               string(row.Status),
			StripeSubscriptionID: row.StripeSubscriptionID,
		})
	}
	return diagnostics
}
