package billing

import (
	"context"
	"fmt"

	"github.com/tripfolio/tripfolio-api/ent"
	"github.com/tripfolio/tripfolio-api/ent/subscription"
	"github.com/tripfolio/tripfolio-api/ent/team"
)

// linkTeamSubscription keeps the mutual reference between a team and
// the subscription granting its entitlements. The subscription is
// located by processor subscription ID when one is known, otherwise by
// the owner's local row. A missing team or subscription is a normal
// condition (the user may not have a team yet); callers log the
// returned error as a warning rather than failing their flow.
func (s *Service) linkTeamSubscription(ctx context.Context, userID int, processorSubID string) error {
	t, err := s.db.Team.Query().
		Where(team.OwnerIDEQ(userID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("user %d owns no team", userID)
		}
		return fmt.Errorf("failed to query team: %w", err)
	}

	var sub *ent.Subscription
	if processorSubID != "" {
		sub, err = s.db.Subscription.Query().
			Where(subscription.StripeSubscriptionIDEQ(processorSubID)).
			Only(ctx)
	} else {
		sub, err = s.db.Subscription.Query().
			Where(subscription.UserIDEQ(userID)).
			Only(ctx)
	}
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("no subscription row to link for user %d", userID)
		}
		return fmt.Errorf("failed to query subscription: %w", err)
	}

	if sub.TeamID != t.ID {
		if _, err := sub.Update().SetTeamID(t.ID).Save(ctx); err != nil {
			return fmt.Errorf("failed to set subscription team: %w", err)
		}
	}
	if t.SubscriptionID != sub.ID {
		if _, err := t.Update().SetSubscriptionID(sub.ID).Save(ctx); err != nil {
			return fmt.Errorf("failed to set team subscription: %w", err)
		}
	}
	return nil
}
