package billing

import (
	"context"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"

	"github.com/tripfolio/tripfolio-api/ent/subscription"
	"github.com/tripfolio/tripfolio-api/pkg/models"
)

func processorSubWithItem(id, customerID, itemID, priceID string, status stripe.SubscriptionStatus) *stripe.Subscription {
	now := time.Now()
	return &stripe.Subscription{
		ID:                 id,
		Status:             status,
		Customer:           &stripe.Customer{ID: customerID},
		CurrentPeriodStart: now.Unix(),
		CurrentPeriodEnd:   now.AddDate(0, 1, 0).Unix(),
		Items: &stripe.SubscriptionItemList{
			Data: []*stripe.SubscriptionItem{
				{ID: itemID, Price: &stripe.Price{ID: priceID}},
			},
		},
	}
}

func TestUpdateSubscriptionPlan_Success(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	u := createTestUser(t, client, "upgrade@example.com")
	_, err := client.Subscription.Create().
		SetUserID(u.ID).
		SetPlanType(subscription.PlanTypeStarter).
		SetStatus(subscription.StatusActive).
		SetStripeSubscriptionID("sub_up").
		SetStripeCustomerID("cus_up").
		Save(ctx)
	require.NoError(t, err)

	fake := newFakeProcessor()
	fake.subscriptions["sub_up"] = processorSubWithItem("sub_up", "cus_up", "si_1", "price_starter", stripe.SubscriptionStatusActive)
	service := NewService(client, fake, testConfig())

	resp, err := service.UpdateSubscriptionPlan(ctx, &models.UpdateSubscriptionRequest{
		SubscriptionID: "sub_up",
		NewPriceID:     "price_pro",
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.True(t, resp.StripeSuccess)
	assert.Equal(t, "pro", resp.PlanType)

	// Proration requested and the line item swapped in place
	params := fake.updatedSubs["sub_up"]
	require.NotNil(t, params)
	require.NotNil(t, params.ProrationBehavior)
	assert.Equal(t, "create_prorations", *params.ProrationBehavior)
	require.Len(t, params.Items, 1)
	assert.Equal(t, "si_1", *params.Items[0].ID)
	assert.Equal(t, "price_pro", *params.Items[0].Price)

	// Plan stamped on processor metadata for later event correlation
	assert.Equal(t, "pro", params.Metadata["plan_type"])

	// Local row follows
	sub, err := client.Subscription.Query().Where(subscription.UserIDEQ(u.ID)).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, subscription.PlanTypePro, sub.PlanType)
}

func TestUpdateSubscriptionPlan_LocalDrift(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	// A different local subscription exists, but not the one updated
	other := createTestUser(t, client, "other@example.com")
	_, err := client.Subscription.Create().
		SetUserID(other.ID).
		SetPlanType(subscription.PlanTypeStarter).
		SetStatus(subscription.StatusActive).
		SetStripeSubscriptionID("sub_other").
		Save(ctx)
	require.NoError(t, err)

	fake := newFakeProcessor()
	fake.subscriptions["sub_ghost"] = processorSubWithItem("sub_ghost", "cus_ghost", "si_g", "price_starter", stripe.SubscriptionStatusActive)
	service := NewService(client, fake, testConfig())

	resp, err := service.UpdateSubscriptionPlan(ctx, &models.UpdateSubscriptionRequest{
		SubscriptionID: "sub_ghost",
		NewPriceID:     "price_agency",
	})
	require.NoError(t, err)

	// The processor update landed but bookkeeping is stale; the caller
	// must see both facts plus a diagnostic listing
	assert.False(t, resp.Success)
	assert.True(t, resp.StripeSuccess)
	assert.NotEmpty(t, resp.Error)
	require.NotEmpty(t, resp.KnownSubscriptions)
	assert.Equal(t, "sub_other", resp.KnownSubscriptions[0].StripeSubscriptionID)

	assert.Contains(t, fake.updatedSubs, "sub_ghost", "processor was updated")
}

func TestUpdateSubscriptionPlan_ProcessorFetchFails(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	fake := newFakeProcessor()
	fake.getSubErr = assert.AnError
	service := NewService(client, fake, testConfig())

	_, err := service.UpdateSubscriptionPlan(context.Background(), &models.UpdateSubscriptionRequest{
		SubscriptionID: "sub_x",
		NewPriceID:     "price_pro",
	})
	require.Error(t, err, "subscription retrieval is a required step")
	assert.Empty(t, fake.updatedSubs)
}
