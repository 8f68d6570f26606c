package billing

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"

	"github.com/tripfolio/tripfolio-api/ent/subscription"
	"github.com/tripfolio/tripfolio-api/ent/user"
)

func checkoutCompletedEvent(t *testing.T, eventID, sessionID, subscriptionID string, metadata SessionMetadata) stripe.Event {
	raw, err := json.Marshal(map[string]any{
		"id":           sessionID,
		"subscription": subscriptionID,
		"metadata":     metadata.Encode(),
	})
	require.NoError(t, err)
	return stripe.Event{
		ID:   eventID,
		Type: "checkout.session.completed",
		Data: &stripe.EventData{Raw: raw},
	}
}

func subscriptionEvent(t *testing.T, eventID, eventType, subscriptionID, customerID string, metadata map[string]string) stripe.Event {
	raw, err := json.Marshal(map[string]any{
		"id":       subscriptionID,
		"customer": customerID,
		"status":   "active",
		"metadata": metadata,
	})
	require.NoError(t, err)
	return stripe.Event{
		ID:   eventID,
		Type: stripe.EventType(eventType),
		Data: &stripe.EventData{Raw: raw},
	}
}

func trialingProcessorSub(id, customerID string) *stripe.Subscription {
	now := time.Now()
	return &stripe.Subscription{
		ID:                 id,
		Status:             stripe.SubscriptionStatusTrialing,
		Customer:           &stripe.Customer{ID: customerID},
		CurrentPeriodStart: now.Unix(),
		CurrentPeriodEnd:   now.AddDate(0, 0, TrialDays).Unix(),
		Metadata:           map[string]string{"plan_type": "starter"},
	}
}

func TestHandleWebhookEvent_InvalidSignature(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	fake := newFakeProcessor()
	fake.constructErr = assert.AnError
	service := NewService(client, fake, testConfig())

	_, err := service.HandleWebhookEvent(context.Background(), []byte("payload"), "bad-sig")
	require.ErrorIs(t, err, ErrInvalidSignature)

	count, err := client.ProcessedEvent.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count, "rejected events never reach the ledger")
}

func TestHandleWebhookEvent_UnknownTypeAcked(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	fake := newFakeProcessor()
	fake.event = stripe.Event{
		ID:   "evt_unknown",
		Type: "invoice.finalized",
		Data: &stripe.EventData{Raw: json.RawMessage(`{}`)},
	}
	service := NewService(client, fake, testConfig())

	resp, err := service.HandleWebhookEvent(context.Background(), []byte("payload"), "sig")
	require.NoError(t, err)
	assert.True(t, resp.Received)
}

func TestHandleWebhookEvent_NewSignupProvisioning(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	fake := newFakeProcessor()
	fake.subscriptions["sub_1"] = trialingProcessorSub("sub_1", "cus_1")
	fake.event = checkoutCompletedEvent(t, "evt_1", "cs_1", "sub_1", SessionMetadata{
		PlanType:             PlanStarter,
		SeatCount:            1,
		NeedsAccountCreation: true,
		Signup: &SignupMetadata{
			Email:        "new@example.com",
			PasswordHash: "$2a$10$fakehash",
			Name:         "New Agent",
			AgencyName:   "Wanderlust Travel",
		},
	})
	service := NewService(client, fake, testConfig())

	resp, err := service.HandleWebhookEvent(ctx, []byte("payload"), "sig")
	require.NoError(t, err)
	assert.True(t, resp.Received)

	// User materialized with email pre-verified
	u, err := client.User.Query().Where(user.EmailEQ("new@example.com")).Only(ctx)
	require.NoError(t, err)
	assert.True(t, u.EmailVerified)
	assert.Equal(t, "New Agent", u.Name)
	require.NotNil(t, u.AgencyName)
	assert.Equal(t, "Wanderlust Travel", *u.AgencyName)

	// Subscription synced to the processor's canonical trialing state
	sub, err := client.Subscription.Query().Where(subscription.UserIDEQ(u.ID)).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, subscription.StatusTrialing, sub.Status)
	assert.Equal(t, subscription.PlanTypeStarter, sub.PlanType)
	assert.Equal(t, "sub_1", sub.StripeSubscriptionID)
	assert.Equal(t, "cus_1", sub.StripeCustomerID)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, TrialDays), sub.CurrentPeriodEnd, time.Minute)

	// Resolved user written back to the session. The processor merges
	// metadata key by key, so the write must carry an explicit non-true
	// value for the creation flag rather than just omitting it.
	written := fake.metadataWrites["cs_1"]
	require.NotNil(t, written)
	assert.NotEmpty(t, written["user_id"])
	assert.Equal(t, "false", written["needs_account_creation"])

	// Merge the write onto the original metadata the way the processor
	// does and confirm the session no longer requests provisioning
	merged := map[string]string{"needs_account_creation": "true"}
	for k, v := range written {
		merged[k] = v
	}
	reparsed, err := ParseSessionMetadata(merged)
	require.NoError(t, err)
	assert.False(t, reparsed.NeedsAccountCreation)
	assert.Equal(t, u.ID, reparsed.UserID)

	// Ledgered exactly once
	count, err := client.ProcessedEvent.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestHandleWebhookEvent_Idempotency(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	fake := newFakeProcessor()
	fake.subscriptions["sub_1"] = trialingProcessorSub("sub_1", "cus_1")
	fake.event = checkoutCompletedEvent(t, "evt_1", "cs_1", "sub_1", SessionMetadata{
		PlanType:             PlanStarter,
		SeatCount:            1,
		NeedsAccountCreation: true,
		Signup: &SignupMetadata{
			Email:        "replay@example.com",
			PasswordHash: "$2a$10$fakehash",
			Name:         "Replay Agent",
		},
	})
	service := NewService(client, fake, testConfig())

	for i := 0; i < 3; i++ {
		resp, err := service.HandleWebhookEvent(ctx, []byte("payload"), "sig")
		require.NoError(t, err)
		assert.True(t, resp.Received)
	}

	users, err := client.User.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, users, "replays must not create duplicate users")

	subs, err := client.Subscription.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, subs, "replays must not create duplicate subscriptions")

	events, err := client.ProcessedEvent.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, events, "at most one ledger row per event")
}

func TestHandleWebhookEvent_RecordsOutcomeMetrics(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	fake := newFakeProcessor()
	fake.event = stripe.Event{
		ID:   "evt_counted",
		Type: "invoice.finalized",
		Data: &stripe.EventData{Raw: json.RawMessage(`{}`)},
	}
	service := NewService(client, fake, testConfig())
	recorder := &fakeMetrics{}
	service.SetMetrics(recorder)

	_, err := service.HandleWebhookEvent(ctx, []byte("payload"), "sig")
	require.NoError(t, err)
	_, err = service.HandleWebhookEvent(ctx, []byte("payload"), "sig")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"invoice.finalized:processed",
		"invoice.finalized:duplicate",
	}, recorder.webhookOutcomes)
}

func TestHandleWebhookEvent_TrialConversion(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	u := createTestUser(t, client, "convert@example.com")

	priorEnd := time.Now().Add(2 * 24 * time.Hour)
	_, err := client.Subscription.Create().
		SetUserID(u.ID).
		SetPlanType(subscription.PlanTypeStarter).
		SetStatus(subscription.StatusTrialing).
		SetStripeCustomerID("cus_convert").
		SetCurrentPeriodEnd(priorEnd).
		Save(ctx)
	require.NoError(t, err)

	now := time.Now()
	fake := newFakeProcessor()
	fake.subscriptions["sub_paid"] = &stripe.Subscription{
		ID:                 "sub_paid",
		Status:             stripe.SubscriptionStatusActive,
		Customer:           &stripe.Customer{ID: "cus_convert"},
		CurrentPeriodStart: now.Unix(),
		CurrentPeriodEnd:   now.AddDate(0, 1, 0).Unix(),
		Metadata:           map[string]string{"plan_type": "pro"},
	}
	fake.event = checkoutCompletedEvent(t, "evt_convert", "cs_convert", "sub_paid", SessionMetadata{
		PlanType:        PlanPro,
		SeatCount:       1,
		UserID:          u.ID,
		TrialConversion: true,
		PriorPeriodEnd:  priorEnd,
	})
	service := NewService(client, fake, testConfig())

	_, err = service.HandleWebhookEvent(ctx, []byte("payload"), "sig")
	require.NoError(t, err)

	sub, err := client.Subscription.Query().Where(subscription.UserIDEQ(u.ID)).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, subscription.StatusActive, sub.Status, "processor status overwrites trialing")
	assert.Equal(t, subscription.PlanTypePro, sub.PlanType)
	assert.Equal(t, "sub_paid", sub.StripeSubscriptionID)
	assert.WithinDuration(t, now.AddDate(0, 1, 0), sub.CurrentPeriodEnd, time.Minute)
}

func TestHandleWebhookEvent_SubscriptionCreatedRace(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	u := createTestUser(t, client, "race@example.com")

	// Lifecycle event arrives before the checkout branch stored any
	// processor ids; attribution must fall back to the session lookup.
	fake := newFakeProcessor()
	fake.listedSessions = []*stripe.CheckoutSession{
		{
			ID:       "cs_race",
			Metadata: SessionMetadata{PlanType: PlanPro, SeatCount: 1, UserID: u.ID}.Encode(),
		},
	}
	fake.event = subscriptionEvent(t, "evt_race", "customer.subscription.created", "sub_race", "cus_race", map[string]string{"plan_type": "pro"})
	service := NewService(client, fake, testConfig())

	_, err := service.HandleWebhookEvent(ctx, []byte("payload"), "sig")
	require.NoError(t, err)

	assert.True(t, fake.called("ListCheckoutSessions"))

	sub, err := client.Subscription.Query().Where(subscription.UserIDEQ(u.ID)).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "sub_race", sub.StripeSubscriptionID)
	assert.Equal(t, subscription.PlanTypePro, sub.PlanType)
	assert.Equal(t, subscription.StatusActive, sub.Status)
}

func TestHandleWebhookEvent_UnattributableCreatedDropped(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	fake := newFakeProcessor()
	fake.event = subscriptionEvent(t, "evt_orphan", "customer.subscription.created", "sub_orphan", "cus_orphan", nil)
	service := NewService(client, fake, testConfig())

	resp, err := service.HandleWebhookEvent(ctx, []byte("payload"), "sig")
	require.NoError(t, err, "unattributable events are dropped, not retried")
	assert.True(t, resp.Received)

	subs, err := client.Subscription.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, subs)

	// Still ledgered so the processor stops redelivering
	events, err := client.ProcessedEvent.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, events)
}

func TestHandleWebhookEvent_SubscriptionUpdated(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	u := createTestUser(t, client, "update@example.com")
	_, err := client.Subscription.Create().
		SetUserID(u.ID).
		SetPlanType(subscription.PlanTypePro).
		SetStatus(subscription.StatusActive).
		SetStripeSubscriptionID("sub_upd").
		SetStripeCustomerID("cus_upd").
		Save(ctx)
	require.NoError(t, err)

	raw, err := json.Marshal(map[string]any{
		"id":                   "sub_upd",
		"customer":             "cus_upd",
		"status":               "past_due",
		"cancel_at_period_end": true,
		"metadata":             map[string]string{"plan_type": "pro"},
	})
	require.NoError(t, err)

	fake := newFakeProcessor()
	fake.event = stripe.Event{
		ID:   "evt_upd",
		Type: "customer.subscription.updated",
		Data: &stripe.EventData{Raw: raw},
	}
	service := NewService(client, fake, testConfig())

	_, err = service.HandleWebhookEvent(ctx, []byte("payload"), "sig")
	require.NoError(t, err)

	sub, err := client.Subscription.Query().Where(subscription.UserIDEQ(u.ID)).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, subscription.StatusPastDue, sub.Status)
	assert.True(t, sub.CancelAtPeriodEnd)
}

func TestHandleWebhookEvent_SubscriptionDeleted(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	u := createTestUser(t, client, "cancel@example.com")
	_, err := client.Subscription.Create().
		SetUserID(u.ID).
		SetPlanType(subscription.PlanTypeAgency).
		SetStatus(subscription.StatusActive).
		SetStripeSubscriptionID("sub_del").
		Save(ctx)
	require.NoError(t, err)

	raw, err := json.Marshal(map[string]any{
		"id":       "sub_del",
		"customer": "cus_del",
		"status":   "canceled",
		"metadata": map[string]string{"plan_type": "agency"},
	})
	require.NoError(t, err)

	fake := newFakeProcessor()
	fake.event = stripe.Event{
		ID:   "evt_del",
		Type: "customer.subscription.deleted",
		Data: &stripe.EventData{Raw: raw},
	}
	service := NewService(client, fake, testConfig())

	_, err = service.HandleWebhookEvent(ctx, []byte("payload"), "sig")
	require.NoError(t, err)

	sub, err := client.Subscription.Query().Where(subscription.UserIDEQ(u.ID)).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, subscription.StatusCanceled, sub.Status, "the row is retired, never deleted")
}

func TestHandleWebhookEvent_TeamLinking(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	u := createTestUser(t, client, "owner@example.com")
	team, err := client.Team.Create().
		SetName("Wanderlust Travel").
		SetOwnerID(u.ID).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Subscription.Create().
		SetUserID(u.ID).
		SetPlanType(subscription.PlanTypeAgency).
		SetStatus(subscription.StatusActive).
		SetStripeSubscriptionID("sub_team").
		SetStripeCustomerID("cus_team").
		Save(ctx)
	require.NoError(t, err)

	fake := newFakeProcessor()
	fake.event = subscriptionEvent(t, "evt_team", "customer.subscription.updated", "sub_team", "cus_team", map[string]string{"plan_type": "agency"})
	service := NewService(client, fake, testConfig())

	_, err = service.HandleWebhookEvent(ctx, []byte("payload"), "sig")
	require.NoError(t, err)

	// Both sides of the linkage converge
	sub, err := client.Subscription.Query().Where(subscription.UserIDEQ(u.ID)).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, team.ID, sub.TeamID)

	linkedTeam, err := client.Team.Get(ctx, team.ID)
	require.NoError(t, err)
	assert.Equal(t, sub.ID, linkedTeam.SubscriptionID)
}
