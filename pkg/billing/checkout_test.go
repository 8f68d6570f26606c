package billing

import (
	"context"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"

	"github.com/tripfolio/tripfolio-api/ent"
	"github.com/tripfolio/tripfolio-api/ent/enttest"
	"github.com/tripfolio/tripfolio-api/ent/subscription"
	"github.com/tripfolio/tripfolio-api/pkg/auth"
	"github.com/tripfolio/tripfolio-api/pkg/models"
)

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	return client, func() { client.Close() }
}

func testConfig() *Config {
	return &Config{
		WebhookSecret: "whsec_test",
		PriceStarter:  "price_starter",
		PricePro:      "price_pro",
		PriceAgency:   "price_agency",
		SuccessURL:    "https://tripfolio.io/welcome",
		CancelURL:     "https://tripfolio.io/pricing",
		BaseURL:       "https://tripfolio.io",
	}
}

func createTestUser(t *testing.T, client *ent.Client, email string) *ent.User {
	u, err := client.User.
		Create().
		SetName("Test User").
		SetEmail(email).
		SetPasswordHash("hashed").
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func intPtr(v int) *int { return &v }

func TestCreateCheckoutSession_Enterprise(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	fake := newFakeProcessor()
	service := NewService(client, fake, testConfig())

	_, err := service.CreateCheckoutSession(context.Background(), &models.CheckoutRequest{
		PlanType:   "enterprise",
		SignupData: &models.SignupData{Email: "big@example.com", Password: "password123", Name: "Big Agency"},
	})

	require.ErrorIs(t, err, ErrEnterpriseContactSales)
	assert.Empty(t, fake.calls, "enterprise must never reach the payment processor")
}

func TestCreateCheckoutSession_FreePlan(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	fake := newFakeProcessor()
	service := NewService(client, fake, testConfig())
	user := createTestUser(t, client, "free@example.com")

	resp, err := service.CreateCheckoutSession(context.Background(), &models.CheckoutRequest{
		PlanType: "free",
		UserID:   intPtr(user.ID),
	})

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.True(t, resp.FreePlan)
	assert.Empty(t, resp.SessionID)
	assert.Empty(t, fake.calls, "free plans need no payment session")
}

func TestCreateCheckoutSession_ExactlyOneOf(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	fake := newFakeProcessor()
	service := NewService(client, fake, testConfig())
	user := createTestUser(t, client, "both@example.com")
	ctx := context.Background()

	t.Run("Failure - Neither userId nor signupData", func(t *testing.T) {
		_, err := service.CreateCheckoutSession(ctx, &models.CheckoutRequest{PlanType: "pro"})
		require.ErrorIs(t, err, ErrInvalidCheckoutRequest)
	})

	t.Run("Failure - Both userId and signupData", func(t *testing.T) {
		_, err := service.CreateCheckoutSession(ctx, &models.CheckoutRequest{
			PlanType:   "pro",
			UserID:     intPtr(user.ID),
			SignupData: &models.SignupData{Email: "x@example.com", Password: "password123", Name: "X"},
		})
		require.ErrorIs(t, err, ErrInvalidCheckoutRequest)
	})
}

func TestCreateCheckoutSession_NewSignup(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	fake := newFakeProcessor()
	service := NewService(client, fake, testConfig())
	recorder := &fakeMetrics{}
	service.SetMetrics(recorder)

	resp, err := service.CreateCheckoutSession(context.Background(), &models.CheckoutRequest{
		PlanType: "starter",
		SignupData: &models.SignupData{
			Email:      "new@example.com",
			Password:   "s3cret-password",
			Name:       "New Agent",
			AgencyName: "Wanderlust Travel",
		},
	})

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, []string{"starter"}, recorder.checkoutPlans)

	require.Len(t, fake.createdParams, 1)
	params := fake.createdParams[0]

	// The account must not exist until payment succeeds
	count, err := client.User.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)

	metadata, err := ParseSessionMetadata(params.Metadata)
	require.NoError(t, err)
	assert.True(t, metadata.NeedsAccountCreation)
	require.NotNil(t, metadata.Signup)
	assert.Equal(t, "new@example.com", metadata.Signup.Email)
	assert.NotEqual(t, "s3cret-password", metadata.Signup.PasswordHash, "password must travel hashed")
	assert.True(t, auth.CheckPassword(metadata.Signup.PasswordHash, "s3cret-password"))

	require.NotNil(t, params.CustomerEmail)
	assert.Equal(t, "new@example.com", *params.CustomerEmail)

	// Starter gets the trial, encoded on the subscription
	require.NotNil(t, params.SubscriptionData)
	require.NotNil(t, params.SubscriptionData.TrialPeriodDays)
	assert.Equal(t, int64(TrialDays), *params.SubscriptionData.TrialPeriodDays)
}

func TestCreateCheckoutSession_ExistingTrialingUser(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	fake := newFakeProcessor()
	service := NewService(client, fake, testConfig())
	ctx := context.Background()

	user := createTestUser(t, client, "trial@example.com")
	periodEnd := time.Now().Add(3 * 24 * time.Hour).Truncate(time.Second)
	_, err := client.Subscription.Create().
		SetUserID(user.ID).
		SetPlanType(subscription.PlanTypeStarter).
		SetStatus(subscription.StatusTrialing).
		SetStripeCustomerID("cus_existing").
		SetCurrentPeriodEnd(periodEnd).
		Save(ctx)
	require.NoError(t, err)

	resp, err := service.CreateCheckoutSession(ctx, &models.CheckoutRequest{
		PlanType: "pro",
		UserID:   intPtr(user.ID),
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)

	require.Len(t, fake.createdParams, 1)
	params := fake.createdParams[0]

	// Existing customer reused, not re-created
	require.NotNil(t, params.Customer)
	assert.Equal(t, "cus_existing", *params.Customer)
	assert.Nil(t, params.CustomerEmail)

	// Customer metadata refreshed opportunistically
	assert.Contains(t, fake.updatedCustomers, "cus_existing")

	metadata, err := ParseSessionMetadata(params.Metadata)
	require.NoError(t, err)
	assert.True(t, metadata.TrialConversion)
	assert.Equal(t, user.ID, metadata.UserID)
	assert.Equal(t, periodEnd.Unix(), metadata.PriorPeriodEnd.Unix())

	// Pro bills immediately, no trial
	require.NotNil(t, params.SubscriptionData)
	assert.Nil(t, params.SubscriptionData.TrialPeriodDays)
}

func TestCreateCheckoutSession_CustomerRefreshFailureIsNonFatal(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	fake := newFakeProcessor()
	fake.updateCustErr = assert.AnError
	service := NewService(client, fake, testConfig())
	ctx := context.Background()

	user := createTestUser(t, client, "refresh@example.com")
	_, err := client.Subscription.Create().
		SetUserID(user.ID).
		SetPlanType(subscription.PlanTypePro).
		SetStatus(subscription.StatusActive).
		SetStripeCustomerID("cus_flaky").
		Save(ctx)
	require.NoError(t, err)

	resp, err := service.CreateCheckoutSession(ctx, &models.CheckoutRequest{
		PlanType: "agency",
		UserID:   intPtr(user.ID),
	})

	require.NoError(t, err, "metadata refresh failures must not block checkout")
	assert.True(t, resp.Success)
}

func TestCreateCheckoutSession_AgencySeatClamp(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	fake := newFakeProcessor()
	service := NewService(client, fake, testConfig())

	resp, err := service.CreateCheckoutSession(context.Background(), &models.CheckoutRequest{
		PlanType:  "agency",
		SeatCount: 25,
		SignupData: &models.SignupData{
			Email:    "agency@example.com",
			Password: "password123",
			Name:     "Agency Owner",
		},
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)

	require.Len(t, fake.createdParams, 1)
	items := fake.createdParams[0].LineItems
	require.Len(t, items, 1)
	require.NotNil(t, items[0].Quantity)
	assert.Equal(t, int64(10), *items[0].Quantity)
}

func TestGetCheckoutSession(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	fake := newFakeProcessor()
	fake.retrievedSess = &stripe.CheckoutSession{
		ID:            "cs_1",
		CustomerEmail: "buyer@example.com",
		AmountTotal:   2900,
		Currency:      stripe.CurrencyUSD,
		Metadata:      map[string]string{"plan_type": "starter"},
		Subscription:  &stripe.Subscription{ID: "sub_1", Status: stripe.SubscriptionStatusTrialing},
	}
	service := NewService(client, fake, testConfig())

	info, err := service.GetCheckoutSession(context.Background(), "cs_1")
	require.NoError(t, err)
	assert.Equal(t, "buyer@example.com", info.CustomerEmail)
	assert.Equal(t, "starter", info.PlanType)
	assert.Equal(t, int64(2900), info.AmountTotal)
	assert.Equal(t, "usd", info.Currency)
	assert.Equal(t, "trialing", info.SubscriptionStatus)
}
