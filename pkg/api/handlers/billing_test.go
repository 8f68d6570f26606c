package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stripe/stripe-go/v76"

	"github.com/tripfolio/tripfolio-api/ent/enttest"
	"github.com/tripfolio/tripfolio-api/pkg/billing"
	"github.com/tripfolio/tripfolio-api/pkg/models"
)

// stubProcessor answers just enough of the processor surface for
// handler-level tests; billing service tests cover the full flows.
type stubProcessor struct {
	session      *stripe.CheckoutSession
	event        stripe.Event
	constructErr error
}

func (p *stubProcessor) CreateCustomer(params *stripe.CustomerParams) (*stripe.Customer, error) {
	return &stripe.Customer{ID: "cus_stub"}, nil
}

func (p *stubProcessor) UpdateCustomer(id string, params *stripe.CustomerParams) (*stripe.Customer, error) {
	return &stripe.Customer{ID: id}, nil
}

func (p *stubProcessor) CreateCheckoutSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return p.session, nil
}

func (p *stubProcessor) GetCheckoutSession(id string, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	if p.session == nil {
		return nil, errors.New("no such session")
	}
	return p.session, nil
}

func (p *stubProcessor) ListCheckoutSessions(params *stripe.CheckoutSessionListParams) ([]*stripe.CheckoutSession, error) {
	return nil, nil
}

func (p *stubProcessor) UpdateCheckoutSessionMetadata(id string, metadata map[string]string) (*stripe.CheckoutSession, error) {
	return p.session, nil
}

func (p *stubProcessor) GetSubscription(id string, params *stripe.SubscriptionParams) (*stripe.Subscription, error) {
	return nil, errors.New("no such subscription")
}

func (p *stubProcessor) UpdateSubscription(id string, params *stripe.SubscriptionParams) (*stripe.Subscription, error) {
	return nil, errors.New("no such subscription")
}

func (p *stubProcessor) ConstructWebhookEvent(payload []byte, signature string) (stripe.Event, error) {
	return p.event, p.constructErr
}

func setupBillingTest(t *testing.T, processor billing.ProcessorClient) *BillingHandler {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })

	service := billing.NewService(client, processor, &billing.Config{
		PriceStarter: "price_starter",
		PricePro:     "price_pro",
		PriceAgency:  "price_agency",
		SuccessURL:   "https://app.tripfolio.io/welcome",
		CancelURL:    "https://tripfolio.io/pricing",
		BaseURL:      "https://tripfolio.io",
	})
	return NewBillingHandler(service)
}

func TestBillingHandler_CreateCheckoutSession(t *testing.T) {
	t.Run("enterprise_rejected", func(t *testing.T) {
		handler := setupBillingTest(t, &stubProcessor{})

		body := `{"planType":"enterprise","signupData":{"email":"big@agency.com","password":"supersecret","name":"Big Agency"}}`
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout-session", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		err := handler.CreateCheckoutSession(e.NewContext(req, rec))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp models.CheckoutResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Contains(t, resp.Error, "sales")
	})

	t.Run("free_plan_short_circuits", func(t *testing.T) {
		handler := setupBillingTest(t, &stubProcessor{})

		body := `{"planType":"free"}`
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout-session", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		err := handler.CreateCheckoutSession(e.NewContext(req, rec))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp models.CheckoutResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.True(t, resp.FreePlan)
	})

	t.Run("signup_checkout_returns_session_url", func(t *testing.T) {
		handler := setupBillingTest(t, &stubProcessor{
			session: &stripe.CheckoutSession{ID: "cs_123", URL: "https://checkout.stripe.com/pay/cs_123"},
		})

		body := `{"planType":"starter","signupData":{"email":"new@agency.com","password":"supersecret","name":"New Advisor"}}`
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout-session", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		err := handler.CreateCheckoutSession(e.NewContext(req, rec))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp models.CheckoutResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "cs_123", resp.SessionID)
		assert.Equal(t, "https://checkout.stripe.com/pay/cs_123", resp.URL)
	})
}

func TestBillingHandler_HandleWebhook(t *testing.T) {
	t.Run("invalid_signature_400", func(t *testing.T) {
		handler := setupBillingTest(t, &stubProcessor{constructErr: errors.New("bad signature")})

		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/webhook/stripe", strings.NewReader(`{}`))
		req.Header.Set("Stripe-Signature", "t=1,v1=bogus")
		rec := httptest.NewRecorder()

		err := handler.HandleWebhook(e.NewContext(req, rec))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp models.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "invalid_signature", resp.Error)
	})

	t.Run("unknown_event_acked", func(t *testing.T) {
		handler := setupBillingTest(t, &stubProcessor{
			event: stripe.Event{ID: "evt_1", Type: "invoice.finalized"},
		})

		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/webhook/stripe", strings.NewReader(`{}`))
		req.Header.Set("Stripe-Signature", "t=1,v1=valid")
		rec := httptest.NewRecorder()

		err := handler.HandleWebhook(e.NewContext(req, rec))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp models.WebhookResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Received)
	})
}

func TestBillingHandler_GetPricing(t *testing.T) {
	handler := setupBillingTest(t, &stubProcessor{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/pricing", nil)
	rec := httptest.NewRecorder()

	err := handler.GetPricing(e.NewContext(req, rec))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.PricingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Tiers, 5)
	assert.Equal(t, "free", resp.Tiers[0].Name)
	assert.Equal(t, "agency", resp.Tiers[3].Name)
	assert.Equal(t, 10, resp.Tiers[3].MaxSeats)
}
