package billing

import (
	"net/http"

	"github.com/stripe/stripe-go/v76"
	checkoutsession "github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/customer"
	stripesubscription "github.com/stripe/stripe-go/v76/subscription"
	"github.com/stripe/stripe-go/v76/webhook"
)

// ProcessorClient abstracts the payment processor. The concrete
// implementation talks to Stripe; tests substitute a fake so billing
// flows can run without network access.
type ProcessorClient interface {
	CreateCustomer(params *stripe.CustomerParams) (*stripe.Customer, error)
	UpdateCustomer(id string, params *stripe.CustomerParams) (*stripe.Customer, error)
	CreateCheckoutSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	GetCheckoutSession(id string, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	ListCheckoutSessions(params *stripe.CheckoutSessionListParams) ([]*stripe.CheckoutSession, error)
	UpdateCheckoutSessionMetadata(id string, metadata map[string]string) (*stripe.CheckoutSession, error)
	GetSubscription(id string, params *stripe.SubscriptionParams) (*stripe.Subscription, error)
	UpdateSubscription(id string, params *stripe.SubscriptionParams) (*stripe.Subscription, error)
	ConstructWebhookEvent(payload []byte, signature string) (stripe.Event, error)
}

// stripeProcessor is the Stripe-backed ProcessorClient.
type stripeProcessor struct {
	customers     *customer.Client
	sessions      *checkoutsession.Client
	subscriptions *stripesubscription.Client
	backend       stripe.Backend
	apiKey        string
	webhookSecret string
}

// NewStripeProcessor creates a ProcessorClient backed by the Stripe API.
func NewStripeProcessor(secretKey, webhookSecret string) ProcessorClient {
	backend := stripe.GetBackend(stripe.APIBackend)
	return &stripeProcessor{
		customers:     &customer.Client{B: backend, Key: secretKey},
		sessions:      &checkoutsession.Client{B: backend, Key: secretKey},
		subscriptions: &stripesubscription.Client{B: backend, Key: secretKey},
		backend:       backend,
		apiKey:        secretKey,
		webhookSecret: webhookSecret,
	}
}

func (p *stripeProcessor) CreateCustomer(params *stripe.CustomerParams) (*stripe.Customer, error) {
	return p.customers.New(params)
}

func (p *stripeProcessor) UpdateCustomer(id string, params *stripe.CustomerParams) (*stripe.Customer, error) {
	return p.customers.Update(id, params)
}

func (p *stripeProcessor) CreateCheckoutSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return p.sessions.New(params)
}

func (p *stripeProcessor) GetCheckoutSession(id string, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return p.sessions.Get(id, params)
}

func (p *stripeProcessor) ListCheckoutSessions(params *stripe.CheckoutSessionListParams) ([]*stripe.CheckoutSession, error) {
	iter := p.sessions.List(params)
	var sessions []*stripe.CheckoutSession
	for iter.Next() {
		sessions = append(sessions, iter.CheckoutSession())
	}
	return sessions, iter.Err()
}

// UpdateCheckoutSessionMetadata posts metadata directly to the session
// endpoint; the v76 client has no dedicated update wrapper for it.
func (p *stripeProcessor) UpdateCheckoutSessionMetadata(id string, metadata map[string]string) (*stripe.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Metadata = metadata

	sess := &stripe.CheckoutSession{}
	err := p.backend.Call(http.MethodPost, "/v1/checkout/sessions/"+id, p.apiKey, params, sess)
	return sess, err
}

func (p *stripeProcessor) GetSubscription(id string, params *stripe.SubscriptionParams) (*stripe.Subscription, error) {
	return p.subscriptions.Get(id, params)
}

func (p *stripeProcessor) UpdateSubscription(id string, params *stripe.SubscriptionParams) (*stripe.Subscription, error) {
	return p.subscriptions.Update(id, params)
}

func (p *stripeProcessor) ConstructWebhookEvent(payload []byte, signature string) (stripe.Event, error) {
	return webhook.ConstructEvent(payload, signature, p.webhookSecret)
}
