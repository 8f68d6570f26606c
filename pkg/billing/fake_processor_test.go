package billing

import (
	"fmt"

	"github.com/stripe/stripe-go/v76"
)

// fakeProcessor is an in-memory ProcessorClient for tests. It records
// every call so tests can assert which processor interactions happened.
type fakeProcessor struct {
	calls []string

	event        stripe.Event
	constructErr error

	createdSession   *stripe.CheckoutSession
	createSessErr    error
	createdParams    []*stripe.CheckoutSessionParams
	retrievedSess    *stripe.CheckoutSession
	listedSessions   []*stripe.CheckoutSession
	metadataWrites   map[string]map[string]string
	metadataWriteErr error

	subscriptions map[string]*stripe.Subscription
	getSubErr     error
	updatedSubs   map[string]*stripe.SubscriptionParams
	updateSubErr  error

	createdCustomers []*stripe.CustomerParams
	updatedCustomers map[string]*stripe.CustomerParams
	updateCustErr    error
}

func newFakeProcessor() *fakeProcessor {
	return &fakeProcessor{
		metadataWrites:   make(map[string]map[string]string),
		subscriptions:    make(map[string]*stripe.Subscription),
		updatedSubs:      make(map[string]*stripe.SubscriptionParams),
		updatedCustomers: make(map[string]*stripe.CustomerParams),
	}
}

func (f *fakeProcessor) record(call string) {
	f.calls = append(f.calls, call)
}

func (f *fakeProcessor) called(call string) bool {
	for _, c := range f.calls {
		if c == call {
			return true
		}
	}
	return false
}

func (f *fakeProcessor) CreateCustomer(params *stripe.CustomerParams) (*stripe.Customer, error) {
	f.record("CreateCustomer")
	f.createdCustomers = append(f.createdCustomers, params)
	return &stripe.Customer{ID: "cus_fake"}, nil
}

func (f *fakeProcessor) UpdateCustomer(id string, params *stripe.CustomerParams) (*stripe.Customer, error) {
	f.record("UpdateCustomer")
	if f.updateCustErr != nil {
		return nil, f.updateCustErr
	}
	f.updatedCustomers[id] = params
	return &stripe.Customer{ID: id}, nil
}

func (f *fakeProcessor) CreateCheckoutSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	f.record("CreateCheckoutSession")
	if f.createSessErr != nil {
		return nil, f.createSessErr
	}
	f.createdParams = append(f.createdParams, params)
	if f.createdSession != nil {
		return f.createdSession, nil
	}
	return &stripe.CheckoutSession{ID: "cs_fake", URL: "https://checkout.example.com/cs_fake"}, nil
}

func (f *fakeProcessor) GetCheckoutSession(id string, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	f.record("GetCheckoutSession")
	if f.retrievedSess != nil {
		return f.retrievedSess, nil
	}
	return nil, fmt.Errorf("no such session: %s", id)
}

func (f *fakeProcessor) ListCheckoutSessions(params *stripe.CheckoutSessionListParams) ([]*stripe.CheckoutSession, error) {
	f.record("ListCheckoutSessions")
	return f.listedSessions, nil
}

func (f *fakeProcessor) UpdateCheckoutSessionMetadata(id string, metadata map[string]string) (*stripe.CheckoutSession, error) {
	f.record("UpdateCheckoutSessionMetadata")
	if f.metadataWriteErr != nil {
		return nil, f.metadataWriteErr
	}
	f.metadataWrites[id] = metadata
	return &stripe.CheckoutSession{ID: id, Metadata: metadata}, nil
}

func (f *fakeProcessor) GetSubscription(id string, params *stripe.SubscriptionParams) (*stripe.Subscription, error) {
	f.record("GetSubscription")
	if f.getSubErr != nil {
		return nil, f.getSubErr
	}
	if sub, ok := f.subscriptions[id]; ok {
		return sub, nil
	}
	return nil, fmt.Errorf("no such subscription: %s", id)
}

// UpdateSubscription mimics Stripe by returning the subscription with
// the requested changes applied.
func (f *fakeProcessor) UpdateSubscription(id string, params *stripe.SubscriptionParams) (*stripe.Subscription, error) {
	f.record("UpdateSubscription")
	if f.updateSubErr != nil {
		return nil, f.updateSubErr
	}
	f.updatedSubs[id] = params

	sub, ok := f.subscriptions[id]
	if !ok {
		sub = &stripe.Subscription{ID: id}
	}
	if params.Metadata != nil {
		sub.Metadata = params.Metadata
	}
	if len(params.Items) > 0 && params.Items[0].Price != nil &&
		sub.Items != nil && len(sub.Items.Data) > 0 {
		sub.Items.Data[0].Price = &stripe.Price{ID: *params.Items[0].Price}
	}
	return sub, nil
}

func (f *fakeProcessor) ConstructWebhookEvent(payload []byte, signature string) (stripe.Event, error) {
	f.record("ConstructWebhookEvent")
	if f.constructErr != nil {
		return stripe.Event{}, f.constructErr
	}
	return f.event, nil
}

// fakeMetrics captures business counter increments for assertions.
type fakeMetrics struct {
	checkoutPlans   []string
	webhookOutcomes []string
	planChanges     []string
}

func (f *fakeMetrics) RecordCheckoutSessionCreated(plan string) {
	f.checkoutPlans = append(f.checkoutPlans, plan)
}

func (f *fakeMetrics) RecordWebhookEvent(eventType, outcome string) {
	f.webhookOutcomes = append(f.webhookOutcomes, eventType+":"+outcome)
}

func (f *fakeMetrics) RecordPlanChange(plan string) {
	f.planChanges = append(f.planChanges, plan)
}
