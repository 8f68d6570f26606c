package models

// SignupData carries a new signup's profile through checkout metadata.
// The account is only materialized after payment succeeds.
type SignupData struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	Name       string `json:"name" validate:"required,min=2"`
	Phone      string `json:"phone,omitempty"`
	AgencyName string `json:"agency_name,omitempty"`
	LogoURL    string `json:"logo_url,omitempty" validate:"omitempty,url"`
}

// CheckoutRequest represents a request to create a checkout session.
// Exactly one of UserID and SignupData must be set.
type CheckoutRequest struct {
	PlanType   string      `json:"planType" validate:"required,oneof=free starter pro agency enterprise"`
	UserID     *int        `json:"userId,omitempty"`
	SignupData *SignupData `json:"signupData,omitempty"`
	// SeatCount is deliberately untyped: clients send numbers or strings
	// and the plan policy clamps whatever arrives.
	SeatCount  any    `json:"seatCount,omitempty"`
	SuccessURL string `json:"successUrl,omitempty" validate:"omitempty,url"`
	CancelURL  string `json:"cancelUrl,omitempty" validate:"omitempty,url"`
}

// CheckoutResponse represents a checkout session response
type CheckoutResponse struct {
	Success   bool   `json:"success"`
	SessionID string `json:"sessionId,omitempty"`
	URL       string `json:"url,omitempty"`
	// FreePlan signals that no payment flow is needed and the caller
	// should mark the plan active directly.
	FreePlan bool   `json:"freePlan,omitempty"`
	Error    string `json:"error,omitempty"`
}

// CheckoutSessionInfo is the client-safe projection of a checkout session
type CheckoutSessionInfo struct {
	CustomerEmail      string `json:"customer_email"`
	PlanType           string `json:"plan_type"`
	AmountTotal        int64  `json:"amount_total"`
	Currency           string `json:"currency"`
	SubscriptionStatus string `json:"subscription_status,omitempty"`
}

// UpdateSubscriptionRequest represents a manual plan change request
type UpdateSubscriptionRequest struct {
	SubscriptionID string `json:"subscriptionId" validate:"required"`
	NewPriceID     string `json:"newPriceId" validate:"required"`
}

// SubscriptionDiagnostic is a support-triage listing of a local subscription row
type SubscriptionDiagnostic struct {
	ID                   int    `json:"id"`
	UserID               int    `json:"user_id"`
	PlanType             string `json:"plan_type"`
	Status               string `json:"status"`
	StripeSubscriptionID string `json:"stripe_subscription_id,omitempty"`
}

// UpdateSubscriptionResponse represents the outcome of a manual plan change.
// StripeSuccess is reported separately from Success because the processor
// update can land while the local write fails; callers must be able to
// tell "payment state changed, bookkeeping stale" apart from a plain failure.
type UpdateSubscriptionResponse struct {
	Success            bool                     `json:"success"`
	StripeSuccess      bool                     `json:"stripeSuccess"`
	PlanType           string                   `json:"planType,omitempty"`
	Error              string                   `json:"error,omitempty"`
	KnownSubscriptions []SubscriptionDiagnostic `json:"knownSubscriptions,omitempty"`
}

// WebhookResponse acknowledges a webhook delivery
type WebhookResponse struct {
	Received bool `json:"received"`
}

// PricingTier represents a plan in the public catalog
type PricingTier struct {
	Name        string   `json:"name"`
	Price       int      `json:"price"`
	MaxSeats    int      `json:"max_seats"`
	TrialDays   int      `json:"trial_days,omitempty"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
}

// PricingResponse represents pricing information
type PricingResponse struct {
	Tiers []PricingTier `json:"tiers"`
}
