package billing

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/stripe/stripe-go/v76"

	"github.com/tripfolio/tripfolio-api/ent"
	"github.com/tripfolio/tripfolio-api/ent/subscription"
	"github.com/tripfolio/tripfolio-api/pkg/auth"
	"github.com/tripfolio/tripfolio-api/pkg/models"
	"github.com/tripfolio/tripfolio-api/pkg/phone"
)

// ErrEnterpriseContactSales is returned when a client requests
// enterprise through self-serve checkout. Enterprise never reaches the
// payment processor.
var ErrEnterpriseContactSales = errors.New("enterprise plans are handled by sales, contact sales@tripfolio.io")

// ErrInvalidCheckoutRequest marks client input errors on checkout creation.
var ErrInvalidCheckoutRequest = errors.New("invalid checkout request")

// CreateCheckoutSession builds a payment session for a plan purchase.
// Exactly one of req.UserID and req.SignupData must be set: existing
// users check out against their account, new signups carry their whole
// profile through session metadata so no account exists until payment
// succeeds.
func (s *Service) CreateCheckoutSession(ctx context.Context, req *models.CheckoutRequest) (*models.CheckoutResponse, error) {
	plan, err := ParsePlanType(req.PlanType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCheckoutRequest, err)
	}

	if !plan.IsSelfServe() {
		return nil, ErrEnterpriseContactSales
	}

	// Free needs no payment flow; the caller activates the plan directly.
	if !plan.IsPaid() {
		return &models.CheckoutResponse{Success: true, FreePlan: true}, nil
	}

	if (req.UserID == nil) == (req.SignupData == nil) {
		return nil, fmt.Errorf("%w: exactly one of userId and signupData must be provided", ErrInvalidCheckoutRequest)
	}

	seats := s.policy.SeatsFor(plan, req.SeatCount)
	metadata := SessionMetadata{
		PlanType:  plan,
		SeatCount: seats,
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModeSubscription)),
	}

	if req.SignupData != nil {
		if err := s.attachSignupMetadata(&metadata, params, req.SignupData); err != nil {
			return nil, err
		}
	} else {
		if err := s.attachExistingUser(ctx, &metadata, params, *req.UserID); err != nil {
			return nil, err
		}
	}

	priceID, err := s.policy.PriceIDFor(plan)
	if err != nil {
		return nil, err
	}

	params.LineItems = []*stripe.CheckoutSessionLineItemParams{
		{
			Price:    stripe.String(priceID),
			Quantity: stripe.Int64(int64(seats)),
		},
	}
	params.SuccessURL = stripe.String(s.successURL(req.SuccessURL))
	params.CancelURL = stripe.String(s.cancelURL(req.CancelURL))
	params.Metadata = metadata.Encode()

	// Trial terms live on the subscription, not the line item, so the
	// same plan metadata is visible on the resulting subscription.
	if plan.TrialEligible() {
		params.SubscriptionData = &stripe.CheckoutSessionSubscriptionDataParams{
			TrialPeriodDays: stripe.Int64(TrialDays),
			Metadata:        map[string]string{metaPlanType: string(plan)},
		}
	} else {
		params.SubscriptionData = &stripe.CheckoutSessionSubscriptionDataParams{
			Metadata: map[string]string{metaPlanType: string(plan)},
		}
	}

	sess, err := s.processor.CreateCheckoutSession(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	if s.metrics != nil {
		s.metrics.RecordCheckoutSessionCreated(string(plan))
	}

	return &models.CheckoutResponse{
		Success:   true,
		SessionID: sess.ID,
		URL:       sess.URL,
	}, nil
}

// attachSignupMetadata prepares a session for a not-yet-existing user.
// The account must not be created until payment succeeds, so the full
// signup payload rides in the session metadata with the password
// already hashed.
func (s *Service) attachSignupMetadata(metadata *SessionMetadata, params *stripe.CheckoutSessionParams, signup *models.SignupData) error {
	if signup.Email == "" || signup.Password == "" || signup.Name == "" {
		return fmt.Errorf("%w: signup requires email, password and name", ErrInvalidCheckoutRequest)
	}

	hash, err := auth.HashPassword(signup.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	phoneNumber := signup.Phone
	if phoneNumber != "" {
		normalized, err := phone.Normalize(phoneNumber, "US")
		if err != nil {
			// Bad phone numbers don't block a purchase
			log.Printf("⚠️  Dropping unparseable signup phone for %s: %v", signup.Email, err)
			phoneNumber = ""
		} else {
			phoneNumber = normalized
		}
	}

	metadata.NeedsAccountCreation = true
	metadata.Signup = &SignupMetadata{
		Email:        signup.Email,
		PasswordHash: hash,
		Name:         signup.Name,
		Phone:        phoneNumber,
		AgencyName:   signup.AgencyName,
		LogoURL:      signup.LogoURL,
	}
	params.CustomerEmail = stripe.String(signup.Email)
	return nil
}

// attachExistingUser prepares a session for a known user, reusing
// their processor customer when one exists and tagging trial
// conversions so the synchronizer can tell them from fresh trials.
func (s *Service) attachExistingUser(ctx context.Context, metadata *SessionMetadata, params *stripe.CheckoutSessionParams, userID int) error {
	u, err := s.db.User.Get(ctx, userID)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: user %d not found", ErrInvalidCheckoutRequest, userID)
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	metadata.UserID = userID

	sub, err := s.db.Subscription.Query().
		Where(subscription.UserIDEQ(userID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to query subscription: %w", err)
	}

	if sub != nil && sub.StripeCustomerID != "" {
		params.Customer = stripe.String(sub.StripeCustomerID)
		s.refreshCustomerMetadata(sub.StripeCustomerID, userID)
	} else {
		params.CustomerEmail = stripe.String(u.Email)
	}

	if sub != nil && sub.Status == subscription.StatusTrialing {
		metadata.TrialConversion = true
		metadata.PriorPeriodEnd = sub.CurrentPeriodEnd
	}

	return nil
}

// refreshCustomerMetadata opportunistically rewrites the user_id stored
// on the processor customer. Failure is logged, never propagated: the
// checkout must not fail over a metadata refresh.
func (s *Service) refreshCustomerMetadata(customerID string, userID int) {
	params := &stripe.CustomerParams{
		Metadata: map[string]string{
			metaUserID: fmt.Sprintf("%d", userID),
		},
	}
	if _, err := s.processor.UpdateCustomer(customerID, params); err != nil {
		log.Printf("⚠️  Failed to refresh customer %s metadata: %v", customerID, err)
	}
}

// GetCheckoutSession returns a client-safe projection of a checkout
// session for the post-payment landing page.
func (s *Service) GetCheckoutSession(ctx context.Context, sessionID string) (*models.CheckoutSessionInfo, error) {
	params := &stripe.CheckoutSessionParams{}
	params.AddExpand("subscription")

	sess, err := s.processor.GetCheckoutSession(sessionID, params)
	if err != nil {
		return nil, fmt.Errorf("failed to get checkout session: %w", err)
	}

	info := &models.CheckoutSessionInfo{
		CustomerEmail: sess.CustomerEmail,
		PlanType:      sess.Metadata[metaPlanType],
		AmountTotal:   sess.AmountTotal,
		Currency:      string(sess.Currency),
	}
	if info.CustomerEmail == "" && sess.CustomerDetails != nil {
		info.CustomerEmail = sess.CustomerDetails.Email
	}
	if sess.Subscription != nil {
		info.SubscriptionStatus = string(sess.Subscription.Status)
	}
	return info, nil
}

func (s *Service) successURL(override string) string {
	if override != "" {
		return override
	}
	return s.config.SuccessURL
}

func (s *Service) cancelURL(override string) string {
	if override != "" {
		return override
	}
	return s.config.CancelURL
}
