package billing

import (
	"fmt"
	"strconv"
	"strings"
)

// PlanType identifies a subscription plan.
type PlanType string

const (
	PlanFree       PlanType = "free"
	PlanStarter    PlanType = "starter"
	PlanPro        PlanType = "pro"
	PlanAgency     PlanType = "agency"
	PlanEnterprise PlanType = "enterprise"
)

const (
	// TrialDays is the trial length for trial-eligible plans.
	TrialDays = 7

	// Agency seat bounds. Larger teams go through sales.
	minAgencySeats = 1
	maxAgencySeats = 10
)

// ParsePlanType validates a plan name and returns its PlanType.
func ParsePlanType(s string) (PlanType, error) {
	switch p := PlanType(strings.ToLower(s)); p {
	case PlanFree, PlanStarter, PlanPro, PlanAgency, PlanEnterprise:
		return p, nil
	default:
		return "", fmt.Errorf("invalid plan type: %s", s)
	}
}

// IsSelfServe reports whether the plan can be purchased through checkout.
// Enterprise deals go through sales, never through the payment processor.
func (p PlanType) IsSelfServe() bool {
	return p != PlanEnterprise
}

// IsPaid reports whether the plan requires a payment session.
func (p PlanType) IsPaid() bool {
	return p != PlanFree
}

// TrialEligible reports whether the plan starts with a trial period.
// Only starter trials; all other paid plans bill immediately.
func (p PlanType) TrialEligible() bool {
	return p == PlanStarter
}

// NormalizeSeatCount coerces a client-supplied seat count into the
// allowed agency range. Clients send numbers or strings; anything
// unparseable falls back to a single seat.
func NormalizeSeatCount(v any) int {
	seats := minAgencySeats

	switch n := v.(type) {
	case int:
		seats = n
	case int64:
		seats = int(n)
	case float64:
		seats = int(n)
	case string:
		if parsed, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			seats = parsed
		}
	}

	if seats < minAgencySeats {
		seats = minAgencySeats
	}
	if seats > maxAgencySeats {
		seats = maxAgencySeats
	}
	return seats
}

// PlanPolicy resolves prices and plan rules. It is pure and shared by
// the checkout builder and the account provisioner so trial logic
// cannot diverge between the two paths.
type PlanPolicy struct {
	priceStarter string
	pricePro     string
	priceAgency  string
}

// NewPlanPolicy creates a plan policy from the configured price IDs.
func NewPlanPolicy(priceStarter, pricePro, priceAgency string) *PlanPolicy {
	return &PlanPolicy{
		priceStarter: priceStarter,
		pricePro:     pricePro,
		priceAgency:  priceAgency,
	}
}

// PriceIDFor returns the processor price ID for a paid plan.
func (p *PlanPolicy) PriceIDFor(plan PlanType) (string, error) {
	switch plan {
	case PlanStarter:
		return p.priceStarter, nil
	case PlanPro:
		return p.pricePro, nil
	case PlanAgency:
		return p.priceAgency, nil
	default:
		return "", fmt.Errorf("no price configured for plan: %s", plan)
	}
}

// PlanForPriceID maps a processor price ID back to its plan type.
// Unmapped prices fall back to starter rather than failing the event.
func (p *PlanPolicy) PlanForPriceID(priceID string) PlanType {
	switch priceID {
	case p.priceStarter:
		return PlanStarter
	case p.pricePro:
		return PlanPro
	case p.priceAgency:
		return PlanAgency
	default:
		return PlanStarter
	}
}

// SeatsFor returns the line-item quantity for a plan. Only agency
// plans are seat-counted; everything else is a single license.
func (p *PlanPolicy) SeatsFor(plan PlanType, requested any) int {
	if plan != PlanAgency {
		return 1
	}
	return NormalizeSeatCount(requested)
}
