package billing

import (
	"github.com/tripfolio/tripfolio-api/ent"
	"github.com/tripfolio/tripfolio-api/pkg/models"
)

// EmailSender abstracts email sending for billing notifications.
type EmailSender interface {
	SendRawEmail(toEmail, toName, subject, htmlBody, plainTextBody string) error
}

// MetricsRecorder abstracts the business counters billing increments.
// A nil recorder disables recording.
type MetricsRecorder interface {
	RecordCheckoutSessionCreated(plan string)
	RecordWebhookEvent(eventType, outcome string)
	RecordPlanChange(plan string)
}

// Config holds billing configuration
type Config struct {
	WebhookSecret string
	PriceStarter  string
	PricePro      string
	PriceAgency   string
	SuccessURL    string
	CancelURL     string
	BaseURL       string
}

// Service handles billing operations: checkout sessions, webhook
// reconciliation, and manual plan changes. All collaborators are
// injected so tests can substitute fakes.
type Service struct {
	db        *ent.Client
	processor ProcessorClient
	policy    *PlanPolicy
	ledger    *Ledger
	config    *Config
	email     EmailSender
	metrics   MetricsRecorder
}

// NewService creates a new billing service
func NewService(db *ent.Client, processor ProcessorClient, config *Config) *Service {
	return &Service{
		db:        db,
		processor: processor,
		policy:    NewPlanPolicy(config.PriceStarter, config.PricePro, config.PriceAgency),
		ledger:    NewLedger(db),
		config:    config,
	}
}

// SetEmailSender sets the email sender for billing notifications.
func (s *Service) SetEmailSender(e EmailSender) {
	s.email = e
}

// SetMetrics sets the business metrics recorder.
func (s *Service) SetMetrics(m MetricsRecorder) {
	s.metrics = m
}

// GetPricing returns pricing information for all plans
func (s *Service) GetPricing() *models.PricingResponse {
	return &models.PricingResponse{
		Tiers: []models.PricingTier{
			{
				Name:        "free",
				Price:       0,
				MaxSeats:    1,
				Description: "Try the itinerary builder",
				Features: []string{
					"3 itineraries per month",
					"Tripfolio branding on exports",
					"Community support",
				},
			},
			{
				Name:        "starter",
				Price:       29,
				MaxSeats:    1,
				TrialDays:   TrialDays,
				Description: "For independent travel advisors",
				Features: []string{
					"Unlimited itineraries",
					"Custom branding",
					"PDF export",
					"7-day free trial",
				},
			},
			{
				Name:        "pro",
				Price:       79,
				MaxSeats:    1,
				Description: "For established advisors",
				Features: []string{
					"Everything in Starter",
					"Client CRM and timelines",
					"Quote builder",
					"Priority support",
				},
			},
			{
				Name:        "agency",
				Price:       199,
				MaxSeats:    10,
				Description: "For multi-advisor agencies",
				Features: []string{
					"Everything in Pro",
					"Up to 10 team seats",
					"Shared client database",
					"Team roles and permissions",
				},
			},
			{
				Name:        "enterprise",
				Price:       0,
				MaxSeats:    0,
				Description: "Custom plans for large agencies, contact sales",
				Features: []string{
					"Unlimited seats",
					"SLA and dedicated support",
					"Custom integrations",
				},
			},
		},
	}
}
