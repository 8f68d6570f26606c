package billing

import (
	"context"
	"fmt"
	"log"

	"github.com/stripe/stripe-go/v76"
	"github.com/tripfolio/tripfolio-api/ent/subscription"
)

// notifyStatusChange sends the email matching a subscription status
// transition. Email failures never fail the event that triggered them.
func (s *Service) notifyStatusChange(ctx context.Context, userID int, status stripe.SubscriptionStatus) {
	if s.email == nil {
		return
	}

	u, err := s.db.User.Get(ctx, userID)
	if err != nil {
		log.Printf("⚠️  Failed to get user %d for billing notification: %v", userID, err)
		return
	}

	sub, err := s.db.Subscription.Query().
		Where(subscription.UserIDEQ(userID)).
		Only(ctx)
	if err != nil {
		log.Printf("⚠️  Failed to get subscription for billing notification: %v", err)
		return
	}

	var subject, html, plain string
	switch status {
	case stripe.SubscriptionStatusActive:
		subject, html, plain = buildSubscriptionActivatedEmail(u.Name, string(sub.PlanType), s.config.BaseURL)
	case stripe.SubscriptionStatusPastDue:
		subject, html, plain = buildPaymentFailedEmail(u.Name, s.config.BaseURL)
	case stripe.SubscriptionStatusCanceled:
		subject, html, plain = buildSubscriptionCanceledEmail(u.Name, s.config.BaseURL)
	default:
		return
	}

	if err := s.email.SendRawEmail(u.Email, u.Name, subject, html, plain); err != nil {
		log.Printf("⚠️  Failed to send billing notification to %s: %v", u.Email, err)
	}
}

// sendWelcomeEmail notifies a freshly provisioned user. Non-fatal.
func (s *Service) sendWelcomeEmail(email, name string, plan PlanType) {
	if s.email == nil {
		return
	}
	subject, html, plain := buildWelcomeEmail(name, string(plan), s.config.BaseURL)
	if err := s.email.SendRawEmail(email, name, subject, html, plain); err != nil {
		log.Printf("⚠️  Failed to send welcome email to %s: %v", email, err)
	}
}

// buildWelcomeEmail builds the post-provisioning welcome email.
func buildWelcomeEmail(name, plan, baseURL string) (subject, html, plain string) {
	subject = "Welcome to Tripfolio!"

	html = fmt.Sprintf(`
		<html>
		<body>
			<h2>Welcome to Tripfolio!</h2>
			<p>Hi %s,</p>
			<p>Your payment went through and your account is ready. You're on the <strong>%s</strong> plan.</p>
			<p><a href="%s/dashboard" style="background-color: #4CAF50; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">Go to Dashboard</a></p>
			<p>Thanks,<br>The Tripfolio Team</p>
		</body>
		</html>
	`, name, plan, baseURL)

	plain = fmt.Sprintf(`
Hi %s,

Your payment went through and your account is ready. You're on the %s plan.

Visit your dashboard: %s/dashboard

Thanks,
The Tripfolio Team
	`, name, plan, baseURL)

	return subject, html, plain
}

// buildSubscriptionActivatedEmail builds the plan-activated notification.
func buildSubscriptionActivatedEmail(name, plan, baseURL string) (subject, html, plain string) {
	subject = fmt.Sprintf("Your Tripfolio %s plan is activated", plan)

	html = fmt.Sprintf(`
		<html>
		<body>
			<h2>Your plan is active</h2>
			<p>Hi %s,</p>
			<p>Your <strong>%s</strong> plan is now activated. All plan features are unlocked.</p>
			<p><a href="%s/dashboard" style="background-color: #4CAF50; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">Go to Dashboard</a></p>
			<p>Thanks,<br>The Tripfolio Team</p>
		</body>
		</html>
	`, name, plan, baseURL)

	plain = fmt.Sprintf(`
Hi %s,

Your %s plan is now activated. All plan features are unlocked.

Visit your dashboard: %s/dashboard

Thanks,
The Tripfolio Team
	`, name, plan, baseURL)

	return subject, html, plain
}

// buildPaymentFailedEmail builds the past-due payment notification.
func buildPaymentFailedEmail(name, baseURL string) (subject, html, plain string) {
	subject = "Action needed: your Tripfolio payment failed"

	html = fmt.Sprintf(`
		<html>
		<body>
			<h2>Payment failed</h2>
			<p>Hi %s,</p>
			<p>We couldn't process your latest payment. Please update your payment method within 7 days to keep your subscription active.</p>
			<p><a href="%s/dashboard/settings" style="background-color: #F44336; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">Update Payment Method</a></p>
			<p>Thanks,<br>The Tripfolio Team</p>
		</body>
		</html>
	`, name, baseURL)

	plain = fmt.Sprintf(`
Hi %s,

We couldn't process your latest payment. Please update your payment method
within 7 days to keep your subscription active.

Update it here: %s/dashboard/settings

Thanks,
The Tripfolio Team
	`, name, baseURL)

	return subject, html, plain
}

// buildSubscriptionCanceledEmail builds the cancellation notification.
func buildSubscriptionCanceledEmail(name, baseURL string) (subject, html, plain string) {
	subject = "Your Tripfolio subscription was canceled"

	html = fmt.Sprintf(`
		<html>
		<body>
			<h2>Subscription canceled</h2>
			<p>Hi %s,</p>
			<p>Your subscription has been canceled. Your itineraries and client data stay available for 30 days in case you change your mind.</p>
			<p><a href="%s/pricing" style="background-color: #2196F3; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">Resubscribe</a></p>
			<p>Thanks,<br>The Tripfolio Team</p>
		</body>
		</html>
	`, name, baseURL)

	plain = fmt.Sprintf(`
Hi %s,

Your subscription has been canceled. Your itineraries and client data stay
available for 30 days in case you change your mind.

Resubscribe here: %s/pricing

Thanks,
The Tripfolio Team
	`, name, baseURL)

	return subject, html, plain
}
