package billing

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/stripe/stripe-go/v76"

	"github.com/tripfolio/tripfolio-api/ent"
	"github.com/tripfolio/tripfolio-api/ent/subscription"
	"github.com/tripfolio/tripfolio-api/ent/user"
)

// provisionAccount materializes a signup that was deferred until
// payment succeeded. Every step is idempotent so a replayed event or a
// prior partial run converges to the same state. Returns the resolved
// user ID.
func (s *Service) provisionAccount(ctx context.Context, sess *stripe.CheckoutSession, metadata SessionMetadata) (int, error) {
	signup := metadata.Signup
	if signup == nil {
		return 0, fmt.Errorf("session %s flagged for account creation but carries no signup payload", sess.ID)
	}

	u, err := s.findOrCreateUser(ctx, signup)
	if err != nil {
		return 0, err
	}

	if u.ID == 0 || u.Email == "" || u.Name == "" {
		return 0, fmt.Errorf("provisioned user is incomplete: id=%d email=%q name=%q", u.ID, u.Email, u.Name)
	}

	plan := metadata.PlanType
	status, periodStart, periodEnd := localPeriodFor(plan)
	_, err = s.upsertSubscription(ctx, u.ID, subscriptionFields{
		Plan:        plan,
		Status:      status,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		// Processor ids stay empty until the synchronizer fills them
	})
	if err != nil {
		return 0, fmt.Errorf("failed to upsert subscription for user %d: %w", u.ID, err)
	}

	// Write the resolved user ID back onto the session so later events
	// for it correlate without re-running provisioning. Non-fatal: the
	// email lookup above makes a re-run converge anyway.
	updated := metadata
	updated.UserID = u.ID
	updated.NeedsAccountCreation = false
	writeback := updated.Encode()
	// The processor merges metadata updates key by key, so the creation
	// flag must be posted explicitly or the stored "true" survives.
	writeback[metaNeedsAccountCreation] = "false"
	if _, err := s.processor.UpdateCheckoutSessionMetadata(sess.ID, writeback); err != nil {
		log.Printf("⚠️  Failed to write user %d back to session %s metadata: %v", u.ID, sess.ID, err)
	}

	if err := s.linkTeamSubscription(ctx, u.ID, ""); err != nil {
		log.Printf("⚠️  Team link skipped for new user %d: %v", u.ID, err)
	}

	s.sendWelcomeEmail(u.Email, u.Name, plan)

	log.Printf("✅ Provisioned user %d (%s) on %s plan", u.ID, u.Email, plan)
	return u.ID, nil
}

// findOrCreateUser resolves the signup email to a user, creating one
// when none exists. Payment success counts as proof of email control,
// so new accounts start verified.
func (s *Service) findOrCreateUser(ctx context.Context, signup *SignupMetadata) (*ent.User, error) {
	existing, err := s.db.User.Query().
		Where(user.EmailEQ(signup.Email)).
		Only(ctx)
	if err == nil {
		return s.fillProfile(ctx, existing, signup)
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}

	create := s.db.User.Create().
		SetEmail(signup.Email).
		SetPasswordHash(signup.PasswordHash).
		SetName(signup.Name).
		SetEmailVerified(true)
	if signup.Phone != "" {
		create.SetPhone(signup.Phone)
	}
	if signup.AgencyName != "" {
		create.SetAgencyName(signup.AgencyName)
	}
	if signup.LogoURL != "" {
		create.SetLogoURL(signup.LogoURL)
	}

	created, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// A concurrent delivery created the user first
			return s.db.User.Query().Where(user.EmailEQ(signup.Email)).Only(ctx)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return created, nil
}

// fillProfile copies signup profile fields onto a pre-existing user
// without overwriting anything already set.
func (s *Service) fillProfile(ctx context.Context, u *ent.User, signup *SignupMetadata) (*ent.User, error) {
	update := u.Update()
	changed := false

	if u.Phone == nil && signup.Phone != "" {
		update.SetPhone(signup.Phone)
		changed = true
	}
	if u.AgencyName == nil && signup.AgencyName != "" {
		update.SetAgencyName(signup.AgencyName)
		changed = true
	}
	if u.LogoURL == nil && signup.LogoURL != "" {
		update.SetLogoURL(signup.LogoURL)
		changed = true
	}
	if !changed {
		return u, nil
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update user profile: %w", err)
	}
	return updated, nil
}

// localPeriodFor computes the provisional status and billing window for
// a freshly provisioned plan. The synchronizer overwrites these with
// the processor's canonical values on the next event.
func localPeriodFor(plan PlanType) (subscription.Status, time.Time, time.Time) {
	now := time.Now()
	if plan.TrialEligible() {
		return subscription.StatusTrialing, now, now.AddDate(0, 0, TrialDays)
	}
	return subscription.StatusActive, now, now.AddDate(0, 0, 30)
}
