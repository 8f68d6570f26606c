package testdata

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/tripfolio/tripfolio-api/ent"
	"github.com/tripfolio/tripfolio-api/ent/subscription"
)

// AccountGeneratorConfig configures account generation parameters
type AccountGeneratorConfig struct {
	Count          int
	PlanType       string  // free, starter, pro, agency
	PhoneChance    float64 // 0.0-1.0 (probability of having phone)
	LogoChance     float64
	VerifiedChance float64
}

// Agency name prefixes and suffixes for realistic travel agency names
var agencyNameParts = struct {
	Prefixes []string
	Suffixes []string
}{
	Prefixes: []string{"Wanderlust", "Horizon", "Globe", "Compass", "Voyager", "Sunset", "Atlas", "Meridian", "Nomad", "Azure"},
	Suffixes: []string{"Travel", "Travels", "Journeys", "Expeditions", "Getaways", "Tours", "Adventures", "Escapes", "Voyages"},
}

// GenerateAgencyName creates a realistic travel agency name
func GenerateAgencyName() string {
	prefix := agencyNameParts.Prefixes[rand.Intn(len(agencyNameParts.Prefixes))]
	suffix := agencyNameParts.Suffixes[rand.Intn(len(agencyNameParts.Suffixes))]
	return fmt.Sprintf("%s %s", prefix, suffix)
}

// GenerateAccount creates a single user builder with realistic data
func GenerateAccount(client *ent.Client, config AccountGeneratorConfig) *ent.UserCreate {
	name := gofakeit.Name()
	agencyName := GenerateAgencyName()

	// Email derived from the agency name so seeded data looks coherent
	emailDomain := strings.ToLower(strings.ReplaceAll(agencyName, " ", ""))
	email := fmt.Sprintf("%s@%s.com", strings.ToLower(gofakeit.FirstName()), emailDomain)

	verified := rand.Float64() < config.VerifiedChance

	userCreate := client.User.Create()
	userCreate.
		SetEmail(email).
		SetName(name).
		SetAgencyName(agencyName).
		// Seed password is "password" for all dev accounts
		SetPasswordHash("$2a$10$N9qo8uLOickgx2ZMRZoMye1VdLKJ1lJ1fJ1lJ1fJ1lJ1fJ1lJ1fJ2").
		SetEmailVerified(verified).
		SetCreatedAt(time.Now()).
		SetUpdatedAt(time.Now())

	if rand.Float64() < config.PhoneChance {
		userCreate.SetPhone(gofakeit.Phone())
	}
	if rand.Float64() < config.LogoChance {
		userCreate.SetLogoURL(fmt.Sprintf("https://cdn.tripfolio.io/logos/%s.png", emailDomain))
	}

	return userCreate
}

// GenerateAccounts creates multiple user builders with the given config
func GenerateAccounts(client *ent.Client, config AccountGeneratorConfig) []*ent.UserCreate {
	accounts := make([]*ent.UserCreate, config.Count)
	for i := 0; i < config.Count; i++ {
		accounts[i] = GenerateAccount(client, config)
	}
	return accounts
}

// SeedAccounts inserts generated accounts with subscriptions on the given plan.
// Returns the number of accounts created.
func SeedAccounts(ctx context.Context, client *ent.Client, config AccountGeneratorConfig) (int, error) {
	planType := subscription.PlanType(config.PlanType)
	if err := subscription.PlanTypeValidator(planType); err != nil {
		return 0, fmt.Errorf("invalid plan type %q: %w", config.PlanType, err)
	}

	status := subscription.StatusActive
	created := 0
	for i := 0; i < config.Count; i++ {
		u, err := GenerateAccount(client, config).Save(ctx)
		if err != nil {
			// Duplicate emails from the generator are expected at scale, skip them
			if ent.IsConstraintError(err) {
				continue
			}
			return created, fmt.Errorf("failed creating seed user: %w", err)
		}

		_, err = client.Subscription.Create().
			SetUserID(u.ID).
			SetPlanType(planType).
			SetStatus(status).
			Save(ctx)
		if err != nil {
			return created, fmt.Errorf("failed creating seed subscription for user %d: %w", u.ID, err)
		}
		created++
	}

	return created, nil
}
