package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionMetadataSignupRoundTrip(t *testing.T) {
	in := SessionMetadata{
		PlanType:             PlanStarter,
		SeatCount:            1,
		NeedsAccountCreation: true,
		Signup: &SignupMetadata{
			Email:        "new@example.com",
			PasswordHash: "$2a$10$fakehash",
			Name:         "New Agent",
			AgencyName:   "Wanderlust Travel",
		},
	}

	encoded := in.Encode()
	assert.Equal(t, "true", encoded["needs_account_creation"])
	assert.Equal(t, "starter", encoded["plan_type"])
	assert.NotContains(t, encoded, "trial_conversion")
	assert.NotContains(t, encoded, "user_id")

	out, err := ParseSessionMetadata(encoded)
	require.NoError(t, err)
	assert.Equal(t, in.PlanType, out.PlanType)
	assert.True(t, out.NeedsAccountCreation)
	require.NotNil(t, out.Signup)
	assert.Equal(t, "new@example.com", out.Signup.Email)
	assert.Equal(t, "$2a$10$fakehash", out.Signup.PasswordHash)
	assert.Equal(t, "Wanderlust Travel", out.Signup.AgencyName)
	assert.Empty(t, out.Signup.Phone)

	// Unused on signup sessions
	assert.Zero(t, out.UserID)
	assert.True(t, out.PriorPeriodEnd.IsZero())
}

func TestSessionMetadataTrialConversion(t *testing.T) {
	periodEnd := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)
	in := SessionMetadata{
		PlanType:        PlanPro,
		SeatCount:       1,
		UserID:          42,
		TrialConversion: true,
		PriorPeriodEnd:  periodEnd,
	}

	encoded := in.Encode()
	assert.Equal(t, "true", encoded["trial_conversion"])
	assert.Equal(t, "42", encoded["user_id"])

	out, err := ParseSessionMetadata(encoded)
	require.NoError(t, err)
	assert.Equal(t, 42, out.UserID)
	assert.True(t, out.TrialConversion)
	assert.True(t, out.PriorPeriodEnd.Equal(periodEnd))
	assert.Nil(t, out.Signup)
}

func TestParseSessionMetadataMissingPlan(t *testing.T) {
	_, err := ParseSessionMetadata(map[string]string{"user_id": "1"})
	assert.Error(t, err)
}

func TestParseSessionMetadataMalformedOptionals(t *testing.T) {
	out, err := ParseSessionMetadata(map[string]string{
		"plan_type":        "pro",
		"seat_count":       "lots",
		"user_id":          "not-a-number",
		"prior_period_end": "yesterday",
	})
	require.NoError(t, err)
	assert.Equal(t, PlanPro, out.PlanType)
	assert.Zero(t, out.SeatCount)
	assert.Zero(t, out.UserID)
	assert.True(t, out.PriorPeriodEnd.IsZero())
}
