package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlanType(t *testing.T) {
	for _, name := range []string{"free", "starter", "pro", "agency", "enterprise"} {
		plan, err := ParsePlanType(name)
		require.NoError(t, err)
		assert.Equal(t, PlanType(name), plan)
	}

	plan, err := ParsePlanType("Starter")
	require.NoError(t, err)
	assert.Equal(t, PlanStarter, plan)

	_, err = ParsePlanType("platinum")
	assert.Error(t, err)
}

func TestNormalizeSeatCount(t *testing.T) {
	assert.Equal(t, 1, NormalizeSeatCount(0))
	assert.Equal(t, 10, NormalizeSeatCount(15))
	assert.Equal(t, 1, NormalizeSeatCount("abc"))
	assert.Equal(t, 5, NormalizeSeatCount(5))
	assert.Equal(t, 5, NormalizeSeatCount(float64(5)))
	assert.Equal(t, 7, NormalizeSeatCount("7"))
	assert.Equal(t, 1, NormalizeSeatCount(-3))
	assert.Equal(t, 1, NormalizeSeatCount(nil))
	assert.Equal(t, 10, NormalizeSeatCount("100"))
}

func TestTrialEligibility(t *testing.T) {
	assert.True(t, PlanStarter.TrialEligible(), "only starter trials")
	assert.False(t, PlanFree.TrialEligible())
	assert.False(t, PlanPro.TrialEligible())
	assert.False(t, PlanAgency.TrialEligible())
	assert.False(t, PlanEnterprise.TrialEligible())
}

func TestEnterpriseNotSelfServe(t *testing.T) {
	assert.False(t, PlanEnterprise.IsSelfServe())
	assert.True(t, PlanStarter.IsSelfServe())
	assert.True(t, PlanAgency.IsSelfServe())
}

func TestPlanPolicyPrices(t *testing.T) {
	policy := NewPlanPolicy("price_starter", "price_pro", "price_agency")

	id, err := policy.PriceIDFor(PlanStarter)
	require.NoError(t, err)
	assert.Equal(t, "price_starter", id)

	id, err = policy.PriceIDFor(PlanAgency)
	require.NoError(t, err)
	assert.Equal(t, "price_agency", id)

	_, err = policy.PriceIDFor(PlanFree)
	assert.Error(t, err, "free has no price")

	assert.Equal(t, PlanPro, policy.PlanForPriceID("price_pro"))
	assert.Equal(t, PlanStarter, policy.PlanForPriceID("price_unknown"), "unmapped prices fall back to starter")
}

func TestSeatsFor(t *testing.T) {
	policy := NewPlanPolicy("a", "b", "c")

	assert.Equal(t, 1, policy.SeatsFor(PlanPro, 8), "only agency is seat-counted")
	assert.Equal(t, 8, policy.SeatsFor(PlanAgency, 8))
	assert.Equal(t, 10, policy.SeatsFor(PlanAgency, 25))
}
