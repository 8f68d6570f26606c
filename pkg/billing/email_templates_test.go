package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildWelcomeEmail(t *testing.T) {
	subject, html, plain := buildWelcomeEmail("Jane", "starter", "https://tripfolio.io")

	assert.Contains(t, subject, "Welcome")
	assert.Contains(t, html, "Jane")
	assert.Contains(t, html, "starter")
	assert.Contains(t, html, "https://tripfolio.io/dashboard")
	assert.Contains(t, plain, "Jane")
	assert.Contains(t, plain, "starter")
}

func TestBuildSubscriptionActivatedEmail(t *testing.T) {
	subject, html, plain := buildSubscriptionActivatedEmail("John", "pro", "https://tripfolio.io")

	assert.Contains(t, subject, "activated")
	assert.Contains(t, html, "John")
	assert.Contains(t, html, "pro")
	assert.Contains(t, plain, "John")
	assert.Contains(t, plain, "pro")
}

func TestBuildPaymentFailedEmail(t *testing.T) {
	subject, html, plain := buildPaymentFailedEmail("Bob", "https://tripfolio.io")

	assert.Contains(t, subject, "payment")
	assert.Contains(t, html, "Bob")
	assert.Contains(t, html, "payment method")
	assert.Contains(t, html, "https://tripfolio.io/dashboard/settings")
	assert.Contains(t, plain, "payment method")
}

func TestBuildSubscriptionCanceledEmail(t *testing.T) {
	subject, html, plain := buildSubscriptionCanceledEmail("Ana", "https://tripfolio.io")

	assert.Contains(t, subject, "canceled")
	assert.Contains(t, html, "Ana")
	assert.Contains(t, html, "30 days")
	assert.Contains(t, plain, "30 days")
}
