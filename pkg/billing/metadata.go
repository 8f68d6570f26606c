package billing

import (
	"fmt"
	"strconv"
	"time"
)

// Stripe metadata only stores strings, so booleans, numbers and
// timestamps are coerced to text on the way out and parsed back on the
// way in. All of that coercion lives in this file; the rest of the
// package works with typed values.

const (
	metaPlanType             = "plan_type"
	metaSeatCount            = "seat_count"
	metaUserID               = "user_id"
	metaNeedsAccountCreation = "needs_account_creation"
	metaTrialConversion      = "trial_conversion"
	metaPriorPeriodEnd       = "prior_period_end"
	metaSignupEmail          = "signup_email"
	metaSignupPasswordHash   = "signup_password_hash"
	metaSignupName           = "signup_name"
	metaSignupPhone          = "signup_phone"
	metaSignupAgencyName     = "signup_agency_name"
	metaSignupLogoURL        = "signup_logo_url"
)

// SignupMetadata is the signup payload carried through checkout session
// metadata for accounts that must not exist until payment succeeds.
// The password travels as a bcrypt hash, never in the clear.
type SignupMetadata struct {
	Email        string
	PasswordHash string
	Name         string
	Phone        string
	AgencyName   string
	LogoURL      string
}

// SessionMetadata is the typed view of a checkout session's metadata bag.
type SessionMetadata struct {
	PlanType             PlanType
	SeatCount            int
	UserID               int // 0 when no account exists yet
	NeedsAccountCreation bool
	TrialConversion      bool
	PriorPeriodEnd       time.Time // zero unless TrialConversion is set
	Signup               *SignupMetadata
}

// Encode serializes the metadata into the string map the processor stores.
func (m SessionMetadata) Encode() map[string]string {
	out := map[string]string{
		metaPlanType:  string(m.PlanType),
		metaSeatCount: strconv.Itoa(m.SeatCount),
	}

	if m.UserID > 0 {
		out[metaUserID] = strconv.Itoa(m.UserID)
	}
	if m.NeedsAccountCreation {
		out[metaNeedsAccountCreation] = "true"
	}
	if m.TrialConversion {
		out[metaTrialConversion] = "true"
		if !m.PriorPeriodEnd.IsZero() {
			out[metaPriorPeriodEnd] = strconv.FormatInt(m.PriorPeriodEnd.Unix(), 10)
		}
	}
	if m.Signup != nil {
		out[metaSignupEmail] = m.Signup.Email
		out[metaSignupPasswordHash] = m.Signup.PasswordHash
		out[metaSignupName] = m.Signup.Name
		if m.Signup.Phone != "" {
			out[metaSignupPhone] = m.Signup.Phone
		}
		if m.Signup.AgencyName != "" {
			out[metaSignupAgencyName] = m.Signup.AgencyName
		}
		if m.Signup.LogoURL != "" {
			out[metaSignupLogoURL] = m.Signup.LogoURL
		}
	}
	return out
}

// ParseSessionMetadata rebuilds typed metadata from the processor's
// string map. Missing or malformed optional fields degrade to zero
// values; only an unknown plan type is an error.
func ParseSessionMetadata(raw map[string]string) (SessionMetadata, error) {
	var m SessionMetadata

	planStr, ok := raw[metaPlanType]
	if !ok {
		return m, fmt.Errorf("metadata missing plan_type")
	}
	plan, err := ParsePlanType(planStr)
	if err != nil {
		return m, err
	}
	m.PlanType = plan

	if v, ok := raw[metaSeatCount]; ok {
		if n, err := strconv.Atoi(v); err == nil {
			m.SeatCount = n
		}
	}
	if v, ok := raw[metaUserID]; ok {
		if n, err := strconv.Atoi(v); err == nil {
			m.UserID = n
		}
	}
	m.NeedsAccountCreation = raw[metaNeedsAccountCreation] == "true"
	m.TrialConversion = raw[metaTrialConversion] == "true"
	if v, ok := raw[metaPriorPeriodEnd]; ok {
		if secs, err := strconv.ParseInt(v, 10, 64); err == nil {
			m.PriorPeriodEnd = time.Unix(secs, 0)
		}
	}

	if email, ok := raw[metaSignupEmail]; ok {
		m.Signup = &SignupMetadata{
			Email:        email,
			PasswordHash: raw[metaSignupPasswordHash],
			Name:         raw[metaSignupName],
			Phone:        raw[metaSignupPhone],
			AgencyName:   raw[metaSignupAgencyName],
			LogoURL:      raw[metaSignupLogoURL],
		}
	}

	return m, nil
}
