// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/tripfolio/tripfolio-api/ent/processedevent"
	"github.com/tripfolio/tripfolio-api/ent/schema"
	"github.com/tripfolio/tripfolio-api/ent/subscription"
	"github.com/tripfolio/tripfolio-api/ent/team"
	"github.com/tripfolio/tripfolio-api/ent/teaminvitation"
	"github.com/tripfolio/tripfolio-api/ent/teammember"
	"github.com/tripfolio/tripfolio-api/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	processedeventFields := schema.ProcessedEvent{}.Fields()
	_ = processedeventFields
	// processedeventDescEventID is the schema descriptor for event_id field.
	processedeventDescEventID := processedeventFields[0].Descriptor()
	// processedevent.EventIDValidator is a validator for the "event_id" field. It is called by the builders before save.
	processedevent.EventIDValidator = processedeventDescEventID.Validators[0].(func(string) error)
	// processedeventDescEventType is the schema descriptor for event_type field.
	processedeventDescEventType := processedeventFields[1].Descriptor()
	// processedevent.EventTypeValidator is a validator for the "event_type" field. It is called by the builders before save.
	processedevent.EventTypeValidator = processedeventDescEventType.Validators[0].(func(string) error)
	// processedeventDescRecordedAt is the schema descriptor for recorded_at field.
	processedeventDescRecordedAt := processedeventFields[2].Descriptor()
	// processedevent.DefaultRecordedAt holds the default value on creation for the recorded_at field.
	processedevent.DefaultRecordedAt = processedeventDescRecordedAt.Default.(func() time.Time)
	subscriptionFields := schema.Subscription{}.Fields()
	_ = subscriptionFields
	// subscriptionDescUserID is the schema descriptor for user_id field.
	subscriptionDescUserID := subscriptionFields[0].Descriptor()
	// subscription.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	subscription.UserIDValidator = subscriptionDescUserID.Validators[0].(func(int) error)
	// subscriptionDescCancelAtPeriodEnd is the schema descriptor for cancel_at_period_end field.
	subscriptionDescCancelAtPeriodEnd := subscriptionFields[8].Descriptor()
	// subscription.DefaultCancelAtPeriodEnd holds the default value on creation for the cancel_at_period_end field.
	subscription.DefaultCancelAtPeriodEnd = subscriptionDescCancelAtPeriodEnd.Default.(bool)
	// subscriptionDescCreatedAt is the schema descriptor for created_at field.
	subscriptionDescCreatedAt := subscriptionFields[9].Descriptor()
	// subscription.DefaultCreatedAt holds the default value on creation for the created_at field.
	subscription.DefaultCreatedAt = subscriptionDescCreatedAt.Default.(func() time.Time)
	// subscriptionDescUpdatedAt is the schema descriptor for updated_at field.
	subscriptionDescUpdatedAt := subscriptionFields[10].Descriptor()
	// subscription.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	subscription.DefaultUpdatedAt = subscriptionDescUpdatedAt.Default.(func() time.Time)
	// subscription.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	subscription.UpdateDefaultUpdatedAt = subscriptionDescUpdatedAt.UpdateDefault.(func() time.Time)
	teamFields := schema.Team{}.Fields()
	_ = teamFields
	// teamDescName is the schema descriptor for name field.
	teamDescName := teamFields[0].Descriptor()
	// team.NameValidator is a validator for the "name" field. It is called by the builders before save.
	team.NameValidator = teamDescName.Validators[0].(func(string) error)
	// teamDescCreatedAt is the schema descriptor for created_at field.
	teamDescCreatedAt := teamFields[3].Descriptor()
	// team.DefaultCreatedAt holds the default value on creation for the created_at field.
	team.DefaultCreatedAt = teamDescCreatedAt.Default.(func() time.Time)
	// teamDescUpdatedAt is the schema descriptor for updated_at field.
	teamDescUpdatedAt := teamFields[4].Descriptor()
	// team.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	team.DefaultUpdatedAt = teamDescUpdatedAt.Default.(func() time.Time)
	// team.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	team.UpdateDefaultUpdatedAt = teamDescUpdatedAt.UpdateDefault.(func() time.Time)
	teaminvitationFields := schema.TeamInvitation{}.Fields()
	_ = teaminvitationFields
	// teaminvitationDescEmail is the schema descriptor for email field.
	teaminvitationDescEmail := teaminvitationFields[1].Descriptor()
	// teaminvitation.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	teaminvitation.EmailValidator = teaminvitationDescEmail.Validators[0].(func(string) error)
	// teaminvitationDescToken is the schema descriptor for token field.
	teaminvitationDescToken := teaminvitationFields[3].Descriptor()
	// teaminvitation.TokenValidator is a validator for the "token" field. It is called by the builders before save.
	teaminvitation.TokenValidator = teaminvitationDescToken.Validators[0].(func(string) error)
	// teaminvitationDescCreatedAt is the schema descriptor for created_at field.
	teaminvitationDescCreatedAt := teaminvitationFields[7].Descriptor()
	// teaminvitation.DefaultCreatedAt holds the default value on creation for the created_at field.
	teaminvitation.DefaultCreatedAt = teaminvitationDescCreatedAt.Default.(func() time.Time)
	teammemberFields := schema.TeamMember{}.Fields()
	_ = teammemberFields
	// teammemberDescJoinedAt is the schema descriptor for joined_at field.
	teammemberDescJoinedAt := teammemberFields[3].Descriptor()
	// teammember.DefaultJoinedAt holds the default value on creation for the joined_at field.
	teammember.DefaultJoinedAt = teammemberDescJoinedAt.Default.(func() time.Time)
	// teammemberDescCreatedAt is the schema descriptor for created_at field.
	teammemberDescCreatedAt := teammemberFields[4].Descriptor()
	// teammember.DefaultCreatedAt holds the default value on creation for the created_at field.
	teammember.DefaultCreatedAt = teammemberDescCreatedAt.Default.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[0].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[1].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[2].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescEmailVerified is the schema descriptor for email_verified field.
	userDescEmailVerified := userFields[6].Descriptor()
	// user.DefaultEmailVerified holds the default value on creation for the email_verified field.
	user.DefaultEmailVerified = userDescEmailVerified.Default.(bool)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[8].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[9].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
}
