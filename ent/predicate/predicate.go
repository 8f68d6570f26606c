// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ProcessedEvent is the predicate function for processedevent builders.
type ProcessedEvent func(*sql.Selector)

// Subscription is the predicate function for subscription builders.
type Subscription func(*sql.Selector)

// Team is the predicate function for team builders.
type Team func(*sql.Selector)

// TeamInvitation is the predicate function for teaminvitation builders.
type TeamInvitation func(*sql.Selector)

// TeamMember is the predicate function for teammember builders.
type TeamMember func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
