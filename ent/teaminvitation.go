// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tripfolio/tripfolio-api/ent/team"
	"github.com/tripfolio/tripfolio-api/ent/teaminvitation"
)

// TeamInvitation is the model entity for the TeamInvitation schema.
type TeamInvitation struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Team ID
	TeamID int `json:"team_id,omitempty"`
	// Invitee email address
	Email string `json:"email,omitempty"`
	// Role granted on acceptance
	Role teaminvitation.Role `json:"role,omitempty"`
	// Single-use invitation token
	Token string `json:"-"`
	// Invitation status
	Status teaminvitation.Status `json:"status,omitempty"`
	// Expiry deadline, checked at acceptance time
	ExpiresAt time.Time `json:"expires_at,omitempty"`
	// User ID of the inviter
	InvitedBy int `json:"invited_by,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TeamInvitationQuery when eager-loading is set.
	Edges        TeamInvitationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TeamInvitationEdges holds the relations/edges for other nodes in the graph.
type TeamInvitationEdges struct {
	// Team the invitation is for
	Team *Team `json:"team,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TeamOrErr returns the Team value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TeamInvitationEdges) TeamOrErr() (*Team, error) {
	if e.Team != nil {
		return e.Team, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: team.Label}
	}
	return nil, &NotLoadedError{edge: "team"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TeamInvitation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case teaminvitation.FieldID, teaminvitation.FieldTeamID, teaminvitation.FieldInvitedBy:
			values[i] = new(sql.NullInt64)
		case teaminvitation.FieldEmail, teaminvitation.FieldRole, teaminvitation.FieldToken, teaminvitation.FieldStatus:
			values[i] = new(sql.NullString)
		case teaminvitation.FieldExpiresAt, teaminvitation.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TeamInvitation fields.
func (_m *TeamInvitation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case teaminvitation.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case teaminvitation.FieldTeamID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field team_id", values[i])
			} else if value.Valid {
				_m.TeamID = int(value.Int64)
			}
		case teaminvitation.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case teaminvitation.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = teaminvitation.Role(value.String)
			}
		case teaminvitation.FieldToken:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field token", values[i])
			} else if value.Valid {
				_m.Token = value.String
			}
		case teaminvitation.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = teaminvitation.Status(value.String)
			}
		case teaminvitation.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = value.Time
			}
		case teaminvitation.FieldInvitedBy:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field invited_by", values[i])
			} else if value.Valid {
				_m.InvitedBy = int(value.Int64)
			}
		case teaminvitation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TeamInvitation.
// This includes values selected through modifiers, order, etc.
func (_m *TeamInvitation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTeam queries the "team" edge of the TeamInvitation entity.
func (_m *TeamInvitation) QueryTeam() *TeamQuery {
	return NewTeamInvitationClient(_m.config).QueryTeam(_m)
}

// Update returns a builder for updating this TeamInvitation.
// Note that you need to call TeamInvitation.Unwrap() before calling this method if this TeamInvitation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TeamInvitation) Update() *TeamInvitationUpdateOne {
	return NewTeamInvitationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TeamInvitation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TeamInvitation) Unwrap() *TeamInvitation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TeamInvitation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TeamInvitation) String() string {
	var builder strings.Builder
	builder.WriteString("TeamInvitation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("team_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TeamID))
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(fmt.Sprintf("%v", _m.Role))
	builder.WriteString(", ")
	builder.WriteString("token=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("expires_at=")
	builder.WriteString(_m.ExpiresAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("invited_by=")
	builder.WriteString(fmt.Sprintf("%v", _m.InvitedBy))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TeamInvitations is a parsable slice of TeamInvitation.
type TeamInvitations []*TeamInvitation
