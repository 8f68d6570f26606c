// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tripfolio/tripfolio-api/ent/predicate"
	"github.com/tripfolio/tripfolio-api/ent/team"
	"github.com/tripfolio/tripfolio-api/ent/teaminvitation"
)

// TeamInvitationUpdate is the builder for updating TeamInvitation entities.
type TeamInvitationUpdate struct {
	config
	hooks    []Hook
	mutation *TeamInvitationMutation
}

// Where appends a list predicates to the TeamInvitationUpdate builder.
func (_u *TeamInvitationUpdate) Where(ps ...predicate.TeamInvitation) *TeamInvitationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTeamID sets the "team_id" field.
func (_u *TeamInvitationUpdate) SetTeamID(v int) *TeamInvitationUpdate {
	_u.mutation.SetTeamID(v)
	return _u
}

// SetNillableTeamID sets the "team_id" field if the given value is not nil.
func (_u *TeamInvitationUpdate) SetNillableTeamID(v *int) *TeamInvitationUpdate {
	if v != nil {
		_u.SetTeamID(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *TeamInvitationUpdate) SetEmail(v string) *TeamInvitationUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *TeamInvitationUpdate) SetNillableEmail(v *string) *TeamInvitationUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *TeamInvitationUpdate) SetRole(v teaminvitation.Role) *TeamInvitationUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *TeamInvitationUpdate) SetNillableRole(v *teaminvitation.Role) *TeamInvitationUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetToken sets the "token" field.
func (_u *TeamInvitationUpdate) SetToken(v string) *TeamInvitationUpdate {
	_u.mutation.SetToken(v)
	return _u
}

// SetNillableToken sets the "token" field if the given value is not nil.
func (_u *TeamInvitationUpdate) SetNillableToken(v *string) *TeamInvitationUpdate {
	if v != nil {
		_u.SetToken(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TeamInvitationUpdate) SetStatus(v teaminvitation.Status) *TeamInvitationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TeamInvitationUpdate) SetNillableStatus(v *teaminvitation.Status) *TeamInvitationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *TeamInvitationUpdate) SetExpiresAt(v time.Time) *TeamInvitationUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *TeamInvitationUpdate) SetNillableExpiresAt(v *time.Time) *TeamInvitationUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetInvitedBy sets the "invited_by" field.
func (_u *TeamInvitationUpdate) SetInvitedBy(v int) *TeamInvitationUpdate {
	_u.mutation.ResetInvitedBy()
	_u.mutation.SetInvitedBy(v)
	return _u
}

// SetNillableInvitedBy sets the "invited_by" field if the given value is not nil.
func (_u *TeamInvitationUpdate) SetNillableInvitedBy(v *int) *TeamInvitationUpdate {
	if v != nil {
		_u.SetInvitedBy(*v)
	}
	return _u
}

// AddInvitedBy adds value to the "invited_by" field.
func (_u *TeamInvitationUpdate) AddInvitedBy(v int) *TeamInvitationUpdate {
	_u.mutation.AddInvitedBy(v)
	return _u
}

// SetTeam sets the "team" edge to the Team entity.
func (_u *TeamInvitationUpdate) SetTeam(v *Team) *TeamInvitationUpdate {
	return _u.SetTeamID(v.ID)
}

// Mutation returns the TeamInvitationMutation object of the builder.
func (_u *TeamInvitationUpdate) Mutation() *TeamInvitationMutation {
	return _u.mutation
}

// ClearTeam clears the "team" edge to the Team entity.
func (_u *TeamInvitationUpdate) ClearTeam() *TeamInvitationUpdate {
	_u.mutation.ClearTeam()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TeamInvitationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TeamInvitationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TeamInvitationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TeamInvitationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TeamInvitationUpdate) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := teaminvitation.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "TeamInvitation.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := teaminvitation.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "TeamInvitation.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Token(); ok {
		if err := teaminvitation.TokenValidator(v); err != nil {
			return &ValidationError{Name: "token", err: fmt.Errorf(`ent: validator failed for field "TeamInvitation.token": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := teaminvitation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TeamInvitation.status": %w`, err)}
		}
	}
	if _u.mutation.TeamCleared() && len(_u.mutation.TeamIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TeamInvitation.team"`)
	}
	return nil
}

func (_u *TeamInvitationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(teaminvitation.Table, teaminvitation.Columns, sqlgraph.NewFieldSpec(teaminvitation.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(teaminvitation.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(teaminvitation.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Token(); ok {
		_spec.SetField(teaminvitation.FieldToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(teaminvitation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(teaminvitation.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.InvitedBy(); ok {
		_spec.SetField(teaminvitation.FieldInvitedBy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInvitedBy(); ok {
		_spec.AddField(teaminvitation.FieldInvitedBy, field.TypeInt, value)
	}
	if _u.mutation.TeamCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   teaminvitation.TeamTable,
			Columns: []string{teaminvitation.TeamColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(team.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TeamIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   teaminvitation.TeamTable,
			Columns: []string{teaminvitation.TeamColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(team.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{teaminvitation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TeamInvitationUpdateOne is the builder for updating a single TeamInvitation entity.
type TeamInvitationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TeamInvitationMutation
}

// SetTeamID sets the "team_id" field.
func (_u *TeamInvitationUpdateOne) SetTeamID(v int) *TeamInvitationUpdateOne {
	_u.mutation.SetTeamID(v)
	return _u
}

// SetNillableTeamID sets the "team_id" field if the given value is not nil.
func (_u *TeamInvitationUpdateOne) SetNillableTeamID(v *int) *TeamInvitationUpdateOne {
	if v != nil {
		_u.SetTeamID(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *TeamInvitationUpdateOne) SetEmail(v string) *TeamInvitationUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *TeamInvitationUpdateOne) SetNillableEmail(v *string) *TeamInvitationUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *TeamInvitationUpdateOne) SetRole(v teaminvitation.Role) *TeamInvitationUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *TeamInvitationUpdateOne) SetNillableRole(v *teaminvitation.Role) *TeamInvitationUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetToken sets the "token" field.
func (_u *TeamInvitationUpdateOne) SetToken(v string) *TeamInvitationUpdateOne {
	_u.mutation.SetToken(v)
	return _u
}

// SetNillableToken sets the "token" field if the given value is not nil.
func (_u *TeamInvitationUpdateOne) SetNillableToken(v *string) *TeamInvitationUpdateOne {
	if v != nil {
		_u.SetToken(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TeamInvitationUpdateOne) SetStatus(v teaminvitation.Status) *TeamInvitationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TeamInvitationUpdateOne) SetNillableStatus(v *teaminvitation.Status) *TeamInvitationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *TeamInvitationUpdateOne) SetExpiresAt(v time.Time) *TeamInvitationUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *TeamInvitationUpdateOne) SetNillableExpiresAt(v *time.Time) *TeamInvitationUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetInvitedBy sets the "invited_by" field.
func (_u *TeamInvitationUpdateOne) SetInvitedBy(v int) *TeamInvitationUpdateOne {
	_u.mutation.ResetInvitedBy()
	_u.mutation.SetInvitedBy(v)
	return _u
}

// SetNillableInvitedBy sets the "invited_by" field if the given value is not nil.
func (_u *TeamInvitationUpdateOne) SetNillableInvitedBy(v *int) *TeamInvitationUpdateOne {
	if v != nil {
		_u.SetInvitedBy(*v)
	}
	return _u
}

// AddInvitedBy adds value to the "invited_by" field.
func (_u *TeamInvitationUpdateOne) AddInvitedBy(v int) *TeamInvitationUpdateOne {
	_u.mutation.AddInvitedBy(v)
	return _u
}

// SetTeam sets the "team" edge to the Team entity.
func (_u *TeamInvitationUpdateOne) SetTeam(v *Team) *TeamInvitationUpdateOne {
	return _u.SetTeamID(v.ID)
}

// Mutation returns the TeamInvitationMutation object of the builder.
func (_u *TeamInvitationUpdateOne) Mutation() *TeamInvitationMutation {
	return _u.mutation
}

// ClearTeam clears the "team" edge to the Team entity.
func (_u *TeamInvitationUpdateOne) ClearTeam() *TeamInvitationUpdateOne {
	_u.mutation.ClearTeam()
	return _u
}

// Where appends a list predicates to the TeamInvitationUpdate builder.
func (_u *TeamInvitationUpdateOne) Where(ps ...predicate.TeamInvitation) *TeamInvitationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TeamInvitationUpdateOne) Select(field string, fields ...string) *TeamInvitationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TeamInvitation entity.
func (_u *TeamInvitationUpdateOne) Save(ctx context.Context) (*TeamInvitation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TeamInvitationUpdateOne) SaveX(ctx context.Context) *TeamInvitation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TeamInvitationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TeamInvitationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TeamInvitationUpdateOne) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := teaminvitation.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "TeamInvitation.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := teaminvitation.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "TeamInvitation.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Token(); ok {
		if err := teaminvitation.TokenValidator(v); err != nil {
			return &ValidationError{Name: "token", err: fmt.Errorf(`ent: validator failed for field "TeamInvitation.token": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := teaminvitation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TeamInvitation.status": %w`, err)}
		}
	}
	if _u.mutation.TeamCleared() && len(_u.mutation.TeamIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TeamInvitation.team"`)
	}
	return nil
}

func (_u *TeamInvitationUpdateOne) sqlSave(ctx context.Context) (_node *TeamInvitation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(teaminvitation.Table, teaminvitation.Columns, sqlgraph.NewFieldSpec(teaminvitation.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TeamInvitation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, teaminvitation.FieldID)
		for _, f := range fields {
			if !teaminvitation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != teaminvitation.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(teaminvitation.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(teaminvitation.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Token(); ok {
		_spec.SetField(teaminvitation.FieldToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(teaminvitation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(teaminvitation.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.InvitedBy(); ok {
		_spec.SetField(teaminvitation.FieldInvitedBy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInvitedBy(); ok {
		_spec.AddField(teaminvitation.FieldInvitedBy, field.TypeInt, value)
	}
	if _u.mutation.TeamCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   teaminvitation.TeamTable,
			Columns: []string{teaminvitation.TeamColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(team.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TeamIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   teaminvitation.TeamTable,
			Columns: []string{teaminvitation.TeamColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(team.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TeamInvitation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{teaminvitation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
