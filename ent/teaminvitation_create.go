// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tripfolio/tripfolio-api/ent/team"
	"github.com/tripfolio/tripfolio-api/ent/teaminvitation"
)

// TeamInvitationCreate is the builder for creating a TeamInvitation entity.
type TeamInvitationCreate struct {
	config
	mutation *TeamInvitationMutation
	hooks    []Hook
}

// SetTeamID sets the "team_id" field.
func (_c *TeamInvitationCreate) SetTeamID(v int) *TeamInvitationCreate {
	_c.mutation.SetTeamID(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *TeamInvitationCreate) SetEmail(v string) *TeamInvitationCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *TeamInvitationCreate) SetRole(v teaminvitation.Role) *TeamInvitationCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_c *TeamInvitationCreate) SetNillableRole(v *teaminvitation.Role) *TeamInvitationCreate {
	if v != nil {
		_c.SetRole(*v)
	}
	return _c
}

// SetToken sets the "token" field.
func (_c *TeamInvitationCreate) SetToken(v string) *TeamInvitationCreate {
	_c.mutation.SetToken(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *TeamInvitationCreate) SetStatus(v teaminvitation.Status) *TeamInvitationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TeamInvitationCreate) SetNillableStatus(v *teaminvitation.Status) *TeamInvitationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *TeamInvitationCreate) SetExpiresAt(v time.Time) *TeamInvitationCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetInvitedBy sets the "invited_by" field.
func (_c *TeamInvitationCreate) SetInvitedBy(v int) *TeamInvitationCreate {
	_c.mutation.SetInvitedBy(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TeamInvitationCreate) SetCreatedAt(v time.Time) *TeamInvitationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TeamInvitationCreate) SetNillableCreatedAt(v *time.Time) *TeamInvitationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetTeam sets the "team" edge to the Team entity.
func (_c *TeamInvitationCreate) SetTeam(v *Team) *TeamInvitationCreate {
	return _c.SetTeamID(v.ID)
}

// Mutation returns the TeamInvitationMutation object of the builder.
func (_c *TeamInvitationCreate) Mutation() *TeamInvitationMutation {
	return _c.mutation
}

// Save creates the TeamInvitation in the database.
func (_c *TeamInvitationCreate) Save(ctx context.Context) (*TeamInvitation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TeamInvitationCreate) SaveX(ctx context.Context) *TeamInvitation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TeamInvitationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TeamInvitationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TeamInvitationCreate) defaults() {
	if _, ok := _c.mutation.Role(); !ok {
		v := teaminvitation.DefaultRole
		_c.mutation.SetRole(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := teaminvitation.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := teaminvitation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TeamInvitationCreate) check() error {
	if _, ok := _c.mutation.TeamID(); !ok {
		return &ValidationError{Name: "team_id", err: errors.New(`ent: missing required field "TeamInvitation.team_id"`)}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "TeamInvitation.email"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := teaminvitation.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "TeamInvitation.email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "TeamInvitation.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := teaminvitation.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "TeamInvitation.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Token(); !ok {
		return &ValidationError{Name: "token", err: errors.New(`ent: missing required field "TeamInvitation.token"`)}
	}
	if v, ok := _c.mutation.Token(); ok {
		if err := teaminvitation.TokenValidator(v); err != nil {
			return &ValidationError{Name: "token", err: fmt.Errorf(`ent: validator failed for field "TeamInvitation.token": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "TeamInvitation.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := teaminvitation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TeamInvitation.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "TeamInvitation.expires_at"`)}
	}
	if _, ok := _c.mutation.InvitedBy(); !ok {
		return &ValidationError{Name: "invited_by", err: errors.New(`ent: missing required field "TeamInvitation.invited_by"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TeamInvitation.created_at"`)}
	}
	if len(_c.mutation.TeamIDs()) == 0 {
		return &ValidationError{Name: "team", err: errors.New(`ent: missing required edge "TeamInvitation.team"`)}
	}
	return nil
}

func (_c *TeamInvitationCreate) sqlSave(ctx context.Context) (*TeamInvitation, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TeamInvitationCreate) createSpec() (*TeamInvitation, *sqlgraph.CreateSpec) {
	var (
		_node = &TeamInvitation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(teaminvitation.Table, sqlgraph.NewFieldSpec(teaminvitation.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(teaminvitation.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(teaminvitation.FieldRole, field.TypeEnum, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Token(); ok {
		_spec.SetField(teaminvitation.FieldToken, field.TypeString, value)
		_node.Token = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(teaminvitation.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(teaminvitation.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if value, ok := _c.mutation.InvitedBy(); ok {
		_spec.SetField(teaminvitation.FieldInvitedBy, field.TypeInt, value)
		_node.InvitedBy = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(teaminvitation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TeamIDs(); len(nodes) > 0 {
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
		_node.TeamID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TeamInvitationCreateBulk is the builder for creating many TeamInvitation entities in bulk.
type TeamInvitationCreateBulk struct {
	config
	err      error
	builders []*TeamInvitationCreate
}

// Save creates the TeamInvitation entities in the database.
func (_c *TeamInvitationCreateBulk) Save(ctx context.Context) ([]*TeamInvitation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TeamInvitation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TeamInvitationMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TeamInvitationCreateBulk) SaveX(ctx context.Context) []*TeamInvitation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TeamInvitationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TeamInvitationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
