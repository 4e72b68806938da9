// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/amparasaude/ampara_backend/internal/repo/clinic"
	"github.com/amparasaude/ampara_backend/internal/repo/clinicpermission"
	"github.com/amparasaude/ampara_backend/internal/repo/user"
	"github.com/google/uuid"
)

// ClinicPermissionCreate is the builder for creating a ClinicPermission entity.
type ClinicPermissionCreate struct {
	config
	mutation *ClinicPermissionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *ClinicPermissionCreate) SetCreatedAt(v time.Time) *ClinicPermissionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ClinicPermissionCreate) SetNillableCreatedAt(v *time.Time) *ClinicPermissionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetClinicID sets the "clinic_id" field.
func (_c *ClinicPermissionCreate) SetClinicID(v uuid.UUID) *ClinicPermissionCreate {
	_c.mutation.SetClinicID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ClinicPermissionCreate) SetUserID(v uuid.UUID) *ClinicPermissionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetResourceType sets the "resource_type" field.
func (_c *ClinicPermissionCreate) SetResourceType(v string) *ClinicPermissionCreate {
	_c.mutation.SetResourceType(v)
	return _c
}

// SetResourceID sets the "resource_id" field.
func (_c *ClinicPermissionCreate) SetResourceID(v uuid.UUID) *ClinicPermissionCreate {
	_c.mutation.SetResourceID(v)
	return _c
}

// SetNillableResourceID sets the "resource_id" field if the given value is not nil.
func (_c *ClinicPermissionCreate) SetNillableResourceID(v *uuid.UUID) *ClinicPermissionCreate {
	if v != nil {
		_c.SetResourceID(*v)
	}
	return _c
}

// SetAction sets the "action" field.
func (_c *ClinicPermissionCreate) SetAction(v string) *ClinicPermissionCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetGranted sets the "granted" field.
func (_c *ClinicPermissionCreate) SetGranted(v bool) *ClinicPermissionCreate {
	_c.mutation.SetGranted(v)
	return _c
}

// SetNillableGranted sets the "granted" field if the given value is not nil.
func (_c *ClinicPermissionCreate) SetNillableGranted(v *bool) *ClinicPermissionCreate {
	if v != nil {
		_c.SetGranted(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ClinicPermissionCreate) SetID(v uuid.UUID) *ClinicPermissionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ClinicPermissionCreate) SetNillableID(v *uuid.UUID) *ClinicPermissionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetClinic sets the "clinic" edge to the Clinic entity.
func (_c *ClinicPermissionCreate) SetClinic(v *Clinic) *ClinicPermissionCreate {
	return _c.SetClinicID(v.ID)
}

// SetUser sets the "user" edge to the User entity.
func (_c *ClinicPermissionCreate) SetUser(v *User) *ClinicPermissionCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the ClinicPermissionMutation object of the builder.
func (_c *ClinicPermissionCreate) Mutation() *ClinicPermissionMutation {
	return _c.mutation
}

// Save creates the ClinicPermission in the database.
func (_c *ClinicPermissionCreate) Save(ctx context.Context) (*ClinicPermission, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ClinicPermissionCreate) SaveX(ctx context.Context) *ClinicPermission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClinicPermissionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClinicPermissionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ClinicPermissionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := clinicpermission.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.Granted(); !ok {
		v := clinicpermission.DefaultGranted
		_c.mutation.SetGranted(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := clinicpermission.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ClinicPermissionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "ClinicPermission.created_at"`)}
	}
	if _, ok := _c.mutation.ClinicID(); !ok {
		return &ValidationError{Name: "clinic_id", err: errors.New(`repo: missing required field "ClinicPermission.clinic_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`repo: missing required field "ClinicPermission.user_id"`)}
	}
	if _, ok := _c.mutation.ResourceType(); !ok {
		return &ValidationError{Name: "resource_type", err: errors.New(`repo: missing required field "ClinicPermission.resource_type"`)}
	}
	if v, ok := _c.mutation.ResourceType(); ok {
		if err := clinicpermission.ResourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "resource_type", err: fmt.Errorf(`repo: validator failed for field "ClinicPermission.resource_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`repo: missing required field "ClinicPermission.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := clinicpermission.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`repo: validator failed for field "ClinicPermission.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Granted(); !ok {
		return &ValidationError{Name: "granted", err: errors.New(`repo: missing required field "ClinicPermission.granted"`)}
	}
	if len(_c.mutation.ClinicIDs()) == 0 {
		return &ValidationError{Name: "clinic", err: errors.New(`repo: missing required edge "ClinicPermission.clinic"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`repo: missing required edge "ClinicPermission.user"`)}
	}
	return nil
}

func (_c *ClinicPermissionCreate) sqlSave(ctx context.Context) (*ClinicPermission, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ClinicPermissionCreate) createSpec() (*ClinicPermission, *sqlgraph.CreateSpec) {
	var (
		_node = &ClinicPermission{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(clinicpermission.Table, sqlgraph.NewFieldSpec(clinicpermission.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(clinicpermission.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ResourceType(); ok {
		_spec.SetField(clinicpermission.FieldResourceType, field.TypeString, value)
		_node.ResourceType = value
	}
	if value, ok := _c.mutation.ResourceID(); ok {
		_spec.SetField(clinicpermission.FieldResourceID, field.TypeUUID, value)
		_node.ResourceID = &value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(clinicpermission.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.Granted(); ok {
		_spec.SetField(clinicpermission.FieldGranted, field.TypeBool, value)
		_node.Granted = value
	}
	if nodes := _c.mutation.ClinicIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   clinicpermission.ClinicTable,
			Columns: []string{clinicpermission.ClinicColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clinic.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ClinicID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   clinicpermission.UserTable,
			Columns: []string{clinicpermission.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ClinicPermission.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ClinicPermissionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ClinicPermissionCreate) OnConflict(opts ...sql.ConflictOption) *ClinicPermissionUpsertOne {
	_c.conflict = opts
	return &ClinicPermissionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ClinicPermission.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ClinicPermissionCreate) OnConflictColumns(columns ...string) *ClinicPermissionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ClinicPermissionUpsertOne{
		create: _c,
	}
}

type (
	// ClinicPermissionUpsertOne is the builder for "upsert"-ing
	//  one ClinicPermission node.
	ClinicPermissionUpsertOne struct {
		create *ClinicPermissionCreate
	}

	// ClinicPermissionUpsert is the "OnConflict" setter.
	ClinicPermissionUpsert struct {
		*sql.UpdateSet
	}
)

// SetClinicID sets the "clinic_id" field.
func (u *ClinicPermissionUpsert) SetClinicID(v uuid.UUID) *ClinicPermissionUpsert {
	u.Set(clinicpermission.FieldClinicID, v)
	return u
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *ClinicPermissionUpsert) UpdateClinicID() *ClinicPermissionUpsert {
	u.SetExcluded(clinicpermission.FieldClinicID)
	return u
}

// SetUserID sets the "user_id" field.
func (u *ClinicPermissionUpsert) SetUserID(v uuid.UUID) *ClinicPermissionUpsert {
	u.Set(clinicpermission.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ClinicPermissionUpsert) UpdateUserID() *ClinicPermissionUpsert {
	u.SetExcluded(clinicpermission.FieldUserID)
	return u
}

// SetResourceType sets the "resource_type" field.
func (u *ClinicPermissionUpsert) SetResourceType(v string) *ClinicPermissionUpsert {
	u.Set(clinicpermission.FieldResourceType, v)
	return u
}

// UpdateResourceType sets the "resource_type" field to the value that was provided on create.
func (u *ClinicPermissionUpsert) UpdateResourceType() *ClinicPermissionUpsert {
	u.SetExcluded(clinicpermission.FieldResourceType)
	return u
}

// SetResourceID sets the "resource_id" field.
func (u *ClinicPermissionUpsert) SetResourceID(v uuid.UUID) *ClinicPermissionUpsert {
	u.Set(clinicpermission.FieldResourceID, v)
	return u
}

// UpdateResourceID sets the "resource_id" field to the value that was provided on create.
func (u *ClinicPermissionUpsert) UpdateResourceID() *ClinicPermissionUpsert {
	u.SetExcluded(clinicpermission.FieldResourceID)
	return u
}

// ClearResourceID clears the value of the "resource_id" field.
func (u *ClinicPermissionUpsert) ClearResourceID() *ClinicPermissionUpsert {
	u.SetNull(clinicpermission.FieldResourceID)
	return u
}

// SetAction sets the "action" field.
func (u *ClinicPermissionUpsert) SetAction(v string) *ClinicPermissionUpsert {
	u.Set(clinicpermission.FieldAction, v)
	return u
}

// UpdateAction sets the "action" field to the value that was provided on create.
func (u *ClinicPermissionUpsert) UpdateAction() *ClinicPermissionUpsert {
	u.SetExcluded(clinicpermission.FieldAction)
	return u
}

// SetGranted sets the "granted" field.
func (u *ClinicPermissionUpsert) SetGranted(v bool) *ClinicPermissionUpsert {
	u.Set(clinicpermission.FieldGranted, v)
	return u
}

// UpdateGranted sets the "granted" field to the value that was provided on create.
func (u *ClinicPermissionUpsert) UpdateGranted() *ClinicPermissionUpsert {
	u.SetExcluded(clinicpermission.FieldGranted)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ClinicPermission.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(clinicpermission.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ClinicPermissionUpsertOne) UpdateNewValues() *ClinicPermissionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(clinicpermission.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(clinicpermission.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ClinicPermission.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ClinicPermissionUpsertOne) Ignore() *ClinicPermissionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ClinicPermissionUpsertOne) DoNothing() *ClinicPermissionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ClinicPermissionCreate.OnConflict
// documentation for more info.
func (u *ClinicPermissionUpsertOne) Update(set func(*ClinicPermissionUpsert)) *ClinicPermissionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ClinicPermissionUpsert{UpdateSet: update})
	}))
	return u
}

// SetClinicID sets the "clinic_id" field.
func (u *ClinicPermissionUpsertOne) SetClinicID(v uuid.UUID) *ClinicPermissionUpsertOne {
	return u.Update(func(s *ClinicPermissionUpsert) {
		s.SetClinicID(v)
	})
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *ClinicPermissionUpsertOne) UpdateClinicID() *ClinicPermissionUpsertOne {
	return u.Update(func(s *ClinicPermissionUpsert) {
		s.UpdateClinicID()
	})
}

// SetUserID sets the "user_id" field.
func (u *ClinicPermissionUpsertOne) SetUserID(v uuid.UUID) *ClinicPermissionUpsertOne {
	return u.Update(func(s *ClinicPermissionUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ClinicPermissionUpsertOne) UpdateUserID() *ClinicPermissionUpsertOne {
	return u.Update(func(s *ClinicPermissionUpsert) {
		s.UpdateUserID()
	})
}

// SetResourceType sets the "resource_type" field.
func (u *ClinicPermissionUpsertOne) SetResourceType(v string) *ClinicPermissionUpsertOne {
	return u.Update(func(s *ClinicPermissionUpsert) {
		s.SetResourceType(v)
	})
}

// UpdateResourceType sets the "resource_type" field to the value that was provided on create.
func (u *ClinicPermissionUpsertOne) UpdateResourceType() *ClinicPermissionUpsertOne {
	return u.Update(func(s *ClinicPermissionUpsert) {
		s.UpdateResourceType()
	})
}

// SetResourceID sets the "resource_id" field.
func (u *ClinicPermissionUpsertOne) SetResourceID(v uuid.UUID) *ClinicPermissionUpsertOne {
	return u.Update(func(s *ClinicPermissionUpsert) {
		s.SetResourceID(v)
	})
}

// UpdateResourceID sets the "resource_id" field to the value that was provided on create.
func (u *ClinicPermissionUpsertOne) UpdateResourceID() *ClinicPermissionUpsertOne {
	return u.Update(func(s *ClinicPermissionUpsert) {
		s.UpdateResourceID()
	})
}

// ClearResourceID clears the value of the "resource_id" field.
func (u *ClinicPermissionUpsertOne) ClearResourceID() *ClinicPermissionUpsertOne {
	return u.Update(func(s *ClinicPermissionUpsert) {
		s.ClearResourceID()
	})
}

// SetAction sets the "action" field.
func (u *ClinicPermissionUpsertOne) SetAction(v string) *ClinicPermissionUpsertOne {
	return u.Update(func(s *ClinicPermissionUpsert) {
		s.SetAction(v)
	})
}

// UpdateAction sets the "action" field to the value that was provided on create.
func (u *ClinicPermissionUpsertOne) UpdateAction() *ClinicPermissionUpsertOne {
	return u.Update(func(s *ClinicPermissionUpsert) {
		s.UpdateAction()
	})
}

// SetGranted sets the "granted" field.
func (u *ClinicPermissionUpsertOne) SetGranted(v bool) *ClinicPermissionUpsertOne {
	return u.Update(func(s *ClinicPermissionUpsert) {
		s.SetGranted(v)
	})
}

// UpdateGranted sets the "granted" field to the value that was provided on create.
func (u *ClinicPermissionUpsertOne) UpdateGranted() *ClinicPermissionUpsertOne {
	return u.Update(func(s *ClinicPermissionUpsert) {
		s.UpdateGranted()
	})
}

// Exec executes the query.
func (u *ClinicPermissionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ClinicPermissionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ClinicPermissionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ClinicPermissionUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: ClinicPermissionUpsertOne.ID is not supported by MySQL driver. Use ClinicPermissionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ClinicPermissionUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ClinicPermissionCreateBulk is the builder for creating many ClinicPermission entities in bulk.
type ClinicPermissionCreateBulk struct {
	config
	err      error
	builders []*ClinicPermissionCreate
	conflict []sql.ConflictOption
}

// Save creates the ClinicPermission entities in the database.
func (_c *ClinicPermissionCreateBulk) Save(ctx context.Context) ([]*ClinicPermission, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ClinicPermission, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ClinicPermissionMutation)
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
					spec.OnConflict = _c.conflict
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
func (_c *ClinicPermissionCreateBulk) SaveX(ctx context.Context) []*ClinicPermission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClinicPermissionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClinicPermissionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ClinicPermission.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ClinicPermissionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ClinicPermissionCreateBulk) OnConflict(opts ...sql.ConflictOption) *ClinicPermissionUpsertBulk {
	_c.conflict = opts
	return &ClinicPermissionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ClinicPermission.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ClinicPermissionCreateBulk) OnConflictColumns(columns ...string) *ClinicPermissionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ClinicPermissionUpsertBulk{
		create: _c,
	}
}

// ClinicPermissionUpsertBulk is the builder for "upsert"-ing
// a bulk of ClinicPermission nodes.
type ClinicPermissionUpsertBulk struct {
	create *ClinicPermissionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ClinicPermission.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(clinicpermission.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ClinicPermissionUpsertBulk) UpdateNewValues() *ClinicPermissionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(clinicpermission.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(clinicpermission.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ClinicPermission.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ClinicPermissionUpsertBulk) Ignore() *ClinicPermissionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ClinicPermissionUpsertBulk) DoNothing() *ClinicPermissionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ClinicPermissionCreateBulk.OnConflict
// documentation for more info.
func (u *ClinicPermissionUpsertBulk) Update(set func(*ClinicPermissionUpsert)) *ClinicPermissionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ClinicPermissionUpsert{UpdateSet: update})
	}))
	return u
}

// SetClinicID sets the "clinic_id" field.
func (u *ClinicPermissionUpsertBulk) SetClinicID(v uuid.UUID) *ClinicPermissionUpsertBulk {
	return u.Update(func(s *ClinicPermissionUpsert) {
		s.SetClinicID(v)
	})
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *ClinicPermissionUpsertBulk) UpdateClinicID() *ClinicPermissionUpsertBulk {
	return u.Update(func(s *ClinicPermissionUpsert) {
		s.UpdateClinicID()
	})
}

// SetUserID sets the "user_id" field.
func (u *ClinicPermissionUpsertBulk) SetUserID(v uuid.UUID) *ClinicPermissionUpsertBulk {
	return u.Update(func(s *ClinicPermissionUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ClinicPermissionUpsertBulk) UpdateUserID() *ClinicPermissionUpsertBulk {
	return u.Update(func(s *ClinicPermissionUpsert) {
		s.UpdateUserID()
	})
}

// SetResourceType sets the "resource_type" field.
func (u *ClinicPermissionUpsertBulk) SetResourceType(v string) *ClinicPermissionUpsertBulk {
	return u.Update(func(s *ClinicPermissionUpsert) {
		s.SetResourceType(v)
	})
}

// UpdateResourceType sets the "resource_type" field to the value that was provided on create.
func (u *ClinicPermissionUpsertBulk) UpdateResourceType() *ClinicPermissionUpsertBulk {
	return u.Update(func(s *ClinicPermissionUpsert) {
		s.UpdateResourceType()
	})
}

// SetResourceID sets the "resource_id" field.
func (u *ClinicPermissionUpsertBulk) SetResourceID(v uuid.UUID) *ClinicPermissionUpsertBulk {
	return u.Update(func(s *ClinicPermissionUpsert) {
		s.SetResourceID(v)
	})
}

// UpdateResourceID sets the "resource_id" field to the value that was provided on create.
func (u *ClinicPermissionUpsertBulk) UpdateResourceID() *ClinicPermissionUpsertBulk {
	return u.Update(func(s *ClinicPermissionUpsert) {
		s.UpdateResourceID()
	})
}

// ClearResourceID clears the value of the "resource_id" field.
func (u *ClinicPermissionUpsertBulk) ClearResourceID() *ClinicPermissionUpsertBulk {
	return u.Update(func(s *ClinicPermissionUpsert) {
		s.ClearResourceID()
	})
}

// SetAction sets the "action" field.
func (u *ClinicPermissionUpsertBulk) SetAction(v string) *ClinicPermissionUpsertBulk {
	return u.Update(func(s *ClinicPermissionUpsert) {
		s.SetAction(v)
	})
}

// UpdateAction sets the "action" field to the value that was provided on create.
func (u *ClinicPermissionUpsertBulk) UpdateAction() *ClinicPermissionUpsertBulk {
	return u.Update(func(s *ClinicPermissionUpsert) {
		s.UpdateAction()
	})
}

// SetGranted sets the "granted" field.
func (u *ClinicPermissionUpsertBulk) SetGranted(v bool) *ClinicPermissionUpsertBulk {
	return u.Update(func(s *ClinicPermissionUpsert) {
		s.SetGranted(v)
	})
}

// UpdateGranted sets the "granted" field to the value that was provided on create.
func (u *ClinicPermissionUpsertBulk) UpdateGranted() *ClinicPermissionUpsertBulk {
	return u.Update(func(s *ClinicPermissionUpsert) {
		s.UpdateGranted()
	})
}

// Exec executes the query.
func (u *ClinicPermissionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the ClinicPermissionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ClinicPermissionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ClinicPermissionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
