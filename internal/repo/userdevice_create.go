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
	"github.com/amparasaude/ampara_backend/internal/repo/userdevice"
	"github.com/google/uuid"
)

// UserDeviceCreate is the builder for creating a UserDevice entity.
type UserDeviceCreate struct {
	config
	mutation *UserDeviceMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *UserDeviceCreate) SetCreatedAt(v time.Time) *UserDeviceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UserDeviceCreate) SetNillableCreatedAt(v *time.Time) *UserDeviceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *UserDeviceCreate) SetUserID(v uuid.UUID) *UserDeviceCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetDeviceToken sets the "device_token" field.
func (_c *UserDeviceCreate) SetDeviceToken(v string) *UserDeviceCreate {
	_c.mutation.SetDeviceToken(v)
	return _c
}

// SetPlatform sets the "platform" field.
func (_c *UserDeviceCreate) SetPlatform(v userdevice.Platform) *UserDeviceCreate {
	_c.mutation.SetPlatform(v)
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *UserDeviceCreate) SetIsActive(v bool) *UserDeviceCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *UserDeviceCreate) SetNillableIsActive(v *bool) *UserDeviceCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UserDeviceCreate) SetID(v uuid.UUID) *UserDeviceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *UserDeviceCreate) SetNillableID(v *uuid.UUID) *UserDeviceCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the UserDeviceMutation object of the builder.
func (_c *UserDeviceCreate) Mutation() *UserDeviceMutation {
	return _c.mutation
}

// Save creates the UserDevice in the database.
func (_c *UserDeviceCreate) Save(ctx context.Context) (*UserDevice, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserDeviceCreate) SaveX(ctx context.Context) *UserDevice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserDeviceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserDeviceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserDeviceCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := userdevice.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := userdevice.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := userdevice.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserDeviceCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "UserDevice.created_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`repo: missing required field "UserDevice.user_id"`)}
	}
	if _, ok := _c.mutation.DeviceToken(); !ok {
		return &ValidationError{Name: "device_token", err: errors.New(`repo: missing required field "UserDevice.device_token"`)}
	}
	if v, ok := _c.mutation.DeviceToken(); ok {
		if err := userdevice.DeviceTokenValidator(v); err != nil {
			return &ValidationError{Name: "device_token", err: fmt.Errorf(`repo: validator failed for field "UserDevice.device_token": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Platform(); !ok {
		return &ValidationError{Name: "platform", err: errors.New(`repo: missing required field "UserDevice.platform"`)}
	}
	if v, ok := _c.mutation.Platform(); ok {
		if err := userdevice.PlatformValidator(v); err != nil {
			return &ValidationError{Name: "platform", err: fmt.Errorf(`repo: validator failed for field "UserDevice.platform": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`repo: missing required field "UserDevice.is_active"`)}
	}
	return nil
}

func (_c *UserDeviceCreate) sqlSave(ctx context.Context) (*UserDevice, error) {
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

func (_c *UserDeviceCreate) createSpec() (*UserDevice, *sqlgraph.CreateSpec) {
	var (
		_node = &UserDevice{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(userdevice.Table, sqlgraph.NewFieldSpec(userdevice.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(userdevice.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(userdevice.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.DeviceToken(); ok {
		_spec.SetField(userdevice.FieldDeviceToken, field.TypeString, value)
		_node.DeviceToken = value
	}
	if value, ok := _c.mutation.Platform(); ok {
		_spec.SetField(userdevice.FieldPlatform, field.TypeEnum, value)
		_node.Platform = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(userdevice.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UserDevice.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UserDeviceUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *UserDeviceCreate) OnConflict(opts ...sql.ConflictOption) *UserDeviceUpsertOne {
	_c.conflict = opts
	return &UserDeviceUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UserDevice.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UserDeviceCreate) OnConflictColumns(columns ...string) *UserDeviceUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UserDeviceUpsertOne{
		create: _c,
	}
}

type (
	// UserDeviceUpsertOne is the builder for "upsert"-ing
	//  one UserDevice node.
	UserDeviceUpsertOne struct {
		create *UserDeviceCreate
	}

	// UserDeviceUpsert is the "OnConflict" setter.
	UserDeviceUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *UserDeviceUpsert) SetUserID(v uuid.UUID) *UserDeviceUpsert {
	u.Set(userdevice.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *UserDeviceUpsert) UpdateUserID() *UserDeviceUpsert {
	u.SetExcluded(userdevice.FieldUserID)
	return u
}

// SetDeviceToken sets the "device_token" field.
func (u *UserDeviceUpsert) SetDeviceToken(v string) *UserDeviceUpsert {
	u.Set(userdevice.FieldDeviceToken, v)
	return u
}

// UpdateDeviceToken sets the "device_token" field to the value that was provided on create.
func (u *UserDeviceUpsert) UpdateDeviceToken() *UserDeviceUpsert {
	u.SetExcluded(userdevice.FieldDeviceToken)
	return u
}

// SetPlatform sets the "platform" field.
func (u *UserDeviceUpsert) SetPlatform(v userdevice.Platform) *UserDeviceUpsert {
	u.Set(userdevice.FieldPlatform, v)
	return u
}

// UpdatePlatform sets the "platform" field to the value that was provided on create.
func (u *UserDeviceUpsert) UpdatePlatform() *UserDeviceUpsert {
	u.SetExcluded(userdevice.FieldPlatform)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *UserDeviceUpsert) SetIsActive(v bool) *UserDeviceUpsert {
	u.Set(userdevice.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *UserDeviceUpsert) UpdateIsActive() *UserDeviceUpsert {
	u.SetExcluded(userdevice.FieldIsActive)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.UserDevice.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(userdevice.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UserDeviceUpsertOne) UpdateNewValues() *UserDeviceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(userdevice.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(userdevice.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UserDevice.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *UserDeviceUpsertOne) Ignore() *UserDeviceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UserDeviceUpsertOne) DoNothing() *UserDeviceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UserDeviceCreate.OnConflict
// documentation for more info.
func (u *UserDeviceUpsertOne) Update(set func(*UserDeviceUpsert)) *UserDeviceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UserDeviceUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *UserDeviceUpsertOne) SetUserID(v uuid.UUID) *UserDeviceUpsertOne {
	return u.Update(func(s *UserDeviceUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *UserDeviceUpsertOne) UpdateUserID() *UserDeviceUpsertOne {
	return u.Update(func(s *UserDeviceUpsert) {
		s.UpdateUserID()
	})
}

// SetDeviceToken sets the "device_token" field.
func (u *UserDeviceUpsertOne) SetDeviceToken(v string) *UserDeviceUpsertOne {
	return u.Update(func(s *UserDeviceUpsert) {
		s.SetDeviceToken(v)
	})
}

// UpdateDeviceToken sets the "device_token" field to the value that was provided on create.
func (u *UserDeviceUpsertOne) UpdateDeviceToken() *UserDeviceUpsertOne {
	return u.Update(func(s *UserDeviceUpsert) {
		s.UpdateDeviceToken()
	})
}

// SetPlatform sets the "platform" field.
func (u *UserDeviceUpsertOne) SetPlatform(v userdevice.Platform) *UserDeviceUpsertOne {
	return u.Update(func(s *UserDeviceUpsert) {
		s.SetPlatform(v)
	})
}

// UpdatePlatform sets the "platform" field to the value that was provided on create.
func (u *UserDeviceUpsertOne) UpdatePlatform() *UserDeviceUpsertOne {
	return u.Update(func(s *UserDeviceUpsert) {
		s.UpdatePlatform()
	})
}

// SetIsActive sets the "is_active" field.
func (u *UserDeviceUpsertOne) SetIsActive(v bool) *UserDeviceUpsertOne {
	return u.Update(func(s *UserDeviceUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *UserDeviceUpsertOne) UpdateIsActive() *UserDeviceUpsertOne {
	return u.Update(func(s *UserDeviceUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *UserDeviceUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for UserDeviceCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UserDeviceUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *UserDeviceUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: UserDeviceUpsertOne.ID is not supported by MySQL driver. Use UserDeviceUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *UserDeviceUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// UserDeviceCreateBulk is the builder for creating many UserDevice entities in bulk.
type UserDeviceCreateBulk struct {
	config
	err      error
	builders []*UserDeviceCreate
	conflict []sql.ConflictOption
}

// Save creates the UserDevice entities in the database.
func (_c *UserDeviceCreateBulk) Save(ctx context.Context) ([]*UserDevice, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UserDevice, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserDeviceMutation)
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
func (_c *UserDeviceCreateBulk) SaveX(ctx context.Context) []*UserDevice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserDeviceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserDeviceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UserDevice.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UserDeviceUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *UserDeviceCreateBulk) OnConflict(opts ...sql.ConflictOption) *UserDeviceUpsertBulk {
	_c.conflict = opts
	return &UserDeviceUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UserDevice.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UserDeviceCreateBulk) OnConflictColumns(columns ...string) *UserDeviceUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UserDeviceUpsertBulk{
		create: _c,
	}
}

// UserDeviceUpsertBulk is the builder for "upsert"-ing
// a bulk of UserDevice nodes.
type UserDeviceUpsertBulk struct {
	create *UserDeviceCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.UserDevice.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(userdevice.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UserDeviceUpsertBulk) UpdateNewValues() *UserDeviceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(userdevice.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(userdevice.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UserDevice.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *UserDeviceUpsertBulk) Ignore() *UserDeviceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UserDeviceUpsertBulk) DoNothing() *UserDeviceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UserDeviceCreateBulk.OnConflict
// documentation for more info.
func (u *UserDeviceUpsertBulk) Update(set func(*UserDeviceUpsert)) *UserDeviceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UserDeviceUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *UserDeviceUpsertBulk) SetUserID(v uuid.UUID) *UserDeviceUpsertBulk {
	return u.Update(func(s *UserDeviceUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *UserDeviceUpsertBulk) UpdateUserID() *UserDeviceUpsertBulk {
	return u.Update(func(s *UserDeviceUpsert) {
		s.UpdateUserID()
	})
}

// SetDeviceToken sets the "device_token" field.
func (u *UserDeviceUpsertBulk) SetDeviceToken(v string) *UserDeviceUpsertBulk {
	return u.Update(func(s *UserDeviceUpsert) {
		s.SetDeviceToken(v)
	})
}

// UpdateDeviceToken sets the "device_token" field to the value that was provided on create.
func (u *UserDeviceUpsertBulk) UpdateDeviceToken() *UserDeviceUpsertBulk {
	return u.Update(func(s *UserDeviceUpsert) {
		s.UpdateDeviceToken()
	})
}

// SetPlatform sets the "platform" field.
func (u *UserDeviceUpsertBulk) SetPlatform(v userdevice.Platform) *UserDeviceUpsertBulk {
	return u.Update(func(s *UserDeviceUpsert) {
		s.SetPlatform(v)
	})
}

// UpdatePlatform sets the "platform" field to the value that was provided on create.
func (u *UserDeviceUpsertBulk) UpdatePlatform() *UserDeviceUpsertBulk {
	return u.Update(func(s *UserDeviceUpsert) {
		s.UpdatePlatform()
	})
}

// SetIsActive sets the "is_active" field.
func (u *UserDeviceUpsertBulk) SetIsActive(v bool) *UserDeviceUpsertBulk {
	return u.Update(func(s *UserDeviceUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *UserDeviceUpsertBulk) UpdateIsActive() *UserDeviceUpsertBulk {
	return u.Update(func(s *UserDeviceUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *UserDeviceUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the UserDeviceCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for UserDeviceCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UserDeviceUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
