// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/amparasaude/ampara_backend/internal/repo/predicate"
	"github.com/amparasaude/ampara_backend/internal/repo/userdevice"
	"github.com/google/uuid"
)

// UserDeviceUpdate is the builder for updating UserDevice entities.
type UserDeviceUpdate struct {
	config
	hooks    []Hook
	mutation *UserDeviceMutation
}

// Where appends a list predicates to the UserDeviceUpdate builder.
func (_u *UserDeviceUpdate) Where(ps ...predicate.UserDevice) *UserDeviceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *UserDeviceUpdate) SetUserID(v uuid.UUID) *UserDeviceUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UserDeviceUpdate) SetNillableUserID(v *uuid.UUID) *UserDeviceUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetDeviceToken sets the "device_token" field.
func (_u *UserDeviceUpdate) SetDeviceToken(v string) *UserDeviceUpdate {
	_u.mutation.SetDeviceToken(v)
	return _u
}

// SetNillableDeviceToken sets the "device_token" field if the given value is not nil.
func (_u *UserDeviceUpdate) SetNillableDeviceToken(v *string) *UserDeviceUpdate {
	if v != nil {
		_u.SetDeviceToken(*v)
	}
	return _u
}

// SetPlatform sets the "platform" field.
func (_u *UserDeviceUpdate) SetPlatform(v userdevice.Platform) *UserDeviceUpdate {
	_u.mutation.SetPlatform(v)
	return _u
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_u *UserDeviceUpdate) SetNillablePlatform(v *userdevice.Platform) *UserDeviceUpdate {
	if v != nil {
		_u.SetPlatform(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *UserDeviceUpdate) SetIsActive(v bool) *UserDeviceUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *UserDeviceUpdate) SetNillableIsActive(v *bool) *UserDeviceUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the UserDeviceMutation object of the builder.
func (_u *UserDeviceUpdate) Mutation() *UserDeviceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserDeviceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserDeviceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserDeviceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserDeviceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserDeviceUpdate) check() error {
	if v, ok := _u.mutation.DeviceToken(); ok {
		if err := userdevice.DeviceTokenValidator(v); err != nil {
			return &ValidationError{Name: "device_token", err: fmt.Errorf(`repo: validator failed for field "UserDevice.device_token": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Platform(); ok {
		if err := userdevice.PlatformValidator(v); err != nil {
			return &ValidationError{Name: "platform", err: fmt.Errorf(`repo: validator failed for field "UserDevice.platform": %w`, err)}
		}
	}
	return nil
}

func (_u *UserDeviceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(userdevice.Table, userdevice.Columns, sqlgraph.NewFieldSpec(userdevice.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(userdevice.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DeviceToken(); ok {
		_spec.SetField(userdevice.FieldDeviceToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.Platform(); ok {
		_spec.SetField(userdevice.FieldPlatform, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(userdevice.FieldIsActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userdevice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserDeviceUpdateOne is the builder for updating a single UserDevice entity.
type UserDeviceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserDeviceMutation
}

// SetUserID sets the "user_id" field.
func (_u *UserDeviceUpdateOne) SetUserID(v uuid.UUID) *UserDeviceUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UserDeviceUpdateOne) SetNillableUserID(v *uuid.UUID) *UserDeviceUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetDeviceToken sets the "device_token" field.
func (_u *UserDeviceUpdateOne) SetDeviceToken(v string) *UserDeviceUpdateOne {
	_u.mutation.SetDeviceToken(v)
	return _u
}

// SetNillableDeviceToken sets the "device_token" field if the given value is not nil.
func (_u *UserDeviceUpdateOne) SetNillableDeviceToken(v *string) *UserDeviceUpdateOne {
	if v != nil {
		_u.SetDeviceToken(*v)
	}
	return _u
}

// SetPlatform sets the "platform" field.
func (_u *UserDeviceUpdateOne) SetPlatform(v userdevice.Platform) *UserDeviceUpdateOne {
	_u.mutation.SetPlatform(v)
	return _u
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_u *UserDeviceUpdateOne) SetNillablePlatform(v *userdevice.Platform) *UserDeviceUpdateOne {
	if v != nil {
		_u.SetPlatform(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *UserDeviceUpdateOne) SetIsActive(v bool) *UserDeviceUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *UserDeviceUpdateOne) SetNillableIsActive(v *bool) *UserDeviceUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the UserDeviceMutation object of the builder.
func (_u *UserDeviceUpdateOne) Mutation() *UserDeviceMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserDeviceUpdate builder.
func (_u *UserDeviceUpdateOne) Where(ps ...predicate.UserDevice) *UserDeviceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserDeviceUpdateOne) Select(field string, fields ...string) *UserDeviceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserDevice entity.
func (_u *UserDeviceUpdateOne) Save(ctx context.Context) (*UserDevice, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserDeviceUpdateOne) SaveX(ctx context.Context) *UserDevice {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserDeviceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserDeviceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserDeviceUpdateOne) check() error {
	if v, ok := _u.mutation.DeviceToken(); ok {
		if err := userdevice.DeviceTokenValidator(v); err != nil {
			return &ValidationError{Name: "device_token", err: fmt.Errorf(`repo: validator failed for field "UserDevice.device_token": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Platform(); ok {
		if err := userdevice.PlatformValidator(v); err != nil {
			return &ValidationError{Name: "platform", err: fmt.Errorf(`repo: validator failed for field "UserDevice.platform": %w`, err)}
		}
	}
	return nil
}

func (_u *UserDeviceUpdateOne) sqlSave(ctx context.Context) (_node *UserDevice, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(userdevice.Table, userdevice.Columns, sqlgraph.NewFieldSpec(userdevice.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "UserDevice.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userdevice.FieldID)
		for _, f := range fields {
			if !userdevice.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != userdevice.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(userdevice.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DeviceToken(); ok {
		_spec.SetField(userdevice.FieldDeviceToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.Platform(); ok {
		_spec.SetField(userdevice.FieldPlatform, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(userdevice.FieldIsActive, field.TypeBool, value)
	}
	_node = &UserDevice{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userdevice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
