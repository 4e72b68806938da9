// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/amparasaude/ampara_backend/internal/repo/predicate"
	"github.com/amparasaude/ampara_backend/internal/repo/unavailability"
	"github.com/google/uuid"
)

// UnavailabilityUpdate is the builder for updating Unavailability entities.
type UnavailabilityUpdate struct {
	config
	hooks    []Hook
	mutation *UnavailabilityMutation
}

// Where appends a list predicates to the UnavailabilityUpdate builder.
func (_u *UnavailabilityUpdate) Where(ps ...predicate.Unavailability) *UnavailabilityUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UnavailabilityUpdate) SetUpdatedAt(v time.Time) *UnavailabilityUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPsychologistID sets the "psychologist_id" field.
func (_u *UnavailabilityUpdate) SetPsychologistID(v uuid.UUID) *UnavailabilityUpdate {
	_u.mutation.SetPsychologistID(v)
	return _u
}

// SetNillablePsychologistID sets the "psychologist_id" field if the given value is not nil.
func (_u *UnavailabilityUpdate) SetNillablePsychologistID(v *uuid.UUID) *UnavailabilityUpdate {
	if v != nil {
		_u.SetPsychologistID(*v)
	}
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *UnavailabilityUpdate) SetClinicID(v uuid.UUID) *UnavailabilityUpdate {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *UnavailabilityUpdate) SetNillableClinicID(v *uuid.UUID) *UnavailabilityUpdate {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *UnavailabilityUpdate) SetStartTime(v time.Time) *UnavailabilityUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *UnavailabilityUpdate) SetNillableStartTime(v *time.Time) *UnavailabilityUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *UnavailabilityUpdate) SetEndTime(v time.Time) *UnavailabilityUpdate {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *UnavailabilityUpdate) SetNillableEndTime(v *time.Time) *UnavailabilityUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *UnavailabilityUpdate) SetReason(v string) *UnavailabilityUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *UnavailabilityUpdate) SetNillableReason(v *string) *UnavailabilityUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *UnavailabilityUpdate) ClearReason() *UnavailabilityUpdate {
	_u.mutation.ClearReason()
	return _u
}

// Mutation returns the UnavailabilityMutation object of the builder.
func (_u *UnavailabilityUpdate) Mutation() *UnavailabilityMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UnavailabilityUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UnavailabilityUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UnavailabilityUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UnavailabilityUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UnavailabilityUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := unavailability.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UnavailabilityUpdate) check() error {
	if v, ok := _u.mutation.Reason(); ok {
		if err := unavailability.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`repo: validator failed for field "Unavailability.reason": %w`, err)}
		}
	}
	return nil
}

func (_u *UnavailabilityUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(unavailability.Table, unavailability.Columns, sqlgraph.NewFieldSpec(unavailability.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(unavailability.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PsychologistID(); ok {
		_spec.SetField(unavailability.FieldPsychologistID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ClinicID(); ok {
		_spec.SetField(unavailability.FieldClinicID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(unavailability.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(unavailability.FieldEndTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(unavailability.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(unavailability.FieldReason, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{unavailability.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UnavailabilityUpdateOne is the builder for updating a single Unavailability entity.
type UnavailabilityUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UnavailabilityMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UnavailabilityUpdateOne) SetUpdatedAt(v time.Time) *UnavailabilityUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPsychologistID sets the "psychologist_id" field.
func (_u *UnavailabilityUpdateOne) SetPsychologistID(v uuid.UUID) *UnavailabilityUpdateOne {
	_u.mutation.SetPsychologistID(v)
	return _u
}

// SetNillablePsychologistID sets the "psychologist_id" field if the given value is not nil.
func (_u *UnavailabilityUpdateOne) SetNillablePsychologistID(v *uuid.UUID) *UnavailabilityUpdateOne {
	if v != nil {
		_u.SetPsychologistID(*v)
	}
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *UnavailabilityUpdateOne) SetClinicID(v uuid.UUID) *UnavailabilityUpdateOne {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *UnavailabilityUpdateOne) SetNillableClinicID(v *uuid.UUID) *UnavailabilityUpdateOne {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *UnavailabilityUpdateOne) SetStartTime(v time.Time) *UnavailabilityUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *UnavailabilityUpdateOne) SetNillableStartTime(v *time.Time) *UnavailabilityUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *UnavailabilityUpdateOne) SetEndTime(v time.Time) *UnavailabilityUpdateOne {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *UnavailabilityUpdateOne) SetNillableEndTime(v *time.Time) *UnavailabilityUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *UnavailabilityUpdateOne) SetReason(v string) *UnavailabilityUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *UnavailabilityUpdateOne) SetNillableReason(v *string) *UnavailabilityUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *UnavailabilityUpdateOne) ClearReason() *UnavailabilityUpdateOne {
	_u.mutation.ClearReason()
	return _u
}

// Mutation returns the UnavailabilityMutation object of the builder.
func (_u *UnavailabilityUpdateOne) Mutation() *UnavailabilityMutation {
	return _u.mutation
}

// Where appends a list predicates to the UnavailabilityUpdate builder.
func (_u *UnavailabilityUpdateOne) Where(ps ...predicate.Unavailability) *UnavailabilityUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UnavailabilityUpdateOne) Select(field string, fields ...string) *UnavailabilityUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Unavailability entity.
func (_u *UnavailabilityUpdateOne) Save(ctx context.Context) (*Unavailability, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UnavailabilityUpdateOne) SaveX(ctx context.Context) *Unavailability {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UnavailabilityUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UnavailabilityUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UnavailabilityUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := unavailability.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UnavailabilityUpdateOne) check() error {
	if v, ok := _u.mutation.Reason(); ok {
		if err := unavailability.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`repo: validator failed for field "Unavailability.reason": %w`, err)}
		}
	}
	return nil
}

func (_u *UnavailabilityUpdateOne) sqlSave(ctx context.Context) (_node *Unavailability, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(unavailability.Table, unavailability.Columns, sqlgraph.NewFieldSpec(unavailability.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Unavailability.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, unavailability.FieldID)
		for _, f := range fields {
			if !unavailability.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != unavailability.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(unavailability.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PsychologistID(); ok {
		_spec.SetField(unavailability.FieldPsychologistID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ClinicID(); ok {
		_spec.SetField(unavailability.FieldClinicID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(unavailability.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(unavailability.FieldEndTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(unavailability.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(unavailability.FieldReason, field.TypeString)
	}
	_node = &Unavailability{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{unavailability.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
