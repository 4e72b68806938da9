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
	"github.com/amparasaude/ampara_backend/internal/repo/clinic"
	"github.com/amparasaude/ampara_backend/internal/repo/clinicsettings"
	"github.com/amparasaude/ampara_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ClinicSettingsUpdate is the builder for updating ClinicSettings entities.
type ClinicSettingsUpdate struct {
	config
	hooks    []Hook
	mutation *ClinicSettingsMutation
}

// Where appends a list predicates to the ClinicSettingsUpdate builder.
func (_u *ClinicSettingsUpdate) Where(ps ...predicate.ClinicSettings) *ClinicSettingsUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClinicSettingsUpdate) SetUpdatedAt(v time.Time) *ClinicSettingsUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *ClinicSettingsUpdate) SetClinicID(v uuid.UUID) *ClinicSettingsUpdate {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *ClinicSettingsUpdate) SetNillableClinicID(v *uuid.UUID) *ClinicSettingsUpdate {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetCancellationWindowHours sets the "cancellation_window_hours" field.
func (_u *ClinicSettingsUpdate) SetCancellationWindowHours(v int) *ClinicSettingsUpdate {
	_u.mutation.ResetCancellationWindowHours()
	_u.mutation.SetCancellationWindowHours(v)
	return _u
}

// SetNillableCancellationWindowHours sets the "cancellation_window_hours" field if the given value is not nil.
func (_u *ClinicSettingsUpdate) SetNillableCancellationWindowHours(v *int) *ClinicSettingsUpdate {
	if v != nil {
		_u.SetCancellationWindowHours(*v)
	}
	return _u
}

// AddCancellationWindowHours adds value to the "cancellation_window_hours" field.
func (_u *ClinicSettingsUpdate) AddCancellationWindowHours(v int) *ClinicSettingsUpdate {
	_u.mutation.AddCancellationWindowHours(v)
	return _u
}

// SetAllowPatientSelfBook sets the "allow_patient_self_book" field.
func (_u *ClinicSettingsUpdate) SetAllowPatientSelfBook(v bool) *ClinicSettingsUpdate {
	_u.mutation.SetAllowPatientSelfBook(v)
	return _u
}

// SetNillableAllowPatientSelfBook sets the "allow_patient_self_book" field if the given value is not nil.
func (_u *ClinicSettingsUpdate) SetNillableAllowPatientSelfBook(v *bool) *ClinicSettingsUpdate {
	if v != nil {
		_u.SetAllowPatientSelfBook(*v)
	}
	return _u
}

// SetDefaultSessionDurationMin sets the "default_session_duration_min" field.
func (_u *ClinicSettingsUpdate) SetDefaultSessionDurationMin(v int) *ClinicSettingsUpdate {
	_u.mutation.ResetDefaultSessionDurationMin()
	_u.mutation.SetDefaultSessionDurationMin(v)
	return _u
}

// SetNillableDefaultSessionDurationMin sets the "default_session_duration_min" field if the given value is not nil.
func (_u *ClinicSettingsUpdate) SetNillableDefaultSessionDurationMin(v *int) *ClinicSettingsUpdate {
	if v != nil {
		_u.SetDefaultSessionDurationMin(*v)
	}
	return _u
}

// AddDefaultSessionDurationMin adds value to the "default_session_duration_min" field.
func (_u *ClinicSettingsUpdate) AddDefaultSessionDurationMin(v int) *ClinicSettingsUpdate {
	_u.mutation.AddDefaultSessionDurationMin(v)
	return _u
}

// SetDefaultSessionPriceCents sets the "default_session_price_cents" field.
func (_u *ClinicSettingsUpdate) SetDefaultSessionPriceCents(v int64) *ClinicSettingsUpdate {
	_u.mutation.ResetDefaultSessionPriceCents()
	_u.mutation.SetDefaultSessionPriceCents(v)
	return _u
}

// SetNillableDefaultSessionPriceCents sets the "default_session_price_cents" field if the given value is not nil.
func (_u *ClinicSettingsUpdate) SetNillableDefaultSessionPriceCents(v *int64) *ClinicSettingsUpdate {
	if v != nil {
		_u.SetDefaultSessionPriceCents(*v)
	}
	return _u
}

// AddDefaultSessionPriceCents adds value to the "default_session_price_cents" field.
func (_u *ClinicSettingsUpdate) AddDefaultSessionPriceCents(v int64) *ClinicSettingsUpdate {
	_u.mutation.AddDefaultSessionPriceCents(v)
	return _u
}

// SetWorkingHours sets the "working_hours" field.
func (_u *ClinicSettingsUpdate) SetWorkingHours(v map[string]interface{}) *ClinicSettingsUpdate {
	_u.mutation.SetWorkingHours(v)
	return _u
}

// ClearWorkingHours clears the value of the "working_hours" field.
func (_u *ClinicSettingsUpdate) ClearWorkingHours() *ClinicSettingsUpdate {
	_u.mutation.ClearWorkingHours()
	return _u
}

// SetClinic sets the "clinic" edge to the Clinic entity.
func (_u *ClinicSettingsUpdate) SetClinic(v *Clinic) *ClinicSettingsUpdate {
	return _u.SetClinicID(v.ID)
}

// Mutation returns the ClinicSettingsMutation object of the builder.
func (_u *ClinicSettingsUpdate) Mutation() *ClinicSettingsMutation {
	return _u.mutation
}

// ClearClinic clears the "clinic" edge to the Clinic entity.
func (_u *ClinicSettingsUpdate) ClearClinic() *ClinicSettingsUpdate {
	_u.mutation.ClearClinic()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ClinicSettingsUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClinicSettingsUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ClinicSettingsUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClinicSettingsUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClinicSettingsUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := clinicsettings.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClinicSettingsUpdate) check() error {
	if _u.mutation.ClinicCleared() && len(_u.mutation.ClinicIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "ClinicSettings.clinic"`)
	}
	return nil
}

func (_u *ClinicSettingsUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(clinicsettings.Table, clinicsettings.Columns, sqlgraph.NewFieldSpec(clinicsettings.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(clinicsettings.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CancellationWindowHours(); ok {
		_spec.SetField(clinicsettings.FieldCancellationWindowHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCancellationWindowHours(); ok {
		_spec.AddField(clinicsettings.FieldCancellationWindowHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AllowPatientSelfBook(); ok {
		_spec.SetField(clinicsettings.FieldAllowPatientSelfBook, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DefaultSessionDurationMin(); ok {
		_spec.SetField(clinicsettings.FieldDefaultSessionDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDefaultSessionDurationMin(); ok {
		_spec.AddField(clinicsettings.FieldDefaultSessionDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DefaultSessionPriceCents(); ok {
		_spec.SetField(clinicsettings.FieldDefaultSessionPriceCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDefaultSessionPriceCents(); ok {
		_spec.AddField(clinicsettings.FieldDefaultSessionPriceCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.WorkingHours(); ok {
		_spec.SetField(clinicsettings.FieldWorkingHours, field.TypeJSON, value)
	}
	if _u.mutation.WorkingHoursCleared() {
		_spec.ClearField(clinicsettings.FieldWorkingHours, field.TypeJSON)
	}
	if _u.mutation.ClinicCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   clinicsettings.ClinicTable,
			Columns: []string{clinicsettings.ClinicColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clinic.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClinicIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   clinicsettings.ClinicTable,
			Columns: []string{clinicsettings.ClinicColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clinic.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{clinicsettings.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ClinicSettingsUpdateOne is the builder for updating a single ClinicSettings entity.
type ClinicSettingsUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ClinicSettingsMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClinicSettingsUpdateOne) SetUpdatedAt(v time.Time) *ClinicSettingsUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *ClinicSettingsUpdateOne) SetClinicID(v uuid.UUID) *ClinicSettingsUpdateOne {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *ClinicSettingsUpdateOne) SetNillableClinicID(v *uuid.UUID) *ClinicSettingsUpdateOne {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetCancellationWindowHours sets the "cancellation_window_hours" field.
func (_u *ClinicSettingsUpdateOne) SetCancellationWindowHours(v int) *ClinicSettingsUpdateOne {
	_u.mutation.ResetCancellationWindowHours()
	_u.mutation.SetCancellationWindowHours(v)
	return _u
}

// SetNillableCancellationWindowHours sets the "cancellation_window_hours" field if the given value is not nil.
func (_u *ClinicSettingsUpdateOne) SetNillableCancellationWindowHours(v *int) *ClinicSettingsUpdateOne {
	if v != nil {
		_u.SetCancellationWindowHours(*v)
	}
	return _u
}

// AddCancellationWindowHours adds value to the "cancellation_window_hours" field.
func (_u *ClinicSettingsUpdateOne) AddCancellationWindowHours(v int) *ClinicSettingsUpdateOne {
	_u.mutation.AddCancellationWindowHours(v)
	return _u
}

// SetAllowPatientSelfBook sets the "allow_patient_self_book" field.
func (_u *ClinicSettingsUpdateOne) SetAllowPatientSelfBook(v bool) *ClinicSettingsUpdateOne {
	_u.mutation.SetAllowPatientSelfBook(v)
	return _u
}

// SetNillableAllowPatientSelfBook sets the "allow_patient_self_book" field if the given value is not nil.
func (_u *ClinicSettingsUpdateOne) SetNillableAllowPatientSelfBook(v *bool) *ClinicSettingsUpdateOne {
	if v != nil {
		_u.SetAllowPatientSelfBook(*v)
	}
	return _u
}

// SetDefaultSessionDurationMin sets the "default_session_duration_min" field.
func (_u *ClinicSettingsUpdateOne) SetDefaultSessionDurationMin(v int) *ClinicSettingsUpdateOne {
	_u.mutation.ResetDefaultSessionDurationMin()
	_u.mutation.SetDefaultSessionDurationMin(v)
	return _u
}

// SetNillableDefaultSessionDurationMin sets the "default_session_duration_min" field if the given value is not nil.
func (_u *ClinicSettingsUpdateOne) SetNillableDefaultSessionDurationMin(v *int) *ClinicSettingsUpdateOne {
	if v != nil {
		_u.SetDefaultSessionDurationMin(*v)
	}
	return _u
}

// AddDefaultSessionDurationMin adds value to the "default_session_duration_min" field.
func (_u *ClinicSettingsUpdateOne) AddDefaultSessionDurationMin(v int) *ClinicSettingsUpdateOne {
	_u.mutation.AddDefaultSessionDurationMin(v)
	return _u
}

// SetDefaultSessionPriceCents sets the "default_session_price_cents" field.
func (_u *ClinicSettingsUpdateOne) SetDefaultSessionPriceCents(v int64) *ClinicSettingsUpdateOne {
	_u.mutation.ResetDefaultSessionPriceCents()
	_u.mutation.SetDefaultSessionPriceCents(v)
	return _u
}

// SetNillableDefaultSessionPriceCents sets the "default_session_price_cents" field if the given value is not nil.
func (_u *ClinicSettingsUpdateOne) SetNillableDefaultSessionPriceCents(v *int64) *ClinicSettingsUpdateOne {
	if v != nil {
		_u.SetDefaultSessionPriceCents(*v)
	}
	return _u
}

// AddDefaultSessionPriceCents adds value to the "default_session_price_cents" field.
func (_u *ClinicSettingsUpdateOne) AddDefaultSessionPriceCents(v int64) *ClinicSettingsUpdateOne {
	_u.mutation.AddDefaultSessionPriceCents(v)
	return _u
}

// SetWorkingHours sets the "working_hours" field.
func (_u *ClinicSettingsUpdateOne) SetWorkingHours(v map[string]interface{}) *ClinicSettingsUpdateOne {
	_u.mutation.SetWorkingHours(v)
	return _u
}

// ClearWorkingHours clears the value of the "working_hours" field.
func (_u *ClinicSettingsUpdateOne) ClearWorkingHours() *ClinicSettingsUpdateOne {
	_u.mutation.ClearWorkingHours()
	return _u
}

// SetClinic sets the "clinic" edge to the Clinic entity.
func (_u *ClinicSettingsUpdateOne) SetClinic(v *Clinic) *ClinicSettingsUpdateOne {
	return _u.SetClinicID(v.ID)
}

// Mutation returns the ClinicSettingsMutation object of the builder.
func (_u *ClinicSettingsUpdateOne) Mutation() *ClinicSettingsMutation {
	return _u.mutation
}

// ClearClinic clears the "clinic" edge to the Clinic entity.
func (_u *ClinicSettingsUpdateOne) ClearClinic() *ClinicSettingsUpdateOne {
	_u.mutation.ClearClinic()
	return _u
}

// Where appends a list predicates to the ClinicSettingsUpdate builder.
func (_u *ClinicSettingsUpdateOne) Where(ps ...predicate.ClinicSettings) *ClinicSettingsUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ClinicSettingsUpdateOne) Select(field string, fields ...string) *ClinicSettingsUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ClinicSettings entity.
func (_u *ClinicSettingsUpdateOne) Save(ctx context.Context) (*ClinicSettings, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClinicSettingsUpdateOne) SaveX(ctx context.Context) *ClinicSettings {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ClinicSettingsUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClinicSettingsUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClinicSettingsUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := clinicsettings.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClinicSettingsUpdateOne) check() error {
	if _u.mutation.ClinicCleared() && len(_u.mutation.ClinicIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "ClinicSettings.clinic"`)
	}
	return nil
}

func (_u *ClinicSettingsUpdateOne) sqlSave(ctx context.Context) (_node *ClinicSettings, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(clinicsettings.Table, clinicsettings.Columns, sqlgraph.NewFieldSpec(clinicsettings.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "ClinicSettings.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, clinicsettings.FieldID)
		for _, f := range fields {
			if !clinicsettings.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != clinicsettings.FieldID {
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
		_spec.SetField(clinicsettings.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CancellationWindowHours(); ok {
		_spec.SetField(clinicsettings.FieldCancellationWindowHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCancellationWindowHours(); ok {
		_spec.AddField(clinicsettings.FieldCancellationWindowHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AllowPatientSelfBook(); ok {
		_spec.SetField(clinicsettings.FieldAllowPatientSelfBook, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DefaultSessionDurationMin(); ok {
		_spec.SetField(clinicsettings.FieldDefaultSessionDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDefaultSessionDurationMin(); ok {
		_spec.AddField(clinicsettings.FieldDefaultSessionDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DefaultSessionPriceCents(); ok {
		_spec.SetField(clinicsettings.FieldDefaultSessionPriceCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDefaultSessionPriceCents(); ok {
		_spec.AddField(clinicsettings.FieldDefaultSessionPriceCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.WorkingHours(); ok {
		_spec.SetField(clinicsettings.FieldWorkingHours, field.TypeJSON, value)
	}
	if _u.mutation.WorkingHoursCleared() {
		_spec.ClearField(clinicsettings.FieldWorkingHours, field.TypeJSON)
	}
	if _u.mutation.ClinicCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   clinicsettings.ClinicTable,
			Columns: []string{clinicsettings.ClinicColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clinic.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClinicIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   clinicsettings.ClinicTable,
			Columns: []string{clinicsettings.ClinicColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clinic.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ClinicSettings{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{clinicsettings.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
