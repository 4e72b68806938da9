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
	"github.com/amparasaude/ampara_backend/internal/repo/clinicsettings"
	"github.com/google/uuid"
)

// ClinicSettingsCreate is the builder for creating a ClinicSettings entity.
type ClinicSettingsCreate struct {
	config
	mutation *ClinicSettingsMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *ClinicSettingsCreate) SetCreatedAt(v time.Time) *ClinicSettingsCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ClinicSettingsCreate) SetNillableCreatedAt(v *time.Time) *ClinicSettingsCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ClinicSettingsCreate) SetUpdatedAt(v time.Time) *ClinicSettingsCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ClinicSettingsCreate) SetNillableUpdatedAt(v *time.Time) *ClinicSettingsCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetClinicID sets the "clinic_id" field.
func (_c *ClinicSettingsCreate) SetClinicID(v uuid.UUID) *ClinicSettingsCreate {
	_c.mutation.SetClinicID(v)
	return _c
}

// SetCancellationWindowHours sets the "cancellation_window_hours" field.
func (_c *ClinicSettingsCreate) SetCancellationWindowHours(v int) *ClinicSettingsCreate {
	_c.mutation.SetCancellationWindowHours(v)
	return _c
}

// SetNillableCancellationWindowHours sets the "cancellation_window_hours" field if the given value is not nil.
func (_c *ClinicSettingsCreate) SetNillableCancellationWindowHours(v *int) *ClinicSettingsCreate {
	if v != nil {
		_c.SetCancellationWindowHours(*v)
	}
	return _c
}

// SetAllowPatientSelfBook sets the "allow_patient_self_book" field.
func (_c *ClinicSettingsCreate) SetAllowPatientSelfBook(v bool) *ClinicSettingsCreate {
	_c.mutation.SetAllowPatientSelfBook(v)
	return _c
}

// SetNillableAllowPatientSelfBook sets the "allow_patient_self_book" field if the given value is not nil.
func (_c *ClinicSettingsCreate) SetNillableAllowPatientSelfBook(v *bool) *ClinicSettingsCreate {
	if v != nil {
		_c.SetAllowPatientSelfBook(*v)
	}
	return _c
}

// SetDefaultSessionDurationMin sets the "default_session_duration_min" field.
func (_c *ClinicSettingsCreate) SetDefaultSessionDurationMin(v int) *ClinicSettingsCreate {
	_c.mutation.SetDefaultSessionDurationMin(v)
	return _c
}

// SetNillableDefaultSessionDurationMin sets the "default_session_duration_min" field if the given value is not nil.
func (_c *ClinicSettingsCreate) SetNillableDefaultSessionDurationMin(v *int) *ClinicSettingsCreate {
	if v != nil {
		_c.SetDefaultSessionDurationMin(*v)
	}
	return _c
}

// SetDefaultSessionPriceCents sets the "default_session_price_cents" field.
func (_c *ClinicSettingsCreate) SetDefaultSessionPriceCents(v int64) *ClinicSettingsCreate {
	_c.mutation.SetDefaultSessionPriceCents(v)
	return _c
}

// SetNillableDefaultSessionPriceCents sets the "default_session_price_cents" field if the given value is not nil.
func (_c *ClinicSettingsCreate) SetNillableDefaultSessionPriceCents(v *int64) *ClinicSettingsCreate {
	if v != nil {
		_c.SetDefaultSessionPriceCents(*v)
	}
	return _c
}

// SetWorkingHours sets the "working_hours" field.
func (_c *ClinicSettingsCreate) SetWorkingHours(v map[string]interface{}) *ClinicSettingsCreate {
	_c.mutation.SetWorkingHours(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ClinicSettingsCreate) SetID(v uuid.UUID) *ClinicSettingsCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ClinicSettingsCreate) SetNillableID(v *uuid.UUID) *ClinicSettingsCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetClinic sets the "clinic" edge to the Clinic entity.
func (_c *ClinicSettingsCreate) SetClinic(v *Clinic) *ClinicSettingsCreate {
	return _c.SetClinicID(v.ID)
}

// Mutation returns the ClinicSettingsMutation object of the builder.
func (_c *ClinicSettingsCreate) Mutation() *ClinicSettingsMutation {
	return _c.mutation
}

// Save creates the ClinicSettings in the database.
func (_c *ClinicSettingsCreate) Save(ctx context.Context) (*ClinicSettings, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ClinicSettingsCreate) SaveX(ctx context.Context) *ClinicSettings {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClinicSettingsCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClinicSettingsCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ClinicSettingsCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := clinicsettings.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := clinicsettings.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.CancellationWindowHours(); !ok {
		v := clinicsettings.DefaultCancellationWindowHours
		_c.mutation.SetCancellationWindowHours(v)
	}
	if _, ok := _c.mutation.AllowPatientSelfBook(); !ok {
		v := clinicsettings.DefaultAllowPatientSelfBook
		_c.mutation.SetAllowPatientSelfBook(v)
	}
	if _, ok := _c.mutation.DefaultSessionDurationMin(); !ok {
		v := clinicsettings.DefaultDefaultSessionDurationMin
		_c.mutation.SetDefaultSessionDurationMin(v)
	}
	if _, ok := _c.mutation.DefaultSessionPriceCents(); !ok {
		v := clinicsettings.DefaultDefaultSessionPriceCents
		_c.mutation.SetDefaultSessionPriceCents(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := clinicsettings.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ClinicSettingsCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "ClinicSettings.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "ClinicSettings.updated_at"`)}
	}
	if _, ok := _c.mutation.ClinicID(); !ok {
		return &ValidationError{Name: "clinic_id", err: errors.New(`repo: missing required field "ClinicSettings.clinic_id"`)}
	}
	if _, ok := _c.mutation.CancellationWindowHours(); !ok {
		return &ValidationError{Name: "cancellation_window_hours", err: errors.New(`repo: missing required field "ClinicSettings.cancellation_window_hours"`)}
	}
	if _, ok := _c.mutation.AllowPatientSelfBook(); !ok {
		return &ValidationError{Name: "allow_patient_self_book", err: errors.New(`repo: missing required field "ClinicSettings.allow_patient_self_book"`)}
	}
	if _, ok := _c.mutation.DefaultSessionDurationMin(); !ok {
		return &ValidationError{Name: "default_session_duration_min", err: errors.New(`repo: missing required field "ClinicSettings.default_session_duration_min"`)}
	}
	if _, ok := _c.mutation.DefaultSessionPriceCents(); !ok {
		return &ValidationError{Name: "default_session_price_cents", err: errors.New(`repo: missing required field "ClinicSettings.default_session_price_cents"`)}
	}
	if len(_c.mutation.ClinicIDs()) == 0 {
		return &ValidationError{Name: "clinic", err: errors.New(`repo: missing required edge "ClinicSettings.clinic"`)}
	}
	return nil
}

func (_c *ClinicSettingsCreate) sqlSave(ctx context.Context) (*ClinicSettings, error) {
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

func (_c *ClinicSettingsCreate) createSpec() (*ClinicSettings, *sqlgraph.CreateSpec) {
	var (
		_node = &ClinicSettings{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(clinicsettings.Table, sqlgraph.NewFieldSpec(clinicsettings.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(clinicsettings.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(clinicsettings.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.CancellationWindowHours(); ok {
		_spec.SetField(clinicsettings.FieldCancellationWindowHours, field.TypeInt, value)
		_node.CancellationWindowHours = value
	}
	if value, ok := _c.mutation.AllowPatientSelfBook(); ok {
		_spec.SetField(clinicsettings.FieldAllowPatientSelfBook, field.TypeBool, value)
		_node.AllowPatientSelfBook = value
	}
	if value, ok := _c.mutation.DefaultSessionDurationMin(); ok {
		_spec.SetField(clinicsettings.FieldDefaultSessionDurationMin, field.TypeInt, value)
		_node.DefaultSessionDurationMin = value
	}
	if value, ok := _c.mutation.DefaultSessionPriceCents(); ok {
		_spec.SetField(clinicsettings.FieldDefaultSessionPriceCents, field.TypeInt64, value)
		_node.DefaultSessionPriceCents = value
	}
	if value, ok := _c.mutation.WorkingHours(); ok {
		_spec.SetField(clinicsettings.FieldWorkingHours, field.TypeJSON, value)
		_node.WorkingHours = value
	}
	if nodes := _c.mutation.ClinicIDs(); len(nodes) > 0 {
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
		_node.ClinicID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ClinicSettings.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ClinicSettingsUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ClinicSettingsCreate) OnConflict(opts ...sql.ConflictOption) *ClinicSettingsUpsertOne {
	_c.conflict = opts
	return &ClinicSettingsUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ClinicSettings.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ClinicSettingsCreate) OnConflictColumns(columns ...string) *ClinicSettingsUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ClinicSettingsUpsertOne{
		create: _c,
	}
}

type (
	// ClinicSettingsUpsertOne is the builder for "upsert"-ing
	//  one ClinicSettings node.
	ClinicSettingsUpsertOne struct {
		create *ClinicSettingsCreate
	}

	// ClinicSettingsUpsert is the "OnConflict" setter.
	ClinicSettingsUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *ClinicSettingsUpsert) SetUpdatedAt(v time.Time) *ClinicSettingsUpsert {
	u.Set(clinicsettings.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ClinicSettingsUpsert) UpdateUpdatedAt() *ClinicSettingsUpsert {
	u.SetExcluded(clinicsettings.FieldUpdatedAt)
	return u
}

// SetClinicID sets the "clinic_id" field.
func (u *ClinicSettingsUpsert) SetClinicID(v uuid.UUID) *ClinicSettingsUpsert {
	u.Set(clinicsettings.FieldClinicID, v)
	return u
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *ClinicSettingsUpsert) UpdateClinicID() *ClinicSettingsUpsert {
	u.SetExcluded(clinicsettings.FieldClinicID)
	return u
}

// SetCancellationWindowHours sets the "cancellation_window_hours" field.
func (u *ClinicSettingsUpsert) SetCancellationWindowHours(v int) *ClinicSettingsUpsert {
	u.Set(clinicsettings.FieldCancellationWindowHours, v)
	return u
}

// UpdateCancellationWindowHours sets the "cancellation_window_hours" field to the value that was provided on create.
func (u *ClinicSettingsUpsert) UpdateCancellationWindowHours() *ClinicSettingsUpsert {
	u.SetExcluded(clinicsettings.FieldCancellationWindowHours)
	return u
}

// AddCancellationWindowHours adds v to the "cancellation_window_hours" field.
func (u *ClinicSettingsUpsert) AddCancellationWindowHours(v int) *ClinicSettingsUpsert {
	u.Add(clinicsettings.FieldCancellationWindowHours, v)
	return u
}

// SetAllowPatientSelfBook sets the "allow_patient_self_book" field.
func (u *ClinicSettingsUpsert) SetAllowPatientSelfBook(v bool) *ClinicSettingsUpsert {
	u.Set(clinicsettings.FieldAllowPatientSelfBook, v)
	return u
}

// UpdateAllowPatientSelfBook sets the "allow_patient_self_book" field to the value that was provided on create.
func (u *ClinicSettingsUpsert) UpdateAllowPatientSelfBook() *ClinicSettingsUpsert {
	u.SetExcluded(clinicsettings.FieldAllowPatientSelfBook)
	return u
}

// SetDefaultSessionDurationMin sets the "default_session_duration_min" field.
func (u *ClinicSettingsUpsert) SetDefaultSessionDurationMin(v int) *ClinicSettingsUpsert {
	u.Set(clinicsettings.FieldDefaultSessionDurationMin, v)
	return u
}

// UpdateDefaultSessionDurationMin sets the "default_session_duration_min" field to the value that was provided on create.
func (u *ClinicSettingsUpsert) UpdateDefaultSessionDurationMin() *ClinicSettingsUpsert {
	u.SetExcluded(clinicsettings.FieldDefaultSessionDurationMin)
	return u
}

// AddDefaultSessionDurationMin adds v to the "default_session_duration_min" field.
func (u *ClinicSettingsUpsert) AddDefaultSessionDurationMin(v int) *ClinicSettingsUpsert {
	u.Add(clinicsettings.FieldDefaultSessionDurationMin, v)
	return u
}

// SetDefaultSessionPriceCents sets the "default_session_price_cents" field.
func (u *ClinicSettingsUpsert) SetDefaultSessionPriceCents(v int64) *ClinicSettingsUpsert {
	u.Set(clinicsettings.FieldDefaultSessionPriceCents, v)
	return u
}

// UpdateDefaultSessionPriceCents sets the "default_session_price_cents" field to the value that was provided on create.
func (u *ClinicSettingsUpsert) UpdateDefaultSessionPriceCents() *ClinicSettingsUpsert {
	u.SetExcluded(clinicsettings.FieldDefaultSessionPriceCents)
	return u
}

// AddDefaultSessionPriceCents adds v to the "default_session_price_cents" field.
func (u *ClinicSettingsUpsert) AddDefaultSessionPriceCents(v int64) *ClinicSettingsUpsert {
	u.Add(clinicsettings.FieldDefaultSessionPriceCents, v)
	return u
}

// SetWorkingHours sets the "working_hours" field.
func (u *ClinicSettingsUpsert) SetWorkingHours(v map[string]interface{}) *ClinicSettingsUpsert {
	u.Set(clinicsettings.FieldWorkingHours, v)
	return u
}

// UpdateWorkingHours sets the "working_hours" field to the value that was provided on create.
func (u *ClinicSettingsUpsert) UpdateWorkingHours() *ClinicSettingsUpsert {
	u.SetExcluded(clinicsettings.FieldWorkingHours)
	return u
}

// ClearWorkingHours clears the value of the "working_hours" field.
func (u *ClinicSettingsUpsert) ClearWorkingHours() *ClinicSettingsUpsert {
	u.SetNull(clinicsettings.FieldWorkingHours)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ClinicSettings.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(clinicsettings.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ClinicSettingsUpsertOne) UpdateNewValues() *ClinicSettingsUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(clinicsettings.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(clinicsettings.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ClinicSettings.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ClinicSettingsUpsertOne) Ignore() *ClinicSettingsUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ClinicSettingsUpsertOne) DoNothing() *ClinicSettingsUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ClinicSettingsCreate.OnConflict
// documentation for more info.
func (u *ClinicSettingsUpsertOne) Update(set func(*ClinicSettingsUpsert)) *ClinicSettingsUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ClinicSettingsUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ClinicSettingsUpsertOne) SetUpdatedAt(v time.Time) *ClinicSettingsUpsertOne {
	return u.Update(func(s *ClinicSettingsUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ClinicSettingsUpsertOne) UpdateUpdatedAt() *ClinicSettingsUpsertOne {
	return u.Update(func(s *ClinicSettingsUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetClinicID sets the "clinic_id" field.
func (u *ClinicSettingsUpsertOne) SetClinicID(v uuid.UUID) *ClinicSettingsUpsertOne {
	return u.Update(func(s *ClinicSettingsUpsert) {
		s.SetClinicID(v)
	})
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *ClinicSettingsUpsertOne) UpdateClinicID() *ClinicSettingsUpsertOne {
	return u.Update(func(s *ClinicSettingsUpsert) {
		s.UpdateClinicID()
	})
}

// SetCancellationWindowHours sets the "cancellation_window_hours" field.
func (u *ClinicSettingsUpsertOne) SetCancellationWindowHours(v int) *ClinicSettingsUpsertOne {
	return u.Update(func(s *ClinicSettingsUpsert) {
		s.SetCancellationWindowHours(v)
	})
}

// AddCancellationWindowHours adds v to the "cancellation_window_hours" field.
func (u *ClinicSettingsUpsertOne) AddCancellationWindowHours(v int) *ClinicSettingsUpsertOne {
	return u.Update(func(s *ClinicSettingsUpsert) {
		s.AddCancellationWindowHours(v)
	})
}

// UpdateCancellationWindowHours sets the "cancellation_window_hours" field to the value that was provided on create.
func (u *ClinicSettingsUpsertOne) UpdateCancellationWindowHours() *ClinicSettingsUpsertOne {
	return u.Update(func(s *ClinicSettingsUpsert) {
		s.UpdateCancellationWindowHours()
	})
}

// SetAllowPatientSelfBook sets the "allow_patient_self_book" field.
func (u *ClinicSettingsUpsertOne) SetAllowPatientSelfBook(v bool) *ClinicSettingsUpsertOne {
	return u.Update(func(s *ClinicSettingsUpsert) {
		s.SetAllowPatientSelfBook(v)
	})
}

// UpdateAllowPatientSelfBook sets the "allow_patient_self_book" field to the value that was provided on create.
func (u *ClinicSettingsUpsertOne) UpdateAllowPatientSelfBook() *ClinicSettingsUpsertOne {
	return u.Update(func(s *ClinicSettingsUpsert) {
		s.UpdateAllowPatientSelfBook()
	})
}

// SetDefaultSessionDurationMin sets the "default_session_duration_min" field.
func (u *ClinicSettingsUpsertOne) SetDefaultSessionDurationMin(v int) *ClinicSettingsUpsertOne {
	return u.Update(func(s *ClinicSettingsUpsert) {
		s.SetDefaultSessionDurationMin(v)
	})
}

// AddDefaultSessionDurationMin adds v to the "default_session_duration_min" field.
func (u *ClinicSettingsUpsertOne) AddDefaultSessionDurationMin(v int) *ClinicSettingsUpsertOne {
	return u.Update(func(s *ClinicSettingsUpsert) {
		s.AddDefaultSessionDurationMin(v)
	})
}

// UpdateDefaultSessionDurationMin sets the "default_session_duration_min" field to the value that was provided on create.
func (u *ClinicSettingsUpsertOne) UpdateDefaultSessionDurationMin() *ClinicSettingsUpsertOne {
	return u.Update(func(s *ClinicSettingsUpsert) {
		s.UpdateDefaultSessionDurationMin()
	})
}

// SetDefaultSessionPriceCents sets the "default_session_price_cents" field.
func (u *ClinicSettingsUpsertOne) SetDefaultSessionPriceCents(v int64) *ClinicSettingsUpsertOne {
	return u.Update(func(s *ClinicSettingsUpsert) {
		s.SetDefaultSessionPriceCents(v)
	})
}

// AddDefaultSessionPriceCents adds v to the "default_session_price_cents" field.
func (u *ClinicSettingsUpsertOne) AddDefaultSessionPriceCents(v int64) *ClinicSettingsUpsertOne {
	return u.Update(func(s *ClinicSettingsUpsert) {
		s.AddDefaultSessionPriceCents(v)
	})
}

// UpdateDefaultSessionPriceCents sets the "default_session_price_cents" field to the value that was provided on create.
func (u *ClinicSettingsUpsertOne) UpdateDefaultSessionPriceCents() *ClinicSettingsUpsertOne {
	return u.Update(func(s *ClinicSettingsUpsert) {
		s.UpdateDefaultSessionPriceCents()
	})
}

// SetWorkingHours sets the "working_hours" field.
func (u *ClinicSettingsUpsertOne) SetWorkingHours(v map[string]interface{}) *ClinicSettingsUpsertOne {
	return u.Update(func(s *ClinicSettingsUpsert) {
		s.SetWorkingHours(v)
	})
}

// UpdateWorkingHours sets the "working_hours" field to the value that was provided on create.
func (u *ClinicSettingsUpsertOne) UpdateWorkingHours() *ClinicSettingsUpsertOne {
	return u.Update(func(s *ClinicSettingsUpsert) {
		s.UpdateWorkingHours()
	})
}

// ClearWorkingHours clears the value of the "working_hours" field.
func (u *ClinicSettingsUpsertOne) ClearWorkingHours() *ClinicSettingsUpsertOne {
	return u.Update(func(s *ClinicSettingsUpsert) {
		s.ClearWorkingHours()
	})
}

// Exec executes the query.
func (u *ClinicSettingsUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ClinicSettingsCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ClinicSettingsUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ClinicSettingsUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: ClinicSettingsUpsertOne.ID is not supported by MySQL driver. Use ClinicSettingsUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ClinicSettingsUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ClinicSettingsCreateBulk is the builder for creating many ClinicSettings entities in bulk.
type ClinicSettingsCreateBulk struct {
	config
	err      error
	builders []*ClinicSettingsCreate
	conflict []sql.ConflictOption
}

// Save creates the ClinicSettings entities in the database.
func (_c *ClinicSettingsCreateBulk) Save(ctx context.Context) ([]*ClinicSettings, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ClinicSettings, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ClinicSettingsMutation)
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
func (_c *ClinicSettingsCreateBulk) SaveX(ctx context.Context) []*ClinicSettings {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClinicSettingsCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClinicSettingsCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ClinicSettings.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ClinicSettingsUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ClinicSettingsCreateBulk) OnConflict(opts ...sql.ConflictOption) *ClinicSettingsUpsertBulk {
	_c.conflict = opts
	return &ClinicSettingsUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ClinicSettings.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ClinicSettingsCreateBulk) OnConflictColumns(columns ...string) *ClinicSettingsUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ClinicSettingsUpsertBulk{
		create: _c,
	}
}

// ClinicSettingsUpsertBulk is the builder for "upsert"-ing
// a bulk of ClinicSettings nodes.
type ClinicSettingsUpsertBulk struct {
	create *ClinicSettingsCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ClinicSettings.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(clinicsettings.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ClinicSettingsUpsertBulk) UpdateNewValues() *ClinicSettingsUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(clinicsettings.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(clinicsettings.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ClinicSettings.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ClinicSettingsUpsertBulk) Ignore() *ClinicSettingsUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ClinicSettingsUpsertBulk) DoNothing() *ClinicSettingsUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ClinicSettingsCreateBulk.OnConflict
// documentation for more info.
func (u *ClinicSettingsUpsertBulk) Update(set func(*ClinicSettingsUpsert)) *ClinicSettingsUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ClinicSettingsUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ClinicSettingsUpsertBulk) SetUpdatedAt(v time.Time) *ClinicSettingsUpsertBulk {
	return u.Update(func(s *ClinicSettingsUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ClinicSettingsUpsertBulk) UpdateUpdatedAt() *ClinicSettingsUpsertBulk {
	return u.Update(func(s *ClinicSettingsUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetClinicID sets the "clinic_id" field.
func (u *ClinicSettingsUpsertBulk) SetClinicID(v uuid.UUID) *ClinicSettingsUpsertBulk {
	return u.Update(func(s *ClinicSettingsUpsert) {
		s.SetClinicID(v)
	})
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *ClinicSettingsUpsertBulk) UpdateClinicID() *ClinicSettingsUpsertBulk {
	return u.Update(func(s *ClinicSettingsUpsert) {
		s.UpdateClinicID()
	})
}

// SetCancellationWindowHours sets the "cancellation_window_hours" field.
func (u *ClinicSettingsUpsertBulk) SetCancellationWindowHours(v int) *ClinicSettingsUpsertBulk {
	return u.Update(func(s *ClinicSettingsUpsert) {
		s.SetCancellationWindowHours(v)
	})
}

// AddCancellationWindowHours adds v to the "cancellation_window_hours" field.
func (u *ClinicSettingsUpsertBulk) AddCancellationWindowHours(v int) *ClinicSettingsUpsertBulk {
	return u.Update(func(s *ClinicSettingsUpsert) {
		s.AddCancellationWindowHours(v)
	})
}

// UpdateCancellationWindowHours sets the "cancellation_window_hours" field to the value that was provided on create.
func (u *ClinicSettingsUpsertBulk) UpdateCancellationWindowHours() *ClinicSettingsUpsertBulk {
	return u.Update(func(s *ClinicSettingsUpsert) {
		s.UpdateCancellationWindowHours()
	})
}

// SetAllowPatientSelfBook sets the "allow_patient_self_book" field.
func (u *ClinicSettingsUpsertBulk) SetAllowPatientSelfBook(v bool) *ClinicSettingsUpsertBulk {
	return u.Update(func(s *ClinicSettingsUpsert) {
		s.SetAllowPatientSelfBook(v)
	})
}

// UpdateAllowPatientSelfBook sets the "allow_patient_self_book" field to the value that was provided on create.
func (u *ClinicSettingsUpsertBulk) UpdateAllowPatientSelfBook() *ClinicSettingsUpsertBulk {
	return u.Update(func(s *ClinicSettingsUpsert) {
		s.UpdateAllowPatientSelfBook()
	})
}

// SetDefaultSessionDurationMin sets the "default_session_duration_min" field.
func (u *ClinicSettingsUpsertBulk) SetDefaultSessionDurationMin(v int) *ClinicSettingsUpsertBulk {
	return u.Update(func(s *ClinicSettingsUpsert) {
		s.SetDefaultSessionDurationMin(v)
	})
}

// AddDefaultSessionDurationMin adds v to the "default_session_duration_min" field.
func (u *ClinicSettingsUpsertBulk) AddDefaultSessionDurationMin(v int) *ClinicSettingsUpsertBulk {
	return u.Update(func(s *ClinicSettingsUpsert) {
		s.AddDefaultSessionDurationMin(v)
	})
}

// UpdateDefaultSessionDurationMin sets the "default_session_duration_min" field to the value that was provided on create.
func (u *ClinicSettingsUpsertBulk) UpdateDefaultSessionDurationMin() *ClinicSettingsUpsertBulk {
	return u.Update(func(s *ClinicSettingsUpsert) {
		s.UpdateDefaultSessionDurationMin()
	})
}

// SetDefaultSessionPriceCents sets the "default_session_price_cents" field.
func (u *ClinicSettingsUpsertBulk) SetDefaultSessionPriceCents(v int64) *ClinicSettingsUpsertBulk {
	return u.Update(func(s *ClinicSettingsUpsert) {
		s.SetDefaultSessionPriceCents(v)
	})
}

// AddDefaultSessionPriceCents adds v to the "default_session_price_cents" field.
func (u *ClinicSettingsUpsertBulk) AddDefaultSessionPriceCents(v int64) *ClinicSettingsUpsertBulk {
	return u.Update(func(s *ClinicSettingsUpsert) {
		s.AddDefaultSessionPriceCents(v)
	})
}

// UpdateDefaultSessionPriceCents sets the "default_session_price_cents" field to the value that was provided on create.
func (u *ClinicSettingsUpsertBulk) UpdateDefaultSessionPriceCents() *ClinicSettingsUpsertBulk {
	return u.Update(func(s *ClinicSettingsUpsert) {
		s.UpdateDefaultSessionPriceCents()
	})
}

// SetWorkingHours sets the "working_hours" field.
func (u *ClinicSettingsUpsertBulk) SetWorkingHours(v map[string]interface{}) *ClinicSettingsUpsertBulk {
	return u.Update(func(s *ClinicSettingsUpsert) {
		s.SetWorkingHours(v)
	})
}

// UpdateWorkingHours sets the "working_hours" field to the value that was provided on create.
func (u *ClinicSettingsUpsertBulk) UpdateWorkingHours() *ClinicSettingsUpsertBulk {
	return u.Update(func(s *ClinicSettingsUpsert) {
		s.UpdateWorkingHours()
	})
}

// ClearWorkingHours clears the value of the "working_hours" field.
func (u *ClinicSettingsUpsertBulk) ClearWorkingHours() *ClinicSettingsUpsertBulk {
	return u.Update(func(s *ClinicSettingsUpsert) {
		s.ClearWorkingHours()
	})
}

// Exec executes the query.
func (u *ClinicSettingsUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the ClinicSettingsCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ClinicSettingsCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ClinicSettingsUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
