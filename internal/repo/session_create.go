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
	"github.com/amparasaude/ampara_backend/internal/repo/session"
	"github.com/google/uuid"
)

// SessionCreate is the builder for creating a Session entity.
type SessionCreate struct {
	config
	mutation *SessionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *SessionCreate) SetCreatedAt(v time.Time) *SessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableCreatedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SessionCreate) SetUpdatedAt(v time.Time) *SessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableUpdatedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetClinicID sets the "clinic_id" field.
func (_c *SessionCreate) SetClinicID(v uuid.UUID) *SessionCreate {
	_c.mutation.SetClinicID(v)
	return _c
}

// SetPsychologistID sets the "psychologist_id" field.
func (_c *SessionCreate) SetPsychologistID(v uuid.UUID) *SessionCreate {
	_c.mutation.SetPsychologistID(v)
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *SessionCreate) SetPatientID(v uuid.UUID) *SessionCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_c *SessionCreate) SetNillablePatientID(v *uuid.UUID) *SessionCreate {
	if v != nil {
		_c.SetPatientID(*v)
	}
	return _c
}

// SetScheduledAt sets the "scheduled_at" field.
func (_c *SessionCreate) SetScheduledAt(v time.Time) *SessionCreate {
	_c.mutation.SetScheduledAt(v)
	return _c
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_c *SessionCreate) SetDurationMinutes(v int) *SessionCreate {
	_c.mutation.SetDurationMinutes(v)
	return _c
}

// SetTimezone sets the "timezone" field.
func (_c *SessionCreate) SetTimezone(v string) *SessionCreate {
	_c.mutation.SetTimezone(v)
	return _c
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_c *SessionCreate) SetNillableTimezone(v *string) *SessionCreate {
	if v != nil {
		_c.SetTimezone(*v)
	}
	return _c
}

// SetType sets the "type" field.
func (_c *SessionCreate) SetType(v session.Type) *SessionCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_c *SessionCreate) SetNillableType(v *session.Type) *SessionCreate {
	if v != nil {
		_c.SetType(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *SessionCreate) SetStatus(v session.Status) *SessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SessionCreate) SetNillableStatus(v *session.Status) *SessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSeriesID sets the "series_id" field.
func (_c *SessionCreate) SetSeriesID(v uuid.UUID) *SessionCreate {
	_c.mutation.SetSeriesID(v)
	return _c
}

// SetNillableSeriesID sets the "series_id" field if the given value is not nil.
func (_c *SessionCreate) SetNillableSeriesID(v *uuid.UUID) *SessionCreate {
	if v != nil {
		_c.SetSeriesID(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *SessionCreate) SetNotes(v string) *SessionCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *SessionCreate) SetNillableNotes(v *string) *SessionCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetPriceCents sets the "price_cents" field.
func (_c *SessionCreate) SetPriceCents(v int64) *SessionCreate {
	_c.mutation.SetPriceCents(v)
	return _c
}

// SetNillablePriceCents sets the "price_cents" field if the given value is not nil.
func (_c *SessionCreate) SetNillablePriceCents(v *int64) *SessionCreate {
	if v != nil {
		_c.SetPriceCents(*v)
	}
	return _c
}

// SetCancellationReason sets the "cancellation_reason" field.
func (_c *SessionCreate) SetCancellationReason(v string) *SessionCreate {
	_c.mutation.SetCancellationReason(v)
	return _c
}

// SetNillableCancellationReason sets the "cancellation_reason" field if the given value is not nil.
func (_c *SessionCreate) SetNillableCancellationReason(v *string) *SessionCreate {
	if v != nil {
		_c.SetCancellationReason(*v)
	}
	return _c
}

// SetCancelRequestedBy sets the "cancel_requested_by" field.
func (_c *SessionCreate) SetCancelRequestedBy(v session.CancelRequestedBy) *SessionCreate {
	_c.mutation.SetCancelRequestedBy(v)
	return _c
}

// SetNillableCancelRequestedBy sets the "cancel_requested_by" field if the given value is not nil.
func (_c *SessionCreate) SetNillableCancelRequestedBy(v *session.CancelRequestedBy) *SessionCreate {
	if v != nil {
		_c.SetCancelRequestedBy(*v)
	}
	return _c
}

// SetCancelledAt sets the "cancelled_at" field.
func (_c *SessionCreate) SetCancelledAt(v time.Time) *SessionCreate {
	_c.mutation.SetCancelledAt(v)
	return _c
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableCancelledAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetCancelledAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *SessionCreate) SetCompletedAt(v time.Time) *SessionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableCompletedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SessionCreate) SetID(v uuid.UUID) *SessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SessionCreate) SetNillableID(v *uuid.UUID) *SessionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the SessionMutation object of the builder.
func (_c *SessionCreate) Mutation() *SessionMutation {
	return _c.mutation
}

// Save creates the Session in the database.
func (_c *SessionCreate) Save(ctx context.Context) (*Session, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionCreate) SaveX(ctx context.Context) *Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := session.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := session.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Timezone(); !ok {
		v := session.DefaultTimezone
		_c.mutation.SetTimezone(v)
	}
	if _, ok := _c.mutation.GetType(); !ok {
		v := session.DefaultType
		_c.mutation.SetType(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := session.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.PriceCents(); !ok {
		v := session.DefaultPriceCents
		_c.mutation.SetPriceCents(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := session.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Session.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Session.updated_at"`)}
	}
	if _, ok := _c.mutation.ClinicID(); !ok {
		return &ValidationError{Name: "clinic_id", err: errors.New(`repo: missing required field "Session.clinic_id"`)}
	}
	if _, ok := _c.mutation.PsychologistID(); !ok {
		return &ValidationError{Name: "psychologist_id", err: errors.New(`repo: missing required field "Session.psychologist_id"`)}
	}
	if _, ok := _c.mutation.ScheduledAt(); !ok {
		return &ValidationError{Name: "scheduled_at", err: errors.New(`repo: missing required field "Session.scheduled_at"`)}
	}
	if _, ok := _c.mutation.DurationMinutes(); !ok {
		return &ValidationError{Name: "duration_minutes", err: errors.New(`repo: missing required field "Session.duration_minutes"`)}
	}
	if v, ok := _c.mutation.DurationMinutes(); ok {
		if err := session.DurationMinutesValidator(v); err != nil {
			return &ValidationError{Name: "duration_minutes", err: fmt.Errorf(`repo: validator failed for field "Session.duration_minutes": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Timezone(); !ok {
		return &ValidationError{Name: "timezone", err: errors.New(`repo: missing required field "Session.timezone"`)}
	}
	if v, ok := _c.mutation.Timezone(); ok {
		if err := session.TimezoneValidator(v); err != nil {
			return &ValidationError{Name: "timezone", err: fmt.Errorf(`repo: validator failed for field "Session.timezone": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`repo: missing required field "Session.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := session.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`repo: validator failed for field "Session.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "Session.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := session.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Session.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PriceCents(); !ok {
		return &ValidationError{Name: "price_cents", err: errors.New(`repo: missing required field "Session.price_cents"`)}
	}
	if v, ok := _c.mutation.CancelRequestedBy(); ok {
		if err := session.CancelRequestedByValidator(v); err != nil {
			return &ValidationError{Name: "cancel_requested_by", err: fmt.Errorf(`repo: validator failed for field "Session.cancel_requested_by": %w`, err)}
		}
	}
	return nil
}

func (_c *SessionCreate) sqlSave(ctx context.Context) (*Session, error) {
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

func (_c *SessionCreate) createSpec() (*Session, *sqlgraph.CreateSpec) {
	var (
		_node = &Session{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(session.Table, sqlgraph.NewFieldSpec(session.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(session.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(session.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ClinicID(); ok {
		_spec.SetField(session.FieldClinicID, field.TypeUUID, value)
		_node.ClinicID = value
	}
	if value, ok := _c.mutation.PsychologistID(); ok {
		_spec.SetField(session.FieldPsychologistID, field.TypeUUID, value)
		_node.PsychologistID = value
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(session.FieldPatientID, field.TypeUUID, value)
		_node.PatientID = &value
	}
	if value, ok := _c.mutation.ScheduledAt(); ok {
		_spec.SetField(session.FieldScheduledAt, field.TypeTime, value)
		_node.ScheduledAt = value
	}
	if value, ok := _c.mutation.DurationMinutes(); ok {
		_spec.SetField(session.FieldDurationMinutes, field.TypeInt, value)
		_node.DurationMinutes = value
	}
	if value, ok := _c.mutation.Timezone(); ok {
		_spec.SetField(session.FieldTimezone, field.TypeString, value)
		_node.Timezone = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(session.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(session.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.SeriesID(); ok {
		_spec.SetField(session.FieldSeriesID, field.TypeUUID, value)
		_node.SeriesID = &value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(session.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if value, ok := _c.mutation.PriceCents(); ok {
		_spec.SetField(session.FieldPriceCents, field.TypeInt64, value)
		_node.PriceCents = value
	}
	if value, ok := _c.mutation.CancellationReason(); ok {
		_spec.SetField(session.FieldCancellationReason, field.TypeString, value)
		_node.CancellationReason = &value
	}
	if value, ok := _c.mutation.CancelRequestedBy(); ok {
		_spec.SetField(session.FieldCancelRequestedBy, field.TypeEnum, value)
		_node.CancelRequestedBy = &value
	}
	if value, ok := _c.mutation.CancelledAt(); ok {
		_spec.SetField(session.FieldCancelledAt, field.TypeTime, value)
		_node.CancelledAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(session.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Session.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SessionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *SessionCreate) OnConflict(opts ...sql.ConflictOption) *SessionUpsertOne {
	_c.conflict = opts
	return &SessionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SessionCreate) OnConflictColumns(columns ...string) *SessionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SessionUpsertOne{
		create: _c,
	}
}

type (
	// SessionUpsertOne is the builder for "upsert"-ing
	//  one Session node.
	SessionUpsertOne struct {
		create *SessionCreate
	}

	// SessionUpsert is the "OnConflict" setter.
	SessionUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *SessionUpsert) SetUpdatedAt(v time.Time) *SessionUpsert {
	u.Set(session.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SessionUpsert) UpdateUpdatedAt() *SessionUpsert {
	u.SetExcluded(session.FieldUpdatedAt)
	return u
}

// SetClinicID sets the "clinic_id" field.
func (u *SessionUpsert) SetClinicID(v uuid.UUID) *SessionUpsert {
	u.Set(session.FieldClinicID, v)
	return u
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *SessionUpsert) UpdateClinicID() *SessionUpsert {
	u.SetExcluded(session.FieldClinicID)
	return u
}

// SetPsychologistID sets the "psychologist_id" field.
func (u *SessionUpsert) SetPsychologistID(v uuid.UUID) *SessionUpsert {
	u.Set(session.FieldPsychologistID, v)
	return u
}

// UpdatePsychologistID sets the "psychologist_id" field to the value that was provided on create.
func (u *SessionUpsert) UpdatePsychologistID() *SessionUpsert {
	u.SetExcluded(session.FieldPsychologistID)
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *SessionUpsert) SetPatientID(v uuid.UUID) *SessionUpsert {
	u.Set(session.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *SessionUpsert) UpdatePatientID() *SessionUpsert {
	u.SetExcluded(session.FieldPatientID)
	return u
}

// ClearPatientID clears the value of the "patient_id" field.
func (u *SessionUpsert) ClearPatientID() *SessionUpsert {
	u.SetNull(session.FieldPatientID)
	return u
}

// SetScheduledAt sets the "scheduled_at" field.
func (u *SessionUpsert) SetScheduledAt(v time.Time) *SessionUpsert {
	u.Set(session.FieldScheduledAt, v)
	return u
}

// UpdateScheduledAt sets the "scheduled_at" field to the value that was provided on create.
func (u *SessionUpsert) UpdateScheduledAt() *SessionUpsert {
	u.SetExcluded(session.FieldScheduledAt)
	return u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (u *SessionUpsert) SetDurationMinutes(v int) *SessionUpsert {
	u.Set(session.FieldDurationMinutes, v)
	return u
}

// UpdateDurationMinutes sets the "duration_minutes" field to the value that was provided on create.
func (u *SessionUpsert) UpdateDurationMinutes() *SessionUpsert {
	u.SetExcluded(session.FieldDurationMinutes)
	return u
}

// AddDurationMinutes adds v to the "duration_minutes" field.
func (u *SessionUpsert) AddDurationMinutes(v int) *SessionUpsert {
	u.Add(session.FieldDurationMinutes, v)
	return u
}

// SetTimezone sets the "timezone" field.
func (u *SessionUpsert) SetTimezone(v string) *SessionUpsert {
	u.Set(session.FieldTimezone, v)
	return u
}

// UpdateTimezone sets the "timezone" field to the value that was provided on create.
func (u *SessionUpsert) UpdateTimezone() *SessionUpsert {
	u.SetExcluded(session.FieldTimezone)
	return u
}

// SetType sets the "type" field.
func (u *SessionUpsert) SetType(v session.Type) *SessionUpsert {
	u.Set(session.FieldType, v)
	return u
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *SessionUpsert) UpdateType() *SessionUpsert {
	u.SetExcluded(session.FieldType)
	return u
}

// SetStatus sets the "status" field.
func (u *SessionUpsert) SetStatus(v session.Status) *SessionUpsert {
	u.Set(session.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SessionUpsert) UpdateStatus() *SessionUpsert {
	u.SetExcluded(session.FieldStatus)
	return u
}

// SetSeriesID sets the "series_id" field.
func (u *SessionUpsert) SetSeriesID(v uuid.UUID) *SessionUpsert {
	u.Set(session.FieldSeriesID, v)
	return u
}

// UpdateSeriesID sets the "series_id" field to the value that was provided on create.
func (u *SessionUpsert) UpdateSeriesID() *SessionUpsert {
	u.SetExcluded(session.FieldSeriesID)
	return u
}

// ClearSeriesID clears the value of the "series_id" field.
func (u *SessionUpsert) ClearSeriesID() *SessionUpsert {
	u.SetNull(session.FieldSeriesID)
	return u
}

// SetNotes sets the "notes" field.
func (u *SessionUpsert) SetNotes(v string) *SessionUpsert {
	u.Set(session.FieldNotes, v)
	return u
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *SessionUpsert) UpdateNotes() *SessionUpsert {
	u.SetExcluded(session.FieldNotes)
	return u
}

// ClearNotes clears the value of the "notes" field.
func (u *SessionUpsert) ClearNotes() *SessionUpsert {
	u.SetNull(session.FieldNotes)
	return u
}

// SetPriceCents sets the "price_cents" field.
func (u *SessionUpsert) SetPriceCents(v int64) *SessionUpsert {
	u.Set(session.FieldPriceCents, v)
	return u
}

// UpdatePriceCents sets the "price_cents" field to the value that was provided on create.
func (u *SessionUpsert) UpdatePriceCents() *SessionUpsert {
	u.SetExcluded(session.FieldPriceCents)
	return u
}

// AddPriceCents adds v to the "price_cents" field.
func (u *SessionUpsert) AddPriceCents(v int64) *SessionUpsert {
	u.Add(session.FieldPriceCents, v)
	return u
}

// SetCancellationReason sets the "cancellation_reason" field.
func (u *SessionUpsert) SetCancellationReason(v string) *SessionUpsert {
	u.Set(session.FieldCancellationReason, v)
	return u
}

// UpdateCancellationReason sets the "cancellation_reason" field to the value that was provided on create.
func (u *SessionUpsert) UpdateCancellationReason() *SessionUpsert {
	u.SetExcluded(session.FieldCancellationReason)
	return u
}

// ClearCancellationReason clears the value of the "cancellation_reason" field.
func (u *SessionUpsert) ClearCancellationReason() *SessionUpsert {
	u.SetNull(session.FieldCancellationReason)
	return u
}

// SetCancelRequestedBy sets the "cancel_requested_by" field.
func (u *SessionUpsert) SetCancelRequestedBy(v session.CancelRequestedBy) *SessionUpsert {
	u.Set(session.FieldCancelRequestedBy, v)
	return u
}

// UpdateCancelRequestedBy sets the "cancel_requested_by" field to the value that was provided on create.
func (u *SessionUpsert) UpdateCancelRequestedBy() *SessionUpsert {
	u.SetExcluded(session.FieldCancelRequestedBy)
	return u
}

// ClearCancelRequestedBy clears the value of the "cancel_requested_by" field.
func (u *SessionUpsert) ClearCancelRequestedBy() *SessionUpsert {
	u.SetNull(session.FieldCancelRequestedBy)
	return u
}

// SetCancelledAt sets the "cancelled_at" field.
func (u *SessionUpsert) SetCancelledAt(v time.Time) *SessionUpsert {
	u.Set(session.FieldCancelledAt, v)
	return u
}

// UpdateCancelledAt sets the "cancelled_at" field to the value that was provided on create.
func (u *SessionUpsert) UpdateCancelledAt() *SessionUpsert {
	u.SetExcluded(session.FieldCancelledAt)
	return u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (u *SessionUpsert) ClearCancelledAt() *SessionUpsert {
	u.SetNull(session.FieldCancelledAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *SessionUpsert) SetCompletedAt(v time.Time) *SessionUpsert {
	u.Set(session.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *SessionUpsert) UpdateCompletedAt() *SessionUpsert {
	u.SetExcluded(session.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *SessionUpsert) ClearCompletedAt() *SessionUpsert {
	u.SetNull(session.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(session.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SessionUpsertOne) UpdateNewValues() *SessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(session.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(session.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Session.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SessionUpsertOne) Ignore() *SessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SessionUpsertOne) DoNothing() *SessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SessionCreate.OnConflict
// documentation for more info.
func (u *SessionUpsertOne) Update(set func(*SessionUpsert)) *SessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SessionUpsertOne) SetUpdatedAt(v time.Time) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateUpdatedAt() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetClinicID sets the "clinic_id" field.
func (u *SessionUpsertOne) SetClinicID(v uuid.UUID) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetClinicID(v)
	})
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateClinicID() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateClinicID()
	})
}

// SetPsychologistID sets the "psychologist_id" field.
func (u *SessionUpsertOne) SetPsychologistID(v uuid.UUID) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetPsychologistID(v)
	})
}

// UpdatePsychologistID sets the "psychologist_id" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdatePsychologistID() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdatePsychologistID()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *SessionUpsertOne) SetPatientID(v uuid.UUID) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdatePatientID() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdatePatientID()
	})
}

// ClearPatientID clears the value of the "patient_id" field.
func (u *SessionUpsertOne) ClearPatientID() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearPatientID()
	})
}

// SetScheduledAt sets the "scheduled_at" field.
func (u *SessionUpsertOne) SetScheduledAt(v time.Time) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetScheduledAt(v)
	})
}

// UpdateScheduledAt sets the "scheduled_at" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateScheduledAt() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateScheduledAt()
	})
}

// SetDurationMinutes sets the "duration_minutes" field.
func (u *SessionUpsertOne) SetDurationMinutes(v int) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetDurationMinutes(v)
	})
}

// AddDurationMinutes adds v to the "duration_minutes" field.
func (u *SessionUpsertOne) AddDurationMinutes(v int) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.AddDurationMinutes(v)
	})
}

// UpdateDurationMinutes sets the "duration_minutes" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateDurationMinutes() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateDurationMinutes()
	})
}

// SetTimezone sets the "timezone" field.
func (u *SessionUpsertOne) SetTimezone(v string) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetTimezone(v)
	})
}

// UpdateTimezone sets the "timezone" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateTimezone() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateTimezone()
	})
}

// SetType sets the "type" field.
func (u *SessionUpsertOne) SetType(v session.Type) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateType() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateType()
	})
}

// SetStatus sets the "status" field.
func (u *SessionUpsertOne) SetStatus(v session.Status) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateStatus() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateStatus()
	})
}

// SetSeriesID sets the "series_id" field.
func (u *SessionUpsertOne) SetSeriesID(v uuid.UUID) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetSeriesID(v)
	})
}

// UpdateSeriesID sets the "series_id" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateSeriesID() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateSeriesID()
	})
}

// ClearSeriesID clears the value of the "series_id" field.
func (u *SessionUpsertOne) ClearSeriesID() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearSeriesID()
	})
}

// SetNotes sets the "notes" field.
func (u *SessionUpsertOne) SetNotes(v string) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateNotes() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *SessionUpsertOne) ClearNotes() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearNotes()
	})
}

// SetPriceCents sets the "price_cents" field.
func (u *SessionUpsertOne) SetPriceCents(v int64) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetPriceCents(v)
	})
}

// AddPriceCents adds v to the "price_cents" field.
func (u *SessionUpsertOne) AddPriceCents(v int64) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.AddPriceCents(v)
	})
}

// UpdatePriceCents sets the "price_cents" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdatePriceCents() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdatePriceCents()
	})
}

// SetCancellationReason sets the "cancellation_reason" field.
func (u *SessionUpsertOne) SetCancellationReason(v string) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetCancellationReason(v)
	})
}

// UpdateCancellationReason sets the "cancellation_reason" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateCancellationReason() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateCancellationReason()
	})
}

// ClearCancellationReason clears the value of the "cancellation_reason" field.
func (u *SessionUpsertOne) ClearCancellationReason() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearCancellationReason()
	})
}

// SetCancelRequestedBy sets the "cancel_requested_by" field.
func (u *SessionUpsertOne) SetCancelRequestedBy(v session.CancelRequestedBy) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetCancelRequestedBy(v)
	})
}

// UpdateCancelRequestedBy sets the "cancel_requested_by" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateCancelRequestedBy() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateCancelRequestedBy()
	})
}

// ClearCancelRequestedBy clears the value of the "cancel_requested_by" field.
func (u *SessionUpsertOne) ClearCancelRequestedBy() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearCancelRequestedBy()
	})
}

// SetCancelledAt sets the "cancelled_at" field.
func (u *SessionUpsertOne) SetCancelledAt(v time.Time) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetCancelledAt(v)
	})
}

// UpdateCancelledAt sets the "cancelled_at" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateCancelledAt() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateCancelledAt()
	})
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (u *SessionUpsertOne) ClearCancelledAt() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearCancelledAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *SessionUpsertOne) SetCompletedAt(v time.Time) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateCompletedAt() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *SessionUpsertOne) ClearCompletedAt() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *SessionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for SessionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SessionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SessionUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: SessionUpsertOne.ID is not supported by MySQL driver. Use SessionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SessionUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SessionCreateBulk is the builder for creating many Session entities in bulk.
type SessionCreateBulk struct {
	config
	err      error
	builders []*SessionCreate
	conflict []sql.ConflictOption
}

// Save creates the Session entities in the database.
func (_c *SessionCreateBulk) Save(ctx context.Context) ([]*Session, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Session, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionMutation)
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
func (_c *SessionCreateBulk) SaveX(ctx context.Context) []*Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Session.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SessionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *SessionCreateBulk) OnConflict(opts ...sql.ConflictOption) *SessionUpsertBulk {
	_c.conflict = opts
	return &SessionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SessionCreateBulk) OnConflictColumns(columns ...string) *SessionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SessionUpsertBulk{
		create: _c,
	}
}

// SessionUpsertBulk is the builder for "upsert"-ing
// a bulk of Session nodes.
type SessionUpsertBulk struct {
	create *SessionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(session.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SessionUpsertBulk) UpdateNewValues() *SessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(session.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(session.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SessionUpsertBulk) Ignore() *SessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SessionUpsertBulk) DoNothing() *SessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SessionCreateBulk.OnConflict
// documentation for more info.
func (u *SessionUpsertBulk) Update(set func(*SessionUpsert)) *SessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SessionUpsertBulk) SetUpdatedAt(v time.Time) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateUpdatedAt() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetClinicID sets the "clinic_id" field.
func (u *SessionUpsertBulk) SetClinicID(v uuid.UUID) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetClinicID(v)
	})
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateClinicID() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateClinicID()
	})
}

// SetPsychologistID sets the "psychologist_id" field.
func (u *SessionUpsertBulk) SetPsychologistID(v uuid.UUID) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetPsychologistID(v)
	})
}

// UpdatePsychologistID sets the "psychologist_id" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdatePsychologistID() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdatePsychologistID()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *SessionUpsertBulk) SetPatientID(v uuid.UUID) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdatePatientID() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdatePatientID()
	})
}

// ClearPatientID clears the value of the "patient_id" field.
func (u *SessionUpsertBulk) ClearPatientID() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearPatientID()
	})
}

// SetScheduledAt sets the "scheduled_at" field.
func (u *SessionUpsertBulk) SetScheduledAt(v time.Time) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetScheduledAt(v)
	})
}

// UpdateScheduledAt sets the "scheduled_at" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateScheduledAt() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateScheduledAt()
	})
}

// SetDurationMinutes sets the "duration_minutes" field.
func (u *SessionUpsertBulk) SetDurationMinutes(v int) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetDurationMinutes(v)
	})
}

// AddDurationMinutes adds v to the "duration_minutes" field.
func (u *SessionUpsertBulk) AddDurationMinutes(v int) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.AddDurationMinutes(v)
	})
}

// UpdateDurationMinutes sets the "duration_minutes" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateDurationMinutes() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateDurationMinutes()
	})
}

// SetTimezone sets the "timezone" field.
func (u *SessionUpsertBulk) SetTimezone(v string) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetTimezone(v)
	})
}

// UpdateTimezone sets the "timezone" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateTimezone() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateTimezone()
	})
}

// SetType sets the "type" field.
func (u *SessionUpsertBulk) SetType(v session.Type) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateType() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateType()
	})
}

// SetStatus sets the "status" field.
func (u *SessionUpsertBulk) SetStatus(v session.Status) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateStatus() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateStatus()
	})
}

// SetSeriesID sets the "series_id" field.
func (u *SessionUpsertBulk) SetSeriesID(v uuid.UUID) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetSeriesID(v)
	})
}

// UpdateSeriesID sets the "series_id" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateSeriesID() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateSeriesID()
	})
}

// ClearSeriesID clears the value of the "series_id" field.
func (u *SessionUpsertBulk) ClearSeriesID() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearSeriesID()
	})
}

// SetNotes sets the "notes" field.
func (u *SessionUpsertBulk) SetNotes(v string) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateNotes() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *SessionUpsertBulk) ClearNotes() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearNotes()
	})
}

// SetPriceCents sets the "price_cents" field.
func (u *SessionUpsertBulk) SetPriceCents(v int64) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetPriceCents(v)
	})
}

// AddPriceCents adds v to the "price_cents" field.
func (u *SessionUpsertBulk) AddPriceCents(v int64) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.AddPriceCents(v)
	})
}

// UpdatePriceCents sets the "price_cents" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdatePriceCents() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdatePriceCents()
	})
}

// SetCancellationReason sets the "cancellation_reason" field.
func (u *SessionUpsertBulk) SetCancellationReason(v string) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetCancellationReason(v)
	})
}

// UpdateCancellationReason sets the "cancellation_reason" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateCancellationReason() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateCancellationReason()
	})
}

// ClearCancellationReason clears the value of the "cancellation_reason" field.
func (u *SessionUpsertBulk) ClearCancellationReason() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearCancellationReason()
	})
}

// SetCancelRequestedBy sets the "cancel_requested_by" field.
func (u *SessionUpsertBulk) SetCancelRequestedBy(v session.CancelRequestedBy) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetCancelRequestedBy(v)
	})
}

// UpdateCancelRequestedBy sets the "cancel_requested_by" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateCancelRequestedBy() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateCancelRequestedBy()
	})
}

// ClearCancelRequestedBy clears the value of the "cancel_requested_by" field.
func (u *SessionUpsertBulk) ClearCancelRequestedBy() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearCancelRequestedBy()
	})
}

// SetCancelledAt sets the "cancelled_at" field.
func (u *SessionUpsertBulk) SetCancelledAt(v time.Time) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetCancelledAt(v)
	})
}

// UpdateCancelledAt sets the "cancelled_at" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateCancelledAt() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateCancelledAt()
	})
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (u *SessionUpsertBulk) ClearCancelledAt() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearCancelledAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *SessionUpsertBulk) SetCompletedAt(v time.Time) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateCompletedAt() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *SessionUpsertBulk) ClearCompletedAt() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *SessionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the SessionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for SessionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SessionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
