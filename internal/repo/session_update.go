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
	"github.com/amparasaude/ampara_backend/internal/repo/session"
	"github.com/google/uuid"
)

// SessionUpdate is the builder for updating Session entities.
type SessionUpdate struct {
	config
	hooks    []Hook
	mutation *SessionMutation
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdate) Where(ps ...predicate.Session) *SessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionUpdate) SetUpdatedAt(v time.Time) *SessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *SessionUpdate) SetClinicID(v uuid.UUID) *SessionUpdate {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableClinicID(v *uuid.UUID) *SessionUpdate {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetPsychologistID sets the "psychologist_id" field.
func (_u *SessionUpdate) SetPsychologistID(v uuid.UUID) *SessionUpdate {
	_u.mutation.SetPsychologistID(v)
	return _u
}

// SetNillablePsychologistID sets the "psychologist_id" field if the given value is not nil.
func (_u *SessionUpdate) SetNillablePsychologistID(v *uuid.UUID) *SessionUpdate {
	if v != nil {
		_u.SetPsychologistID(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *SessionUpdate) SetPatientID(v uuid.UUID) *SessionUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *SessionUpdate) SetNillablePatientID(v *uuid.UUID) *SessionUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// ClearPatientID clears the value of the "patient_id" field.
func (_u *SessionUpdate) ClearPatientID() *SessionUpdate {
	_u.mutation.ClearPatientID()
	return _u
}

// SetScheduledAt sets the "scheduled_at" field.
func (_u *SessionUpdate) SetScheduledAt(v time.Time) *SessionUpdate {
	_u.mutation.SetScheduledAt(v)
	return _u
}

// SetNillableScheduledAt sets the "scheduled_at" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableScheduledAt(v *time.Time) *SessionUpdate {
	if v != nil {
		_u.SetScheduledAt(*v)
	}
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *SessionUpdate) SetDurationMinutes(v int) *SessionUpdate {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableDurationMinutes(v *int) *SessionUpdate {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *SessionUpdate) AddDurationMinutes(v int) *SessionUpdate {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *SessionUpdate) SetTimezone(v string) *SessionUpdate {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableTimezone(v *string) *SessionUpdate {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *SessionUpdate) SetType(v session.Type) *SessionUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableType(v *session.Type) *SessionUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SessionUpdate) SetStatus(v session.Status) *SessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableStatus(v *session.Status) *SessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSeriesID sets the "series_id" field.
func (_u *SessionUpdate) SetSeriesID(v uuid.UUID) *SessionUpdate {
	_u.mutation.SetSeriesID(v)
	return _u
}

// SetNillableSeriesID sets the "series_id" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableSeriesID(v *uuid.UUID) *SessionUpdate {
	if v != nil {
		_u.SetSeriesID(*v)
	}
	return _u
}

// ClearSeriesID clears the value of the "series_id" field.
func (_u *SessionUpdate) ClearSeriesID() *SessionUpdate {
	_u.mutation.ClearSeriesID()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *SessionUpdate) SetNotes(v string) *SessionUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableNotes(v *string) *SessionUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *SessionUpdate) ClearNotes() *SessionUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetPriceCents sets the "price_cents" field.
func (_u *SessionUpdate) SetPriceCents(v int64) *SessionUpdate {
	_u.mutation.ResetPriceCents()
	_u.mutation.SetPriceCents(v)
	return _u
}

// SetNillablePriceCents sets the "price_cents" field if the given value is not nil.
func (_u *SessionUpdate) SetNillablePriceCents(v *int64) *SessionUpdate {
	if v != nil {
		_u.SetPriceCents(*v)
	}
	return _u
}

// AddPriceCents adds value to the "price_cents" field.
func (_u *SessionUpdate) AddPriceCents(v int64) *SessionUpdate {
	_u.mutation.AddPriceCents(v)
	return _u
}

// SetCancellationReason sets the "cancellation_reason" field.
func (_u *SessionUpdate) SetCancellationReason(v string) *SessionUpdate {
	_u.mutation.SetCancellationReason(v)
	return _u
}

// SetNillableCancellationReason sets the "cancellation_reason" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableCancellationReason(v *string) *SessionUpdate {
	if v != nil {
		_u.SetCancellationReason(*v)
	}
	return _u
}

// ClearCancellationReason clears the value of the "cancellation_reason" field.
func (_u *SessionUpdate) ClearCancellationReason() *SessionUpdate {
	_u.mutation.ClearCancellationReason()
	return _u
}

// SetCancelRequestedBy sets the "cancel_requested_by" field.
func (_u *SessionUpdate) SetCancelRequestedBy(v session.CancelRequestedBy) *SessionUpdate {
	_u.mutation.SetCancelRequestedBy(v)
	return _u
}

// SetNillableCancelRequestedBy sets the "cancel_requested_by" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableCancelRequestedBy(v *session.CancelRequestedBy) *SessionUpdate {
	if v != nil {
		_u.SetCancelRequestedBy(*v)
	}
	return _u
}

// ClearCancelRequestedBy clears the value of the "cancel_requested_by" field.
func (_u *SessionUpdate) ClearCancelRequestedBy() *SessionUpdate {
	_u.mutation.ClearCancelRequestedBy()
	return _u
}

// SetCancelledAt sets the "cancelled_at" field.
func (_u *SessionUpdate) SetCancelledAt(v time.Time) *SessionUpdate {
	_u.mutation.SetCancelledAt(v)
	return _u
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableCancelledAt(v *time.Time) *SessionUpdate {
	if v != nil {
		_u.SetCancelledAt(*v)
	}
	return _u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (_u *SessionUpdate) ClearCancelledAt() *SessionUpdate {
	_u.mutation.ClearCancelledAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SessionUpdate) SetCompletedAt(v time.Time) *SessionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableCompletedAt(v *time.Time) *SessionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SessionUpdate) ClearCompletedAt() *SessionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdate) Mutation() *SessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := session.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdate) check() error {
	if v, ok := _u.mutation.DurationMinutes(); ok {
		if err := session.DurationMinutesValidator(v); err != nil {
			return &ValidationError{Name: "duration_minutes", err: fmt.Errorf(`repo: validator failed for field "Session.duration_minutes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Timezone(); ok {
		if err := session.TimezoneValidator(v); err != nil {
			return &ValidationError{Name: "timezone", err: fmt.Errorf(`repo: validator failed for field "Session.timezone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := session.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`repo: validator failed for field "Session.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := session.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Session.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CancelRequestedBy(); ok {
		if err := session.CancelRequestedByValidator(v); err != nil {
			return &ValidationError{Name: "cancel_requested_by", err: fmt.Errorf(`repo: validator failed for field "Session.cancel_requested_by": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(session.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClinicID(); ok {
		_spec.SetField(session.FieldClinicID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PsychologistID(); ok {
		_spec.SetField(session.FieldPsychologistID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(session.FieldPatientID, field.TypeUUID, value)
	}
	if _u.mutation.PatientIDCleared() {
		_spec.ClearField(session.FieldPatientID, field.TypeUUID)
	}
	if value, ok := _u.mutation.ScheduledAt(); ok {
		_spec.SetField(session.FieldScheduledAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(session.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(session.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(session.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(session.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(session.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SeriesID(); ok {
		_spec.SetField(session.FieldSeriesID, field.TypeUUID, value)
	}
	if _u.mutation.SeriesIDCleared() {
		_spec.ClearField(session.FieldSeriesID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(session.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(session.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.PriceCents(); ok {
		_spec.SetField(session.FieldPriceCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPriceCents(); ok {
		_spec.AddField(session.FieldPriceCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CancellationReason(); ok {
		_spec.SetField(session.FieldCancellationReason, field.TypeString, value)
	}
	if _u.mutation.CancellationReasonCleared() {
		_spec.ClearField(session.FieldCancellationReason, field.TypeString)
	}
	if value, ok := _u.mutation.CancelRequestedBy(); ok {
		_spec.SetField(session.FieldCancelRequestedBy, field.TypeEnum, value)
	}
	if _u.mutation.CancelRequestedByCleared() {
		_spec.ClearField(session.FieldCancelRequestedBy, field.TypeEnum)
	}
	if value, ok := _u.mutation.CancelledAt(); ok {
		_spec.SetField(session.FieldCancelledAt, field.TypeTime, value)
	}
	if _u.mutation.CancelledAtCleared() {
		_spec.ClearField(session.FieldCancelledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(session.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(session.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionUpdateOne is the builder for updating a single Session entity.
type SessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionUpdateOne) SetUpdatedAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *SessionUpdateOne) SetClinicID(v uuid.UUID) *SessionUpdateOne {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableClinicID(v *uuid.UUID) *SessionUpdateOne {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetPsychologistID sets the "psychologist_id" field.
func (_u *SessionUpdateOne) SetPsychologistID(v uuid.UUID) *SessionUpdateOne {
	_u.mutation.SetPsychologistID(v)
	return _u
}

// SetNillablePsychologistID sets the "psychologist_id" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillablePsychologistID(v *uuid.UUID) *SessionUpdateOne {
	if v != nil {
		_u.SetPsychologistID(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *SessionUpdateOne) SetPatientID(v uuid.UUID) *SessionUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillablePatientID(v *uuid.UUID) *SessionUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// ClearPatientID clears the value of the "patient_id" field.
func (_u *SessionUpdateOne) ClearPatientID() *SessionUpdateOne {
	_u.mutation.ClearPatientID()
	return _u
}

// SetScheduledAt sets the "scheduled_at" field.
func (_u *SessionUpdateOne) SetScheduledAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetScheduledAt(v)
	return _u
}

// SetNillableScheduledAt sets the "scheduled_at" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableScheduledAt(v *time.Time) *SessionUpdateOne {
	if v != nil {
		_u.SetScheduledAt(*v)
	}
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *SessionUpdateOne) SetDurationMinutes(v int) *SessionUpdateOne {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableDurationMinutes(v *int) *SessionUpdateOne {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *SessionUpdateOne) AddDurationMinutes(v int) *SessionUpdateOne {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *SessionUpdateOne) SetTimezone(v string) *SessionUpdateOne {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableTimezone(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *SessionUpdateOne) SetType(v session.Type) *SessionUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableType(v *session.Type) *SessionUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SessionUpdateOne) SetStatus(v session.Status) *SessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableStatus(v *session.Status) *SessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSeriesID sets the "series_id" field.
func (_u *SessionUpdateOne) SetSeriesID(v uuid.UUID) *SessionUpdateOne {
	_u.mutation.SetSeriesID(v)
	return _u
}

// SetNillableSeriesID sets the "series_id" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableSeriesID(v *uuid.UUID) *SessionUpdateOne {
	if v != nil {
		_u.SetSeriesID(*v)
	}
	return _u
}

// ClearSeriesID clears the value of the "series_id" field.
func (_u *SessionUpdateOne) ClearSeriesID() *SessionUpdateOne {
	_u.mutation.ClearSeriesID()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *SessionUpdateOne) SetNotes(v string) *SessionUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableNotes(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *SessionUpdateOne) ClearNotes() *SessionUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetPriceCents sets the "price_cents" field.
func (_u *SessionUpdateOne) SetPriceCents(v int64) *SessionUpdateOne {
	_u.mutation.ResetPriceCents()
	_u.mutation.SetPriceCents(v)
	return _u
}

// SetNillablePriceCents sets the "price_cents" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillablePriceCents(v *int64) *SessionUpdateOne {
	if v != nil {
		_u.SetPriceCents(*v)
	}
	return _u
}

// AddPriceCents adds value to the "price_cents" field.
func (_u *SessionUpdateOne) AddPriceCents(v int64) *SessionUpdateOne {
	_u.mutation.AddPriceCents(v)
	return _u
}

// SetCancellationReason sets the "cancellation_reason" field.
func (_u *SessionUpdateOne) SetCancellationReason(v string) *SessionUpdateOne {
	_u.mutation.SetCancellationReason(v)
	return _u
}

// SetNillableCancellationReason sets the "cancellation_reason" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableCancellationReason(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetCancellationReason(*v)
	}
	return _u
}

// ClearCancellationReason clears the value of the "cancellation_reason" field.
func (_u *SessionUpdateOne) ClearCancellationReason() *SessionUpdateOne {
	_u.mutation.ClearCancellationReason()
	return _u
}

// SetCancelRequestedBy sets the "cancel_requested_by" field.
func (_u *SessionUpdateOne) SetCancelRequestedBy(v session.CancelRequestedBy) *SessionUpdateOne {
	_u.mutation.SetCancelRequestedBy(v)
	return _u
}

// SetNillableCancelRequestedBy sets the "cancel_requested_by" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableCancelRequestedBy(v *session.CancelRequestedBy) *SessionUpdateOne {
	if v != nil {
		_u.SetCancelRequestedBy(*v)
	}
	return _u
}

// ClearCancelRequestedBy clears the value of the "cancel_requested_by" field.
func (_u *SessionUpdateOne) ClearCancelRequestedBy() *SessionUpdateOne {
	_u.mutation.ClearCancelRequestedBy()
	return _u
}

// SetCancelledAt sets the "cancelled_at" field.
func (_u *SessionUpdateOne) SetCancelledAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetCancelledAt(v)
	return _u
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableCancelledAt(v *time.Time) *SessionUpdateOne {
	if v != nil {
		_u.SetCancelledAt(*v)
	}
	return _u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (_u *SessionUpdateOne) ClearCancelledAt() *SessionUpdateOne {
	_u.mutation.ClearCancelledAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SessionUpdateOne) SetCompletedAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableCompletedAt(v *time.Time) *SessionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SessionUpdateOne) ClearCompletedAt() *SessionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdateOne) Mutation() *SessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdateOne) Where(ps ...predicate.Session) *SessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionUpdateOne) Select(field string, fields ...string) *SessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Session entity.
func (_u *SessionUpdateOne) Save(ctx context.Context) (*Session, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdateOne) SaveX(ctx context.Context) *Session {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := session.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdateOne) check() error {
	if v, ok := _u.mutation.DurationMinutes(); ok {
		if err := session.DurationMinutesValidator(v); err != nil {
			return &ValidationError{Name: "duration_minutes", err: fmt.Errorf(`repo: validator failed for field "Session.duration_minutes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Timezone(); ok {
		if err := session.TimezoneValidator(v); err != nil {
			return &ValidationError{Name: "timezone", err: fmt.Errorf(`repo: validator failed for field "Session.timezone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := session.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`repo: validator failed for field "Session.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := session.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Session.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CancelRequestedBy(); ok {
		if err := session.CancelRequestedByValidator(v); err != nil {
			return &ValidationError{Name: "cancel_requested_by", err: fmt.Errorf(`repo: validator failed for field "Session.cancel_requested_by": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionUpdateOne) sqlSave(ctx context.Context) (_node *Session, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Session.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, session.FieldID)
		for _, f := range fields {
			if !session.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != session.FieldID {
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
		_spec.SetField(session.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClinicID(); ok {
		_spec.SetField(session.FieldClinicID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PsychologistID(); ok {
		_spec.SetField(session.FieldPsychologistID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(session.FieldPatientID, field.TypeUUID, value)
	}
	if _u.mutation.PatientIDCleared() {
		_spec.ClearField(session.FieldPatientID, field.TypeUUID)
	}
	if value, ok := _u.mutation.ScheduledAt(); ok {
		_spec.SetField(session.FieldScheduledAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(session.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(session.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(session.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(session.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(session.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SeriesID(); ok {
		_spec.SetField(session.FieldSeriesID, field.TypeUUID, value)
	}
	if _u.mutation.SeriesIDCleared() {
		_spec.ClearField(session.FieldSeriesID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(session.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(session.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.PriceCents(); ok {
		_spec.SetField(session.FieldPriceCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPriceCents(); ok {
		_spec.AddField(session.FieldPriceCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CancellationReason(); ok {
		_spec.SetField(session.FieldCancellationReason, field.TypeString, value)
	}
	if _u.mutation.CancellationReasonCleared() {
		_spec.ClearField(session.FieldCancellationReason, field.TypeString)
	}
	if value, ok := _u.mutation.CancelRequestedBy(); ok {
		_spec.SetField(session.FieldCancelRequestedBy, field.TypeEnum, value)
	}
	if _u.mutation.CancelRequestedByCleared() {
		_spec.ClearField(session.FieldCancelRequestedBy, field.TypeEnum)
	}
	if value, ok := _u.mutation.CancelledAt(); ok {
		_spec.SetField(session.FieldCancelledAt, field.TypeTime, value)
	}
	if _u.mutation.CancelledAtCleared() {
		_spec.ClearField(session.FieldCancelledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(session.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(session.FieldCompletedAt, field.TypeTime)
	}
	_node = &Session{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
