// Code generated by ent, DO NOT EDIT.

package clinicsettings

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/amparasaude/ampara_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldUpdatedAt, v))
}

// ClinicID applies equality check predicate on the "clinic_id" field. It's identical to ClinicIDEQ.
func ClinicID(v uuid.UUID) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldClinicID, v))
}

// CancellationWindowHours applies equality check predicate on the "cancellation_window_hours" field. It's identical to CancellationWindowHoursEQ.
func CancellationWindowHours(v int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldCancellationWindowHours, v))
}

// AllowPatientSelfBook applies equality check predicate on the "allow_patient_self_book" field. It's identical to AllowPatientSelfBookEQ.
func AllowPatientSelfBook(v bool) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldAllowPatientSelfBook, v))
}

// DefaultSessionDurationMin applies equality check predicate on the "default_session_duration_min" field. It's identical to DefaultSessionDurationMinEQ.
func DefaultSessionDurationMin(v int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldDefaultSessionDurationMin, v))
}

// DefaultSessionPriceCents applies equality check predicate on the "default_session_price_cents" field. It's identical to DefaultSessionPriceCentsEQ.
func DefaultSessionPriceCents(v int64) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldDefaultSessionPriceCents, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLTE(FieldUpdatedAt, v))
}

// ClinicIDEQ applies the EQ predicate on the "clinic_id" field.
func ClinicIDEQ(v uuid.UUID) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldClinicID, v))
}

// ClinicIDNEQ applies the NEQ predicate on the "clinic_id" field.
func ClinicIDNEQ(v uuid.UUID) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNEQ(FieldClinicID, v))
}

// ClinicIDIn applies the In predicate on the "clinic_id" field.
func ClinicIDIn(vs ...uuid.UUID) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldIn(FieldClinicID, vs...))
}

// ClinicIDNotIn applies the NotIn predicate on the "clinic_id" field.
func ClinicIDNotIn(vs ...uuid.UUID) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNotIn(FieldClinicID, vs...))
}

// CancellationWindowHoursEQ applies the EQ predicate on the "cancellation_window_hours" field.
func CancellationWindowHoursEQ(v int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldCancellationWindowHours, v))
}

// CancellationWindowHoursNEQ applies the NEQ predicate on the "cancellation_window_hours" field.
func CancellationWindowHoursNEQ(v int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNEQ(FieldCancellationWindowHours, v))
}

// CancellationWindowHoursIn applies the In predicate on the "cancellation_window_hours" field.
func CancellationWindowHoursIn(vs ...int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldIn(FieldCancellationWindowHours, vs...))
}

// CancellationWindowHoursNotIn applies the NotIn predicate on the "cancellation_window_hours" field.
func CancellationWindowHoursNotIn(vs ...int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNotIn(FieldCancellationWindowHours, vs...))
}

// CancellationWindowHoursGT applies the GT predicate on the "cancellation_window_hours" field.
func CancellationWindowHoursGT(v int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGT(FieldCancellationWindowHours, v))
}

// CancellationWindowHoursGTE applies the GTE predicate on the "cancellation_window_hours" field.
func CancellationWindowHoursGTE(v int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGTE(FieldCancellationWindowHours, v))
}

// CancellationWindowHoursLT applies the LT predicate on the "cancellation_window_hours" field.
func CancellationWindowHoursLT(v int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLT(FieldCancellationWindowHours, v))
}

// CancellationWindowHoursLTE applies the LTE predicate on the "cancellation_window_hours" field.
func CancellationWindowHoursLTE(v int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLTE(FieldCancellationWindowHours, v))
}

// AllowPatientSelfBookEQ applies the EQ predicate on the "allow_patient_self_book" field.
func AllowPatientSelfBookEQ(v bool) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldAllowPatientSelfBook, v))
}

// AllowPatientSelfBookNEQ applies the NEQ predicate on the "allow_patient_self_book" field.
func AllowPatientSelfBookNEQ(v bool) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNEQ(FieldAllowPatientSelfBook, v))
}

// DefaultSessionDurationMinEQ applies the EQ predicate on the "default_session_duration_min" field.
func DefaultSessionDurationMinEQ(v int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldDefaultSessionDurationMin, v))
}

// DefaultSessionDurationMinNEQ applies the NEQ predicate on the "default_session_duration_min" field.
func DefaultSessionDurationMinNEQ(v int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNEQ(FieldDefaultSessionDurationMin, v))
}

// DefaultSessionDurationMinIn applies the In predicate on the "default_session_duration_min" field.
func DefaultSessionDurationMinIn(vs ...int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldIn(FieldDefaultSessionDurationMin, vs...))
}

// DefaultSessionDurationMinNotIn applies the NotIn predicate on the "default_session_duration_min" field.
func DefaultSessionDurationMinNotIn(vs ...int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNotIn(FieldDefaultSessionDurationMin, vs...))
}

// DefaultSessionDurationMinGT applies the GT predicate on the "default_session_duration_min" field.
func DefaultSessionDurationMinGT(v int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGT(FieldDefaultSessionDurationMin, v))
}

// DefaultSessionDurationMinGTE applies the GTE predicate on the "default_session_duration_min" field.
func DefaultSessionDurationMinGTE(v int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGTE(FieldDefaultSessionDurationMin, v))
}

// DefaultSessionDurationMinLT applies the LT predicate on the "default_session_duration_min" field.
func DefaultSessionDurationMinLT(v int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLT(FieldDefaultSessionDurationMin, v))
}

// DefaultSessionDurationMinLTE applies the LTE predicate on the "default_session_duration_min" field.
func DefaultSessionDurationMinLTE(v int) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLTE(FieldDefaultSessionDurationMin, v))
}

// DefaultSessionPriceCentsEQ applies the EQ predicate on the "default_session_price_cents" field.
func DefaultSessionPriceCentsEQ(v int64) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldEQ(FieldDefaultSessionPriceCents, v))
}

// DefaultSessionPriceCentsNEQ applies the NEQ predicate on the "default_session_price_cents" field.
func DefaultSessionPriceCentsNEQ(v int64) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNEQ(FieldDefaultSessionPriceCents, v))
}

// DefaultSessionPriceCentsIn applies the In predicate on the "default_session_price_cents" field.
func DefaultSessionPriceCentsIn(vs ...int64) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldIn(FieldDefaultSessionPriceCents, vs...))
}

// DefaultSessionPriceCentsNotIn applies the NotIn predicate on the "default_session_price_cents" field.
func DefaultSessionPriceCentsNotIn(vs ...int64) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNotIn(FieldDefaultSessionPriceCents, vs...))
}

// DefaultSessionPriceCentsGT applies the GT predicate on the "default_session_price_cents" field.
func DefaultSessionPriceCentsGT(v int64) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGT(FieldDefaultSessionPriceCents, v))
}

// DefaultSessionPriceCentsGTE applies the GTE predicate on the "default_session_price_cents" field.
func DefaultSessionPriceCentsGTE(v int64) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldGTE(FieldDefaultSessionPriceCents, v))
}

// DefaultSessionPriceCentsLT applies the LT predicate on the "default_session_price_cents" field.
func DefaultSessionPriceCentsLT(v int64) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLT(FieldDefaultSessionPriceCents, v))
}

// DefaultSessionPriceCentsLTE applies the LTE predicate on the "default_session_price_cents" field.
func DefaultSessionPriceCentsLTE(v int64) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldLTE(FieldDefaultSessionPriceCents, v))
}

// WorkingHoursIsNil applies the IsNil predicate on the "working_hours" field.
func WorkingHoursIsNil() predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldIsNull(FieldWorkingHours))
}

// WorkingHoursNotNil applies the NotNil predicate on the "working_hours" field.
func WorkingHoursNotNil() predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.FieldNotNull(FieldWorkingHours))
}

// HasClinic applies the HasEdge predicate on the "clinic" edge.
func HasClinic() predicate.ClinicSettings {
	return predicate.ClinicSettings(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, ClinicTable, ClinicColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasClinicWith applies the HasEdge predicate on the "clinic" edge with a given conditions (other predicates).
func HasClinicWith(preds ...predicate.Clinic) predicate.ClinicSettings {
	return predicate.ClinicSettings(func(s *sql.Selector) {
		step := newClinicStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ClinicSettings) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ClinicSettings) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ClinicSettings) predicate.ClinicSettings {
	return predicate.ClinicSettings(sql.NotPredicates(p))
}
