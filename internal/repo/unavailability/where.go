// Code generated by ent, DO NOT EDIT.

package unavailability

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/amparasaude/ampara_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldEQ(FieldUpdatedAt, v))
}

// PsychologistID applies equality check predicate on the "psychologist_id" field. It's identical to PsychologistIDEQ.
func PsychologistID(v uuid.UUID) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldEQ(FieldPsychologistID, v))
}

// ClinicID applies equality check predicate on the "clinic_id" field. It's identical to ClinicIDEQ.
func ClinicID(v uuid.UUID) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldEQ(FieldClinicID, v))
}

// StartTime applies equality check predicate on the "start_time" field. It's identical to StartTimeEQ.
func StartTime(v time.Time) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldEQ(FieldStartTime, v))
}

// EndTime applies equality check predicate on the "end_time" field. It's identical to EndTimeEQ.
func EndTime(v time.Time) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldEQ(FieldEndTime, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldEQ(FieldReason, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldLTE(FieldUpdatedAt, v))
}

// PsychologistIDEQ applies the EQ predicate on the "psychologist_id" field.
func PsychologistIDEQ(v uuid.UUID) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldEQ(FieldPsychologistID, v))
}

// PsychologistIDNEQ applies the NEQ predicate on the "psychologist_id" field.
func PsychologistIDNEQ(v uuid.UUID) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldNEQ(FieldPsychologistID, v))
}

// PsychologistIDIn applies the In predicate on the "psychologist_id" field.
func PsychologistIDIn(vs ...uuid.UUID) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldIn(FieldPsychologistID, vs...))
}

// PsychologistIDNotIn applies the NotIn predicate on the "psychologist_id" field.
func PsychologistIDNotIn(vs ...uuid.UUID) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldNotIn(FieldPsychologistID, vs...))
}

// PsychologistIDGT applies the GT predicate on the "psychologist_id" field.
func PsychologistIDGT(v uuid.UUID) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldGT(FieldPsychologistID, v))
}

// PsychologistIDGTE applies the GTE predicate on the "psychologist_id" field.
func PsychologistIDGTE(v uuid.UUID) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldGTE(FieldPsychologistID, v))
}

// PsychologistIDLT applies the LT predicate on the "psychologist_id" field.
func PsychologistIDLT(v uuid.UUID) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldLT(FieldPsychologistID, v))
}

// PsychologistIDLTE applies the LTE predicate on the "psychologist_id" field.
func PsychologistIDLTE(v uuid.UUID) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldLTE(FieldPsychologistID, v))
}

// ClinicIDEQ applies the EQ predicate on the "clinic_id" field.
func ClinicIDEQ(v uuid.UUID) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldEQ(FieldClinicID, v))
}

// ClinicIDNEQ applies the NEQ predicate on the "clinic_id" field.
func ClinicIDNEQ(v uuid.UUID) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldNEQ(FieldClinicID, v))
}

// ClinicIDIn applies the In predicate on the "clinic_id" field.
func ClinicIDIn(vs ...uuid.UUID) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldIn(FieldClinicID, vs...))
}

// ClinicIDNotIn applies the NotIn predicate on the "clinic_id" field.
func ClinicIDNotIn(vs ...uuid.UUID) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldNotIn(FieldClinicID, vs...))
}

// ClinicIDGT applies the GT predicate on the "clinic_id" field.
func ClinicIDGT(v uuid.UUID) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldGT(FieldClinicID, v))
}

// ClinicIDGTE applies the GTE predicate on the "clinic_id" field.
func ClinicIDGTE(v uuid.UUID) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldGTE(FieldClinicID, v))
}

// ClinicIDLT applies the LT predicate on the "clinic_id" field.
func ClinicIDLT(v uuid.UUID) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldLT(FieldClinicID, v))
}

// ClinicIDLTE applies the LTE predicate on the "clinic_id" field.
func ClinicIDLTE(v uuid.UUID) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldLTE(FieldClinicID, v))
}

// StartTimeEQ applies the EQ predicate on the "start_time" field.
func StartTimeEQ(v time.Time) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldEQ(FieldStartTime, v))
}

// StartTimeNEQ applies the NEQ predicate on the "start_time" field.
func StartTimeNEQ(v time.Time) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldNEQ(FieldStartTime, v))
}

// StartTimeIn applies the In predicate on the "start_time" field.
func StartTimeIn(vs ...time.Time) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldIn(FieldStartTime, vs...))
}

// StartTimeNotIn applies the NotIn predicate on the "start_time" field.
func StartTimeNotIn(vs ...time.Time) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldNotIn(FieldStartTime, vs...))
}

// StartTimeGT applies the GT predicate on the "start_time" field.
func StartTimeGT(v time.Time) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldGT(FieldStartTime, v))
}

// StartTimeGTE applies the GTE predicate on the "start_time" field.
func StartTimeGTE(v time.Time) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldGTE(FieldStartTime, v))
}

// StartTimeLT applies the LT predicate on the "start_time" field.
func StartTimeLT(v time.Time) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldLT(FieldStartTime, v))
}

// StartTimeLTE applies the LTE predicate on the "start_time" field.
func StartTimeLTE(v time.Time) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldLTE(FieldStartTime, v))
}

// EndTimeEQ applies the EQ predicate on the "end_time" field.
func EndTimeEQ(v time.Time) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldEQ(FieldEndTime, v))
}

// EndTimeNEQ applies the NEQ predicate on the "end_time" field.
func EndTimeNEQ(v time.Time) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldNEQ(FieldEndTime, v))
}

// EndTimeIn applies the In predicate on the "end_time" field.
func EndTimeIn(vs ...time.Time) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldIn(FieldEndTime, vs...))
}

// EndTimeNotIn applies the NotIn predicate on the "end_time" field.
func EndTimeNotIn(vs ...time.Time) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldNotIn(FieldEndTime, vs...))
}

// EndTimeGT applies the GT predicate on the "end_time" field.
func EndTimeGT(v time.Time) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldGT(FieldEndTime, v))
}

// EndTimeGTE applies the GTE predicate on the "end_time" field.
func EndTimeGTE(v time.Time) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldGTE(FieldEndTime, v))
}

// EndTimeLT applies the LT predicate on the "end_time" field.
func EndTimeLT(v time.Time) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldLT(FieldEndTime, v))
}

// EndTimeLTE applies the LTE predicate on the "end_time" field.
func EndTimeLTE(v time.Time) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldLTE(FieldEndTime, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonIsNil applies the IsNil predicate on the "reason" field.
func ReasonIsNil() predicate.Unavailability {
	return predicate.Unavailability(sql.FieldIsNull(FieldReason))
}

// ReasonNotNil applies the NotNil predicate on the "reason" field.
func ReasonNotNil() predicate.Unavailability {
	return predicate.Unavailability(sql.FieldNotNull(FieldReason))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.Unavailability {
	return predicate.Unavailability(sql.FieldContainsFold(FieldReason, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Unavailability) predicate.Unavailability {
	return predicate.Unavailability(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Unavailability) predicate.Unavailability {
	return predicate.Unavailability(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Unavailability) predicate.Unavailability {
	return predicate.Unavailability(sql.NotPredicates(p))
}
