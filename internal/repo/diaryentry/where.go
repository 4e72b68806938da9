// Code generated by ent, DO NOT EDIT.

package diaryentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/amparasaude/ampara_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldEQ(FieldUpdatedAt, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldEQ(FieldPatientID, v))
}

// EntryDate applies equality check predicate on the "entry_date" field. It's identical to EntryDateEQ.
func EntryDate(v time.Time) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldEQ(FieldEntryDate, v))
}

// Mood applies equality check predicate on the "mood" field. It's identical to MoodEQ.
func Mood(v int) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldEQ(FieldMood, v))
}

// Energy applies equality check predicate on the "energy" field. It's identical to EnergyEQ.
func Energy(v int) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldEQ(FieldEnergy, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldEQ(FieldContent, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldLTE(FieldUpdatedAt, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldNotIn(FieldPatientID, vs...))
}

// PatientIDGT applies the GT predicate on the "patient_id" field.
func PatientIDGT(v uuid.UUID) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldGT(FieldPatientID, v))
}

// PatientIDGTE applies the GTE predicate on the "patient_id" field.
func PatientIDGTE(v uuid.UUID) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldGTE(FieldPatientID, v))
}

// PatientIDLT applies the LT predicate on the "patient_id" field.
func PatientIDLT(v uuid.UUID) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldLT(FieldPatientID, v))
}

// PatientIDLTE applies the LTE predicate on the "patient_id" field.
func PatientIDLTE(v uuid.UUID) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldLTE(FieldPatientID, v))
}

// EntryDateEQ applies the EQ predicate on the "entry_date" field.
func EntryDateEQ(v time.Time) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldEQ(FieldEntryDate, v))
}

// EntryDateNEQ applies the NEQ predicate on the "entry_date" field.
func EntryDateNEQ(v time.Time) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldNEQ(FieldEntryDate, v))
}

// EntryDateIn applies the In predicate on the "entry_date" field.
func EntryDateIn(vs ...time.Time) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldIn(FieldEntryDate, vs...))
}

// EntryDateNotIn applies the NotIn predicate on the "entry_date" field.
func EntryDateNotIn(vs ...time.Time) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldNotIn(FieldEntryDate, vs...))
}

// EntryDateGT applies the GT predicate on the "entry_date" field.
func EntryDateGT(v time.Time) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldGT(FieldEntryDate, v))
}

// EntryDateGTE applies the GTE predicate on the "entry_date" field.
func EntryDateGTE(v time.Time) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldGTE(FieldEntryDate, v))
}

// EntryDateLT applies the LT predicate on the "entry_date" field.
func EntryDateLT(v time.Time) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldLT(FieldEntryDate, v))
}

// EntryDateLTE applies the LTE predicate on the "entry_date" field.
func EntryDateLTE(v time.Time) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldLTE(FieldEntryDate, v))
}

// MoodEQ applies the EQ predicate on the "mood" field.
func MoodEQ(v int) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldEQ(FieldMood, v))
}

// MoodNEQ applies the NEQ predicate on the "mood" field.
func MoodNEQ(v int) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldNEQ(FieldMood, v))
}

// MoodIn applies the In predicate on the "mood" field.
func MoodIn(vs ...int) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldIn(FieldMood, vs...))
}

// MoodNotIn applies the NotIn predicate on the "mood" field.
func MoodNotIn(vs ...int) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldNotIn(FieldMood, vs...))
}

// MoodGT applies the GT predicate on the "mood" field.
func MoodGT(v int) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldGT(FieldMood, v))
}

// MoodGTE applies the GTE predicate on the "mood" field.
func MoodGTE(v int) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldGTE(FieldMood, v))
}

// MoodLT applies the LT predicate on the "mood" field.
func MoodLT(v int) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldLT(FieldMood, v))
}

// MoodLTE applies the LTE predicate on the "mood" field.
func MoodLTE(v int) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldLTE(FieldMood, v))
}

// EnergyEQ applies the EQ predicate on the "energy" field.
func EnergyEQ(v int) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldEQ(FieldEnergy, v))
}

// EnergyNEQ applies the NEQ predicate on the "energy" field.
func EnergyNEQ(v int) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldNEQ(FieldEnergy, v))
}

// EnergyIn applies the In predicate on the "energy" field.
func EnergyIn(vs ...int) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldIn(FieldEnergy, vs...))
}

// EnergyNotIn applies the NotIn predicate on the "energy" field.
func EnergyNotIn(vs ...int) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldNotIn(FieldEnergy, vs...))
}

// EnergyGT applies the GT predicate on the "energy" field.
func EnergyGT(v int) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldGT(FieldEnergy, v))
}

// EnergyGTE applies the GTE predicate on the "energy" field.
func EnergyGTE(v int) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldGTE(FieldEnergy, v))
}

// EnergyLT applies the LT predicate on the "energy" field.
func EnergyLT(v int) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldLT(FieldEnergy, v))
}

// EnergyLTE applies the LTE predicate on the "energy" field.
func EnergyLTE(v int) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldLTE(FieldEnergy, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldHasSuffix(FieldContent, v))
}

// ContentIsNil applies the IsNil predicate on the "content" field.
func ContentIsNil() predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldIsNull(FieldContent))
}

// ContentNotNil applies the NotNil predicate on the "content" field.
func ContentNotNil() predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldNotNull(FieldContent))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldContainsFold(FieldContent, v))
}

// EmotionsIsNil applies the IsNil predicate on the "emotions" field.
func EmotionsIsNil() predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldIsNull(FieldEmotions))
}

// EmotionsNotNil applies the NotNil predicate on the "emotions" field.
func EmotionsNotNil() predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.FieldNotNull(FieldEmotions))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DiaryEntry) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DiaryEntry) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DiaryEntry) predicate.DiaryEntry {
	return predicate.DiaryEntry(sql.NotPredicates(p))
}
