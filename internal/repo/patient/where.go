// Code generated by ent, DO NOT EDIT.

package patient

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/amparasaude/ampara_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldUpdatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldDeletedAt, v))
}

// ClinicID applies equality check predicate on the "clinic_id" field. It's identical to ClinicIDEQ.
func ClinicID(v uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldClinicID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldUserID, v))
}

// AssignedPsychologistID applies equality check predicate on the "assigned_psychologist_id" field. It's identical to AssignedPsychologistIDEQ.
func AssignedPsychologistID(v uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldAssignedPsychologistID, v))
}

// FileNumber applies equality check predicate on the "file_number" field. It's identical to FileNumberEQ.
func FileNumber(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldFileNumber, v))
}

// CpfEncrypted applies equality check predicate on the "cpf_encrypted" field. It's identical to CpfEncryptedEQ.
func CpfEncrypted(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldCpfEncrypted, v))
}

// BirthDate applies equality check predicate on the "birth_date" field. It's identical to BirthDateEQ.
func BirthDate(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldBirthDate, v))
}

// Timezone applies equality check predicate on the "timezone" field. It's identical to TimezoneEQ.
func Timezone(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldTimezone, v))
}

// SessionCount applies equality check predicate on the "session_count" field. It's identical to SessionCountEQ.
func SessionCount(v int) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldSessionCount, v))
}

// TotalCancellations applies equality check predicate on the "total_cancellations" field. It's identical to TotalCancellationsEQ.
func TotalCancellations(v int) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldTotalCancellations, v))
}

// LastCancelReason applies equality check predicate on the "last_cancel_reason" field. It's identical to LastCancelReasonEQ.
func LastCancelReason(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldLastCancelReason, v))
}

// HasDiscount applies equality check predicate on the "has_discount" field. It's identical to HasDiscountEQ.
func HasDiscount(v bool) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldHasDiscount, v))
}

// DiscountPercent applies equality check predicate on the "discount_percent" field. It's identical to DiscountPercentEQ.
func DiscountPercent(v int) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldDiscountPercent, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldNotes, v))
}

// ReferralSource applies equality check predicate on the "referral_source" field. It's identical to ReferralSourceEQ.
func ReferralSource(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldReferralSource, v))
}

// ChiefComplaint applies equality check predicate on the "chief_complaint" field. It's identical to ChiefComplaintEQ.
func ChiefComplaint(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldChiefComplaint, v))
}

// EmergencyContactName applies equality check predicate on the "emergency_contact_name" field. It's identical to EmergencyContactNameEQ.
func EmergencyContactName(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldEmergencyContactName, v))
}

// EmergencyContactPhone applies equality check predicate on the "emergency_contact_phone" field. It's identical to EmergencyContactPhoneEQ.
func EmergencyContactPhone(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldEmergencyContactPhone, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldUpdatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldDeletedAt))
}

// ClinicIDEQ applies the EQ predicate on the "clinic_id" field.
func ClinicIDEQ(v uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldClinicID, v))
}

// ClinicIDNEQ applies the NEQ predicate on the "clinic_id" field.
func ClinicIDNEQ(v uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldClinicID, v))
}

// ClinicIDIn applies the In predicate on the "clinic_id" field.
func ClinicIDIn(vs ...uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldClinicID, vs...))
}

// ClinicIDNotIn applies the NotIn predicate on the "clinic_id" field.
func ClinicIDNotIn(vs ...uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldClinicID, vs...))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldUserID, vs...))
}

// AssignedPsychologistIDEQ applies the EQ predicate on the "assigned_psychologist_id" field.
func AssignedPsychologistIDEQ(v uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldAssignedPsychologistID, v))
}

// AssignedPsychologistIDNEQ applies the NEQ predicate on the "assigned_psychologist_id" field.
func AssignedPsychologistIDNEQ(v uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldAssignedPsychologistID, v))
}

// AssignedPsychologistIDIn applies the In predicate on the "assigned_psychologist_id" field.
func AssignedPsychologistIDIn(vs ...uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldAssignedPsychologistID, vs...))
}

// AssignedPsychologistIDNotIn applies the NotIn predicate on the "assigned_psychologist_id" field.
func AssignedPsychologistIDNotIn(vs ...uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldAssignedPsychologistID, vs...))
}

// AssignedPsychologistIDIsNil applies the IsNil predicate on the "assigned_psychologist_id" field.
func AssignedPsychologistIDIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldAssignedPsychologistID))
}

// AssignedPsychologistIDNotNil applies the NotNil predicate on the "assigned_psychologist_id" field.
func AssignedPsychologistIDNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldAssignedPsychologistID))
}

// FileNumberEQ applies the EQ predicate on the "file_number" field.
func FileNumberEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldFileNumber, v))
}

// FileNumberNEQ applies the NEQ predicate on the "file_number" field.
func FileNumberNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldFileNumber, v))
}

// FileNumberIn applies the In predicate on the "file_number" field.
func FileNumberIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldFileNumber, vs...))
}

// FileNumberNotIn applies the NotIn predicate on the "file_number" field.
func FileNumberNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldFileNumber, vs...))
}

// FileNumberGT applies the GT predicate on the "file_number" field.
func FileNumberGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldFileNumber, v))
}

// FileNumberGTE applies the GTE predicate on the "file_number" field.
func FileNumberGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldFileNumber, v))
}

// FileNumberLT applies the LT predicate on the "file_number" field.
func FileNumberLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldFileNumber, v))
}

// FileNumberLTE applies the LTE predicate on the "file_number" field.
func FileNumberLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldFileNumber, v))
}

// FileNumberContains applies the Contains predicate on the "file_number" field.
func FileNumberContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldFileNumber, v))
}

// FileNumberHasPrefix applies the HasPrefix predicate on the "file_number" field.
func FileNumberHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldFileNumber, v))
}

// FileNumberHasSuffix applies the HasSuffix predicate on the "file_number" field.
func FileNumberHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldFileNumber, v))
}

// FileNumberIsNil applies the IsNil predicate on the "file_number" field.
func FileNumberIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldFileNumber))
}

// FileNumberNotNil applies the NotNil predicate on the "file_number" field.
func FileNumberNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldFileNumber))
}

// FileNumberEqualFold applies the EqualFold predicate on the "file_number" field.
func FileNumberEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldFileNumber, v))
}

// FileNumberContainsFold applies the ContainsFold predicate on the "file_number" field.
func FileNumberContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldFileNumber, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldStatus, vs...))
}

// CpfEncryptedEQ applies the EQ predicate on the "cpf_encrypted" field.
func CpfEncryptedEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldCpfEncrypted, v))
}

// CpfEncryptedNEQ applies the NEQ predicate on the "cpf_encrypted" field.
func CpfEncryptedNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldCpfEncrypted, v))
}

// CpfEncryptedIn applies the In predicate on the "cpf_encrypted" field.
func CpfEncryptedIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldCpfEncrypted, vs...))
}

// CpfEncryptedNotIn applies the NotIn predicate on the "cpf_encrypted" field.
func CpfEncryptedNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldCpfEncrypted, vs...))
}

// CpfEncryptedGT applies the GT predicate on the "cpf_encrypted" field.
func CpfEncryptedGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldCpfEncrypted, v))
}

// CpfEncryptedGTE applies the GTE predicate on the "cpf_encrypted" field.
func CpfEncryptedGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldCpfEncrypted, v))
}

// CpfEncryptedLT applies the LT predicate on the "cpf_encrypted" field.
func CpfEncryptedLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldCpfEncrypted, v))
}

// CpfEncryptedLTE applies the LTE predicate on the "cpf_encrypted" field.
func CpfEncryptedLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldCpfEncrypted, v))
}

// CpfEncryptedContains applies the Contains predicate on the "cpf_encrypted" field.
func CpfEncryptedContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldCpfEncrypted, v))
}

// CpfEncryptedHasPrefix applies the HasPrefix predicate on the "cpf_encrypted" field.
func CpfEncryptedHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldCpfEncrypted, v))
}

// CpfEncryptedHasSuffix applies the HasSuffix predicate on the "cpf_encrypted" field.
func CpfEncryptedHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldCpfEncrypted, v))
}

// CpfEncryptedIsNil applies the IsNil predicate on the "cpf_encrypted" field.
func CpfEncryptedIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldCpfEncrypted))
}

// CpfEncryptedNotNil applies the NotNil predicate on the "cpf_encrypted" field.
func CpfEncryptedNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldCpfEncrypted))
}

// CpfEncryptedEqualFold applies the EqualFold predicate on the "cpf_encrypted" field.
func CpfEncryptedEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldCpfEncrypted, v))
}

// CpfEncryptedContainsFold applies the ContainsFold predicate on the "cpf_encrypted" field.
func CpfEncryptedContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldCpfEncrypted, v))
}

// BirthDateEQ applies the EQ predicate on the "birth_date" field.
func BirthDateEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldBirthDate, v))
}

// BirthDateNEQ applies the NEQ predicate on the "birth_date" field.
func BirthDateNEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldBirthDate, v))
}

// BirthDateIn applies the In predicate on the "birth_date" field.
func BirthDateIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldBirthDate, vs...))
}

// BirthDateNotIn applies the NotIn predicate on the "birth_date" field.
func BirthDateNotIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldBirthDate, vs...))
}

// BirthDateGT applies the GT predicate on the "birth_date" field.
func BirthDateGT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldBirthDate, v))
}

// BirthDateGTE applies the GTE predicate on the "birth_date" field.
func BirthDateGTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldBirthDate, v))
}

// BirthDateLT applies the LT predicate on the "birth_date" field.
func BirthDateLT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldBirthDate, v))
}

// BirthDateLTE applies the LTE predicate on the "birth_date" field.
func BirthDateLTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldBirthDate, v))
}

// BirthDateIsNil applies the IsNil predicate on the "birth_date" field.
func BirthDateIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldBirthDate))
}

// BirthDateNotNil applies the NotNil predicate on the "birth_date" field.
func BirthDateNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldBirthDate))
}

// TimezoneEQ applies the EQ predicate on the "timezone" field.
func TimezoneEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldTimezone, v))
}

// TimezoneNEQ applies the NEQ predicate on the "timezone" field.
func TimezoneNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldTimezone, v))
}

// TimezoneIn applies the In predicate on the "timezone" field.
func TimezoneIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldTimezone, vs...))
}

// TimezoneNotIn applies the NotIn predicate on the "timezone" field.
func TimezoneNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldTimezone, vs...))
}

// TimezoneGT applies the GT predicate on the "timezone" field.
func TimezoneGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldTimezone, v))
}

// TimezoneGTE applies the GTE predicate on the "timezone" field.
func TimezoneGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldTimezone, v))
}

// TimezoneLT applies the LT predicate on the "timezone" field.
func TimezoneLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldTimezone, v))
}

// TimezoneLTE applies the LTE predicate on the "timezone" field.
func TimezoneLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldTimezone, v))
}

// TimezoneContains applies the Contains predicate on the "timezone" field.
func TimezoneContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldTimezone, v))
}

// TimezoneHasPrefix applies the HasPrefix predicate on the "timezone" field.
func TimezoneHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldTimezone, v))
}

// TimezoneHasSuffix applies the HasSuffix predicate on the "timezone" field.
func TimezoneHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldTimezone, v))
}

// TimezoneEqualFold applies the EqualFold predicate on the "timezone" field.
func TimezoneEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldTimezone, v))
}

// TimezoneContainsFold applies the ContainsFold predicate on the "timezone" field.
func TimezoneContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldTimezone, v))
}

// SessionCountEQ applies the EQ predicate on the "session_count" field.
func SessionCountEQ(v int) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldSessionCount, v))
}

// SessionCountNEQ applies the NEQ predicate on the "session_count" field.
func SessionCountNEQ(v int) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldSessionCount, v))
}

// SessionCountIn applies the In predicate on the "session_count" field.
func SessionCountIn(vs ...int) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldSessionCount, vs...))
}

// SessionCountNotIn applies the NotIn predicate on the "session_count" field.
func SessionCountNotIn(vs ...int) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldSessionCount, vs...))
}

// SessionCountGT applies the GT predicate on the "session_count" field.
func SessionCountGT(v int) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldSessionCount, v))
}

// SessionCountGTE applies the GTE predicate on the "session_count" field.
func SessionCountGTE(v int) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldSessionCount, v))
}

// SessionCountLT applies the LT predicate on the "session_count" field.
func SessionCountLT(v int) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldSessionCount, v))
}

// SessionCountLTE applies the LTE predicate on the "session_count" field.
func SessionCountLTE(v int) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldSessionCount, v))
}

// TotalCancellationsEQ applies the EQ predicate on the "total_cancellations" field.
func TotalCancellationsEQ(v int) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldTotalCancellations, v))
}

// TotalCancellationsNEQ applies the NEQ predicate on the "total_cancellations" field.
func TotalCancellationsNEQ(v int) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldTotalCancellations, v))
}

// TotalCancellationsIn applies the In predicate on the "total_cancellations" field.
func TotalCancellationsIn(vs ...int) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldTotalCancellations, vs...))
}

// TotalCancellationsNotIn applies the NotIn predicate on the "total_cancellations" field.
func TotalCancellationsNotIn(vs ...int) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldTotalCancellations, vs...))
}

// TotalCancellationsGT applies the GT predicate on the "total_cancellations" field.
func TotalCancellationsGT(v int) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldTotalCancellations, v))
}

// TotalCancellationsGTE applies the GTE predicate on the "total_cancellations" field.
func TotalCancellationsGTE(v int) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldTotalCancellations, v))
}

// TotalCancellationsLT applies the LT predicate on the "total_cancellations" field.
func TotalCancellationsLT(v int) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldTotalCancellations, v))
}

// TotalCancellationsLTE applies the LTE predicate on the "total_cancellations" field.
func TotalCancellationsLTE(v int) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldTotalCancellations, v))
}

// LastCancelReasonEQ applies the EQ predicate on the "last_cancel_reason" field.
func LastCancelReasonEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldLastCancelReason, v))
}

// LastCancelReasonNEQ applies the NEQ predicate on the "last_cancel_reason" field.
func LastCancelReasonNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldLastCancelReason, v))
}

// LastCancelReasonIn applies the In predicate on the "last_cancel_reason" field.
func LastCancelReasonIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldLastCancelReason, vs...))
}

// LastCancelReasonNotIn applies the NotIn predicate on the "last_cancel_reason" field.
func LastCancelReasonNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldLastCancelReason, vs...))
}

// LastCancelReasonGT applies the GT predicate on the "last_cancel_reason" field.
func LastCancelReasonGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldLastCancelReason, v))
}

// LastCancelReasonGTE applies the GTE predicate on the "last_cancel_reason" field.
func LastCancelReasonGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldLastCancelReason, v))
}

// LastCancelReasonLT applies the LT predicate on the "last_cancel_reason" field.
func LastCancelReasonLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldLastCancelReason, v))
}

// LastCancelReasonLTE applies the LTE predicate on the "last_cancel_reason" field.
func LastCancelReasonLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldLastCancelReason, v))
}

// LastCancelReasonContains applies the Contains predicate on the "last_cancel_reason" field.
func LastCancelReasonContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldLastCancelReason, v))
}

// LastCancelReasonHasPrefix applies the HasPrefix predicate on the "last_cancel_reason" field.
func LastCancelReasonHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldLastCancelReason, v))
}

// LastCancelReasonHasSuffix applies the HasSuffix predicate on the "last_cancel_reason" field.
func LastCancelReasonHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldLastCancelReason, v))
}

// LastCancelReasonIsNil applies the IsNil predicate on the "last_cancel_reason" field.
func LastCancelReasonIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldLastCancelReason))
}

// LastCancelReasonNotNil applies the NotNil predicate on the "last_cancel_reason" field.
func LastCancelReasonNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldLastCancelReason))
}

// LastCancelReasonEqualFold applies the EqualFold predicate on the "last_cancel_reason" field.
func LastCancelReasonEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldLastCancelReason, v))
}

// LastCancelReasonContainsFold applies the ContainsFold predicate on the "last_cancel_reason" field.
func LastCancelReasonContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldLastCancelReason, v))
}

// HasDiscountEQ applies the EQ predicate on the "has_discount" field.
func HasDiscountEQ(v bool) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldHasDiscount, v))
}

// HasDiscountNEQ applies the NEQ predicate on the "has_discount" field.
func HasDiscountNEQ(v bool) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldHasDiscount, v))
}

// DiscountPercentEQ applies the EQ predicate on the "discount_percent" field.
func DiscountPercentEQ(v int) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldDiscountPercent, v))
}

// DiscountPercentNEQ applies the NEQ predicate on the "discount_percent" field.
func DiscountPercentNEQ(v int) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldDiscountPercent, v))
}

// DiscountPercentIn applies the In predicate on the "discount_percent" field.
func DiscountPercentIn(vs ...int) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldDiscountPercent, vs...))
}

// DiscountPercentNotIn applies the NotIn predicate on the "discount_percent" field.
func DiscountPercentNotIn(vs ...int) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldDiscountPercent, vs...))
}

// DiscountPercentGT applies the GT predicate on the "discount_percent" field.
func DiscountPercentGT(v int) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldDiscountPercent, v))
}

// DiscountPercentGTE applies the GTE predicate on the "discount_percent" field.
func DiscountPercentGTE(v int) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldDiscountPercent, v))
}

// DiscountPercentLT applies the LT predicate on the "discount_percent" field.
func DiscountPercentLT(v int) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldDiscountPercent, v))
}

// DiscountPercentLTE applies the LTE predicate on the "discount_percent" field.
func DiscountPercentLTE(v int) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldDiscountPercent, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldNotes, v))
}

// ReferralSourceEQ applies the EQ predicate on the "referral_source" field.
func ReferralSourceEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldReferralSource, v))
}

// ReferralSourceNEQ applies the NEQ predicate on the "referral_source" field.
func ReferralSourceNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldReferralSource, v))
}

// ReferralSourceIn applies the In predicate on the "referral_source" field.
func ReferralSourceIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldReferralSource, vs...))
}

// ReferralSourceNotIn applies the NotIn predicate on the "referral_source" field.
func ReferralSourceNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldReferralSource, vs...))
}

// ReferralSourceGT applies the GT predicate on the "referral_source" field.
func ReferralSourceGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldReferralSource, v))
}

// ReferralSourceGTE applies the GTE predicate on the "referral_source" field.
func ReferralSourceGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldReferralSource, v))
}

// ReferralSourceLT applies the LT predicate on the "referral_source" field.
func ReferralSourceLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldReferralSource, v))
}

// ReferralSourceLTE applies the LTE predicate on the "referral_source" field.
func ReferralSourceLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldReferralSource, v))
}

// ReferralSourceContains applies the Contains predicate on the "referral_source" field.
func ReferralSourceContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldReferralSource, v))
}

// ReferralSourceHasPrefix applies the HasPrefix predicate on the "referral_source" field.
func ReferralSourceHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldReferralSource, v))
}

// ReferralSourceHasSuffix applies the HasSuffix predicate on the "referral_source" field.
func ReferralSourceHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldReferralSource, v))
}

// ReferralSourceIsNil applies the IsNil predicate on the "referral_source" field.
func ReferralSourceIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldReferralSource))
}

// ReferralSourceNotNil applies the NotNil predicate on the "referral_source" field.
func ReferralSourceNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldReferralSource))
}

// ReferralSourceEqualFold applies the EqualFold predicate on the "referral_source" field.
func ReferralSourceEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldReferralSource, v))
}

// ReferralSourceContainsFold applies the ContainsFold predicate on the "referral_source" field.
func ReferralSourceContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldReferralSource, v))
}

// ChiefComplaintEQ applies the EQ predicate on the "chief_complaint" field.
func ChiefComplaintEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldChiefComplaint, v))
}

// ChiefComplaintNEQ applies the NEQ predicate on the "chief_complaint" field.
func ChiefComplaintNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldChiefComplaint, v))
}

// ChiefComplaintIn applies the In predicate on the "chief_complaint" field.
func ChiefComplaintIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldChiefComplaint, vs...))
}

// ChiefComplaintNotIn applies the NotIn predicate on the "chief_complaint" field.
func ChiefComplaintNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldChiefComplaint, vs...))
}

// ChiefComplaintGT applies the GT predicate on the "chief_complaint" field.
func ChiefComplaintGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldChiefComplaint, v))
}

// ChiefComplaintGTE applies the GTE predicate on the "chief_complaint" field.
func ChiefComplaintGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldChiefComplaint, v))
}

// ChiefComplaintLT applies the LT predicate on the "chief_complaint" field.
func ChiefComplaintLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldChiefComplaint, v))
}

// ChiefComplaintLTE applies the LTE predicate on the "chief_complaint" field.
func ChiefComplaintLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldChiefComplaint, v))
}

// ChiefComplaintContains applies the Contains predicate on the "chief_complaint" field.
func ChiefComplaintContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldChiefComplaint, v))
}

// ChiefComplaintHasPrefix applies the HasPrefix predicate on the "chief_complaint" field.
func ChiefComplaintHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldChiefComplaint, v))
}

// ChiefComplaintHasSuffix applies the HasSuffix predicate on the "chief_complaint" field.
func ChiefComplaintHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldChiefComplaint, v))
}

// ChiefComplaintIsNil applies the IsNil predicate on the "chief_complaint" field.
func ChiefComplaintIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldChiefComplaint))
}

// ChiefComplaintNotNil applies the NotNil predicate on the "chief_complaint" field.
func ChiefComplaintNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldChiefComplaint))
}

// ChiefComplaintEqualFold applies the EqualFold predicate on the "chief_complaint" field.
func ChiefComplaintEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldChiefComplaint, v))
}

// ChiefComplaintContainsFold applies the ContainsFold predicate on the "chief_complaint" field.
func ChiefComplaintContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldChiefComplaint, v))
}

// EmergencyContactNameEQ applies the EQ predicate on the "emergency_contact_name" field.
func EmergencyContactNameEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldEmergencyContactName, v))
}

// EmergencyContactNameNEQ applies the NEQ predicate on the "emergency_contact_name" field.
func EmergencyContactNameNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldEmergencyContactName, v))
}

// EmergencyContactNameIn applies the In predicate on the "emergency_contact_name" field.
func EmergencyContactNameIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldEmergencyContactName, vs...))
}

// EmergencyContactNameNotIn applies the NotIn predicate on the "emergency_contact_name" field.
func EmergencyContactNameNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldEmergencyContactName, vs...))
}

// EmergencyContactNameGT applies the GT predicate on the "emergency_contact_name" field.
func EmergencyContactNameGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldEmergencyContactName, v))
}

// EmergencyContactNameGTE applies the GTE predicate on the "emergency_contact_name" field.
func EmergencyContactNameGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldEmergencyContactName, v))
}

// EmergencyContactNameLT applies the LT predicate on the "emergency_contact_name" field.
func EmergencyContactNameLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldEmergencyContactName, v))
}

// EmergencyContactNameLTE applies the LTE predicate on the "emergency_contact_name" field.
func EmergencyContactNameLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldEmergencyContactName, v))
}

// EmergencyContactNameContains applies the Contains predicate on the "emergency_contact_name" field.
func EmergencyContactNameContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldEmergencyContactName, v))
}

// EmergencyContactNameHasPrefix applies the HasPrefix predicate on the "emergency_contact_name" field.
func EmergencyContactNameHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldEmergencyContactName, v))
}

// EmergencyContactNameHasSuffix applies the HasSuffix predicate on the "emergency_contact_name" field.
func EmergencyContactNameHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldEmergencyContactName, v))
}

// EmergencyContactNameIsNil applies the IsNil predicate on the "emergency_contact_name" field.
func EmergencyContactNameIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldEmergencyContactName))
}

// EmergencyContactNameNotNil applies the NotNil predicate on the "emergency_contact_name" field.
func EmergencyContactNameNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldEmergencyContactName))
}

// EmergencyContactNameEqualFold applies the EqualFold predicate on the "emergency_contact_name" field.
func EmergencyContactNameEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldEmergencyContactName, v))
}

// EmergencyContactNameContainsFold applies the ContainsFold predicate on the "emergency_contact_name" field.
func EmergencyContactNameContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldEmergencyContactName, v))
}

// EmergencyContactPhoneEQ applies the EQ predicate on the "emergency_contact_phone" field.
func EmergencyContactPhoneEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldEmergencyContactPhone, v))
}

// EmergencyContactPhoneNEQ applies the NEQ predicate on the "emergency_contact_phone" field.
func EmergencyContactPhoneNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldEmergencyContactPhone, v))
}

// EmergencyContactPhoneIn applies the In predicate on the "emergency_contact_phone" field.
func EmergencyContactPhoneIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldEmergencyContactPhone, vs...))
}

// EmergencyContactPhoneNotIn applies the NotIn predicate on the "emergency_contact_phone" field.
func EmergencyContactPhoneNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldEmergencyContactPhone, vs...))
}

// EmergencyContactPhoneGT applies the GT predicate on the "emergency_contact_phone" field.
func EmergencyContactPhoneGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldEmergencyContactPhone, v))
}

// EmergencyContactPhoneGTE applies the GTE predicate on the "emergency_contact_phone" field.
func EmergencyContactPhoneGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldEmergencyContactPhone, v))
}

// EmergencyContactPhoneLT applies the LT predicate on the "emergency_contact_phone" field.
func EmergencyContactPhoneLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldEmergencyContactPhone, v))
}

// EmergencyContactPhoneLTE applies the LTE predicate on the "emergency_contact_phone" field.
func EmergencyContactPhoneLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldEmergencyContactPhone, v))
}

// EmergencyContactPhoneContains applies the Contains predicate on the "emergency_contact_phone" field.
func EmergencyContactPhoneContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldEmergencyContactPhone, v))
}

// EmergencyContactPhoneHasPrefix applies the HasPrefix predicate on the "emergency_contact_phone" field.
func EmergencyContactPhoneHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldEmergencyContactPhone, v))
}

// EmergencyContactPhoneHasSuffix applies the HasSuffix predicate on the "emergency_contact_phone" field.
func EmergencyContactPhoneHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldEmergencyContactPhone, v))
}

// EmergencyContactPhoneIsNil applies the IsNil predicate on the "emergency_contact_phone" field.
func EmergencyContactPhoneIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldEmergencyContactPhone))
}

// EmergencyContactPhoneNotNil applies the NotNil predicate on the "emergency_contact_phone" field.
func EmergencyContactPhoneNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldEmergencyContactPhone))
}

// EmergencyContactPhoneEqualFold applies the EqualFold predicate on the "emergency_contact_phone" field.
func EmergencyContactPhoneEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldEmergencyContactPhone, v))
}

// EmergencyContactPhoneContainsFold applies the ContainsFold predicate on the "emergency_contact_phone" field.
func EmergencyContactPhoneContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldEmergencyContactPhone, v))
}

// HasClinic applies the HasEdge predicate on the "clinic" edge.
func HasClinic() predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ClinicTable, ClinicColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasClinicWith applies the HasEdge predicate on the "clinic" edge with a given conditions (other predicates).
func HasClinicWith(preds ...predicate.Clinic) predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := newClinicStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAssignedPsychologist applies the HasEdge predicate on the "assigned_psychologist" edge.
func HasAssignedPsychologist() predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, AssignedPsychologistTable, AssignedPsychologistColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAssignedPsychologistWith applies the HasEdge predicate on the "assigned_psychologist" edge with a given conditions (other predicates).
func HasAssignedPsychologistWith(preds ...predicate.ClinicMember) predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := newAssignedPsychologistStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Patient) predicate.Patient {
	return predicate.Patient(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Patient) predicate.Patient {
	return predicate.Patient(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Patient) predicate.Patient {
	return predicate.Patient(sql.NotPredicates(p))
}
