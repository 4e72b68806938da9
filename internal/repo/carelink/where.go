// Code generated by ent, DO NOT EDIT.

package carelink

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/amparasaude/ampara_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.CareLink {
	return predicate.CareLink(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.CareLink {
	return predicate.CareLink(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.CareLink {
	return predicate.CareLink(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.CareLink {
	return predicate.CareLink(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.CareLink {
	return predicate.CareLink(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.CareLink {
	return predicate.CareLink(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.CareLink {
	return predicate.CareLink(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.CareLink {
	return predicate.CareLink(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.CareLink {
	return predicate.CareLink(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CareLink {
	return predicate.CareLink(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CareLink {
	return predicate.CareLink(sql.FieldEQ(FieldUpdatedAt, v))
}

// ClinicID applies equality check predicate on the "clinic_id" field. It's identical to ClinicIDEQ.
func ClinicID(v uuid.UUID) predicate.CareLink {
	return predicate.CareLink(sql.FieldEQ(FieldClinicID, v))
}

// PsychologistID applies equality check predicate on the "psychologist_id" field. It's identical to PsychologistIDEQ.
func PsychologistID(v uuid.UUID) predicate.CareLink {
	return predicate.CareLink(sql.FieldEQ(FieldPsychologistID, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.CareLink {
	return predicate.CareLink(sql.FieldEQ(FieldPatientID, v))
}

// InviteCode applies equality check predicate on the "invite_code" field. It's identical to InviteCodeEQ.
func InviteCode(v string) predicate.CareLink {
	return predicate.CareLink(sql.FieldEQ(FieldInviteCode, v))
}

// ShareDiary applies equality check predicate on the "share_diary" field. It's identical to ShareDiaryEQ.
func ShareDiary(v bool) predicate.CareLink {
	return predicate.CareLink(sql.FieldEQ(FieldShareDiary, v))
}

// ShareMood applies equality check predicate on the "share_mood" field. It's identical to ShareMoodEQ.
func ShareMood(v bool) predicate.CareLink {
	return predicate.CareLink(sql.FieldEQ(FieldShareMood, v))
}

// InvitedAt applies equality check predicate on the "invited_at" field. It's identical to InvitedAtEQ.
func InvitedAt(v time.Time) predicate.CareLink {
	return predicate.CareLink(sql.FieldEQ(FieldInvitedAt, v))
}

// ConsentedAt applies equality check predicate on the "consented_at" field. It's identical to ConsentedAtEQ.
func ConsentedAt(v time.Time) predicate.CareLink {
	return predicate.CareLink(sql.FieldEQ(FieldConsentedAt, v))
}

// RevokedAt applies equality check predicate on the "revoked_at" field. It's identical to RevokedAtEQ.
func RevokedAt(v time.Time) predicate.CareLink {
	return predicate.CareLink(sql.FieldEQ(FieldRevokedAt, v))
}

// RevokeReason applies equality check predicate on the "revoke_reason" field. It's identical to RevokeReasonEQ.
func RevokeReason(v string) predicate.CareLink {
	return predicate.CareLink(sql.FieldEQ(FieldRevokeReason, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CareLink {
	return predicate.CareLink(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CareLink {
	return predicate.CareLink(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CareLink {
	return predicate.CareLink(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CareLink {
	return predicate.CareLink(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CareLink {
	return predicate.CareLink(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CareLink {
	return predicate.CareLink(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CareLink {
	return predicate.CareLink(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CareLink {
	return predicate.CareLink(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CareLink {
	return predicate.CareLink(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CareLink {
	return predicate.CareLink(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CareLink {
	return predicate.CareLink(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CareLink {
	return predicate.CareLink(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CareLink {
	return predicate.CareLink(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CareLink {
	return predicate.CareLink(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CareLink {
	return predicate.CareLink(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CareLink {
	return predicate.CareLink(sql.FieldLTE(FieldUpdatedAt, v))
}

// ClinicIDEQ applies the EQ predicate on the "clinic_id" field.
func ClinicIDEQ(v uuid.UUID) predicate.CareLink {
	return predicate.CareLink(sql.FieldEQ(FieldClinicID, v))
}

// ClinicIDNEQ applies the NEQ predicate on the "clinic_id" field.
func ClinicIDNEQ(v uuid.UUID) predicate.CareLink {
	return predicate.CareLink(sql.FieldNEQ(FieldClinicID, v))
}

// ClinicIDIn applies the In predicate on the "clinic_id" field.
func ClinicIDIn(vs ...uuid.UUID) predicate.CareLink {
	return predicate.CareLink(sql.FieldIn(FieldClinicID, vs...))
}

// ClinicIDNotIn applies the NotIn predicate on the "clinic_id" field.
func ClinicIDNotIn(vs ...uuid.UUID) predicate.CareLink {
	return predicate.CareLink(sql.FieldNotIn(FieldClinicID, vs...))
}

// ClinicIDGT applies the GT predicate on the "clinic_id" field.
func ClinicIDGT(v uuid.UUID) predicate.CareLink {
	return predicate.CareLink(sql.FieldGT(FieldClinicID, v))
}

// ClinicIDGTE applies the GTE predicate on the "clinic_id" field.
func ClinicIDGTE(v uuid.UUID) predicate.CareLink {
	return predicate.CareLink(sql.FieldGTE(FieldClinicID, v))
}

// ClinicIDLT applies the LT predicate on the "clinic_id" field.
func ClinicIDLT(v uuid.UUID) predicate.CareLink {
	return predicate.CareLink(sql.FieldLT(FieldClinicID, v))
}

// ClinicIDLTE applies the LTE predicate on the "clinic_id" field.
func ClinicIDLTE(v uuid.UUID) predicate.CareLink {
	return predicate.CareLink(sql.FieldLTE(FieldClinicID, v))
}

// PsychologistIDEQ applies the EQ predicate on the "psychologist_id" field.
func PsychologistIDEQ(v uuid.UUID) predicate.CareLink {
	return predicate.CareLink(sql.FieldEQ(FieldPsychologistID, v))
}

// PsychologistIDNEQ applies the NEQ predicate on the "psychologist_id" field.
func PsychologistIDNEQ(v uuid.UUID) predicate.CareLink {
	return predicate.CareLink(sql.FieldNEQ(FieldPsychologistID, v))
}

// PsychologistIDIn applies the In predicate on the "psychologist_id" field.
func PsychologistIDIn(vs ...uuid.UUID) predicate.CareLink {
	return predicate.CareLink(sql.FieldIn(FieldPsychologistID, vs...))
}

// PsychologistIDNotIn applies the NotIn predicate on the "psychologist_id" field.
func PsychologistIDNotIn(vs ...uuid.UUID) predicate.CareLink {
	return predicate.CareLink(sql.FieldNotIn(FieldPsychologistID, vs...))
}

// PsychologistIDGT applies the GT predicate on the "psychologist_id" field.
func PsychologistIDGT(v uuid.UUID) predicate.CareLink {
	return predicate.CareLink(sql.FieldGT(FieldPsychologistID, v))
}

// PsychologistIDGTE applies the GTE predicate on the "psychologist_id" field.
func PsychologistIDGTE(v uuid.UUID) predicate.CareLink {
	return predicate.CareLink(sql.FieldGTE(FieldPsychologistID, v))
}

// PsychologistIDLT applies the LT predicate on the "psychologist_id" field.
func PsychologistIDLT(v uuid.UUID) predicate.CareLink {
	return predicate.CareLink(sql.FieldLT(FieldPsychologistID, v))
}

// PsychologistIDLTE applies the LTE predicate on the "psychologist_id" field.
func PsychologistIDLTE(v uuid.UUID) predicate.CareLink {
	return predicate.CareLink(sql.FieldLTE(FieldPsychologistID, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.CareLink {
	return predicate.CareLink(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.CareLink {
	return predicate.CareLink(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.CareLink {
	return predicate.CareLink(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.CareLink {
	return predicate.CareLink(sql.FieldNotIn(FieldPatientID, vs...))
}

// PatientIDGT applies the GT predicate on the "patient_id" field.
func PatientIDGT(v uuid.UUID) predicate.CareLink {
	return predicate.CareLink(sql.FieldGT(FieldPatientID, v))
}

// PatientIDGTE applies the GTE predicate on the "patient_id" field.
func PatientIDGTE(v uuid.UUID) predicate.CareLink {
	return predicate.CareLink(sql.FieldGTE(FieldPatientID, v))
}

// PatientIDLT applies the LT predicate on the "patient_id" field.
func PatientIDLT(v uuid.UUID) predicate.CareLink {
	return predicate.CareLink(sql.FieldLT(FieldPatientID, v))
}

// PatientIDLTE applies the LTE predicate on the "patient_id" field.
func PatientIDLTE(v uuid.UUID) predicate.CareLink {
	return predicate.CareLink(sql.FieldLTE(FieldPatientID, v))
}

// InviteCodeEQ applies the EQ predicate on the "invite_code" field.
func InviteCodeEQ(v string) predicate.CareLink {
	return predicate.CareLink(sql.FieldEQ(FieldInviteCode, v))
}

// InviteCodeNEQ applies the NEQ predicate on the "invite_code" field.
func InviteCodeNEQ(v string) predicate.CareLink {
	return predicate.CareLink(sql.FieldNEQ(FieldInviteCode, v))
}

// InviteCodeIn applies the In predicate on the "invite_code" field.
func InviteCodeIn(vs ...string) predicate.CareLink {
	return predicate.CareLink(sql.FieldIn(FieldInviteCode, vs...))
}

// InviteCodeNotIn applies the NotIn predicate on the "invite_code" field.
func InviteCodeNotIn(vs ...string) predicate.CareLink {
	return predicate.CareLink(sql.FieldNotIn(FieldInviteCode, vs...))
}

// InviteCodeGT applies the GT predicate on the "invite_code" field.
func InviteCodeGT(v string) predicate.CareLink {
	return predicate.CareLink(sql.FieldGT(FieldInviteCode, v))
}

// InviteCodeGTE applies the GTE predicate on the "invite_code" field.
func InviteCodeGTE(v string) predicate.CareLink {
	return predicate.CareLink(sql.FieldGTE(FieldInviteCode, v))
}

// InviteCodeLT applies the LT predicate on the "invite_code" field.
func InviteCodeLT(v string) predicate.CareLink {
	return predicate.CareLink(sql.FieldLT(FieldInviteCode, v))
}

// InviteCodeLTE applies the LTE predicate on the "invite_code" field.
func InviteCodeLTE(v string) predicate.CareLink {
	return predicate.CareLink(sql.FieldLTE(FieldInviteCode, v))
}

// InviteCodeContains applies the Contains predicate on the "invite_code" field.
func InviteCodeContains(v string) predicate.CareLink {
	return predicate.CareLink(sql.FieldContains(FieldInviteCode, v))
}

// InviteCodeHasPrefix applies the HasPrefix predicate on the "invite_code" field.
func InviteCodeHasPrefix(v string) predicate.CareLink {
	return predicate.CareLink(sql.FieldHasPrefix(FieldInviteCode, v))
}

// InviteCodeHasSuffix applies the HasSuffix predicate on the "invite_code" field.
func InviteCodeHasSuffix(v string) predicate.CareLink {
	return predicate.CareLink(sql.FieldHasSuffix(FieldInviteCode, v))
}

// InviteCodeEqualFold applies the EqualFold predicate on the "invite_code" field.
func InviteCodeEqualFold(v string) predicate.CareLink {
	return predicate.CareLink(sql.FieldEqualFold(FieldInviteCode, v))
}

// InviteCodeContainsFold applies the ContainsFold predicate on the "invite_code" field.
func InviteCodeContainsFold(v string) predicate.CareLink {
	return predicate.CareLink(sql.FieldContainsFold(FieldInviteCode, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.CareLink {
	return predicate.CareLink(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.CareLink {
	return predicate.CareLink(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.CareLink {
	return predicate.CareLink(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.CareLink {
	return predicate.CareLink(sql.FieldNotIn(FieldStatus, vs...))
}

// ShareDiaryEQ applies the EQ predicate on the "share_diary" field.
func ShareDiaryEQ(v bool) predicate.CareLink {
	return predicate.CareLink(sql.FieldEQ(FieldShareDiary, v))
}

// ShareDiaryNEQ applies the NEQ predicate on the "share_diary" field.
func ShareDiaryNEQ(v bool) predicate.CareLink {
	return predicate.CareLink(sql.FieldNEQ(FieldShareDiary, v))
}

// ShareMoodEQ applies the EQ predicate on the "share_mood" field.
func ShareMoodEQ(v bool) predicate.CareLink {
	return predicate.CareLink(sql.FieldEQ(FieldShareMood, v))
}

// ShareMoodNEQ applies the NEQ predicate on the "share_mood" field.
func ShareMoodNEQ(v bool) predicate.CareLink {
	return predicate.CareLink(sql.FieldNEQ(FieldShareMood, v))
}

// InvitedAtEQ applies the EQ predicate on the "invited_at" field.
func InvitedAtEQ(v time.Time) predicate.CareLink {
	return predicate.CareLink(sql.FieldEQ(FieldInvitedAt, v))
}

// InvitedAtNEQ applies the NEQ predicate on the "invited_at" field.
func InvitedAtNEQ(v time.Time) predicate.CareLink {
	return predicate.CareLink(sql.FieldNEQ(FieldInvitedAt, v))
}

// InvitedAtIn applies the In predicate on the "invited_at" field.
func InvitedAtIn(vs ...time.Time) predicate.CareLink {
	return predicate.CareLink(sql.FieldIn(FieldInvitedAt, vs...))
}

// InvitedAtNotIn applies the NotIn predicate on the "invited_at" field.
func InvitedAtNotIn(vs ...time.Time) predicate.CareLink {
	return predicate.CareLink(sql.FieldNotIn(FieldInvitedAt, vs...))
}

// InvitedAtGT applies the GT predicate on the "invited_at" field.
func InvitedAtGT(v time.Time) predicate.CareLink {
	return predicate.CareLink(sql.FieldGT(FieldInvitedAt, v))
}

// InvitedAtGTE applies the GTE predicate on the "invited_at" field.
func InvitedAtGTE(v time.Time) predicate.CareLink {
	return predicate.CareLink(sql.FieldGTE(FieldInvitedAt, v))
}

// InvitedAtLT applies the LT predicate on the "invited_at" field.
func InvitedAtLT(v time.Time) predicate.CareLink {
	return predicate.CareLink(sql.FieldLT(FieldInvitedAt, v))
}

// InvitedAtLTE applies the LTE predicate on the "invited_at" field.
func InvitedAtLTE(v time.Time) predicate.CareLink {
	return predicate.CareLink(sql.FieldLTE(FieldInvitedAt, v))
}

// InvitedAtIsNil applies the IsNil predicate on the "invited_at" field.
func InvitedAtIsNil() predicate.CareLink {
	return predicate.CareLink(sql.FieldIsNull(FieldInvitedAt))
}

// InvitedAtNotNil applies the NotNil predicate on the "invited_at" field.
func InvitedAtNotNil() predicate.CareLink {
	return predicate.CareLink(sql.FieldNotNull(FieldInvitedAt))
}

// ConsentedAtEQ applies the EQ predicate on the "consented_at" field.
func ConsentedAtEQ(v time.Time) predicate.CareLink {
	return predicate.CareLink(sql.FieldEQ(FieldConsentedAt, v))
}

// ConsentedAtNEQ applies the NEQ predicate on the "consented_at" field.
func ConsentedAtNEQ(v time.Time) predicate.CareLink {
	return predicate.CareLink(sql.FieldNEQ(FieldConsentedAt, v))
}

// ConsentedAtIn applies the In predicate on the "consented_at" field.
func ConsentedAtIn(vs ...time.Time) predicate.CareLink {
	return predicate.CareLink(sql.FieldIn(FieldConsentedAt, vs...))
}

// ConsentedAtNotIn applies the NotIn predicate on the "consented_at" field.
func ConsentedAtNotIn(vs ...time.Time) predicate.CareLink {
	return predicate.CareLink(sql.FieldNotIn(FieldConsentedAt, vs...))
}

// ConsentedAtGT applies the GT predicate on the "consented_at" field.
func ConsentedAtGT(v time.Time) predicate.CareLink {
	return predicate.CareLink(sql.FieldGT(FieldConsentedAt, v))
}

// ConsentedAtGTE applies the GTE predicate on the "consented_at" field.
func ConsentedAtGTE(v time.Time) predicate.CareLink {
	return predicate.CareLink(sql.FieldGTE(FieldConsentedAt, v))
}

// ConsentedAtLT applies the LT predicate on the "consented_at" field.
func ConsentedAtLT(v time.Time) predicate.CareLink {
	return predicate.CareLink(sql.FieldLT(FieldConsentedAt, v))
}

// ConsentedAtLTE applies the LTE predicate on the "consented_at" field.
func ConsentedAtLTE(v time.Time) predicate.CareLink {
	return predicate.CareLink(sql.FieldLTE(FieldConsentedAt, v))
}

// ConsentedAtIsNil applies the IsNil predicate on the "consented_at" field.
func ConsentedAtIsNil() predicate.CareLink {
	return predicate.CareLink(sql.FieldIsNull(FieldConsentedAt))
}

// ConsentedAtNotNil applies the NotNil predicate on the "consented_at" field.
func ConsentedAtNotNil() predicate.CareLink {
	return predicate.CareLink(sql.FieldNotNull(FieldConsentedAt))
}

// RevokedAtEQ applies the EQ predicate on the "revoked_at" field.
func RevokedAtEQ(v time.Time) predicate.CareLink {
	return predicate.CareLink(sql.FieldEQ(FieldRevokedAt, v))
}

// RevokedAtNEQ applies the NEQ predicate on the "revoked_at" field.
func RevokedAtNEQ(v time.Time) predicate.CareLink {
	return predicate.CareLink(sql.FieldNEQ(FieldRevokedAt, v))
}

// RevokedAtIn applies the In predicate on the "revoked_at" field.
func RevokedAtIn(vs ...time.Time) predicate.CareLink {
	return predicate.CareLink(sql.FieldIn(FieldRevokedAt, vs...))
}

// RevokedAtNotIn applies the NotIn predicate on the "revoked_at" field.
func RevokedAtNotIn(vs ...time.Time) predicate.CareLink {
	return predicate.CareLink(sql.FieldNotIn(FieldRevokedAt, vs...))
}

// RevokedAtGT applies the GT predicate on the "revoked_at" field.
func RevokedAtGT(v time.Time) predicate.CareLink {
	return predicate.CareLink(sql.FieldGT(FieldRevokedAt, v))
}

// RevokedAtGTE applies the GTE predicate on the "revoked_at" field.
func RevokedAtGTE(v time.Time) predicate.CareLink {
	return predicate.CareLink(sql.FieldGTE(FieldRevokedAt, v))
}

// RevokedAtLT applies the LT predicate on the "revoked_at" field.
func RevokedAtLT(v time.Time) predicate.CareLink {
	return predicate.CareLink(sql.FieldLT(FieldRevokedAt, v))
}

// RevokedAtLTE applies the LTE predicate on the "revoked_at" field.
func RevokedAtLTE(v time.Time) predicate.CareLink {
	return predicate.CareLink(sql.FieldLTE(FieldRevokedAt, v))
}

// RevokedAtIsNil applies the IsNil predicate on the "revoked_at" field.
func RevokedAtIsNil() predicate.CareLink {
	return predicate.CareLink(sql.FieldIsNull(FieldRevokedAt))
}

// RevokedAtNotNil applies the NotNil predicate on the "revoked_at" field.
func RevokedAtNotNil() predicate.CareLink {
	return predicate.CareLink(sql.FieldNotNull(FieldRevokedAt))
}

// RevokeReasonEQ applies the EQ predicate on the "revoke_reason" field.
func RevokeReasonEQ(v string) predicate.CareLink {
	return predicate.CareLink(sql.FieldEQ(FieldRevokeReason, v))
}

// RevokeReasonNEQ applies the NEQ predicate on the "revoke_reason" field.
func RevokeReasonNEQ(v string) predicate.CareLink {
	return predicate.CareLink(sql.FieldNEQ(FieldRevokeReason, v))
}

// RevokeReasonIn applies the In predicate on the "revoke_reason" field.
func RevokeReasonIn(vs ...string) predicate.CareLink {
	return predicate.CareLink(sql.FieldIn(FieldRevokeReason, vs...))
}

// RevokeReasonNotIn applies the NotIn predicate on the "revoke_reason" field.
func RevokeReasonNotIn(vs ...string) predicate.CareLink {
	return predicate.CareLink(sql.FieldNotIn(FieldRevokeReason, vs...))
}

// RevokeReasonGT applies the GT predicate on the "revoke_reason" field.
func RevokeReasonGT(v string) predicate.CareLink {
	return predicate.CareLink(sql.FieldGT(FieldRevokeReason, v))
}

// RevokeReasonGTE applies the GTE predicate on the "revoke_reason" field.
func RevokeReasonGTE(v string) predicate.CareLink {
	return predicate.CareLink(sql.FieldGTE(FieldRevokeReason, v))
}

// RevokeReasonLT applies the LT predicate on the "revoke_reason" field.
func RevokeReasonLT(v string) predicate.CareLink {
	return predicate.CareLink(sql.FieldLT(FieldRevokeReason, v))
}

// RevokeReasonLTE applies the LTE predicate on the "revoke_reason" field.
func RevokeReasonLTE(v string) predicate.CareLink {
	return predicate.CareLink(sql.FieldLTE(FieldRevokeReason, v))
}

// RevokeReasonContains applies the Contains predicate on the "revoke_reason" field.
func RevokeReasonContains(v string) predicate.CareLink {
	return predicate.CareLink(sql.FieldContains(FieldRevokeReason, v))
}

// RevokeReasonHasPrefix applies the HasPrefix predicate on the "revoke_reason" field.
func RevokeReasonHasPrefix(v string) predicate.CareLink {
	return predicate.CareLink(sql.FieldHasPrefix(FieldRevokeReason, v))
}

// RevokeReasonHasSuffix applies the HasSuffix predicate on the "revoke_reason" field.
func RevokeReasonHasSuffix(v string) predicate.CareLink {
	return predicate.CareLink(sql.FieldHasSuffix(FieldRevokeReason, v))
}

// RevokeReasonIsNil applies the IsNil predicate on the "revoke_reason" field.
func RevokeReasonIsNil() predicate.CareLink {
	return predicate.CareLink(sql.FieldIsNull(FieldRevokeReason))
}

// RevokeReasonNotNil applies the NotNil predicate on the "revoke_reason" field.
func RevokeReasonNotNil() predicate.CareLink {
	return predicate.CareLink(sql.FieldNotNull(FieldRevokeReason))
}

// RevokeReasonEqualFold applies the EqualFold predicate on the "revoke_reason" field.
func RevokeReasonEqualFold(v string) predicate.CareLink {
	return predicate.CareLink(sql.FieldEqualFold(FieldRevokeReason, v))
}

// RevokeReasonContainsFold applies the ContainsFold predicate on the "revoke_reason" field.
func RevokeReasonContainsFold(v string) predicate.CareLink {
	return predicate.CareLink(sql.FieldContainsFold(FieldRevokeReason, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CareLink) predicate.CareLink {
	return predicate.CareLink(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CareLink) predicate.CareLink {
	return predicate.CareLink(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CareLink) predicate.CareLink {
	return predicate.CareLink(sql.NotPredicates(p))
}
