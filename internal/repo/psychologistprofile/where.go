// Code generated by ent, DO NOT EDIT.

package psychologistprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/amparasaude/ampara_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// ClinicMemberID applies equality check predicate on the "clinic_member_id" field. It's identical to ClinicMemberIDEQ.
func ClinicMemberID(v uuid.UUID) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldEQ(FieldClinicMemberID, v))
}

// CrpLicense applies equality check predicate on the "crp_license" field. It's identical to CrpLicenseEQ.
func CrpLicense(v string) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldEQ(FieldCrpLicense, v))
}

// Approach applies equality check predicate on the "approach" field. It's identical to ApproachEQ.
func Approach(v string) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldEQ(FieldApproach, v))
}

// Bio applies equality check predicate on the "bio" field. It's identical to BioEQ.
func Bio(v string) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldEQ(FieldBio, v))
}

// SessionPriceCents applies equality check predicate on the "session_price_cents" field. It's identical to SessionPriceCentsEQ.
func SessionPriceCents(v int64) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldEQ(FieldSessionPriceCents, v))
}

// SessionDurationMin applies equality check predicate on the "session_duration_min" field. It's identical to SessionDurationMinEQ.
func SessionDurationMin(v int) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldEQ(FieldSessionDurationMin, v))
}

// Timezone applies equality check predicate on the "timezone" field. It's identical to TimezoneEQ.
func Timezone(v string) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldEQ(FieldTimezone, v))
}

// SlotGranularityMin applies equality check predicate on the "slot_granularity_min" field. It's identical to SlotGranularityMinEQ.
func SlotGranularityMin(v int) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldEQ(FieldSlotGranularityMin, v))
}

// IsAccepting applies equality check predicate on the "is_accepting" field. It's identical to IsAcceptingEQ.
func IsAccepting(v bool) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldEQ(FieldIsAccepting, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldLTE(FieldUpdatedAt, v))
}

// ClinicMemberIDEQ applies the EQ predicate on the "clinic_member_id" field.
func ClinicMemberIDEQ(v uuid.UUID) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldEQ(FieldClinicMemberID, v))
}

// ClinicMemberIDNEQ applies the NEQ predicate on the "clinic_member_id" field.
func ClinicMemberIDNEQ(v uuid.UUID) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldNEQ(FieldClinicMemberID, v))
}

// ClinicMemberIDIn applies the In predicate on the "clinic_member_id" field.
func ClinicMemberIDIn(vs ...uuid.UUID) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldIn(FieldClinicMemberID, vs...))
}

// ClinicMemberIDNotIn applies the NotIn predicate on the "clinic_member_id" field.
func ClinicMemberIDNotIn(vs ...uuid.UUID) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldNotIn(FieldClinicMemberID, vs...))
}

// CrpLicenseEQ applies the EQ predicate on the "crp_license" field.
func CrpLicenseEQ(v string) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldEQ(FieldCrpLicense, v))
}

// CrpLicenseNEQ applies the NEQ predicate on the "crp_license" field.
func CrpLicenseNEQ(v string) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldNEQ(FieldCrpLicense, v))
}

// CrpLicenseIn applies the In predicate on the "crp_license" field.
func CrpLicenseIn(vs ...string) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldIn(FieldCrpLicense, vs...))
}

// CrpLicenseNotIn applies the NotIn predicate on the "crp_license" field.
func CrpLicenseNotIn(vs ...string) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldNotIn(FieldCrpLicense, vs...))
}

// CrpLicenseGT applies the GT predicate on the "crp_license" field.
func CrpLicenseGT(v string) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldGT(FieldCrpLicense, v))
}

// CrpLicenseGTE applies the GTE predicate on the "crp_license" field.
func CrpLicenseGTE(v string) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldGTE(FieldCrpLicense, v))
}

// CrpLicenseLT applies the LT predicate on the "crp_license" field.
func CrpLicenseLT(v string) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldLT(FieldCrpLicense, v))
}

// CrpLicenseLTE applies the LTE predicate on the "crp_license" field.
func CrpLicenseLTE(v string) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldLTE(FieldCrpLicense, v))
}

// CrpLicenseContains applies the Contains predicate on the "crp_license" field.
func CrpLicenseContains(v string) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldContains(FieldCrpLicense, v))
}

// CrpLicenseHasPrefix applies the HasPrefix predicate on the "crp_license" field.
func CrpLicenseHasPrefix(v string) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldHasPrefix(FieldCrpLicense, v))
}

// CrpLicenseHasSuffix applies the HasSuffix predicate on the "crp_license" field.
func CrpLicenseHasSuffix(v string) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldHasSuffix(FieldCrpLicense, v))
}

// CrpLicenseIsNil applies the IsNil predicate on the "crp_license" field.
func CrpLicenseIsNil() predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldIsNull(FieldCrpLicense))
}

// CrpLicenseNotNil applies the NotNil predicate on the "crp_license" field.
func CrpLicenseNotNil() predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldNotNull(FieldCrpLicense))
}

// CrpLicenseEqualFold applies the EqualFold predicate on the "crp_license" field.
func CrpLicenseEqualFold(v string) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldEqualFold(FieldCrpLicense, v))
}

// CrpLicenseContainsFold applies the ContainsFold predicate on the "crp_license" field.
func CrpLicenseContainsFold(v string) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldContainsFold(FieldCrpLicense, v))
}

// ApproachEQ applies the EQ predicate on the "approach" field.
func ApproachEQ(v string) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldEQ(FieldApproach, v))
}

// ApproachNEQ applies the NEQ predicate on the "approach" field.
func ApproachNEQ(v string) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldNEQ(FieldApproach, v))
}

// ApproachIn applies the In predicate on the "approach" field.
func ApproachIn(vs ...string) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldIn(FieldApproach, vs...))
}

// ApproachNotIn applies the NotIn predicate on the "approach" field.
func ApproachNotIn(vs ...string) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldNotIn(FieldApproach, vs...))
}

// ApproachGT applies the GT predicate on the "approach" field.
func ApproachGT(v string) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldGT(FieldApproach, v))
}

// ApproachGTE applies the GTE predicate on the "approach" field.
func ApproachGTE(v string) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldGTE(FieldApproach, v))
}

// ApproachLT applies the LT predicate on the "approach" field.
func ApproachLT(v string) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldLT(FieldApproach, v))
}

// ApproachLTE applies the LTE predicate on the "approach" field.
func ApproachLTE(v string) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldLTE(FieldApproach, v))
}

// ApproachContains applies the Contains predicate on the "approach" field.
func ApproachContains(v string) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldContains(FieldApproach, v))
}

// ApproachHasPrefix applies the HasPrefix predicate on the "approach" field.
func ApproachHasPrefix(v string) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldHasPrefix(FieldApproach, v))
}

// ApproachHasSuffix applies the HasSuffix predicate on the "approach" field.
func ApproachHasSuffix(v string) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldHasSuffix(FieldApproach, v))
}

// ApproachIsNil applies the IsNil predicate on the "approach" field.
func ApproachIsNil() predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldIsNull(FieldApproach))
}

// ApproachNotNil applies the NotNil predicate on the "approach" field.
func ApproachNotNil() predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldNotNull(FieldApproach))
}

// ApproachEqualFold applies the EqualFold predicate on the "approach" field.
func ApproachEqualFold(v string) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldEqualFold(FieldApproach, v))
}

// ApproachContainsFold applies the ContainsFold predicate on the "approach" field.
func ApproachContainsFold(v string) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldContainsFold(FieldApproach, v))
}

// SpecialtiesIsNil applies the IsNil predicate on the "specialties" field.
func SpecialtiesIsNil() predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldIsNull(FieldSpecialties))
}

// SpecialtiesNotNil applies the NotNil predicate on the "specialties" field.
func SpecialtiesNotNil() predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldNotNull(FieldSpecialties))
}

// BioEQ applies the EQ predicate on the "bio" field.
func BioEQ(v string) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldEQ(FieldBio, v))
}

// BioNEQ applies the NEQ predicate on the "bio" field.
func BioNEQ(v string) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldNEQ(FieldBio, v))
}

// BioIn applies the In predicate on the "bio" field.
func BioIn(vs ...string) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldIn(FieldBio, vs...))
}

// BioNotIn applies the NotIn predicate on the "bio" field.
func BioNotIn(vs ...string) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldNotIn(FieldBio, vs...))
}

// BioGT applies the GT predicate on the "bio" field.
func BioGT(v string) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldGT(FieldBio, v))
}

// BioGTE applies the GTE predicate on the "bio" field.
func BioGTE(v string) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldGTE(FieldBio, v))
}

// BioLT applies the LT predicate on the "bio" field.
func BioLT(v string) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldLT(FieldBio, v))
}

// BioLTE applies the LTE predicate on the "bio" field.
func BioLTE(v string) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldLTE(FieldBio, v))
}

// BioContains applies the Contains predicate on the "bio" field.
func BioContains(v string) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldContains(FieldBio, v))
}

// BioHasPrefix applies the HasPrefix predicate on the "bio" field.
func BioHasPrefix(v string) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldHasPrefix(FieldBio, v))
}

// BioHasSuffix applies the HasSuffix predicate on the "bio" field.
func BioHasSuffix(v string) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldHasSuffix(FieldBio, v))
}

// BioIsNil applies the IsNil predicate on the "bio" field.
func BioIsNil() predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldIsNull(FieldBio))
}

// BioNotNil applies the NotNil predicate on the "bio" field.
func BioNotNil() predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldNotNull(FieldBio))
}

// BioEqualFold applies the EqualFold predicate on the "bio" field.
func BioEqualFold(v string) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldEqualFold(FieldBio, v))
}

// BioContainsFold applies the ContainsFold predicate on the "bio" field.
func BioContainsFold(v string) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldContainsFold(FieldBio, v))
}

// SessionPriceCentsEQ applies the EQ predicate on the "session_price_cents" field.
func SessionPriceCentsEQ(v int64) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldEQ(FieldSessionPriceCents, v))
}

// SessionPriceCentsNEQ applies the NEQ predicate on the "session_price_cents" field.
func SessionPriceCentsNEQ(v int64) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldNEQ(FieldSessionPriceCents, v))
}

// SessionPriceCentsIn applies the In predicate on the "session_price_cents" field.
func SessionPriceCentsIn(vs ...int64) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldIn(FieldSessionPriceCents, vs...))
}

// SessionPriceCentsNotIn applies the NotIn predicate on the "session_price_cents" field.
func SessionPriceCentsNotIn(vs ...int64) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldNotIn(FieldSessionPriceCents, vs...))
}

// SessionPriceCentsGT applies the GT predicate on the "session_price_cents" field.
func SessionPriceCentsGT(v int64) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldGT(FieldSessionPriceCents, v))
}

// SessionPriceCentsGTE applies the GTE predicate on the "session_price_cents" field.
func SessionPriceCentsGTE(v int64) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldGTE(FieldSessionPriceCents, v))
}

// SessionPriceCentsLT applies the LT predicate on the "session_price_cents" field.
func SessionPriceCentsLT(v int64) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldLT(FieldSessionPriceCents, v))
}

// SessionPriceCentsLTE applies the LTE predicate on the "session_price_cents" field.
func SessionPriceCentsLTE(v int64) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldLTE(FieldSessionPriceCents, v))
}

// SessionPriceCentsIsNil applies the IsNil predicate on the "session_price_cents" field.
func SessionPriceCentsIsNil() predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldIsNull(FieldSessionPriceCents))
}

// SessionPriceCentsNotNil applies the NotNil predicate on the "session_price_cents" field.
func SessionPriceCentsNotNil() predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldNotNull(FieldSessionPriceCents))
}

// SessionDurationMinEQ applies the EQ predicate on the "session_duration_min" field.
func SessionDurationMinEQ(v int) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldEQ(FieldSessionDurationMin, v))
}

// SessionDurationMinNEQ applies the NEQ predicate on the "session_duration_min" field.
func SessionDurationMinNEQ(v int) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldNEQ(FieldSessionDurationMin, v))
}

// SessionDurationMinIn applies the In predicate on the "session_duration_min" field.
func SessionDurationMinIn(vs ...int) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldIn(FieldSessionDurationMin, vs...))
}

// SessionDurationMinNotIn applies the NotIn predicate on the "session_duration_min" field.
func SessionDurationMinNotIn(vs ...int) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldNotIn(FieldSessionDurationMin, vs...))
}

// SessionDurationMinGT applies the GT predicate on the "session_duration_min" field.
func SessionDurationMinGT(v int) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldGT(FieldSessionDurationMin, v))
}

// SessionDurationMinGTE applies the GTE predicate on the "session_duration_min" field.
func SessionDurationMinGTE(v int) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldGTE(FieldSessionDurationMin, v))
}

// SessionDurationMinLT applies the LT predicate on the "session_duration_min" field.
func SessionDurationMinLT(v int) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldLT(FieldSessionDurationMin, v))
}

// SessionDurationMinLTE applies the LTE predicate on the "session_duration_min" field.
func SessionDurationMinLTE(v int) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldLTE(FieldSessionDurationMin, v))
}

// SessionDurationMinIsNil applies the IsNil predicate on the "session_duration_min" field.
func SessionDurationMinIsNil() predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldIsNull(FieldSessionDurationMin))
}

// SessionDurationMinNotNil applies the NotNil predicate on the "session_duration_min" field.
func SessionDurationMinNotNil() predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldNotNull(FieldSessionDurationMin))
}

// TimezoneEQ applies the EQ predicate on the "timezone" field.
func TimezoneEQ(v string) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldEQ(FieldTimezone, v))
}

// TimezoneNEQ applies the NEQ predicate on the "timezone" field.
func TimezoneNEQ(v string) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldNEQ(FieldTimezone, v))
}

// TimezoneIn applies the In predicate on the "timezone" field.
func TimezoneIn(vs ...string) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldIn(FieldTimezone, vs...))
}

// TimezoneNotIn applies the NotIn predicate on the "timezone" field.
func TimezoneNotIn(vs ...string) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldNotIn(FieldTimezone, vs...))
}

// TimezoneGT applies the GT predicate on the "timezone" field.
func TimezoneGT(v string) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldGT(FieldTimezone, v))
}

// TimezoneGTE applies the GTE predicate on the "timezone" field.
func TimezoneGTE(v string) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldGTE(FieldTimezone, v))
}

// TimezoneLT applies the LT predicate on the "timezone" field.
func TimezoneLT(v string) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldLT(FieldTimezone, v))
}

// TimezoneLTE applies the LTE predicate on the "timezone" field.
func TimezoneLTE(v string) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldLTE(FieldTimezone, v))
}

// TimezoneContains applies the Contains predicate on the "timezone" field.
func TimezoneContains(v string) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldContains(FieldTimezone, v))
}

// TimezoneHasPrefix applies the HasPrefix predicate on the "timezone" field.
func TimezoneHasPrefix(v string) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldHasPrefix(FieldTimezone, v))
}

// TimezoneHasSuffix applies the HasSuffix predicate on the "timezone" field.
func TimezoneHasSuffix(v string) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldHasSuffix(FieldTimezone, v))
}

// TimezoneEqualFold applies the EqualFold predicate on the "timezone" field.
func TimezoneEqualFold(v string) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldEqualFold(FieldTimezone, v))
}

// TimezoneContainsFold applies the ContainsFold predicate on the "timezone" field.
func TimezoneContainsFold(v string) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldContainsFold(FieldTimezone, v))
}

// WorkingHoursIsNil applies the IsNil predicate on the "working_hours" field.
func WorkingHoursIsNil() predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldIsNull(FieldWorkingHours))
}

// WorkingHoursNotNil applies the NotNil predicate on the "working_hours" field.
func WorkingHoursNotNil() predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldNotNull(FieldWorkingHours))
}

// SlotGranularityMinEQ applies the EQ predicate on the "slot_granularity_min" field.
func SlotGranularityMinEQ(v int) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldEQ(FieldSlotGranularityMin, v))
}

// SlotGranularityMinNEQ applies the NEQ predicate on the "slot_granularity_min" field.
func SlotGranularityMinNEQ(v int) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldNEQ(FieldSlotGranularityMin, v))
}

// SlotGranularityMinIn applies the In predicate on the "slot_granularity_min" field.
func SlotGranularityMinIn(vs ...int) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldIn(FieldSlotGranularityMin, vs...))
}

// SlotGranularityMinNotIn applies the NotIn predicate on the "slot_granularity_min" field.
func SlotGranularityMinNotIn(vs ...int) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldNotIn(FieldSlotGranularityMin, vs...))
}

// SlotGranularityMinGT applies the GT predicate on the "slot_granularity_min" field.
func SlotGranularityMinGT(v int) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldGT(FieldSlotGranularityMin, v))
}

// SlotGranularityMinGTE applies the GTE predicate on the "slot_granularity_min" field.
func SlotGranularityMinGTE(v int) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldGTE(FieldSlotGranularityMin, v))
}

// SlotGranularityMinLT applies the LT predicate on the "slot_granularity_min" field.
func SlotGranularityMinLT(v int) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldLT(FieldSlotGranularityMin, v))
}

// SlotGranularityMinLTE applies the LTE predicate on the "slot_granularity_min" field.
func SlotGranularityMinLTE(v int) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldLTE(FieldSlotGranularityMin, v))
}

// IsAcceptingEQ applies the EQ predicate on the "is_accepting" field.
func IsAcceptingEQ(v bool) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldEQ(FieldIsAccepting, v))
}

// IsAcceptingNEQ applies the NEQ predicate on the "is_accepting" field.
func IsAcceptingNEQ(v bool) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.FieldNEQ(FieldIsAccepting, v))
}

// HasMember applies the HasEdge predicate on the "member" edge.
func HasMember() predicate.PsychologistProfile {
	return predicate.PsychologistProfile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, MemberTable, MemberColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMemberWith applies the HasEdge predicate on the "member" edge with a given conditions (other predicates).
func HasMemberWith(preds ...predicate.ClinicMember) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(func(s *sql.Selector) {
		step := newMemberStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PsychologistProfile) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PsychologistProfile) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PsychologistProfile) predicate.PsychologistProfile {
	return predicate.PsychologistProfile(sql.NotPredicates(p))
}
