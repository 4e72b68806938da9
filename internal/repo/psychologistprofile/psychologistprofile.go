// Code generated by ent, DO NOT EDIT.

package psychologistprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the psychologistprofile type in the database.
	Label = "psychologist_profile"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldClinicMemberID holds the string denoting the clinic_member_id field in the database.
	FieldClinicMemberID = "clinic_member_id"
	// FieldCrpLicense holds the string denoting the crp_license field in the database.
	FieldCrpLicense = "crp_license"
	// FieldApproach holds the string denoting the approach field in the database.
	FieldApproach = "approach"
	// FieldSpecialties holds the string denoting the specialties field in the database.
	FieldSpecialties = "specialties"
	// FieldBio holds the string denoting the bio field in the database.
	FieldBio = "bio"
	// FieldSessionPriceCents holds the string denoting the session_price_cents field in the database.
	FieldSessionPriceCents = "session_price_cents"
	// FieldSessionDurationMin holds the string denoting the session_duration_min field in the database.
	FieldSessionDurationMin = "session_duration_min"
	// FieldTimezone holds the string denoting the timezone field in the database.
	FieldTimezone = "timezone"
	// FieldWorkingHours holds the string denoting the working_hours field in the database.
	FieldWorkingHours = "working_hours"
	// FieldSlotGranularityMin holds the string denoting the slot_granularity_min field in the database.
	FieldSlotGranularityMin = "slot_granularity_min"
	// FieldIsAccepting holds the string denoting the is_accepting field in the database.
	FieldIsAccepting = "is_accepting"
	// EdgeMember holds the string denoting the member edge name in mutations.
	EdgeMember = "member"
	// Table holds the table name of the psychologistprofile in the database.
	Table = "psychologist_profiles"
	// MemberTable is the table that holds the member relation/edge.
	MemberTable = "psychologist_profiles"
	// MemberInverseTable is the table name for the ClinicMember entity.
	// It exists in this package in order to avoid circular dependency with the "clinicmember" package.
	MemberInverseTable = "clinic_members"
	// MemberColumn is the table column denoting the member relation/edge.
	MemberColumn = "clinic_member_id"
)

// Columns holds all SQL columns for psychologistprofile fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldClinicMemberID,
	FieldCrpLicense,
	FieldApproach,
	FieldSpecialties,
	FieldBio,
	FieldSessionPriceCents,
	FieldSessionDurationMin,
	FieldTimezone,
	FieldWorkingHours,
	FieldSlotGranularityMin,
	FieldIsAccepting,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// CrpLicenseValidator is a validator for the "crp_license" field. It is called by the builders before save.
	CrpLicenseValidator func(string) error
	// ApproachValidator is a validator for the "approach" field. It is called by the builders before save.
	ApproachValidator func(string) error
	// DefaultTimezone holds the default value on creation for the "timezone" field.
	DefaultTimezone string
	// TimezoneValidator is a validator for the "timezone" field. It is called by the builders before save.
	TimezoneValidator func(string) error
	// DefaultSlotGranularityMin holds the default value on creation for the "slot_granularity_min" field.
	DefaultSlotGranularityMin int
	// DefaultIsAccepting holds the default value on creation for the "is_accepting" field.
	DefaultIsAccepting bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the PsychologistProfile queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByClinicMemberID orders the results by the clinic_member_id field.
func ByClinicMemberID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClinicMemberID, opts...).ToFunc()
}

// ByCrpLicense orders the results by the crp_license field.
func ByCrpLicense(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCrpLicense, opts...).ToFunc()
}

// ByApproach orders the results by the approach field.
func ByApproach(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApproach, opts...).ToFunc()
}

// ByBio orders the results by the bio field.
func ByBio(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBio, opts...).ToFunc()
}

// BySessionPriceCents orders the results by the session_price_cents field.
func BySessionPriceCents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionPriceCents, opts...).ToFunc()
}

// BySessionDurationMin orders the results by the session_duration_min field.
func BySessionDurationMin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionDurationMin, opts...).ToFunc()
}

// ByTimezone orders the results by the timezone field.
func ByTimezone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimezone, opts...).ToFunc()
}

// BySlotGranularityMin orders the results by the slot_granularity_min field.
func BySlotGranularityMin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlotGranularityMin, opts...).ToFunc()
}

// ByIsAccepting orders the results by the is_accepting field.
func ByIsAccepting(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsAccepting, opts...).ToFunc()
}

// ByMemberField orders the results by member field.
func ByMemberField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMemberStep(), sql.OrderByField(field, opts...))
	}
}
func newMemberStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MemberInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, MemberTable, MemberColumn),
	)
}
