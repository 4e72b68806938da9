// Code generated by ent, DO NOT EDIT.

package patient

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the patient type in the database.
	Label = "patient"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// FieldClinicID holds the string denoting the clinic_id field in the database.
	FieldClinicID = "clinic_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldAssignedPsychologistID holds the string denoting the assigned_psychologist_id field in the database.
	FieldAssignedPsychologistID = "assigned_psychologist_id"
	// FieldFileNumber holds the string denoting the file_number field in the database.
	FieldFileNumber = "file_number"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCpfEncrypted holds the string denoting the cpf_encrypted field in the database.
	FieldCpfEncrypted = "cpf_encrypted"
	// FieldBirthDate holds the string denoting the birth_date field in the database.
	FieldBirthDate = "birth_date"
	// FieldTimezone holds the string denoting the timezone field in the database.
	FieldTimezone = "timezone"
	// FieldSessionCount holds the string denoting the session_count field in the database.
	FieldSessionCount = "session_count"
	// FieldTotalCancellations holds the string denoting the total_cancellations field in the database.
	FieldTotalCancellations = "total_cancellations"
	// FieldLastCancelReason holds the string denoting the last_cancel_reason field in the database.
	FieldLastCancelReason = "last_cancel_reason"
	// FieldHasDiscount holds the string denoting the has_discount field in the database.
	FieldHasDiscount = "has_discount"
	// FieldDiscountPercent holds the string denoting the discount_percent field in the database.
	FieldDiscountPercent = "discount_percent"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldReferralSource holds the string denoting the referral_source field in the database.
	FieldReferralSource = "referral_source"
	// FieldChiefComplaint holds the string denoting the chief_complaint field in the database.
	FieldChiefComplaint = "chief_complaint"
	// FieldEmergencyContactName holds the string denoting the emergency_contact_name field in the database.
	FieldEmergencyContactName = "emergency_contact_name"
	// FieldEmergencyContactPhone holds the string denoting the emergency_contact_phone field in the database.
	FieldEmergencyContactPhone = "emergency_contact_phone"
	// EdgeClinic holds the string denoting the clinic edge name in mutations.
	EdgeClinic = "clinic"
	// EdgeUser holds the string denoting the user edge name in mutations.
	EdgeUser = "user"
	// EdgeAssignedPsychologist holds the string denoting the assigned_psychologist edge name in mutations.
	EdgeAssignedPsychologist = "assigned_psychologist"
	// Table holds the table name of the patient in the database.
	Table = "patients"
	// ClinicTable is the table that holds the clinic relation/edge.
	ClinicTable = "patients"
	// ClinicInverseTable is the table name for the Clinic entity.
	// It exists in this package in order to avoid circular dependency with the "clinic" package.
	ClinicInverseTable = "clinics"
	// ClinicColumn is the table column denoting the clinic relation/edge.
	ClinicColumn = "clinic_id"
	// UserTable is the table that holds the user relation/edge.
	UserTable = "patients"
	// UserInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UserInverseTable = "users"
	// UserColumn is the table column denoting the user relation/edge.
	UserColumn = "user_id"
	// AssignedPsychologistTable is the table that holds the assigned_psychologist relation/edge.
	AssignedPsychologistTable = "patients"
	// AssignedPsychologistInverseTable is the table name for the ClinicMember entity.
	// It exists in this package in order to avoid circular dependency with the "clinicmember" package.
	AssignedPsychologistInverseTable = "clinic_members"
	// AssignedPsychologistColumn is the table column denoting the assigned_psychologist relation/edge.
	AssignedPsychologistColumn = "assigned_psychologist_id"
)

// Columns holds all SQL columns for patient fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDeletedAt,
	FieldClinicID,
	FieldUserID,
	FieldAssignedPsychologistID,
	FieldFileNumber,
	FieldStatus,
	FieldCpfEncrypted,
	FieldBirthDate,
	FieldTimezone,
	FieldSessionCount,
	FieldTotalCancellations,
	FieldLastCancelReason,
	FieldHasDiscount,
	FieldDiscountPercent,
	FieldNotes,
	FieldReferralSource,
	FieldChiefComplaint,
	FieldEmergencyContactName,
	FieldEmergencyContactPhone,
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
	// FileNumberValidator is a validator for the "file_number" field. It is called by the builders before save.
	FileNumberValidator func(string) error
	// DefaultTimezone holds the default value on creation for the "timezone" field.
	DefaultTimezone string
	// TimezoneValidator is a validator for the "timezone" field. It is called by the builders before save.
	TimezoneValidator func(string) error
	// DefaultSessionCount holds the default value on creation for the "session_count" field.
	DefaultSessionCount int
	// DefaultTotalCancellations holds the default value on creation for the "total_cancellations" field.
	DefaultTotalCancellations int
	// DefaultHasDiscount holds the default value on creation for the "has_discount" field.
	DefaultHasDiscount bool
	// DefaultDiscountPercent holds the default value on creation for the "discount_percent" field.
	DefaultDiscountPercent int
	// ReferralSourceValidator is a validator for the "referral_source" field. It is called by the builders before save.
	ReferralSourceValidator func(string) error
	// EmergencyContactNameValidator is a validator for the "emergency_contact_name" field. It is called by the builders before save.
	EmergencyContactNameValidator func(string) error
	// EmergencyContactPhoneValidator is a validator for the "emergency_contact_phone" field. It is called by the builders before save.
	EmergencyContactPhoneValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive     Status = "active"
	StatusWaiting    Status = "waiting"
	StatusInactive   Status = "inactive"
	StatusDischarged Status = "discharged"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusWaiting, StatusInactive, StatusDischarged:
		return nil
	default:
		return fmt.Errorf("patient: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Patient queries.
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

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByClinicID orders the results by the clinic_id field.
func ByClinicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClinicID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByAssignedPsychologistID orders the results by the assigned_psychologist_id field.
func ByAssignedPsychologistID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignedPsychologistID, opts...).ToFunc()
}

// ByFileNumber orders the results by the file_number field.
func ByFileNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileNumber, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCpfEncrypted orders the results by the cpf_encrypted field.
func ByCpfEncrypted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCpfEncrypted, opts...).ToFunc()
}

// ByBirthDate orders the results by the birth_date field.
func ByBirthDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBirthDate, opts...).ToFunc()
}

// ByTimezone orders the results by the timezone field.
func ByTimezone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimezone, opts...).ToFunc()
}

// BySessionCount orders the results by the session_count field.
func BySessionCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionCount, opts...).ToFunc()
}

// ByTotalCancellations orders the results by the total_cancellations field.
func ByTotalCancellations(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalCancellations, opts...).ToFunc()
}

// ByLastCancelReason orders the results by the last_cancel_reason field.
func ByLastCancelReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastCancelReason, opts...).ToFunc()
}

// ByHasDiscount orders the results by the has_discount field.
func ByHasDiscount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHasDiscount, opts...).ToFunc()
}

// ByDiscountPercent orders the results by the discount_percent field.
func ByDiscountPercent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDiscountPercent, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByReferralSource orders the results by the referral_source field.
func ByReferralSource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReferralSource, opts...).ToFunc()
}

// ByChiefComplaint orders the results by the chief_complaint field.
func ByChiefComplaint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChiefComplaint, opts...).ToFunc()
}

// ByEmergencyContactName orders the results by the emergency_contact_name field.
func ByEmergencyContactName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmergencyContactName, opts...).ToFunc()
}

// ByEmergencyContactPhone orders the results by the emergency_contact_phone field.
func ByEmergencyContactPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmergencyContactPhone, opts...).ToFunc()
}

// ByClinicField orders the results by clinic field.
func ByClinicField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newClinicStep(), sql.OrderByField(field, opts...))
	}
}

// ByUserField orders the results by user field.
func ByUserField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUserStep(), sql.OrderByField(field, opts...))
	}
}

// ByAssignedPsychologistField orders the results by assigned_psychologist field.
func ByAssignedPsychologistField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAssignedPsychologistStep(), sql.OrderByField(field, opts...))
	}
}
func newClinicStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ClinicInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ClinicTable, ClinicColumn),
	)
}
func newUserStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UserInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, UserTable, UserColumn),
	)
}
func newAssignedPsychologistStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AssignedPsychologistInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, AssignedPsychologistTable, AssignedPsychologistColumn),
	)
}
