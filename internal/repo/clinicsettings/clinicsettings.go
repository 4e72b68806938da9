// Code generated by ent, DO NOT EDIT.

package clinicsettings

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the clinicsettings type in the database.
	Label = "clinic_settings"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldClinicID holds the string denoting the clinic_id field in the database.
	FieldClinicID = "clinic_id"
	// FieldCancellationWindowHours holds the string denoting the cancellation_window_hours field in the database.
	FieldCancellationWindowHours = "cancellation_window_hours"
	// FieldAllowPatientSelfBook holds the string denoting the allow_patient_self_book field in the database.
	FieldAllowPatientSelfBook = "allow_patient_self_book"
	// FieldDefaultSessionDurationMin holds the string denoting the default_session_duration_min field in the database.
	FieldDefaultSessionDurationMin = "default_session_duration_min"
	// FieldDefaultSessionPriceCents holds the string denoting the default_session_price_cents field in the database.
	FieldDefaultSessionPriceCents = "default_session_price_cents"
	// FieldWorkingHours holds the string denoting the working_hours field in the database.
	FieldWorkingHours = "working_hours"
	// EdgeClinic holds the string denoting the clinic edge name in mutations.
	EdgeClinic = "clinic"
	// Table holds the table name of the clinicsettings in the database.
	Table = "clinic_settings"
	// ClinicTable is the table that holds the clinic relation/edge.
	ClinicTable = "clinic_settings"
	// ClinicInverseTable is the table name for the Clinic entity.
	// It exists in this package in order to avoid circular dependency with the "clinic" package.
	ClinicInverseTable = "clinics"
	// ClinicColumn is the table column denoting the clinic relation/edge.
	ClinicColumn = "clinic_id"
)

// Columns holds all SQL columns for clinicsettings fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldClinicID,
	FieldCancellationWindowHours,
	FieldAllowPatientSelfBook,
	FieldDefaultSessionDurationMin,
	FieldDefaultSessionPriceCents,
	FieldWorkingHours,
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
	// DefaultCancellationWindowHours holds the default value on creation for the "cancellation_window_hours" field.
	DefaultCancellationWindowHours int
	// DefaultAllowPatientSelfBook holds the default value on creation for the "allow_patient_self_book" field.
	DefaultAllowPatientSelfBook bool
	// DefaultDefaultSessionDurationMin holds the default value on creation for the "default_session_duration_min" field.
	DefaultDefaultSessionDurationMin int
	// DefaultDefaultSessionPriceCents holds the default value on creation for the "default_session_price_cents" field.
	DefaultDefaultSessionPriceCents int64
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ClinicSettings queries.
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

// ByClinicID orders the results by the clinic_id field.
func ByClinicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClinicID, opts...).ToFunc()
}

// ByCancellationWindowHours orders the results by the cancellation_window_hours field.
func ByCancellationWindowHours(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancellationWindowHours, opts...).ToFunc()
}

// ByAllowPatientSelfBook orders the results by the allow_patient_self_book field.
func ByAllowPatientSelfBook(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAllowPatientSelfBook, opts...).ToFunc()
}

// ByDefaultSessionDurationMin orders the results by the default_session_duration_min field.
func ByDefaultSessionDurationMin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDefaultSessionDurationMin, opts...).ToFunc()
}

// ByDefaultSessionPriceCents orders the results by the default_session_price_cents field.
func ByDefaultSessionPriceCents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDefaultSessionPriceCents, opts...).ToFunc()
}

// ByClinicField orders the results by clinic field.
func ByClinicField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newClinicStep(), sql.OrderByField(field, opts...))
	}
}
func newClinicStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ClinicInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, ClinicTable, ClinicColumn),
	)
}
