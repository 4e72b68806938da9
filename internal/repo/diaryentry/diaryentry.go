// Code generated by ent, DO NOT EDIT.

package diaryentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the diaryentry type in the database.
	Label = "diary_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldPatientID holds the string denoting the patient_id field in the database.
	FieldPatientID = "patient_id"
	// FieldEntryDate holds the string denoting the entry_date field in the database.
	FieldEntryDate = "entry_date"
	// FieldMood holds the string denoting the mood field in the database.
	FieldMood = "mood"
	// FieldEnergy holds the string denoting the energy field in the database.
	FieldEnergy = "energy"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldEmotions holds the string denoting the emotions field in the database.
	FieldEmotions = "emotions"
	// Table holds the table name of the diaryentry in the database.
	Table = "diary_entries"
)

// Columns holds all SQL columns for diaryentry fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldPatientID,
	FieldEntryDate,
	FieldMood,
	FieldEnergy,
	FieldContent,
	FieldEmotions,
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
	// MoodValidator is a validator for the "mood" field. It is called by the builders before save.
	MoodValidator func(int) error
	// EnergyValidator is a validator for the "energy" field. It is called by the builders before save.
	EnergyValidator func(int) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the DiaryEntry queries.
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

// ByPatientID orders the results by the patient_id field.
func ByPatientID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientID, opts...).ToFunc()
}

// ByEntryDate orders the results by the entry_date field.
func ByEntryDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntryDate, opts...).ToFunc()
}

// ByMood orders the results by the mood field.
func ByMood(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMood, opts...).ToFunc()
}

// ByEnergy orders the results by the energy field.
func ByEnergy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnergy, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}
