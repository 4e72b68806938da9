// Code generated by ent, DO NOT EDIT.

package carelink

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the carelink type in the database.
	Label = "care_link"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldClinicID holds the string denoting the clinic_id field in the database.
	FieldClinicID = "clinic_id"
	// FieldPsychologistID holds the string denoting the psychologist_id field in the database.
	FieldPsychologistID = "psychologist_id"
	// FieldPatientID holds the string denoting the patient_id field in the database.
	FieldPatientID = "patient_id"
	// FieldInviteCode holds the string denoting the invite_code field in the database.
	FieldInviteCode = "invite_code"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldShareDiary holds the string denoting the share_diary field in the database.
	FieldShareDiary = "share_diary"
	// FieldShareMood holds the string denoting the share_mood field in the database.
	FieldShareMood = "share_mood"
	// FieldInvitedAt holds the string denoting the invited_at field in the database.
	FieldInvitedAt = "invited_at"
	// FieldConsentedAt holds the string denoting the consented_at field in the database.
	FieldConsentedAt = "consented_at"
	// FieldRevokedAt holds the string denoting the revoked_at field in the database.
	FieldRevokedAt = "revoked_at"
	// FieldRevokeReason holds the string denoting the revoke_reason field in the database.
	FieldRevokeReason = "revoke_reason"
	// Table holds the table name of the carelink in the database.
	Table = "care_links"
)

// Columns holds all SQL columns for carelink fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldClinicID,
	FieldPsychologistID,
	FieldPatientID,
	FieldInviteCode,
	FieldStatus,
	FieldShareDiary,
	FieldShareMood,
	FieldInvitedAt,
	FieldConsentedAt,
	FieldRevokedAt,
	FieldRevokeReason,
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
	// InviteCodeValidator is a validator for the "invite_code" field. It is called by the builders before save.
	InviteCodeValidator func(string) error
	// DefaultShareDiary holds the default value on creation for the "share_diary" field.
	DefaultShareDiary bool
	// DefaultShareMood holds the default value on creation for the "share_mood" field.
	DefaultShareMood bool
	// RevokeReasonValidator is a validator for the "revoke_reason" field. It is called by the builders before save.
	RevokeReasonValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending Status = "pending"
	StatusActive  Status = "active"
	StatusRevoked Status = "revoked"
	StatusExpired Status = "expired"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusActive, StatusRevoked, StatusExpired:
		return nil
	default:
		return fmt.Errorf("carelink: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the CareLink queries.
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

// ByPsychologistID orders the results by the psychologist_id field.
func ByPsychologistID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPsychologistID, opts...).ToFunc()
}

// ByPatientID orders the results by the patient_id field.
func ByPatientID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientID, opts...).ToFunc()
}

// ByInviteCode orders the results by the invite_code field.
func ByInviteCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInviteCode, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByShareDiary orders the results by the share_diary field.
func ByShareDiary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldShareDiary, opts...).ToFunc()
}

// ByShareMood orders the results by the share_mood field.
func ByShareMood(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldShareMood, opts...).ToFunc()
}

// ByInvitedAt orders the results by the invited_at field.
func ByInvitedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInvitedAt, opts...).ToFunc()
}

// ByConsentedAt orders the results by the consented_at field.
func ByConsentedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsentedAt, opts...).ToFunc()
}

// ByRevokedAt orders the results by the revoked_at field.
func ByRevokedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRevokedAt, opts...).ToFunc()
}

// ByRevokeReason orders the results by the revoke_reason field.
func ByRevokeReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRevokeReason, opts...).ToFunc()
}
