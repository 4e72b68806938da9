// Code generated by ent, DO NOT EDIT.

package notificationpref

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the notificationpref type in the database.
	Label = "notification_pref"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldSessionSms holds the string denoting the session_sms field in the database.
	FieldSessionSms = "session_sms"
	// FieldSessionPush holds the string denoting the session_push field in the database.
	FieldSessionPush = "session_push"
	// FieldDiaryReminderPush holds the string denoting the diary_reminder_push field in the database.
	FieldDiaryReminderPush = "diary_reminder_push"
	// FieldRewardPush holds the string denoting the reward_push field in the database.
	FieldRewardPush = "reward_push"
	// Table holds the table name of the notificationpref in the database.
	Table = "notification_prefs"
)

// Columns holds all SQL columns for notificationpref fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldUserID,
	FieldSessionSms,
	FieldSessionPush,
	FieldDiaryReminderPush,
	FieldRewardPush,
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
	// DefaultSessionSms holds the default value on creation for the "session_sms" field.
	DefaultSessionSms bool
	// DefaultSessionPush holds the default value on creation for the "session_push" field.
	DefaultSessionPush bool
	// DefaultDiaryReminderPush holds the default value on creation for the "diary_reminder_push" field.
	DefaultDiaryReminderPush bool
	// DefaultRewardPush holds the default value on creation for the "reward_push" field.
	DefaultRewardPush bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the NotificationPref queries.
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

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// BySessionSms orders the results by the session_sms field.
func BySessionSms(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionSms, opts...).ToFunc()
}

// BySessionPush orders the results by the session_push field.
func BySessionPush(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionPush, opts...).ToFunc()
}

// ByDiaryReminderPush orders the results by the diary_reminder_push field.
func ByDiaryReminderPush(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDiaryReminderPush, opts...).ToFunc()
}

// ByRewardPush orders the results by the reward_push field.
func ByRewardPush(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRewardPush, opts...).ToFunc()
}
