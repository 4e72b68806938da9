// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/amparasaude/ampara_backend/internal/repo/notificationpref"
	"github.com/google/uuid"
)

// NotificationPref is the model entity for the NotificationPref schema.
type NotificationPref struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → users.id
	UserID uuid.UUID `json:"user_id,omitempty"`
	// SessionSms holds the value of the "session_sms" field.
	SessionSms bool `json:"session_sms,omitempty"`
	// SessionPush holds the value of the "session_push" field.
	SessionPush bool `json:"session_push,omitempty"`
	// DiaryReminderPush holds the value of the "diary_reminder_push" field.
	DiaryReminderPush bool `json:"diary_reminder_push,omitempty"`
	// RewardPush holds the value of the "reward_push" field.
	RewardPush   bool `json:"reward_push,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*NotificationPref) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case notificationpref.FieldSessionSms, notificationpref.FieldSessionPush, notificationpref.FieldDiaryReminderPush, notificationpref.FieldRewardPush:
			values[i] = new(sql.NullBool)
		case notificationpref.FieldCreatedAt, notificationpref.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case notificationpref.FieldID, notificationpref.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the NotificationPref fields.
func (_m *NotificationPref) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case notificationpref.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case notificationpref.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case notificationpref.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case notificationpref.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case notificationpref.FieldSessionSms:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field session_sms", values[i])
			} else if value.Valid {
				_m.SessionSms = value.Bool
			}
		case notificationpref.FieldSessionPush:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field session_push", values[i])
			} else if value.Valid {
				_m.SessionPush = value.Bool
			}
		case notificationpref.FieldDiaryReminderPush:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field diary_reminder_push", values[i])
			} else if value.Valid {
				_m.DiaryReminderPush = value.Bool
			}
		case notificationpref.FieldRewardPush:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field reward_push", values[i])
			} else if value.Valid {
				_m.RewardPush = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the NotificationPref.
// This includes values selected through modifiers, order, etc.
func (_m *NotificationPref) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this NotificationPref.
// Note that you need to call NotificationPref.Unwrap() before calling this method if this NotificationPref
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *NotificationPref) Update() *NotificationPrefUpdateOne {
	return NewNotificationPrefClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the NotificationPref entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *NotificationPref) Unwrap() *NotificationPref {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: NotificationPref is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *NotificationPref) String() string {
	var builder strings.Builder
	builder.WriteString("NotificationPref(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("session_sms=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionSms))
	builder.WriteString(", ")
	builder.WriteString("session_push=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionPush))
	builder.WriteString(", ")
	builder.WriteString("diary_reminder_push=")
	builder.WriteString(fmt.Sprintf("%v", _m.DiaryReminderPush))
	builder.WriteString(", ")
	builder.WriteString("reward_push=")
	builder.WriteString(fmt.Sprintf("%v", _m.RewardPush))
	builder.WriteByte(')')
	return builder.String()
}

// NotificationPrefs is a parsable slice of NotificationPref.
type NotificationPrefs []*NotificationPref
