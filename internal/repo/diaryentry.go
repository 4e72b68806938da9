// Code generated by ent, DO NOT EDIT.

package repo

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/amparasaude/ampara_backend/internal/repo/diaryentry"
	"github.com/google/uuid"
)

// DiaryEntry is the model entity for the DiaryEntry schema.
type DiaryEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → patients.id
	PatientID uuid.UUID `json:"patient_id,omitempty"`
	// Calendar day the entry refers to (midnight UTC)
	EntryDate time.Time `json:"entry_date,omitempty"`
	// Mood holds the value of the "mood" field.
	Mood int `json:"mood,omitempty"`
	// Energy holds the value of the "energy" field.
	Energy int `json:"energy,omitempty"`
	// Content holds the value of the "content" field.
	Content *string `json:"content,omitempty"`
	// Free-form emotion tags picked by the patient
	Emotions     []string `json:"emotions,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DiaryEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case diaryentry.FieldEmotions:
			values[i] = new([]byte)
		case diaryentry.FieldMood, diaryentry.FieldEnergy:
			values[i] = new(sql.NullInt64)
		case diaryentry.FieldContent:
			values[i] = new(sql.NullString)
		case diaryentry.FieldCreatedAt, diaryentry.FieldUpdatedAt, diaryentry.FieldEntryDate:
			values[i] = new(sql.NullTime)
		case diaryentry.FieldID, diaryentry.FieldPatientID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DiaryEntry fields.
func (_m *DiaryEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case diaryentry.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case diaryentry.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case diaryentry.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case diaryentry.FieldPatientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value != nil {
				_m.PatientID = *value
			}
		case diaryentry.FieldEntryDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field entry_date", values[i])
			} else if value.Valid {
				_m.EntryDate = value.Time
			}
		case diaryentry.FieldMood:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field mood", values[i])
			} else if value.Valid {
				_m.Mood = int(value.Int64)
			}
		case diaryentry.FieldEnergy:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field energy", values[i])
			} else if value.Valid {
				_m.Energy = int(value.Int64)
			}
		case diaryentry.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = new(string)
				*_m.Content = value.String
			}
		case diaryentry.FieldEmotions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field emotions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Emotions); err != nil {
					return fmt.Errorf("unmarshal field emotions: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DiaryEntry.
// This includes values selected through modifiers, order, etc.
func (_m *DiaryEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DiaryEntry.
// Note that you need to call DiaryEntry.Unwrap() before calling this method if this DiaryEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DiaryEntry) Update() *DiaryEntryUpdateOne {
	return NewDiaryEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DiaryEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DiaryEntry) Unwrap() *DiaryEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: DiaryEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DiaryEntry) String() string {
	var builder strings.Builder
	builder.WriteString("DiaryEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("patient_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatientID))
	builder.WriteString(", ")
	builder.WriteString("entry_date=")
	builder.WriteString(_m.EntryDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("mood=")
	builder.WriteString(fmt.Sprintf("%v", _m.Mood))
	builder.WriteString(", ")
	builder.WriteString("energy=")
	builder.WriteString(fmt.Sprintf("%v", _m.Energy))
	builder.WriteString(", ")
	if v := _m.Content; v != nil {
		builder.WriteString("content=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("emotions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Emotions))
	builder.WriteByte(')')
	return builder.String()
}

// DiaryEntries is a parsable slice of DiaryEntry.
type DiaryEntries []*DiaryEntry
