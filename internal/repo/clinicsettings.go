// Code generated by ent, DO NOT EDIT.

package repo

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/amparasaude/ampara_backend/internal/repo/clinic"
	"github.com/amparasaude/ampara_backend/internal/repo/clinicsettings"
	"github.com/google/uuid"
)

// ClinicSettings is the model entity for the ClinicSettings schema.
type ClinicSettings struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → clinics.id
	ClinicID uuid.UUID `json:"clinic_id,omitempty"`
	// Hours before a session when free cancellation is allowed
	CancellationWindowHours int `json:"cancellation_window_hours,omitempty"`
	// Patients can book sessions without staff intervention
	AllowPatientSelfBook bool `json:"allow_patient_self_book,omitempty"`
	// DefaultSessionDurationMin holds the value of the "default_session_duration_min" field.
	DefaultSessionDurationMin int `json:"default_session_duration_min,omitempty"`
	// Default session price in BRL centavos; psychologists can override
	DefaultSessionPriceCents int64 `json:"default_session_price_cents,omitempty"`
	// WorkingHours holds the value of the "working_hours" field.
	WorkingHours map[string]interface{} `json:"working_hours,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ClinicSettingsQuery when eager-loading is set.
	Edges        ClinicSettingsEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ClinicSettingsEdges holds the relations/edges for other nodes in the graph.
type ClinicSettingsEdges struct {
	// Clinic holds the value of the clinic edge.
	Clinic *Clinic `json:"clinic,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ClinicOrErr returns the Clinic value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ClinicSettingsEdges) ClinicOrErr() (*Clinic, error) {
	if e.Clinic != nil {
		return e.Clinic, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: clinic.Label}
	}
	return nil, &NotLoadedError{edge: "clinic"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ClinicSettings) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case clinicsettings.FieldWorkingHours:
			values[i] = new([]byte)
		case clinicsettings.FieldAllowPatientSelfBook:
			values[i] = new(sql.NullBool)
		case clinicsettings.FieldCancellationWindowHours, clinicsettings.FieldDefaultSessionDurationMin, clinicsettings.FieldDefaultSessionPriceCents:
			values[i] = new(sql.NullInt64)
		case clinicsettings.FieldCreatedAt, clinicsettings.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case clinicsettings.FieldID, clinicsettings.FieldClinicID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ClinicSettings fields.
func (_m *ClinicSettings) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case clinicsettings.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case clinicsettings.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case clinicsettings.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case clinicsettings.FieldClinicID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field clinic_id", values[i])
			} else if value != nil {
				_m.ClinicID = *value
			}
		case clinicsettings.FieldCancellationWindowHours:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cancellation_window_hours", values[i])
			} else if value.Valid {
				_m.CancellationWindowHours = int(value.Int64)
			}
		case clinicsettings.FieldAllowPatientSelfBook:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field allow_patient_self_book", values[i])
			} else if value.Valid {
				_m.AllowPatientSelfBook = value.Bool
			}
		case clinicsettings.FieldDefaultSessionDurationMin:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field default_session_duration_min", values[i])
			} else if value.Valid {
				_m.DefaultSessionDurationMin = int(value.Int64)
			}
		case clinicsettings.FieldDefaultSessionPriceCents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field default_session_price_cents", values[i])
			} else if value.Valid {
				_m.DefaultSessionPriceCents = value.Int64
			}
		case clinicsettings.FieldWorkingHours:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field working_hours", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.WorkingHours); err != nil {
					return fmt.Errorf("unmarshal field working_hours: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ClinicSettings.
// This includes values selected through modifiers, order, etc.
func (_m *ClinicSettings) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryClinic queries the "clinic" edge of the ClinicSettings entity.
func (_m *ClinicSettings) QueryClinic() *ClinicQuery {
	return NewClinicSettingsClient(_m.config).QueryClinic(_m)
}

// Update returns a builder for updating this ClinicSettings.
// Note that you need to call ClinicSettings.Unwrap() before calling this method if this ClinicSettings
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ClinicSettings) Update() *ClinicSettingsUpdateOne {
	return NewClinicSettingsClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ClinicSettings entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ClinicSettings) Unwrap() *ClinicSettings {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: ClinicSettings is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ClinicSettings) String() string {
	var builder strings.Builder
	builder.WriteString("ClinicSettings(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("clinic_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ClinicID))
	builder.WriteString(", ")
	builder.WriteString("cancellation_window_hours=")
	builder.WriteString(fmt.Sprintf("%v", _m.CancellationWindowHours))
	builder.WriteString(", ")
	builder.WriteString("allow_patient_self_book=")
	builder.WriteString(fmt.Sprintf("%v", _m.AllowPatientSelfBook))
	builder.WriteString(", ")
	builder.WriteString("default_session_duration_min=")
	builder.WriteString(fmt.Sprintf("%v", _m.DefaultSessionDurationMin))
	builder.WriteString(", ")
	builder.WriteString("default_session_price_cents=")
	builder.WriteString(fmt.Sprintf("%v", _m.DefaultSessionPriceCents))
	builder.WriteString(", ")
	builder.WriteString("working_hours=")
	builder.WriteString(fmt.Sprintf("%v", _m.WorkingHours))
	builder.WriteByte(')')
	return builder.String()
}

// ClinicSettingsSlice is a parsable slice of ClinicSettings.
type ClinicSettingsSlice []*ClinicSettings
