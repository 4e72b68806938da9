// Code generated by ent, DO NOT EDIT.

package repo

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/amparasaude/ampara_backend/internal/repo/clinicmember"
	"github.com/amparasaude/ampara_backend/internal/repo/psychologistprofile"
	"github.com/google/uuid"
)

// PsychologistProfile is the model entity for the PsychologistProfile schema.
type PsychologistProfile struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → clinic_members.id (1:1)
	ClinicMemberID uuid.UUID `json:"clinic_member_id,omitempty"`
	// Conselho Regional de Psicologia registration number
	CrpLicense *string `json:"crp_license,omitempty"`
	// Therapeutic approach, e.g. CBT, ACT
	Approach *string `json:"approach,omitempty"`
	// List of specialty tags
	Specialties []string `json:"specialties,omitempty"`
	// Bio holds the value of the "bio" field.
	Bio *string `json:"bio,omitempty"`
	// Default session price in BRL centavos; nil = clinic default
	SessionPriceCents *int64 `json:"session_price_cents,omitempty"`
	// Default session duration in minutes
	SessionDurationMin *int `json:"session_duration_min,omitempty"`
	// Timezone holds the value of the "timezone" field.
	Timezone string `json:"timezone,omitempty"`
	// WorkingHours holds the value of the "working_hours" field.
	WorkingHours map[string]interface{} `json:"working_hours,omitempty"`
	// Step used when computing availability and alternative slots
	SlotGranularityMin int `json:"slot_granularity_min,omitempty"`
	// Whether this psychologist is accepting new patients
	IsAccepting bool `json:"is_accepting,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PsychologistProfileQuery when eager-loading is set.
	Edges        PsychologistProfileEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PsychologistProfileEdges holds the relations/edges for other nodes in the graph.
type PsychologistProfileEdges struct {
	// Member holds the value of the member edge.
	Member *ClinicMember `json:"member,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// MemberOrErr returns the Member value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PsychologistProfileEdges) MemberOrErr() (*ClinicMember, error) {
	if e.Member != nil {
		return e.Member, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: clinicmember.Label}
	}
	return nil, &NotLoadedError{edge: "member"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PsychologistProfile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case psychologistprofile.FieldSpecialties, psychologistprofile.FieldWorkingHours:
			values[i] = new([]byte)
		case psychologistprofile.FieldIsAccepting:
			values[i] = new(sql.NullBool)
		case psychologistprofile.FieldSessionPriceCents, psychologistprofile.FieldSessionDurationMin, psychologistprofile.FieldSlotGranularityMin:
			values[i] = new(sql.NullInt64)
		case psychologistprofile.FieldCrpLicense, psychologistprofile.FieldApproach, psychologistprofile.FieldBio, psychologistprofile.FieldTimezone:
			values[i] = new(sql.NullString)
		case psychologistprofile.FieldCreatedAt, psychologistprofile.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case psychologistprofile.FieldID, psychologistprofile.FieldClinicMemberID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PsychologistProfile fields.
func (_m *PsychologistProfile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case psychologistprofile.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case psychologistprofile.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case psychologistprofile.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case psychologistprofile.FieldClinicMemberID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field clinic_member_id", values[i])
			} else if value != nil {
				_m.ClinicMemberID = *value
			}
		case psychologistprofile.FieldCrpLicense:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field crp_license", values[i])
			} else if value.Valid {
				_m.CrpLicense = new(string)
				*_m.CrpLicense = value.String
			}
		case psychologistprofile.FieldApproach:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field approach", values[i])
			} else if value.Valid {
				_m.Approach = new(string)
				*_m.Approach = value.String
			}
		case psychologistprofile.FieldSpecialties:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field specialties", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Specialties); err != nil {
					return fmt.Errorf("unmarshal field specialties: %w", err)
				}
			}
		case psychologistprofile.FieldBio:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bio", values[i])
			} else if value.Valid {
				_m.Bio = new(string)
				*_m.Bio = value.String
			}
		case psychologistprofile.FieldSessionPriceCents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field session_price_cents", values[i])
			} else if value.Valid {
				_m.SessionPriceCents = new(int64)
				*_m.SessionPriceCents = value.Int64
			}
		case psychologistprofile.FieldSessionDurationMin:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field session_duration_min", values[i])
			} else if value.Valid {
				_m.SessionDurationMin = new(int)
				*_m.SessionDurationMin = int(value.Int64)
			}
		case psychologistprofile.FieldTimezone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field timezone", values[i])
			} else if value.Valid {
				_m.Timezone = value.String
			}
		case psychologistprofile.FieldWorkingHours:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field working_hours", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.WorkingHours); err != nil {
					return fmt.Errorf("unmarshal field working_hours: %w", err)
				}
			}
		case psychologistprofile.FieldSlotGranularityMin:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field slot_granularity_min", values[i])
			} else if value.Valid {
				_m.SlotGranularityMin = int(value.Int64)
			}
		case psychologistprofile.FieldIsAccepting:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_accepting", values[i])
			} else if value.Valid {
				_m.IsAccepting = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PsychologistProfile.
// This includes values selected through modifiers, order, etc.
func (_m *PsychologistProfile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMember queries the "member" edge of the PsychologistProfile entity.
func (_m *PsychologistProfile) QueryMember() *ClinicMemberQuery {
	return NewPsychologistProfileClient(_m.config).QueryMember(_m)
}

// Update returns a builder for updating this PsychologistProfile.
// Note that you need to call PsychologistProfile.Unwrap() before calling this method if this PsychologistProfile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PsychologistProfile) Update() *PsychologistProfileUpdateOne {
	return NewPsychologistProfileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PsychologistProfile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PsychologistProfile) Unwrap() *PsychologistProfile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: PsychologistProfile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PsychologistProfile) String() string {
	var builder strings.Builder
	builder.WriteString("PsychologistProfile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("clinic_member_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ClinicMemberID))
	builder.WriteString(", ")
	if v := _m.CrpLicense; v != nil {
		builder.WriteString("crp_license=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Approach; v != nil {
		builder.WriteString("approach=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("specialties=")
	builder.WriteString(fmt.Sprintf("%v", _m.Specialties))
	builder.WriteString(", ")
	if v := _m.Bio; v != nil {
		builder.WriteString("bio=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SessionPriceCents; v != nil {
		builder.WriteString("session_price_cents=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.SessionDurationMin; v != nil {
		builder.WriteString("session_duration_min=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("timezone=")
	builder.WriteString(_m.Timezone)
	builder.WriteString(", ")
	builder.WriteString("working_hours=")
	builder.WriteString(fmt.Sprintf("%v", _m.WorkingHours))
	builder.WriteString(", ")
	builder.WriteString("slot_granularity_min=")
	builder.WriteString(fmt.Sprintf("%v", _m.SlotGranularityMin))
	builder.WriteString(", ")
	builder.WriteString("is_accepting=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsAccepting))
	builder.WriteByte(')')
	return builder.String()
}

// PsychologistProfiles is a parsable slice of PsychologistProfile.
type PsychologistProfiles []*PsychologistProfile
