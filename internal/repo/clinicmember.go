// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/amparasaude/ampara_backend/internal/repo/clinic"
	"github.com/amparasaude/ampara_backend/internal/repo/clinicmember"
	"github.com/amparasaude/ampara_backend/internal/repo/psychologistprofile"
	"github.com/amparasaude/ampara_backend/internal/repo/user"
	"github.com/google/uuid"
)

// ClinicMember is the model entity for the ClinicMember schema.
type ClinicMember struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// FK → clinics.id
	ClinicID uuid.UUID `json:"clinic_id,omitempty"`
	// FK → users.id
	UserID uuid.UUID `json:"user_id,omitempty"`
	// Role of this user in the clinic
	Role clinicmember.Role `json:"role,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// JoinedAt holds the value of the "joined_at" field.
	JoinedAt time.Time `json:"joined_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ClinicMemberQuery when eager-loading is set.
	Edges        ClinicMemberEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ClinicMemberEdges holds the relations/edges for other nodes in the graph.
type ClinicMemberEdges struct {
	// Clinic holds the value of the clinic edge.
	Clinic *Clinic `json:"clinic,omitempty"`
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// PsychologistProfile holds the value of the psychologist_profile edge.
	PsychologistProfile *PsychologistProfile `json:"psychologist_profile,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ClinicOrErr returns the Clinic value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ClinicMemberEdges) ClinicOrErr() (*Clinic, error) {
	if e.Clinic != nil {
		return e.Clinic, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: clinic.Label}
	}
	return nil, &NotLoadedError{edge: "clinic"}
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ClinicMemberEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// PsychologistProfileOrErr returns the PsychologistProfile value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ClinicMemberEdges) PsychologistProfileOrErr() (*PsychologistProfile, error) {
	if e.PsychologistProfile != nil {
		return e.PsychologistProfile, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: psychologistprofile.Label}
	}
	return nil, &NotLoadedError{edge: "psychologist_profile"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ClinicMember) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case clinicmember.FieldIsActive:
			values[i] = new(sql.NullBool)
		case clinicmember.FieldRole:
			values[i] = new(sql.NullString)
		case clinicmember.FieldJoinedAt:
			values[i] = new(sql.NullTime)
		case clinicmember.FieldID, clinicmember.FieldClinicID, clinicmember.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ClinicMember fields.
func (_m *ClinicMember) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case clinicmember.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case clinicmember.FieldClinicID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field clinic_id", values[i])
			} else if value != nil {
				_m.ClinicID = *value
			}
		case clinicmember.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case clinicmember.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = clinicmember.Role(value.String)
			}
		case clinicmember.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case clinicmember.FieldJoinedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field joined_at", values[i])
			} else if value.Valid {
				_m.JoinedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ClinicMember.
// This includes values selected through modifiers, order, etc.
func (_m *ClinicMember) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryClinic queries the "clinic" edge of the ClinicMember entity.
func (_m *ClinicMember) QueryClinic() *ClinicQuery {
	return NewClinicMemberClient(_m.config).QueryClinic(_m)
}

// QueryUser queries the "user" edge of the ClinicMember entity.
func (_m *ClinicMember) QueryUser() *UserQuery {
	return NewClinicMemberClient(_m.config).QueryUser(_m)
}

// QueryPsychologistProfile queries the "psychologist_profile" edge of the ClinicMember entity.
func (_m *ClinicMember) QueryPsychologistProfile() *PsychologistProfileQuery {
	return NewClinicMemberClient(_m.config).QueryPsychologistProfile(_m)
}

// Update returns a builder for updating this ClinicMember.
// Note that you need to call ClinicMember.Unwrap() before calling this method if this ClinicMember
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ClinicMember) Update() *ClinicMemberUpdateOne {
	return NewClinicMemberClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ClinicMember entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ClinicMember) Unwrap() *ClinicMember {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: ClinicMember is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ClinicMember) String() string {
	var builder strings.Builder
	builder.WriteString("ClinicMember(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("clinic_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ClinicID))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(fmt.Sprintf("%v", _m.Role))
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("joined_at=")
	builder.WriteString(_m.JoinedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ClinicMembers is a parsable slice of ClinicMember.
type ClinicMembers []*ClinicMember
