// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/amparasaude/ampara_backend/internal/repo/clinic"
	"github.com/amparasaude/ampara_backend/internal/repo/clinicpermission"
	"github.com/amparasaude/ampara_backend/internal/repo/user"
	"github.com/google/uuid"
)

// ClinicPermission is the model entity for the ClinicPermission schema.
type ClinicPermission struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FK → clinics.id
	ClinicID uuid.UUID `json:"clinic_id,omitempty"`
	// FK → users.id
	UserID uuid.UUID `json:"user_id,omitempty"`
	// Casbin resource type, e.g. 'patient', 'session'
	ResourceType string `json:"resource_type,omitempty"`
	// Specific resource ID for per-resource overrides; NULL = all
	ResourceID *uuid.UUID `json:"resource_id,omitempty"`
	// Casbin action, e.g. 'read', 'update', 'manage'
	Action string `json:"action,omitempty"`
	// true = explicitly allow, false = explicitly deny
	Granted bool `json:"granted,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ClinicPermissionQuery when eager-loading is set.
	Edges        ClinicPermissionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ClinicPermissionEdges holds the relations/edges for other nodes in the graph.
type ClinicPermissionEdges struct {
	// Clinic holds the value of the clinic edge.
	Clinic *Clinic `json:"clinic,omitempty"`
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ClinicOrErr returns the Clinic value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ClinicPermissionEdges) ClinicOrErr() (*Clinic, error) {
	if e.Clinic != nil {
		return e.Clinic, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: clinic.Label}
	}
	return nil, &NotLoadedError{edge: "clinic"}
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ClinicPermissionEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ClinicPermission) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case clinicpermission.FieldResourceID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case clinicpermission.FieldGranted:
			values[i] = new(sql.NullBool)
		case clinicpermission.FieldResourceType, clinicpermission.FieldAction:
			values[i] = new(sql.NullString)
		case clinicpermission.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case clinicpermission.FieldID, clinicpermission.FieldClinicID, clinicpermission.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ClinicPermission fields.
func (_m *ClinicPermission) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case clinicpermission.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case clinicpermission.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case clinicpermission.FieldClinicID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field clinic_id", values[i])
			} else if value != nil {
				_m.ClinicID = *value
			}
		case clinicpermission.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case clinicpermission.FieldResourceType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resource_type", values[i])
			} else if value.Valid {
				_m.ResourceType = value.String
			}
		case clinicpermission.FieldResourceID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field resource_id", values[i])
			} else if value.Valid {
				_m.ResourceID = new(uuid.UUID)
				*_m.ResourceID = *value.S.(*uuid.UUID)
			}
		case clinicpermission.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		case clinicpermission.FieldGranted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field granted", values[i])
			} else if value.Valid {
				_m.Granted = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ClinicPermission.
// This includes values selected through modifiers, order, etc.
func (_m *ClinicPermission) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryClinic queries the "clinic" edge of the ClinicPermission entity.
func (_m *ClinicPermission) QueryClinic() *ClinicQuery {
	return NewClinicPermissionClient(_m.config).QueryClinic(_m)
}

// QueryUser queries the "user" edge of the ClinicPermission entity.
func (_m *ClinicPermission) QueryUser() *UserQuery {
	return NewClinicPermissionClient(_m.config).QueryUser(_m)
}

// Update returns a builder for updating this ClinicPermission.
// Note that you need to call ClinicPermission.Unwrap() before calling this method if this ClinicPermission
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ClinicPermission) Update() *ClinicPermissionUpdateOne {
	return NewClinicPermissionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ClinicPermission entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ClinicPermission) Unwrap() *ClinicPermission {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: ClinicPermission is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ClinicPermission) String() string {
	var builder strings.Builder
	builder.WriteString("ClinicPermission(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("clinic_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ClinicID))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("resource_type=")
	builder.WriteString(_m.ResourceType)
	builder.WriteString(", ")
	if v := _m.ResourceID; v != nil {
		builder.WriteString("resource_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteString(", ")
	builder.WriteString("granted=")
	builder.WriteString(fmt.Sprintf("%v", _m.Granted))
	builder.WriteByte(')')
	return builder.String()
}

// ClinicPermissions is a parsable slice of ClinicPermission.
type ClinicPermissions []*ClinicPermission
