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
	"github.com/amparasaude/ampara_backend/internal/repo/patient"
	"github.com/amparasaude/ampara_backend/internal/repo/user"
	"github.com/google/uuid"
)

// Patient is the model entity for the Patient schema.
type Patient struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// FK → clinics.id
	ClinicID uuid.UUID `json:"clinic_id,omitempty"`
	// FK → users.id (the patient's user account)
	UserID uuid.UUID `json:"user_id,omitempty"`
	// FK → clinic_members.id (primary psychologist)
	AssignedPsychologistID *uuid.UUID `json:"assigned_psychologist_id,omitempty"`
	// Internal file/case number assigned by clinic
	FileNumber *string `json:"file_number,omitempty"`
	// Status holds the value of the "status" field.
	Status patient.Status `json:"status,omitempty"`
	// AES-256-GCM encrypted CPF, base64-encoded
	CpfEncrypted *string `json:"-"`
	// BirthDate holds the value of the "birth_date" field.
	BirthDate *time.Time `json:"birth_date,omitempty"`
	// Timezone holds the value of the "timezone" field.
	Timezone string `json:"timezone,omitempty"`
	// SessionCount holds the value of the "session_count" field.
	SessionCount int `json:"session_count,omitempty"`
	// TotalCancellations holds the value of the "total_cancellations" field.
	TotalCancellations int `json:"total_cancellations,omitempty"`
	// LastCancelReason holds the value of the "last_cancel_reason" field.
	LastCancelReason *string `json:"last_cancel_reason,omitempty"`
	// HasDiscount holds the value of the "has_discount" field.
	HasDiscount bool `json:"has_discount,omitempty"`
	// DiscountPercent holds the value of the "discount_percent" field.
	DiscountPercent int `json:"discount_percent,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes *string `json:"notes,omitempty"`
	// ReferralSource holds the value of the "referral_source" field.
	ReferralSource *string `json:"referral_source,omitempty"`
	// Presenting problem reported at intake
	ChiefComplaint *string `json:"chief_complaint,omitempty"`
	// EmergencyContactName holds the value of the "emergency_contact_name" field.
	EmergencyContactName *string `json:"emergency_contact_name,omitempty"`
	// EmergencyContactPhone holds the value of the "emergency_contact_phone" field.
	EmergencyContactPhone *string `json:"emergency_contact_phone,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PatientQuery when eager-loading is set.
	Edges        PatientEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PatientEdges holds the relations/edges for other nodes in the graph.
type PatientEdges struct {
	// Clinic holds the value of the clinic edge.
	Clinic *Clinic `json:"clinic,omitempty"`
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// AssignedPsychologist holds the value of the assigned_psychologist edge.
	AssignedPsychologist *ClinicMember `json:"assigned_psychologist,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ClinicOrErr returns the Clinic value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PatientEdges) ClinicOrErr() (*Clinic, error) {
	if e.Clinic != nil {
		return e.Clinic, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: clinic.Label}
	}
	return nil, &NotLoadedError{edge: "clinic"}
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PatientEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// AssignedPsychologistOrErr returns the AssignedPsychologist value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PatientEdges) AssignedPsychologistOrErr() (*ClinicMember, error) {
	if e.AssignedPsychologist != nil {
		return e.AssignedPsychologist, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: clinicmember.Label}
	}
	return nil, &NotLoadedError{edge: "assigned_psychologist"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Patient) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case patient.FieldAssignedPsychologistID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case patient.FieldHasDiscount:
			values[i] = new(sql.NullBool)
		case patient.FieldSessionCount, patient.FieldTotalCancellations, patient.FieldDiscountPercent:
			values[i] = new(sql.NullInt64)
		case patient.FieldFileNumber, patient.FieldStatus, patient.FieldCpfEncrypted, patient.FieldTimezone, patient.FieldLastCancelReason, patient.FieldNotes, patient.FieldReferralSource, patient.FieldChiefComplaint, patient.FieldEmergencyContactName, patient.FieldEmergencyContactPhone:
			values[i] = new(sql.NullString)
		case patient.FieldCreatedAt, patient.FieldUpdatedAt, patient.FieldDeletedAt, patient.FieldBirthDate:
			values[i] = new(sql.NullTime)
		case patient.FieldID, patient.FieldClinicID, patient.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Patient fields.
func (_m *Patient) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case patient.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case patient.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case patient.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case patient.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		case patient.FieldClinicID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field clinic_id", values[i])
			} else if value != nil {
				_m.ClinicID = *value
			}
		case patient.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case patient.FieldAssignedPsychologistID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field assigned_psychologist_id", values[i])
			} else if value.Valid {
				_m.AssignedPsychologistID = new(uuid.UUID)
				*_m.AssignedPsychologistID = *value.S.(*uuid.UUID)
			}
		case patient.FieldFileNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_number", values[i])
			} else if value.Valid {
				_m.FileNumber = new(string)
				*_m.FileNumber = value.String
			}
		case patient.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = patient.Status(value.String)
			}
		case patient.FieldCpfEncrypted:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cpf_encrypted", values[i])
			} else if value.Valid {
				_m.CpfEncrypted = new(string)
				*_m.CpfEncrypted = value.String
			}
		case patient.FieldBirthDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field birth_date", values[i])
			} else if value.Valid {
				_m.BirthDate = new(time.Time)
				*_m.BirthDate = value.Time
			}
		case patient.FieldTimezone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field timezone", values[i])
			} else if value.Valid {
				_m.Timezone = value.String
			}
		case patient.FieldSessionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field session_count", values[i])
			} else if value.Valid {
				_m.SessionCount = int(value.Int64)
			}
		case patient.FieldTotalCancellations:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_cancellations", values[i])
			} else if value.Valid {
				_m.TotalCancellations = int(value.Int64)
			}
		case patient.FieldLastCancelReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_cancel_reason", values[i])
			} else if value.Valid {
				_m.LastCancelReason = new(string)
				*_m.LastCancelReason = value.String
			}
		case patient.FieldHasDiscount:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field has_discount", values[i])
			} else if value.Valid {
				_m.HasDiscount = value.Bool
			}
		case patient.FieldDiscountPercent:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field discount_percent", values[i])
			} else if value.Valid {
				_m.DiscountPercent = int(value.Int64)
			}
		case patient.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = new(string)
				*_m.Notes = value.String
			}
		case patient.FieldReferralSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field referral_source", values[i])
			} else if value.Valid {
				_m.ReferralSource = new(string)
				*_m.ReferralSource = value.String
			}
		case patient.FieldChiefComplaint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chief_complaint", values[i])
			} else if value.Valid {
				_m.ChiefComplaint = new(string)
				*_m.ChiefComplaint = value.String
			}
		case patient.FieldEmergencyContactName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field emergency_contact_name", values[i])
			} else if value.Valid {
				_m.EmergencyContactName = new(string)
				*_m.EmergencyContactName = value.String
			}
		case patient.FieldEmergencyContactPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field emergency_contact_phone", values[i])
			} else if value.Valid {
				_m.EmergencyContactPhone = new(string)
				*_m.EmergencyContactPhone = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Patient.
// This includes values selected through modifiers, order, etc.
func (_m *Patient) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryClinic queries the "clinic" edge of the Patient entity.
func (_m *Patient) QueryClinic() *ClinicQuery {
	return NewPatientClient(_m.config).QueryClinic(_m)
}

// QueryUser queries the "user" edge of the Patient entity.
func (_m *Patient) QueryUser() *UserQuery {
	return NewPatientClient(_m.config).QueryUser(_m)
}

// QueryAssignedPsychologist queries the "assigned_psychologist" edge of the Patient entity.
func (_m *Patient) QueryAssignedPsychologist() *ClinicMemberQuery {
	return NewPatientClient(_m.config).QueryAssignedPsychologist(_m)
}

// Update returns a builder for updating this Patient.
// Note that you need to call Patient.Unwrap() before calling this method if this Patient
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Patient) Update() *PatientUpdateOne {
	return NewPatientClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Patient entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Patient) Unwrap() *Patient {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Patient is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Patient) String() string {
	var builder strings.Builder
	builder.WriteString("Patient(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("clinic_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ClinicID))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	if v := _m.AssignedPsychologistID; v != nil {
		builder.WriteString("assigned_psychologist_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.FileNumber; v != nil {
		builder.WriteString("file_number=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("cpf_encrypted=<sensitive>")
	builder.WriteString(", ")
	if v := _m.BirthDate; v != nil {
		builder.WriteString("birth_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("timezone=")
	builder.WriteString(_m.Timezone)
	builder.WriteString(", ")
	builder.WriteString("session_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionCount))
	builder.WriteString(", ")
	builder.WriteString("total_cancellations=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalCancellations))
	builder.WriteString(", ")
	if v := _m.LastCancelReason; v != nil {
		builder.WriteString("last_cancel_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("has_discount=")
	builder.WriteString(fmt.Sprintf("%v", _m.HasDiscount))
	builder.WriteString(", ")
	builder.WriteString("discount_percent=")
	builder.WriteString(fmt.Sprintf("%v", _m.DiscountPercent))
	builder.WriteString(", ")
	if v := _m.Notes; v != nil {
		builder.WriteString("notes=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ReferralSource; v != nil {
		builder.WriteString("referral_source=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ChiefComplaint; v != nil {
		builder.WriteString("chief_complaint=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.EmergencyContactName; v != nil {
		builder.WriteString("emergency_contact_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.EmergencyContactPhone; v != nil {
		builder.WriteString("emergency_contact_phone=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// Patients is a parsable slice of Patient.
type Patients []*Patient
