// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/amparasaude/ampara_backend/internal/repo/carelink"
	"github.com/google/uuid"
)

// CareLink is the model entity for the CareLink schema.
type CareLink struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → clinics.id
	ClinicID uuid.UUID `json:"clinic_id,omitempty"`
	// FK → clinic_members.id
	PsychologistID uuid.UUID `json:"psychologist_id,omitempty"`
	// FK → patients.id
	PatientID uuid.UUID `json:"patient_id,omitempty"`
	// Random code the patient redeems to accept the link
	InviteCode string `json:"invite_code,omitempty"`
	// Status holds the value of the "status" field.
	Status carelink.Status `json:"status,omitempty"`
	// Patient consents to the psychologist reading diary entries
	ShareDiary bool `json:"share_diary,omitempty"`
	// Patient consents to mood/energy trend visibility
	ShareMood bool `json:"share_mood,omitempty"`
	// InvitedAt holds the value of the "invited_at" field.
	InvitedAt *time.Time `json:"invited_at,omitempty"`
	// ConsentedAt holds the value of the "consented_at" field.
	ConsentedAt *time.Time `json:"consented_at,omitempty"`
	// RevokedAt holds the value of the "revoked_at" field.
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
	// RevokeReason holds the value of the "revoke_reason" field.
	RevokeReason *string `json:"revoke_reason,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CareLink) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case carelink.FieldShareDiary, carelink.FieldShareMood:
			values[i] = new(sql.NullBool)
		case carelink.FieldInviteCode, carelink.FieldStatus, carelink.FieldRevokeReason:
			values[i] = new(sql.NullString)
		case carelink.FieldCreatedAt, carelink.FieldUpdatedAt, carelink.FieldInvitedAt, carelink.FieldConsentedAt, carelink.FieldRevokedAt:
			values[i] = new(sql.NullTime)
		case carelink.FieldID, carelink.FieldClinicID, carelink.FieldPsychologistID, carelink.FieldPatientID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CareLink fields.
func (_m *CareLink) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case carelink.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case carelink.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case carelink.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case carelink.FieldClinicID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field clinic_id", values[i])
			} else if value != nil {
				_m.ClinicID = *value
			}
		case carelink.FieldPsychologistID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field psychologist_id", values[i])
			} else if value != nil {
				_m.PsychologistID = *value
			}
		case carelink.FieldPatientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value != nil {
				_m.PatientID = *value
			}
		case carelink.FieldInviteCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field invite_code", values[i])
			} else if value.Valid {
				_m.InviteCode = value.String
			}
		case carelink.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = carelink.Status(value.String)
			}
		case carelink.FieldShareDiary:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field share_diary", values[i])
			} else if value.Valid {
				_m.ShareDiary = value.Bool
			}
		case carelink.FieldShareMood:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field share_mood", values[i])
			} else if value.Valid {
				_m.ShareMood = value.Bool
			}
		case carelink.FieldInvitedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field invited_at", values[i])
			} else if value.Valid {
				_m.InvitedAt = new(time.Time)
				*_m.InvitedAt = value.Time
			}
		case carelink.FieldConsentedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field consented_at", values[i])
			} else if value.Valid {
				_m.ConsentedAt = new(time.Time)
				*_m.ConsentedAt = value.Time
			}
		case carelink.FieldRevokedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field revoked_at", values[i])
			} else if value.Valid {
				_m.RevokedAt = new(time.Time)
				*_m.RevokedAt = value.Time
			}
		case carelink.FieldRevokeReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field revoke_reason", values[i])
			} else if value.Valid {
				_m.RevokeReason = new(string)
				*_m.RevokeReason = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CareLink.
// This includes values selected through modifiers, order, etc.
func (_m *CareLink) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CareLink.
// Note that you need to call CareLink.Unwrap() before calling this method if this CareLink
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CareLink) Update() *CareLinkUpdateOne {
	return NewCareLinkClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CareLink entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CareLink) Unwrap() *CareLink {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: CareLink is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CareLink) String() string {
	var builder strings.Builder
	builder.WriteString("CareLink(")
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
	builder.WriteString("psychologist_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PsychologistID))
	builder.WriteString(", ")
	builder.WriteString("patient_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatientID))
	builder.WriteString(", ")
	builder.WriteString("invite_code=")
	builder.WriteString(_m.InviteCode)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("share_diary=")
	builder.WriteString(fmt.Sprintf("%v", _m.ShareDiary))
	builder.WriteString(", ")
	builder.WriteString("share_mood=")
	builder.WriteString(fmt.Sprintf("%v", _m.ShareMood))
	builder.WriteString(", ")
	if v := _m.InvitedAt; v != nil {
		builder.WriteString("invited_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ConsentedAt; v != nil {
		builder.WriteString("consented_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.RevokedAt; v != nil {
		builder.WriteString("revoked_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.RevokeReason; v != nil {
		builder.WriteString("revoke_reason=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// CareLinks is a parsable slice of CareLink.
type CareLinks []*CareLink
