// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/amparasaude/ampara_backend/internal/repo/clinic"
	"github.com/amparasaude/ampara_backend/internal/repo/clinicmember"
	"github.com/amparasaude/ampara_backend/internal/repo/patient"
	"github.com/amparasaude/ampara_backend/internal/repo/predicate"
	"github.com/amparasaude/ampara_backend/internal/repo/user"
	"github.com/google/uuid"
)

// PatientUpdate is the builder for updating Patient entities.
type PatientUpdate struct {
	config
	hooks    []Hook
	mutation *PatientMutation
}

// Where appends a list predicates to the PatientUpdate builder.
func (_u *PatientUpdate) Where(ps ...predicate.Patient) *PatientUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PatientUpdate) SetUpdatedAt(v time.Time) *PatientUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *PatientUpdate) SetDeletedAt(v time.Time) *PatientUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableDeletedAt(v *time.Time) *PatientUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *PatientUpdate) ClearDeletedAt() *PatientUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *PatientUpdate) SetClinicID(v uuid.UUID) *PatientUpdate {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableClinicID(v *uuid.UUID) *PatientUpdate {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PatientUpdate) SetUserID(v uuid.UUID) *PatientUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableUserID(v *uuid.UUID) *PatientUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetAssignedPsychologistID sets the "assigned_psychologist_id" field.
func (_u *PatientUpdate) SetAssignedPsychologistID(v uuid.UUID) *PatientUpdate {
	_u.mutation.SetAssignedPsychologistID(v)
	return _u
}

// SetNillableAssignedPsychologistID sets the "assigned_psychologist_id" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableAssignedPsychologistID(v *uuid.UUID) *PatientUpdate {
	if v != nil {
		_u.SetAssignedPsychologistID(*v)
	}
	return _u
}

// ClearAssignedPsychologistID clears the value of the "assigned_psychologist_id" field.
func (_u *PatientUpdate) ClearAssignedPsychologistID() *PatientUpdate {
	_u.mutation.ClearAssignedPsychologistID()
	return _u
}

// SetFileNumber sets the "file_number" field.
func (_u *PatientUpdate) SetFileNumber(v string) *PatientUpdate {
	_u.mutation.SetFileNumber(v)
	return _u
}

// SetNillableFileNumber sets the "file_number" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableFileNumber(v *string) *PatientUpdate {
	if v != nil {
		_u.SetFileNumber(*v)
	}
	return _u
}

// ClearFileNumber clears the value of the "file_number" field.
func (_u *PatientUpdate) ClearFileNumber() *PatientUpdate {
	_u.mutation.ClearFileNumber()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PatientUpdate) SetStatus(v patient.Status) *PatientUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableStatus(v *patient.Status) *PatientUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCpfEncrypted sets the "cpf_encrypted" field.
func (_u *PatientUpdate) SetCpfEncrypted(v string) *PatientUpdate {
	_u.mutation.SetCpfEncrypted(v)
	return _u
}

// SetNillableCpfEncrypted sets the "cpf_encrypted" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableCpfEncrypted(v *string) *PatientUpdate {
	if v != nil {
		_u.SetCpfEncrypted(*v)
	}
	return _u
}

// ClearCpfEncrypted clears the value of the "cpf_encrypted" field.
func (_u *PatientUpdate) ClearCpfEncrypted() *PatientUpdate {
	_u.mutation.ClearCpfEncrypted()
	return _u
}

// SetBirthDate sets the "birth_date" field.
func (_u *PatientUpdate) SetBirthDate(v time.Time) *PatientUpdate {
	_u.mutation.SetBirthDate(v)
	return _u
}

// SetNillableBirthDate sets the "birth_date" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableBirthDate(v *time.Time) *PatientUpdate {
	if v != nil {
		_u.SetBirthDate(*v)
	}
	return _u
}

// ClearBirthDate clears the value of the "birth_date" field.
func (_u *PatientUpdate) ClearBirthDate() *PatientUpdate {
	_u.mutation.ClearBirthDate()
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *PatientUpdate) SetTimezone(v string) *PatientUpdate {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableTimezone(v *string) *PatientUpdate {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetSessionCount sets the "session_count" field.
func (_u *PatientUpdate) SetSessionCount(v int) *PatientUpdate {
	_u.mutation.ResetSessionCount()
	_u.mutation.SetSessionCount(v)
	return _u
}

// SetNillableSessionCount sets the "session_count" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableSessionCount(v *int) *PatientUpdate {
	if v != nil {
		_u.SetSessionCount(*v)
	}
	return _u
}

// AddSessionCount adds value to the "session_count" field.
func (_u *PatientUpdate) AddSessionCount(v int) *PatientUpdate {
	_u.mutation.AddSessionCount(v)
	return _u
}

// SetTotalCancellations sets the "total_cancellations" field.
func (_u *PatientUpdate) SetTotalCancellations(v int) *PatientUpdate {
	_u.mutation.ResetTotalCancellations()
	_u.mutation.SetTotalCancellations(v)
	return _u
}

// SetNillableTotalCancellations sets the "total_cancellations" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableTotalCancellations(v *int) *PatientUpdate {
	if v != nil {
		_u.SetTotalCancellations(*v)
	}
	return _u
}

// AddTotalCancellations adds value to the "total_cancellations" field.
func (_u *PatientUpdate) AddTotalCancellations(v int) *PatientUpdate {
	_u.mutation.AddTotalCancellations(v)
	return _u
}

// SetLastCancelReason sets the "last_cancel_reason" field.
func (_u *PatientUpdate) SetLastCancelReason(v string) *PatientUpdate {
	_u.mutation.SetLastCancelReason(v)
	return _u
}

// SetNillableLastCancelReason sets the "last_cancel_reason" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableLastCancelReason(v *string) *PatientUpdate {
	if v != nil {
		_u.SetLastCancelReason(*v)
	}
	return _u
}

// ClearLastCancelReason clears the value of the "last_cancel_reason" field.
func (_u *PatientUpdate) ClearLastCancelReason() *PatientUpdate {
	_u.mutation.ClearLastCancelReason()
	return _u
}

// SetHasDiscount sets the "has_discount" field.
func (_u *PatientUpdate) SetHasDiscount(v bool) *PatientUpdate {
	_u.mutation.SetHasDiscount(v)
	return _u
}

// SetNillableHasDiscount sets the "has_discount" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableHasDiscount(v *bool) *PatientUpdate {
	if v != nil {
		_u.SetHasDiscount(*v)
	}
	return _u
}

// SetDiscountPercent sets the "discount_percent" field.
func (_u *PatientUpdate) SetDiscountPercent(v int) *PatientUpdate {
	_u.mutation.ResetDiscountPercent()
	_u.mutation.SetDiscountPercent(v)
	return _u
}

// SetNillableDiscountPercent sets the "discount_percent" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableDiscountPercent(v *int) *PatientUpdate {
	if v != nil {
		_u.SetDiscountPercent(*v)
	}
	return _u
}

// AddDiscountPercent adds value to the "discount_percent" field.
func (_u *PatientUpdate) AddDiscountPercent(v int) *PatientUpdate {
	_u.mutation.AddDiscountPercent(v)
	return _u
}

// SetNotes sets the "notes" field.
func (_u *PatientUpdate) SetNotes(v string) *PatientUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableNotes(v *string) *PatientUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *PatientUpdate) ClearNotes() *PatientUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetReferralSource sets the "referral_source" field.
func (_u *PatientUpdate) SetReferralSource(v string) *PatientUpdate {
	_u.mutation.SetReferralSource(v)
	return _u
}

// SetNillableReferralSource sets the "referral_source" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableReferralSource(v *string) *PatientUpdate {
	if v != nil {
		_u.SetReferralSource(*v)
	}
	return _u
}

// ClearReferralSource clears the value of the "referral_source" field.
func (_u *PatientUpdate) ClearReferralSource() *PatientUpdate {
	_u.mutation.ClearReferralSource()
	return _u
}

// SetChiefComplaint sets the "chief_complaint" field.
func (_u *PatientUpdate) SetChiefComplaint(v string) *PatientUpdate {
	_u.mutation.SetChiefComplaint(v)
	return _u
}

// SetNillableChiefComplaint sets the "chief_complaint" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableChiefComplaint(v *string) *PatientUpdate {
	if v != nil {
		_u.SetChiefComplaint(*v)
	}
	return _u
}

// ClearChiefComplaint clears the value of the "chief_complaint" field.
func (_u *PatientUpdate) ClearChiefComplaint() *PatientUpdate {
	_u.mutation.ClearChiefComplaint()
	return _u
}

// SetEmergencyContactName sets the "emergency_contact_name" field.
func (_u *PatientUpdate) SetEmergencyContactName(v string) *PatientUpdate {
	_u.mutation.SetEmergencyContactName(v)
	return _u
}

// SetNillableEmergencyContactName sets the "emergency_contact_name" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableEmergencyContactName(v *string) *PatientUpdate {
	if v != nil {
		_u.SetEmergencyContactName(*v)
	}
	return _u
}

// ClearEmergencyContactName clears the value of the "emergency_contact_name" field.
func (_u *PatientUpdate) ClearEmergencyContactName() *PatientUpdate {
	_u.mutation.ClearEmergencyContactName()
	return _u
}

// SetEmergencyContactPhone sets the "emergency_contact_phone" field.
func (_u *PatientUpdate) SetEmergencyContactPhone(v string) *PatientUpdate {
	_u.mutation.SetEmergencyContactPhone(v)
	return _u
}

// SetNillableEmergencyContactPhone sets the "emergency_contact_phone" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableEmergencyContactPhone(v *string) *PatientUpdate {
	if v != nil {
		_u.SetEmergencyContactPhone(*v)
	}
	return _u
}

// ClearEmergencyContactPhone clears the value of the "emergency_contact_phone" field.
func (_u *PatientUpdate) ClearEmergencyContactPhone() *PatientUpdate {
	_u.mutation.ClearEmergencyContactPhone()
	return _u
}

// SetClinic sets the "clinic" edge to the Clinic entity.
func (_u *PatientUpdate) SetClinic(v *Clinic) *PatientUpdate {
	return _u.SetClinicID(v.ID)
}

// SetUser sets the "user" edge to the User entity.
func (_u *PatientUpdate) SetUser(v *User) *PatientUpdate {
	return _u.SetUserID(v.ID)
}

// SetAssignedPsychologist sets the "assigned_psychologist" edge to the ClinicMember entity.
func (_u *PatientUpdate) SetAssignedPsychologist(v *ClinicMember) *PatientUpdate {
	return _u.SetAssignedPsychologistID(v.ID)
}

// Mutation returns the PatientMutation object of the builder.
func (_u *PatientUpdate) Mutation() *PatientMutation {
	return _u.mutation
}

// ClearClinic clears the "clinic" edge to the Clinic entity.
func (_u *PatientUpdate) ClearClinic() *PatientUpdate {
	_u.mutation.ClearClinic()
	return _u
}

// ClearUser clears the "user" edge to the User entity.
func (_u *PatientUpdate) ClearUser() *PatientUpdate {
	_u.mutation.ClearUser()
	return _u
}

// ClearAssignedPsychologist clears the "assigned_psychologist" edge to the ClinicMember entity.
func (_u *PatientUpdate) ClearAssignedPsychologist() *PatientUpdate {
	_u.mutation.ClearAssignedPsychologist()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PatientUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PatientUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PatientUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := patient.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatientUpdate) check() error {
	if v, ok := _u.mutation.FileNumber(); ok {
		if err := patient.FileNumberValidator(v); err != nil {
			return &ValidationError{Name: "file_number", err: fmt.Errorf(`repo: validator failed for field "Patient.file_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := patient.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Patient.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Timezone(); ok {
		if err := patient.TimezoneValidator(v); err != nil {
			return &ValidationError{Name: "timezone", err: fmt.Errorf(`repo: validator failed for field "Patient.timezone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReferralSource(); ok {
		if err := patient.ReferralSourceValidator(v); err != nil {
			return &ValidationError{Name: "referral_source", err: fmt.Errorf(`repo: validator failed for field "Patient.referral_source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EmergencyContactName(); ok {
		if err := patient.EmergencyContactNameValidator(v); err != nil {
			return &ValidationError{Name: "emergency_contact_name", err: fmt.Errorf(`repo: validator failed for field "Patient.emergency_contact_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EmergencyContactPhone(); ok {
		if err := patient.EmergencyContactPhoneValidator(v); err != nil {
			return &ValidationError{Name: "emergency_contact_phone", err: fmt.Errorf(`repo: validator failed for field "Patient.emergency_contact_phone": %w`, err)}
		}
	}
	if _u.mutation.ClinicCleared() && len(_u.mutation.ClinicIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Patient.clinic"`)
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Patient.user"`)
	}
	return nil
}

func (_u *PatientUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patient.Table, patient.Columns, sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(patient.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(patient.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(patient.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FileNumber(); ok {
		_spec.SetField(patient.FieldFileNumber, field.TypeString, value)
	}
	if _u.mutation.FileNumberCleared() {
		_spec.ClearField(patient.FieldFileNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(patient.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CpfEncrypted(); ok {
		_spec.SetField(patient.FieldCpfEncrypted, field.TypeString, value)
	}
	if _u.mutation.CpfEncryptedCleared() {
		_spec.ClearField(patient.FieldCpfEncrypted, field.TypeString)
	}
	if value, ok := _u.mutation.BirthDate(); ok {
		_spec.SetField(patient.FieldBirthDate, field.TypeTime, value)
	}
	if _u.mutation.BirthDateCleared() {
		_spec.ClearField(patient.FieldBirthDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(patient.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionCount(); ok {
		_spec.SetField(patient.FieldSessionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionCount(); ok {
		_spec.AddField(patient.FieldSessionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalCancellations(); ok {
		_spec.SetField(patient.FieldTotalCancellations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalCancellations(); ok {
		_spec.AddField(patient.FieldTotalCancellations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastCancelReason(); ok {
		_spec.SetField(patient.FieldLastCancelReason, field.TypeString, value)
	}
	if _u.mutation.LastCancelReasonCleared() {
		_spec.ClearField(patient.FieldLastCancelReason, field.TypeString)
	}
	if value, ok := _u.mutation.HasDiscount(); ok {
		_spec.SetField(patient.FieldHasDiscount, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DiscountPercent(); ok {
		_spec.SetField(patient.FieldDiscountPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDiscountPercent(); ok {
		_spec.AddField(patient.FieldDiscountPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(patient.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(patient.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.ReferralSource(); ok {
		_spec.SetField(patient.FieldReferralSource, field.TypeString, value)
	}
	if _u.mutation.ReferralSourceCleared() {
		_spec.ClearField(patient.FieldReferralSource, field.TypeString)
	}
	if value, ok := _u.mutation.ChiefComplaint(); ok {
		_spec.SetField(patient.FieldChiefComplaint, field.TypeString, value)
	}
	if _u.mutation.ChiefComplaintCleared() {
		_spec.ClearField(patient.FieldChiefComplaint, field.TypeString)
	}
	if value, ok := _u.mutation.EmergencyContactName(); ok {
		_spec.SetField(patient.FieldEmergencyContactName, field.TypeString, value)
	}
	if _u.mutation.EmergencyContactNameCleared() {
		_spec.ClearField(patient.FieldEmergencyContactName, field.TypeString)
	}
	if value, ok := _u.mutation.EmergencyContactPhone(); ok {
		_spec.SetField(patient.FieldEmergencyContactPhone, field.TypeString, value)
	}
	if _u.mutation.EmergencyContactPhoneCleared() {
		_spec.ClearField(patient.FieldEmergencyContactPhone, field.TypeString)
	}
	if _u.mutation.ClinicCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   patient.ClinicTable,
			Columns: []string{patient.ClinicColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clinic.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClinicIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   patient.ClinicTable,
			Columns: []string{patient.ClinicColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clinic.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   patient.UserTable,
			Columns: []string{patient.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   patient.UserTable,
			Columns: []string{patient.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AssignedPsychologistCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   patient.AssignedPsychologistTable,
			Columns: []string{patient.AssignedPsychologistColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clinicmember.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssignedPsychologistIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   patient.AssignedPsychologistTable,
			Columns: []string{patient.AssignedPsychologistColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clinicmember.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patient.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PatientUpdateOne is the builder for updating a single Patient entity.
type PatientUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PatientMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PatientUpdateOne) SetUpdatedAt(v time.Time) *PatientUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *PatientUpdateOne) SetDeletedAt(v time.Time) *PatientUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableDeletedAt(v *time.Time) *PatientUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *PatientUpdateOne) ClearDeletedAt() *PatientUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *PatientUpdateOne) SetClinicID(v uuid.UUID) *PatientUpdateOne {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableClinicID(v *uuid.UUID) *PatientUpdateOne {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PatientUpdateOne) SetUserID(v uuid.UUID) *PatientUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableUserID(v *uuid.UUID) *PatientUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetAssignedPsychologistID sets the "assigned_psychologist_id" field.
func (_u *PatientUpdateOne) SetAssignedPsychologistID(v uuid.UUID) *PatientUpdateOne {
	_u.mutation.SetAssignedPsychologistID(v)
	return _u
}

// SetNillableAssignedPsychologistID sets the "assigned_psychologist_id" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableAssignedPsychologistID(v *uuid.UUID) *PatientUpdateOne {
	if v != nil {
		_u.SetAssignedPsychologistID(*v)
	}
	return _u
}

// ClearAssignedPsychologistID clears the value of the "assigned_psychologist_id" field.
func (_u *PatientUpdateOne) ClearAssignedPsychologistID() *PatientUpdateOne {
	_u.mutation.ClearAssignedPsychologistID()
	return _u
}

// SetFileNumber sets the "file_number" field.
func (_u *PatientUpdateOne) SetFileNumber(v string) *PatientUpdateOne {
	_u.mutation.SetFileNumber(v)
	return _u
}

// SetNillableFileNumber sets the "file_number" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableFileNumber(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetFileNumber(*v)
	}
	return _u
}

// ClearFileNumber clears the value of the "file_number" field.
func (_u *PatientUpdateOne) ClearFileNumber() *PatientUpdateOne {
	_u.mutation.ClearFileNumber()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PatientUpdateOne) SetStatus(v patient.Status) *PatientUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableStatus(v *patient.Status) *PatientUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCpfEncrypted sets the "cpf_encrypted" field.
func (_u *PatientUpdateOne) SetCpfEncrypted(v string) *PatientUpdateOne {
	_u.mutation.SetCpfEncrypted(v)
	return _u
}

// SetNillableCpfEncrypted sets the "cpf_encrypted" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableCpfEncrypted(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetCpfEncrypted(*v)
	}
	return _u
}

// ClearCpfEncrypted clears the value of the "cpf_encrypted" field.
func (_u *PatientUpdateOne) ClearCpfEncrypted() *PatientUpdateOne {
	_u.mutation.ClearCpfEncrypted()
	return _u
}

// SetBirthDate sets the "birth_date" field.
func (_u *PatientUpdateOne) SetBirthDate(v time.Time) *PatientUpdateOne {
	_u.mutation.SetBirthDate(v)
	return _u
}

// SetNillableBirthDate sets the "birth_date" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableBirthDate(v *time.Time) *PatientUpdateOne {
	if v != nil {
		_u.SetBirthDate(*v)
	}
	return _u
}

// ClearBirthDate clears the value of the "birth_date" field.
func (_u *PatientUpdateOne) ClearBirthDate() *PatientUpdateOne {
	_u.mutation.ClearBirthDate()
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *PatientUpdateOne) SetTimezone(v string) *PatientUpdateOne {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableTimezone(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetSessionCount sets the "session_count" field.
func (_u *PatientUpdateOne) SetSessionCount(v int) *PatientUpdateOne {
	_u.mutation.ResetSessionCount()
	_u.mutation.SetSessionCount(v)
	return _u
}

// SetNillableSessionCount sets the "session_count" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableSessionCount(v *int) *PatientUpdateOne {
	if v != nil {
		_u.SetSessionCount(*v)
	}
	return _u
}

// AddSessionCount adds value to the "session_count" field.
func (_u *PatientUpdateOne) AddSessionCount(v int) *PatientUpdateOne {
	_u.mutation.AddSessionCount(v)
	return _u
}

// SetTotalCancellations sets the "total_cancellations" field.
func (_u *PatientUpdateOne) SetTotalCancellations(v int) *PatientUpdateOne {
	_u.mutation.ResetTotalCancellations()
	_u.mutation.SetTotalCancellations(v)
	return _u
}

// SetNillableTotalCancellations sets the "total_cancellations" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableTotalCancellations(v *int) *PatientUpdateOne {
	if v != nil {
		_u.SetTotalCancellations(*v)
	}
	return _u
}

// AddTotalCancellations adds value to the "total_cancellations" field.
func (_u *PatientUpdateOne) AddTotalCancellations(v int) *PatientUpdateOne {
	_u.mutation.AddTotalCancellations(v)
	return _u
}

// SetLastCancelReason sets the "last_cancel_reason" field.
func (_u *PatientUpdateOne) SetLastCancelReason(v string) *PatientUpdateOne {
	_u.mutation.SetLastCancelReason(v)
	return _u
}

// SetNillableLastCancelReason sets the "last_cancel_reason" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableLastCancelReason(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetLastCancelReason(*v)
	}
	return _u
}

// ClearLastCancelReason clears the value of the "last_cancel_reason" field.
func (_u *PatientUpdateOne) ClearLastCancelReason() *PatientUpdateOne {
	_u.mutation.ClearLastCancelReason()
	return _u
}

// SetHasDiscount sets the "has_discount" field.
func (_u *PatientUpdateOne) SetHasDiscount(v bool) *PatientUpdateOne {
	_u.mutation.SetHasDiscount(v)
	return _u
}

// SetNillableHasDiscount sets the "has_discount" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableHasDiscount(v *bool) *PatientUpdateOne {
	if v != nil {
		_u.SetHasDiscount(*v)
	}
	return _u
}

// SetDiscountPercent sets the "discount_percent" field.
func (_u *PatientUpdateOne) SetDiscountPercent(v int) *PatientUpdateOne {
	_u.mutation.ResetDiscountPercent()
	_u.mutation.SetDiscountPercent(v)
	return _u
}

// SetNillableDiscountPercent sets the "discount_percent" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableDiscountPercent(v *int) *PatientUpdateOne {
	if v != nil {
		_u.SetDiscountPercent(*v)
	}
	return _u
}

// AddDiscountPercent adds value to the "discount_percent" field.
func (_u *PatientUpdateOne) AddDiscountPercent(v int) *PatientUpdateOne {
	_u.mutation.AddDiscountPercent(v)
	return _u
}

// SetNotes sets the "notes" field.
func (_u *PatientUpdateOne) SetNotes(v string) *PatientUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableNotes(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *PatientUpdateOne) ClearNotes() *PatientUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetReferralSource sets the "referral_source" field.
func (_u *PatientUpdateOne) SetReferralSource(v string) *PatientUpdateOne {
	_u.mutation.SetReferralSource(v)
	return _u
}

// SetNillableReferralSource sets the "referral_source" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableReferralSource(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetReferralSource(*v)
	}
	return _u
}

// ClearReferralSource clears the value of the "referral_source" field.
func (_u *PatientUpdateOne) ClearReferralSource() *PatientUpdateOne {
	_u.mutation.ClearReferralSource()
	return _u
}

// SetChiefComplaint sets the "chief_complaint" field.
func (_u *PatientUpdateOne) SetChiefComplaint(v string) *PatientUpdateOne {
	_u.mutation.SetChiefComplaint(v)
	return _u
}

// SetNillableChiefComplaint sets the "chief_complaint" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableChiefComplaint(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetChiefComplaint(*v)
	}
	return _u
}

// ClearChiefComplaint clears the value of the "chief_complaint" field.
func (_u *PatientUpdateOne) ClearChiefComplaint() *PatientUpdateOne {
	_u.mutation.ClearChiefComplaint()
	return _u
}

// SetEmergencyContactName sets the "emergency_contact_name" field.
func (_u *PatientUpdateOne) SetEmergencyContactName(v string) *PatientUpdateOne {
	_u.mutation.SetEmergencyContactName(v)
	return _u
}

// SetNillableEmergencyContactName sets the "emergency_contact_name" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableEmergencyContactName(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetEmergencyContactName(*v)
	}
	return _u
}

// ClearEmergencyContactName clears the value of the "emergency_contact_name" field.
func (_u *PatientUpdateOne) ClearEmergencyContactName() *PatientUpdateOne {
	_u.mutation.ClearEmergencyContactName()
	return _u
}

// SetEmergencyContactPhone sets the "emergency_contact_phone" field.
func (_u *PatientUpdateOne) SetEmergencyContactPhone(v string) *PatientUpdateOne {
	_u.mutation.SetEmergencyContactPhone(v)
	return _u
}

// SetNillableEmergencyContactPhone sets the "emergency_contact_phone" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableEmergencyContactPhone(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetEmergencyContactPhone(*v)
	}
	return _u
}

// ClearEmergencyContactPhone clears the value of the "emergency_contact_phone" field.
func (_u *PatientUpdateOne) ClearEmergencyContactPhone() *PatientUpdateOne {
	_u.mutation.ClearEmergencyContactPhone()
	return _u
}

// SetClinic sets the "clinic" edge to the Clinic entity.
func (_u *PatientUpdateOne) SetClinic(v *Clinic) *PatientUpdateOne {
	return _u.SetClinicID(v.ID)
}

// SetUser sets the "user" edge to the User entity.
func (_u *PatientUpdateOne) SetUser(v *User) *PatientUpdateOne {
	return _u.SetUserID(v.ID)
}

// SetAssignedPsychologist sets the "assigned_psychologist" edge to the ClinicMember entity.
func (_u *PatientUpdateOne) SetAssignedPsychologist(v *ClinicMember) *PatientUpdateOne {
	return _u.SetAssignedPsychologistID(v.ID)
}

// Mutation returns the PatientMutation object of the builder.
func (_u *PatientUpdateOne) Mutation() *PatientMutation {
	return _u.mutation
}

// ClearClinic clears the "clinic" edge to the Clinic entity.
func (_u *PatientUpdateOne) ClearClinic() *PatientUpdateOne {
	_u.mutation.ClearClinic()
	return _u
}

// ClearUser clears the "user" edge to the User entity.
func (_u *PatientUpdateOne) ClearUser() *PatientUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// ClearAssignedPsychologist clears the "assigned_psychologist" edge to the ClinicMember entity.
func (_u *PatientUpdateOne) ClearAssignedPsychologist() *PatientUpdateOne {
	_u.mutation.ClearAssignedPsychologist()
	return _u
}

// Where appends a list predicates to the PatientUpdate builder.
func (_u *PatientUpdateOne) Where(ps ...predicate.Patient) *PatientUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PatientUpdateOne) Select(field string, fields ...string) *PatientUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Patient entity.
func (_u *PatientUpdateOne) Save(ctx context.Context) (*Patient, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientUpdateOne) SaveX(ctx context.Context) *Patient {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PatientUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PatientUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := patient.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatientUpdateOne) check() error {
	if v, ok := _u.mutation.FileNumber(); ok {
		if err := patient.FileNumberValidator(v); err != nil {
			return &ValidationError{Name: "file_number", err: fmt.Errorf(`repo: validator failed for field "Patient.file_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := patient.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Patient.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Timezone(); ok {
		if err := patient.TimezoneValidator(v); err != nil {
			return &ValidationError{Name: "timezone", err: fmt.Errorf(`repo: validator failed for field "Patient.timezone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReferralSource(); ok {
		if err := patient.ReferralSourceValidator(v); err != nil {
			return &ValidationError{Name: "referral_source", err: fmt.Errorf(`repo: validator failed for field "Patient.referral_source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EmergencyContactName(); ok {
		if err := patient.EmergencyContactNameValidator(v); err != nil {
			return &ValidationError{Name: "emergency_contact_name", err: fmt.Errorf(`repo: validator failed for field "Patient.emergency_contact_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EmergencyContactPhone(); ok {
		if err := patient.EmergencyContactPhoneValidator(v); err != nil {
			return &ValidationError{Name: "emergency_contact_phone", err: fmt.Errorf(`repo: validator failed for field "Patient.emergency_contact_phone": %w`, err)}
		}
	}
	if _u.mutation.ClinicCleared() && len(_u.mutation.ClinicIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Patient.clinic"`)
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Patient.user"`)
	}
	return nil
}

func (_u *PatientUpdateOne) sqlSave(ctx context.Context) (_node *Patient, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patient.Table, patient.Columns, sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Patient.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, patient.FieldID)
		for _, f := range fields {
			if !patient.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != patient.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(patient.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(patient.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(patient.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FileNumber(); ok {
		_spec.SetField(patient.FieldFileNumber, field.TypeString, value)
	}
	if _u.mutation.FileNumberCleared() {
		_spec.ClearField(patient.FieldFileNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(patient.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CpfEncrypted(); ok {
		_spec.SetField(patient.FieldCpfEncrypted, field.TypeString, value)
	}
	if _u.mutation.CpfEncryptedCleared() {
		_spec.ClearField(patient.FieldCpfEncrypted, field.TypeString)
	}
	if value, ok := _u.mutation.BirthDate(); ok {
		_spec.SetField(patient.FieldBirthDate, field.TypeTime, value)
	}
	if _u.mutation.BirthDateCleared() {
		_spec.ClearField(patient.FieldBirthDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(patient.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionCount(); ok {
		_spec.SetField(patient.FieldSessionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionCount(); ok {
		_spec.AddField(patient.FieldSessionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalCancellations(); ok {
		_spec.SetField(patient.FieldTotalCancellations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalCancellations(); ok {
		_spec.AddField(patient.FieldTotalCancellations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastCancelReason(); ok {
		_spec.SetField(patient.FieldLastCancelReason, field.TypeString, value)
	}
	if _u.mutation.LastCancelReasonCleared() {
		_spec.ClearField(patient.FieldLastCancelReason, field.TypeString)
	}
	if value, ok := _u.mutation.HasDiscount(); ok {
		_spec.SetField(patient.FieldHasDiscount, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DiscountPercent(); ok {
		_spec.SetField(patient.FieldDiscountPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDiscountPercent(); ok {
		_spec.AddField(patient.FieldDiscountPercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(patient.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(patient.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.ReferralSource(); ok {
		_spec.SetField(patient.FieldReferralSource, field.TypeString, value)
	}
	if _u.mutation.ReferralSourceCleared() {
		_spec.ClearField(patient.FieldReferralSource, field.TypeString)
	}
	if value, ok := _u.mutation.ChiefComplaint(); ok {
		_spec.SetField(patient.FieldChiefComplaint, field.TypeString, value)
	}
	if _u.mutation.ChiefComplaintCleared() {
		_spec.ClearField(patient.FieldChiefComplaint, field.TypeString)
	}
	if value, ok := _u.mutation.EmergencyContactName(); ok {
		_spec.SetField(patient.FieldEmergencyContactName, field.TypeString, value)
	}
	if _u.mutation.EmergencyContactNameCleared() {
		_spec.ClearField(patient.FieldEmergencyContactName, field.TypeString)
	}
	if value, ok := _u.mutation.EmergencyContactPhone(); ok {
		_spec.SetField(patient.FieldEmergencyContactPhone, field.TypeString, value)
	}
	if _u.mutation.EmergencyContactPhoneCleared() {
		_spec.ClearField(patient.FieldEmergencyContactPhone, field.TypeString)
	}
	if _u.mutation.ClinicCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   patient.ClinicTable,
			Columns: []string{patient.ClinicColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clinic.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClinicIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   patient.ClinicTable,
			Columns: []string{patient.ClinicColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clinic.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   patient.UserTable,
			Columns: []string{patient.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   patient.UserTable,
			Columns: []string{patient.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AssignedPsychologistCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   patient.AssignedPsychologistTable,
			Columns: []string{patient.AssignedPsychologistColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clinicmember.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssignedPsychologistIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   patient.AssignedPsychologistTable,
			Columns: []string{patient.AssignedPsychologistColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clinicmember.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Patient{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patient.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
