// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/amparasaude/ampara_backend/internal/repo/clinic"
	"github.com/amparasaude/ampara_backend/internal/repo/clinicmember"
	"github.com/amparasaude/ampara_backend/internal/repo/patient"
	"github.com/amparasaude/ampara_backend/internal/repo/user"
	"github.com/google/uuid"
)

// PatientCreate is the builder for creating a Patient entity.
type PatientCreate struct {
	config
	mutation *PatientMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *PatientCreate) SetCreatedAt(v time.Time) *PatientCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PatientCreate) SetNillableCreatedAt(v *time.Time) *PatientCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PatientCreate) SetUpdatedAt(v time.Time) *PatientCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PatientCreate) SetNillableUpdatedAt(v *time.Time) *PatientCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *PatientCreate) SetDeletedAt(v time.Time) *PatientCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *PatientCreate) SetNillableDeletedAt(v *time.Time) *PatientCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetClinicID sets the "clinic_id" field.
func (_c *PatientCreate) SetClinicID(v uuid.UUID) *PatientCreate {
	_c.mutation.SetClinicID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *PatientCreate) SetUserID(v uuid.UUID) *PatientCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetAssignedPsychologistID sets the "assigned_psychologist_id" field.
func (_c *PatientCreate) SetAssignedPsychologistID(v uuid.UUID) *PatientCreate {
	_c.mutation.SetAssignedPsychologistID(v)
	return _c
}

// SetNillableAssignedPsychologistID sets the "assigned_psychologist_id" field if the given value is not nil.
func (_c *PatientCreate) SetNillableAssignedPsychologistID(v *uuid.UUID) *PatientCreate {
	if v != nil {
		_c.SetAssignedPsychologistID(*v)
	}
	return _c
}

// SetFileNumber sets the "file_number" field.
func (_c *PatientCreate) SetFileNumber(v string) *PatientCreate {
	_c.mutation.SetFileNumber(v)
	return _c
}

// SetNillableFileNumber sets the "file_number" field if the given value is not nil.
func (_c *PatientCreate) SetNillableFileNumber(v *string) *PatientCreate {
	if v != nil {
		_c.SetFileNumber(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *PatientCreate) SetStatus(v patient.Status) *PatientCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PatientCreate) SetNillableStatus(v *patient.Status) *PatientCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCpfEncrypted sets the "cpf_encrypted" field.
func (_c *PatientCreate) SetCpfEncrypted(v string) *PatientCreate {
	_c.mutation.SetCpfEncrypted(v)
	return _c
}

// SetNillableCpfEncrypted sets the "cpf_encrypted" field if the given value is not nil.
func (_c *PatientCreate) SetNillableCpfEncrypted(v *string) *PatientCreate {
	if v != nil {
		_c.SetCpfEncrypted(*v)
	}
	return _c
}

// SetBirthDate sets the "birth_date" field.
func (_c *PatientCreate) SetBirthDate(v time.Time) *PatientCreate {
	_c.mutation.SetBirthDate(v)
	return _c
}

// SetNillableBirthDate sets the "birth_date" field if the given value is not nil.
func (_c *PatientCreate) SetNillableBirthDate(v *time.Time) *PatientCreate {
	if v != nil {
		_c.SetBirthDate(*v)
	}
	return _c
}

// SetTimezone sets the "timezone" field.
func (_c *PatientCreate) SetTimezone(v string) *PatientCreate {
	_c.mutation.SetTimezone(v)
	return _c
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_c *PatientCreate) SetNillableTimezone(v *string) *PatientCreate {
	if v != nil {
		_c.SetTimezone(*v)
	}
	return _c
}

// SetSessionCount sets the "session_count" field.
func (_c *PatientCreate) SetSessionCount(v int) *PatientCreate {
	_c.mutation.SetSessionCount(v)
	return _c
}

// SetNillableSessionCount sets the "session_count" field if the given value is not nil.
func (_c *PatientCreate) SetNillableSessionCount(v *int) *PatientCreate {
	if v != nil {
		_c.SetSessionCount(*v)
	}
	return _c
}

// SetTotalCancellations sets the "total_cancellations" field.
func (_c *PatientCreate) SetTotalCancellations(v int) *PatientCreate {
	_c.mutation.SetTotalCancellations(v)
	return _c
}

// SetNillableTotalCancellations sets the "total_cancellations" field if the given value is not nil.
func (_c *PatientCreate) SetNillableTotalCancellations(v *int) *PatientCreate {
	if v != nil {
		_c.SetTotalCancellations(*v)
	}
	return _c
}

// SetLastCancelReason sets the "last_cancel_reason" field.
func (_c *PatientCreate) SetLastCancelReason(v string) *PatientCreate {
	_c.mutation.SetLastCancelReason(v)
	return _c
}

// SetNillableLastCancelReason sets the "last_cancel_reason" field if the given value is not nil.
func (_c *PatientCreate) SetNillableLastCancelReason(v *string) *PatientCreate {
	if v != nil {
		_c.SetLastCancelReason(*v)
	}
	return _c
}

// SetHasDiscount sets the "has_discount" field.
func (_c *PatientCreate) SetHasDiscount(v bool) *PatientCreate {
	_c.mutation.SetHasDiscount(v)
	return _c
}

// SetNillableHasDiscount sets the "has_discount" field if the given value is not nil.
func (_c *PatientCreate) SetNillableHasDiscount(v *bool) *PatientCreate {
	if v != nil {
		_c.SetHasDiscount(*v)
	}
	return _c
}

// SetDiscountPercent sets the "discount_percent" field.
func (_c *PatientCreate) SetDiscountPercent(v int) *PatientCreate {
	_c.mutation.SetDiscountPercent(v)
	return _c
}

// SetNillableDiscountPercent sets the "discount_percent" field if the given value is not nil.
func (_c *PatientCreate) SetNillableDiscountPercent(v *int) *PatientCreate {
	if v != nil {
		_c.SetDiscountPercent(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *PatientCreate) SetNotes(v string) *PatientCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *PatientCreate) SetNillableNotes(v *string) *PatientCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetReferralSource sets the "referral_source" field.
func (_c *PatientCreate) SetReferralSource(v string) *PatientCreate {
	_c.mutation.SetReferralSource(v)
	return _c
}

// SetNillableReferralSource sets the "referral_source" field if the given value is not nil.
func (_c *PatientCreate) SetNillableReferralSource(v *string) *PatientCreate {
	if v != nil {
		_c.SetReferralSource(*v)
	}
	return _c
}

// SetChiefComplaint sets the "chief_complaint" field.
func (_c *PatientCreate) SetChiefComplaint(v string) *PatientCreate {
	_c.mutation.SetChiefComplaint(v)
	return _c
}

// SetNillableChiefComplaint sets the "chief_complaint" field if the given value is not nil.
func (_c *PatientCreate) SetNillableChiefComplaint(v *string) *PatientCreate {
	if v != nil {
		_c.SetChiefComplaint(*v)
	}
	return _c
}

// SetEmergencyContactName sets the "emergency_contact_name" field.
func (_c *PatientCreate) SetEmergencyContactName(v string) *PatientCreate {
	_c.mutation.SetEmergencyContactName(v)
	return _c
}

// SetNillableEmergencyContactName sets the "emergency_contact_name" field if the given value is not nil.
func (_c *PatientCreate) SetNillableEmergencyContactName(v *string) *PatientCreate {
	if v != nil {
		_c.SetEmergencyContactName(*v)
	}
	return _c
}

// SetEmergencyContactPhone sets the "emergency_contact_phone" field.
func (_c *PatientCreate) SetEmergencyContactPhone(v string) *PatientCreate {
	_c.mutation.SetEmergencyContactPhone(v)
	return _c
}

// SetNillableEmergencyContactPhone sets the "emergency_contact_phone" field if the given value is not nil.
func (_c *PatientCreate) SetNillableEmergencyContactPhone(v *string) *PatientCreate {
	if v != nil {
		_c.SetEmergencyContactPhone(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PatientCreate) SetID(v uuid.UUID) *PatientCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PatientCreate) SetNillableID(v *uuid.UUID) *PatientCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetClinic sets the "clinic" edge to the Clinic entity.
func (_c *PatientCreate) SetClinic(v *Clinic) *PatientCreate {
	return _c.SetClinicID(v.ID)
}

// SetUser sets the "user" edge to the User entity.
func (_c *PatientCreate) SetUser(v *User) *PatientCreate {
	return _c.SetUserID(v.ID)
}

// SetAssignedPsychologist sets the "assigned_psychologist" edge to the ClinicMember entity.
func (_c *PatientCreate) SetAssignedPsychologist(v *ClinicMember) *PatientCreate {
	return _c.SetAssignedPsychologistID(v.ID)
}

// Mutation returns the PatientMutation object of the builder.
func (_c *PatientCreate) Mutation() *PatientMutation {
	return _c.mutation
}

// Save creates the Patient in the database.
func (_c *PatientCreate) Save(ctx context.Context) (*Patient, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PatientCreate) SaveX(ctx context.Context) *Patient {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatientCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatientCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PatientCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := patient.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := patient.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := patient.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Timezone(); !ok {
		v := patient.DefaultTimezone
		_c.mutation.SetTimezone(v)
	}
	if _, ok := _c.mutation.SessionCount(); !ok {
		v := patient.DefaultSessionCount
		_c.mutation.SetSessionCount(v)
	}
	if _, ok := _c.mutation.TotalCancellations(); !ok {
		v := patient.DefaultTotalCancellations
		_c.mutation.SetTotalCancellations(v)
	}
	if _, ok := _c.mutation.HasDiscount(); !ok {
		v := patient.DefaultHasDiscount
		_c.mutation.SetHasDiscount(v)
	}
	if _, ok := _c.mutation.DiscountPercent(); !ok {
		v := patient.DefaultDiscountPercent
		_c.mutation.SetDiscountPercent(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := patient.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PatientCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Patient.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Patient.updated_at"`)}
	}
	if _, ok := _c.mutation.ClinicID(); !ok {
		return &ValidationError{Name: "clinic_id", err: errors.New(`repo: missing required field "Patient.clinic_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`repo: missing required field "Patient.user_id"`)}
	}
	if v, ok := _c.mutation.FileNumber(); ok {
		if err := patient.FileNumberValidator(v); err != nil {
			return &ValidationError{Name: "file_number", err: fmt.Errorf(`repo: validator failed for field "Patient.file_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "Patient.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := patient.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Patient.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Timezone(); !ok {
		return &ValidationError{Name: "timezone", err: errors.New(`repo: missing required field "Patient.timezone"`)}
	}
	if v, ok := _c.mutation.Timezone(); ok {
		if err := patient.TimezoneValidator(v); err != nil {
			return &ValidationError{Name: "timezone", err: fmt.Errorf(`repo: validator failed for field "Patient.timezone": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionCount(); !ok {
		return &ValidationError{Name: "session_count", err: errors.New(`repo: missing required field "Patient.session_count"`)}
	}
	if _, ok := _c.mutation.TotalCancellations(); !ok {
		return &ValidationError{Name: "total_cancellations", err: errors.New(`repo: missing required field "Patient.total_cancellations"`)}
	}
	if _, ok := _c.mutation.HasDiscount(); !ok {
		return &ValidationError{Name: "has_discount", err: errors.New(`repo: missing required field "Patient.has_discount"`)}
	}
	if _, ok := _c.mutation.DiscountPercent(); !ok {
		return &ValidationError{Name: "discount_percent", err: errors.New(`repo: missing required field "Patient.discount_percent"`)}
	}
	if v, ok := _c.mutation.ReferralSource(); ok {
		if err := patient.ReferralSourceValidator(v); err != nil {
			return &ValidationError{Name: "referral_source", err: fmt.Errorf(`repo: validator failed for field "Patient.referral_source": %w`, err)}
		}
	}
	if v, ok := _c.mutation.EmergencyContactName(); ok {
		if err := patient.EmergencyContactNameValidator(v); err != nil {
			return &ValidationError{Name: "emergency_contact_name", err: fmt.Errorf(`repo: validator failed for field "Patient.emergency_contact_name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.EmergencyContactPhone(); ok {
		if err := patient.EmergencyContactPhoneValidator(v); err != nil {
			return &ValidationError{Name: "emergency_contact_phone", err: fmt.Errorf(`repo: validator failed for field "Patient.emergency_contact_phone": %w`, err)}
		}
	}
	if len(_c.mutation.ClinicIDs()) == 0 {
		return &ValidationError{Name: "clinic", err: errors.New(`repo: missing required edge "Patient.clinic"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`repo: missing required edge "Patient.user"`)}
	}
	return nil
}

func (_c *PatientCreate) sqlSave(ctx context.Context) (*Patient, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PatientCreate) createSpec() (*Patient, *sqlgraph.CreateSpec) {
	var (
		_node = &Patient{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(patient.Table, sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(patient.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(patient.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(patient.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.FileNumber(); ok {
		_spec.SetField(patient.FieldFileNumber, field.TypeString, value)
		_node.FileNumber = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(patient.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CpfEncrypted(); ok {
		_spec.SetField(patient.FieldCpfEncrypted, field.TypeString, value)
		_node.CpfEncrypted = &value
	}
	if value, ok := _c.mutation.BirthDate(); ok {
		_spec.SetField(patient.FieldBirthDate, field.TypeTime, value)
		_node.BirthDate = &value
	}
	if value, ok := _c.mutation.Timezone(); ok {
		_spec.SetField(patient.FieldTimezone, field.TypeString, value)
		_node.Timezone = value
	}
	if value, ok := _c.mutation.SessionCount(); ok {
		_spec.SetField(patient.FieldSessionCount, field.TypeInt, value)
		_node.SessionCount = value
	}
	if value, ok := _c.mutation.TotalCancellations(); ok {
		_spec.SetField(patient.FieldTotalCancellations, field.TypeInt, value)
		_node.TotalCancellations = value
	}
	if value, ok := _c.mutation.LastCancelReason(); ok {
		_spec.SetField(patient.FieldLastCancelReason, field.TypeString, value)
		_node.LastCancelReason = &value
	}
	if value, ok := _c.mutation.HasDiscount(); ok {
		_spec.SetField(patient.FieldHasDiscount, field.TypeBool, value)
		_node.HasDiscount = value
	}
	if value, ok := _c.mutation.DiscountPercent(); ok {
		_spec.SetField(patient.FieldDiscountPercent, field.TypeInt, value)
		_node.DiscountPercent = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(patient.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if value, ok := _c.mutation.ReferralSource(); ok {
		_spec.SetField(patient.FieldReferralSource, field.TypeString, value)
		_node.ReferralSource = &value
	}
	if value, ok := _c.mutation.ChiefComplaint(); ok {
		_spec.SetField(patient.FieldChiefComplaint, field.TypeString, value)
		_node.ChiefComplaint = &value
	}
	if value, ok := _c.mutation.EmergencyContactName(); ok {
		_spec.SetField(patient.FieldEmergencyContactName, field.TypeString, value)
		_node.EmergencyContactName = &value
	}
	if value, ok := _c.mutation.EmergencyContactPhone(); ok {
		_spec.SetField(patient.FieldEmergencyContactPhone, field.TypeString, value)
		_node.EmergencyContactPhone = &value
	}
	if nodes := _c.mutation.ClinicIDs(); len(nodes) > 0 {
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
		_node.ClinicID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
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
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AssignedPsychologistIDs(); len(nodes) > 0 {
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
		_node.AssignedPsychologistID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Patient.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PatientUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PatientCreate) OnConflict(opts ...sql.ConflictOption) *PatientUpsertOne {
	_c.conflict = opts
	return &PatientUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Patient.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PatientCreate) OnConflictColumns(columns ...string) *PatientUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PatientUpsertOne{
		create: _c,
	}
}

type (
	// PatientUpsertOne is the builder for "upsert"-ing
	//  one Patient node.
	PatientUpsertOne struct {
		create *PatientCreate
	}

	// PatientUpsert is the "OnConflict" setter.
	PatientUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *PatientUpsert) SetUpdatedAt(v time.Time) *PatientUpsert {
	u.Set(patient.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PatientUpsert) UpdateUpdatedAt() *PatientUpsert {
	u.SetExcluded(patient.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *PatientUpsert) SetDeletedAt(v time.Time) *PatientUpsert {
	u.Set(patient.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *PatientUpsert) UpdateDeletedAt() *PatientUpsert {
	u.SetExcluded(patient.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *PatientUpsert) ClearDeletedAt() *PatientUpsert {
	u.SetNull(patient.FieldDeletedAt)
	return u
}

// SetClinicID sets the "clinic_id" field.
func (u *PatientUpsert) SetClinicID(v uuid.UUID) *PatientUpsert {
	u.Set(patient.FieldClinicID, v)
	return u
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *PatientUpsert) UpdateClinicID() *PatientUpsert {
	u.SetExcluded(patient.FieldClinicID)
	return u
}

// SetUserID sets the "user_id" field.
func (u *PatientUpsert) SetUserID(v uuid.UUID) *PatientUpsert {
	u.Set(patient.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PatientUpsert) UpdateUserID() *PatientUpsert {
	u.SetExcluded(patient.FieldUserID)
	return u
}

// SetAssignedPsychologistID sets the "assigned_psychologist_id" field.
func (u *PatientUpsert) SetAssignedPsychologistID(v uuid.UUID) *PatientUpsert {
	u.Set(patient.FieldAssignedPsychologistID, v)
	return u
}

// UpdateAssignedPsychologistID sets the "assigned_psychologist_id" field to the value that was provided on create.
func (u *PatientUpsert) UpdateAssignedPsychologistID() *PatientUpsert {
	u.SetExcluded(patient.FieldAssignedPsychologistID)
	return u
}

// ClearAssignedPsychologistID clears the value of the "assigned_psychologist_id" field.
func (u *PatientUpsert) ClearAssignedPsychologistID() *PatientUpsert {
	u.SetNull(patient.FieldAssignedPsychologistID)
	return u
}

// SetFileNumber sets the "file_number" field.
func (u *PatientUpsert) SetFileNumber(v string) *PatientUpsert {
	u.Set(patient.FieldFileNumber, v)
	return u
}

// UpdateFileNumber sets the "file_number" field to the value that was provided on create.
func (u *PatientUpsert) UpdateFileNumber() *PatientUpsert {
	u.SetExcluded(patient.FieldFileNumber)
	return u
}

// ClearFileNumber clears the value of the "file_number" field.
func (u *PatientUpsert) ClearFileNumber() *PatientUpsert {
	u.SetNull(patient.FieldFileNumber)
	return u
}

// SetStatus sets the "status" field.
func (u *PatientUpsert) SetStatus(v patient.Status) *PatientUpsert {
	u.Set(patient.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PatientUpsert) UpdateStatus() *PatientUpsert {
	u.SetExcluded(patient.FieldStatus)
	return u
}

// SetCpfEncrypted sets the "cpf_encrypted" field.
func (u *PatientUpsert) SetCpfEncrypted(v string) *PatientUpsert {
	u.Set(patient.FieldCpfEncrypted, v)
	return u
}

// UpdateCpfEncrypted sets the "cpf_encrypted" field to the value that was provided on create.
func (u *PatientUpsert) UpdateCpfEncrypted() *PatientUpsert {
	u.SetExcluded(patient.FieldCpfEncrypted)
	return u
}

// ClearCpfEncrypted clears the value of the "cpf_encrypted" field.
func (u *PatientUpsert) ClearCpfEncrypted() *PatientUpsert {
	u.SetNull(patient.FieldCpfEncrypted)
	return u
}

// SetBirthDate sets the "birth_date" field.
func (u *PatientUpsert) SetBirthDate(v time.Time) *PatientUpsert {
	u.Set(patient.FieldBirthDate, v)
	return u
}

// UpdateBirthDate sets the "birth_date" field to the value that was provided on create.
func (u *PatientUpsert) UpdateBirthDate() *PatientUpsert {
	u.SetExcluded(patient.FieldBirthDate)
	return u
}

// ClearBirthDate clears the value of the "birth_date" field.
func (u *PatientUpsert) ClearBirthDate() *PatientUpsert {
	u.SetNull(patient.FieldBirthDate)
	return u
}

// SetTimezone sets the "timezone" field.
func (u *PatientUpsert) SetTimezone(v string) *PatientUpsert {
	u.Set(patient.FieldTimezone, v)
	return u
}

// UpdateTimezone sets the "timezone" field to the value that was provided on create.
func (u *PatientUpsert) UpdateTimezone() *PatientUpsert {
	u.SetExcluded(patient.FieldTimezone)
	return u
}

// SetSessionCount sets the "session_count" field.
func (u *PatientUpsert) SetSessionCount(v int) *PatientUpsert {
	u.Set(patient.FieldSessionCount, v)
	return u
}

// UpdateSessionCount sets the "session_count" field to the value that was provided on create.
func (u *PatientUpsert) UpdateSessionCount() *PatientUpsert {
	u.SetExcluded(patient.FieldSessionCount)
	return u
}

// AddSessionCount adds v to the "session_count" field.
func (u *PatientUpsert) AddSessionCount(v int) *PatientUpsert {
	u.Add(patient.FieldSessionCount, v)
	return u
}

// SetTotalCancellations sets the "total_cancellations" field.
func (u *PatientUpsert) SetTotalCancellations(v int) *PatientUpsert {
	u.Set(patient.FieldTotalCancellations, v)
	return u
}

// UpdateTotalCancellations sets the "total_cancellations" field to the value that was provided on create.
func (u *PatientUpsert) UpdateTotalCancellations() *PatientUpsert {
	u.SetExcluded(patient.FieldTotalCancellations)
	return u
}

// AddTotalCancellations adds v to the "total_cancellations" field.
func (u *PatientUpsert) AddTotalCancellations(v int) *PatientUpsert {
	u.Add(patient.FieldTotalCancellations, v)
	return u
}

// SetLastCancelReason sets the "last_cancel_reason" field.
func (u *PatientUpsert) SetLastCancelReason(v string) *PatientUpsert {
	u.Set(patient.FieldLastCancelReason, v)
	return u
}

// UpdateLastCancelReason sets the "last_cancel_reason" field to the value that was provided on create.
func (u *PatientUpsert) UpdateLastCancelReason() *PatientUpsert {
	u.SetExcluded(patient.FieldLastCancelReason)
	return u
}

// ClearLastCancelReason clears the value of the "last_cancel_reason" field.
func (u *PatientUpsert) ClearLastCancelReason() *PatientUpsert {
	u.SetNull(patient.FieldLastCancelReason)
	return u
}

// SetHasDiscount sets the "has_discount" field.
func (u *PatientUpsert) SetHasDiscount(v bool) *PatientUpsert {
	u.Set(patient.FieldHasDiscount, v)
	return u
}

// UpdateHasDiscount sets the "has_discount" field to the value that was provided on create.
func (u *PatientUpsert) UpdateHasDiscount() *PatientUpsert {
	u.SetExcluded(patient.FieldHasDiscount)
	return u
}

// SetDiscountPercent sets the "discount_percent" field.
func (u *PatientUpsert) SetDiscountPercent(v int) *PatientUpsert {
	u.Set(patient.FieldDiscountPercent, v)
	return u
}

// UpdateDiscountPercent sets the "discount_percent" field to the value that was provided on create.
func (u *PatientUpsert) UpdateDiscountPercent() *PatientUpsert {
	u.SetExcluded(patient.FieldDiscountPercent)
	return u
}

// AddDiscountPercent adds v to the "discount_percent" field.
func (u *PatientUpsert) AddDiscountPercent(v int) *PatientUpsert {
	u.Add(patient.FieldDiscountPercent, v)
	return u
}

// SetNotes sets the "notes" field.
func (u *PatientUpsert) SetNotes(v string) *PatientUpsert {
	u.Set(patient.FieldNotes, v)
	return u
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *PatientUpsert) UpdateNotes() *PatientUpsert {
	u.SetExcluded(patient.FieldNotes)
	return u
}

// ClearNotes clears the value of the "notes" field.
func (u *PatientUpsert) ClearNotes() *PatientUpsert {
	u.SetNull(patient.FieldNotes)
	return u
}

// SetReferralSource sets the "referral_source" field.
func (u *PatientUpsert) SetReferralSource(v string) *PatientUpsert {
	u.Set(patient.FieldReferralSource, v)
	return u
}

// UpdateReferralSource sets the "referral_source" field to the value that was provided on create.
func (u *PatientUpsert) UpdateReferralSource() *PatientUpsert {
	u.SetExcluded(patient.FieldReferralSource)
	return u
}

// ClearReferralSource clears the value of the "referral_source" field.
func (u *PatientUpsert) ClearReferralSource() *PatientUpsert {
	u.SetNull(patient.FieldReferralSource)
	return u
}

// SetChiefComplaint sets the "chief_complaint" field.
func (u *PatientUpsert) SetChiefComplaint(v string) *PatientUpsert {
	u.Set(patient.FieldChiefComplaint, v)
	return u
}

// UpdateChiefComplaint sets the "chief_complaint" field to the value that was provided on create.
func (u *PatientUpsert) UpdateChiefComplaint() *PatientUpsert {
	u.SetExcluded(patient.FieldChiefComplaint)
	return u
}

// ClearChiefComplaint clears the value of the "chief_complaint" field.
func (u *PatientUpsert) ClearChiefComplaint() *PatientUpsert {
	u.SetNull(patient.FieldChiefComplaint)
	return u
}

// SetEmergencyContactName sets the "emergency_contact_name" field.
func (u *PatientUpsert) SetEmergencyContactName(v string) *PatientUpsert {
	u.Set(patient.FieldEmergencyContactName, v)
	return u
}

// UpdateEmergencyContactName sets the "emergency_contact_name" field to the value that was provided on create.
func (u *PatientUpsert) UpdateEmergencyContactName() *PatientUpsert {
	u.SetExcluded(patient.FieldEmergencyContactName)
	return u
}

// ClearEmergencyContactName clears the value of the "emergency_contact_name" field.
func (u *PatientUpsert) ClearEmergencyContactName() *PatientUpsert {
	u.SetNull(patient.FieldEmergencyContactName)
	return u
}

// SetEmergencyContactPhone sets the "emergency_contact_phone" field.
func (u *PatientUpsert) SetEmergencyContactPhone(v string) *PatientUpsert {
	u.Set(patient.FieldEmergencyContactPhone, v)
	return u
}

// UpdateEmergencyContactPhone sets the "emergency_contact_phone" field to the value that was provided on create.
func (u *PatientUpsert) UpdateEmergencyContactPhone() *PatientUpsert {
	u.SetExcluded(patient.FieldEmergencyContactPhone)
	return u
}

// ClearEmergencyContactPhone clears the value of the "emergency_contact_phone" field.
func (u *PatientUpsert) ClearEmergencyContactPhone() *PatientUpsert {
	u.SetNull(patient.FieldEmergencyContactPhone)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Patient.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(patient.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PatientUpsertOne) UpdateNewValues() *PatientUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(patient.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(patient.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Patient.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PatientUpsertOne) Ignore() *PatientUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PatientUpsertOne) DoNothing() *PatientUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PatientCreate.OnConflict
// documentation for more info.
func (u *PatientUpsertOne) Update(set func(*PatientUpsert)) *PatientUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PatientUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PatientUpsertOne) SetUpdatedAt(v time.Time) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateUpdatedAt() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *PatientUpsertOne) SetDeletedAt(v time.Time) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateDeletedAt() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *PatientUpsertOne) ClearDeletedAt() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearDeletedAt()
	})
}

// SetClinicID sets the "clinic_id" field.
func (u *PatientUpsertOne) SetClinicID(v uuid.UUID) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetClinicID(v)
	})
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateClinicID() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateClinicID()
	})
}

// SetUserID sets the "user_id" field.
func (u *PatientUpsertOne) SetUserID(v uuid.UUID) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateUserID() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateUserID()
	})
}

// SetAssignedPsychologistID sets the "assigned_psychologist_id" field.
func (u *PatientUpsertOne) SetAssignedPsychologistID(v uuid.UUID) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetAssignedPsychologistID(v)
	})
}

// UpdateAssignedPsychologistID sets the "assigned_psychologist_id" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateAssignedPsychologistID() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateAssignedPsychologistID()
	})
}

// ClearAssignedPsychologistID clears the value of the "assigned_psychologist_id" field.
func (u *PatientUpsertOne) ClearAssignedPsychologistID() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearAssignedPsychologistID()
	})
}

// SetFileNumber sets the "file_number" field.
func (u *PatientUpsertOne) SetFileNumber(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetFileNumber(v)
	})
}

// UpdateFileNumber sets the "file_number" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateFileNumber() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateFileNumber()
	})
}

// ClearFileNumber clears the value of the "file_number" field.
func (u *PatientUpsertOne) ClearFileNumber() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearFileNumber()
	})
}

// SetStatus sets the "status" field.
func (u *PatientUpsertOne) SetStatus(v patient.Status) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateStatus() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateStatus()
	})
}

// SetCpfEncrypted sets the "cpf_encrypted" field.
func (u *PatientUpsertOne) SetCpfEncrypted(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetCpfEncrypted(v)
	})
}

// UpdateCpfEncrypted sets the "cpf_encrypted" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateCpfEncrypted() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateCpfEncrypted()
	})
}

// ClearCpfEncrypted clears the value of the "cpf_encrypted" field.
func (u *PatientUpsertOne) ClearCpfEncrypted() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearCpfEncrypted()
	})
}

// SetBirthDate sets the "birth_date" field.
func (u *PatientUpsertOne) SetBirthDate(v time.Time) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetBirthDate(v)
	})
}

// UpdateBirthDate sets the "birth_date" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateBirthDate() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateBirthDate()
	})
}

// ClearBirthDate clears the value of the "birth_date" field.
func (u *PatientUpsertOne) ClearBirthDate() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearBirthDate()
	})
}

// SetTimezone sets the "timezone" field.
func (u *PatientUpsertOne) SetTimezone(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetTimezone(v)
	})
}

// UpdateTimezone sets the "timezone" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateTimezone() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateTimezone()
	})
}

// SetSessionCount sets the "session_count" field.
func (u *PatientUpsertOne) SetSessionCount(v int) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetSessionCount(v)
	})
}

// AddSessionCount adds v to the "session_count" field.
func (u *PatientUpsertOne) AddSessionCount(v int) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.AddSessionCount(v)
	})
}

// UpdateSessionCount sets the "session_count" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateSessionCount() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateSessionCount()
	})
}

// SetTotalCancellations sets the "total_cancellations" field.
func (u *PatientUpsertOne) SetTotalCancellations(v int) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetTotalCancellations(v)
	})
}

// AddTotalCancellations adds v to the "total_cancellations" field.
func (u *PatientUpsertOne) AddTotalCancellations(v int) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.AddTotalCancellations(v)
	})
}

// UpdateTotalCancellations sets the "total_cancellations" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateTotalCancellations() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateTotalCancellations()
	})
}

// SetLastCancelReason sets the "last_cancel_reason" field.
func (u *PatientUpsertOne) SetLastCancelReason(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetLastCancelReason(v)
	})
}

// UpdateLastCancelReason sets the "last_cancel_reason" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateLastCancelReason() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateLastCancelReason()
	})
}

// ClearLastCancelReason clears the value of the "last_cancel_reason" field.
func (u *PatientUpsertOne) ClearLastCancelReason() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearLastCancelReason()
	})
}

// SetHasDiscount sets the "has_discount" field.
func (u *PatientUpsertOne) SetHasDiscount(v bool) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetHasDiscount(v)
	})
}

// UpdateHasDiscount sets the "has_discount" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateHasDiscount() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateHasDiscount()
	})
}

// SetDiscountPercent sets the "discount_percent" field.
func (u *PatientUpsertOne) SetDiscountPercent(v int) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetDiscountPercent(v)
	})
}

// AddDiscountPercent adds v to the "discount_percent" field.
func (u *PatientUpsertOne) AddDiscountPercent(v int) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.AddDiscountPercent(v)
	})
}

// UpdateDiscountPercent sets the "discount_percent" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateDiscountPercent() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateDiscountPercent()
	})
}

// SetNotes sets the "notes" field.
func (u *PatientUpsertOne) SetNotes(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateNotes() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *PatientUpsertOne) ClearNotes() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearNotes()
	})
}

// SetReferralSource sets the "referral_source" field.
func (u *PatientUpsertOne) SetReferralSource(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetReferralSource(v)
	})
}

// UpdateReferralSource sets the "referral_source" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateReferralSource() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateReferralSource()
	})
}

// ClearReferralSource clears the value of the "referral_source" field.
func (u *PatientUpsertOne) ClearReferralSource() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearReferralSource()
	})
}

// SetChiefComplaint sets the "chief_complaint" field.
func (u *PatientUpsertOne) SetChiefComplaint(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetChiefComplaint(v)
	})
}

// UpdateChiefComplaint sets the "chief_complaint" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateChiefComplaint() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateChiefComplaint()
	})
}

// ClearChiefComplaint clears the value of the "chief_complaint" field.
func (u *PatientUpsertOne) ClearChiefComplaint() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearChiefComplaint()
	})
}

// SetEmergencyContactName sets the "emergency_contact_name" field.
func (u *PatientUpsertOne) SetEmergencyContactName(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetEmergencyContactName(v)
	})
}

// UpdateEmergencyContactName sets the "emergency_contact_name" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateEmergencyContactName() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateEmergencyContactName()
	})
}

// ClearEmergencyContactName clears the value of the "emergency_contact_name" field.
func (u *PatientUpsertOne) ClearEmergencyContactName() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearEmergencyContactName()
	})
}

// SetEmergencyContactPhone sets the "emergency_contact_phone" field.
func (u *PatientUpsertOne) SetEmergencyContactPhone(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetEmergencyContactPhone(v)
	})
}

// UpdateEmergencyContactPhone sets the "emergency_contact_phone" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateEmergencyContactPhone() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateEmergencyContactPhone()
	})
}

// ClearEmergencyContactPhone clears the value of the "emergency_contact_phone" field.
func (u *PatientUpsertOne) ClearEmergencyContactPhone() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearEmergencyContactPhone()
	})
}

// Exec executes the query.
func (u *PatientUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PatientCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PatientUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PatientUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: PatientUpsertOne.ID is not supported by MySQL driver. Use PatientUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PatientUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PatientCreateBulk is the builder for creating many Patient entities in bulk.
type PatientCreateBulk struct {
	config
	err      error
	builders []*PatientCreate
	conflict []sql.ConflictOption
}

// Save creates the Patient entities in the database.
func (_c *PatientCreateBulk) Save(ctx context.Context) ([]*Patient, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Patient, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PatientMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PatientCreateBulk) SaveX(ctx context.Context) []*Patient {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatientCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatientCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Patient.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PatientUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PatientCreateBulk) OnConflict(opts ...sql.ConflictOption) *PatientUpsertBulk {
	_c.conflict = opts
	return &PatientUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Patient.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PatientCreateBulk) OnConflictColumns(columns ...string) *PatientUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PatientUpsertBulk{
		create: _c,
	}
}

// PatientUpsertBulk is the builder for "upsert"-ing
// a bulk of Patient nodes.
type PatientUpsertBulk struct {
	create *PatientCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Patient.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(patient.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PatientUpsertBulk) UpdateNewValues() *PatientUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(patient.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(patient.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Patient.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PatientUpsertBulk) Ignore() *PatientUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PatientUpsertBulk) DoNothing() *PatientUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PatientCreateBulk.OnConflict
// documentation for more info.
func (u *PatientUpsertBulk) Update(set func(*PatientUpsert)) *PatientUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PatientUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PatientUpsertBulk) SetUpdatedAt(v time.Time) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateUpdatedAt() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *PatientUpsertBulk) SetDeletedAt(v time.Time) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateDeletedAt() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *PatientUpsertBulk) ClearDeletedAt() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearDeletedAt()
	})
}

// SetClinicID sets the "clinic_id" field.
func (u *PatientUpsertBulk) SetClinicID(v uuid.UUID) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetClinicID(v)
	})
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateClinicID() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateClinicID()
	})
}

// SetUserID sets the "user_id" field.
func (u *PatientUpsertBulk) SetUserID(v uuid.UUID) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateUserID() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateUserID()
	})
}

// SetAssignedPsychologistID sets the "assigned_psychologist_id" field.
func (u *PatientUpsertBulk) SetAssignedPsychologistID(v uuid.UUID) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetAssignedPsychologistID(v)
	})
}

// UpdateAssignedPsychologistID sets the "assigned_psychologist_id" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateAssignedPsychologistID() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateAssignedPsychologistID()
	})
}

// ClearAssignedPsychologistID clears the value of the "assigned_psychologist_id" field.
func (u *PatientUpsertBulk) ClearAssignedPsychologistID() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearAssignedPsychologistID()
	})
}

// SetFileNumber sets the "file_number" field.
func (u *PatientUpsertBulk) SetFileNumber(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetFileNumber(v)
	})
}

// UpdateFileNumber sets the "file_number" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateFileNumber() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateFileNumber()
	})
}

// ClearFileNumber clears the value of the "file_number" field.
func (u *PatientUpsertBulk) ClearFileNumber() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearFileNumber()
	})
}

// SetStatus sets the "status" field.
func (u *PatientUpsertBulk) SetStatus(v patient.Status) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateStatus() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateStatus()
	})
}

// SetCpfEncrypted sets the "cpf_encrypted" field.
func (u *PatientUpsertBulk) SetCpfEncrypted(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetCpfEncrypted(v)
	})
}

// UpdateCpfEncrypted sets the "cpf_encrypted" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateCpfEncrypted() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateCpfEncrypted()
	})
}

// ClearCpfEncrypted clears the value of the "cpf_encrypted" field.
func (u *PatientUpsertBulk) ClearCpfEncrypted() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearCpfEncrypted()
	})
}

// SetBirthDate sets the "birth_date" field.
func (u *PatientUpsertBulk) SetBirthDate(v time.Time) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetBirthDate(v)
	})
}

// UpdateBirthDate sets the "birth_date" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateBirthDate() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateBirthDate()
	})
}

// ClearBirthDate clears the value of the "birth_date" field.
func (u *PatientUpsertBulk) ClearBirthDate() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearBirthDate()
	})
}

// SetTimezone sets the "timezone" field.
func (u *PatientUpsertBulk) SetTimezone(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetTimezone(v)
	})
}

// UpdateTimezone sets the "timezone" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateTimezone() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateTimezone()
	})
}

// SetSessionCount sets the "session_count" field.
func (u *PatientUpsertBulk) SetSessionCount(v int) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetSessionCount(v)
	})
}

// AddSessionCount adds v to the "session_count" field.
func (u *PatientUpsertBulk) AddSessionCount(v int) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.AddSessionCount(v)
	})
}

// UpdateSessionCount sets the "session_count" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateSessionCount() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateSessionCount()
	})
}

// SetTotalCancellations sets the "total_cancellations" field.
func (u *PatientUpsertBulk) SetTotalCancellations(v int) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetTotalCancellations(v)
	})
}

// AddTotalCancellations adds v to the "total_cancellations" field.
func (u *PatientUpsertBulk) AddTotalCancellations(v int) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.AddTotalCancellations(v)
	})
}

// UpdateTotalCancellations sets the "total_cancellations" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateTotalCancellations() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateTotalCancellations()
	})
}

// SetLastCancelReason sets the "last_cancel_reason" field.
func (u *PatientUpsertBulk) SetLastCancelReason(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetLastCancelReason(v)
	})
}

// UpdateLastCancelReason sets the "last_cancel_reason" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateLastCancelReason() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateLastCancelReason()
	})
}

// ClearLastCancelReason clears the value of the "last_cancel_reason" field.
func (u *PatientUpsertBulk) ClearLastCancelReason() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearLastCancelReason()
	})
}

// SetHasDiscount sets the "has_discount" field.
func (u *PatientUpsertBulk) SetHasDiscount(v bool) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetHasDiscount(v)
	})
}

// UpdateHasDiscount sets the "has_discount" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateHasDiscount() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateHasDiscount()
	})
}

// SetDiscountPercent sets the "discount_percent" field.
func (u *PatientUpsertBulk) SetDiscountPercent(v int) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetDiscountPercent(v)
	})
}

// AddDiscountPercent adds v to the "discount_percent" field.
func (u *PatientUpsertBulk) AddDiscountPercent(v int) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.AddDiscountPercent(v)
	})
}

// UpdateDiscountPercent sets the "discount_percent" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateDiscountPercent() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateDiscountPercent()
	})
}

// SetNotes sets the "notes" field.
func (u *PatientUpsertBulk) SetNotes(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateNotes() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *PatientUpsertBulk) ClearNotes() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearNotes()
	})
}

// SetReferralSource sets the "referral_source" field.
func (u *PatientUpsertBulk) SetReferralSource(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetReferralSource(v)
	})
}

// UpdateReferralSource sets the "referral_source" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateReferralSource() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateReferralSource()
	})
}

// ClearReferralSource clears the value of the "referral_source" field.
func (u *PatientUpsertBulk) ClearReferralSource() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearReferralSource()
	})
}

// SetChiefComplaint sets the "chief_complaint" field.
func (u *PatientUpsertBulk) SetChiefComplaint(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetChiefComplaint(v)
	})
}

// UpdateChiefComplaint sets the "chief_complaint" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateChiefComplaint() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateChiefComplaint()
	})
}

// ClearChiefComplaint clears the value of the "chief_complaint" field.
func (u *PatientUpsertBulk) ClearChiefComplaint() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearChiefComplaint()
	})
}

// SetEmergencyContactName sets the "emergency_contact_name" field.
func (u *PatientUpsertBulk) SetEmergencyContactName(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetEmergencyContactName(v)
	})
}

// UpdateEmergencyContactName sets the "emergency_contact_name" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateEmergencyContactName() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateEmergencyContactName()
	})
}

// ClearEmergencyContactName clears the value of the "emergency_contact_name" field.
func (u *PatientUpsertBulk) ClearEmergencyContactName() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearEmergencyContactName()
	})
}

// SetEmergencyContactPhone sets the "emergency_contact_phone" field.
func (u *PatientUpsertBulk) SetEmergencyContactPhone(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetEmergencyContactPhone(v)
	})
}

// UpdateEmergencyContactPhone sets the "emergency_contact_phone" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateEmergencyContactPhone() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateEmergencyContactPhone()
	})
}

// ClearEmergencyContactPhone clears the value of the "emergency_contact_phone" field.
func (u *PatientUpsertBulk) ClearEmergencyContactPhone() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearEmergencyContactPhone()
	})
}

// Exec executes the query.
func (u *PatientUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the PatientCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PatientCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PatientUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
