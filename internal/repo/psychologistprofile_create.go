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
	"github.com/amparasaude/ampara_backend/internal/repo/clinicmember"
	"github.com/amparasaude/ampara_backend/internal/repo/psychologistprofile"
	"github.com/google/uuid"
)

// PsychologistProfileCreate is the builder for creating a PsychologistProfile entity.
type PsychologistProfileCreate struct {
	config
	mutation *PsychologistProfileMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *PsychologistProfileCreate) SetCreatedAt(v time.Time) *PsychologistProfileCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PsychologistProfileCreate) SetNillableCreatedAt(v *time.Time) *PsychologistProfileCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PsychologistProfileCreate) SetUpdatedAt(v time.Time) *PsychologistProfileCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PsychologistProfileCreate) SetNillableUpdatedAt(v *time.Time) *PsychologistProfileCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetClinicMemberID sets the "clinic_member_id" field.
func (_c *PsychologistProfileCreate) SetClinicMemberID(v uuid.UUID) *PsychologistProfileCreate {
	_c.mutation.SetClinicMemberID(v)
	return _c
}

// SetCrpLicense sets the "crp_license" field.
func (_c *PsychologistProfileCreate) SetCrpLicense(v string) *PsychologistProfileCreate {
	_c.mutation.SetCrpLicense(v)
	return _c
}

// SetNillableCrpLicense sets the "crp_license" field if the given value is not nil.
func (_c *PsychologistProfileCreate) SetNillableCrpLicense(v *string) *PsychologistProfileCreate {
	if v != nil {
		_c.SetCrpLicense(*v)
	}
	return _c
}

// SetApproach sets the "approach" field.
func (_c *PsychologistProfileCreate) SetApproach(v string) *PsychologistProfileCreate {
	_c.mutation.SetApproach(v)
	return _c
}

// SetNillableApproach sets the "approach" field if the given value is not nil.
func (_c *PsychologistProfileCreate) SetNillableApproach(v *string) *PsychologistProfileCreate {
	if v != nil {
		_c.SetApproach(*v)
	}
	return _c
}

// SetSpecialties sets the "specialties" field.
func (_c *PsychologistProfileCreate) SetSpecialties(v []string) *PsychologistProfileCreate {
	_c.mutation.SetSpecialties(v)
	return _c
}

// SetBio sets the "bio" field.
func (_c *PsychologistProfileCreate) SetBio(v string) *PsychologistProfileCreate {
	_c.mutation.SetBio(v)
	return _c
}

// SetNillableBio sets the "bio" field if the given value is not nil.
func (_c *PsychologistProfileCreate) SetNillableBio(v *string) *PsychologistProfileCreate {
	if v != nil {
		_c.SetBio(*v)
	}
	return _c
}

// SetSessionPriceCents sets the "session_price_cents" field.
func (_c *PsychologistProfileCreate) SetSessionPriceCents(v int64) *PsychologistProfileCreate {
	_c.mutation.SetSessionPriceCents(v)
	return _c
}

// SetNillableSessionPriceCents sets the "session_price_cents" field if the given value is not nil.
func (_c *PsychologistProfileCreate) SetNillableSessionPriceCents(v *int64) *PsychologistProfileCreate {
	if v != nil {
		_c.SetSessionPriceCents(*v)
	}
	return _c
}

// SetSessionDurationMin sets the "session_duration_min" field.
func (_c *PsychologistProfileCreate) SetSessionDurationMin(v int) *PsychologistProfileCreate {
	_c.mutation.SetSessionDurationMin(v)
	return _c
}

// SetNillableSessionDurationMin sets the "session_duration_min" field if the given value is not nil.
func (_c *PsychologistProfileCreate) SetNillableSessionDurationMin(v *int) *PsychologistProfileCreate {
	if v != nil {
		_c.SetSessionDurationMin(*v)
	}
	return _c
}

// SetTimezone sets the "timezone" field.
func (_c *PsychologistProfileCreate) SetTimezone(v string) *PsychologistProfileCreate {
	_c.mutation.SetTimezone(v)
	return _c
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_c *PsychologistProfileCreate) SetNillableTimezone(v *string) *PsychologistProfileCreate {
	if v != nil {
		_c.SetTimezone(*v)
	}
	return _c
}

// SetWorkingHours sets the "working_hours" field.
func (_c *PsychologistProfileCreate) SetWorkingHours(v map[string]interface{}) *PsychologistProfileCreate {
	_c.mutation.SetWorkingHours(v)
	return _c
}

// SetSlotGranularityMin sets the "slot_granularity_min" field.
func (_c *PsychologistProfileCreate) SetSlotGranularityMin(v int) *PsychologistProfileCreate {
	_c.mutation.SetSlotGranularityMin(v)
	return _c
}

// SetNillableSlotGranularityMin sets the "slot_granularity_min" field if the given value is not nil.
func (_c *PsychologistProfileCreate) SetNillableSlotGranularityMin(v *int) *PsychologistProfileCreate {
	if v != nil {
		_c.SetSlotGranularityMin(*v)
	}
	return _c
}

// SetIsAccepting sets the "is_accepting" field.
func (_c *PsychologistProfileCreate) SetIsAccepting(v bool) *PsychologistProfileCreate {
	_c.mutation.SetIsAccepting(v)
	return _c
}

// SetNillableIsAccepting sets the "is_accepting" field if the given value is not nil.
func (_c *PsychologistProfileCreate) SetNillableIsAccepting(v *bool) *PsychologistProfileCreate {
	if v != nil {
		_c.SetIsAccepting(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PsychologistProfileCreate) SetID(v uuid.UUID) *PsychologistProfileCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PsychologistProfileCreate) SetNillableID(v *uuid.UUID) *PsychologistProfileCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetMemberID sets the "member" edge to the ClinicMember entity by ID.
func (_c *PsychologistProfileCreate) SetMemberID(id uuid.UUID) *PsychologistProfileCreate {
	_c.mutation.SetMemberID(id)
	return _c
}

// SetMember sets the "member" edge to the ClinicMember entity.
func (_c *PsychologistProfileCreate) SetMember(v *ClinicMember) *PsychologistProfileCreate {
	return _c.SetMemberID(v.ID)
}

// Mutation returns the PsychologistProfileMutation object of the builder.
func (_c *PsychologistProfileCreate) Mutation() *PsychologistProfileMutation {
	return _c.mutation
}

// Save creates the PsychologistProfile in the database.
func (_c *PsychologistProfileCreate) Save(ctx context.Context) (*PsychologistProfile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PsychologistProfileCreate) SaveX(ctx context.Context) *PsychologistProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PsychologistProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PsychologistProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PsychologistProfileCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := psychologistprofile.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := psychologistprofile.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Timezone(); !ok {
		v := psychologistprofile.DefaultTimezone
		_c.mutation.SetTimezone(v)
	}
	if _, ok := _c.mutation.SlotGranularityMin(); !ok {
		v := psychologistprofile.DefaultSlotGranularityMin
		_c.mutation.SetSlotGranularityMin(v)
	}
	if _, ok := _c.mutation.IsAccepting(); !ok {
		v := psychologistprofile.DefaultIsAccepting
		_c.mutation.SetIsAccepting(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := psychologistprofile.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PsychologistProfileCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "PsychologistProfile.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "PsychologistProfile.updated_at"`)}
	}
	if _, ok := _c.mutation.ClinicMemberID(); !ok {
		return &ValidationError{Name: "clinic_member_id", err: errors.New(`repo: missing required field "PsychologistProfile.clinic_member_id"`)}
	}
	if v, ok := _c.mutation.CrpLicense(); ok {
		if err := psychologistprofile.CrpLicenseValidator(v); err != nil {
			return &ValidationError{Name: "crp_license", err: fmt.Errorf(`repo: validator failed for field "PsychologistProfile.crp_license": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Approach(); ok {
		if err := psychologistprofile.ApproachValidator(v); err != nil {
			return &ValidationError{Name: "approach", err: fmt.Errorf(`repo: validator failed for field "PsychologistProfile.approach": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Timezone(); !ok {
		return &ValidationError{Name: "timezone", err: errors.New(`repo: missing required field "PsychologistProfile.timezone"`)}
	}
	if v, ok := _c.mutation.Timezone(); ok {
		if err := psychologistprofile.TimezoneValidator(v); err != nil {
			return &ValidationError{Name: "timezone", err: fmt.Errorf(`repo: validator failed for field "PsychologistProfile.timezone": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SlotGranularityMin(); !ok {
		return &ValidationError{Name: "slot_granularity_min", err: errors.New(`repo: missing required field "PsychologistProfile.slot_granularity_min"`)}
	}
	if _, ok := _c.mutation.IsAccepting(); !ok {
		return &ValidationError{Name: "is_accepting", err: errors.New(`repo: missing required field "PsychologistProfile.is_accepting"`)}
	}
	if len(_c.mutation.MemberIDs()) == 0 {
		return &ValidationError{Name: "member", err: errors.New(`repo: missing required edge "PsychologistProfile.member"`)}
	}
	return nil
}

func (_c *PsychologistProfileCreate) sqlSave(ctx context.Context) (*PsychologistProfile, error) {
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

func (_c *PsychologistProfileCreate) createSpec() (*PsychologistProfile, *sqlgraph.CreateSpec) {
	var (
		_node = &PsychologistProfile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(psychologistprofile.Table, sqlgraph.NewFieldSpec(psychologistprofile.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(psychologistprofile.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(psychologistprofile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.CrpLicense(); ok {
		_spec.SetField(psychologistprofile.FieldCrpLicense, field.TypeString, value)
		_node.CrpLicense = &value
	}
	if value, ok := _c.mutation.Approach(); ok {
		_spec.SetField(psychologistprofile.FieldApproach, field.TypeString, value)
		_node.Approach = &value
	}
	if value, ok := _c.mutation.Specialties(); ok {
		_spec.SetField(psychologistprofile.FieldSpecialties, field.TypeJSON, value)
		_node.Specialties = value
	}
	if value, ok := _c.mutation.Bio(); ok {
		_spec.SetField(psychologistprofile.FieldBio, field.TypeString, value)
		_node.Bio = &value
	}
	if value, ok := _c.mutation.SessionPriceCents(); ok {
		_spec.SetField(psychologistprofile.FieldSessionPriceCents, field.TypeInt64, value)
		_node.SessionPriceCents = &value
	}
	if value, ok := _c.mutation.SessionDurationMin(); ok {
		_spec.SetField(psychologistprofile.FieldSessionDurationMin, field.TypeInt, value)
		_node.SessionDurationMin = &value
	}
	if value, ok := _c.mutation.Timezone(); ok {
		_spec.SetField(psychologistprofile.FieldTimezone, field.TypeString, value)
		_node.Timezone = value
	}
	if value, ok := _c.mutation.WorkingHours(); ok {
		_spec.SetField(psychologistprofile.FieldWorkingHours, field.TypeJSON, value)
		_node.WorkingHours = value
	}
	if value, ok := _c.mutation.SlotGranularityMin(); ok {
		_spec.SetField(psychologistprofile.FieldSlotGranularityMin, field.TypeInt, value)
		_node.SlotGranularityMin = value
	}
	if value, ok := _c.mutation.IsAccepting(); ok {
		_spec.SetField(psychologistprofile.FieldIsAccepting, field.TypeBool, value)
		_node.IsAccepting = value
	}
	if nodes := _c.mutation.MemberIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   psychologistprofile.MemberTable,
			Columns: []string{psychologistprofile.MemberColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clinicmember.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ClinicMemberID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PsychologistProfile.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PsychologistProfileUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PsychologistProfileCreate) OnConflict(opts ...sql.ConflictOption) *PsychologistProfileUpsertOne {
	_c.conflict = opts
	return &PsychologistProfileUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PsychologistProfile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PsychologistProfileCreate) OnConflictColumns(columns ...string) *PsychologistProfileUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PsychologistProfileUpsertOne{
		create: _c,
	}
}

type (
	// PsychologistProfileUpsertOne is the builder for "upsert"-ing
	//  one PsychologistProfile node.
	PsychologistProfileUpsertOne struct {
		create *PsychologistProfileCreate
	}

	// PsychologistProfileUpsert is the "OnConflict" setter.
	PsychologistProfileUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *PsychologistProfileUpsert) SetUpdatedAt(v time.Time) *PsychologistProfileUpsert {
	u.Set(psychologistprofile.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PsychologistProfileUpsert) UpdateUpdatedAt() *PsychologistProfileUpsert {
	u.SetExcluded(psychologistprofile.FieldUpdatedAt)
	return u
}

// SetClinicMemberID sets the "clinic_member_id" field.
func (u *PsychologistProfileUpsert) SetClinicMemberID(v uuid.UUID) *PsychologistProfileUpsert {
	u.Set(psychologistprofile.FieldClinicMemberID, v)
	return u
}

// UpdateClinicMemberID sets the "clinic_member_id" field to the value that was provided on create.
func (u *PsychologistProfileUpsert) UpdateClinicMemberID() *PsychologistProfileUpsert {
	u.SetExcluded(psychologistprofile.FieldClinicMemberID)
	return u
}

// SetCrpLicense sets the "crp_license" field.
func (u *PsychologistProfileUpsert) SetCrpLicense(v string) *PsychologistProfileUpsert {
	u.Set(psychologistprofile.FieldCrpLicense, v)
	return u
}

// UpdateCrpLicense sets the "crp_license" field to the value that was provided on create.
func (u *PsychologistProfileUpsert) UpdateCrpLicense() *PsychologistProfileUpsert {
	u.SetExcluded(psychologistprofile.FieldCrpLicense)
	return u
}

// ClearCrpLicense clears the value of the "crp_license" field.
func (u *PsychologistProfileUpsert) ClearCrpLicense() *PsychologistProfileUpsert {
	u.SetNull(psychologistprofile.FieldCrpLicense)
	return u
}

// SetApproach sets the "approach" field.
func (u *PsychologistProfileUpsert) SetApproach(v string) *PsychologistProfileUpsert {
	u.Set(psychologistprofile.FieldApproach, v)
	return u
}

// UpdateApproach sets the "approach" field to the value that was provided on create.
func (u *PsychologistProfileUpsert) UpdateApproach() *PsychologistProfileUpsert {
	u.SetExcluded(psychologistprofile.FieldApproach)
	return u
}

// ClearApproach clears the value of the "approach" field.
func (u *PsychologistProfileUpsert) ClearApproach() *PsychologistProfileUpsert {
	u.SetNull(psychologistprofile.FieldApproach)
	return u
}

// SetSpecialties sets the "specialties" field.
func (u *PsychologistProfileUpsert) SetSpecialties(v []string) *PsychologistProfileUpsert {
	u.Set(psychologistprofile.FieldSpecialties, v)
	return u
}

// UpdateSpecialties sets the "specialties" field to the value that was provided on create.
func (u *PsychologistProfileUpsert) UpdateSpecialties() *PsychologistProfileUpsert {
	u.SetExcluded(psychologistprofile.FieldSpecialties)
	return u
}

// ClearSpecialties clears the value of the "specialties" field.
func (u *PsychologistProfileUpsert) ClearSpecialties() *PsychologistProfileUpsert {
	u.SetNull(psychologistprofile.FieldSpecialties)
	return u
}

// SetBio sets the "bio" field.
func (u *PsychologistProfileUpsert) SetBio(v string) *PsychologistProfileUpsert {
	u.Set(psychologistprofile.FieldBio, v)
	return u
}

// UpdateBio sets the "bio" field to the value that was provided on create.
func (u *PsychologistProfileUpsert) UpdateBio() *PsychologistProfileUpsert {
	u.SetExcluded(psychologistprofile.FieldBio)
	return u
}

// ClearBio clears the value of the "bio" field.
func (u *PsychologistProfileUpsert) ClearBio() *PsychologistProfileUpsert {
	u.SetNull(psychologistprofile.FieldBio)
	return u
}

// SetSessionPriceCents sets the "session_price_cents" field.
func (u *PsychologistProfileUpsert) SetSessionPriceCents(v int64) *PsychologistProfileUpsert {
	u.Set(psychologistprofile.FieldSessionPriceCents, v)
	return u
}

// UpdateSessionPriceCents sets the "session_price_cents" field to the value that was provided on create.
func (u *PsychologistProfileUpsert) UpdateSessionPriceCents() *PsychologistProfileUpsert {
	u.SetExcluded(psychologistprofile.FieldSessionPriceCents)
	return u
}

// AddSessionPriceCents adds v to the "session_price_cents" field.
func (u *PsychologistProfileUpsert) AddSessionPriceCents(v int64) *PsychologistProfileUpsert {
	u.Add(psychologistprofile.FieldSessionPriceCents, v)
	return u
}

// ClearSessionPriceCents clears the value of the "session_price_cents" field.
func (u *PsychologistProfileUpsert) ClearSessionPriceCents() *PsychologistProfileUpsert {
	u.SetNull(psychologistprofile.FieldSessionPriceCents)
	return u
}

// SetSessionDurationMin sets the "session_duration_min" field.
func (u *PsychologistProfileUpsert) SetSessionDurationMin(v int) *PsychologistProfileUpsert {
	u.Set(psychologistprofile.FieldSessionDurationMin, v)
	return u
}

// UpdateSessionDurationMin sets the "session_duration_min" field to the value that was provided on create.
func (u *PsychologistProfileUpsert) UpdateSessionDurationMin() *PsychologistProfileUpsert {
	u.SetExcluded(psychologistprofile.FieldSessionDurationMin)
	return u
}

// AddSessionDurationMin adds v to the "session_duration_min" field.
func (u *PsychologistProfileUpsert) AddSessionDurationMin(v int) *PsychologistProfileUpsert {
	u.Add(psychologistprofile.FieldSessionDurationMin, v)
	return u
}

// ClearSessionDurationMin clears the value of the "session_duration_min" field.
func (u *PsychologistProfileUpsert) ClearSessionDurationMin() *PsychologistProfileUpsert {
	u.SetNull(psychologistprofile.FieldSessionDurationMin)
	return u
}

// SetTimezone sets the "timezone" field.
func (u *PsychologistProfileUpsert) SetTimezone(v string) *PsychologistProfileUpsert {
	u.Set(psychologistprofile.FieldTimezone, v)
	return u
}

// UpdateTimezone sets the "timezone" field to the value that was provided on create.
func (u *PsychologistProfileUpsert) UpdateTimezone() *PsychologistProfileUpsert {
	u.SetExcluded(psychologistprofile.FieldTimezone)
	return u
}

// SetWorkingHours sets the "working_hours" field.
func (u *PsychologistProfileUpsert) SetWorkingHours(v map[string]interface{}) *PsychologistProfileUpsert {
	u.Set(psychologistprofile.FieldWorkingHours, v)
	return u
}

// UpdateWorkingHours sets the "working_hours" field to the value that was provided on create.
func (u *PsychologistProfileUpsert) UpdateWorkingHours() *PsychologistProfileUpsert {
	u.SetExcluded(psychologistprofile.FieldWorkingHours)
	return u
}

// ClearWorkingHours clears the value of the "working_hours" field.
func (u *PsychologistProfileUpsert) ClearWorkingHours() *PsychologistProfileUpsert {
	u.SetNull(psychologistprofile.FieldWorkingHours)
	return u
}

// SetSlotGranularityMin sets the "slot_granularity_min" field.
func (u *PsychologistProfileUpsert) SetSlotGranularityMin(v int) *PsychologistProfileUpsert {
	u.Set(psychologistprofile.FieldSlotGranularityMin, v)
	return u
}

// UpdateSlotGranularityMin sets the "slot_granularity_min" field to the value that was provided on create.
func (u *PsychologistProfileUpsert) UpdateSlotGranularityMin() *PsychologistProfileUpsert {
	u.SetExcluded(psychologistprofile.FieldSlotGranularityMin)
	return u
}

// AddSlotGranularityMin adds v to the "slot_granularity_min" field.
func (u *PsychologistProfileUpsert) AddSlotGranularityMin(v int) *PsychologistProfileUpsert {
	u.Add(psychologistprofile.FieldSlotGranularityMin, v)
	return u
}

// SetIsAccepting sets the "is_accepting" field.
func (u *PsychologistProfileUpsert) SetIsAccepting(v bool) *PsychologistProfileUpsert {
	u.Set(psychologistprofile.FieldIsAccepting, v)
	return u
}

// UpdateIsAccepting sets the "is_accepting" field to the value that was provided on create.
func (u *PsychologistProfileUpsert) UpdateIsAccepting() *PsychologistProfileUpsert {
	u.SetExcluded(psychologistprofile.FieldIsAccepting)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PsychologistProfile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(psychologistprofile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PsychologistProfileUpsertOne) UpdateNewValues() *PsychologistProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(psychologistprofile.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(psychologistprofile.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PsychologistProfile.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PsychologistProfileUpsertOne) Ignore() *PsychologistProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PsychologistProfileUpsertOne) DoNothing() *PsychologistProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PsychologistProfileCreate.OnConflict
// documentation for more info.
func (u *PsychologistProfileUpsertOne) Update(set func(*PsychologistProfileUpsert)) *PsychologistProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PsychologistProfileUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PsychologistProfileUpsertOne) SetUpdatedAt(v time.Time) *PsychologistProfileUpsertOne {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PsychologistProfileUpsertOne) UpdateUpdatedAt() *PsychologistProfileUpsertOne {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetClinicMemberID sets the "clinic_member_id" field.
func (u *PsychologistProfileUpsertOne) SetClinicMemberID(v uuid.UUID) *PsychologistProfileUpsertOne {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.SetClinicMemberID(v)
	})
}

// UpdateClinicMemberID sets the "clinic_member_id" field to the value that was provided on create.
func (u *PsychologistProfileUpsertOne) UpdateClinicMemberID() *PsychologistProfileUpsertOne {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.UpdateClinicMemberID()
	})
}

// SetCrpLicense sets the "crp_license" field.
func (u *PsychologistProfileUpsertOne) SetCrpLicense(v string) *PsychologistProfileUpsertOne {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.SetCrpLicense(v)
	})
}

// UpdateCrpLicense sets the "crp_license" field to the value that was provided on create.
func (u *PsychologistProfileUpsertOne) UpdateCrpLicense() *PsychologistProfileUpsertOne {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.UpdateCrpLicense()
	})
}

// ClearCrpLicense clears the value of the "crp_license" field.
func (u *PsychologistProfileUpsertOne) ClearCrpLicense() *PsychologistProfileUpsertOne {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.ClearCrpLicense()
	})
}

// SetApproach sets the "approach" field.
func (u *PsychologistProfileUpsertOne) SetApproach(v string) *PsychologistProfileUpsertOne {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.SetApproach(v)
	})
}

// UpdateApproach sets the "approach" field to the value that was provided on create.
func (u *PsychologistProfileUpsertOne) UpdateApproach() *PsychologistProfileUpsertOne {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.UpdateApproach()
	})
}

// ClearApproach clears the value of the "approach" field.
func (u *PsychologistProfileUpsertOne) ClearApproach() *PsychologistProfileUpsertOne {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.ClearApproach()
	})
}

// SetSpecialties sets the "specialties" field.
func (u *PsychologistProfileUpsertOne) SetSpecialties(v []string) *PsychologistProfileUpsertOne {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.SetSpecialties(v)
	})
}

// UpdateSpecialties sets the "specialties" field to the value that was provided on create.
func (u *PsychologistProfileUpsertOne) UpdateSpecialties() *PsychologistProfileUpsertOne {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.UpdateSpecialties()
	})
}

// ClearSpecialties clears the value of the "specialties" field.
func (u *PsychologistProfileUpsertOne) ClearSpecialties() *PsychologistProfileUpsertOne {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.ClearSpecialties()
	})
}

// SetBio sets the "bio" field.
func (u *PsychologistProfileUpsertOne) SetBio(v string) *PsychologistProfileUpsertOne {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.SetBio(v)
	})
}

// UpdateBio sets the "bio" field to the value that was provided on create.
func (u *PsychologistProfileUpsertOne) UpdateBio() *PsychologistProfileUpsertOne {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.UpdateBio()
	})
}

// ClearBio clears the value of the "bio" field.
func (u *PsychologistProfileUpsertOne) ClearBio() *PsychologistProfileUpsertOne {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.ClearBio()
	})
}

// SetSessionPriceCents sets the "session_price_cents" field.
func (u *PsychologistProfileUpsertOne) SetSessionPriceCents(v int64) *PsychologistProfileUpsertOne {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.SetSessionPriceCents(v)
	})
}

// AddSessionPriceCents adds v to the "session_price_cents" field.
func (u *PsychologistProfileUpsertOne) AddSessionPriceCents(v int64) *PsychologistProfileUpsertOne {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.AddSessionPriceCents(v)
	})
}

// UpdateSessionPriceCents sets the "session_price_cents" field to the value that was provided on create.
func (u *PsychologistProfileUpsertOne) UpdateSessionPriceCents() *PsychologistProfileUpsertOne {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.UpdateSessionPriceCents()
	})
}

// ClearSessionPriceCents clears the value of the "session_price_cents" field.
func (u *PsychologistProfileUpsertOne) ClearSessionPriceCents() *PsychologistProfileUpsertOne {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.ClearSessionPriceCents()
	})
}

// SetSessionDurationMin sets the "session_duration_min" field.
func (u *PsychologistProfileUpsertOne) SetSessionDurationMin(v int) *PsychologistProfileUpsertOne {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.SetSessionDurationMin(v)
	})
}

// AddSessionDurationMin adds v to the "session_duration_min" field.
func (u *PsychologistProfileUpsertOne) AddSessionDurationMin(v int) *PsychologistProfileUpsertOne {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.AddSessionDurationMin(v)
	})
}

// UpdateSessionDurationMin sets the "session_duration_min" field to the value that was provided on create.
func (u *PsychologistProfileUpsertOne) UpdateSessionDurationMin() *PsychologistProfileUpsertOne {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.UpdateSessionDurationMin()
	})
}

// ClearSessionDurationMin clears the value of the "session_duration_min" field.
func (u *PsychologistProfileUpsertOne) ClearSessionDurationMin() *PsychologistProfileUpsertOne {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.ClearSessionDurationMin()
	})
}

// SetTimezone sets the "timezone" field.
func (u *PsychologistProfileUpsertOne) SetTimezone(v string) *PsychologistProfileUpsertOne {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.SetTimezone(v)
	})
}

// UpdateTimezone sets the "timezone" field to the value that was provided on create.
func (u *PsychologistProfileUpsertOne) UpdateTimezone() *PsychologistProfileUpsertOne {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.UpdateTimezone()
	})
}

// SetWorkingHours sets the "working_hours" field.
func (u *PsychologistProfileUpsertOne) SetWorkingHours(v map[string]interface{}) *PsychologistProfileUpsertOne {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.SetWorkingHours(v)
	})
}

// UpdateWorkingHours sets the "working_hours" field to the value that was provided on create.
func (u *PsychologistProfileUpsertOne) UpdateWorkingHours() *PsychologistProfileUpsertOne {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.UpdateWorkingHours()
	})
}

// ClearWorkingHours clears the value of the "working_hours" field.
func (u *PsychologistProfileUpsertOne) ClearWorkingHours() *PsychologistProfileUpsertOne {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.ClearWorkingHours()
	})
}

// SetSlotGranularityMin sets the "slot_granularity_min" field.
func (u *PsychologistProfileUpsertOne) SetSlotGranularityMin(v int) *PsychologistProfileUpsertOne {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.SetSlotGranularityMin(v)
	})
}

// AddSlotGranularityMin adds v to the "slot_granularity_min" field.
func (u *PsychologistProfileUpsertOne) AddSlotGranularityMin(v int) *PsychologistProfileUpsertOne {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.AddSlotGranularityMin(v)
	})
}

// UpdateSlotGranularityMin sets the "slot_granularity_min" field to the value that was provided on create.
func (u *PsychologistProfileUpsertOne) UpdateSlotGranularityMin() *PsychologistProfileUpsertOne {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.UpdateSlotGranularityMin()
	})
}

// SetIsAccepting sets the "is_accepting" field.
func (u *PsychologistProfileUpsertOne) SetIsAccepting(v bool) *PsychologistProfileUpsertOne {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.SetIsAccepting(v)
	})
}

// UpdateIsAccepting sets the "is_accepting" field to the value that was provided on create.
func (u *PsychologistProfileUpsertOne) UpdateIsAccepting() *PsychologistProfileUpsertOne {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.UpdateIsAccepting()
	})
}

// Exec executes the query.
func (u *PsychologistProfileUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PsychologistProfileCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PsychologistProfileUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PsychologistProfileUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: PsychologistProfileUpsertOne.ID is not supported by MySQL driver. Use PsychologistProfileUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PsychologistProfileUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PsychologistProfileCreateBulk is the builder for creating many PsychologistProfile entities in bulk.
type PsychologistProfileCreateBulk struct {
	config
	err      error
	builders []*PsychologistProfileCreate
	conflict []sql.ConflictOption
}

// Save creates the PsychologistProfile entities in the database.
func (_c *PsychologistProfileCreateBulk) Save(ctx context.Context) ([]*PsychologistProfile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PsychologistProfile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PsychologistProfileMutation)
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
func (_c *PsychologistProfileCreateBulk) SaveX(ctx context.Context) []*PsychologistProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PsychologistProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PsychologistProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PsychologistProfile.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PsychologistProfileUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PsychologistProfileCreateBulk) OnConflict(opts ...sql.ConflictOption) *PsychologistProfileUpsertBulk {
	_c.conflict = opts
	return &PsychologistProfileUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PsychologistProfile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PsychologistProfileCreateBulk) OnConflictColumns(columns ...string) *PsychologistProfileUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PsychologistProfileUpsertBulk{
		create: _c,
	}
}

// PsychologistProfileUpsertBulk is the builder for "upsert"-ing
// a bulk of PsychologistProfile nodes.
type PsychologistProfileUpsertBulk struct {
	create *PsychologistProfileCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PsychologistProfile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(psychologistprofile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PsychologistProfileUpsertBulk) UpdateNewValues() *PsychologistProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(psychologistprofile.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(psychologistprofile.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PsychologistProfile.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PsychologistProfileUpsertBulk) Ignore() *PsychologistProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PsychologistProfileUpsertBulk) DoNothing() *PsychologistProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PsychologistProfileCreateBulk.OnConflict
// documentation for more info.
func (u *PsychologistProfileUpsertBulk) Update(set func(*PsychologistProfileUpsert)) *PsychologistProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PsychologistProfileUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PsychologistProfileUpsertBulk) SetUpdatedAt(v time.Time) *PsychologistProfileUpsertBulk {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PsychologistProfileUpsertBulk) UpdateUpdatedAt() *PsychologistProfileUpsertBulk {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetClinicMemberID sets the "clinic_member_id" field.
func (u *PsychologistProfileUpsertBulk) SetClinicMemberID(v uuid.UUID) *PsychologistProfileUpsertBulk {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.SetClinicMemberID(v)
	})
}

// UpdateClinicMemberID sets the "clinic_member_id" field to the value that was provided on create.
func (u *PsychologistProfileUpsertBulk) UpdateClinicMemberID() *PsychologistProfileUpsertBulk {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.UpdateClinicMemberID()
	})
}

// SetCrpLicense sets the "crp_license" field.
func (u *PsychologistProfileUpsertBulk) SetCrpLicense(v string) *PsychologistProfileUpsertBulk {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.SetCrpLicense(v)
	})
}

// UpdateCrpLicense sets the "crp_license" field to the value that was provided on create.
func (u *PsychologistProfileUpsertBulk) UpdateCrpLicense() *PsychologistProfileUpsertBulk {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.UpdateCrpLicense()
	})
}

// ClearCrpLicense clears the value of the "crp_license" field.
func (u *PsychologistProfileUpsertBulk) ClearCrpLicense() *PsychologistProfileUpsertBulk {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.ClearCrpLicense()
	})
}

// SetApproach sets the "approach" field.
func (u *PsychologistProfileUpsertBulk) SetApproach(v string) *PsychologistProfileUpsertBulk {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.SetApproach(v)
	})
}

// UpdateApproach sets the "approach" field to the value that was provided on create.
func (u *PsychologistProfileUpsertBulk) UpdateApproach() *PsychologistProfileUpsertBulk {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.UpdateApproach()
	})
}

// ClearApproach clears the value of the "approach" field.
func (u *PsychologistProfileUpsertBulk) ClearApproach() *PsychologistProfileUpsertBulk {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.ClearApproach()
	})
}

// SetSpecialties sets the "specialties" field.
func (u *PsychologistProfileUpsertBulk) SetSpecialties(v []string) *PsychologistProfileUpsertBulk {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.SetSpecialties(v)
	})
}

// UpdateSpecialties sets the "specialties" field to the value that was provided on create.
func (u *PsychologistProfileUpsertBulk) UpdateSpecialties() *PsychologistProfileUpsertBulk {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.UpdateSpecialties()
	})
}

// ClearSpecialties clears the value of the "specialties" field.
func (u *PsychologistProfileUpsertBulk) ClearSpecialties() *PsychologistProfileUpsertBulk {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.ClearSpecialties()
	})
}

// SetBio sets the "bio" field.
func (u *PsychologistProfileUpsertBulk) SetBio(v string) *PsychologistProfileUpsertBulk {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.SetBio(v)
	})
}

// UpdateBio sets the "bio" field to the value that was provided on create.
func (u *PsychologistProfileUpsertBulk) UpdateBio() *PsychologistProfileUpsertBulk {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.UpdateBio()
	})
}

// ClearBio clears the value of the "bio" field.
func (u *PsychologistProfileUpsertBulk) ClearBio() *PsychologistProfileUpsertBulk {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.ClearBio()
	})
}

// SetSessionPriceCents sets the "session_price_cents" field.
func (u *PsychologistProfileUpsertBulk) SetSessionPriceCents(v int64) *PsychologistProfileUpsertBulk {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.SetSessionPriceCents(v)
	})
}

// AddSessionPriceCents adds v to the "session_price_cents" field.
func (u *PsychologistProfileUpsertBulk) AddSessionPriceCents(v int64) *PsychologistProfileUpsertBulk {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.AddSessionPriceCents(v)
	})
}

// UpdateSessionPriceCents sets the "session_price_cents" field to the value that was provided on create.
func (u *PsychologistProfileUpsertBulk) UpdateSessionPriceCents() *PsychologistProfileUpsertBulk {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.UpdateSessionPriceCents()
	})
}

// ClearSessionPriceCents clears the value of the "session_price_cents" field.
func (u *PsychologistProfileUpsertBulk) ClearSessionPriceCents() *PsychologistProfileUpsertBulk {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.ClearSessionPriceCents()
	})
}

// SetSessionDurationMin sets the "session_duration_min" field.
func (u *PsychologistProfileUpsertBulk) SetSessionDurationMin(v int) *PsychologistProfileUpsertBulk {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.SetSessionDurationMin(v)
	})
}

// AddSessionDurationMin adds v to the "session_duration_min" field.
func (u *PsychologistProfileUpsertBulk) AddSessionDurationMin(v int) *PsychologistProfileUpsertBulk {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.AddSessionDurationMin(v)
	})
}

// UpdateSessionDurationMin sets the "session_duration_min" field to the value that was provided on create.
func (u *PsychologistProfileUpsertBulk) UpdateSessionDurationMin() *PsychologistProfileUpsertBulk {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.UpdateSessionDurationMin()
	})
}

// ClearSessionDurationMin clears the value of the "session_duration_min" field.
func (u *PsychologistProfileUpsertBulk) ClearSessionDurationMin() *PsychologistProfileUpsertBulk {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.ClearSessionDurationMin()
	})
}

// SetTimezone sets the "timezone" field.
func (u *PsychologistProfileUpsertBulk) SetTimezone(v string) *PsychologistProfileUpsertBulk {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.SetTimezone(v)
	})
}

// UpdateTimezone sets the "timezone" field to the value that was provided on create.
func (u *PsychologistProfileUpsertBulk) UpdateTimezone() *PsychologistProfileUpsertBulk {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.UpdateTimezone()
	})
}

// SetWorkingHours sets the "working_hours" field.
func (u *PsychologistProfileUpsertBulk) SetWorkingHours(v map[string]interface{}) *PsychologistProfileUpsertBulk {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.SetWorkingHours(v)
	})
}

// UpdateWorkingHours sets the "working_hours" field to the value that was provided on create.
func (u *PsychologistProfileUpsertBulk) UpdateWorkingHours() *PsychologistProfileUpsertBulk {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.UpdateWorkingHours()
	})
}

// ClearWorkingHours clears the value of the "working_hours" field.
func (u *PsychologistProfileUpsertBulk) ClearWorkingHours() *PsychologistProfileUpsertBulk {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.ClearWorkingHours()
	})
}

// SetSlotGranularityMin sets the "slot_granularity_min" field.
func (u *PsychologistProfileUpsertBulk) SetSlotGranularityMin(v int) *PsychologistProfileUpsertBulk {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.SetSlotGranularityMin(v)
	})
}

// AddSlotGranularityMin adds v to the "slot_granularity_min" field.
func (u *PsychologistProfileUpsertBulk) AddSlotGranularityMin(v int) *PsychologistProfileUpsertBulk {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.AddSlotGranularityMin(v)
	})
}

// UpdateSlotGranularityMin sets the "slot_granularity_min" field to the value that was provided on create.
func (u *PsychologistProfileUpsertBulk) UpdateSlotGranularityMin() *PsychologistProfileUpsertBulk {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.UpdateSlotGranularityMin()
	})
}

// SetIsAccepting sets the "is_accepting" field.
func (u *PsychologistProfileUpsertBulk) SetIsAccepting(v bool) *PsychologistProfileUpsertBulk {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.SetIsAccepting(v)
	})
}

// UpdateIsAccepting sets the "is_accepting" field to the value that was provided on create.
func (u *PsychologistProfileUpsertBulk) UpdateIsAccepting() *PsychologistProfileUpsertBulk {
	return u.Update(func(s *PsychologistProfileUpsert) {
		s.UpdateIsAccepting()
	})
}

// Exec executes the query.
func (u *PsychologistProfileUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the PsychologistProfileCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PsychologistProfileCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PsychologistProfileUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
