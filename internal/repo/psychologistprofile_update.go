// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/amparasaude/ampara_backend/internal/repo/clinicmember"
	"github.com/amparasaude/ampara_backend/internal/repo/predicate"
	"github.com/amparasaude/ampara_backend/internal/repo/psychologistprofile"
	"github.com/google/uuid"
)

// PsychologistProfileUpdate is the builder for updating PsychologistProfile entities.
type PsychologistProfileUpdate struct {
	config
	hooks    []Hook
	mutation *PsychologistProfileMutation
}

// Where appends a list predicates to the PsychologistProfileUpdate builder.
func (_u *PsychologistProfileUpdate) Where(ps ...predicate.PsychologistProfile) *PsychologistProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PsychologistProfileUpdate) SetUpdatedAt(v time.Time) *PsychologistProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClinicMemberID sets the "clinic_member_id" field.
func (_u *PsychologistProfileUpdate) SetClinicMemberID(v uuid.UUID) *PsychologistProfileUpdate {
	_u.mutation.SetClinicMemberID(v)
	return _u
}

// SetNillableClinicMemberID sets the "clinic_member_id" field if the given value is not nil.
func (_u *PsychologistProfileUpdate) SetNillableClinicMemberID(v *uuid.UUID) *PsychologistProfileUpdate {
	if v != nil {
		_u.SetClinicMemberID(*v)
	}
	return _u
}

// SetCrpLicense sets the "crp_license" field.
func (_u *PsychologistProfileUpdate) SetCrpLicense(v string) *PsychologistProfileUpdate {
	_u.mutation.SetCrpLicense(v)
	return _u
}

// SetNillableCrpLicense sets the "crp_license" field if the given value is not nil.
func (_u *PsychologistProfileUpdate) SetNillableCrpLicense(v *string) *PsychologistProfileUpdate {
	if v != nil {
		_u.SetCrpLicense(*v)
	}
	return _u
}

// ClearCrpLicense clears the value of the "crp_license" field.
func (_u *PsychologistProfileUpdate) ClearCrpLicense() *PsychologistProfileUpdate {
	_u.mutation.ClearCrpLicense()
	return _u
}

// SetApproach sets the "approach" field.
func (_u *PsychologistProfileUpdate) SetApproach(v string) *PsychologistProfileUpdate {
	_u.mutation.SetApproach(v)
	return _u
}

// SetNillableApproach sets the "approach" field if the given value is not nil.
func (_u *PsychologistProfileUpdate) SetNillableApproach(v *string) *PsychologistProfileUpdate {
	if v != nil {
		_u.SetApproach(*v)
	}
	return _u
}

// ClearApproach clears the value of the "approach" field.
func (_u *PsychologistProfileUpdate) ClearApproach() *PsychologistProfileUpdate {
	_u.mutation.ClearApproach()
	return _u
}

// SetSpecialties sets the "specialties" field.
func (_u *PsychologistProfileUpdate) SetSpecialties(v []string) *PsychologistProfileUpdate {
	_u.mutation.SetSpecialties(v)
	return _u
}

// AppendSpecialties appends value to the "specialties" field.
func (_u *PsychologistProfileUpdate) AppendSpecialties(v []string) *PsychologistProfileUpdate {
	_u.mutation.AppendSpecialties(v)
	return _u
}

// ClearSpecialties clears the value of the "specialties" field.
func (_u *PsychologistProfileUpdate) ClearSpecialties() *PsychologistProfileUpdate {
	_u.mutation.ClearSpecialties()
	return _u
}

// SetBio sets the "bio" field.
func (_u *PsychologistProfileUpdate) SetBio(v string) *PsychologistProfileUpdate {
	_u.mutation.SetBio(v)
	return _u
}

// SetNillableBio sets the "bio" field if the given value is not nil.
func (_u *PsychologistProfileUpdate) SetNillableBio(v *string) *PsychologistProfileUpdate {
	if v != nil {
		_u.SetBio(*v)
	}
	return _u
}

// ClearBio clears the value of the "bio" field.
func (_u *PsychologistProfileUpdate) ClearBio() *PsychologistProfileUpdate {
	_u.mutation.ClearBio()
	return _u
}

// SetSessionPriceCents sets the "session_price_cents" field.
func (_u *PsychologistProfileUpdate) SetSessionPriceCents(v int64) *PsychologistProfileUpdate {
	_u.mutation.ResetSessionPriceCents()
	_u.mutation.SetSessionPriceCents(v)
	return _u
}

// SetNillableSessionPriceCents sets the "session_price_cents" field if the given value is not nil.
func (_u *PsychologistProfileUpdate) SetNillableSessionPriceCents(v *int64) *PsychologistProfileUpdate {
	if v != nil {
		_u.SetSessionPriceCents(*v)
	}
	return _u
}

// AddSessionPriceCents adds value to the "session_price_cents" field.
func (_u *PsychologistProfileUpdate) AddSessionPriceCents(v int64) *PsychologistProfileUpdate {
	_u.mutation.AddSessionPriceCents(v)
	return _u
}

// ClearSessionPriceCents clears the value of the "session_price_cents" field.
func (_u *PsychologistProfileUpdate) ClearSessionPriceCents() *PsychologistProfileUpdate {
	_u.mutation.ClearSessionPriceCents()
	return _u
}

// SetSessionDurationMin sets the "session_duration_min" field.
func (_u *PsychologistProfileUpdate) SetSessionDurationMin(v int) *PsychologistProfileUpdate {
	_u.mutation.ResetSessionDurationMin()
	_u.mutation.SetSessionDurationMin(v)
	return _u
}

// SetNillableSessionDurationMin sets the "session_duration_min" field if the given value is not nil.
func (_u *PsychologistProfileUpdate) SetNillableSessionDurationMin(v *int) *PsychologistProfileUpdate {
	if v != nil {
		_u.SetSessionDurationMin(*v)
	}
	return _u
}

// AddSessionDurationMin adds value to the "session_duration_min" field.
func (_u *PsychologistProfileUpdate) AddSessionDurationMin(v int) *PsychologistProfileUpdate {
	_u.mutation.AddSessionDurationMin(v)
	return _u
}

// ClearSessionDurationMin clears the value of the "session_duration_min" field.
func (_u *PsychologistProfileUpdate) ClearSessionDurationMin() *PsychologistProfileUpdate {
	_u.mutation.ClearSessionDurationMin()
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *PsychologistProfileUpdate) SetTimezone(v string) *PsychologistProfileUpdate {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *PsychologistProfileUpdate) SetNillableTimezone(v *string) *PsychologistProfileUpdate {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetWorkingHours sets the "working_hours" field.
func (_u *PsychologistProfileUpdate) SetWorkingHours(v map[string]interface{}) *PsychologistProfileUpdate {
	_u.mutation.SetWorkingHours(v)
	return _u
}

// ClearWorkingHours clears the value of the "working_hours" field.
func (_u *PsychologistProfileUpdate) ClearWorkingHours() *PsychologistProfileUpdate {
	_u.mutation.ClearWorkingHours()
	return _u
}

// SetSlotGranularityMin sets the "slot_granularity_min" field.
func (_u *PsychologistProfileUpdate) SetSlotGranularityMin(v int) *PsychologistProfileUpdate {
	_u.mutation.ResetSlotGranularityMin()
	_u.mutation.SetSlotGranularityMin(v)
	return _u
}

// SetNillableSlotGranularityMin sets the "slot_granularity_min" field if the given value is not nil.
func (_u *PsychologistProfileUpdate) SetNillableSlotGranularityMin(v *int) *PsychologistProfileUpdate {
	if v != nil {
		_u.SetSlotGranularityMin(*v)
	}
	return _u
}

// AddSlotGranularityMin adds value to the "slot_granularity_min" field.
func (_u *PsychologistProfileUpdate) AddSlotGranularityMin(v int) *PsychologistProfileUpdate {
	_u.mutation.AddSlotGranularityMin(v)
	return _u
}

// SetIsAccepting sets the "is_accepting" field.
func (_u *PsychologistProfileUpdate) SetIsAccepting(v bool) *PsychologistProfileUpdate {
	_u.mutation.SetIsAccepting(v)
	return _u
}

// SetNillableIsAccepting sets the "is_accepting" field if the given value is not nil.
func (_u *PsychologistProfileUpdate) SetNillableIsAccepting(v *bool) *PsychologistProfileUpdate {
	if v != nil {
		_u.SetIsAccepting(*v)
	}
	return _u
}

// SetMemberID sets the "member" edge to the ClinicMember entity by ID.
func (_u *PsychologistProfileUpdate) SetMemberID(id uuid.UUID) *PsychologistProfileUpdate {
	_u.mutation.SetMemberID(id)
	return _u
}

// SetMember sets the "member" edge to the ClinicMember entity.
func (_u *PsychologistProfileUpdate) SetMember(v *ClinicMember) *PsychologistProfileUpdate {
	return _u.SetMemberID(v.ID)
}

// Mutation returns the PsychologistProfileMutation object of the builder.
func (_u *PsychologistProfileUpdate) Mutation() *PsychologistProfileMutation {
	return _u.mutation
}

// ClearMember clears the "member" edge to the ClinicMember entity.
func (_u *PsychologistProfileUpdate) ClearMember() *PsychologistProfileUpdate {
	_u.mutation.ClearMember()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PsychologistProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PsychologistProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PsychologistProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PsychologistProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PsychologistProfileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := psychologistprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PsychologistProfileUpdate) check() error {
	if v, ok := _u.mutation.CrpLicense(); ok {
		if err := psychologistprofile.CrpLicenseValidator(v); err != nil {
			return &ValidationError{Name: "crp_license", err: fmt.Errorf(`repo: validator failed for field "PsychologistProfile.crp_license": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Approach(); ok {
		if err := psychologistprofile.ApproachValidator(v); err != nil {
			return &ValidationError{Name: "approach", err: fmt.Errorf(`repo: validator failed for field "PsychologistProfile.approach": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Timezone(); ok {
		if err := psychologistprofile.TimezoneValidator(v); err != nil {
			return &ValidationError{Name: "timezone", err: fmt.Errorf(`repo: validator failed for field "PsychologistProfile.timezone": %w`, err)}
		}
	}
	if _u.mutation.MemberCleared() && len(_u.mutation.MemberIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "PsychologistProfile.member"`)
	}
	return nil
}

func (_u *PsychologistProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(psychologistprofile.Table, psychologistprofile.Columns, sqlgraph.NewFieldSpec(psychologistprofile.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(psychologistprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CrpLicense(); ok {
		_spec.SetField(psychologistprofile.FieldCrpLicense, field.TypeString, value)
	}
	if _u.mutation.CrpLicenseCleared() {
		_spec.ClearField(psychologistprofile.FieldCrpLicense, field.TypeString)
	}
	if value, ok := _u.mutation.Approach(); ok {
		_spec.SetField(psychologistprofile.FieldApproach, field.TypeString, value)
	}
	if _u.mutation.ApproachCleared() {
		_spec.ClearField(psychologistprofile.FieldApproach, field.TypeString)
	}
	if value, ok := _u.mutation.Specialties(); ok {
		_spec.SetField(psychologistprofile.FieldSpecialties, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSpecialties(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, psychologistprofile.FieldSpecialties, value)
		})
	}
	if _u.mutation.SpecialtiesCleared() {
		_spec.ClearField(psychologistprofile.FieldSpecialties, field.TypeJSON)
	}
	if value, ok := _u.mutation.Bio(); ok {
		_spec.SetField(psychologistprofile.FieldBio, field.TypeString, value)
	}
	if _u.mutation.BioCleared() {
		_spec.ClearField(psychologistprofile.FieldBio, field.TypeString)
	}
	if value, ok := _u.mutation.SessionPriceCents(); ok {
		_spec.SetField(psychologistprofile.FieldSessionPriceCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSessionPriceCents(); ok {
		_spec.AddField(psychologistprofile.FieldSessionPriceCents, field.TypeInt64, value)
	}
	if _u.mutation.SessionPriceCentsCleared() {
		_spec.ClearField(psychologistprofile.FieldSessionPriceCents, field.TypeInt64)
	}
	if value, ok := _u.mutation.SessionDurationMin(); ok {
		_spec.SetField(psychologistprofile.FieldSessionDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionDurationMin(); ok {
		_spec.AddField(psychologistprofile.FieldSessionDurationMin, field.TypeInt, value)
	}
	if _u.mutation.SessionDurationMinCleared() {
		_spec.ClearField(psychologistprofile.FieldSessionDurationMin, field.TypeInt)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(psychologistprofile.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorkingHours(); ok {
		_spec.SetField(psychologistprofile.FieldWorkingHours, field.TypeJSON, value)
	}
	if _u.mutation.WorkingHoursCleared() {
		_spec.ClearField(psychologistprofile.FieldWorkingHours, field.TypeJSON)
	}
	if value, ok := _u.mutation.SlotGranularityMin(); ok {
		_spec.SetField(psychologistprofile.FieldSlotGranularityMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSlotGranularityMin(); ok {
		_spec.AddField(psychologistprofile.FieldSlotGranularityMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsAccepting(); ok {
		_spec.SetField(psychologistprofile.FieldIsAccepting, field.TypeBool, value)
	}
	if _u.mutation.MemberCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MemberIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{psychologistprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PsychologistProfileUpdateOne is the builder for updating a single PsychologistProfile entity.
type PsychologistProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PsychologistProfileMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PsychologistProfileUpdateOne) SetUpdatedAt(v time.Time) *PsychologistProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClinicMemberID sets the "clinic_member_id" field.
func (_u *PsychologistProfileUpdateOne) SetClinicMemberID(v uuid.UUID) *PsychologistProfileUpdateOne {
	_u.mutation.SetClinicMemberID(v)
	return _u
}

// SetNillableClinicMemberID sets the "clinic_member_id" field if the given value is not nil.
func (_u *PsychologistProfileUpdateOne) SetNillableClinicMemberID(v *uuid.UUID) *PsychologistProfileUpdateOne {
	if v != nil {
		_u.SetClinicMemberID(*v)
	}
	return _u
}

// SetCrpLicense sets the "crp_license" field.
func (_u *PsychologistProfileUpdateOne) SetCrpLicense(v string) *PsychologistProfileUpdateOne {
	_u.mutation.SetCrpLicense(v)
	return _u
}

// SetNillableCrpLicense sets the "crp_license" field if the given value is not nil.
func (_u *PsychologistProfileUpdateOne) SetNillableCrpLicense(v *string) *PsychologistProfileUpdateOne {
	if v != nil {
		_u.SetCrpLicense(*v)
	}
	return _u
}

// ClearCrpLicense clears the value of the "crp_license" field.
func (_u *PsychologistProfileUpdateOne) ClearCrpLicense() *PsychologistProfileUpdateOne {
	_u.mutation.ClearCrpLicense()
	return _u
}

// SetApproach sets the "approach" field.
func (_u *PsychologistProfileUpdateOne) SetApproach(v string) *PsychologistProfileUpdateOne {
	_u.mutation.SetApproach(v)
	return _u
}

// SetNillableApproach sets the "approach" field if the given value is not nil.
func (_u *PsychologistProfileUpdateOne) SetNillableApproach(v *string) *PsychologistProfileUpdateOne {
	if v != nil {
		_u.SetApproach(*v)
	}
	return _u
}

// ClearApproach clears the value of the "approach" field.
func (_u *PsychologistProfileUpdateOne) ClearApproach() *PsychologistProfileUpdateOne {
	_u.mutation.ClearApproach()
	return _u
}

// SetSpecialties sets the "specialties" field.
func (_u *PsychologistProfileUpdateOne) SetSpecialties(v []string) *PsychologistProfileUpdateOne {
	_u.mutation.SetSpecialties(v)
	return _u
}

// AppendSpecialties appends value to the "specialties" field.
func (_u *PsychologistProfileUpdateOne) AppendSpecialties(v []string) *PsychologistProfileUpdateOne {
	_u.mutation.AppendSpecialties(v)
	return _u
}

// ClearSpecialties clears the value of the "specialties" field.
func (_u *PsychologistProfileUpdateOne) ClearSpecialties() *PsychologistProfileUpdateOne {
	_u.mutation.ClearSpecialties()
	return _u
}

// SetBio sets the "bio" field.
func (_u *PsychologistProfileUpdateOne) SetBio(v string) *PsychologistProfileUpdateOne {
	_u.mutation.SetBio(v)
	return _u
}

// SetNillableBio sets the "bio" field if the given value is not nil.
func (_u *PsychologistProfileUpdateOne) SetNillableBio(v *string) *PsychologistProfileUpdateOne {
	if v != nil {
		_u.SetBio(*v)
	}
	return _u
}

// ClearBio clears the value of the "bio" field.
func (_u *PsychologistProfileUpdateOne) ClearBio() *PsychologistProfileUpdateOne {
	_u.mutation.ClearBio()
	return _u
}

// SetSessionPriceCents sets the "session_price_cents" field.
func (_u *PsychologistProfileUpdateOne) SetSessionPriceCents(v int64) *PsychologistProfileUpdateOne {
	_u.mutation.ResetSessionPriceCents()
	_u.mutation.SetSessionPriceCents(v)
	return _u
}

// SetNillableSessionPriceCents sets the "session_price_cents" field if the given value is not nil.
func (_u *PsychologistProfileUpdateOne) SetNillableSessionPriceCents(v *int64) *PsychologistProfileUpdateOne {
	if v != nil {
		_u.SetSessionPriceCents(*v)
	}
	return _u
}

// AddSessionPriceCents adds value to the "session_price_cents" field.
func (_u *PsychologistProfileUpdateOne) AddSessionPriceCents(v int64) *PsychologistProfileUpdateOne {
	_u.mutation.AddSessionPriceCents(v)
	return _u
}

// ClearSessionPriceCents clears the value of the "session_price_cents" field.
func (_u *PsychologistProfileUpdateOne) ClearSessionPriceCents() *PsychologistProfileUpdateOne {
	_u.mutation.ClearSessionPriceCents()
	return _u
}

// SetSessionDurationMin sets the "session_duration_min" field.
func (_u *PsychologistProfileUpdateOne) SetSessionDurationMin(v int) *PsychologistProfileUpdateOne {
	_u.mutation.ResetSessionDurationMin()
	_u.mutation.SetSessionDurationMin(v)
	return _u
}

// SetNillableSessionDurationMin sets the "session_duration_min" field if the given value is not nil.
func (_u *PsychologistProfileUpdateOne) SetNillableSessionDurationMin(v *int) *PsychologistProfileUpdateOne {
	if v != nil {
		_u.SetSessionDurationMin(*v)
	}
	return _u
}

// AddSessionDurationMin adds value to the "session_duration_min" field.
func (_u *PsychologistProfileUpdateOne) AddSessionDurationMin(v int) *PsychologistProfileUpdateOne {
	_u.mutation.AddSessionDurationMin(v)
	return _u
}

// ClearSessionDurationMin clears the value of the "session_duration_min" field.
func (_u *PsychologistProfileUpdateOne) ClearSessionDurationMin() *PsychologistProfileUpdateOne {
	_u.mutation.ClearSessionDurationMin()
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *PsychologistProfileUpdateOne) SetTimezone(v string) *PsychologistProfileUpdateOne {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *PsychologistProfileUpdateOne) SetNillableTimezone(v *string) *PsychologistProfileUpdateOne {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetWorkingHours sets the "working_hours" field.
func (_u *PsychologistProfileUpdateOne) SetWorkingHours(v map[string]interface{}) *PsychologistProfileUpdateOne {
	_u.mutation.SetWorkingHours(v)
	return _u
}

// ClearWorkingHours clears the value of the "working_hours" field.
func (_u *PsychologistProfileUpdateOne) ClearWorkingHours() *PsychologistProfileUpdateOne {
	_u.mutation.ClearWorkingHours()
	return _u
}

// SetSlotGranularityMin sets the "slot_granularity_min" field.
func (_u *PsychologistProfileUpdateOne) SetSlotGranularityMin(v int) *PsychologistProfileUpdateOne {
	_u.mutation.ResetSlotGranularityMin()
	_u.mutation.SetSlotGranularityMin(v)
	return _u
}

// SetNillableSlotGranularityMin sets the "slot_granularity_min" field if the given value is not nil.
func (_u *PsychologistProfileUpdateOne) SetNillableSlotGranularityMin(v *int) *PsychologistProfileUpdateOne {
	if v != nil {
		_u.SetSlotGranularityMin(*v)
	}
	return _u
}

// AddSlotGranularityMin adds value to the "slot_granularity_min" field.
func (_u *PsychologistProfileUpdateOne) AddSlotGranularityMin(v int) *PsychologistProfileUpdateOne {
	_u.mutation.AddSlotGranularityMin(v)
	return _u
}

// SetIsAccepting sets the "is_accepting" field.
func (_u *PsychologistProfileUpdateOne) SetIsAccepting(v bool) *PsychologistProfileUpdateOne {
	_u.mutation.SetIsAccepting(v)
	return _u
}

// SetNillableIsAccepting sets the "is_accepting" field if the given value is not nil.
func (_u *PsychologistProfileUpdateOne) SetNillableIsAccepting(v *bool) *PsychologistProfileUpdateOne {
	if v != nil {
		_u.SetIsAccepting(*v)
	}
	return _u
}

// SetMemberID sets the "member" edge to the ClinicMember entity by ID.
func (_u *PsychologistProfileUpdateOne) SetMemberID(id uuid.UUID) *PsychologistProfileUpdateOne {
	_u.mutation.SetMemberID(id)
	return _u
}

// SetMember sets the "member" edge to the ClinicMember entity.
func (_u *PsychologistProfileUpdateOne) SetMember(v *ClinicMember) *PsychologistProfileUpdateOne {
	return _u.SetMemberID(v.ID)
}

// Mutation returns the PsychologistProfileMutation object of the builder.
func (_u *PsychologistProfileUpdateOne) Mutation() *PsychologistProfileMutation {
	return _u.mutation
}

// ClearMember clears the "member" edge to the ClinicMember entity.
func (_u *PsychologistProfileUpdateOne) ClearMember() *PsychologistProfileUpdateOne {
	_u.mutation.ClearMember()
	return _u
}

// Where appends a list predicates to the PsychologistProfileUpdate builder.
func (_u *PsychologistProfileUpdateOne) Where(ps ...predicate.PsychologistProfile) *PsychologistProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PsychologistProfileUpdateOne) Select(field string, fields ...string) *PsychologistProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PsychologistProfile entity.
func (_u *PsychologistProfileUpdateOne) Save(ctx context.Context) (*PsychologistProfile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PsychologistProfileUpdateOne) SaveX(ctx context.Context) *PsychologistProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PsychologistProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PsychologistProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PsychologistProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := psychologistprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PsychologistProfileUpdateOne) check() error {
	if v, ok := _u.mutation.CrpLicense(); ok {
		if err := psychologistprofile.CrpLicenseValidator(v); err != nil {
			return &ValidationError{Name: "crp_license", err: fmt.Errorf(`repo: validator failed for field "PsychologistProfile.crp_license": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Approach(); ok {
		if err := psychologistprofile.ApproachValidator(v); err != nil {
			return &ValidationError{Name: "approach", err: fmt.Errorf(`repo: validator failed for field "PsychologistProfile.approach": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Timezone(); ok {
		if err := psychologistprofile.TimezoneValidator(v); err != nil {
			return &ValidationError{Name: "timezone", err: fmt.Errorf(`repo: validator failed for field "PsychologistProfile.timezone": %w`, err)}
		}
	}
	if _u.mutation.MemberCleared() && len(_u.mutation.MemberIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "PsychologistProfile.member"`)
	}
	return nil
}

func (_u *PsychologistProfileUpdateOne) sqlSave(ctx context.Context) (_node *PsychologistProfile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(psychologistprofile.Table, psychologistprofile.Columns, sqlgraph.NewFieldSpec(psychologistprofile.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "PsychologistProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, psychologistprofile.FieldID)
		for _, f := range fields {
			if !psychologistprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != psychologistprofile.FieldID {
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
		_spec.SetField(psychologistprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CrpLicense(); ok {
		_spec.SetField(psychologistprofile.FieldCrpLicense, field.TypeString, value)
	}
	if _u.mutation.CrpLicenseCleared() {
		_spec.ClearField(psychologistprofile.FieldCrpLicense, field.TypeString)
	}
	if value, ok := _u.mutation.Approach(); ok {
		_spec.SetField(psychologistprofile.FieldApproach, field.TypeString, value)
	}
	if _u.mutation.ApproachCleared() {
		_spec.ClearField(psychologistprofile.FieldApproach, field.TypeString)
	}
	if value, ok := _u.mutation.Specialties(); ok {
		_spec.SetField(psychologistprofile.FieldSpecialties, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSpecialties(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, psychologistprofile.FieldSpecialties, value)
		})
	}
	if _u.mutation.SpecialtiesCleared() {
		_spec.ClearField(psychologistprofile.FieldSpecialties, field.TypeJSON)
	}
	if value, ok := _u.mutation.Bio(); ok {
		_spec.SetField(psychologistprofile.FieldBio, field.TypeString, value)
	}
	if _u.mutation.BioCleared() {
		_spec.ClearField(psychologistprofile.FieldBio, field.TypeString)
	}
	if value, ok := _u.mutation.SessionPriceCents(); ok {
		_spec.SetField(psychologistprofile.FieldSessionPriceCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSessionPriceCents(); ok {
		_spec.AddField(psychologistprofile.FieldSessionPriceCents, field.TypeInt64, value)
	}
	if _u.mutation.SessionPriceCentsCleared() {
		_spec.ClearField(psychologistprofile.FieldSessionPriceCents, field.TypeInt64)
	}
	if value, ok := _u.mutation.SessionDurationMin(); ok {
		_spec.SetField(psychologistprofile.FieldSessionDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionDurationMin(); ok {
		_spec.AddField(psychologistprofile.FieldSessionDurationMin, field.TypeInt, value)
	}
	if _u.mutation.SessionDurationMinCleared() {
		_spec.ClearField(psychologistprofile.FieldSessionDurationMin, field.TypeInt)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(psychologistprofile.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorkingHours(); ok {
		_spec.SetField(psychologistprofile.FieldWorkingHours, field.TypeJSON, value)
	}
	if _u.mutation.WorkingHoursCleared() {
		_spec.ClearField(psychologistprofile.FieldWorkingHours, field.TypeJSON)
	}
	if value, ok := _u.mutation.SlotGranularityMin(); ok {
		_spec.SetField(psychologistprofile.FieldSlotGranularityMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSlotGranularityMin(); ok {
		_spec.AddField(psychologistprofile.FieldSlotGranularityMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsAccepting(); ok {
		_spec.SetField(psychologistprofile.FieldIsAccepting, field.TypeBool, value)
	}
	if _u.mutation.MemberCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MemberIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PsychologistProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{psychologistprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
