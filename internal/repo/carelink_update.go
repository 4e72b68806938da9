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
	"github.com/amparasaude/ampara_backend/internal/repo/carelink"
	"github.com/amparasaude/ampara_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// CareLinkUpdate is the builder for updating CareLink entities.
type CareLinkUpdate struct {
	config
	hooks    []Hook
	mutation *CareLinkMutation
}

// Where appends a list predicates to the CareLinkUpdate builder.
func (_u *CareLinkUpdate) Where(ps ...predicate.CareLink) *CareLinkUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CareLinkUpdate) SetUpdatedAt(v time.Time) *CareLinkUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *CareLinkUpdate) SetClinicID(v uuid.UUID) *CareLinkUpdate {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *CareLinkUpdate) SetNillableClinicID(v *uuid.UUID) *CareLinkUpdate {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetPsychologistID sets the "psychologist_id" field.
func (_u *CareLinkUpdate) SetPsychologistID(v uuid.UUID) *CareLinkUpdate {
	_u.mutation.SetPsychologistID(v)
	return _u
}

// SetNillablePsychologistID sets the "psychologist_id" field if the given value is not nil.
func (_u *CareLinkUpdate) SetNillablePsychologistID(v *uuid.UUID) *CareLinkUpdate {
	if v != nil {
		_u.SetPsychologistID(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *CareLinkUpdate) SetPatientID(v uuid.UUID) *CareLinkUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *CareLinkUpdate) SetNillablePatientID(v *uuid.UUID) *CareLinkUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CareLinkUpdate) SetStatus(v carelink.Status) *CareLinkUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CareLinkUpdate) SetNillableStatus(v *carelink.Status) *CareLinkUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetShareDiary sets the "share_diary" field.
func (_u *CareLinkUpdate) SetShareDiary(v bool) *CareLinkUpdate {
	_u.mutation.SetShareDiary(v)
	return _u
}

// SetNillableShareDiary sets the "share_diary" field if the given value is not nil.
func (_u *CareLinkUpdate) SetNillableShareDiary(v *bool) *CareLinkUpdate {
	if v != nil {
		_u.SetShareDiary(*v)
	}
	return _u
}

// SetShareMood sets the "share_mood" field.
func (_u *CareLinkUpdate) SetShareMood(v bool) *CareLinkUpdate {
	_u.mutation.SetShareMood(v)
	return _u
}

// SetNillableShareMood sets the "share_mood" field if the given value is not nil.
func (_u *CareLinkUpdate) SetNillableShareMood(v *bool) *CareLinkUpdate {
	if v != nil {
		_u.SetShareMood(*v)
	}
	return _u
}

// SetInvitedAt sets the "invited_at" field.
func (_u *CareLinkUpdate) SetInvitedAt(v time.Time) *CareLinkUpdate {
	_u.mutation.SetInvitedAt(v)
	return _u
}

// SetNillableInvitedAt sets the "invited_at" field if the given value is not nil.
func (_u *CareLinkUpdate) SetNillableInvitedAt(v *time.Time) *CareLinkUpdate {
	if v != nil {
		_u.SetInvitedAt(*v)
	}
	return _u
}

// ClearInvitedAt clears the value of the "invited_at" field.
func (_u *CareLinkUpdate) ClearInvitedAt() *CareLinkUpdate {
	_u.mutation.ClearInvitedAt()
	return _u
}

// SetConsentedAt sets the "consented_at" field.
func (_u *CareLinkUpdate) SetConsentedAt(v time.Time) *CareLinkUpdate {
	_u.mutation.SetConsentedAt(v)
	return _u
}

// SetNillableConsentedAt sets the "consented_at" field if the given value is not nil.
func (_u *CareLinkUpdate) SetNillableConsentedAt(v *time.Time) *CareLinkUpdate {
	if v != nil {
		_u.SetConsentedAt(*v)
	}
	return _u
}

// ClearConsentedAt clears the value of the "consented_at" field.
func (_u *CareLinkUpdate) ClearConsentedAt() *CareLinkUpdate {
	_u.mutation.ClearConsentedAt()
	return _u
}

// SetRevokedAt sets the "revoked_at" field.
func (_u *CareLinkUpdate) SetRevokedAt(v time.Time) *CareLinkUpdate {
	_u.mutation.SetRevokedAt(v)
	return _u
}

// SetNillableRevokedAt sets the "revoked_at" field if the given value is not nil.
func (_u *CareLinkUpdate) SetNillableRevokedAt(v *time.Time) *CareLinkUpdate {
	if v != nil {
		_u.SetRevokedAt(*v)
	}
	return _u
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (_u *CareLinkUpdate) ClearRevokedAt() *CareLinkUpdate {
	_u.mutation.ClearRevokedAt()
	return _u
}

// SetRevokeReason sets the "revoke_reason" field.
func (_u *CareLinkUpdate) SetRevokeReason(v string) *CareLinkUpdate {
	_u.mutation.SetRevokeReason(v)
	return _u
}

// SetNillableRevokeReason sets the "revoke_reason" field if the given value is not nil.
func (_u *CareLinkUpdate) SetNillableRevokeReason(v *string) *CareLinkUpdate {
	if v != nil {
		_u.SetRevokeReason(*v)
	}
	return _u
}

// ClearRevokeReason clears the value of the "revoke_reason" field.
func (_u *CareLinkUpdate) ClearRevokeReason() *CareLinkUpdate {
	_u.mutation.ClearRevokeReason()
	return _u
}

// Mutation returns the CareLinkMutation object of the builder.
func (_u *CareLinkUpdate) Mutation() *CareLinkMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CareLinkUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CareLinkUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CareLinkUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CareLinkUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CareLinkUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := carelink.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CareLinkUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := carelink.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "CareLink.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RevokeReason(); ok {
		if err := carelink.RevokeReasonValidator(v); err != nil {
			return &ValidationError{Name: "revoke_reason", err: fmt.Errorf(`repo: validator failed for field "CareLink.revoke_reason": %w`, err)}
		}
	}
	return nil
}

func (_u *CareLinkUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(carelink.Table, carelink.Columns, sqlgraph.NewFieldSpec(carelink.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(carelink.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClinicID(); ok {
		_spec.SetField(carelink.FieldClinicID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PsychologistID(); ok {
		_spec.SetField(carelink.FieldPsychologistID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(carelink.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(carelink.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ShareDiary(); ok {
		_spec.SetField(carelink.FieldShareDiary, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ShareMood(); ok {
		_spec.SetField(carelink.FieldShareMood, field.TypeBool, value)
	}
	if value, ok := _u.mutation.InvitedAt(); ok {
		_spec.SetField(carelink.FieldInvitedAt, field.TypeTime, value)
	}
	if _u.mutation.InvitedAtCleared() {
		_spec.ClearField(carelink.FieldInvitedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ConsentedAt(); ok {
		_spec.SetField(carelink.FieldConsentedAt, field.TypeTime, value)
	}
	if _u.mutation.ConsentedAtCleared() {
		_spec.ClearField(carelink.FieldConsentedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RevokedAt(); ok {
		_spec.SetField(carelink.FieldRevokedAt, field.TypeTime, value)
	}
	if _u.mutation.RevokedAtCleared() {
		_spec.ClearField(carelink.FieldRevokedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RevokeReason(); ok {
		_spec.SetField(carelink.FieldRevokeReason, field.TypeString, value)
	}
	if _u.mutation.RevokeReasonCleared() {
		_spec.ClearField(carelink.FieldRevokeReason, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{carelink.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CareLinkUpdateOne is the builder for updating a single CareLink entity.
type CareLinkUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CareLinkMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CareLinkUpdateOne) SetUpdatedAt(v time.Time) *CareLinkUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *CareLinkUpdateOne) SetClinicID(v uuid.UUID) *CareLinkUpdateOne {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *CareLinkUpdateOne) SetNillableClinicID(v *uuid.UUID) *CareLinkUpdateOne {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetPsychologistID sets the "psychologist_id" field.
func (_u *CareLinkUpdateOne) SetPsychologistID(v uuid.UUID) *CareLinkUpdateOne {
	_u.mutation.SetPsychologistID(v)
	return _u
}

// SetNillablePsychologistID sets the "psychologist_id" field if the given value is not nil.
func (_u *CareLinkUpdateOne) SetNillablePsychologistID(v *uuid.UUID) *CareLinkUpdateOne {
	if v != nil {
		_u.SetPsychologistID(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *CareLinkUpdateOne) SetPatientID(v uuid.UUID) *CareLinkUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *CareLinkUpdateOne) SetNillablePatientID(v *uuid.UUID) *CareLinkUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CareLinkUpdateOne) SetStatus(v carelink.Status) *CareLinkUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CareLinkUpdateOne) SetNillableStatus(v *carelink.Status) *CareLinkUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetShareDiary sets the "share_diary" field.
func (_u *CareLinkUpdateOne) SetShareDiary(v bool) *CareLinkUpdateOne {
	_u.mutation.SetShareDiary(v)
	return _u
}

// SetNillableShareDiary sets the "share_diary" field if the given value is not nil.
func (_u *CareLinkUpdateOne) SetNillableShareDiary(v *bool) *CareLinkUpdateOne {
	if v != nil {
		_u.SetShareDiary(*v)
	}
	return _u
}

// SetShareMood sets the "share_mood" field.
func (_u *CareLinkUpdateOne) SetShareMood(v bool) *CareLinkUpdateOne {
	_u.mutation.SetShareMood(v)
	return _u
}

// SetNillableShareMood sets the "share_mood" field if the given value is not nil.
func (_u *CareLinkUpdateOne) SetNillableShareMood(v *bool) *CareLinkUpdateOne {
	if v != nil {
		_u.SetShareMood(*v)
	}
	return _u
}

// SetInvitedAt sets the "invited_at" field.
func (_u *CareLinkUpdateOne) SetInvitedAt(v time.Time) *CareLinkUpdateOne {
	_u.mutation.SetInvitedAt(v)
	return _u
}

// SetNillableInvitedAt sets the "invited_at" field if the given value is not nil.
func (_u *CareLinkUpdateOne) SetNillableInvitedAt(v *time.Time) *CareLinkUpdateOne {
	if v != nil {
		_u.SetInvitedAt(*v)
	}
	return _u
}

// ClearInvitedAt clears the value of the "invited_at" field.
func (_u *CareLinkUpdateOne) ClearInvitedAt() *CareLinkUpdateOne {
	_u.mutation.ClearInvitedAt()
	return _u
}

// SetConsentedAt sets the "consented_at" field.
func (_u *CareLinkUpdateOne) SetConsentedAt(v time.Time) *CareLinkUpdateOne {
	_u.mutation.SetConsentedAt(v)
	return _u
}

// SetNillableConsentedAt sets the "consented_at" field if the given value is not nil.
func (_u *CareLinkUpdateOne) SetNillableConsentedAt(v *time.Time) *CareLinkUpdateOne {
	if v != nil {
		_u.SetConsentedAt(*v)
	}
	return _u
}

// ClearConsentedAt clears the value of the "consented_at" field.
func (_u *CareLinkUpdateOne) ClearConsentedAt() *CareLinkUpdateOne {
	_u.mutation.ClearConsentedAt()
	return _u
}

// SetRevokedAt sets the "revoked_at" field.
func (_u *CareLinkUpdateOne) SetRevokedAt(v time.Time) *CareLinkUpdateOne {
	_u.mutation.SetRevokedAt(v)
	return _u
}

// SetNillableRevokedAt sets the "revoked_at" field if the given value is not nil.
func (_u *CareLinkUpdateOne) SetNillableRevokedAt(v *time.Time) *CareLinkUpdateOne {
	if v != nil {
		_u.SetRevokedAt(*v)
	}
	return _u
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (_u *CareLinkUpdateOne) ClearRevokedAt() *CareLinkUpdateOne {
	_u.mutation.ClearRevokedAt()
	return _u
}

// SetRevokeReason sets the "revoke_reason" field.
func (_u *CareLinkUpdateOne) SetRevokeReason(v string) *CareLinkUpdateOne {
	_u.mutation.SetRevokeReason(v)
	return _u
}

// SetNillableRevokeReason sets the "revoke_reason" field if the given value is not nil.
func (_u *CareLinkUpdateOne) SetNillableRevokeReason(v *string) *CareLinkUpdateOne {
	if v != nil {
		_u.SetRevokeReason(*v)
	}
	return _u
}

// ClearRevokeReason clears the value of the "revoke_reason" field.
func (_u *CareLinkUpdateOne) ClearRevokeReason() *CareLinkUpdateOne {
	_u.mutation.ClearRevokeReason()
	return _u
}

// Mutation returns the CareLinkMutation object of the builder.
func (_u *CareLinkUpdateOne) Mutation() *CareLinkMutation {
	return _u.mutation
}

// Where appends a list predicates to the CareLinkUpdate builder.
func (_u *CareLinkUpdateOne) Where(ps ...predicate.CareLink) *CareLinkUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CareLinkUpdateOne) Select(field string, fields ...string) *CareLinkUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CareLink entity.
func (_u *CareLinkUpdateOne) Save(ctx context.Context) (*CareLink, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CareLinkUpdateOne) SaveX(ctx context.Context) *CareLink {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CareLinkUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CareLinkUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CareLinkUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := carelink.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CareLinkUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := carelink.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "CareLink.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RevokeReason(); ok {
		if err := carelink.RevokeReasonValidator(v); err != nil {
			return &ValidationError{Name: "revoke_reason", err: fmt.Errorf(`repo: validator failed for field "CareLink.revoke_reason": %w`, err)}
		}
	}
	return nil
}

func (_u *CareLinkUpdateOne) sqlSave(ctx context.Context) (_node *CareLink, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(carelink.Table, carelink.Columns, sqlgraph.NewFieldSpec(carelink.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "CareLink.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, carelink.FieldID)
		for _, f := range fields {
			if !carelink.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != carelink.FieldID {
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
		_spec.SetField(carelink.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClinicID(); ok {
		_spec.SetField(carelink.FieldClinicID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PsychologistID(); ok {
		_spec.SetField(carelink.FieldPsychologistID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(carelink.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(carelink.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ShareDiary(); ok {
		_spec.SetField(carelink.FieldShareDiary, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ShareMood(); ok {
		_spec.SetField(carelink.FieldShareMood, field.TypeBool, value)
	}
	if value, ok := _u.mutation.InvitedAt(); ok {
		_spec.SetField(carelink.FieldInvitedAt, field.TypeTime, value)
	}
	if _u.mutation.InvitedAtCleared() {
		_spec.ClearField(carelink.FieldInvitedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ConsentedAt(); ok {
		_spec.SetField(carelink.FieldConsentedAt, field.TypeTime, value)
	}
	if _u.mutation.ConsentedAtCleared() {
		_spec.ClearField(carelink.FieldConsentedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RevokedAt(); ok {
		_spec.SetField(carelink.FieldRevokedAt, field.TypeTime, value)
	}
	if _u.mutation.RevokedAtCleared() {
		_spec.ClearField(carelink.FieldRevokedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RevokeReason(); ok {
		_spec.SetField(carelink.FieldRevokeReason, field.TypeString, value)
	}
	if _u.mutation.RevokeReasonCleared() {
		_spec.ClearField(carelink.FieldRevokeReason, field.TypeString)
	}
	_node = &CareLink{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{carelink.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
