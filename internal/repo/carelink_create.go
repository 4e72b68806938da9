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
	"github.com/amparasaude/ampara_backend/internal/repo/carelink"
	"github.com/google/uuid"
)

// CareLinkCreate is the builder for creating a CareLink entity.
type CareLinkCreate struct {
	config
	mutation *CareLinkMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *CareLinkCreate) SetCreatedAt(v time.Time) *CareLinkCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CareLinkCreate) SetNillableCreatedAt(v *time.Time) *CareLinkCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CareLinkCreate) SetUpdatedAt(v time.Time) *CareLinkCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CareLinkCreate) SetNillableUpdatedAt(v *time.Time) *CareLinkCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetClinicID sets the "clinic_id" field.
func (_c *CareLinkCreate) SetClinicID(v uuid.UUID) *CareLinkCreate {
	_c.mutation.SetClinicID(v)
	return _c
}

// SetPsychologistID sets the "psychologist_id" field.
func (_c *CareLinkCreate) SetPsychologistID(v uuid.UUID) *CareLinkCreate {
	_c.mutation.SetPsychologistID(v)
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *CareLinkCreate) SetPatientID(v uuid.UUID) *CareLinkCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetInviteCode sets the "invite_code" field.
func (_c *CareLinkCreate) SetInviteCode(v string) *CareLinkCreate {
	_c.mutation.SetInviteCode(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *CareLinkCreate) SetStatus(v carelink.Status) *CareLinkCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CareLinkCreate) SetNillableStatus(v *carelink.Status) *CareLinkCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetShareDiary sets the "share_diary" field.
func (_c *CareLinkCreate) SetShareDiary(v bool) *CareLinkCreate {
	_c.mutation.SetShareDiary(v)
	return _c
}

// SetNillableShareDiary sets the "share_diary" field if the given value is not nil.
func (_c *CareLinkCreate) SetNillableShareDiary(v *bool) *CareLinkCreate {
	if v != nil {
		_c.SetShareDiary(*v)
	}
	return _c
}

// SetShareMood sets the "share_mood" field.
func (_c *CareLinkCreate) SetShareMood(v bool) *CareLinkCreate {
	_c.mutation.SetShareMood(v)
	return _c
}

// SetNillableShareMood sets the "share_mood" field if the given value is not nil.
func (_c *CareLinkCreate) SetNillableShareMood(v *bool) *CareLinkCreate {
	if v != nil {
		_c.SetShareMood(*v)
	}
	return _c
}

// SetInvitedAt sets the "invited_at" field.
func (_c *CareLinkCreate) SetInvitedAt(v time.Time) *CareLinkCreate {
	_c.mutation.SetInvitedAt(v)
	return _c
}

// SetNillableInvitedAt sets the "invited_at" field if the given value is not nil.
func (_c *CareLinkCreate) SetNillableInvitedAt(v *time.Time) *CareLinkCreate {
	if v != nil {
		_c.SetInvitedAt(*v)
	}
	return _c
}

// SetConsentedAt sets the "consented_at" field.
func (_c *CareLinkCreate) SetConsentedAt(v time.Time) *CareLinkCreate {
	_c.mutation.SetConsentedAt(v)
	return _c
}

// SetNillableConsentedAt sets the "consented_at" field if the given value is not nil.
func (_c *CareLinkCreate) SetNillableConsentedAt(v *time.Time) *CareLinkCreate {
	if v != nil {
		_c.SetConsentedAt(*v)
	}
	return _c
}

// SetRevokedAt sets the "revoked_at" field.
func (_c *CareLinkCreate) SetRevokedAt(v time.Time) *CareLinkCreate {
	_c.mutation.SetRevokedAt(v)
	return _c
}

// SetNillableRevokedAt sets the "revoked_at" field if the given value is not nil.
func (_c *CareLinkCreate) SetNillableRevokedAt(v *time.Time) *CareLinkCreate {
	if v != nil {
		_c.SetRevokedAt(*v)
	}
	return _c
}

// SetRevokeReason sets the "revoke_reason" field.
func (_c *CareLinkCreate) SetRevokeReason(v string) *CareLinkCreate {
	_c.mutation.SetRevokeReason(v)
	return _c
}

// SetNillableRevokeReason sets the "revoke_reason" field if the given value is not nil.
func (_c *CareLinkCreate) SetNillableRevokeReason(v *string) *CareLinkCreate {
	if v != nil {
		_c.SetRevokeReason(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CareLinkCreate) SetID(v uuid.UUID) *CareLinkCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CareLinkCreate) SetNillableID(v *uuid.UUID) *CareLinkCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the CareLinkMutation object of the builder.
func (_c *CareLinkCreate) Mutation() *CareLinkMutation {
	return _c.mutation
}

// Save creates the CareLink in the database.
func (_c *CareLinkCreate) Save(ctx context.Context) (*CareLink, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CareLinkCreate) SaveX(ctx context.Context) *CareLink {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CareLinkCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CareLinkCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CareLinkCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := carelink.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := carelink.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := carelink.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ShareDiary(); !ok {
		v := carelink.DefaultShareDiary
		_c.mutation.SetShareDiary(v)
	}
	if _, ok := _c.mutation.ShareMood(); !ok {
		v := carelink.DefaultShareMood
		_c.mutation.SetShareMood(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := carelink.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CareLinkCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "CareLink.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "CareLink.updated_at"`)}
	}
	if _, ok := _c.mutation.ClinicID(); !ok {
		return &ValidationError{Name: "clinic_id", err: errors.New(`repo: missing required field "CareLink.clinic_id"`)}
	}
	if _, ok := _c.mutation.PsychologistID(); !ok {
		return &ValidationError{Name: "psychologist_id", err: errors.New(`repo: missing required field "CareLink.psychologist_id"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "CareLink.patient_id"`)}
	}
	if _, ok := _c.mutation.InviteCode(); !ok {
		return &ValidationError{Name: "invite_code", err: errors.New(`repo: missing required field "CareLink.invite_code"`)}
	}
	if v, ok := _c.mutation.InviteCode(); ok {
		if err := carelink.InviteCodeValidator(v); err != nil {
			return &ValidationError{Name: "invite_code", err: fmt.Errorf(`repo: validator failed for field "CareLink.invite_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "CareLink.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := carelink.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "CareLink.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ShareDiary(); !ok {
		return &ValidationError{Name: "share_diary", err: errors.New(`repo: missing required field "CareLink.share_diary"`)}
	}
	if _, ok := _c.mutation.ShareMood(); !ok {
		return &ValidationError{Name: "share_mood", err: errors.New(`repo: missing required field "CareLink.share_mood"`)}
	}
	if v, ok := _c.mutation.RevokeReason(); ok {
		if err := carelink.RevokeReasonValidator(v); err != nil {
			return &ValidationError{Name: "revoke_reason", err: fmt.Errorf(`repo: validator failed for field "CareLink.revoke_reason": %w`, err)}
		}
	}
	return nil
}

func (_c *CareLinkCreate) sqlSave(ctx context.Context) (*CareLink, error) {
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

func (_c *CareLinkCreate) createSpec() (*CareLink, *sqlgraph.CreateSpec) {
	var (
		_node = &CareLink{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(carelink.Table, sqlgraph.NewFieldSpec(carelink.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(carelink.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(carelink.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ClinicID(); ok {
		_spec.SetField(carelink.FieldClinicID, field.TypeUUID, value)
		_node.ClinicID = value
	}
	if value, ok := _c.mutation.PsychologistID(); ok {
		_spec.SetField(carelink.FieldPsychologistID, field.TypeUUID, value)
		_node.PsychologistID = value
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(carelink.FieldPatientID, field.TypeUUID, value)
		_node.PatientID = value
	}
	if value, ok := _c.mutation.InviteCode(); ok {
		_spec.SetField(carelink.FieldInviteCode, field.TypeString, value)
		_node.InviteCode = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(carelink.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ShareDiary(); ok {
		_spec.SetField(carelink.FieldShareDiary, field.TypeBool, value)
		_node.ShareDiary = value
	}
	if value, ok := _c.mutation.ShareMood(); ok {
		_spec.SetField(carelink.FieldShareMood, field.TypeBool, value)
		_node.ShareMood = value
	}
	if value, ok := _c.mutation.InvitedAt(); ok {
		_spec.SetField(carelink.FieldInvitedAt, field.TypeTime, value)
		_node.InvitedAt = &value
	}
	if value, ok := _c.mutation.ConsentedAt(); ok {
		_spec.SetField(carelink.FieldConsentedAt, field.TypeTime, value)
		_node.ConsentedAt = &value
	}
	if value, ok := _c.mutation.RevokedAt(); ok {
		_spec.SetField(carelink.FieldRevokedAt, field.TypeTime, value)
		_node.RevokedAt = &value
	}
	if value, ok := _c.mutation.RevokeReason(); ok {
		_spec.SetField(carelink.FieldRevokeReason, field.TypeString, value)
		_node.RevokeReason = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CareLink.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CareLinkUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *CareLinkCreate) OnConflict(opts ...sql.ConflictOption) *CareLinkUpsertOne {
	_c.conflict = opts
	return &CareLinkUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CareLink.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CareLinkCreate) OnConflictColumns(columns ...string) *CareLinkUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CareLinkUpsertOne{
		create: _c,
	}
}

type (
	// CareLinkUpsertOne is the builder for "upsert"-ing
	//  one CareLink node.
	CareLinkUpsertOne struct {
		create *CareLinkCreate
	}

	// CareLinkUpsert is the "OnConflict" setter.
	CareLinkUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *CareLinkUpsert) SetUpdatedAt(v time.Time) *CareLinkUpsert {
	u.Set(carelink.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CareLinkUpsert) UpdateUpdatedAt() *CareLinkUpsert {
	u.SetExcluded(carelink.FieldUpdatedAt)
	return u
}

// SetClinicID sets the "clinic_id" field.
func (u *CareLinkUpsert) SetClinicID(v uuid.UUID) *CareLinkUpsert {
	u.Set(carelink.FieldClinicID, v)
	return u
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *CareLinkUpsert) UpdateClinicID() *CareLinkUpsert {
	u.SetExcluded(carelink.FieldClinicID)
	return u
}

// SetPsychologistID sets the "psychologist_id" field.
func (u *CareLinkUpsert) SetPsychologistID(v uuid.UUID) *CareLinkUpsert {
	u.Set(carelink.FieldPsychologistID, v)
	return u
}

// UpdatePsychologistID sets the "psychologist_id" field to the value that was provided on create.
func (u *CareLinkUpsert) UpdatePsychologistID() *CareLinkUpsert {
	u.SetExcluded(carelink.FieldPsychologistID)
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *CareLinkUpsert) SetPatientID(v uuid.UUID) *CareLinkUpsert {
	u.Set(carelink.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *CareLinkUpsert) UpdatePatientID() *CareLinkUpsert {
	u.SetExcluded(carelink.FieldPatientID)
	return u
}

// SetStatus sets the "status" field.
func (u *CareLinkUpsert) SetStatus(v carelink.Status) *CareLinkUpsert {
	u.Set(carelink.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CareLinkUpsert) UpdateStatus() *CareLinkUpsert {
	u.SetExcluded(carelink.FieldStatus)
	return u
}

// SetShareDiary sets the "share_diary" field.
func (u *CareLinkUpsert) SetShareDiary(v bool) *CareLinkUpsert {
	u.Set(carelink.FieldShareDiary, v)
	return u
}

// UpdateShareDiary sets the "share_diary" field to the value that was provided on create.
func (u *CareLinkUpsert) UpdateShareDiary() *CareLinkUpsert {
	u.SetExcluded(carelink.FieldShareDiary)
	return u
}

// SetShareMood sets the "share_mood" field.
func (u *CareLinkUpsert) SetShareMood(v bool) *CareLinkUpsert {
	u.Set(carelink.FieldShareMood, v)
	return u
}

// UpdateShareMood sets the "share_mood" field to the value that was provided on create.
func (u *CareLinkUpsert) UpdateShareMood() *CareLinkUpsert {
	u.SetExcluded(carelink.FieldShareMood)
	return u
}

// SetInvitedAt sets the "invited_at" field.
func (u *CareLinkUpsert) SetInvitedAt(v time.Time) *CareLinkUpsert {
	u.Set(carelink.FieldInvitedAt, v)
	return u
}

// UpdateInvitedAt sets the "invited_at" field to the value that was provided on create.
func (u *CareLinkUpsert) UpdateInvitedAt() *CareLinkUpsert {
	u.SetExcluded(carelink.FieldInvitedAt)
	return u
}

// ClearInvitedAt clears the value of the "invited_at" field.
func (u *CareLinkUpsert) ClearInvitedAt() *CareLinkUpsert {
	u.SetNull(carelink.FieldInvitedAt)
	return u
}

// SetConsentedAt sets the "consented_at" field.
func (u *CareLinkUpsert) SetConsentedAt(v time.Time) *CareLinkUpsert {
	u.Set(carelink.FieldConsentedAt, v)
	return u
}

// UpdateConsentedAt sets the "consented_at" field to the value that was provided on create.
func (u *CareLinkUpsert) UpdateConsentedAt() *CareLinkUpsert {
	u.SetExcluded(carelink.FieldConsentedAt)
	return u
}

// ClearConsentedAt clears the value of the "consented_at" field.
func (u *CareLinkUpsert) ClearConsentedAt() *CareLinkUpsert {
	u.SetNull(carelink.FieldConsentedAt)
	return u
}

// SetRevokedAt sets the "revoked_at" field.
func (u *CareLinkUpsert) SetRevokedAt(v time.Time) *CareLinkUpsert {
	u.Set(carelink.FieldRevokedAt, v)
	return u
}

// UpdateRevokedAt sets the "revoked_at" field to the value that was provided on create.
func (u *CareLinkUpsert) UpdateRevokedAt() *CareLinkUpsert {
	u.SetExcluded(carelink.FieldRevokedAt)
	return u
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (u *CareLinkUpsert) ClearRevokedAt() *CareLinkUpsert {
	u.SetNull(carelink.FieldRevokedAt)
	return u
}

// SetRevokeReason sets the "revoke_reason" field.
func (u *CareLinkUpsert) SetRevokeReason(v string) *CareLinkUpsert {
	u.Set(carelink.FieldRevokeReason, v)
	return u
}

// UpdateRevokeReason sets the "revoke_reason" field to the value that was provided on create.
func (u *CareLinkUpsert) UpdateRevokeReason() *CareLinkUpsert {
	u.SetExcluded(carelink.FieldRevokeReason)
	return u
}

// ClearRevokeReason clears the value of the "revoke_reason" field.
func (u *CareLinkUpsert) ClearRevokeReason() *CareLinkUpsert {
	u.SetNull(carelink.FieldRevokeReason)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.CareLink.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(carelink.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CareLinkUpsertOne) UpdateNewValues() *CareLinkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(carelink.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(carelink.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.InviteCode(); exists {
			s.SetIgnore(carelink.FieldInviteCode)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CareLink.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CareLinkUpsertOne) Ignore() *CareLinkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CareLinkUpsertOne) DoNothing() *CareLinkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CareLinkCreate.OnConflict
// documentation for more info.
func (u *CareLinkUpsertOne) Update(set func(*CareLinkUpsert)) *CareLinkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CareLinkUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CareLinkUpsertOne) SetUpdatedAt(v time.Time) *CareLinkUpsertOne {
	return u.Update(func(s *CareLinkUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CareLinkUpsertOne) UpdateUpdatedAt() *CareLinkUpsertOne {
	return u.Update(func(s *CareLinkUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetClinicID sets the "clinic_id" field.
func (u *CareLinkUpsertOne) SetClinicID(v uuid.UUID) *CareLinkUpsertOne {
	return u.Update(func(s *CareLinkUpsert) {
		s.SetClinicID(v)
	})
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *CareLinkUpsertOne) UpdateClinicID() *CareLinkUpsertOne {
	return u.Update(func(s *CareLinkUpsert) {
		s.UpdateClinicID()
	})
}

// SetPsychologistID sets the "psychologist_id" field.
func (u *CareLinkUpsertOne) SetPsychologistID(v uuid.UUID) *CareLinkUpsertOne {
	return u.Update(func(s *CareLinkUpsert) {
		s.SetPsychologistID(v)
	})
}

// UpdatePsychologistID sets the "psychologist_id" field to the value that was provided on create.
func (u *CareLinkUpsertOne) UpdatePsychologistID() *CareLinkUpsertOne {
	return u.Update(func(s *CareLinkUpsert) {
		s.UpdatePsychologistID()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *CareLinkUpsertOne) SetPatientID(v uuid.UUID) *CareLinkUpsertOne {
	return u.Update(func(s *CareLinkUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *CareLinkUpsertOne) UpdatePatientID() *CareLinkUpsertOne {
	return u.Update(func(s *CareLinkUpsert) {
		s.UpdatePatientID()
	})
}

// SetStatus sets the "status" field.
func (u *CareLinkUpsertOne) SetStatus(v carelink.Status) *CareLinkUpsertOne {
	return u.Update(func(s *CareLinkUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CareLinkUpsertOne) UpdateStatus() *CareLinkUpsertOne {
	return u.Update(func(s *CareLinkUpsert) {
		s.UpdateStatus()
	})
}

// SetShareDiary sets the "share_diary" field.
func (u *CareLinkUpsertOne) SetShareDiary(v bool) *CareLinkUpsertOne {
	return u.Update(func(s *CareLinkUpsert) {
		s.SetShareDiary(v)
	})
}

// UpdateShareDiary sets the "share_diary" field to the value that was provided on create.
func (u *CareLinkUpsertOne) UpdateShareDiary() *CareLinkUpsertOne {
	return u.Update(func(s *CareLinkUpsert) {
		s.UpdateShareDiary()
	})
}

// SetShareMood sets the "share_mood" field.
func (u *CareLinkUpsertOne) SetShareMood(v bool) *CareLinkUpsertOne {
	return u.Update(func(s *CareLinkUpsert) {
		s.SetShareMood(v)
	})
}

// UpdateShareMood sets the "share_mood" field to the value that was provided on create.
func (u *CareLinkUpsertOne) UpdateShareMood() *CareLinkUpsertOne {
	return u.Update(func(s *CareLinkUpsert) {
		s.UpdateShareMood()
	})
}

// SetInvitedAt sets the "invited_at" field.
func (u *CareLinkUpsertOne) SetInvitedAt(v time.Time) *CareLinkUpsertOne {
	return u.Update(func(s *CareLinkUpsert) {
		s.SetInvitedAt(v)
	})
}

// UpdateInvitedAt sets the "invited_at" field to the value that was provided on create.
func (u *CareLinkUpsertOne) UpdateInvitedAt() *CareLinkUpsertOne {
	return u.Update(func(s *CareLinkUpsert) {
		s.UpdateInvitedAt()
	})
}

// ClearInvitedAt clears the value of the "invited_at" field.
func (u *CareLinkUpsertOne) ClearInvitedAt() *CareLinkUpsertOne {
	return u.Update(func(s *CareLinkUpsert) {
		s.ClearInvitedAt()
	})
}

// SetConsentedAt sets the "consented_at" field.
func (u *CareLinkUpsertOne) SetConsentedAt(v time.Time) *CareLinkUpsertOne {
	return u.Update(func(s *CareLinkUpsert) {
		s.SetConsentedAt(v)
	})
}

// UpdateConsentedAt sets the "consented_at" field to the value that was provided on create.
func (u *CareLinkUpsertOne) UpdateConsentedAt() *CareLinkUpsertOne {
	return u.Update(func(s *CareLinkUpsert) {
		s.UpdateConsentedAt()
	})
}

// ClearConsentedAt clears the value of the "consented_at" field.
func (u *CareLinkUpsertOne) ClearConsentedAt() *CareLinkUpsertOne {
	return u.Update(func(s *CareLinkUpsert) {
		s.ClearConsentedAt()
	})
}

// SetRevokedAt sets the "revoked_at" field.
func (u *CareLinkUpsertOne) SetRevokedAt(v time.Time) *CareLinkUpsertOne {
	return u.Update(func(s *CareLinkUpsert) {
		s.SetRevokedAt(v)
	})
}

// UpdateRevokedAt sets the "revoked_at" field to the value that was provided on create.
func (u *CareLinkUpsertOne) UpdateRevokedAt() *CareLinkUpsertOne {
	return u.Update(func(s *CareLinkUpsert) {
		s.UpdateRevokedAt()
	})
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (u *CareLinkUpsertOne) ClearRevokedAt() *CareLinkUpsertOne {
	return u.Update(func(s *CareLinkUpsert) {
		s.ClearRevokedAt()
	})
}

// SetRevokeReason sets the "revoke_reason" field.
func (u *CareLinkUpsertOne) SetRevokeReason(v string) *CareLinkUpsertOne {
	return u.Update(func(s *CareLinkUpsert) {
		s.SetRevokeReason(v)
	})
}

// UpdateRevokeReason sets the "revoke_reason" field to the value that was provided on create.
func (u *CareLinkUpsertOne) UpdateRevokeReason() *CareLinkUpsertOne {
	return u.Update(func(s *CareLinkUpsert) {
		s.UpdateRevokeReason()
	})
}

// ClearRevokeReason clears the value of the "revoke_reason" field.
func (u *CareLinkUpsertOne) ClearRevokeReason() *CareLinkUpsertOne {
	return u.Update(func(s *CareLinkUpsert) {
		s.ClearRevokeReason()
	})
}

// Exec executes the query.
func (u *CareLinkUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for CareLinkCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CareLinkUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CareLinkUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: CareLinkUpsertOne.ID is not supported by MySQL driver. Use CareLinkUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CareLinkUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CareLinkCreateBulk is the builder for creating many CareLink entities in bulk.
type CareLinkCreateBulk struct {
	config
	err      error
	builders []*CareLinkCreate
	conflict []sql.ConflictOption
}

// Save creates the CareLink entities in the database.
func (_c *CareLinkCreateBulk) Save(ctx context.Context) ([]*CareLink, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CareLink, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CareLinkMutation)
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
func (_c *CareLinkCreateBulk) SaveX(ctx context.Context) []*CareLink {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CareLinkCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CareLinkCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CareLink.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CareLinkUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *CareLinkCreateBulk) OnConflict(opts ...sql.ConflictOption) *CareLinkUpsertBulk {
	_c.conflict = opts
	return &CareLinkUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CareLink.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CareLinkCreateBulk) OnConflictColumns(columns ...string) *CareLinkUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CareLinkUpsertBulk{
		create: _c,
	}
}

// CareLinkUpsertBulk is the builder for "upsert"-ing
// a bulk of CareLink nodes.
type CareLinkUpsertBulk struct {
	create *CareLinkCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CareLink.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(carelink.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CareLinkUpsertBulk) UpdateNewValues() *CareLinkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(carelink.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(carelink.FieldCreatedAt)
			}
			if _, exists := b.mutation.InviteCode(); exists {
				s.SetIgnore(carelink.FieldInviteCode)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CareLink.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CareLinkUpsertBulk) Ignore() *CareLinkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CareLinkUpsertBulk) DoNothing() *CareLinkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CareLinkCreateBulk.OnConflict
// documentation for more info.
func (u *CareLinkUpsertBulk) Update(set func(*CareLinkUpsert)) *CareLinkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CareLinkUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CareLinkUpsertBulk) SetUpdatedAt(v time.Time) *CareLinkUpsertBulk {
	return u.Update(func(s *CareLinkUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CareLinkUpsertBulk) UpdateUpdatedAt() *CareLinkUpsertBulk {
	return u.Update(func(s *CareLinkUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetClinicID sets the "clinic_id" field.
func (u *CareLinkUpsertBulk) SetClinicID(v uuid.UUID) *CareLinkUpsertBulk {
	return u.Update(func(s *CareLinkUpsert) {
		s.SetClinicID(v)
	})
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *CareLinkUpsertBulk) UpdateClinicID() *CareLinkUpsertBulk {
	return u.Update(func(s *CareLinkUpsert) {
		s.UpdateClinicID()
	})
}

// SetPsychologistID sets the "psychologist_id" field.
func (u *CareLinkUpsertBulk) SetPsychologistID(v uuid.UUID) *CareLinkUpsertBulk {
	return u.Update(func(s *CareLinkUpsert) {
		s.SetPsychologistID(v)
	})
}

// UpdatePsychologistID sets the "psychologist_id" field to the value that was provided on create.
func (u *CareLinkUpsertBulk) UpdatePsychologistID() *CareLinkUpsertBulk {
	return u.Update(func(s *CareLinkUpsert) {
		s.UpdatePsychologistID()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *CareLinkUpsertBulk) SetPatientID(v uuid.UUID) *CareLinkUpsertBulk {
	return u.Update(func(s *CareLinkUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *CareLinkUpsertBulk) UpdatePatientID() *CareLinkUpsertBulk {
	return u.Update(func(s *CareLinkUpsert) {
		s.UpdatePatientID()
	})
}

// SetStatus sets the "status" field.
func (u *CareLinkUpsertBulk) SetStatus(v carelink.Status) *CareLinkUpsertBulk {
	return u.Update(func(s *CareLinkUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CareLinkUpsertBulk) UpdateStatus() *CareLinkUpsertBulk {
	return u.Update(func(s *CareLinkUpsert) {
		s.UpdateStatus()
	})
}

// SetShareDiary sets the "share_diary" field.
func (u *CareLinkUpsertBulk) SetShareDiary(v bool) *CareLinkUpsertBulk {
	return u.Update(func(s *CareLinkUpsert) {
		s.SetShareDiary(v)
	})
}

// UpdateShareDiary sets the "share_diary" field to the value that was provided on create.
func (u *CareLinkUpsertBulk) UpdateShareDiary() *CareLinkUpsertBulk {
	return u.Update(func(s *CareLinkUpsert) {
		s.UpdateShareDiary()
	})
}

// SetShareMood sets the "share_mood" field.
func (u *CareLinkUpsertBulk) SetShareMood(v bool) *CareLinkUpsertBulk {
	return u.Update(func(s *CareLinkUpsert) {
		s.SetShareMood(v)
	})
}

// UpdateShareMood sets the "share_mood" field to the value that was provided on create.
func (u *CareLinkUpsertBulk) UpdateShareMood() *CareLinkUpsertBulk {
	return u.Update(func(s *CareLinkUpsert) {
		s.UpdateShareMood()
	})
}

// SetInvitedAt sets the "invited_at" field.
func (u *CareLinkUpsertBulk) SetInvitedAt(v time.Time) *CareLinkUpsertBulk {
	return u.Update(func(s *CareLinkUpsert) {
		s.SetInvitedAt(v)
	})
}

// UpdateInvitedAt sets the "invited_at" field to the value that was provided on create.
func (u *CareLinkUpsertBulk) UpdateInvitedAt() *CareLinkUpsertBulk {
	return u.Update(func(s *CareLinkUpsert) {
		s.UpdateInvitedAt()
	})
}

// ClearInvitedAt clears the value of the "invited_at" field.
func (u *CareLinkUpsertBulk) ClearInvitedAt() *CareLinkUpsertBulk {
	return u.Update(func(s *CareLinkUpsert) {
		s.ClearInvitedAt()
	})
}

// SetConsentedAt sets the "consented_at" field.
func (u *CareLinkUpsertBulk) SetConsentedAt(v time.Time) *CareLinkUpsertBulk {
	return u.Update(func(s *CareLinkUpsert) {
		s.SetConsentedAt(v)
	})
}

// UpdateConsentedAt sets the "consented_at" field to the value that was provided on create.
func (u *CareLinkUpsertBulk) UpdateConsentedAt() *CareLinkUpsertBulk {
	return u.Update(func(s *CareLinkUpsert) {
		s.UpdateConsentedAt()
	})
}

// ClearConsentedAt clears the value of the "consented_at" field.
func (u *CareLinkUpsertBulk) ClearConsentedAt() *CareLinkUpsertBulk {
	return u.Update(func(s *CareLinkUpsert) {
		s.ClearConsentedAt()
	})
}

// SetRevokedAt sets the "revoked_at" field.
func (u *CareLinkUpsertBulk) SetRevokedAt(v time.Time) *CareLinkUpsertBulk {
	return u.Update(func(s *CareLinkUpsert) {
		s.SetRevokedAt(v)
	})
}

// UpdateRevokedAt sets the "revoked_at" field to the value that was provided on create.
func (u *CareLinkUpsertBulk) UpdateRevokedAt() *CareLinkUpsertBulk {
	return u.Update(func(s *CareLinkUpsert) {
		s.UpdateRevokedAt()
	})
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (u *CareLinkUpsertBulk) ClearRevokedAt() *CareLinkUpsertBulk {
	return u.Update(func(s *CareLinkUpsert) {
		s.ClearRevokedAt()
	})
}

// SetRevokeReason sets the "revoke_reason" field.
func (u *CareLinkUpsertBulk) SetRevokeReason(v string) *CareLinkUpsertBulk {
	return u.Update(func(s *CareLinkUpsert) {
		s.SetRevokeReason(v)
	})
}

// UpdateRevokeReason sets the "revoke_reason" field to the value that was provided on create.
func (u *CareLinkUpsertBulk) UpdateRevokeReason() *CareLinkUpsertBulk {
	return u.Update(func(s *CareLinkUpsert) {
		s.UpdateRevokeReason()
	})
}

// ClearRevokeReason clears the value of the "revoke_reason" field.
func (u *CareLinkUpsertBulk) ClearRevokeReason() *CareLinkUpsertBulk {
	return u.Update(func(s *CareLinkUpsert) {
		s.ClearRevokeReason()
	})
}

// Exec executes the query.
func (u *CareLinkUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the CareLinkCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for CareLinkCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CareLinkUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
