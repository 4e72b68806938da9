// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/amparasaude/ampara_backend/internal/repo/carelink"
	"github.com/amparasaude/ampara_backend/internal/repo/clinic"
	"github.com/amparasaude/ampara_backend/internal/repo/clinicmember"
	"github.com/amparasaude/ampara_backend/internal/repo/clinicpermission"
	"github.com/amparasaude/ampara_backend/internal/repo/clinicsettings"
	"github.com/amparasaude/ampara_backend/internal/repo/diaryentry"
	"github.com/amparasaude/ampara_backend/internal/repo/gamificationaward"
	"github.com/amparasaude/ampara_backend/internal/repo/gamificationreward"
	"github.com/amparasaude/ampara_backend/internal/repo/notification"
	"github.com/amparasaude/ampara_backend/internal/repo/notificationpref"
	"github.com/amparasaude/ampara_backend/internal/repo/patient"
	"github.com/amparasaude/ampara_backend/internal/repo/predicate"
	"github.com/amparasaude/ampara_backend/internal/repo/psychologistprofile"
	"github.com/amparasaude/ampara_backend/internal/repo/session"
	"github.com/amparasaude/ampara_backend/internal/repo/unavailability"
	"github.com/amparasaude/ampara_backend/internal/repo/user"
	"github.com/amparasaude/ampara_backend/internal/repo/userdevice"
	"github.com/amparasaude/ampara_backend/internal/repo/userprogress"
	"github.com/amparasaude/ampara_backend/internal/repo/usersession"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCareLink            = "CareLink"
	TypeClinic              = "Clinic"
	TypeClinicMember        = "ClinicMember"
	TypeClinicPermission    = "ClinicPermission"
	TypeClinicSettings      = "ClinicSettings"
	TypeDiaryEntry          = "DiaryEntry"
	TypeGamificationAward   = "GamificationAward"
	TypeGamificationReward  = "GamificationReward"
	TypeNotification        = "Notification"
	TypeNotificationPref    = "NotificationPref"
	TypePatient             = "Patient"
	TypePsychologistProfile = "PsychologistProfile"
	TypeSession             = "Session"
	TypeUnavailability      = "Unavailability"
	TypeUser                = "User"
	TypeUserDevice          = "UserDevice"
	TypeUserProgress        = "UserProgress"
	TypeUserSession         = "UserSession"
)

// CareLinkMutation represents an operation that mutates the CareLink nodes in the graph.
type CareLinkMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	created_at      *time.Time
	updated_at      *time.Time
	clinic_id       *uuid.UUID
	psychologist_id *uuid.UUID
	patient_id      *uuid.UUID
	invite_code     *string
	status          *carelink.Status
	share_diary     *bool
	share_mood      *bool
	invited_at      *time.Time
	consented_at    *time.Time
	revoked_at      *time.Time
	revoke_reason   *string
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*CareLink, error)
	predicates      []predicate.CareLink
}

var _ ent.Mutation = (*CareLinkMutation)(nil)

// carelinkOption allows management of the mutation configuration using functional options.
type carelinkOption func(*CareLinkMutation)

// newCareLinkMutation creates new mutation for the CareLink entity.
func newCareLinkMutation(c config, op Op, opts ...carelinkOption) *CareLinkMutation {
	m := &CareLinkMutation{
		config:        c,
		op:            op,
		typ:           TypeCareLink,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCareLinkID sets the ID field of the mutation.
func withCareLinkID(id uuid.UUID) carelinkOption {
	return func(m *CareLinkMutation) {
		var (
			err   error
			once  sync.Once
			value *CareLink
		)
		m.oldValue = func(ctx context.Context) (*CareLink, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CareLink.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCareLink sets the old CareLink of the mutation.
func withCareLink(node *CareLink) carelinkOption {
	return func(m *CareLinkMutation) {
		m.oldValue = func(context.Context) (*CareLink, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CareLinkMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CareLinkMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CareLink entities.
func (m *CareLinkMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CareLinkMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CareLinkMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CareLink.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *CareLinkMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CareLinkMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CareLink entity.
// If the CareLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CareLinkMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CareLinkMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CareLinkMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CareLinkMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CareLink entity.
// If the CareLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CareLinkMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CareLinkMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetClinicID sets the "clinic_id" field.
func (m *CareLinkMutation) SetClinicID(u uuid.UUID) {
	m.clinic_id = &u
}

// ClinicID returns the value of the "clinic_id" field in the mutation.
func (m *CareLinkMutation) ClinicID() (r uuid.UUID, exists bool) {
	v := m.clinic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClinicID returns the old "clinic_id" field's value of the CareLink entity.
// If the CareLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CareLinkMutation) OldClinicID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClinicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClinicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClinicID: %w", err)
	}
	return oldValue.ClinicID, nil
}

// ResetClinicID resets all changes to the "clinic_id" field.
func (m *CareLinkMutation) ResetClinicID() {
	m.clinic_id = nil
}

// SetPsychologistID sets the "psychologist_id" field.
func (m *CareLinkMutation) SetPsychologistID(u uuid.UUID) {
	m.psychologist_id = &u
}

// PsychologistID returns the value of the "psychologist_id" field in the mutation.
func (m *CareLinkMutation) PsychologistID() (r uuid.UUID, exists bool) {
	v := m.psychologist_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPsychologistID returns the old "psychologist_id" field's value of the CareLink entity.
// If the CareLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CareLinkMutation) OldPsychologistID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPsychologistID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPsychologistID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPsychologistID: %w", err)
	}
	return oldValue.PsychologistID, nil
}

// ResetPsychologistID resets all changes to the "psychologist_id" field.
func (m *CareLinkMutation) ResetPsychologistID() {
	m.psychologist_id = nil
}

// SetPatientID sets the "patient_id" field.
func (m *CareLinkMutation) SetPatientID(u uuid.UUID) {
	m.patient_id = &u
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *CareLinkMutation) PatientID() (r uuid.UUID, exists bool) {
	v := m.patient_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the CareLink entity.
// If the CareLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CareLinkMutation) OldPatientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *CareLinkMutation) ResetPatientID() {
	m.patient_id = nil
}

// SetInviteCode sets the "invite_code" field.
func (m *CareLinkMutation) SetInviteCode(s string) {
	m.invite_code = &s
}

// InviteCode returns the value of the "invite_code" field in the mutation.
func (m *CareLinkMutation) InviteCode() (r string, exists bool) {
	v := m.invite_code
	if v == nil {
		return
	}
	return *v, true
}

// OldInviteCode returns the old "invite_code" field's value of the CareLink entity.
// If the CareLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CareLinkMutation) OldInviteCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInviteCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInviteCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInviteCode: %w", err)
	}
	return oldValue.InviteCode, nil
}

// ResetInviteCode resets all changes to the "invite_code" field.
func (m *CareLinkMutation) ResetInviteCode() {
	m.invite_code = nil
}

// SetStatus sets the "status" field.
func (m *CareLinkMutation) SetStatus(c carelink.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *CareLinkMutation) Status() (r carelink.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the CareLink entity.
// If the CareLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CareLinkMutation) OldStatus(ctx context.Context) (v carelink.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CareLinkMutation) ResetStatus() {
	m.status = nil
}

// SetShareDiary sets the "share_diary" field.
func (m *CareLinkMutation) SetShareDiary(b bool) {
	m.share_diary = &b
}

// ShareDiary returns the value of the "share_diary" field in the mutation.
func (m *CareLinkMutation) ShareDiary() (r bool, exists bool) {
	v := m.share_diary
	if v == nil {
		return
	}
	return *v, true
}

// OldShareDiary returns the old "share_diary" field's value of the CareLink entity.
// If the CareLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CareLinkMutation) OldShareDiary(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShareDiary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShareDiary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShareDiary: %w", err)
	}
	return oldValue.ShareDiary, nil
}

// ResetShareDiary resets all changes to the "share_diary" field.
func (m *CareLinkMutation) ResetShareDiary() {
	m.share_diary = nil
}

// SetShareMood sets the "share_mood" field.
func (m *CareLinkMutation) SetShareMood(b bool) {
	m.share_mood = &b
}

// ShareMood returns the value of the "share_mood" field in the mutation.
func (m *CareLinkMutation) ShareMood() (r bool, exists bool) {
	v := m.share_mood
	if v == nil {
		return
	}
	return *v, true
}

// OldShareMood returns the old "share_mood" field's value of the CareLink entity.
// If the CareLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CareLinkMutation) OldShareMood(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShareMood is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShareMood requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShareMood: %w", err)
	}
	return oldValue.ShareMood, nil
}

// ResetShareMood resets all changes to the "share_mood" field.
func (m *CareLinkMutation) ResetShareMood() {
	m.share_mood = nil
}

// SetInvitedAt sets the "invited_at" field.
func (m *CareLinkMutation) SetInvitedAt(t time.Time) {
	m.invited_at = &t
}

// InvitedAt returns the value of the "invited_at" field in the mutation.
func (m *CareLinkMutation) InvitedAt() (r time.Time, exists bool) {
	v := m.invited_at
	if v == nil {
		return
	}
	return *v, true
}

// OldInvitedAt returns the old "invited_at" field's value of the CareLink entity.
// If the CareLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CareLinkMutation) OldInvitedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvitedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvitedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvitedAt: %w", err)
	}
	return oldValue.InvitedAt, nil
}

// ClearInvitedAt clears the value of the "invited_at" field.
func (m *CareLinkMutation) ClearInvitedAt() {
	m.invited_at = nil
	m.clearedFields[carelink.FieldInvitedAt] = struct{}{}
}

// InvitedAtCleared returns if the "invited_at" field was cleared in this mutation.
func (m *CareLinkMutation) InvitedAtCleared() bool {
	_, ok := m.clearedFields[carelink.FieldInvitedAt]
	return ok
}

// ResetInvitedAt resets all changes to the "invited_at" field.
func (m *CareLinkMutation) ResetInvitedAt() {
	m.invited_at = nil
	delete(m.clearedFields, carelink.FieldInvitedAt)
}

// SetConsentedAt sets the "consented_at" field.
func (m *CareLinkMutation) SetConsentedAt(t time.Time) {
	m.consented_at = &t
}

// ConsentedAt returns the value of the "consented_at" field in the mutation.
func (m *CareLinkMutation) ConsentedAt() (r time.Time, exists bool) {
	v := m.consented_at
	if v == nil {
		return
	}
	return *v, true
}

// OldConsentedAt returns the old "consented_at" field's value of the CareLink entity.
// If the CareLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CareLinkMutation) OldConsentedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsentedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsentedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsentedAt: %w", err)
	}
	return oldValue.ConsentedAt, nil
}

// ClearConsentedAt clears the value of the "consented_at" field.
func (m *CareLinkMutation) ClearConsentedAt() {
	m.consented_at = nil
	m.clearedFields[carelink.FieldConsentedAt] = struct{}{}
}

// ConsentedAtCleared returns if the "consented_at" field was cleared in this mutation.
func (m *CareLinkMutation) ConsentedAtCleared() bool {
	_, ok := m.clearedFields[carelink.FieldConsentedAt]
	return ok
}

// ResetConsentedAt resets all changes to the "consented_at" field.
func (m *CareLinkMutation) ResetConsentedAt() {
	m.consented_at = nil
	delete(m.clearedFields, carelink.FieldConsentedAt)
}

// SetRevokedAt sets the "revoked_at" field.
func (m *CareLinkMutation) SetRevokedAt(t time.Time) {
	m.revoked_at = &t
}

// RevokedAt returns the value of the "revoked_at" field in the mutation.
func (m *CareLinkMutation) RevokedAt() (r time.Time, exists bool) {
	v := m.revoked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRevokedAt returns the old "revoked_at" field's value of the CareLink entity.
// If the CareLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CareLinkMutation) OldRevokedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRevokedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRevokedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRevokedAt: %w", err)
	}
	return oldValue.RevokedAt, nil
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (m *CareLinkMutation) ClearRevokedAt() {
	m.revoked_at = nil
	m.clearedFields[carelink.FieldRevokedAt] = struct{}{}
}

// RevokedAtCleared returns if the "revoked_at" field was cleared in this mutation.
func (m *CareLinkMutation) RevokedAtCleared() bool {
	_, ok := m.clearedFields[carelink.FieldRevokedAt]
	return ok
}

// ResetRevokedAt resets all changes to the "revoked_at" field.
func (m *CareLinkMutation) ResetRevokedAt() {
	m.revoked_at = nil
	delete(m.clearedFields, carelink.FieldRevokedAt)
}

// SetRevokeReason sets the "revoke_reason" field.
func (m *CareLinkMutation) SetRevokeReason(s string) {
	m.revoke_reason = &s
}

// RevokeReason returns the value of the "revoke_reason" field in the mutation.
func (m *CareLinkMutation) RevokeReason() (r string, exists bool) {
	v := m.revoke_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldRevokeReason returns the old "revoke_reason" field's value of the CareLink entity.
// If the CareLink object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CareLinkMutation) OldRevokeReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRevokeReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRevokeReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRevokeReason: %w", err)
	}
	return oldValue.RevokeReason, nil
}

// ClearRevokeReason clears the value of the "revoke_reason" field.
func (m *CareLinkMutation) ClearRevokeReason() {
	m.revoke_reason = nil
	m.clearedFields[carelink.FieldRevokeReason] = struct{}{}
}

// RevokeReasonCleared returns if the "revoke_reason" field was cleared in this mutation.
func (m *CareLinkMutation) RevokeReasonCleared() bool {
	_, ok := m.clearedFields[carelink.FieldRevokeReason]
	return ok
}

// ResetRevokeReason resets all changes to the "revoke_reason" field.
func (m *CareLinkMutation) ResetRevokeReason() {
	m.revoke_reason = nil
	delete(m.clearedFields, carelink.FieldRevokeReason)
}

// Where appends a list predicates to the CareLinkMutation builder.
func (m *CareLinkMutation) Where(ps ...predicate.CareLink) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CareLinkMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CareLinkMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CareLink, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CareLinkMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CareLinkMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CareLink).
func (m *CareLinkMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CareLinkMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.created_at != nil {
		fields = append(fields, carelink.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, carelink.FieldUpdatedAt)
	}
	if m.clinic_id != nil {
		fields = append(fields, carelink.FieldClinicID)
	}
	if m.psychologist_id != nil {
		fields = append(fields, carelink.FieldPsychologistID)
	}
	if m.patient_id != nil {
		fields = append(fields, carelink.FieldPatientID)
	}
	if m.invite_code != nil {
		fields = append(fields, carelink.FieldInviteCode)
	}
	if m.status != nil {
		fields = append(fields, carelink.FieldStatus)
	}
	if m.share_diary != nil {
		fields = append(fields, carelink.FieldShareDiary)
	}
	if m.share_mood != nil {
		fields = append(fields, carelink.FieldShareMood)
	}
	if m.invited_at != nil {
		fields = append(fields, carelink.FieldInvitedAt)
	}
	if m.consented_at != nil {
		fields = append(fields, carelink.FieldConsentedAt)
	}
	if m.revoked_at != nil {
		fields = append(fields, carelink.FieldRevokedAt)
	}
	if m.revoke_reason != nil {
		fields = append(fields, carelink.FieldRevokeReason)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CareLinkMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case carelink.FieldCreatedAt:
		return m.CreatedAt()
	case carelink.FieldUpdatedAt:
		return m.UpdatedAt()
	case carelink.FieldClinicID:
		return m.ClinicID()
	case carelink.FieldPsychologistID:
		return m.PsychologistID()
	case carelink.FieldPatientID:
		return m.PatientID()
	case carelink.FieldInviteCode:
		return m.InviteCode()
	case carelink.FieldStatus:
		return m.Status()
	case carelink.FieldShareDiary:
		return m.ShareDiary()
	case carelink.FieldShareMood:
		return m.ShareMood()
	case carelink.FieldInvitedAt:
		return m.InvitedAt()
	case carelink.FieldConsentedAt:
		return m.ConsentedAt()
	case carelink.FieldRevokedAt:
		return m.RevokedAt()
	case carelink.FieldRevokeReason:
		return m.RevokeReason()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CareLinkMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case carelink.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case carelink.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case carelink.FieldClinicID:
		return m.OldClinicID(ctx)
	case carelink.FieldPsychologistID:
		return m.OldPsychologistID(ctx)
	case carelink.FieldPatientID:
		return m.OldPatientID(ctx)
	case carelink.FieldInviteCode:
		return m.OldInviteCode(ctx)
	case carelink.FieldStatus:
		return m.OldStatus(ctx)
	case carelink.FieldShareDiary:
		return m.OldShareDiary(ctx)
	case carelink.FieldShareMood:
		return m.OldShareMood(ctx)
	case carelink.FieldInvitedAt:
		return m.OldInvitedAt(ctx)
	case carelink.FieldConsentedAt:
		return m.OldConsentedAt(ctx)
	case carelink.FieldRevokedAt:
		return m.OldRevokedAt(ctx)
	case carelink.FieldRevokeReason:
		return m.OldRevokeReason(ctx)
	}
	return nil, fmt.Errorf("unknown CareLink field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CareLinkMutation) SetField(name string, value ent.Value) error {
	switch name {
	case carelink.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case carelink.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case carelink.FieldClinicID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClinicID(v)
		return nil
	case carelink.FieldPsychologistID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPsychologistID(v)
		return nil
	case carelink.FieldPatientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case carelink.FieldInviteCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInviteCode(v)
		return nil
	case carelink.FieldStatus:
		v, ok := value.(carelink.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case carelink.FieldShareDiary:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShareDiary(v)
		return nil
	case carelink.FieldShareMood:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShareMood(v)
		return nil
	case carelink.FieldInvitedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvitedAt(v)
		return nil
	case carelink.FieldConsentedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsentedAt(v)
		return nil
	case carelink.FieldRevokedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRevokedAt(v)
		return nil
	case carelink.FieldRevokeReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRevokeReason(v)
		return nil
	}
	return fmt.Errorf("unknown CareLink field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CareLinkMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CareLinkMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CareLinkMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CareLink numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CareLinkMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(carelink.FieldInvitedAt) {
		fields = append(fields, carelink.FieldInvitedAt)
	}
	if m.FieldCleared(carelink.FieldConsentedAt) {
		fields = append(fields, carelink.FieldConsentedAt)
	}
	if m.FieldCleared(carelink.FieldRevokedAt) {
		fields = append(fields, carelink.FieldRevokedAt)
	}
	if m.FieldCleared(carelink.FieldRevokeReason) {
		fields = append(fields, carelink.FieldRevokeReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CareLinkMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CareLinkMutation) ClearField(name string) error {
	switch name {
	case carelink.FieldInvitedAt:
		m.ClearInvitedAt()
		return nil
	case carelink.FieldConsentedAt:
		m.ClearConsentedAt()
		return nil
	case carelink.FieldRevokedAt:
		m.ClearRevokedAt()
		return nil
	case carelink.FieldRevokeReason:
		m.ClearRevokeReason()
		return nil
	}
	return fmt.Errorf("unknown CareLink nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CareLinkMutation) ResetField(name string) error {
	switch name {
	case carelink.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case carelink.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case carelink.FieldClinicID:
		m.ResetClinicID()
		return nil
	case carelink.FieldPsychologistID:
		m.ResetPsychologistID()
		return nil
	case carelink.FieldPatientID:
		m.ResetPatientID()
		return nil
	case carelink.FieldInviteCode:
		m.ResetInviteCode()
		return nil
	case carelink.FieldStatus:
		m.ResetStatus()
		return nil
	case carelink.FieldShareDiary:
		m.ResetShareDiary()
		return nil
	case carelink.FieldShareMood:
		m.ResetShareMood()
		return nil
	case carelink.FieldInvitedAt:
		m.ResetInvitedAt()
		return nil
	case carelink.FieldConsentedAt:
		m.ResetConsentedAt()
		return nil
	case carelink.FieldRevokedAt:
		m.ResetRevokedAt()
		return nil
	case carelink.FieldRevokeReason:
		m.ResetRevokeReason()
		return nil
	}
	return fmt.Errorf("unknown CareLink field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CareLinkMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CareLinkMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CareLinkMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CareLinkMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CareLinkMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CareLinkMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CareLinkMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CareLink unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CareLinkMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CareLink edge %s", name)
}

// ClinicMutation represents an operation that mutates the Clinic nodes in the graph.
type ClinicMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	created_at         *time.Time
	updated_at         *time.Time
	deleted_at         *time.Time
	name               *string
	slug               *string
	description        *string
	phone              *string
	address            *string
	city               *string
	state              *string
	timezone           *string
	is_active          *bool
	is_verified        *bool
	clearedFields      map[string]struct{}
	members            map[uuid.UUID]struct{}
	removedmembers     map[uuid.UUID]struct{}
	clearedmembers     bool
	patients           map[uuid.UUID]struct{}
	removedpatients    map[uuid.UUID]struct{}
	clearedpatients    bool
	permissions        map[uuid.UUID]struct{}
	removedpermissions map[uuid.UUID]struct{}
	clearedpermissions bool
	settings           *uuid.UUID
	clearedsettings    bool
	done               bool
	oldValue           func(context.Context) (*Clinic, error)
	predicates         []predicate.Clinic
}

var _ ent.Mutation = (*ClinicMutation)(nil)

// clinicOption allows management of the mutation configuration using functional options.
type clinicOption func(*ClinicMutation)

// newClinicMutation creates new mutation for the Clinic entity.
func newClinicMutation(c config, op Op, opts ...clinicOption) *ClinicMutation {
	m := &ClinicMutation{
		config:        c,
		op:            op,
		typ:           TypeClinic,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withClinicID sets the ID field of the mutation.
func withClinicID(id uuid.UUID) clinicOption {
	return func(m *ClinicMutation) {
		var (
			err   error
			once  sync.Once
			value *Clinic
		)
		m.oldValue = func(ctx context.Context) (*Clinic, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Clinic.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withClinic sets the old Clinic of the mutation.
func withClinic(node *Clinic) clinicOption {
	return func(m *ClinicMutation) {
		m.oldValue = func(context.Context) (*Clinic, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ClinicMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ClinicMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Clinic entities.
func (m *ClinicMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ClinicMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ClinicMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Clinic.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ClinicMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ClinicMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ClinicMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ClinicMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ClinicMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ClinicMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *ClinicMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *ClinicMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *ClinicMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[clinic.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *ClinicMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[clinic.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *ClinicMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, clinic.FieldDeletedAt)
}

// SetName sets the "name" field.
func (m *ClinicMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ClinicMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ClinicMutation) ResetName() {
	m.name = nil
}

// SetSlug sets the "slug" field.
func (m *ClinicMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *ClinicMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *ClinicMutation) ResetSlug() {
	m.slug = nil
}

// SetDescription sets the "description" field.
func (m *ClinicMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ClinicMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ClinicMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[clinic.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ClinicMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[clinic.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ClinicMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, clinic.FieldDescription)
}

// SetPhone sets the "phone" field.
func (m *ClinicMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *ClinicMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldPhone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *ClinicMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[clinic.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *ClinicMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[clinic.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *ClinicMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, clinic.FieldPhone)
}

// SetAddress sets the "address" field.
func (m *ClinicMutation) SetAddress(s string) {
	m.address = &s
}

// Address returns the value of the "address" field in the mutation.
func (m *ClinicMutation) Address() (r string, exists bool) {
	v := m.address
	if v == nil {
		return
	}
	return *v, true
}

// OldAddress returns the old "address" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldAddress(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddress: %w", err)
	}
	return oldValue.Address, nil
}

// ClearAddress clears the value of the "address" field.
func (m *ClinicMutation) ClearAddress() {
	m.address = nil
	m.clearedFields[clinic.FieldAddress] = struct{}{}
}

// AddressCleared returns if the "address" field was cleared in this mutation.
func (m *ClinicMutation) AddressCleared() bool {
	_, ok := m.clearedFields[clinic.FieldAddress]
	return ok
}

// ResetAddress resets all changes to the "address" field.
func (m *ClinicMutation) ResetAddress() {
	m.address = nil
	delete(m.clearedFields, clinic.FieldAddress)
}

// SetCity sets the "city" field.
func (m *ClinicMutation) SetCity(s string) {
	m.city = &s
}

// City returns the value of the "city" field in the mutation.
func (m *ClinicMutation) City() (r string, exists bool) {
	v := m.city
	if v == nil {
		return
	}
	return *v, true
}

// OldCity returns the old "city" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldCity(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCity: %w", err)
	}
	return oldValue.City, nil
}

// ClearCity clears the value of the "city" field.
func (m *ClinicMutation) ClearCity() {
	m.city = nil
	m.clearedFields[clinic.FieldCity] = struct{}{}
}

// CityCleared returns if the "city" field was cleared in this mutation.
func (m *ClinicMutation) CityCleared() bool {
	_, ok := m.clearedFields[clinic.FieldCity]
	return ok
}

// ResetCity resets all changes to the "city" field.
func (m *ClinicMutation) ResetCity() {
	m.city = nil
	delete(m.clearedFields, clinic.FieldCity)
}

// SetState sets the "state" field.
func (m *ClinicMutation) SetState(s string) {
	m.state = &s
}

// State returns the value of the "state" field in the mutation.
func (m *ClinicMutation) State() (r string, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldState(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ClearState clears the value of the "state" field.
func (m *ClinicMutation) ClearState() {
	m.state = nil
	m.clearedFields[clinic.FieldState] = struct{}{}
}

// StateCleared returns if the "state" field was cleared in this mutation.
func (m *ClinicMutation) StateCleared() bool {
	_, ok := m.clearedFields[clinic.FieldState]
	return ok
}

// ResetState resets all changes to the "state" field.
func (m *ClinicMutation) ResetState() {
	m.state = nil
	delete(m.clearedFields, clinic.FieldState)
}

// SetTimezone sets the "timezone" field.
func (m *ClinicMutation) SetTimezone(s string) {
	m.timezone = &s
}

// Timezone returns the value of the "timezone" field in the mutation.
func (m *ClinicMutation) Timezone() (r string, exists bool) {
	v := m.timezone
	if v == nil {
		return
	}
	return *v, true
}

// OldTimezone returns the old "timezone" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldTimezone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimezone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimezone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimezone: %w", err)
	}
	return oldValue.Timezone, nil
}

// ResetTimezone resets all changes to the "timezone" field.
func (m *ClinicMutation) ResetTimezone() {
	m.timezone = nil
}

// SetIsActive sets the "is_active" field.
func (m *ClinicMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *ClinicMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *ClinicMutation) ResetIsActive() {
	m.is_active = nil
}

// SetIsVerified sets the "is_verified" field.
func (m *ClinicMutation) SetIsVerified(b bool) {
	m.is_verified = &b
}

// IsVerified returns the value of the "is_verified" field in the mutation.
func (m *ClinicMutation) IsVerified() (r bool, exists bool) {
	v := m.is_verified
	if v == nil {
		return
	}
	return *v, true
}

// OldIsVerified returns the old "is_verified" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldIsVerified(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsVerified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsVerified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsVerified: %w", err)
	}
	return oldValue.IsVerified, nil
}

// ResetIsVerified resets all changes to the "is_verified" field.
func (m *ClinicMutation) ResetIsVerified() {
	m.is_verified = nil
}

// AddMemberIDs adds the "members" edge to the ClinicMember entity by ids.
func (m *ClinicMutation) AddMemberIDs(ids ...uuid.UUID) {
	if m.members == nil {
		m.members = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.members[ids[i]] = struct{}{}
	}
}

// ClearMembers clears the "members" edge to the ClinicMember entity.
func (m *ClinicMutation) ClearMembers() {
	m.clearedmembers = true
}

// MembersCleared reports if the "members" edge to the ClinicMember entity was cleared.
func (m *ClinicMutation) MembersCleared() bool {
	return m.clearedmembers
}

// RemoveMemberIDs removes the "members" edge to the ClinicMember entity by IDs.
func (m *ClinicMutation) RemoveMemberIDs(ids ...uuid.UUID) {
	if m.removedmembers == nil {
		m.removedmembers = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.members, ids[i])
		m.removedmembers[ids[i]] = struct{}{}
	}
}

// RemovedMembers returns the removed IDs of the "members" edge to the ClinicMember entity.
func (m *ClinicMutation) RemovedMembersIDs() (ids []uuid.UUID) {
	for id := range m.removedmembers {
		ids = append(ids, id)
	}
	return
}

// MembersIDs returns the "members" edge IDs in the mutation.
func (m *ClinicMutation) MembersIDs() (ids []uuid.UUID) {
	for id := range m.members {
		ids = append(ids, id)
	}
	return
}

// ResetMembers resets all changes to the "members" edge.
func (m *ClinicMutation) ResetMembers() {
	m.members = nil
	m.clearedmembers = false
	m.removedmembers = nil
}

// AddPatientIDs adds the "patients" edge to the Patient entity by ids.
func (m *ClinicMutation) AddPatientIDs(ids ...uuid.UUID) {
	if m.patients == nil {
		m.patients = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.patients[ids[i]] = struct{}{}
	}
}

// ClearPatients clears the "patients" edge to the Patient entity.
func (m *ClinicMutation) ClearPatients() {
	m.clearedpatients = true
}

// PatientsCleared reports if the "patients" edge to the Patient entity was cleared.
func (m *ClinicMutation) PatientsCleared() bool {
	return m.clearedpatients
}

// RemovePatientIDs removes the "patients" edge to the Patient entity by IDs.
func (m *ClinicMutation) RemovePatientIDs(ids ...uuid.UUID) {
	if m.removedpatients == nil {
		m.removedpatients = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.patients, ids[i])
		m.removedpatients[ids[i]] = struct{}{}
	}
}

// RemovedPatients returns the removed IDs of the "patients" edge to the Patient entity.
func (m *ClinicMutation) RemovedPatientsIDs() (ids []uuid.UUID) {
	for id := range m.removedpatients {
		ids = append(ids, id)
	}
	return
}

// PatientsIDs returns the "patients" edge IDs in the mutation.
func (m *ClinicMutation) PatientsIDs() (ids []uuid.UUID) {
	for id := range m.patients {
		ids = append(ids, id)
	}
	return
}

// ResetPatients resets all changes to the "patients" edge.
func (m *ClinicMutation) ResetPatients() {
	m.patients = nil
	m.clearedpatients = false
	m.removedpatients = nil
}

// AddPermissionIDs adds the "permissions" edge to the ClinicPermission entity by ids.
func (m *ClinicMutation) AddPermissionIDs(ids ...uuid.UUID) {
	if m.permissions == nil {
		m.permissions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.permissions[ids[i]] = struct{}{}
	}
}

// ClearPermissions clears the "permissions" edge to the ClinicPermission entity.
func (m *ClinicMutation) ClearPermissions() {
	m.clearedpermissions = true
}

// PermissionsCleared reports if the "permissions" edge to the ClinicPermission entity was cleared.
func (m *ClinicMutation) PermissionsCleared() bool {
	return m.clearedpermissions
}

// RemovePermissionIDs removes the "permissions" edge to the ClinicPermission entity by IDs.
func (m *ClinicMutation) RemovePermissionIDs(ids ...uuid.UUID) {
	if m.removedpermissions == nil {
		m.removedpermissions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.permissions, ids[i])
		m.removedpermissions[ids[i]] = struct{}{}
	}
}

// RemovedPermissions returns the removed IDs of the "permissions" edge to the ClinicPermission entity.
func (m *ClinicMutation) RemovedPermissionsIDs() (ids []uuid.UUID) {
	for id := range m.removedpermissions {
		ids = append(ids, id)
	}
	return
}

// PermissionsIDs returns the "permissions" edge IDs in the mutation.
func (m *ClinicMutation) PermissionsIDs() (ids []uuid.UUID) {
	for id := range m.permissions {
		ids = append(ids, id)
	}
	return
}

// ResetPermissions resets all changes to the "permissions" edge.
func (m *ClinicMutation) ResetPermissions() {
	m.permissions = nil
	m.clearedpermissions = false
	m.removedpermissions = nil
}

// SetSettingsID sets the "settings" edge to the ClinicSettings entity by id.
func (m *ClinicMutation) SetSettingsID(id uuid.UUID) {
	m.settings = &id
}

// ClearSettings clears the "settings" edge to the ClinicSettings entity.
func (m *ClinicMutation) ClearSettings() {
	m.clearedsettings = true
}

// SettingsCleared reports if the "settings" edge to the ClinicSettings entity was cleared.
func (m *ClinicMutation) SettingsCleared() bool {
	return m.clearedsettings
}

// SettingsID returns the "settings" edge ID in the mutation.
func (m *ClinicMutation) SettingsID() (id uuid.UUID, exists bool) {
	if m.settings != nil {
		return *m.settings, true
	}
	return
}

// SettingsIDs returns the "settings" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SettingsID instead. It exists only for internal usage by the builders.
func (m *ClinicMutation) SettingsIDs() (ids []uuid.UUID) {
	if id := m.settings; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSettings resets all changes to the "settings" edge.
func (m *ClinicMutation) ResetSettings() {
	m.settings = nil
	m.clearedsettings = false
}

// Where appends a list predicates to the ClinicMutation builder.
func (m *ClinicMutation) Where(ps ...predicate.Clinic) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ClinicMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ClinicMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Clinic, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ClinicMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ClinicMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Clinic).
func (m *ClinicMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ClinicMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.created_at != nil {
		fields = append(fields, clinic.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, clinic.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, clinic.FieldDeletedAt)
	}
	if m.name != nil {
		fields = append(fields, clinic.FieldName)
	}
	if m.slug != nil {
		fields = append(fields, clinic.FieldSlug)
	}
	if m.description != nil {
		fields = append(fields, clinic.FieldDescription)
	}
	if m.phone != nil {
		fields = append(fields, clinic.FieldPhone)
	}
	if m.address != nil {
		fields = append(fields, clinic.FieldAddress)
	}
	if m.city != nil {
		fields = append(fields, clinic.FieldCity)
	}
	if m.state != nil {
		fields = append(fields, clinic.FieldState)
	}
	if m.timezone != nil {
		fields = append(fields, clinic.FieldTimezone)
	}
	if m.is_active != nil {
		fields = append(fields, clinic.FieldIsActive)
	}
	if m.is_verified != nil {
		fields = append(fields, clinic.FieldIsVerified)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ClinicMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case clinic.FieldCreatedAt:
		return m.CreatedAt()
	case clinic.FieldUpdatedAt:
		return m.UpdatedAt()
	case clinic.FieldDeletedAt:
		return m.DeletedAt()
	case clinic.FieldName:
		return m.Name()
	case clinic.FieldSlug:
		return m.Slug()
	case clinic.FieldDescription:
		return m.Description()
	case clinic.FieldPhone:
		return m.Phone()
	case clinic.FieldAddress:
		return m.Address()
	case clinic.FieldCity:
		return m.City()
	case clinic.FieldState:
		return m.State()
	case clinic.FieldTimezone:
		return m.Timezone()
	case clinic.FieldIsActive:
		return m.IsActive()
	case clinic.FieldIsVerified:
		return m.IsVerified()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ClinicMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case clinic.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case clinic.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case clinic.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case clinic.FieldName:
		return m.OldName(ctx)
	case clinic.FieldSlug:
		return m.OldSlug(ctx)
	case clinic.FieldDescription:
		return m.OldDescription(ctx)
	case clinic.FieldPhone:
		return m.OldPhone(ctx)
	case clinic.FieldAddress:
		return m.OldAddress(ctx)
	case clinic.FieldCity:
		return m.OldCity(ctx)
	case clinic.FieldState:
		return m.OldState(ctx)
	case clinic.FieldTimezone:
		return m.OldTimezone(ctx)
	case clinic.FieldIsActive:
		return m.OldIsActive(ctx)
	case clinic.FieldIsVerified:
		return m.OldIsVerified(ctx)
	}
	return nil, fmt.Errorf("unknown Clinic field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClinicMutation) SetField(name string, value ent.Value) error {
	switch name {
	case clinic.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case clinic.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case clinic.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case clinic.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case clinic.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case clinic.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case clinic.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case clinic.FieldAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddress(v)
		return nil
	case clinic.FieldCity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCity(v)
		return nil
	case clinic.FieldState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case clinic.FieldTimezone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimezone(v)
		return nil
	case clinic.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case clinic.FieldIsVerified:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsVerified(v)
		return nil
	}
	return fmt.Errorf("unknown Clinic field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ClinicMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ClinicMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClinicMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Clinic numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ClinicMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(clinic.FieldDeletedAt) {
		fields = append(fields, clinic.FieldDeletedAt)
	}
	if m.FieldCleared(clinic.FieldDescription) {
		fields = append(fields, clinic.FieldDescription)
	}
	if m.FieldCleared(clinic.FieldPhone) {
		fields = append(fields, clinic.FieldPhone)
	}
	if m.FieldCleared(clinic.FieldAddress) {
		fields = append(fields, clinic.FieldAddress)
	}
	if m.FieldCleared(clinic.FieldCity) {
		fields = append(fields, clinic.FieldCity)
	}
	if m.FieldCleared(clinic.FieldState) {
		fields = append(fields, clinic.FieldState)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ClinicMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ClinicMutation) ClearField(name string) error {
	switch name {
	case clinic.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case clinic.FieldDescription:
		m.ClearDescription()
		return nil
	case clinic.FieldPhone:
		m.ClearPhone()
		return nil
	case clinic.FieldAddress:
		m.ClearAddress()
		return nil
	case clinic.FieldCity:
		m.ClearCity()
		return nil
	case clinic.FieldState:
		m.ClearState()
		return nil
	}
	return fmt.Errorf("unknown Clinic nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ClinicMutation) ResetField(name string) error {
	switch name {
	case clinic.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case clinic.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case clinic.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case clinic.FieldName:
		m.ResetName()
		return nil
	case clinic.FieldSlug:
		m.ResetSlug()
		return nil
	case clinic.FieldDescription:
		m.ResetDescription()
		return nil
	case clinic.FieldPhone:
		m.ResetPhone()
		return nil
	case clinic.FieldAddress:
		m.ResetAddress()
		return nil
	case clinic.FieldCity:
		m.ResetCity()
		return nil
	case clinic.FieldState:
		m.ResetState()
		return nil
	case clinic.FieldTimezone:
		m.ResetTimezone()
		return nil
	case clinic.FieldIsActive:
		m.ResetIsActive()
		return nil
	case clinic.FieldIsVerified:
		m.ResetIsVerified()
		return nil
	}
	return fmt.Errorf("unknown Clinic field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ClinicMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.members != nil {
		edges = append(edges, clinic.EdgeMembers)
	}
	if m.patients != nil {
		edges = append(edges, clinic.EdgePatients)
	}
	if m.permissions != nil {
		edges = append(edges, clinic.EdgePermissions)
	}
	if m.settings != nil {
		edges = append(edges, clinic.EdgeSettings)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ClinicMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case clinic.EdgeMembers:
		ids := make([]ent.Value, 0, len(m.members))
		for id := range m.members {
			ids = append(ids, id)
		}
		return ids
	case clinic.EdgePatients:
		ids := make([]ent.Value, 0, len(m.patients))
		for id := range m.patients {
			ids = append(ids, id)
		}
		return ids
	case clinic.EdgePermissions:
		ids := make([]ent.Value, 0, len(m.permissions))
		for id := range m.permissions {
			ids = append(ids, id)
		}
		return ids
	case clinic.EdgeSettings:
		if id := m.settings; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ClinicMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedmembers != nil {
		edges = append(edges, clinic.EdgeMembers)
	}
	if m.removedpatients != nil {
		edges = append(edges, clinic.EdgePatients)
	}
	if m.removedpermissions != nil {
		edges = append(edges, clinic.EdgePermissions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ClinicMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case clinic.EdgeMembers:
		ids := make([]ent.Value, 0, len(m.removedmembers))
		for id := range m.removedmembers {
			ids = append(ids, id)
		}
		return ids
	case clinic.EdgePatients:
		ids := make([]ent.Value, 0, len(m.removedpatients))
		for id := range m.removedpatients {
			ids = append(ids, id)
		}
		return ids
	case clinic.EdgePermissions:
		ids := make([]ent.Value, 0, len(m.removedpermissions))
		for id := range m.removedpermissions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ClinicMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedmembers {
		edges = append(edges, clinic.EdgeMembers)
	}
	if m.clearedpatients {
		edges = append(edges, clinic.EdgePatients)
	}
	if m.clearedpermissions {
		edges = append(edges, clinic.EdgePermissions)
	}
	if m.clearedsettings {
		edges = append(edges, clinic.EdgeSettings)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ClinicMutation) EdgeCleared(name string) bool {
	switch name {
	case clinic.EdgeMembers:
		return m.clearedmembers
	case clinic.EdgePatients:
		return m.clearedpatients
	case clinic.EdgePermissions:
		return m.clearedpermissions
	case clinic.EdgeSettings:
		return m.clearedsettings
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ClinicMutation) ClearEdge(name string) error {
	switch name {
	case clinic.EdgeSettings:
		m.ClearSettings()
		return nil
	}
	return fmt.Errorf("unknown Clinic unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ClinicMutation) ResetEdge(name string) error {
	switch name {
	case clinic.EdgeMembers:
		m.ResetMembers()
		return nil
	case clinic.EdgePatients:
		m.ResetPatients()
		return nil
	case clinic.EdgePermissions:
		m.ResetPermissions()
		return nil
	case clinic.EdgeSettings:
		m.ResetSettings()
		return nil
	}
	return fmt.Errorf("unknown Clinic edge %s", name)
}

// ClinicMemberMutation represents an operation that mutates the ClinicMember nodes in the graph.
type ClinicMemberMutation struct {
	config
	op                          Op
	typ                         string
	id                          *uuid.UUID
	role                        *clinicmember.Role
	is_active                   *bool
	joined_at                   *time.Time
	clearedFields               map[string]struct{}
	clinic                      *uuid.UUID
	clearedclinic               bool
	user                        *uuid.UUID
	cleareduser                 bool
	psychologist_profile        *uuid.UUID
	clearedpsychologist_profile bool
	done                        bool
	oldValue                    func(context.Context) (*ClinicMember, error)
	predicates                  []predicate.ClinicMember
}

var _ ent.Mutation = (*ClinicMemberMutation)(nil)

// clinicmemberOption allows management of the mutation configuration using functional options.
type clinicmemberOption func(*ClinicMemberMutation)

// newClinicMemberMutation creates new mutation for the ClinicMember entity.
func newClinicMemberMutation(c config, op Op, opts ...clinicmemberOption) *ClinicMemberMutation {
	m := &ClinicMemberMutation{
		config:        c,
		op:            op,
		typ:           TypeClinicMember,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withClinicMemberID sets the ID field of the mutation.
func withClinicMemberID(id uuid.UUID) clinicmemberOption {
	return func(m *ClinicMemberMutation) {
		var (
			err   error
			once  sync.Once
			value *ClinicMember
		)
		m.oldValue = func(ctx context.Context) (*ClinicMember, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ClinicMember.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withClinicMember sets the old ClinicMember of the mutation.
func withClinicMember(node *ClinicMember) clinicmemberOption {
	return func(m *ClinicMemberMutation) {
		m.oldValue = func(context.Context) (*ClinicMember, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ClinicMemberMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ClinicMemberMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ClinicMember entities.
func (m *ClinicMemberMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ClinicMemberMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ClinicMemberMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ClinicMember.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetClinicID sets the "clinic_id" field.
func (m *ClinicMemberMutation) SetClinicID(u uuid.UUID) {
	m.clinic = &u
}

// ClinicID returns the value of the "clinic_id" field in the mutation.
func (m *ClinicMemberMutation) ClinicID() (r uuid.UUID, exists bool) {
	v := m.clinic
	if v == nil {
		return
	}
	return *v, true
}

// OldClinicID returns the old "clinic_id" field's value of the ClinicMember entity.
// If the ClinicMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMemberMutation) OldClinicID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClinicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClinicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClinicID: %w", err)
	}
	return oldValue.ClinicID, nil
}

// ResetClinicID resets all changes to the "clinic_id" field.
func (m *ClinicMemberMutation) ResetClinicID() {
	m.clinic = nil
}

// SetUserID sets the "user_id" field.
func (m *ClinicMemberMutation) SetUserID(u uuid.UUID) {
	m.user = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ClinicMemberMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ClinicMember entity.
// If the ClinicMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMemberMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ClinicMemberMutation) ResetUserID() {
	m.user = nil
}

// SetRole sets the "role" field.
func (m *ClinicMemberMutation) SetRole(c clinicmember.Role) {
	m.role = &c
}

// Role returns the value of the "role" field in the mutation.
func (m *ClinicMemberMutation) Role() (r clinicmember.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the ClinicMember entity.
// If the ClinicMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMemberMutation) OldRole(ctx context.Context) (v clinicmember.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *ClinicMemberMutation) ResetRole() {
	m.role = nil
}

// SetIsActive sets the "is_active" field.
func (m *ClinicMemberMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *ClinicMemberMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the ClinicMember entity.
// If the ClinicMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMemberMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *ClinicMemberMutation) ResetIsActive() {
	m.is_active = nil
}

// SetJoinedAt sets the "joined_at" field.
func (m *ClinicMemberMutation) SetJoinedAt(t time.Time) {
	m.joined_at = &t
}

// JoinedAt returns the value of the "joined_at" field in the mutation.
func (m *ClinicMemberMutation) JoinedAt() (r time.Time, exists bool) {
	v := m.joined_at
	if v == nil {
		return
	}
	return *v, true
}

// OldJoinedAt returns the old "joined_at" field's value of the ClinicMember entity.
// If the ClinicMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMemberMutation) OldJoinedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJoinedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJoinedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJoinedAt: %w", err)
	}
	return oldValue.JoinedAt, nil
}

// ResetJoinedAt resets all changes to the "joined_at" field.
func (m *ClinicMemberMutation) ResetJoinedAt() {
	m.joined_at = nil
}

// ClearClinic clears the "clinic" edge to the Clinic entity.
func (m *ClinicMemberMutation) ClearClinic() {
	m.clearedclinic = true
	m.clearedFields[clinicmember.FieldClinicID] = struct{}{}
}

// ClinicCleared reports if the "clinic" edge to the Clinic entity was cleared.
func (m *ClinicMemberMutation) ClinicCleared() bool {
	return m.clearedclinic
}

// ClinicIDs returns the "clinic" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ClinicID instead. It exists only for internal usage by the builders.
func (m *ClinicMemberMutation) ClinicIDs() (ids []uuid.UUID) {
	if id := m.clinic; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetClinic resets all changes to the "clinic" edge.
func (m *ClinicMemberMutation) ResetClinic() {
	m.clinic = nil
	m.clearedclinic = false
}

// ClearUser clears the "user" edge to the User entity.
func (m *ClinicMemberMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[clinicmember.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *ClinicMemberMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *ClinicMemberMutation) UserIDs() (ids []uuid.UUID) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *ClinicMemberMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// SetPsychologistProfileID sets the "psychologist_profile" edge to the PsychologistProfile entity by id.
func (m *ClinicMemberMutation) SetPsychologistProfileID(id uuid.UUID) {
	m.psychologist_profile = &id
}

// ClearPsychologistProfile clears the "psychologist_profile" edge to the PsychologistProfile entity.
func (m *ClinicMemberMutation) ClearPsychologistProfile() {
	m.clearedpsychologist_profile = true
}

// PsychologistProfileCleared reports if the "psychologist_profile" edge to the PsychologistProfile entity was cleared.
func (m *ClinicMemberMutation) PsychologistProfileCleared() bool {
	return m.clearedpsychologist_profile
}

// PsychologistProfileID returns the "psychologist_profile" edge ID in the mutation.
func (m *ClinicMemberMutation) PsychologistProfileID() (id uuid.UUID, exists bool) {
	if m.psychologist_profile != nil {
		return *m.psychologist_profile, true
	}
	return
}

// PsychologistProfileIDs returns the "psychologist_profile" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PsychologistProfileID instead. It exists only for internal usage by the builders.
func (m *ClinicMemberMutation) PsychologistProfileIDs() (ids []uuid.UUID) {
	if id := m.psychologist_profile; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPsychologistProfile resets all changes to the "psychologist_profile" edge.
func (m *ClinicMemberMutation) ResetPsychologistProfile() {
	m.psychologist_profile = nil
	m.clearedpsychologist_profile = false
}

// Where appends a list predicates to the ClinicMemberMutation builder.
func (m *ClinicMemberMutation) Where(ps ...predicate.ClinicMember) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ClinicMemberMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ClinicMemberMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ClinicMember, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ClinicMemberMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ClinicMemberMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ClinicMember).
func (m *ClinicMemberMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ClinicMemberMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.clinic != nil {
		fields = append(fields, clinicmember.FieldClinicID)
	}
	if m.user != nil {
		fields = append(fields, clinicmember.FieldUserID)
	}
	if m.role != nil {
		fields = append(fields, clinicmember.FieldRole)
	}
	if m.is_active != nil {
		fields = append(fields, clinicmember.FieldIsActive)
	}
	if m.joined_at != nil {
		fields = append(fields, clinicmember.FieldJoinedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ClinicMemberMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case clinicmember.FieldClinicID:
		return m.ClinicID()
	case clinicmember.FieldUserID:
		return m.UserID()
	case clinicmember.FieldRole:
		return m.Role()
	case clinicmember.FieldIsActive:
		return m.IsActive()
	case clinicmember.FieldJoinedAt:
		return m.JoinedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ClinicMemberMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case clinicmember.FieldClinicID:
		return m.OldClinicID(ctx)
	case clinicmember.FieldUserID:
		return m.OldUserID(ctx)
	case clinicmember.FieldRole:
		return m.OldRole(ctx)
	case clinicmember.FieldIsActive:
		return m.OldIsActive(ctx)
	case clinicmember.FieldJoinedAt:
		return m.OldJoinedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ClinicMember field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClinicMemberMutation) SetField(name string, value ent.Value) error {
	switch name {
	case clinicmember.FieldClinicID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClinicID(v)
		return nil
	case clinicmember.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case clinicmember.FieldRole:
		v, ok := value.(clinicmember.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case clinicmember.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case clinicmember.FieldJoinedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJoinedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ClinicMember field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ClinicMemberMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ClinicMemberMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClinicMemberMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ClinicMember numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ClinicMemberMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ClinicMemberMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ClinicMemberMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ClinicMember nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ClinicMemberMutation) ResetField(name string) error {
	switch name {
	case clinicmember.FieldClinicID:
		m.ResetClinicID()
		return nil
	case clinicmember.FieldUserID:
		m.ResetUserID()
		return nil
	case clinicmember.FieldRole:
		m.ResetRole()
		return nil
	case clinicmember.FieldIsActive:
		m.ResetIsActive()
		return nil
	case clinicmember.FieldJoinedAt:
		m.ResetJoinedAt()
		return nil
	}
	return fmt.Errorf("unknown ClinicMember field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ClinicMemberMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clinic != nil {
		edges = append(edges, clinicmember.EdgeClinic)
	}
	if m.user != nil {
		edges = append(edges, clinicmember.EdgeUser)
	}
	if m.psychologist_profile != nil {
		edges = append(edges, clinicmember.EdgePsychologistProfile)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ClinicMemberMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case clinicmember.EdgeClinic:
		if id := m.clinic; id != nil {
			return []ent.Value{*id}
		}
	case clinicmember.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	case clinicmember.EdgePsychologistProfile:
		if id := m.psychologist_profile; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ClinicMemberMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ClinicMemberMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ClinicMemberMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedclinic {
		edges = append(edges, clinicmember.EdgeClinic)
	}
	if m.cleareduser {
		edges = append(edges, clinicmember.EdgeUser)
	}
	if m.clearedpsychologist_profile {
		edges = append(edges, clinicmember.EdgePsychologistProfile)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ClinicMemberMutation) EdgeCleared(name string) bool {
	switch name {
	case clinicmember.EdgeClinic:
		return m.clearedclinic
	case clinicmember.EdgeUser:
		return m.cleareduser
	case clinicmember.EdgePsychologistProfile:
		return m.clearedpsychologist_profile
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ClinicMemberMutation) ClearEdge(name string) error {
	switch name {
	case clinicmember.EdgeClinic:
		m.ClearClinic()
		return nil
	case clinicmember.EdgeUser:
		m.ClearUser()
		return nil
	case clinicmember.EdgePsychologistProfile:
		m.ClearPsychologistProfile()
		return nil
	}
	return fmt.Errorf("unknown ClinicMember unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ClinicMemberMutation) ResetEdge(name string) error {
	switch name {
	case clinicmember.EdgeClinic:
		m.ResetClinic()
		return nil
	case clinicmember.EdgeUser:
		m.ResetUser()
		return nil
	case clinicmember.EdgePsychologistProfile:
		m.ResetPsychologistProfile()
		return nil
	}
	return fmt.Errorf("unknown ClinicMember edge %s", name)
}

// ClinicPermissionMutation represents an operation that mutates the ClinicPermission nodes in the graph.
type ClinicPermissionMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	resource_type *string
	resource_id   *uuid.UUID
	action        *string
	granted       *bool
	clearedFields map[string]struct{}
	clinic        *uuid.UUID
	clearedclinic bool
	user          *uuid.UUID
	cleareduser   bool
	done          bool
	oldValue      func(context.Context) (*ClinicPermission, error)
	predicates    []predicate.ClinicPermission
}

var _ ent.Mutation = (*ClinicPermissionMutation)(nil)

// clinicpermissionOption allows management of the mutation configuration using functional options.
type clinicpermissionOption func(*ClinicPermissionMutation)

// newClinicPermissionMutation creates new mutation for the ClinicPermission entity.
func newClinicPermissionMutation(c config, op Op, opts ...clinicpermissionOption) *ClinicPermissionMutation {
	m := &ClinicPermissionMutation{
		config:        c,
		op:            op,
		typ:           TypeClinicPermission,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withClinicPermissionID sets the ID field of the mutation.
func withClinicPermissionID(id uuid.UUID) clinicpermissionOption {
	return func(m *ClinicPermissionMutation) {
		var (
			err   error
			once  sync.Once
			value *ClinicPermission
		)
		m.oldValue = func(ctx context.Context) (*ClinicPermission, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ClinicPermission.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withClinicPermission sets the old ClinicPermission of the mutation.
func withClinicPermission(node *ClinicPermission) clinicpermissionOption {
	return func(m *ClinicPermissionMutation) {
		m.oldValue = func(context.Context) (*ClinicPermission, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ClinicPermissionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ClinicPermissionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ClinicPermission entities.
func (m *ClinicPermissionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ClinicPermissionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ClinicPermissionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ClinicPermission.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ClinicPermissionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ClinicPermissionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ClinicPermission entity.
// If the ClinicPermission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicPermissionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ClinicPermissionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetClinicID sets the "clinic_id" field.
func (m *ClinicPermissionMutation) SetClinicID(u uuid.UUID) {
	m.clinic = &u
}

// ClinicID returns the value of the "clinic_id" field in the mutation.
func (m *ClinicPermissionMutation) ClinicID() (r uuid.UUID, exists bool) {
	v := m.clinic
	if v == nil {
		return
	}
	return *v, true
}

// OldClinicID returns the old "clinic_id" field's value of the ClinicPermission entity.
// If the ClinicPermission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicPermissionMutation) OldClinicID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClinicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClinicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClinicID: %w", err)
	}
	return oldValue.ClinicID, nil
}

// ResetClinicID resets all changes to the "clinic_id" field.
func (m *ClinicPermissionMutation) ResetClinicID() {
	m.clinic = nil
}

// SetUserID sets the "user_id" field.
func (m *ClinicPermissionMutation) SetUserID(u uuid.UUID) {
	m.user = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ClinicPermissionMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ClinicPermission entity.
// If the ClinicPermission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicPermissionMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ClinicPermissionMutation) ResetUserID() {
	m.user = nil
}

// SetResourceType sets the "resource_type" field.
func (m *ClinicPermissionMutation) SetResourceType(s string) {
	m.resource_type = &s
}

// ResourceType returns the value of the "resource_type" field in the mutation.
func (m *ClinicPermissionMutation) ResourceType() (r string, exists bool) {
	v := m.resource_type
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceType returns the old "resource_type" field's value of the ClinicPermission entity.
// If the ClinicPermission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicPermissionMutation) OldResourceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceType: %w", err)
	}
	return oldValue.ResourceType, nil
}

// ResetResourceType resets all changes to the "resource_type" field.
func (m *ClinicPermissionMutation) ResetResourceType() {
	m.resource_type = nil
}

// SetResourceID sets the "resource_id" field.
func (m *ClinicPermissionMutation) SetResourceID(u uuid.UUID) {
	m.resource_id = &u
}

// ResourceID returns the value of the "resource_id" field in the mutation.
func (m *ClinicPermissionMutation) ResourceID() (r uuid.UUID, exists bool) {
	v := m.resource_id
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceID returns the old "resource_id" field's value of the ClinicPermission entity.
// If the ClinicPermission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicPermissionMutation) OldResourceID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceID: %w", err)
	}
	return oldValue.ResourceID, nil
}

// ClearResourceID clears the value of the "resource_id" field.
func (m *ClinicPermissionMutation) ClearResourceID() {
	m.resource_id = nil
	m.clearedFields[clinicpermission.FieldResourceID] = struct{}{}
}

// ResourceIDCleared returns if the "resource_id" field was cleared in this mutation.
func (m *ClinicPermissionMutation) ResourceIDCleared() bool {
	_, ok := m.clearedFields[clinicpermission.FieldResourceID]
	return ok
}

// ResetResourceID resets all changes to the "resource_id" field.
func (m *ClinicPermissionMutation) ResetResourceID() {
	m.resource_id = nil
	delete(m.clearedFields, clinicpermission.FieldResourceID)
}

// SetAction sets the "action" field.
func (m *ClinicPermissionMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *ClinicPermissionMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the ClinicPermission entity.
// If the ClinicPermission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicPermissionMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *ClinicPermissionMutation) ResetAction() {
	m.action = nil
}

// SetGranted sets the "granted" field.
func (m *ClinicPermissionMutation) SetGranted(b bool) {
	m.granted = &b
}

// Granted returns the value of the "granted" field in the mutation.
func (m *ClinicPermissionMutation) Granted() (r bool, exists bool) {
	v := m.granted
	if v == nil {
		return
	}
	return *v, true
}

// OldGranted returns the old "granted" field's value of the ClinicPermission entity.
// If the ClinicPermission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicPermissionMutation) OldGranted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGranted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGranted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGranted: %w", err)
	}
	return oldValue.Granted, nil
}

// ResetGranted resets all changes to the "granted" field.
func (m *ClinicPermissionMutation) ResetGranted() {
	m.granted = nil
}

// ClearClinic clears the "clinic" edge to the Clinic entity.
func (m *ClinicPermissionMutation) ClearClinic() {
	m.clearedclinic = true
	m.clearedFields[clinicpermission.FieldClinicID] = struct{}{}
}

// ClinicCleared reports if the "clinic" edge to the Clinic entity was cleared.
func (m *ClinicPermissionMutation) ClinicCleared() bool {
	return m.clearedclinic
}

// ClinicIDs returns the "clinic" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ClinicID instead. It exists only for internal usage by the builders.
func (m *ClinicPermissionMutation) ClinicIDs() (ids []uuid.UUID) {
	if id := m.clinic; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetClinic resets all changes to the "clinic" edge.
func (m *ClinicPermissionMutation) ResetClinic() {
	m.clinic = nil
	m.clearedclinic = false
}

// ClearUser clears the "user" edge to the User entity.
func (m *ClinicPermissionMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[clinicpermission.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *ClinicPermissionMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *ClinicPermissionMutation) UserIDs() (ids []uuid.UUID) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *ClinicPermissionMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the ClinicPermissionMutation builder.
func (m *ClinicPermissionMutation) Where(ps ...predicate.ClinicPermission) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ClinicPermissionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ClinicPermissionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ClinicPermission, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ClinicPermissionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ClinicPermissionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ClinicPermission).
func (m *ClinicPermissionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ClinicPermissionMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, clinicpermission.FieldCreatedAt)
	}
	if m.clinic != nil {
		fields = append(fields, clinicpermission.FieldClinicID)
	}
	if m.user != nil {
		fields = append(fields, clinicpermission.FieldUserID)
	}
	if m.resource_type != nil {
		fields = append(fields, clinicpermission.FieldResourceType)
	}
	if m.resource_id != nil {
		fields = append(fields, clinicpermission.FieldResourceID)
	}
	if m.action != nil {
		fields = append(fields, clinicpermission.FieldAction)
	}
	if m.granted != nil {
		fields = append(fields, clinicpermission.FieldGranted)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ClinicPermissionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case clinicpermission.FieldCreatedAt:
		return m.CreatedAt()
	case clinicpermission.FieldClinicID:
		return m.ClinicID()
	case clinicpermission.FieldUserID:
		return m.UserID()
	case clinicpermission.FieldResourceType:
		return m.ResourceType()
	case clinicpermission.FieldResourceID:
		return m.ResourceID()
	case clinicpermission.FieldAction:
		return m.Action()
	case clinicpermission.FieldGranted:
		return m.Granted()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ClinicPermissionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case clinicpermission.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case clinicpermission.FieldClinicID:
		return m.OldClinicID(ctx)
	case clinicpermission.FieldUserID:
		return m.OldUserID(ctx)
	case clinicpermission.FieldResourceType:
		return m.OldResourceType(ctx)
	case clinicpermission.FieldResourceID:
		return m.OldResourceID(ctx)
	case clinicpermission.FieldAction:
		return m.OldAction(ctx)
	case clinicpermission.FieldGranted:
		return m.OldGranted(ctx)
	}
	return nil, fmt.Errorf("unknown ClinicPermission field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClinicPermissionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case clinicpermission.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case clinicpermission.FieldClinicID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClinicID(v)
		return nil
	case clinicpermission.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case clinicpermission.FieldResourceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceType(v)
		return nil
	case clinicpermission.FieldResourceID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceID(v)
		return nil
	case clinicpermission.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case clinicpermission.FieldGranted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGranted(v)
		return nil
	}
	return fmt.Errorf("unknown ClinicPermission field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ClinicPermissionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ClinicPermissionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClinicPermissionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ClinicPermission numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ClinicPermissionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(clinicpermission.FieldResourceID) {
		fields = append(fields, clinicpermission.FieldResourceID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ClinicPermissionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ClinicPermissionMutation) ClearField(name string) error {
	switch name {
	case clinicpermission.FieldResourceID:
		m.ClearResourceID()
		return nil
	}
	return fmt.Errorf("unknown ClinicPermission nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ClinicPermissionMutation) ResetField(name string) error {
	switch name {
	case clinicpermission.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case clinicpermission.FieldClinicID:
		m.ResetClinicID()
		return nil
	case clinicpermission.FieldUserID:
		m.ResetUserID()
		return nil
	case clinicpermission.FieldResourceType:
		m.ResetResourceType()
		return nil
	case clinicpermission.FieldResourceID:
		m.ResetResourceID()
		return nil
	case clinicpermission.FieldAction:
		m.ResetAction()
		return nil
	case clinicpermission.FieldGranted:
		m.ResetGranted()
		return nil
	}
	return fmt.Errorf("unknown ClinicPermission field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ClinicPermissionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clinic != nil {
		edges = append(edges, clinicpermission.EdgeClinic)
	}
	if m.user != nil {
		edges = append(edges, clinicpermission.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ClinicPermissionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case clinicpermission.EdgeClinic:
		if id := m.clinic; id != nil {
			return []ent.Value{*id}
		}
	case clinicpermission.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ClinicPermissionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ClinicPermissionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ClinicPermissionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedclinic {
		edges = append(edges, clinicpermission.EdgeClinic)
	}
	if m.cleareduser {
		edges = append(edges, clinicpermission.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ClinicPermissionMutation) EdgeCleared(name string) bool {
	switch name {
	case clinicpermission.EdgeClinic:
		return m.clearedclinic
	case clinicpermission.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ClinicPermissionMutation) ClearEdge(name string) error {
	switch name {
	case clinicpermission.EdgeClinic:
		m.ClearClinic()
		return nil
	case clinicpermission.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown ClinicPermission unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ClinicPermissionMutation) ResetEdge(name string) error {
	switch name {
	case clinicpermission.EdgeClinic:
		m.ResetClinic()
		return nil
	case clinicpermission.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown ClinicPermission edge %s", name)
}

// ClinicSettingsMutation represents an operation that mutates the ClinicSettings nodes in the graph.
type ClinicSettingsMutation struct {
	config
	op                              Op
	typ                             string
	id                              *uuid.UUID
	created_at                      *time.Time
	updated_at                      *time.Time
	cancellation_window_hours       *int
	addcancellation_window_hours    *int
	allow_patient_self_book         *bool
	default_session_duration_min    *int
	adddefault_session_duration_min *int
	default_session_price_cents     *int64
	adddefault_session_price_cents  *int64
	working_hours                   *map[string]interface{}
	clearedFields                   map[string]struct{}
	clinic                          *uuid.UUID
	clearedclinic                   bool
	done                            bool
	oldValue                        func(context.Context) (*ClinicSettings, error)
	predicates                      []predicate.ClinicSettings
}

var _ ent.Mutation = (*ClinicSettingsMutation)(nil)

// clinicsettingsOption allows management of the mutation configuration using functional options.
type clinicsettingsOption func(*ClinicSettingsMutation)

// newClinicSettingsMutation creates new mutation for the ClinicSettings entity.
func newClinicSettingsMutation(c config, op Op, opts ...clinicsettingsOption) *ClinicSettingsMutation {
	m := &ClinicSettingsMutation{
		config:        c,
		op:            op,
		typ:           TypeClinicSettings,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withClinicSettingsID sets the ID field of the mutation.
func withClinicSettingsID(id uuid.UUID) clinicsettingsOption {
	return func(m *ClinicSettingsMutation) {
		var (
			err   error
			once  sync.Once
			value *ClinicSettings
		)
		m.oldValue = func(ctx context.Context) (*ClinicSettings, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ClinicSettings.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withClinicSettings sets the old ClinicSettings of the mutation.
func withClinicSettings(node *ClinicSettings) clinicsettingsOption {
	return func(m *ClinicSettingsMutation) {
		m.oldValue = func(context.Context) (*ClinicSettings, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ClinicSettingsMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ClinicSettingsMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ClinicSettings entities.
func (m *ClinicSettingsMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ClinicSettingsMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ClinicSettingsMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ClinicSettings.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ClinicSettingsMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ClinicSettingsMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ClinicSettings entity.
// If the ClinicSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicSettingsMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ClinicSettingsMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ClinicSettingsMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ClinicSettingsMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ClinicSettings entity.
// If the ClinicSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicSettingsMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ClinicSettingsMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetClinicID sets the "clinic_id" field.
func (m *ClinicSettingsMutation) SetClinicID(u uuid.UUID) {
	m.clinic = &u
}

// ClinicID returns the value of the "clinic_id" field in the mutation.
func (m *ClinicSettingsMutation) ClinicID() (r uuid.UUID, exists bool) {
	v := m.clinic
	if v == nil {
		return
	}
	return *v, true
}

// OldClinicID returns the old "clinic_id" field's value of the ClinicSettings entity.
// If the ClinicSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicSettingsMutation) OldClinicID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClinicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClinicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClinicID: %w", err)
	}
	return oldValue.ClinicID, nil
}

// ResetClinicID resets all changes to the "clinic_id" field.
func (m *ClinicSettingsMutation) ResetClinicID() {
	m.clinic = nil
}

// SetCancellationWindowHours sets the "cancellation_window_hours" field.
func (m *ClinicSettingsMutation) SetCancellationWindowHours(i int) {
	m.cancellation_window_hours = &i
	m.addcancellation_window_hours = nil
}

// CancellationWindowHours returns the value of the "cancellation_window_hours" field in the mutation.
func (m *ClinicSettingsMutation) CancellationWindowHours() (r int, exists bool) {
	v := m.cancellation_window_hours
	if v == nil {
		return
	}
	return *v, true
}

// OldCancellationWindowHours returns the old "cancellation_window_hours" field's value of the ClinicSettings entity.
// If the ClinicSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicSettingsMutation) OldCancellationWindowHours(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancellationWindowHours is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancellationWindowHours requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancellationWindowHours: %w", err)
	}
	return oldValue.CancellationWindowHours, nil
}

// AddCancellationWindowHours adds i to the "cancellation_window_hours" field.
func (m *ClinicSettingsMutation) AddCancellationWindowHours(i int) {
	if m.addcancellation_window_hours != nil {
		*m.addcancellation_window_hours += i
	} else {
		m.addcancellation_window_hours = &i
	}
}

// AddedCancellationWindowHours returns the value that was added to the "cancellation_window_hours" field in this mutation.
func (m *ClinicSettingsMutation) AddedCancellationWindowHours() (r int, exists bool) {
	v := m.addcancellation_window_hours
	if v == nil {
		return
	}
	return *v, true
}

// ResetCancellationWindowHours resets all changes to the "cancellation_window_hours" field.
func (m *ClinicSettingsMutation) ResetCancellationWindowHours() {
	m.cancellation_window_hours = nil
	m.addcancellation_window_hours = nil
}

// SetAllowPatientSelfBook sets the "allow_patient_self_book" field.
func (m *ClinicSettingsMutation) SetAllowPatientSelfBook(b bool) {
	m.allow_patient_self_book = &b
}

// AllowPatientSelfBook returns the value of the "allow_patient_self_book" field in the mutation.
func (m *ClinicSettingsMutation) AllowPatientSelfBook() (r bool, exists bool) {
	v := m.allow_patient_self_book
	if v == nil {
		return
	}
	return *v, true
}

// OldAllowPatientSelfBook returns the old "allow_patient_self_book" field's value of the ClinicSettings entity.
// If the ClinicSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicSettingsMutation) OldAllowPatientSelfBook(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAllowPatientSelfBook is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAllowPatientSelfBook requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAllowPatientSelfBook: %w", err)
	}
	return oldValue.AllowPatientSelfBook, nil
}

// ResetAllowPatientSelfBook resets all changes to the "allow_patient_self_book" field.
func (m *ClinicSettingsMutation) ResetAllowPatientSelfBook() {
	m.allow_patient_self_book = nil
}

// SetDefaultSessionDurationMin sets the "default_session_duration_min" field.
func (m *ClinicSettingsMutation) SetDefaultSessionDurationMin(i int) {
	m.default_session_duration_min = &i
	m.adddefault_session_duration_min = nil
}

// DefaultSessionDurationMin returns the value of the "default_session_duration_min" field in the mutation.
func (m *ClinicSettingsMutation) DefaultSessionDurationMin() (r int, exists bool) {
	v := m.default_session_duration_min
	if v == nil {
		return
	}
	return *v, true
}

// OldDefaultSessionDurationMin returns the old "default_session_duration_min" field's value of the ClinicSettings entity.
// If the ClinicSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicSettingsMutation) OldDefaultSessionDurationMin(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefaultSessionDurationMin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefaultSessionDurationMin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefaultSessionDurationMin: %w", err)
	}
	return oldValue.DefaultSessionDurationMin, nil
}

// AddDefaultSessionDurationMin adds i to the "default_session_duration_min" field.
func (m *ClinicSettingsMutation) AddDefaultSessionDurationMin(i int) {
	if m.adddefault_session_duration_min != nil {
		*m.adddefault_session_duration_min += i
	} else {
		m.adddefault_session_duration_min = &i
	}
}

// AddedDefaultSessionDurationMin returns the value that was added to the "default_session_duration_min" field in this mutation.
func (m *ClinicSettingsMutation) AddedDefaultSessionDurationMin() (r int, exists bool) {
	v := m.adddefault_session_duration_min
	if v == nil {
		return
	}
	return *v, true
}

// ResetDefaultSessionDurationMin resets all changes to the "default_session_duration_min" field.
func (m *ClinicSettingsMutation) ResetDefaultSessionDurationMin() {
	m.default_session_duration_min = nil
	m.adddefault_session_duration_min = nil
}

// SetDefaultSessionPriceCents sets the "default_session_price_cents" field.
func (m *ClinicSettingsMutation) SetDefaultSessionPriceCents(i int64) {
	m.default_session_price_cents = &i
	m.adddefault_session_price_cents = nil
}

// DefaultSessionPriceCents returns the value of the "default_session_price_cents" field in the mutation.
func (m *ClinicSettingsMutation) DefaultSessionPriceCents() (r int64, exists bool) {
	v := m.default_session_price_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldDefaultSessionPriceCents returns the old "default_session_price_cents" field's value of the ClinicSettings entity.
// If the ClinicSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicSettingsMutation) OldDefaultSessionPriceCents(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefaultSessionPriceCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefaultSessionPriceCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefaultSessionPriceCents: %w", err)
	}
	return oldValue.DefaultSessionPriceCents, nil
}

// AddDefaultSessionPriceCents adds i to the "default_session_price_cents" field.
func (m *ClinicSettingsMutation) AddDefaultSessionPriceCents(i int64) {
	if m.adddefault_session_price_cents != nil {
		*m.adddefault_session_price_cents += i
	} else {
		m.adddefault_session_price_cents = &i
	}
}

// AddedDefaultSessionPriceCents returns the value that was added to the "default_session_price_cents" field in this mutation.
func (m *ClinicSettingsMutation) AddedDefaultSessionPriceCents() (r int64, exists bool) {
	v := m.adddefault_session_price_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetDefaultSessionPriceCents resets all changes to the "default_session_price_cents" field.
func (m *ClinicSettingsMutation) ResetDefaultSessionPriceCents() {
	m.default_session_price_cents = nil
	m.adddefault_session_price_cents = nil
}

// SetWorkingHours sets the "working_hours" field.
func (m *ClinicSettingsMutation) SetWorkingHours(value map[string]interface{}) {
	m.working_hours = &value
}

// WorkingHours returns the value of the "working_hours" field in the mutation.
func (m *ClinicSettingsMutation) WorkingHours() (r map[string]interface{}, exists bool) {
	v := m.working_hours
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkingHours returns the old "working_hours" field's value of the ClinicSettings entity.
// If the ClinicSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicSettingsMutation) OldWorkingHours(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkingHours is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkingHours requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkingHours: %w", err)
	}
	return oldValue.WorkingHours, nil
}

// ClearWorkingHours clears the value of the "working_hours" field.
func (m *ClinicSettingsMutation) ClearWorkingHours() {
	m.working_hours = nil
	m.clearedFields[clinicsettings.FieldWorkingHours] = struct{}{}
}

// WorkingHoursCleared returns if the "working_hours" field was cleared in this mutation.
func (m *ClinicSettingsMutation) WorkingHoursCleared() bool {
	_, ok := m.clearedFields[clinicsettings.FieldWorkingHours]
	return ok
}

// ResetWorkingHours resets all changes to the "working_hours" field.
func (m *ClinicSettingsMutation) ResetWorkingHours() {
	m.working_hours = nil
	delete(m.clearedFields, clinicsettings.FieldWorkingHours)
}

// ClearClinic clears the "clinic" edge to the Clinic entity.
func (m *ClinicSettingsMutation) ClearClinic() {
	m.clearedclinic = true
	m.clearedFields[clinicsettings.FieldClinicID] = struct{}{}
}

// ClinicCleared reports if the "clinic" edge to the Clinic entity was cleared.
func (m *ClinicSettingsMutation) ClinicCleared() bool {
	return m.clearedclinic
}

// ClinicIDs returns the "clinic" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ClinicID instead. It exists only for internal usage by the builders.
func (m *ClinicSettingsMutation) ClinicIDs() (ids []uuid.UUID) {
	if id := m.clinic; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetClinic resets all changes to the "clinic" edge.
func (m *ClinicSettingsMutation) ResetClinic() {
	m.clinic = nil
	m.clearedclinic = false
}

// Where appends a list predicates to the ClinicSettingsMutation builder.
func (m *ClinicSettingsMutation) Where(ps ...predicate.ClinicSettings) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ClinicSettingsMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ClinicSettingsMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ClinicSettings, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ClinicSettingsMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ClinicSettingsMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ClinicSettings).
func (m *ClinicSettingsMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ClinicSettingsMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, clinicsettings.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, clinicsettings.FieldUpdatedAt)
	}
	if m.clinic != nil {
		fields = append(fields, clinicsettings.FieldClinicID)
	}
	if m.cancellation_window_hours != nil {
		fields = append(fields, clinicsettings.FieldCancellationWindowHours)
	}
	if m.allow_patient_self_book != nil {
		fields = append(fields, clinicsettings.FieldAllowPatientSelfBook)
	}
	if m.default_session_duration_min != nil {
		fields = append(fields, clinicsettings.FieldDefaultSessionDurationMin)
	}
	if m.default_session_price_cents != nil {
		fields = append(fields, clinicsettings.FieldDefaultSessionPriceCents)
	}
	if m.working_hours != nil {
		fields = append(fields, clinicsettings.FieldWorkingHours)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ClinicSettingsMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case clinicsettings.FieldCreatedAt:
		return m.CreatedAt()
	case clinicsettings.FieldUpdatedAt:
		return m.UpdatedAt()
	case clinicsettings.FieldClinicID:
		return m.ClinicID()
	case clinicsettings.FieldCancellationWindowHours:
		return m.CancellationWindowHours()
	case clinicsettings.FieldAllowPatientSelfBook:
		return m.AllowPatientSelfBook()
	case clinicsettings.FieldDefaultSessionDurationMin:
		return m.DefaultSessionDurationMin()
	case clinicsettings.FieldDefaultSessionPriceCents:
		return m.DefaultSessionPriceCents()
	case clinicsettings.FieldWorkingHours:
		return m.WorkingHours()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ClinicSettingsMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case clinicsettings.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case clinicsettings.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case clinicsettings.FieldClinicID:
		return m.OldClinicID(ctx)
	case clinicsettings.FieldCancellationWindowHours:
		return m.OldCancellationWindowHours(ctx)
	case clinicsettings.FieldAllowPatientSelfBook:
		return m.OldAllowPatientSelfBook(ctx)
	case clinicsettings.FieldDefaultSessionDurationMin:
		return m.OldDefaultSessionDurationMin(ctx)
	case clinicsettings.FieldDefaultSessionPriceCents:
		return m.OldDefaultSessionPriceCents(ctx)
	case clinicsettings.FieldWorkingHours:
		return m.OldWorkingHours(ctx)
	}
	return nil, fmt.Errorf("unknown ClinicSettings field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClinicSettingsMutation) SetField(name string, value ent.Value) error {
	switch name {
	case clinicsettings.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case clinicsettings.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case clinicsettings.FieldClinicID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClinicID(v)
		return nil
	case clinicsettings.FieldCancellationWindowHours:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancellationWindowHours(v)
		return nil
	case clinicsettings.FieldAllowPatientSelfBook:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAllowPatientSelfBook(v)
		return nil
	case clinicsettings.FieldDefaultSessionDurationMin:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefaultSessionDurationMin(v)
		return nil
	case clinicsettings.FieldDefaultSessionPriceCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefaultSessionPriceCents(v)
		return nil
	case clinicsettings.FieldWorkingHours:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkingHours(v)
		return nil
	}
	return fmt.Errorf("unknown ClinicSettings field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ClinicSettingsMutation) AddedFields() []string {
	var fields []string
	if m.addcancellation_window_hours != nil {
		fields = append(fields, clinicsettings.FieldCancellationWindowHours)
	}
	if m.adddefault_session_duration_min != nil {
		fields = append(fields, clinicsettings.FieldDefaultSessionDurationMin)
	}
	if m.adddefault_session_price_cents != nil {
		fields = append(fields, clinicsettings.FieldDefaultSessionPriceCents)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ClinicSettingsMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case clinicsettings.FieldCancellationWindowHours:
		return m.AddedCancellationWindowHours()
	case clinicsettings.FieldDefaultSessionDurationMin:
		return m.AddedDefaultSessionDurationMin()
	case clinicsettings.FieldDefaultSessionPriceCents:
		return m.AddedDefaultSessionPriceCents()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClinicSettingsMutation) AddField(name string, value ent.Value) error {
	switch name {
	case clinicsettings.FieldCancellationWindowHours:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCancellationWindowHours(v)
		return nil
	case clinicsettings.FieldDefaultSessionDurationMin:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDefaultSessionDurationMin(v)
		return nil
	case clinicsettings.FieldDefaultSessionPriceCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDefaultSessionPriceCents(v)
		return nil
	}
	return fmt.Errorf("unknown ClinicSettings numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ClinicSettingsMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(clinicsettings.FieldWorkingHours) {
		fields = append(fields, clinicsettings.FieldWorkingHours)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ClinicSettingsMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ClinicSettingsMutation) ClearField(name string) error {
	switch name {
	case clinicsettings.FieldWorkingHours:
		m.ClearWorkingHours()
		return nil
	}
	return fmt.Errorf("unknown ClinicSettings nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ClinicSettingsMutation) ResetField(name string) error {
	switch name {
	case clinicsettings.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case clinicsettings.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case clinicsettings.FieldClinicID:
		m.ResetClinicID()
		return nil
	case clinicsettings.FieldCancellationWindowHours:
		m.ResetCancellationWindowHours()
		return nil
	case clinicsettings.FieldAllowPatientSelfBook:
		m.ResetAllowPatientSelfBook()
		return nil
	case clinicsettings.FieldDefaultSessionDurationMin:
		m.ResetDefaultSessionDurationMin()
		return nil
	case clinicsettings.FieldDefaultSessionPriceCents:
		m.ResetDefaultSessionPriceCents()
		return nil
	case clinicsettings.FieldWorkingHours:
		m.ResetWorkingHours()
		return nil
	}
	return fmt.Errorf("unknown ClinicSettings field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ClinicSettingsMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clinic != nil {
		edges = append(edges, clinicsettings.EdgeClinic)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ClinicSettingsMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case clinicsettings.EdgeClinic:
		if id := m.clinic; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ClinicSettingsMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ClinicSettingsMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ClinicSettingsMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedclinic {
		edges = append(edges, clinicsettings.EdgeClinic)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ClinicSettingsMutation) EdgeCleared(name string) bool {
	switch name {
	case clinicsettings.EdgeClinic:
		return m.clearedclinic
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ClinicSettingsMutation) ClearEdge(name string) error {
	switch name {
	case clinicsettings.EdgeClinic:
		m.ClearClinic()
		return nil
	}
	return fmt.Errorf("unknown ClinicSettings unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ClinicSettingsMutation) ResetEdge(name string) error {
	switch name {
	case clinicsettings.EdgeClinic:
		m.ResetClinic()
		return nil
	}
	return fmt.Errorf("unknown ClinicSettings edge %s", name)
}

// DiaryEntryMutation represents an operation that mutates the DiaryEntry nodes in the graph.
type DiaryEntryMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	created_at     *time.Time
	updated_at     *time.Time
	patient_id     *uuid.UUID
	entry_date     *time.Time
	mood           *int
	addmood        *int
	energy         *int
	addenergy      *int
	content        *string
	emotions       *[]string
	appendemotions []string
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*DiaryEntry, error)
	predicates     []predicate.DiaryEntry
}

var _ ent.Mutation = (*DiaryEntryMutation)(nil)

// diaryentryOption allows management of the mutation configuration using functional options.
type diaryentryOption func(*DiaryEntryMutation)

// newDiaryEntryMutation creates new mutation for the DiaryEntry entity.
func newDiaryEntryMutation(c config, op Op, opts ...diaryentryOption) *DiaryEntryMutation {
	m := &DiaryEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeDiaryEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDiaryEntryID sets the ID field of the mutation.
func withDiaryEntryID(id uuid.UUID) diaryentryOption {
	return func(m *DiaryEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *DiaryEntry
		)
		m.oldValue = func(ctx context.Context) (*DiaryEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DiaryEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDiaryEntry sets the old DiaryEntry of the mutation.
func withDiaryEntry(node *DiaryEntry) diaryentryOption {
	return func(m *DiaryEntryMutation) {
		m.oldValue = func(context.Context) (*DiaryEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DiaryEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DiaryEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DiaryEntry entities.
func (m *DiaryEntryMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DiaryEntryMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DiaryEntryMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DiaryEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *DiaryEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DiaryEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DiaryEntry entity.
// If the DiaryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiaryEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DiaryEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DiaryEntryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DiaryEntryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the DiaryEntry entity.
// If the DiaryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiaryEntryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DiaryEntryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetPatientID sets the "patient_id" field.
func (m *DiaryEntryMutation) SetPatientID(u uuid.UUID) {
	m.patient_id = &u
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *DiaryEntryMutation) PatientID() (r uuid.UUID, exists bool) {
	v := m.patient_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the DiaryEntry entity.
// If the DiaryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiaryEntryMutation) OldPatientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *DiaryEntryMutation) ResetPatientID() {
	m.patient_id = nil
}

// SetEntryDate sets the "entry_date" field.
func (m *DiaryEntryMutation) SetEntryDate(t time.Time) {
	m.entry_date = &t
}

// EntryDate returns the value of the "entry_date" field in the mutation.
func (m *DiaryEntryMutation) EntryDate() (r time.Time, exists bool) {
	v := m.entry_date
	if v == nil {
		return
	}
	return *v, true
}

// OldEntryDate returns the old "entry_date" field's value of the DiaryEntry entity.
// If the DiaryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiaryEntryMutation) OldEntryDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntryDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntryDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntryDate: %w", err)
	}
	return oldValue.EntryDate, nil
}

// ResetEntryDate resets all changes to the "entry_date" field.
func (m *DiaryEntryMutation) ResetEntryDate() {
	m.entry_date = nil
}

// SetMood sets the "mood" field.
func (m *DiaryEntryMutation) SetMood(i int) {
	m.mood = &i
	m.addmood = nil
}

// Mood returns the value of the "mood" field in the mutation.
func (m *DiaryEntryMutation) Mood() (r int, exists bool) {
	v := m.mood
	if v == nil {
		return
	}
	return *v, true
}

// OldMood returns the old "mood" field's value of the DiaryEntry entity.
// If the DiaryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiaryEntryMutation) OldMood(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMood is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMood requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMood: %w", err)
	}
	return oldValue.Mood, nil
}

// AddMood adds i to the "mood" field.
func (m *DiaryEntryMutation) AddMood(i int) {
	if m.addmood != nil {
		*m.addmood += i
	} else {
		m.addmood = &i
	}
}

// AddedMood returns the value that was added to the "mood" field in this mutation.
func (m *DiaryEntryMutation) AddedMood() (r int, exists bool) {
	v := m.addmood
	if v == nil {
		return
	}
	return *v, true
}

// ResetMood resets all changes to the "mood" field.
func (m *DiaryEntryMutation) ResetMood() {
	m.mood = nil
	m.addmood = nil
}

// SetEnergy sets the "energy" field.
func (m *DiaryEntryMutation) SetEnergy(i int) {
	m.energy = &i
	m.addenergy = nil
}

// Energy returns the value of the "energy" field in the mutation.
func (m *DiaryEntryMutation) Energy() (r int, exists bool) {
	v := m.energy
	if v == nil {
		return
	}
	return *v, true
}

// OldEnergy returns the old "energy" field's value of the DiaryEntry entity.
// If the DiaryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiaryEntryMutation) OldEnergy(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnergy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnergy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnergy: %w", err)
	}
	return oldValue.Energy, nil
}

// AddEnergy adds i to the "energy" field.
func (m *DiaryEntryMutation) AddEnergy(i int) {
	if m.addenergy != nil {
		*m.addenergy += i
	} else {
		m.addenergy = &i
	}
}

// AddedEnergy returns the value that was added to the "energy" field in this mutation.
func (m *DiaryEntryMutation) AddedEnergy() (r int, exists bool) {
	v := m.addenergy
	if v == nil {
		return
	}
	return *v, true
}

// ResetEnergy resets all changes to the "energy" field.
func (m *DiaryEntryMutation) ResetEnergy() {
	m.energy = nil
	m.addenergy = nil
}

// SetContent sets the "content" field.
func (m *DiaryEntryMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *DiaryEntryMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the DiaryEntry entity.
// If the DiaryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiaryEntryMutation) OldContent(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ClearContent clears the value of the "content" field.
func (m *DiaryEntryMutation) ClearContent() {
	m.content = nil
	m.clearedFields[diaryentry.FieldContent] = struct{}{}
}

// ContentCleared returns if the "content" field was cleared in this mutation.
func (m *DiaryEntryMutation) ContentCleared() bool {
	_, ok := m.clearedFields[diaryentry.FieldContent]
	return ok
}

// ResetContent resets all changes to the "content" field.
func (m *DiaryEntryMutation) ResetContent() {
	m.content = nil
	delete(m.clearedFields, diaryentry.FieldContent)
}

// SetEmotions sets the "emotions" field.
func (m *DiaryEntryMutation) SetEmotions(s []string) {
	m.emotions = &s
	m.appendemotions = nil
}

// Emotions returns the value of the "emotions" field in the mutation.
func (m *DiaryEntryMutation) Emotions() (r []string, exists bool) {
	v := m.emotions
	if v == nil {
		return
	}
	return *v, true
}

// OldEmotions returns the old "emotions" field's value of the DiaryEntry entity.
// If the DiaryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiaryEntryMutation) OldEmotions(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmotions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmotions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmotions: %w", err)
	}
	return oldValue.Emotions, nil
}

// AppendEmotions adds s to the "emotions" field.
func (m *DiaryEntryMutation) AppendEmotions(s []string) {
	m.appendemotions = append(m.appendemotions, s...)
}

// AppendedEmotions returns the list of values that were appended to the "emotions" field in this mutation.
func (m *DiaryEntryMutation) AppendedEmotions() ([]string, bool) {
	if len(m.appendemotions) == 0 {
		return nil, false
	}
	return m.appendemotions, true
}

// ClearEmotions clears the value of the "emotions" field.
func (m *DiaryEntryMutation) ClearEmotions() {
	m.emotions = nil
	m.appendemotions = nil
	m.clearedFields[diaryentry.FieldEmotions] = struct{}{}
}

// EmotionsCleared returns if the "emotions" field was cleared in this mutation.
func (m *DiaryEntryMutation) EmotionsCleared() bool {
	_, ok := m.clearedFields[diaryentry.FieldEmotions]
	return ok
}

// ResetEmotions resets all changes to the "emotions" field.
func (m *DiaryEntryMutation) ResetEmotions() {
	m.emotions = nil
	m.appendemotions = nil
	delete(m.clearedFields, diaryentry.FieldEmotions)
}

// Where appends a list predicates to the DiaryEntryMutation builder.
func (m *DiaryEntryMutation) Where(ps ...predicate.DiaryEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DiaryEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DiaryEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DiaryEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DiaryEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DiaryEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DiaryEntry).
func (m *DiaryEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DiaryEntryMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, diaryentry.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, diaryentry.FieldUpdatedAt)
	}
	if m.patient_id != nil {
		fields = append(fields, diaryentry.FieldPatientID)
	}
	if m.entry_date != nil {
		fields = append(fields, diaryentry.FieldEntryDate)
	}
	if m.mood != nil {
		fields = append(fields, diaryentry.FieldMood)
	}
	if m.energy != nil {
		fields = append(fields, diaryentry.FieldEnergy)
	}
	if m.content != nil {
		fields = append(fields, diaryentry.FieldContent)
	}
	if m.emotions != nil {
		fields = append(fields, diaryentry.FieldEmotions)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DiaryEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case diaryentry.FieldCreatedAt:
		return m.CreatedAt()
	case diaryentry.FieldUpdatedAt:
		return m.UpdatedAt()
	case diaryentry.FieldPatientID:
		return m.PatientID()
	case diaryentry.FieldEntryDate:
		return m.EntryDate()
	case diaryentry.FieldMood:
		return m.Mood()
	case diaryentry.FieldEnergy:
		return m.Energy()
	case diaryentry.FieldContent:
		return m.Content()
	case diaryentry.FieldEmotions:
		return m.Emotions()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DiaryEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case diaryentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case diaryentry.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case diaryentry.FieldPatientID:
		return m.OldPatientID(ctx)
	case diaryentry.FieldEntryDate:
		return m.OldEntryDate(ctx)
	case diaryentry.FieldMood:
		return m.OldMood(ctx)
	case diaryentry.FieldEnergy:
		return m.OldEnergy(ctx)
	case diaryentry.FieldContent:
		return m.OldContent(ctx)
	case diaryentry.FieldEmotions:
		return m.OldEmotions(ctx)
	}
	return nil, fmt.Errorf("unknown DiaryEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DiaryEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case diaryentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case diaryentry.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case diaryentry.FieldPatientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case diaryentry.FieldEntryDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntryDate(v)
		return nil
	case diaryentry.FieldMood:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMood(v)
		return nil
	case diaryentry.FieldEnergy:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnergy(v)
		return nil
	case diaryentry.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case diaryentry.FieldEmotions:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmotions(v)
		return nil
	}
	return fmt.Errorf("unknown DiaryEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DiaryEntryMutation) AddedFields() []string {
	var fields []string
	if m.addmood != nil {
		fields = append(fields, diaryentry.FieldMood)
	}
	if m.addenergy != nil {
		fields = append(fields, diaryentry.FieldEnergy)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DiaryEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case diaryentry.FieldMood:
		return m.AddedMood()
	case diaryentry.FieldEnergy:
		return m.AddedEnergy()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DiaryEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case diaryentry.FieldMood:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMood(v)
		return nil
	case diaryentry.FieldEnergy:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEnergy(v)
		return nil
	}
	return fmt.Errorf("unknown DiaryEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DiaryEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(diaryentry.FieldContent) {
		fields = append(fields, diaryentry.FieldContent)
	}
	if m.FieldCleared(diaryentry.FieldEmotions) {
		fields = append(fields, diaryentry.FieldEmotions)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DiaryEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DiaryEntryMutation) ClearField(name string) error {
	switch name {
	case diaryentry.FieldContent:
		m.ClearContent()
		return nil
	case diaryentry.FieldEmotions:
		m.ClearEmotions()
		return nil
	}
	return fmt.Errorf("unknown DiaryEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DiaryEntryMutation) ResetField(name string) error {
	switch name {
	case diaryentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case diaryentry.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case diaryentry.FieldPatientID:
		m.ResetPatientID()
		return nil
	case diaryentry.FieldEntryDate:
		m.ResetEntryDate()
		return nil
	case diaryentry.FieldMood:
		m.ResetMood()
		return nil
	case diaryentry.FieldEnergy:
		m.ResetEnergy()
		return nil
	case diaryentry.FieldContent:
		m.ResetContent()
		return nil
	case diaryentry.FieldEmotions:
		m.ResetEmotions()
		return nil
	}
	return fmt.Errorf("unknown DiaryEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DiaryEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DiaryEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DiaryEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DiaryEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DiaryEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DiaryEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DiaryEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DiaryEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DiaryEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DiaryEntry edge %s", name)
}

// GamificationAwardMutation represents an operation that mutates the GamificationAward nodes in the graph.
type GamificationAwardMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	user_id       *uuid.UUID
	activity_type *string
	points        *int
	addpoints     *int
	xp            *int
	addxp         *int
	metadata      *map[string]interface{}
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*GamificationAward, error)
	predicates    []predicate.GamificationAward
}

var _ ent.Mutation = (*GamificationAwardMutation)(nil)

// gamificationawardOption allows management of the mutation configuration using functional options.
type gamificationawardOption func(*GamificationAwardMutation)

// newGamificationAwardMutation creates new mutation for the GamificationAward entity.
func newGamificationAwardMutation(c config, op Op, opts ...gamificationawardOption) *GamificationAwardMutation {
	m := &GamificationAwardMutation{
		config:        c,
		op:            op,
		typ:           TypeGamificationAward,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGamificationAwardID sets the ID field of the mutation.
func withGamificationAwardID(id uuid.UUID) gamificationawardOption {
	return func(m *GamificationAwardMutation) {
		var (
			err   error
			once  sync.Once
			value *GamificationAward
		)
		m.oldValue = func(ctx context.Context) (*GamificationAward, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GamificationAward.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGamificationAward sets the old GamificationAward of the mutation.
func withGamificationAward(node *GamificationAward) gamificationawardOption {
	return func(m *GamificationAwardMutation) {
		m.oldValue = func(context.Context) (*GamificationAward, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GamificationAwardMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GamificationAwardMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of GamificationAward entities.
func (m *GamificationAwardMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GamificationAwardMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GamificationAwardMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GamificationAward.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *GamificationAwardMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GamificationAwardMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the GamificationAward entity.
// If the GamificationAward object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GamificationAwardMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GamificationAwardMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUserID sets the "user_id" field.
func (m *GamificationAwardMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *GamificationAwardMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the GamificationAward entity.
// If the GamificationAward object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GamificationAwardMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *GamificationAwardMutation) ResetUserID() {
	m.user_id = nil
}

// SetActivityType sets the "activity_type" field.
func (m *GamificationAwardMutation) SetActivityType(s string) {
	m.activity_type = &s
}

// ActivityType returns the value of the "activity_type" field in the mutation.
func (m *GamificationAwardMutation) ActivityType() (r string, exists bool) {
	v := m.activity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldActivityType returns the old "activity_type" field's value of the GamificationAward entity.
// If the GamificationAward object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GamificationAwardMutation) OldActivityType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActivityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActivityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActivityType: %w", err)
	}
	return oldValue.ActivityType, nil
}

// ResetActivityType resets all changes to the "activity_type" field.
func (m *GamificationAwardMutation) ResetActivityType() {
	m.activity_type = nil
}

// SetPoints sets the "points" field.
func (m *GamificationAwardMutation) SetPoints(i int) {
	m.points = &i
	m.addpoints = nil
}

// Points returns the value of the "points" field in the mutation.
func (m *GamificationAwardMutation) Points() (r int, exists bool) {
	v := m.points
	if v == nil {
		return
	}
	return *v, true
}

// OldPoints returns the old "points" field's value of the GamificationAward entity.
// If the GamificationAward object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GamificationAwardMutation) OldPoints(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPoints is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPoints requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPoints: %w", err)
	}
	return oldValue.Points, nil
}

// AddPoints adds i to the "points" field.
func (m *GamificationAwardMutation) AddPoints(i int) {
	if m.addpoints != nil {
		*m.addpoints += i
	} else {
		m.addpoints = &i
	}
}

// AddedPoints returns the value that was added to the "points" field in this mutation.
func (m *GamificationAwardMutation) AddedPoints() (r int, exists bool) {
	v := m.addpoints
	if v == nil {
		return
	}
	return *v, true
}

// ResetPoints resets all changes to the "points" field.
func (m *GamificationAwardMutation) ResetPoints() {
	m.points = nil
	m.addpoints = nil
}

// SetXp sets the "xp" field.
func (m *GamificationAwardMutation) SetXp(i int) {
	m.xp = &i
	m.addxp = nil
}

// Xp returns the value of the "xp" field in the mutation.
func (m *GamificationAwardMutation) Xp() (r int, exists bool) {
	v := m.xp
	if v == nil {
		return
	}
	return *v, true
}

// OldXp returns the old "xp" field's value of the GamificationAward entity.
// If the GamificationAward object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GamificationAwardMutation) OldXp(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldXp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldXp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldXp: %w", err)
	}
	return oldValue.Xp, nil
}

// AddXp adds i to the "xp" field.
func (m *GamificationAwardMutation) AddXp(i int) {
	if m.addxp != nil {
		*m.addxp += i
	} else {
		m.addxp = &i
	}
}

// AddedXp returns the value that was added to the "xp" field in this mutation.
func (m *GamificationAwardMutation) AddedXp() (r int, exists bool) {
	v := m.addxp
	if v == nil {
		return
	}
	return *v, true
}

// ResetXp resets all changes to the "xp" field.
func (m *GamificationAwardMutation) ResetXp() {
	m.xp = nil
	m.addxp = nil
}

// SetMetadata sets the "metadata" field.
func (m *GamificationAwardMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *GamificationAwardMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the GamificationAward entity.
// If the GamificationAward object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GamificationAwardMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *GamificationAwardMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[gamificationaward.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *GamificationAwardMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[gamificationaward.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *GamificationAwardMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, gamificationaward.FieldMetadata)
}

// Where appends a list predicates to the GamificationAwardMutation builder.
func (m *GamificationAwardMutation) Where(ps ...predicate.GamificationAward) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GamificationAwardMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GamificationAwardMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GamificationAward, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GamificationAwardMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GamificationAwardMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GamificationAward).
func (m *GamificationAwardMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GamificationAwardMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, gamificationaward.FieldCreatedAt)
	}
	if m.user_id != nil {
		fields = append(fields, gamificationaward.FieldUserID)
	}
	if m.activity_type != nil {
		fields = append(fields, gamificationaward.FieldActivityType)
	}
	if m.points != nil {
		fields = append(fields, gamificationaward.FieldPoints)
	}
	if m.xp != nil {
		fields = append(fields, gamificationaward.FieldXp)
	}
	if m.metadata != nil {
		fields = append(fields, gamificationaward.FieldMetadata)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GamificationAwardMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case gamificationaward.FieldCreatedAt:
		return m.CreatedAt()
	case gamificationaward.FieldUserID:
		return m.UserID()
	case gamificationaward.FieldActivityType:
		return m.ActivityType()
	case gamificationaward.FieldPoints:
		return m.Points()
	case gamificationaward.FieldXp:
		return m.Xp()
	case gamificationaward.FieldMetadata:
		return m.Metadata()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GamificationAwardMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case gamificationaward.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case gamificationaward.FieldUserID:
		return m.OldUserID(ctx)
	case gamificationaward.FieldActivityType:
		return m.OldActivityType(ctx)
	case gamificationaward.FieldPoints:
		return m.OldPoints(ctx)
	case gamificationaward.FieldXp:
		return m.OldXp(ctx)
	case gamificationaward.FieldMetadata:
		return m.OldMetadata(ctx)
	}
	return nil, fmt.Errorf("unknown GamificationAward field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GamificationAwardMutation) SetField(name string, value ent.Value) error {
	switch name {
	case gamificationaward.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case gamificationaward.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case gamificationaward.FieldActivityType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActivityType(v)
		return nil
	case gamificationaward.FieldPoints:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPoints(v)
		return nil
	case gamificationaward.FieldXp:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetXp(v)
		return nil
	case gamificationaward.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	}
	return fmt.Errorf("unknown GamificationAward field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GamificationAwardMutation) AddedFields() []string {
	var fields []string
	if m.addpoints != nil {
		fields = append(fields, gamificationaward.FieldPoints)
	}
	if m.addxp != nil {
		fields = append(fields, gamificationaward.FieldXp)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GamificationAwardMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case gamificationaward.FieldPoints:
		return m.AddedPoints()
	case gamificationaward.FieldXp:
		return m.AddedXp()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GamificationAwardMutation) AddField(name string, value ent.Value) error {
	switch name {
	case gamificationaward.FieldPoints:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPoints(v)
		return nil
	case gamificationaward.FieldXp:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddXp(v)
		return nil
	}
	return fmt.Errorf("unknown GamificationAward numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GamificationAwardMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(gamificationaward.FieldMetadata) {
		fields = append(fields, gamificationaward.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GamificationAwardMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GamificationAwardMutation) ClearField(name string) error {
	switch name {
	case gamificationaward.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown GamificationAward nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GamificationAwardMutation) ResetField(name string) error {
	switch name {
	case gamificationaward.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case gamificationaward.FieldUserID:
		m.ResetUserID()
		return nil
	case gamificationaward.FieldActivityType:
		m.ResetActivityType()
		return nil
	case gamificationaward.FieldPoints:
		m.ResetPoints()
		return nil
	case gamificationaward.FieldXp:
		m.ResetXp()
		return nil
	case gamificationaward.FieldMetadata:
		m.ResetMetadata()
		return nil
	}
	return fmt.Errorf("unknown GamificationAward field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GamificationAwardMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GamificationAwardMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GamificationAwardMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GamificationAwardMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GamificationAwardMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GamificationAwardMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GamificationAwardMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown GamificationAward unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GamificationAwardMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown GamificationAward edge %s", name)
}

// GamificationRewardMutation represents an operation that mutates the GamificationReward nodes in the graph.
type GamificationRewardMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	created_at          *time.Time
	updated_at          *time.Time
	activity_type       *string
	points              *int
	addpoints           *int
	xp                  *int
	addxp               *int
	min_level           *int
	addmin_level        *int
	max_daily_count     *int
	addmax_daily_count  *int
	cooldown_minutes    *int
	addcooldown_minutes *int
	enabled             *bool
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*GamificationReward, error)
	predicates          []predicate.GamificationReward
}

var _ ent.Mutation = (*GamificationRewardMutation)(nil)

// gamificationrewardOption allows management of the mutation configuration using functional options.
type gamificationrewardOption func(*GamificationRewardMutation)

// newGamificationRewardMutation creates new mutation for the GamificationReward entity.
func newGamificationRewardMutation(c config, op Op, opts ...gamificationrewardOption) *GamificationRewardMutation {
	m := &GamificationRewardMutation{
		config:        c,
		op:            op,
		typ:           TypeGamificationReward,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGamificationRewardID sets the ID field of the mutation.
func withGamificationRewardID(id uuid.UUID) gamificationrewardOption {
	return func(m *GamificationRewardMutation) {
		var (
			err   error
			once  sync.Once
			value *GamificationReward
		)
		m.oldValue = func(ctx context.Context) (*GamificationReward, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GamificationReward.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGamificationReward sets the old GamificationReward of the mutation.
func withGamificationReward(node *GamificationReward) gamificationrewardOption {
	return func(m *GamificationRewardMutation) {
		m.oldValue = func(context.Context) (*GamificationReward, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GamificationRewardMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GamificationRewardMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of GamificationReward entities.
func (m *GamificationRewardMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GamificationRewardMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GamificationRewardMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GamificationReward.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *GamificationRewardMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GamificationRewardMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the GamificationReward entity.
// If the GamificationReward object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GamificationRewardMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GamificationRewardMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *GamificationRewardMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *GamificationRewardMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the GamificationReward entity.
// If the GamificationReward object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GamificationRewardMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *GamificationRewardMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetActivityType sets the "activity_type" field.
func (m *GamificationRewardMutation) SetActivityType(s string) {
	m.activity_type = &s
}

// ActivityType returns the value of the "activity_type" field in the mutation.
func (m *GamificationRewardMutation) ActivityType() (r string, exists bool) {
	v := m.activity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldActivityType returns the old "activity_type" field's value of the GamificationReward entity.
// If the GamificationReward object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GamificationRewardMutation) OldActivityType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActivityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActivityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActivityType: %w", err)
	}
	return oldValue.ActivityType, nil
}

// ResetActivityType resets all changes to the "activity_type" field.
func (m *GamificationRewardMutation) ResetActivityType() {
	m.activity_type = nil
}

// SetPoints sets the "points" field.
func (m *GamificationRewardMutation) SetPoints(i int) {
	m.points = &i
	m.addpoints = nil
}

// Points returns the value of the "points" field in the mutation.
func (m *GamificationRewardMutation) Points() (r int, exists bool) {
	v := m.points
	if v == nil {
		return
	}
	return *v, true
}

// OldPoints returns the old "points" field's value of the GamificationReward entity.
// If the GamificationReward object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GamificationRewardMutation) OldPoints(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPoints is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPoints requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPoints: %w", err)
	}
	return oldValue.Points, nil
}

// AddPoints adds i to the "points" field.
func (m *GamificationRewardMutation) AddPoints(i int) {
	if m.addpoints != nil {
		*m.addpoints += i
	} else {
		m.addpoints = &i
	}
}

// AddedPoints returns the value that was added to the "points" field in this mutation.
func (m *GamificationRewardMutation) AddedPoints() (r int, exists bool) {
	v := m.addpoints
	if v == nil {
		return
	}
	return *v, true
}

// ResetPoints resets all changes to the "points" field.
func (m *GamificationRewardMutation) ResetPoints() {
	m.points = nil
	m.addpoints = nil
}

// SetXp sets the "xp" field.
func (m *GamificationRewardMutation) SetXp(i int) {
	m.xp = &i
	m.addxp = nil
}

// Xp returns the value of the "xp" field in the mutation.
func (m *GamificationRewardMutation) Xp() (r int, exists bool) {
	v := m.xp
	if v == nil {
		return
	}
	return *v, true
}

// OldXp returns the old "xp" field's value of the GamificationReward entity.
// If the GamificationReward object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GamificationRewardMutation) OldXp(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldXp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldXp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldXp: %w", err)
	}
	return oldValue.Xp, nil
}

// AddXp adds i to the "xp" field.
func (m *GamificationRewardMutation) AddXp(i int) {
	if m.addxp != nil {
		*m.addxp += i
	} else {
		m.addxp = &i
	}
}

// AddedXp returns the value that was added to the "xp" field in this mutation.
func (m *GamificationRewardMutation) AddedXp() (r int, exists bool) {
	v := m.addxp
	if v == nil {
		return
	}
	return *v, true
}

// ResetXp resets all changes to the "xp" field.
func (m *GamificationRewardMutation) ResetXp() {
	m.xp = nil
	m.addxp = nil
}

// SetMinLevel sets the "min_level" field.
func (m *GamificationRewardMutation) SetMinLevel(i int) {
	m.min_level = &i
	m.addmin_level = nil
}

// MinLevel returns the value of the "min_level" field in the mutation.
func (m *GamificationRewardMutation) MinLevel() (r int, exists bool) {
	v := m.min_level
	if v == nil {
		return
	}
	return *v, true
}

// OldMinLevel returns the old "min_level" field's value of the GamificationReward entity.
// If the GamificationReward object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GamificationRewardMutation) OldMinLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMinLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMinLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMinLevel: %w", err)
	}
	return oldValue.MinLevel, nil
}

// AddMinLevel adds i to the "min_level" field.
func (m *GamificationRewardMutation) AddMinLevel(i int) {
	if m.addmin_level != nil {
		*m.addmin_level += i
	} else {
		m.addmin_level = &i
	}
}

// AddedMinLevel returns the value that was added to the "min_level" field in this mutation.
func (m *GamificationRewardMutation) AddedMinLevel() (r int, exists bool) {
	v := m.addmin_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetMinLevel resets all changes to the "min_level" field.
func (m *GamificationRewardMutation) ResetMinLevel() {
	m.min_level = nil
	m.addmin_level = nil
}

// SetMaxDailyCount sets the "max_daily_count" field.
func (m *GamificationRewardMutation) SetMaxDailyCount(i int) {
	m.max_daily_count = &i
	m.addmax_daily_count = nil
}

// MaxDailyCount returns the value of the "max_daily_count" field in the mutation.
func (m *GamificationRewardMutation) MaxDailyCount() (r int, exists bool) {
	v := m.max_daily_count
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxDailyCount returns the old "max_daily_count" field's value of the GamificationReward entity.
// If the GamificationReward object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GamificationRewardMutation) OldMaxDailyCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxDailyCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxDailyCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxDailyCount: %w", err)
	}
	return oldValue.MaxDailyCount, nil
}

// AddMaxDailyCount adds i to the "max_daily_count" field.
func (m *GamificationRewardMutation) AddMaxDailyCount(i int) {
	if m.addmax_daily_count != nil {
		*m.addmax_daily_count += i
	} else {
		m.addmax_daily_count = &i
	}
}

// AddedMaxDailyCount returns the value that was added to the "max_daily_count" field in this mutation.
func (m *GamificationRewardMutation) AddedMaxDailyCount() (r int, exists bool) {
	v := m.addmax_daily_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxDailyCount resets all changes to the "max_daily_count" field.
func (m *GamificationRewardMutation) ResetMaxDailyCount() {
	m.max_daily_count = nil
	m.addmax_daily_count = nil
}

// SetCooldownMinutes sets the "cooldown_minutes" field.
func (m *GamificationRewardMutation) SetCooldownMinutes(i int) {
	m.cooldown_minutes = &i
	m.addcooldown_minutes = nil
}

// CooldownMinutes returns the value of the "cooldown_minutes" field in the mutation.
func (m *GamificationRewardMutation) CooldownMinutes() (r int, exists bool) {
	v := m.cooldown_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldCooldownMinutes returns the old "cooldown_minutes" field's value of the GamificationReward entity.
// If the GamificationReward object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GamificationRewardMutation) OldCooldownMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCooldownMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCooldownMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCooldownMinutes: %w", err)
	}
	return oldValue.CooldownMinutes, nil
}

// AddCooldownMinutes adds i to the "cooldown_minutes" field.
func (m *GamificationRewardMutation) AddCooldownMinutes(i int) {
	if m.addcooldown_minutes != nil {
		*m.addcooldown_minutes += i
	} else {
		m.addcooldown_minutes = &i
	}
}

// AddedCooldownMinutes returns the value that was added to the "cooldown_minutes" field in this mutation.
func (m *GamificationRewardMutation) AddedCooldownMinutes() (r int, exists bool) {
	v := m.addcooldown_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetCooldownMinutes resets all changes to the "cooldown_minutes" field.
func (m *GamificationRewardMutation) ResetCooldownMinutes() {
	m.cooldown_minutes = nil
	m.addcooldown_minutes = nil
}

// SetEnabled sets the "enabled" field.
func (m *GamificationRewardMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *GamificationRewardMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the GamificationReward entity.
// If the GamificationReward object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GamificationRewardMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *GamificationRewardMutation) ResetEnabled() {
	m.enabled = nil
}

// Where appends a list predicates to the GamificationRewardMutation builder.
func (m *GamificationRewardMutation) Where(ps ...predicate.GamificationReward) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GamificationRewardMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GamificationRewardMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GamificationReward, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GamificationRewardMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GamificationRewardMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GamificationReward).
func (m *GamificationRewardMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GamificationRewardMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, gamificationreward.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, gamificationreward.FieldUpdatedAt)
	}
	if m.activity_type != nil {
		fields = append(fields, gamificationreward.FieldActivityType)
	}
	if m.points != nil {
		fields = append(fields, gamificationreward.FieldPoints)
	}
	if m.xp != nil {
		fields = append(fields, gamificationreward.FieldXp)
	}
	if m.min_level != nil {
		fields = append(fields, gamificationreward.FieldMinLevel)
	}
	if m.max_daily_count != nil {
		fields = append(fields, gamificationreward.FieldMaxDailyCount)
	}
	if m.cooldown_minutes != nil {
		fields = append(fields, gamificationreward.FieldCooldownMinutes)
	}
	if m.enabled != nil {
		fields = append(fields, gamificationreward.FieldEnabled)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GamificationRewardMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case gamificationreward.FieldCreatedAt:
		return m.CreatedAt()
	case gamificationreward.FieldUpdatedAt:
		return m.UpdatedAt()
	case gamificationreward.FieldActivityType:
		return m.ActivityType()
	case gamificationreward.FieldPoints:
		return m.Points()
	case gamificationreward.FieldXp:
		return m.Xp()
	case gamificationreward.FieldMinLevel:
		return m.MinLevel()
	case gamificationreward.FieldMaxDailyCount:
		return m.MaxDailyCount()
	case gamificationreward.FieldCooldownMinutes:
		return m.CooldownMinutes()
	case gamificationreward.FieldEnabled:
		return m.Enabled()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GamificationRewardMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case gamificationreward.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case gamificationreward.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case gamificationreward.FieldActivityType:
		return m.OldActivityType(ctx)
	case gamificationreward.FieldPoints:
		return m.OldPoints(ctx)
	case gamificationreward.FieldXp:
		return m.OldXp(ctx)
	case gamificationreward.FieldMinLevel:
		return m.OldMinLevel(ctx)
	case gamificationreward.FieldMaxDailyCount:
		return m.OldMaxDailyCount(ctx)
	case gamificationreward.FieldCooldownMinutes:
		return m.OldCooldownMinutes(ctx)
	case gamificationreward.FieldEnabled:
		return m.OldEnabled(ctx)
	}
	return nil, fmt.Errorf("unknown GamificationReward field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GamificationRewardMutation) SetField(name string, value ent.Value) error {
	switch name {
	case gamificationreward.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case gamificationreward.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case gamificationreward.FieldActivityType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActivityType(v)
		return nil
	case gamificationreward.FieldPoints:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPoints(v)
		return nil
	case gamificationreward.FieldXp:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetXp(v)
		return nil
	case gamificationreward.FieldMinLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMinLevel(v)
		return nil
	case gamificationreward.FieldMaxDailyCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxDailyCount(v)
		return nil
	case gamificationreward.FieldCooldownMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCooldownMinutes(v)
		return nil
	case gamificationreward.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	}
	return fmt.Errorf("unknown GamificationReward field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GamificationRewardMutation) AddedFields() []string {
	var fields []string
	if m.addpoints != nil {
		fields = append(fields, gamificationreward.FieldPoints)
	}
	if m.addxp != nil {
		fields = append(fields, gamificationreward.FieldXp)
	}
	if m.addmin_level != nil {
		fields = append(fields, gamificationreward.FieldMinLevel)
	}
	if m.addmax_daily_count != nil {
		fields = append(fields, gamificationreward.FieldMaxDailyCount)
	}
	if m.addcooldown_minutes != nil {
		fields = append(fields, gamificationreward.FieldCooldownMinutes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GamificationRewardMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case gamificationreward.FieldPoints:
		return m.AddedPoints()
	case gamificationreward.FieldXp:
		return m.AddedXp()
	case gamificationreward.FieldMinLevel:
		return m.AddedMinLevel()
	case gamificationreward.FieldMaxDailyCount:
		return m.AddedMaxDailyCount()
	case gamificationreward.FieldCooldownMinutes:
		return m.AddedCooldownMinutes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GamificationRewardMutation) AddField(name string, value ent.Value) error {
	switch name {
	case gamificationreward.FieldPoints:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPoints(v)
		return nil
	case gamificationreward.FieldXp:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddXp(v)
		return nil
	case gamificationreward.FieldMinLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMinLevel(v)
		return nil
	case gamificationreward.FieldMaxDailyCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxDailyCount(v)
		return nil
	case gamificationreward.FieldCooldownMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCooldownMinutes(v)
		return nil
	}
	return fmt.Errorf("unknown GamificationReward numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GamificationRewardMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GamificationRewardMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GamificationRewardMutation) ClearField(name string) error {
	return fmt.Errorf("unknown GamificationReward nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GamificationRewardMutation) ResetField(name string) error {
	switch name {
	case gamificationreward.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case gamificationreward.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case gamificationreward.FieldActivityType:
		m.ResetActivityType()
		return nil
	case gamificationreward.FieldPoints:
		m.ResetPoints()
		return nil
	case gamificationreward.FieldXp:
		m.ResetXp()
		return nil
	case gamificationreward.FieldMinLevel:
		m.ResetMinLevel()
		return nil
	case gamificationreward.FieldMaxDailyCount:
		m.ResetMaxDailyCount()
		return nil
	case gamificationreward.FieldCooldownMinutes:
		m.ResetCooldownMinutes()
		return nil
	case gamificationreward.FieldEnabled:
		m.ResetEnabled()
		return nil
	}
	return fmt.Errorf("unknown GamificationReward field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GamificationRewardMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GamificationRewardMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GamificationRewardMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GamificationRewardMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GamificationRewardMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GamificationRewardMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GamificationRewardMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown GamificationReward unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GamificationRewardMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown GamificationReward edge %s", name)
}

// NotificationMutation represents an operation that mutates the Notification nodes in the graph.
type NotificationMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	user_id       *uuid.UUID
	_type         *string
	title         *string
	body          *string
	data          *map[string]interface{}
	is_read       *bool
	is_pushed     *bool
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Notification, error)
	predicates    []predicate.Notification
}

var _ ent.Mutation = (*NotificationMutation)(nil)

// notificationOption allows management of the mutation configuration using functional options.
type notificationOption func(*NotificationMutation)

// newNotificationMutation creates new mutation for the Notification entity.
func newNotificationMutation(c config, op Op, opts ...notificationOption) *NotificationMutation {
	m := &NotificationMutation{
		config:        c,
		op:            op,
		typ:           TypeNotification,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNotificationID sets the ID field of the mutation.
func withNotificationID(id uuid.UUID) notificationOption {
	return func(m *NotificationMutation) {
		var (
			err   error
			once  sync.Once
			value *Notification
		)
		m.oldValue = func(ctx context.Context) (*Notification, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Notification.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNotification sets the old Notification of the mutation.
func withNotification(node *Notification) notificationOption {
	return func(m *NotificationMutation) {
		m.oldValue = func(context.Context) (*Notification, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NotificationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NotificationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Notification entities.
func (m *NotificationMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NotificationMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NotificationMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Notification.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *NotificationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NotificationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *NotificationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUserID sets the "user_id" field.
func (m *NotificationMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *NotificationMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *NotificationMutation) ResetUserID() {
	m.user_id = nil
}

// SetType sets the "type" field.
func (m *NotificationMutation) SetType(s string) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *NotificationMutation) GetType() (r string, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *NotificationMutation) ResetType() {
	m._type = nil
}

// SetTitle sets the "title" field.
func (m *NotificationMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *NotificationMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *NotificationMutation) ResetTitle() {
	m.title = nil
}

// SetBody sets the "body" field.
func (m *NotificationMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *NotificationMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldBody(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ClearBody clears the value of the "body" field.
func (m *NotificationMutation) ClearBody() {
	m.body = nil
	m.clearedFields[notification.FieldBody] = struct{}{}
}

// BodyCleared returns if the "body" field was cleared in this mutation.
func (m *NotificationMutation) BodyCleared() bool {
	_, ok := m.clearedFields[notification.FieldBody]
	return ok
}

// ResetBody resets all changes to the "body" field.
func (m *NotificationMutation) ResetBody() {
	m.body = nil
	delete(m.clearedFields, notification.FieldBody)
}

// SetData sets the "data" field.
func (m *NotificationMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *NotificationMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ClearData clears the value of the "data" field.
func (m *NotificationMutation) ClearData() {
	m.data = nil
	m.clearedFields[notification.FieldData] = struct{}{}
}

// DataCleared returns if the "data" field was cleared in this mutation.
func (m *NotificationMutation) DataCleared() bool {
	_, ok := m.clearedFields[notification.FieldData]
	return ok
}

// ResetData resets all changes to the "data" field.
func (m *NotificationMutation) ResetData() {
	m.data = nil
	delete(m.clearedFields, notification.FieldData)
}

// SetIsRead sets the "is_read" field.
func (m *NotificationMutation) SetIsRead(b bool) {
	m.is_read = &b
}

// IsRead returns the value of the "is_read" field in the mutation.
func (m *NotificationMutation) IsRead() (r bool, exists bool) {
	v := m.is_read
	if v == nil {
		return
	}
	return *v, true
}

// OldIsRead returns the old "is_read" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldIsRead(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsRead is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsRead requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsRead: %w", err)
	}
	return oldValue.IsRead, nil
}

// ResetIsRead resets all changes to the "is_read" field.
func (m *NotificationMutation) ResetIsRead() {
	m.is_read = nil
}

// SetIsPushed sets the "is_pushed" field.
func (m *NotificationMutation) SetIsPushed(b bool) {
	m.is_pushed = &b
}

// IsPushed returns the value of the "is_pushed" field in the mutation.
func (m *NotificationMutation) IsPushed() (r bool, exists bool) {
	v := m.is_pushed
	if v == nil {
		return
	}
	return *v, true
}

// OldIsPushed returns the old "is_pushed" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldIsPushed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsPushed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsPushed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsPushed: %w", err)
	}
	return oldValue.IsPushed, nil
}

// ResetIsPushed resets all changes to the "is_pushed" field.
func (m *NotificationMutation) ResetIsPushed() {
	m.is_pushed = nil
}

// Where appends a list predicates to the NotificationMutation builder.
func (m *NotificationMutation) Where(ps ...predicate.Notification) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NotificationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NotificationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Notification, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NotificationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NotificationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Notification).
func (m *NotificationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NotificationMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, notification.FieldCreatedAt)
	}
	if m.user_id != nil {
		fields = append(fields, notification.FieldUserID)
	}
	if m._type != nil {
		fields = append(fields, notification.FieldType)
	}
	if m.title != nil {
		fields = append(fields, notification.FieldTitle)
	}
	if m.body != nil {
		fields = append(fields, notification.FieldBody)
	}
	if m.data != nil {
		fields = append(fields, notification.FieldData)
	}
	if m.is_read != nil {
		fields = append(fields, notification.FieldIsRead)
	}
	if m.is_pushed != nil {
		fields = append(fields, notification.FieldIsPushed)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NotificationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case notification.FieldCreatedAt:
		return m.CreatedAt()
	case notification.FieldUserID:
		return m.UserID()
	case notification.FieldType:
		return m.GetType()
	case notification.FieldTitle:
		return m.Title()
	case notification.FieldBody:
		return m.Body()
	case notification.FieldData:
		return m.Data()
	case notification.FieldIsRead:
		return m.IsRead()
	case notification.FieldIsPushed:
		return m.IsPushed()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NotificationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case notification.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case notification.FieldUserID:
		return m.OldUserID(ctx)
	case notification.FieldType:
		return m.OldType(ctx)
	case notification.FieldTitle:
		return m.OldTitle(ctx)
	case notification.FieldBody:
		return m.OldBody(ctx)
	case notification.FieldData:
		return m.OldData(ctx)
	case notification.FieldIsRead:
		return m.OldIsRead(ctx)
	case notification.FieldIsPushed:
		return m.OldIsPushed(ctx)
	}
	return nil, fmt.Errorf("unknown Notification field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case notification.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case notification.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case notification.FieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case notification.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case notification.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case notification.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	case notification.FieldIsRead:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsRead(v)
		return nil
	case notification.FieldIsPushed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsPushed(v)
		return nil
	}
	return fmt.Errorf("unknown Notification field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NotificationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NotificationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Notification numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NotificationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(notification.FieldBody) {
		fields = append(fields, notification.FieldBody)
	}
	if m.FieldCleared(notification.FieldData) {
		fields = append(fields, notification.FieldData)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NotificationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NotificationMutation) ClearField(name string) error {
	switch name {
	case notification.FieldBody:
		m.ClearBody()
		return nil
	case notification.FieldData:
		m.ClearData()
		return nil
	}
	return fmt.Errorf("unknown Notification nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NotificationMutation) ResetField(name string) error {
	switch name {
	case notification.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case notification.FieldUserID:
		m.ResetUserID()
		return nil
	case notification.FieldType:
		m.ResetType()
		return nil
	case notification.FieldTitle:
		m.ResetTitle()
		return nil
	case notification.FieldBody:
		m.ResetBody()
		return nil
	case notification.FieldData:
		m.ResetData()
		return nil
	case notification.FieldIsRead:
		m.ResetIsRead()
		return nil
	case notification.FieldIsPushed:
		m.ResetIsPushed()
		return nil
	}
	return fmt.Errorf("unknown Notification field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NotificationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NotificationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NotificationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NotificationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NotificationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NotificationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NotificationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Notification unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NotificationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Notification edge %s", name)
}

// NotificationPrefMutation represents an operation that mutates the NotificationPref nodes in the graph.
type NotificationPrefMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	created_at          *time.Time
	updated_at          *time.Time
	user_id             *uuid.UUID
	session_sms         *bool
	session_push        *bool
	diary_reminder_push *bool
	reward_push         *bool
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*NotificationPref, error)
	predicates          []predicate.NotificationPref
}

var _ ent.Mutation = (*NotificationPrefMutation)(nil)

// notificationprefOption allows management of the mutation configuration using functional options.
type notificationprefOption func(*NotificationPrefMutation)

// newNotificationPrefMutation creates new mutation for the NotificationPref entity.
func newNotificationPrefMutation(c config, op Op, opts ...notificationprefOption) *NotificationPrefMutation {
	m := &NotificationPrefMutation{
		config:        c,
		op:            op,
		typ:           TypeNotificationPref,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNotificationPrefID sets the ID field of the mutation.
func withNotificationPrefID(id uuid.UUID) notificationprefOption {
	return func(m *NotificationPrefMutation) {
		var (
			err   error
			once  sync.Once
			value *NotificationPref
		)
		m.oldValue = func(ctx context.Context) (*NotificationPref, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().NotificationPref.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNotificationPref sets the old NotificationPref of the mutation.
func withNotificationPref(node *NotificationPref) notificationprefOption {
	return func(m *NotificationPrefMutation) {
		m.oldValue = func(context.Context) (*NotificationPref, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NotificationPrefMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NotificationPrefMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of NotificationPref entities.
func (m *NotificationPrefMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NotificationPrefMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NotificationPrefMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().NotificationPref.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *NotificationPrefMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NotificationPrefMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the NotificationPref entity.
// If the NotificationPref object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationPrefMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *NotificationPrefMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *NotificationPrefMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *NotificationPrefMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the NotificationPref entity.
// If the NotificationPref object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationPrefMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *NotificationPrefMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUserID sets the "user_id" field.
func (m *NotificationPrefMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *NotificationPrefMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the NotificationPref entity.
// If the NotificationPref object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationPrefMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *NotificationPrefMutation) ResetUserID() {
	m.user_id = nil
}

// SetSessionSms sets the "session_sms" field.
func (m *NotificationPrefMutation) SetSessionSms(b bool) {
	m.session_sms = &b
}

// SessionSms returns the value of the "session_sms" field in the mutation.
func (m *NotificationPrefMutation) SessionSms() (r bool, exists bool) {
	v := m.session_sms
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionSms returns the old "session_sms" field's value of the NotificationPref entity.
// If the NotificationPref object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationPrefMutation) OldSessionSms(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionSms is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionSms requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionSms: %w", err)
	}
	return oldValue.SessionSms, nil
}

// ResetSessionSms resets all changes to the "session_sms" field.
func (m *NotificationPrefMutation) ResetSessionSms() {
	m.session_sms = nil
}

// SetSessionPush sets the "session_push" field.
func (m *NotificationPrefMutation) SetSessionPush(b bool) {
	m.session_push = &b
}

// SessionPush returns the value of the "session_push" field in the mutation.
func (m *NotificationPrefMutation) SessionPush() (r bool, exists bool) {
	v := m.session_push
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionPush returns the old "session_push" field's value of the NotificationPref entity.
// If the NotificationPref object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationPrefMutation) OldSessionPush(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionPush is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionPush requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionPush: %w", err)
	}
	return oldValue.SessionPush, nil
}

// ResetSessionPush resets all changes to the "session_push" field.
func (m *NotificationPrefMutation) ResetSessionPush() {
	m.session_push = nil
}

// SetDiaryReminderPush sets the "diary_reminder_push" field.
func (m *NotificationPrefMutation) SetDiaryReminderPush(b bool) {
	m.diary_reminder_push = &b
}

// DiaryReminderPush returns the value of the "diary_reminder_push" field in the mutation.
func (m *NotificationPrefMutation) DiaryReminderPush() (r bool, exists bool) {
	v := m.diary_reminder_push
	if v == nil {
		return
	}
	return *v, true
}

// OldDiaryReminderPush returns the old "diary_reminder_push" field's value of the NotificationPref entity.
// If the NotificationPref object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationPrefMutation) OldDiaryReminderPush(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiaryReminderPush is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiaryReminderPush requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiaryReminderPush: %w", err)
	}
	return oldValue.DiaryReminderPush, nil
}

// ResetDiaryReminderPush resets all changes to the "diary_reminder_push" field.
func (m *NotificationPrefMutation) ResetDiaryReminderPush() {
	m.diary_reminder_push = nil
}

// SetRewardPush sets the "reward_push" field.
func (m *NotificationPrefMutation) SetRewardPush(b bool) {
	m.reward_push = &b
}

// RewardPush returns the value of the "reward_push" field in the mutation.
func (m *NotificationPrefMutation) RewardPush() (r bool, exists bool) {
	v := m.reward_push
	if v == nil {
		return
	}
	return *v, true
}

// OldRewardPush returns the old "reward_push" field's value of the NotificationPref entity.
// If the NotificationPref object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationPrefMutation) OldRewardPush(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRewardPush is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRewardPush requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRewardPush: %w", err)
	}
	return oldValue.RewardPush, nil
}

// ResetRewardPush resets all changes to the "reward_push" field.
func (m *NotificationPrefMutation) ResetRewardPush() {
	m.reward_push = nil
}

// Where appends a list predicates to the NotificationPrefMutation builder.
func (m *NotificationPrefMutation) Where(ps ...predicate.NotificationPref) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NotificationPrefMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NotificationPrefMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.NotificationPref, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NotificationPrefMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NotificationPrefMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (NotificationPref).
func (m *NotificationPrefMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NotificationPrefMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, notificationpref.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, notificationpref.FieldUpdatedAt)
	}
	if m.user_id != nil {
		fields = append(fields, notificationpref.FieldUserID)
	}
	if m.session_sms != nil {
		fields = append(fields, notificationpref.FieldSessionSms)
	}
	if m.session_push != nil {
		fields = append(fields, notificationpref.FieldSessionPush)
	}
	if m.diary_reminder_push != nil {
		fields = append(fields, notificationpref.FieldDiaryReminderPush)
	}
	if m.reward_push != nil {
		fields = append(fields, notificationpref.FieldRewardPush)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NotificationPrefMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case notificationpref.FieldCreatedAt:
		return m.CreatedAt()
	case notificationpref.FieldUpdatedAt:
		return m.UpdatedAt()
	case notificationpref.FieldUserID:
		return m.UserID()
	case notificationpref.FieldSessionSms:
		return m.SessionSms()
	case notificationpref.FieldSessionPush:
		return m.SessionPush()
	case notificationpref.FieldDiaryReminderPush:
		return m.DiaryReminderPush()
	case notificationpref.FieldRewardPush:
		return m.RewardPush()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NotificationPrefMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case notificationpref.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case notificationpref.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case notificationpref.FieldUserID:
		return m.OldUserID(ctx)
	case notificationpref.FieldSessionSms:
		return m.OldSessionSms(ctx)
	case notificationpref.FieldSessionPush:
		return m.OldSessionPush(ctx)
	case notificationpref.FieldDiaryReminderPush:
		return m.OldDiaryReminderPush(ctx)
	case notificationpref.FieldRewardPush:
		return m.OldRewardPush(ctx)
	}
	return nil, fmt.Errorf("unknown NotificationPref field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationPrefMutation) SetField(name string, value ent.Value) error {
	switch name {
	case notificationpref.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case notificationpref.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case notificationpref.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case notificationpref.FieldSessionSms:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionSms(v)
		return nil
	case notificationpref.FieldSessionPush:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionPush(v)
		return nil
	case notificationpref.FieldDiaryReminderPush:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiaryReminderPush(v)
		return nil
	case notificationpref.FieldRewardPush:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRewardPush(v)
		return nil
	}
	return fmt.Errorf("unknown NotificationPref field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NotificationPrefMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NotificationPrefMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationPrefMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown NotificationPref numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NotificationPrefMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NotificationPrefMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NotificationPrefMutation) ClearField(name string) error {
	return fmt.Errorf("unknown NotificationPref nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NotificationPrefMutation) ResetField(name string) error {
	switch name {
	case notificationpref.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case notificationpref.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case notificationpref.FieldUserID:
		m.ResetUserID()
		return nil
	case notificationpref.FieldSessionSms:
		m.ResetSessionSms()
		return nil
	case notificationpref.FieldSessionPush:
		m.ResetSessionPush()
		return nil
	case notificationpref.FieldDiaryReminderPush:
		m.ResetDiaryReminderPush()
		return nil
	case notificationpref.FieldRewardPush:
		m.ResetRewardPush()
		return nil
	}
	return fmt.Errorf("unknown NotificationPref field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NotificationPrefMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NotificationPrefMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NotificationPrefMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NotificationPrefMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NotificationPrefMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NotificationPrefMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NotificationPrefMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown NotificationPref unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NotificationPrefMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown NotificationPref edge %s", name)
}

// PatientMutation represents an operation that mutates the Patient nodes in the graph.
type PatientMutation struct {
	config
	op                           Op
	typ                          string
	id                           *uuid.UUID
	created_at                   *time.Time
	updated_at                   *time.Time
	deleted_at                   *time.Time
	file_number                  *string
	status                       *patient.Status
	cpf_encrypted                *string
	birth_date                   *time.Time
	timezone                     *string
	session_count                *int
	addsession_count             *int
	total_cancellations          *int
	addtotal_cancellations       *int
	last_cancel_reason           *string
	has_discount                 *bool
	discount_percent             *int
	adddiscount_percent          *int
	notes                        *string
	referral_source              *string
	chief_complaint              *string
	emergency_contact_name       *string
	emergency_contact_phone      *string
	clearedFields                map[string]struct{}
	clinic                       *uuid.UUID
	clearedclinic                bool
	user                         *uuid.UUID
	cleareduser                  bool
	assigned_psychologist        *uuid.UUID
	clearedassigned_psychologist bool
	done                         bool
	oldValue                     func(context.Context) (*Patient, error)
	predicates                   []predicate.Patient
}

var _ ent.Mutation = (*PatientMutation)(nil)

// patientOption allows management of the mutation configuration using functional options.
type patientOption func(*PatientMutation)

// newPatientMutation creates new mutation for the Patient entity.
func newPatientMutation(c config, op Op, opts ...patientOption) *PatientMutation {
	m := &PatientMutation{
		config:        c,
		op:            op,
		typ:           TypePatient,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPatientID sets the ID field of the mutation.
func withPatientID(id uuid.UUID) patientOption {
	return func(m *PatientMutation) {
		var (
			err   error
			once  sync.Once
			value *Patient
		)
		m.oldValue = func(ctx context.Context) (*Patient, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Patient.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPatient sets the old Patient of the mutation.
func withPatient(node *Patient) patientOption {
	return func(m *PatientMutation) {
		m.oldValue = func(context.Context) (*Patient, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PatientMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PatientMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Patient entities.
func (m *PatientMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PatientMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PatientMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Patient.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PatientMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PatientMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PatientMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PatientMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PatientMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PatientMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *PatientMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *PatientMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *PatientMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[patient.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *PatientMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[patient.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *PatientMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, patient.FieldDeletedAt)
}

// SetClinicID sets the "clinic_id" field.
func (m *PatientMutation) SetClinicID(u uuid.UUID) {
	m.clinic = &u
}

// ClinicID returns the value of the "clinic_id" field in the mutation.
func (m *PatientMutation) ClinicID() (r uuid.UUID, exists bool) {
	v := m.clinic
	if v == nil {
		return
	}
	return *v, true
}

// OldClinicID returns the old "clinic_id" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldClinicID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClinicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClinicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClinicID: %w", err)
	}
	return oldValue.ClinicID, nil
}

// ResetClinicID resets all changes to the "clinic_id" field.
func (m *PatientMutation) ResetClinicID() {
	m.clinic = nil
}

// SetUserID sets the "user_id" field.
func (m *PatientMutation) SetUserID(u uuid.UUID) {
	m.user = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *PatientMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *PatientMutation) ResetUserID() {
	m.user = nil
}

// SetAssignedPsychologistID sets the "assigned_psychologist_id" field.
func (m *PatientMutation) SetAssignedPsychologistID(u uuid.UUID) {
	m.assigned_psychologist = &u
}

// AssignedPsychologistID returns the value of the "assigned_psychologist_id" field in the mutation.
func (m *PatientMutation) AssignedPsychologistID() (r uuid.UUID, exists bool) {
	v := m.assigned_psychologist
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedPsychologistID returns the old "assigned_psychologist_id" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldAssignedPsychologistID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedPsychologistID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedPsychologistID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedPsychologistID: %w", err)
	}
	return oldValue.AssignedPsychologistID, nil
}

// ClearAssignedPsychologistID clears the value of the "assigned_psychologist_id" field.
func (m *PatientMutation) ClearAssignedPsychologistID() {
	m.assigned_psychologist = nil
	m.clearedFields[patient.FieldAssignedPsychologistID] = struct{}{}
}

// AssignedPsychologistIDCleared returns if the "assigned_psychologist_id" field was cleared in this mutation.
func (m *PatientMutation) AssignedPsychologistIDCleared() bool {
	_, ok := m.clearedFields[patient.FieldAssignedPsychologistID]
	return ok
}

// ResetAssignedPsychologistID resets all changes to the "assigned_psychologist_id" field.
func (m *PatientMutation) ResetAssignedPsychologistID() {
	m.assigned_psychologist = nil
	delete(m.clearedFields, patient.FieldAssignedPsychologistID)
}

// SetFileNumber sets the "file_number" field.
func (m *PatientMutation) SetFileNumber(s string) {
	m.file_number = &s
}

// FileNumber returns the value of the "file_number" field in the mutation.
func (m *PatientMutation) FileNumber() (r string, exists bool) {
	v := m.file_number
	if v == nil {
		return
	}
	return *v, true
}

// OldFileNumber returns the old "file_number" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldFileNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileNumber: %w", err)
	}
	return oldValue.FileNumber, nil
}

// ClearFileNumber clears the value of the "file_number" field.
func (m *PatientMutation) ClearFileNumber() {
	m.file_number = nil
	m.clearedFields[patient.FieldFileNumber] = struct{}{}
}

// FileNumberCleared returns if the "file_number" field was cleared in this mutation.
func (m *PatientMutation) FileNumberCleared() bool {
	_, ok := m.clearedFields[patient.FieldFileNumber]
	return ok
}

// ResetFileNumber resets all changes to the "file_number" field.
func (m *PatientMutation) ResetFileNumber() {
	m.file_number = nil
	delete(m.clearedFields, patient.FieldFileNumber)
}

// SetStatus sets the "status" field.
func (m *PatientMutation) SetStatus(pa patient.Status) {
	m.status = &pa
}

// Status returns the value of the "status" field in the mutation.
func (m *PatientMutation) Status() (r patient.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldStatus(ctx context.Context) (v patient.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PatientMutation) ResetStatus() {
	m.status = nil
}

// SetCpfEncrypted sets the "cpf_encrypted" field.
func (m *PatientMutation) SetCpfEncrypted(s string) {
	m.cpf_encrypted = &s
}

// CpfEncrypted returns the value of the "cpf_encrypted" field in the mutation.
func (m *PatientMutation) CpfEncrypted() (r string, exists bool) {
	v := m.cpf_encrypted
	if v == nil {
		return
	}
	return *v, true
}

// OldCpfEncrypted returns the old "cpf_encrypted" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldCpfEncrypted(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCpfEncrypted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCpfEncrypted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCpfEncrypted: %w", err)
	}
	return oldValue.CpfEncrypted, nil
}

// ClearCpfEncrypted clears the value of the "cpf_encrypted" field.
func (m *PatientMutation) ClearCpfEncrypted() {
	m.cpf_encrypted = nil
	m.clearedFields[patient.FieldCpfEncrypted] = struct{}{}
}

// CpfEncryptedCleared returns if the "cpf_encrypted" field was cleared in this mutation.
func (m *PatientMutation) CpfEncryptedCleared() bool {
	_, ok := m.clearedFields[patient.FieldCpfEncrypted]
	return ok
}

// ResetCpfEncrypted resets all changes to the "cpf_encrypted" field.
func (m *PatientMutation) ResetCpfEncrypted() {
	m.cpf_encrypted = nil
	delete(m.clearedFields, patient.FieldCpfEncrypted)
}

// SetBirthDate sets the "birth_date" field.
func (m *PatientMutation) SetBirthDate(t time.Time) {
	m.birth_date = &t
}

// BirthDate returns the value of the "birth_date" field in the mutation.
func (m *PatientMutation) BirthDate() (r time.Time, exists bool) {
	v := m.birth_date
	if v == nil {
		return
	}
	return *v, true
}

// OldBirthDate returns the old "birth_date" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldBirthDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBirthDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBirthDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBirthDate: %w", err)
	}
	return oldValue.BirthDate, nil
}

// ClearBirthDate clears the value of the "birth_date" field.
func (m *PatientMutation) ClearBirthDate() {
	m.birth_date = nil
	m.clearedFields[patient.FieldBirthDate] = struct{}{}
}

// BirthDateCleared returns if the "birth_date" field was cleared in this mutation.
func (m *PatientMutation) BirthDateCleared() bool {
	_, ok := m.clearedFields[patient.FieldBirthDate]
	return ok
}

// ResetBirthDate resets all changes to the "birth_date" field.
func (m *PatientMutation) ResetBirthDate() {
	m.birth_date = nil
	delete(m.clearedFields, patient.FieldBirthDate)
}

// SetTimezone sets the "timezone" field.
func (m *PatientMutation) SetTimezone(s string) {
	m.timezone = &s
}

// Timezone returns the value of the "timezone" field in the mutation.
func (m *PatientMutation) Timezone() (r string, exists bool) {
	v := m.timezone
	if v == nil {
		return
	}
	return *v, true
}

// OldTimezone returns the old "timezone" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldTimezone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimezone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimezone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimezone: %w", err)
	}
	return oldValue.Timezone, nil
}

// ResetTimezone resets all changes to the "timezone" field.
func (m *PatientMutation) ResetTimezone() {
	m.timezone = nil
}

// SetSessionCount sets the "session_count" field.
func (m *PatientMutation) SetSessionCount(i int) {
	m.session_count = &i
	m.addsession_count = nil
}

// SessionCount returns the value of the "session_count" field in the mutation.
func (m *PatientMutation) SessionCount() (r int, exists bool) {
	v := m.session_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionCount returns the old "session_count" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldSessionCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionCount: %w", err)
	}
	return oldValue.SessionCount, nil
}

// AddSessionCount adds i to the "session_count" field.
func (m *PatientMutation) AddSessionCount(i int) {
	if m.addsession_count != nil {
		*m.addsession_count += i
	} else {
		m.addsession_count = &i
	}
}

// AddedSessionCount returns the value that was added to the "session_count" field in this mutation.
func (m *PatientMutation) AddedSessionCount() (r int, exists bool) {
	v := m.addsession_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSessionCount resets all changes to the "session_count" field.
func (m *PatientMutation) ResetSessionCount() {
	m.session_count = nil
	m.addsession_count = nil
}

// SetTotalCancellations sets the "total_cancellations" field.
func (m *PatientMutation) SetTotalCancellations(i int) {
	m.total_cancellations = &i
	m.addtotal_cancellations = nil
}

// TotalCancellations returns the value of the "total_cancellations" field in the mutation.
func (m *PatientMutation) TotalCancellations() (r int, exists bool) {
	v := m.total_cancellations
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalCancellations returns the old "total_cancellations" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldTotalCancellations(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalCancellations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalCancellations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalCancellations: %w", err)
	}
	return oldValue.TotalCancellations, nil
}

// AddTotalCancellations adds i to the "total_cancellations" field.
func (m *PatientMutation) AddTotalCancellations(i int) {
	if m.addtotal_cancellations != nil {
		*m.addtotal_cancellations += i
	} else {
		m.addtotal_cancellations = &i
	}
}

// AddedTotalCancellations returns the value that was added to the "total_cancellations" field in this mutation.
func (m *PatientMutation) AddedTotalCancellations() (r int, exists bool) {
	v := m.addtotal_cancellations
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalCancellations resets all changes to the "total_cancellations" field.
func (m *PatientMutation) ResetTotalCancellations() {
	m.total_cancellations = nil
	m.addtotal_cancellations = nil
}

// SetLastCancelReason sets the "last_cancel_reason" field.
func (m *PatientMutation) SetLastCancelReason(s string) {
	m.last_cancel_reason = &s
}

// LastCancelReason returns the value of the "last_cancel_reason" field in the mutation.
func (m *PatientMutation) LastCancelReason() (r string, exists bool) {
	v := m.last_cancel_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldLastCancelReason returns the old "last_cancel_reason" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldLastCancelReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastCancelReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastCancelReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastCancelReason: %w", err)
	}
	return oldValue.LastCancelReason, nil
}

// ClearLastCancelReason clears the value of the "last_cancel_reason" field.
func (m *PatientMutation) ClearLastCancelReason() {
	m.last_cancel_reason = nil
	m.clearedFields[patient.FieldLastCancelReason] = struct{}{}
}

// LastCancelReasonCleared returns if the "last_cancel_reason" field was cleared in this mutation.
func (m *PatientMutation) LastCancelReasonCleared() bool {
	_, ok := m.clearedFields[patient.FieldLastCancelReason]
	return ok
}

// ResetLastCancelReason resets all changes to the "last_cancel_reason" field.
func (m *PatientMutation) ResetLastCancelReason() {
	m.last_cancel_reason = nil
	delete(m.clearedFields, patient.FieldLastCancelReason)
}

// SetHasDiscount sets the "has_discount" field.
func (m *PatientMutation) SetHasDiscount(b bool) {
	m.has_discount = &b
}

// HasDiscount returns the value of the "has_discount" field in the mutation.
func (m *PatientMutation) HasDiscount() (r bool, exists bool) {
	v := m.has_discount
	if v == nil {
		return
	}
	return *v, true
}

// OldHasDiscount returns the old "has_discount" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldHasDiscount(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHasDiscount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHasDiscount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHasDiscount: %w", err)
	}
	return oldValue.HasDiscount, nil
}

// ResetHasDiscount resets all changes to the "has_discount" field.
func (m *PatientMutation) ResetHasDiscount() {
	m.has_discount = nil
}

// SetDiscountPercent sets the "discount_percent" field.
func (m *PatientMutation) SetDiscountPercent(i int) {
	m.discount_percent = &i
	m.adddiscount_percent = nil
}

// DiscountPercent returns the value of the "discount_percent" field in the mutation.
func (m *PatientMutation) DiscountPercent() (r int, exists bool) {
	v := m.discount_percent
	if v == nil {
		return
	}
	return *v, true
}

// OldDiscountPercent returns the old "discount_percent" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldDiscountPercent(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiscountPercent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiscountPercent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiscountPercent: %w", err)
	}
	return oldValue.DiscountPercent, nil
}

// AddDiscountPercent adds i to the "discount_percent" field.
func (m *PatientMutation) AddDiscountPercent(i int) {
	if m.adddiscount_percent != nil {
		*m.adddiscount_percent += i
	} else {
		m.adddiscount_percent = &i
	}
}

// AddedDiscountPercent returns the value that was added to the "discount_percent" field in this mutation.
func (m *PatientMutation) AddedDiscountPercent() (r int, exists bool) {
	v := m.adddiscount_percent
	if v == nil {
		return
	}
	return *v, true
}

// ResetDiscountPercent resets all changes to the "discount_percent" field.
func (m *PatientMutation) ResetDiscountPercent() {
	m.discount_percent = nil
	m.adddiscount_percent = nil
}

// SetNotes sets the "notes" field.
func (m *PatientMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *PatientMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *PatientMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[patient.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *PatientMutation) NotesCleared() bool {
	_, ok := m.clearedFields[patient.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *PatientMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, patient.FieldNotes)
}

// SetReferralSource sets the "referral_source" field.
func (m *PatientMutation) SetReferralSource(s string) {
	m.referral_source = &s
}

// ReferralSource returns the value of the "referral_source" field in the mutation.
func (m *PatientMutation) ReferralSource() (r string, exists bool) {
	v := m.referral_source
	if v == nil {
		return
	}
	return *v, true
}

// OldReferralSource returns the old "referral_source" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldReferralSource(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReferralSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReferralSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReferralSource: %w", err)
	}
	return oldValue.ReferralSource, nil
}

// ClearReferralSource clears the value of the "referral_source" field.
func (m *PatientMutation) ClearReferralSource() {
	m.referral_source = nil
	m.clearedFields[patient.FieldReferralSource] = struct{}{}
}

// ReferralSourceCleared returns if the "referral_source" field was cleared in this mutation.
func (m *PatientMutation) ReferralSourceCleared() bool {
	_, ok := m.clearedFields[patient.FieldReferralSource]
	return ok
}

// ResetReferralSource resets all changes to the "referral_source" field.
func (m *PatientMutation) ResetReferralSource() {
	m.referral_source = nil
	delete(m.clearedFields, patient.FieldReferralSource)
}

// SetChiefComplaint sets the "chief_complaint" field.
func (m *PatientMutation) SetChiefComplaint(s string) {
	m.chief_complaint = &s
}

// ChiefComplaint returns the value of the "chief_complaint" field in the mutation.
func (m *PatientMutation) ChiefComplaint() (r string, exists bool) {
	v := m.chief_complaint
	if v == nil {
		return
	}
	return *v, true
}

// OldChiefComplaint returns the old "chief_complaint" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldChiefComplaint(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChiefComplaint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChiefComplaint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChiefComplaint: %w", err)
	}
	return oldValue.ChiefComplaint, nil
}

// ClearChiefComplaint clears the value of the "chief_complaint" field.
func (m *PatientMutation) ClearChiefComplaint() {
	m.chief_complaint = nil
	m.clearedFields[patient.FieldChiefComplaint] = struct{}{}
}

// ChiefComplaintCleared returns if the "chief_complaint" field was cleared in this mutation.
func (m *PatientMutation) ChiefComplaintCleared() bool {
	_, ok := m.clearedFields[patient.FieldChiefComplaint]
	return ok
}

// ResetChiefComplaint resets all changes to the "chief_complaint" field.
func (m *PatientMutation) ResetChiefComplaint() {
	m.chief_complaint = nil
	delete(m.clearedFields, patient.FieldChiefComplaint)
}

// SetEmergencyContactName sets the "emergency_contact_name" field.
func (m *PatientMutation) SetEmergencyContactName(s string) {
	m.emergency_contact_name = &s
}

// EmergencyContactName returns the value of the "emergency_contact_name" field in the mutation.
func (m *PatientMutation) EmergencyContactName() (r string, exists bool) {
	v := m.emergency_contact_name
	if v == nil {
		return
	}
	return *v, true
}

// OldEmergencyContactName returns the old "emergency_contact_name" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldEmergencyContactName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmergencyContactName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmergencyContactName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmergencyContactName: %w", err)
	}
	return oldValue.EmergencyContactName, nil
}

// ClearEmergencyContactName clears the value of the "emergency_contact_name" field.
func (m *PatientMutation) ClearEmergencyContactName() {
	m.emergency_contact_name = nil
	m.clearedFields[patient.FieldEmergencyContactName] = struct{}{}
}

// EmergencyContactNameCleared returns if the "emergency_contact_name" field was cleared in this mutation.
func (m *PatientMutation) EmergencyContactNameCleared() bool {
	_, ok := m.clearedFields[patient.FieldEmergencyContactName]
	return ok
}

// ResetEmergencyContactName resets all changes to the "emergency_contact_name" field.
func (m *PatientMutation) ResetEmergencyContactName() {
	m.emergency_contact_name = nil
	delete(m.clearedFields, patient.FieldEmergencyContactName)
}

// SetEmergencyContactPhone sets the "emergency_contact_phone" field.
func (m *PatientMutation) SetEmergencyContactPhone(s string) {
	m.emergency_contact_phone = &s
}

// EmergencyContactPhone returns the value of the "emergency_contact_phone" field in the mutation.
func (m *PatientMutation) EmergencyContactPhone() (r string, exists bool) {
	v := m.emergency_contact_phone
	if v == nil {
		return
	}
	return *v, true
}

// OldEmergencyContactPhone returns the old "emergency_contact_phone" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldEmergencyContactPhone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmergencyContactPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmergencyContactPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmergencyContactPhone: %w", err)
	}
	return oldValue.EmergencyContactPhone, nil
}

// ClearEmergencyContactPhone clears the value of the "emergency_contact_phone" field.
func (m *PatientMutation) ClearEmergencyContactPhone() {
	m.emergency_contact_phone = nil
	m.clearedFields[patient.FieldEmergencyContactPhone] = struct{}{}
}

// EmergencyContactPhoneCleared returns if the "emergency_contact_phone" field was cleared in this mutation.
func (m *PatientMutation) EmergencyContactPhoneCleared() bool {
	_, ok := m.clearedFields[patient.FieldEmergencyContactPhone]
	return ok
}

// ResetEmergencyContactPhone resets all changes to the "emergency_contact_phone" field.
func (m *PatientMutation) ResetEmergencyContactPhone() {
	m.emergency_contact_phone = nil
	delete(m.clearedFields, patient.FieldEmergencyContactPhone)
}

// ClearClinic clears the "clinic" edge to the Clinic entity.
func (m *PatientMutation) ClearClinic() {
	m.clearedclinic = true
	m.clearedFields[patient.FieldClinicID] = struct{}{}
}

// ClinicCleared reports if the "clinic" edge to the Clinic entity was cleared.
func (m *PatientMutation) ClinicCleared() bool {
	return m.clearedclinic
}

// ClinicIDs returns the "clinic" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ClinicID instead. It exists only for internal usage by the builders.
func (m *PatientMutation) ClinicIDs() (ids []uuid.UUID) {
	if id := m.clinic; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetClinic resets all changes to the "clinic" edge.
func (m *PatientMutation) ResetClinic() {
	m.clinic = nil
	m.clearedclinic = false
}

// ClearUser clears the "user" edge to the User entity.
func (m *PatientMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[patient.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *PatientMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *PatientMutation) UserIDs() (ids []uuid.UUID) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *PatientMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// ClearAssignedPsychologist clears the "assigned_psychologist" edge to the ClinicMember entity.
func (m *PatientMutation) ClearAssignedPsychologist() {
	m.clearedassigned_psychologist = true
	m.clearedFields[patient.FieldAssignedPsychologistID] = struct{}{}
}

// AssignedPsychologistCleared reports if the "assigned_psychologist" edge to the ClinicMember entity was cleared.
func (m *PatientMutation) AssignedPsychologistCleared() bool {
	return m.AssignedPsychologistIDCleared() || m.clearedassigned_psychologist
}

// AssignedPsychologistIDs returns the "assigned_psychologist" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AssignedPsychologistID instead. It exists only for internal usage by the builders.
func (m *PatientMutation) AssignedPsychologistIDs() (ids []uuid.UUID) {
	if id := m.assigned_psychologist; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAssignedPsychologist resets all changes to the "assigned_psychologist" edge.
func (m *PatientMutation) ResetAssignedPsychologist() {
	m.assigned_psychologist = nil
	m.clearedassigned_psychologist = false
}

// Where appends a list predicates to the PatientMutation builder.
func (m *PatientMutation) Where(ps ...predicate.Patient) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PatientMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PatientMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Patient, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PatientMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PatientMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Patient).
func (m *PatientMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PatientMutation) Fields() []string {
	fields := make([]string, 0, 21)
	if m.created_at != nil {
		fields = append(fields, patient.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, patient.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, patient.FieldDeletedAt)
	}
	if m.clinic != nil {
		fields = append(fields, patient.FieldClinicID)
	}
	if m.user != nil {
		fields = append(fields, patient.FieldUserID)
	}
	if m.assigned_psychologist != nil {
		fields = append(fields, patient.FieldAssignedPsychologistID)
	}
	if m.file_number != nil {
		fields = append(fields, patient.FieldFileNumber)
	}
	if m.status != nil {
		fields = append(fields, patient.FieldStatus)
	}
	if m.cpf_encrypted != nil {
		fields = append(fields, patient.FieldCpfEncrypted)
	}
	if m.birth_date != nil {
		fields = append(fields, patient.FieldBirthDate)
	}
	if m.timezone != nil {
		fields = append(fields, patient.FieldTimezone)
	}
	if m.session_count != nil {
		fields = append(fields, patient.FieldSessionCount)
	}
	if m.total_cancellations != nil {
		fields = append(fields, patient.FieldTotalCancellations)
	}
	if m.last_cancel_reason != nil {
		fields = append(fields, patient.FieldLastCancelReason)
	}
	if m.has_discount != nil {
		fields = append(fields, patient.FieldHasDiscount)
	}
	if m.discount_percent != nil {
		fields = append(fields, patient.FieldDiscountPercent)
	}
	if m.notes != nil {
		fields = append(fields, patient.FieldNotes)
	}
	if m.referral_source != nil {
		fields = append(fields, patient.FieldReferralSource)
	}
	if m.chief_complaint != nil {
		fields = append(fields, patient.FieldChiefComplaint)
	}
	if m.emergency_contact_name != nil {
		fields = append(fields, patient.FieldEmergencyContactName)
	}
	if m.emergency_contact_phone != nil {
		fields = append(fields, patient.FieldEmergencyContactPhone)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PatientMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case patient.FieldCreatedAt:
		return m.CreatedAt()
	case patient.FieldUpdatedAt:
		return m.UpdatedAt()
	case patient.FieldDeletedAt:
		return m.DeletedAt()
	case patient.FieldClinicID:
		return m.ClinicID()
	case patient.FieldUserID:
		return m.UserID()
	case patient.FieldAssignedPsychologistID:
		return m.AssignedPsychologistID()
	case patient.FieldFileNumber:
		return m.FileNumber()
	case patient.FieldStatus:
		return m.Status()
	case patient.FieldCpfEncrypted:
		return m.CpfEncrypted()
	case patient.FieldBirthDate:
		return m.BirthDate()
	case patient.FieldTimezone:
		return m.Timezone()
	case patient.FieldSessionCount:
		return m.SessionCount()
	case patient.FieldTotalCancellations:
		return m.TotalCancellations()
	case patient.FieldLastCancelReason:
		return m.LastCancelReason()
	case patient.FieldHasDiscount:
		return m.HasDiscount()
	case patient.FieldDiscountPercent:
		return m.DiscountPercent()
	case patient.FieldNotes:
		return m.Notes()
	case patient.FieldReferralSource:
		return m.ReferralSource()
	case patient.FieldChiefComplaint:
		return m.ChiefComplaint()
	case patient.FieldEmergencyContactName:
		return m.EmergencyContactName()
	case patient.FieldEmergencyContactPhone:
		return m.EmergencyContactPhone()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PatientMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case patient.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case patient.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case patient.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case patient.FieldClinicID:
		return m.OldClinicID(ctx)
	case patient.FieldUserID:
		return m.OldUserID(ctx)
	case patient.FieldAssignedPsychologistID:
		return m.OldAssignedPsychologistID(ctx)
	case patient.FieldFileNumber:
		return m.OldFileNumber(ctx)
	case patient.FieldStatus:
		return m.OldStatus(ctx)
	case patient.FieldCpfEncrypted:
		return m.OldCpfEncrypted(ctx)
	case patient.FieldBirthDate:
		return m.OldBirthDate(ctx)
	case patient.FieldTimezone:
		return m.OldTimezone(ctx)
	case patient.FieldSessionCount:
		return m.OldSessionCount(ctx)
	case patient.FieldTotalCancellations:
		return m.OldTotalCancellations(ctx)
	case patient.FieldLastCancelReason:
		return m.OldLastCancelReason(ctx)
	case patient.FieldHasDiscount:
		return m.OldHasDiscount(ctx)
	case patient.FieldDiscountPercent:
		return m.OldDiscountPercent(ctx)
	case patient.FieldNotes:
		return m.OldNotes(ctx)
	case patient.FieldReferralSource:
		return m.OldReferralSource(ctx)
	case patient.FieldChiefComplaint:
		return m.OldChiefComplaint(ctx)
	case patient.FieldEmergencyContactName:
		return m.OldEmergencyContactName(ctx)
	case patient.FieldEmergencyContactPhone:
		return m.OldEmergencyContactPhone(ctx)
	}
	return nil, fmt.Errorf("unknown Patient field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatientMutation) SetField(name string, value ent.Value) error {
	switch name {
	case patient.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case patient.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case patient.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case patient.FieldClinicID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClinicID(v)
		return nil
	case patient.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case patient.FieldAssignedPsychologistID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedPsychologistID(v)
		return nil
	case patient.FieldFileNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileNumber(v)
		return nil
	case patient.FieldStatus:
		v, ok := value.(patient.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case patient.FieldCpfEncrypted:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCpfEncrypted(v)
		return nil
	case patient.FieldBirthDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBirthDate(v)
		return nil
	case patient.FieldTimezone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimezone(v)
		return nil
	case patient.FieldSessionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionCount(v)
		return nil
	case patient.FieldTotalCancellations:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalCancellations(v)
		return nil
	case patient.FieldLastCancelReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastCancelReason(v)
		return nil
	case patient.FieldHasDiscount:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHasDiscount(v)
		return nil
	case patient.FieldDiscountPercent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiscountPercent(v)
		return nil
	case patient.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case patient.FieldReferralSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReferralSource(v)
		return nil
	case patient.FieldChiefComplaint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChiefComplaint(v)
		return nil
	case patient.FieldEmergencyContactName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmergencyContactName(v)
		return nil
	case patient.FieldEmergencyContactPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmergencyContactPhone(v)
		return nil
	}
	return fmt.Errorf("unknown Patient field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PatientMutation) AddedFields() []string {
	var fields []string
	if m.addsession_count != nil {
		fields = append(fields, patient.FieldSessionCount)
	}
	if m.addtotal_cancellations != nil {
		fields = append(fields, patient.FieldTotalCancellations)
	}
	if m.adddiscount_percent != nil {
		fields = append(fields, patient.FieldDiscountPercent)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PatientMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case patient.FieldSessionCount:
		return m.AddedSessionCount()
	case patient.FieldTotalCancellations:
		return m.AddedTotalCancellations()
	case patient.FieldDiscountPercent:
		return m.AddedDiscountPercent()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatientMutation) AddField(name string, value ent.Value) error {
	switch name {
	case patient.FieldSessionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSessionCount(v)
		return nil
	case patient.FieldTotalCancellations:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalCancellations(v)
		return nil
	case patient.FieldDiscountPercent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDiscountPercent(v)
		return nil
	}
	return fmt.Errorf("unknown Patient numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PatientMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(patient.FieldDeletedAt) {
		fields = append(fields, patient.FieldDeletedAt)
	}
	if m.FieldCleared(patient.FieldAssignedPsychologistID) {
		fields = append(fields, patient.FieldAssignedPsychologistID)
	}
	if m.FieldCleared(patient.FieldFileNumber) {
		fields = append(fields, patient.FieldFileNumber)
	}
	if m.FieldCleared(patient.FieldCpfEncrypted) {
		fields = append(fields, patient.FieldCpfEncrypted)
	}
	if m.FieldCleared(patient.FieldBirthDate) {
		fields = append(fields, patient.FieldBirthDate)
	}
	if m.FieldCleared(patient.FieldLastCancelReason) {
		fields = append(fields, patient.FieldLastCancelReason)
	}
	if m.FieldCleared(patient.FieldNotes) {
		fields = append(fields, patient.FieldNotes)
	}
	if m.FieldCleared(patient.FieldReferralSource) {
		fields = append(fields, patient.FieldReferralSource)
	}
	if m.FieldCleared(patient.FieldChiefComplaint) {
		fields = append(fields, patient.FieldChiefComplaint)
	}
	if m.FieldCleared(patient.FieldEmergencyContactName) {
		fields = append(fields, patient.FieldEmergencyContactName)
	}
	if m.FieldCleared(patient.FieldEmergencyContactPhone) {
		fields = append(fields, patient.FieldEmergencyContactPhone)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PatientMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PatientMutation) ClearField(name string) error {
	switch name {
	case patient.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case patient.FieldAssignedPsychologistID:
		m.ClearAssignedPsychologistID()
		return nil
	case patient.FieldFileNumber:
		m.ClearFileNumber()
		return nil
	case patient.FieldCpfEncrypted:
		m.ClearCpfEncrypted()
		return nil
	case patient.FieldBirthDate:
		m.ClearBirthDate()
		return nil
	case patient.FieldLastCancelReason:
		m.ClearLastCancelReason()
		return nil
	case patient.FieldNotes:
		m.ClearNotes()
		return nil
	case patient.FieldReferralSource:
		m.ClearReferralSource()
		return nil
	case patient.FieldChiefComplaint:
		m.ClearChiefComplaint()
		return nil
	case patient.FieldEmergencyContactName:
		m.ClearEmergencyContactName()
		return nil
	case patient.FieldEmergencyContactPhone:
		m.ClearEmergencyContactPhone()
		return nil
	}
	return fmt.Errorf("unknown Patient nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PatientMutation) ResetField(name string) error {
	switch name {
	case patient.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case patient.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case patient.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case patient.FieldClinicID:
		m.ResetClinicID()
		return nil
	case patient.FieldUserID:
		m.ResetUserID()
		return nil
	case patient.FieldAssignedPsychologistID:
		m.ResetAssignedPsychologistID()
		return nil
	case patient.FieldFileNumber:
		m.ResetFileNumber()
		return nil
	case patient.FieldStatus:
		m.ResetStatus()
		return nil
	case patient.FieldCpfEncrypted:
		m.ResetCpfEncrypted()
		return nil
	case patient.FieldBirthDate:
		m.ResetBirthDate()
		return nil
	case patient.FieldTimezone:
		m.ResetTimezone()
		return nil
	case patient.FieldSessionCount:
		m.ResetSessionCount()
		return nil
	case patient.FieldTotalCancellations:
		m.ResetTotalCancellations()
		return nil
	case patient.FieldLastCancelReason:
		m.ResetLastCancelReason()
		return nil
	case patient.FieldHasDiscount:
		m.ResetHasDiscount()
		return nil
	case patient.FieldDiscountPercent:
		m.ResetDiscountPercent()
		return nil
	case patient.FieldNotes:
		m.ResetNotes()
		return nil
	case patient.FieldReferralSource:
		m.ResetReferralSource()
		return nil
	case patient.FieldChiefComplaint:
		m.ResetChiefComplaint()
		return nil
	case patient.FieldEmergencyContactName:
		m.ResetEmergencyContactName()
		return nil
	case patient.FieldEmergencyContactPhone:
		m.ResetEmergencyContactPhone()
		return nil
	}
	return fmt.Errorf("unknown Patient field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PatientMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clinic != nil {
		edges = append(edges, patient.EdgeClinic)
	}
	if m.user != nil {
		edges = append(edges, patient.EdgeUser)
	}
	if m.assigned_psychologist != nil {
		edges = append(edges, patient.EdgeAssignedPsychologist)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PatientMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case patient.EdgeClinic:
		if id := m.clinic; id != nil {
			return []ent.Value{*id}
		}
	case patient.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	case patient.EdgeAssignedPsychologist:
		if id := m.assigned_psychologist; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PatientMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PatientMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PatientMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedclinic {
		edges = append(edges, patient.EdgeClinic)
	}
	if m.cleareduser {
		edges = append(edges, patient.EdgeUser)
	}
	if m.clearedassigned_psychologist {
		edges = append(edges, patient.EdgeAssignedPsychologist)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PatientMutation) EdgeCleared(name string) bool {
	switch name {
	case patient.EdgeClinic:
		return m.clearedclinic
	case patient.EdgeUser:
		return m.cleareduser
	case patient.EdgeAssignedPsychologist:
		return m.clearedassigned_psychologist
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PatientMutation) ClearEdge(name string) error {
	switch name {
	case patient.EdgeClinic:
		m.ClearClinic()
		return nil
	case patient.EdgeUser:
		m.ClearUser()
		return nil
	case patient.EdgeAssignedPsychologist:
		m.ClearAssignedPsychologist()
		return nil
	}
	return fmt.Errorf("unknown Patient unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PatientMutation) ResetEdge(name string) error {
	switch name {
	case patient.EdgeClinic:
		m.ResetClinic()
		return nil
	case patient.EdgeUser:
		m.ResetUser()
		return nil
	case patient.EdgeAssignedPsychologist:
		m.ResetAssignedPsychologist()
		return nil
	}
	return fmt.Errorf("unknown Patient edge %s", name)
}

// PsychologistProfileMutation represents an operation that mutates the PsychologistProfile nodes in the graph.
type PsychologistProfileMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	created_at              *time.Time
	updated_at              *time.Time
	crp_license             *string
	approach                *string
	specialties             *[]string
	appendspecialties       []string
	bio                     *string
	session_price_cents     *int64
	addsession_price_cents  *int64
	session_duration_min    *int
	addsession_duration_min *int
	timezone                *string
	working_hours           *map[string]interface{}
	slot_granularity_min    *int
	addslot_granularity_min *int
	is_accepting            *bool
	clearedFields           map[string]struct{}
	member                  *uuid.UUID
	clearedmember           bool
	done                    bool
	oldValue                func(context.Context) (*PsychologistProfile, error)
	predicates              []predicate.PsychologistProfile
}

var _ ent.Mutation = (*PsychologistProfileMutation)(nil)

// psychologistprofileOption allows management of the mutation configuration using functional options.
type psychologistprofileOption func(*PsychologistProfileMutation)

// newPsychologistProfileMutation creates new mutation for the PsychologistProfile entity.
func newPsychologistProfileMutation(c config, op Op, opts ...psychologistprofileOption) *PsychologistProfileMutation {
	m := &PsychologistProfileMutation{
		config:        c,
		op:            op,
		typ:           TypePsychologistProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPsychologistProfileID sets the ID field of the mutation.
func withPsychologistProfileID(id uuid.UUID) psychologistprofileOption {
	return func(m *PsychologistProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *PsychologistProfile
		)
		m.oldValue = func(ctx context.Context) (*PsychologistProfile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PsychologistProfile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPsychologistProfile sets the old PsychologistProfile of the mutation.
func withPsychologistProfile(node *PsychologistProfile) psychologistprofileOption {
	return func(m *PsychologistProfileMutation) {
		m.oldValue = func(context.Context) (*PsychologistProfile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PsychologistProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PsychologistProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PsychologistProfile entities.
func (m *PsychologistProfileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PsychologistProfileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PsychologistProfileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PsychologistProfile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PsychologistProfileMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PsychologistProfileMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PsychologistProfile entity.
// If the PsychologistProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PsychologistProfileMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PsychologistProfileMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PsychologistProfileMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PsychologistProfileMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PsychologistProfile entity.
// If the PsychologistProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PsychologistProfileMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PsychologistProfileMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetClinicMemberID sets the "clinic_member_id" field.
func (m *PsychologistProfileMutation) SetClinicMemberID(u uuid.UUID) {
	m.member = &u
}

// ClinicMemberID returns the value of the "clinic_member_id" field in the mutation.
func (m *PsychologistProfileMutation) ClinicMemberID() (r uuid.UUID, exists bool) {
	v := m.member
	if v == nil {
		return
	}
	return *v, true
}

// OldClinicMemberID returns the old "clinic_member_id" field's value of the PsychologistProfile entity.
// If the PsychologistProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PsychologistProfileMutation) OldClinicMemberID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClinicMemberID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClinicMemberID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClinicMemberID: %w", err)
	}
	return oldValue.ClinicMemberID, nil
}

// ResetClinicMemberID resets all changes to the "clinic_member_id" field.
func (m *PsychologistProfileMutation) ResetClinicMemberID() {
	m.member = nil
}

// SetCrpLicense sets the "crp_license" field.
func (m *PsychologistProfileMutation) SetCrpLicense(s string) {
	m.crp_license = &s
}

// CrpLicense returns the value of the "crp_license" field in the mutation.
func (m *PsychologistProfileMutation) CrpLicense() (r string, exists bool) {
	v := m.crp_license
	if v == nil {
		return
	}
	return *v, true
}

// OldCrpLicense returns the old "crp_license" field's value of the PsychologistProfile entity.
// If the PsychologistProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PsychologistProfileMutation) OldCrpLicense(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCrpLicense is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCrpLicense requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCrpLicense: %w", err)
	}
	return oldValue.CrpLicense, nil
}

// ClearCrpLicense clears the value of the "crp_license" field.
func (m *PsychologistProfileMutation) ClearCrpLicense() {
	m.crp_license = nil
	m.clearedFields[psychologistprofile.FieldCrpLicense] = struct{}{}
}

// CrpLicenseCleared returns if the "crp_license" field was cleared in this mutation.
func (m *PsychologistProfileMutation) CrpLicenseCleared() bool {
	_, ok := m.clearedFields[psychologistprofile.FieldCrpLicense]
	return ok
}

// ResetCrpLicense resets all changes to the "crp_license" field.
func (m *PsychologistProfileMutation) ResetCrpLicense() {
	m.crp_license = nil
	delete(m.clearedFields, psychologistprofile.FieldCrpLicense)
}

// SetApproach sets the "approach" field.
func (m *PsychologistProfileMutation) SetApproach(s string) {
	m.approach = &s
}

// Approach returns the value of the "approach" field in the mutation.
func (m *PsychologistProfileMutation) Approach() (r string, exists bool) {
	v := m.approach
	if v == nil {
		return
	}
	return *v, true
}

// OldApproach returns the old "approach" field's value of the PsychologistProfile entity.
// If the PsychologistProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PsychologistProfileMutation) OldApproach(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApproach is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApproach requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApproach: %w", err)
	}
	return oldValue.Approach, nil
}

// ClearApproach clears the value of the "approach" field.
func (m *PsychologistProfileMutation) ClearApproach() {
	m.approach = nil
	m.clearedFields[psychologistprofile.FieldApproach] = struct{}{}
}

// ApproachCleared returns if the "approach" field was cleared in this mutation.
func (m *PsychologistProfileMutation) ApproachCleared() bool {
	_, ok := m.clearedFields[psychologistprofile.FieldApproach]
	return ok
}

// ResetApproach resets all changes to the "approach" field.
func (m *PsychologistProfileMutation) ResetApproach() {
	m.approach = nil
	delete(m.clearedFields, psychologistprofile.FieldApproach)
}

// SetSpecialties sets the "specialties" field.
func (m *PsychologistProfileMutation) SetSpecialties(s []string) {
	m.specialties = &s
	m.appendspecialties = nil
}

// Specialties returns the value of the "specialties" field in the mutation.
func (m *PsychologistProfileMutation) Specialties() (r []string, exists bool) {
	v := m.specialties
	if v == nil {
		return
	}
	return *v, true
}

// OldSpecialties returns the old "specialties" field's value of the PsychologistProfile entity.
// If the PsychologistProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PsychologistProfileMutation) OldSpecialties(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpecialties is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpecialties requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpecialties: %w", err)
	}
	return oldValue.Specialties, nil
}

// AppendSpecialties adds s to the "specialties" field.
func (m *PsychologistProfileMutation) AppendSpecialties(s []string) {
	m.appendspecialties = append(m.appendspecialties, s...)
}

// AppendedSpecialties returns the list of values that were appended to the "specialties" field in this mutation.
func (m *PsychologistProfileMutation) AppendedSpecialties() ([]string, bool) {
	if len(m.appendspecialties) == 0 {
		return nil, false
	}
	return m.appendspecialties, true
}

// ClearSpecialties clears the value of the "specialties" field.
func (m *PsychologistProfileMutation) ClearSpecialties() {
	m.specialties = nil
	m.appendspecialties = nil
	m.clearedFields[psychologistprofile.FieldSpecialties] = struct{}{}
}

// SpecialtiesCleared returns if the "specialties" field was cleared in this mutation.
func (m *PsychologistProfileMutation) SpecialtiesCleared() bool {
	_, ok := m.clearedFields[psychologistprofile.FieldSpecialties]
	return ok
}

// ResetSpecialties resets all changes to the "specialties" field.
func (m *PsychologistProfileMutation) ResetSpecialties() {
	m.specialties = nil
	m.appendspecialties = nil
	delete(m.clearedFields, psychologistprofile.FieldSpecialties)
}

// SetBio sets the "bio" field.
func (m *PsychologistProfileMutation) SetBio(s string) {
	m.bio = &s
}

// Bio returns the value of the "bio" field in the mutation.
func (m *PsychologistProfileMutation) Bio() (r string, exists bool) {
	v := m.bio
	if v == nil {
		return
	}
	return *v, true
}

// OldBio returns the old "bio" field's value of the PsychologistProfile entity.
// If the PsychologistProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PsychologistProfileMutation) OldBio(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBio is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBio requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBio: %w", err)
	}
	return oldValue.Bio, nil
}

// ClearBio clears the value of the "bio" field.
func (m *PsychologistProfileMutation) ClearBio() {
	m.bio = nil
	m.clearedFields[psychologistprofile.FieldBio] = struct{}{}
}

// BioCleared returns if the "bio" field was cleared in this mutation.
func (m *PsychologistProfileMutation) BioCleared() bool {
	_, ok := m.clearedFields[psychologistprofile.FieldBio]
	return ok
}

// ResetBio resets all changes to the "bio" field.
func (m *PsychologistProfileMutation) ResetBio() {
	m.bio = nil
	delete(m.clearedFields, psychologistprofile.FieldBio)
}

// SetSessionPriceCents sets the "session_price_cents" field.
func (m *PsychologistProfileMutation) SetSessionPriceCents(i int64) {
	m.session_price_cents = &i
	m.addsession_price_cents = nil
}

// SessionPriceCents returns the value of the "session_price_cents" field in the mutation.
func (m *PsychologistProfileMutation) SessionPriceCents() (r int64, exists bool) {
	v := m.session_price_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionPriceCents returns the old "session_price_cents" field's value of the PsychologistProfile entity.
// If the PsychologistProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PsychologistProfileMutation) OldSessionPriceCents(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionPriceCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionPriceCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionPriceCents: %w", err)
	}
	return oldValue.SessionPriceCents, nil
}

// AddSessionPriceCents adds i to the "session_price_cents" field.
func (m *PsychologistProfileMutation) AddSessionPriceCents(i int64) {
	if m.addsession_price_cents != nil {
		*m.addsession_price_cents += i
	} else {
		m.addsession_price_cents = &i
	}
}

// AddedSessionPriceCents returns the value that was added to the "session_price_cents" field in this mutation.
func (m *PsychologistProfileMutation) AddedSessionPriceCents() (r int64, exists bool) {
	v := m.addsession_price_cents
	if v == nil {
		return
	}
	return *v, true
}

// ClearSessionPriceCents clears the value of the "session_price_cents" field.
func (m *PsychologistProfileMutation) ClearSessionPriceCents() {
	m.session_price_cents = nil
	m.addsession_price_cents = nil
	m.clearedFields[psychologistprofile.FieldSessionPriceCents] = struct{}{}
}

// SessionPriceCentsCleared returns if the "session_price_cents" field was cleared in this mutation.
func (m *PsychologistProfileMutation) SessionPriceCentsCleared() bool {
	_, ok := m.clearedFields[psychologistprofile.FieldSessionPriceCents]
	return ok
}

// ResetSessionPriceCents resets all changes to the "session_price_cents" field.
func (m *PsychologistProfileMutation) ResetSessionPriceCents() {
	m.session_price_cents = nil
	m.addsession_price_cents = nil
	delete(m.clearedFields, psychologistprofile.FieldSessionPriceCents)
}

// SetSessionDurationMin sets the "session_duration_min" field.
func (m *PsychologistProfileMutation) SetSessionDurationMin(i int) {
	m.session_duration_min = &i
	m.addsession_duration_min = nil
}

// SessionDurationMin returns the value of the "session_duration_min" field in the mutation.
func (m *PsychologistProfileMutation) SessionDurationMin() (r int, exists bool) {
	v := m.session_duration_min
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionDurationMin returns the old "session_duration_min" field's value of the PsychologistProfile entity.
// If the PsychologistProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PsychologistProfileMutation) OldSessionDurationMin(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionDurationMin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionDurationMin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionDurationMin: %w", err)
	}
	return oldValue.SessionDurationMin, nil
}

// AddSessionDurationMin adds i to the "session_duration_min" field.
func (m *PsychologistProfileMutation) AddSessionDurationMin(i int) {
	if m.addsession_duration_min != nil {
		*m.addsession_duration_min += i
	} else {
		m.addsession_duration_min = &i
	}
}

// AddedSessionDurationMin returns the value that was added to the "session_duration_min" field in this mutation.
func (m *PsychologistProfileMutation) AddedSessionDurationMin() (r int, exists bool) {
	v := m.addsession_duration_min
	if v == nil {
		return
	}
	return *v, true
}

// ClearSessionDurationMin clears the value of the "session_duration_min" field.
func (m *PsychologistProfileMutation) ClearSessionDurationMin() {
	m.session_duration_min = nil
	m.addsession_duration_min = nil
	m.clearedFields[psychologistprofile.FieldSessionDurationMin] = struct{}{}
}

// SessionDurationMinCleared returns if the "session_duration_min" field was cleared in this mutation.
func (m *PsychologistProfileMutation) SessionDurationMinCleared() bool {
	_, ok := m.clearedFields[psychologistprofile.FieldSessionDurationMin]
	return ok
}

// ResetSessionDurationMin resets all changes to the "session_duration_min" field.
func (m *PsychologistProfileMutation) ResetSessionDurationMin() {
	m.session_duration_min = nil
	m.addsession_duration_min = nil
	delete(m.clearedFields, psychologistprofile.FieldSessionDurationMin)
}

// SetTimezone sets the "timezone" field.
func (m *PsychologistProfileMutation) SetTimezone(s string) {
	m.timezone = &s
}

// Timezone returns the value of the "timezone" field in the mutation.
func (m *PsychologistProfileMutation) Timezone() (r string, exists bool) {
	v := m.timezone
	if v == nil {
		return
	}
	return *v, true
}

// OldTimezone returns the old "timezone" field's value of the PsychologistProfile entity.
// If the PsychologistProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PsychologistProfileMutation) OldTimezone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimezone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimezone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimezone: %w", err)
	}
	return oldValue.Timezone, nil
}

// ResetTimezone resets all changes to the "timezone" field.
func (m *PsychologistProfileMutation) ResetTimezone() {
	m.timezone = nil
}

// SetWorkingHours sets the "working_hours" field.
func (m *PsychologistProfileMutation) SetWorkingHours(value map[string]interface{}) {
	m.working_hours = &value
}

// WorkingHours returns the value of the "working_hours" field in the mutation.
func (m *PsychologistProfileMutation) WorkingHours() (r map[string]interface{}, exists bool) {
	v := m.working_hours
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkingHours returns the old "working_hours" field's value of the PsychologistProfile entity.
// If the PsychologistProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PsychologistProfileMutation) OldWorkingHours(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkingHours is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkingHours requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkingHours: %w", err)
	}
	return oldValue.WorkingHours, nil
}

// ClearWorkingHours clears the value of the "working_hours" field.
func (m *PsychologistProfileMutation) ClearWorkingHours() {
	m.working_hours = nil
	m.clearedFields[psychologistprofile.FieldWorkingHours] = struct{}{}
}

// WorkingHoursCleared returns if the "working_hours" field was cleared in this mutation.
func (m *PsychologistProfileMutation) WorkingHoursCleared() bool {
	_, ok := m.clearedFields[psychologistprofile.FieldWorkingHours]
	return ok
}

// ResetWorkingHours resets all changes to the "working_hours" field.
func (m *PsychologistProfileMutation) ResetWorkingHours() {
	m.working_hours = nil
	delete(m.clearedFields, psychologistprofile.FieldWorkingHours)
}

// SetSlotGranularityMin sets the "slot_granularity_min" field.
func (m *PsychologistProfileMutation) SetSlotGranularityMin(i int) {
	m.slot_granularity_min = &i
	m.addslot_granularity_min = nil
}

// SlotGranularityMin returns the value of the "slot_granularity_min" field in the mutation.
func (m *PsychologistProfileMutation) SlotGranularityMin() (r int, exists bool) {
	v := m.slot_granularity_min
	if v == nil {
		return
	}
	return *v, true
}

// OldSlotGranularityMin returns the old "slot_granularity_min" field's value of the PsychologistProfile entity.
// If the PsychologistProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PsychologistProfileMutation) OldSlotGranularityMin(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlotGranularityMin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlotGranularityMin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlotGranularityMin: %w", err)
	}
	return oldValue.SlotGranularityMin, nil
}

// AddSlotGranularityMin adds i to the "slot_granularity_min" field.
func (m *PsychologistProfileMutation) AddSlotGranularityMin(i int) {
	if m.addslot_granularity_min != nil {
		*m.addslot_granularity_min += i
	} else {
		m.addslot_granularity_min = &i
	}
}

// AddedSlotGranularityMin returns the value that was added to the "slot_granularity_min" field in this mutation.
func (m *PsychologistProfileMutation) AddedSlotGranularityMin() (r int, exists bool) {
	v := m.addslot_granularity_min
	if v == nil {
		return
	}
	return *v, true
}

// ResetSlotGranularityMin resets all changes to the "slot_granularity_min" field.
func (m *PsychologistProfileMutation) ResetSlotGranularityMin() {
	m.slot_granularity_min = nil
	m.addslot_granularity_min = nil
}

// SetIsAccepting sets the "is_accepting" field.
func (m *PsychologistProfileMutation) SetIsAccepting(b bool) {
	m.is_accepting = &b
}

// IsAccepting returns the value of the "is_accepting" field in the mutation.
func (m *PsychologistProfileMutation) IsAccepting() (r bool, exists bool) {
	v := m.is_accepting
	if v == nil {
		return
	}
	return *v, true
}

// OldIsAccepting returns the old "is_accepting" field's value of the PsychologistProfile entity.
// If the PsychologistProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PsychologistProfileMutation) OldIsAccepting(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsAccepting is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsAccepting requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsAccepting: %w", err)
	}
	return oldValue.IsAccepting, nil
}

// ResetIsAccepting resets all changes to the "is_accepting" field.
func (m *PsychologistProfileMutation) ResetIsAccepting() {
	m.is_accepting = nil
}

// SetMemberID sets the "member" edge to the ClinicMember entity by id.
func (m *PsychologistProfileMutation) SetMemberID(id uuid.UUID) {
	m.member = &id
}

// ClearMember clears the "member" edge to the ClinicMember entity.
func (m *PsychologistProfileMutation) ClearMember() {
	m.clearedmember = true
	m.clearedFields[psychologistprofile.FieldClinicMemberID] = struct{}{}
}

// MemberCleared reports if the "member" edge to the ClinicMember entity was cleared.
func (m *PsychologistProfileMutation) MemberCleared() bool {
	return m.clearedmember
}

// MemberID returns the "member" edge ID in the mutation.
func (m *PsychologistProfileMutation) MemberID() (id uuid.UUID, exists bool) {
	if m.member != nil {
		return *m.member, true
	}
	return
}

// MemberIDs returns the "member" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MemberID instead. It exists only for internal usage by the builders.
func (m *PsychologistProfileMutation) MemberIDs() (ids []uuid.UUID) {
	if id := m.member; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMember resets all changes to the "member" edge.
func (m *PsychologistProfileMutation) ResetMember() {
	m.member = nil
	m.clearedmember = false
}

// Where appends a list predicates to the PsychologistProfileMutation builder.
func (m *PsychologistProfileMutation) Where(ps ...predicate.PsychologistProfile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PsychologistProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PsychologistProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PsychologistProfile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PsychologistProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PsychologistProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PsychologistProfile).
func (m *PsychologistProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PsychologistProfileMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.created_at != nil {
		fields = append(fields, psychologistprofile.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, psychologistprofile.FieldUpdatedAt)
	}
	if m.member != nil {
		fields = append(fields, psychologistprofile.FieldClinicMemberID)
	}
	if m.crp_license != nil {
		fields = append(fields, psychologistprofile.FieldCrpLicense)
	}
	if m.approach != nil {
		fields = append(fields, psychologistprofile.FieldApproach)
	}
	if m.specialties != nil {
		fields = append(fields, psychologistprofile.FieldSpecialties)
	}
	if m.bio != nil {
		fields = append(fields, psychologistprofile.FieldBio)
	}
	if m.session_price_cents != nil {
		fields = append(fields, psychologistprofile.FieldSessionPriceCents)
	}
	if m.session_duration_min != nil {
		fields = append(fields, psychologistprofile.FieldSessionDurationMin)
	}
	if m.timezone != nil {
		fields = append(fields, psychologistprofile.FieldTimezone)
	}
	if m.working_hours != nil {
		fields = append(fields, psychologistprofile.FieldWorkingHours)
	}
	if m.slot_granularity_min != nil {
		fields = append(fields, psychologistprofile.FieldSlotGranularityMin)
	}
	if m.is_accepting != nil {
		fields = append(fields, psychologistprofile.FieldIsAccepting)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PsychologistProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case psychologistprofile.FieldCreatedAt:
		return m.CreatedAt()
	case psychologistprofile.FieldUpdatedAt:
		return m.UpdatedAt()
	case psychologistprofile.FieldClinicMemberID:
		return m.ClinicMemberID()
	case psychologistprofile.FieldCrpLicense:
		return m.CrpLicense()
	case psychologistprofile.FieldApproach:
		return m.Approach()
	case psychologistprofile.FieldSpecialties:
		return m.Specialties()
	case psychologistprofile.FieldBio:
		return m.Bio()
	case psychologistprofile.FieldSessionPriceCents:
		return m.SessionPriceCents()
	case psychologistprofile.FieldSessionDurationMin:
		return m.SessionDurationMin()
	case psychologistprofile.FieldTimezone:
		return m.Timezone()
	case psychologistprofile.FieldWorkingHours:
		return m.WorkingHours()
	case psychologistprofile.FieldSlotGranularityMin:
		return m.SlotGranularityMin()
	case psychologistprofile.FieldIsAccepting:
		return m.IsAccepting()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PsychologistProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case psychologistprofile.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case psychologistprofile.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case psychologistprofile.FieldClinicMemberID:
		return m.OldClinicMemberID(ctx)
	case psychologistprofile.FieldCrpLicense:
		return m.OldCrpLicense(ctx)
	case psychologistprofile.FieldApproach:
		return m.OldApproach(ctx)
	case psychologistprofile.FieldSpecialties:
		return m.OldSpecialties(ctx)
	case psychologistprofile.FieldBio:
		return m.OldBio(ctx)
	case psychologistprofile.FieldSessionPriceCents:
		return m.OldSessionPriceCents(ctx)
	case psychologistprofile.FieldSessionDurationMin:
		return m.OldSessionDurationMin(ctx)
	case psychologistprofile.FieldTimezone:
		return m.OldTimezone(ctx)
	case psychologistprofile.FieldWorkingHours:
		return m.OldWorkingHours(ctx)
	case psychologistprofile.FieldSlotGranularityMin:
		return m.OldSlotGranularityMin(ctx)
	case psychologistprofile.FieldIsAccepting:
		return m.OldIsAccepting(ctx)
	}
	return nil, fmt.Errorf("unknown PsychologistProfile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PsychologistProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case psychologistprofile.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case psychologistprofile.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case psychologistprofile.FieldClinicMemberID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClinicMemberID(v)
		return nil
	case psychologistprofile.FieldCrpLicense:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCrpLicense(v)
		return nil
	case psychologistprofile.FieldApproach:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApproach(v)
		return nil
	case psychologistprofile.FieldSpecialties:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpecialties(v)
		return nil
	case psychologistprofile.FieldBio:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBio(v)
		return nil
	case psychologistprofile.FieldSessionPriceCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionPriceCents(v)
		return nil
	case psychologistprofile.FieldSessionDurationMin:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionDurationMin(v)
		return nil
	case psychologistprofile.FieldTimezone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimezone(v)
		return nil
	case psychologistprofile.FieldWorkingHours:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkingHours(v)
		return nil
	case psychologistprofile.FieldSlotGranularityMin:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlotGranularityMin(v)
		return nil
	case psychologistprofile.FieldIsAccepting:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsAccepting(v)
		return nil
	}
	return fmt.Errorf("unknown PsychologistProfile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PsychologistProfileMutation) AddedFields() []string {
	var fields []string
	if m.addsession_price_cents != nil {
		fields = append(fields, psychologistprofile.FieldSessionPriceCents)
	}
	if m.addsession_duration_min != nil {
		fields = append(fields, psychologistprofile.FieldSessionDurationMin)
	}
	if m.addslot_granularity_min != nil {
		fields = append(fields, psychologistprofile.FieldSlotGranularityMin)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PsychologistProfileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case psychologistprofile.FieldSessionPriceCents:
		return m.AddedSessionPriceCents()
	case psychologistprofile.FieldSessionDurationMin:
		return m.AddedSessionDurationMin()
	case psychologistprofile.FieldSlotGranularityMin:
		return m.AddedSlotGranularityMin()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PsychologistProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case psychologistprofile.FieldSessionPriceCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSessionPriceCents(v)
		return nil
	case psychologistprofile.FieldSessionDurationMin:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSessionDurationMin(v)
		return nil
	case psychologistprofile.FieldSlotGranularityMin:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSlotGranularityMin(v)
		return nil
	}
	return fmt.Errorf("unknown PsychologistProfile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PsychologistProfileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(psychologistprofile.FieldCrpLicense) {
		fields = append(fields, psychologistprofile.FieldCrpLicense)
	}
	if m.FieldCleared(psychologistprofile.FieldApproach) {
		fields = append(fields, psychologistprofile.FieldApproach)
	}
	if m.FieldCleared(psychologistprofile.FieldSpecialties) {
		fields = append(fields, psychologistprofile.FieldSpecialties)
	}
	if m.FieldCleared(psychologistprofile.FieldBio) {
		fields = append(fields, psychologistprofile.FieldBio)
	}
	if m.FieldCleared(psychologistprofile.FieldSessionPriceCents) {
		fields = append(fields, psychologistprofile.FieldSessionPriceCents)
	}
	if m.FieldCleared(psychologistprofile.FieldSessionDurationMin) {
		fields = append(fields, psychologistprofile.FieldSessionDurationMin)
	}
	if m.FieldCleared(psychologistprofile.FieldWorkingHours) {
		fields = append(fields, psychologistprofile.FieldWorkingHours)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PsychologistProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PsychologistProfileMutation) ClearField(name string) error {
	switch name {
	case psychologistprofile.FieldCrpLicense:
		m.ClearCrpLicense()
		return nil
	case psychologistprofile.FieldApproach:
		m.ClearApproach()
		return nil
	case psychologistprofile.FieldSpecialties:
		m.ClearSpecialties()
		return nil
	case psychologistprofile.FieldBio:
		m.ClearBio()
		return nil
	case psychologistprofile.FieldSessionPriceCents:
		m.ClearSessionPriceCents()
		return nil
	case psychologistprofile.FieldSessionDurationMin:
		m.ClearSessionDurationMin()
		return nil
	case psychologistprofile.FieldWorkingHours:
		m.ClearWorkingHours()
		return nil
	}
	return fmt.Errorf("unknown PsychologistProfile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PsychologistProfileMutation) ResetField(name string) error {
	switch name {
	case psychologistprofile.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case psychologistprofile.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case psychologistprofile.FieldClinicMemberID:
		m.ResetClinicMemberID()
		return nil
	case psychologistprofile.FieldCrpLicense:
		m.ResetCrpLicense()
		return nil
	case psychologistprofile.FieldApproach:
		m.ResetApproach()
		return nil
	case psychologistprofile.FieldSpecialties:
		m.ResetSpecialties()
		return nil
	case psychologistprofile.FieldBio:
		m.ResetBio()
		return nil
	case psychologistprofile.FieldSessionPriceCents:
		m.ResetSessionPriceCents()
		return nil
	case psychologistprofile.FieldSessionDurationMin:
		m.ResetSessionDurationMin()
		return nil
	case psychologistprofile.FieldTimezone:
		m.ResetTimezone()
		return nil
	case psychologistprofile.FieldWorkingHours:
		m.ResetWorkingHours()
		return nil
	case psychologistprofile.FieldSlotGranularityMin:
		m.ResetSlotGranularityMin()
		return nil
	case psychologistprofile.FieldIsAccepting:
		m.ResetIsAccepting()
		return nil
	}
	return fmt.Errorf("unknown PsychologistProfile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PsychologistProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.member != nil {
		edges = append(edges, psychologistprofile.EdgeMember)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PsychologistProfileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case psychologistprofile.EdgeMember:
		if id := m.member; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PsychologistProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PsychologistProfileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PsychologistProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedmember {
		edges = append(edges, psychologistprofile.EdgeMember)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PsychologistProfileMutation) EdgeCleared(name string) bool {
	switch name {
	case psychologistprofile.EdgeMember:
		return m.clearedmember
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PsychologistProfileMutation) ClearEdge(name string) error {
	switch name {
	case psychologistprofile.EdgeMember:
		m.ClearMember()
		return nil
	}
	return fmt.Errorf("unknown PsychologistProfile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PsychologistProfileMutation) ResetEdge(name string) error {
	switch name {
	case psychologistprofile.EdgeMember:
		m.ResetMember()
		return nil
	}
	return fmt.Errorf("unknown PsychologistProfile edge %s", name)
}

// SessionMutation represents an operation that mutates the Session nodes in the graph.
type SessionMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	created_at          *time.Time
	updated_at          *time.Time
	clinic_id           *uuid.UUID
	psychologist_id     *uuid.UUID
	patient_id          *uuid.UUID
	scheduled_at        *time.Time
	duration_minutes    *int
	addduration_minutes *int
	timezone            *string
	_type               *session.Type
	status              *session.Status
	series_id           *uuid.UUID
	notes               *string
	price_cents         *int64
	addprice_cents      *int64
	cancellation_reason *string
	cancel_requested_by *session.CancelRequestedBy
	cancelled_at        *time.Time
	completed_at        *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*Session, error)
	predicates          []predicate.Session
}

var _ ent.Mutation = (*SessionMutation)(nil)

// sessionOption allows management of the mutation configuration using functional options.
type sessionOption func(*SessionMutation)

// newSessionMutation creates new mutation for the Session entity.
func newSessionMutation(c config, op Op, opts ...sessionOption) *SessionMutation {
	m := &SessionMutation{
		config:        c,
		op:            op,
		typ:           TypeSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionID sets the ID field of the mutation.
func withSessionID(id uuid.UUID) sessionOption {
	return func(m *SessionMutation) {
		var (
			err   error
			once  sync.Once
			value *Session
		)
		m.oldValue = func(ctx context.Context) (*Session, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Session.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSession sets the old Session of the mutation.
func withSession(node *Session) sessionOption {
	return func(m *SessionMutation) {
		m.oldValue = func(context.Context) (*Session, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Session entities.
func (m *SessionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Session.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *SessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetClinicID sets the "clinic_id" field.
func (m *SessionMutation) SetClinicID(u uuid.UUID) {
	m.clinic_id = &u
}

// ClinicID returns the value of the "clinic_id" field in the mutation.
func (m *SessionMutation) ClinicID() (r uuid.UUID, exists bool) {
	v := m.clinic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClinicID returns the old "clinic_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldClinicID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClinicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClinicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClinicID: %w", err)
	}
	return oldValue.ClinicID, nil
}

// ResetClinicID resets all changes to the "clinic_id" field.
func (m *SessionMutation) ResetClinicID() {
	m.clinic_id = nil
}

// SetPsychologistID sets the "psychologist_id" field.
func (m *SessionMutation) SetPsychologistID(u uuid.UUID) {
	m.psychologist_id = &u
}

// PsychologistID returns the value of the "psychologist_id" field in the mutation.
func (m *SessionMutation) PsychologistID() (r uuid.UUID, exists bool) {
	v := m.psychologist_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPsychologistID returns the old "psychologist_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldPsychologistID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPsychologistID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPsychologistID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPsychologistID: %w", err)
	}
	return oldValue.PsychologistID, nil
}

// ResetPsychologistID resets all changes to the "psychologist_id" field.
func (m *SessionMutation) ResetPsychologistID() {
	m.psychologist_id = nil
}

// SetPatientID sets the "patient_id" field.
func (m *SessionMutation) SetPatientID(u uuid.UUID) {
	m.patient_id = &u
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *SessionMutation) PatientID() (r uuid.UUID, exists bool) {
	v := m.patient_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldPatientID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ClearPatientID clears the value of the "patient_id" field.
func (m *SessionMutation) ClearPatientID() {
	m.patient_id = nil
	m.clearedFields[session.FieldPatientID] = struct{}{}
}

// PatientIDCleared returns if the "patient_id" field was cleared in this mutation.
func (m *SessionMutation) PatientIDCleared() bool {
	_, ok := m.clearedFields[session.FieldPatientID]
	return ok
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *SessionMutation) ResetPatientID() {
	m.patient_id = nil
	delete(m.clearedFields, session.FieldPatientID)
}

// SetScheduledAt sets the "scheduled_at" field.
func (m *SessionMutation) SetScheduledAt(t time.Time) {
	m.scheduled_at = &t
}

// ScheduledAt returns the value of the "scheduled_at" field in the mutation.
func (m *SessionMutation) ScheduledAt() (r time.Time, exists bool) {
	v := m.scheduled_at
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduledAt returns the old "scheduled_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldScheduledAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduledAt: %w", err)
	}
	return oldValue.ScheduledAt, nil
}

// ResetScheduledAt resets all changes to the "scheduled_at" field.
func (m *SessionMutation) ResetScheduledAt() {
	m.scheduled_at = nil
}

// SetDurationMinutes sets the "duration_minutes" field.
func (m *SessionMutation) SetDurationMinutes(i int) {
	m.duration_minutes = &i
	m.addduration_minutes = nil
}

// DurationMinutes returns the value of the "duration_minutes" field in the mutation.
func (m *SessionMutation) DurationMinutes() (r int, exists bool) {
	v := m.duration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMinutes returns the old "duration_minutes" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldDurationMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMinutes: %w", err)
	}
	return oldValue.DurationMinutes, nil
}

// AddDurationMinutes adds i to the "duration_minutes" field.
func (m *SessionMutation) AddDurationMinutes(i int) {
	if m.addduration_minutes != nil {
		*m.addduration_minutes += i
	} else {
		m.addduration_minutes = &i
	}
}

// AddedDurationMinutes returns the value that was added to the "duration_minutes" field in this mutation.
func (m *SessionMutation) AddedDurationMinutes() (r int, exists bool) {
	v := m.addduration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMinutes resets all changes to the "duration_minutes" field.
func (m *SessionMutation) ResetDurationMinutes() {
	m.duration_minutes = nil
	m.addduration_minutes = nil
}

// SetTimezone sets the "timezone" field.
func (m *SessionMutation) SetTimezone(s string) {
	m.timezone = &s
}

// Timezone returns the value of the "timezone" field in the mutation.
func (m *SessionMutation) Timezone() (r string, exists bool) {
	v := m.timezone
	if v == nil {
		return
	}
	return *v, true
}

// OldTimezone returns the old "timezone" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldTimezone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimezone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimezone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimezone: %w", err)
	}
	return oldValue.Timezone, nil
}

// ResetTimezone resets all changes to the "timezone" field.
func (m *SessionMutation) ResetTimezone() {
	m.timezone = nil
}

// SetType sets the "type" field.
func (m *SessionMutation) SetType(s session.Type) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *SessionMutation) GetType() (r session.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldType(ctx context.Context) (v session.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *SessionMutation) ResetType() {
	m._type = nil
}

// SetStatus sets the "status" field.
func (m *SessionMutation) SetStatus(s session.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SessionMutation) Status() (r session.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldStatus(ctx context.Context) (v session.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SessionMutation) ResetStatus() {
	m.status = nil
}

// SetSeriesID sets the "series_id" field.
func (m *SessionMutation) SetSeriesID(u uuid.UUID) {
	m.series_id = &u
}

// SeriesID returns the value of the "series_id" field in the mutation.
func (m *SessionMutation) SeriesID() (r uuid.UUID, exists bool) {
	v := m.series_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSeriesID returns the old "series_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldSeriesID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeriesID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeriesID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeriesID: %w", err)
	}
	return oldValue.SeriesID, nil
}

// ClearSeriesID clears the value of the "series_id" field.
func (m *SessionMutation) ClearSeriesID() {
	m.series_id = nil
	m.clearedFields[session.FieldSeriesID] = struct{}{}
}

// SeriesIDCleared returns if the "series_id" field was cleared in this mutation.
func (m *SessionMutation) SeriesIDCleared() bool {
	_, ok := m.clearedFields[session.FieldSeriesID]
	return ok
}

// ResetSeriesID resets all changes to the "series_id" field.
func (m *SessionMutation) ResetSeriesID() {
	m.series_id = nil
	delete(m.clearedFields, session.FieldSeriesID)
}

// SetNotes sets the "notes" field.
func (m *SessionMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *SessionMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *SessionMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[session.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *SessionMutation) NotesCleared() bool {
	_, ok := m.clearedFields[session.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *SessionMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, session.FieldNotes)
}

// SetPriceCents sets the "price_cents" field.
func (m *SessionMutation) SetPriceCents(i int64) {
	m.price_cents = &i
	m.addprice_cents = nil
}

// PriceCents returns the value of the "price_cents" field in the mutation.
func (m *SessionMutation) PriceCents() (r int64, exists bool) {
	v := m.price_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldPriceCents returns the old "price_cents" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldPriceCents(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriceCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriceCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriceCents: %w", err)
	}
	return oldValue.PriceCents, nil
}

// AddPriceCents adds i to the "price_cents" field.
func (m *SessionMutation) AddPriceCents(i int64) {
	if m.addprice_cents != nil {
		*m.addprice_cents += i
	} else {
		m.addprice_cents = &i
	}
}

// AddedPriceCents returns the value that was added to the "price_cents" field in this mutation.
func (m *SessionMutation) AddedPriceCents() (r int64, exists bool) {
	v := m.addprice_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriceCents resets all changes to the "price_cents" field.
func (m *SessionMutation) ResetPriceCents() {
	m.price_cents = nil
	m.addprice_cents = nil
}

// SetCancellationReason sets the "cancellation_reason" field.
func (m *SessionMutation) SetCancellationReason(s string) {
	m.cancellation_reason = &s
}

// CancellationReason returns the value of the "cancellation_reason" field in the mutation.
func (m *SessionMutation) CancellationReason() (r string, exists bool) {
	v := m.cancellation_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldCancellationReason returns the old "cancellation_reason" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCancellationReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancellationReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancellationReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancellationReason: %w", err)
	}
	return oldValue.CancellationReason, nil
}

// ClearCancellationReason clears the value of the "cancellation_reason" field.
func (m *SessionMutation) ClearCancellationReason() {
	m.cancellation_reason = nil
	m.clearedFields[session.FieldCancellationReason] = struct{}{}
}

// CancellationReasonCleared returns if the "cancellation_reason" field was cleared in this mutation.
func (m *SessionMutation) CancellationReasonCleared() bool {
	_, ok := m.clearedFields[session.FieldCancellationReason]
	return ok
}

// ResetCancellationReason resets all changes to the "cancellation_reason" field.
func (m *SessionMutation) ResetCancellationReason() {
	m.cancellation_reason = nil
	delete(m.clearedFields, session.FieldCancellationReason)
}

// SetCancelRequestedBy sets the "cancel_requested_by" field.
func (m *SessionMutation) SetCancelRequestedBy(srb session.CancelRequestedBy) {
	m.cancel_requested_by = &srb
}

// CancelRequestedBy returns the value of the "cancel_requested_by" field in the mutation.
func (m *SessionMutation) CancelRequestedBy() (r session.CancelRequestedBy, exists bool) {
	v := m.cancel_requested_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelRequestedBy returns the old "cancel_requested_by" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCancelRequestedBy(ctx context.Context) (v *session.CancelRequestedBy, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelRequestedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelRequestedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelRequestedBy: %w", err)
	}
	return oldValue.CancelRequestedBy, nil
}

// ClearCancelRequestedBy clears the value of the "cancel_requested_by" field.
func (m *SessionMutation) ClearCancelRequestedBy() {
	m.cancel_requested_by = nil
	m.clearedFields[session.FieldCancelRequestedBy] = struct{}{}
}

// CancelRequestedByCleared returns if the "cancel_requested_by" field was cleared in this mutation.
func (m *SessionMutation) CancelRequestedByCleared() bool {
	_, ok := m.clearedFields[session.FieldCancelRequestedBy]
	return ok
}

// ResetCancelRequestedBy resets all changes to the "cancel_requested_by" field.
func (m *SessionMutation) ResetCancelRequestedBy() {
	m.cancel_requested_by = nil
	delete(m.clearedFields, session.FieldCancelRequestedBy)
}

// SetCancelledAt sets the "cancelled_at" field.
func (m *SessionMutation) SetCancelledAt(t time.Time) {
	m.cancelled_at = &t
}

// CancelledAt returns the value of the "cancelled_at" field in the mutation.
func (m *SessionMutation) CancelledAt() (r time.Time, exists bool) {
	v := m.cancelled_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelledAt returns the old "cancelled_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCancelledAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelledAt: %w", err)
	}
	return oldValue.CancelledAt, nil
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (m *SessionMutation) ClearCancelledAt() {
	m.cancelled_at = nil
	m.clearedFields[session.FieldCancelledAt] = struct{}{}
}

// CancelledAtCleared returns if the "cancelled_at" field was cleared in this mutation.
func (m *SessionMutation) CancelledAtCleared() bool {
	_, ok := m.clearedFields[session.FieldCancelledAt]
	return ok
}

// ResetCancelledAt resets all changes to the "cancelled_at" field.
func (m *SessionMutation) ResetCancelledAt() {
	m.cancelled_at = nil
	delete(m.clearedFields, session.FieldCancelledAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *SessionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *SessionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *SessionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[session.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *SessionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[session.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *SessionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, session.FieldCompletedAt)
}

// Where appends a list predicates to the SessionMutation builder.
func (m *SessionMutation) Where(ps ...predicate.Session) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Session, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Session).
func (m *SessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.created_at != nil {
		fields = append(fields, session.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, session.FieldUpdatedAt)
	}
	if m.clinic_id != nil {
		fields = append(fields, session.FieldClinicID)
	}
	if m.psychologist_id != nil {
		fields = append(fields, session.FieldPsychologistID)
	}
	if m.patient_id != nil {
		fields = append(fields, session.FieldPatientID)
	}
	if m.scheduled_at != nil {
		fields = append(fields, session.FieldScheduledAt)
	}
	if m.duration_minutes != nil {
		fields = append(fields, session.FieldDurationMinutes)
	}
	if m.timezone != nil {
		fields = append(fields, session.FieldTimezone)
	}
	if m._type != nil {
		fields = append(fields, session.FieldType)
	}
	if m.status != nil {
		fields = append(fields, session.FieldStatus)
	}
	if m.series_id != nil {
		fields = append(fields, session.FieldSeriesID)
	}
	if m.notes != nil {
		fields = append(fields, session.FieldNotes)
	}
	if m.price_cents != nil {
		fields = append(fields, session.FieldPriceCents)
	}
	if m.cancellation_reason != nil {
		fields = append(fields, session.FieldCancellationReason)
	}
	if m.cancel_requested_by != nil {
		fields = append(fields, session.FieldCancelRequestedBy)
	}
	if m.cancelled_at != nil {
		fields = append(fields, session.FieldCancelledAt)
	}
	if m.completed_at != nil {
		fields = append(fields, session.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case session.FieldCreatedAt:
		return m.CreatedAt()
	case session.FieldUpdatedAt:
		return m.UpdatedAt()
	case session.FieldClinicID:
		return m.ClinicID()
	case session.FieldPsychologistID:
		return m.PsychologistID()
	case session.FieldPatientID:
		return m.PatientID()
	case session.FieldScheduledAt:
		return m.ScheduledAt()
	case session.FieldDurationMinutes:
		return m.DurationMinutes()
	case session.FieldTimezone:
		return m.Timezone()
	case session.FieldType:
		return m.GetType()
	case session.FieldStatus:
		return m.Status()
	case session.FieldSeriesID:
		return m.SeriesID()
	case session.FieldNotes:
		return m.Notes()
	case session.FieldPriceCents:
		return m.PriceCents()
	case session.FieldCancellationReason:
		return m.CancellationReason()
	case session.FieldCancelRequestedBy:
		return m.CancelRequestedBy()
	case session.FieldCancelledAt:
		return m.CancelledAt()
	case session.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case session.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case session.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case session.FieldClinicID:
		return m.OldClinicID(ctx)
	case session.FieldPsychologistID:
		return m.OldPsychologistID(ctx)
	case session.FieldPatientID:
		return m.OldPatientID(ctx)
	case session.FieldScheduledAt:
		return m.OldScheduledAt(ctx)
	case session.FieldDurationMinutes:
		return m.OldDurationMinutes(ctx)
	case session.FieldTimezone:
		return m.OldTimezone(ctx)
	case session.FieldType:
		return m.OldType(ctx)
	case session.FieldStatus:
		return m.OldStatus(ctx)
	case session.FieldSeriesID:
		return m.OldSeriesID(ctx)
	case session.FieldNotes:
		return m.OldNotes(ctx)
	case session.FieldPriceCents:
		return m.OldPriceCents(ctx)
	case session.FieldCancellationReason:
		return m.OldCancellationReason(ctx)
	case session.FieldCancelRequestedBy:
		return m.OldCancelRequestedBy(ctx)
	case session.FieldCancelledAt:
		return m.OldCancelledAt(ctx)
	case session.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Session field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case session.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case session.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case session.FieldClinicID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClinicID(v)
		return nil
	case session.FieldPsychologistID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPsychologistID(v)
		return nil
	case session.FieldPatientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case session.FieldScheduledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduledAt(v)
		return nil
	case session.FieldDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMinutes(v)
		return nil
	case session.FieldTimezone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimezone(v)
		return nil
	case session.FieldType:
		v, ok := value.(session.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case session.FieldStatus:
		v, ok := value.(session.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case session.FieldSeriesID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeriesID(v)
		return nil
	case session.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case session.FieldPriceCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriceCents(v)
		return nil
	case session.FieldCancellationReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancellationReason(v)
		return nil
	case session.FieldCancelRequestedBy:
		v, ok := value.(session.CancelRequestedBy)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelRequestedBy(v)
		return nil
	case session.FieldCancelledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelledAt(v)
		return nil
	case session.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionMutation) AddedFields() []string {
	var fields []string
	if m.addduration_minutes != nil {
		fields = append(fields, session.FieldDurationMinutes)
	}
	if m.addprice_cents != nil {
		fields = append(fields, session.FieldPriceCents)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case session.FieldDurationMinutes:
		return m.AddedDurationMinutes()
	case session.FieldPriceCents:
		return m.AddedPriceCents()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case session.FieldDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMinutes(v)
		return nil
	case session.FieldPriceCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriceCents(v)
		return nil
	}
	return fmt.Errorf("unknown Session numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(session.FieldPatientID) {
		fields = append(fields, session.FieldPatientID)
	}
	if m.FieldCleared(session.FieldSeriesID) {
		fields = append(fields, session.FieldSeriesID)
	}
	if m.FieldCleared(session.FieldNotes) {
		fields = append(fields, session.FieldNotes)
	}
	if m.FieldCleared(session.FieldCancellationReason) {
		fields = append(fields, session.FieldCancellationReason)
	}
	if m.FieldCleared(session.FieldCancelRequestedBy) {
		fields = append(fields, session.FieldCancelRequestedBy)
	}
	if m.FieldCleared(session.FieldCancelledAt) {
		fields = append(fields, session.FieldCancelledAt)
	}
	if m.FieldCleared(session.FieldCompletedAt) {
		fields = append(fields, session.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionMutation) ClearField(name string) error {
	switch name {
	case session.FieldPatientID:
		m.ClearPatientID()
		return nil
	case session.FieldSeriesID:
		m.ClearSeriesID()
		return nil
	case session.FieldNotes:
		m.ClearNotes()
		return nil
	case session.FieldCancellationReason:
		m.ClearCancellationReason()
		return nil
	case session.FieldCancelRequestedBy:
		m.ClearCancelRequestedBy()
		return nil
	case session.FieldCancelledAt:
		m.ClearCancelledAt()
		return nil
	case session.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Session nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionMutation) ResetField(name string) error {
	switch name {
	case session.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case session.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case session.FieldClinicID:
		m.ResetClinicID()
		return nil
	case session.FieldPsychologistID:
		m.ResetPsychologistID()
		return nil
	case session.FieldPatientID:
		m.ResetPatientID()
		return nil
	case session.FieldScheduledAt:
		m.ResetScheduledAt()
		return nil
	case session.FieldDurationMinutes:
		m.ResetDurationMinutes()
		return nil
	case session.FieldTimezone:
		m.ResetTimezone()
		return nil
	case session.FieldType:
		m.ResetType()
		return nil
	case session.FieldStatus:
		m.ResetStatus()
		return nil
	case session.FieldSeriesID:
		m.ResetSeriesID()
		return nil
	case session.FieldNotes:
		m.ResetNotes()
		return nil
	case session.FieldPriceCents:
		m.ResetPriceCents()
		return nil
	case session.FieldCancellationReason:
		m.ResetCancellationReason()
		return nil
	case session.FieldCancelRequestedBy:
		m.ResetCancelRequestedBy()
		return nil
	case session.FieldCancelledAt:
		m.ResetCancelledAt()
		return nil
	case session.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Session unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Session edge %s", name)
}

// UnavailabilityMutation represents an operation that mutates the Unavailability nodes in the graph.
type UnavailabilityMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	created_at      *time.Time
	updated_at      *time.Time
	psychologist_id *uuid.UUID
	clinic_id       *uuid.UUID
	start_time      *time.Time
	end_time        *time.Time
	reason          *string
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*Unavailability, error)
	predicates      []predicate.Unavailability
}

var _ ent.Mutation = (*UnavailabilityMutation)(nil)

// unavailabilityOption allows management of the mutation configuration using functional options.
type unavailabilityOption func(*UnavailabilityMutation)

// newUnavailabilityMutation creates new mutation for the Unavailability entity.
func newUnavailabilityMutation(c config, op Op, opts ...unavailabilityOption) *UnavailabilityMutation {
	m := &UnavailabilityMutation{
		config:        c,
		op:            op,
		typ:           TypeUnavailability,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUnavailabilityID sets the ID field of the mutation.
func withUnavailabilityID(id uuid.UUID) unavailabilityOption {
	return func(m *UnavailabilityMutation) {
		var (
			err   error
			once  sync.Once
			value *Unavailability
		)
		m.oldValue = func(ctx context.Context) (*Unavailability, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Unavailability.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUnavailability sets the old Unavailability of the mutation.
func withUnavailability(node *Unavailability) unavailabilityOption {
	return func(m *UnavailabilityMutation) {
		m.oldValue = func(context.Context) (*Unavailability, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UnavailabilityMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UnavailabilityMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Unavailability entities.
func (m *UnavailabilityMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UnavailabilityMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UnavailabilityMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Unavailability.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *UnavailabilityMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UnavailabilityMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Unavailability entity.
// If the Unavailability object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnavailabilityMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UnavailabilityMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UnavailabilityMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UnavailabilityMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Unavailability entity.
// If the Unavailability object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnavailabilityMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UnavailabilityMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetPsychologistID sets the "psychologist_id" field.
func (m *UnavailabilityMutation) SetPsychologistID(u uuid.UUID) {
	m.psychologist_id = &u
}

// PsychologistID returns the value of the "psychologist_id" field in the mutation.
func (m *UnavailabilityMutation) PsychologistID() (r uuid.UUID, exists bool) {
	v := m.psychologist_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPsychologistID returns the old "psychologist_id" field's value of the Unavailability entity.
// If the Unavailability object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnavailabilityMutation) OldPsychologistID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPsychologistID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPsychologistID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPsychologistID: %w", err)
	}
	return oldValue.PsychologistID, nil
}

// ResetPsychologistID resets all changes to the "psychologist_id" field.
func (m *UnavailabilityMutation) ResetPsychologistID() {
	m.psychologist_id = nil
}

// SetClinicID sets the "clinic_id" field.
func (m *UnavailabilityMutation) SetClinicID(u uuid.UUID) {
	m.clinic_id = &u
}

// ClinicID returns the value of the "clinic_id" field in the mutation.
func (m *UnavailabilityMutation) ClinicID() (r uuid.UUID, exists bool) {
	v := m.clinic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClinicID returns the old "clinic_id" field's value of the Unavailability entity.
// If the Unavailability object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnavailabilityMutation) OldClinicID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClinicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClinicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClinicID: %w", err)
	}
	return oldValue.ClinicID, nil
}

// ResetClinicID resets all changes to the "clinic_id" field.
func (m *UnavailabilityMutation) ResetClinicID() {
	m.clinic_id = nil
}

// SetStartTime sets the "start_time" field.
func (m *UnavailabilityMutation) SetStartTime(t time.Time) {
	m.start_time = &t
}

// StartTime returns the value of the "start_time" field in the mutation.
func (m *UnavailabilityMutation) StartTime() (r time.Time, exists bool) {
	v := m.start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTime returns the old "start_time" field's value of the Unavailability entity.
// If the Unavailability object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnavailabilityMutation) OldStartTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTime: %w", err)
	}
	return oldValue.StartTime, nil
}

// ResetStartTime resets all changes to the "start_time" field.
func (m *UnavailabilityMutation) ResetStartTime() {
	m.start_time = nil
}

// SetEndTime sets the "end_time" field.
func (m *UnavailabilityMutation) SetEndTime(t time.Time) {
	m.end_time = &t
}

// EndTime returns the value of the "end_time" field in the mutation.
func (m *UnavailabilityMutation) EndTime() (r time.Time, exists bool) {
	v := m.end_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEndTime returns the old "end_time" field's value of the Unavailability entity.
// If the Unavailability object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnavailabilityMutation) OldEndTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndTime: %w", err)
	}
	return oldValue.EndTime, nil
}

// ResetEndTime resets all changes to the "end_time" field.
func (m *UnavailabilityMutation) ResetEndTime() {
	m.end_time = nil
}

// SetReason sets the "reason" field.
func (m *UnavailabilityMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *UnavailabilityMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the Unavailability entity.
// If the Unavailability object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnavailabilityMutation) OldReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ClearReason clears the value of the "reason" field.
func (m *UnavailabilityMutation) ClearReason() {
	m.reason = nil
	m.clearedFields[unavailability.FieldReason] = struct{}{}
}

// ReasonCleared returns if the "reason" field was cleared in this mutation.
func (m *UnavailabilityMutation) ReasonCleared() bool {
	_, ok := m.clearedFields[unavailability.FieldReason]
	return ok
}

// ResetReason resets all changes to the "reason" field.
func (m *UnavailabilityMutation) ResetReason() {
	m.reason = nil
	delete(m.clearedFields, unavailability.FieldReason)
}

// Where appends a list predicates to the UnavailabilityMutation builder.
func (m *UnavailabilityMutation) Where(ps ...predicate.Unavailability) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UnavailabilityMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UnavailabilityMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Unavailability, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UnavailabilityMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UnavailabilityMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Unavailability).
func (m *UnavailabilityMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UnavailabilityMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, unavailability.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, unavailability.FieldUpdatedAt)
	}
	if m.psychologist_id != nil {
		fields = append(fields, unavailability.FieldPsychologistID)
	}
	if m.clinic_id != nil {
		fields = append(fields, unavailability.FieldClinicID)
	}
	if m.start_time != nil {
		fields = append(fields, unavailability.FieldStartTime)
	}
	if m.end_time != nil {
		fields = append(fields, unavailability.FieldEndTime)
	}
	if m.reason != nil {
		fields = append(fields, unavailability.FieldReason)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UnavailabilityMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case unavailability.FieldCreatedAt:
		return m.CreatedAt()
	case unavailability.FieldUpdatedAt:
		return m.UpdatedAt()
	case unavailability.FieldPsychologistID:
		return m.PsychologistID()
	case unavailability.FieldClinicID:
		return m.ClinicID()
	case unavailability.FieldStartTime:
		return m.StartTime()
	case unavailability.FieldEndTime:
		return m.EndTime()
	case unavailability.FieldReason:
		return m.Reason()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UnavailabilityMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case unavailability.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case unavailability.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case unavailability.FieldPsychologistID:
		return m.OldPsychologistID(ctx)
	case unavailability.FieldClinicID:
		return m.OldClinicID(ctx)
	case unavailability.FieldStartTime:
		return m.OldStartTime(ctx)
	case unavailability.FieldEndTime:
		return m.OldEndTime(ctx)
	case unavailability.FieldReason:
		return m.OldReason(ctx)
	}
	return nil, fmt.Errorf("unknown Unavailability field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UnavailabilityMutation) SetField(name string, value ent.Value) error {
	switch name {
	case unavailability.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case unavailability.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case unavailability.FieldPsychologistID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPsychologistID(v)
		return nil
	case unavailability.FieldClinicID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClinicID(v)
		return nil
	case unavailability.FieldStartTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTime(v)
		return nil
	case unavailability.FieldEndTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndTime(v)
		return nil
	case unavailability.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	}
	return fmt.Errorf("unknown Unavailability field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UnavailabilityMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UnavailabilityMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UnavailabilityMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Unavailability numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UnavailabilityMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(unavailability.FieldReason) {
		fields = append(fields, unavailability.FieldReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UnavailabilityMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UnavailabilityMutation) ClearField(name string) error {
	switch name {
	case unavailability.FieldReason:
		m.ClearReason()
		return nil
	}
	return fmt.Errorf("unknown Unavailability nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UnavailabilityMutation) ResetField(name string) error {
	switch name {
	case unavailability.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case unavailability.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case unavailability.FieldPsychologistID:
		m.ResetPsychologistID()
		return nil
	case unavailability.FieldClinicID:
		m.ResetClinicID()
		return nil
	case unavailability.FieldStartTime:
		m.ResetStartTime()
		return nil
	case unavailability.FieldEndTime:
		m.ResetEndTime()
		return nil
	case unavailability.FieldReason:
		m.ResetReason()
		return nil
	}
	return fmt.Errorf("unknown Unavailability field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UnavailabilityMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UnavailabilityMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UnavailabilityMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UnavailabilityMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UnavailabilityMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UnavailabilityMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UnavailabilityMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Unavailability unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UnavailabilityMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Unavailability edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	created_at               *time.Time
	updated_at               *time.Time
	deleted_at               *time.Time
	first_name               *string
	last_name                *string
	phone                    *string
	email                    *string
	password_hash            *string
	must_change_password     *bool
	status                   *user.Status
	phone_verified           *bool
	email_verified           *bool
	twofa_phone_enabled      *bool
	twofa_email_enabled      *bool
	timezone                 *string
	last_login_at            *time.Time
	failed_login_attempts    *int
	addfailed_login_attempts *int
	locked_until             *time.Time
	last_failed_login_at     *time.Time
	metadata                 *map[string]interface{}
	suspended_at             *time.Time
	clearedFields            map[string]struct{}
	done                     bool
	oldValue                 func(context.Context) (*User, error)
	predicates               []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id uuid.UUID) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *UserMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *UserMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *UserMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[user.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *UserMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[user.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *UserMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, user.FieldDeletedAt)
}

// SetFirstName sets the "first_name" field.
func (m *UserMutation) SetFirstName(s string) {
	m.first_name = &s
}

// FirstName returns the value of the "first_name" field in the mutation.
func (m *UserMutation) FirstName() (r string, exists bool) {
	v := m.first_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstName returns the old "first_name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldFirstName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstName: %w", err)
	}
	return oldValue.FirstName, nil
}

// ClearFirstName clears the value of the "first_name" field.
func (m *UserMutation) ClearFirstName() {
	m.first_name = nil
	m.clearedFields[user.FieldFirstName] = struct{}{}
}

// FirstNameCleared returns if the "first_name" field was cleared in this mutation.
func (m *UserMutation) FirstNameCleared() bool {
	_, ok := m.clearedFields[user.FieldFirstName]
	return ok
}

// ResetFirstName resets all changes to the "first_name" field.
func (m *UserMutation) ResetFirstName() {
	m.first_name = nil
	delete(m.clearedFields, user.FieldFirstName)
}

// SetLastName sets the "last_name" field.
func (m *UserMutation) SetLastName(s string) {
	m.last_name = &s
}

// LastName returns the value of the "last_name" field in the mutation.
func (m *UserMutation) LastName() (r string, exists bool) {
	v := m.last_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLastName returns the old "last_name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLastName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastName: %w", err)
	}
	return oldValue.LastName, nil
}

// ClearLastName clears the value of the "last_name" field.
func (m *UserMutation) ClearLastName() {
	m.last_name = nil
	m.clearedFields[user.FieldLastName] = struct{}{}
}

// LastNameCleared returns if the "last_name" field was cleared in this mutation.
func (m *UserMutation) LastNameCleared() bool {
	_, ok := m.clearedFields[user.FieldLastName]
	return ok
}

// ResetLastName resets all changes to the "last_name" field.
func (m *UserMutation) ResetLastName() {
	m.last_name = nil
	delete(m.clearedFields, user.FieldLastName)
}

// SetPhone sets the "phone" field.
func (m *UserMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *UserMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPhone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *UserMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[user.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *UserMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[user.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *UserMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, user.FieldPhone)
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *UserMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[user.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *UserMutation) EmailCleared() bool {
	_, ok := m.clearedFields[user.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, user.FieldEmail)
}

// SetPasswordHash sets the "password_hash" field.
func (m *UserMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *UserMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPasswordHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ClearPasswordHash clears the value of the "password_hash" field.
func (m *UserMutation) ClearPasswordHash() {
	m.password_hash = nil
	m.clearedFields[user.FieldPasswordHash] = struct{}{}
}

// PasswordHashCleared returns if the "password_hash" field was cleared in this mutation.
func (m *UserMutation) PasswordHashCleared() bool {
	_, ok := m.clearedFields[user.FieldPasswordHash]
	return ok
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *UserMutation) ResetPasswordHash() {
	m.password_hash = nil
	delete(m.clearedFields, user.FieldPasswordHash)
}

// SetMustChangePassword sets the "must_change_password" field.
func (m *UserMutation) SetMustChangePassword(b bool) {
	m.must_change_password = &b
}

// MustChangePassword returns the value of the "must_change_password" field in the mutation.
func (m *UserMutation) MustChangePassword() (r bool, exists bool) {
	v := m.must_change_password
	if v == nil {
		return
	}
	return *v, true
}

// OldMustChangePassword returns the old "must_change_password" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldMustChangePassword(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMustChangePassword is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMustChangePassword requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMustChangePassword: %w", err)
	}
	return oldValue.MustChangePassword, nil
}

// ResetMustChangePassword resets all changes to the "must_change_password" field.
func (m *UserMutation) ResetMustChangePassword() {
	m.must_change_password = nil
}

// SetStatus sets the "status" field.
func (m *UserMutation) SetStatus(u user.Status) {
	m.status = &u
}

// Status returns the value of the "status" field in the mutation.
func (m *UserMutation) Status() (r user.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldStatus(ctx context.Context) (v user.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *UserMutation) ResetStatus() {
	m.status = nil
}

// SetPhoneVerified sets the "phone_verified" field.
func (m *UserMutation) SetPhoneVerified(b bool) {
	m.phone_verified = &b
}

// PhoneVerified returns the value of the "phone_verified" field in the mutation.
func (m *UserMutation) PhoneVerified() (r bool, exists bool) {
	v := m.phone_verified
	if v == nil {
		return
	}
	return *v, true
}

// OldPhoneVerified returns the old "phone_verified" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPhoneVerified(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhoneVerified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhoneVerified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhoneVerified: %w", err)
	}
	return oldValue.PhoneVerified, nil
}

// ResetPhoneVerified resets all changes to the "phone_verified" field.
func (m *UserMutation) ResetPhoneVerified() {
	m.phone_verified = nil
}

// SetEmailVerified sets the "email_verified" field.
func (m *UserMutation) SetEmailVerified(b bool) {
	m.email_verified = &b
}

// EmailVerified returns the value of the "email_verified" field in the mutation.
func (m *UserMutation) EmailVerified() (r bool, exists bool) {
	v := m.email_verified
	if v == nil {
		return
	}
	return *v, true
}

// OldEmailVerified returns the old "email_verified" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmailVerified(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmailVerified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmailVerified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmailVerified: %w", err)
	}
	return oldValue.EmailVerified, nil
}

// ResetEmailVerified resets all changes to the "email_verified" field.
func (m *UserMutation) ResetEmailVerified() {
	m.email_verified = nil
}

// SetTwofaPhoneEnabled sets the "twofa_phone_enabled" field.
func (m *UserMutation) SetTwofaPhoneEnabled(b bool) {
	m.twofa_phone_enabled = &b
}

// TwofaPhoneEnabled returns the value of the "twofa_phone_enabled" field in the mutation.
func (m *UserMutation) TwofaPhoneEnabled() (r bool, exists bool) {
	v := m.twofa_phone_enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldTwofaPhoneEnabled returns the old "twofa_phone_enabled" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldTwofaPhoneEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTwofaPhoneEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTwofaPhoneEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTwofaPhoneEnabled: %w", err)
	}
	return oldValue.TwofaPhoneEnabled, nil
}

// ResetTwofaPhoneEnabled resets all changes to the "twofa_phone_enabled" field.
func (m *UserMutation) ResetTwofaPhoneEnabled() {
	m.twofa_phone_enabled = nil
}

// SetTwofaEmailEnabled sets the "twofa_email_enabled" field.
func (m *UserMutation) SetTwofaEmailEnabled(b bool) {
	m.twofa_email_enabled = &b
}

// TwofaEmailEnabled returns the value of the "twofa_email_enabled" field in the mutation.
func (m *UserMutation) TwofaEmailEnabled() (r bool, exists bool) {
	v := m.twofa_email_enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldTwofaEmailEnabled returns the old "twofa_email_enabled" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldTwofaEmailEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTwofaEmailEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTwofaEmailEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTwofaEmailEnabled: %w", err)
	}
	return oldValue.TwofaEmailEnabled, nil
}

// ResetTwofaEmailEnabled resets all changes to the "twofa_email_enabled" field.
func (m *UserMutation) ResetTwofaEmailEnabled() {
	m.twofa_email_enabled = nil
}

// SetTimezone sets the "timezone" field.
func (m *UserMutation) SetTimezone(s string) {
	m.timezone = &s
}

// Timezone returns the value of the "timezone" field in the mutation.
func (m *UserMutation) Timezone() (r string, exists bool) {
	v := m.timezone
	if v == nil {
		return
	}
	return *v, true
}

// OldTimezone returns the old "timezone" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldTimezone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimezone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimezone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimezone: %w", err)
	}
	return oldValue.Timezone, nil
}

// ResetTimezone resets all changes to the "timezone" field.
func (m *UserMutation) ResetTimezone() {
	m.timezone = nil
}

// SetLastLoginAt sets the "last_login_at" field.
func (m *UserMutation) SetLastLoginAt(t time.Time) {
	m.last_login_at = &t
}

// LastLoginAt returns the value of the "last_login_at" field in the mutation.
func (m *UserMutation) LastLoginAt() (r time.Time, exists bool) {
	v := m.last_login_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastLoginAt returns the old "last_login_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLastLoginAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastLoginAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastLoginAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastLoginAt: %w", err)
	}
	return oldValue.LastLoginAt, nil
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (m *UserMutation) ClearLastLoginAt() {
	m.last_login_at = nil
	m.clearedFields[user.FieldLastLoginAt] = struct{}{}
}

// LastLoginAtCleared returns if the "last_login_at" field was cleared in this mutation.
func (m *UserMutation) LastLoginAtCleared() bool {
	_, ok := m.clearedFields[user.FieldLastLoginAt]
	return ok
}

// ResetLastLoginAt resets all changes to the "last_login_at" field.
func (m *UserMutation) ResetLastLoginAt() {
	m.last_login_at = nil
	delete(m.clearedFields, user.FieldLastLoginAt)
}

// SetFailedLoginAttempts sets the "failed_login_attempts" field.
func (m *UserMutation) SetFailedLoginAttempts(i int) {
	m.failed_login_attempts = &i
	m.addfailed_login_attempts = nil
}

// FailedLoginAttempts returns the value of the "failed_login_attempts" field in the mutation.
func (m *UserMutation) FailedLoginAttempts() (r int, exists bool) {
	v := m.failed_login_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedLoginAttempts returns the old "failed_login_attempts" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldFailedLoginAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedLoginAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedLoginAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedLoginAttempts: %w", err)
	}
	return oldValue.FailedLoginAttempts, nil
}

// AddFailedLoginAttempts adds i to the "failed_login_attempts" field.
func (m *UserMutation) AddFailedLoginAttempts(i int) {
	if m.addfailed_login_attempts != nil {
		*m.addfailed_login_attempts += i
	} else {
		m.addfailed_login_attempts = &i
	}
}

// AddedFailedLoginAttempts returns the value that was added to the "failed_login_attempts" field in this mutation.
func (m *UserMutation) AddedFailedLoginAttempts() (r int, exists bool) {
	v := m.addfailed_login_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailedLoginAttempts resets all changes to the "failed_login_attempts" field.
func (m *UserMutation) ResetFailedLoginAttempts() {
	m.failed_login_attempts = nil
	m.addfailed_login_attempts = nil
}

// SetLockedUntil sets the "locked_until" field.
func (m *UserMutation) SetLockedUntil(t time.Time) {
	m.locked_until = &t
}

// LockedUntil returns the value of the "locked_until" field in the mutation.
func (m *UserMutation) LockedUntil() (r time.Time, exists bool) {
	v := m.locked_until
	if v == nil {
		return
	}
	return *v, true
}

// OldLockedUntil returns the old "locked_until" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLockedUntil(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLockedUntil is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLockedUntil requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLockedUntil: %w", err)
	}
	return oldValue.LockedUntil, nil
}

// ClearLockedUntil clears the value of the "locked_until" field.
func (m *UserMutation) ClearLockedUntil() {
	m.locked_until = nil
	m.clearedFields[user.FieldLockedUntil] = struct{}{}
}

// LockedUntilCleared returns if the "locked_until" field was cleared in this mutation.
func (m *UserMutation) LockedUntilCleared() bool {
	_, ok := m.clearedFields[user.FieldLockedUntil]
	return ok
}

// ResetLockedUntil resets all changes to the "locked_until" field.
func (m *UserMutation) ResetLockedUntil() {
	m.locked_until = nil
	delete(m.clearedFields, user.FieldLockedUntil)
}

// SetLastFailedLoginAt sets the "last_failed_login_at" field.
func (m *UserMutation) SetLastFailedLoginAt(t time.Time) {
	m.last_failed_login_at = &t
}

// LastFailedLoginAt returns the value of the "last_failed_login_at" field in the mutation.
func (m *UserMutation) LastFailedLoginAt() (r time.Time, exists bool) {
	v := m.last_failed_login_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastFailedLoginAt returns the old "last_failed_login_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLastFailedLoginAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastFailedLoginAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastFailedLoginAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastFailedLoginAt: %w", err)
	}
	return oldValue.LastFailedLoginAt, nil
}

// ClearLastFailedLoginAt clears the value of the "last_failed_login_at" field.
func (m *UserMutation) ClearLastFailedLoginAt() {
	m.last_failed_login_at = nil
	m.clearedFields[user.FieldLastFailedLoginAt] = struct{}{}
}

// LastFailedLoginAtCleared returns if the "last_failed_login_at" field was cleared in this mutation.
func (m *UserMutation) LastFailedLoginAtCleared() bool {
	_, ok := m.clearedFields[user.FieldLastFailedLoginAt]
	return ok
}

// ResetLastFailedLoginAt resets all changes to the "last_failed_login_at" field.
func (m *UserMutation) ResetLastFailedLoginAt() {
	m.last_failed_login_at = nil
	delete(m.clearedFields, user.FieldLastFailedLoginAt)
}

// SetMetadata sets the "metadata" field.
func (m *UserMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *UserMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *UserMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[user.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *UserMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[user.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *UserMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, user.FieldMetadata)
}

// SetSuspendedAt sets the "suspended_at" field.
func (m *UserMutation) SetSuspendedAt(t time.Time) {
	m.suspended_at = &t
}

// SuspendedAt returns the value of the "suspended_at" field in the mutation.
func (m *UserMutation) SuspendedAt() (r time.Time, exists bool) {
	v := m.suspended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSuspendedAt returns the old "suspended_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldSuspendedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuspendedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuspendedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuspendedAt: %w", err)
	}
	return oldValue.SuspendedAt, nil
}

// ClearSuspendedAt clears the value of the "suspended_at" field.
func (m *UserMutation) ClearSuspendedAt() {
	m.suspended_at = nil
	m.clearedFields[user.FieldSuspendedAt] = struct{}{}
}

// SuspendedAtCleared returns if the "suspended_at" field was cleared in this mutation.
func (m *UserMutation) SuspendedAtCleared() bool {
	_, ok := m.clearedFields[user.FieldSuspendedAt]
	return ok
}

// ResetSuspendedAt resets all changes to the "suspended_at" field.
func (m *UserMutation) ResetSuspendedAt() {
	m.suspended_at = nil
	delete(m.clearedFields, user.FieldSuspendedAt)
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 21)
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, user.FieldDeletedAt)
	}
	if m.first_name != nil {
		fields = append(fields, user.FieldFirstName)
	}
	if m.last_name != nil {
		fields = append(fields, user.FieldLastName)
	}
	if m.phone != nil {
		fields = append(fields, user.FieldPhone)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.password_hash != nil {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.must_change_password != nil {
		fields = append(fields, user.FieldMustChangePassword)
	}
	if m.status != nil {
		fields = append(fields, user.FieldStatus)
	}
	if m.phone_verified != nil {
		fields = append(fields, user.FieldPhoneVerified)
	}
	if m.email_verified != nil {
		fields = append(fields, user.FieldEmailVerified)
	}
	if m.twofa_phone_enabled != nil {
		fields = append(fields, user.FieldTwofaPhoneEnabled)
	}
	if m.twofa_email_enabled != nil {
		fields = append(fields, user.FieldTwofaEmailEnabled)
	}
	if m.timezone != nil {
		fields = append(fields, user.FieldTimezone)
	}
	if m.last_login_at != nil {
		fields = append(fields, user.FieldLastLoginAt)
	}
	if m.failed_login_attempts != nil {
		fields = append(fields, user.FieldFailedLoginAttempts)
	}
	if m.locked_until != nil {
		fields = append(fields, user.FieldLockedUntil)
	}
	if m.last_failed_login_at != nil {
		fields = append(fields, user.FieldLastFailedLoginAt)
	}
	if m.metadata != nil {
		fields = append(fields, user.FieldMetadata)
	}
	if m.suspended_at != nil {
		fields = append(fields, user.FieldSuspendedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	case user.FieldDeletedAt:
		return m.DeletedAt()
	case user.FieldFirstName:
		return m.FirstName()
	case user.FieldLastName:
		return m.LastName()
	case user.FieldPhone:
		return m.Phone()
	case user.FieldEmail:
		return m.Email()
	case user.FieldPasswordHash:
		return m.PasswordHash()
	case user.FieldMustChangePassword:
		return m.MustChangePassword()
	case user.FieldStatus:
		return m.Status()
	case user.FieldPhoneVerified:
		return m.PhoneVerified()
	case user.FieldEmailVerified:
		return m.EmailVerified()
	case user.FieldTwofaPhoneEnabled:
		return m.TwofaPhoneEnabled()
	case user.FieldTwofaEmailEnabled:
		return m.TwofaEmailEnabled()
	case user.FieldTimezone:
		return m.Timezone()
	case user.FieldLastLoginAt:
		return m.LastLoginAt()
	case user.FieldFailedLoginAttempts:
		return m.FailedLoginAttempts()
	case user.FieldLockedUntil:
		return m.LockedUntil()
	case user.FieldLastFailedLoginAt:
		return m.LastFailedLoginAt()
	case user.FieldMetadata:
		return m.Metadata()
	case user.FieldSuspendedAt:
		return m.SuspendedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case user.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case user.FieldFirstName:
		return m.OldFirstName(ctx)
	case user.FieldLastName:
		return m.OldLastName(ctx)
	case user.FieldPhone:
		return m.OldPhone(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case user.FieldMustChangePassword:
		return m.OldMustChangePassword(ctx)
	case user.FieldStatus:
		return m.OldStatus(ctx)
	case user.FieldPhoneVerified:
		return m.OldPhoneVerified(ctx)
	case user.FieldEmailVerified:
		return m.OldEmailVerified(ctx)
	case user.FieldTwofaPhoneEnabled:
		return m.OldTwofaPhoneEnabled(ctx)
	case user.FieldTwofaEmailEnabled:
		return m.OldTwofaEmailEnabled(ctx)
	case user.FieldTimezone:
		return m.OldTimezone(ctx)
	case user.FieldLastLoginAt:
		return m.OldLastLoginAt(ctx)
	case user.FieldFailedLoginAttempts:
		return m.OldFailedLoginAttempts(ctx)
	case user.FieldLockedUntil:
		return m.OldLockedUntil(ctx)
	case user.FieldLastFailedLoginAt:
		return m.OldLastFailedLoginAt(ctx)
	case user.FieldMetadata:
		return m.OldMetadata(ctx)
	case user.FieldSuspendedAt:
		return m.OldSuspendedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case user.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case user.FieldFirstName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstName(v)
		return nil
	case user.FieldLastName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastName(v)
		return nil
	case user.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case user.FieldMustChangePassword:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMustChangePassword(v)
		return nil
	case user.FieldStatus:
		v, ok := value.(user.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case user.FieldPhoneVerified:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhoneVerified(v)
		return nil
	case user.FieldEmailVerified:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmailVerified(v)
		return nil
	case user.FieldTwofaPhoneEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTwofaPhoneEnabled(v)
		return nil
	case user.FieldTwofaEmailEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTwofaEmailEnabled(v)
		return nil
	case user.FieldTimezone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimezone(v)
		return nil
	case user.FieldLastLoginAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastLoginAt(v)
		return nil
	case user.FieldFailedLoginAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedLoginAttempts(v)
		return nil
	case user.FieldLockedUntil:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLockedUntil(v)
		return nil
	case user.FieldLastFailedLoginAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastFailedLoginAt(v)
		return nil
	case user.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case user.FieldSuspendedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuspendedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	var fields []string
	if m.addfailed_login_attempts != nil {
		fields = append(fields, user.FieldFailedLoginAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case user.FieldFailedLoginAttempts:
		return m.AddedFailedLoginAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	case user.FieldFailedLoginAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailedLoginAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldDeletedAt) {
		fields = append(fields, user.FieldDeletedAt)
	}
	if m.FieldCleared(user.FieldFirstName) {
		fields = append(fields, user.FieldFirstName)
	}
	if m.FieldCleared(user.FieldLastName) {
		fields = append(fields, user.FieldLastName)
	}
	if m.FieldCleared(user.FieldPhone) {
		fields = append(fields, user.FieldPhone)
	}
	if m.FieldCleared(user.FieldEmail) {
		fields = append(fields, user.FieldEmail)
	}
	if m.FieldCleared(user.FieldPasswordHash) {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.FieldCleared(user.FieldLastLoginAt) {
		fields = append(fields, user.FieldLastLoginAt)
	}
	if m.FieldCleared(user.FieldLockedUntil) {
		fields = append(fields, user.FieldLockedUntil)
	}
	if m.FieldCleared(user.FieldLastFailedLoginAt) {
		fields = append(fields, user.FieldLastFailedLoginAt)
	}
	if m.FieldCleared(user.FieldMetadata) {
		fields = append(fields, user.FieldMetadata)
	}
	if m.FieldCleared(user.FieldSuspendedAt) {
		fields = append(fields, user.FieldSuspendedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case user.FieldFirstName:
		m.ClearFirstName()
		return nil
	case user.FieldLastName:
		m.ClearLastName()
		return nil
	case user.FieldPhone:
		m.ClearPhone()
		return nil
	case user.FieldEmail:
		m.ClearEmail()
		return nil
	case user.FieldPasswordHash:
		m.ClearPasswordHash()
		return nil
	case user.FieldLastLoginAt:
		m.ClearLastLoginAt()
		return nil
	case user.FieldLockedUntil:
		m.ClearLockedUntil()
		return nil
	case user.FieldLastFailedLoginAt:
		m.ClearLastFailedLoginAt()
		return nil
	case user.FieldMetadata:
		m.ClearMetadata()
		return nil
	case user.FieldSuspendedAt:
		m.ClearSuspendedAt()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case user.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case user.FieldFirstName:
		m.ResetFirstName()
		return nil
	case user.FieldLastName:
		m.ResetLastName()
		return nil
	case user.FieldPhone:
		m.ResetPhone()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case user.FieldMustChangePassword:
		m.ResetMustChangePassword()
		return nil
	case user.FieldStatus:
		m.ResetStatus()
		return nil
	case user.FieldPhoneVerified:
		m.ResetPhoneVerified()
		return nil
	case user.FieldEmailVerified:
		m.ResetEmailVerified()
		return nil
	case user.FieldTwofaPhoneEnabled:
		m.ResetTwofaPhoneEnabled()
		return nil
	case user.FieldTwofaEmailEnabled:
		m.ResetTwofaEmailEnabled()
		return nil
	case user.FieldTimezone:
		m.ResetTimezone()
		return nil
	case user.FieldLastLoginAt:
		m.ResetLastLoginAt()
		return nil
	case user.FieldFailedLoginAttempts:
		m.ResetFailedLoginAttempts()
		return nil
	case user.FieldLockedUntil:
		m.ResetLockedUntil()
		return nil
	case user.FieldLastFailedLoginAt:
		m.ResetLastFailedLoginAt()
		return nil
	case user.FieldMetadata:
		m.ResetMetadata()
		return nil
	case user.FieldSuspendedAt:
		m.ResetSuspendedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown User edge %s", name)
}

// UserDeviceMutation represents an operation that mutates the UserDevice nodes in the graph.
type UserDeviceMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	user_id       *uuid.UUID
	device_token  *string
	platform      *userdevice.Platform
	is_active     *bool
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*UserDevice, error)
	predicates    []predicate.UserDevice
}

var _ ent.Mutation = (*UserDeviceMutation)(nil)

// userdeviceOption allows management of the mutation configuration using functional options.
type userdeviceOption func(*UserDeviceMutation)

// newUserDeviceMutation creates new mutation for the UserDevice entity.
func newUserDeviceMutation(c config, op Op, opts ...userdeviceOption) *UserDeviceMutation {
	m := &UserDeviceMutation{
		config:        c,
		op:            op,
		typ:           TypeUserDevice,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserDeviceID sets the ID field of the mutation.
func withUserDeviceID(id uuid.UUID) userdeviceOption {
	return func(m *UserDeviceMutation) {
		var (
			err   error
			once  sync.Once
			value *UserDevice
		)
		m.oldValue = func(ctx context.Context) (*UserDevice, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserDevice.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserDevice sets the old UserDevice of the mutation.
func withUserDevice(node *UserDevice) userdeviceOption {
	return func(m *UserDeviceMutation) {
		m.oldValue = func(context.Context) (*UserDevice, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserDeviceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserDeviceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UserDevice entities.
func (m *UserDeviceMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserDeviceMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserDeviceMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserDevice.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *UserDeviceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserDeviceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UserDevice entity.
// If the UserDevice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserDeviceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserDeviceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUserID sets the "user_id" field.
func (m *UserDeviceMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UserDeviceMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UserDevice entity.
// If the UserDevice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserDeviceMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UserDeviceMutation) ResetUserID() {
	m.user_id = nil
}

// SetDeviceToken sets the "device_token" field.
func (m *UserDeviceMutation) SetDeviceToken(s string) {
	m.device_token = &s
}

// DeviceToken returns the value of the "device_token" field in the mutation.
func (m *UserDeviceMutation) DeviceToken() (r string, exists bool) {
	v := m.device_token
	if v == nil {
		return
	}
	return *v, true
}

// OldDeviceToken returns the old "device_token" field's value of the UserDevice entity.
// If the UserDevice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserDeviceMutation) OldDeviceToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeviceToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeviceToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeviceToken: %w", err)
	}
	return oldValue.DeviceToken, nil
}

// ResetDeviceToken resets all changes to the "device_token" field.
func (m *UserDeviceMutation) ResetDeviceToken() {
	m.device_token = nil
}

// SetPlatform sets the "platform" field.
func (m *UserDeviceMutation) SetPlatform(u userdevice.Platform) {
	m.platform = &u
}

// Platform returns the value of the "platform" field in the mutation.
func (m *UserDeviceMutation) Platform() (r userdevice.Platform, exists bool) {
	v := m.platform
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatform returns the old "platform" field's value of the UserDevice entity.
// If the UserDevice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserDeviceMutation) OldPlatform(ctx context.Context) (v userdevice.Platform, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatform is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatform requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatform: %w", err)
	}
	return oldValue.Platform, nil
}

// ResetPlatform resets all changes to the "platform" field.
func (m *UserDeviceMutation) ResetPlatform() {
	m.platform = nil
}

// SetIsActive sets the "is_active" field.
func (m *UserDeviceMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *UserDeviceMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the UserDevice entity.
// If the UserDevice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserDeviceMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *UserDeviceMutation) ResetIsActive() {
	m.is_active = nil
}

// Where appends a list predicates to the UserDeviceMutation builder.
func (m *UserDeviceMutation) Where(ps ...predicate.UserDevice) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserDeviceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserDeviceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserDevice, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserDeviceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserDeviceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserDevice).
func (m *UserDeviceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserDeviceMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, userdevice.FieldCreatedAt)
	}
	if m.user_id != nil {
		fields = append(fields, userdevice.FieldUserID)
	}
	if m.device_token != nil {
		fields = append(fields, userdevice.FieldDeviceToken)
	}
	if m.platform != nil {
		fields = append(fields, userdevice.FieldPlatform)
	}
	if m.is_active != nil {
		fields = append(fields, userdevice.FieldIsActive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserDeviceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case userdevice.FieldCreatedAt:
		return m.CreatedAt()
	case userdevice.FieldUserID:
		return m.UserID()
	case userdevice.FieldDeviceToken:
		return m.DeviceToken()
	case userdevice.FieldPlatform:
		return m.Platform()
	case userdevice.FieldIsActive:
		return m.IsActive()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserDeviceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case userdevice.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case userdevice.FieldUserID:
		return m.OldUserID(ctx)
	case userdevice.FieldDeviceToken:
		return m.OldDeviceToken(ctx)
	case userdevice.FieldPlatform:
		return m.OldPlatform(ctx)
	case userdevice.FieldIsActive:
		return m.OldIsActive(ctx)
	}
	return nil, fmt.Errorf("unknown UserDevice field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserDeviceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case userdevice.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case userdevice.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case userdevice.FieldDeviceToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeviceToken(v)
		return nil
	case userdevice.FieldPlatform:
		v, ok := value.(userdevice.Platform)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatform(v)
		return nil
	case userdevice.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	}
	return fmt.Errorf("unknown UserDevice field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserDeviceMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserDeviceMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserDeviceMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown UserDevice numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserDeviceMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserDeviceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserDeviceMutation) ClearField(name string) error {
	return fmt.Errorf("unknown UserDevice nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserDeviceMutation) ResetField(name string) error {
	switch name {
	case userdevice.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case userdevice.FieldUserID:
		m.ResetUserID()
		return nil
	case userdevice.FieldDeviceToken:
		m.ResetDeviceToken()
		return nil
	case userdevice.FieldPlatform:
		m.ResetPlatform()
		return nil
	case userdevice.FieldIsActive:
		m.ResetIsActive()
		return nil
	}
	return fmt.Errorf("unknown UserDevice field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserDeviceMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserDeviceMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserDeviceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserDeviceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserDeviceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserDeviceMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserDeviceMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UserDevice unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserDeviceMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UserDevice edge %s", name)
}

// UserProgressMutation represents an operation that mutates the UserProgress nodes in the graph.
type UserProgressMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	created_at        *time.Time
	updated_at        *time.Time
	user_id           *uuid.UUID
	total_points      *int
	addtotal_points   *int
	total_xp          *int
	addtotal_xp       *int
	current_level     *int
	addcurrent_level  *int
	weekly_points     *int
	addweekly_points  *int
	monthly_points    *int
	addmonthly_points *int
	week_anchor       *time.Time
	month_anchor      *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*UserProgress, error)
	predicates        []predicate.UserProgress
}

var _ ent.Mutation = (*UserProgressMutation)(nil)

// userprogressOption allows management of the mutation configuration using functional options.
type userprogressOption func(*UserProgressMutation)

// newUserProgressMutation creates new mutation for the UserProgress entity.
func newUserProgressMutation(c config, op Op, opts ...userprogressOption) *UserProgressMutation {
	m := &UserProgressMutation{
		config:        c,
		op:            op,
		typ:           TypeUserProgress,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserProgressID sets the ID field of the mutation.
func withUserProgressID(id uuid.UUID) userprogressOption {
	return func(m *UserProgressMutation) {
		var (
			err   error
			once  sync.Once
			value *UserProgress
		)
		m.oldValue = func(ctx context.Context) (*UserProgress, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserProgress.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserProgress sets the old UserProgress of the mutation.
func withUserProgress(node *UserProgress) userprogressOption {
	return func(m *UserProgressMutation) {
		m.oldValue = func(context.Context) (*UserProgress, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserProgressMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserProgressMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UserProgress entities.
func (m *UserProgressMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserProgressMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserProgressMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserProgress.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *UserProgressMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserProgressMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UserProgress entity.
// If the UserProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProgressMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserProgressMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserProgressMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserProgressMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the UserProgress entity.
// If the UserProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProgressMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserProgressMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUserID sets the "user_id" field.
func (m *UserProgressMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UserProgressMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UserProgress entity.
// If the UserProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProgressMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UserProgressMutation) ResetUserID() {
	m.user_id = nil
}

// SetTotalPoints sets the "total_points" field.
func (m *UserProgressMutation) SetTotalPoints(i int) {
	m.total_points = &i
	m.addtotal_points = nil
}

// TotalPoints returns the value of the "total_points" field in the mutation.
func (m *UserProgressMutation) TotalPoints() (r int, exists bool) {
	v := m.total_points
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalPoints returns the old "total_points" field's value of the UserProgress entity.
// If the UserProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProgressMutation) OldTotalPoints(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalPoints is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalPoints requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalPoints: %w", err)
	}
	return oldValue.TotalPoints, nil
}

// AddTotalPoints adds i to the "total_points" field.
func (m *UserProgressMutation) AddTotalPoints(i int) {
	if m.addtotal_points != nil {
		*m.addtotal_points += i
	} else {
		m.addtotal_points = &i
	}
}

// AddedTotalPoints returns the value that was added to the "total_points" field in this mutation.
func (m *UserProgressMutation) AddedTotalPoints() (r int, exists bool) {
	v := m.addtotal_points
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalPoints resets all changes to the "total_points" field.
func (m *UserProgressMutation) ResetTotalPoints() {
	m.total_points = nil
	m.addtotal_points = nil
}

// SetTotalXp sets the "total_xp" field.
func (m *UserProgressMutation) SetTotalXp(i int) {
	m.total_xp = &i
	m.addtotal_xp = nil
}

// TotalXp returns the value of the "total_xp" field in the mutation.
func (m *UserProgressMutation) TotalXp() (r int, exists bool) {
	v := m.total_xp
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalXp returns the old "total_xp" field's value of the UserProgress entity.
// If the UserProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProgressMutation) OldTotalXp(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalXp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalXp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalXp: %w", err)
	}
	return oldValue.TotalXp, nil
}

// AddTotalXp adds i to the "total_xp" field.
func (m *UserProgressMutation) AddTotalXp(i int) {
	if m.addtotal_xp != nil {
		*m.addtotal_xp += i
	} else {
		m.addtotal_xp = &i
	}
}

// AddedTotalXp returns the value that was added to the "total_xp" field in this mutation.
func (m *UserProgressMutation) AddedTotalXp() (r int, exists bool) {
	v := m.addtotal_xp
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalXp resets all changes to the "total_xp" field.
func (m *UserProgressMutation) ResetTotalXp() {
	m.total_xp = nil
	m.addtotal_xp = nil
}

// SetCurrentLevel sets the "current_level" field.
func (m *UserProgressMutation) SetCurrentLevel(i int) {
	m.current_level = &i
	m.addcurrent_level = nil
}

// CurrentLevel returns the value of the "current_level" field in the mutation.
func (m *UserProgressMutation) CurrentLevel() (r int, exists bool) {
	v := m.current_level
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentLevel returns the old "current_level" field's value of the UserProgress entity.
// If the UserProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProgressMutation) OldCurrentLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentLevel: %w", err)
	}
	return oldValue.CurrentLevel, nil
}

// AddCurrentLevel adds i to the "current_level" field.
func (m *UserProgressMutation) AddCurrentLevel(i int) {
	if m.addcurrent_level != nil {
		*m.addcurrent_level += i
	} else {
		m.addcurrent_level = &i
	}
}

// AddedCurrentLevel returns the value that was added to the "current_level" field in this mutation.
func (m *UserProgressMutation) AddedCurrentLevel() (r int, exists bool) {
	v := m.addcurrent_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentLevel resets all changes to the "current_level" field.
func (m *UserProgressMutation) ResetCurrentLevel() {
	m.current_level = nil
	m.addcurrent_level = nil
}

// SetWeeklyPoints sets the "weekly_points" field.
func (m *UserProgressMutation) SetWeeklyPoints(i int) {
	m.weekly_points = &i
	m.addweekly_points = nil
}

// WeeklyPoints returns the value of the "weekly_points" field in the mutation.
func (m *UserProgressMutation) WeeklyPoints() (r int, exists bool) {
	v := m.weekly_points
	if v == nil {
		return
	}
	return *v, true
}

// OldWeeklyPoints returns the old "weekly_points" field's value of the UserProgress entity.
// If the UserProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProgressMutation) OldWeeklyPoints(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeeklyPoints is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeeklyPoints requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeeklyPoints: %w", err)
	}
	return oldValue.WeeklyPoints, nil
}

// AddWeeklyPoints adds i to the "weekly_points" field.
func (m *UserProgressMutation) AddWeeklyPoints(i int) {
	if m.addweekly_points != nil {
		*m.addweekly_points += i
	} else {
		m.addweekly_points = &i
	}
}

// AddedWeeklyPoints returns the value that was added to the "weekly_points" field in this mutation.
func (m *UserProgressMutation) AddedWeeklyPoints() (r int, exists bool) {
	v := m.addweekly_points
	if v == nil {
		return
	}
	return *v, true
}

// ResetWeeklyPoints resets all changes to the "weekly_points" field.
func (m *UserProgressMutation) ResetWeeklyPoints() {
	m.weekly_points = nil
	m.addweekly_points = nil
}

// SetMonthlyPoints sets the "monthly_points" field.
func (m *UserProgressMutation) SetMonthlyPoints(i int) {
	m.monthly_points = &i
	m.addmonthly_points = nil
}

// MonthlyPoints returns the value of the "monthly_points" field in the mutation.
func (m *UserProgressMutation) MonthlyPoints() (r int, exists bool) {
	v := m.monthly_points
	if v == nil {
		return
	}
	return *v, true
}

// OldMonthlyPoints returns the old "monthly_points" field's value of the UserProgress entity.
// If the UserProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProgressMutation) OldMonthlyPoints(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMonthlyPoints is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMonthlyPoints requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMonthlyPoints: %w", err)
	}
	return oldValue.MonthlyPoints, nil
}

// AddMonthlyPoints adds i to the "monthly_points" field.
func (m *UserProgressMutation) AddMonthlyPoints(i int) {
	if m.addmonthly_points != nil {
		*m.addmonthly_points += i
	} else {
		m.addmonthly_points = &i
	}
}

// AddedMonthlyPoints returns the value that was added to the "monthly_points" field in this mutation.
func (m *UserProgressMutation) AddedMonthlyPoints() (r int, exists bool) {
	v := m.addmonthly_points
	if v == nil {
		return
	}
	return *v, true
}

// ResetMonthlyPoints resets all changes to the "monthly_points" field.
func (m *UserProgressMutation) ResetMonthlyPoints() {
	m.monthly_points = nil
	m.addmonthly_points = nil
}

// SetWeekAnchor sets the "week_anchor" field.
func (m *UserProgressMutation) SetWeekAnchor(t time.Time) {
	m.week_anchor = &t
}

// WeekAnchor returns the value of the "week_anchor" field in the mutation.
func (m *UserProgressMutation) WeekAnchor() (r time.Time, exists bool) {
	v := m.week_anchor
	if v == nil {
		return
	}
	return *v, true
}

// OldWeekAnchor returns the old "week_anchor" field's value of the UserProgress entity.
// If the UserProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProgressMutation) OldWeekAnchor(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeekAnchor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeekAnchor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeekAnchor: %w", err)
	}
	return oldValue.WeekAnchor, nil
}

// ClearWeekAnchor clears the value of the "week_anchor" field.
func (m *UserProgressMutation) ClearWeekAnchor() {
	m.week_anchor = nil
	m.clearedFields[userprogress.FieldWeekAnchor] = struct{}{}
}

// WeekAnchorCleared returns if the "week_anchor" field was cleared in this mutation.
func (m *UserProgressMutation) WeekAnchorCleared() bool {
	_, ok := m.clearedFields[userprogress.FieldWeekAnchor]
	return ok
}

// ResetWeekAnchor resets all changes to the "week_anchor" field.
func (m *UserProgressMutation) ResetWeekAnchor() {
	m.week_anchor = nil
	delete(m.clearedFields, userprogress.FieldWeekAnchor)
}

// SetMonthAnchor sets the "month_anchor" field.
func (m *UserProgressMutation) SetMonthAnchor(t time.Time) {
	m.month_anchor = &t
}

// MonthAnchor returns the value of the "month_anchor" field in the mutation.
func (m *UserProgressMutation) MonthAnchor() (r time.Time, exists bool) {
	v := m.month_anchor
	if v == nil {
		return
	}
	return *v, true
}

// OldMonthAnchor returns the old "month_anchor" field's value of the UserProgress entity.
// If the UserProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProgressMutation) OldMonthAnchor(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMonthAnchor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMonthAnchor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMonthAnchor: %w", err)
	}
	return oldValue.MonthAnchor, nil
}

// ClearMonthAnchor clears the value of the "month_anchor" field.
func (m *UserProgressMutation) ClearMonthAnchor() {
	m.month_anchor = nil
	m.clearedFields[userprogress.FieldMonthAnchor] = struct{}{}
}

// MonthAnchorCleared returns if the "month_anchor" field was cleared in this mutation.
func (m *UserProgressMutation) MonthAnchorCleared() bool {
	_, ok := m.clearedFields[userprogress.FieldMonthAnchor]
	return ok
}

// ResetMonthAnchor resets all changes to the "month_anchor" field.
func (m *UserProgressMutation) ResetMonthAnchor() {
	m.month_anchor = nil
	delete(m.clearedFields, userprogress.FieldMonthAnchor)
}

// Where appends a list predicates to the UserProgressMutation builder.
func (m *UserProgressMutation) Where(ps ...predicate.UserProgress) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserProgressMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserProgressMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserProgress, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserProgressMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserProgressMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserProgress).
func (m *UserProgressMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserProgressMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, userprogress.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, userprogress.FieldUpdatedAt)
	}
	if m.user_id != nil {
		fields = append(fields, userprogress.FieldUserID)
	}
	if m.total_points != nil {
		fields = append(fields, userprogress.FieldTotalPoints)
	}
	if m.total_xp != nil {
		fields = append(fields, userprogress.FieldTotalXp)
	}
	if m.current_level != nil {
		fields = append(fields, userprogress.FieldCurrentLevel)
	}
	if m.weekly_points != nil {
		fields = append(fields, userprogress.FieldWeeklyPoints)
	}
	if m.monthly_points != nil {
		fields = append(fields, userprogress.FieldMonthlyPoints)
	}
	if m.week_anchor != nil {
		fields = append(fields, userprogress.FieldWeekAnchor)
	}
	if m.month_anchor != nil {
		fields = append(fields, userprogress.FieldMonthAnchor)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserProgressMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case userprogress.FieldCreatedAt:
		return m.CreatedAt()
	case userprogress.FieldUpdatedAt:
		return m.UpdatedAt()
	case userprogress.FieldUserID:
		return m.UserID()
	case userprogress.FieldTotalPoints:
		return m.TotalPoints()
	case userprogress.FieldTotalXp:
		return m.TotalXp()
	case userprogress.FieldCurrentLevel:
		return m.CurrentLevel()
	case userprogress.FieldWeeklyPoints:
		return m.WeeklyPoints()
	case userprogress.FieldMonthlyPoints:
		return m.MonthlyPoints()
	case userprogress.FieldWeekAnchor:
		return m.WeekAnchor()
	case userprogress.FieldMonthAnchor:
		return m.MonthAnchor()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserProgressMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case userprogress.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case userprogress.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case userprogress.FieldUserID:
		return m.OldUserID(ctx)
	case userprogress.FieldTotalPoints:
		return m.OldTotalPoints(ctx)
	case userprogress.FieldTotalXp:
		return m.OldTotalXp(ctx)
	case userprogress.FieldCurrentLevel:
		return m.OldCurrentLevel(ctx)
	case userprogress.FieldWeeklyPoints:
		return m.OldWeeklyPoints(ctx)
	case userprogress.FieldMonthlyPoints:
		return m.OldMonthlyPoints(ctx)
	case userprogress.FieldWeekAnchor:
		return m.OldWeekAnchor(ctx)
	case userprogress.FieldMonthAnchor:
		return m.OldMonthAnchor(ctx)
	}
	return nil, fmt.Errorf("unknown UserProgress field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserProgressMutation) SetField(name string, value ent.Value) error {
	switch name {
	case userprogress.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case userprogress.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case userprogress.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case userprogress.FieldTotalPoints:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalPoints(v)
		return nil
	case userprogress.FieldTotalXp:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalXp(v)
		return nil
	case userprogress.FieldCurrentLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentLevel(v)
		return nil
	case userprogress.FieldWeeklyPoints:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeeklyPoints(v)
		return nil
	case userprogress.FieldMonthlyPoints:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMonthlyPoints(v)
		return nil
	case userprogress.FieldWeekAnchor:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeekAnchor(v)
		return nil
	case userprogress.FieldMonthAnchor:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMonthAnchor(v)
		return nil
	}
	return fmt.Errorf("unknown UserProgress field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserProgressMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_points != nil {
		fields = append(fields, userprogress.FieldTotalPoints)
	}
	if m.addtotal_xp != nil {
		fields = append(fields, userprogress.FieldTotalXp)
	}
	if m.addcurrent_level != nil {
		fields = append(fields, userprogress.FieldCurrentLevel)
	}
	if m.addweekly_points != nil {
		fields = append(fields, userprogress.FieldWeeklyPoints)
	}
	if m.addmonthly_points != nil {
		fields = append(fields, userprogress.FieldMonthlyPoints)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserProgressMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case userprogress.FieldTotalPoints:
		return m.AddedTotalPoints()
	case userprogress.FieldTotalXp:
		return m.AddedTotalXp()
	case userprogress.FieldCurrentLevel:
		return m.AddedCurrentLevel()
	case userprogress.FieldWeeklyPoints:
		return m.AddedWeeklyPoints()
	case userprogress.FieldMonthlyPoints:
		return m.AddedMonthlyPoints()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserProgressMutation) AddField(name string, value ent.Value) error {
	switch name {
	case userprogress.FieldTotalPoints:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalPoints(v)
		return nil
	case userprogress.FieldTotalXp:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalXp(v)
		return nil
	case userprogress.FieldCurrentLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentLevel(v)
		return nil
	case userprogress.FieldWeeklyPoints:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWeeklyPoints(v)
		return nil
	case userprogress.FieldMonthlyPoints:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMonthlyPoints(v)
		return nil
	}
	return fmt.Errorf("unknown UserProgress numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserProgressMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(userprogress.FieldWeekAnchor) {
		fields = append(fields, userprogress.FieldWeekAnchor)
	}
	if m.FieldCleared(userprogress.FieldMonthAnchor) {
		fields = append(fields, userprogress.FieldMonthAnchor)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserProgressMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserProgressMutation) ClearField(name string) error {
	switch name {
	case userprogress.FieldWeekAnchor:
		m.ClearWeekAnchor()
		return nil
	case userprogress.FieldMonthAnchor:
		m.ClearMonthAnchor()
		return nil
	}
	return fmt.Errorf("unknown UserProgress nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserProgressMutation) ResetField(name string) error {
	switch name {
	case userprogress.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case userprogress.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case userprogress.FieldUserID:
		m.ResetUserID()
		return nil
	case userprogress.FieldTotalPoints:
		m.ResetTotalPoints()
		return nil
	case userprogress.FieldTotalXp:
		m.ResetTotalXp()
		return nil
	case userprogress.FieldCurrentLevel:
		m.ResetCurrentLevel()
		return nil
	case userprogress.FieldWeeklyPoints:
		m.ResetWeeklyPoints()
		return nil
	case userprogress.FieldMonthlyPoints:
		m.ResetMonthlyPoints()
		return nil
	case userprogress.FieldWeekAnchor:
		m.ResetWeekAnchor()
		return nil
	case userprogress.FieldMonthAnchor:
		m.ResetMonthAnchor()
		return nil
	}
	return fmt.Errorf("unknown UserProgress field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserProgressMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserProgressMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserProgressMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserProgressMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserProgressMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserProgressMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserProgressMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UserProgress unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserProgressMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UserProgress edge %s", name)
}

// UserSessionMutation represents an operation that mutates the UserSession nodes in the graph.
type UserSessionMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	created_at         *time.Time
	updated_at         *time.Time
	session_id         *string
	refresh_token_hash *string
	user_agent         *string
	ip_address         *string
	expires_at         *time.Time
	last_used_at       *time.Time
	revoked_at         *time.Time
	clearedFields      map[string]struct{}
	user               *uuid.UUID
	cleareduser        bool
	done               bool
	oldValue           func(context.Context) (*UserSession, error)
	predicates         []predicate.UserSession
}

var _ ent.Mutation = (*UserSessionMutation)(nil)

// usersessionOption allows management of the mutation configuration using functional options.
type usersessionOption func(*UserSessionMutation)

// newUserSessionMutation creates new mutation for the UserSession entity.
func newUserSessionMutation(c config, op Op, opts ...usersessionOption) *UserSessionMutation {
	m := &UserSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeUserSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserSessionID sets the ID field of the mutation.
func withUserSessionID(id uuid.UUID) usersessionOption {
	return func(m *UserSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *UserSession
		)
		m.oldValue = func(ctx context.Context) (*UserSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserSession sets the old UserSession of the mutation.
func withUserSession(node *UserSession) usersessionOption {
	return func(m *UserSessionMutation) {
		m.oldValue = func(context.Context) (*UserSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UserSession entities.
func (m *UserSessionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserSessionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserSessionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *UserSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserSessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserSessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserSessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUserID sets the "user_id" field.
func (m *UserSessionMutation) SetUserID(u uuid.UUID) {
	m.user = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UserSessionMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UserSessionMutation) ResetUserID() {
	m.user = nil
}

// SetSessionID sets the "session_id" field.
func (m *UserSessionMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *UserSessionMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *UserSessionMutation) ResetSessionID() {
	m.session_id = nil
}

// SetRefreshTokenHash sets the "refresh_token_hash" field.
func (m *UserSessionMutation) SetRefreshTokenHash(s string) {
	m.refresh_token_hash = &s
}

// RefreshTokenHash returns the value of the "refresh_token_hash" field in the mutation.
func (m *UserSessionMutation) RefreshTokenHash() (r string, exists bool) {
	v := m.refresh_token_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldRefreshTokenHash returns the old "refresh_token_hash" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldRefreshTokenHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRefreshTokenHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRefreshTokenHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRefreshTokenHash: %w", err)
	}
	return oldValue.RefreshTokenHash, nil
}

// ClearRefreshTokenHash clears the value of the "refresh_token_hash" field.
func (m *UserSessionMutation) ClearRefreshTokenHash() {
	m.refresh_token_hash = nil
	m.clearedFields[usersession.FieldRefreshTokenHash] = struct{}{}
}

// RefreshTokenHashCleared returns if the "refresh_token_hash" field was cleared in this mutation.
func (m *UserSessionMutation) RefreshTokenHashCleared() bool {
	_, ok := m.clearedFields[usersession.FieldRefreshTokenHash]
	return ok
}

// ResetRefreshTokenHash resets all changes to the "refresh_token_hash" field.
func (m *UserSessionMutation) ResetRefreshTokenHash() {
	m.refresh_token_hash = nil
	delete(m.clearedFields, usersession.FieldRefreshTokenHash)
}

// SetUserAgent sets the "user_agent" field.
func (m *UserSessionMutation) SetUserAgent(s string) {
	m.user_agent = &s
}

// UserAgent returns the value of the "user_agent" field in the mutation.
func (m *UserSessionMutation) UserAgent() (r string, exists bool) {
	v := m.user_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldUserAgent returns the old "user_agent" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldUserAgent(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserAgent: %w", err)
	}
	return oldValue.UserAgent, nil
}

// ClearUserAgent clears the value of the "user_agent" field.
func (m *UserSessionMutation) ClearUserAgent() {
	m.user_agent = nil
	m.clearedFields[usersession.FieldUserAgent] = struct{}{}
}

// UserAgentCleared returns if the "user_agent" field was cleared in this mutation.
func (m *UserSessionMutation) UserAgentCleared() bool {
	_, ok := m.clearedFields[usersession.FieldUserAgent]
	return ok
}

// ResetUserAgent resets all changes to the "user_agent" field.
func (m *UserSessionMutation) ResetUserAgent() {
	m.user_agent = nil
	delete(m.clearedFields, usersession.FieldUserAgent)
}

// SetIPAddress sets the "ip_address" field.
func (m *UserSessionMutation) SetIPAddress(s string) {
	m.ip_address = &s
}

// IPAddress returns the value of the "ip_address" field in the mutation.
func (m *UserSessionMutation) IPAddress() (r string, exists bool) {
	v := m.ip_address
	if v == nil {
		return
	}
	return *v, true
}

// OldIPAddress returns the old "ip_address" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldIPAddress(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIPAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIPAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIPAddress: %w", err)
	}
	return oldValue.IPAddress, nil
}

// ClearIPAddress clears the value of the "ip_address" field.
func (m *UserSessionMutation) ClearIPAddress() {
	m.ip_address = nil
	m.clearedFields[usersession.FieldIPAddress] = struct{}{}
}

// IPAddressCleared returns if the "ip_address" field was cleared in this mutation.
func (m *UserSessionMutation) IPAddressCleared() bool {
	_, ok := m.clearedFields[usersession.FieldIPAddress]
	return ok
}

// ResetIPAddress resets all changes to the "ip_address" field.
func (m *UserSessionMutation) ResetIPAddress() {
	m.ip_address = nil
	delete(m.clearedFields, usersession.FieldIPAddress)
}

// SetExpiresAt sets the "expires_at" field.
func (m *UserSessionMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *UserSessionMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *UserSessionMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetLastUsedAt sets the "last_used_at" field.
func (m *UserSessionMutation) SetLastUsedAt(t time.Time) {
	m.last_used_at = &t
}

// LastUsedAt returns the value of the "last_used_at" field in the mutation.
func (m *UserSessionMutation) LastUsedAt() (r time.Time, exists bool) {
	v := m.last_used_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUsedAt returns the old "last_used_at" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldLastUsedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUsedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUsedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUsedAt: %w", err)
	}
	return oldValue.LastUsedAt, nil
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (m *UserSessionMutation) ClearLastUsedAt() {
	m.last_used_at = nil
	m.clearedFields[usersession.FieldLastUsedAt] = struct{}{}
}

// LastUsedAtCleared returns if the "last_used_at" field was cleared in this mutation.
func (m *UserSessionMutation) LastUsedAtCleared() bool {
	_, ok := m.clearedFields[usersession.FieldLastUsedAt]
	return ok
}

// ResetLastUsedAt resets all changes to the "last_used_at" field.
func (m *UserSessionMutation) ResetLastUsedAt() {
	m.last_used_at = nil
	delete(m.clearedFields, usersession.FieldLastUsedAt)
}

// SetRevokedAt sets the "revoked_at" field.
func (m *UserSessionMutation) SetRevokedAt(t time.Time) {
	m.revoked_at = &t
}

// RevokedAt returns the value of the "revoked_at" field in the mutation.
func (m *UserSessionMutation) RevokedAt() (r time.Time, exists bool) {
	v := m.revoked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRevokedAt returns the old "revoked_at" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldRevokedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRevokedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRevokedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRevokedAt: %w", err)
	}
	return oldValue.RevokedAt, nil
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (m *UserSessionMutation) ClearRevokedAt() {
	m.revoked_at = nil
	m.clearedFields[usersession.FieldRevokedAt] = struct{}{}
}

// RevokedAtCleared returns if the "revoked_at" field was cleared in this mutation.
func (m *UserSessionMutation) RevokedAtCleared() bool {
	_, ok := m.clearedFields[usersession.FieldRevokedAt]
	return ok
}

// ResetRevokedAt resets all changes to the "revoked_at" field.
func (m *UserSessionMutation) ResetRevokedAt() {
	m.revoked_at = nil
	delete(m.clearedFields, usersession.FieldRevokedAt)
}

// ClearUser clears the "user" edge to the User entity.
func (m *UserSessionMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[usersession.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *UserSessionMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *UserSessionMutation) UserIDs() (ids []uuid.UUID) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *UserSessionMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the UserSessionMutation builder.
func (m *UserSessionMutation) Where(ps ...predicate.UserSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserSession).
func (m *UserSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserSessionMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, usersession.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, usersession.FieldUpdatedAt)
	}
	if m.user != nil {
		fields = append(fields, usersession.FieldUserID)
	}
	if m.session_id != nil {
		fields = append(fields, usersession.FieldSessionID)
	}
	if m.refresh_token_hash != nil {
		fields = append(fields, usersession.FieldRefreshTokenHash)
	}
	if m.user_agent != nil {
		fields = append(fields, usersession.FieldUserAgent)
	}
	if m.ip_address != nil {
		fields = append(fields, usersession.FieldIPAddress)
	}
	if m.expires_at != nil {
		fields = append(fields, usersession.FieldExpiresAt)
	}
	if m.last_used_at != nil {
		fields = append(fields, usersession.FieldLastUsedAt)
	}
	if m.revoked_at != nil {
		fields = append(fields, usersession.FieldRevokedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case usersession.FieldCreatedAt:
		return m.CreatedAt()
	case usersession.FieldUpdatedAt:
		return m.UpdatedAt()
	case usersession.FieldUserID:
		return m.UserID()
	case usersession.FieldSessionID:
		return m.SessionID()
	case usersession.FieldRefreshTokenHash:
		return m.RefreshTokenHash()
	case usersession.FieldUserAgent:
		return m.UserAgent()
	case usersession.FieldIPAddress:
		return m.IPAddress()
	case usersession.FieldExpiresAt:
		return m.ExpiresAt()
	case usersession.FieldLastUsedAt:
		return m.LastUsedAt()
	case usersession.FieldRevokedAt:
		return m.RevokedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case usersession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case usersession.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case usersession.FieldUserID:
		return m.OldUserID(ctx)
	case usersession.FieldSessionID:
		return m.OldSessionID(ctx)
	case usersession.FieldRefreshTokenHash:
		return m.OldRefreshTokenHash(ctx)
	case usersession.FieldUserAgent:
		return m.OldUserAgent(ctx)
	case usersession.FieldIPAddress:
		return m.OldIPAddress(ctx)
	case usersession.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case usersession.FieldLastUsedAt:
		return m.OldLastUsedAt(ctx)
	case usersession.FieldRevokedAt:
		return m.OldRevokedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UserSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case usersession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case usersession.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case usersession.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case usersession.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case usersession.FieldRefreshTokenHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRefreshTokenHash(v)
		return nil
	case usersession.FieldUserAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserAgent(v)
		return nil
	case usersession.FieldIPAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIPAddress(v)
		return nil
	case usersession.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case usersession.FieldLastUsedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUsedAt(v)
		return nil
	case usersession.FieldRevokedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRevokedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UserSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserSessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserSessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown UserSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(usersession.FieldRefreshTokenHash) {
		fields = append(fields, usersession.FieldRefreshTokenHash)
	}
	if m.FieldCleared(usersession.FieldUserAgent) {
		fields = append(fields, usersession.FieldUserAgent)
	}
	if m.FieldCleared(usersession.FieldIPAddress) {
		fields = append(fields, usersession.FieldIPAddress)
	}
	if m.FieldCleared(usersession.FieldLastUsedAt) {
		fields = append(fields, usersession.FieldLastUsedAt)
	}
	if m.FieldCleared(usersession.FieldRevokedAt) {
		fields = append(fields, usersession.FieldRevokedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserSessionMutation) ClearField(name string) error {
	switch name {
	case usersession.FieldRefreshTokenHash:
		m.ClearRefreshTokenHash()
		return nil
	case usersession.FieldUserAgent:
		m.ClearUserAgent()
		return nil
	case usersession.FieldIPAddress:
		m.ClearIPAddress()
		return nil
	case usersession.FieldLastUsedAt:
		m.ClearLastUsedAt()
		return nil
	case usersession.FieldRevokedAt:
		m.ClearRevokedAt()
		return nil
	}
	return fmt.Errorf("unknown UserSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserSessionMutation) ResetField(name string) error {
	switch name {
	case usersession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case usersession.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case usersession.FieldUserID:
		m.ResetUserID()
		return nil
	case usersession.FieldSessionID:
		m.ResetSessionID()
		return nil
	case usersession.FieldRefreshTokenHash:
		m.ResetRefreshTokenHash()
		return nil
	case usersession.FieldUserAgent:
		m.ResetUserAgent()
		return nil
	case usersession.FieldIPAddress:
		m.ResetIPAddress()
		return nil
	case usersession.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case usersession.FieldLastUsedAt:
		m.ResetLastUsedAt()
		return nil
	case usersession.FieldRevokedAt:
		m.ResetRevokedAt()
		return nil
	}
	return fmt.Errorf("unknown UserSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, usersession.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case usersession.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, usersession.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case usersession.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserSessionMutation) ClearEdge(name string) error {
	switch name {
	case usersession.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown UserSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserSessionMutation) ResetEdge(name string) error {
	switch name {
	case usersession.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown UserSession edge %s", name)
}
