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
	"github.com/amparasaude/ampara_backend/internal/repo/clinicpermission"
	"github.com/amparasaude/ampara_backend/internal/repo/clinicsettings"
	"github.com/amparasaude/ampara_backend/internal/repo/patient"
	"github.com/google/uuid"
)

// ClinicCreate is the builder for creating a Clinic entity.
type ClinicCreate struct {
	config
	mutation *ClinicMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *ClinicCreate) SetCreatedAt(v time.Time) *ClinicCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableCreatedAt(v *time.Time) *ClinicCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ClinicCreate) SetUpdatedAt(v time.Time) *ClinicCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableUpdatedAt(v *time.Time) *ClinicCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *ClinicCreate) SetDeletedAt(v time.Time) *ClinicCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableDeletedAt(v *time.Time) *ClinicCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *ClinicCreate) SetName(v string) *ClinicCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetSlug sets the "slug" field.
func (_c *ClinicCreate) SetSlug(v string) *ClinicCreate {
	_c.mutation.SetSlug(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ClinicCreate) SetDescription(v string) *ClinicCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableDescription(v *string) *ClinicCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *ClinicCreate) SetPhone(v string) *ClinicCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *ClinicCreate) SetNillablePhone(v *string) *ClinicCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetAddress sets the "address" field.
func (_c *ClinicCreate) SetAddress(v string) *ClinicCreate {
	_c.mutation.SetAddress(v)
	return _c
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableAddress(v *string) *ClinicCreate {
	if v != nil {
		_c.SetAddress(*v)
	}
	return _c
}

// SetCity sets the "city" field.
func (_c *ClinicCreate) SetCity(v string) *ClinicCreate {
	_c.mutation.SetCity(v)
	return _c
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableCity(v *string) *ClinicCreate {
	if v != nil {
		_c.SetCity(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *ClinicCreate) SetState(v string) *ClinicCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableState(v *string) *ClinicCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetTimezone sets the "timezone" field.
func (_c *ClinicCreate) SetTimezone(v string) *ClinicCreate {
	_c.mutation.SetTimezone(v)
	return _c
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableTimezone(v *string) *ClinicCreate {
	if v != nil {
		_c.SetTimezone(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *ClinicCreate) SetIsActive(v bool) *ClinicCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableIsActive(v *bool) *ClinicCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetIsVerified sets the "is_verified" field.
func (_c *ClinicCreate) SetIsVerified(v bool) *ClinicCreate {
	_c.mutation.SetIsVerified(v)
	return _c
}

// SetNillableIsVerified sets the "is_verified" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableIsVerified(v *bool) *ClinicCreate {
	if v != nil {
		_c.SetIsVerified(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ClinicCreate) SetID(v uuid.UUID) *ClinicCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableID(v *uuid.UUID) *ClinicCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddMemberIDs adds the "members" edge to the ClinicMember entity by IDs.
func (_c *ClinicCreate) AddMemberIDs(ids ...uuid.UUID) *ClinicCreate {
	_c.mutation.AddMemberIDs(ids...)
	return _c
}

// AddMembers adds the "members" edges to the ClinicMember entity.
func (_c *ClinicCreate) AddMembers(v ...*ClinicMember) *ClinicCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMemberIDs(ids...)
}

// AddPatientIDs adds the "patients" edge to the Patient entity by IDs.
func (_c *ClinicCreate) AddPatientIDs(ids ...uuid.UUID) *ClinicCreate {
	_c.mutation.AddPatientIDs(ids...)
	return _c
}

// AddPatients adds the "patients" edges to the Patient entity.
func (_c *ClinicCreate) AddPatients(v ...*Patient) *ClinicCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPatientIDs(ids...)
}

// AddPermissionIDs adds the "permissions" edge to the ClinicPermission entity by IDs.
func (_c *ClinicCreate) AddPermissionIDs(ids ...uuid.UUID) *ClinicCreate {
	_c.mutation.AddPermissionIDs(ids...)
	return _c
}

// AddPermissions adds the "permissions" edges to the ClinicPermission entity.
func (_c *ClinicCreate) AddPermissions(v ...*ClinicPermission) *ClinicCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPermissionIDs(ids...)
}

// SetSettingsID sets the "settings" edge to the ClinicSettings entity by ID.
func (_c *ClinicCreate) SetSettingsID(id uuid.UUID) *ClinicCreate {
	_c.mutation.SetSettingsID(id)
	return _c
}

// SetNillableSettingsID sets the "settings" edge to the ClinicSettings entity by ID if the given value is not nil.
func (_c *ClinicCreate) SetNillableSettingsID(id *uuid.UUID) *ClinicCreate {
	if id != nil {
		_c = _c.SetSettingsID(*id)
	}
	return _c
}

// SetSettings sets the "settings" edge to the ClinicSettings entity.
func (_c *ClinicCreate) SetSettings(v *ClinicSettings) *ClinicCreate {
	return _c.SetSettingsID(v.ID)
}

// Mutation returns the ClinicMutation object of the builder.
func (_c *ClinicCreate) Mutation() *ClinicMutation {
	return _c.mutation
}

// Save creates the Clinic in the database.
func (_c *ClinicCreate) Save(ctx context.Context) (*Clinic, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ClinicCreate) SaveX(ctx context.Context) *Clinic {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClinicCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClinicCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ClinicCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := clinic.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := clinic.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Timezone(); !ok {
		v := clinic.DefaultTimezone
		_c.mutation.SetTimezone(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := clinic.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.IsVerified(); !ok {
		v := clinic.DefaultIsVerified
		_c.mutation.SetIsVerified(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := clinic.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ClinicCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Clinic.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Clinic.updated_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "Clinic.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := clinic.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Clinic.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`repo: missing required field "Clinic.slug"`)}
	}
	if v, ok := _c.mutation.Slug(); ok {
		if err := clinic.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "Clinic.slug": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Phone(); ok {
		if err := clinic.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "Clinic.phone": %w`, err)}
		}
	}
	if v, ok := _c.mutation.City(); ok {
		if err := clinic.CityValidator(v); err != nil {
			return &ValidationError{Name: "city", err: fmt.Errorf(`repo: validator failed for field "Clinic.city": %w`, err)}
		}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := clinic.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`repo: validator failed for field "Clinic.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Timezone(); !ok {
		return &ValidationError{Name: "timezone", err: errors.New(`repo: missing required field "Clinic.timezone"`)}
	}
	if v, ok := _c.mutation.Timezone(); ok {
		if err := clinic.TimezoneValidator(v); err != nil {
			return &ValidationError{Name: "timezone", err: fmt.Errorf(`repo: validator failed for field "Clinic.timezone": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`repo: missing required field "Clinic.is_active"`)}
	}
	if _, ok := _c.mutation.IsVerified(); !ok {
		return &ValidationError{Name: "is_verified", err: errors.New(`repo: missing required field "Clinic.is_verified"`)}
	}
	return nil
}

func (_c *ClinicCreate) sqlSave(ctx context.Context) (*Clinic, error) {
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

func (_c *ClinicCreate) createSpec() (*Clinic, *sqlgraph.CreateSpec) {
	var (
		_node = &Clinic{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(clinic.Table, sqlgraph.NewFieldSpec(clinic.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(clinic.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(clinic.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(clinic.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(clinic.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Slug(); ok {
		_spec.SetField(clinic.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(clinic.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(clinic.FieldPhone, field.TypeString, value)
		_node.Phone = &value
	}
	if value, ok := _c.mutation.Address(); ok {
		_spec.SetField(clinic.FieldAddress, field.TypeString, value)
		_node.Address = &value
	}
	if value, ok := _c.mutation.City(); ok {
		_spec.SetField(clinic.FieldCity, field.TypeString, value)
		_node.City = &value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(clinic.FieldState, field.TypeString, value)
		_node.State = &value
	}
	if value, ok := _c.mutation.Timezone(); ok {
		_spec.SetField(clinic.FieldTimezone, field.TypeString, value)
		_node.Timezone = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(clinic.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.IsVerified(); ok {
		_spec.SetField(clinic.FieldIsVerified, field.TypeBool, value)
		_node.IsVerified = value
	}
	if nodes := _c.mutation.MembersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   clinic.MembersTable,
			Columns: []string{clinic.MembersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clinicmember.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PatientsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   clinic.PatientsTable,
			Columns: []string{clinic.PatientsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PermissionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   clinic.PermissionsTable,
			Columns: []string{clinic.PermissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clinicpermission.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SettingsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   clinic.SettingsTable,
			Columns: []string{clinic.SettingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clinicsettings.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Clinic.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ClinicUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ClinicCreate) OnConflict(opts ...sql.ConflictOption) *ClinicUpsertOne {
	_c.conflict = opts
	return &ClinicUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Clinic.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ClinicCreate) OnConflictColumns(columns ...string) *ClinicUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ClinicUpsertOne{
		create: _c,
	}
}

type (
	// ClinicUpsertOne is the builder for "upsert"-ing
	//  one Clinic node.
	ClinicUpsertOne struct {
		create *ClinicCreate
	}

	// ClinicUpsert is the "OnConflict" setter.
	ClinicUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *ClinicUpsert) SetUpdatedAt(v time.Time) *ClinicUpsert {
	u.Set(clinic.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ClinicUpsert) UpdateUpdatedAt() *ClinicUpsert {
	u.SetExcluded(clinic.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ClinicUpsert) SetDeletedAt(v time.Time) *ClinicUpsert {
	u.Set(clinic.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ClinicUpsert) UpdateDeletedAt() *ClinicUpsert {
	u.SetExcluded(clinic.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ClinicUpsert) ClearDeletedAt() *ClinicUpsert {
	u.SetNull(clinic.FieldDeletedAt)
	return u
}

// SetName sets the "name" field.
func (u *ClinicUpsert) SetName(v string) *ClinicUpsert {
	u.Set(clinic.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ClinicUpsert) UpdateName() *ClinicUpsert {
	u.SetExcluded(clinic.FieldName)
	return u
}

// SetSlug sets the "slug" field.
func (u *ClinicUpsert) SetSlug(v string) *ClinicUpsert {
	u.Set(clinic.FieldSlug, v)
	return u
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *ClinicUpsert) UpdateSlug() *ClinicUpsert {
	u.SetExcluded(clinic.FieldSlug)
	return u
}

// SetDescription sets the "description" field.
func (u *ClinicUpsert) SetDescription(v string) *ClinicUpsert {
	u.Set(clinic.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ClinicUpsert) UpdateDescription() *ClinicUpsert {
	u.SetExcluded(clinic.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *ClinicUpsert) ClearDescription() *ClinicUpsert {
	u.SetNull(clinic.FieldDescription)
	return u
}

// SetPhone sets the "phone" field.
func (u *ClinicUpsert) SetPhone(v string) *ClinicUpsert {
	u.Set(clinic.FieldPhone, v)
	return u
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *ClinicUpsert) UpdatePhone() *ClinicUpsert {
	u.SetExcluded(clinic.FieldPhone)
	return u
}

// ClearPhone clears the value of the "phone" field.
func (u *ClinicUpsert) ClearPhone() *ClinicUpsert {
	u.SetNull(clinic.FieldPhone)
	return u
}

// SetAddress sets the "address" field.
func (u *ClinicUpsert) SetAddress(v string) *ClinicUpsert {
	u.Set(clinic.FieldAddress, v)
	return u
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *ClinicUpsert) UpdateAddress() *ClinicUpsert {
	u.SetExcluded(clinic.FieldAddress)
	return u
}

// ClearAddress clears the value of the "address" field.
func (u *ClinicUpsert) ClearAddress() *ClinicUpsert {
	u.SetNull(clinic.FieldAddress)
	return u
}

// SetCity sets the "city" field.
func (u *ClinicUpsert) SetCity(v string) *ClinicUpsert {
	u.Set(clinic.FieldCity, v)
	return u
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *ClinicUpsert) UpdateCity() *ClinicUpsert {
	u.SetExcluded(clinic.FieldCity)
	return u
}

// ClearCity clears the value of the "city" field.
func (u *ClinicUpsert) ClearCity() *ClinicUpsert {
	u.SetNull(clinic.FieldCity)
	return u
}

// SetState sets the "state" field.
func (u *ClinicUpsert) SetState(v string) *ClinicUpsert {
	u.Set(clinic.FieldState, v)
	return u
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *ClinicUpsert) UpdateState() *ClinicUpsert {
	u.SetExcluded(clinic.FieldState)
	return u
}

// ClearState clears the value of the "state" field.
func (u *ClinicUpsert) ClearState() *ClinicUpsert {
	u.SetNull(clinic.FieldState)
	return u
}

// SetTimezone sets the "timezone" field.
func (u *ClinicUpsert) SetTimezone(v string) *ClinicUpsert {
	u.Set(clinic.FieldTimezone, v)
	return u
}

// UpdateTimezone sets the "timezone" field to the value that was provided on create.
func (u *ClinicUpsert) UpdateTimezone() *ClinicUpsert {
	u.SetExcluded(clinic.FieldTimezone)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *ClinicUpsert) SetIsActive(v bool) *ClinicUpsert {
	u.Set(clinic.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *ClinicUpsert) UpdateIsActive() *ClinicUpsert {
	u.SetExcluded(clinic.FieldIsActive)
	return u
}

// SetIsVerified sets the "is_verified" field.
func (u *ClinicUpsert) SetIsVerified(v bool) *ClinicUpsert {
	u.Set(clinic.FieldIsVerified, v)
	return u
}

// UpdateIsVerified sets the "is_verified" field to the value that was provided on create.
func (u *ClinicUpsert) UpdateIsVerified() *ClinicUpsert {
	u.SetExcluded(clinic.FieldIsVerified)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Clinic.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(clinic.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ClinicUpsertOne) UpdateNewValues() *ClinicUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(clinic.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(clinic.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Clinic.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ClinicUpsertOne) Ignore() *ClinicUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ClinicUpsertOne) DoNothing() *ClinicUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ClinicCreate.OnConflict
// documentation for more info.
func (u *ClinicUpsertOne) Update(set func(*ClinicUpsert)) *ClinicUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ClinicUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ClinicUpsertOne) SetUpdatedAt(v time.Time) *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ClinicUpsertOne) UpdateUpdatedAt() *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ClinicUpsertOne) SetDeletedAt(v time.Time) *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ClinicUpsertOne) UpdateDeletedAt() *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ClinicUpsertOne) ClearDeletedAt() *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.ClearDeletedAt()
	})
}

// SetName sets the "name" field.
func (u *ClinicUpsertOne) SetName(v string) *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ClinicUpsertOne) UpdateName() *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateName()
	})
}

// SetSlug sets the "slug" field.
func (u *ClinicUpsertOne) SetSlug(v string) *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.SetSlug(v)
	})
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *ClinicUpsertOne) UpdateSlug() *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateSlug()
	})
}

// SetDescription sets the "description" field.
func (u *ClinicUpsertOne) SetDescription(v string) *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ClinicUpsertOne) UpdateDescription() *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *ClinicUpsertOne) ClearDescription() *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.ClearDescription()
	})
}

// SetPhone sets the "phone" field.
func (u *ClinicUpsertOne) SetPhone(v string) *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *ClinicUpsertOne) UpdatePhone() *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *ClinicUpsertOne) ClearPhone() *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.ClearPhone()
	})
}

// SetAddress sets the "address" field.
func (u *ClinicUpsertOne) SetAddress(v string) *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.SetAddress(v)
	})
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *ClinicUpsertOne) UpdateAddress() *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateAddress()
	})
}

// ClearAddress clears the value of the "address" field.
func (u *ClinicUpsertOne) ClearAddress() *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.ClearAddress()
	})
}

// SetCity sets the "city" field.
func (u *ClinicUpsertOne) SetCity(v string) *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.SetCity(v)
	})
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *ClinicUpsertOne) UpdateCity() *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateCity()
	})
}

// ClearCity clears the value of the "city" field.
func (u *ClinicUpsertOne) ClearCity() *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.ClearCity()
	})
}

// SetState sets the "state" field.
func (u *ClinicUpsertOne) SetState(v string) *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *ClinicUpsertOne) UpdateState() *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateState()
	})
}

// ClearState clears the value of the "state" field.
func (u *ClinicUpsertOne) ClearState() *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.ClearState()
	})
}

// SetTimezone sets the "timezone" field.
func (u *ClinicUpsertOne) SetTimezone(v string) *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.SetTimezone(v)
	})
}

// UpdateTimezone sets the "timezone" field to the value that was provided on create.
func (u *ClinicUpsertOne) UpdateTimezone() *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateTimezone()
	})
}

// SetIsActive sets the "is_active" field.
func (u *ClinicUpsertOne) SetIsActive(v bool) *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *ClinicUpsertOne) UpdateIsActive() *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateIsActive()
	})
}

// SetIsVerified sets the "is_verified" field.
func (u *ClinicUpsertOne) SetIsVerified(v bool) *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.SetIsVerified(v)
	})
}

// UpdateIsVerified sets the "is_verified" field to the value that was provided on create.
func (u *ClinicUpsertOne) UpdateIsVerified() *ClinicUpsertOne {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateIsVerified()
	})
}

// Exec executes the query.
func (u *ClinicUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ClinicCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ClinicUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ClinicUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: ClinicUpsertOne.ID is not supported by MySQL driver. Use ClinicUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ClinicUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ClinicCreateBulk is the builder for creating many Clinic entities in bulk.
type ClinicCreateBulk struct {
	config
	err      error
	builders []*ClinicCreate
	conflict []sql.ConflictOption
}

// Save creates the Clinic entities in the database.
func (_c *ClinicCreateBulk) Save(ctx context.Context) ([]*Clinic, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Clinic, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ClinicMutation)
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
func (_c *ClinicCreateBulk) SaveX(ctx context.Context) []*Clinic {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClinicCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClinicCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Clinic.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ClinicUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ClinicCreateBulk) OnConflict(opts ...sql.ConflictOption) *ClinicUpsertBulk {
	_c.conflict = opts
	return &ClinicUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Clinic.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ClinicCreateBulk) OnConflictColumns(columns ...string) *ClinicUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ClinicUpsertBulk{
		create: _c,
	}
}

// ClinicUpsertBulk is the builder for "upsert"-ing
// a bulk of Clinic nodes.
type ClinicUpsertBulk struct {
	create *ClinicCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Clinic.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(clinic.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ClinicUpsertBulk) UpdateNewValues() *ClinicUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(clinic.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(clinic.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Clinic.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ClinicUpsertBulk) Ignore() *ClinicUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ClinicUpsertBulk) DoNothing() *ClinicUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ClinicCreateBulk.OnConflict
// documentation for more info.
func (u *ClinicUpsertBulk) Update(set func(*ClinicUpsert)) *ClinicUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ClinicUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ClinicUpsertBulk) SetUpdatedAt(v time.Time) *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ClinicUpsertBulk) UpdateUpdatedAt() *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ClinicUpsertBulk) SetDeletedAt(v time.Time) *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ClinicUpsertBulk) UpdateDeletedAt() *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ClinicUpsertBulk) ClearDeletedAt() *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.ClearDeletedAt()
	})
}

// SetName sets the "name" field.
func (u *ClinicUpsertBulk) SetName(v string) *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ClinicUpsertBulk) UpdateName() *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateName()
	})
}

// SetSlug sets the "slug" field.
func (u *ClinicUpsertBulk) SetSlug(v string) *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.SetSlug(v)
	})
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *ClinicUpsertBulk) UpdateSlug() *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateSlug()
	})
}

// SetDescription sets the "description" field.
func (u *ClinicUpsertBulk) SetDescription(v string) *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ClinicUpsertBulk) UpdateDescription() *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *ClinicUpsertBulk) ClearDescription() *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.ClearDescription()
	})
}

// SetPhone sets the "phone" field.
func (u *ClinicUpsertBulk) SetPhone(v string) *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *ClinicUpsertBulk) UpdatePhone() *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *ClinicUpsertBulk) ClearPhone() *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.ClearPhone()
	})
}

// SetAddress sets the "address" field.
func (u *ClinicUpsertBulk) SetAddress(v string) *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.SetAddress(v)
	})
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *ClinicUpsertBulk) UpdateAddress() *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateAddress()
	})
}

// ClearAddress clears the value of the "address" field.
func (u *ClinicUpsertBulk) ClearAddress() *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.ClearAddress()
	})
}

// SetCity sets the "city" field.
func (u *ClinicUpsertBulk) SetCity(v string) *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.SetCity(v)
	})
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *ClinicUpsertBulk) UpdateCity() *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateCity()
	})
}

// ClearCity clears the value of the "city" field.
func (u *ClinicUpsertBulk) ClearCity() *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.ClearCity()
	})
}

// SetState sets the "state" field.
func (u *ClinicUpsertBulk) SetState(v string) *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *ClinicUpsertBulk) UpdateState() *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateState()
	})
}

// ClearState clears the value of the "state" field.
func (u *ClinicUpsertBulk) ClearState() *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.ClearState()
	})
}

// SetTimezone sets the "timezone" field.
func (u *ClinicUpsertBulk) SetTimezone(v string) *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.SetTimezone(v)
	})
}

// UpdateTimezone sets the "timezone" field to the value that was provided on create.
func (u *ClinicUpsertBulk) UpdateTimezone() *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateTimezone()
	})
}

// SetIsActive sets the "is_active" field.
func (u *ClinicUpsertBulk) SetIsActive(v bool) *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *ClinicUpsertBulk) UpdateIsActive() *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateIsActive()
	})
}

// SetIsVerified sets the "is_verified" field.
func (u *ClinicUpsertBulk) SetIsVerified(v bool) *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.SetIsVerified(v)
	})
}

// UpdateIsVerified sets the "is_verified" field to the value that was provided on create.
func (u *ClinicUpsertBulk) UpdateIsVerified() *ClinicUpsertBulk {
	return u.Update(func(s *ClinicUpsert) {
		s.UpdateIsVerified()
	})
}

// Exec executes the query.
func (u *ClinicUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the ClinicCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ClinicCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ClinicUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
