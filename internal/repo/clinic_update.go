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
	"github.com/amparasaude/ampara_backend/internal/repo/clinicpermission"
	"github.com/amparasaude/ampara_backend/internal/repo/clinicsettings"
	"github.com/amparasaude/ampara_backend/internal/repo/patient"
	"github.com/amparasaude/ampara_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ClinicUpdate is the builder for updating Clinic entities.
type ClinicUpdate struct {
	config
	hooks    []Hook
	mutation *ClinicMutation
}

// Where appends a list predicates to the ClinicUpdate builder.
func (_u *ClinicUpdate) Where(ps ...predicate.Clinic) *ClinicUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClinicUpdate) SetUpdatedAt(v time.Time) *ClinicUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ClinicUpdate) SetDeletedAt(v time.Time) *ClinicUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableDeletedAt(v *time.Time) *ClinicUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ClinicUpdate) ClearDeletedAt() *ClinicUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetName sets the "name" field.
func (_u *ClinicUpdate) SetName(v string) *ClinicUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableName(v *string) *ClinicUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *ClinicUpdate) SetSlug(v string) *ClinicUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableSlug(v *string) *ClinicUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ClinicUpdate) SetDescription(v string) *ClinicUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableDescription(v *string) *ClinicUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ClinicUpdate) ClearDescription() *ClinicUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *ClinicUpdate) SetPhone(v string) *ClinicUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillablePhone(v *string) *ClinicUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *ClinicUpdate) ClearPhone() *ClinicUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetAddress sets the "address" field.
func (_u *ClinicUpdate) SetAddress(v string) *ClinicUpdate {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableAddress(v *string) *ClinicUpdate {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *ClinicUpdate) ClearAddress() *ClinicUpdate {
	_u.mutation.ClearAddress()
	return _u
}

// SetCity sets the "city" field.
func (_u *ClinicUpdate) SetCity(v string) *ClinicUpdate {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableCity(v *string) *ClinicUpdate {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *ClinicUpdate) ClearCity() *ClinicUpdate {
	_u.mutation.ClearCity()
	return _u
}

// SetState sets the "state" field.
func (_u *ClinicUpdate) SetState(v string) *ClinicUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableState(v *string) *ClinicUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// ClearState clears the value of the "state" field.
func (_u *ClinicUpdate) ClearState() *ClinicUpdate {
	_u.mutation.ClearState()
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *ClinicUpdate) SetTimezone(v string) *ClinicUpdate {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableTimezone(v *string) *ClinicUpdate {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ClinicUpdate) SetIsActive(v bool) *ClinicUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableIsActive(v *bool) *ClinicUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetIsVerified sets the "is_verified" field.
func (_u *ClinicUpdate) SetIsVerified(v bool) *ClinicUpdate {
	_u.mutation.SetIsVerified(v)
	return _u
}

// SetNillableIsVerified sets the "is_verified" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableIsVerified(v *bool) *ClinicUpdate {
	if v != nil {
		_u.SetIsVerified(*v)
	}
	return _u
}

// AddMemberIDs adds the "members" edge to the ClinicMember entity by IDs.
func (_u *ClinicUpdate) AddMemberIDs(ids ...uuid.UUID) *ClinicUpdate {
	_u.mutation.AddMemberIDs(ids...)
	return _u
}

// AddMembers adds the "members" edges to the ClinicMember entity.
func (_u *ClinicUpdate) AddMembers(v ...*ClinicMember) *ClinicUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMemberIDs(ids...)
}

// AddPatientIDs adds the "patients" edge to the Patient entity by IDs.
func (_u *ClinicUpdate) AddPatientIDs(ids ...uuid.UUID) *ClinicUpdate {
	_u.mutation.AddPatientIDs(ids...)
	return _u
}

// AddPatients adds the "patients" edges to the Patient entity.
func (_u *ClinicUpdate) AddPatients(v ...*Patient) *ClinicUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPatientIDs(ids...)
}

// AddPermissionIDs adds the "permissions" edge to the ClinicPermission entity by IDs.
func (_u *ClinicUpdate) AddPermissionIDs(ids ...uuid.UUID) *ClinicUpdate {
	_u.mutation.AddPermissionIDs(ids...)
	return _u
}

// AddPermissions adds the "permissions" edges to the ClinicPermission entity.
func (_u *ClinicUpdate) AddPermissions(v ...*ClinicPermission) *ClinicUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPermissionIDs(ids...)
}

// SetSettingsID sets the "settings" edge to the ClinicSettings entity by ID.
func (_u *ClinicUpdate) SetSettingsID(id uuid.UUID) *ClinicUpdate {
	_u.mutation.SetSettingsID(id)
	return _u
}

// SetNillableSettingsID sets the "settings" edge to the ClinicSettings entity by ID if the given value is not nil.
func (_u *ClinicUpdate) SetNillableSettingsID(id *uuid.UUID) *ClinicUpdate {
	if id != nil {
		_u = _u.SetSettingsID(*id)
	}
	return _u
}

// SetSettings sets the "settings" edge to the ClinicSettings entity.
func (_u *ClinicUpdate) SetSettings(v *ClinicSettings) *ClinicUpdate {
	return _u.SetSettingsID(v.ID)
}

// Mutation returns the ClinicMutation object of the builder.
func (_u *ClinicUpdate) Mutation() *ClinicMutation {
	return _u.mutation
}

// ClearMembers clears all "members" edges to the ClinicMember entity.
func (_u *ClinicUpdate) ClearMembers() *ClinicUpdate {
	_u.mutation.ClearMembers()
	return _u
}

// RemoveMemberIDs removes the "members" edge to ClinicMember entities by IDs.
func (_u *ClinicUpdate) RemoveMemberIDs(ids ...uuid.UUID) *ClinicUpdate {
	_u.mutation.RemoveMemberIDs(ids...)
	return _u
}

// RemoveMembers removes "members" edges to ClinicMember entities.
func (_u *ClinicUpdate) RemoveMembers(v ...*ClinicMember) *ClinicUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMemberIDs(ids...)
}

// ClearPatients clears all "patients" edges to the Patient entity.
func (_u *ClinicUpdate) ClearPatients() *ClinicUpdate {
	_u.mutation.ClearPatients()
	return _u
}

// RemovePatientIDs removes the "patients" edge to Patient entities by IDs.
func (_u *ClinicUpdate) RemovePatientIDs(ids ...uuid.UUID) *ClinicUpdate {
	_u.mutation.RemovePatientIDs(ids...)
	return _u
}

// RemovePatients removes "patients" edges to Patient entities.
func (_u *ClinicUpdate) RemovePatients(v ...*Patient) *ClinicUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePatientIDs(ids...)
}

// ClearPermissions clears all "permissions" edges to the ClinicPermission entity.
func (_u *ClinicUpdate) ClearPermissions() *ClinicUpdate {
	_u.mutation.ClearPermissions()
	return _u
}

// RemovePermissionIDs removes the "permissions" edge to ClinicPermission entities by IDs.
func (_u *ClinicUpdate) RemovePermissionIDs(ids ...uuid.UUID) *ClinicUpdate {
	_u.mutation.RemovePermissionIDs(ids...)
	return _u
}

// RemovePermissions removes "permissions" edges to ClinicPermission entities.
func (_u *ClinicUpdate) RemovePermissions(v ...*ClinicPermission) *ClinicUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePermissionIDs(ids...)
}

// ClearSettings clears the "settings" edge to the ClinicSettings entity.
func (_u *ClinicUpdate) ClearSettings() *ClinicUpdate {
	_u.mutation.ClearSettings()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ClinicUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClinicUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ClinicUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClinicUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClinicUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := clinic.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClinicUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := clinic.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Clinic.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := clinic.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "Clinic.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := clinic.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "Clinic.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.City(); ok {
		if err := clinic.CityValidator(v); err != nil {
			return &ValidationError{Name: "city", err: fmt.Errorf(`repo: validator failed for field "Clinic.city": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := clinic.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`repo: validator failed for field "Clinic.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Timezone(); ok {
		if err := clinic.TimezoneValidator(v); err != nil {
			return &ValidationError{Name: "timezone", err: fmt.Errorf(`repo: validator failed for field "Clinic.timezone": %w`, err)}
		}
	}
	return nil
}

func (_u *ClinicUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(clinic.Table, clinic.Columns, sqlgraph.NewFieldSpec(clinic.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(clinic.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(clinic.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(clinic.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(clinic.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(clinic.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(clinic.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(clinic.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(clinic.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(clinic.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(clinic.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(clinic.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(clinic.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(clinic.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(clinic.FieldState, field.TypeString, value)
	}
	if _u.mutation.StateCleared() {
		_spec.ClearField(clinic.FieldState, field.TypeString)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(clinic.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(clinic.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsVerified(); ok {
		_spec.SetField(clinic.FieldIsVerified, field.TypeBool, value)
	}
	if _u.mutation.MembersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMembersIDs(); len(nodes) > 0 && !_u.mutation.MembersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MembersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PatientsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPatientsIDs(); len(nodes) > 0 && !_u.mutation.PatientsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PermissionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPermissionsIDs(); len(nodes) > 0 && !_u.mutation.PermissionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PermissionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SettingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SettingsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{clinic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ClinicUpdateOne is the builder for updating a single Clinic entity.
type ClinicUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ClinicMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClinicUpdateOne) SetUpdatedAt(v time.Time) *ClinicUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ClinicUpdateOne) SetDeletedAt(v time.Time) *ClinicUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableDeletedAt(v *time.Time) *ClinicUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ClinicUpdateOne) ClearDeletedAt() *ClinicUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetName sets the "name" field.
func (_u *ClinicUpdateOne) SetName(v string) *ClinicUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableName(v *string) *ClinicUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *ClinicUpdateOne) SetSlug(v string) *ClinicUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableSlug(v *string) *ClinicUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ClinicUpdateOne) SetDescription(v string) *ClinicUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableDescription(v *string) *ClinicUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ClinicUpdateOne) ClearDescription() *ClinicUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *ClinicUpdateOne) SetPhone(v string) *ClinicUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillablePhone(v *string) *ClinicUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *ClinicUpdateOne) ClearPhone() *ClinicUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetAddress sets the "address" field.
func (_u *ClinicUpdateOne) SetAddress(v string) *ClinicUpdateOne {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableAddress(v *string) *ClinicUpdateOne {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *ClinicUpdateOne) ClearAddress() *ClinicUpdateOne {
	_u.mutation.ClearAddress()
	return _u
}

// SetCity sets the "city" field.
func (_u *ClinicUpdateOne) SetCity(v string) *ClinicUpdateOne {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableCity(v *string) *ClinicUpdateOne {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *ClinicUpdateOne) ClearCity() *ClinicUpdateOne {
	_u.mutation.ClearCity()
	return _u
}

// SetState sets the "state" field.
func (_u *ClinicUpdateOne) SetState(v string) *ClinicUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableState(v *string) *ClinicUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// ClearState clears the value of the "state" field.
func (_u *ClinicUpdateOne) ClearState() *ClinicUpdateOne {
	_u.mutation.ClearState()
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *ClinicUpdateOne) SetTimezone(v string) *ClinicUpdateOne {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableTimezone(v *string) *ClinicUpdateOne {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ClinicUpdateOne) SetIsActive(v bool) *ClinicUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableIsActive(v *bool) *ClinicUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetIsVerified sets the "is_verified" field.
func (_u *ClinicUpdateOne) SetIsVerified(v bool) *ClinicUpdateOne {
	_u.mutation.SetIsVerified(v)
	return _u
}

// SetNillableIsVerified sets the "is_verified" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableIsVerified(v *bool) *ClinicUpdateOne {
	if v != nil {
		_u.SetIsVerified(*v)
	}
	return _u
}

// AddMemberIDs adds the "members" edge to the ClinicMember entity by IDs.
func (_u *ClinicUpdateOne) AddMemberIDs(ids ...uuid.UUID) *ClinicUpdateOne {
	_u.mutation.AddMemberIDs(ids...)
	return _u
}

// AddMembers adds the "members" edges to the ClinicMember entity.
func (_u *ClinicUpdateOne) AddMembers(v ...*ClinicMember) *ClinicUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMemberIDs(ids...)
}

// AddPatientIDs adds the "patients" edge to the Patient entity by IDs.
func (_u *ClinicUpdateOne) AddPatientIDs(ids ...uuid.UUID) *ClinicUpdateOne {
	_u.mutation.AddPatientIDs(ids...)
	return _u
}

// AddPatients adds the "patients" edges to the Patient entity.
func (_u *ClinicUpdateOne) AddPatients(v ...*Patient) *ClinicUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPatientIDs(ids...)
}

// AddPermissionIDs adds the "permissions" edge to the ClinicPermission entity by IDs.
func (_u *ClinicUpdateOne) AddPermissionIDs(ids ...uuid.UUID) *ClinicUpdateOne {
	_u.mutation.AddPermissionIDs(ids...)
	return _u
}

// AddPermissions adds the "permissions" edges to the ClinicPermission entity.
func (_u *ClinicUpdateOne) AddPermissions(v ...*ClinicPermission) *ClinicUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPermissionIDs(ids...)
}

// SetSettingsID sets the "settings" edge to the ClinicSettings entity by ID.
func (_u *ClinicUpdateOne) SetSettingsID(id uuid.UUID) *ClinicUpdateOne {
	_u.mutation.SetSettingsID(id)
	return _u
}

// SetNillableSettingsID sets the "settings" edge to the ClinicSettings entity by ID if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableSettingsID(id *uuid.UUID) *ClinicUpdateOne {
	if id != nil {
		_u = _u.SetSettingsID(*id)
	}
	return _u
}

// SetSettings sets the "settings" edge to the ClinicSettings entity.
func (_u *ClinicUpdateOne) SetSettings(v *ClinicSettings) *ClinicUpdateOne {
	return _u.SetSettingsID(v.ID)
}

// Mutation returns the ClinicMutation object of the builder.
func (_u *ClinicUpdateOne) Mutation() *ClinicMutation {
	return _u.mutation
}

// ClearMembers clears all "members" edges to the ClinicMember entity.
func (_u *ClinicUpdateOne) ClearMembers() *ClinicUpdateOne {
	_u.mutation.ClearMembers()
	return _u
}

// RemoveMemberIDs removes the "members" edge to ClinicMember entities by IDs.
func (_u *ClinicUpdateOne) RemoveMemberIDs(ids ...uuid.UUID) *ClinicUpdateOne {
	_u.mutation.RemoveMemberIDs(ids...)
	return _u
}

// RemoveMembers removes "members" edges to ClinicMember entities.
func (_u *ClinicUpdateOne) RemoveMembers(v ...*ClinicMember) *ClinicUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMemberIDs(ids...)
}

// ClearPatients clears all "patients" edges to the Patient entity.
func (_u *ClinicUpdateOne) ClearPatients() *ClinicUpdateOne {
	_u.mutation.ClearPatients()
	return _u
}

// RemovePatientIDs removes the "patients" edge to Patient entities by IDs.
func (_u *ClinicUpdateOne) RemovePatientIDs(ids ...uuid.UUID) *ClinicUpdateOne {
	_u.mutation.RemovePatientIDs(ids...)
	return _u
}

// RemovePatients removes "patients" edges to Patient entities.
func (_u *ClinicUpdateOne) RemovePatients(v ...*Patient) *ClinicUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePatientIDs(ids...)
}

// ClearPermissions clears all "permissions" edges to the ClinicPermission entity.
func (_u *ClinicUpdateOne) ClearPermissions() *ClinicUpdateOne {
	_u.mutation.ClearPermissions()
	return _u
}

// RemovePermissionIDs removes the "permissions" edge to ClinicPermission entities by IDs.
func (_u *ClinicUpdateOne) RemovePermissionIDs(ids ...uuid.UUID) *ClinicUpdateOne {
	_u.mutation.RemovePermissionIDs(ids...)
	return _u
}

// RemovePermissions removes "permissions" edges to ClinicPermission entities.
func (_u *ClinicUpdateOne) RemovePermissions(v ...*ClinicPermission) *ClinicUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePermissionIDs(ids...)
}

// ClearSettings clears the "settings" edge to the ClinicSettings entity.
func (_u *ClinicUpdateOne) ClearSettings() *ClinicUpdateOne {
	_u.mutation.ClearSettings()
	return _u
}

// Where appends a list predicates to the ClinicUpdate builder.
func (_u *ClinicUpdateOne) Where(ps ...predicate.Clinic) *ClinicUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ClinicUpdateOne) Select(field string, fields ...string) *ClinicUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Clinic entity.
func (_u *ClinicUpdateOne) Save(ctx context.Context) (*Clinic, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClinicUpdateOne) SaveX(ctx context.Context) *Clinic {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ClinicUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClinicUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClinicUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := clinic.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClinicUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := clinic.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Clinic.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := clinic.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "Clinic.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := clinic.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "Clinic.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.City(); ok {
		if err := clinic.CityValidator(v); err != nil {
			return &ValidationError{Name: "city", err: fmt.Errorf(`repo: validator failed for field "Clinic.city": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := clinic.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`repo: validator failed for field "Clinic.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Timezone(); ok {
		if err := clinic.TimezoneValidator(v); err != nil {
			return &ValidationError{Name: "timezone", err: fmt.Errorf(`repo: validator failed for field "Clinic.timezone": %w`, err)}
		}
	}
	return nil
}

func (_u *ClinicUpdateOne) sqlSave(ctx context.Context) (_node *Clinic, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(clinic.Table, clinic.Columns, sqlgraph.NewFieldSpec(clinic.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Clinic.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, clinic.FieldID)
		for _, f := range fields {
			if !clinic.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != clinic.FieldID {
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
		_spec.SetField(clinic.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(clinic.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(clinic.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(clinic.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(clinic.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(clinic.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(clinic.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(clinic.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(clinic.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(clinic.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(clinic.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(clinic.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(clinic.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(clinic.FieldState, field.TypeString, value)
	}
	if _u.mutation.StateCleared() {
		_spec.ClearField(clinic.FieldState, field.TypeString)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(clinic.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(clinic.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsVerified(); ok {
		_spec.SetField(clinic.FieldIsVerified, field.TypeBool, value)
	}
	if _u.mutation.MembersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMembersIDs(); len(nodes) > 0 && !_u.mutation.MembersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MembersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PatientsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPatientsIDs(); len(nodes) > 0 && !_u.mutation.PatientsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PermissionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPermissionsIDs(); len(nodes) > 0 && !_u.mutation.PermissionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PermissionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SettingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SettingsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Clinic{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{clinic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
