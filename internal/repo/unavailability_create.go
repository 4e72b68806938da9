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
	"github.com/amparasaude/ampara_backend/internal/repo/unavailability"
	"github.com/google/uuid"
)

// UnavailabilityCreate is the builder for creating a Unavailability entity.
type UnavailabilityCreate struct {
	config
	mutation *UnavailabilityMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *UnavailabilityCreate) SetCreatedAt(v time.Time) *UnavailabilityCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UnavailabilityCreate) SetNillableCreatedAt(v *time.Time) *UnavailabilityCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *UnavailabilityCreate) SetUpdatedAt(v time.Time) *UnavailabilityCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *UnavailabilityCreate) SetNillableUpdatedAt(v *time.Time) *UnavailabilityCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPsychologistID sets the "psychologist_id" field.
func (_c *UnavailabilityCreate) SetPsychologistID(v uuid.UUID) *UnavailabilityCreate {
	_c.mutation.SetPsychologistID(v)
	return _c
}

// SetClinicID sets the "clinic_id" field.
func (_c *UnavailabilityCreate) SetClinicID(v uuid.UUID) *UnavailabilityCreate {
	_c.mutation.SetClinicID(v)
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *UnavailabilityCreate) SetStartTime(v time.Time) *UnavailabilityCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetEndTime sets the "end_time" field.
func (_c *UnavailabilityCreate) SetEndTime(v time.Time) *UnavailabilityCreate {
	_c.mutation.SetEndTime(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *UnavailabilityCreate) SetReason(v string) *UnavailabilityCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *UnavailabilityCreate) SetNillableReason(v *string) *UnavailabilityCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UnavailabilityCreate) SetID(v uuid.UUID) *UnavailabilityCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *UnavailabilityCreate) SetNillableID(v *uuid.UUID) *UnavailabilityCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the UnavailabilityMutation object of the builder.
func (_c *UnavailabilityCreate) Mutation() *UnavailabilityMutation {
	return _c.mutation
}

// Save creates the Unavailability in the database.
func (_c *UnavailabilityCreate) Save(ctx context.Context) (*Unavailability, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UnavailabilityCreate) SaveX(ctx context.Context) *Unavailability {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UnavailabilityCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UnavailabilityCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UnavailabilityCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := unavailability.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := unavailability.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := unavailability.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UnavailabilityCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Unavailability.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Unavailability.updated_at"`)}
	}
	if _, ok := _c.mutation.PsychologistID(); !ok {
		return &ValidationError{Name: "psychologist_id", err: errors.New(`repo: missing required field "Unavailability.psychologist_id"`)}
	}
	if _, ok := _c.mutation.ClinicID(); !ok {
		return &ValidationError{Name: "clinic_id", err: errors.New(`repo: missing required field "Unavailability.clinic_id"`)}
	}
	if _, ok := _c.mutation.StartTime(); !ok {
		return &ValidationError{Name: "start_time", err: errors.New(`repo: missing required field "Unavailability.start_time"`)}
	}
	if _, ok := _c.mutation.EndTime(); !ok {
		return &ValidationError{Name: "end_time", err: errors.New(`repo: missing required field "Unavailability.end_time"`)}
	}
	if v, ok := _c.mutation.Reason(); ok {
		if err := unavailability.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`repo: validator failed for field "Unavailability.reason": %w`, err)}
		}
	}
	return nil
}

func (_c *UnavailabilityCreate) sqlSave(ctx context.Context) (*Unavailability, error) {
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

func (_c *UnavailabilityCreate) createSpec() (*Unavailability, *sqlgraph.CreateSpec) {
	var (
		_node = &Unavailability{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(unavailability.Table, sqlgraph.NewFieldSpec(unavailability.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(unavailability.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(unavailability.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.PsychologistID(); ok {
		_spec.SetField(unavailability.FieldPsychologistID, field.TypeUUID, value)
		_node.PsychologistID = value
	}
	if value, ok := _c.mutation.ClinicID(); ok {
		_spec.SetField(unavailability.FieldClinicID, field.TypeUUID, value)
		_node.ClinicID = value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(unavailability.FieldStartTime, field.TypeTime, value)
		_node.StartTime = value
	}
	if value, ok := _c.mutation.EndTime(); ok {
		_spec.SetField(unavailability.FieldEndTime, field.TypeTime, value)
		_node.EndTime = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(unavailability.FieldReason, field.TypeString, value)
		_node.Reason = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Unavailability.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UnavailabilityUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *UnavailabilityCreate) OnConflict(opts ...sql.ConflictOption) *UnavailabilityUpsertOne {
	_c.conflict = opts
	return &UnavailabilityUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Unavailability.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UnavailabilityCreate) OnConflictColumns(columns ...string) *UnavailabilityUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UnavailabilityUpsertOne{
		create: _c,
	}
}

type (
	// UnavailabilityUpsertOne is the builder for "upsert"-ing
	//  one Unavailability node.
	UnavailabilityUpsertOne struct {
		create *UnavailabilityCreate
	}

	// UnavailabilityUpsert is the "OnConflict" setter.
	UnavailabilityUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *UnavailabilityUpsert) SetUpdatedAt(v time.Time) *UnavailabilityUpsert {
	u.Set(unavailability.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UnavailabilityUpsert) UpdateUpdatedAt() *UnavailabilityUpsert {
	u.SetExcluded(unavailability.FieldUpdatedAt)
	return u
}

// SetPsychologistID sets the "psychologist_id" field.
func (u *UnavailabilityUpsert) SetPsychologistID(v uuid.UUID) *UnavailabilityUpsert {
	u.Set(unavailability.FieldPsychologistID, v)
	return u
}

// UpdatePsychologistID sets the "psychologist_id" field to the value that was provided on create.
func (u *UnavailabilityUpsert) UpdatePsychologistID() *UnavailabilityUpsert {
	u.SetExcluded(unavailability.FieldPsychologistID)
	return u
}

// SetClinicID sets the "clinic_id" field.
func (u *UnavailabilityUpsert) SetClinicID(v uuid.UUID) *UnavailabilityUpsert {
	u.Set(unavailability.FieldClinicID, v)
	return u
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *UnavailabilityUpsert) UpdateClinicID() *UnavailabilityUpsert {
	u.SetExcluded(unavailability.FieldClinicID)
	return u
}

// SetStartTime sets the "start_time" field.
func (u *UnavailabilityUpsert) SetStartTime(v time.Time) *UnavailabilityUpsert {
	u.Set(unavailability.FieldStartTime, v)
	return u
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *UnavailabilityUpsert) UpdateStartTime() *UnavailabilityUpsert {
	u.SetExcluded(unavailability.FieldStartTime)
	return u
}

// SetEndTime sets the "end_time" field.
func (u *UnavailabilityUpsert) SetEndTime(v time.Time) *UnavailabilityUpsert {
	u.Set(unavailability.FieldEndTime, v)
	return u
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *UnavailabilityUpsert) UpdateEndTime() *UnavailabilityUpsert {
	u.SetExcluded(unavailability.FieldEndTime)
	return u
}

// SetReason sets the "reason" field.
func (u *UnavailabilityUpsert) SetReason(v string) *UnavailabilityUpsert {
	u.Set(unavailability.FieldReason, v)
	return u
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *UnavailabilityUpsert) UpdateReason() *UnavailabilityUpsert {
	u.SetExcluded(unavailability.FieldReason)
	return u
}

// ClearReason clears the value of the "reason" field.
func (u *UnavailabilityUpsert) ClearReason() *UnavailabilityUpsert {
	u.SetNull(unavailability.FieldReason)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Unavailability.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(unavailability.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UnavailabilityUpsertOne) UpdateNewValues() *UnavailabilityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(unavailability.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(unavailability.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Unavailability.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *UnavailabilityUpsertOne) Ignore() *UnavailabilityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UnavailabilityUpsertOne) DoNothing() *UnavailabilityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UnavailabilityCreate.OnConflict
// documentation for more info.
func (u *UnavailabilityUpsertOne) Update(set func(*UnavailabilityUpsert)) *UnavailabilityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UnavailabilityUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *UnavailabilityUpsertOne) SetUpdatedAt(v time.Time) *UnavailabilityUpsertOne {
	return u.Update(func(s *UnavailabilityUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UnavailabilityUpsertOne) UpdateUpdatedAt() *UnavailabilityUpsertOne {
	return u.Update(func(s *UnavailabilityUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPsychologistID sets the "psychologist_id" field.
func (u *UnavailabilityUpsertOne) SetPsychologistID(v uuid.UUID) *UnavailabilityUpsertOne {
	return u.Update(func(s *UnavailabilityUpsert) {
		s.SetPsychologistID(v)
	})
}

// UpdatePsychologistID sets the "psychologist_id" field to the value that was provided on create.
func (u *UnavailabilityUpsertOne) UpdatePsychologistID() *UnavailabilityUpsertOne {
	return u.Update(func(s *UnavailabilityUpsert) {
		s.UpdatePsychologistID()
	})
}

// SetClinicID sets the "clinic_id" field.
func (u *UnavailabilityUpsertOne) SetClinicID(v uuid.UUID) *UnavailabilityUpsertOne {
	return u.Update(func(s *UnavailabilityUpsert) {
		s.SetClinicID(v)
	})
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *UnavailabilityUpsertOne) UpdateClinicID() *UnavailabilityUpsertOne {
	return u.Update(func(s *UnavailabilityUpsert) {
		s.UpdateClinicID()
	})
}

// SetStartTime sets the "start_time" field.
func (u *UnavailabilityUpsertOne) SetStartTime(v time.Time) *UnavailabilityUpsertOne {
	return u.Update(func(s *UnavailabilityUpsert) {
		s.SetStartTime(v)
	})
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *UnavailabilityUpsertOne) UpdateStartTime() *UnavailabilityUpsertOne {
	return u.Update(func(s *UnavailabilityUpsert) {
		s.UpdateStartTime()
	})
}

// SetEndTime sets the "end_time" field.
func (u *UnavailabilityUpsertOne) SetEndTime(v time.Time) *UnavailabilityUpsertOne {
	return u.Update(func(s *UnavailabilityUpsert) {
		s.SetEndTime(v)
	})
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *UnavailabilityUpsertOne) UpdateEndTime() *UnavailabilityUpsertOne {
	return u.Update(func(s *UnavailabilityUpsert) {
		s.UpdateEndTime()
	})
}

// SetReason sets the "reason" field.
func (u *UnavailabilityUpsertOne) SetReason(v string) *UnavailabilityUpsertOne {
	return u.Update(func(s *UnavailabilityUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *UnavailabilityUpsertOne) UpdateReason() *UnavailabilityUpsertOne {
	return u.Update(func(s *UnavailabilityUpsert) {
		s.UpdateReason()
	})
}

// ClearReason clears the value of the "reason" field.
func (u *UnavailabilityUpsertOne) ClearReason() *UnavailabilityUpsertOne {
	return u.Update(func(s *UnavailabilityUpsert) {
		s.ClearReason()
	})
}

// Exec executes the query.
func (u *UnavailabilityUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for UnavailabilityCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UnavailabilityUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *UnavailabilityUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: UnavailabilityUpsertOne.ID is not supported by MySQL driver. Use UnavailabilityUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *UnavailabilityUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// UnavailabilityCreateBulk is the builder for creating many Unavailability entities in bulk.
type UnavailabilityCreateBulk struct {
	config
	err      error
	builders []*UnavailabilityCreate
	conflict []sql.ConflictOption
}

// Save creates the Unavailability entities in the database.
func (_c *UnavailabilityCreateBulk) Save(ctx context.Context) ([]*Unavailability, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Unavailability, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UnavailabilityMutation)
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
func (_c *UnavailabilityCreateBulk) SaveX(ctx context.Context) []*Unavailability {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UnavailabilityCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UnavailabilityCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Unavailability.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UnavailabilityUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *UnavailabilityCreateBulk) OnConflict(opts ...sql.ConflictOption) *UnavailabilityUpsertBulk {
	_c.conflict = opts
	return &UnavailabilityUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Unavailability.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UnavailabilityCreateBulk) OnConflictColumns(columns ...string) *UnavailabilityUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UnavailabilityUpsertBulk{
		create: _c,
	}
}

// UnavailabilityUpsertBulk is the builder for "upsert"-ing
// a bulk of Unavailability nodes.
type UnavailabilityUpsertBulk struct {
	create *UnavailabilityCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Unavailability.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(unavailability.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UnavailabilityUpsertBulk) UpdateNewValues() *UnavailabilityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(unavailability.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(unavailability.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Unavailability.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *UnavailabilityUpsertBulk) Ignore() *UnavailabilityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UnavailabilityUpsertBulk) DoNothing() *UnavailabilityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UnavailabilityCreateBulk.OnConflict
// documentation for more info.
func (u *UnavailabilityUpsertBulk) Update(set func(*UnavailabilityUpsert)) *UnavailabilityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UnavailabilityUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *UnavailabilityUpsertBulk) SetUpdatedAt(v time.Time) *UnavailabilityUpsertBulk {
	return u.Update(func(s *UnavailabilityUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UnavailabilityUpsertBulk) UpdateUpdatedAt() *UnavailabilityUpsertBulk {
	return u.Update(func(s *UnavailabilityUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPsychologistID sets the "psychologist_id" field.
func (u *UnavailabilityUpsertBulk) SetPsychologistID(v uuid.UUID) *UnavailabilityUpsertBulk {
	return u.Update(func(s *UnavailabilityUpsert) {
		s.SetPsychologistID(v)
	})
}

// UpdatePsychologistID sets the "psychologist_id" field to the value that was provided on create.
func (u *UnavailabilityUpsertBulk) UpdatePsychologistID() *UnavailabilityUpsertBulk {
	return u.Update(func(s *UnavailabilityUpsert) {
		s.UpdatePsychologistID()
	})
}

// SetClinicID sets the "clinic_id" field.
func (u *UnavailabilityUpsertBulk) SetClinicID(v uuid.UUID) *UnavailabilityUpsertBulk {
	return u.Update(func(s *UnavailabilityUpsert) {
		s.SetClinicID(v)
	})
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *UnavailabilityUpsertBulk) UpdateClinicID() *UnavailabilityUpsertBulk {
	return u.Update(func(s *UnavailabilityUpsert) {
		s.UpdateClinicID()
	})
}

// SetStartTime sets the "start_time" field.
func (u *UnavailabilityUpsertBulk) SetStartTime(v time.Time) *UnavailabilityUpsertBulk {
	return u.Update(func(s *UnavailabilityUpsert) {
		s.SetStartTime(v)
	})
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *UnavailabilityUpsertBulk) UpdateStartTime() *UnavailabilityUpsertBulk {
	return u.Update(func(s *UnavailabilityUpsert) {
		s.UpdateStartTime()
	})
}

// SetEndTime sets the "end_time" field.
func (u *UnavailabilityUpsertBulk) SetEndTime(v time.Time) *UnavailabilityUpsertBulk {
	return u.Update(func(s *UnavailabilityUpsert) {
		s.SetEndTime(v)
	})
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *UnavailabilityUpsertBulk) UpdateEndTime() *UnavailabilityUpsertBulk {
	return u.Update(func(s *UnavailabilityUpsert) {
		s.UpdateEndTime()
	})
}

// SetReason sets the "reason" field.
func (u *UnavailabilityUpsertBulk) SetReason(v string) *UnavailabilityUpsertBulk {
	return u.Update(func(s *UnavailabilityUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *UnavailabilityUpsertBulk) UpdateReason() *UnavailabilityUpsertBulk {
	return u.Update(func(s *UnavailabilityUpsert) {
		s.UpdateReason()
	})
}

// ClearReason clears the value of the "reason" field.
func (u *UnavailabilityUpsertBulk) ClearReason() *UnavailabilityUpsertBulk {
	return u.Update(func(s *UnavailabilityUpsert) {
		s.ClearReason()
	})
}

// Exec executes the query.
func (u *UnavailabilityUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the UnavailabilityCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for UnavailabilityCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UnavailabilityUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
