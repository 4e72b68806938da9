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
	"github.com/amparasaude/ampara_backend/internal/repo/diaryentry"
	"github.com/google/uuid"
)

// DiaryEntryCreate is the builder for creating a DiaryEntry entity.
type DiaryEntryCreate struct {
	config
	mutation *DiaryEntryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *DiaryEntryCreate) SetCreatedAt(v time.Time) *DiaryEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DiaryEntryCreate) SetNillableCreatedAt(v *time.Time) *DiaryEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DiaryEntryCreate) SetUpdatedAt(v time.Time) *DiaryEntryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DiaryEntryCreate) SetNillableUpdatedAt(v *time.Time) *DiaryEntryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *DiaryEntryCreate) SetPatientID(v uuid.UUID) *DiaryEntryCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetEntryDate sets the "entry_date" field.
func (_c *DiaryEntryCreate) SetEntryDate(v time.Time) *DiaryEntryCreate {
	_c.mutation.SetEntryDate(v)
	return _c
}

// SetMood sets the "mood" field.
func (_c *DiaryEntryCreate) SetMood(v int) *DiaryEntryCreate {
	_c.mutation.SetMood(v)
	return _c
}

// SetEnergy sets the "energy" field.
func (_c *DiaryEntryCreate) SetEnergy(v int) *DiaryEntryCreate {
	_c.mutation.SetEnergy(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *DiaryEntryCreate) SetContent(v string) *DiaryEntryCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_c *DiaryEntryCreate) SetNillableContent(v *string) *DiaryEntryCreate {
	if v != nil {
		_c.SetContent(*v)
	}
	return _c
}

// SetEmotions sets the "emotions" field.
func (_c *DiaryEntryCreate) SetEmotions(v []string) *DiaryEntryCreate {
	_c.mutation.SetEmotions(v)
	return _c
}

// SetID sets the "id" field.
func (_c *DiaryEntryCreate) SetID(v uuid.UUID) *DiaryEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DiaryEntryCreate) SetNillableID(v *uuid.UUID) *DiaryEntryCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the DiaryEntryMutation object of the builder.
func (_c *DiaryEntryCreate) Mutation() *DiaryEntryMutation {
	return _c.mutation
}

// Save creates the DiaryEntry in the database.
func (_c *DiaryEntryCreate) Save(ctx context.Context) (*DiaryEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DiaryEntryCreate) SaveX(ctx context.Context) *DiaryEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DiaryEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DiaryEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DiaryEntryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := diaryentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := diaryentry.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := diaryentry.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DiaryEntryCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "DiaryEntry.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "DiaryEntry.updated_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "DiaryEntry.patient_id"`)}
	}
	if _, ok := _c.mutation.EntryDate(); !ok {
		return &ValidationError{Name: "entry_date", err: errors.New(`repo: missing required field "DiaryEntry.entry_date"`)}
	}
	if _, ok := _c.mutation.Mood(); !ok {
		return &ValidationError{Name: "mood", err: errors.New(`repo: missing required field "DiaryEntry.mood"`)}
	}
	if v, ok := _c.mutation.Mood(); ok {
		if err := diaryentry.MoodValidator(v); err != nil {
			return &ValidationError{Name: "mood", err: fmt.Errorf(`repo: validator failed for field "DiaryEntry.mood": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Energy(); !ok {
		return &ValidationError{Name: "energy", err: errors.New(`repo: missing required field "DiaryEntry.energy"`)}
	}
	if v, ok := _c.mutation.Energy(); ok {
		if err := diaryentry.EnergyValidator(v); err != nil {
			return &ValidationError{Name: "energy", err: fmt.Errorf(`repo: validator failed for field "DiaryEntry.energy": %w`, err)}
		}
	}
	return nil
}

func (_c *DiaryEntryCreate) sqlSave(ctx context.Context) (*DiaryEntry, error) {
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

func (_c *DiaryEntryCreate) createSpec() (*DiaryEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &DiaryEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(diaryentry.Table, sqlgraph.NewFieldSpec(diaryentry.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(diaryentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(diaryentry.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(diaryentry.FieldPatientID, field.TypeUUID, value)
		_node.PatientID = value
	}
	if value, ok := _c.mutation.EntryDate(); ok {
		_spec.SetField(diaryentry.FieldEntryDate, field.TypeTime, value)
		_node.EntryDate = value
	}
	if value, ok := _c.mutation.Mood(); ok {
		_spec.SetField(diaryentry.FieldMood, field.TypeInt, value)
		_node.Mood = value
	}
	if value, ok := _c.mutation.Energy(); ok {
		_spec.SetField(diaryentry.FieldEnergy, field.TypeInt, value)
		_node.Energy = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(diaryentry.FieldContent, field.TypeString, value)
		_node.Content = &value
	}
	if value, ok := _c.mutation.Emotions(); ok {
		_spec.SetField(diaryentry.FieldEmotions, field.TypeJSON, value)
		_node.Emotions = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DiaryEntry.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DiaryEntryUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DiaryEntryCreate) OnConflict(opts ...sql.ConflictOption) *DiaryEntryUpsertOne {
	_c.conflict = opts
	return &DiaryEntryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DiaryEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DiaryEntryCreate) OnConflictColumns(columns ...string) *DiaryEntryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DiaryEntryUpsertOne{
		create: _c,
	}
}

type (
	// DiaryEntryUpsertOne is the builder for "upsert"-ing
	//  one DiaryEntry node.
	DiaryEntryUpsertOne struct {
		create *DiaryEntryCreate
	}

	// DiaryEntryUpsert is the "OnConflict" setter.
	DiaryEntryUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *DiaryEntryUpsert) SetUpdatedAt(v time.Time) *DiaryEntryUpsert {
	u.Set(diaryentry.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DiaryEntryUpsert) UpdateUpdatedAt() *DiaryEntryUpsert {
	u.SetExcluded(diaryentry.FieldUpdatedAt)
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *DiaryEntryUpsert) SetPatientID(v uuid.UUID) *DiaryEntryUpsert {
	u.Set(diaryentry.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *DiaryEntryUpsert) UpdatePatientID() *DiaryEntryUpsert {
	u.SetExcluded(diaryentry.FieldPatientID)
	return u
}

// SetEntryDate sets the "entry_date" field.
func (u *DiaryEntryUpsert) SetEntryDate(v time.Time) *DiaryEntryUpsert {
	u.Set(diaryentry.FieldEntryDate, v)
	return u
}

// UpdateEntryDate sets the "entry_date" field to the value that was provided on create.
func (u *DiaryEntryUpsert) UpdateEntryDate() *DiaryEntryUpsert {
	u.SetExcluded(diaryentry.FieldEntryDate)
	return u
}

// SetMood sets the "mood" field.
func (u *DiaryEntryUpsert) SetMood(v int) *DiaryEntryUpsert {
	u.Set(diaryentry.FieldMood, v)
	return u
}

// UpdateMood sets the "mood" field to the value that was provided on create.
func (u *DiaryEntryUpsert) UpdateMood() *DiaryEntryUpsert {
	u.SetExcluded(diaryentry.FieldMood)
	return u
}

// AddMood adds v to the "mood" field.
func (u *DiaryEntryUpsert) AddMood(v int) *DiaryEntryUpsert {
	u.Add(diaryentry.FieldMood, v)
	return u
}

// SetEnergy sets the "energy" field.
func (u *DiaryEntryUpsert) SetEnergy(v int) *DiaryEntryUpsert {
	u.Set(diaryentry.FieldEnergy, v)
	return u
}

// UpdateEnergy sets the "energy" field to the value that was provided on create.
func (u *DiaryEntryUpsert) UpdateEnergy() *DiaryEntryUpsert {
	u.SetExcluded(diaryentry.FieldEnergy)
	return u
}

// AddEnergy adds v to the "energy" field.
func (u *DiaryEntryUpsert) AddEnergy(v int) *DiaryEntryUpsert {
	u.Add(diaryentry.FieldEnergy, v)
	return u
}

// SetContent sets the "content" field.
func (u *DiaryEntryUpsert) SetContent(v string) *DiaryEntryUpsert {
	u.Set(diaryentry.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *DiaryEntryUpsert) UpdateContent() *DiaryEntryUpsert {
	u.SetExcluded(diaryentry.FieldContent)
	return u
}

// ClearContent clears the value of the "content" field.
func (u *DiaryEntryUpsert) ClearContent() *DiaryEntryUpsert {
	u.SetNull(diaryentry.FieldContent)
	return u
}

// SetEmotions sets the "emotions" field.
func (u *DiaryEntryUpsert) SetEmotions(v []string) *DiaryEntryUpsert {
	u.Set(diaryentry.FieldEmotions, v)
	return u
}

// UpdateEmotions sets the "emotions" field to the value that was provided on create.
func (u *DiaryEntryUpsert) UpdateEmotions() *DiaryEntryUpsert {
	u.SetExcluded(diaryentry.FieldEmotions)
	return u
}

// ClearEmotions clears the value of the "emotions" field.
func (u *DiaryEntryUpsert) ClearEmotions() *DiaryEntryUpsert {
	u.SetNull(diaryentry.FieldEmotions)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.DiaryEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(diaryentry.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DiaryEntryUpsertOne) UpdateNewValues() *DiaryEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(diaryentry.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(diaryentry.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DiaryEntry.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DiaryEntryUpsertOne) Ignore() *DiaryEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DiaryEntryUpsertOne) DoNothing() *DiaryEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DiaryEntryCreate.OnConflict
// documentation for more info.
func (u *DiaryEntryUpsertOne) Update(set func(*DiaryEntryUpsert)) *DiaryEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DiaryEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DiaryEntryUpsertOne) SetUpdatedAt(v time.Time) *DiaryEntryUpsertOne {
	return u.Update(func(s *DiaryEntryUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DiaryEntryUpsertOne) UpdateUpdatedAt() *DiaryEntryUpsertOne {
	return u.Update(func(s *DiaryEntryUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *DiaryEntryUpsertOne) SetPatientID(v uuid.UUID) *DiaryEntryUpsertOne {
	return u.Update(func(s *DiaryEntryUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *DiaryEntryUpsertOne) UpdatePatientID() *DiaryEntryUpsertOne {
	return u.Update(func(s *DiaryEntryUpsert) {
		s.UpdatePatientID()
	})
}

// SetEntryDate sets the "entry_date" field.
func (u *DiaryEntryUpsertOne) SetEntryDate(v time.Time) *DiaryEntryUpsertOne {
	return u.Update(func(s *DiaryEntryUpsert) {
		s.SetEntryDate(v)
	})
}

// UpdateEntryDate sets the "entry_date" field to the value that was provided on create.
func (u *DiaryEntryUpsertOne) UpdateEntryDate() *DiaryEntryUpsertOne {
	return u.Update(func(s *DiaryEntryUpsert) {
		s.UpdateEntryDate()
	})
}

// SetMood sets the "mood" field.
func (u *DiaryEntryUpsertOne) SetMood(v int) *DiaryEntryUpsertOne {
	return u.Update(func(s *DiaryEntryUpsert) {
		s.SetMood(v)
	})
}

// AddMood adds v to the "mood" field.
func (u *DiaryEntryUpsertOne) AddMood(v int) *DiaryEntryUpsertOne {
	return u.Update(func(s *DiaryEntryUpsert) {
		s.AddMood(v)
	})
}

// UpdateMood sets the "mood" field to the value that was provided on create.
func (u *DiaryEntryUpsertOne) UpdateMood() *DiaryEntryUpsertOne {
	return u.Update(func(s *DiaryEntryUpsert) {
		s.UpdateMood()
	})
}

// SetEnergy sets the "energy" field.
func (u *DiaryEntryUpsertOne) SetEnergy(v int) *DiaryEntryUpsertOne {
	return u.Update(func(s *DiaryEntryUpsert) {
		s.SetEnergy(v)
	})
}

// AddEnergy adds v to the "energy" field.
func (u *DiaryEntryUpsertOne) AddEnergy(v int) *DiaryEntryUpsertOne {
	return u.Update(func(s *DiaryEntryUpsert) {
		s.AddEnergy(v)
	})
}

// UpdateEnergy sets the "energy" field to the value that was provided on create.
func (u *DiaryEntryUpsertOne) UpdateEnergy() *DiaryEntryUpsertOne {
	return u.Update(func(s *DiaryEntryUpsert) {
		s.UpdateEnergy()
	})
}

// SetContent sets the "content" field.
func (u *DiaryEntryUpsertOne) SetContent(v string) *DiaryEntryUpsertOne {
	return u.Update(func(s *DiaryEntryUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *DiaryEntryUpsertOne) UpdateContent() *DiaryEntryUpsertOne {
	return u.Update(func(s *DiaryEntryUpsert) {
		s.UpdateContent()
	})
}

// ClearContent clears the value of the "content" field.
func (u *DiaryEntryUpsertOne) ClearContent() *DiaryEntryUpsertOne {
	return u.Update(func(s *DiaryEntryUpsert) {
		s.ClearContent()
	})
}

// SetEmotions sets the "emotions" field.
func (u *DiaryEntryUpsertOne) SetEmotions(v []string) *DiaryEntryUpsertOne {
	return u.Update(func(s *DiaryEntryUpsert) {
		s.SetEmotions(v)
	})
}

// UpdateEmotions sets the "emotions" field to the value that was provided on create.
func (u *DiaryEntryUpsertOne) UpdateEmotions() *DiaryEntryUpsertOne {
	return u.Update(func(s *DiaryEntryUpsert) {
		s.UpdateEmotions()
	})
}

// ClearEmotions clears the value of the "emotions" field.
func (u *DiaryEntryUpsertOne) ClearEmotions() *DiaryEntryUpsertOne {
	return u.Update(func(s *DiaryEntryUpsert) {
		s.ClearEmotions()
	})
}

// Exec executes the query.
func (u *DiaryEntryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DiaryEntryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DiaryEntryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DiaryEntryUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: DiaryEntryUpsertOne.ID is not supported by MySQL driver. Use DiaryEntryUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DiaryEntryUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DiaryEntryCreateBulk is the builder for creating many DiaryEntry entities in bulk.
type DiaryEntryCreateBulk struct {
	config
	err      error
	builders []*DiaryEntryCreate
	conflict []sql.ConflictOption
}

// Save creates the DiaryEntry entities in the database.
func (_c *DiaryEntryCreateBulk) Save(ctx context.Context) ([]*DiaryEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DiaryEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DiaryEntryMutation)
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
func (_c *DiaryEntryCreateBulk) SaveX(ctx context.Context) []*DiaryEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DiaryEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DiaryEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DiaryEntry.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DiaryEntryUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DiaryEntryCreateBulk) OnConflict(opts ...sql.ConflictOption) *DiaryEntryUpsertBulk {
	_c.conflict = opts
	return &DiaryEntryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DiaryEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DiaryEntryCreateBulk) OnConflictColumns(columns ...string) *DiaryEntryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DiaryEntryUpsertBulk{
		create: _c,
	}
}

// DiaryEntryUpsertBulk is the builder for "upsert"-ing
// a bulk of DiaryEntry nodes.
type DiaryEntryUpsertBulk struct {
	create *DiaryEntryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DiaryEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(diaryentry.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DiaryEntryUpsertBulk) UpdateNewValues() *DiaryEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(diaryentry.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(diaryentry.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DiaryEntry.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DiaryEntryUpsertBulk) Ignore() *DiaryEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DiaryEntryUpsertBulk) DoNothing() *DiaryEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DiaryEntryCreateBulk.OnConflict
// documentation for more info.
func (u *DiaryEntryUpsertBulk) Update(set func(*DiaryEntryUpsert)) *DiaryEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DiaryEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DiaryEntryUpsertBulk) SetUpdatedAt(v time.Time) *DiaryEntryUpsertBulk {
	return u.Update(func(s *DiaryEntryUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DiaryEntryUpsertBulk) UpdateUpdatedAt() *DiaryEntryUpsertBulk {
	return u.Update(func(s *DiaryEntryUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *DiaryEntryUpsertBulk) SetPatientID(v uuid.UUID) *DiaryEntryUpsertBulk {
	return u.Update(func(s *DiaryEntryUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *DiaryEntryUpsertBulk) UpdatePatientID() *DiaryEntryUpsertBulk {
	return u.Update(func(s *DiaryEntryUpsert) {
		s.UpdatePatientID()
	})
}

// SetEntryDate sets the "entry_date" field.
func (u *DiaryEntryUpsertBulk) SetEntryDate(v time.Time) *DiaryEntryUpsertBulk {
	return u.Update(func(s *DiaryEntryUpsert) {
		s.SetEntryDate(v)
	})
}

// UpdateEntryDate sets the "entry_date" field to the value that was provided on create.
func (u *DiaryEntryUpsertBulk) UpdateEntryDate() *DiaryEntryUpsertBulk {
	return u.Update(func(s *DiaryEntryUpsert) {
		s.UpdateEntryDate()
	})
}

// SetMood sets the "mood" field.
func (u *DiaryEntryUpsertBulk) SetMood(v int) *DiaryEntryUpsertBulk {
	return u.Update(func(s *DiaryEntryUpsert) {
		s.SetMood(v)
	})
}

// AddMood adds v to the "mood" field.
func (u *DiaryEntryUpsertBulk) AddMood(v int) *DiaryEntryUpsertBulk {
	return u.Update(func(s *DiaryEntryUpsert) {
		s.AddMood(v)
	})
}

// UpdateMood sets the "mood" field to the value that was provided on create.
func (u *DiaryEntryUpsertBulk) UpdateMood() *DiaryEntryUpsertBulk {
	return u.Update(func(s *DiaryEntryUpsert) {
		s.UpdateMood()
	})
}

// SetEnergy sets the "energy" field.
func (u *DiaryEntryUpsertBulk) SetEnergy(v int) *DiaryEntryUpsertBulk {
	return u.Update(func(s *DiaryEntryUpsert) {
		s.SetEnergy(v)
	})
}

// AddEnergy adds v to the "energy" field.
func (u *DiaryEntryUpsertBulk) AddEnergy(v int) *DiaryEntryUpsertBulk {
	return u.Update(func(s *DiaryEntryUpsert) {
		s.AddEnergy(v)
	})
}

// UpdateEnergy sets the "energy" field to the value that was provided on create.
func (u *DiaryEntryUpsertBulk) UpdateEnergy() *DiaryEntryUpsertBulk {
	return u.Update(func(s *DiaryEntryUpsert) {
		s.UpdateEnergy()
	})
}

// SetContent sets the "content" field.
func (u *DiaryEntryUpsertBulk) SetContent(v string) *DiaryEntryUpsertBulk {
	return u.Update(func(s *DiaryEntryUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *DiaryEntryUpsertBulk) UpdateContent() *DiaryEntryUpsertBulk {
	return u.Update(func(s *DiaryEntryUpsert) {
		s.UpdateContent()
	})
}

// ClearContent clears the value of the "content" field.
func (u *DiaryEntryUpsertBulk) ClearContent() *DiaryEntryUpsertBulk {
	return u.Update(func(s *DiaryEntryUpsert) {
		s.ClearContent()
	})
}

// SetEmotions sets the "emotions" field.
func (u *DiaryEntryUpsertBulk) SetEmotions(v []string) *DiaryEntryUpsertBulk {
	return u.Update(func(s *DiaryEntryUpsert) {
		s.SetEmotions(v)
	})
}

// UpdateEmotions sets the "emotions" field to the value that was provided on create.
func (u *DiaryEntryUpsertBulk) UpdateEmotions() *DiaryEntryUpsertBulk {
	return u.Update(func(s *DiaryEntryUpsert) {
		s.UpdateEmotions()
	})
}

// ClearEmotions clears the value of the "emotions" field.
func (u *DiaryEntryUpsertBulk) ClearEmotions() *DiaryEntryUpsertBulk {
	return u.Update(func(s *DiaryEntryUpsert) {
		s.ClearEmotions()
	})
}

// Exec executes the query.
func (u *DiaryEntryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the DiaryEntryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DiaryEntryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DiaryEntryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
