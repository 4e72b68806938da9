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
	"github.com/amparasaude/ampara_backend/internal/repo/gamificationaward"
	"github.com/google/uuid"
)

// GamificationAwardCreate is the builder for creating a GamificationAward entity.
type GamificationAwardCreate struct {
	config
	mutation *GamificationAwardMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *GamificationAwardCreate) SetCreatedAt(v time.Time) *GamificationAwardCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GamificationAwardCreate) SetNillableCreatedAt(v *time.Time) *GamificationAwardCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *GamificationAwardCreate) SetUserID(v uuid.UUID) *GamificationAwardCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetActivityType sets the "activity_type" field.
func (_c *GamificationAwardCreate) SetActivityType(v string) *GamificationAwardCreate {
	_c.mutation.SetActivityType(v)
	return _c
}

// SetPoints sets the "points" field.
func (_c *GamificationAwardCreate) SetPoints(v int) *GamificationAwardCreate {
	_c.mutation.SetPoints(v)
	return _c
}

// SetXp sets the "xp" field.
func (_c *GamificationAwardCreate) SetXp(v int) *GamificationAwardCreate {
	_c.mutation.SetXp(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *GamificationAwardCreate) SetMetadata(v map[string]interface{}) *GamificationAwardCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetID sets the "id" field.
func (_c *GamificationAwardCreate) SetID(v uuid.UUID) *GamificationAwardCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *GamificationAwardCreate) SetNillableID(v *uuid.UUID) *GamificationAwardCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the GamificationAwardMutation object of the builder.
func (_c *GamificationAwardCreate) Mutation() *GamificationAwardMutation {
	return _c.mutation
}

// Save creates the GamificationAward in the database.
func (_c *GamificationAwardCreate) Save(ctx context.Context) (*GamificationAward, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GamificationAwardCreate) SaveX(ctx context.Context) *GamificationAward {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GamificationAwardCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GamificationAwardCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GamificationAwardCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := gamificationaward.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := gamificationaward.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GamificationAwardCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "GamificationAward.created_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`repo: missing required field "GamificationAward.user_id"`)}
	}
	if _, ok := _c.mutation.ActivityType(); !ok {
		return &ValidationError{Name: "activity_type", err: errors.New(`repo: missing required field "GamificationAward.activity_type"`)}
	}
	if v, ok := _c.mutation.ActivityType(); ok {
		if err := gamificationaward.ActivityTypeValidator(v); err != nil {
			return &ValidationError{Name: "activity_type", err: fmt.Errorf(`repo: validator failed for field "GamificationAward.activity_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Points(); !ok {
		return &ValidationError{Name: "points", err: errors.New(`repo: missing required field "GamificationAward.points"`)}
	}
	if _, ok := _c.mutation.Xp(); !ok {
		return &ValidationError{Name: "xp", err: errors.New(`repo: missing required field "GamificationAward.xp"`)}
	}
	return nil
}

func (_c *GamificationAwardCreate) sqlSave(ctx context.Context) (*GamificationAward, error) {
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

func (_c *GamificationAwardCreate) createSpec() (*GamificationAward, *sqlgraph.CreateSpec) {
	var (
		_node = &GamificationAward{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(gamificationaward.Table, sqlgraph.NewFieldSpec(gamificationaward.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(gamificationaward.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(gamificationaward.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ActivityType(); ok {
		_spec.SetField(gamificationaward.FieldActivityType, field.TypeString, value)
		_node.ActivityType = value
	}
	if value, ok := _c.mutation.Points(); ok {
		_spec.SetField(gamificationaward.FieldPoints, field.TypeInt, value)
		_node.Points = value
	}
	if value, ok := _c.mutation.Xp(); ok {
		_spec.SetField(gamificationaward.FieldXp, field.TypeInt, value)
		_node.Xp = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(gamificationaward.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GamificationAward.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GamificationAwardUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *GamificationAwardCreate) OnConflict(opts ...sql.ConflictOption) *GamificationAwardUpsertOne {
	_c.conflict = opts
	return &GamificationAwardUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GamificationAward.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GamificationAwardCreate) OnConflictColumns(columns ...string) *GamificationAwardUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GamificationAwardUpsertOne{
		create: _c,
	}
}

type (
	// GamificationAwardUpsertOne is the builder for "upsert"-ing
	//  one GamificationAward node.
	GamificationAwardUpsertOne struct {
		create *GamificationAwardCreate
	}

	// GamificationAwardUpsert is the "OnConflict" setter.
	GamificationAwardUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *GamificationAwardUpsert) SetUserID(v uuid.UUID) *GamificationAwardUpsert {
	u.Set(gamificationaward.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *GamificationAwardUpsert) UpdateUserID() *GamificationAwardUpsert {
	u.SetExcluded(gamificationaward.FieldUserID)
	return u
}

// SetActivityType sets the "activity_type" field.
func (u *GamificationAwardUpsert) SetActivityType(v string) *GamificationAwardUpsert {
	u.Set(gamificationaward.FieldActivityType, v)
	return u
}

// UpdateActivityType sets the "activity_type" field to the value that was provided on create.
func (u *GamificationAwardUpsert) UpdateActivityType() *GamificationAwardUpsert {
	u.SetExcluded(gamificationaward.FieldActivityType)
	return u
}

// SetPoints sets the "points" field.
func (u *GamificationAwardUpsert) SetPoints(v int) *GamificationAwardUpsert {
	u.Set(gamificationaward.FieldPoints, v)
	return u
}

// UpdatePoints sets the "points" field to the value that was provided on create.
func (u *GamificationAwardUpsert) UpdatePoints() *GamificationAwardUpsert {
	u.SetExcluded(gamificationaward.FieldPoints)
	return u
}

// AddPoints adds v to the "points" field.
func (u *GamificationAwardUpsert) AddPoints(v int) *GamificationAwardUpsert {
	u.Add(gamificationaward.FieldPoints, v)
	return u
}

// SetXp sets the "xp" field.
func (u *GamificationAwardUpsert) SetXp(v int) *GamificationAwardUpsert {
	u.Set(gamificationaward.FieldXp, v)
	return u
}

// UpdateXp sets the "xp" field to the value that was provided on create.
func (u *GamificationAwardUpsert) UpdateXp() *GamificationAwardUpsert {
	u.SetExcluded(gamificationaward.FieldXp)
	return u
}

// AddXp adds v to the "xp" field.
func (u *GamificationAwardUpsert) AddXp(v int) *GamificationAwardUpsert {
	u.Add(gamificationaward.FieldXp, v)
	return u
}

// SetMetadata sets the "metadata" field.
func (u *GamificationAwardUpsert) SetMetadata(v map[string]interface{}) *GamificationAwardUpsert {
	u.Set(gamificationaward.FieldMetadata, v)
	return u
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *GamificationAwardUpsert) UpdateMetadata() *GamificationAwardUpsert {
	u.SetExcluded(gamificationaward.FieldMetadata)
	return u
}

// ClearMetadata clears the value of the "metadata" field.
func (u *GamificationAwardUpsert) ClearMetadata() *GamificationAwardUpsert {
	u.SetNull(gamificationaward.FieldMetadata)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.GamificationAward.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(gamificationaward.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GamificationAwardUpsertOne) UpdateNewValues() *GamificationAwardUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(gamificationaward.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(gamificationaward.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GamificationAward.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *GamificationAwardUpsertOne) Ignore() *GamificationAwardUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GamificationAwardUpsertOne) DoNothing() *GamificationAwardUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GamificationAwardCreate.OnConflict
// documentation for more info.
func (u *GamificationAwardUpsertOne) Update(set func(*GamificationAwardUpsert)) *GamificationAwardUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GamificationAwardUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *GamificationAwardUpsertOne) SetUserID(v uuid.UUID) *GamificationAwardUpsertOne {
	return u.Update(func(s *GamificationAwardUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *GamificationAwardUpsertOne) UpdateUserID() *GamificationAwardUpsertOne {
	return u.Update(func(s *GamificationAwardUpsert) {
		s.UpdateUserID()
	})
}

// SetActivityType sets the "activity_type" field.
func (u *GamificationAwardUpsertOne) SetActivityType(v string) *GamificationAwardUpsertOne {
	return u.Update(func(s *GamificationAwardUpsert) {
		s.SetActivityType(v)
	})
}

// UpdateActivityType sets the "activity_type" field to the value that was provided on create.
func (u *GamificationAwardUpsertOne) UpdateActivityType() *GamificationAwardUpsertOne {
	return u.Update(func(s *GamificationAwardUpsert) {
		s.UpdateActivityType()
	})
}

// SetPoints sets the "points" field.
func (u *GamificationAwardUpsertOne) SetPoints(v int) *GamificationAwardUpsertOne {
	return u.Update(func(s *GamificationAwardUpsert) {
		s.SetPoints(v)
	})
}

// AddPoints adds v to the "points" field.
func (u *GamificationAwardUpsertOne) AddPoints(v int) *GamificationAwardUpsertOne {
	return u.Update(func(s *GamificationAwardUpsert) {
		s.AddPoints(v)
	})
}

// UpdatePoints sets the "points" field to the value that was provided on create.
func (u *GamificationAwardUpsertOne) UpdatePoints() *GamificationAwardUpsertOne {
	return u.Update(func(s *GamificationAwardUpsert) {
		s.UpdatePoints()
	})
}

// SetXp sets the "xp" field.
func (u *GamificationAwardUpsertOne) SetXp(v int) *GamificationAwardUpsertOne {
	return u.Update(func(s *GamificationAwardUpsert) {
		s.SetXp(v)
	})
}

// AddXp adds v to the "xp" field.
func (u *GamificationAwardUpsertOne) AddXp(v int) *GamificationAwardUpsertOne {
	return u.Update(func(s *GamificationAwardUpsert) {
		s.AddXp(v)
	})
}

// UpdateXp sets the "xp" field to the value that was provided on create.
func (u *GamificationAwardUpsertOne) UpdateXp() *GamificationAwardUpsertOne {
	return u.Update(func(s *GamificationAwardUpsert) {
		s.UpdateXp()
	})
}

// SetMetadata sets the "metadata" field.
func (u *GamificationAwardUpsertOne) SetMetadata(v map[string]interface{}) *GamificationAwardUpsertOne {
	return u.Update(func(s *GamificationAwardUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *GamificationAwardUpsertOne) UpdateMetadata() *GamificationAwardUpsertOne {
	return u.Update(func(s *GamificationAwardUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *GamificationAwardUpsertOne) ClearMetadata() *GamificationAwardUpsertOne {
	return u.Update(func(s *GamificationAwardUpsert) {
		s.ClearMetadata()
	})
}

// Exec executes the query.
func (u *GamificationAwardUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for GamificationAwardCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GamificationAwardUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *GamificationAwardUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: GamificationAwardUpsertOne.ID is not supported by MySQL driver. Use GamificationAwardUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *GamificationAwardUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// GamificationAwardCreateBulk is the builder for creating many GamificationAward entities in bulk.
type GamificationAwardCreateBulk struct {
	config
	err      error
	builders []*GamificationAwardCreate
	conflict []sql.ConflictOption
}

// Save creates the GamificationAward entities in the database.
func (_c *GamificationAwardCreateBulk) Save(ctx context.Context) ([]*GamificationAward, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GamificationAward, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GamificationAwardMutation)
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
func (_c *GamificationAwardCreateBulk) SaveX(ctx context.Context) []*GamificationAward {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GamificationAwardCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GamificationAwardCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GamificationAward.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GamificationAwardUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *GamificationAwardCreateBulk) OnConflict(opts ...sql.ConflictOption) *GamificationAwardUpsertBulk {
	_c.conflict = opts
	return &GamificationAwardUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GamificationAward.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GamificationAwardCreateBulk) OnConflictColumns(columns ...string) *GamificationAwardUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GamificationAwardUpsertBulk{
		create: _c,
	}
}

// GamificationAwardUpsertBulk is the builder for "upsert"-ing
// a bulk of GamificationAward nodes.
type GamificationAwardUpsertBulk struct {
	create *GamificationAwardCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.GamificationAward.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(gamificationaward.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GamificationAwardUpsertBulk) UpdateNewValues() *GamificationAwardUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(gamificationaward.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(gamificationaward.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GamificationAward.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *GamificationAwardUpsertBulk) Ignore() *GamificationAwardUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GamificationAwardUpsertBulk) DoNothing() *GamificationAwardUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GamificationAwardCreateBulk.OnConflict
// documentation for more info.
func (u *GamificationAwardUpsertBulk) Update(set func(*GamificationAwardUpsert)) *GamificationAwardUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GamificationAwardUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *GamificationAwardUpsertBulk) SetUserID(v uuid.UUID) *GamificationAwardUpsertBulk {
	return u.Update(func(s *GamificationAwardUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *GamificationAwardUpsertBulk) UpdateUserID() *GamificationAwardUpsertBulk {
	return u.Update(func(s *GamificationAwardUpsert) {
		s.UpdateUserID()
	})
}

// SetActivityType sets the "activity_type" field.
func (u *GamificationAwardUpsertBulk) SetActivityType(v string) *GamificationAwardUpsertBulk {
	return u.Update(func(s *GamificationAwardUpsert) {
		s.SetActivityType(v)
	})
}

// UpdateActivityType sets the "activity_type" field to the value that was provided on create.
func (u *GamificationAwardUpsertBulk) UpdateActivityType() *GamificationAwardUpsertBulk {
	return u.Update(func(s *GamificationAwardUpsert) {
		s.UpdateActivityType()
	})
}

// SetPoints sets the "points" field.
func (u *GamificationAwardUpsertBulk) SetPoints(v int) *GamificationAwardUpsertBulk {
	return u.Update(func(s *GamificationAwardUpsert) {
		s.SetPoints(v)
	})
}

// AddPoints adds v to the "points" field.
func (u *GamificationAwardUpsertBulk) AddPoints(v int) *GamificationAwardUpsertBulk {
	return u.Update(func(s *GamificationAwardUpsert) {
		s.AddPoints(v)
	})
}

// UpdatePoints sets the "points" field to the value that was provided on create.
func (u *GamificationAwardUpsertBulk) UpdatePoints() *GamificationAwardUpsertBulk {
	return u.Update(func(s *GamificationAwardUpsert) {
		s.UpdatePoints()
	})
}

// SetXp sets the "xp" field.
func (u *GamificationAwardUpsertBulk) SetXp(v int) *GamificationAwardUpsertBulk {
	return u.Update(func(s *GamificationAwardUpsert) {
		s.SetXp(v)
	})
}

// AddXp adds v to the "xp" field.
func (u *GamificationAwardUpsertBulk) AddXp(v int) *GamificationAwardUpsertBulk {
	return u.Update(func(s *GamificationAwardUpsert) {
		s.AddXp(v)
	})
}

// UpdateXp sets the "xp" field to the value that was provided on create.
func (u *GamificationAwardUpsertBulk) UpdateXp() *GamificationAwardUpsertBulk {
	return u.Update(func(s *GamificationAwardUpsert) {
		s.UpdateXp()
	})
}

// SetMetadata sets the "metadata" field.
func (u *GamificationAwardUpsertBulk) SetMetadata(v map[string]interface{}) *GamificationAwardUpsertBulk {
	return u.Update(func(s *GamificationAwardUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *GamificationAwardUpsertBulk) UpdateMetadata() *GamificationAwardUpsertBulk {
	return u.Update(func(s *GamificationAwardUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *GamificationAwardUpsertBulk) ClearMetadata() *GamificationAwardUpsertBulk {
	return u.Update(func(s *GamificationAwardUpsert) {
		s.ClearMetadata()
	})
}

// Exec executes the query.
func (u *GamificationAwardUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the GamificationAwardCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for GamificationAwardCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GamificationAwardUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
