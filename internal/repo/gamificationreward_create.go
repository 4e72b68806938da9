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
	"github.com/amparasaude/ampara_backend/internal/repo/gamificationreward"
	"github.com/google/uuid"
)

// GamificationRewardCreate is the builder for creating a GamificationReward entity.
type GamificationRewardCreate struct {
	config
	mutation *GamificationRewardMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *GamificationRewardCreate) SetCreatedAt(v time.Time) *GamificationRewardCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GamificationRewardCreate) SetNillableCreatedAt(v *time.Time) *GamificationRewardCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *GamificationRewardCreate) SetUpdatedAt(v time.Time) *GamificationRewardCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *GamificationRewardCreate) SetNillableUpdatedAt(v *time.Time) *GamificationRewardCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetActivityType sets the "activity_type" field.
func (_c *GamificationRewardCreate) SetActivityType(v string) *GamificationRewardCreate {
	_c.mutation.SetActivityType(v)
	return _c
}

// SetPoints sets the "points" field.
func (_c *GamificationRewardCreate) SetPoints(v int) *GamificationRewardCreate {
	_c.mutation.SetPoints(v)
	return _c
}

// SetXp sets the "xp" field.
func (_c *GamificationRewardCreate) SetXp(v int) *GamificationRewardCreate {
	_c.mutation.SetXp(v)
	return _c
}

// SetMinLevel sets the "min_level" field.
func (_c *GamificationRewardCreate) SetMinLevel(v int) *GamificationRewardCreate {
	_c.mutation.SetMinLevel(v)
	return _c
}

// SetNillableMinLevel sets the "min_level" field if the given value is not nil.
func (_c *GamificationRewardCreate) SetNillableMinLevel(v *int) *GamificationRewardCreate {
	if v != nil {
		_c.SetMinLevel(*v)
	}
	return _c
}

// SetMaxDailyCount sets the "max_daily_count" field.
func (_c *GamificationRewardCreate) SetMaxDailyCount(v int) *GamificationRewardCreate {
	_c.mutation.SetMaxDailyCount(v)
	return _c
}

// SetNillableMaxDailyCount sets the "max_daily_count" field if the given value is not nil.
func (_c *GamificationRewardCreate) SetNillableMaxDailyCount(v *int) *GamificationRewardCreate {
	if v != nil {
		_c.SetMaxDailyCount(*v)
	}
	return _c
}

// SetCooldownMinutes sets the "cooldown_minutes" field.
func (_c *GamificationRewardCreate) SetCooldownMinutes(v int) *GamificationRewardCreate {
	_c.mutation.SetCooldownMinutes(v)
	return _c
}

// SetNillableCooldownMinutes sets the "cooldown_minutes" field if the given value is not nil.
func (_c *GamificationRewardCreate) SetNillableCooldownMinutes(v *int) *GamificationRewardCreate {
	if v != nil {
		_c.SetCooldownMinutes(*v)
	}
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *GamificationRewardCreate) SetEnabled(v bool) *GamificationRewardCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *GamificationRewardCreate) SetNillableEnabled(v *bool) *GamificationRewardCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GamificationRewardCreate) SetID(v uuid.UUID) *GamificationRewardCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *GamificationRewardCreate) SetNillableID(v *uuid.UUID) *GamificationRewardCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the GamificationRewardMutation object of the builder.
func (_c *GamificationRewardCreate) Mutation() *GamificationRewardMutation {
	return _c.mutation
}

// Save creates the GamificationReward in the database.
func (_c *GamificationRewardCreate) Save(ctx context.Context) (*GamificationReward, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GamificationRewardCreate) SaveX(ctx context.Context) *GamificationReward {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GamificationRewardCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GamificationRewardCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GamificationRewardCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := gamificationreward.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := gamificationreward.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.MinLevel(); !ok {
		v := gamificationreward.DefaultMinLevel
		_c.mutation.SetMinLevel(v)
	}
	if _, ok := _c.mutation.MaxDailyCount(); !ok {
		v := gamificationreward.DefaultMaxDailyCount
		_c.mutation.SetMaxDailyCount(v)
	}
	if _, ok := _c.mutation.CooldownMinutes(); !ok {
		v := gamificationreward.DefaultCooldownMinutes
		_c.mutation.SetCooldownMinutes(v)
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		v := gamificationreward.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := gamificationreward.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GamificationRewardCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "GamificationReward.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "GamificationReward.updated_at"`)}
	}
	if _, ok := _c.mutation.ActivityType(); !ok {
		return &ValidationError{Name: "activity_type", err: errors.New(`repo: missing required field "GamificationReward.activity_type"`)}
	}
	if v, ok := _c.mutation.ActivityType(); ok {
		if err := gamificationreward.ActivityTypeValidator(v); err != nil {
			return &ValidationError{Name: "activity_type", err: fmt.Errorf(`repo: validator failed for field "GamificationReward.activity_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Points(); !ok {
		return &ValidationError{Name: "points", err: errors.New(`repo: missing required field "GamificationReward.points"`)}
	}
	if v, ok := _c.mutation.Points(); ok {
		if err := gamificationreward.PointsValidator(v); err != nil {
			return &ValidationError{Name: "points", err: fmt.Errorf(`repo: validator failed for field "GamificationReward.points": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Xp(); !ok {
		return &ValidationError{Name: "xp", err: errors.New(`repo: missing required field "GamificationReward.xp"`)}
	}
	if v, ok := _c.mutation.Xp(); ok {
		if err := gamificationreward.XpValidator(v); err != nil {
			return &ValidationError{Name: "xp", err: fmt.Errorf(`repo: validator failed for field "GamificationReward.xp": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MinLevel(); !ok {
		return &ValidationError{Name: "min_level", err: errors.New(`repo: missing required field "GamificationReward.min_level"`)}
	}
	if _, ok := _c.mutation.MaxDailyCount(); !ok {
		return &ValidationError{Name: "max_daily_count", err: errors.New(`repo: missing required field "GamificationReward.max_daily_count"`)}
	}
	if _, ok := _c.mutation.CooldownMinutes(); !ok {
		return &ValidationError{Name: "cooldown_minutes", err: errors.New(`repo: missing required field "GamificationReward.cooldown_minutes"`)}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`repo: missing required field "GamificationReward.enabled"`)}
	}
	return nil
}

func (_c *GamificationRewardCreate) sqlSave(ctx context.Context) (*GamificationReward, error) {
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

func (_c *GamificationRewardCreate) createSpec() (*GamificationReward, *sqlgraph.CreateSpec) {
	var (
		_node = &GamificationReward{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(gamificationreward.Table, sqlgraph.NewFieldSpec(gamificationreward.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(gamificationreward.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(gamificationreward.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ActivityType(); ok {
		_spec.SetField(gamificationreward.FieldActivityType, field.TypeString, value)
		_node.ActivityType = value
	}
	if value, ok := _c.mutation.Points(); ok {
		_spec.SetField(gamificationreward.FieldPoints, field.TypeInt, value)
		_node.Points = value
	}
	if value, ok := _c.mutation.Xp(); ok {
		_spec.SetField(gamificationreward.FieldXp, field.TypeInt, value)
		_node.Xp = value
	}
	if value, ok := _c.mutation.MinLevel(); ok {
		_spec.SetField(gamificationreward.FieldMinLevel, field.TypeInt, value)
		_node.MinLevel = value
	}
	if value, ok := _c.mutation.MaxDailyCount(); ok {
		_spec.SetField(gamificationreward.FieldMaxDailyCount, field.TypeInt, value)
		_node.MaxDailyCount = value
	}
	if value, ok := _c.mutation.CooldownMinutes(); ok {
		_spec.SetField(gamificationreward.FieldCooldownMinutes, field.TypeInt, value)
		_node.CooldownMinutes = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(gamificationreward.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GamificationReward.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GamificationRewardUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *GamificationRewardCreate) OnConflict(opts ...sql.ConflictOption) *GamificationRewardUpsertOne {
	_c.conflict = opts
	return &GamificationRewardUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GamificationReward.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GamificationRewardCreate) OnConflictColumns(columns ...string) *GamificationRewardUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GamificationRewardUpsertOne{
		create: _c,
	}
}

type (
	// GamificationRewardUpsertOne is the builder for "upsert"-ing
	//  one GamificationReward node.
	GamificationRewardUpsertOne struct {
		create *GamificationRewardCreate
	}

	// GamificationRewardUpsert is the "OnConflict" setter.
	GamificationRewardUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *GamificationRewardUpsert) SetUpdatedAt(v time.Time) *GamificationRewardUpsert {
	u.Set(gamificationreward.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *GamificationRewardUpsert) UpdateUpdatedAt() *GamificationRewardUpsert {
	u.SetExcluded(gamificationreward.FieldUpdatedAt)
	return u
}

// SetActivityType sets the "activity_type" field.
func (u *GamificationRewardUpsert) SetActivityType(v string) *GamificationRewardUpsert {
	u.Set(gamificationreward.FieldActivityType, v)
	return u
}

// UpdateActivityType sets the "activity_type" field to the value that was provided on create.
func (u *GamificationRewardUpsert) UpdateActivityType() *GamificationRewardUpsert {
	u.SetExcluded(gamificationreward.FieldActivityType)
	return u
}

// SetPoints sets the "points" field.
func (u *GamificationRewardUpsert) SetPoints(v int) *GamificationRewardUpsert {
	u.Set(gamificationreward.FieldPoints, v)
	return u
}

// UpdatePoints sets the "points" field to the value that was provided on create.
func (u *GamificationRewardUpsert) UpdatePoints() *GamificationRewardUpsert {
	u.SetExcluded(gamificationreward.FieldPoints)
	return u
}

// AddPoints adds v to the "points" field.
func (u *GamificationRewardUpsert) AddPoints(v int) *GamificationRewardUpsert {
	u.Add(gamificationreward.FieldPoints, v)
	return u
}

// SetXp sets the "xp" field.
func (u *GamificationRewardUpsert) SetXp(v int) *GamificationRewardUpsert {
	u.Set(gamificationreward.FieldXp, v)
	return u
}

// UpdateXp sets the "xp" field to the value that was provided on create.
func (u *GamificationRewardUpsert) UpdateXp() *GamificationRewardUpsert {
	u.SetExcluded(gamificationreward.FieldXp)
	return u
}

// AddXp adds v to the "xp" field.
func (u *GamificationRewardUpsert) AddXp(v int) *GamificationRewardUpsert {
	u.Add(gamificationreward.FieldXp, v)
	return u
}

// SetMinLevel sets the "min_level" field.
func (u *GamificationRewardUpsert) SetMinLevel(v int) *GamificationRewardUpsert {
	u.Set(gamificationreward.FieldMinLevel, v)
	return u
}

// UpdateMinLevel sets the "min_level" field to the value that was provided on create.
func (u *GamificationRewardUpsert) UpdateMinLevel() *GamificationRewardUpsert {
	u.SetExcluded(gamificationreward.FieldMinLevel)
	return u
}

// AddMinLevel adds v to the "min_level" field.
func (u *GamificationRewardUpsert) AddMinLevel(v int) *GamificationRewardUpsert {
	u.Add(gamificationreward.FieldMinLevel, v)
	return u
}

// SetMaxDailyCount sets the "max_daily_count" field.
func (u *GamificationRewardUpsert) SetMaxDailyCount(v int) *GamificationRewardUpsert {
	u.Set(gamificationreward.FieldMaxDailyCount, v)
	return u
}

// UpdateMaxDailyCount sets the "max_daily_count" field to the value that was provided on create.
func (u *GamificationRewardUpsert) UpdateMaxDailyCount() *GamificationRewardUpsert {
	u.SetExcluded(gamificationreward.FieldMaxDailyCount)
	return u
}

// AddMaxDailyCount adds v to the "max_daily_count" field.
func (u *GamificationRewardUpsert) AddMaxDailyCount(v int) *GamificationRewardUpsert {
	u.Add(gamificationreward.FieldMaxDailyCount, v)
	return u
}

// SetCooldownMinutes sets the "cooldown_minutes" field.
func (u *GamificationRewardUpsert) SetCooldownMinutes(v int) *GamificationRewardUpsert {
	u.Set(gamificationreward.FieldCooldownMinutes, v)
	return u
}

// UpdateCooldownMinutes sets the "cooldown_minutes" field to the value that was provided on create.
func (u *GamificationRewardUpsert) UpdateCooldownMinutes() *GamificationRewardUpsert {
	u.SetExcluded(gamificationreward.FieldCooldownMinutes)
	return u
}

// AddCooldownMinutes adds v to the "cooldown_minutes" field.
func (u *GamificationRewardUpsert) AddCooldownMinutes(v int) *GamificationRewardUpsert {
	u.Add(gamificationreward.FieldCooldownMinutes, v)
	return u
}

// SetEnabled sets the "enabled" field.
func (u *GamificationRewardUpsert) SetEnabled(v bool) *GamificationRewardUpsert {
	u.Set(gamificationreward.FieldEnabled, v)
	return u
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *GamificationRewardUpsert) UpdateEnabled() *GamificationRewardUpsert {
	u.SetExcluded(gamificationreward.FieldEnabled)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.GamificationReward.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(gamificationreward.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GamificationRewardUpsertOne) UpdateNewValues() *GamificationRewardUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(gamificationreward.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(gamificationreward.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GamificationReward.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *GamificationRewardUpsertOne) Ignore() *GamificationRewardUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GamificationRewardUpsertOne) DoNothing() *GamificationRewardUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GamificationRewardCreate.OnConflict
// documentation for more info.
func (u *GamificationRewardUpsertOne) Update(set func(*GamificationRewardUpsert)) *GamificationRewardUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GamificationRewardUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *GamificationRewardUpsertOne) SetUpdatedAt(v time.Time) *GamificationRewardUpsertOne {
	return u.Update(func(s *GamificationRewardUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *GamificationRewardUpsertOne) UpdateUpdatedAt() *GamificationRewardUpsertOne {
	return u.Update(func(s *GamificationRewardUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetActivityType sets the "activity_type" field.
func (u *GamificationRewardUpsertOne) SetActivityType(v string) *GamificationRewardUpsertOne {
	return u.Update(func(s *GamificationRewardUpsert) {
		s.SetActivityType(v)
	})
}

// UpdateActivityType sets the "activity_type" field to the value that was provided on create.
func (u *GamificationRewardUpsertOne) UpdateActivityType() *GamificationRewardUpsertOne {
	return u.Update(func(s *GamificationRewardUpsert) {
		s.UpdateActivityType()
	})
}

// SetPoints sets the "points" field.
func (u *GamificationRewardUpsertOne) SetPoints(v int) *GamificationRewardUpsertOne {
	return u.Update(func(s *GamificationRewardUpsert) {
		s.SetPoints(v)
	})
}

// AddPoints adds v to the "points" field.
func (u *GamificationRewardUpsertOne) AddPoints(v int) *GamificationRewardUpsertOne {
	return u.Update(func(s *GamificationRewardUpsert) {
		s.AddPoints(v)
	})
}

// UpdatePoints sets the "points" field to the value that was provided on create.
func (u *GamificationRewardUpsertOne) UpdatePoints() *GamificationRewardUpsertOne {
	return u.Update(func(s *GamificationRewardUpsert) {
		s.UpdatePoints()
	})
}

// SetXp sets the "xp" field.
func (u *GamificationRewardUpsertOne) SetXp(v int) *GamificationRewardUpsertOne {
	return u.Update(func(s *GamificationRewardUpsert) {
		s.SetXp(v)
	})
}

// AddXp adds v to the "xp" field.
func (u *GamificationRewardUpsertOne) AddXp(v int) *GamificationRewardUpsertOne {
	return u.Update(func(s *GamificationRewardUpsert) {
		s.AddXp(v)
	})
}

// UpdateXp sets the "xp" field to the value that was provided on create.
func (u *GamificationRewardUpsertOne) UpdateXp() *GamificationRewardUpsertOne {
	return u.Update(func(s *GamificationRewardUpsert) {
		s.UpdateXp()
	})
}

// SetMinLevel sets the "min_level" field.
func (u *GamificationRewardUpsertOne) SetMinLevel(v int) *GamificationRewardUpsertOne {
	return u.Update(func(s *GamificationRewardUpsert) {
		s.SetMinLevel(v)
	})
}

// AddMinLevel adds v to the "min_level" field.
func (u *GamificationRewardUpsertOne) AddMinLevel(v int) *GamificationRewardUpsertOne {
	return u.Update(func(s *GamificationRewardUpsert) {
		s.AddMinLevel(v)
	})
}

// UpdateMinLevel sets the "min_level" field to the value that was provided on create.
func (u *GamificationRewardUpsertOne) UpdateMinLevel() *GamificationRewardUpsertOne {
	return u.Update(func(s *GamificationRewardUpsert) {
		s.UpdateMinLevel()
	})
}

// SetMaxDailyCount sets the "max_daily_count" field.
func (u *GamificationRewardUpsertOne) SetMaxDailyCount(v int) *GamificationRewardUpsertOne {
	return u.Update(func(s *GamificationRewardUpsert) {
		s.SetMaxDailyCount(v)
	})
}

// AddMaxDailyCount adds v to the "max_daily_count" field.
func (u *GamificationRewardUpsertOne) AddMaxDailyCount(v int) *GamificationRewardUpsertOne {
	return u.Update(func(s *GamificationRewardUpsert) {
		s.AddMaxDailyCount(v)
	})
}

// UpdateMaxDailyCount sets the "max_daily_count" field to the value that was provided on create.
func (u *GamificationRewardUpsertOne) UpdateMaxDailyCount() *GamificationRewardUpsertOne {
	return u.Update(func(s *GamificationRewardUpsert) {
		s.UpdateMaxDailyCount()
	})
}

// SetCooldownMinutes sets the "cooldown_minutes" field.
func (u *GamificationRewardUpsertOne) SetCooldownMinutes(v int) *GamificationRewardUpsertOne {
	return u.Update(func(s *GamificationRewardUpsert) {
		s.SetCooldownMinutes(v)
	})
}

// AddCooldownMinutes adds v to the "cooldown_minutes" field.
func (u *GamificationRewardUpsertOne) AddCooldownMinutes(v int) *GamificationRewardUpsertOne {
	return u.Update(func(s *GamificationRewardUpsert) {
		s.AddCooldownMinutes(v)
	})
}

// UpdateCooldownMinutes sets the "cooldown_minutes" field to the value that was provided on create.
func (u *GamificationRewardUpsertOne) UpdateCooldownMinutes() *GamificationRewardUpsertOne {
	return u.Update(func(s *GamificationRewardUpsert) {
		s.UpdateCooldownMinutes()
	})
}

// SetEnabled sets the "enabled" field.
func (u *GamificationRewardUpsertOne) SetEnabled(v bool) *GamificationRewardUpsertOne {
	return u.Update(func(s *GamificationRewardUpsert) {
		s.SetEnabled(v)
	})
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *GamificationRewardUpsertOne) UpdateEnabled() *GamificationRewardUpsertOne {
	return u.Update(func(s *GamificationRewardUpsert) {
		s.UpdateEnabled()
	})
}

// Exec executes the query.
func (u *GamificationRewardUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for GamificationRewardCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GamificationRewardUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *GamificationRewardUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: GamificationRewardUpsertOne.ID is not supported by MySQL driver. Use GamificationRewardUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *GamificationRewardUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// GamificationRewardCreateBulk is the builder for creating many GamificationReward entities in bulk.
type GamificationRewardCreateBulk struct {
	config
	err      error
	builders []*GamificationRewardCreate
	conflict []sql.ConflictOption
}

// Save creates the GamificationReward entities in the database.
func (_c *GamificationRewardCreateBulk) Save(ctx context.Context) ([]*GamificationReward, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GamificationReward, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GamificationRewardMutation)
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
func (_c *GamificationRewardCreateBulk) SaveX(ctx context.Context) []*GamificationReward {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GamificationRewardCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GamificationRewardCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GamificationReward.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GamificationRewardUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *GamificationRewardCreateBulk) OnConflict(opts ...sql.ConflictOption) *GamificationRewardUpsertBulk {
	_c.conflict = opts
	return &GamificationRewardUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GamificationReward.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GamificationRewardCreateBulk) OnConflictColumns(columns ...string) *GamificationRewardUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GamificationRewardUpsertBulk{
		create: _c,
	}
}

// GamificationRewardUpsertBulk is the builder for "upsert"-ing
// a bulk of GamificationReward nodes.
type GamificationRewardUpsertBulk struct {
	create *GamificationRewardCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.GamificationReward.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(gamificationreward.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GamificationRewardUpsertBulk) UpdateNewValues() *GamificationRewardUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(gamificationreward.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(gamificationreward.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GamificationReward.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *GamificationRewardUpsertBulk) Ignore() *GamificationRewardUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GamificationRewardUpsertBulk) DoNothing() *GamificationRewardUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GamificationRewardCreateBulk.OnConflict
// documentation for more info.
func (u *GamificationRewardUpsertBulk) Update(set func(*GamificationRewardUpsert)) *GamificationRewardUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GamificationRewardUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *GamificationRewardUpsertBulk) SetUpdatedAt(v time.Time) *GamificationRewardUpsertBulk {
	return u.Update(func(s *GamificationRewardUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *GamificationRewardUpsertBulk) UpdateUpdatedAt() *GamificationRewardUpsertBulk {
	return u.Update(func(s *GamificationRewardUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetActivityType sets the "activity_type" field.
func (u *GamificationRewardUpsertBulk) SetActivityType(v string) *GamificationRewardUpsertBulk {
	return u.Update(func(s *GamificationRewardUpsert) {
		s.SetActivityType(v)
	})
}

// UpdateActivityType sets the "activity_type" field to the value that was provided on create.
func (u *GamificationRewardUpsertBulk) UpdateActivityType() *GamificationRewardUpsertBulk {
	return u.Update(func(s *GamificationRewardUpsert) {
		s.UpdateActivityType()
	})
}

// SetPoints sets the "points" field.
func (u *GamificationRewardUpsertBulk) SetPoints(v int) *GamificationRewardUpsertBulk {
	return u.Update(func(s *GamificationRewardUpsert) {
		s.SetPoints(v)
	})
}

// AddPoints adds v to the "points" field.
func (u *GamificationRewardUpsertBulk) AddPoints(v int) *GamificationRewardUpsertBulk {
	return u.Update(func(s *GamificationRewardUpsert) {
		s.AddPoints(v)
	})
}

// UpdatePoints sets the "points" field to the value that was provided on create.
func (u *GamificationRewardUpsertBulk) UpdatePoints() *GamificationRewardUpsertBulk {
	return u.Update(func(s *GamificationRewardUpsert) {
		s.UpdatePoints()
	})
}

// SetXp sets the "xp" field.
func (u *GamificationRewardUpsertBulk) SetXp(v int) *GamificationRewardUpsertBulk {
	return u.Update(func(s *GamificationRewardUpsert) {
		s.SetXp(v)
	})
}

// AddXp adds v to the "xp" field.
func (u *GamificationRewardUpsertBulk) AddXp(v int) *GamificationRewardUpsertBulk {
	return u.Update(func(s *GamificationRewardUpsert) {
		s.AddXp(v)
	})
}

// UpdateXp sets the "xp" field to the value that was provided on create.
func (u *GamificationRewardUpsertBulk) UpdateXp() *GamificationRewardUpsertBulk {
	return u.Update(func(s *GamificationRewardUpsert) {
		s.UpdateXp()
	})
}

// SetMinLevel sets the "min_level" field.
func (u *GamificationRewardUpsertBulk) SetMinLevel(v int) *GamificationRewardUpsertBulk {
	return u.Update(func(s *GamificationRewardUpsert) {
		s.SetMinLevel(v)
	})
}

// AddMinLevel adds v to the "min_level" field.
func (u *GamificationRewardUpsertBulk) AddMinLevel(v int) *GamificationRewardUpsertBulk {
	return u.Update(func(s *GamificationRewardUpsert) {
		s.AddMinLevel(v)
	})
}

// UpdateMinLevel sets the "min_level" field to the value that was provided on create.
func (u *GamificationRewardUpsertBulk) UpdateMinLevel() *GamificationRewardUpsertBulk {
	return u.Update(func(s *GamificationRewardUpsert) {
		s.UpdateMinLevel()
	})
}

// SetMaxDailyCount sets the "max_daily_count" field.
func (u *GamificationRewardUpsertBulk) SetMaxDailyCount(v int) *GamificationRewardUpsertBulk {
	return u.Update(func(s *GamificationRewardUpsert) {
		s.SetMaxDailyCount(v)
	})
}

// AddMaxDailyCount adds v to the "max_daily_count" field.
func (u *GamificationRewardUpsertBulk) AddMaxDailyCount(v int) *GamificationRewardUpsertBulk {
	return u.Update(func(s *GamificationRewardUpsert) {
		s.AddMaxDailyCount(v)
	})
}

// UpdateMaxDailyCount sets the "max_daily_count" field to the value that was provided on create.
func (u *GamificationRewardUpsertBulk) UpdateMaxDailyCount() *GamificationRewardUpsertBulk {
	return u.Update(func(s *GamificationRewardUpsert) {
		s.UpdateMaxDailyCount()
	})
}

// SetCooldownMinutes sets the "cooldown_minutes" field.
func (u *GamificationRewardUpsertBulk) SetCooldownMinutes(v int) *GamificationRewardUpsertBulk {
	return u.Update(func(s *GamificationRewardUpsert) {
		s.SetCooldownMinutes(v)
	})
}

// AddCooldownMinutes adds v to the "cooldown_minutes" field.
func (u *GamificationRewardUpsertBulk) AddCooldownMinutes(v int) *GamificationRewardUpsertBulk {
	return u.Update(func(s *GamificationRewardUpsert) {
		s.AddCooldownMinutes(v)
	})
}

// UpdateCooldownMinutes sets the "cooldown_minutes" field to the value that was provided on create.
func (u *GamificationRewardUpsertBulk) UpdateCooldownMinutes() *GamificationRewardUpsertBulk {
	return u.Update(func(s *GamificationRewardUpsert) {
		s.UpdateCooldownMinutes()
	})
}

// SetEnabled sets the "enabled" field.
func (u *GamificationRewardUpsertBulk) SetEnabled(v bool) *GamificationRewardUpsertBulk {
	return u.Update(func(s *GamificationRewardUpsert) {
		s.SetEnabled(v)
	})
}

// UpdateEnabled sets the "enabled" field to the value that was provided on create.
func (u *GamificationRewardUpsertBulk) UpdateEnabled() *GamificationRewardUpsertBulk {
	return u.Update(func(s *GamificationRewardUpsert) {
		s.UpdateEnabled()
	})
}

// Exec executes the query.
func (u *GamificationRewardUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the GamificationRewardCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for GamificationRewardCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GamificationRewardUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
