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
	"github.com/amparasaude/ampara_backend/internal/repo/userprogress"
	"github.com/google/uuid"
)

// UserProgressCreate is the builder for creating a UserProgress entity.
type UserProgressCreate struct {
	config
	mutation *UserProgressMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *UserProgressCreate) SetCreatedAt(v time.Time) *UserProgressCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UserProgressCreate) SetNillableCreatedAt(v *time.Time) *UserProgressCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *UserProgressCreate) SetUpdatedAt(v time.Time) *UserProgressCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *UserProgressCreate) SetNillableUpdatedAt(v *time.Time) *UserProgressCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *UserProgressCreate) SetUserID(v uuid.UUID) *UserProgressCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTotalPoints sets the "total_points" field.
func (_c *UserProgressCreate) SetTotalPoints(v int) *UserProgressCreate {
	_c.mutation.SetTotalPoints(v)
	return _c
}

// SetNillableTotalPoints sets the "total_points" field if the given value is not nil.
func (_c *UserProgressCreate) SetNillableTotalPoints(v *int) *UserProgressCreate {
	if v != nil {
		_c.SetTotalPoints(*v)
	}
	return _c
}

// SetTotalXp sets the "total_xp" field.
func (_c *UserProgressCreate) SetTotalXp(v int) *UserProgressCreate {
	_c.mutation.SetTotalXp(v)
	return _c
}

// SetNillableTotalXp sets the "total_xp" field if the given value is not nil.
func (_c *UserProgressCreate) SetNillableTotalXp(v *int) *UserProgressCreate {
	if v != nil {
		_c.SetTotalXp(*v)
	}
	return _c
}

// SetCurrentLevel sets the "current_level" field.
func (_c *UserProgressCreate) SetCurrentLevel(v int) *UserProgressCreate {
	_c.mutation.SetCurrentLevel(v)
	return _c
}

// SetNillableCurrentLevel sets the "current_level" field if the given value is not nil.
func (_c *UserProgressCreate) SetNillableCurrentLevel(v *int) *UserProgressCreate {
	if v != nil {
		_c.SetCurrentLevel(*v)
	}
	return _c
}

// SetWeeklyPoints sets the "weekly_points" field.
func (_c *UserProgressCreate) SetWeeklyPoints(v int) *UserProgressCreate {
	_c.mutation.SetWeeklyPoints(v)
	return _c
}

// SetNillableWeeklyPoints sets the "weekly_points" field if the given value is not nil.
func (_c *UserProgressCreate) SetNillableWeeklyPoints(v *int) *UserProgressCreate {
	if v != nil {
		_c.SetWeeklyPoints(*v)
	}
	return _c
}

// SetMonthlyPoints sets the "monthly_points" field.
func (_c *UserProgressCreate) SetMonthlyPoints(v int) *UserProgressCreate {
	_c.mutation.SetMonthlyPoints(v)
	return _c
}

// SetNillableMonthlyPoints sets the "monthly_points" field if the given value is not nil.
func (_c *UserProgressCreate) SetNillableMonthlyPoints(v *int) *UserProgressCreate {
	if v != nil {
		_c.SetMonthlyPoints(*v)
	}
	return _c
}

// SetWeekAnchor sets the "week_anchor" field.
func (_c *UserProgressCreate) SetWeekAnchor(v time.Time) *UserProgressCreate {
	_c.mutation.SetWeekAnchor(v)
	return _c
}

// SetNillableWeekAnchor sets the "week_anchor" field if the given value is not nil.
func (_c *UserProgressCreate) SetNillableWeekAnchor(v *time.Time) *UserProgressCreate {
	if v != nil {
		_c.SetWeekAnchor(*v)
	}
	return _c
}

// SetMonthAnchor sets the "month_anchor" field.
func (_c *UserProgressCreate) SetMonthAnchor(v time.Time) *UserProgressCreate {
	_c.mutation.SetMonthAnchor(v)
	return _c
}

// SetNillableMonthAnchor sets the "month_anchor" field if the given value is not nil.
func (_c *UserProgressCreate) SetNillableMonthAnchor(v *time.Time) *UserProgressCreate {
	if v != nil {
		_c.SetMonthAnchor(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UserProgressCreate) SetID(v uuid.UUID) *UserProgressCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *UserProgressCreate) SetNillableID(v *uuid.UUID) *UserProgressCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the UserProgressMutation object of the builder.
func (_c *UserProgressCreate) Mutation() *UserProgressMutation {
	return _c.mutation
}

// Save creates the UserProgress in the database.
func (_c *UserProgressCreate) Save(ctx context.Context) (*UserProgress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserProgressCreate) SaveX(ctx context.Context) *UserProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserProgressCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := userprogress.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := userprogress.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.TotalPoints(); !ok {
		v := userprogress.DefaultTotalPoints
		_c.mutation.SetTotalPoints(v)
	}
	if _, ok := _c.mutation.TotalXp(); !ok {
		v := userprogress.DefaultTotalXp
		_c.mutation.SetTotalXp(v)
	}
	if _, ok := _c.mutation.CurrentLevel(); !ok {
		v := userprogress.DefaultCurrentLevel
		_c.mutation.SetCurrentLevel(v)
	}
	if _, ok := _c.mutation.WeeklyPoints(); !ok {
		v := userprogress.DefaultWeeklyPoints
		_c.mutation.SetWeeklyPoints(v)
	}
	if _, ok := _c.mutation.MonthlyPoints(); !ok {
		v := userprogress.DefaultMonthlyPoints
		_c.mutation.SetMonthlyPoints(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := userprogress.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserProgressCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "UserProgress.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "UserProgress.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`repo: missing required field "UserProgress.user_id"`)}
	}
	if _, ok := _c.mutation.TotalPoints(); !ok {
		return &ValidationError{Name: "total_points", err: errors.New(`repo: missing required field "UserProgress.total_points"`)}
	}
	if v, ok := _c.mutation.TotalPoints(); ok {
		if err := userprogress.TotalPointsValidator(v); err != nil {
			return &ValidationError{Name: "total_points", err: fmt.Errorf(`repo: validator failed for field "UserProgress.total_points": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalXp(); !ok {
		return &ValidationError{Name: "total_xp", err: errors.New(`repo: missing required field "UserProgress.total_xp"`)}
	}
	if v, ok := _c.mutation.TotalXp(); ok {
		if err := userprogress.TotalXpValidator(v); err != nil {
			return &ValidationError{Name: "total_xp", err: fmt.Errorf(`repo: validator failed for field "UserProgress.total_xp": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CurrentLevel(); !ok {
		return &ValidationError{Name: "current_level", err: errors.New(`repo: missing required field "UserProgress.current_level"`)}
	}
	if v, ok := _c.mutation.CurrentLevel(); ok {
		if err := userprogress.CurrentLevelValidator(v); err != nil {
			return &ValidationError{Name: "current_level", err: fmt.Errorf(`repo: validator failed for field "UserProgress.current_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WeeklyPoints(); !ok {
		return &ValidationError{Name: "weekly_points", err: errors.New(`repo: missing required field "UserProgress.weekly_points"`)}
	}
	if _, ok := _c.mutation.MonthlyPoints(); !ok {
		return &ValidationError{Name: "monthly_points", err: errors.New(`repo: missing required field "UserProgress.monthly_points"`)}
	}
	return nil
}

func (_c *UserProgressCreate) sqlSave(ctx context.Context) (*UserProgress, error) {
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

func (_c *UserProgressCreate) createSpec() (*UserProgress, *sqlgraph.CreateSpec) {
	var (
		_node = &UserProgress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(userprogress.Table, sqlgraph.NewFieldSpec(userprogress.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(userprogress.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(userprogress.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(userprogress.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.TotalPoints(); ok {
		_spec.SetField(userprogress.FieldTotalPoints, field.TypeInt, value)
		_node.TotalPoints = value
	}
	if value, ok := _c.mutation.TotalXp(); ok {
		_spec.SetField(userprogress.FieldTotalXp, field.TypeInt, value)
		_node.TotalXp = value
	}
	if value, ok := _c.mutation.CurrentLevel(); ok {
		_spec.SetField(userprogress.FieldCurrentLevel, field.TypeInt, value)
		_node.CurrentLevel = value
	}
	if value, ok := _c.mutation.WeeklyPoints(); ok {
		_spec.SetField(userprogress.FieldWeeklyPoints, field.TypeInt, value)
		_node.WeeklyPoints = value
	}
	if value, ok := _c.mutation.MonthlyPoints(); ok {
		_spec.SetField(userprogress.FieldMonthlyPoints, field.TypeInt, value)
		_node.MonthlyPoints = value
	}
	if value, ok := _c.mutation.WeekAnchor(); ok {
		_spec.SetField(userprogress.FieldWeekAnchor, field.TypeTime, value)
		_node.WeekAnchor = &value
	}
	if value, ok := _c.mutation.MonthAnchor(); ok {
		_spec.SetField(userprogress.FieldMonthAnchor, field.TypeTime, value)
		_node.MonthAnchor = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UserProgress.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UserProgressUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *UserProgressCreate) OnConflict(opts ...sql.ConflictOption) *UserProgressUpsertOne {
	_c.conflict = opts
	return &UserProgressUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UserProgress.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UserProgressCreate) OnConflictColumns(columns ...string) *UserProgressUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UserProgressUpsertOne{
		create: _c,
	}
}

type (
	// UserProgressUpsertOne is the builder for "upsert"-ing
	//  one UserProgress node.
	UserProgressUpsertOne struct {
		create *UserProgressCreate
	}

	// UserProgressUpsert is the "OnConflict" setter.
	UserProgressUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *UserProgressUpsert) SetUpdatedAt(v time.Time) *UserProgressUpsert {
	u.Set(userprogress.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UserProgressUpsert) UpdateUpdatedAt() *UserProgressUpsert {
	u.SetExcluded(userprogress.FieldUpdatedAt)
	return u
}

// SetUserID sets the "user_id" field.
func (u *UserProgressUpsert) SetUserID(v uuid.UUID) *UserProgressUpsert {
	u.Set(userprogress.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *UserProgressUpsert) UpdateUserID() *UserProgressUpsert {
	u.SetExcluded(userprogress.FieldUserID)
	return u
}

// SetTotalPoints sets the "total_points" field.
func (u *UserProgressUpsert) SetTotalPoints(v int) *UserProgressUpsert {
	u.Set(userprogress.FieldTotalPoints, v)
	return u
}

// UpdateTotalPoints sets the "total_points" field to the value that was provided on create.
func (u *UserProgressUpsert) UpdateTotalPoints() *UserProgressUpsert {
	u.SetExcluded(userprogress.FieldTotalPoints)
	return u
}

// AddTotalPoints adds v to the "total_points" field.
func (u *UserProgressUpsert) AddTotalPoints(v int) *UserProgressUpsert {
	u.Add(userprogress.FieldTotalPoints, v)
	return u
}

// SetTotalXp sets the "total_xp" field.
func (u *UserProgressUpsert) SetTotalXp(v int) *UserProgressUpsert {
	u.Set(userprogress.FieldTotalXp, v)
	return u
}

// UpdateTotalXp sets the "total_xp" field to the value that was provided on create.
func (u *UserProgressUpsert) UpdateTotalXp() *UserProgressUpsert {
	u.SetExcluded(userprogress.FieldTotalXp)
	return u
}

// AddTotalXp adds v to the "total_xp" field.
func (u *UserProgressUpsert) AddTotalXp(v int) *UserProgressUpsert {
	u.Add(userprogress.FieldTotalXp, v)
	return u
}

// SetCurrentLevel sets the "current_level" field.
func (u *UserProgressUpsert) SetCurrentLevel(v int) *UserProgressUpsert {
	u.Set(userprogress.FieldCurrentLevel, v)
	return u
}

// UpdateCurrentLevel sets the "current_level" field to the value that was provided on create.
func (u *UserProgressUpsert) UpdateCurrentLevel() *UserProgressUpsert {
	u.SetExcluded(userprogress.FieldCurrentLevel)
	return u
}

// AddCurrentLevel adds v to the "current_level" field.
func (u *UserProgressUpsert) AddCurrentLevel(v int) *UserProgressUpsert {
	u.Add(userprogress.FieldCurrentLevel, v)
	return u
}

// SetWeeklyPoints sets the "weekly_points" field.
func (u *UserProgressUpsert) SetWeeklyPoints(v int) *UserProgressUpsert {
	u.Set(userprogress.FieldWeeklyPoints, v)
	return u
}

// UpdateWeeklyPoints sets the "weekly_points" field to the value that was provided on create.
func (u *UserProgressUpsert) UpdateWeeklyPoints() *UserProgressUpsert {
	u.SetExcluded(userprogress.FieldWeeklyPoints)
	return u
}

// AddWeeklyPoints adds v to the "weekly_points" field.
func (u *UserProgressUpsert) AddWeeklyPoints(v int) *UserProgressUpsert {
	u.Add(userprogress.FieldWeeklyPoints, v)
	return u
}

// SetMonthlyPoints sets the "monthly_points" field.
func (u *UserProgressUpsert) SetMonthlyPoints(v int) *UserProgressUpsert {
	u.Set(userprogress.FieldMonthlyPoints, v)
	return u
}

// UpdateMonthlyPoints sets the "monthly_points" field to the value that was provided on create.
func (u *UserProgressUpsert) UpdateMonthlyPoints() *UserProgressUpsert {
	u.SetExcluded(userprogress.FieldMonthlyPoints)
	return u
}

// AddMonthlyPoints adds v to the "monthly_points" field.
func (u *UserProgressUpsert) AddMonthlyPoints(v int) *UserProgressUpsert {
	u.Add(userprogress.FieldMonthlyPoints, v)
	return u
}

// SetWeekAnchor sets the "week_anchor" field.
func (u *UserProgressUpsert) SetWeekAnchor(v time.Time) *UserProgressUpsert {
	u.Set(userprogress.FieldWeekAnchor, v)
	return u
}

// UpdateWeekAnchor sets the "week_anchor" field to the value that was provided on create.
func (u *UserProgressUpsert) UpdateWeekAnchor() *UserProgressUpsert {
	u.SetExcluded(userprogress.FieldWeekAnchor)
	return u
}

// ClearWeekAnchor clears the value of the "week_anchor" field.
func (u *UserProgressUpsert) ClearWeekAnchor() *UserProgressUpsert {
	u.SetNull(userprogress.FieldWeekAnchor)
	return u
}

// SetMonthAnchor sets the "month_anchor" field.
func (u *UserProgressUpsert) SetMonthAnchor(v time.Time) *UserProgressUpsert {
	u.Set(userprogress.FieldMonthAnchor, v)
	return u
}

// UpdateMonthAnchor sets the "month_anchor" field to the value that was provided on create.
func (u *UserProgressUpsert) UpdateMonthAnchor() *UserProgressUpsert {
	u.SetExcluded(userprogress.FieldMonthAnchor)
	return u
}

// ClearMonthAnchor clears the value of the "month_anchor" field.
func (u *UserProgressUpsert) ClearMonthAnchor() *UserProgressUpsert {
	u.SetNull(userprogress.FieldMonthAnchor)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.UserProgress.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(userprogress.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UserProgressUpsertOne) UpdateNewValues() *UserProgressUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(userprogress.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(userprogress.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UserProgress.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *UserProgressUpsertOne) Ignore() *UserProgressUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UserProgressUpsertOne) DoNothing() *UserProgressUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UserProgressCreate.OnConflict
// documentation for more info.
func (u *UserProgressUpsertOne) Update(set func(*UserProgressUpsert)) *UserProgressUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UserProgressUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *UserProgressUpsertOne) SetUpdatedAt(v time.Time) *UserProgressUpsertOne {
	return u.Update(func(s *UserProgressUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UserProgressUpsertOne) UpdateUpdatedAt() *UserProgressUpsertOne {
	return u.Update(func(s *UserProgressUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *UserProgressUpsertOne) SetUserID(v uuid.UUID) *UserProgressUpsertOne {
	return u.Update(func(s *UserProgressUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *UserProgressUpsertOne) UpdateUserID() *UserProgressUpsertOne {
	return u.Update(func(s *UserProgressUpsert) {
		s.UpdateUserID()
	})
}

// SetTotalPoints sets the "total_points" field.
func (u *UserProgressUpsertOne) SetTotalPoints(v int) *UserProgressUpsertOne {
	return u.Update(func(s *UserProgressUpsert) {
		s.SetTotalPoints(v)
	})
}

// AddTotalPoints adds v to the "total_points" field.
func (u *UserProgressUpsertOne) AddTotalPoints(v int) *UserProgressUpsertOne {
	return u.Update(func(s *UserProgressUpsert) {
		s.AddTotalPoints(v)
	})
}

// UpdateTotalPoints sets the "total_points" field to the value that was provided on create.
func (u *UserProgressUpsertOne) UpdateTotalPoints() *UserProgressUpsertOne {
	return u.Update(func(s *UserProgressUpsert) {
		s.UpdateTotalPoints()
	})
}

// SetTotalXp sets the "total_xp" field.
func (u *UserProgressUpsertOne) SetTotalXp(v int) *UserProgressUpsertOne {
	return u.Update(func(s *UserProgressUpsert) {
		s.SetTotalXp(v)
	})
}

// AddTotalXp adds v to the "total_xp" field.
func (u *UserProgressUpsertOne) AddTotalXp(v int) *UserProgressUpsertOne {
	return u.Update(func(s *UserProgressUpsert) {
		s.AddTotalXp(v)
	})
}

// UpdateTotalXp sets the "total_xp" field to the value that was provided on create.
func (u *UserProgressUpsertOne) UpdateTotalXp() *UserProgressUpsertOne {
	return u.Update(func(s *UserProgressUpsert) {
		s.UpdateTotalXp()
	})
}

// SetCurrentLevel sets the "current_level" field.
func (u *UserProgressUpsertOne) SetCurrentLevel(v int) *UserProgressUpsertOne {
	return u.Update(func(s *UserProgressUpsert) {
		s.SetCurrentLevel(v)
	})
}

// AddCurrentLevel adds v to the "current_level" field.
func (u *UserProgressUpsertOne) AddCurrentLevel(v int) *UserProgressUpsertOne {
	return u.Update(func(s *UserProgressUpsert) {
		s.AddCurrentLevel(v)
	})
}

// UpdateCurrentLevel sets the "current_level" field to the value that was provided on create.
func (u *UserProgressUpsertOne) UpdateCurrentLevel() *UserProgressUpsertOne {
	return u.Update(func(s *UserProgressUpsert) {
		s.UpdateCurrentLevel()
	})
}

// SetWeeklyPoints sets the "weekly_points" field.
func (u *UserProgressUpsertOne) SetWeeklyPoints(v int) *UserProgressUpsertOne {
	return u.Update(func(s *UserProgressUpsert) {
		s.SetWeeklyPoints(v)
	})
}

// AddWeeklyPoints adds v to the "weekly_points" field.
func (u *UserProgressUpsertOne) AddWeeklyPoints(v int) *UserProgressUpsertOne {
	return u.Update(func(s *UserProgressUpsert) {
		s.AddWeeklyPoints(v)
	})
}

// UpdateWeeklyPoints sets the "weekly_points" field to the value that was provided on create.
func (u *UserProgressUpsertOne) UpdateWeeklyPoints() *UserProgressUpsertOne {
	return u.Update(func(s *UserProgressUpsert) {
		s.UpdateWeeklyPoints()
	})
}

// SetMonthlyPoints sets the "monthly_points" field.
func (u *UserProgressUpsertOne) SetMonthlyPoints(v int) *UserProgressUpsertOne {
	return u.Update(func(s *UserProgressUpsert) {
		s.SetMonthlyPoints(v)
	})
}

// AddMonthlyPoints adds v to the "monthly_points" field.
func (u *UserProgressUpsertOne) AddMonthlyPoints(v int) *UserProgressUpsertOne {
	return u.Update(func(s *UserProgressUpsert) {
		s.AddMonthlyPoints(v)
	})
}

// UpdateMonthlyPoints sets the "monthly_points" field to the value that was provided on create.
func (u *UserProgressUpsertOne) UpdateMonthlyPoints() *UserProgressUpsertOne {
	return u.Update(func(s *UserProgressUpsert) {
		s.UpdateMonthlyPoints()
	})
}

// SetWeekAnchor sets the "week_anchor" field.
func (u *UserProgressUpsertOne) SetWeekAnchor(v time.Time) *UserProgressUpsertOne {
	return u.Update(func(s *UserProgressUpsert) {
		s.SetWeekAnchor(v)
	})
}

// UpdateWeekAnchor sets the "week_anchor" field to the value that was provided on create.
func (u *UserProgressUpsertOne) UpdateWeekAnchor() *UserProgressUpsertOne {
	return u.Update(func(s *UserProgressUpsert) {
		s.UpdateWeekAnchor()
	})
}

// ClearWeekAnchor clears the value of the "week_anchor" field.
func (u *UserProgressUpsertOne) ClearWeekAnchor() *UserProgressUpsertOne {
	return u.Update(func(s *UserProgressUpsert) {
		s.ClearWeekAnchor()
	})
}

// SetMonthAnchor sets the "month_anchor" field.
func (u *UserProgressUpsertOne) SetMonthAnchor(v time.Time) *UserProgressUpsertOne {
	return u.Update(func(s *UserProgressUpsert) {
		s.SetMonthAnchor(v)
	})
}

// UpdateMonthAnchor sets the "month_anchor" field to the value that was provided on create.
func (u *UserProgressUpsertOne) UpdateMonthAnchor() *UserProgressUpsertOne {
	return u.Update(func(s *UserProgressUpsert) {
		s.UpdateMonthAnchor()
	})
}

// ClearMonthAnchor clears the value of the "month_anchor" field.
func (u *UserProgressUpsertOne) ClearMonthAnchor() *UserProgressUpsertOne {
	return u.Update(func(s *UserProgressUpsert) {
		s.ClearMonthAnchor()
	})
}

// Exec executes the query.
func (u *UserProgressUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for UserProgressCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UserProgressUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *UserProgressUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: UserProgressUpsertOne.ID is not supported by MySQL driver. Use UserProgressUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *UserProgressUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// UserProgressCreateBulk is the builder for creating many UserProgress entities in bulk.
type UserProgressCreateBulk struct {
	config
	err      error
	builders []*UserProgressCreate
	conflict []sql.ConflictOption
}

// Save creates the UserProgress entities in the database.
func (_c *UserProgressCreateBulk) Save(ctx context.Context) ([]*UserProgress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UserProgress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserProgressMutation)
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
func (_c *UserProgressCreateBulk) SaveX(ctx context.Context) []*UserProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UserProgress.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UserProgressUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *UserProgressCreateBulk) OnConflict(opts ...sql.ConflictOption) *UserProgressUpsertBulk {
	_c.conflict = opts
	return &UserProgressUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UserProgress.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UserProgressCreateBulk) OnConflictColumns(columns ...string) *UserProgressUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UserProgressUpsertBulk{
		create: _c,
	}
}

// UserProgressUpsertBulk is the builder for "upsert"-ing
// a bulk of UserProgress nodes.
type UserProgressUpsertBulk struct {
	create *UserProgressCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.UserProgress.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(userprogress.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UserProgressUpsertBulk) UpdateNewValues() *UserProgressUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(userprogress.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(userprogress.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UserProgress.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *UserProgressUpsertBulk) Ignore() *UserProgressUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UserProgressUpsertBulk) DoNothing() *UserProgressUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UserProgressCreateBulk.OnConflict
// documentation for more info.
func (u *UserProgressUpsertBulk) Update(set func(*UserProgressUpsert)) *UserProgressUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UserProgressUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *UserProgressUpsertBulk) SetUpdatedAt(v time.Time) *UserProgressUpsertBulk {
	return u.Update(func(s *UserProgressUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *UserProgressUpsertBulk) UpdateUpdatedAt() *UserProgressUpsertBulk {
	return u.Update(func(s *UserProgressUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *UserProgressUpsertBulk) SetUserID(v uuid.UUID) *UserProgressUpsertBulk {
	return u.Update(func(s *UserProgressUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *UserProgressUpsertBulk) UpdateUserID() *UserProgressUpsertBulk {
	return u.Update(func(s *UserProgressUpsert) {
		s.UpdateUserID()
	})
}

// SetTotalPoints sets the "total_points" field.
func (u *UserProgressUpsertBulk) SetTotalPoints(v int) *UserProgressUpsertBulk {
	return u.Update(func(s *UserProgressUpsert) {
		s.SetTotalPoints(v)
	})
}

// AddTotalPoints adds v to the "total_points" field.
func (u *UserProgressUpsertBulk) AddTotalPoints(v int) *UserProgressUpsertBulk {
	return u.Update(func(s *UserProgressUpsert) {
		s.AddTotalPoints(v)
	})
}

// UpdateTotalPoints sets the "total_points" field to the value that was provided on create.
func (u *UserProgressUpsertBulk) UpdateTotalPoints() *UserProgressUpsertBulk {
	return u.Update(func(s *UserProgressUpsert) {
		s.UpdateTotalPoints()
	})
}

// SetTotalXp sets the "total_xp" field.
func (u *UserProgressUpsertBulk) SetTotalXp(v int) *UserProgressUpsertBulk {
	return u.Update(func(s *UserProgressUpsert) {
		s.SetTotalXp(v)
	})
}

// AddTotalXp adds v to the "total_xp" field.
func (u *UserProgressUpsertBulk) AddTotalXp(v int) *UserProgressUpsertBulk {
	return u.Update(func(s *UserProgressUpsert) {
		s.AddTotalXp(v)
	})
}

// UpdateTotalXp sets the "total_xp" field to the value that was provided on create.
func (u *UserProgressUpsertBulk) UpdateTotalXp() *UserProgressUpsertBulk {
	return u.Update(func(s *UserProgressUpsert) {
		s.UpdateTotalXp()
	})
}

// SetCurrentLevel sets the "current_level" field.
func (u *UserProgressUpsertBulk) SetCurrentLevel(v int) *UserProgressUpsertBulk {
	return u.Update(func(s *UserProgressUpsert) {
		s.SetCurrentLevel(v)
	})
}

// AddCurrentLevel adds v to the "current_level" field.
func (u *UserProgressUpsertBulk) AddCurrentLevel(v int) *UserProgressUpsertBulk {
	return u.Update(func(s *UserProgressUpsert) {
		s.AddCurrentLevel(v)
	})
}

// UpdateCurrentLevel sets the "current_level" field to the value that was provided on create.
func (u *UserProgressUpsertBulk) UpdateCurrentLevel() *UserProgressUpsertBulk {
	return u.Update(func(s *UserProgressUpsert) {
		s.UpdateCurrentLevel()
	})
}

// SetWeeklyPoints sets the "weekly_points" field.
func (u *UserProgressUpsertBulk) SetWeeklyPoints(v int) *UserProgressUpsertBulk {
	return u.Update(func(s *UserProgressUpsert) {
		s.SetWeeklyPoints(v)
	})
}

// AddWeeklyPoints adds v to the "weekly_points" field.
func (u *UserProgressUpsertBulk) AddWeeklyPoints(v int) *UserProgressUpsertBulk {
	return u.Update(func(s *UserProgressUpsert) {
		s.AddWeeklyPoints(v)
	})
}

// UpdateWeeklyPoints sets the "weekly_points" field to the value that was provided on create.
func (u *UserProgressUpsertBulk) UpdateWeeklyPoints() *UserProgressUpsertBulk {
	return u.Update(func(s *UserProgressUpsert) {
		s.UpdateWeeklyPoints()
	})
}

// SetMonthlyPoints sets the "monthly_points" field.
func (u *UserProgressUpsertBulk) SetMonthlyPoints(v int) *UserProgressUpsertBulk {
	return u.Update(func(s *UserProgressUpsert) {
		s.SetMonthlyPoints(v)
	})
}

// AddMonthlyPoints adds v to the "monthly_points" field.
func (u *UserProgressUpsertBulk) AddMonthlyPoints(v int) *UserProgressUpsertBulk {
	return u.Update(func(s *UserProgressUpsert) {
		s.AddMonthlyPoints(v)
	})
}

// UpdateMonthlyPoints sets the "monthly_points" field to the value that was provided on create.
func (u *UserProgressUpsertBulk) UpdateMonthlyPoints() *UserProgressUpsertBulk {
	return u.Update(func(s *UserProgressUpsert) {
		s.UpdateMonthlyPoints()
	})
}

// SetWeekAnchor sets the "week_anchor" field.
func (u *UserProgressUpsertBulk) SetWeekAnchor(v time.Time) *UserProgressUpsertBulk {
	return u.Update(func(s *UserProgressUpsert) {
		s.SetWeekAnchor(v)
	})
}

// UpdateWeekAnchor sets the "week_anchor" field to the value that was provided on create.
func (u *UserProgressUpsertBulk) UpdateWeekAnchor() *UserProgressUpsertBulk {
	return u.Update(func(s *UserProgressUpsert) {
		s.UpdateWeekAnchor()
	})
}

// ClearWeekAnchor clears the value of the "week_anchor" field.
func (u *UserProgressUpsertBulk) ClearWeekAnchor() *UserProgressUpsertBulk {
	return u.Update(func(s *UserProgressUpsert) {
		s.ClearWeekAnchor()
	})
}

// SetMonthAnchor sets the "month_anchor" field.
func (u *UserProgressUpsertBulk) SetMonthAnchor(v time.Time) *UserProgressUpsertBulk {
	return u.Update(func(s *UserProgressUpsert) {
		s.SetMonthAnchor(v)
	})
}

// UpdateMonthAnchor sets the "month_anchor" field to the value that was provided on create.
func (u *UserProgressUpsertBulk) UpdateMonthAnchor() *UserProgressUpsertBulk {
	return u.Update(func(s *UserProgressUpsert) {
		s.UpdateMonthAnchor()
	})
}

// ClearMonthAnchor clears the value of the "month_anchor" field.
func (u *UserProgressUpsertBulk) ClearMonthAnchor() *UserProgressUpsertBulk {
	return u.Update(func(s *UserProgressUpsert) {
		s.ClearMonthAnchor()
	})
}

// Exec executes the query.
func (u *UserProgressUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the UserProgressCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for UserProgressCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UserProgressUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
