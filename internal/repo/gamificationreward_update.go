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
	"github.com/amparasaude/ampara_backend/internal/repo/gamificationreward"
	"github.com/amparasaude/ampara_backend/internal/repo/predicate"
)

// GamificationRewardUpdate is the builder for updating GamificationReward entities.
type GamificationRewardUpdate struct {
	config
	hooks    []Hook
	mutation *GamificationRewardMutation
}

// Where appends a list predicates to the GamificationRewardUpdate builder.
func (_u *GamificationRewardUpdate) Where(ps ...predicate.GamificationReward) *GamificationRewardUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GamificationRewardUpdate) SetUpdatedAt(v time.Time) *GamificationRewardUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetActivityType sets the "activity_type" field.
func (_u *GamificationRewardUpdate) SetActivityType(v string) *GamificationRewardUpdate {
	_u.mutation.SetActivityType(v)
	return _u
}

// SetNillableActivityType sets the "activity_type" field if the given value is not nil.
func (_u *GamificationRewardUpdate) SetNillableActivityType(v *string) *GamificationRewardUpdate {
	if v != nil {
		_u.SetActivityType(*v)
	}
	return _u
}

// SetPoints sets the "points" field.
func (_u *GamificationRewardUpdate) SetPoints(v int) *GamificationRewardUpdate {
	_u.mutation.ResetPoints()
	_u.mutation.SetPoints(v)
	return _u
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_u *GamificationRewardUpdate) SetNillablePoints(v *int) *GamificationRewardUpdate {
	if v != nil {
		_u.SetPoints(*v)
	}
	return _u
}

// AddPoints adds value to the "points" field.
func (_u *GamificationRewardUpdate) AddPoints(v int) *GamificationRewardUpdate {
	_u.mutation.AddPoints(v)
	return _u
}

// SetXp sets the "xp" field.
func (_u *GamificationRewardUpdate) SetXp(v int) *GamificationRewardUpdate {
	_u.mutation.ResetXp()
	_u.mutation.SetXp(v)
	return _u
}

// SetNillableXp sets the "xp" field if the given value is not nil.
func (_u *GamificationRewardUpdate) SetNillableXp(v *int) *GamificationRewardUpdate {
	if v != nil {
		_u.SetXp(*v)
	}
	return _u
}

// AddXp adds value to the "xp" field.
func (_u *GamificationRewardUpdate) AddXp(v int) *GamificationRewardUpdate {
	_u.mutation.AddXp(v)
	return _u
}

// SetMinLevel sets the "min_level" field.
func (_u *GamificationRewardUpdate) SetMinLevel(v int) *GamificationRewardUpdate {
	_u.mutation.ResetMinLevel()
	_u.mutation.SetMinLevel(v)
	return _u
}

// SetNillableMinLevel sets the "min_level" field if the given value is not nil.
func (_u *GamificationRewardUpdate) SetNillableMinLevel(v *int) *GamificationRewardUpdate {
	if v != nil {
		_u.SetMinLevel(*v)
	}
	return _u
}

// AddMinLevel adds value to the "min_level" field.
func (_u *GamificationRewardUpdate) AddMinLevel(v int) *GamificationRewardUpdate {
	_u.mutation.AddMinLevel(v)
	return _u
}

// SetMaxDailyCount sets the "max_daily_count" field.
func (_u *GamificationRewardUpdate) SetMaxDailyCount(v int) *GamificationRewardUpdate {
	_u.mutation.ResetMaxDailyCount()
	_u.mutation.SetMaxDailyCount(v)
	return _u
}

// SetNillableMaxDailyCount sets the "max_daily_count" field if the given value is not nil.
func (_u *GamificationRewardUpdate) SetNillableMaxDailyCount(v *int) *GamificationRewardUpdate {
	if v != nil {
		_u.SetMaxDailyCount(*v)
	}
	return _u
}

// AddMaxDailyCount adds value to the "max_daily_count" field.
func (_u *GamificationRewardUpdate) AddMaxDailyCount(v int) *GamificationRewardUpdate {
	_u.mutation.AddMaxDailyCount(v)
	return _u
}

// SetCooldownMinutes sets the "cooldown_minutes" field.
func (_u *GamificationRewardUpdate) SetCooldownMinutes(v int) *GamificationRewardUpdate {
	_u.mutation.ResetCooldownMinutes()
	_u.mutation.SetCooldownMinutes(v)
	return _u
}

// SetNillableCooldownMinutes sets the "cooldown_minutes" field if the given value is not nil.
func (_u *GamificationRewardUpdate) SetNillableCooldownMinutes(v *int) *GamificationRewardUpdate {
	if v != nil {
		_u.SetCooldownMinutes(*v)
	}
	return _u
}

// AddCooldownMinutes adds value to the "cooldown_minutes" field.
func (_u *GamificationRewardUpdate) AddCooldownMinutes(v int) *GamificationRewardUpdate {
	_u.mutation.AddCooldownMinutes(v)
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *GamificationRewardUpdate) SetEnabled(v bool) *GamificationRewardUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *GamificationRewardUpdate) SetNillableEnabled(v *bool) *GamificationRewardUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// Mutation returns the GamificationRewardMutation object of the builder.
func (_u *GamificationRewardUpdate) Mutation() *GamificationRewardMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GamificationRewardUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GamificationRewardUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GamificationRewardUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GamificationRewardUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GamificationRewardUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := gamificationreward.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GamificationRewardUpdate) check() error {
	if v, ok := _u.mutation.ActivityType(); ok {
		if err := gamificationreward.ActivityTypeValidator(v); err != nil {
			return &ValidationError{Name: "activity_type", err: fmt.Errorf(`repo: validator failed for field "GamificationReward.activity_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Points(); ok {
		if err := gamificationreward.PointsValidator(v); err != nil {
			return &ValidationError{Name: "points", err: fmt.Errorf(`repo: validator failed for field "GamificationReward.points": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Xp(); ok {
		if err := gamificationreward.XpValidator(v); err != nil {
			return &ValidationError{Name: "xp", err: fmt.Errorf(`repo: validator failed for field "GamificationReward.xp": %w`, err)}
		}
	}
	return nil
}

func (_u *GamificationRewardUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gamificationreward.Table, gamificationreward.Columns, sqlgraph.NewFieldSpec(gamificationreward.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(gamificationreward.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ActivityType(); ok {
		_spec.SetField(gamificationreward.FieldActivityType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Points(); ok {
		_spec.SetField(gamificationreward.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPoints(); ok {
		_spec.AddField(gamificationreward.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Xp(); ok {
		_spec.SetField(gamificationreward.FieldXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXp(); ok {
		_spec.AddField(gamificationreward.FieldXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MinLevel(); ok {
		_spec.SetField(gamificationreward.FieldMinLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinLevel(); ok {
		_spec.AddField(gamificationreward.FieldMinLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxDailyCount(); ok {
		_spec.SetField(gamificationreward.FieldMaxDailyCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxDailyCount(); ok {
		_spec.AddField(gamificationreward.FieldMaxDailyCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CooldownMinutes(); ok {
		_spec.SetField(gamificationreward.FieldCooldownMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCooldownMinutes(); ok {
		_spec.AddField(gamificationreward.FieldCooldownMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(gamificationreward.FieldEnabled, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gamificationreward.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GamificationRewardUpdateOne is the builder for updating a single GamificationReward entity.
type GamificationRewardUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GamificationRewardMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GamificationRewardUpdateOne) SetUpdatedAt(v time.Time) *GamificationRewardUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetActivityType sets the "activity_type" field.
func (_u *GamificationRewardUpdateOne) SetActivityType(v string) *GamificationRewardUpdateOne {
	_u.mutation.SetActivityType(v)
	return _u
}

// SetNillableActivityType sets the "activity_type" field if the given value is not nil.
func (_u *GamificationRewardUpdateOne) SetNillableActivityType(v *string) *GamificationRewardUpdateOne {
	if v != nil {
		_u.SetActivityType(*v)
	}
	return _u
}

// SetPoints sets the "points" field.
func (_u *GamificationRewardUpdateOne) SetPoints(v int) *GamificationRewardUpdateOne {
	_u.mutation.ResetPoints()
	_u.mutation.SetPoints(v)
	return _u
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_u *GamificationRewardUpdateOne) SetNillablePoints(v *int) *GamificationRewardUpdateOne {
	if v != nil {
		_u.SetPoints(*v)
	}
	return _u
}

// AddPoints adds value to the "points" field.
func (_u *GamificationRewardUpdateOne) AddPoints(v int) *GamificationRewardUpdateOne {
	_u.mutation.AddPoints(v)
	return _u
}

// SetXp sets the "xp" field.
func (_u *GamificationRewardUpdateOne) SetXp(v int) *GamificationRewardUpdateOne {
	_u.mutation.ResetXp()
	_u.mutation.SetXp(v)
	return _u
}

// SetNillableXp sets the "xp" field if the given value is not nil.
func (_u *GamificationRewardUpdateOne) SetNillableXp(v *int) *GamificationRewardUpdateOne {
	if v != nil {
		_u.SetXp(*v)
	}
	return _u
}

// AddXp adds value to the "xp" field.
func (_u *GamificationRewardUpdateOne) AddXp(v int) *GamificationRewardUpdateOne {
	_u.mutation.AddXp(v)
	return _u
}

// SetMinLevel sets the "min_level" field.
func (_u *GamificationRewardUpdateOne) SetMinLevel(v int) *GamificationRewardUpdateOne {
	_u.mutation.ResetMinLevel()
	_u.mutation.SetMinLevel(v)
	return _u
}

// SetNillableMinLevel sets the "min_level" field if the given value is not nil.
func (_u *GamificationRewardUpdateOne) SetNillableMinLevel(v *int) *GamificationRewardUpdateOne {
	if v != nil {
		_u.SetMinLevel(*v)
	}
	return _u
}

// AddMinLevel adds value to the "min_level" field.
func (_u *GamificationRewardUpdateOne) AddMinLevel(v int) *GamificationRewardUpdateOne {
	_u.mutation.AddMinLevel(v)
	return _u
}

// SetMaxDailyCount sets the "max_daily_count" field.
func (_u *GamificationRewardUpdateOne) SetMaxDailyCount(v int) *GamificationRewardUpdateOne {
	_u.mutation.ResetMaxDailyCount()
	_u.mutation.SetMaxDailyCount(v)
	return _u
}

// SetNillableMaxDailyCount sets the "max_daily_count" field if the given value is not nil.
func (_u *GamificationRewardUpdateOne) SetNillableMaxDailyCount(v *int) *GamificationRewardUpdateOne {
	if v != nil {
		_u.SetMaxDailyCount(*v)
	}
	return _u
}

// AddMaxDailyCount adds value to the "max_daily_count" field.
func (_u *GamificationRewardUpdateOne) AddMaxDailyCount(v int) *GamificationRewardUpdateOne {
	_u.mutation.AddMaxDailyCount(v)
	return _u
}

// SetCooldownMinutes sets the "cooldown_minutes" field.
func (_u *GamificationRewardUpdateOne) SetCooldownMinutes(v int) *GamificationRewardUpdateOne {
	_u.mutation.ResetCooldownMinutes()
	_u.mutation.SetCooldownMinutes(v)
	return _u
}

// SetNillableCooldownMinutes sets the "cooldown_minutes" field if the given value is not nil.
func (_u *GamificationRewardUpdateOne) SetNillableCooldownMinutes(v *int) *GamificationRewardUpdateOne {
	if v != nil {
		_u.SetCooldownMinutes(*v)
	}
	return _u
}

// AddCooldownMinutes adds value to the "cooldown_minutes" field.
func (_u *GamificationRewardUpdateOne) AddCooldownMinutes(v int) *GamificationRewardUpdateOne {
	_u.mutation.AddCooldownMinutes(v)
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *GamificationRewardUpdateOne) SetEnabled(v bool) *GamificationRewardUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *GamificationRewardUpdateOne) SetNillableEnabled(v *bool) *GamificationRewardUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// Mutation returns the GamificationRewardMutation object of the builder.
func (_u *GamificationRewardUpdateOne) Mutation() *GamificationRewardMutation {
	return _u.mutation
}

// Where appends a list predicates to the GamificationRewardUpdate builder.
func (_u *GamificationRewardUpdateOne) Where(ps ...predicate.GamificationReward) *GamificationRewardUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GamificationRewardUpdateOne) Select(field string, fields ...string) *GamificationRewardUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GamificationReward entity.
func (_u *GamificationRewardUpdateOne) Save(ctx context.Context) (*GamificationReward, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GamificationRewardUpdateOne) SaveX(ctx context.Context) *GamificationReward {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GamificationRewardUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GamificationRewardUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GamificationRewardUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := gamificationreward.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GamificationRewardUpdateOne) check() error {
	if v, ok := _u.mutation.ActivityType(); ok {
		if err := gamificationreward.ActivityTypeValidator(v); err != nil {
			return &ValidationError{Name: "activity_type", err: fmt.Errorf(`repo: validator failed for field "GamificationReward.activity_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Points(); ok {
		if err := gamificationreward.PointsValidator(v); err != nil {
			return &ValidationError{Name: "points", err: fmt.Errorf(`repo: validator failed for field "GamificationReward.points": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Xp(); ok {
		if err := gamificationreward.XpValidator(v); err != nil {
			return &ValidationError{Name: "xp", err: fmt.Errorf(`repo: validator failed for field "GamificationReward.xp": %w`, err)}
		}
	}
	return nil
}

func (_u *GamificationRewardUpdateOne) sqlSave(ctx context.Context) (_node *GamificationReward, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gamificationreward.Table, gamificationreward.Columns, sqlgraph.NewFieldSpec(gamificationreward.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "GamificationReward.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, gamificationreward.FieldID)
		for _, f := range fields {
			if !gamificationreward.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != gamificationreward.FieldID {
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
		_spec.SetField(gamificationreward.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ActivityType(); ok {
		_spec.SetField(gamificationreward.FieldActivityType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Points(); ok {
		_spec.SetField(gamificationreward.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPoints(); ok {
		_spec.AddField(gamificationreward.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Xp(); ok {
		_spec.SetField(gamificationreward.FieldXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXp(); ok {
		_spec.AddField(gamificationreward.FieldXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MinLevel(); ok {
		_spec.SetField(gamificationreward.FieldMinLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinLevel(); ok {
		_spec.AddField(gamificationreward.FieldMinLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxDailyCount(); ok {
		_spec.SetField(gamificationreward.FieldMaxDailyCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxDailyCount(); ok {
		_spec.AddField(gamificationreward.FieldMaxDailyCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CooldownMinutes(); ok {
		_spec.SetField(gamificationreward.FieldCooldownMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCooldownMinutes(); ok {
		_spec.AddField(gamificationreward.FieldCooldownMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(gamificationreward.FieldEnabled, field.TypeBool, value)
	}
	_node = &GamificationReward{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gamificationreward.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
