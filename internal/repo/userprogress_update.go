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
	"github.com/amparasaude/ampara_backend/internal/repo/predicate"
	"github.com/amparasaude/ampara_backend/internal/repo/userprogress"
	"github.com/google/uuid"
)

// UserProgressUpdate is the builder for updating UserProgress entities.
type UserProgressUpdate struct {
	config
	hooks    []Hook
	mutation *UserProgressMutation
}

// Where appends a list predicates to the UserProgressUpdate builder.
func (_u *UserProgressUpdate) Where(ps ...predicate.UserProgress) *UserProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserProgressUpdate) SetUpdatedAt(v time.Time) *UserProgressUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *UserProgressUpdate) SetUserID(v uuid.UUID) *UserProgressUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UserProgressUpdate) SetNillableUserID(v *uuid.UUID) *UserProgressUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTotalPoints sets the "total_points" field.
func (_u *UserProgressUpdate) SetTotalPoints(v int) *UserProgressUpdate {
	_u.mutation.ResetTotalPoints()
	_u.mutation.SetTotalPoints(v)
	return _u
}

// SetNillableTotalPoints sets the "total_points" field if the given value is not nil.
func (_u *UserProgressUpdate) SetNillableTotalPoints(v *int) *UserProgressUpdate {
	if v != nil {
		_u.SetTotalPoints(*v)
	}
	return _u
}

// AddTotalPoints adds value to the "total_points" field.
func (_u *UserProgressUpdate) AddTotalPoints(v int) *UserProgressUpdate {
	_u.mutation.AddTotalPoints(v)
	return _u
}

// SetTotalXp sets the "total_xp" field.
func (_u *UserProgressUpdate) SetTotalXp(v int) *UserProgressUpdate {
	_u.mutation.ResetTotalXp()
	_u.mutation.SetTotalXp(v)
	return _u
}

// SetNillableTotalXp sets the "total_xp" field if the given value is not nil.
func (_u *UserProgressUpdate) SetNillableTotalXp(v *int) *UserProgressUpdate {
	if v != nil {
		_u.SetTotalXp(*v)
	}
	return _u
}

// AddTotalXp adds value to the "total_xp" field.
func (_u *UserProgressUpdate) AddTotalXp(v int) *UserProgressUpdate {
	_u.mutation.AddTotalXp(v)
	return _u
}

// SetCurrentLevel sets the "current_level" field.
func (_u *UserProgressUpdate) SetCurrentLevel(v int) *UserProgressUpdate {
	_u.mutation.ResetCurrentLevel()
	_u.mutation.SetCurrentLevel(v)
	return _u
}

// SetNillableCurrentLevel sets the "current_level" field if the given value is not nil.
func (_u *UserProgressUpdate) SetNillableCurrentLevel(v *int) *UserProgressUpdate {
	if v != nil {
		_u.SetCurrentLevel(*v)
	}
	return _u
}

// AddCurrentLevel adds value to the "current_level" field.
func (_u *UserProgressUpdate) AddCurrentLevel(v int) *UserProgressUpdate {
	_u.mutation.AddCurrentLevel(v)
	return _u
}

// SetWeeklyPoints sets the "weekly_points" field.
func (_u *UserProgressUpdate) SetWeeklyPoints(v int) *UserProgressUpdate {
	_u.mutation.ResetWeeklyPoints()
	_u.mutation.SetWeeklyPoints(v)
	return _u
}

// SetNillableWeeklyPoints sets the "weekly_points" field if the given value is not nil.
func (_u *UserProgressUpdate) SetNillableWeeklyPoints(v *int) *UserProgressUpdate {
	if v != nil {
		_u.SetWeeklyPoints(*v)
	}
	return _u
}

// AddWeeklyPoints adds value to the "weekly_points" field.
func (_u *UserProgressUpdate) AddWeeklyPoints(v int) *UserProgressUpdate {
	_u.mutation.AddWeeklyPoints(v)
	return _u
}

// SetMonthlyPoints sets the "monthly_points" field.
func (_u *UserProgressUpdate) SetMonthlyPoints(v int) *UserProgressUpdate {
	_u.mutation.ResetMonthlyPoints()
	_u.mutation.SetMonthlyPoints(v)
	return _u
}

// SetNillableMonthlyPoints sets the "monthly_points" field if the given value is not nil.
func (_u *UserProgressUpdate) SetNillableMonthlyPoints(v *int) *UserProgressUpdate {
	if v != nil {
		_u.SetMonthlyPoints(*v)
	}
	return _u
}

// AddMonthlyPoints adds value to the "monthly_points" field.
func (_u *UserProgressUpdate) AddMonthlyPoints(v int) *UserProgressUpdate {
	_u.mutation.AddMonthlyPoints(v)
	return _u
}

// SetWeekAnchor sets the "week_anchor" field.
func (_u *UserProgressUpdate) SetWeekAnchor(v time.Time) *UserProgressUpdate {
	_u.mutation.SetWeekAnchor(v)
	return _u
}

// SetNillableWeekAnchor sets the "week_anchor" field if the given value is not nil.
func (_u *UserProgressUpdate) SetNillableWeekAnchor(v *time.Time) *UserProgressUpdate {
	if v != nil {
		_u.SetWeekAnchor(*v)
	}
	return _u
}

// ClearWeekAnchor clears the value of the "week_anchor" field.
func (_u *UserProgressUpdate) ClearWeekAnchor() *UserProgressUpdate {
	_u.mutation.ClearWeekAnchor()
	return _u
}

// SetMonthAnchor sets the "month_anchor" field.
func (_u *UserProgressUpdate) SetMonthAnchor(v time.Time) *UserProgressUpdate {
	_u.mutation.SetMonthAnchor(v)
	return _u
}

// SetNillableMonthAnchor sets the "month_anchor" field if the given value is not nil.
func (_u *UserProgressUpdate) SetNillableMonthAnchor(v *time.Time) *UserProgressUpdate {
	if v != nil {
		_u.SetMonthAnchor(*v)
	}
	return _u
}

// ClearMonthAnchor clears the value of the "month_anchor" field.
func (_u *UserProgressUpdate) ClearMonthAnchor() *UserProgressUpdate {
	_u.mutation.ClearMonthAnchor()
	return _u
}

// Mutation returns the UserProgressMutation object of the builder.
func (_u *UserProgressUpdate) Mutation() *UserProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserProgressUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserProgressUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := userprogress.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserProgressUpdate) check() error {
	if v, ok := _u.mutation.TotalPoints(); ok {
		if err := userprogress.TotalPointsValidator(v); err != nil {
			return &ValidationError{Name: "total_points", err: fmt.Errorf(`repo: validator failed for field "UserProgress.total_points": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalXp(); ok {
		if err := userprogress.TotalXpValidator(v); err != nil {
			return &ValidationError{Name: "total_xp", err: fmt.Errorf(`repo: validator failed for field "UserProgress.total_xp": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentLevel(); ok {
		if err := userprogress.CurrentLevelValidator(v); err != nil {
			return &ValidationError{Name: "current_level", err: fmt.Errorf(`repo: validator failed for field "UserProgress.current_level": %w`, err)}
		}
	}
	return nil
}

func (_u *UserProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(userprogress.Table, userprogress.Columns, sqlgraph.NewFieldSpec(userprogress.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(userprogress.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(userprogress.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TotalPoints(); ok {
		_spec.SetField(userprogress.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPoints(); ok {
		_spec.AddField(userprogress.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalXp(); ok {
		_spec.SetField(userprogress.FieldTotalXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalXp(); ok {
		_spec.AddField(userprogress.FieldTotalXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentLevel(); ok {
		_spec.SetField(userprogress.FieldCurrentLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentLevel(); ok {
		_spec.AddField(userprogress.FieldCurrentLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WeeklyPoints(); ok {
		_spec.SetField(userprogress.FieldWeeklyPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeeklyPoints(); ok {
		_spec.AddField(userprogress.FieldWeeklyPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MonthlyPoints(); ok {
		_spec.SetField(userprogress.FieldMonthlyPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMonthlyPoints(); ok {
		_spec.AddField(userprogress.FieldMonthlyPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WeekAnchor(); ok {
		_spec.SetField(userprogress.FieldWeekAnchor, field.TypeTime, value)
	}
	if _u.mutation.WeekAnchorCleared() {
		_spec.ClearField(userprogress.FieldWeekAnchor, field.TypeTime)
	}
	if value, ok := _u.mutation.MonthAnchor(); ok {
		_spec.SetField(userprogress.FieldMonthAnchor, field.TypeTime, value)
	}
	if _u.mutation.MonthAnchorCleared() {
		_spec.ClearField(userprogress.FieldMonthAnchor, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserProgressUpdateOne is the builder for updating a single UserProgress entity.
type UserProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserProgressMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserProgressUpdateOne) SetUpdatedAt(v time.Time) *UserProgressUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *UserProgressUpdateOne) SetUserID(v uuid.UUID) *UserProgressUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UserProgressUpdateOne) SetNillableUserID(v *uuid.UUID) *UserProgressUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTotalPoints sets the "total_points" field.
func (_u *UserProgressUpdateOne) SetTotalPoints(v int) *UserProgressUpdateOne {
	_u.mutation.ResetTotalPoints()
	_u.mutation.SetTotalPoints(v)
	return _u
}

// SetNillableTotalPoints sets the "total_points" field if the given value is not nil.
func (_u *UserProgressUpdateOne) SetNillableTotalPoints(v *int) *UserProgressUpdateOne {
	if v != nil {
		_u.SetTotalPoints(*v)
	}
	return _u
}

// AddTotalPoints adds value to the "total_points" field.
func (_u *UserProgressUpdateOne) AddTotalPoints(v int) *UserProgressUpdateOne {
	_u.mutation.AddTotalPoints(v)
	return _u
}

// SetTotalXp sets the "total_xp" field.
func (_u *UserProgressUpdateOne) SetTotalXp(v int) *UserProgressUpdateOne {
	_u.mutation.ResetTotalXp()
	_u.mutation.SetTotalXp(v)
	return _u
}

// SetNillableTotalXp sets the "total_xp" field if the given value is not nil.
func (_u *UserProgressUpdateOne) SetNillableTotalXp(v *int) *UserProgressUpdateOne {
	if v != nil {
		_u.SetTotalXp(*v)
	}
	return _u
}

// AddTotalXp adds value to the "total_xp" field.
func (_u *UserProgressUpdateOne) AddTotalXp(v int) *UserProgressUpdateOne {
	_u.mutation.AddTotalXp(v)
	return _u
}

// SetCurrentLevel sets the "current_level" field.
func (_u *UserProgressUpdateOne) SetCurrentLevel(v int) *UserProgressUpdateOne {
	_u.mutation.ResetCurrentLevel()
	_u.mutation.SetCurrentLevel(v)
	return _u
}

// SetNillableCurrentLevel sets the "current_level" field if the given value is not nil.
func (_u *UserProgressUpdateOne) SetNillableCurrentLevel(v *int) *UserProgressUpdateOne {
	if v != nil {
		_u.SetCurrentLevel(*v)
	}
	return _u
}

// AddCurrentLevel adds value to the "current_level" field.
func (_u *UserProgressUpdateOne) AddCurrentLevel(v int) *UserProgressUpdateOne {
	_u.mutation.AddCurrentLevel(v)
	return _u
}

// SetWeeklyPoints sets the "weekly_points" field.
func (_u *UserProgressUpdateOne) SetWeeklyPoints(v int) *UserProgressUpdateOne {
	_u.mutation.ResetWeeklyPoints()
	_u.mutation.SetWeeklyPoints(v)
	return _u
}

// SetNillableWeeklyPoints sets the "weekly_points" field if the given value is not nil.
func (_u *UserProgressUpdateOne) SetNillableWeeklyPoints(v *int) *UserProgressUpdateOne {
	if v != nil {
		_u.SetWeeklyPoints(*v)
	}
	return _u
}

// AddWeeklyPoints adds value to the "weekly_points" field.
func (_u *UserProgressUpdateOne) AddWeeklyPoints(v int) *UserProgressUpdateOne {
	_u.mutation.AddWeeklyPoints(v)
	return _u
}

// SetMonthlyPoints sets the "monthly_points" field.
func (_u *UserProgressUpdateOne) SetMonthlyPoints(v int) *UserProgressUpdateOne {
	_u.mutation.ResetMonthlyPoints()
	_u.mutation.SetMonthlyPoints(v)
	return _u
}

// SetNillableMonthlyPoints sets the "monthly_points" field if the given value is not nil.
func (_u *UserProgressUpdateOne) SetNillableMonthlyPoints(v *int) *UserProgressUpdateOne {
	if v != nil {
		_u.SetMonthlyPoints(*v)
	}
	return _u
}

// AddMonthlyPoints adds value to the "monthly_points" field.
func (_u *UserProgressUpdateOne) AddMonthlyPoints(v int) *UserProgressUpdateOne {
	_u.mutation.AddMonthlyPoints(v)
	return _u
}

// SetWeekAnchor sets the "week_anchor" field.
func (_u *UserProgressUpdateOne) SetWeekAnchor(v time.Time) *UserProgressUpdateOne {
	_u.mutation.SetWeekAnchor(v)
	return _u
}

// SetNillableWeekAnchor sets the "week_anchor" field if the given value is not nil.
func (_u *UserProgressUpdateOne) SetNillableWeekAnchor(v *time.Time) *UserProgressUpdateOne {
	if v != nil {
		_u.SetWeekAnchor(*v)
	}
	return _u
}

// ClearWeekAnchor clears the value of the "week_anchor" field.
func (_u *UserProgressUpdateOne) ClearWeekAnchor() *UserProgressUpdateOne {
	_u.mutation.ClearWeekAnchor()
	return _u
}

// SetMonthAnchor sets the "month_anchor" field.
func (_u *UserProgressUpdateOne) SetMonthAnchor(v time.Time) *UserProgressUpdateOne {
	_u.mutation.SetMonthAnchor(v)
	return _u
}

// SetNillableMonthAnchor sets the "month_anchor" field if the given value is not nil.
func (_u *UserProgressUpdateOne) SetNillableMonthAnchor(v *time.Time) *UserProgressUpdateOne {
	if v != nil {
		_u.SetMonthAnchor(*v)
	}
	return _u
}

// ClearMonthAnchor clears the value of the "month_anchor" field.
func (_u *UserProgressUpdateOne) ClearMonthAnchor() *UserProgressUpdateOne {
	_u.mutation.ClearMonthAnchor()
	return _u
}

// Mutation returns the UserProgressMutation object of the builder.
func (_u *UserProgressUpdateOne) Mutation() *UserProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserProgressUpdate builder.
func (_u *UserProgressUpdateOne) Where(ps ...predicate.UserProgress) *UserProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserProgressUpdateOne) Select(field string, fields ...string) *UserProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserProgress entity.
func (_u *UserProgressUpdateOne) Save(ctx context.Context) (*UserProgress, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserProgressUpdateOne) SaveX(ctx context.Context) *UserProgress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserProgressUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := userprogress.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserProgressUpdateOne) check() error {
	if v, ok := _u.mutation.TotalPoints(); ok {
		if err := userprogress.TotalPointsValidator(v); err != nil {
			return &ValidationError{Name: "total_points", err: fmt.Errorf(`repo: validator failed for field "UserProgress.total_points": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalXp(); ok {
		if err := userprogress.TotalXpValidator(v); err != nil {
			return &ValidationError{Name: "total_xp", err: fmt.Errorf(`repo: validator failed for field "UserProgress.total_xp": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentLevel(); ok {
		if err := userprogress.CurrentLevelValidator(v); err != nil {
			return &ValidationError{Name: "current_level", err: fmt.Errorf(`repo: validator failed for field "UserProgress.current_level": %w`, err)}
		}
	}
	return nil
}

func (_u *UserProgressUpdateOne) sqlSave(ctx context.Context) (_node *UserProgress, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(userprogress.Table, userprogress.Columns, sqlgraph.NewFieldSpec(userprogress.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "UserProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userprogress.FieldID)
		for _, f := range fields {
			if !userprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != userprogress.FieldID {
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
		_spec.SetField(userprogress.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(userprogress.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TotalPoints(); ok {
		_spec.SetField(userprogress.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPoints(); ok {
		_spec.AddField(userprogress.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalXp(); ok {
		_spec.SetField(userprogress.FieldTotalXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalXp(); ok {
		_spec.AddField(userprogress.FieldTotalXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentLevel(); ok {
		_spec.SetField(userprogress.FieldCurrentLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentLevel(); ok {
		_spec.AddField(userprogress.FieldCurrentLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WeeklyPoints(); ok {
		_spec.SetField(userprogress.FieldWeeklyPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeeklyPoints(); ok {
		_spec.AddField(userprogress.FieldWeeklyPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MonthlyPoints(); ok {
		_spec.SetField(userprogress.FieldMonthlyPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMonthlyPoints(); ok {
		_spec.AddField(userprogress.FieldMonthlyPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WeekAnchor(); ok {
		_spec.SetField(userprogress.FieldWeekAnchor, field.TypeTime, value)
	}
	if _u.mutation.WeekAnchorCleared() {
		_spec.ClearField(userprogress.FieldWeekAnchor, field.TypeTime)
	}
	if value, ok := _u.mutation.MonthAnchor(); ok {
		_spec.SetField(userprogress.FieldMonthAnchor, field.TypeTime, value)
	}
	if _u.mutation.MonthAnchorCleared() {
		_spec.ClearField(userprogress.FieldMonthAnchor, field.TypeTime)
	}
	_node = &UserProgress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
