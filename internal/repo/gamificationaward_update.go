// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/amparasaude/ampara_backend/internal/repo/gamificationaward"
	"github.com/amparasaude/ampara_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// GamificationAwardUpdate is the builder for updating GamificationAward entities.
type GamificationAwardUpdate struct {
	config
	hooks    []Hook
	mutation *GamificationAwardMutation
}

// Where appends a list predicates to the GamificationAwardUpdate builder.
func (_u *GamificationAwardUpdate) Where(ps ...predicate.GamificationAward) *GamificationAwardUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *GamificationAwardUpdate) SetUserID(v uuid.UUID) *GamificationAwardUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *GamificationAwardUpdate) SetNillableUserID(v *uuid.UUID) *GamificationAwardUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetActivityType sets the "activity_type" field.
func (_u *GamificationAwardUpdate) SetActivityType(v string) *GamificationAwardUpdate {
	_u.mutation.SetActivityType(v)
	return _u
}

// SetNillableActivityType sets the "activity_type" field if the given value is not nil.
func (_u *GamificationAwardUpdate) SetNillableActivityType(v *string) *GamificationAwardUpdate {
	if v != nil {
		_u.SetActivityType(*v)
	}
	return _u
}

// SetPoints sets the "points" field.
func (_u *GamificationAwardUpdate) SetPoints(v int) *GamificationAwardUpdate {
	_u.mutation.ResetPoints()
	_u.mutation.SetPoints(v)
	return _u
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_u *GamificationAwardUpdate) SetNillablePoints(v *int) *GamificationAwardUpdate {
	if v != nil {
		_u.SetPoints(*v)
	}
	return _u
}

// AddPoints adds value to the "points" field.
func (_u *GamificationAwardUpdate) AddPoints(v int) *GamificationAwardUpdate {
	_u.mutation.AddPoints(v)
	return _u
}

// SetXp sets the "xp" field.
func (_u *GamificationAwardUpdate) SetXp(v int) *GamificationAwardUpdate {
	_u.mutation.ResetXp()
	_u.mutation.SetXp(v)
	return _u
}

// SetNillableXp sets the "xp" field if the given value is not nil.
func (_u *GamificationAwardUpdate) SetNillableXp(v *int) *GamificationAwardUpdate {
	if v != nil {
		_u.SetXp(*v)
	}
	return _u
}

// AddXp adds value to the "xp" field.
func (_u *GamificationAwardUpdate) AddXp(v int) *GamificationAwardUpdate {
	_u.mutation.AddXp(v)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *GamificationAwardUpdate) SetMetadata(v map[string]interface{}) *GamificationAwardUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *GamificationAwardUpdate) ClearMetadata() *GamificationAwardUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the GamificationAwardMutation object of the builder.
func (_u *GamificationAwardUpdate) Mutation() *GamificationAwardMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GamificationAwardUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GamificationAwardUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GamificationAwardUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GamificationAwardUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GamificationAwardUpdate) check() error {
	if v, ok := _u.mutation.ActivityType(); ok {
		if err := gamificationaward.ActivityTypeValidator(v); err != nil {
			return &ValidationError{Name: "activity_type", err: fmt.Errorf(`repo: validator failed for field "GamificationAward.activity_type": %w`, err)}
		}
	}
	return nil
}

func (_u *GamificationAwardUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gamificationaward.Table, gamificationaward.Columns, sqlgraph.NewFieldSpec(gamificationaward.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(gamificationaward.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ActivityType(); ok {
		_spec.SetField(gamificationaward.FieldActivityType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Points(); ok {
		_spec.SetField(gamificationaward.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPoints(); ok {
		_spec.AddField(gamificationaward.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Xp(); ok {
		_spec.SetField(gamificationaward.FieldXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXp(); ok {
		_spec.AddField(gamificationaward.FieldXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(gamificationaward.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(gamificationaward.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gamificationaward.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GamificationAwardUpdateOne is the builder for updating a single GamificationAward entity.
type GamificationAwardUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GamificationAwardMutation
}

// SetUserID sets the "user_id" field.
func (_u *GamificationAwardUpdateOne) SetUserID(v uuid.UUID) *GamificationAwardUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *GamificationAwardUpdateOne) SetNillableUserID(v *uuid.UUID) *GamificationAwardUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetActivityType sets the "activity_type" field.
func (_u *GamificationAwardUpdateOne) SetActivityType(v string) *GamificationAwardUpdateOne {
	_u.mutation.SetActivityType(v)
	return _u
}

// SetNillableActivityType sets the "activity_type" field if the given value is not nil.
func (_u *GamificationAwardUpdateOne) SetNillableActivityType(v *string) *GamificationAwardUpdateOne {
	if v != nil {
		_u.SetActivityType(*v)
	}
	return _u
}

// SetPoints sets the "points" field.
func (_u *GamificationAwardUpdateOne) SetPoints(v int) *GamificationAwardUpdateOne {
	_u.mutation.ResetPoints()
	_u.mutation.SetPoints(v)
	return _u
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_u *GamificationAwardUpdateOne) SetNillablePoints(v *int) *GamificationAwardUpdateOne {
	if v != nil {
		_u.SetPoints(*v)
	}
	return _u
}

// AddPoints adds value to the "points" field.
func (_u *GamificationAwardUpdateOne) AddPoints(v int) *GamificationAwardUpdateOne {
	_u.mutation.AddPoints(v)
	return _u
}

// SetXp sets the "xp" field.
func (_u *GamificationAwardUpdateOne) SetXp(v int) *GamificationAwardUpdateOne {
	_u.mutation.ResetXp()
	_u.mutation.SetXp(v)
	return _u
}

// SetNillableXp sets the "xp" field if the given value is not nil.
func (_u *GamificationAwardUpdateOne) SetNillableXp(v *int) *GamificationAwardUpdateOne {
	if v != nil {
		_u.SetXp(*v)
	}
	return _u
}

// AddXp adds value to the "xp" field.
func (_u *GamificationAwardUpdateOne) AddXp(v int) *GamificationAwardUpdateOne {
	_u.mutation.AddXp(v)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *GamificationAwardUpdateOne) SetMetadata(v map[string]interface{}) *GamificationAwardUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *GamificationAwardUpdateOne) ClearMetadata() *GamificationAwardUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the GamificationAwardMutation object of the builder.
func (_u *GamificationAwardUpdateOne) Mutation() *GamificationAwardMutation {
	return _u.mutation
}

// Where appends a list predicates to the GamificationAwardUpdate builder.
func (_u *GamificationAwardUpdateOne) Where(ps ...predicate.GamificationAward) *GamificationAwardUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GamificationAwardUpdateOne) Select(field string, fields ...string) *GamificationAwardUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GamificationAward entity.
func (_u *GamificationAwardUpdateOne) Save(ctx context.Context) (*GamificationAward, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GamificationAwardUpdateOne) SaveX(ctx context.Context) *GamificationAward {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GamificationAwardUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GamificationAwardUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GamificationAwardUpdateOne) check() error {
	if v, ok := _u.mutation.ActivityType(); ok {
		if err := gamificationaward.ActivityTypeValidator(v); err != nil {
			return &ValidationError{Name: "activity_type", err: fmt.Errorf(`repo: validator failed for field "GamificationAward.activity_type": %w`, err)}
		}
	}
	return nil
}

func (_u *GamificationAwardUpdateOne) sqlSave(ctx context.Context) (_node *GamificationAward, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gamificationaward.Table, gamificationaward.Columns, sqlgraph.NewFieldSpec(gamificationaward.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "GamificationAward.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, gamificationaward.FieldID)
		for _, f := range fields {
			if !gamificationaward.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != gamificationaward.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(gamificationaward.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ActivityType(); ok {
		_spec.SetField(gamificationaward.FieldActivityType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Points(); ok {
		_spec.SetField(gamificationaward.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPoints(); ok {
		_spec.AddField(gamificationaward.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Xp(); ok {
		_spec.SetField(gamificationaward.FieldXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXp(); ok {
		_spec.AddField(gamificationaward.FieldXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(gamificationaward.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(gamificationaward.FieldMetadata, field.TypeJSON)
	}
	_node = &GamificationAward{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gamificationaward.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
