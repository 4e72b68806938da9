// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/amparasaude/ampara_backend/internal/repo/gamificationreward"
	"github.com/amparasaude/ampara_backend/internal/repo/predicate"
)

// GamificationRewardDelete is the builder for deleting a GamificationReward entity.
type GamificationRewardDelete struct {
	config
	hooks    []Hook
	mutation *GamificationRewardMutation
}

// Where appends a list predicates to the GamificationRewardDelete builder.
func (_d *GamificationRewardDelete) Where(ps ...predicate.GamificationReward) *GamificationRewardDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *GamificationRewardDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GamificationRewardDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *GamificationRewardDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(gamificationreward.Table, sqlgraph.NewFieldSpec(gamificationreward.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// GamificationRewardDeleteOne is the builder for deleting a single GamificationReward entity.
type GamificationRewardDeleteOne struct {
	_d *GamificationRewardDelete
}

// Where appends a list predicates to the GamificationRewardDelete builder.
func (_d *GamificationRewardDeleteOne) Where(ps ...predicate.GamificationReward) *GamificationRewardDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *GamificationRewardDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{gamificationreward.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GamificationRewardDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
