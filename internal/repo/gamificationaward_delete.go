// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/amparasaude/ampara_backend/internal/repo/gamificationaward"
	"github.com/amparasaude/ampara_backend/internal/repo/predicate"
)

// GamificationAwardDelete is the builder for deleting a GamificationAward entity.
type GamificationAwardDelete struct {
	config
	hooks    []Hook
	mutation *GamificationAwardMutation
}

// Where appends a list predicates to the GamificationAwardDelete builder.
func (_d *GamificationAwardDelete) Where(ps ...predicate.GamificationAward) *GamificationAwardDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *GamificationAwardDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GamificationAwardDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *GamificationAwardDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(gamificationaward.Table, sqlgraph.NewFieldSpec(gamificationaward.FieldID, field.TypeUUID))
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

// GamificationAwardDeleteOne is the builder for deleting a single GamificationAward entity.
type GamificationAwardDeleteOne struct {
	_d *GamificationAwardDelete
}

// Where appends a list predicates to the GamificationAwardDelete builder.
func (_d *GamificationAwardDeleteOne) Where(ps ...predicate.GamificationAward) *GamificationAwardDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *GamificationAwardDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{gamificationaward.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GamificationAwardDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
