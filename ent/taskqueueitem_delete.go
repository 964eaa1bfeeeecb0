// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/crewkit/squadron/ent/predicate"
	"github.com/crewkit/squadron/ent/taskqueueitem"
)

// TaskQueueItemDelete is the builder for deleting a TaskQueueItem entity.
type TaskQueueItemDelete struct {
	config
	hooks    []Hook
	mutation *TaskQueueItemMutation
}

// Where appends a list predicates to the TaskQueueItemDelete builder.
func (tqid *TaskQueueItemDelete) Where(ps ...predicate.TaskQueueItem) *TaskQueueItemDelete {
	tqid.mutation.Where(ps...)
	return tqid
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (tqid *TaskQueueItemDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, tqid.sqlExec, tqid.mutation, tqid.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (tqid *TaskQueueItemDelete) ExecX(ctx context.Context) int {
	n, err := tqid.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (tqid *TaskQueueItemDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(taskqueueitem.Table, sqlgraph.NewFieldSpec(taskqueueitem.FieldID, field.TypeString))
	if ps := tqid.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, tqid.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	tqid.mutation.done = true
	return affected, err
}

// TaskQueueItemDeleteOne is the builder for deleting a single TaskQueueItem entity.
type TaskQueueItemDeleteOne struct {
	tqid *TaskQueueItemDelete
}

// Where appends a list predicates to the TaskQueueItemDelete builder.
func (tqido *TaskQueueItemDeleteOne) Where(ps ...predicate.TaskQueueItem) *TaskQueueItemDeleteOne {
	tqido.tqid.mutation.Where(ps...)
	return tqido
}

// Exec executes the deletion query.
func (tqido *TaskQueueItemDeleteOne) Exec(ctx context.Context) error {
	n, err := tqido.tqid.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{taskqueueitem.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (tqido *TaskQueueItemDeleteOne) ExecX(ctx context.Context) {
	if err := tqido.Exec(ctx); err != nil {
		panic(err)
	}
}
