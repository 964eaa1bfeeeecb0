// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/crewkit/squadron/ent/taskqueueitem"
)

// TaskQueueItemCreate is the builder for creating a TaskQueueItem entity.
type TaskQueueItemCreate struct {
	config
	mutation *TaskQueueItemMutation
	hooks    []Hook
}

// SetCommanderID sets the "commander_id" field.
func (tqic *TaskQueueItemCreate) SetCommanderID(s string) *TaskQueueItemCreate {
	tqic.mutation.SetCommanderID(s)
	return tqic
}

// SetSubTaskIndex sets the "sub_task_index" field.
func (tqic *TaskQueueItemCreate) SetSubTaskIndex(i int) *TaskQueueItemCreate {
	tqic.mutation.SetSubTaskIndex(i)
	return tqic
}

// SetTitle sets the "title" field.
func (tqic *TaskQueueItemCreate) SetTitle(s string) *TaskQueueItemCreate {
	tqic.mutation.SetTitle(s)
	return tqic
}

// SetPrompt sets the "prompt" field.
func (tqic *TaskQueueItemCreate) SetPrompt(s string) *TaskQueueItemCreate {
	tqic.mutation.SetPrompt(s)
	return tqic
}

// SetAssignedAgent sets the "assigned_agent" field.
func (tqic *TaskQueueItemCreate) SetAssignedAgent(s string) *TaskQueueItemCreate {
	tqic.mutation.SetAssignedAgent(s)
	return tqic
}

// SetNillableAssignedAgent sets the "assigned_agent" field if the given value is not nil.
func (tqic *TaskQueueItemCreate) SetNillableAssignedAgent(s *string) *TaskQueueItemCreate {
	if s != nil {
		tqic.SetAssignedAgent(*s)
	}
	return tqic
}

// SetDependencies sets the "dependencies" field.
func (tqic *TaskQueueItemCreate) SetDependencies(i []int) *TaskQueueItemCreate {
	tqic.mutation.SetDependencies(i)
	return tqic
}

// SetStatus sets the "status" field.
func (tqic *TaskQueueItemCreate) SetStatus(t taskqueueitem.Status) *TaskQueueItemCreate {
	tqic.mutation.SetStatus(t)
	return tqic
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (tqic *TaskQueueItemCreate) SetNillableStatus(t *taskqueueitem.Status) *TaskQueueItemCreate {
	if t != nil {
		tqic.SetStatus(*t)
	}
	return tqic
}

// SetEnqueuedAt sets the "enqueued_at" field.
func (tqic *TaskQueueItemCreate) SetEnqueuedAt(t time.Time) *TaskQueueItemCreate {
	tqic.mutation.SetEnqueuedAt(t)
	return tqic
}

// SetNillableEnqueuedAt sets the "enqueued_at" field if the given value is not nil.
func (tqic *TaskQueueItemCreate) SetNillableEnqueuedAt(t *time.Time) *TaskQueueItemCreate {
	if t != nil {
		tqic.SetEnqueuedAt(*t)
	}
	return tqic
}

// SetStartedAt sets the "started_at" field.
func (tqic *TaskQueueItemCreate) SetStartedAt(t time.Time) *TaskQueueItemCreate {
	tqic.mutation.SetStartedAt(t)
	return tqic
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (tqic *TaskQueueItemCreate) SetNillableStartedAt(t *time.Time) *TaskQueueItemCreate {
	if t != nil {
		tqic.SetStartedAt(*t)
	}
	return tqic
}

// SetID sets the "id" field.
func (tqic *TaskQueueItemCreate) SetID(s string) *TaskQueueItemCreate {
	tqic.mutation.SetID(s)
	return tqic
}

// Mutation returns the TaskQueueItemMutation object of the builder.
func (tqic *TaskQueueItemCreate) Mutation() *TaskQueueItemMutation {
	return tqic.mutation
}

// Save creates the TaskQueueItem in the database.
func (tqic *TaskQueueItemCreate) Save(ctx context.Context) (*TaskQueueItem, error) {
	tqic.defaults()
	return withHooks(ctx, tqic.sqlSave, tqic.mutation, tqic.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (tqic *TaskQueueItemCreate) SaveX(ctx context.Context) *TaskQueueItem {
	v, err := tqic.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (tqic *TaskQueueItemCreate) Exec(ctx context.Context) error {
	_, err := tqic.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tqic *TaskQueueItemCreate) ExecX(ctx context.Context) {
	if err := tqic.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (tqic *TaskQueueItemCreate) defaults() {
	if _, ok := tqic.mutation.Status(); !ok {
		v := taskqueueitem.DefaultStatus
		tqic.mutation.SetStatus(v)
	}
	if _, ok := tqic.mutation.EnqueuedAt(); !ok {
		v := taskqueueitem.DefaultEnqueuedAt()
		tqic.mutation.SetEnqueuedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tqic *TaskQueueItemCreate) check() error {
	if _, ok := tqic.mutation.CommanderID(); !ok {
		return &ValidationError{Name: "commander_id", err: errors.New(`ent: missing required field "TaskQueueItem.commander_id"`)}
	}
	if _, ok := tqic.mutation.SubTaskIndex(); !ok {
		return &ValidationError{Name: "sub_task_index", err: errors.New(`ent: missing required field "TaskQueueItem.sub_task_index"`)}
	}
	if _, ok := tqic.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "TaskQueueItem.title"`)}
	}
	if _, ok := tqic.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "TaskQueueItem.prompt"`)}
	}
	if _, ok := tqic.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "TaskQueueItem.status"`)}
	}
	if v, ok := tqic.mutation.Status(); ok {
		if err := taskqueueitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TaskQueueItem.status": %w`, err)}
		}
	}
	if _, ok := tqic.mutation.EnqueuedAt(); !ok {
		return &ValidationError{Name: "enqueued_at", err: errors.New(`ent: missing required field "TaskQueueItem.enqueued_at"`)}
	}
	return nil
}

func (tqic *TaskQueueItemCreate) sqlSave(ctx context.Context) (*TaskQueueItem, error) {
	if err := tqic.check(); err != nil {
		return nil, err
	}
	_node, _spec := tqic.createSpec()
	if err := sqlgraph.CreateNode(ctx, tqic.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected TaskQueueItem.ID type: %T", _spec.ID.Value)
		}
	}
	tqic.mutation.id = &_node.ID
	tqic.mutation.done = true
	return _node, nil
}

func (tqic *TaskQueueItemCreate) createSpec() (*TaskQueueItem, *sqlgraph.CreateSpec) {
	var (
		_node = &TaskQueueItem{config: tqic.config}
		_spec = sqlgraph.NewCreateSpec(taskqueueitem.Table, sqlgraph.NewFieldSpec(taskqueueitem.FieldID, field.TypeString))
	)
	if id, ok := tqic.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := tqic.mutation.CommanderID(); ok {
		_spec.SetField(taskqueueitem.FieldCommanderID, field.TypeString, value)
		_node.CommanderID = value
	}
	if value, ok := tqic.mutation.SubTaskIndex(); ok {
		_spec.SetField(taskqueueitem.FieldSubTaskIndex, field.TypeInt, value)
		_node.SubTaskIndex = value
	}
	if value, ok := tqic.mutation.Title(); ok {
		_spec.SetField(taskqueueitem.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := tqic.mutation.Prompt(); ok {
		_spec.SetField(taskqueueitem.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := tqic.mutation.AssignedAgent(); ok {
		_spec.SetField(taskqueueitem.FieldAssignedAgent, field.TypeString, value)
		_node.AssignedAgent = value
	}
	if value, ok := tqic.mutation.Dependencies(); ok {
		_spec.SetField(taskqueueitem.FieldDependencies, field.TypeJSON, value)
		_node.Dependencies = value
	}
	if value, ok := tqic.mutation.Status(); ok {
		_spec.SetField(taskqueueitem.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := tqic.mutation.EnqueuedAt(); ok {
		_spec.SetField(taskqueueitem.FieldEnqueuedAt, field.TypeTime, value)
		_node.EnqueuedAt = value
	}
	if value, ok := tqic.mutation.StartedAt(); ok {
		_spec.SetField(taskqueueitem.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	return _node, _spec
}

// TaskQueueItemCreateBulk is the builder for creating many TaskQueueItem entities in bulk.
type TaskQueueItemCreateBulk struct {
	config
	err      error
	builders []*TaskQueueItemCreate
}

// Save creates the TaskQueueItem entities in the database.
func (tqicb *TaskQueueItemCreateBulk) Save(ctx context.Context) ([]*TaskQueueItem, error) {
	if tqicb.err != nil {
		return nil, tqicb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(tqicb.builders))
	nodes := make([]*TaskQueueItem, len(tqicb.builders))
	mutators := make([]Mutator, len(tqicb.builders))
	for i := range tqicb.builders {
		func(i int, root context.Context) {
			builder := tqicb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskQueueItemMutation)
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
					_, err = mutators[i+1].Mutate(root, tqicb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, tqicb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, tqicb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (tqicb *TaskQueueItemCreateBulk) SaveX(ctx context.Context) []*TaskQueueItem {
	v, err := tqicb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (tqicb *TaskQueueItemCreateBulk) Exec(ctx context.Context) error {
	_, err := tqicb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tqicb *TaskQueueItemCreateBulk) ExecX(ctx context.Context) {
	if err := tqicb.Exec(ctx); err != nil {
		panic(err)
	}
}
