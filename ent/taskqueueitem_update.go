// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/crewkit/squadron/ent/predicate"
	"github.com/crewkit/squadron/ent/taskqueueitem"
)

// TaskQueueItemUpdate is the builder for updating TaskQueueItem entities.
type TaskQueueItemUpdate struct {
	config
	hooks    []Hook
	mutation *TaskQueueItemMutation
}

// Where appends a list predicates to the TaskQueueItemUpdate builder.
func (tqiu *TaskQueueItemUpdate) Where(ps ...predicate.TaskQueueItem) *TaskQueueItemUpdate {
	tqiu.mutation.Where(ps...)
	return tqiu
}

// SetTitle sets the "title" field.
func (tqiu *TaskQueueItemUpdate) SetTitle(s string) *TaskQueueItemUpdate {
	tqiu.mutation.SetTitle(s)
	return tqiu
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (tqiu *TaskQueueItemUpdate) SetNillableTitle(s *string) *TaskQueueItemUpdate {
	if s != nil {
		tqiu.SetTitle(*s)
	}
	return tqiu
}

// SetPrompt sets the "prompt" field.
func (tqiu *TaskQueueItemUpdate) SetPrompt(s string) *TaskQueueItemUpdate {
	tqiu.mutation.SetPrompt(s)
	return tqiu
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (tqiu *TaskQueueItemUpdate) SetNillablePrompt(s *string) *TaskQueueItemUpdate {
	if s != nil {
		tqiu.SetPrompt(*s)
	}
	return tqiu
}

// SetAssignedAgent sets the "assigned_agent" field.
func (tqiu *TaskQueueItemUpdate) SetAssignedAgent(s string) *TaskQueueItemUpdate {
	tqiu.mutation.SetAssignedAgent(s)
	return tqiu
}

// SetNillableAssignedAgent sets the "assigned_agent" field if the given value is not nil.
func (tqiu *TaskQueueItemUpdate) SetNillableAssignedAgent(s *string) *TaskQueueItemUpdate {
	if s != nil {
		tqiu.SetAssignedAgent(*s)
	}
	return tqiu
}

// ClearAssignedAgent clears the value of the "assigned_agent" field.
func (tqiu *TaskQueueItemUpdate) ClearAssignedAgent() *TaskQueueItemUpdate {
	tqiu.mutation.ClearAssignedAgent()
	return tqiu
}

// SetDependencies sets the "dependencies" field.
func (tqiu *TaskQueueItemUpdate) SetDependencies(i []int) *TaskQueueItemUpdate {
	tqiu.mutation.SetDependencies(i)
	return tqiu
}

// AppendDependencies appends i to the "dependencies" field.
func (tqiu *TaskQueueItemUpdate) AppendDependencies(i []int) *TaskQueueItemUpdate {
	tqiu.mutation.AppendDependencies(i)
	return tqiu
}

// ClearDependencies clears the value of the "dependencies" field.
func (tqiu *TaskQueueItemUpdate) ClearDependencies() *TaskQueueItemUpdate {
	tqiu.mutation.ClearDependencies()
	return tqiu
}

// SetStatus sets the "status" field.
func (tqiu *TaskQueueItemUpdate) SetStatus(t taskqueueitem.Status) *TaskQueueItemUpdate {
	tqiu.mutation.SetStatus(t)
	return tqiu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (tqiu *TaskQueueItemUpdate) SetNillableStatus(t *taskqueueitem.Status) *TaskQueueItemUpdate {
	if t != nil {
		tqiu.SetStatus(*t)
	}
	return tqiu
}

// SetStartedAt sets the "started_at" field.
func (tqiu *TaskQueueItemUpdate) SetStartedAt(t time.Time) *TaskQueueItemUpdate {
	tqiu.mutation.SetStartedAt(t)
	return tqiu
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (tqiu *TaskQueueItemUpdate) SetNillableStartedAt(t *time.Time) *TaskQueueItemUpdate {
	if t != nil {
		tqiu.SetStartedAt(*t)
	}
	return tqiu
}

// ClearStartedAt clears the value of the "started_at" field.
func (tqiu *TaskQueueItemUpdate) ClearStartedAt() *TaskQueueItemUpdate {
	tqiu.mutation.ClearStartedAt()
	return tqiu
}

// Mutation returns the TaskQueueItemMutation object of the builder.
func (tqiu *TaskQueueItemUpdate) Mutation() *TaskQueueItemMutation {
	return tqiu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (tqiu *TaskQueueItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, tqiu.sqlSave, tqiu.mutation, tqiu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (tqiu *TaskQueueItemUpdate) SaveX(ctx context.Context) int {
	affected, err := tqiu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (tqiu *TaskQueueItemUpdate) Exec(ctx context.Context) error {
	_, err := tqiu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tqiu *TaskQueueItemUpdate) ExecX(ctx context.Context) {
	if err := tqiu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tqiu *TaskQueueItemUpdate) check() error {
	if v, ok := tqiu.mutation.Status(); ok {
		if err := taskqueueitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TaskQueueItem.status": %w`, err)}
		}
	}
	return nil
}

func (tqiu *TaskQueueItemUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := tqiu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(taskqueueitem.Table, taskqueueitem.Columns, sqlgraph.NewFieldSpec(taskqueueitem.FieldID, field.TypeString))
	if ps := tqiu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := tqiu.mutation.Title(); ok {
		_spec.SetField(taskqueueitem.FieldTitle, field.TypeString, value)
	}
	if value, ok := tqiu.mutation.Prompt(); ok {
		_spec.SetField(taskqueueitem.FieldPrompt, field.TypeString, value)
	}
	if value, ok := tqiu.mutation.AssignedAgent(); ok {
		_spec.SetField(taskqueueitem.FieldAssignedAgent, field.TypeString, value)
	}
	if tqiu.mutation.AssignedAgentCleared() {
		_spec.ClearField(taskqueueitem.FieldAssignedAgent, field.TypeString)
	}
	if value, ok := tqiu.mutation.Dependencies(); ok {
		_spec.SetField(taskqueueitem.FieldDependencies, field.TypeJSON, value)
	}
	if value, ok := tqiu.mutation.AppendedDependencies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, taskqueueitem.FieldDependencies, value)
		})
	}
	if tqiu.mutation.DependenciesCleared() {
		_spec.ClearField(taskqueueitem.FieldDependencies, field.TypeJSON)
	}
	if value, ok := tqiu.mutation.Status(); ok {
		_spec.SetField(taskqueueitem.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := tqiu.mutation.StartedAt(); ok {
		_spec.SetField(taskqueueitem.FieldStartedAt, field.TypeTime, value)
	}
	if tqiu.mutation.StartedAtCleared() {
		_spec.ClearField(taskqueueitem.FieldStartedAt, field.TypeTime)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, tqiu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskqueueitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	tqiu.mutation.done = true
	return n, nil
}

// TaskQueueItemUpdateOne is the builder for updating a single TaskQueueItem entity.
type TaskQueueItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskQueueItemMutation
}

// SetTitle sets the "title" field.
func (tqiuo *TaskQueueItemUpdateOne) SetTitle(s string) *TaskQueueItemUpdateOne {
	tqiuo.mutation.SetTitle(s)
	return tqiuo
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (tqiuo *TaskQueueItemUpdateOne) SetNillableTitle(s *string) *TaskQueueItemUpdateOne {
	if s != nil {
		tqiuo.SetTitle(*s)
	}
	return tqiuo
}

// SetPrompt sets the "prompt" field.
func (tqiuo *TaskQueueItemUpdateOne) SetPrompt(s string) *TaskQueueItemUpdateOne {
	tqiuo.mutation.SetPrompt(s)
	return tqiuo
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (tqiuo *TaskQueueItemUpdateOne) SetNillablePrompt(s *string) *TaskQueueItemUpdateOne {
	if s != nil {
		tqiuo.SetPrompt(*s)
	}
	return tqiuo
}

// SetAssignedAgent sets the "assigned_agent" field.
func (tqiuo *TaskQueueItemUpdateOne) SetAssignedAgent(s string) *TaskQueueItemUpdateOne {
	tqiuo.mutation.SetAssignedAgent(s)
	return tqiuo
}

// SetNillableAssignedAgent sets the "assigned_agent" field if the given value is not nil.
func (tqiuo *TaskQueueItemUpdateOne) SetNillableAssignedAgent(s *string) *TaskQueueItemUpdateOne {
	if s != nil {
		tqiuo.SetAssignedAgent(*s)
	}
	return tqiuo
}

// ClearAssignedAgent clears the value of the "assigned_agent" field.
func (tqiuo *TaskQueueItemUpdateOne) ClearAssignedAgent() *TaskQueueItemUpdateOne {
	tqiuo.mutation.ClearAssignedAgent()
	return tqiuo
}

// SetDependencies sets the "dependencies" field.
func (tqiuo *TaskQueueItemUpdateOne) SetDependencies(i []int) *TaskQueueItemUpdateOne {
	tqiuo.mutation.SetDependencies(i)
	return tqiuo
}

// AppendDependencies appends i to the "dependencies" field.
func (tqiuo *TaskQueueItemUpdateOne) AppendDependencies(i []int) *TaskQueueItemUpdateOne {
	tqiuo.mutation.AppendDependencies(i)
	return tqiuo
}

// ClearDependencies clears the value of the "dependencies" field.
func (tqiuo *TaskQueueItemUpdateOne) ClearDependencies() *TaskQueueItemUpdateOne {
	tqiuo.mutation.ClearDependencies()
	return tqiuo
}

// SetStatus sets the "status" field.
func (tqiuo *TaskQueueItemUpdateOne) SetStatus(t taskqueueitem.Status) *TaskQueueItemUpdateOne {
	tqiuo.mutation.SetStatus(t)
	return tqiuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (tqiuo *TaskQueueItemUpdateOne) SetNillableStatus(t *taskqueueitem.Status) *TaskQueueItemUpdateOne {
	if t != nil {
		tqiuo.SetStatus(*t)
	}
	return tqiuo
}

// SetStartedAt sets the "started_at" field.
func (tqiuo *TaskQueueItemUpdateOne) SetStartedAt(t time.Time) *TaskQueueItemUpdateOne {
	tqiuo.mutation.SetStartedAt(t)
	return tqiuo
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (tqiuo *TaskQueueItemUpdateOne) SetNillableStartedAt(t *time.Time) *TaskQueueItemUpdateOne {
	if t != nil {
		tqiuo.SetStartedAt(*t)
	}
	return tqiuo
}

// ClearStartedAt clears the value of the "started_at" field.
func (tqiuo *TaskQueueItemUpdateOne) ClearStartedAt() *TaskQueueItemUpdateOne {
	tqiuo.mutation.ClearStartedAt()
	return tqiuo
}

// Mutation returns the TaskQueueItemMutation object of the builder.
func (tqiuo *TaskQueueItemUpdateOne) Mutation() *TaskQueueItemMutation {
	return tqiuo.mutation
}

// Where appends a list predicates to the TaskQueueItemUpdate builder.
func (tqiuo *TaskQueueItemUpdateOne) Where(ps ...predicate.TaskQueueItem) *TaskQueueItemUpdateOne {
	tqiuo.mutation.Where(ps...)
	return tqiuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (tqiuo *TaskQueueItemUpdateOne) Select(field string, fields ...string) *TaskQueueItemUpdateOne {
	tqiuo.fields = append([]string{field}, fields...)
	return tqiuo
}

// Save executes the query and returns the updated TaskQueueItem entity.
func (tqiuo *TaskQueueItemUpdateOne) Save(ctx context.Context) (*TaskQueueItem, error) {
	return withHooks(ctx, tqiuo.sqlSave, tqiuo.mutation, tqiuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (tqiuo *TaskQueueItemUpdateOne) SaveX(ctx context.Context) *TaskQueueItem {
	node, err := tqiuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (tqiuo *TaskQueueItemUpdateOne) Exec(ctx context.Context) error {
	_, err := tqiuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tqiuo *TaskQueueItemUpdateOne) ExecX(ctx context.Context) {
	if err := tqiuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tqiuo *TaskQueueItemUpdateOne) check() error {
	if v, ok := tqiuo.mutation.Status(); ok {
		if err := taskqueueitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TaskQueueItem.status": %w`, err)}
		}
	}
	return nil
}

func (tqiuo *TaskQueueItemUpdateOne) sqlSave(ctx context.Context) (_node *TaskQueueItem, err error) {
	if err := tqiuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taskqueueitem.Table, taskqueueitem.Columns, sqlgraph.NewFieldSpec(taskqueueitem.FieldID, field.TypeString))
	id, ok := tqiuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TaskQueueItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := tqiuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, taskqueueitem.FieldID)
		for _, f := range fields {
			if !taskqueueitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != taskqueueitem.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := tqiuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := tqiuo.mutation.Title(); ok {
		_spec.SetField(taskqueueitem.FieldTitle, field.TypeString, value)
	}
	if value, ok := tqiuo.mutation.Prompt(); ok {
		_spec.SetField(taskqueueitem.FieldPrompt, field.TypeString, value)
	}
	if value, ok := tqiuo.mutation.AssignedAgent(); ok {
		_spec.SetField(taskqueueitem.FieldAssignedAgent, field.TypeString, value)
	}
	if tqiuo.mutation.AssignedAgentCleared() {
		_spec.ClearField(taskqueueitem.FieldAssignedAgent, field.TypeString)
	}
	if value, ok := tqiuo.mutation.Dependencies(); ok {
		_spec.SetField(taskqueueitem.FieldDependencies, field.TypeJSON, value)
	}
	if value, ok := tqiuo.mutation.AppendedDependencies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, taskqueueitem.FieldDependencies, value)
		})
	}
	if tqiuo.mutation.DependenciesCleared() {
		_spec.ClearField(taskqueueitem.FieldDependencies, field.TypeJSON)
	}
	if value, ok := tqiuo.mutation.Status(); ok {
		_spec.SetField(taskqueueitem.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := tqiuo.mutation.StartedAt(); ok {
		_spec.SetField(taskqueueitem.FieldStartedAt, field.TypeTime, value)
	}
	if tqiuo.mutation.StartedAtCleared() {
		_spec.ClearField(taskqueueitem.FieldStartedAt, field.TypeTime)
	}
	_node = &TaskQueueItem{config: tqiuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, tqiuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskqueueitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	tqiuo.mutation.done = true
	return _node, nil
}
