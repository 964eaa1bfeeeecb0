// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/crewkit/squadron/ent/predicate"
	"github.com/crewkit/squadron/ent/taskqueueitem"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeTaskQueueItem = "TaskQueueItem"
)

// TaskQueueItemMutation represents an operation that mutates the TaskQueueItem nodes in the graph.
type TaskQueueItemMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	commander_id       *string
	sub_task_index     *int
	addsub_task_index  *int
	title              *string
	prompt             *string
	assigned_agent     *string
	dependencies       *[]int
	appenddependencies []int
	status             *taskqueueitem.Status
	enqueued_at        *time.Time
	started_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*TaskQueueItem, error)
	predicates         []predicate.TaskQueueItem
}

var _ ent.Mutation = (*TaskQueueItemMutation)(nil)

// taskqueueitemOption allows management of the mutation configuration using functional options.
type taskqueueitemOption func(*TaskQueueItemMutation)

// newTaskQueueItemMutation creates new mutation for the TaskQueueItem entity.
func newTaskQueueItemMutation(c config, op Op, opts ...taskqueueitemOption) *TaskQueueItemMutation {
	m := &TaskQueueItemMutation{
		config:        c,
		op:            op,
		typ:           TypeTaskQueueItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskQueueItemID sets the ID field of the mutation.
func withTaskQueueItemID(id string) taskqueueitemOption {
	return func(m *TaskQueueItemMutation) {
		var (
			err   error
			once  sync.Once
			value *TaskQueueItem
		)
		m.oldValue = func(ctx context.Context) (*TaskQueueItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TaskQueueItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTaskQueueItem sets the old TaskQueueItem of the mutation.
func withTaskQueueItem(node *TaskQueueItem) taskqueueitemOption {
	return func(m *TaskQueueItemMutation) {
		m.oldValue = func(context.Context) (*TaskQueueItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskQueueItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskQueueItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TaskQueueItem entities.
func (m *TaskQueueItemMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskQueueItemMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskQueueItemMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TaskQueueItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCommanderID sets the "commander_id" field.
func (m *TaskQueueItemMutation) SetCommanderID(s string) {
	m.commander_id = &s
}

// CommanderID returns the value of the "commander_id" field in the mutation.
func (m *TaskQueueItemMutation) CommanderID() (r string, exists bool) {
	v := m.commander_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCommanderID returns the old "commander_id" field's value of the TaskQueueItem entity.
// If the TaskQueueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskQueueItemMutation) OldCommanderID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommanderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommanderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommanderID: %w", err)
	}
	return oldValue.CommanderID, nil
}

// ResetCommanderID resets all changes to the "commander_id" field.
func (m *TaskQueueItemMutation) ResetCommanderID() {
	m.commander_id = nil
}

// SetSubTaskIndex sets the "sub_task_index" field.
func (m *TaskQueueItemMutation) SetSubTaskIndex(i int) {
	m.sub_task_index = &i
	m.addsub_task_index = nil
}

// SubTaskIndex returns the value of the "sub_task_index" field in the mutation.
func (m *TaskQueueItemMutation) SubTaskIndex() (r int, exists bool) {
	v := m.sub_task_index
	if v == nil {
		return
	}
	return *v, true
}

// OldSubTaskIndex returns the old "sub_task_index" field's value of the TaskQueueItem entity.
// If the TaskQueueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskQueueItemMutation) OldSubTaskIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubTaskIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubTaskIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubTaskIndex: %w", err)
	}
	return oldValue.SubTaskIndex, nil
}

// AddSubTaskIndex adds i to the "sub_task_index" field.
func (m *TaskQueueItemMutation) AddSubTaskIndex(i int) {
	if m.addsub_task_index != nil {
		*m.addsub_task_index += i
	} else {
		m.addsub_task_index = &i
	}
}

// AddedSubTaskIndex returns the value that was added to the "sub_task_index" field in this mutation.
func (m *TaskQueueItemMutation) AddedSubTaskIndex() (r int, exists bool) {
	v := m.addsub_task_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetSubTaskIndex resets all changes to the "sub_task_index" field.
func (m *TaskQueueItemMutation) ResetSubTaskIndex() {
	m.sub_task_index = nil
	m.addsub_task_index = nil
}

// SetTitle sets the "title" field.
func (m *TaskQueueItemMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *TaskQueueItemMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the TaskQueueItem entity.
// If the TaskQueueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskQueueItemMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *TaskQueueItemMutation) ResetTitle() {
	m.title = nil
}

// SetPrompt sets the "prompt" field.
func (m *TaskQueueItemMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *TaskQueueItemMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the TaskQueueItem entity.
// If the TaskQueueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskQueueItemMutation) OldPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *TaskQueueItemMutation) ResetPrompt() {
	m.prompt = nil
}

// SetAssignedAgent sets the "assigned_agent" field.
func (m *TaskQueueItemMutation) SetAssignedAgent(s string) {
	m.assigned_agent = &s
}

// AssignedAgent returns the value of the "assigned_agent" field in the mutation.
func (m *TaskQueueItemMutation) AssignedAgent() (r string, exists bool) {
	v := m.assigned_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedAgent returns the old "assigned_agent" field's value of the TaskQueueItem entity.
// If the TaskQueueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskQueueItemMutation) OldAssignedAgent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedAgent: %w", err)
	}
	return oldValue.AssignedAgent, nil
}

// ClearAssignedAgent clears the value of the "assigned_agent" field.
func (m *TaskQueueItemMutation) ClearAssignedAgent() {
	m.assigned_agent = nil
	m.clearedFields[taskqueueitem.FieldAssignedAgent] = struct{}{}
}

// AssignedAgentCleared returns if the "assigned_agent" field was cleared in this mutation.
func (m *TaskQueueItemMutation) AssignedAgentCleared() bool {
	_, ok := m.clearedFields[taskqueueitem.FieldAssignedAgent]
	return ok
}

// ResetAssignedAgent resets all changes to the "assigned_agent" field.
func (m *TaskQueueItemMutation) ResetAssignedAgent() {
	m.assigned_agent = nil
	delete(m.clearedFields, taskqueueitem.FieldAssignedAgent)
}

// SetDependencies sets the "dependencies" field.
func (m *TaskQueueItemMutation) SetDependencies(i []int) {
	m.dependencies = &i
	m.appenddependencies = nil
}

// Dependencies returns the value of the "dependencies" field in the mutation.
func (m *TaskQueueItemMutation) Dependencies() (r []int, exists bool) {
	v := m.dependencies
	if v == nil {
		return
	}
	return *v, true
}

// OldDependencies returns the old "dependencies" field's value of the TaskQueueItem entity.
// If the TaskQueueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskQueueItemMutation) OldDependencies(ctx context.Context) (v []int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDependencies is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDependencies requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDependencies: %w", err)
	}
	return oldValue.Dependencies, nil
}

// AppendDependencies adds i to the "dependencies" field.
func (m *TaskQueueItemMutation) AppendDependencies(i []int) {
	m.appenddependencies = append(m.appenddependencies, i...)
}

// AppendedDependencies returns the list of values that were appended to the "dependencies" field in this mutation.
func (m *TaskQueueItemMutation) AppendedDependencies() ([]int, bool) {
	if len(m.appenddependencies) == 0 {
		return nil, false
	}
	return m.appenddependencies, true
}

// ClearDependencies clears the value of the "dependencies" field.
func (m *TaskQueueItemMutation) ClearDependencies() {
	m.dependencies = nil
	m.appenddependencies = nil
	m.clearedFields[taskqueueitem.FieldDependencies] = struct{}{}
}

// DependenciesCleared returns if the "dependencies" field was cleared in this mutation.
func (m *TaskQueueItemMutation) DependenciesCleared() bool {
	_, ok := m.clearedFields[taskqueueitem.FieldDependencies]
	return ok
}

// ResetDependencies resets all changes to the "dependencies" field.
func (m *TaskQueueItemMutation) ResetDependencies() {
	m.dependencies = nil
	m.appenddependencies = nil
	delete(m.clearedFields, taskqueueitem.FieldDependencies)
}

// SetStatus sets the "status" field.
func (m *TaskQueueItemMutation) SetStatus(t taskqueueitem.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskQueueItemMutation) Status() (r taskqueueitem.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the TaskQueueItem entity.
// If the TaskQueueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskQueueItemMutation) OldStatus(ctx context.Context) (v taskqueueitem.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskQueueItemMutation) ResetStatus() {
	m.status = nil
}

// SetEnqueuedAt sets the "enqueued_at" field.
func (m *TaskQueueItemMutation) SetEnqueuedAt(t time.Time) {
	m.enqueued_at = &t
}

// EnqueuedAt returns the value of the "enqueued_at" field in the mutation.
func (m *TaskQueueItemMutation) EnqueuedAt() (r time.Time, exists bool) {
	v := m.enqueued_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEnqueuedAt returns the old "enqueued_at" field's value of the TaskQueueItem entity.
// If the TaskQueueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskQueueItemMutation) OldEnqueuedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnqueuedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnqueuedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnqueuedAt: %w", err)
	}
	return oldValue.EnqueuedAt, nil
}

// ResetEnqueuedAt resets all changes to the "enqueued_at" field.
func (m *TaskQueueItemMutation) ResetEnqueuedAt() {
	m.enqueued_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *TaskQueueItemMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *TaskQueueItemMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the TaskQueueItem entity.
// If the TaskQueueItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskQueueItemMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *TaskQueueItemMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[taskqueueitem.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *TaskQueueItemMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[taskqueueitem.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *TaskQueueItemMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, taskqueueitem.FieldStartedAt)
}

// Where appends a list predicates to the TaskQueueItemMutation builder.
func (m *TaskQueueItemMutation) Where(ps ...predicate.TaskQueueItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskQueueItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskQueueItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TaskQueueItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskQueueItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskQueueItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TaskQueueItem).
func (m *TaskQueueItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskQueueItemMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.commander_id != nil {
		fields = append(fields, taskqueueitem.FieldCommanderID)
	}
	if m.sub_task_index != nil {
		fields = append(fields, taskqueueitem.FieldSubTaskIndex)
	}
	if m.title != nil {
		fields = append(fields, taskqueueitem.FieldTitle)
	}
	if m.prompt != nil {
		fields = append(fields, taskqueueitem.FieldPrompt)
	}
	if m.assigned_agent != nil {
		fields = append(fields, taskqueueitem.FieldAssignedAgent)
	}
	if m.dependencies != nil {
		fields = append(fields, taskqueueitem.FieldDependencies)
	}
	if m.status != nil {
		fields = append(fields, taskqueueitem.FieldStatus)
	}
	if m.enqueued_at != nil {
		fields = append(fields, taskqueueitem.FieldEnqueuedAt)
	}
	if m.started_at != nil {
		fields = append(fields, taskqueueitem.FieldStartedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskQueueItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case taskqueueitem.FieldCommanderID:
		return m.CommanderID()
	case taskqueueitem.FieldSubTaskIndex:
		return m.SubTaskIndex()
	case taskqueueitem.FieldTitle:
		return m.Title()
	case taskqueueitem.FieldPrompt:
		return m.Prompt()
	case taskqueueitem.FieldAssignedAgent:
		return m.AssignedAgent()
	case taskqueueitem.FieldDependencies:
		return m.Dependencies()
	case taskqueueitem.FieldStatus:
		return m.Status()
	case taskqueueitem.FieldEnqueuedAt:
		return m.EnqueuedAt()
	case taskqueueitem.FieldStartedAt:
		return m.StartedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskQueueItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case taskqueueitem.FieldCommanderID:
		return m.OldCommanderID(ctx)
	case taskqueueitem.FieldSubTaskIndex:
		return m.OldSubTaskIndex(ctx)
	case taskqueueitem.FieldTitle:
		return m.OldTitle(ctx)
	case taskqueueitem.FieldPrompt:
		return m.OldPrompt(ctx)
	case taskqueueitem.FieldAssignedAgent:
		return m.OldAssignedAgent(ctx)
	case taskqueueitem.FieldDependencies:
		return m.OldDependencies(ctx)
	case taskqueueitem.FieldStatus:
		return m.OldStatus(ctx)
	case taskqueueitem.FieldEnqueuedAt:
		return m.OldEnqueuedAt(ctx)
	case taskqueueitem.FieldStartedAt:
		return m.OldStartedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TaskQueueItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskQueueItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case taskqueueitem.FieldCommanderID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommanderID(v)
		return nil
	case taskqueueitem.FieldSubTaskIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubTaskIndex(v)
		return nil
	case taskqueueitem.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case taskqueueitem.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case taskqueueitem.FieldAssignedAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedAgent(v)
		return nil
	case taskqueueitem.FieldDependencies:
		v, ok := value.([]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDependencies(v)
		return nil
	case taskqueueitem.FieldStatus:
		v, ok := value.(taskqueueitem.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case taskqueueitem.FieldEnqueuedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnqueuedAt(v)
		return nil
	case taskqueueitem.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TaskQueueItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskQueueItemMutation) AddedFields() []string {
	var fields []string
	if m.addsub_task_index != nil {
		fields = append(fields, taskqueueitem.FieldSubTaskIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskQueueItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case taskqueueitem.FieldSubTaskIndex:
		return m.AddedSubTaskIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskQueueItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case taskqueueitem.FieldSubTaskIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSubTaskIndex(v)
		return nil
	}
	return fmt.Errorf("unknown TaskQueueItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskQueueItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(taskqueueitem.FieldAssignedAgent) {
		fields = append(fields, taskqueueitem.FieldAssignedAgent)
	}
	if m.FieldCleared(taskqueueitem.FieldDependencies) {
		fields = append(fields, taskqueueitem.FieldDependencies)
	}
	if m.FieldCleared(taskqueueitem.FieldStartedAt) {
		fields = append(fields, taskqueueitem.FieldStartedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskQueueItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskQueueItemMutation) ClearField(name string) error {
	switch name {
	case taskqueueitem.FieldAssignedAgent:
		m.ClearAssignedAgent()
		return nil
	case taskqueueitem.FieldDependencies:
		m.ClearDependencies()
		return nil
	case taskqueueitem.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	}
	return fmt.Errorf("unknown TaskQueueItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskQueueItemMutation) ResetField(name string) error {
	switch name {
	case taskqueueitem.FieldCommanderID:
		m.ResetCommanderID()
		return nil
	case taskqueueitem.FieldSubTaskIndex:
		m.ResetSubTaskIndex()
		return nil
	case taskqueueitem.FieldTitle:
		m.ResetTitle()
		return nil
	case taskqueueitem.FieldPrompt:
		m.ResetPrompt()
		return nil
	case taskqueueitem.FieldAssignedAgent:
		m.ResetAssignedAgent()
		return nil
	case taskqueueitem.FieldDependencies:
		m.ResetDependencies()
		return nil
	case taskqueueitem.FieldStatus:
		m.ResetStatus()
		return nil
	case taskqueueitem.FieldEnqueuedAt:
		m.ResetEnqueuedAt()
		return nil
	case taskqueueitem.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	}
	return fmt.Errorf("unknown TaskQueueItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskQueueItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskQueueItemMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskQueueItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskQueueItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskQueueItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskQueueItemMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskQueueItemMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TaskQueueItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskQueueItemMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TaskQueueItem edge %s", name)
}
