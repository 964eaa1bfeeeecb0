// Code generated by ent, DO NOT EDIT.

package taskqueueitem

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the taskqueueitem type in the database.
	Label = "task_queue_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "item_id"
	// FieldCommanderID holds the string denoting the commander_id field in the database.
	FieldCommanderID = "commander_id"
	// FieldSubTaskIndex holds the string denoting the sub_task_index field in the database.
	FieldSubTaskIndex = "sub_task_index"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldPrompt holds the string denoting the prompt field in the database.
	FieldPrompt = "prompt"
	// FieldAssignedAgent holds the string denoting the assigned_agent field in the database.
	FieldAssignedAgent = "assigned_agent"
	// FieldDependencies holds the string denoting the dependencies field in the database.
	FieldDependencies = "dependencies"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldEnqueuedAt holds the string denoting the enqueued_at field in the database.
	FieldEnqueuedAt = "enqueued_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// Table holds the table name of the taskqueueitem in the database.
	Table = "task_queue_items"
)

// Columns holds all SQL columns for taskqueueitem fields.
var Columns = []string{
	FieldID,
	FieldCommanderID,
	FieldSubTaskIndex,
	FieldTitle,
	FieldPrompt,
	FieldAssignedAgent,
	FieldDependencies,
	FieldStatus,
	FieldEnqueuedAt,
	FieldStartedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultEnqueuedAt holds the default value on creation for the "enqueued_at" field.
	DefaultEnqueuedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusWaiting is the default value of the Status enum.
const DefaultStatus = StatusWaiting

// Status values.
const (
	StatusPending    Status = "pending"
	StatusWaiting    Status = "waiting"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusWaiting, StatusInProgress, StatusCompleted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("taskqueueitem: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the TaskQueueItem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCommanderID orders the results by the commander_id field.
func ByCommanderID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommanderID, opts...).ToFunc()
}

// BySubTaskIndex orders the results by the sub_task_index field.
func BySubTaskIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubTaskIndex, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByPrompt orders the results by the prompt field.
func ByPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrompt, opts...).ToFunc()
}

// ByAssignedAgent orders the results by the assigned_agent field.
func ByAssignedAgent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignedAgent, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByEnqueuedAt orders the results by the enqueued_at field.
func ByEnqueuedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnqueuedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}
