// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/crewkit/squadron/ent/taskqueueitem"
)

// TaskQueueItem is the model entity for the TaskQueueItem schema.
type TaskQueueItem struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CommanderID holds the value of the "commander_id" field.
	CommanderID string `json:"commander_id,omitempty"`
	// Position in the commander's plan
	SubTaskIndex int `json:"sub_task_index,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Prompt holds the value of the "prompt" field.
	Prompt string `json:"prompt,omitempty"`
	// Pool agent executing the item, set on start
	AssignedAgent string `json:"assigned_agent,omitempty"`
	// Plan indices this item waits on
	Dependencies []int `json:"dependencies,omitempty"`
	// Status holds the value of the "status" field.
	Status taskqueueitem.Status `json:"status,omitempty"`
	// EnqueuedAt holds the value of the "enqueued_at" field.
	EnqueuedAt time.Time `json:"enqueued_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt    *time.Time `json:"started_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TaskQueueItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case taskqueueitem.FieldDependencies:
			values[i] = new([]byte)
		case taskqueueitem.FieldSubTaskIndex:
			values[i] = new(sql.NullInt64)
		case taskqueueitem.FieldID, taskqueueitem.FieldCommanderID, taskqueueitem.FieldTitle, taskqueueitem.FieldPrompt, taskqueueitem.FieldAssignedAgent, taskqueueitem.FieldStatus:
			values[i] = new(sql.NullString)
		case taskqueueitem.FieldEnqueuedAt, taskqueueitem.FieldStartedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TaskQueueItem fields.
func (tqi *TaskQueueItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case taskqueueitem.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				tqi.ID = value.String
			}
		case taskqueueitem.FieldCommanderID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field commander_id", values[i])
			} else if value.Valid {
				tqi.CommanderID = value.String
			}
		case taskqueueitem.FieldSubTaskIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sub_task_index", values[i])
			} else if value.Valid {
				tqi.SubTaskIndex = int(value.Int64)
			}
		case taskqueueitem.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				tqi.Title = value.String
			}
		case taskqueueitem.FieldPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt", values[i])
			} else if value.Valid {
				tqi.Prompt = value.String
			}
		case taskqueueitem.FieldAssignedAgent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assigned_agent", values[i])
			} else if value.Valid {
				tqi.AssignedAgent = value.String
			}
		case taskqueueitem.FieldDependencies:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field dependencies", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &tqi.Dependencies); err != nil {
					return fmt.Errorf("unmarshal field dependencies: %w", err)
				}
			}
		case taskqueueitem.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				tqi.Status = taskqueueitem.Status(value.String)
			}
		case taskqueueitem.FieldEnqueuedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field enqueued_at", values[i])
			} else if value.Valid {
				tqi.EnqueuedAt = value.Time
			}
		case taskqueueitem.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				tqi.StartedAt = new(time.Time)
				*tqi.StartedAt = value.Time
			}
		default:
			tqi.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TaskQueueItem.
// This includes values selected through modifiers, order, etc.
func (tqi *TaskQueueItem) Value(name string) (ent.Value, error) {
	return tqi.selectValues.Get(name)
}

// Update returns a builder for updating this TaskQueueItem.
// Note that you need to call TaskQueueItem.Unwrap() before calling this method if this TaskQueueItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (tqi *TaskQueueItem) Update() *TaskQueueItemUpdateOne {
	return NewTaskQueueItemClient(tqi.config).UpdateOne(tqi)
}

// Unwrap unwraps the TaskQueueItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (tqi *TaskQueueItem) Unwrap() *TaskQueueItem {
	_tx, ok := tqi.config.driver.(*txDriver)
	if !ok {
		panic("ent: TaskQueueItem is not a transactional entity")
	}
	tqi.config.driver = _tx.drv
	return tqi
}

// String implements the fmt.Stringer.
func (tqi *TaskQueueItem) String() string {
	var builder strings.Builder
	builder.WriteString("TaskQueueItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", tqi.ID))
	builder.WriteString("commander_id=")
	builder.WriteString(tqi.CommanderID)
	builder.WriteString(", ")
	builder.WriteString("sub_task_index=")
	builder.WriteString(fmt.Sprintf("%v", tqi.SubTaskIndex))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(tqi.Title)
	builder.WriteString(", ")
	builder.WriteString("prompt=")
	builder.WriteString(tqi.Prompt)
	builder.WriteString(", ")
	builder.WriteString("assigned_agent=")
	builder.WriteString(tqi.AssignedAgent)
	builder.WriteString(", ")
	builder.WriteString("dependencies=")
	builder.WriteString(fmt.Sprintf("%v", tqi.Dependencies))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", tqi.Status))
	builder.WriteString(", ")
	builder.WriteString("enqueued_at=")
	builder.WriteString(tqi.EnqueuedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := tqi.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// TaskQueueItems is a parsable slice of TaskQueueItem.
type TaskQueueItems []*TaskQueueItem
