// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/crewkit/squadron/ent/schema"
	"github.com/crewkit/squadron/ent/taskqueueitem"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	taskqueueitemFields := schema.TaskQueueItem{}.Fields()
	_ = taskqueueitemFields
	// taskqueueitemDescEnqueuedAt is the schema descriptor for enqueued_at field.
	taskqueueitemDescEnqueuedAt := taskqueueitemFields[8].Descriptor()
	// taskqueueitem.DefaultEnqueuedAt holds the default value on creation for the enqueued_at field.
	taskqueueitem.DefaultEnqueuedAt = taskqueueitemDescEnqueuedAt.Default.(func() time.Time)
}
