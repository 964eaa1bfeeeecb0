// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// TaskQueueItem is the predicate function for taskqueueitem builders.
type TaskQueueItem func(*sql.Selector)
