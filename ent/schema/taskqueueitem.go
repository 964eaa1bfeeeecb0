package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TaskQueueItem holds the schema definition for the TaskQueueItem entity.
// One row mirrors one scheduled sub-task of a commander; rows are removed
// when the orchestration finishes cleanly, so rows that survive a restart
// mark work that was interrupted mid-flight.
type TaskQueueItem struct {
	ent.Schema
}

// Fields of the TaskQueueItem.
func (TaskQueueItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("item_id").
			Unique().
			Immutable(),
		field.String("commander_id").
			Immutable(),
		field.Int("sub_task_index").
			Immutable().
			Comment("Position in the commander's plan"),

		// Sub-task details
		field.String("title"),
		field.Text("prompt"),
		field.String("assigned_agent").
			Optional().
			Comment("Pool agent executing the item, set on start"),
		field.Ints("dependencies").
			Optional().
			Comment("Plan indices this item waits on"),

		// Scheduling state & timing
		field.Enum("status").
			Values("pending", "waiting", "in_progress", "completed", "failed").
			Default("waiting"),
		field.Time("enqueued_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the TaskQueueItem.
func (TaskQueueItem) Indexes() []ent.Index {
	return []ent.Index{
		// One row per plan position
		index.Fields("commander_id", "sub_task_index").
			Unique(),
		// Primary lookups on id field (stored as item_id)
		index.Fields("id"),
		// Commander-wide removal on clean finish
		index.Fields("commander_id"),
	}
}
