// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// TaskQueueItemsColumns holds the columns for the "task_queue_items" table.
	TaskQueueItemsColumns = []*schema.Column{
		{Name: "item_id", Type: field.TypeString, Unique: true},
		{Name: "commander_id", Type: field.TypeString},
		{Name: "sub_task_index", Type: field.TypeInt},
		{Name: "title", Type: field.TypeString},
		{Name: "prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "assigned_agent", Type: field.TypeString, Nullable: true},
		{Name: "dependencies", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "waiting", "in_progress", "completed", "failed"}, Default: "waiting"},
		{Name: "enqueued_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
	}
	// TaskQueueItemsTable holds the schema information for the "task_queue_items" table.
	TaskQueueItemsTable = &schema.Table{
		Name:       "task_queue_items",
		Columns:    TaskQueueItemsColumns,
		PrimaryKey: []*schema.Column{TaskQueueItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "taskqueueitem_commander_id_sub_task_index",
				Unique:  true,
				Columns: []*schema.Column{TaskQueueItemsColumns[1], TaskQueueItemsColumns[2]},
			},
			{
				Name:    "taskqueueitem_item_id",
				Unique:  false,
				Columns: []*schema.Column{TaskQueueItemsColumns[0]},
			},
			{
				Name:    "taskqueueitem_commander_id",
				Unique:  false,
				Columns: []*schema.Column{TaskQueueItemsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		TaskQueueItemsTable,
	}
)

func init() {
}
