package models

import "time"

// Orchestration is the bookkeeping record for one user submission
// through all three pipeline phases. Keyed by commander identity and
// exclusively owned by the orchestrator.
type Orchestration struct {
	CommanderID     string     `json:"commander_id"`
	Prompt          string     `json:"prompt"`
	Model           Model      `json:"model"`
	Phase           Phase      `json:"phase"`
	Wave            int        `json:"wave"`
	SubTasks        []*SubTask `json:"sub_tasks"`
	SynthesisResult string     `json:"synthesis_result,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

// SubTask is one decomposed unit of work.
type SubTask struct {
	Index        int           `json:"index"`
	Title        string        `json:"title"`
	Prompt       string        `json:"prompt"`
	Dependencies []int         `json:"dependencies"`
	CanParallel  bool          `json:"can_parallel"`
	Priority     Priority      `json:"priority"`
	Status       SubTaskStatus `json:"status"`
	AgentID      string        `json:"agent_id,omitempty"`
	// TaskID is the runtime's process handle, held only for cancellation.
	TaskID      string     `json:"task_id,omitempty"`
	Result      string     `json:"result,omitempty"`
	Error       string     `json:"error,omitempty"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// TaskQueueItem is the durable mirror of a running sub-task, written so
// an interrupted run leaves an inspectable trace behind.
type TaskQueueItem struct {
	ID            string        `json:"id"`
	CommanderID   string        `json:"commander_id"`
	SubTaskIndex  int           `json:"sub_task_index"`
	Title         string        `json:"title"`
	Prompt        string        `json:"prompt"`
	AssignedAgent string        `json:"assigned_agent,omitempty"`
	Dependencies  []int         `json:"dependencies"`
	Status        SubTaskStatus `json:"status"`
	EnqueuedAt    time.Time     `json:"enqueued_at"`
	StartedAt     *time.Time    `json:"started_at,omitempty"`
}
