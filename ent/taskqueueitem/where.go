// Code generated by ent, DO NOT EDIT.

package taskqueueitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/crewkit/squadron/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldContainsFold(FieldID, id))
}

// CommanderID applies equality check predicate on the "commander_id" field. It's identical to CommanderIDEQ.
func CommanderID(v string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldEQ(FieldCommanderID, v))
}

// SubTaskIndex applies equality check predicate on the "sub_task_index" field. It's identical to SubTaskIndexEQ.
func SubTaskIndex(v int) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldEQ(FieldSubTaskIndex, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldEQ(FieldTitle, v))
}

// Prompt applies equality check predicate on the "prompt" field. It's identical to PromptEQ.
func Prompt(v string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldEQ(FieldPrompt, v))
}

// AssignedAgent applies equality check predicate on the "assigned_agent" field. It's identical to AssignedAgentEQ.
func AssignedAgent(v string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldEQ(FieldAssignedAgent, v))
}

// EnqueuedAt applies equality check predicate on the "enqueued_at" field. It's identical to EnqueuedAtEQ.
func EnqueuedAt(v time.Time) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldEQ(FieldEnqueuedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldEQ(FieldStartedAt, v))
}

// CommanderIDEQ applies the EQ predicate on the "commander_id" field.
func CommanderIDEQ(v string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldEQ(FieldCommanderID, v))
}

// CommanderIDNEQ applies the NEQ predicate on the "commander_id" field.
func CommanderIDNEQ(v string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldNEQ(FieldCommanderID, v))
}

// CommanderIDIn applies the In predicate on the "commander_id" field.
func CommanderIDIn(vs ...string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldIn(FieldCommanderID, vs...))
}

// CommanderIDNotIn applies the NotIn predicate on the "commander_id" field.
func CommanderIDNotIn(vs ...string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldNotIn(FieldCommanderID, vs...))
}

// CommanderIDGT applies the GT predicate on the "commander_id" field.
func CommanderIDGT(v string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldGT(FieldCommanderID, v))
}

// CommanderIDGTE applies the GTE predicate on the "commander_id" field.
func CommanderIDGTE(v string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldGTE(FieldCommanderID, v))
}

// CommanderIDLT applies the LT predicate on the "commander_id" field.
func CommanderIDLT(v string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldLT(FieldCommanderID, v))
}

// CommanderIDLTE applies the LTE predicate on the "commander_id" field.
func CommanderIDLTE(v string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldLTE(FieldCommanderID, v))
}

// CommanderIDContains applies the Contains predicate on the "commander_id" field.
func CommanderIDContains(v string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldContains(FieldCommanderID, v))
}

// CommanderIDHasPrefix applies the HasPrefix predicate on the "commander_id" field.
func CommanderIDHasPrefix(v string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldHasPrefix(FieldCommanderID, v))
}

// CommanderIDHasSuffix applies the HasSuffix predicate on the "commander_id" field.
func CommanderIDHasSuffix(v string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldHasSuffix(FieldCommanderID, v))
}

// CommanderIDEqualFold applies the EqualFold predicate on the "commander_id" field.
func CommanderIDEqualFold(v string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldEqualFold(FieldCommanderID, v))
}

// CommanderIDContainsFold applies the ContainsFold predicate on the "commander_id" field.
func CommanderIDContainsFold(v string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldContainsFold(FieldCommanderID, v))
}

// SubTaskIndexEQ applies the EQ predicate on the "sub_task_index" field.
func SubTaskIndexEQ(v int) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldEQ(FieldSubTaskIndex, v))
}

// SubTaskIndexNEQ applies the NEQ predicate on the "sub_task_index" field.
func SubTaskIndexNEQ(v int) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldNEQ(FieldSubTaskIndex, v))
}

// SubTaskIndexIn applies the In predicate on the "sub_task_index" field.
func SubTaskIndexIn(vs ...int) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldIn(FieldSubTaskIndex, vs...))
}

// SubTaskIndexNotIn applies the NotIn predicate on the "sub_task_index" field.
func SubTaskIndexNotIn(vs ...int) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldNotIn(FieldSubTaskIndex, vs...))
}

// SubTaskIndexGT applies the GT predicate on the "sub_task_index" field.
func SubTaskIndexGT(v int) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldGT(FieldSubTaskIndex, v))
}

// SubTaskIndexGTE applies the GTE predicate on the "sub_task_index" field.
func SubTaskIndexGTE(v int) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldGTE(FieldSubTaskIndex, v))
}

// SubTaskIndexLT applies the LT predicate on the "sub_task_index" field.
func SubTaskIndexLT(v int) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldLT(FieldSubTaskIndex, v))
}

// SubTaskIndexLTE applies the LTE predicate on the "sub_task_index" field.
func SubTaskIndexLTE(v int) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldLTE(FieldSubTaskIndex, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldContainsFold(FieldTitle, v))
}

// PromptEQ applies the EQ predicate on the "prompt" field.
func PromptEQ(v string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldEQ(FieldPrompt, v))
}

// PromptNEQ applies the NEQ predicate on the "prompt" field.
func PromptNEQ(v string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldNEQ(FieldPrompt, v))
}

// PromptIn applies the In predicate on the "prompt" field.
func PromptIn(vs ...string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldIn(FieldPrompt, vs...))
}

// PromptNotIn applies the NotIn predicate on the "prompt" field.
func PromptNotIn(vs ...string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldNotIn(FieldPrompt, vs...))
}

// PromptGT applies the GT predicate on the "prompt" field.
func PromptGT(v string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldGT(FieldPrompt, v))
}

// PromptGTE applies the GTE predicate on the "prompt" field.
func PromptGTE(v string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldGTE(FieldPrompt, v))
}

// PromptLT applies the LT predicate on the "prompt" field.
func PromptLT(v string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldLT(FieldPrompt, v))
}

// PromptLTE applies the LTE predicate on the "prompt" field.
func PromptLTE(v string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldLTE(FieldPrompt, v))
}

// PromptContains applies the Contains predicate on the "prompt" field.
func PromptContains(v string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldContains(FieldPrompt, v))
}

// PromptHasPrefix applies the HasPrefix predicate on the "prompt" field.
func PromptHasPrefix(v string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldHasPrefix(FieldPrompt, v))
}

// PromptHasSuffix applies the HasSuffix predicate on the "prompt" field.
func PromptHasSuffix(v string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldHasSuffix(FieldPrompt, v))
}

// PromptEqualFold applies the EqualFold predicate on the "prompt" field.
func PromptEqualFold(v string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldEqualFold(FieldPrompt, v))
}

// PromptContainsFold applies the ContainsFold predicate on the "prompt" field.
func PromptContainsFold(v string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldContainsFold(FieldPrompt, v))
}

// AssignedAgentEQ applies the EQ predicate on the "assigned_agent" field.
func AssignedAgentEQ(v string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldEQ(FieldAssignedAgent, v))
}

// AssignedAgentNEQ applies the NEQ predicate on the "assigned_agent" field.
func AssignedAgentNEQ(v string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldNEQ(FieldAssignedAgent, v))
}

// AssignedAgentIn applies the In predicate on the "assigned_agent" field.
func AssignedAgentIn(vs ...string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldIn(FieldAssignedAgent, vs...))
}

// AssignedAgentNotIn applies the NotIn predicate on the "assigned_agent" field.
func AssignedAgentNotIn(vs ...string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldNotIn(FieldAssignedAgent, vs...))
}

// AssignedAgentGT applies the GT predicate on the "assigned_agent" field.
func AssignedAgentGT(v string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldGT(FieldAssignedAgent, v))
}

// AssignedAgentGTE applies the GTE predicate on the "assigned_agent" field.
func AssignedAgentGTE(v string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldGTE(FieldAssignedAgent, v))
}

// AssignedAgentLT applies the LT predicate on the "assigned_agent" field.
func AssignedAgentLT(v string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldLT(FieldAssignedAgent, v))
}

// AssignedAgentLTE applies the LTE predicate on the "assigned_agent" field.
func AssignedAgentLTE(v string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldLTE(FieldAssignedAgent, v))
}

// AssignedAgentContains applies the Contains predicate on the "assigned_agent" field.
func AssignedAgentContains(v string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldContains(FieldAssignedAgent, v))
}

// AssignedAgentHasPrefix applies the HasPrefix predicate on the "assigned_agent" field.
func AssignedAgentHasPrefix(v string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldHasPrefix(FieldAssignedAgent, v))
}

// AssignedAgentHasSuffix applies the HasSuffix predicate on the "assigned_agent" field.
func AssignedAgentHasSuffix(v string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldHasSuffix(FieldAssignedAgent, v))
}

// AssignedAgentIsNil applies the IsNil predicate on the "assigned_agent" field.
func AssignedAgentIsNil() predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldIsNull(FieldAssignedAgent))
}

// AssignedAgentNotNil applies the NotNil predicate on the "assigned_agent" field.
func AssignedAgentNotNil() predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldNotNull(FieldAssignedAgent))
}

// AssignedAgentEqualFold applies the EqualFold predicate on the "assigned_agent" field.
func AssignedAgentEqualFold(v string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldEqualFold(FieldAssignedAgent, v))
}

// AssignedAgentContainsFold applies the ContainsFold predicate on the "assigned_agent" field.
func AssignedAgentContainsFold(v string) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldContainsFold(FieldAssignedAgent, v))
}

// DependenciesIsNil applies the IsNil predicate on the "dependencies" field.
func DependenciesIsNil() predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldIsNull(FieldDependencies))
}

// DependenciesNotNil applies the NotNil predicate on the "dependencies" field.
func DependenciesNotNil() predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldNotNull(FieldDependencies))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldNotIn(FieldStatus, vs...))
}

// EnqueuedAtEQ applies the EQ predicate on the "enqueued_at" field.
func EnqueuedAtEQ(v time.Time) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldEQ(FieldEnqueuedAt, v))
}

// EnqueuedAtNEQ applies the NEQ predicate on the "enqueued_at" field.
func EnqueuedAtNEQ(v time.Time) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldNEQ(FieldEnqueuedAt, v))
}

// EnqueuedAtIn applies the In predicate on the "enqueued_at" field.
func EnqueuedAtIn(vs ...time.Time) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldIn(FieldEnqueuedAt, vs...))
}

// EnqueuedAtNotIn applies the NotIn predicate on the "enqueued_at" field.
func EnqueuedAtNotIn(vs ...time.Time) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldNotIn(FieldEnqueuedAt, vs...))
}

// EnqueuedAtGT applies the GT predicate on the "enqueued_at" field.
func EnqueuedAtGT(v time.Time) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldGT(FieldEnqueuedAt, v))
}

// EnqueuedAtGTE applies the GTE predicate on the "enqueued_at" field.
func EnqueuedAtGTE(v time.Time) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldGTE(FieldEnqueuedAt, v))
}

// EnqueuedAtLT applies the LT predicate on the "enqueued_at" field.
func EnqueuedAtLT(v time.Time) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldLT(FieldEnqueuedAt, v))
}

// EnqueuedAtLTE applies the LTE predicate on the "enqueued_at" field.
func EnqueuedAtLTE(v time.Time) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldLTE(FieldEnqueuedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.FieldNotNull(FieldStartedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TaskQueueItem) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TaskQueueItem) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TaskQueueItem) predicate.TaskQueueItem {
	return predicate.TaskQueueItem(sql.NotPredicates(p))
}
