package models

// Model identifies the CLI model tier a task runs on.
type Model string

const (
	ModelOpus   Model = "opus"
	ModelSonnet Model = "sonnet"
	ModelHaiku  Model = "haiku"
)

// PlannerModel is the cheapest tier, always used for decomposition.
const PlannerModel = ModelHaiku

// IsValid checks if the model is in the supported set.
func (m Model) IsValid() bool {
	switch m {
	case ModelOpus, ModelSonnet, ModelHaiku:
		return true
	default:
		return false
	}
}
