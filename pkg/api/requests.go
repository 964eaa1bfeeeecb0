package api

// SubmitOrchestrationRequest is the HTTP request body for
// POST /api/v1/orchestrations.
type SubmitOrchestrationRequest struct {
	Prompt string `json:"prompt"`
	Model  string `json:"model"`
}
