package webhook

// AckResponse is the acknowledgment returned to the webhook caller
type AckResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	AsanaTaskGID string `json:"asana_task_gid,omitempty"`
}
