package domain

import "time"

// Event is one auditable, state-changing action recorded in the workspace
// log. Events are append-only; read-only commands record nothing.
type Event struct {
	ID        string            `json:"id"`
	Timestamp time.Time         `json:"timestamp"`
	Action    string            `json:"action"`
	SpecID    string            `json:"spec_id,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}
