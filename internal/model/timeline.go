package model

import "time"

const (
	EventStatusCompleted  = "completed"
	EventStatusInProgress = "in_progress"
	EventStatusPending    = "pending"
	EventStatusFailed     = "failed"
	EventStatusAwaiting   = "awaiting"
)

// TimelineEvent is a reconstructed lifecycle milestone, inferred from the
// order snapshot rather than read from a stored log.
type TimelineEvent struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Timestamp   *time.Time `json:"timestamp"`
	Status      string     `json:"status"`
	Detail      string     `json:"detail,omitempty"`
}
