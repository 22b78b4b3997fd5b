package slacknotify

import (
	"github.com/go-playground/validator/v10"

	"github.com/randalmurphal/slacknotify/errors"
)

// Well-known status tags. Status is free-form; these are the tags with a
// dedicated emoji, matched case-insensitively.
const (
	StatusCompleted  = "completed"
	StatusSuccess    = "success"
	StatusFailed     = "failed"
	StatusError      = "error"
	StatusInProgress = "in_progress"
	StatusRunning    = "running"
	StatusWarning    = "warning"
	StatusInfo       = "info"
)

// DefaultStatus is used when a request carries no status tag.
const DefaultStatus = StatusCompleted

// Request describes one progress update. Optional fields are empty strings
// when absent; presence drives which blocks are emitted. A Request lives
// for exactly one Send call and is never persisted.
type Request struct {
	// Summary is a brief description of what was accomplished. Required.
	Summary string `json:"summary" validate:"required"`

	// Details carries longer free-form information.
	Details string `json:"details,omitempty"`

	// Status is a free-form tag (see Status* constants).
	// Defaults to DefaultStatus.
	Status string `json:"status,omitempty"`

	// Timestamp is an ISO-8601 time. Unparseable values are rendered
	// verbatim; absent means "now".
	Timestamp string `json:"timestamp,omitempty"`

	// TaskID identifies the task for tracking, rendered as inline code.
	TaskID string `json:"task_id,omitempty"`

	// AgentName names the agent reporting progress.
	AgentName string `json:"agent_name,omitempty"`

	// ThreadTS is an opaque thread reference. When set, the message nests
	// under that thread instead of starting a new top-level message.
	ThreadTS string `json:"thread_ts,omitempty"`
}

var requestValidator = validator.New()

// Validate checks the single request invariant: summary present.
func (r Request) Validate() error {
	if err := requestValidator.Struct(r); err != nil {
		return errors.NewConfigError(
			"Progress update rejected: summary is required.",
			"Provide a non-empty summary of what was accomplished.",
		)
	}
	return nil
}

// status returns the effective status tag.
func (r Request) status() string {
	if r.Status == "" {
		return DefaultStatus
	}
	return r.Status
}
