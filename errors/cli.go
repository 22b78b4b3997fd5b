package errors

import (
	"fmt"
	"strings"
)

// CLIError wraps an error with user-friendly context and suggestions.
type CLIError struct {
	// Err is the underlying error
	Err error

	// Message is a user-friendly description of what went wrong
	Message string

	// Suggestion is an actionable hint for the user
	Suggestion string

	// Details provides additional context (optional)
	Details string
}

func (e *CLIError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Message)

	if e.Details != "" {
		sb.WriteString("\n")
		sb.WriteString(e.Details)
	}

	if e.Suggestion != "" {
		sb.WriteString("\n\n")
		sb.WriteString(e.Suggestion)
	}

	return sb.String()
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a configuration error with remediation guidance.
func NewConfigError(message, suggestion string) error {
	return &CLIError{
		Err:        ErrConfiguration,
		Message:    message,
		Suggestion: suggestion,
	}
}

// NewConnectionError wraps a failed identity probe with its cause.
func NewConnectionError(cause error) error {
	return &CLIError{
		Err:        ErrConnection,
		Message:    "Slack connection test failed.",
		Details:    cause.Error(),
		Suggestion: "Check your network connection and that the bot token is still valid.",
	}
}

// DeliveryError describes a rejected or failed message post. Code carries
// the Slack API's machine-readable error code when one was returned.
type DeliveryError struct {
	// Code is the Slack error code (e.g. "channel_not_found"), if any.
	Code string

	// Channel is the destination channel the post was addressed to.
	Channel string

	// Message describes what went wrong.
	Message string

	// Hint is a remediation suggestion tailored to the error class.
	Hint string

	// Err is the class sentinel (ErrChannelNotFound etc.) or the
	// underlying transport error; nil-class errors unwrap to ErrDelivery.
	Err error
}

func (e *DeliveryError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Message)
	if e.Hint != "" {
		sb.WriteString(" - ")
		sb.WriteString(e.Hint)
	}
	return sb.String()
}

func (e *DeliveryError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrDelivery, e.Err}
	}
	return []error{ErrDelivery}
}

// WrapDeliveryError wraps any unexpected send failure, preserving the
// original message.
func WrapDeliveryError(channel string, err error) error {
	if err == nil {
		return nil
	}
	return &DeliveryError{
		Channel: channel,
		Message: fmt.Sprintf("unexpected error sending Slack notification: %s", err),
		Err:     err,
	}
}
