package errors

import "errors"

// Sentinel errors for the three failure families.
var (
	// ErrConfiguration indicates missing or malformed configuration.
	ErrConfiguration = errors.New("configuration invalid")

	// ErrDelivery indicates the Slack API rejected or failed the post.
	ErrDelivery = errors.New("delivery failed")

	// ErrConnection indicates the startup identity probe failed.
	ErrConnection = errors.New("connection failed")
)

// Delivery error classes, derived from the Slack API's machine-readable
// error codes. Each unwraps to ErrDelivery through DeliveryError.
var (
	// ErrChannelNotFound indicates the configured channel does not exist.
	ErrChannelNotFound = errors.New("channel not found")

	// ErrNotInChannel indicates the bot is not a member of the channel.
	ErrNotInChannel = errors.New("bot not in channel")

	// ErrInvalidAuth indicates the bot token was rejected.
	ErrInvalidAuth = errors.New("invalid auth")

	// ErrMissingScope indicates the token lacks a required OAuth scope.
	ErrMissingScope = errors.New("missing scope")
)
