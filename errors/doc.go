// Package errors provides the notifier's error taxonomy with
// user-friendly messaging.
//
// Core types:
//   - CLIError: Wraps errors with message, suggestion, and details
//   - DeliveryError: A rejected or failed message post, classified by the
//     Slack API's error code
//
// Sentinel errors:
//   - ErrConfiguration: Missing or malformed token/channel
//   - ErrDelivery: The Slack API rejected or failed the post
//   - ErrConnection: The startup identity probe failed
//   - ErrChannelNotFound, ErrNotInChannel, ErrInvalidAuth, ErrMissingScope:
//     Delivery error classes
//
// Example usage:
//
//	receipt, err := notifier.Send(ctx, req)
//	if errors.IsConfiguration(err) {
//	    // Not retryable: fix SLACK_BOT_TOKEN / SLACK_CHANNEL
//	}
//	if errors.Is(err, errors.ErrNotInChannel) {
//	    // Invite the bot to the channel
//	}
package errors
