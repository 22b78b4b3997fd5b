package slack

import (
	"fmt"

	"github.com/randalmurphal/slacknotify/errors"
	snhttp "github.com/randalmurphal/slacknotify/http"
)

// Slack API machine-readable error codes the notifier knows how to explain.
const (
	codeChannelNotFound = "channel_not_found"
	codeNotInChannel    = "not_in_channel"
	codeInvalidAuth     = "invalid_auth"
	codeMissingScope    = "missing_scope"
)

// classifyAPIError maps an ok:false response onto the delivery taxonomy,
// attaching a remediation hint per error class. Unrecognized codes carry
// the raw response so nothing is lost.
func classifyAPIError(code, channel, rawResponse string) error {
	e := &errors.DeliveryError{
		Code:    code,
		Channel: channel,
	}

	switch code {
	case codeChannelNotFound:
		e.Err = errors.ErrChannelNotFound
		e.Message = fmt.Sprintf("Slack API error: %s", code)
		e.Hint = fmt.Sprintf("Channel '%s' not found. Make sure the channel exists and the bot is added to it.", channel)
	case codeNotInChannel:
		e.Err = errors.ErrNotInChannel
		e.Message = fmt.Sprintf("Slack API error: %s", code)
		e.Hint = fmt.Sprintf("Bot is not a member of channel '%s'. Please add the bot to the channel.", channel)
	case codeInvalidAuth:
		e.Err = errors.ErrInvalidAuth
		e.Message = fmt.Sprintf("Slack API error: %s", code)
		e.Hint = "Invalid bot token. Please check your SLACK_BOT_TOKEN."
	case codeMissingScope:
		e.Err = errors.ErrMissingScope
		e.Message = fmt.Sprintf("Slack API error: %s", code)
		e.Hint = "Bot token missing required scopes. Ensure 'chat:write' scope is enabled."
	case "":
		// Unacknowledged response without a code: keep the raw body.
		e.Message = fmt.Sprintf("failed to send Slack notification, response: %s", rawResponse)
	default:
		e.Message = fmt.Sprintf("Slack API error: %s", code)
	}

	return e
}

// classifyTransportError wraps HTTP-level failures. A 401 from the API
// gateway is still an auth problem, so it gets the invalid_auth hint.
func classifyTransportError(channel string, err error) error {
	if errors.Is(err, snhttp.ErrUnauthorized) {
		return &errors.DeliveryError{
			Code:    codeInvalidAuth,
			Channel: channel,
			Message: err.Error(),
			Hint:    "Invalid bot token. Please check your SLACK_BOT_TOKEN.",
			Err:     errors.ErrInvalidAuth,
		}
	}
	return errors.WrapDeliveryError(channel, err)
}
