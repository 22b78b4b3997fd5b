// Package slack provides a minimal Slack Web API client for posting
// Block Kit messages.
//
// Core types:
//   - Client: chat.postMessage and auth.test over the shared HTTP client
//   - Block, Text: Block Kit wire types (header, section, fields)
//
// API-level failures (ok:false responses) are classified by Slack's
// machine-readable error code into the errors package taxonomy:
//
//	resp, err := client.PostMessage(ctx, slack.PostMessageRequest{
//	    Channel: "general",
//	    Text:    "fallback",
//	    Blocks:  blocks,
//	})
//	if errors.Is(err, errors.ErrNotInChannel) {
//	    // invite the bot, then try again
//	}
package slack
