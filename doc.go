// Package slacknotify posts agent progress updates to a pre-configured
// Slack channel.
//
// The package is organized into subpackages by concern:
//
//   - config: SLACK_BOT_TOKEN / SLACK_CHANNEL resolution and validation
//   - slack: Slack Web API client (chat.postMessage, auth.test) and
//     Block Kit wire types
//   - errors: configuration / delivery / connection error taxonomy
//   - http: shared outbound HTTP client
//   - server: MCP stdio server exposing the slack-progress-update tool
//   - cli: cobra commands (serve, probe, send, smoke)
//
// # Quick Start
//
//	cfg, err := config.Load(config.WithEnvFile(".env"))
//	if err != nil {
//	    return err
//	}
//
//	notifier, err := slacknotify.New(cfg)
//	if err != nil {
//	    return err
//	}
//
//	receipt, err := notifier.Send(ctx, slacknotify.Request{
//	    Summary: "Backup completed",
//	    Status:  slacknotify.StatusCompleted,
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(receipt)
//
// Each Send is a single best-effort post: no retries, no queueing, no
// persistence. Failures surface as descriptive errors instead of being
// masked.
package slacknotify
