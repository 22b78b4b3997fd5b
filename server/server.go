package server

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/randalmurphal/slacknotify"
)

// ToolName is the single operation this server exposes.
const ToolName = "slack-progress-update"

type progressUpdateArgs struct {
	Summary   string  `json:"summary" jsonschema:"Brief summary of what was accomplished (required)"`
	Details   *string `json:"details,omitempty" jsonschema:"Optional detailed information about the task"`
	Status    *string `json:"status,omitempty" jsonschema:"Task status: completed, failed, in_progress, warning, info, success, error, running"`
	Timestamp *string `json:"timestamp,omitempty" jsonschema:"Optional ISO timestamp (defaults to current time)"`
	TaskID    *string `json:"task_id,omitempty" jsonschema:"Optional task identifier for tracking"`
	AgentName *string `json:"agent_name,omitempty" jsonschema:"Optional name of the agent performing the task"`
	ThreadTS  *string `json:"thread_ts,omitempty" jsonschema:"Optional thread timestamp to reply in a thread"`
}

// New builds the MCP server with the progress-update tool registered.
func New(notifier *slacknotify.Notifier, version string) *mcp.Server {
	srv := mcp.NewServer(&mcp.Implementation{
		Name:    "slack-notifier",
		Version: version,
	}, nil)

	mcp.AddTool(srv, &mcp.Tool{
		Name: ToolName,
		Description: "Send a progress update notification to the pre-configured Slack channel, " +
			"summarizing what an agent accomplished. The message includes status, summary, " +
			"optional details, and timestamp information.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args progressUpdateArgs) (*mcp.CallToolResult, any, error) {
		receipt, err := notifier.Send(ctx, slacknotify.Request{
			Summary:   args.Summary,
			Details:   deref(args.Details),
			Status:    deref(args.Status),
			Timestamp: deref(args.Timestamp),
			TaskID:    deref(args.TaskID),
			AgentName: deref(args.AgentName),
			ThreadTS:  deref(args.ThreadTS),
		})
		if err != nil {
			return nil, nil, err
		}
		return textResult(receipt.String()), nil, nil
	})

	return srv
}

// Run serves the tool over stdio until the context is cancelled or the
// client disconnects.
func Run(ctx context.Context, notifier *slacknotify.Notifier, version string) error {
	return New(notifier, version).Run(ctx, &mcp.StdioTransport{})
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
