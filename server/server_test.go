package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/randalmurphal/slacknotify"
	"github.com/randalmurphal/slacknotify/config"
	"github.com/randalmurphal/slacknotify/slack"
)

// connect wires a test client to the tool server over in-memory pipes,
// backed by a fake Slack endpoint.
func connect(t *testing.T, postResp map[string]any, lastPost *map[string]any) *mcp.ClientSession {
	t.Helper()

	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat.postMessage" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		*lastPost = map[string]any{}
		json.NewDecoder(r.Body).Decode(lastPost)
		json.NewEncoder(w).Encode(postResp)
	}))
	t.Cleanup(apiServer.Close)

	cfg := &config.Config{Token: "xoxb-test", Channel: "general"}
	notifier, err := slacknotify.New(cfg,
		slacknotify.WithClient(slack.NewClient(cfg.Token, slack.WithBaseURL(apiServer.URL))))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx := context.Background()
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	srv := New(notifier, "test")
	serverSession, err := srv.Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("server connect: %v", err)
	}
	t.Cleanup(func() { serverSession.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "test"}, nil)
	clientSession, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	t.Cleanup(func() { clientSession.Close() })

	return clientSession
}

func textOf(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) == 0 {
		t.Fatal("result has no content")
	}
	text, ok := res.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("content[0] = %T, want *mcp.TextContent", res.Content[0])
	}
	return text.Text
}

// =============================================================================
// Tool Tests
// =============================================================================

func TestToolIsListed(t *testing.T) {
	var lastPost map[string]any
	session := connect(t, map[string]any{"ok": true, "ts": "1.2"}, &lastPost)

	tools, err := session.ListTools(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListTools() error = %v", err)
	}

	for _, tool := range tools.Tools {
		if tool.Name == ToolName {
			return
		}
	}
	t.Errorf("tool %q not listed", ToolName)
}

func TestCallToolMinimal(t *testing.T) {
	var lastPost map[string]any
	session := connect(t, map[string]any{"ok": true, "ts": "1700000001.000200"}, &lastPost)

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: ToolName,
		Arguments: map[string]any{
			"summary": "Backup completed",
			"status":  "completed",
		},
	})
	if err != nil {
		t.Fatalf("CallTool() error = %v", err)
	}
	if res.IsError {
		t.Fatalf("CallTool() IsError, content = %v", res.Content)
	}

	out := textOf(t, res)
	for _, want := range []string{"Status: completed", "Backup completed", "1700000001.000200"} {
		if !strings.Contains(out, want) {
			t.Errorf("result = %q, missing %q", out, want)
		}
	}

	if lastPost["channel"] != "general" {
		t.Errorf("payload channel = %v", lastPost["channel"])
	}
	if _, present := lastPost["thread_ts"]; present {
		t.Error("payload has thread_ts without a thread reference")
	}
}

func TestCallToolThreaded(t *testing.T) {
	var lastPost map[string]any
	session := connect(t, map[string]any{"ok": true, "ts": "1.3"}, &lastPost)

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: ToolName,
		Arguments: map[string]any{
			"summary":   "Follow-up",
			"thread_ts": "1700000000.000100",
		},
	})
	if err != nil {
		t.Fatalf("CallTool() error = %v", err)
	}

	if lastPost["thread_ts"] != "1700000000.000100" {
		t.Errorf("payload thread_ts = %v", lastPost["thread_ts"])
	}
	if !strings.Contains(textOf(t, res), "Thread: 1700000000.000100") {
		t.Errorf("result = %q, want thread line", textOf(t, res))
	}
}

func TestCallToolDeliveryFailure(t *testing.T) {
	var lastPost map[string]any
	session := connect(t, map[string]any{"ok": false, "error": "not_in_channel"}, &lastPost)

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      ToolName,
		Arguments: map[string]any{"summary": "s"},
	})
	if err != nil {
		t.Fatalf("CallTool() error = %v", err)
	}
	if !res.IsError {
		t.Fatal("CallTool() IsError = false, want tool error")
	}

	out := textOf(t, res)
	if !strings.Contains(out, "not_in_channel") || !strings.Contains(out, "add the bot") {
		t.Errorf("result = %q, want code and remediation hint", out)
	}
}
