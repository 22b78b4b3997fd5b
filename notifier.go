package slacknotify

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/randalmurphal/slacknotify/config"
	"github.com/randalmurphal/slacknotify/errors"
	"github.com/randalmurphal/slacknotify/slack"
)

// Notifier sends progress updates to one pre-configured Slack channel.
// Configuration and the API client are resolved once at construction and
// immutable afterwards, so concurrent Send calls need no locking.
type Notifier struct {
	cfg    *config.Config
	client *slack.Client
	logger *slog.Logger
}

// Option configures the Notifier.
type Option func(*Notifier)

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(n *Notifier) {
		n.logger = logger
	}
}

// WithClient sets a pre-built Slack client (used in tests).
func WithClient(client *slack.Client) Option {
	return func(n *Notifier) {
		n.client = client
	}
}

// WithHTTPClient sets a custom HTTP client for the outbound calls.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(n *Notifier) {
		n.client = slack.NewClient(n.cfg.Token, slack.WithHTTPClient(httpClient))
	}
}

// New creates a Notifier from resolved configuration. The token format
// check is hard here: a token without a recognized prefix is a
// configuration error, not something to discover on the first post.
func New(cfg *config.Config, opts ...Option) (*Notifier, error) {
	if err := cfg.CheckToken(); err != nil {
		return nil, err
	}

	n := &Notifier{
		cfg:    cfg,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(n)
	}

	if n.client == nil {
		n.client = slack.NewClient(cfg.Token)
	}

	return n, nil
}

// Receipt confirms a delivered progress update.
type Receipt struct {
	// Channel the message was addressed to.
	Channel string

	// Status tag the update carried.
	Status string

	// Summary text of the update.
	Summary string

	// MessageTS is the remote-assigned message identifier.
	MessageTS string

	// ThreadTS is the thread reference, when the message was threaded.
	ThreadTS string
}

// String renders the human-readable confirmation returned to callers.
func (r *Receipt) String() string {
	var sb strings.Builder
	sb.WriteString("✅ Progress update sent to Slack successfully!\n")
	fmt.Fprintf(&sb, "Channel: %s\n", r.Channel)
	fmt.Fprintf(&sb, "Status: %s\n", r.Status)
	fmt.Fprintf(&sb, "Summary: %s\n", r.Summary)
	fmt.Fprintf(&sb, "Message timestamp: %s", r.MessageTS)
	if r.ThreadTS != "" {
		fmt.Fprintf(&sb, "\nThread: %s", r.ThreadTS)
	}
	return sb.String()
}

// Send formats and posts one progress update. Single best-effort attempt:
// no retries, no backoff, no partial success. Either the remote
// acknowledges the message or an error from the taxonomy comes back.
func (n *Notifier) Send(ctx context.Context, req Request) (*Receipt, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	resp, err := n.client.PostMessage(ctx, slack.PostMessageRequest{
		Channel:  n.cfg.Channel,
		Text:     FallbackText(req),
		Blocks:   FormatBlocks(req),
		ThreadTS: req.ThreadTS,
	})
	if err != nil {
		n.logger.Error("slack notification failed",
			"channel", n.cfg.Channel,
			"error", err)
		return nil, err
	}

	n.logger.Info("slack notification sent",
		"channel", n.cfg.Channel,
		"ts", resp.TS,
		"summary", req.Summary)

	return &Receipt{
		Channel:   n.cfg.Channel,
		Status:    req.status(),
		Summary:   req.Summary,
		MessageTS: resp.TS,
		ThreadTS:  req.ThreadTS,
	}, nil
}

// Identity describes the authenticated bot, returned by the startup probe.
type Identity struct {
	User    string
	UserID  string
	BotID   string
	Team    string
	TeamID  string
	URL     string
	Channel string
}

// Probe issues a lightweight "who am I" call so the process can fail fast
// with a clear diagnostic before accepting any requests.
func (n *Notifier) Probe(ctx context.Context) (*Identity, error) {
	resp, err := n.client.AuthTest(ctx)
	if err != nil {
		return nil, errors.NewConnectionError(err)
	}

	return &Identity{
		User:    resp.User,
		UserID:  resp.UserID,
		BotID:   resp.BotID,
		Team:    resp.Team,
		TeamID:  resp.TeamID,
		URL:     resp.URL,
		Channel: n.cfg.Channel,
	}, nil
}

// Channel exposes the destination channel for diagnostics.
func (n *Notifier) Channel() string {
	return n.cfg.Channel
}
