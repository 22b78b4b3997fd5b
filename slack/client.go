package slack

import (
	"context"
	"fmt"
	"net/http"

	snhttp "github.com/randalmurphal/slacknotify/http"
)

// DefaultBaseURL is the Slack Web API root.
const DefaultBaseURL = "https://slack.com/api"

// Client provides access to the Slack Web API methods the notifier needs.
type Client struct {
	http    *snhttp.Client
	baseURL string
	token   string
	httpc   *http.Client
}

// ClientOption configures the client.
type ClientOption func(*Client)

// WithBaseURL overrides the API root (used in tests).
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpc = httpClient
	}
}

// NewClient creates a Slack Web API client authenticated with a bearer
// token. The token is attached to every request; validity is only known
// once the API answers.
func NewClient(token string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		token:   token,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.http = snhttp.NewClient(snhttp.ClientConfig{
		Client:      c.httpc,
		BaseURL:     c.baseURL,
		ServiceName: "slack",
		BeforeRequest: func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer "+token)
		},
	})

	return c
}

// PostMessageRequest is the chat.postMessage payload. ThreadTS, when set,
// nests the message under an existing thread instead of starting a new
// top-level message.
type PostMessageRequest struct {
	Channel  string  `json:"channel"`
	Text     string  `json:"text"`
	Blocks   []Block `json:"blocks,omitempty"`
	ThreadTS string  `json:"thread_ts,omitempty"`
}

// PostMessageResponse is the chat.postMessage acknowledgment.
type PostMessageResponse struct {
	OK      bool   `json:"ok"`
	Channel string `json:"channel,omitempty"`
	TS      string `json:"ts,omitempty"`
	Error   string `json:"error,omitempty"`
	Warning string `json:"warning,omitempty"`
}

// PostMessage posts one message. Single attempt, no retries: an
// unacknowledged response or API error surfaces as a DeliveryError.
func (c *Client) PostMessage(ctx context.Context, req PostMessageRequest) (*PostMessageResponse, error) {
	var resp PostMessageResponse
	if err := c.http.Post(ctx, "/chat.postMessage", req, &resp); err != nil {
		return nil, classifyTransportError(req.Channel, err)
	}

	if !resp.OK {
		return nil, classifyAPIError(resp.Error, req.Channel, fmt.Sprintf("%+v", resp))
	}

	return &resp, nil
}

// AuthTestResponse is the auth.test identity payload.
type AuthTestResponse struct {
	OK     bool   `json:"ok"`
	URL    string `json:"url,omitempty"`
	Team   string `json:"team,omitempty"`
	User   string `json:"user,omitempty"`
	TeamID string `json:"team_id,omitempty"`
	UserID string `json:"user_id,omitempty"`
	BotID  string `json:"bot_id,omitempty"`
	Error  string `json:"error,omitempty"`
}

// AuthTest performs a lightweight "who am I" call against the API.
func (c *Client) AuthTest(ctx context.Context) (*AuthTestResponse, error) {
	var resp AuthTestResponse
	if err := c.http.Post(ctx, "/auth.test", struct{}{}, &resp); err != nil {
		return nil, err
	}

	if !resp.OK {
		return nil, fmt.Errorf("auth test failed: %s", resp.Error)
	}

	return &resp, nil
}
