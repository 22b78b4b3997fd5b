package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// =============================================================================
// Client Tests
// =============================================================================

func TestClientPost(t *testing.T) {
	var gotAuth, gotContentType string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{"ok":true,"value":"hello"}`))
	}))
	defer server.Close()

	c := NewClient(ClientConfig{
		BaseURL:     server.URL,
		ServiceName: "slack",
		BeforeRequest: func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer xoxb-test")
		},
	})

	var result struct {
		OK    bool   `json:"ok"`
		Value string `json:"value"`
	}
	if err := c.Post(context.Background(), "/test", map[string]string{"k": "v"}, &result); err != nil {
		t.Fatalf("Post() error = %v", err)
	}

	if !result.OK || result.Value != "hello" {
		t.Errorf("Post() result = %+v, want ok/hello", result)
	}
	if gotAuth != "Bearer xoxb-test" {
		t.Errorf("Authorization = %q, want bearer token from BeforeRequest", gotAuth)
	}
	if gotContentType != "application/json; charset=utf-8" {
		t.Errorf("Content-Type = %q", gotContentType)
	}
}

func TestClientErrorStatus(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		sentinel   error
		wantMsg    string
	}{
		{"unauthorized", 401, `{"error":"invalid_auth"}`, ErrUnauthorized, "invalid_auth"},
		{"not found", 404, `{"message":"no such endpoint"}`, ErrNotFound, "no such endpoint"},
		{"rate limited", 429, ``, ErrRateLimited, "Too Many Requests"},
		{"server error", 500, ``, ErrServerError, "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			c := NewClient(ClientConfig{BaseURL: server.URL, ServiceName: "slack"})

			err := c.Post(context.Background(), "/test", nil, nil)
			if err == nil {
				t.Fatal("Post() error = nil, want APIError")
			}

			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("Post() error = %T, want *APIError", err)
			}
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false", err, tt.sentinel)
			}
			if apiErr.StatusCode != tt.statusCode {
				t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, tt.statusCode)
			}
			if want := tt.wantMsg; want != "" && apiErr.Message != want {
				t.Errorf("Message = %q, want %q", apiErr.Message, want)
			}
		})
	}
}

func TestClientNoRetries(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewClient(ClientConfig{BaseURL: server.URL, ServiceName: "slack"})

	if err := c.Get(context.Background(), "/test", nil); err == nil {
		t.Fatal("Get() error = nil, want server error")
	}

	if attempts != 1 {
		t.Errorf("attempts = %d, want exactly 1 (single best-effort call)", attempts)
	}
}
