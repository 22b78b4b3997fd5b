// Package server exposes the notifier as an MCP stdio server with a
// single tool, slack-progress-update. Tool arguments mirror the Request
// fields, with pointer optionals so absent and empty are distinguishable
// at the protocol boundary.
package server
