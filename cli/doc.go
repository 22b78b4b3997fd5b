// Package cli implements the slacknotify command tree: serve (MCP stdio
// server), probe (connection test), send (one ad-hoc update), and smoke
// (built-in end-to-end scenarios).
package cli
