package slacknotify

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/randalmurphal/slacknotify/slack"
)

// headerTitle is the fixed header of every progress update.
const headerTitle = "Agent Progress Update"

// statusEmojis maps known status tags (lower case) to their glyph.
var statusEmojis = map[string]string{
	StatusCompleted:  "✅",
	StatusSuccess:    "✅",
	StatusFailed:     "❌",
	StatusError:      "❌",
	StatusInProgress: "🔄",
	StatusRunning:    "🔄",
	StatusWarning:    "⚠️",
	StatusInfo:       "ℹ️",
}

// fallbackEmoji marks statuses outside the known set.
const fallbackEmoji = "📋"

// displayTimeLayout renders timestamps as YYYY-MM-DD HH:MM:SS UTC.
const displayTimeLayout = "2006-01-02 15:04:05"

// timestampLayouts are the ISO-8601 shapes accepted for incoming
// timestamps, tried in order.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// StatusEmoji returns the glyph for a status tag, matched
// case-insensitively, falling back to a generic marker for unknown tags.
func StatusEmoji(status string) string {
	if emoji, ok := statusEmojis[strings.ToLower(status)]; ok {
		return emoji
	}
	return fallbackEmoji
}

// renderTimestamp resolves the display timestamp. Parseable inputs render
// in UTC; unparseable inputs pass through verbatim rather than failing;
// empty means now.
func renderTimestamp(raw string, now time.Time) string {
	if raw == "" {
		return now.UTC().Format(displayTimeLayout) + " UTC"
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC().Format(displayTimeLayout) + " UTC"
		}
	}

	return raw
}

// FormatBlocks converts a request into its Block Kit layout. Block order
// is fixed: header, metadata fields, summary, then details only when
// present. Omitted optional fields are skipped, never rendered empty.
func FormatBlocks(req Request) []slack.Block {
	return formatBlocks(req, time.Now())
}

func formatBlocks(req Request, now time.Time) []slack.Block {
	status := req.status()
	label := fmt.Sprintf("%s %s", StatusEmoji(status), titleStatus(status))

	blocks := []slack.Block{
		slack.Header(headerTitle),
	}

	var fields []slack.Text
	if req.AgentName != "" {
		fields = append(fields, slack.Field("Agent", req.AgentName))
	}
	if req.TaskID != "" {
		fields = append(fields, slack.Field("Task ID", "`"+req.TaskID+"`"))
	}
	fields = append(fields,
		slack.Field("Status", label),
		slack.Field("Timestamp", renderTimestamp(req.Timestamp, now)),
	)
	blocks = append(blocks, slack.FieldsSection(fields...))

	blocks = append(blocks, slack.Section("*Summary:*\n"+req.Summary))

	if req.Details != "" {
		blocks = append(blocks, slack.Section("*Details:*\n"+req.Details))
	}

	return blocks
}

// titleStatus title-cases each underscore-separated segment of a status
// tag, so "in_progress" renders as "In_Progress". The title caser alone
// treats "_" as word-internal and would leave the second segment lower.
func titleStatus(status string) string {
	caser := cases.Title(language.English)
	parts := strings.Split(status, "_")
	for i, part := range parts {
		parts[i] = caser.String(part)
	}
	return strings.Join(parts, "_")
}

// FallbackText builds the plain-text rendering for surfaces that cannot
// display structured blocks (e.g. desktop notifications).
func FallbackText(req Request) string {
	return fmt.Sprintf("%s: %s (Status: %s)", headerTitle, req.Summary, req.status())
}
