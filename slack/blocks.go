package slack

// Block Kit text types.
const (
	TextPlain  = "plain_text"
	TextMrkdwn = "mrkdwn"
)

// Block types.
const (
	BlockHeader  = "header"
	BlockSection = "section"
)

// Text is a Block Kit text object.
type Text struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Block is a Block Kit layout block. Header blocks carry Text; section
// blocks carry either Text or a Fields grid, never both here.
type Block struct {
	Type   string `json:"type"`
	Text   *Text  `json:"text,omitempty"`
	Fields []Text `json:"fields,omitempty"`
}

// Header creates a header block with plain text.
func Header(text string) Block {
	return Block{
		Type: BlockHeader,
		Text: &Text{Type: TextPlain, Text: text},
	}
}

// Section creates a section block with mrkdwn text.
func Section(text string) Block {
	return Block{
		Type: BlockSection,
		Text: &Text{Type: TextMrkdwn, Text: text},
	}
}

// FieldsSection creates a section block laying out mrkdwn fields in a grid.
func FieldsSection(fields ...Text) Block {
	return Block{
		Type:   BlockSection,
		Fields: fields,
	}
}

// Field creates a single mrkdwn field for a FieldsSection.
func Field(label, value string) Text {
	return Text{Type: TextMrkdwn, Text: "*" + label + ":*\n" + value}
}
