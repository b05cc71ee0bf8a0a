// Package transcript flattens structured chat exports into the plain text
// the extraction engine works on. Callers opt in via request options; plain
// text input never passes through here.
package transcript

import (
	"bufio"
	"encoding/json"
	"fmt"
	"strings"
)

// Message is a single chat message in a JSONL export.
type Message struct {
	Timestamp string `json:"ts"`
	User      string `json:"user"`
	Text      string `json:"text"`
}

// Flatten parses a JSONL chat export and renders one "<ts> @user: text"
// line per message, in file order. Malformed lines are skipped; an export
// with no parseable messages at all is an error rather than silently
// yielding empty output.
func Flatten(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}

	var lines []string
	scanner := bufio.NewScanner(strings.NewReader(raw))
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) == "" {
			continue
		}
		var msg Message
		if err := json.Unmarshal(scanner.Bytes(), &msg); err != nil {
			continue
		}
		if msg.Text == "" {
			continue
		}
		lines = append(lines, render(msg))
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("scan transcript: %w", err)
	}

	if len(lines) == 0 {
		return "", fmt.Errorf("no parseable messages in transcript")
	}
	return strings.Join(lines, "\n"), nil
}

// render produces one extraction-ready line. Message text is collapsed onto
// a single line so the line-based extractors see one event per message.
func render(msg Message) string {
	text := strings.Join(strings.Fields(msg.Text), " ")

	var b strings.Builder
	if msg.Timestamp != "" {
		b.WriteString(msg.Timestamp)
		b.WriteByte(' ')
	}
	if msg.User != "" {
		b.WriteByte('@')
		b.WriteString(msg.User)
		b.WriteString(": ")
	}
	b.WriteString(text)
	return b.String()
}
