// Package extract turns free-text incident logs into structured timeline
// events, categorized actions, entity mentions, and a severity verdict.
// Every operation is a pure function of its input text: no I/O, no state
// carried between calls.
package extract

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MikeSquared-Agency/sift/internal/filter"
	"github.com/MikeSquared-Agency/sift/internal/patterns"
)

// ErrInvalidInput marks input the engine cannot work with at all (non-text).
// Unrecognized content inside valid text is never an error, only recall loss.
var ErrInvalidInput = errors.New("invalid input")

// Engine runs the extractors over a fixed pattern library. Safe for
// concurrent use: all per-call state is local.
type Engine struct {
	lib    *patterns.Library
	filter *filter.Filter
}

// New builds an Engine over the given library.
func New(lib *patterns.Library) *Engine {
	return &Engine{
		lib:    lib,
		filter: filter.New(lib.ReservedPrefixes),
	}
}

func validate(text string) error {
	if !utf8.ValidString(text) {
		return fmt.Errorf("%w: text is not valid UTF-8", ErrInvalidInput)
	}
	return nil
}

// segments splits text into trimmed, non-empty lines.
func segments(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// Dispatch routes an operation name to its extractor. This is the single
// entry point shared by the HTTP and NATS adapters, so both call conventions
// produce identical results for identical input.
func (e *Engine) Dispatch(op, text string) (any, error) {
	switch op {
	case "timeline":
		return e.Timeline(text)
	case "actions":
		return e.Actions(text)
	case "entities":
		return e.Entities(text)
	case "severity":
		return e.Severity(text)
	case "summary":
		return e.Summary(text)
	default:
		return nil, fmt.Errorf("unknown operation %q", op)
	}
}

// Operations lists the extractor names served by Dispatch, in a fixed order.
func Operations() []string {
	return []string{"timeline", "actions", "entities", "severity", "summary"}
}
