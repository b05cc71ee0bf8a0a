package extract

import (
	"strings"
	"unicode/utf8"
)

// maxContext bounds the context snippet attached to an Action. Lines within
// the bound are kept whole; longer lines get a window around the match.
const maxContext = 160

// Actions finds categorized response steps in the text. Each line is tested
// against every category's keyword set in fixed order; a line matching
// several categories yields one Action per category, all sharing the line
// as context.
func (e *Engine) Actions(text string) ([]Action, error) {
	if err := validate(text); err != nil {
		return nil, err
	}

	actions := []Action{}
	for _, line := range segments(text) {
		for _, rule := range e.lib.Actions {
			loc := rule.Pattern.FindStringIndex(line)
			if loc == nil {
				continue
			}
			actions = append(actions, Action{
				Action:   strings.ToLower(line[loc[0]:loc[1]]),
				Category: rule.Category,
				Context:  contextWindow(line, loc[0], loc[1]),
			})
		}
	}
	return actions, nil
}

// contextWindow returns the whole line when short, otherwise a bounded
// window centred on the match, snapped to rune boundaries.
func contextWindow(line string, start, end int) string {
	if len(line) <= maxContext {
		return line
	}

	pad := (maxContext - (end - start)) / 2
	if pad < 0 {
		pad = 0
	}
	lo := start - pad
	if lo < 0 {
		lo = 0
	}
	hi := end + pad
	if hi > len(line) {
		hi = len(line)
	}
	for lo > 0 && !utf8.RuneStart(line[lo]) {
		lo--
	}
	for hi < len(line) && !utf8.RuneStart(line[hi]) {
		hi++
	}
	return strings.TrimSpace(line[lo:hi])
}
