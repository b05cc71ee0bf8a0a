package extract

import (
	"strings"
)

// Timeline extracts timestamped events from the text, in order of
// appearance. Each non-empty line is checked against the timestamp rules in
// priority order (ISO-8601, then full datetime, then bare time-of-day); the
// first match that survives context filtering anchors the event. The actor
// is whichever naming convention matches elsewhere on the same line and
// passes filtering.
func (e *Engine) Timeline(text string) ([]Event, error) {
	if err := validate(text); err != nil {
		return nil, err
	}

	events := []Event{}
	for _, line := range segments(text) {
		stamp, stampEnd, ok := e.findTimestamp(line)
		if !ok {
			continue
		}

		actor, actorStart, actorEnd := e.findActor(line)

		// Event text is the rest of the line after the timestamp. When the
		// actor tag directly follows the timestamp ("10:00:00 @sarah: ..."),
		// it belongs to the header, not the content.
		cut := stampEnd
		if actor != "" && actorStart >= stampEnd && strings.TrimSpace(line[stampEnd:actorStart]) == "" {
			cut = actorEnd
		}

		events = append(events, Event{
			Time:  stamp,
			Actor: actor,
			Text:  strings.TrimSpace(strings.TrimLeft(line[cut:], " \t:-")),
		})
	}
	return events, nil
}

// findTimestamp returns the first accepted timestamp match on the line,
// trying rules in priority order.
func (e *Engine) findTimestamp(line string) (string, int, bool) {
	for _, rule := range e.lib.Timestamps {
		for _, loc := range rule.Pattern.FindAllStringIndex(line, -1) {
			if e.filter.LikelyTimestamp(line, loc[0], loc[1], rule.Bare) {
				return line[loc[0]:loc[1]], loc[1], true
			}
		}
	}
	return "", 0, false
}

// findActor returns the first accepted actor on the line along with the
// span of the full convention match (mention or colon tag).
func (e *Engine) findActor(line string) (name string, start, end int) {
	for _, rule := range e.lib.Actors {
		for _, m := range rule.Pattern.FindAllStringSubmatchIndex(line, -1) {
			candidate := line[m[2]:m[3]]
			if normalized, ok := e.filter.Actor(candidate); ok {
				return normalized, m[0], m[1]
			}
		}
	}
	return "", 0, 0
}
