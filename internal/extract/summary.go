package extract

import (
	"fmt"
	"strings"
)

// Summary runs all four extractors over the same input and assembles the
// Report. The digest is rendered from the extractor outputs only, never
// re-derived from the raw text, so composed and direct results cannot
// diverge.
func (e *Engine) Summary(text string) (Report, error) {
	if err := validate(text); err != nil {
		return Report{}, err
	}

	timeline, err := e.Timeline(text)
	if err != nil {
		return Report{}, fmt.Errorf("timeline: %w", err)
	}
	actions, err := e.Actions(text)
	if err != nil {
		return Report{}, fmt.Errorf("actions: %w", err)
	}
	entities, err := e.Entities(text)
	if err != nil {
		return Report{}, fmt.Errorf("entities: %w", err)
	}
	severity, err := e.Severity(text)
	if err != nil {
		return Report{}, fmt.Errorf("severity: %w", err)
	}

	report := Report{
		Timeline: timeline,
		Actions:  actions,
		Entities: entities,
		Severity: severity,
	}
	report.Summary = e.renderDigest(report)
	return report, nil
}

// renderDigest produces the deterministic human-readable summary line set.
func (e *Engine) renderDigest(r Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "events: %d", len(r.Timeline))
	if len(r.Timeline) > 0 {
		fmt.Fprintf(&b, " (first %s, last %s)", r.Timeline[0].Time, r.Timeline[len(r.Timeline)-1].Time)
	}
	b.WriteByte('\n')

	counts := make(map[string]int, len(r.Actions))
	for _, a := range r.Actions {
		counts[a.Category]++
	}
	b.WriteString("actions:")
	for _, category := range e.lib.ActionCategories() {
		fmt.Fprintf(&b, " %s=%d", category, counts[category])
	}
	b.WriteByte('\n')

	fmt.Fprintf(&b, "entities: services=%d ips=%d domains=%d\n",
		len(r.Entities.Services), len(r.Entities.IPs), len(r.Entities.Domains))

	fmt.Fprintf(&b, "severity: %s (confidence %.2f, %d indicators)",
		r.Severity.Level, r.Severity.Confidence, len(r.Severity.Indicators))

	return b.String()
}
