package extract

import "strings"

// Severity scores the text against the severity tiers in priority order
// (critical, high, medium, low) and assigns the highest tier with at least
// one indicator hit. Indicators are the distinct matched phrases for that
// tier, in order of first appearance.
//
// Confidence for n distinct indicators is n/(n+1): monotonic in n, bounded
// below 1, and 0 only when nothing matched.
func (e *Engine) Severity(text string) (SeverityAssessment, error) {
	if err := validate(text); err != nil {
		return SeverityAssessment{}, err
	}

	for _, rule := range e.lib.Severities {
		matches := rule.Pattern.FindAllString(text, -1)
		if len(matches) == 0 {
			continue
		}
		indicators := dedupe(lowered(matches))
		n := len(indicators)
		return SeverityAssessment{
			Level:      rule.Tier,
			Confidence: float64(n) / float64(n+1),
			Indicators: indicators,
		}, nil
	}

	return SeverityAssessment{
		Level:      SeverityUnknown,
		Confidence: 0,
		Indicators: []string{},
	}, nil
}

func lowered(matches []string) []string {
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = strings.ToLower(m)
	}
	return out
}
