package extract

// Event is one timeline entry. Events keep source order; they are not
// sorted by parsed time.
type Event struct {
	Time  string `json:"time"`
	Actor string `json:"actor,omitempty"`
	Text  string `json:"text"`
}

// Action is one categorized response step found in the text. A segment that
// hits keywords from several categories yields one Action per category.
type Action struct {
	Action   string `json:"action"`
	Category string `json:"category"`
	Context  string `json:"context"`
}

// EntityBundle holds deduplicated infrastructure mentions, in order of
// first appearance.
type EntityBundle struct {
	Services []string `json:"services"`
	IPs      []string `json:"ips"`
	Domains  []string `json:"domains"`
}

// SeverityUnknown is returned when no tier's indicators match at all.
const SeverityUnknown = "unknown"

// SeverityAssessment is the keyword-scored severity verdict.
type SeverityAssessment struct {
	Level      string   `json:"level"`
	Confidence float64  `json:"confidence"`
	Indicators []string `json:"indicators"`
}

// Report aggregates all extractor outputs plus a rendered digest.
type Report struct {
	Timeline []Event            `json:"timeline"`
	Actions  []Action           `json:"actions"`
	Entities EntityBundle       `json:"entities"`
	Severity SeverityAssessment `json:"severity"`
	Summary  string             `json:"summary"`
}
