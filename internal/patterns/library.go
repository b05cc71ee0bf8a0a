package patterns

import (
	"fmt"
	"regexp"
	"strings"
)

// TimestampKind identifies which recognizer format matched.
type TimestampKind string

const (
	KindISO8601     TimestampKind = "iso8601"
	KindDatetime    TimestampKind = "datetime"
	KindTimeSeconds TimestampKind = "time_seconds"
	KindTime        TimestampKind = "time"
)

// TimestampRule is one timestamp recognizer. Bare rules (time-of-day with no
// date part) are ambiguous and get extra context filtering downstream.
type TimestampRule struct {
	Kind    TimestampKind
	Pattern *regexp.Regexp
	Bare    bool
}

// ActorRule is one actor-naming convention. The first capture group holds
// the candidate name.
type ActorRule struct {
	Convention string
	Pattern    *regexp.Regexp
}

// ActionRule holds one action category's keyword set, compiled into a single
// word-boundary alternation.
type ActionRule struct {
	Category string
	Keywords []string
	Pattern  *regexp.Regexp
}

// EntityRule is one entity shape recognizer.
type EntityRule struct {
	Kind    string // "service", "ip", "domain"
	Pattern *regexp.Regexp
}

// SeverityRule holds one severity tier's indicator phrases.
type SeverityRule struct {
	Tier     string
	Keywords []string
	Pattern  *regexp.Regexp
}

// Library is the full read-only rule set. Rules are compiled once and the
// slices are ordered: timestamp rules most-specific first, severity tiers
// highest first. Callers must not mutate a Library after construction.
type Library struct {
	Timestamps []TimestampRule
	Actors     []ActorRule
	Actions    []ActionRule
	Entities   []EntityRule
	Severities []SeverityRule

	// Reserved generic line prefixes that look like "Name:" actors.
	ReservedPrefixes []string
}

// Default action keyword sets, by category. Includes common present
// participle and past tense forms; rarer verb forms are not caught.
var defaultActionKeywords = []struct {
	category string
	keywords []string
}{
	{"investigation", []string{
		"investigating", "investigated",
		"checking", "checked",
		"examining", "examined",
		"analyzing", "analyzed",
		"reviewing", "reviewed",
		"debugging", "debugged",
		"tracing", "traced",
		"monitoring", "monitored",
		"watching",
	}},
	{"remediation", []string{
		"deploying", "deployed",
		"rolling back", "rolled back",
		"reverting", "reverted",
		"restarting", "restarted",
		"rebooting", "rebooted",
		"fixing", "fixed",
		"patching", "patched",
		"updating", "updated",
		"scaling", "scaled",
		"killing", "killed",
		"stopping", "stopped",
	}},
	{"communication", []string{
		"notifying", "notified",
		"alerting", "alerted",
		"paging", "paged",
		"escalating", "escalated",
		"confirming", "confirmed",
		"acknowledging", "acknowledged",
		"reporting", "reported",
	}},
	{"status", []string{
		"resolving", "resolved",
		"mitigating", "mitigated",
		"completing", "completed",
		"starting", "started",
		"initiating", "initiated",
	}},
}

// Default severity indicator phrases, highest tier first.
var defaultSeverityKeywords = []struct {
	tier     string
	keywords []string
}{
	{"critical", []string{
		"critical", "down", "outage", "offline", "unavailable",
		"total failure", "complete loss", "service down",
	}},
	{"high", []string{
		"degraded", "slow", "timeout", "elevated error",
		"high error", "error rate", "performance issue",
		"jumped", "spike", "surged",
	}},
	{"medium", []string{
		"intermittent", "occasional", "sporadic", "some users",
		"affecting some",
	}},
	{"low", []string{
		"minor", "cosmetic", "edge case", "rare",
	}},
}

var defaultReservedPrefixes = []string{
	"time", "error", "status", "note", "warning", "info", "debug", "system",
}

// Default builds the built-in library.
func Default() *Library {
	lib, err := Build(nil)
	if err != nil {
		// Built-in tables are static; a compile failure here is a programming error.
		panic(err)
	}
	return lib
}

// Build compiles the library, merging optional overrides on top of the
// built-in tables. Overrides are additive: defaults always apply.
func Build(ov *Overrides) (*Library, error) {
	if ov != nil {
		if err := ov.Validate(); err != nil {
			return nil, err
		}
	}
	lib := &Library{
		Timestamps: []TimestampRule{
			// ISO-8601 with optional Z or numeric offset.
			{Kind: KindISO8601, Pattern: regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(?:Z|[+-]\d{2}:?\d{2})?`)},
			// Space-separated full datetime, seconds optional.
			{Kind: KindDatetime, Pattern: regexp.MustCompile(`\b\d{4}-\d{2}-\d{2} \d{2}:\d{2}(?::\d{2})?\b`)},
			// Bare time-of-day. RE2 has no lookaround, so adjacency checks
			// (ratio digits, longer time expressions) happen in the filter.
			{Kind: KindTimeSeconds, Pattern: regexp.MustCompile(`[0-2]?\d:[0-5]\d:[0-5]\d`), Bare: true},
			{Kind: KindTime, Pattern: regexp.MustCompile(`[0-2]?\d:[0-5]\d`), Bare: true},
		},
		Actors: []ActorRule{
			// Slack-style mentions: @sarah, @mike.jones
			{Convention: "mention", Pattern: regexp.MustCompile(`@([\w.-]+)`)},
			// "Sarah:", "Mike Jones:" — capitalized word(s) followed by colon.
			// Names with lowercase particles (de, von, van) are not captured.
			{Convention: "name_colon", Pattern: regexp.MustCompile(`\b([A-Z][a-z]+(?: [A-Z][a-z]+)?):`)},
			// "sarah.chen:" — both segments must be alphabetic, so domain
			// prefixes like "github.com:" fall to the filter.
			{Convention: "dotted", Pattern: regexp.MustCompile(`\b([a-z]+\.[a-z]+):`)},
		},
		Entities: []EntityRule{
			{Kind: "service", Pattern: regexp.MustCompile(`\b[a-z][a-z0-9_-]*(?:service|api|worker|job|daemon)\b`)},
			{Kind: "ip", Pattern: regexp.MustCompile(`\b\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}\b`)},
			{Kind: "domain", Pattern: regexp.MustCompile(`\b[a-z0-9-]+(?:\.[a-z0-9-]+)*\.[a-z]{2,}\b`)},
		},
		ReservedPrefixes: append([]string(nil), defaultReservedPrefixes...),
	}

	for _, set := range defaultActionKeywords {
		keywords := set.keywords
		if ov != nil {
			keywords = mergeKeywords(keywords, ov.actionKeywords(set.category))
		}
		pat, err := keywordPattern(keywords)
		if err != nil {
			return nil, fmt.Errorf("compile %s action keywords: %w", set.category, err)
		}
		lib.Actions = append(lib.Actions, ActionRule{Category: set.category, Keywords: keywords, Pattern: pat})
	}

	for _, set := range defaultSeverityKeywords {
		keywords := set.keywords
		if ov != nil {
			keywords = mergeKeywords(keywords, ov.severityKeywords(set.tier))
		}
		pat, err := keywordPattern(keywords)
		if err != nil {
			return nil, fmt.Errorf("compile %s severity keywords: %w", set.tier, err)
		}
		lib.Severities = append(lib.Severities, SeverityRule{Tier: set.tier, Keywords: keywords, Pattern: pat})
	}

	if ov != nil {
		lib.ReservedPrefixes = mergeKeywords(lib.ReservedPrefixes, ov.ReservedPrefixes)
	}

	return lib, nil
}

// ActionCategories returns the category names in their fixed iteration order.
func (l *Library) ActionCategories() []string {
	out := make([]string, len(l.Actions))
	for i, r := range l.Actions {
		out[i] = r.Category
	}
	return out
}

// keywordPattern compiles a case-insensitive word-boundary alternation over
// the given phrases.
func keywordPattern(keywords []string) (*regexp.Regexp, error) {
	if len(keywords) == 0 {
		return nil, fmt.Errorf("empty keyword set")
	}
	quoted := make([]string, len(keywords))
	for i, kw := range keywords {
		quoted[i] = regexp.QuoteMeta(strings.ToLower(kw))
	}
	return regexp.Compile(`(?i)\b(?:` + strings.Join(quoted, `|`) + `)\b`)
}

// mergeKeywords appends extras that are not already present, preserving order.
func mergeKeywords(base, extra []string) []string {
	seen := make(map[string]bool, len(base))
	out := append([]string(nil), base...)
	for _, kw := range base {
		seen[strings.ToLower(kw)] = true
	}
	for _, kw := range extra {
		kw = strings.TrimSpace(kw)
		if kw == "" || seen[strings.ToLower(kw)] {
			continue
		}
		seen[strings.ToLower(kw)] = true
		out = append(out, kw)
	}
	return out
}
