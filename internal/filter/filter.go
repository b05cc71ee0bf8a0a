// Package filter holds the context heuristics that decide whether a raw
// pattern match is a real timestamp or actor. Each predicate is independent
// of the scanning loop so the precision trade-offs stay unit-testable.
package filter

import (
	"strings"
	"unicode"
)

// contextWindow is how far back we look for ratio/version vocabulary when
// judging a bare time-of-day match.
const contextWindow = 20

// Words that precede colon-separated numbers which are not times:
// "error ratio of 3:45", "running version 1:45", "scaled 2:30".
var falsePositiveWords = []string{"ratio", "version", "scaled"}

// Suffixes that make a dotted token look like a domain rather than a
// firstname.lastname handle. Shape check only, not a full TLD registry.
var domainSuffixes = map[string]bool{
	"com": true, "net": true, "org": true, "io": true, "dev": true,
	"co": true, "ai": true, "app": true, "cloud": true, "internal": true,
	"local": true, "gov": true, "edu": true,
}

// Filter applies context-based rejection rules to raw matches.
type Filter struct {
	reserved map[string]bool
}

// New builds a Filter. reservedPrefixes are generic line labels ("Error",
// "Status") that must never be read as actor names.
func New(reservedPrefixes []string) *Filter {
	reserved := make(map[string]bool, len(reservedPrefixes))
	for _, p := range reservedPrefixes {
		reserved[strings.ToLower(p)] = true
	}
	return &Filter{reserved: reserved}
}

// LikelyTimestamp reports whether line[start:end] is a plausible timestamp.
// Non-bare matches (full dates) are specific enough to accept as-is. Bare
// HH:MM(:SS) matches are rejected when adjacent characters show they are a
// fragment of a longer expression, or when nearby vocabulary indicates a
// ratio or version rather than a time.
func (f *Filter) LikelyTimestamp(line string, start, end int, bare bool) bool {
	if !bare {
		return true
	}

	if start > 0 {
		prev := rune(line[start-1])
		if unicode.IsLetter(prev) || unicode.IsDigit(prev) || prev == ':' || prev == '.' || prev == '-' {
			return false
		}
	}
	if end < len(line) {
		next := rune(line[end])
		if unicode.IsDigit(next) || next == '.' {
			return false
		}
		// "14:25" inside "14:25:36" — the longer form should have matched.
		if next == ':' && end+1 < len(line) && unicode.IsDigit(rune(line[end+1])) {
			return false
		}
	}

	before := line[max(0, start-contextWindow):start]
	before = strings.ToLower(before)
	for _, word := range falsePositiveWords {
		if strings.Contains(before, word) {
			return false
		}
	}
	return true
}

// Actor validates and normalizes a captured actor candidate. It returns the
// normalized name and whether the candidate was accepted.
func (f *Filter) Actor(candidate string) (string, bool) {
	name := NormalizeActor(candidate)
	if name == "" {
		return "", false
	}
	if f.reserved[strings.ToLower(name)] {
		return "", false
	}
	if looksLikeDomain(name) {
		return "", false
	}
	return name, true
}

// NormalizeActor strips mention/label punctuation from a captured name.
func NormalizeActor(candidate string) string {
	name := strings.TrimSpace(candidate)
	name = strings.TrimPrefix(name, "@")
	name = strings.TrimSuffix(name, ":")
	name = strings.Trim(name, ".-")
	return name
}

// looksLikeDomain reports whether a dotted token ends in a domain-like
// suffix ("github.com", "api.internal").
func looksLikeDomain(name string) bool {
	idx := strings.LastIndexByte(name, '.')
	if idx < 0 {
		return false
	}
	return domainSuffixes[strings.ToLower(name[idx+1:])]
}
