package extract

import (
	"reflect"
	"testing"
)

func TestSeverity_TierPriority(t *testing.T) {
	e := newEngine()

	// A critical keyword wins even when lower tiers also match.
	sev, err := e.Severity("minor cosmetic issue, but the database is down")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sev.Level != "critical" {
		t.Errorf("level = %q, want critical", sev.Level)
	}
	if len(sev.Indicators) != 1 || sev.Indicators[0] != "down" {
		t.Errorf("indicators = %#v", sev.Indicators)
	}
}

func TestSeverity_HighTier(t *testing.T) {
	e := newEngine()

	sev, err := e.Severity("error rate jumped, responses are slow")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sev.Level != "high" {
		t.Errorf("level = %q, want high", sev.Level)
	}
	// Order of first appearance in the text.
	want := []string{"error rate", "jumped", "slow"}
	if !reflect.DeepEqual(sev.Indicators, want) {
		t.Errorf("indicators = %#v, want %#v", sev.Indicators, want)
	}
}

func TestSeverity_NoMatchIsExplicitUnknown(t *testing.T) {
	e := newEngine()

	sev, err := e.Severity("all quiet, routine maintenance complete")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sev.Level != SeverityUnknown {
		t.Errorf("level = %q, want %q", sev.Level, SeverityUnknown)
	}
	if sev.Confidence != 0 {
		t.Errorf("confidence = %v, want 0", sev.Confidence)
	}
	if len(sev.Indicators) != 0 {
		t.Errorf("indicators = %#v, want empty", sev.Indicators)
	}
}

func TestSeverity_Deterministic(t *testing.T) {
	e := newEngine()
	text := "outage confirmed, payment-service down, error rate spiking"

	first, err := e.Severity(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := e.Severity(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("results differ: %#v vs %#v", first, second)
	}
}

func TestSeverity_ConfidenceGrowsWithIndicators(t *testing.T) {
	e := newEngine()

	one, err := e.Severity("the api is down")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	two, err := e.Severity("the api is down, total outage")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(one.Indicators) != 1 || len(two.Indicators) != 2 {
		t.Fatalf("indicator counts = %d, %d", len(one.Indicators), len(two.Indicators))
	}
	if !(two.Confidence > one.Confidence) {
		t.Errorf("confidence not monotonic: %v then %v", one.Confidence, two.Confidence)
	}
	if one.Confidence != 0.5 {
		t.Errorf("single-indicator confidence = %v, want 0.5", one.Confidence)
	}
	if one.Confidence < 0 || one.Confidence > 1 || two.Confidence < 0 || two.Confidence > 1 {
		t.Error("confidence out of [0,1]")
	}
}

func TestSeverity_RepeatedKeywordDoesNotInflateIndicators(t *testing.T) {
	e := newEngine()

	sev, err := e.Severity("down down down")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sev.Indicators) != 1 {
		t.Errorf("indicators = %#v, want one distinct phrase", sev.Indicators)
	}
}
