package extract

import (
	"strings"
	"testing"
)

func TestActions_CategorizesLines(t *testing.T) {
	e := newEngine()
	text := strings.Join([]string{
		"@sarah 14:23: investigating the latency alerts",
		"@mike 14:25: rolling back deploy",
		"@sarah 14:26: paged the on-call DBA",
	}, "\n")

	actions, err := e.Actions(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(actions) != 3 {
		t.Fatalf("expected 3 actions, got %d", len(actions))
	}

	if actions[0].Category != "investigation" || actions[0].Action != "investigating" {
		t.Errorf("action 0 = %+v", actions[0])
	}
	if actions[1].Category != "remediation" || actions[1].Action != "rolling back" {
		t.Errorf("action 1 = %+v", actions[1])
	}
	if actions[2].Category != "communication" || actions[2].Action != "paged" {
		t.Errorf("action 2 = %+v", actions[2])
	}
}

func TestActions_MultipleCategoriesPerLine(t *testing.T) {
	e := newEngine()

	actions, err := e.Actions("checked the graphs and restarted the worker")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(actions) != 2 {
		t.Fatalf("expected 2 actions, got %d", len(actions))
	}
	// Categories come out in fixed library order.
	if actions[0].Category != "investigation" {
		t.Errorf("action 0 category = %q", actions[0].Category)
	}
	if actions[1].Category != "remediation" {
		t.Errorf("action 1 category = %q", actions[1].Category)
	}
	// Both share the same underlying line as context.
	if actions[0].Context != actions[1].Context {
		t.Errorf("contexts differ: %q vs %q", actions[0].Context, actions[1].Context)
	}
}

func TestActions_CaseInsensitive(t *testing.T) {
	e := newEngine()

	actions, err := e.Actions("RESTARTED the cache tier")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(actions) != 1 {
		t.Fatalf("expected 1 action, got %d", len(actions))
	}
	if actions[0].Action != "restarted" {
		t.Errorf("matched phrase = %q, want lowercase normalization", actions[0].Action)
	}
}

func TestActions_EmptyInput(t *testing.T) {
	e := newEngine()

	actions, err := e.Actions("   \n  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(actions) != 0 {
		t.Errorf("expected no actions, got %d", len(actions))
	}
}

func TestActions_LongLineGetsBoundedContext(t *testing.T) {
	e := newEngine()
	line := strings.Repeat("x", 120) + " restarted the indexer " + strings.Repeat("y", 120)

	actions, err := e.Actions(line)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(actions) != 1 {
		t.Fatalf("expected 1 action, got %d", len(actions))
	}
	if len(actions[0].Context) > maxContext {
		t.Errorf("context length %d exceeds bound %d", len(actions[0].Context), maxContext)
	}
	if !strings.Contains(actions[0].Context, "restarted") {
		t.Errorf("context %q does not contain the match", actions[0].Context)
	}
}
