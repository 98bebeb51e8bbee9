package ui

import "testing"

func TestTypingFiltersAndBackspaceRestores(t *testing.T) {
	h := newLoadedHarness(t, Options{})
	m := h.Model()
	h.Type("hot")
	if m.level.Filter != "hot" {
		t.Fatalf("expected filter hot, got %q", m.level.Filter)
	}
	if got := visibleNames(m); len(got) != 1 || got[0] != "Hotel" {
		t.Fatalf("expected only Hotel, got %v", got)
	}
	h.Press("backspace")
	if m.level.Filter != "ho" {
		t.Fatalf("expected filter ho, got %q", m.level.Filter)
	}
	if got := visibleNames(m); len(got) != 2 || got[0] != "Echo" || got[1] != "Hotel" {
		t.Fatalf("expected Echo and Hotel, got %v", got)
	}
}

func TestCtrlWDeletesWord(t *testing.T) {
	h := newLoadedHarness(t, Options{})
	m := h.Model()
	h.Type("al ph")
	h.Press("ctrl+w")
	if m.level.Filter != "al " {
		t.Fatalf("expected filter %q, got %q", "al ", m.level.Filter)
	}
}

func TestFilterCaretMovement(t *testing.T) {
	h := newLoadedHarness(t, Options{})
	m := h.Model()
	h.Type("ec")
	h.Press("ctrl+a")
	if m.level.FilterCursorPos() != 0 {
		t.Fatalf("expected caret at 0, got %d", m.level.FilterCursorPos())
	}
	h.Press("right")
	if m.level.FilterCursorPos() != 1 {
		t.Fatalf("expected caret at 1, got %d", m.level.FilterCursorPos())
	}
	h.Press("ctrl+e")
	if m.level.FilterCursorPos() != 2 {
		t.Fatalf("expected caret at 2, got %d", m.level.FilterCursorPos())
	}
}

func TestTypingIgnoredWhileClosed(t *testing.T) {
	h := newLoadedHarness(t, Options{})
	h.Press("esc")
	h.Type("x")
	if h.Model().level.Filter != "" {
		t.Fatalf("expected filter untouched while closed, got %q", h.Model().level.Filter)
	}
}
