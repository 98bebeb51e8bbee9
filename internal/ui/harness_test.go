package ui

import (
	"strings"
	"testing"
)

func TestHarnessScrollSelectReopenConfirm(t *testing.T) {
	h := newLoadedHarness(t, Options{})
	m := h.Model()
	if got := len(m.level.Items); got != 5 {
		t.Fatalf("expected first batch of 5, got %d", got)
	}
	if !m.snapshot.HasMore {
		t.Fatal("expected snapshot to report more rows")
	}

	h.Press("down", "down", "down", "down")
	if got := len(m.level.Items); got != 10 {
		t.Fatalf("expected reveal to show all 10 rows, got %d", got)
	}
	if m.snapshot.HasMore {
		t.Fatal("expected no more rows after reveal")
	}

	h.Press("down", "down", "down", "enter")
	if m.open {
		t.Fatal("expected enter to close the dropdown")
	}
	sel, ok := m.level.Selected()
	if !ok || sel.Name != "Hotel" {
		t.Fatalf("expected Hotel selected, got %+v (ok=%v)", sel, ok)
	}
	if view := h.View(); !strings.Contains(view, "Selected:") || !strings.Contains(view, "Hotel") {
		t.Fatalf("expected closed view to show selection, got:\n%s", view)
	}

	h.Press("o")
	if !m.open {
		t.Fatal("expected o to reopen the dropdown")
	}
	if m.snapshot.VisibleCount != 12 || m.snapshot.MinimumOffset != 12 {
		t.Fatalf("expected visible/minimum 12/12 after reopen, got %d/%d", m.snapshot.VisibleCount, m.snapshot.MinimumOffset)
	}
	if len(m.level.Items) != 10 || m.level.Cursor != 7 {
		t.Fatalf("expected 10 rows with cursor on Hotel, got rows=%d cursor=%d", len(m.level.Items), m.level.Cursor)
	}

	h.Press("esc", "enter")
	if !h.Quit() {
		t.Fatal("expected enter on closed view to quit")
	}
	got, ok := m.Result()
	if !ok || got.Name != "Hotel" {
		t.Fatalf("expected confirmed Hotel, got %+v (ok=%v)", got, ok)
	}
}

func TestHarnessKeywordNoMatchThenClear(t *testing.T) {
	h := newLoadedHarness(t, Options{})
	m := h.Model()
	h.Type("z")
	if len(m.level.Items) != 0 {
		t.Fatalf("expected no rows for keyword z, got %v", visibleNames(m))
	}
	if view := h.View(); !strings.Contains(view, `No matches for "z"`) {
		t.Fatalf("expected no-match message, got:\n%s", view)
	}
	h.Press("ctrl+u")
	if m.level.Filter != "" || len(m.level.Items) != 5 {
		t.Fatalf("expected cleared filter with one batch, got filter=%q rows=%d", m.level.Filter, len(m.level.Items))
	}
}

func TestHarnessKeywordResetsWindow(t *testing.T) {
	h := newLoadedHarness(t, Options{})
	m := h.Model()
	h.Press("pgdown")
	if len(m.level.Items) != 10 {
		t.Fatalf("expected page down to reveal all rows, got %d", len(m.level.Items))
	}
	h.Type("o")
	want := []string{"Bravo", "Echo", "Foxtrot", "Golf", "Hotel"}
	got := visibleNames(m)
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if m.snapshot.VisibleCount != 5 {
		t.Fatalf("expected keyword change to reset to one batch, got %d", m.snapshot.VisibleCount)
	}
}

func TestHarnessEscOnClosedViewQuitsWithoutResult(t *testing.T) {
	h := newLoadedHarness(t, Options{})
	h.Press("esc")
	if h.Model().open || h.Quit() {
		t.Fatal("expected esc to close the dropdown without quitting")
	}
	h.Press("esc")
	if !h.Quit() {
		t.Fatal("expected esc to quit")
	}
	if _, ok := h.Model().Result(); ok {
		t.Fatal("expected no confirmed result after esc")
	}
}
