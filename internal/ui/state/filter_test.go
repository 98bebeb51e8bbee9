package state

import (
	"fmt"
	"testing"

	"github.com/atomicstack/record-picker/internal/batch"
	"github.com/atomicstack/record-picker/internal/record"
)

func newTestLevel(names ...string) *Level {
	items := make([]record.Record, len(names))
	for i, name := range names {
		items[i] = record.Record{ID: name, Name: name}
	}
	level := NewLevel("people", "People", batch.New(5))
	level.UpdateRecords(items)
	return level
}

func numberedLevel(size, count int) *Level {
	items := make([]record.Record, count)
	for i := range items {
		items[i] = record.Record{ID: fmt.Sprintf("id-%02d", i), Name: fmt.Sprintf("person %02d", i)}
	}
	level := NewLevel("people", "People", batch.New(size))
	level.UpdateRecords(items)
	return level
}

func TestSetFilterTracksCursorAndRestoresPosition(t *testing.T) {
	level := newTestLevel("one", "two", "three")
	level.Cursor = 2
	level.SetFilter("two", len("two"))

	if level.Filter != "two" {
		t.Fatalf("expected filter persisted, got %q", level.Filter)
	}
	if level.FilterCursor != len("two") {
		t.Fatalf("expected cursor at end, got %d", level.FilterCursor)
	}
	if level.Cursor != 0 {
		t.Fatalf("expected filtered cursor at 0, got %d", level.Cursor)
	}
	if len(level.Items) != 1 || level.Items[0].ID != "two" {
		t.Fatalf("expected filtered items to contain only 'two', got %#v", level.Items)
	}
	if level.Batch().Keyword() != "two" {
		t.Fatalf("expected keyword forwarded to controller, got %q", level.Batch().Keyword())
	}

	level.SetFilter("", 0)
	if level.Cursor != 2 {
		t.Fatalf("expected cursor restored to 2, got %d", level.Cursor)
	}
	if level.LastCursor != -1 {
		t.Fatalf("expected last cursor reset, got %d", level.LastCursor)
	}
}

func TestClearingFilterReturnsToSelection(t *testing.T) {
	level := numberedLevel(5, 20)
	level.Cursor = 3
	level.Reveal()
	level.Cursor = 8
	if _, ok := level.Choose(); !ok {
		t.Fatal("expected choose to succeed")
	}
	level.SetFilter("person 1", len("person 1"))
	if len(level.Items) != 5 {
		t.Fatalf("expected one batch of matches, got %d", len(level.Items))
	}
	level.SetFilter("", 0)
	if len(level.Items) != 13 {
		t.Fatalf("expected selection window of 13 rows, got %d", len(level.Items))
	}
	if level.Cursor != 8 {
		t.Fatalf("expected cursor on selection, got %d", level.Cursor)
	}
}

func TestInsertAndDeleteFilterText(t *testing.T) {
	level := newTestLevel("alpha")

	if !level.InsertFilterText("ab") {
		t.Fatal("expected insert to succeed")
	}
	if level.Filter != "ab" || level.FilterCursor != 2 {
		t.Fatalf("unexpected filter state %q/%d", level.Filter, level.FilterCursor)
	}

	level.FilterCursor = 1
	if !level.InsertFilterText("z") {
		t.Fatal("expected insert in middle to succeed")
	}
	if level.Filter != "azb" {
		t.Fatalf("expected insert into middle, got %q", level.Filter)
	}
	if level.FilterCursor != 2 {
		t.Fatalf("expected cursor 2 after insert, got %d", level.FilterCursor)
	}

	if !level.DeleteFilterRuneBackward() {
		t.Fatal("expected rune deletion to succeed")
	}
	if level.Filter != "ab" || level.FilterCursor != 1 {
		t.Fatalf("unexpected filter state after delete %q/%d", level.Filter, level.FilterCursor)
	}

	level.SetFilter("abc def", len("abc def"))
	if !level.DeleteFilterWordBackward() {
		t.Fatal("expected word deletion to succeed")
	}
	if level.Filter != "abc " {
		t.Fatalf("expected trailing word removed, got %q", level.Filter)
	}

	level.SetFilter("abc", 0)
	if level.DeleteFilterRuneBackward() {
		t.Fatal("expected delete at start to fail")
	}
	if level.InsertFilterText("") {
		t.Fatal("expected empty insert to fail")
	}
}

func TestFilterCursorNavigation(t *testing.T) {
	level := newTestLevel("one", "two")
	level.SetFilter("one two", len("one two"))

	if !level.MoveFilterCursorWordBackward() {
		t.Fatal("expected word backward movement")
	}
	if level.FilterCursor != 4 {
		t.Fatalf("expected cursor at 4, got %d", level.FilterCursor)
	}
	if !level.MoveFilterCursorWordForward() {
		t.Fatal("expected word forward movement")
	}
	if level.FilterCursor != len("one two") {
		t.Fatalf("expected cursor restored to end, got %d", level.FilterCursor)
	}
	if !level.MoveFilterCursorRuneBackward() {
		t.Fatal("expected rune backward movement")
	}
	if !level.MoveFilterCursorRuneForward() {
		t.Fatal("expected rune forward movement")
	}
	if level.MoveFilterCursorRuneForward() {
		t.Fatal("expected no movement past end")
	}
	if !level.MoveFilterCursorStart() || level.FilterCursor != 0 {
		t.Fatalf("expected cursor at 0, got %d", level.FilterCursor)
	}
	if level.MoveFilterCursorWordBackward() {
		t.Fatal("expected no word movement at start")
	}
	if !level.MoveFilterCursorEnd() {
		t.Fatal("expected move back to end")
	}
}

func TestNoMatchesClearsItems(t *testing.T) {
	level := newTestLevel("Alpha", "Beta")
	level.SetFilter("z", 1)
	if len(level.Items) != 0 {
		t.Fatalf("expected no visible items, got %#v", level.Items)
	}
	if level.Cursor != 0 || level.ViewportOffset != 0 {
		t.Fatalf("expected cursor/viewport reset, got %d/%d", level.Cursor, level.ViewportOffset)
	}
	if _, ok := level.CurrentItem(); ok {
		t.Fatal("expected no current item")
	}
}

func TestBestMatchIndex(t *testing.T) {
	items := []record.Record{
		{ID: "1", Name: "Mariana Costa"},
		{ID: "2", Name: "Ana Souza"},
		{ID: "3", Name: "Ana"},
		{ID: "4", Name: "Luciana Banana"},
	}
	if idx := BestMatchIndex(items, "ana"); idx != 2 {
		t.Fatalf("expected exact match index 2, got %d", idx)
	}
	if idx := BestMatchIndex(items, "ana s"); idx != 1 {
		t.Fatalf("expected prefix match index 1, got %d", idx)
	}
	if idx := BestMatchIndex(items, "cos"); idx != 0 {
		t.Fatalf("expected word prefix match index 0, got %d", idx)
	}
	if idx := BestMatchIndex(items, "anan"); idx != 3 {
		t.Fatalf("expected fuzzy match index 3, got %d", idx)
	}
	if idx := BestMatchIndex(items, "qqq"); idx != 0 {
		t.Fatalf("expected fallback index 0, got %d", idx)
	}
	if idx := BestMatchIndex(nil, "anything"); idx != -1 {
		t.Fatalf("expected -1 for empty slice, got %d", idx)
	}
}
