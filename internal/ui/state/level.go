package state

import (
	"github.com/atomicstack/record-picker/internal/batch"
	"github.com/atomicstack/record-picker/internal/record"
)

// Level holds the open dropdown's presentation state: filter text, cursor,
// viewport, and the visible rows mirrored from the batch controller.
type Level struct {
	ID              string
	Title           string
	Items           []record.Record
	Filter          string
	FilterCursor    int
	Cursor          int
	LastCursor      int
	ViewportOffset  int
	RevealThreshold int

	batch *batch.Controller
}

// NewLevel constructs a Level backed by ctrl.
func NewLevel(id, title string, ctrl *batch.Controller) *Level {
	if ctrl == nil {
		ctrl = batch.New(batch.DefaultSize)
	}
	l := &Level{
		ID:              id,
		Title:           title,
		LastCursor:      -1,
		RevealThreshold: 1,
		batch:           ctrl,
	}
	l.Refresh()
	return l
}

// Batch exposes the controller driving the visible rows.
func (l *Level) Batch() *batch.Controller {
	return l.batch
}

// IndexOf returns the visible index for a given record identifier.
func (l *Level) IndexOf(id string) int {
	return record.IndexOf(l.Items, id)
}

// CurrentItem returns the record under the cursor.
func (l *Level) CurrentItem() (record.Record, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return record.Record{}, false
	}
	return l.Items[l.Cursor], true
}

// Refresh copies the controller's visible rows and clamps cursor and viewport.
func (l *Level) Refresh() {
	l.Items = l.batch.Visible()
	if len(l.Items) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Items) {
		l.Cursor = len(l.Items) - 1
	}
	if l.ViewportOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
	}
}

// UpdateRecords replaces the full record set, keeping the cursor on the
// selection when there is one.
func (l *Level) UpdateRecords(records []record.Record) {
	l.batch.Dispatch(batch.Event{Kind: batch.KindRecords, Records: records})
	l.Refresh()
	l.focusSelection()
}

// Reopen resets the batch window and puts the cursor on the selection.
func (l *Level) Reopen() {
	l.batch.Dispatch(batch.Event{Kind: batch.KindReopen})
	l.Refresh()
	l.ViewportOffset = 0
	if !l.focusSelection() {
		l.Cursor = 0
	}
}

func (l *Level) focusSelection() bool {
	idx := l.SelectedIndex()
	if idx < 0 {
		return false
	}
	l.Cursor = idx
	return true
}
