package state

import (
	"github.com/atomicstack/record-picker/internal/batch"
	"github.com/atomicstack/record-picker/internal/record"
)

// IsSelected reports whether the given id is the current selection.
func (l *Level) IsSelected(id string) bool {
	sel, ok := l.batch.Selected()
	return ok && sel.ID == id
}

// SelectedIndex returns the visible index of the selection, or -1.
func (l *Level) SelectedIndex() int {
	sel, ok := l.batch.Selected()
	if !ok {
		return -1
	}
	return l.IndexOf(sel.ID)
}

// Choose makes the record under the cursor the selection.
func (l *Level) Choose() (record.Record, bool) {
	item, ok := l.CurrentItem()
	if !ok {
		return record.Record{}, false
	}
	l.batch.Dispatch(batch.Event{Kind: batch.KindSelect, Record: item})
	return item, true
}

// Selected returns the current selection, which may be outside the visible rows.
func (l *Level) Selected() (record.Record, bool) {
	return l.batch.Selected()
}
