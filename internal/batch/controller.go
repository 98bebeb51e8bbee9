package batch

import (
	"github.com/atomicstack/record-picker/internal/logging/events"
	"github.com/atomicstack/record-picker/internal/record"
)

// DefaultSize is the number of rows revealed per batch when none is configured.
const DefaultSize = 5

// Snapshot is the controller output handed to listeners after each transition.
type Snapshot struct {
	Keyword       string
	Visible       []record.Record
	VisibleCount  int
	MinimumOffset int
	Filtered      int
	Total         int
	HasMore       bool
}

// Listener receives a snapshot after every processed event.
type Listener func(Snapshot)

// Controller reveals the filtered record list in fixed-size batches.
//
// visibleCount never drops below size, and after a reset it covers the
// selection plus one batch whenever the keyword is empty.
type Controller struct {
	size int

	full     []record.Record
	filtered []record.Record
	keyword  string

	selected    record.Record
	hasSelected bool

	visibleCount  int
	minimumOffset int

	listeners map[int]Listener
	nextID    int
	closed    bool
}

// New constructs a controller revealing size rows per batch.
func New(size int) *Controller {
	if size <= 0 {
		size = DefaultSize
	}
	return &Controller{
		size:         size,
		visibleCount: size,
		listeners:    make(map[int]Listener),
	}
}

// Size returns the batch size.
func (c *Controller) Size() int { return c.size }

// Keyword returns the active search keyword.
func (c *Controller) Keyword() string { return c.keyword }

// VisibleCount returns the number of filtered rows currently revealed, before clamping.
func (c *Controller) VisibleCount() int { return c.visibleCount }

// MinimumOffset returns the smallest visible count that keeps the selection in view.
func (c *Controller) MinimumOffset() int { return c.minimumOffset }

// Total returns the size of the full record set.
func (c *Controller) Total() int { return len(c.full) }

// Filtered returns a copy of the records matching the current keyword.
func (c *Controller) Filtered() []record.Record {
	return record.Clone(c.filtered)
}

// Visible returns the revealed prefix of the filtered records.
func (c *Controller) Visible() []record.Record {
	n := c.visibleCount
	if n > len(c.filtered) {
		n = len(c.filtered)
	}
	return record.Clone(c.filtered[:n])
}

// HasMore reports whether a reveal request would show additional rows.
func (c *Controller) HasMore() bool {
	return c.visibleCount < len(c.filtered)
}

// Selected returns the selected record, if any.
func (c *Controller) Selected() (record.Record, bool) {
	return c.selected, c.hasSelected
}

// SetKeyword applies a keyword change and collapses the window back to one batch.
func (c *Controller) SetKeyword(keyword string) {
	c.keyword = keyword
	c.reset()
	events.Batch.Keyword(keyword, len(c.filtered), c.visibleCount)
	c.notify()
}

// Reveal grows the window by one batch.
func (c *Controller) Reveal() {
	grown := c.visibleCount + c.size
	if floor := c.minimumOffset + c.size; floor > grown {
		grown = floor
	}
	c.visibleCount = grown
	events.Batch.Reveal(c.keyword, c.visibleCount, len(c.filtered))
	c.notify()
}

// Reopen resets the window using the current keyword and selection.
func (c *Controller) Reopen() {
	c.reset()
	events.Batch.Reopen(c.keyword, c.minimumOffset, c.visibleCount)
	c.notify()
}

// SetRecords replaces the full set and resets the window.
func (c *Controller) SetRecords(full []record.Record) {
	c.full = record.Clone(full)
	c.reset()
	events.Batch.Records(len(c.full), c.visibleCount)
	c.notify()
}

// Select stores rec as the selection. The window is left untouched until
// the next reset.
func (c *Controller) Select(rec record.Record) {
	c.selected = rec
	c.hasSelected = true
	events.Batch.Select(rec.ID, rec.Name)
	c.notify()
}

// ClearSelection drops the selection.
func (c *Controller) ClearSelection() {
	if !c.hasSelected {
		return
	}
	c.selected = record.Record{}
	c.hasSelected = false
	events.Batch.Select("", "")
	c.notify()
}

// Snapshot captures the current controller output.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Keyword:       c.keyword,
		Visible:       c.Visible(),
		VisibleCount:  c.visibleCount,
		MinimumOffset: c.minimumOffset,
		Filtered:      len(c.filtered),
		Total:         len(c.full),
		HasMore:       c.HasMore(),
	}
}

func (c *Controller) reset() {
	c.filtered = record.Filter(c.full, c.keyword)
	c.minimumOffset = c.computeMinimumOffset()
	c.visibleCount = c.size
	if c.minimumOffset > c.visibleCount {
		c.visibleCount = c.minimumOffset
	}
}

func (c *Controller) computeMinimumOffset() int {
	if c.keyword != "" || !c.hasSelected {
		return 0
	}
	idx := record.IndexOf(c.filtered, c.selected.ID)
	if idx < 0 {
		return 0
	}
	return idx + c.size
}
