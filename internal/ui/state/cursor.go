package state

import "github.com/atomicstack/record-picker/internal/batch"

// MoveCursorUp moves one row up, wrapping to the last revealed row.
func (l *Level) MoveCursorUp() bool {
	n := len(l.Items)
	if n == 0 {
		return false
	}
	if l.Cursor > 0 {
		l.Cursor--
	} else {
		l.Cursor = n - 1
	}
	return true
}

// MoveCursorDown moves one row down. At the last row it reveals the next
// batch when there is one and wraps to the top otherwise.
func (l *Level) MoveCursorDown() bool {
	n := len(l.Items)
	if n == 0 {
		return false
	}
	if l.Cursor >= n-1 {
		if l.batch.HasMore() {
			l.Reveal()
		}
		if l.Cursor >= len(l.Items)-1 {
			l.Cursor = 0
			return true
		}
	}
	l.Cursor++
	return true
}

// MoveCursorHome moves the cursor to the first item.
func (l *Level) MoveCursorHome() bool {
	if len(l.Items) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = 0
	return old != l.Cursor
}

// MoveCursorEnd moves the cursor to the last revealed item.
func (l *Level) MoveCursorEnd() bool {
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = n - 1
	return old != l.Cursor
}

// MoveCursorPageUp moves the cursor up by the given page size.
func (l *Level) MoveCursorPageUp(maxVisible int) bool {
	return l.moveCursorBy(-l.pageSize(maxVisible))
}

// MoveCursorPageDown moves the cursor down by the given page size, revealing
// batches until the target row exists or the filtered set is exhausted.
func (l *Level) MoveCursorPageDown(maxVisible int) bool {
	step := l.pageSize(maxVisible)
	for l.Cursor+step >= len(l.Items) && l.batch.HasMore() {
		l.Reveal()
	}
	return l.moveCursorBy(step)
}

func (l *Level) moveCursorBy(delta int) bool {
	if len(l.Items) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	l.Cursor += delta
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Items) {
		l.Cursor = len(l.Items) - 1
	}
	return l.Cursor != old
}

func (l *Level) pageSize(maxVisible int) int {
	total := len(l.Items)
	if total == 0 {
		return 0
	}
	size := maxVisible
	if size <= 0 || size > total {
		size = total
	}
	if size < 1 {
		size = 1
	}
	return size
}

// NearEnd reports whether the cursor is within RevealThreshold rows of the
// last revealed item.
func (l *Level) NearEnd() bool {
	n := len(l.Items)
	if n == 0 {
		return false
	}
	threshold := l.RevealThreshold
	if threshold < 1 {
		threshold = 1
	}
	return l.Cursor >= n-threshold
}

// Reveal asks the controller for one more batch and mirrors the result.
func (l *Level) Reveal() bool {
	if !l.batch.HasMore() {
		return false
	}
	l.batch.Dispatch(batch.Event{Kind: batch.KindReveal})
	l.Refresh()
	return true
}

// RevealIfNearEnd reveals another batch once the cursor approaches the end.
func (l *Level) RevealIfNearEnd() bool {
	if !l.NearEnd() {
		return false
	}
	return l.Reveal()
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays visible.
func (l *Level) EnsureCursorVisible(maxVisible int) {
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
	if maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	maxOffset := len(l.Items) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if l.ViewportOffset > maxOffset {
		l.ViewportOffset = maxOffset
	}
	if l.ViewportOffset < 0 {
		l.ViewportOffset = 0
	}
	if l.Cursor < l.ViewportOffset {
		l.ViewportOffset = l.Cursor
	}
	if upper := l.ViewportOffset + maxVisible - 1; l.Cursor > upper {
		l.ViewportOffset = l.Cursor - maxVisible + 1
	}
}
