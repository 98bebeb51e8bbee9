package batch

import "github.com/atomicstack/record-picker/internal/record"

// Kind identifies the event types the controller understands.
type Kind int

const (
	KindKeyword Kind = iota
	KindReveal
	KindReopen
	KindRecords
	KindSelect
)

func (k Kind) String() string {
	switch k {
	case KindKeyword:
		return "keyword"
	case KindReveal:
		return "reveal"
	case KindReopen:
		return "reopen"
	case KindRecords:
		return "records"
	case KindSelect:
		return "select"
	default:
		return "unknown"
	}
}

// Event is a single input to the controller. Only the field relevant to
// Kind is read.
type Event struct {
	Kind    Kind
	Keyword string
	Records []record.Record
	Record  record.Record
}

// Dispatch routes evt to its transition and returns the resulting snapshot.
func (c *Controller) Dispatch(evt Event) Snapshot {
	switch evt.Kind {
	case KindKeyword:
		c.SetKeyword(evt.Keyword)
	case KindReveal:
		c.Reveal()
	case KindReopen:
		c.Reopen()
	case KindRecords:
		c.SetRecords(evt.Records)
	case KindSelect:
		c.Select(evt.Record)
	}
	return c.Snapshot()
}

// Subscribe registers fn for snapshots and returns a function removing it.
// Subscribing after Close is a no-op.
func (c *Controller) Subscribe(fn Listener) (unsubscribe func()) {
	if fn == nil || c.closed {
		return func() {}
	}
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}

// Close releases every registered listener. The controller keeps answering
// queries afterwards but no longer notifies anyone.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.closed = true
	for id := range c.listeners {
		delete(c.listeners, id)
	}
}

func (c *Controller) notify() {
	if len(c.listeners) == 0 {
		return
	}
	snap := c.Snapshot()
	for _, fn := range c.listeners {
		fn(snap)
	}
}
