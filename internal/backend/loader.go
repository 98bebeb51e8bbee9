package backend

import (
	"context"
	"sync"
	"time"

	"github.com/atomicstack/record-picker/internal/logging"
	"github.com/atomicstack/record-picker/internal/record"
	"github.com/atomicstack/record-picker/internal/source"
)

// Event carries the outcome of one fetch.
type Event struct {
	Records []record.Record
	Err     error
	Attempt int
}

// Loader runs record fetches off the UI loop and publishes each completion
// as an Event. The first fetch starts immediately; later ones only run when
// Retry is called.
type Loader struct {
	src      source.Source
	throttle *throttle

	ctx    context.Context
	cancel context.CancelFunc

	events   chan Event
	requests chan struct{}
	wg       sync.WaitGroup
}

// NewLoader starts fetching from src. Retries are spaced by at least
// minInterval.
func NewLoader(src source.Source, minInterval time.Duration) *Loader {
	ctx, cancel := context.WithCancel(context.Background())
	l := &Loader{
		src:      src,
		throttle: newThrottle(minInterval),
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 1),
		requests: make(chan struct{}, 1),
	}
	l.requests <- struct{}{}

	l.wg.Add(1)
	go l.run()
	go func() {
		l.wg.Wait()
		close(l.events)
	}()
	return l
}

// Events returns the channel of fetch completions. It is closed after Stop.
func (l *Loader) Events() <-chan Event {
	return l.events
}

// Retry queues another fetch. It reports false when one is already queued.
func (l *Loader) Retry() bool {
	select {
	case l.requests <- struct{}{}:
		return true
	default:
		return false
	}
}

// Stop cancels any in-flight fetch and ends the loader.
func (l *Loader) Stop() {
	l.cancel()
}

// Wait blocks until the fetch goroutine has exited and Events is closed.
func (l *Loader) Wait() {
	l.wg.Wait()
}

func (l *Loader) run() {
	defer l.wg.Done()
	attempt := 0
	for {
		select {
		case <-l.ctx.Done():
			return
		case <-l.requests:
		}
		if !l.throttle.wait(l.ctx) {
			return
		}
		attempt++
		records, err := l.src.FetchAll(l.ctx)
		if err != nil {
			if l.ctx.Err() != nil {
				return
			}
			logging.Error(err)
		}
		select {
		case <-l.ctx.Done():
			return
		case l.events <- Event{Records: records, Err: err, Attempt: attempt}:
		}
	}
}
