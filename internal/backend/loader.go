// Package backend runs the one-shot ranked list request off the UI goroutine
// and publishes its outcome as a single Event.
package backend

import (
	"context"
	"sync"
	"time"

	"github.com/atomicstack/ranked-carousel/internal/logging/events"
	"github.com/atomicstack/ranked-carousel/internal/ranking"
)

// Event conveys the retrieved items or the reason retrieval failed.
type Event struct {
	Items []ranking.Item
	Err   error
}

// Loader issues exactly one request to a ranking source.
type Loader struct {
	source  ranking.Source
	label   string
	timeout time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	once   sync.Once
	events chan Event
	wg     sync.WaitGroup
}

// NewLoader prepares a loader; the request is issued by Start.
func NewLoader(source ranking.Source, label string, timeout time.Duration) *Loader {
	ctx, cancel := context.WithCancel(context.Background())
	return &Loader{
		source:  source,
		label:   label,
		timeout: timeout,
		ctx:     ctx,
		cancel:  cancel,
		events:  make(chan Event, 1),
	}
}

// Start issues the request. Further calls are no-ops.
func (l *Loader) Start() {
	l.once.Do(func() {
		l.wg.Add(1)
		go l.run()
	})
}

// Events delivers one Event and is then closed.
func (l *Loader) Events() <-chan Event {
	return l.events
}

// Stop cancels an in-flight request.
func (l *Loader) Stop() {
	l.cancel()
}

// Wait blocks until the request goroutine has exited. Call after Stop when a
// clean shutdown is required.
func (l *Loader) Wait() {
	l.wg.Wait()
}

func (l *Loader) run() {
	defer l.wg.Done()
	defer close(l.events)

	ctx := l.ctx
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	events.Ranking.Request(l.label)
	items, err := ranking.Fetch(ctx, l.source)
	if l.ctx.Err() != nil {
		// Stopped: nobody is waiting for the outcome any more.
		return
	}
	l.events <- Event{Items: items, Err: err}
}
