package carousel

import (
	"sync"
	"time"

	"github.com/zoobzio/clockz"
)

// Timer is the handle for the single outstanding rotation timer. Wait blocks
// in a command goroutine; stop and rearm run on the update loop.
type Timer struct {
	id     uint64
	period time.Duration
	clock  clockz.Clock
	timer  clockz.Timer

	done chan struct{}
	once sync.Once
}

func newTimer(clock clockz.Clock, id uint64, period time.Duration) *Timer {
	return &Timer{
		id:     id,
		period: period,
		clock:  clock,
		timer:  clock.NewTimer(period),
		done:   make(chan struct{}),
	}
}

// ID identifies the handle; ticks must echo it back to be accepted.
func (t *Timer) ID() uint64 {
	if t == nil {
		return 0
	}
	return t.id
}

// Wait blocks until the current period elapses (true) or the handle is
// cancelled (false).
func (t *Timer) Wait() bool {
	if t == nil {
		return false
	}
	select {
	case <-t.done:
		return false
	case <-t.timer.C():
		select {
		case <-t.done:
			return false
		default:
			return true
		}
	}
}

// Done is closed once the handle is cancelled.
func (t *Timer) Done() <-chan struct{} {
	return t.done
}

// rearm replaces the fired timer with a fresh one for the next period. The
// handle keeps its ID and done channel. Only call it once Wait has returned.
func (t *Timer) rearm() {
	t.timer.Stop()
	t.timer = t.clock.NewTimer(t.period)
}

func (t *Timer) stop() {
	t.once.Do(func() {
		t.timer.Stop()
		close(t.done)
	})
}
