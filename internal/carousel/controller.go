// Package carousel implements the rotation state machine behind the ranked
// carousel: the item list, the highlighted and hovered indices, and the single
// auto-advance timer.
//
// The controller is not safe for concurrent use. Every method is expected to be
// called from one event loop (the Bubble Tea Update goroutine); only
// Timer.Wait runs elsewhere.
package carousel

import (
	"time"

	"github.com/atomicstack/ranked-carousel/internal/logging/events"
	"github.com/atomicstack/ranked-carousel/internal/ranking"
	"github.com/zoobzio/clockz"
)

// Period is the auto-advance interval.
const Period = 4000 * time.Millisecond

// Option configures a Controller.
type Option func(*Controller)

// WithClock substitutes the clock used for the rotation timer.
func WithClock(clock clockz.Clock) Option {
	return func(c *Controller) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// Controller owns the list, the highlighted index and the timer handle.
type Controller struct {
	clock clockz.Clock

	state       State
	list        List
	highlighted int
	hovered     int
	hovering    bool

	timer  *Timer
	nextID uint64
	closed bool
}

// NewController returns a controller in StateIdle with an empty list.
func NewController(opts ...Option) *Controller {
	c := &Controller{clock: clockz.RealClock}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current state.
func (c *Controller) State() State { return c.state }

// List returns the current list.
func (c *Controller) List() List { return c.list }

// Len returns the current list length.
func (c *Controller) Len() int { return c.list.Len() }

// Index returns the highlighted index.
func (c *Controller) Index() int { return c.highlighted }

// Hovered returns the hovered index, if any.
func (c *Controller) Hovered() (int, bool) { return c.hovered, c.hovering }

// Current returns the item at the highlighted index.
func (c *Controller) Current() (ranking.Item, bool) {
	return c.list.At(c.highlighted)
}

// Timer returns the active timer handle or nil.
func (c *Controller) Timer() *Timer { return c.timer }

// Closed reports whether Teardown has run.
func (c *Controller) Closed() bool { return c.closed }

// Highlighted reports whether the card at i should render highlighted. The
// hovered card always wins visually, in addition to the rotated one.
func (c *Controller) Highlighted(i int) bool {
	if i == c.highlighted {
		return true
	}
	return c.hovering && i == c.hovered
}

// ShowPlaceholders assigns the placeholder list. Only an empty list is
// replaced; it never overwrites real items.
func (c *Controller) ShowPlaceholders() {
	if c.closed || c.list.Kind() != ListEmpty {
		return
	}
	c.list = placeholderList()
	c.highlighted = wrap(c.highlighted, 0, c.list.Len())
	c.transition(StateLoading)
}

// Load assigns the retrieved items. An empty payload leaves (or puts) the
// carousel in the loading state. A real list is assigned once; later calls
// are ignored. The returned handle is the newly started timer, if any.
func (c *Controller) Load(items []ranking.Item) *Timer {
	if c.closed {
		return nil
	}
	if c.list.Kind() == ListReal {
		events.Carousel.Ignored("load", c.state.String())
		return nil
	}
	if len(items) == 0 {
		c.ShowPlaceholders()
		return nil
	}
	c.list = realList(items)
	// The index is deliberately not reset; it is only wrapped into range.
	c.highlighted = wrap(c.highlighted, 0, c.list.Len())
	if c.hovering {
		c.hovered = wrap(c.hovered, 0, c.list.Len())
		c.transition(StatePaused)
		return nil
	}
	c.transition(StateRotating)
	return c.start()
}

// Tick applies an elapsed period for handle id. Ticks for any handle other
// than the active one are rejected. On success the timer is rearmed for the
// next period.
func (c *Controller) Tick(id uint64) bool {
	if c.timer == nil || c.timer.ID() != id || c.state != StateRotating {
		events.Carousel.StaleTick(id)
		return false
	}
	c.highlighted = wrap(c.highlighted, 1, c.list.Len())
	c.timer.rearm()
	events.Carousel.Tick(id, c.highlighted)
	return true
}

// Next advances the highlighted index without touching the timer.
func (c *Controller) Next() bool {
	return c.step("next", 1)
}

// Previous retreats the highlighted index without touching the timer.
func (c *Controller) Previous() bool {
	return c.step("previous", -1)
}

// HighlightedClick advances the highlighted index, like Next.
func (c *Controller) HighlightedClick() bool {
	return c.step("image", 1)
}

func (c *Controller) step(source string, delta int) bool {
	if !c.state.hasRealList() {
		return false
	}
	c.highlighted = wrap(c.highlighted, delta, c.list.Len())
	events.Carousel.Navigate(source, c.highlighted)
	return true
}

// HoverEnter marks index i as hovered and pauses rotation.
func (c *Controller) HoverEnter(i int) {
	n := c.list.Len()
	if c.closed || n == 0 {
		return
	}
	c.hovered = wrap(i, 0, n)
	c.hovering = true
	events.Carousel.Hover(c.hovered)
	if c.state == StateRotating {
		c.stop()
		c.transition(StatePaused)
	}
}

// HoverLeave clears the hovered index and, when paused, restarts rotation
// with a fresh full period.
func (c *Controller) HoverLeave() *Timer {
	if !c.hovering {
		return nil
	}
	c.hovering = false
	c.hovered = 0
	events.Carousel.Leave()
	if c.closed || c.state != StatePaused {
		return nil
	}
	c.transition(StateRotating)
	return c.start()
}

// Teardown cancels the timer and refuses further timer starts. It is safe to
// call more than once.
func (c *Controller) Teardown() {
	c.stop()
	if !c.closed {
		c.closed = true
		events.Carousel.Teardown(c.state.String())
	}
}

// start cancels any active handle before arming a new one.
func (c *Controller) start() *Timer {
	c.stop()
	if c.closed {
		return nil
	}
	c.nextID++
	c.timer = newTimer(c.clock, c.nextID, Period)
	events.Carousel.TimerStart(c.timer.ID())
	return c.timer
}

func (c *Controller) stop() {
	if c.timer == nil {
		return
	}
	c.timer.stop()
	events.Carousel.TimerStop(c.timer.ID())
	c.timer = nil
}

func (c *Controller) transition(to State) {
	if c.state == to {
		return
	}
	events.Carousel.Transition(c.state.String(), to.String())
	c.state = to
}
