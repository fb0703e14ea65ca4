package carousel

import (
	"fmt"
	"testing"
	"time"

	"github.com/atomicstack/ranked-carousel/internal/ranking"
	"github.com/zoobzio/clockz"
)

func vehicles(n int) []ranking.Item {
	items := make([]ranking.Item, n)
	for i := range items {
		items[i] = ranking.Item{
			ID:       fmt.Sprintf("v%d", i),
			Category: "Sedan",
			Make:     "Make",
			Model:    fmt.Sprintf("Model %d", i),
			Price:    "1000",
		}
	}
	return items
}

func newTestController() (*Controller, *clockz.FakeClock) {
	clock := clockz.NewFakeClock()
	return NewController(WithClock(clock)), clock
}

// waitAsync runs t.Wait in a goroutine and reports its outcome on the channel.
func waitAsync(t *Timer) <-chan bool {
	out := make(chan bool, 1)
	go func() { out <- t.Wait() }()
	return out
}

func TestNewControllerStartsIdle(t *testing.T) {
	c, _ := newTestController()
	if c.State() != StateIdle {
		t.Fatalf("expected idle, got %s", c.State())
	}
	if c.List().Kind() != ListEmpty || c.Len() != 0 {
		t.Fatalf("expected empty list, got %s/%d", c.List().Kind(), c.Len())
	}
	if c.Timer() != nil {
		t.Fatalf("expected no timer")
	}
}

func TestPlaceholdersDoNotStartTimer(t *testing.T) {
	c, _ := newTestController()
	c.ShowPlaceholders()
	if c.State() != StateLoading {
		t.Fatalf("expected loading, got %s", c.State())
	}
	if c.List().Kind() != ListPlaceholder {
		t.Fatalf("expected placeholder list, got %s", c.List().Kind())
	}
	if c.Len() != PlaceholderCount {
		t.Fatalf("expected %d placeholders, got %d", PlaceholderCount, c.Len())
	}
	if c.Timer() != nil {
		t.Fatalf("placeholder list must not start the timer")
	}
	for i := 0; i < c.Len(); i++ {
		item, _ := c.List().At(i)
		if !IsPlaceholder(item) {
			t.Fatalf("item %d is not a placeholder: %#v", i, item)
		}
		if item.ID != fmt.Sprintf("placeholder-%d", i) {
			t.Fatalf("unexpected placeholder id %q", item.ID)
		}
	}
	// A second assignment never appends more placeholders.
	c.ShowPlaceholders()
	c.Load(nil)
	if c.Len() != PlaceholderCount {
		t.Fatalf("expected placeholder count to stay %d, got %d", PlaceholderCount, c.Len())
	}
}

func TestLoadRealListStartsRotation(t *testing.T) {
	c, _ := newTestController()
	c.ShowPlaceholders()
	timer := c.Load(vehicles(5))
	if timer == nil {
		t.Fatalf("expected timer to start")
	}
	if c.State() != StateRotating {
		t.Fatalf("expected rotating, got %s", c.State())
	}
	if c.List().Kind() != ListReal || c.Len() != 5 {
		t.Fatalf("expected 5 real items, got %s/%d", c.List().Kind(), c.Len())
	}
	for i := 0; i < c.Len(); i++ {
		item, _ := c.List().At(i)
		if IsPlaceholder(item) {
			t.Fatalf("placeholder survived replacement at %d", i)
		}
	}
}

func TestLoadIsOneShot(t *testing.T) {
	c, _ := newTestController()
	first := c.Load(vehicles(5))
	if second := c.Load(vehicles(3)); second != nil {
		t.Fatalf("expected second load to be ignored")
	}
	if c.Len() != 5 {
		t.Fatalf("expected list length 5, got %d", c.Len())
	}
	if c.Timer() != first {
		t.Fatalf("expected original timer to remain active")
	}
}

func TestNavigationScenario(t *testing.T) {
	c, _ := newTestController()
	timer := c.Load(vehicles(5))
	for i := 0; i < 3; i++ {
		c.Next()
	}
	if c.Index() != 3 {
		t.Fatalf("expected index 3 after three nexts, got %d", c.Index())
	}
	if !c.Tick(timer.ID()) || c.Index() != 4 {
		t.Fatalf("expected tick to advance to 4, got %d", c.Index())
	}
	if !c.Tick(timer.ID()) || c.Index() != 0 {
		t.Fatalf("expected tick to wrap to 0, got %d", c.Index())
	}
}

func TestNavigationDoesNotTouchTimer(t *testing.T) {
	c, _ := newTestController()
	timer := c.Load(vehicles(4))
	c.Next()
	c.Previous()
	c.HighlightedClick()
	if c.Timer() != timer {
		t.Fatalf("navigation replaced the timer handle")
	}
	if c.State() != StateRotating {
		t.Fatalf("expected rotating, got %s", c.State())
	}
	if c.Index() != 1 {
		t.Fatalf("expected index 1, got %d", c.Index())
	}
}

func TestIndexStaysInRange(t *testing.T) {
	for n := 1; n <= 7; n++ {
		c, _ := newTestController()
		c.Load(vehicles(n))
		// Deterministic mixed walk covering both directions and wraps.
		for step := 0; step < 50; step++ {
			switch step % 5 {
			case 0, 3:
				c.Previous()
			case 1:
				c.HighlightedClick()
			default:
				c.Next()
			}
			if idx := c.Index(); idx < 0 || idx >= n {
				t.Fatalf("n=%d step=%d: index %d out of range", n, step, idx)
			}
		}
		for step := 0; step < 2*n+1; step++ {
			c.Previous()
			if idx := c.Index(); idx < 0 || idx >= n {
				t.Fatalf("n=%d retreat %d: index %d out of range", n, step, idx)
			}
		}
	}
}

func TestNavigationIgnoredWhileLoading(t *testing.T) {
	c, _ := newTestController()
	c.ShowPlaceholders()
	if c.Next() || c.Previous() || c.HighlightedClick() {
		t.Fatalf("expected navigation to be ignored while loading")
	}
	if c.Index() != 0 {
		t.Fatalf("expected index 0, got %d", c.Index())
	}
}

func TestHoverPausesAndLeaveRestarts(t *testing.T) {
	c, _ := newTestController()
	first := c.Load(vehicles(5))

	c.HoverEnter(3)
	if c.State() != StatePaused {
		t.Fatalf("expected paused, got %s", c.State())
	}
	if c.Timer() != nil {
		t.Fatalf("expected timer cancelled on hover")
	}
	select {
	case <-first.Done():
	default:
		t.Fatalf("expected cancelled handle to be done")
	}
	if !c.Highlighted(3) || !c.Highlighted(0) {
		t.Fatalf("expected both hovered and rotated cards highlighted")
	}
	if c.Highlighted(1) {
		t.Fatalf("expected card 1 not highlighted")
	}
	if c.Tick(first.ID()) {
		t.Fatalf("expected stale tick to be rejected while paused")
	}

	second := c.HoverLeave()
	if second == nil || second.ID() == first.ID() {
		t.Fatalf("expected a fresh timer handle on leave")
	}
	if c.State() != StateRotating {
		t.Fatalf("expected rotating, got %s", c.State())
	}
	if _, ok := c.Hovered(); ok {
		t.Fatalf("expected hovered index cleared")
	}
	if c.Highlighted(3) {
		t.Fatalf("expected hover highlight cleared")
	}
	if !c.Tick(second.ID()) || c.Index() != 1 {
		t.Fatalf("expected rotated index to resume from 0 to 1, got %d", c.Index())
	}
}

func TestRepeatedHoverCyclesLeaveOneLiveTimer(t *testing.T) {
	c, _ := newTestController()
	handles := []*Timer{c.Load(vehicles(5))}
	for i := 0; i < 10; i++ {
		c.HoverEnter(i)
		handles = append(handles, c.HoverLeave())
	}
	live := 0
	for _, h := range handles {
		select {
		case <-h.Done():
		default:
			live++
		}
	}
	if live != 1 {
		t.Fatalf("expected exactly one live timer, got %d", live)
	}
	accepted := 0
	for _, h := range handles {
		if c.Tick(h.ID()) {
			accepted++
		}
	}
	if accepted != 1 {
		t.Fatalf("expected exactly one accepted tick, got %d", accepted)
	}
	if c.Index() != 1 {
		t.Fatalf("expected single-speed advance to 1, got %d", c.Index())
	}
}

func TestHoverWhileLoadingNeverStartsTimer(t *testing.T) {
	c, _ := newTestController()
	c.ShowPlaceholders()
	c.HoverEnter(2)
	if !c.Highlighted(2) {
		t.Fatalf("expected hovered placeholder highlighted")
	}
	if timer := c.HoverLeave(); timer != nil {
		t.Fatalf("expected no timer after hover leave on placeholders")
	}
	if c.State() != StateLoading {
		t.Fatalf("expected loading, got %s", c.State())
	}
}

func TestLoadWhileHoveringStartsPaused(t *testing.T) {
	c, _ := newTestController()
	c.ShowPlaceholders()
	c.HoverEnter(4)
	if timer := c.Load(vehicles(3)); timer != nil {
		t.Fatalf("expected no timer while the pointer rests on a card")
	}
	if c.State() != StatePaused {
		t.Fatalf("expected paused, got %s", c.State())
	}
	if idx, ok := c.Hovered(); !ok || idx != 1 {
		t.Fatalf("expected hovered index wrapped to 1, got %d/%v", idx, ok)
	}
	if timer := c.HoverLeave(); timer == nil || c.State() != StateRotating {
		t.Fatalf("expected rotation after leave")
	}
}

func TestTeardownCancelsTimerAndBlocksRestart(t *testing.T) {
	c, _ := newTestController()
	timer := c.Load(vehicles(5))
	c.HoverEnter(1)
	c.Teardown()
	c.Teardown()
	if !c.Closed() {
		t.Fatalf("expected closed")
	}
	if c.HoverLeave() != nil {
		t.Fatalf("expected no timer after teardown")
	}
	if c.Timer() != nil {
		t.Fatalf("expected timer cleared")
	}
	if c.Tick(timer.ID()) {
		t.Fatalf("expected tick rejected after teardown")
	}
}

func TestTeardownWhileRotatingUnblocksWaiter(t *testing.T) {
	c, _ := newTestController()
	timer := c.Load(vehicles(5))
	result := waitAsync(timer)
	c.Teardown()
	select {
	case fired := <-result:
		if fired {
			t.Fatalf("expected cancelled wait to report false")
		}
	case <-time.After(time.Second):
		t.Fatalf("waiter still blocked after teardown")
	}
}

func TestRotationBeginsAfterOnePeriodNotBefore(t *testing.T) {
	c, clock := newTestController()
	c.ShowPlaceholders()
	timer := c.Load(vehicles(5))
	result := waitAsync(timer)
	time.Sleep(10 * time.Millisecond)

	clock.Advance(Period - time.Millisecond)
	clock.BlockUntilReady()
	select {
	case <-result:
		t.Fatalf("timer fired before one full period")
	case <-time.After(20 * time.Millisecond):
	}

	clock.Advance(time.Millisecond)
	clock.BlockUntilReady()
	select {
	case fired := <-result:
		if !fired {
			t.Fatalf("expected timer to fire")
		}
	case <-time.After(time.Second):
		t.Fatalf("timer did not fire after one period")
	}
	if !c.Tick(timer.ID()) || c.Index() != 1 {
		t.Fatalf("expected first tick to move to index 1, got %d", c.Index())
	}
}

func TestIndexNotResetOnListReplacement(t *testing.T) {
	c, _ := newTestController()
	c.highlighted = 4
	c.ShowPlaceholders()
	c.Load(vehicles(3))
	if c.Index() != 1 {
		t.Fatalf("expected index wrapped to 1 rather than reset, got %d", c.Index())
	}
}

func TestRotationRepeatsAcrossConsecutivePeriods(t *testing.T) {
	c, clock := newTestController()
	timer := c.Load(vehicles(5))
	for i := 0; i < 3; i++ {
		c.Next()
	}
	for _, want := range []int{4, 0, 1} {
		result := waitAsync(timer)
		time.Sleep(10 * time.Millisecond)
		clock.Advance(Period)
		clock.BlockUntilReady()
		select {
		case fired := <-result:
			if !fired {
				t.Fatalf("expected timer to fire for index %d", want)
			}
		case <-time.After(time.Second):
			t.Fatalf("timer did not fire again before index %d", want)
		}
		if !c.Tick(timer.ID()) || c.Index() != want {
			t.Fatalf("expected tick to move to %d, got %d", want, c.Index())
		}
	}
	if c.Timer() != timer {
		t.Fatalf("expected the same handle across periods")
	}
}

func TestCancelDuringRearmedPeriodUnblocksWaiter(t *testing.T) {
	c, clock := newTestController()
	timer := c.Load(vehicles(2))
	result := waitAsync(timer)
	time.Sleep(10 * time.Millisecond)
	clock.Advance(Period)
	clock.BlockUntilReady()
	if !<-result || !c.Tick(timer.ID()) {
		t.Fatalf("expected first period to fire")
	}
	result = waitAsync(timer)
	c.HoverEnter(0)
	select {
	case fired := <-result:
		if fired {
			t.Fatalf("expected cancelled wait to report false")
		}
	case <-time.After(time.Second):
		t.Fatalf("waiter on rearmed timer still blocked after cancel")
	}
}
