package events

import "github.com/atomicstack/ranked-carousel/internal/logging"

type CarouselTracer struct{}

var Carousel = CarouselTracer{}

func (CarouselTracer) Transition(from, to string) {
	logging.Trace("carousel.transition", map[string]interface{}{"from": from, "to": to})
}

func (CarouselTracer) TimerStart(id uint64) {
	logging.Trace("carousel.timer.start", map[string]interface{}{"timer": id})
}

func (CarouselTracer) TimerStop(id uint64) {
	logging.Trace("carousel.timer.stop", map[string]interface{}{"timer": id})
}

func (CarouselTracer) Tick(id uint64, index int) {
	logging.Trace("carousel.tick", map[string]interface{}{"timer": id, "index": index})
}

func (CarouselTracer) StaleTick(id uint64) {
	logging.Trace("carousel.tick.stale", map[string]interface{}{"timer": id})
}

func (CarouselTracer) Navigate(source string, index int) {
	logging.Trace("carousel.navigate", map[string]interface{}{"source": source, "index": index})
}

func (CarouselTracer) Hover(index int) {
	logging.Trace("carousel.hover.enter", map[string]interface{}{"index": index})
}

func (CarouselTracer) Leave() {
	logging.Trace("carousel.hover.leave", nil)
}

func (CarouselTracer) Ignored(op, state string) {
	logging.Trace("carousel.ignored", map[string]interface{}{"op": op, "state": state})
}

func (CarouselTracer) Teardown(state string) {
	logging.Trace("carousel.teardown", map[string]interface{}{"state": state})
}
