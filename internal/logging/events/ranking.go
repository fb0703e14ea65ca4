package events

import "github.com/atomicstack/ranked-carousel/internal/logging"

type RankingTracer struct{}

var Ranking = RankingTracer{}

func (RankingTracer) Request(source string) {
	logging.Trace("ranking.request", map[string]interface{}{"source": source})
}

func (RankingTracer) Success(count int) {
	logging.Trace("ranking.success", map[string]interface{}{"count": count})
}

func (RankingTracer) Empty() {
	logging.Trace("ranking.empty", nil)
}

func (RankingTracer) Failure(err error) {
	if err == nil {
		return
	}
	logging.Trace("ranking.failure", map[string]interface{}{"error": err.Error()})
}
