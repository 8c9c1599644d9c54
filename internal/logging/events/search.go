package events

import "github.com/softwatch/astroreview/internal/logging"

type SearchTracer struct{}

var Search = SearchTracer{}

func (SearchTracer) Query(screen, query string) {
	logging.Trace("search.query", map[string]interface{}{"screen": screen, "query": query})
}

func (SearchTracer) Jump(screen string, index int) {
	logging.Trace("search.jump", map[string]interface{}{"screen": screen, "index": index})
}

func (SearchTracer) Miss(screen, query string) {
	logging.Trace("search.miss", map[string]interface{}{"screen": screen, "query": query})
}
