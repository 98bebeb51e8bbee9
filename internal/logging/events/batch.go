package events

import "github.com/atomicstack/record-picker/internal/logging"

type BatchTracer struct{}

var Batch = BatchTracer{}

func (BatchTracer) Keyword(keyword string, filtered, visible int) {
	logging.Trace("batch.keyword", map[string]interface{}{
		"keyword":  keyword,
		"filtered": filtered,
		"visible":  visible,
	})
}

func (BatchTracer) Reveal(keyword string, visible, filtered int) {
	logging.Trace("batch.reveal", map[string]interface{}{
		"keyword":  keyword,
		"visible":  visible,
		"filtered": filtered,
	})
}

func (BatchTracer) Reopen(keyword string, minimum, visible int) {
	logging.Trace("batch.reopen", map[string]interface{}{
		"keyword": keyword,
		"minimum": minimum,
		"visible": visible,
	})
}

func (BatchTracer) Records(total, visible int) {
	logging.Trace("batch.records", map[string]interface{}{"total": total, "visible": visible})
}

func (BatchTracer) Select(id, name string) {
	logging.Trace("batch.select", map[string]interface{}{"id": id, "name": name})
}
