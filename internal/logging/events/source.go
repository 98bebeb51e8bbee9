package events

import "github.com/atomicstack/record-picker/internal/logging"

type SourceTracer struct{}

var Source = SourceTracer{}

func (SourceTracer) Fetch(url string, attempt int) {
	logging.Trace("source.fetch", map[string]interface{}{"url": url, "attempt": attempt})
}

func (SourceTracer) Loaded(url string, count int) {
	logging.Trace("source.loaded", map[string]interface{}{"url": url, "count": count})
}

func (SourceTracer) Error(url string, err error) {
	if err == nil {
		return
	}
	logging.Trace("source.error", map[string]interface{}{"url": url, "error": err.Error()})
}

func (SourceTracer) Transport(level, msg string, keysAndValues []interface{}) {
	logging.Trace("source.transport", map[string]interface{}{
		"level": level,
		"msg":   msg,
		"kv":    keysAndValues,
	})
}
