package events

import "github.com/atomicstack/record-picker/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Exit(confirmed bool, id string) {
	logging.Trace("app.exit", map[string]interface{}{"confirmed": confirmed, "id": id})
}
