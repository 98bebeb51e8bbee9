package events

import "github.com/atomicstack/record-picker/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

var (
	UI     = UITracer{}
	Filter = FilterTracer{}
)

func (UITracer) Open(keyword string, visible int) {
	logging.Trace("view.open", map[string]interface{}{"keyword": keyword, "visible": visible})
}

func (UITracer) Close(reason string) {
	logging.Trace("view.close", map[string]interface{}{"reason": reason})
}

func (UITracer) Cursor(cursor, visible int) {
	logging.Trace("view.cursor", map[string]interface{}{"cursor": cursor, "visible": visible})
}

func (UITracer) Choose(id, name string) {
	logging.Trace("view.choose", map[string]interface{}{"id": id, "name": name})
}

func (UITracer) Confirm(id, name string) {
	logging.Trace("view.confirm", map[string]interface{}{"id": id, "name": name})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}

func (FilterTracer) WordBackspace(filter string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"filter": filter})
}

func (FilterTracer) Cursor(pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"cursor": pos})
}

func (FilterTracer) CursorWord(pos int) {
	logging.Trace("filter.cursor-word", map[string]interface{}{"cursor": pos})
}

func (FilterTracer) Append(filter string) {
	logging.Trace("filter.append", map[string]interface{}{"filter": filter})
}

func (FilterTracer) Backspace(filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"filter": filter})
}
