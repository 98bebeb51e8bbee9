package ui

import (
	"fmt"

	"github.com/atomicstack/record-picker/internal/backend"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForLoaderEvent(l *backend.Loader) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-l.Events()
		if !ok {
			return loaderDoneMsg{}
		}
		return loaderEventMsg{event: evt}
	}
}

type loaderEventMsg struct {
	event backend.Event
}

type loaderDoneMsg struct{}

func (m *Model) handleLoaderEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(loaderEventMsg)
	if !ok {
		return nil
	}
	m.applyLoaderEvent(eventMsg.event)
	if m.loader != nil {
		return waitForLoaderEvent(m.loader)
	}
	return nil
}

func (m *Model) handleLoaderDoneMsg(msg tea.Msg) tea.Cmd {
	m.loader = nil
	m.loading = false
	return nil
}

func (m *Model) applyLoaderEvent(evt backend.Event) {
	m.loading = false
	if evt.Err != nil {
		m.errMsg = fmt.Sprintf("failed to load records: %v", evt.Err)
		m.forceClearInfo()
		return
	}
	m.errMsg = ""
	m.level.UpdateRecords(evt.Records)
	m.syncViewport()
	if len(evt.Records) == 0 {
		m.setInfo("No records returned.")
	} else {
		m.clearInfo()
	}
}

// retryLoad asks the loader for another fetch after a failure.
func (m *Model) retryLoad() bool {
	if m.loader == nil || m.loading || m.errMsg == "" {
		return false
	}
	if !m.loader.Retry() {
		return false
	}
	m.loading = true
	m.errMsg = ""
	m.forceClearInfo()
	return true
}
