package ui

import (
	"fmt"

	"github.com/atomicstack/record-picker/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch keyMsg.String() {
	case "ctrl+c":
		return tea.Quit
	case "ctrl+r":
		if m.retryLoad() {
			m.setInfo("Retrying…")
		}
		return nil
	}
	if !m.open {
		return m.handleClosedKey(keyMsg)
	}
	if m.handleTextInput(keyMsg) {
		return nil
	}
	switch keyMsg.String() {
	case "esc":
		m.closeView("esc")
	case "enter":
		m.chooseCurrent()
	case "up":
		m.moveCursor(m.level.MoveCursorUp)
	case "down":
		m.moveCursor(m.level.MoveCursorDown)
	case "pgup":
		m.moveCursor(func() bool { return m.level.MoveCursorPageUp(m.maxVisibleItems()) })
	case "pgdown":
		m.moveCursor(func() bool { return m.level.MoveCursorPageDown(m.maxVisibleItems()) })
	case "home":
		m.moveCursor(m.level.MoveCursorHome)
	case "end":
		m.moveCursor(m.level.MoveCursorEnd)
	}
	return nil
}

func (m *Model) handleClosedKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "q":
		return tea.Quit
	case "enter":
		if sel, ok := m.level.Selected(); ok {
			m.confirmed = true
			events.UI.Confirm(sel.ID, sel.Name)
			return tea.Quit
		}
		m.openView()
	case "down", " ", "o":
		m.openView()
	}
	return nil
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok || !m.open {
		return nil
	}
	switch ev.Button {
	case tea.MouseButtonWheelUp:
		for i := 0; i < mouseWheelStep; i++ {
			if m.level.Cursor == 0 {
				break
			}
			m.level.Cursor--
		}
		m.syncViewport()
	case tea.MouseButtonWheelDown:
		for i := 0; i < mouseWheelStep; i++ {
			if m.level.Cursor >= len(m.level.Items)-1 && !m.level.Reveal() {
				break
			}
			m.level.Cursor++
		}
		m.afterCursorMove()
	}
	return nil
}

// openView is the "view reopened" event: the window resets so the selection
// is visible again.
func (m *Model) openView() {
	m.open = true
	m.level.Reopen()
	m.syncViewport()
	m.filterCursorDirty = true
	events.UI.Open(m.level.Filter, len(m.level.Items))
}

func (m *Model) closeView(reason string) {
	m.open = false
	events.UI.Close(reason)
}

func (m *Model) chooseCurrent() {
	item, ok := m.level.Choose()
	if !ok {
		return
	}
	events.UI.Choose(item.ID, item.Name)
	m.closeView("choose")
	m.setInfo(fmt.Sprintf("Selected %s", item.Name))
}

func (m *Model) moveCursor(move func() bool) {
	if move() {
		m.afterCursorMove()
		return
	}
	m.syncViewport()
}

// afterCursorMove is the "user scrolled near the end" hook.
func (m *Model) afterCursorMove() {
	m.level.RevealIfNearEnd()
	events.UI.Cursor(m.level.Cursor, len(m.level.Items))
	m.syncViewport()
}

func (m *Model) syncViewport() {
	m.level.EnsureCursorVisible(m.maxVisibleItems())
}
