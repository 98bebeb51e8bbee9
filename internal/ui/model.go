package ui

import (
	"reflect"
	"strings"
	"time"

	"github.com/atomicstack/record-picker/internal/backend"
	"github.com/atomicstack/record-picker/internal/batch"
	"github.com/atomicstack/record-picker/internal/record"
	"github.com/atomicstack/record-picker/internal/theme"
	uistate "github.com/atomicstack/record-picker/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

type level = uistate.Level

const (
	defaultTitle   = "records"
	headerSep      = " · "
	levelID        = "records"
	infoLifetime   = 5 * time.Second
	mouseWheelStep = 3
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a new Model.
type Options struct {
	Title           string
	Width           int
	Height          int
	ShowFooter      bool
	RevealThreshold int
	Controller      *batch.Controller
}

// Model implements the Bubble Tea model for the record picker.
type Model struct {
	level       *level
	controller  *batch.Controller
	snapshot    batch.Snapshot
	unsubscribe func()

	open        bool
	loading     bool
	confirmed   bool
	errMsg      string
	infoMsg     string
	infoExpire  time.Time
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	title       string

	loader *backend.Loader

	filterCursor      cursor.Model
	filterCursorDirty bool

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the picker. The list starts open; records arrive through
// loader, or stay empty when loader is nil.
func NewModel(opts Options, loader *backend.Loader) *Model {
	ctrl := opts.Controller
	if ctrl == nil {
		ctrl = batch.New(batch.DefaultSize)
	}
	title := strings.TrimSpace(opts.Title)
	if title == "" {
		title = defaultTitle
	}
	lvl := uistate.NewLevel(levelID, title, ctrl)
	if opts.RevealThreshold > 0 {
		lvl.RevealThreshold = opts.RevealThreshold
	}
	m := &Model{
		level:      lvl,
		controller: ctrl,
		open:       true,
		loading:    loader != nil,
		loader:     loader,
		showFooter: opts.ShowFooter,
		title:      title,
	}
	m.snapshot = ctrl.Snapshot()
	m.unsubscribe = ctrl.Subscribe(func(s batch.Snapshot) {
		m.snapshot = s
	})
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.loader != nil {
		cmds = append(cmds, waitForLoaderEvent(m.loader))
	}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

// Result returns the record the user confirmed, if any.
func (m *Model) Result() (record.Record, bool) {
	if !m.confirmed {
		return record.Record{}, false
	}
	return m.controller.Selected()
}

// Close detaches the model from its controller.
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(loaderEventMsg{}):    m.handleLoaderEventMsg,
		reflect.TypeOf(loaderDoneMsg{}):     m.handleLoaderDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}
