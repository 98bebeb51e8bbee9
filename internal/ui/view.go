package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

const (
	openFooterHint   = "↑/↓ move  enter select  esc close  ctrl+u clear  ctrl+c quit"
	closedFooterHint = "enter confirm  o open  esc quit"
	retryHint        = " (ctrl+r to retry)"
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text already carries ANSI escapes
}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.open {
		return m.viewClosed()
	}
	return m.viewOpen()
}

func (m *Model) viewClosed() string {
	lines := []styledLine{m.headerLine()}
	if sel, ok := m.level.Selected(); ok {
		value := styles.Value.Render(sel.Name)
		lines = append(lines, styledLine{text: "Selected: " + value, raw: true})
	} else {
		lines = append(lines, styledLine{text: "(nothing selected)", style: styles.Placeholder})
	}
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if status := m.statusLine(); status.text != "" {
		lines = append(lines, styledLine{}, status)
	}
	lines = append(lines, styledLine{})
	lines = append(lines, styledLine{text: closedFooterHint, style: styles.Footer})
	lines = limitHeight(lines, m.height, m.width)
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

func (m *Model) viewOpen() string {
	lines := make([]styledLine, 0, 16)
	lines = append(lines, m.headerLine())
	current := m.level
	m.syncViewport()
	switch {
	case len(current.Items) == 0 && m.loading:
		lines = append(lines, styledLine{text: "Loading records…", style: styles.Loading})
	case len(current.Items) == 0:
		msg := "(no records)"
		if current.Filter != "" {
			msg = fmt.Sprintf("No matches for %q", current.Filter)
		}
		lines = append(lines, styledLine{text: msg, style: styles.Info})
	default:
		start := 0
		displayItems := current.Items
		if maxItems := m.maxVisibleItems(); maxItems > 0 && len(displayItems) > maxItems {
			start = current.ViewportOffset
			if start < 0 {
				start = 0
			}
			if start+maxItems > len(displayItems) {
				start = len(displayItems) - maxItems
				if start < 0 {
					start = 0
				}
				current.ViewportOffset = start
			}
			displayItems = displayItems[start : start+maxItems]
		}
		for i, item := range displayItems {
			lines = append(lines, m.buildItemLine(item.ID, item.Name, start+i, m.width))
		}
		if m.snapshot.HasMore {
			lines = append(lines, styledLine{text: "  ↓ more", style: styles.More})
		}
	}
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: openFooterHint, style: styles.Footer})
	}
	// Reserve two rows for the bottom bar (status + prompt).
	lines = limitHeight(lines, m.height-2, m.width)
	lines = applyWidth(lines, m.width)

	bottomLines := []styledLine{
		m.statusLine(),
		{text: m.filterPrompt(), raw: true},
	}
	bottomLines = applyWidth(bottomLines, m.width)
	lines = append(lines, bottomLines...)
	return renderLines(lines)
}

// headerLine renders the title followed by a dimmed "shown/matching" counter.
func (m *Model) headerLine() styledLine {
	title := styles.Header.Render(m.title)
	counter := m.counter()
	if counter == "" {
		return styledLine{text: title, raw: true}
	}
	return styledLine{text: title + styles.Counter.Render(headerSep+counter), raw: true}
}

func (m *Model) counter() string {
	snap := m.snapshot
	if snap.Total == 0 {
		return ""
	}
	shown := snap.VisibleCount
	if shown > snap.Filtered {
		shown = snap.Filtered
	}
	counter := fmt.Sprintf("%d/%d", shown, snap.Filtered)
	if snap.Filtered != snap.Total {
		counter += fmt.Sprintf(" of %d", snap.Total)
	}
	return counter
}

func (m *Model) statusLine() styledLine {
	switch {
	case m.errMsg != "":
		text := "Error: " + m.errMsg
		if m.loader != nil {
			text += retryHint
		}
		return styledLine{text: text, style: styles.Error}
	case m.loading && len(m.level.Items) > 0:
		return styledLine{text: "Loading…", style: styles.Loading}
	}
	return styledLine{}
}

// buildItemLine constructs a single styledLine for a record row. When width
// is positive the text is padded so the cursor background spans the row.
func (m *Model) buildItemLine(id, name string, idx int, width int) styledLine {
	indicator := "▌"
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	mark := "  "
	if m.level.IsSelected(id) {
		mark = "✓ "
	}
	if idx == m.level.Cursor {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	fullText := indicator + " " + mark + name
	if width > 0 {
		if pad := width - len([]rune(fullText)); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1,
	}
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncViewport()
	return nil
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 3 // header + status + filter prompt
	if m.snapshot.HasMore {
		used++
	}
	if info := m.currentInfo(); info != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(infoLifetime)
}

func (m *Model) clearInfo() {
	if m.infoMsg == "" {
		return
	}
	if !m.infoExpire.IsZero() && time.Now().Before(m.infoExpire) {
		return
	}
	m.forceClearInfo()
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.forceClearInfo()
	}
	return m.infoMsg
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		if line.raw {
			if ansi.StringWidth(line.text) > width {
				line.text = truncate.StringWithTail(line.text, uint(width-1), "…")
			}
		} else {
			line.text = truncateText(line.text, width)
		}
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
