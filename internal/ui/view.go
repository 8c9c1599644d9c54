package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/softwatch/astroreview/internal/review/nav"
)

const transcriptPaneLines = 8

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
}

// View implements tea.Model. The terminal rendering mirrors what the sink
// speaks so sighted testers can follow along; the speech transcript pane is
// the ground truth.
func (m *Model) View() string {
	lines := make([]styledLine, 0, 24)
	lines = append(lines, styledLine{text: m.header(), style: styles.Header})
	lines = append(lines, styledLine{text: m.modeLine(), style: styles.Mode})
	lines = append(lines, styledLine{})
	lines = append(lines, m.bodyLines()...)

	if m.showTranscript {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: "Transcript", style: styles.TranscriptTitle})
		tail := m.transcript.Tail(transcriptPaneLines)
		for i, u := range tail {
			style := styles.TranscriptBody
			if i == len(tail)-1 {
				style = styles.TranscriptLatest
			}
			lines = append(lines, styledLine{text: u.Text, style: style})
		}
	}

	if warn, msg := m.hasBackendIssue(); warn {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: "Backend: " + msg, style: styles.Error})
	}

	lines = limitHeight(lines, m.height, m.width)
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

func (m *Model) header() string {
	switch m.mode {
	case ModeGrid:
		if m.grid != nil {
			return fmt.Sprintf("%s→%s grid", m.gridScreen, m.grid.Title)
		}
		return "grid"
	case ModeSlot:
		return "screen cursor"
	default:
		return m.nav.Breadcrumb()
	}
}

func (m *Model) modeLine() string {
	h := m.reviewContext()
	speed := fmt.Sprintf("speed %d", h.Speed)
	if h.Paused {
		speed = "paused"
	}
	switch m.mode {
	case ModeSearch:
		return "search  " + speed
	case ModeGrid:
		return "grid selection  " + speed
	case ModeSlot:
		return "screen cursor  " + speed
	default:
		return "review  " + speed
	}
}

func (m *Model) bodyLines() []styledLine {
	switch m.mode {
	case ModeSearch:
		return []styledLine{{text: m.search.View(), style: styles.SearchPrompt}}
	case ModeGrid:
		return m.gridLines()
	case ModeSlot:
		return []styledLine{{text: m.slot.Position(), style: styles.Item}}
	default:
		return m.reviewLines()
	}
}

func (m *Model) gridLines() []styledLine {
	if m.grid == nil || m.grid.Empty() {
		return []styledLine{{text: "(no priorities)", style: styles.Info}}
	}
	rows := m.grid.Rows()
	lines := make([]styledLine, 0, len(rows))
	for i, row := range rows {
		lines = append(lines, m.buildItemLine(
			fmt.Sprintf("%s  %d/%d", row.Name, row.Weight, m.grid.MaxWeight),
			i, m.grid.Row()))
	}
	return lines
}

// reviewLines renders the list the review cursor is walking.
func (m *Model) reviewLines() []styledLine {
	scr := m.nav.CurrentScreen()
	switch m.nav.Level() {
	case nav.LevelScreens:
		all := m.nav.Screens()
		lines := make([]styledLine, 0, len(all))
		for i, s := range all {
			lines = append(lines, m.buildItemLine(s.Name(), i, m.nav.ScreenIndex()))
		}
		return lines
	case nav.LevelItems:
		if scr == nil || scr.ItemCount() == 0 {
			return []styledLine{{text: "(no entries)", style: styles.Info}}
		}
		lines := make([]styledLine, 0, scr.ItemCount())
		for i := 0; i < scr.ItemCount(); i++ {
			lines = append(lines, m.buildItemLine(scr.ItemSummary(i), i, m.nav.ItemIndex()))
		}
		return lines
	default:
		secs := m.nav.CurrentSections()
		if len(secs) == 0 {
			return []styledLine{{text: "(no sections)", style: styles.Info}}
		}
		lines := make([]styledLine, 0, 16)
		for si, sec := range secs {
			lines = append(lines, m.buildItemLine(sec.Announce(), si, m.nav.SectionIndex()))
			if si != m.nav.SectionIndex() || m.nav.Level() < nav.LevelEntries {
				continue
			}
			for ei, it := range sec.Items {
				marker := "  "
				style := styles.Item
				if ei == m.nav.EntryIndex() {
					marker = "  ▸ "
					style = styles.SelectedItem
				}
				lines = append(lines, styledLine{text: marker + it.Line(), style: style})
			}
		}
		return lines
	}
}

// buildItemLine constructs a single cursor-marked row.
func (m *Model) buildItemLine(label string, idx, cursor int) styledLine {
	indicator := "▌"
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if idx == cursor {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	return styledLine{
		text:          indicator + " " + label,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1,
	}
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
		result[i] = styledLine{
			text:          truncateText(line.text, width),
			style:         line.style,
			prefixStyle:   line.prefixStyle,
			highlightFrom: line.highlightFrom,
		}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
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
	if lipgloss.Width(text) <= width {
		return text
	}
	return truncate.StringWithTail(text, uint(width-1), "…")
}
