package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/theirongolddev/automarket/internal/model"
	"github.com/theirongolddev/automarket/internal/tui/components"
	"github.com/theirongolddev/automarket/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderLogTab(cw, height int) string {
	t := theme.Active
	events := slices.Collect(a.sess.Events())

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	seqStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	timeStyle := lipgloss.NewStyle().Foreground(t.Cyan)
	descStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	if len(events) == 0 {
		return components.ContentCard("Session Log", mutedStyle.Render("Nothing has happened yet"), cw)
	}

	// Newest first.
	slices.Reverse(events)

	rows := logRows(height)
	offset := min(a.logOffset, max(len(events)-rows, 0))
	end := min(offset+rows, len(events))
	descW := max(components.CardInnerWidth(cw)-16, 10)

	var b strings.Builder
	for i, ev := range events[offset:end] {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(renderEvent(ev, descW, seqStyle, timeStyle, descStyle))
	}

	title := fmt.Sprintf("Session Log (%d events)", len(events))
	return components.ContentCard(title, b.String(), cw)
}

// logRows is how many events fit in the log card.
func logRows(contentH int) int {
	return max(contentH-3, 1)
}

// maxLogOffset is the furthest the log can scroll with the current window.
func (a App) maxLogOffset() int {
	n := 0
	for range a.sess.Events() {
		n++
	}
	contentH := a.contentHeight(components.RenderTabBar(a.activeTab, a.width), a.viewFooter(a.width))
	return max(n-logRows(contentH), 0)
}

func renderEvent(ev model.Event, descW int, seqStyle, timeStyle, descStyle lipgloss.Style) string {
	return seqStyle.Render(fmt.Sprintf("%4d ", ev.Seq)) +
		timeStyle.Render(ev.At.Format("15:04:05")) + "  " +
		descStyle.Render(truncStr(ev.Description, descW))
}
