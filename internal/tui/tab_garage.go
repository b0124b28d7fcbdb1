package tui

import (
	"github.com/theirongolddev/automarket/internal/cli"
	"github.com/theirongolddev/automarket/internal/market"
	"github.com/theirongolddev/automarket/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderGarageTab(cw, height int) string {
	t := theme.Active
	garage := a.sess.Garage()
	ls := clampCursor(a.garage, garage.Size())

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)

	st := market.Stats(garage)
	header := labelStyle.Render(" Owned ") + valueStyle.Render(cli.FormatNumber(int64(st.Count))) +
		labelStyle.Render("  Value ") + valueStyle.Render(cli.FormatPrice(st.Total))

	listH := height - lipgloss.Height(header)
	return header + "\n" + renderListWithDetail("Garage", garage, ls, cw, listH)
}
