package tui

import (
	"fmt"

	"github.com/theirongolddev/automarket/internal/cli"
	"github.com/theirongolddev/automarket/internal/market"
	"github.com/theirongolddev/automarket/internal/session"
	"github.com/theirongolddev/automarket/internal/tui/components"
	"github.com/theirongolddev/automarket/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (a App) updateMarketKey(key string) (tea.Model, tea.Cmd) {
	view := a.sess.ActiveMarket()

	switch key {
	case "b":
		a.market = clampCursor(a.market, view.Size())
		res, err := a.sess.Buy(a.market.cursor)
		if err != nil {
			a.setError(err)
			return a, nil
		}
		a.setFlash(fmt.Sprintf("Bought %s, balance %s", res.Car.Title(), cli.FormatMoney(res.Balance)))
		return a, nil
	case "f":
		return a.startFilter()
	case "r":
		if a.sess.FilterActive() {
			a.sess.ResetFilter()
			a.market = listState{}
			a.setFlash("Filter cleared")
		}
		return a, nil
	case "u":
		next := session.SourceUser
		if a.sess.Source() == session.SourceUser {
			next = session.SourceDefault
		}
		a.sess.UseMarket(next)
		a.market = listState{}
		a.setFlash(fmt.Sprintf("Browsing the %s market", next))
		return a, nil
	case "s":
		return a.startListing()
	}

	a.market = moveCursor(clampCursor(a.market, view.Size()), key, view.Size())
	return a, nil
}

func (a App) renderMarketTab(cw, height int) string {
	t := theme.Active
	view := a.sess.ActiveMarket()
	ls := clampCursor(a.market, view.Size())

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	filterStyle := lipgloss.NewStyle().Foreground(t.Yellow)

	header := labelStyle.Render(" Market ") + valueStyle.Render(a.sess.Source().String()) +
		labelStyle.Render("  Cars ") + valueStyle.Render(cli.FormatNumber(int64(view.Size())))
	if p, ok := a.sess.Predicate(); ok {
		header += labelStyle.Render("  Filter ") + filterStyle.Render(p.String())
	}
	if view.Size() > 1 {
		header += "  " + components.Sparkline(market.Prices(view), t.Green)
	}

	title := "Default Market"
	if a.sess.Source() == session.SourceUser {
		title = "User Market"
	}
	if a.sess.FilterActive() {
		title += " (filtered)"
	}

	listH := height - lipgloss.Height(header)
	return header + "\n" + renderListWithDetail(title, view, ls, cw, listH)
}
