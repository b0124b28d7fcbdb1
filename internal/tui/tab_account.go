package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/automarket/internal/cli"
	"github.com/theirongolddev/automarket/internal/market"
	"github.com/theirongolddev/automarket/internal/tui/components"
	"github.com/theirongolddev/automarket/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

func (a App) updateAccountKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "i":
		bal := a.sess.IncreaseBalance()
		a.setFlash("Balance increased to " + cli.FormatMoney(bal))
	case "o":
		return a.startSetBalance()
	}
	return a, nil
}

func (a App) renderAccountTab(cw int) string {
	t := theme.Active
	acct := a.sess.Account()
	garage := market.Stats(a.sess.Garage())

	var b strings.Builder
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Balance", Value: cli.FormatMoney(acct.Balance())},
		{Label: "Cars Owned", Value: cli.FormatNumber(int64(garage.Count))},
		{Label: "Garage Value", Value: cli.FormatPrice(garage.Total)},
		{Label: "Increment", Value: cli.FormatMoney(acct.Increment()), Note: "[i] to add"},
	}, cw))
	b.WriteString("\n")

	// Market affordability against the active market.
	view := a.sess.ActiveMarket()
	st := market.Stats(view)
	affordable := 0
	for _, car := range view.All() {
		if acct.Balance().GreaterThanOrEqual(decimal.NewFromInt(car.Price)) {
			affordable++
		}
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	row := func(label, value string) string {
		return labelStyle.Render(fmt.Sprintf("%-16s", label)) + valueStyle.Render(value)
	}

	var body strings.Builder
	body.WriteString(row("Affordable", fmt.Sprintf("%d of %d cars", affordable, st.Count)))
	if st.Count > 0 {
		body.WriteString("\n" + row("Cheapest", cli.FormatPrice(st.Lowest)))
		body.WriteString("\n" + row("Median", cli.FormatPrice(st.Median)))
		body.WriteString("\n" + row("Most expensive", cli.FormatPrice(st.Highest)))
		body.WriteString("\n" + row("Model years", fmt.Sprintf("%d-%d", st.OldestYear, st.NewestYear)))
	}
	b.WriteString(components.ContentCard("Active Market", body.String(), cw))
	return b.String()
}
