package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/automarket/internal/cli"
	"github.com/theirongolddev/automarket/internal/market"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 64
	ti.Width = 40
	ti.Focus()
	return ti
}

// parseFilterInput reads "FIELD VALUE". A leading ">" on the value selects
// Above; "<" or nothing selects Below.
func parseFilterInput(s string) (market.Predicate, error) {
	s = strings.TrimSpace(s)
	fieldName, raw, ok := strings.Cut(s, " ")
	if !ok {
		if i := strings.IndexAny(s, "<>"); i > 0 {
			fieldName, raw = s[:i], s[i:]
		} else {
			return market.Predicate{}, fmt.Errorf("type a field and a value, e.g. price 50000")
		}
	}

	field, err := market.ParseField(fieldName)
	if err != nil {
		return market.Predicate{}, err
	}

	raw = strings.TrimSpace(raw)
	cmp := market.Below
	switch {
	case strings.HasPrefix(raw, ">"):
		cmp = market.Above
		raw = raw[1:]
	case strings.HasPrefix(raw, "<"):
		raw = raw[1:]
	}

	threshold, err := market.ParseThreshold(field, raw)
	if err != nil {
		return market.Predicate{}, err
	}
	return market.NewPredicate(field, cmp, threshold)
}

func (a App) startFilter() (tea.Model, tea.Cmd) {
	a.input = newInput("price 50000 · year 2000 · speed >8 · drive AWD")
	a.mode = modeFilter
	return a, textinput.Blink
}

func (a App) startSetBalance() (tea.Model, tea.Cmd) {
	a.input = newInput("new balance, e.g. 250000")
	a.mode = modeSetBalance
	return a, textinput.Blink
}

func (a App) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = modeBrowse
		return a, nil
	case "enter":
		a.submitInput()
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) submitInput() {
	value := a.input.Value()
	switch a.mode {
	case modeFilter:
		p, err := parseFilterInput(value)
		if err != nil {
			a.setError(err)
			break
		}
		view := a.sess.Filter(p)
		a.market = listState{}
		a.setFlash(fmt.Sprintf("%s cars match %s", cli.FormatNumber(int64(view.Size())), p))
	case modeSetBalance:
		amount, err := cli.ParseMoney(value)
		if err != nil {
			a.setError(err)
			break
		}
		if err := a.sess.SetBalance(amount); err != nil {
			a.setError(err)
			break
		}
		a.setFlash("Balance set to " + cli.FormatMoney(amount))
	}
	a.mode = modeBrowse
}
