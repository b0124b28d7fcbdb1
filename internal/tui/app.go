// Package tui provides the interactive Bubble Tea interface for automarket.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/automarket/internal/cli"
	"github.com/theirongolddev/automarket/internal/session"
	"github.com/theirongolddev/automarket/internal/tui/components"
	"github.com/theirongolddev/automarket/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	tabMarket = iota
	tabGarage
	tabAccount
	tabLog
)

const (
	minTerminalWidth = 60
	maxContentWidth  = 160
	detailMinWidth   = 110 // side-by-side list + detail above this width
	minContentHeight = 5
)

type mode int

const (
	modeBrowse mode = iota
	modeFilter
	modeSetBalance
	modeListing
	modeConfirmQuit
)

// listState is the cursor of a car list and whether the selected car's
// details are shown.
type listState struct {
	cursor int
	detail bool
}

// App is the root Bubble Tea model.
type App struct {
	sess  *session.Session
	store session.Storage // nil disables saving

	width     int
	height    int
	activeTab int
	showHelp  bool
	mode      mode

	market    listState
	garage    listState
	logOffset int

	input       textinput.Model
	listingForm *huh.Form
	listingVals *listingValues

	flash    string
	flashErr bool
}

// NewApp creates the TUI over an already loaded session.
func NewApp(sess *session.Session, store session.Storage) App {
	return App{sess: sess, store: store}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.SetWindowTitle("automarket")
}

func (a *App) setFlash(msg string) {
	a.flash = msg
	a.flashErr = false
}

func (a *App) setError(err error) {
	a.flash = err.Error()
	a.flashErr = true
}

func (a *App) save() bool {
	if a.store == nil {
		a.setError(errors.New("no storage configured, nothing saved"))
		return false
	}
	if err := a.sess.Save(a.store); err != nil {
		a.setError(err)
		return false
	}
	a.setFlash("Saved")
	return true
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.listingForm != nil {
			a.listingForm = a.listingForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a.updateKey(msg)
	}

	// Cursor blinks and other internal messages.
	switch a.mode {
	case modeListing:
		return a.updateListingForm(msg)
	case modeFilter, modeSetBalance:
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch a.mode {
	case modeListing:
		return a.updateListingForm(msg)
	case modeFilter, modeSetBalance:
		return a.updateInput(msg)
	case modeConfirmQuit:
		switch key {
		case "y", "Y":
			if a.save() {
				return a, tea.Quit
			}
			a.mode = modeBrowse
			return a, nil
		case "n", "N":
			return a, tea.Quit
		}
		a.mode = modeBrowse
		return a, nil
	}

	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	switch key {
	case "q":
		if a.store != nil && a.sess.Dirty() {
			a.mode = modeConfirmQuit
			return a, nil
		}
		return a, tea.Quit
	case "w":
		a.save()
		return a, nil
	case "left", "shift+tab":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		return a, nil
	case "right", "tab":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil
	}

	if len(msg.Runes) == 1 {
		if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
			a.activeTab = idx
			return a, nil
		}
	}

	switch a.activeTab {
	case tabMarket:
		return a.updateMarketKey(key)
	case tabGarage:
		a.garage = moveCursor(a.garage, key, a.sess.Garage().Size())
	case tabAccount:
		return a.updateAccountKey(key)
	case tabLog:
		switch key {
		case "j", "down":
			a.logOffset = min(a.logOffset+1, a.maxLogOffset())
		case "k", "up":
			a.logOffset = max(a.logOffset-1, 0)
		}
	}
	return a, nil
}

// moveCursor applies list navigation keys.
func moveCursor(ls listState, key string, size int) listState {
	switch key {
	case "j", "down":
		if ls.cursor < size-1 {
			ls.cursor++
		}
	case "k", "up":
		if ls.cursor > 0 {
			ls.cursor--
		}
	case "home":
		ls.cursor = 0
	case "end", "G":
		ls.cursor = max(size-1, 0)
	case "enter":
		ls.detail = !ls.detail
	}
	return ls
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

// contentHeight is the space left for the active tab between header and footer.
func (a App) contentHeight(header, footer string) int {
	return max(a.height-lipgloss.Height(header)-lipgloss.Height(footer), minContentHeight)
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols)\n\n  automarket needs at least %d columns.\n",
			a.width, minTerminalWidth)
	}
	if a.mode == modeListing && a.listingForm != nil {
		return a.listingForm.View()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()

	header := components.RenderTabBar(a.activeTab, w)
	footer := a.viewFooter(w)
	contentH := a.contentHeight(header, footer)

	var content string
	switch a.activeTab {
	case tabMarket:
		content = a.renderMarketTab(cw, contentH)
	case tabGarage:
		content = a.renderGarageTab(cw, contentH)
	case tabAccount:
		content = a.renderAccountTab(cw)
	case tabLog:
		content = a.renderLogTab(cw, contentH)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

// viewFooter renders the prompt or flash line above the status bar.
func (a App) viewFooter(w int) string {
	t := theme.Active
	lineStyle := lipgloss.NewStyle().Width(w).Background(t.Background)

	var line string
	switch a.mode {
	case modeFilter:
		line = " Filter: " + a.input.View()
	case modeSetBalance:
		line = " Balance: " + a.input.View()
	case modeConfirmQuit:
		line = lipgloss.NewStyle().Foreground(t.Yellow).Render(" Unsaved changes. Save before quitting? [y/n/esc]")
	default:
		if a.flash != "" {
			color := t.Green
			if a.flashErr {
				color = t.Red
			}
			line = lipgloss.NewStyle().Foreground(color).Render(" " + a.flash)
		}
	}

	info := cli.FormatMoney(a.sess.Account().Balance())
	if a.sess.Dirty() {
		info += " · unsaved"
	}
	status := components.RenderStatusBar(w, "[?]help  [w]save  [q]uit", info)
	return lineStyle.Render(line) + "\n" + status
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	sections := []struct {
		title    string
		bindings []struct{ key, desc string }
	}{
		{"Navigation", []struct{ key, desc string }{
			{"m g a l", "Jump to tab"},
			{"← →", "Previous / Next tab"},
			{"j k", "Move selection"},
			{"Enter", "Toggle car details"},
		}},
		{"Market", []struct{ key, desc string }{
			{"b", "Buy selected car"},
			{"f", "Filter (e.g. price 50000, speed >8)"},
			{"r", "Reset filter"},
			{"u", "Switch default / user market"},
			{"s", "List a car for sale"},
		}},
		{"Account", []struct{ key, desc string }{
			{"i", "Add to balance"},
			{"o", "Set balance"},
		}},
		{"Session", []struct{ key, desc string }{
			{"w", "Save"},
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, s := range sections {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(s.title))
		b.WriteString("\n")
		for _, bind := range s.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-8s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
