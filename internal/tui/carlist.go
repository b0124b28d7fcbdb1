package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/automarket/internal/cli"
	"github.com/theirongolddev/automarket/internal/model"
	"github.com/theirongolddev/automarket/internal/tui/components"
	"github.com/theirongolddev/automarket/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// clampCursor keeps the cursor inside a list of size entries.
func clampCursor(ls listState, size int) listState {
	if ls.cursor >= size {
		ls.cursor = max(size-1, 0)
	}
	return ls
}

// visibleWindow returns the [start, end) range of rows to draw so that the
// cursor stays on screen.
func visibleWindow(cursor, size, rows int) (int, int) {
	if rows <= 0 || size == 0 {
		return 0, 0
	}
	start := 0
	if cursor >= rows {
		start = cursor - rows + 1
	}
	return start, min(start+rows, size)
}

// renderCarList draws a scrollable car table inside a content card.
func renderCarList(title string, c *model.Collection, ls listState, outerWidth, height int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(outerWidth)

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	priceStyle := lipgloss.NewStyle().Foreground(t.Green)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	if c.Size() == 0 {
		return components.ContentCard(title, mutedStyle.Render("No cars"), outerWidth)
	}

	const (
		numW   = 4
		yearW  = 6
		priceW = 13
		driveW = 5
	)
	nameW := max(innerW-2-numW-yearW-priceW-driveW-1, 10)

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("  %-*s%-*s%-*s%*s %-*s",
		numW, "#", yearW, "Year", nameW, "Car", priceW, "Price", driveW, "Drv")))
	b.WriteString("\n")

	// Card border, title and header row.
	rows := max(height-4, 1)
	start, end := visibleWindow(ls.cursor, c.Size(), rows)

	for i, car := range c.All() {
		if i < start || i >= end {
			continue
		}
		name := truncStr(car.Manufacturer+" "+car.Model, nameW-1)
		left := fmt.Sprintf("%-*s%-*d%-*s", numW, cli.FormatCarNumber(i), yearW, car.Year, nameW, name)
		price := fmt.Sprintf("%*s", priceW, cli.FormatPrice(car.Price))
		drive := fmt.Sprintf(" %-*s", driveW, car.DriveType)

		if i == ls.cursor {
			b.WriteString(selStyle.Render("▸ " + left + price + drive))
		} else {
			b.WriteString(rowStyle.Render("  "+left) + priceStyle.Render(price) + mutedStyle.Render(drive))
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	if end-start < c.Size() {
		title = fmt.Sprintf("%s (%d-%d of %d)", title, start+1, end, c.Size())
	}
	return components.ContentCard(title, b.String(), outerWidth)
}

// renderListWithDetail shows the list and, when requested, the selected car's
// full specification beside it (or instead of it on narrow terminals).
func renderListWithDetail(title string, c *model.Collection, ls listState, cw, height int) string {
	if !ls.detail || c.Size() == 0 {
		return renderCarList(title, c, ls, cw, height)
	}
	car, err := c.Get(ls.cursor)
	if err != nil {
		return renderCarList(title, c, ls, cw, height)
	}
	if cw < detailMinWidth {
		return components.CarCard(car, cw)
	}
	widths := components.LayoutRow(cw, 2)
	return components.CardRow([]string{
		renderCarList(title, c, ls, widths[0], height),
		components.CarCard(car, widths[1]),
	})
}
