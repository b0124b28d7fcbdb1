package components

import (
	"fmt"

	"github.com/theirongolddev/automarket/internal/model"
	"github.com/theirongolddev/automarket/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForRating returns red/orange/yellow/green as a rating climbs.
func ColorForRating(r float64) lipgloss.Color {
	t := theme.Active
	switch {
	case r >= 8:
		return t.Green
	case r >= 6:
		return t.Yellow
	case r >= 4:
		return t.Orange
	default:
		return t.Red
	}
}

// RatingBar renders a labeled 0-10 bar: "Speed        ████████░░  8.2".
func RatingBar(label string, rating float64, labelW, barWidth int) string {
	t := theme.Active

	pct := rating / model.MaxRating
	pct = max(0, min(pct, 1))
	color := ColorForRating(rating)

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		spaceStyle.Render(" ") +
		bar.ViewAs(pct) +
		spaceStyle.Render(" ") +
		valueStyle.Render(fmt.Sprintf("%4.1f", rating))
}

// Sparkline renders values as unicode blocks in the given color.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active
	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := values[0]
	for _, v := range values[1:] {
		peak = max(peak, v)
	}
	if peak == 0 {
		peak = 1
	}

	out := make([]rune, len(values))
	for i, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		out[i] = blocks[max(0, min(idx, len(blocks)-1))]
	}
	return lipgloss.NewStyle().Foreground(color).Background(t.Surface).Render(string(out))
}
