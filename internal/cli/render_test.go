package cli

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderTableAlignment(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"#", "Make", "Price"},
		Rows: [][]string{
			{"1", "Audi", "$242,000"},
			{"---"},
			{"12", "Chevrolet", "$87,000"},
		},
		LeftAlign: []bool{false, true, false},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// top, header, rule, row, separator, row, bottom
	if len(lines) != 7 {
		t.Fatalf("got %d lines:\n%s", len(lines), out)
	}
	width := lipgloss.Width(lines[0])
	for i, l := range lines {
		if lipgloss.Width(l) != width {
			t.Errorf("line %d width %d, want %d", i, lipgloss.Width(l), width)
		}
	}
	if !strings.Contains(lines[3], " 1 │ Audi      │ $242,000 ") {
		t.Errorf("row not aligned: %q", lines[3])
	}
}

func TestRenderTableEmpty(t *testing.T) {
	if got := RenderTable(Table{}); got != "" {
		t.Errorf("RenderTable(empty) = %q", got)
	}
}

func TestRenderSparkline(t *testing.T) {
	if got := RenderSparkline([]float64{0, 50, 100}); got != "▁▄█" {
		t.Errorf("RenderSparkline = %q", got)
	}
	if got := RenderSparkline(nil); got != "" {
		t.Errorf("RenderSparkline(nil) = %q", got)
	}
}
