package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/theirongolddev/automarket/internal/session"
	"github.com/theirongolddev/automarket/internal/tui"
	"github.com/theirongolddev/automarket/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive marketplace",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	env, err := openSession()
	if err != nil {
		return err
	}
	defer env.close()

	theme.SetActive(env.cfg.Appearance.Theme)

	// Force TrueColor so background styling produces ANSI codes.
	lipgloss.SetColorProfile(termenv.TrueColor)

	if viper.GetBool("verbose") {
		f, err := tea.LogToFile(filepath.Join(env.dataDir, "automarket.log"), "automarket")
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer func() { _ = f.Close() }()
		env.logger.SetOutput(f)
	}

	var st session.Storage
	if env.store != nil {
		st = env.store
	}

	p := tea.NewProgram(tui.NewApp(env.sess, st), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
