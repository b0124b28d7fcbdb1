package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/automarket/internal/config"
	"github.com/theirongolddev/automarket/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	Args:  cobra.NoArgs,
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

// setupValues backs the setup form; amounts are edited as text.
type setupValues struct {
	startingBalance string
	increment       string
	market          string
	theme           string
}

func validateWholeDollars(s string) error {
	v, err := strconv.ParseInt(strings.ReplaceAll(strings.TrimSpace(s), ",", ""), 10, 64)
	if err != nil || v < 0 {
		return errors.New("enter a whole dollar amount, 0 or more")
	}
	return nil
}

func parseWholeDollars(s string) int64 {
	v, _ := strconv.ParseInt(strings.ReplaceAll(strings.TrimSpace(s), ",", ""), 10, 64)
	return v
}

func newSetupForm(vals *setupValues) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to automarket").
				Description("Buy cars, list your own for sale and watch your balance.\nThese settings are stored in "+config.Path()+"."),
			huh.NewInput().
				Title("Starting balance").
				Description("Balance of a brand new account, in dollars.").
				Value(&vals.startingBalance).
				Validate(validateWholeDollars),
			huh.NewInput().
				Title("Balance increment").
				Description("Amount added by `automarket account increase`.").
				Value(&vals.increment).
				Validate(validateWholeDollars),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Market to browse by default").
				Options(
					huh.NewOption("Default market (built-in catalog)", "default"),
					huh.NewOption("User market (cars you listed)", "user"),
				).
				Value(&vals.market),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.theme),
		),
	)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		warnf("Existing config unreadable (%v), starting from defaults", err)
		cfg = config.DefaultConfig()
	}

	vals := setupValues{
		startingBalance: strconv.FormatInt(cfg.Account.StartingBalance, 10),
		increment:       strconv.FormatInt(cfg.Account.Increment, 10),
		market:          cfg.General.DefaultMarket,
		theme:           cfg.Appearance.Theme,
	}

	if err := newSetupForm(&vals).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("\n  Setup cancelled, nothing saved.")
			return nil
		}
		return err
	}

	cfg.Account.StartingBalance = parseWholeDollars(vals.startingBalance)
	cfg.Account.Increment = parseWholeDollars(vals.increment)
	cfg.General.DefaultMarket = vals.market
	cfg.Appearance.Theme = vals.theme

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `automarket setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}
