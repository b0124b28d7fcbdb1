package cmd

import (
	"fmt"

	"github.com/theirongolddev/automarket/internal/cli"
	"github.com/theirongolddev/automarket/internal/config"
	"github.com/theirongolddev/automarket/internal/model"
	"github.com/theirongolddev/automarket/internal/store"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dataDir := viper.GetString("data-dir")
	if dataDir == "" {
		dataDir = config.DataDir(cfg)
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Data directory:   %s\n", dataDir)
	fmt.Printf("    Default market:   %s\n", cfg.General.DefaultMarket)
	fmt.Println()

	fmt.Println("  [Account]")
	fmt.Printf("    Starting balance: %s\n", cli.FormatPrice(cfg.Account.StartingBalance))
	fmt.Printf("    Increment:        %s\n", cli.FormatPrice(cfg.Account.Increment))
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Storage]")
	dbPath := store.Path(dataDir)
	st, err := store.Open(dbPath)
	if err != nil {
		fmt.Printf("    %s\n", cli.RenderWarning(err.Error()))
	} else {
		defer func() { _ = st.Close() }()
		fmt.Printf("    Database: %s\n", dbPath)
		counts, err := st.Counts()
		if err != nil {
			fmt.Printf("    %s\n", cli.RenderWarning(err.Error()))
		}
		for _, kind := range []model.Kind{model.KindDefaultMarket, model.KindUserMarket, model.KindGarage} {
			fmt.Printf("    %-9s %s cars\n", kind.String()+":", cli.FormatNumber(int64(counts[kind])))
		}
	}
	fmt.Println()

	fmt.Println("  Run `automarket setup` to reconfigure.")
	return nil
}
