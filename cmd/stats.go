package cmd

import (
	"fmt"

	"github.com/theirongolddev/automarket/internal/cli"
	"github.com/theirongolddev/automarket/internal/market"
	"github.com/theirongolddev/automarket/internal/model"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Price and model-year statistics for the active market",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, _ []string) error {
	env, err := openSession()
	if err != nil {
		return err
	}
	defer env.close()

	view := env.sess.ActiveMarket()
	st := env.sess.Stats()

	title := fmt.Sprintf("%s MARKET STATS", env.sess.Source())
	if p, ok := env.sess.Predicate(); ok {
		title += "  " + p.String()
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(title))
	fmt.Println()

	if st.Count == 0 {
		fmt.Println("  No cars to summarise.")
		fmt.Println()
		return nil
	}

	rows := [][]string{
		{"Cars", cli.FormatNumber(int64(st.Count))},
		{"Cheapest", cli.FormatPrice(st.Lowest)},
		{"Median", cli.FormatPrice(st.Median)},
		{"Most expensive", cli.FormatPrice(st.Highest)},
		{"Total value", cli.FormatPrice(st.Total)},
		{"---"},
		{"Model years", fmt.Sprintf("%d-%d", st.OldestYear, st.NewestYear)},
	}
	for _, dt := range model.DriveTypes {
		rows = append(rows, []string{string(dt), cli.FormatNumber(int64(st.ByDrive[dt]))})
	}
	fmt.Print(cli.RenderTable(cli.Table{Rows: rows}))

	fmt.Println()
	fmt.Printf("  Prices  %s\n", cli.RenderSparkline(market.Prices(view)))
	fmt.Println()
	return nil
}
