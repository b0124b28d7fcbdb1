package cmd

import (
	"fmt"

	"github.com/theirongolddev/automarket/internal/cli"
	"github.com/theirongolddev/automarket/internal/model"
	"github.com/theirongolddev/automarket/internal/session"

	"github.com/spf13/cobra"
)

var flagDetail bool

var marketCmd = &cobra.Command{
	Use:   "market",
	Short: "List the cars for sale",
	Long:  "List the active market: the default market, or the user market with --user, narrowed by --filter.",
	RunE:  runMarket,
}

func init() {
	marketCmd.Flags().BoolVar(&flagDetail, "detail", false, "Show ratings and drive type")
	rootCmd.Flags().BoolVar(&flagDetail, "detail", false, "Show ratings and drive type")
	rootCmd.AddCommand(marketCmd)
}

func runMarket(_ *cobra.Command, _ []string) error {
	env, err := openSession()
	if err != nil {
		return err
	}
	defer env.close()

	sess := env.sess
	title := "DEFAULT MARKET"
	if sess.Source() == session.SourceUser {
		title = "USER MARKET"
	}
	if p, ok := sess.Predicate(); ok {
		title += "  " + p.String()
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(title))
	fmt.Println()

	view := sess.ActiveMarket()
	if view.Size() == 0 {
		if sess.FilterActive() {
			fmt.Println("  No cars match the filter.")
		} else {
			fmt.Printf("  The %s market is empty.\n", sess.Source())
		}
		fmt.Println()
		return nil
	}

	fmt.Print(renderCars(view, flagDetail))
	fmt.Println()
	fmt.Printf("  %s cars  ·  Balance %s\n",
		cli.FormatNumber(int64(view.Size())),
		cli.RenderMoney(cli.FormatMoney(sess.Account().Balance())))
	fmt.Println()
	return nil
}

// renderCars renders a collection as a numbered table.
func renderCars(c *model.Collection, detail bool) string {
	headers := cli.CarHeaders(detail)
	rows := make([][]string, 0, c.Size())
	for i, car := range c.All() {
		rows = append(rows, cli.CarRow(i, car, detail))
	}

	left := make([]bool, len(headers))
	left[2], left[3] = true, true // make and model
	if detail {
		left[len(left)-1] = true
	}

	return cli.RenderTable(cli.Table{
		Headers:   headers,
		Rows:      rows,
		LeftAlign: left,
	})
}
