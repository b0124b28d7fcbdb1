package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/automarket/internal/cli"
	"github.com/theirongolddev/automarket/internal/model"

	"github.com/spf13/cobra"
)

var buyCmd = &cobra.Command{
	Use:   "buy N",
	Short: "Buy the Nth car of the market into your garage",
	Long: "Buy the Nth car (as numbered by `automarket market`) of the active market.\n" +
		"With --filter the number refers to the filtered list.",
	Args: cobra.ExactArgs(1),
	RunE: runBuy,
}

func init() {
	rootCmd.AddCommand(buyCmd)
}

func runBuy(_ *cobra.Command, args []string) error {
	index, err := parseCarNumber(args[0])
	if err != nil {
		return err
	}

	env, err := openSession()
	if err != nil {
		return err
	}
	defer env.close()

	res, err := env.sess.Buy(index)
	if err != nil {
		return carNumberError(args[0], env.sess.ActiveMarket().Size(), err)
	}

	fmt.Println()
	fmt.Printf("  Bought %s for %s\n", res.Car.Title(), cli.RenderMoney(cli.FormatPrice(res.Car.Price)))
	fmt.Printf("  Balance: %s\n", cli.FormatMoney(res.Balance))
	fmt.Println()

	return env.save()
}

// carNumberError rewords an out-of-range index in the 1-based numbering the
// user typed.
func carNumberError(number string, size int, err error) error {
	if !errors.Is(err, model.ErrIndexOutOfRange) {
		return err
	}
	if size == 0 {
		return fmt.Errorf("no car %s: the market is empty: %w", strings.TrimSpace(number), model.ErrIndexOutOfRange)
	}
	return fmt.Errorf("no car %s: pick a number from 1 to %d: %w", strings.TrimSpace(number), size, model.ErrIndexOutOfRange)
}
