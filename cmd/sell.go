package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/automarket/internal/cli"
	"github.com/theirongolddev/automarket/internal/market"
	"github.com/theirongolddev/automarket/internal/tui"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var sellSpec market.CarSpec

var sellCmd = &cobra.Command{
	Use:     "sell",
	Aliases: []string{"list"},
	Short:   "List a car for sale on the user market",
	Long: "List a car on the user market. Pass every field as a flag, or run without\n" +
		"flags to fill in a form.",
	Example: "  automarket sell --make Toyota --model Supra --year 1998 --price 60000 \\\n" +
		"    --speed 7.5 --handling 7 --acceleration 7.8 --braking 6.9 --drive RWD",
	Args: cobra.NoArgs,
	RunE: runSell,
}

func init() {
	f := sellCmd.Flags()
	f.StringVar(&sellSpec.Manufacturer, "make", "", "Manufacturer")
	f.StringVar(&sellSpec.Model, "model", "", "Model")
	f.StringVar(&sellSpec.Year, "year", "", "Model year")
	f.StringVar(&sellSpec.Price, "price", "", "Asking price in whole dollars")
	f.StringVar(&sellSpec.Speed, "speed", "", "Speed rating 0-10")
	f.StringVar(&sellSpec.Handling, "handling", "", "Handling rating 0-10")
	f.StringVar(&sellSpec.Acceleration, "acceleration", "", "Acceleration rating 0-10")
	f.StringVar(&sellSpec.Braking, "braking", "", "Braking rating 0-10")
	f.StringVar(&sellSpec.DriveType, "drive", "", "Drive type: AWD, FWD or RWD")
	rootCmd.AddCommand(sellCmd)
}

func runSell(cmd *cobra.Command, _ []string) error {
	spec := sellSpec
	if cmd.Flags().NFlag() == 0 {
		if err := tui.NewListingForm(&spec).Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}
	}

	env, err := openSession()
	if err != nil {
		return err
	}
	defer env.close()

	res, err := env.sess.List(spec)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  Listed %s for %s on the user market (#%s)\n",
		res.Car.Title(),
		cli.RenderMoney(cli.FormatPrice(res.Car.Price)),
		cli.FormatCarNumber(res.Index))
	fmt.Println()

	return env.save()
}
