package cmd

import (
	"fmt"

	"github.com/theirongolddev/automarket/internal/cli"
	"github.com/theirongolddev/automarket/internal/market"

	"github.com/spf13/cobra"
)

var garageCmd = &cobra.Command{
	Use:   "garage",
	Short: "List the cars you own",
	RunE:  runGarage,
}

func init() {
	garageCmd.Flags().BoolVar(&flagDetail, "detail", false, "Show ratings and drive type")
	rootCmd.AddCommand(garageCmd)
}

func runGarage(_ *cobra.Command, _ []string) error {
	env, err := openSession()
	if err != nil {
		return err
	}
	defer env.close()

	garage := env.sess.Garage()

	fmt.Println()
	fmt.Println(cli.RenderTitle("GARAGE"))
	fmt.Println()

	if garage.Size() == 0 {
		fmt.Println("  Your garage is empty. Buy a car with `automarket buy N`.")
		fmt.Println()
		return nil
	}

	st := market.Stats(garage)
	fmt.Print(renderCars(garage, flagDetail))
	fmt.Println()
	fmt.Printf("  %s cars worth %s\n",
		cli.FormatNumber(int64(st.Count)),
		cli.RenderMoney(cli.FormatPrice(st.Total)))
	fmt.Println()
	return nil
}
