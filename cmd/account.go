package cmd

import (
	"fmt"

	"github.com/theirongolddev/automarket/internal/cli"
	"github.com/theirongolddev/automarket/internal/market"

	"github.com/spf13/cobra"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Show your balance",
	RunE:  runAccount,
}

var accountIncreaseCmd = &cobra.Command{
	Use:   "increase",
	Short: "Add the configured increment to your balance",
	Args:  cobra.NoArgs,
	RunE:  runAccountIncrease,
}

var accountSetCmd = &cobra.Command{
	Use:   "set AMOUNT",
	Short: "Set your balance",
	Args:  cobra.ExactArgs(1),
	RunE:  runAccountSet,
}

func init() {
	accountCmd.AddCommand(accountIncreaseCmd, accountSetCmd)
	rootCmd.AddCommand(accountCmd)
}

func runAccount(_ *cobra.Command, _ []string) error {
	env, err := openSession()
	if err != nil {
		return err
	}
	defer env.close()

	acct := env.sess.Account()
	garage := market.Stats(env.sess.Garage())

	fmt.Println()
	fmt.Println(cli.RenderTitle("ACCOUNT"))
	fmt.Println()

	rows := [][]string{
		{"Balance", cli.FormatMoney(acct.Balance())},
		{"Increment", cli.FormatMoney(acct.Increment())},
		{"---"},
		{"Cars owned", cli.FormatNumber(int64(garage.Count))},
		{"Garage value", cli.FormatPrice(garage.Total)},
	}
	fmt.Print(cli.RenderTable(cli.Table{Rows: rows}))
	fmt.Println()
	return nil
}

func runAccountIncrease(_ *cobra.Command, _ []string) error {
	env, err := openSession()
	if err != nil {
		return err
	}
	defer env.close()

	bal := env.sess.IncreaseBalance()
	fmt.Printf("\n  Added %s. Balance: %s\n\n",
		cli.FormatMoney(env.sess.Account().Increment()),
		cli.RenderMoney(cli.FormatMoney(bal)))

	return env.save()
}

func runAccountSet(_ *cobra.Command, args []string) error {
	amount, err := cli.ParseMoney(args[0])
	if err != nil {
		return err
	}

	env, err := openSession()
	if err != nil {
		return err
	}
	defer env.close()

	if err := env.sess.SetBalance(amount); err != nil {
		return err
	}
	fmt.Printf("\n  Balance set to %s\n\n", cli.RenderMoney(cli.FormatMoney(amount)))

	return env.save()
}
