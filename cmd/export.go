package cmd

import (
	"fmt"

	"github.com/theirongolddev/automarket/internal/catalog"
	"github.com/theirongolddev/automarket/internal/cli"
	"github.com/theirongolddev/automarket/internal/model"

	"github.com/spf13/cobra"
)

var flagExportFrom string

var exportCmd = &cobra.Command{
	Use:   "export PATH",
	Short: "Write a collection to a JSON catalog file",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&flagExportFrom, "from", "garage", "Collection to export: default, user, garage or filtered")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, args []string) error {
	kind, err := model.ParseKind(flagExportFrom)
	if err != nil {
		return err
	}

	env, err := openSession()
	if err != nil {
		return err
	}
	defer env.close()

	var c *model.Collection
	if kind == model.KindFiltered {
		if !env.sess.FilterActive() {
			return fmt.Errorf("--from filtered needs --filter")
		}
		c = env.sess.ActiveMarket()
	} else {
		c = env.sess.Collection(kind)
	}

	if err := catalog.WriteFile(args[0], kind.String(), c.Cars()); err != nil {
		return err
	}

	fmt.Printf("\n  Wrote %s cars from the %s collection to %s\n\n",
		cli.FormatNumber(int64(c.Size())), kind, args[0])
	return nil
}
