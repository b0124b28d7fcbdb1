package cmd

import (
	"fmt"

	"github.com/theirongolddev/automarket/internal/cli"

	"github.com/spf13/cobra"
)

var flagLogLimit int

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show recent marketplace activity",
	Args:  cobra.NoArgs,
	RunE:  runLog,
}

func init() {
	logCmd.Flags().IntVarP(&flagLogLimit, "limit", "n", 20, "Number of events to show (0 for all)")
	rootCmd.AddCommand(logCmd)
}

func runLog(_ *cobra.Command, _ []string) error {
	env, err := openSession()
	if err != nil {
		return err
	}
	defer env.close()

	if env.store == nil {
		return fmt.Errorf("cannot read the activity log: storage unavailable")
	}

	events, err := env.store.LoadEvents(flagLogLimit)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("ACTIVITY"))
	fmt.Println()

	if len(events) == 0 {
		fmt.Println("  Nothing recorded yet.")
		fmt.Println()
		return nil
	}

	rows := make([][]string, 0, len(events))
	for _, ev := range events {
		rows = append(rows, []string{
			ev.At.Local().Format("2006-01-02 15:04"),
			ev.SessionID[:min(8, len(ev.SessionID))],
			ev.Description,
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers:   []string{"When", "Session", "Event"},
		Rows:      rows,
		LeftAlign: []bool{true, true, true},
	}))
	fmt.Println()
	return nil
}
