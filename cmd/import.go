package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/automarket/internal/catalog"
	"github.com/theirongolddev/automarket/internal/cli"
	"github.com/theirongolddev/automarket/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagImportInto    string
	flagImportReplace bool
)

var importCmd = &cobra.Command{
	Use:   "import PATH",
	Short: "Import cars from a JSON catalog file or directory",
	Long: "Import cars from a catalog file, or from every *.json file in a directory.\n" +
		"Invalid entries are skipped and counted.",
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&flagImportInto, "into", "user", "Collection to import into: default, user or garage")
	importCmd.Flags().BoolVar(&flagImportReplace, "replace", false, "Replace the collection instead of appending")
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	kind, err := model.ParseKind(flagImportInto)
	if err != nil || kind == model.KindFiltered {
		return fmt.Errorf("--into must be default, user or garage")
	}

	files, err := catalog.ScanDir(args[0])
	if err != nil {
		return fmt.Errorf("scanning %s: %w", args[0], err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no catalog files found at %s", args[0])
	}

	if !quiet() {
		fmt.Fprintf(os.Stderr, "  Reading %d catalog files...\n", len(files))
	}
	result := catalog.LoadAll(files, func(current, total int) {
		if quiet() {
			return
		}
		fmt.Fprintf(os.Stderr, "\r  %s", cli.RenderProgressBar(current, total, 30))
	})
	if !quiet() {
		fmt.Fprintln(os.Stderr)
	}
	for _, ferr := range result.Errors {
		warnf("%v", ferr)
	}

	env, err := openSession()
	if err != nil {
		return err
	}
	defer env.close()

	if err := env.sess.Import(kind, result.Cars, flagImportReplace); err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  Imported %s cars into the %s collection from %d files\n",
		cli.FormatNumber(int64(len(result.Cars))), kind, result.ParsedFiles)
	if result.Skipped > 0 {
		fmt.Printf("  %s\n", cli.RenderWarning(fmt.Sprintf("Skipped %d invalid cars", result.Skipped)))
	}
	if result.FileErrors > 0 {
		fmt.Printf("  %s\n", cli.RenderWarning(fmt.Sprintf("%d files could not be read", result.FileErrors)))
	}
	fmt.Println()

	return env.save()
}
