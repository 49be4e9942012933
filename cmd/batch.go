package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/gnolang/truthtable/batch"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var batchFormat string

var batchCmd = &cobra.Command{
	Use:   "batch [paths...]",
	Short: "Render every worksheet file found under the given paths",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		opts := batch.Options{Logger: logger, Progress: os.Stderr}
		results, err := batch.ProcessPaths(ctx, opts, args, batch.ProcessFile)
		if err != nil {
			logger.Error("Error processing paths", zap.Error(err))
			return err
		}
		return printResults(cmd.OutOrStdout(), results, batchFormat)
	},
}

func init() {
	batchCmd.Flags().StringVar(&batchFormat, "format", "", "Output format: text, csv, markdown, latex or json")
}

// printResults renders every successful result and reports the failed
// ones. It returns an error when at least one worksheet failed.
func printResults(w io.Writer, results []batch.Result, format string) error {
	var failed int
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(w, "== %s ==\nerror: %v\n\n", res.Path, res.Err)
			continue
		}
		fmt.Fprintf(w, "== %s (%s) ==\n", res.Path, res.Worksheet.Name)
		if err := renderTable(w, res.Table, res.Worksheet.Output, format, "never"); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d worksheets failed", failed, len(results))
	}
	return nil
}
