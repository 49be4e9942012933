package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gnolang/truthtable/internal/worksheet"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	watchFormat string
	watchClear  bool
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-render the worksheet every time it is saved",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		out := cmd.OutOrStdout()
		onChange := func(ws *worksheet.Worksheet, err error) {
			showWorksheet(out, ws, err, watchFormat, watchClear)
		}

		onChange(worksheet.Load(cfgFile))

		w := worksheet.NewWatcher(cfgFile, logger, onChange)
		if err := w.Start(); err != nil {
			logger.Error("Error starting watcher", zap.String("path", cfgFile), zap.Error(err))
			return err
		}
		logger.Info("Watching worksheet", zap.String("path", cfgFile))

		<-ctx.Done()
		return w.Stop()
	},
}

func init() {
	watchCmd.Flags().StringVar(&watchFormat, "format", "", "Output format: text, csv, markdown, latex or json")
	watchCmd.Flags().BoolVar(&watchClear, "clear", false, "Clear the terminal before each render")
}

func showWorksheet(w io.Writer, ws *worksheet.Worksheet, err error, format string, clear bool) {
	if clear {
		// \033[H: move the cursor home, \033[2J: clear the screen
		fmt.Fprint(w, "\033[H\033[2J")
	}
	if err == nil {
		fmt.Fprintf(w, "== %s ==\n", ws.Name)
		err = renderWorksheet(w, ws, format, "")
	}
	if err != nil {
		logger.Error("Error rendering worksheet", zap.Error(err))
		fmt.Fprintf(w, "error: %v\n", err)
	}
}
