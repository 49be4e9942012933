package cmd

import (
	"time"

	"github.com/gnolang/truthtable/internal/worksheet"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const defaultTimeout = 5 * time.Minute

var (
	cfgFile string
	timeout time.Duration
	verbose bool

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "truthtable [statements...]",
	Short: "truthtable - build truth tables for propositional-logic statements",
	Long: `Build truth tables for propositional-logic statements.

Statements accept English keywords (and, or, xor, not, implies, iff,
if and only if), ASCII operators (& | ^ ~ ! --> <-> /\ \/) and the
symbols ¬ ∧ ∨ ⊕ → ↔.`,
	TraverseChildren: true, // Prioritize subcommands
	SilenceUsage:     true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if verbose {
			logger, err = zap.NewDevelopment()
		} else {
			logger, err = zap.NewProduction()
		}
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// no subcommand and no statements
		if len(args) == 0 {
			return cmd.Help()
		}
		// Format: truthtable [stmt1 stmt2 ...] => behaves like the table subcommand
		return tableCmd.RunE(tableCmd, args)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", worksheet.DefaultPath, "Worksheet file")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", defaultTimeout, "Timeout for batch processing")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable development logging")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(normalizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(serveCmd)
}
