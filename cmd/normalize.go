package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/gnolang/truthtable/formatter"
	"github.com/gnolang/truthtable/internal/logic"
	"github.com/spf13/cobra"
)

var normalizeLaTeX bool

var normalizeCmd = &cobra.Command{
	Use:   "normalize <text>...",
	Short: "Rewrite a statement using the canonical operator symbols",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNormalize(cmd.OutOrStdout(), strings.Join(args, " "), normalizeLaTeX)
	},
}

func init() {
	normalizeCmd.Flags().BoolVar(&normalizeLaTeX, "latex", false, "Print LaTeX math notation instead of symbols")
}

func runNormalize(w io.Writer, text string, latex bool) error {
	out := strings.TrimSpace(logic.Symbolize(text))
	if latex {
		out = formatter.ToLaTeX(out)
	}
	_, err := fmt.Fprintln(w, out)
	return err
}
