package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/gnolang/truthtable/internal/logic"
	"github.com/spf13/cobra"
)

var parseVars string

var parseCmd = &cobra.Command{
	Use:   "parse <expression>...",
	Short: "Show the tokens and the expression tree of a statement",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runParse(cmd.OutOrStdout(), strings.Join(args, " "), splitList(parseVars))
	},
}

func init() {
	parseCmd.Flags().StringVar(&parseVars, "vars", "", "Comma-separated declared variables (affects T and F)")
}

func runParse(w io.Writer, expr string, declared []string) error {
	tokens := logic.Tokenize(expr, declared...)

	fmt.Fprintln(w, "tokens:")
	for _, tok := range tokens {
		fmt.Fprintf(w, "  %3d  %s\n", tok.Position, tok)
	}

	tree, err := logic.Parse(tokens)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "tree: %s\n", tree)
	if vars := logic.Variables(tree); len(vars) > 0 {
		fmt.Fprintf(w, "variables: %s\n", strings.Join(vars, ", "))
	}
	return nil
}
