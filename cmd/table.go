package cmd

import (
	"io"
	"os"
	"strings"

	"github.com/gnolang/truthtable/formatter"
	"github.com/gnolang/truthtable/internal/table"
	"github.com/gnolang/truthtable/internal/worksheet"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	tableVars   string
	tableFormat string
	tableColor  string
	outPath     string
)

var tableCmd = &cobra.Command{
	Use:   "table [statements...]",
	Short: "Print the truth table of the given statements",
	Long: `Print the truth table of the given statements.

Without statements the worksheet named by --config is used. When --vars is
not given the variables are taken from the statements in order of first use.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := resolveWorksheet(cfgFile, args, tableVars)
		if err != nil {
			logger.Error("Error loading worksheet", zap.String("path", cfgFile), zap.Error(err))
			return err
		}

		out := cmd.OutOrStdout()
		if outPath != "" {
			f, err := os.Create(outPath)
			if err != nil {
				logger.Error("Error creating output file", zap.String("path", outPath), zap.Error(err))
				return err
			}
			defer f.Close()
			out = f
		}

		if err := renderWorksheet(out, ws, tableFormat, tableColor); err != nil {
			logger.Error("Error rendering table", zap.Error(err))
			return err
		}
		return nil
	},
}

func init() {
	tableCmd.Flags().StringVar(&tableVars, "vars", "", "Comma-separated variable names (default: inferred from the statements)")
	tableCmd.Flags().StringVar(&tableFormat, "format", "", "Output format: text, csv, markdown, latex or json")
	tableCmd.Flags().StringVar(&tableColor, "color", "", "Color mode: auto, always or never")
	tableCmd.Flags().StringVarP(&outPath, "output", "o", "", "Write the table to this file instead of stdout")
}

// resolveWorksheet builds a worksheet from command line statements, or
// loads the one at path when no statements were given.
func resolveWorksheet(path string, statements []string, vars string) (*worksheet.Worksheet, error) {
	if len(statements) == 0 {
		return worksheet.Load(path)
	}
	return &worksheet.Worksheet{
		Name:       "command line",
		Variables:  splitList(vars),
		Statements: statements,
	}, nil
}

// renderWorksheet generates the table of ws and writes it to w. Non-empty
// format and colorMode override the worksheet's output settings.
func renderWorksheet(w io.Writer, ws *worksheet.Worksheet, format, colorMode string) error {
	tbl, err := ws.Generate()
	if err != nil {
		return err
	}
	return renderTable(w, tbl, ws.Output, format, colorMode)
}

func renderTable(w io.Writer, tbl *table.Table, settings worksheet.Output, format, colorMode string) error {
	f, err := formatter.ParseFormat(firstNonEmpty(format, settings.Format))
	if err != nil {
		return err
	}
	useColor := formatter.ShouldColor(firstNonEmpty(colorMode, settings.Color, "auto"), terminal(w))

	return formatter.Render(w, tbl, formatter.Options{Format: f, Color: useColor})
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// terminal returns w as a file when it is one, so that color detection
// can inspect it.
func terminal(w io.Writer) *os.File {
	f, _ := w.(*os.File)
	return f
}
