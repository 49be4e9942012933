package formatter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gnolang/truthtable/internal/table"
	"github.com/mattn/go-isatty"
)

// Format names an output representation of a truth table.
type Format string

const (
	Text     Format = "text"
	CSV      Format = "csv"
	Markdown Format = "markdown"
	LaTeX    Format = "latex"
	JSON     Format = "json"
)

var formats = []Format{Text, CSV, Markdown, LaTeX, JSON}

// ParseFormat accepts a format name case-insensitively. "md" and "tex"
// are accepted as short forms.
func ParseFormat(s string) (Format, error) {
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case "", "txt":
		return Text, nil
	case "md":
		return Markdown, nil
	case "tex":
		return LaTeX, nil
	default:
		for _, f := range formats {
			if string(f) == v {
				return f, nil
			}
		}
	}
	return "", fmt.Errorf("unknown output format %q (want one of %s)", s, formatList())
}

func formatList() string {
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// tableFormatter is implemented by every output format.
type tableFormatter interface {
	Render(w io.Writer, t *table.Table) error
}

// Options controls rendering. Color only affects the text format.
type Options struct {
	Format Format
	Color  bool
}

// getTableFormatter returns the formatter for the given format, falling
// back to plain text.
func getTableFormatter(opts Options) tableFormatter {
	switch opts.Format {
	case CSV:
		return &csvFormatter{}
	case Markdown:
		return &markdownFormatter{}
	case LaTeX:
		return &latexFormatter{}
	case JSON:
		return &jsonFormatter{}
	default:
		return &textFormatter{color: opts.Color}
	}
}

// Render writes t to w in the requested format.
func Render(w io.Writer, t *table.Table, opts Options) error {
	return getTableFormatter(opts).Render(w, t)
}

// ShouldColor resolves a color mode ("auto", "always", "never") for the
// given output. In auto mode color is used only on a terminal.
func ShouldColor(mode string, out *os.File) bool {
	switch strings.ToLower(mode) {
	case "always", "true", "on":
		return true
	case "never", "false", "off":
		return false
	}
	if out == nil {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	fd := out.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// headers returns the variable names followed by the symbolic form of
// every statement column.
func headers(t *table.Table) []string {
	out := make([]string, 0, len(t.Variables)+len(t.Columns))
	out = append(out, t.Variables...)
	for _, col := range t.Columns {
		out = append(out, col.Symbolic)
	}
	return out
}

func boolString(v bool) string {
	if v {
		return "T"
	}
	return "F"
}

// rowStrings returns the printable values of a row, variables first.
func rowStrings(row table.Row) []string {
	out := make([]string, 0, len(row.Values)+len(row.Cells))
	for _, v := range row.Values {
		out = append(out, boolString(v))
	}
	for _, c := range row.Cells {
		out = append(out, c.String())
	}
	return out
}
