package formatter

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/gnolang/truthtable/internal/table"
)

const maxHeaderWidth = 25

var (
	headerStyle = style(color.FgCyan, color.Bold)
	trueStyle   = style(color.FgGreen, color.Bold)
	falseStyle  = style(color.FgRed)
	errorStyle  = style(color.FgYellow, color.Bold)
	lineStyle   = style(color.FgHiBlue)
	kindStyle   = style(color.FgMagenta)
)

// style builds a color that always emits escape codes. Whether colors are
// used at all is decided per formatter, not through the global switch.
func style(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

type textFormatter struct {
	color bool
}

func (f *textFormatter) paint(c *color.Color, s string) string {
	if !f.color {
		return s
	}
	return c.Sprint(s)
}

func (f *textFormatter) paintValue(s string) string {
	switch s {
	case "T":
		return f.paint(trueStyle, s)
	case "F":
		return f.paint(falseStyle, s)
	default:
		return f.paint(errorStyle, s)
	}
}

func (f *textFormatter) Render(w io.Writer, t *table.Table) error {
	head := headers(t)
	for i := len(t.Variables); i < len(head); i++ {
		head[i] = truncate(head[i], maxHeaderWidth)
	}

	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = rowStrings(row)
	}

	widths := make([]int, len(head))
	for i, h := range head {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range rows {
		for i, s := range row {
			widths[i] = max(widths[i], utf8.RuneCountInString(s))
		}
	}

	var b strings.Builder
	b.WriteString(f.line(head, widths, func(s string) string { return f.paint(headerStyle, s) }))

	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	b.WriteString(f.paint(lineStyle, strings.Join(sep, "-+-")))
	b.WriteString("\n")

	for _, row := range rows {
		b.WriteString(f.line(row, widths, f.paintValue))
	}

	b.WriteString("\n")
	for i, col := range t.Columns {
		name := head[len(t.Variables)+i]
		fmt.Fprintf(&b, "%s: %s\n", name, f.paint(kindStyle, col.Kind.String()))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// line pads every cell but the last to its column width and joins them.
// Padding is computed on the plain text so escape codes do not shift columns.
func (f *textFormatter) line(cells []string, widths []int, paint func(string) string) string {
	parts := make([]string, len(cells))
	for i, s := range cells {
		parts[i] = paint(s)
		if i < len(cells)-1 {
			parts[i] += strings.Repeat(" ", widths[i]-utf8.RuneCountInString(s))
		}
	}
	return strings.Join(parts, f.paint(lineStyle, " | ")) + "\n"
}

// truncate cuts s to n runes, marking the cut with "...".
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}
