package formatter

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strings"
	"text/template"

	"github.com/gnolang/truthtable/internal/logic"
	"github.com/gnolang/truthtable/internal/table"
)

type csvFormatter struct{}

func (csvFormatter) Render(w io.Writer, t *table.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(headers(t)); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := cw.Write(rowStrings(row)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

type jsonFormatter struct{}

func (jsonFormatter) Render(w io.Writer, t *table.Table) error {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

type tableData struct {
	Headers []string
	Rows    [][]string
}

func newTableData(t *table.Table) tableData {
	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = rowStrings(row)
	}
	return tableData{Headers: headers(t), Rows: rows}
}

const markdownTemplate = `|{{range .Headers}} {{mdEscape .}} |{{end}}
|{{range .Headers}} --- |{{end}}
{{range .Rows}}|{{range .}} {{.}} |{{end}}
{{end}}`

type markdownFormatter struct{}

func (markdownFormatter) Render(w io.Writer, t *table.Table) error {
	return markdownTmpl.Execute(w, newTableData(t))
}

const latexTemplate = `\begin{tabular}{|{{range .Headers}}c|{{end}}}
\hline
{{range $i, $h := .Headers}}{{if $i}} & {{end}}${{latex $h}}${{end}} \\
\hline
{{range .Rows}}{{range $i, $v := .}}{{if $i}} & {{end}}{{$v}}{{end}} \\
{{end}}\hline
\end{tabular}
`

type latexFormatter struct{}

func (latexFormatter) Render(w io.Writer, t *table.Table) error {
	return latexTmpl.Execute(w, newTableData(t))
}

var (
	markdownTmpl = template.Must(template.New("markdown").Funcs(template.FuncMap{"mdEscape": mdEscape}).Parse(markdownTemplate))
	latexTmpl    = template.Must(template.New("latex").Funcs(template.FuncMap{"latex": ToLaTeX}).Parse(latexTemplate))
)

func mdEscape(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

var latexReplacer = strings.NewReplacer(
	logic.SymbolNot, `\neg `,
	logic.SymbolAnd, `\land`,
	logic.SymbolOr, `\lor`,
	logic.SymbolXor, `\oplus`,
	logic.SymbolImplies, `\to`,
	logic.SymbolIff, `\leftrightarrow`,
	"_", `\_`,
)

// ToLaTeX converts a symbolic expression to LaTeX math notation.
func ToLaTeX(symbolic string) string {
	return latexReplacer.Replace(symbolic)
}
