package table

import (
	"encoding/json"
	"strings"

	"github.com/gnolang/truthtable/internal/logic"
)

// Cell is the outcome of one statement for one row. A cell whose
// statement failed to parse or evaluate carries the error instead of a value.
type Cell struct {
	Value bool
	Err   error
}

func (c Cell) IsError() bool { return c.Err != nil }

func (c Cell) String() string {
	switch {
	case c.Err != nil:
		return "Error"
	case c.Value:
		return "T"
	default:
		return "F"
	}
}

func (c Cell) MarshalJSON() ([]byte, error) {
	if c.Err != nil {
		return json.Marshal(struct {
			Error string `json:"error"`
		}{c.Err.Error()})
	}
	return json.Marshal(struct {
		Value bool `json:"value"`
	}{c.Value})
}

// Column describes one non-blank statement. Index is the statement's
// position in the list given to Generate, blanks included.
type Column struct {
	Index    int    `json:"index"`
	Raw      string `json:"raw"`
	Symbolic string `json:"symbolic"`
	Kind     Kind   `json:"kind"`
}

type Row struct {
	Index  int    `json:"index"`
	Values []bool `json:"values"`
	Cells  []Cell `json:"cells"`
}

type Table struct {
	Variables []string `json:"variables"`
	Columns   []Column `json:"columns"`
	Rows      []Row    `json:"rows"`
}

// Generate builds the truth table of statements over variables.
//
// The variable list is validated first and any problem is returned as a
// *ValidationError with no table. Blank statements are skipped; if no
// statement is left that is a validation error too. Every remaining
// statement is run through EvaluateCell for every row, so malformed
// statements or unknown variables only turn their own cells into errors.
func Generate(variables, statements []string) (*Table, error) {
	if err := ValidateVariables(variables); err != nil {
		return nil, err
	}

	columns := make([]Column, 0, len(statements))
	for i, s := range statements {
		if strings.TrimSpace(s) == "" {
			continue
		}
		columns = append(columns, Column{Index: i, Raw: s, Symbolic: strings.TrimSpace(logic.Symbolize(s))})
	}
	if len(columns) == 0 {
		return nil, &ValidationError{
			Field:  FieldStatements,
			Index:  -1,
			Reason: "at least one non-blank statement is required",
		}
	}

	n := len(variables)
	rows := make([]Row, 1<<n)
	for i := range rows {
		values := Assignment(n, i)
		cells := make([]Cell, len(columns))
		for k, col := range columns {
			cells[k] = EvaluateCell(col.Raw, variables, values)
		}
		rows[i] = Row{Index: i, Values: values, Cells: cells}
	}

	t := &Table{
		Variables: append([]string(nil), variables...),
		Columns:   columns,
		Rows:      rows,
	}
	for k := range t.Columns {
		t.Columns[k].Kind = classify(t.Rows, k)
	}
	return t, nil
}

// Assignment returns the variable values of row i in a table over n
// variables. Variable j reads bit n-1-j of i and is true when that bit
// is 0, so row 0 is all true, the last row is all false, and the last
// variable changes fastest.
func Assignment(n, i int) []bool {
	values := make([]bool, n)
	for j := 0; j < n; j++ {
		values[j] = (i>>(n-1-j))&1 == 0
	}
	return values
}

// EvaluateCell runs the whole tokenize, parse and evaluate pipeline for
// one statement under one assignment. It never fails: errors end up in
// the returned cell.
func EvaluateCell(statement string, variables []string, values []bool) Cell {
	expr, err := logic.Parse(logic.Tokenize(statement, variables...))
	if err != nil {
		return Cell{Err: err}
	}
	v, err := logic.Evaluate(expr, variables, values)
	if err != nil {
		return Cell{Err: err}
	}
	return Cell{Value: v}
}

// Column returns the cells of column k, top to bottom.
func (t *Table) Column(k int) []Cell {
	cells := make([]Cell, len(t.Rows))
	for i, row := range t.Rows {
		cells[i] = row.Cells[k]
	}
	return cells
}
