package table

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/gnolang/truthtable/internal/logic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func column(t *testing.T, tbl *Table, k int) string {
	t.Helper()
	out := ""
	for _, c := range tbl.Column(k) {
		out += c.String()[:1]
	}
	return out
}

func TestGenerateRowCount(t *testing.T) {
	t.Parallel()
	names := []string{"a", "b", "c", "d", "e", "g", "h", "i"}
	for n := 1; n <= MaxVariables; n++ {
		t.Run(fmt.Sprintf("%d variables", n), func(t *testing.T) {
			t.Parallel()
			tbl, err := Generate(names[:n], []string{"a"})
			require.NoError(t, err)
			assert.Len(t, tbl.Rows, 1<<n)
			for i, row := range tbl.Rows {
				assert.Equal(t, i, row.Index)
				assert.Len(t, row.Values, n)
				assert.Len(t, row.Cells, 1)
			}
		})
	}
}

func TestGenerateRowOrder(t *testing.T) {
	t.Parallel()
	tbl, err := Generate([]string{"p", "q", "r"}, []string{"p"})
	require.NoError(t, err)

	expected := [][]bool{
		{true, true, true},
		{true, true, false},
		{true, false, true},
		{true, false, false},
		{false, true, true},
		{false, true, false},
		{false, false, true},
		{false, false, false},
	}
	for i, row := range tbl.Rows {
		assert.Equal(t, expected[i], row.Values, "row %d", i)
	}
}

func TestGenerateStatements(t *testing.T) {
	t.Parallel()
	vars := []string{"a", "b"}
	tests := []struct {
		statement string
		expected  string
	}{
		{statement: "a AND b", expected: "TFFF"},
		{statement: "a OR b", expected: "TTTF"},
		{statement: "a XOR b", expected: "FTTF"},
		{statement: "a IMPLIES b", expected: "TFTT"},
		{statement: "a IFF b", expected: "TFFT"},
		{statement: "NOT a AND b", expected: "FFTF"},
		{statement: "a AND T", expected: "TTFF"},
		{statement: "a AND F", expected: "FFFF"},
		{statement: "A and B", expected: "TFFF"},
		{statement: "a ∧ ¬b", expected: "FTFF"},
		{statement: "x AND a", expected: "EEEE"},
		{statement: "a AND", expected: "EEEE"},
		{statement: "a b", expected: "EEEE"},
	}

	for _, tt := range tests {
		t.Run(tt.statement, func(t *testing.T) {
			t.Parallel()
			tbl, err := Generate(vars, []string{tt.statement})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, column(t, tbl, 0))
		})
	}
}

func TestGenerateCellErrors(t *testing.T) {
	t.Parallel()
	tbl, err := Generate([]string{"a"}, []string{"a AND", "a and zz"})
	require.NoError(t, err)

	for _, row := range tbl.Rows {
		require.True(t, row.Cells[0].IsError())
		assert.True(t, errors.Is(row.Cells[0].Err, logic.ErrSyntax))
		require.True(t, row.Cells[1].IsError())
		assert.True(t, errors.Is(row.Cells[1].Err, logic.ErrUnknownVariable))
	}
}

func TestGenerateImplicationChain(t *testing.T) {
	t.Parallel()
	tbl, err := Generate(
		[]string{"a", "b", "c"},
		[]string{"a IMPLIES b IMPLIES c", "a IMPLIES (b IMPLIES c)"},
	)
	require.NoError(t, err)

	// a=F, b=T, c=F is row 0b101.
	row := tbl.Rows[5]
	require.Equal(t, []bool{false, true, false}, row.Values)
	assert.Equal(t, "F", row.Cells[0].String())
	assert.Equal(t, "T", row.Cells[1].String())
}

func TestGenerateSkipsBlankStatements(t *testing.T) {
	t.Parallel()
	tbl, err := Generate([]string{"a"}, []string{"", "not a", "   ", "a"})
	require.NoError(t, err)
	require.Len(t, tbl.Columns, 2)
	assert.Equal(t, 1, tbl.Columns[0].Index)
	assert.Equal(t, "¬a", tbl.Columns[0].Symbolic)
	assert.Equal(t, 3, tbl.Columns[1].Index)
	for _, row := range tbl.Rows {
		assert.Len(t, row.Cells, 2)
	}
}

func TestGenerateValidation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		variables  []string
		statements []string
		field      string
		index      int
	}{
		{name: "blank variable", variables: []string{"a", ""}, statements: []string{"a"}, field: FieldVariable, index: 1},
		{name: "whitespace variable", variables: []string{"  "}, statements: []string{"a"}, field: FieldVariable, index: 0},
		{name: "no variables", variables: nil, statements: []string{"a"}, field: FieldVariables, index: -1},
		{name: "too many variables", variables: []string{"a", "b", "c", "d", "e", "g", "h", "i", "j"}, statements: []string{"a"}, field: FieldVariables, index: -1},
		{name: "reserved", variables: []string{"a", "IFF"}, statements: []string{"a"}, field: FieldVariable, index: 1},
		{name: "duplicate ignoring case", variables: []string{"p", "P"}, statements: []string{"p"}, field: FieldVariable, index: 1},
		{name: "too long", variables: []string{"abcdefghijk"}, statements: []string{"a"}, field: FieldVariable, index: 0},
		{name: "bad shape", variables: []string{"1a"}, statements: []string{"a"}, field: FieldVariable, index: 0},
		{name: "all statements blank", variables: []string{"a"}, statements: []string{"", " "}, field: FieldStatements, index: -1},
		{name: "no statements", variables: []string{"a"}, statements: nil, field: FieldStatements, index: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tbl, err := Generate(tt.variables, tt.statements)
			assert.Nil(t, tbl)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
			assert.Equal(t, tt.index, verr.Index)
		})
	}
}

func TestColumnKind(t *testing.T) {
	t.Parallel()
	tbl, err := Generate(
		[]string{"p", "q"},
		[]string{"p or not p", "p and not p", "p --> q", "p and r"},
	)
	require.NoError(t, err)

	kinds := make([]Kind, len(tbl.Columns))
	for i, col := range tbl.Columns {
		kinds[i] = col.Kind
	}
	assert.Equal(t, []Kind{Tautology, Contradiction, Contingent, Invalid}, kinds)
}

func TestTableJSON(t *testing.T) {
	t.Parallel()
	tbl, err := Generate([]string{"a"}, []string{"not a", "a and"})
	require.NoError(t, err)

	data, err := json.Marshal(tbl)
	require.NoError(t, err)

	var decoded struct {
		Columns []struct {
			Symbolic string `json:"symbolic"`
			Kind     string `json:"kind"`
		} `json:"columns"`
		Rows []struct {
			Values []bool            `json:"values"`
			Cells  []json.RawMessage `json:"cells"`
		} `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "¬a", decoded.Columns[0].Symbolic)
	assert.Equal(t, "contingent", decoded.Columns[0].Kind)
	assert.Equal(t, "invalid", decoded.Columns[1].Kind)
	assert.JSONEq(t, `{"value":false}`, string(decoded.Rows[0].Cells[0]))
	assert.Contains(t, string(decoded.Rows[0].Cells[1]), `"error"`)
}
