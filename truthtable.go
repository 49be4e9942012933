// Package truthtable evaluates propositional-logic statements and builds
// their truth tables.
//
// Statements may be written with English keywords (and, or, xor, not,
// implies, iff, if and only if), ASCII operators (&, |, ^, ~, !, -->, <->,
// /\, \/) or the Unicode symbols ¬ ∧ ∨ ⊕ → ↔. Operator strength, loosest
// first, is IFF, IMPLIES, OR, XOR, AND, NOT. Every binary operator groups
// to the left, so "a --> b --> c" means "(a --> b) --> c".
//
// Usage:
//
//	tbl, err := truthtable.GenerateTable([]string{"p", "q"}, []string{"p --> q"})
//	if err != nil {
//	    // invalid variables or no statements
//	}
//	for _, row := range tbl.Rows {
//	    fmt.Println(row.Values, row.Cells[0])
//	}
package truthtable

import (
	"github.com/gnolang/truthtable/internal/logic"
	"github.com/gnolang/truthtable/internal/table"
)

type (
	Token    = logic.Token
	Expr     = logic.Expr
	Table    = table.Table
	Row      = table.Row
	Cell     = table.Cell
	Column   = table.Column
	Kind     = table.Kind
	Operator = logic.Operator

	SyntaxError          = logic.SyntaxError
	UnknownVariableError = logic.UnknownVariableError
	ValidationError      = table.ValidationError
)

var (
	ErrSyntax          = logic.ErrSyntax
	ErrUnknownVariable = logic.ErrUnknownVariable
	ErrArityMismatch   = logic.ErrArityMismatch
	ErrValidation      = table.ErrValidation
)

// Normalize rewrites informal operator spellings in next to canonical
// symbols, but only when next grew compared to prev. It is meant to be
// called on every edit of a statement field.
func Normalize(prev, next string) string {
	return logic.Normalize(prev, next)
}

// Tokenize splits expr into tokens. T and F are read as variables when a
// declared variable has that name and as literals otherwise.
func Tokenize(expr string, declared ...string) []Token {
	return logic.Tokenize(expr, declared...)
}

func Parse(tokens []Token) (Expr, error) {
	return logic.Parse(tokens)
}

// Evaluate computes expr for one assignment of values to names.
func Evaluate(expr Expr, names []string, values []bool) (bool, error) {
	return logic.Evaluate(expr, names, values)
}

// GenerateTable evaluates every non-blank statement for all 2^N
// assignments of the variables. Row 0 assigns true to every variable and
// the last variable alternates fastest.
func GenerateTable(variables, statements []string) (*Table, error) {
	return table.Generate(variables, statements)
}
