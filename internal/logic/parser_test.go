package logic

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()
	a, b, c := Var("a"), Var("b"), Var("c")

	tests := []struct {
		name     string
		input    string
		expected Expr
	}{
		{
			name:     "single variable",
			input:    "a",
			expected: a,
		},
		{
			name:     "not binds tighter than and",
			input:    "NOT a AND b",
			expected: And(Not(a), b),
		},
		{
			name:     "and binds tighter than xor",
			input:    "a xor b and c",
			expected: Xor(a, And(b, c)),
		},
		{
			name:     "xor binds tighter than or",
			input:    "a or b xor c",
			expected: Or(a, Xor(b, c)),
		},
		{
			name:     "or binds tighter than implies",
			input:    "a implies b or c",
			expected: Implies(a, Or(b, c)),
		},
		{
			name:     "implies binds tighter than iff",
			input:    "a iff b implies c",
			expected: Iff(a, Implies(b, c)),
		},
		{
			name:     "implies folds left",
			input:    "a IMPLIES b IMPLIES c",
			expected: Implies(Implies(a, b), c),
		},
		{
			name:     "iff folds left",
			input:    "a <-> b <-> c",
			expected: Iff(Iff(a, b), c),
		},
		{
			name:     "and folds left",
			input:    "a & b & c",
			expected: And(And(a, b), c),
		},
		{
			name:     "parentheses override precedence",
			input:    "a IMPLIES (b IMPLIES c)",
			expected: Implies(a, Implies(b, c)),
		},
		{
			name:     "stacked negation",
			input:    "NOT NOT a",
			expected: Not(Not(a)),
		},
		{
			name:     "negated group",
			input:    "¬(a ∨ b)",
			expected: Not(Or(a, b)),
		},
		{
			name:     "missing closing paren is tolerated",
			input:    "(a and b",
			expected: And(a, b),
		},
		{
			name:     "literals",
			input:    "a and T or false",
			expected: Or(And(a, Lit(true)), Lit(false)),
		},
		{
			name:     "undeclared names still parse",
			input:    "x and y",
			expected: And(Var("x"), Var("y")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseString(tt.input)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		wantTok  string
		wantEOF  bool
		position int
	}{
		{name: "empty input", input: "", wantEOF: true},
		{name: "trailing operator", input: "a AND", wantEOF: true},
		{name: "leading operator", input: "AND a", wantTok: "AND", position: 0},
		{name: "dangling not", input: "a or not", wantEOF: true},
		{name: "two variables", input: "a b", wantTok: "b", position: 2},
		{name: "stray closing paren", input: "a)", wantTok: ")", position: 1},
		{name: "empty group", input: "()", wantTok: ")", position: 1},
		{name: "only unknown characters", input: "#$%", wantEOF: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseString(tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrSyntax))

			var syntaxErr *SyntaxError
			require.True(t, errors.As(err, &syntaxErr))
			if tt.wantEOF {
				assert.Nil(t, syntaxErr.Token)
				assert.Contains(t, err.Error(), "unexpected end of input")
				return
			}
			require.NotNil(t, syntaxErr.Token)
			assert.Equal(t, tt.wantTok, syntaxErr.Token.Value)
			assert.Equal(t, tt.position, syntaxErr.Position)
		})
	}
}

func TestExprString(t *testing.T) {
	t.Parallel()
	expr, err := ParseString("not a and (b --> c) iff T")
	require.NoError(t, err)
	assert.Equal(t, "((¬a ∧ (b → c)) ↔ T)", expr.String())
}

func TestVariables(t *testing.T) {
	t.Parallel()
	expr, err := ParseString("(q and P) or not p xor r and Q")
	require.NoError(t, err)
	assert.Equal(t, []string{"q", "P", "r"}, Variables(expr))
}
