package logic

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymbolize(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input    string
		expected string
	}{
		{input: "p and q", expected: "p ∧ q"},
		{input: "p AND q", expected: "p ∧ q"},
		{input: "p & q", expected: "p ∧ q"},
		{input: `p /\ q`, expected: "p ∧ q"},
		{input: "p or q", expected: "p ∨ q"},
		{input: "p|q", expected: "p ∨ q"},
		{input: `p \/ q`, expected: "p ∨ q"},
		{input: "p xor q", expected: "p ⊕ q"},
		{input: "p ^ q", expected: "p ⊕ q"},
		{input: "p implies q", expected: "p → q"},
		{input: "p --> q", expected: "p → q"},
		{input: "p if and only if q", expected: "p ↔ q"},
		{input: "p iff q", expected: "p ↔ q"},
		{input: "p <-> q", expected: "p ↔ q"},
		{input: "not p or q", expected: "¬p ∨ q"},
		{input: "~p & !q", expected: "¬p ∧ ¬q"},
		{input: "not not p", expected: "¬¬p"},
		{input: "(not p)", expected: "(¬p)"},
		{input: "true and false", expected: "T ∧ F"},
		{input: "a/\\b\\/c", expected: "a ∧ b ∨ c"},
		{input: "android or orange", expected: "android ∨ orange"},
		{input: "p    ∧q", expected: "p ∧ q"},
		{input: "( p and q )", expected: "(p ∧ q)"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Symbolize(tt.input))
		})
	}
}

func TestNormalizeOnlyOnInsertion(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		prev     string
		next     string
		expected string
	}{
		{name: "insertion", prev: "a an", next: "a and", expected: "a ∧ "},
		{name: "deletion", prev: "a and b", next: "a and", expected: "a and"},
		{name: "same length", prev: "a or b", next: "a or c", expected: "a or c"},
		{name: "symbol counts as one rune", prev: "a ∧ b", next: "a & b ", expected: "a ∧ b "},
		{name: "from empty", prev: "", next: "not a", expected: "¬a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Normalize(tt.prev, tt.next))
		})
	}
}

func TestNormalizeRoundTrip(t *testing.T) {
	t.Parallel()
	inputs := []string{
		"a and b",
		"a & b",
		"a ∧ b",
		"not a or b --> c",
		"a if and only if (b xor not c)",
		"~a | !b <-> a ^ b",
		"a implies b implies c",
		"true and a or false",
		`a /\ (b \/ c)`,
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			raw, err := ParseString(input, "a", "b", "c")
			require.NoError(t, err)
			normalized, err := ParseString(Normalize("", input), "a", "b", "c")
			require.NoError(t, err)
			if diff := cmp.Diff(raw, normalized); diff != "" {
				t.Errorf("tree changed by normalization (-raw +normalized):\n%s", diff)
			}
		})
	}
}

func TestSynonymsYieldSameTree(t *testing.T) {
	t.Parallel()
	want, err := ParseString("a ∧ b")
	require.NoError(t, err)
	for _, input := range []string{"a and b", "a & b", `a /\ b`, "a AND b"} {
		got, err := ParseString(input)
		require.NoError(t, err)
		assert.Equal(t, want, got, input)
	}
}
