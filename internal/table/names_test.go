package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanName(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input    string
		expected string
	}{
		{input: "rain", expected: "rain"},
		{input: "  is wet?", expected: "iswet"},
		{input: "42_answer", expected: "answer"},
		{input: "_x1", expected: "x1"},
		{input: "averyverylongname", expected: "averyveryl"},
		{input: "üx", expected: "x"},
		{input: "123", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, CleanName(tt.input))
		})
	}
}

func TestValidateName(t *testing.T) {
	t.Parallel()
	valid := []string{"a", "Rain", "x_1", "abcdefghij"}
	for _, name := range valid {
		assert.NoError(t, ValidateName(0, name), name)
	}

	invalid := []string{"", " ", "1a", "_a", "a-b", "abcdefghijk", "T", "false", "Only", "then"}
	for _, name := range invalid {
		assert.ErrorIs(t, ValidateName(0, name), ErrValidation, name)
	}
}

func TestNextName(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		existing []string
		expected string
	}{
		{name: "empty", existing: nil, expected: "a"},
		{name: "sequential", existing: []string{"a", "b"}, expected: "c"},
		{name: "skips f", existing: []string{"a", "b", "c", "d", "e"}, expected: "g"},
		{name: "fills gaps ignoring case", existing: []string{"A", "c"}, expected: "b"},
		{name: "skips t", existing: []string{"a", "b", "c", "d", "e", "g", "h", "i", "j", "k", "l", "m", "n", "o", "p", "q", "r", "s"}, expected: "u"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, NextName(tt.existing))
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	t.Parallel()
	err := ValidateVariables([]string{"a", ""})
	assert.EqualError(t, err, `invalid variable 2 (""): name is blank`)

	err = ValidateVariables(nil)
	assert.EqualError(t, err, "invalid variables: between 1 and 8 variables are required")
}

func TestInferVariables(t *testing.T) {
	t.Parallel()
	got := InferVariables([]string{"Rain and not wet", "rain --> (umbrella", "T or F", ""})
	assert.Equal(t, []string{"Rain", "wet", "umbrella"}, got)
	assert.Nil(t, InferVariables([]string{"true and false"}))
}
