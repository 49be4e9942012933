package table

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gnolang/truthtable/internal/logic"
)

const (
	MaxVariables  = 8
	MaxNameLength = 10
)

// ReservedWords are the words a variable may not be named, compared
// case-insensitively. They collide with operator keywords or literals.
var ReservedWords = []string{
	"true", "false", "t", "f",
	"and", "or", "not", "xor",
	"implies", "iff", "if", "then", "only",
}

var (
	validName    = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)
	invalidChars = regexp.MustCompile(`[^A-Za-z0-9_]`)
)

func IsReserved(name string) bool {
	for _, w := range ReservedWords {
		if strings.EqualFold(w, name) {
			return true
		}
	}
	return false
}

// CleanName turns arbitrary user input into a candidate variable name:
// characters outside [A-Za-z0-9_] are dropped, leading characters are
// dropped until a letter is found, and the result is cut to MaxNameLength.
// The result may still be empty or reserved; use ValidateName on it.
func CleanName(raw string) string {
	name := invalidChars.ReplaceAllString(raw, "")
	name = strings.TrimLeftFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	if len(name) > MaxNameLength {
		name = name[:MaxNameLength]
	}
	return name
}

// ValidateName checks a single variable name. index is its position in
// the variable list and is only used to annotate the error.
func ValidateName(index int, name string) error {
	fail := func(reason string) error {
		return &ValidationError{Field: FieldVariable, Index: index, Value: name, Reason: reason}
	}

	switch {
	case strings.TrimSpace(name) == "":
		return fail("name is blank")
	case !validName.MatchString(name):
		return fail("name must start with a letter and contain only letters, digits or underscores")
	case utf8.RuneCountInString(name) > MaxNameLength:
		return fail("name is longer than " + strconv.Itoa(MaxNameLength) + " characters")
	case IsReserved(name):
		return fail("name is a reserved word")
	}
	return nil
}

// ValidateVariables checks a whole variable list: its size, every name,
// and case-insensitive uniqueness.
func ValidateVariables(names []string) error {
	if len(names) == 0 || len(names) > MaxVariables {
		return &ValidationError{
			Field:  FieldVariables,
			Index:  -1,
			Value:  strconv.Itoa(len(names)),
			Reason: "between 1 and " + strconv.Itoa(MaxVariables) + " variables are required",
		}
	}

	seen := make(map[string]int, len(names))
	for i, name := range names {
		if err := ValidateName(i, name); err != nil {
			return err
		}
		key := strings.ToLower(name)
		if first, ok := seen[key]; ok {
			return &ValidationError{
				Field:  FieldVariable,
				Index:  i,
				Value:  name,
				Reason: "duplicates variable " + strconv.Itoa(first+1),
			}
		}
		seen[key] = i
	}
	return nil
}

// NextName suggests a name for a new variable: the first lowercase
// letter that is neither reserved nor already taken. Once the alphabet
// is exhausted it falls back to v1, v2, ...
func NextName(existing []string) string {
	taken := make(map[string]bool, len(existing))
	for _, name := range existing {
		taken[strings.ToLower(name)] = true
	}

	for c := 'a'; c <= 'z'; c++ {
		name := string(c)
		if !taken[name] && !IsReserved(name) {
			return name
		}
	}
	for i := 1; ; i++ {
		name := "v" + strconv.Itoa(i)
		if !taken[name] {
			return name
		}
	}
}

// InferVariables collects the distinct identifiers used across statements,
// in order of first appearance. Names differing only in case are merged
// and keep their first spelling. Statements that do not parse still
// contribute their identifiers.
func InferVariables(statements []string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, s := range statements {
		for _, tok := range logic.Tokenize(s) {
			if tok.Type != logic.TokenVariable {
				continue
			}
			key := strings.ToLower(tok.Value)
			if seen[key] {
				continue
			}
			seen[key] = true
			names = append(names, tok.Value)
		}
	}
	return names
}
