package logic

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

type replacement struct {
	pattern *regexp.Regexp
	symbol  string
	padded  bool // surround the symbol with spaces
}

// replacements is applied in order. Longer or more specific spellings come
// before the shorter ones they contain, e.g. "if and only if" before "iff".
var replacements = []replacement{
	{regexp.MustCompile(`(?i)\bif\s+and\s+only\s+if\b`), SymbolIff, true},
	{regexp.MustCompile(`(?i)\biff\b`), SymbolIff, true},
	{regexp.MustCompile(`<->`), SymbolIff, true},

	{regexp.MustCompile(`(?i)\bimplies\b`), SymbolImplies, true},
	{regexp.MustCompile(`(?i)\bif\s+then\b`), SymbolImplies, true},
	{regexp.MustCompile(`-->`), SymbolImplies, true},

	{regexp.MustCompile(`(?i)\band\b`), SymbolAnd, true},
	{regexp.MustCompile(`&`), SymbolAnd, true},
	{regexp.MustCompile(`/\\`), SymbolAnd, true},

	{regexp.MustCompile(`(?i)\bor\b`), SymbolOr, true},
	{regexp.MustCompile(`\|`), SymbolOr, true},
	{regexp.MustCompile(`\\/`), SymbolOr, true},

	{regexp.MustCompile(`(?i)\bxor\b`), SymbolXor, true},
	{regexp.MustCompile(`\^`), SymbolXor, true},

	{regexp.MustCompile(`(?i)\bnot\b`), SymbolNot, false},
	{regexp.MustCompile(`~`), SymbolNot, false},
	{regexp.MustCompile(`!`), SymbolNot, false},

	{regexp.MustCompile(`(?i)\btrue\b`), "T", false},
	{regexp.MustCompile(`(?i)\bfalse\b`), "F", false},
}

var (
	binarySpacing = regexp.MustCompile(`\s*(` + SymbolAnd + `|` + SymbolOr + `|` + SymbolXor + `|` + SymbolImplies + `|` + SymbolIff + `)\s*`)
	notSpacing    = regexp.MustCompile(SymbolNot + `\s*`)
	spaceRuns     = regexp.MustCompile(`\s+`)
)

// Normalize rewrites a statement that is being edited from prev to next.
// Only insertions (next has more runes than prev) are rewritten; any other
// edit returns next untouched so that deleting a symbol is never undone.
//
// The result is for display only. Tokenize accepts every informal spelling,
// so nothing depends on a statement having been normalized.
func Normalize(prev, next string) string {
	if utf8.RuneCountInString(next) <= utf8.RuneCountInString(prev) {
		return next
	}
	return Symbolize(next)
}

// Symbolize unconditionally rewrites every informal operator spelling in
// expr to its canonical symbol and tidies the spacing around the symbols.
func Symbolize(expr string) string {
	out := expr
	for _, r := range replacements {
		symbol := r.symbol
		if r.padded {
			symbol = " " + symbol + " "
		}
		out = r.pattern.ReplaceAllLiteralString(out, symbol)
	}

	out = binarySpacing.ReplaceAllString(out, " $1 ")
	out = notSpacing.ReplaceAllLiteralString(out, SymbolNot)
	out = spaceRuns.ReplaceAllLiteralString(out, " ")
	out = strings.ReplaceAll(out, "( ", "(")
	out = strings.ReplaceAll(out, " )", ")")
	return strings.TrimLeft(out, " ")
}
