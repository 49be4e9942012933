package logic

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Lexer scans an expression written in canonical or informal notation
// and produces the token sequence consumed by the Parser.
//
// The lexer is lenient: characters it does not recognise are skipped
// rather than reported, and it never fails. Malformed input surfaces
// later as a syntax error from the parser.
type Lexer struct {
	input    []rune // the entire input to tokenize
	position int    // current reading position in input
	declared map[string]bool
	tokens   []Token
}

// NewLexer returns a new Lexer for input. The declared variable names are
// consulted when resolving the single-letter words T and F: a declared
// variable with that name wins over the literal.
func NewLexer(input string, declared ...string) *Lexer {
	names := make(map[string]bool, len(declared))
	for _, name := range declared {
		names[strings.ToLower(name)] = true
	}
	return &Lexer{
		input:    []rune(input),
		position: 0,
		declared: names,
		tokens:   make([]Token, 0),
	}
}

// Tokenize is a shorthand for NewLexer(expr, declared...).Tokenize().
func Tokenize(expr string, declared ...string) []Token {
	return NewLexer(expr, declared...).Tokenize()
}

// symbolOperators lists the non-word operator lexemes. Multi-character
// forms come first so that "-->" is never read as something shorter.
var symbolOperators = []struct {
	lexeme string
	op     Operator
}{
	{"<->", OpIff},
	{"-->", OpImplies},
	{`/\`, OpAnd},
	{`\/`, OpOr},
	{SymbolIff, OpIff},
	{SymbolImplies, OpImplies},
	{SymbolAnd, OpAnd},
	{"&", OpAnd},
	{SymbolOr, OpOr},
	{"|", OpOr},
	{SymbolXor, OpXor},
	{"^", OpXor},
	{SymbolNot, OpNot},
	{"~", OpNot},
	{"!", OpNot},
}

var wordOperators = map[string]Operator{
	"IFF":     OpIff,
	"IMPLIES": OpImplies,
	"OR":      OpOr,
	"XOR":     OpXor,
	"AND":     OpAnd,
	"NOT":     OpNot,
}

// Tokenize processes the entire input and returns the list of tokens.
func (l *Lexer) Tokenize() []Token {
	for l.position < len(l.input) {
		start := l.position
		switch c := l.input[l.position]; {
		case unicode.IsSpace(c):
			l.position++

		case c == '(':
			l.addToken(Token{Type: TokenLParen, Value: "("}, start)
			l.position++

		case c == ')':
			l.addToken(Token{Type: TokenRParen, Value: ")"}, start)
			l.position++

		case isIdentifierStart(c):
			l.lexWord(start)

		default:
			if !l.lexSymbol(start) {
				l.position++
			}
		}
	}
	return l.tokens
}

// lexSymbol tries every symbolic operator at the current position.
func (l *Lexer) lexSymbol(start int) bool {
	for _, s := range symbolOperators {
		if !l.hasPrefix(s.lexeme) {
			continue
		}
		l.position += utf8.RuneCountInString(s.lexeme)
		l.addToken(Token{Type: TokenOperator, Value: s.lexeme, Op: s.op}, start)
		return true
	}
	return false
}

// lexWord scans a whole identifier and classifies it. Keywords are only
// recognised as complete words, so "ANDY" is a variable and not AND + Y.
func (l *Lexer) lexWord(start int) {
	word, end := l.scanWord(start)
	upper := strings.ToUpper(word)

	if upper == "IF" {
		if phraseEnd, ok := l.matchPhrase(end, "AND", "ONLY", "IF"); ok {
			l.position = phraseEnd
			l.addToken(Token{
				Type:  TokenOperator,
				Value: string(l.input[start:phraseEnd]),
				Op:    OpIff,
			}, start)
			return
		}
	}

	l.position = end
	if op, ok := wordOperators[upper]; ok {
		l.addToken(Token{Type: TokenOperator, Value: word, Op: op}, start)
		return
	}

	switch upper {
	case "TRUE":
		l.addToken(Token{Type: TokenLiteral, Value: word, Bool: true}, start)
		return
	case "FALSE":
		l.addToken(Token{Type: TokenLiteral, Value: word, Bool: false}, start)
		return
	case "T", "F":
		if !l.declared[strings.ToLower(word)] {
			l.addToken(Token{Type: TokenLiteral, Value: word, Bool: upper == "T"}, start)
			return
		}
	}

	l.addToken(Token{Type: TokenVariable, Value: word}, start)
}

// matchPhrase checks whether the words follow pos, each separated by at
// least one whitespace character. It returns the position just after the
// last word.
func (l *Lexer) matchPhrase(pos int, words ...string) (int, bool) {
	for _, want := range words {
		next := pos
		for next < len(l.input) && unicode.IsSpace(l.input[next]) {
			next++
		}
		if next == pos || next >= len(l.input) || !isIdentifierStart(l.input[next]) {
			return 0, false
		}
		word, end := l.scanWord(next)
		if !strings.EqualFold(word, want) {
			return 0, false
		}
		pos = end
	}
	return pos, true
}

func (l *Lexer) scanWord(from int) (string, int) {
	end := from
	for end < len(l.input) && isIdentifierChar(l.input[end]) {
		end++
	}
	return string(l.input[from:end]), end
}

func (l *Lexer) hasPrefix(s string) bool {
	i := l.position
	for _, r := range s {
		if i >= len(l.input) || l.input[i] != r {
			return false
		}
		i++
	}
	return true
}

// addToken is a helper to append a new token to the lexer's token list.
func (l *Lexer) addToken(tok Token, pos int) {
	tok.Position = pos
	l.tokens = append(l.tokens, tok)
}

func isIdentifierStart(c rune) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isIdentifierChar(c rune) bool {
	return isIdentifierStart(c) || ('0' <= c && c <= '9') || c == '_'
}
