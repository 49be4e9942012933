package logic

import "fmt"

// TokenType defines the type of a token.
type TokenType int

const (
	TokenVariable TokenType = iota
	TokenLiteral
	TokenOperator
	TokenLParen
	TokenRParen
)

func (t TokenType) String() string {
	switch t {
	case TokenVariable:
		return "Variable"
	case TokenLiteral:
		return "Literal"
	case TokenOperator:
		return "Operator"
	case TokenLParen:
		return "LParen"
	case TokenRParen:
		return "RParen"
	default:
		return "Unknown"
	}
}

// Operator is a logical connective. Values are ordered from the
// loosest binding (OpIff) to the tightest (OpNot).
type Operator int

const (
	_ Operator = iota
	OpIff
	OpImplies
	OpOr
	OpXor
	OpAnd
	OpNot
)

// Canonical symbols produced by the normalizer.
const (
	SymbolNot     = "¬"
	SymbolAnd     = "∧"
	SymbolOr      = "∨"
	SymbolXor     = "⊕"
	SymbolImplies = "→"
	SymbolIff     = "↔"
)

func (op Operator) String() string {
	switch op {
	case OpIff:
		return "IFF"
	case OpImplies:
		return "IMPLIES"
	case OpOr:
		return "OR"
	case OpXor:
		return "XOR"
	case OpAnd:
		return "AND"
	case OpNot:
		return "NOT"
	default:
		return "?"
	}
}

// Symbol returns the canonical Unicode symbol of the operator.
func (op Operator) Symbol() string {
	switch op {
	case OpIff:
		return SymbolIff
	case OpImplies:
		return SymbolImplies
	case OpOr:
		return SymbolOr
	case OpXor:
		return SymbolXor
	case OpAnd:
		return SymbolAnd
	case OpNot:
		return SymbolNot
	default:
		return "?"
	}
}

// IsBinary reports whether op takes two operands.
func (op Operator) IsBinary() bool {
	return op >= OpIff && op <= OpAnd
}

// Token represents a lexical token.
//
// Which of Op and Bool is meaningful depends on Type: Op for TokenOperator,
// Bool for TokenLiteral. Value always holds the lexeme as written, so
// variable names keep their original casing.
type Token struct {
	Type     TokenType
	Value    string
	Op       Operator
	Bool     bool
	Position int // rune offset in the input
}

func (t Token) String() string {
	switch t.Type {
	case TokenVariable:
		return fmt.Sprintf("Variable(%s)", t.Value)
	case TokenLiteral:
		if t.Bool {
			return "Literal(T)"
		}
		return "Literal(F)"
	case TokenOperator:
		return fmt.Sprintf("Operator(%s)", t.Op)
	case TokenLParen:
		return "LParen"
	case TokenRParen:
		return "RParen"
	default:
		return "Unknown"
	}
}
