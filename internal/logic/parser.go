package logic

// Parser builds an expression tree from a token sequence by recursive
// descent. There is one rule per precedence level, loosest first:
//
//	iff     = implies { IFF implies }
//	implies = or { IMPLIES or }
//	or      = xor { OR xor }
//	xor     = and { XOR and }
//	and     = not { AND not }
//	not     = NOT not | atom
//	atom    = "(" iff [ ")" ] | literal | variable
//
// Every binary level folds to the left, IMPLIES and IFF included, so
// "a → b → c" parses as "(a → b) → c".
type Parser struct {
	tokens  []Token
	current int
}

// NewParser creates a new Parser instance.
func NewParser(tokens []Token) *Parser {
	return &Parser{
		tokens:  tokens,
		current: 0,
	}
}

// Parse is a shorthand for NewParser(tokens).Parse().
func Parse(tokens []Token) (Expr, error) {
	return NewParser(tokens).Parse()
}

// ParseString tokenizes expr against the declared variables and parses it.
func ParseString(expr string, declared ...string) (Expr, error) {
	return Parse(Tokenize(expr, declared...))
}

// Parse consumes all tokens and returns the expression tree. Tokens left
// over after a complete expression are a syntax error.
func (p *Parser) Parse() (Expr, error) {
	expr, err := p.parseLevel(OpIff)
	if err != nil {
		return nil, err
	}
	if p.current < len(p.tokens) {
		return nil, p.unexpected()
	}
	return expr, nil
}

// parseLevel parses a left-folded chain of the binary operator op whose
// operands are parsed one level tighter.
func (p *Parser) parseLevel(op Operator) (Expr, error) {
	if op == OpNot {
		return p.parseNot()
	}

	left, err := p.parseLevel(op + 1)
	if err != nil {
		return nil, err
	}
	for p.matchOperator(op) {
		p.current++
		right, err := p.parseLevel(op + 1)
		if err != nil {
			return nil, err
		}
		left = BinaryExpr{Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseNot() (Expr, error) {
	if p.matchOperator(OpNot) {
		p.current++
		operand, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return UnaryExpr{Op: OpNot, Operand: operand}, nil
	}
	return p.parseAtom()
}

func (p *Parser) parseAtom() (Expr, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, p.unexpected()
	}

	switch tok.Type {
	case TokenLParen:
		p.current++
		expr, err := p.parseLevel(OpIff)
		if err != nil {
			return nil, err
		}
		// a missing ')' is tolerated
		if next, ok := p.peek(); ok && next.Type == TokenRParen {
			p.current++
		}
		return expr, nil

	case TokenLiteral:
		p.current++
		return LiteralExpr{Val: tok.Bool}, nil

	case TokenVariable:
		p.current++
		return VarExpr{Name: tok.Value}, nil

	default:
		return nil, p.unexpected()
	}
}

func (p *Parser) peek() (Token, bool) {
	if p.current >= len(p.tokens) {
		return Token{}, false
	}
	return p.tokens[p.current], true
}

func (p *Parser) matchOperator(op Operator) bool {
	tok, ok := p.peek()
	return ok && tok.Type == TokenOperator && tok.Op == op
}

func (p *Parser) unexpected() error {
	tok, ok := p.peek()
	if !ok {
		return &SyntaxError{Position: -1}
	}
	return &SyntaxError{Token: &tok, Position: tok.Position}
}
