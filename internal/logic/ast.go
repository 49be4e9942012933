package logic

import "strings"

// Expr represents a node of a parsed expression tree.
//
// The set of implementations is closed: LiteralExpr, VarExpr, UnaryExpr
// and BinaryExpr. Consumers switch over these four types exhaustively.
type Expr interface {
	isExpr()
	String() string
}

var (
	_ Expr = LiteralExpr{}
	_ Expr = VarExpr{}
	_ Expr = UnaryExpr{}
	_ Expr = BinaryExpr{}
)

// LiteralExpr represents the constant T or F.
type LiteralExpr struct {
	Val bool
}

func (LiteralExpr) isExpr() {}
func (e LiteralExpr) String() string {
	if e.Val {
		return "T"
	}
	return "F"
}

// VarExpr represents a variable reference. Name keeps the casing used in
// the statement; it is resolved case-insensitively at evaluation time.
type VarExpr struct {
	Name string
}

func (VarExpr) isExpr() {}
func (e VarExpr) String() string {
	return e.Name
}

// UnaryExpr represents a negation. Op is always OpNot.
type UnaryExpr struct {
	Op      Operator
	Operand Expr
}

func (UnaryExpr) isExpr() {}
func (e UnaryExpr) String() string {
	return e.Op.Symbol() + e.Operand.String()
}

// BinaryExpr represents a binary connective.
type BinaryExpr struct {
	Op    Operator
	Left  Expr
	Right Expr
}

func (BinaryExpr) isExpr() {}
func (e BinaryExpr) String() string {
	return "(" + e.Left.String() + " " + e.Op.Symbol() + " " + e.Right.String() + ")"
}

// Helper functions to construct AST nodes

// Lit creates a literal expression.
func Lit(v bool) Expr {
	return LiteralExpr{Val: v}
}

// Var creates a variable reference expression.
func Var(name string) Expr {
	return VarExpr{Name: name}
}

// Not creates a negation.
func Not(e Expr) Expr {
	return UnaryExpr{Op: OpNot, Operand: e}
}

// Binary creates a binary expression.
func Binary(op Operator, left, right Expr) Expr {
	return BinaryExpr{Op: op, Left: left, Right: right}
}

func And(left, right Expr) Expr     { return Binary(OpAnd, left, right) }
func Or(left, right Expr) Expr      { return Binary(OpOr, left, right) }
func Xor(left, right Expr) Expr     { return Binary(OpXor, left, right) }
func Implies(left, right Expr) Expr { return Binary(OpImplies, left, right) }
func Iff(left, right Expr) Expr     { return Binary(OpIff, left, right) }

// Variables returns the distinct variable names referenced by e in order
// of first appearance. Names differing only in case are reported once,
// using the first spelling seen.
func Variables(e Expr) []string {
	var names []string
	seen := make(map[string]bool)
	var walk func(Expr)
	walk = func(e Expr) {
		switch n := e.(type) {
		case LiteralExpr:
		case VarExpr:
			key := strings.ToLower(n.Name)
			if !seen[key] {
				seen[key] = true
				names = append(names, n.Name)
			}
		case UnaryExpr:
			walk(n.Operand)
		case BinaryExpr:
			walk(n.Left)
			walk(n.Right)
		}
	}
	walk(e)
	return names
}
