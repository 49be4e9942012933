package logic

import (
	"fmt"
	"strings"
)

// Evaluate computes the value of expr for one assignment. values[i] is the
// value of names[i]; variable references are resolved case-insensitively.
//
// Both operands of every binary connective are always evaluated. Operands
// are pure, so this only matters for which error is reported when both
// sides would fail: it is always the leftmost one.
func Evaluate(expr Expr, names []string, values []bool) (bool, error) {
	if len(names) != len(values) {
		return false, fmt.Errorf("%w: %d variables, %d values", ErrArityMismatch, len(names), len(values))
	}
	ev := evaluator{names: names, values: values}
	return ev.eval(expr)
}

type evaluator struct {
	names  []string
	values []bool
}

func (ev evaluator) eval(expr Expr) (bool, error) {
	switch e := expr.(type) {
	case LiteralExpr:
		return e.Val, nil

	case VarExpr:
		return ev.lookup(e.Name)

	case UnaryExpr:
		operand, err := ev.eval(e.Operand)
		if err != nil {
			return false, err
		}
		return evalUnary(e.Op, operand)

	case BinaryExpr:
		left, err := ev.eval(e.Left)
		if err != nil {
			return false, err
		}
		right, err := ev.eval(e.Right)
		if err != nil {
			return false, err
		}
		return evalBinary(e.Op, left, right)

	default:
		return false, fmt.Errorf("unsupported expression %T", expr)
	}
}

func (ev evaluator) lookup(name string) (bool, error) {
	for i, declared := range ev.names {
		if strings.EqualFold(declared, name) {
			return ev.values[i], nil
		}
	}
	return false, &UnknownVariableError{Name: name}
}

func evalUnary(op Operator, operand bool) (bool, error) {
	switch op {
	case OpNot:
		return !operand, nil
	default:
		return false, fmt.Errorf("unsupported unary operator %s", op)
	}
}

func evalBinary(op Operator, left, right bool) (bool, error) {
	switch op {
	case OpAnd:
		return left && right, nil
	case OpOr:
		return left || right, nil
	case OpXor:
		return left != right, nil
	case OpImplies:
		return !left || right, nil
	case OpIff:
		return left == right, nil
	default:
		return false, fmt.Errorf("unsupported binary operator %s", op)
	}
}
