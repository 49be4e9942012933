package logic

import (
	"errors"
	"fmt"
)

var (
	ErrSyntax          = errors.New("syntax error")
	ErrUnknownVariable = errors.New("unknown variable")
	ErrArityMismatch   = errors.New("number of values does not match number of variables")
)

// SyntaxError reports a token the parser could not accept. Token is nil
// when the input ended early.
type SyntaxError struct {
	Token    *Token
	Position int
}

func (e *SyntaxError) Error() string {
	if e.Token == nil {
		return "syntax error: unexpected end of input"
	}
	return fmt.Sprintf("syntax error at offset %d: unexpected token %q", e.Position, e.Token.Value)
}

func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

// UnknownVariableError reports a variable reference that does not resolve
// to any declared variable.
type UnknownVariableError struct {
	Name string
}

func (e *UnknownVariableError) Error() string {
	return fmt.Sprintf("unknown variable: %s", e.Name)
}

func (e *UnknownVariableError) Is(target error) bool {
	return target == ErrUnknownVariable
}
