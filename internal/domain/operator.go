package domain

import (
	"fmt"
	"strings"
)

// Operator names one of the four per-digit operations.
type Operator string

// Supported operators.
const (
	OperatorAdd      Operator = "add"
	OperatorSubtract Operator = "subtract"
	OperatorMultiply Operator = "multiply"
	OperatorDivide   Operator = "divide"
)

// Operators returns every supported operator in a stable order.
func Operators() []Operator {
	return []Operator{OperatorAdd, OperatorSubtract, OperatorMultiply, OperatorDivide}
}

// ParseOperator accepts an operator name or its symbol (+, -, *, x, /).
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseOperator(s string) (Operator, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "add", "+", "plus":
		return OperatorAdd, nil
	case "subtract", "sub", "-", "minus":
		return OperatorSubtract, nil
	case "multiply", "mul", "*", "x", "times":
		return OperatorMultiply, nil
	case "divide", "div", "/":
		return OperatorDivide, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidOperator, s)
	}
}

// IsValid reports whether op is a supported operator.
func (op Operator) IsValid() bool {
	switch op {
	case OperatorAdd, OperatorSubtract, OperatorMultiply, OperatorDivide:
		return true
	default:
		return false
	}
}

// Symbol returns the arithmetic symbol for op, or "?" if op is invalid.
func (op Operator) Symbol() string {
	switch op {
	case OperatorAdd:
		return "+"
	case OperatorSubtract:
		return "-"
	case OperatorMultiply:
		return "*"
	case OperatorDivide:
		return "/"
	default:
		return "?"
	}
}

// SecondaryKind names what the secondary digit of op means:
// "carry", "borrow" or "remainder".
func (op Operator) SecondaryKind() string {
	switch op {
	case OperatorAdd, OperatorMultiply:
		return "carry"
	case OperatorSubtract:
		return "borrow"
	case OperatorDivide:
		return "remainder"
	default:
		return ""
	}
}
