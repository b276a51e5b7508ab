package domain

import "fmt"

// Result is the outcome of a per-digit operation: the primary digit and an
// optional secondary digit (carry, borrow or remainder).
type Result struct {
	Digit     Digit     `json:"digit"`
	Secondary Secondary `json:"secondary"`
}

// String formats r as "digit" or "digit,secondary".
func (r Result) String() string {
	if r.Secondary.IsNone() {
		return r.Digit.String()
	}
	return r.Digit.String() + "," + r.Secondary.String()
}

// split breaks n (at most 99) into its units digit and an optional tens digit.
// The tens digit is absent when it is zero.
func split(n uint8) Result {
	units := Digit(n % Radix)
	tens := Digit(n / Radix)
	if tens == Zero {
		return Result{Digit: units}
	}
	return Result{Digit: units, Secondary: Some(tens)}
}

// Add returns d + rhs. The carry is One when the sum is 10 or more.
func (d Digit) Add(rhs Digit) Result {
	return split(d.Ordinal() + rhs.Ordinal())
}

// Subtract returns d - rhs. When rhs is larger than d the primary digit wraps
// around by ten and the borrow is One; the caller must then take one from the
// next more significant position.
func (d Digit) Subtract(rhs Digit) Result {
	if d >= rhs {
		return Result{Digit: d - rhs}
	}
	return Result{Digit: d + Radix - rhs, Secondary: Some(One)}
}

// Multiply returns d * rhs. The primary digit is the units digit of the product
// and the carry holds the tens digit, which never exceeds 8.
func (d Digit) Multiply(rhs Digit) Result {
	return split(d.Ordinal() * rhs.Ordinal())
}

// Divide returns the integer quotient of d / rhs with the remainder as the
// secondary digit, absent when the division is exact.
//
// It returns ErrDivisionByZero when rhs is Zero, whatever the value of d.
func (d Digit) Divide(rhs Digit) (Result, error) {
	if rhs == Zero {
		return Result{}, ErrDivisionByZero
	}
	res := Result{Digit: d / rhs}
	if rem := d % rhs; rem != Zero {
		res.Secondary = Some(rem)
	}
	return res, nil
}

// Apply performs op on lhs and rhs. It is the single entry point used by
// code that chains digit operations across positions.
func Apply(op Operator, lhs, rhs Digit) (Result, error) {
	switch op {
	case OperatorAdd:
		return lhs.Add(rhs), nil
	case OperatorSubtract:
		return lhs.Subtract(rhs), nil
	case OperatorMultiply:
		return lhs.Multiply(rhs), nil
	case OperatorDivide:
		return lhs.Divide(rhs)
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrInvalidOperator, string(op))
	}
}
