package domain

import "errors"

// Errors returned by the digit engine.
var (
	// ErrDivisionByZero is returned by Divide when the divisor is Zero.
	// It is the only way a digit operation can fail.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrDigitOutOfRange is returned when an ordinal above 9 is converted to a Digit.
	ErrDigitOutOfRange = errors.New("digit out of range")

	// ErrInvalidDigitChar is returned when text is not a single character '0'-'9'.
	ErrInvalidDigitChar = errors.New("invalid digit character")

	// ErrInvalidOperator is returned for an unknown operator name or symbol.
	ErrInvalidOperator = errors.New("invalid operator")
)
