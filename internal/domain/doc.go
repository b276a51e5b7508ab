// Package domain contains the decimal digit engine: the Digit value type, the
// optional secondary digit carried out of an operation, and the four per-digit
// operations (add, subtract, multiply, divide).
//
// Every operation is pure and safe for concurrent use. Addition, subtraction
// and multiplication are total over all digit pairs; division fails with
// ErrDivisionByZero when the divisor is Zero.
package domain
