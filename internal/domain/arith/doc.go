// Package arith exposes the digit engine as a Service: operator and operand
// parsing, wrapped operation errors, and precomputed operation tables.
package arith
