package domain

import (
	"fmt"
)

// Digit is a single base-ten digit. The zero value is Zero.
//
// Only the ten constants below are valid digits. Values outside that range can
// only be produced by an explicit conversion from uint8 and are rejected by
// IsValid; every constructor in this package returns a valid Digit.
type Digit uint8

// The ten decimal digits, in ordinal order.
const (
	Zero Digit = iota
	One
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
)

// Radix is the number of distinct digits.
const Radix = 10

var allDigits = [Radix]Digit{Zero, One, Two, Three, Four, Five, Six, Seven, Eight, Nine}

// All returns the ten digits in ordinal order.
func All() []Digit {
	out := make([]Digit, Radix)
	copy(out, allDigits[:])
	return out
}

// FromOrdinal converts n to a Digit. It returns ErrDigitOutOfRange when n > 9.
func FromOrdinal(n uint64) (Digit, error) {
	if n >= Radix {
		return Zero, fmt.Errorf("%w: %d", ErrDigitOutOfRange, n)
	}
	return Digit(n), nil
}

// FromOrdinalSaturating converts n to a Digit, mapping every value above 8 to Nine.
//
// This is lossy: 10, 255 and any larger input all become Nine. Prefer
// FromOrdinal unless compatibility with the clamping conversion is required.
func FromOrdinalSaturating(n uint64) Digit {
	if n >= uint64(Nine) {
		return Nine
	}
	return Digit(n)
}

// MustFromOrdinal is like FromOrdinal but panics on out-of-range input.
// It is intended for constants and tests.
func MustFromOrdinal(n uint64) Digit {
	d, err := FromOrdinal(n)
	if err != nil {
		panic(err)
	}
	return d
}

// FromRune converts the characters '0' through '9' to a Digit.
func FromRune(r rune) (Digit, error) {
	if r < '0' || r > '9' {
		return Zero, fmt.Errorf("%w: %q", ErrInvalidDigitChar, r)
	}
	return Digit(r - '0'), nil
}

// Parse converts a one-character string such as "7" to a Digit.
func Parse(s string) (Digit, error) {
	runes := []rune(s)
	if len(runes) != 1 {
		return Zero, fmt.Errorf("%w: %q", ErrInvalidDigitChar, s)
	}
	return FromRune(runes[0])
}

// IsValid reports whether d is one of the ten decimal digits.
func (d Digit) IsValid() bool {
	return d <= Nine
}

// Ordinal returns the numeric value of d, 0 through 9.
func (d Digit) Ordinal() uint8 {
	return uint8(d)
}

// Rune returns the character form of d, '0' through '9'.
func (d Digit) Rune() rune {
	return rune('0' + d)
}

// String implements fmt.Stringer.
func (d Digit) String() string {
	if !d.IsValid() {
		return fmt.Sprintf("Digit(%d)", uint8(d))
	}
	return string(d.Rune())
}

// MarshalText encodes d as its single character form.
func (d Digit) MarshalText() ([]byte, error) {
	if !d.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrDigitOutOfRange, uint8(d))
	}
	return []byte{byte(d.Rune())}, nil
}

// UnmarshalText decodes a single character digit.
func (d *Digit) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
