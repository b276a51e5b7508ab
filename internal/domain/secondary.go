package domain

import (
	"bytes"
	"encoding/json"
)

// Secondary is an optional digit: the carry of an addition or multiplication,
// the borrow of a subtraction, or the remainder of a division.
//
// The zero value is None.
type Secondary struct {
	value   Digit
	present bool
}

// None is the absent secondary digit.
var None = Secondary{}

// Some returns a present secondary digit holding d.
func Some(d Digit) Secondary {
	return Secondary{value: d, present: true}
}

// Get returns the digit and whether it is present.
func (s Secondary) Get() (Digit, bool) {
	return s.value, s.present
}

// IsSome reports whether a secondary digit is present.
func (s Secondary) IsSome() bool {
	return s.present
}

// IsNone reports whether the secondary digit is absent.
func (s Secondary) IsNone() bool {
	return !s.present
}

// OrZero returns the digit, or Zero when absent.
func (s Secondary) OrZero() Digit {
	if !s.present {
		return Zero
	}
	return s.value
}

// String returns the digit character, or "none".
func (s Secondary) String() string {
	if !s.present {
		return "none"
	}
	return s.value.String()
}

// MarshalJSON encodes an absent digit as null and a present one as "d".
func (s Secondary) MarshalJSON() ([]byte, error) {
	if !s.present {
		return []byte("null"), nil
	}
	return json.Marshal(s.value)
}

// UnmarshalJSON accepts null or a one-character digit string.
// "0" decodes to None, since no operation yields a zero secondary digit.
func (s *Secondary) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*s = None
		return nil
	}
	var d Digit
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	if d == Zero {
		*s = None
		return nil
	}
	*s = Some(d)
	return nil
}
