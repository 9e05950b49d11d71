package bigint

import "fmt"

// InvalidDigitError reports a malformed character in a numeric string, or a
// digit that is not valid for the radix it was parsed under.
type InvalidDigitError struct {
	// Input is the string that failed to parse.
	Input string
	// Pos is the byte offset of the offending character.
	Pos int
}

// Error returns the error message for an InvalidDigitError.
func (e InvalidDigitError) Error() string {
	return fmt.Sprintf("invalid digit at position %d in %q", e.Pos, e.Input)
}

// InvalidRadixError reports a radix/digit mismatch: a radix outside the
// supported range for the requested operation, or an array digit that does
// not satisfy 0 <= digit < radix.
type InvalidRadixError struct {
	// Radix is the radix that was requested.
	Radix int64
	// Message explains the specific mismatch.
	Message string
}

// Error returns the error message for an InvalidRadixError.
func (e InvalidRadixError) Error() string {
	return fmt.Sprintf("invalid radix %d: %s", e.Radix, e.Message)
}

// DivisionByZeroError reports a division or reduction by zero.
type DivisionByZeroError struct{}

// Error returns the error message for a DivisionByZeroError.
func (e DivisionByZeroError) Error() string { return "division by zero" }

// InvalidExponentError reports a negative exponent passed to a modular
// exponentiation, which has no integer result.
type InvalidExponentError struct {
	// Exponent is the decimal rendering of the rejected exponent.
	Exponent string
}

// Error returns the error message for an InvalidExponentError.
func (e InvalidExponentError) Error() string {
	return fmt.Sprintf("modular exponent must be non-negative, got %s", e.Exponent)
}

// NotInvertibleError reports that a value has no modular inverse because it
// is not coprime with the modulus.
type NotInvertibleError struct {
	// Value is the decimal rendering of the value that has no inverse.
	Value string
	// Modulus is the decimal rendering of the modulus.
	Modulus string
}

// Error returns the error message for a NotInvertibleError.
func (e NotInvertibleError) Error() string {
	return fmt.Sprintf("%s is not invertible modulo %s", e.Value, e.Modulus)
}

// ShiftRangeError reports a shift count whose magnitude exceeds MaxShiftCount.
type ShiftRangeError struct {
	// Count is the rejected shift count.
	Count int64
}

// Error returns the error message for a ShiftRangeError.
func (e ShiftRangeError) Error() string {
	return fmt.Sprintf("shift count %d out of range (max %d)", e.Count, MaxShiftCount)
}

// CoercionError reports a value that cannot be coerced into an Int because
// its dynamic type is not one of the supported number-like forms.
type CoercionError struct {
	// Value is the value that could not be coerced.
	Value any
}

// Error returns the error message for a CoercionError.
func (e CoercionError) Error() string {
	return fmt.Sprintf("cannot coerce %T into a big integer", e.Value)
}
