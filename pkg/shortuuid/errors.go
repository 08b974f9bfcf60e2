package shortuuid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSymbol is matched by every InvalidSymbolError.
	ErrInvalidSymbol = errors.New("symbol not in alphabet")
	// ErrOutOfRange is matched by every RangeError.
	ErrOutOfRange = errors.New("value out of range")
	// ErrAlphabetTooShort is returned for alphabets with fewer than two symbols.
	ErrAlphabetTooShort = errors.New("alphabet must have at least 2 symbols")
	// ErrNegativeValue is returned when encoding a negative integer.
	ErrNegativeValue = errors.New("cannot encode a negative value")
)

// InvalidSymbolError reports a symbol that is not part of the alphabet.
type InvalidSymbolError struct {
	Symbol rune
	Offset int // byte offset in the input
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("invalid symbol %q at offset %d: %s", e.Symbol, e.Offset, ErrInvalidSymbol)
}

func (e *InvalidSymbolError) Unwrap() error {
	return ErrInvalidSymbol
}

// RangeError reports a decoded value that does not fit in the target type.
type RangeError struct {
	Input   string
	BitLen  int
	MaxBits int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%q decodes to a %d-bit value, max %d bits: %s", e.Input, e.BitLen, e.MaxBits, ErrOutOfRange)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}
