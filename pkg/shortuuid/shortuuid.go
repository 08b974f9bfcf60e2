// Package shortuuid encodes 128-bit UUIDs as short fixed-width strings over
// an arbitrary alphabet, and converts integers to and from base-N strings.
package shortuuid

import (
	"fmt"
	"math/big"

	"github.com/google/uuid"
)

const uuidBits = 128

// Default is the codec over DefaultAlphabet.
var Default = New()

// Codec converts UUIDs to and from short strings. A Codec is immutable and
// safe for concurrent use.
type Codec struct {
	alphabet *Alphabet
	length   int
}

// New returns a codec over DefaultAlphabet.
func New() *Codec {
	return newCodec(MustAlphabet(DefaultAlphabet))
}

// NewWithAlphabet returns a codec over a custom alphabet.
func NewWithAlphabet(symbols string) (*Codec, error) {
	a, err := NewAlphabet(symbols)
	if err != nil {
		return nil, err
	}
	return newCodec(a), nil
}

func newCodec(a *Alphabet) *Codec {
	return &Codec{
		alphabet: a,
		length:   minimumLength(a.Base(), uuidBits),
	}
}

// Alphabet returns the codec's symbols in order.
func (c *Codec) Alphabet() string {
	return c.alphabet.String()
}

// MinimumLength is the number of symbols needed to represent any UUID.
// 22 for the default alphabet.
func (c *Codec) MinimumLength() int {
	return c.length
}

// Encode returns id padded to MinimumLength symbols.
func (c *Codec) Encode(id uuid.UUID) string {
	return c.EncodePadded(id, c.length)
}

// EncodePadded returns id padded to padding symbols. padding <= 0 disables
// padding, in which case uuid.Nil encodes to "".
func (c *Codec) EncodePadded(id uuid.UUID, padding int) string {
	n := new(big.Int).SetBytes(id[:])
	// A UUID is never negative, so IntToString cannot fail here.
	s, _ := IntToString(n, c.alphabet, padding)
	return s
}

// Decode converts s back to a UUID. Short inputs fill the high bits with zero.
func (c *Codec) Decode(s string) (uuid.UUID, error) {
	n, err := StringToInt(s, c.alphabet)
	if err != nil {
		return uuid.Nil, fmt.Errorf("decode %q: %w", s, err)
	}
	return toUUID(s, n)
}

// DecodeLegacy decodes s written least significant symbol first.
func (c *Codec) DecodeLegacy(s string) (uuid.UUID, error) {
	return c.Decode(reverse(s))
}

// Random encodes a new random (version 4) UUID.
func (c *Codec) Random() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate UUID: %w", err)
	}
	return c.Encode(id), nil
}

func toUUID(input string, n *big.Int) (uuid.UUID, error) {
	if n.BitLen() > uuidBits {
		return uuid.Nil, &RangeError{Input: input, BitLen: n.BitLen(), MaxBits: uuidBits}
	}
	var id uuid.UUID
	n.FillBytes(id[:])
	return id, nil
}

func reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
