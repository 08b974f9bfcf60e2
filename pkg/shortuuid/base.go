package shortuuid

import (
	"math/big"
)

// IntToString encodes n in the base of the alphabet, most significant symbol first.
//
// Zero encodes to the empty string unless padding is requested. When
// padding > 0 the result is left-padded with the alphabet's zero symbol up
// to padding symbols; a longer natural encoding is never truncated.
// padding <= 0 disables padding.
func IntToString(n *big.Int, alphabet *Alphabet, padding int) (string, error) {
	if n.Sign() < 0 {
		return "", ErrNegativeValue
	}

	base := big.NewInt(int64(alphabet.Base()))
	num := new(big.Int).Set(n)
	digit := new(big.Int)

	// Least significant first, reversed below.
	out := make([]rune, 0, max(padding, 0))
	for num.Sign() > 0 {
		num.QuoRem(num, base, digit)
		out = append(out, alphabet.symbols[digit.Int64()])
	}

	if padding > 0 {
		for len(out) < padding {
			out = append(out, alphabet.Zero())
		}
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out), nil
}

// StringToInt decodes s, most significant symbol first, using alphabet.
// The empty string decodes to zero.
func StringToInt(s string, alphabet *Alphabet) (*big.Int, error) {
	base := big.NewInt(int64(alphabet.Base()))
	num := new(big.Int)
	digit := new(big.Int)

	for offset, r := range s {
		i, ok := alphabet.indexOf(r)
		if !ok {
			return nil, &InvalidSymbolError{Symbol: r, Offset: offset}
		}
		num.Mul(num, base)
		num.Add(num, digit.SetInt64(int64(i)))
	}
	return num, nil
}

// minimumLength returns the smallest L such that base^L >= 2^bits,
// i.e. the number of symbols needed for any value below 2^bits.
func minimumLength(base, bits int) int {
	limit := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	b := big.NewInt(int64(base))
	pow := big.NewInt(1)

	n := 0
	for pow.Cmp(limit) < 0 {
		pow.Mul(pow, b)
		n++
	}
	return n
}
