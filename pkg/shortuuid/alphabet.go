package shortuuid

// DefaultAlphabet is the 61-symbol set used for short identifiers.
// Digits 1-9 come first, then letters interleaved as AaBb...Zz. There is no '0'.
// Changing the order changes every encoded identifier.
const DefaultAlphabet = "123456789AaBbCcDdEeFfGgHhIiJjKkLlMmNnOoPpQqRrSsTtUuVvWwXxYyZz"

// Alphabet is an ordered set of symbols. A symbol's position is its digit value.
//
// Symbols are expected to be distinct. Duplicates are not rejected: a repeated
// symbol always decodes to the index of its first occurrence, which makes
// encodings ambiguous.
type Alphabet struct {
	symbols []rune
	index   map[rune]int
}

// NewAlphabet builds an Alphabet from the runes of symbols.
func NewAlphabet(symbols string) (*Alphabet, error) {
	runes := []rune(symbols)
	if len(runes) < 2 {
		return nil, ErrAlphabetTooShort
	}

	index := make(map[rune]int, len(runes))
	for i, r := range runes {
		if _, ok := index[r]; !ok {
			index[r] = i
		}
	}

	return &Alphabet{
		symbols: runes,
		index:   index,
	}, nil
}

// MustAlphabet is like NewAlphabet but panics on error.
func MustAlphabet(symbols string) *Alphabet {
	a, err := NewAlphabet(symbols)
	if err != nil {
		panic(err)
	}
	return a
}

// Base returns the number of symbols.
func (a *Alphabet) Base() int {
	return len(a.symbols)
}

// Zero returns the symbol for digit value 0, used for padding.
func (a *Alphabet) Zero() rune {
	return a.symbols[0]
}

// String returns the symbols in order.
func (a *Alphabet) String() string {
	return string(a.symbols)
}

// indexOf returns the digit value of r.
func (a *Alphabet) indexOf(r rune) (int, bool) {
	i, ok := a.index[r]
	return i, ok
}
