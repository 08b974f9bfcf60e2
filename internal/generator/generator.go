package generator

// Generator defines the interface for ID generation, validation, and parsing.
type Generator interface {
	Generate() (string, error)
	GenerateBatch(count int) ([]string, error)
	Validate(id string) (bool, string) // (valid, reason)
	Parse(id string) (*ParseResult, error)
}

// ParseResult holds the fields recovered from a short ID.
type ParseResult struct {
	UUID        string // canonical 8-4-4-4-12 form
	UUIDVersion int32
	UUIDVariant string
	IDLength    int32
	Alphabet    string
}

// MaxBatch bounds GenerateBatch.
const MaxBatch = 1000
