package generator

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/weiawesome/wes-io-live/shared/pkg/shortuuid"
)

// ShortUUIDGenerator generates random UUIDs in their short encoded form.
type ShortUUIDGenerator struct {
	codec *shortuuid.Codec
}

// NewShortUUIDGenerator creates a generator over codec.
func NewShortUUIDGenerator(codec *shortuuid.Codec) *ShortUUIDGenerator {
	return &ShortUUIDGenerator{codec: codec}
}

func (g *ShortUUIDGenerator) Generate() (string, error) {
	return g.codec.Random()
}

func (g *ShortUUIDGenerator) GenerateBatch(count int) ([]string, error) {
	if count < 1 || count > MaxBatch {
		return nil, fmt.Errorf("count must be between 1 and %d, got %d", MaxBatch, count)
	}
	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		id, err := g.Generate()
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (g *ShortUUIDGenerator) Validate(id string) (bool, string) {
	if n := len([]rune(id)); n != g.codec.MinimumLength() {
		return false, fmt.Sprintf("expected length %d, got %d", g.codec.MinimumLength(), n)
	}
	if _, err := g.codec.Decode(id); err != nil {
		return false, err.Error()
	}
	return true, ""
}

func (g *ShortUUIDGenerator) Parse(id string) (*ParseResult, error) {
	valid, reason := g.Validate(id)
	if !valid {
		return nil, fmt.Errorf("invalid short ID: %s", reason)
	}

	parsed, err := g.codec.Decode(id)
	if err != nil {
		return nil, err
	}

	return &ParseResult{
		UUID:        parsed.String(),
		UUIDVersion: int32(parsed.Version()),
		UUIDVariant: variantName(parsed.Variant()),
		IDLength:    int32(len([]rune(id))),
		Alphabet:    g.codec.Alphabet(),
	}, nil
}

func variantName(v uuid.Variant) string {
	switch v {
	case uuid.RFC4122:
		return "RFC4122"
	case uuid.Reserved:
		return "Reserved"
	case uuid.Microsoft:
		return "Microsoft"
	case uuid.Future:
		return "Future"
	default:
		return "Unknown"
	}
}
