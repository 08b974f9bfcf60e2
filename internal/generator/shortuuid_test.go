package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weiawesome/wes-io-live/shared/pkg/shortuuid"
)

func TestShortUUIDGenerator(t *testing.T) {
	var g Generator = NewShortUUIDGenerator(shortuuid.New())

	id, err := g.Generate()
	require.NoError(t, err)

	valid, reason := g.Validate(id)
	assert.True(t, valid, reason)

	res, err := g.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, int32(4), res.UUIDVersion)
	assert.Equal(t, "RFC4122", res.UUIDVariant)
	assert.Equal(t, int32(22), res.IDLength)
	assert.Equal(t, shortuuid.DefaultAlphabet, res.Alphabet)
}

func TestShortUUIDGeneratorParseKnown(t *testing.T) {
	g := NewShortUUIDGenerator(shortuuid.New())

	res, err := g.Parse("4PBaWLPnBhS2hjzggwJQXz")
	require.NoError(t, err)
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", res.UUID)
}

func TestShortUUIDGeneratorBatch(t *testing.T) {
	g := NewShortUUIDGenerator(shortuuid.New())

	ids, err := g.GenerateBatch(50)
	require.NoError(t, err)
	require.Len(t, ids, 50)

	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, 50)

	_, err = g.GenerateBatch(0)
	assert.Error(t, err)
	_, err = g.GenerateBatch(MaxBatch + 1)
	assert.Error(t, err)
}

func TestShortUUIDGeneratorValidate(t *testing.T) {
	g := NewShortUUIDGenerator(shortuuid.New())

	tests := []struct {
		name string
		id   string
	}{
		{"too short", "4PBaWLPnBh"},
		{"too long", "4PBaWLPnBhS2hjzggwJQXzz"},
		{"invalid symbol", "0PBaWLPnBhS2hjzggwJQXz"},
		{"out of range", "zzzzzzzzzzzzzzzzzzzzzz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, reason := g.Validate(tt.id)
			assert.False(t, valid)
			assert.NotEmpty(t, reason)

			_, err := g.Parse(tt.id)
			assert.Error(t, err)
		})
	}
}
