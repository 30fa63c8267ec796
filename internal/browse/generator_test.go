package browse_test

import (
	"strings"
	"testing"

	"finder4/internal/browse"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratorDeterminism(t *testing.T) {
	gen := browse.NewGenerator()

	first := gen.Strings([]string{"a", "b"})
	second := gen.Strings([]string{"a", "b"})
	assert.Equal(t, first, second, "same seed must produce identical output")
}

func TestGeneratorSeedOrderMatters(t *testing.T) {
	gen := browse.NewGenerator()

	ab := gen.Strings([]string{"a", "b"})
	ba := gen.Strings([]string{"b", "a"})
	assert.NotEqual(t, ab, ba, "seed order should change the output")
}

func TestGeneratorEmptySeedIsStable(t *testing.T) {
	gen := browse.NewGenerator()

	first := gen.Strings([]string{})
	second := gen.Strings(nil)
	require.Len(t, first, browse.DefaultCount)
	assert.Equal(t, first, second)
}

func TestGeneratorCountZero(t *testing.T) {
	gen := &browse.Generator{MinLen: 5, MaxLen: 8, Count: 0}
	assert.Empty(t, gen.Strings([]string{"seed"}))
}

func TestGeneratorLengthBoundsAndAlphabet(t *testing.T) {
	const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	gen := &browse.Generator{MinLen: 3, MaxLen: 6, Count: 50}
	for _, s := range gen.Strings([]string{"bounds"}) {
		assert.GreaterOrEqual(t, len(s), 3)
		assert.LessOrEqual(t, len(s), 6)
		for _, r := range s {
			assert.True(t, strings.ContainsRune(alphabet, r), "unexpected character %q", r)
		}
	}
}

func TestGeneratorFixedLength(t *testing.T) {
	gen := &browse.Generator{MinLen: 4, MaxLen: 4, Count: 20}
	for _, s := range gen.Strings([]string{"x"}) {
		assert.Len(t, s, 4)
	}
}

func TestGeneratorProduce(t *testing.T) {
	gen := browse.NewGenerator()

	entries, err := gen.Produce([]string{"a"})
	require.NoError(t, err)
	require.Len(t, entries, browse.DefaultCount)

	names := gen.Strings([]string{"a"})
	for i, entry := range entries {
		assert.Equal(t, names[i], entry.Name)
		assert.True(t, entry.Navigable())
		assert.False(t, entry.Dir)
	}
}
