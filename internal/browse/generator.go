package browse

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/rand"
	"strings"

	"finder4/pkg/types"
)

// alphabet holds the symbols generated strings are drawn from.
const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Default generation parameters.
const (
	DefaultMinLen = 5
	DefaultMaxLen = 8
	DefaultCount  = 10
)

// Generator deterministically produces pseudo-random strings from a seed
// selection. The same seed and parameters always yield the same output.
type Generator struct {
	MinLen int
	MaxLen int
	Count  int
}

// NewGenerator returns a generator with the default parameters.
func NewGenerator() *Generator {
	return &Generator{
		MinLen: DefaultMinLen,
		MaxLen: DefaultMaxLen,
		Count:  DefaultCount,
	}
}

// seedValue reduces a seed selection to a 32-bit PRNG seed: the segments
// are joined with no separator, hashed with SHA-256, and the digest taken
// as a big-endian integer modulo 2^32 (its last four bytes).
func seedValue(seed []string) uint32 {
	joined := strings.Join(seed, "")
	if len(seed) == 0 {
		// Stable stand-in so an empty seed still hashes deterministically.
		joined = fmt.Sprint(seed)
	}
	sum := sha256.Sum256([]byte(joined))
	return binary.BigEndian.Uint32(sum[len(sum)-4:])
}

// Strings generates Count strings seeded by the selection. Each item draws
// one length uniform in [MinLen, MaxLen], then that many characters from
// the alphabet, consuming the random stream in item order.
func (g *Generator) Strings(seed []string) []string {
	if g.Count <= 0 {
		return []string{}
	}

	span := g.MaxLen - g.MinLen + 1
	if span < 1 {
		span = 1
	}

	rng := rand.New(rand.NewSource(int64(seedValue(seed))))
	out := make([]string, 0, g.Count)
	for i := 0; i < g.Count; i++ {
		length := g.MinLen + rng.Intn(span)
		var sb strings.Builder
		sb.Grow(length)
		for j := 0; j < length; j++ {
			sb.WriteByte(alphabet[rng.Intn(len(alphabet))])
		}
		out = append(out, sb.String())
	}
	return out
}

// Produce implements Provider. Generated entries are plain navigable labels.
func (g *Generator) Produce(seed []string) ([]types.Entry, error) {
	names := g.Strings(seed)
	entries := make([]types.Entry, len(names))
	for i, name := range names {
		entries[i] = types.Entry{Name: name}
	}
	return entries, nil
}
