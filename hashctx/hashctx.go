package hashctx

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"

	"github.com/spaolacci/murmur3"
)

// Prime bounds the range seeds are drawn from: [1, Prime-1]. It is larger
// than math.MaxUint32 by design (see original_source); seeds are truncated
// to 32 bits when fed to the MurmurHash3_x86_32 keyed hash, matching the
// reference implementation's implicit narrowing of a uint64 seed argument.
const Prime uint64 = 4294967311

// ErrSeedOutOfRange indicates a seed supplied to NewWithSeeds falls outside
// the documented [1, Prime-1] domain.
var ErrSeedOutOfRange = errors.New("hashctx: seed out of range [1, Prime-1]")

// HashContext carries the two independent seeds used by Hash and, through
// it, by every HashCoord derived from a given pair of matrices. It is
// immutable once constructed; there is no global instance.
type HashContext struct {
	seed1, seed2 uint64
}

// New draws two independent seeds from a non-deterministic source, each
// uniform in [1, Prime-1].
func New() (*HashContext, error) {
	s1, err := randSeed()
	if err != nil {
		return nil, fmt.Errorf("hashctx.New: %w", err)
	}
	s2, err := randSeed()
	if err != nil {
		return nil, fmt.Errorf("hashctx.New: %w", err)
	}

	return &HashContext{seed1: s1, seed2: s2}, nil
}

// NewWithSeeds builds a HashContext from explicit seeds, for deterministic
// tests. Both seeds must lie in [1, Prime-1].
func NewWithSeeds(s1, s2 uint64) (*HashContext, error) {
	if s1 < 1 || s1 > Prime-1 {
		return nil, fmt.Errorf("hashctx.NewWithSeeds: seed1=%d: %w", s1, ErrSeedOutOfRange)
	}
	if s2 < 1 || s2 > Prime-1 {
		return nil, fmt.Errorf("hashctx.NewWithSeeds: seed2=%d: %w", s2, ErrSeedOutOfRange)
	}

	return &HashContext{seed1: s1, seed2: s2}, nil
}

// Seed1 returns the context's first seed (used for the a-hash / row hash).
func (hc *HashContext) Seed1() uint64 { return hc.seed1 }

// Seed2 returns the context's second seed (used for the c-hash / col hash).
func (hc *HashContext) Seed2() uint64 { return hc.seed2 }

// randSeed draws a uniform integer in [1, Prime-1] from crypto/rand.
func randSeed() (uint64, error) {
	span := new(big.Int).SetUint64(Prime - 1) // draws land in [0, Prime-2]
	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		return 0, fmt.Errorf("randSeed: %w", err)
	}

	return n.Uint64() + 1, nil // shift into [1, Prime-1]
}

// Hash applies the MurmurHash3_x86_32 keyed integer hash to x with the given
// seed and maps the 32-bit output into [0, 1] by dividing by 2^32-1; only
// the raw output 2^32-1 maps to exactly 1.
//
// x is encoded as a little-endian 4-byte int32 (matching the reference
// implementation's `int` input), and seed is truncated to 32 bits exactly
// as the C++ narrowing conversion from uint64_t to uint32_t would.
func Hash(x int, seed uint64) float64 {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(int32(x)))

	h := murmur3.New32WithSeed(uint32(seed))
	_, _ = h.Write(buf[:]) // hash.Hash32.Write never errors
	raw := h.Sum32()

	return float64(raw) / float64(^uint32(0))
}

// H1 hashes x with the context's first seed, mapping it into [0,1] as Hash does.
func (hc *HashContext) H1(x int) float64 { return Hash(x, hc.seed1) }

// H2 hashes x with the context's second seed, mapping it into [0,1] as Hash does.
func (hc *HashContext) H2(x int) float64 { return Hash(x, hc.seed2) }

// Combine is the pairwise-independent combiner used to derive hAC from two
// independent uniform [0,1) hashes: the fractional difference (h1-h2) mod 1.
//
// Combine(x, x) == 0 for any x. Combine is not symmetric: for fixed h2, the
// map h1 -> Combine(h1, h2) is a bijection on [0,1), but Combine(a,b) need
// not equal Combine(b,a).
func Combine(h1, h2 float64) float64 {
	diff := h1 - h2
	if diff < 0 {
		diff += 1.0
	}

	return diff
}
