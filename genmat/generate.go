package genmat

import (
	"fmt"
	"math/rand"

	"github.com/IrakliGurgenidze/Matmul/sparse"
)

const (
	sparsityMin = 0.0
	sparsityMax = 1.0
)

// Generate returns exactly floor(rows*cols*sparsity) distinct coordinates
// drawn by rejection sampling from a deterministic RNG seeded by seed. The
// RNG is local to this call (not a package-level *rand.Rand), so two calls
// with the same arguments always produce the same result regardless of
// what else has run.
func Generate(sparsity float64, rows, cols int, seed int64) ([]sparse.Coord, error) {
	// 1) Validate parameters; fail before touching the RNG or allocating.
	if sparsity <= sparsityMin || sparsity > sparsityMax {
		return nil, fmt.Errorf("genmat.Generate: sparsity=%.6f not in (%.1f,%.1f]: %w",
			sparsity, sparsityMin, sparsityMax, ErrInvalidSparsity)
	}
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("genmat.Generate: rows=%d, cols=%d must both be > 0: %w",
			rows, cols, sparse.ErrInvalidDimensions)
	}

	target := int(float64(rows) * float64(cols) * sparsity)

	// 2) Rejection-sample distinct coordinates until target is reached.
	rng := rand.New(rand.NewSource(seed))
	seen := make(map[sparse.Coord]struct{}, target)
	out := make([]sparse.Coord, 0, target)
	for len(out) < target {
		c := sparse.Coord{Row: rng.Intn(rows), Col: rng.Intn(cols)}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}

	return out, nil
}
