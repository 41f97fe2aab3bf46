package kernel

import (
	"fmt"

	"github.com/IrakliGurgenidze/Matmul/hashctx"
	"github.com/IrakliGurgenidze/Matmul/sparse"
)

// BatchNaiveMatmul multiplies A against every B in bs, validating all right
// operands' row counts up front so no partial results are emitted on a
// mismatch. A single Scratch is reused across the batch to amortize its
// allocation.
func BatchNaiveMatmul(a *sparse.CSR, bs []*sparse.CSR) ([]*sparse.CSR, error) {
	_, aCols := a.Shape()
	for idx, b := range bs {
		bRows, _ := b.Shape()
		if aCols != bRows {
			return nil, fmt.Errorf("kernel: batch naive matmul: operand %d: A.N=%d != B.M=%d: %w", idx, aCols, bRows, ErrDimensionMismatch)
		}
	}

	maxCols := 0
	for _, b := range bs {
		if _, cols := b.Shape(); cols > maxCols {
			maxCols = cols
		}
	}
	scratch := NewScratch(maxCols)

	out := make([]*sparse.CSR, len(bs))
	for i, b := range bs {
		m, err := naiveMatmulWithScratch(a, b, scratch)
		if err != nil {
			return nil, fmt.Errorf("kernel: batch naive matmul: operand %d: %w", i, err)
		}
		out[i] = m
	}
	return out, nil
}

// BatchEstimatorMatmulCSR multiplies A against every B in bs using the
// estimator-sized kernel, building leftGroups once against A and reusing it
// across the batch.
func BatchEstimatorMatmulCSR(a *sparse.COO, bs []*sparse.COO, epsilon float64) ([]*sparse.CSR, error) {
	_, aCols := a.Shape()
	for idx, b := range bs {
		bRows, _ := b.Shape()
		if aCols != bRows {
			return nil, fmt.Errorf("kernel: batch estimator matmul: operand %d: A.N=%d != B.M=%d: %w", idx, aCols, bRows, ErrDimensionMismatch)
		}
	}

	leftGroups := groupByCol(a.CoordsSlice(), aCols)

	out := make([]*sparse.CSR, len(bs))
	for i, b := range bs {
		m, err := estimatorSizedCSRWithLeftGroups(a, leftGroups, b, epsilon)
		if err != nil {
			return nil, fmt.Errorf("kernel: batch estimator matmul: operand %d: %w", i, err)
		}
		out[i] = m
	}
	return out, nil
}

// BatchEstimatorMatmulCOO is BatchEstimatorMatmulCSR's COO-result
// counterpart.
func BatchEstimatorMatmulCOO(a *sparse.COO, bs []*sparse.COO, epsilon float64, hc *hashctx.HashContext) ([]*sparse.COO, error) {
	_, aCols := a.Shape()
	for idx, b := range bs {
		bRows, _ := b.Shape()
		if aCols != bRows {
			return nil, fmt.Errorf("kernel: batch estimator matmul: operand %d: A.N=%d != B.M=%d: %w", idx, aCols, bRows, ErrDimensionMismatch)
		}
	}

	leftGroups := groupByCol(a.CoordsSlice(), aCols)

	out := make([]*sparse.COO, len(bs))
	for i, b := range bs {
		rows, cols, coords, err := estimatorSizedCoordsWithLeftGroups(a, leftGroups, b, epsilon)
		if err != nil {
			return nil, fmt.Errorf("kernel: batch estimator matmul: operand %d: %w", i, err)
		}
		m, err := sparse.NewCOO(rows, cols, coords, hc)
		if err != nil {
			return nil, fmt.Errorf("kernel: batch estimator matmul: operand %d: %w", i, err)
		}
		out[i] = m
	}
	return out, nil
}
