package kernel

import (
	"fmt"
	"sort"

	"github.com/IrakliGurgenidze/Matmul/sparse"
)

// NaiveMatmul computes the Boolean product A*B via row-wise gather-scatter:
// for each left row, it walks every nonzero column j of that row, gathers
// B's row j, and scatters B's columns into the output row using a visited
// sentinel to dedup within the row. The newly appended slice of each row is
// sorted to re-establish CSR's column-ascending invariant.
func NaiveMatmul(a, b *sparse.CSR) (*sparse.CSR, error) {
	_, cols := b.Shape()
	return naiveMatmulWithScratch(a, b, NewScratch(cols))
}

func naiveMatmulWithScratch(a, b *sparse.CSR, scratch *Scratch) (*sparse.CSR, error) {
	aRows, aCols := a.Shape()
	bRows, bCols := b.Shape()
	if aCols != bRows {
		return nil, fmt.Errorf("kernel: naive matmul: A.N=%d != B.M=%d: %w", aCols, bRows, ErrDimensionMismatch)
	}
	scratch.ensureCapacity(bCols)

	rowPtr := make([]int, aRows+1)
	colIdx := make([]int, 0, a.NNZ())

	for i := 0; i < aRows; i++ {
		sentinel := scratch.base + i
		before := len(colIdx)

		for idx := a.RowPtr[i]; idx < a.RowPtr[i+1]; idx++ {
			j := a.ColIdx[idx]
			for idx2 := b.RowPtr[j]; idx2 < b.RowPtr[j+1]; idx2++ {
				k := b.ColIdx[idx2]
				if scratch.visited[k] != sentinel {
					scratch.visited[k] = sentinel
					colIdx = append(colIdx, k)
				}
			}
		}

		sort.Ints(colIdx[before:])
		rowPtr[i+1] = len(colIdx)
	}
	scratch.base += aRows

	return sparse.NewCSRResult(aRows, bCols, rowPtr, colIdx)
}
