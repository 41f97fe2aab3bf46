package estimate

import (
	"sort"

	"github.com/IrakliGurgenidze/Matmul/sparse"
)

// group is a contiguous run of tuples sharing the same join-key value.
type group struct {
	key   int
	items []hashCoordLike
}

// groupByKey partitions a slice already sorted by keyOf into contiguous
// key-groups, preserving the order of ties established by the caller's
// sort (used to keep each group itself sorted by its combine-relevant
// hash).
func groupByKey(sorted []sparse.HashCoord, keyOf func(sparse.HashCoord) int, valOf func(sparse.HashCoord) hashCoordLike) []group {
	groups := make([]group, 0)
	for _, hc := range sorted {
		k := keyOf(hc)
		if n := len(groups); n > 0 && groups[n-1].key == k {
			groups[n-1].items = append(groups[n-1].items, valOf(hc))
			continue
		}
		groups = append(groups, group{key: k, items: []hashCoordLike{valOf(hc)}})
	}
	return groups
}

// EstimateProductSize estimates |pi_{a,c}(R1(a,b) join R2(b,c))|, the
// number of nonzeros in the Boolean product of the matrices r1Hashed and
// r2Hashed were drawn from, to within a (epsilon, delta) accuracy governed
// by the bottom-k sketch size k = floor(9/epsilon^2).
//
// r1Hashed tuples are interpreted in the R1 role (Col is the join key b,
// H1 is the a-hash); r2Hashed tuples are interpreted in the R2 role (Row
// is the join key b, H2 is the c-hash). Both must come from HashContexts
// using the same pair of seeds, or the combined hashes are meaningless.
func EstimateProductSize(r1Hashed, r2Hashed []sparse.HashCoord, epsilon float64) (float64, error) {
	if epsilon <= 0 || epsilon >= 1 {
		return 0, ErrInvalidEpsilon
	}
	// The small bias keeps the floor exact when epsilon*epsilon rounds up
	// (epsilon=0.1 gives k=900, not 899).
	k := int(9.0/(epsilon*epsilon) + 1e-9)
	if k < 1 {
		k = 1
	}

	r1 := append([]sparse.HashCoord(nil), r1Hashed...)
	r2 := append([]sparse.HashCoord(nil), r2Hashed...)

	sort.Slice(r1, func(i, j int) bool {
		if r1[i].Col != r1[j].Col {
			return r1[i].Col < r1[j].Col
		}
		return r1[i].H1 < r1[j].H1
	})
	sort.Slice(r2, func(i, j int) bool {
		if r2[i].Row != r2[j].Row {
			return r2[i].Row < r2[j].Row
		}
		return r2[i].H2 < r2[j].H2
	})

	aGroups := groupByKey(r1,
		func(hc sparse.HashCoord) int { return hc.Col },
		func(hc sparse.HashCoord) hashCoordLike { return hashCoordLike{key: hc.Row, h: hc.H1} },
	)
	cGroups := groupByKey(r2,
		func(hc sparse.HashCoord) int { return hc.Row },
		func(hc sparse.HashCoord) hashCoordLike { return hashCoordLike{key: hc.Col, h: hc.H2} },
	)

	st := newSketchState(k)

	i, j := 0, 0
	for i < len(aGroups) && j < len(cGroups) {
		switch {
		case aGroups[i].key == cGroups[j].key:
			pointerSweep(aGroups[i].items, cGroups[j].items, st)
			i++
			j++
		case aGroups[i].key < cGroups[j].key:
			i++
		default:
			j++
		}
	}

	st.combineSketch()

	if len(st.S) == k {
		return float64(k) / st.p, nil
	}
	return float64(k) * float64(k), nil
}
