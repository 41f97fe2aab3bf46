package oracle

import "github.com/IrakliGurgenidze/Matmul/sparse"

// GroundTruthNNZ computes |pi_{a,c}(r1 join r2)| exactly: it groups r1 by
// its join column and r2 by its join row, walks matching keys, and counts
// the distinct (a, c) pairs reachable through any shared inner index. Its
// complexity is proportional to the true join size, not to |r1|+|r2|,
// which is the whole reason the estimator in package estimate exists.
func GroundTruthNNZ(r1, r2 []sparse.Coord) int {
	aByB := make(map[int][]int)
	for _, c := range r1 {
		aByB[c.Col] = append(aByB[c.Col], c.Row)
	}
	cByB := make(map[int][]int)
	for _, c := range r2 {
		cByB[c.Row] = append(cByB[c.Row], c.Col)
	}

	seen := make(map[sparse.Coord]struct{})
	for b, as := range aByB {
		cs, ok := cByB[b]
		if !ok {
			continue
		}
		for _, a := range as {
			for _, c := range cs {
				seen[sparse.Coord{Row: a, Col: c}] = struct{}{}
			}
		}
	}
	return len(seen)
}
