package estimate

import (
	"sort"

	"github.com/IrakliGurgenidze/Matmul/hashctx"
)

// acPair is one candidate (a, c) output coordinate discovered during the
// join sweep, carrying the combined hash it was admitted under.
type acPair struct {
	a, c int
	hAC  float64
}

// acKey packs an (a, c) pair into a single map key. Rows and columns are
// assumed to fit in 32 bits, which holds for any matrix this package can
// otherwise address.
func acKey(a, c int) uint64 {
	return uint64(uint32(a))<<32 | uint64(uint32(c))
}

// sketchState is the bottom-k min-sketch threaded through a single
// EstimateProductSize call: S holds the k smallest combined hashes admitted
// so far, F is the pending buffer awaiting the next compaction, p is the
// current admission threshold, and seen deduplicates (a, c) pairs across the
// whole join so a repeated output coordinate is only ever sampled once.
type sketchState struct {
	k    int
	S    []acPair
	F    []acPair
	p    float64
	seen map[uint64]struct{}
}

func newSketchState(k int) *sketchState {
	return &sketchState{
		k:    k,
		S:    make([]acPair, 0, k),
		F:    make([]acPair, 0, k),
		p:    1.0,
		seen: make(map[uint64]struct{}),
	}
}

// combineSketch folds F into S, and if the union exceeds k, truncates it
// back to the k smallest combined hashes and lowers p to the new
// admission threshold (the k-th smallest hash). Called whenever F reaches capacity k and once more
// at the end of the sweep to drain any remainder.
func (st *sketchState) combineSketch() {
	st.S = append(st.S, st.F...)
	st.F = st.F[:0]

	if len(st.S) <= st.k {
		return
	}

	sort.Slice(st.S, func(i, j int) bool { return st.S[i].hAC < st.S[j].hAC })
	st.S = st.S[:st.k]
	st.p = st.S[st.k-1].hAC
}

// admit records a newly discovered (a, c) candidate at combined hash h,
// skipping it if that output coordinate has already been sampled, and
// compacts the sketch once F fills to k.
func (st *sketchState) admit(a, c int, h float64) {
	key := acKey(a, c)
	if _, dup := st.seen[key]; dup {
		return
	}
	st.seen[key] = struct{}{}
	st.F = append(st.F, acPair{a: a, c: c, hAC: h})
	if len(st.F) >= st.k {
		st.combineSketch()
	}
}

// pointerSweep walks one matched pair of join-key groups: aGroup holds the
// R1 tuples sharing the inner-dimension value (their Row is the surviving
// "a" and H1 is the a-hash), cGroup holds the R2 tuples sharing the same
// value (their Col is the surviving "c" and H2 is the c-hash). It starts
// each c-tuple's scan at the a-tuple minimizing the combined hash and walks
// outward circularly, stopping as soon as the combined hash meets or
// exceeds the current admission threshold p.
func pointerSweep(aGroup, cGroup []hashCoordLike, st *sketchState) {
	n := len(aGroup)
	if n == 0 || len(cGroup) == 0 {
		return
	}

	for _, c := range cGroup {
		best := 0
		bestH := hashctx.Combine(aGroup[0].h, c.h)
		for s := 1; s < n; s++ {
			h := hashctx.Combine(aGroup[s].h, c.h)
			if h < bestH {
				bestH = h
				best = s
			}
		}

		for i := 0; i < n; i++ {
			s := (best + i) % n
			h := hashctx.Combine(aGroup[s].h, c.h)
			if h >= st.p {
				break
			}
			st.admit(aGroup[s].key, c.key, h)
		}
	}
}

// hashCoordLike is the minimal per-tuple projection pointerSweep needs: the
// surviving output coordinate component (key) and the hash that
// participates in the combine step (h).
type hashCoordLike struct {
	key int
	h   float64
}
