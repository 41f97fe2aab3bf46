package estimate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSketchState_CombineSketch_TruncatesToK(t *testing.T) {
	st := newSketchState(2)
	st.F = append(st.F, acPair{a: 1, c: 1, hAC: 0.5}, acPair{a: 2, c: 2, hAC: 0.1}, acPair{a: 3, c: 3, hAC: 0.9})
	st.combineSketch()

	assert.Len(t, st.S, 2)
	assert.Equal(t, 0.1, st.S[0].hAC)
	assert.Equal(t, 0.5, st.S[1].hAC)
	assert.Equal(t, 0.5, st.p)
}

func TestSketchState_CombineSketch_NoOpUnderCapacity(t *testing.T) {
	st := newSketchState(5)
	st.F = append(st.F, acPair{a: 1, c: 1, hAC: 0.5})
	st.combineSketch()

	assert.Len(t, st.S, 1)
	assert.Equal(t, 1.0, st.p)
}

func TestSketchState_Admit_DedupesOutputCoordinate(t *testing.T) {
	st := newSketchState(10)
	st.admit(1, 2, 0.3)
	st.admit(1, 2, 0.1)
	assert.Len(t, st.F, 1)
	assert.Equal(t, 0.3, st.F[0].hAC)
}

func TestSketchState_Admit_CompactsAtCapacity(t *testing.T) {
	st := newSketchState(2)
	st.admit(1, 1, 0.4)
	st.admit(2, 2, 0.2)
	// F reached k=2, so combineSketch fires automatically. S now holds
	// exactly k elements, which is not over capacity, so p is unchanged.
	assert.Empty(t, st.F)
	assert.Len(t, st.S, 2)
	assert.Equal(t, 1.0, st.p)
}

func TestPointerSweep_StopsAtThreshold(t *testing.T) {
	st := newSketchState(10)
	st.p = 0.05

	aGroup := []hashCoordLike{{key: 1, h: 0.9}, {key: 2, h: 0.1}}
	cGroup := []hashCoordLike{{key: 10, h: 0.95}}

	pointerSweep(aGroup, cGroup, st)

	// combine(0.1, 0.95) = 0.15 >= p=0.05 for the minimizer, so nothing
	// should be admitted.
	assert.Empty(t, st.F)
}

func TestPointerSweep_AdmitsBelowThreshold(t *testing.T) {
	st := newSketchState(10)
	st.p = 1.0 // admit everything

	aGroup := []hashCoordLike{{key: 1, h: 0.2}, {key: 2, h: 0.8}}
	cGroup := []hashCoordLike{{key: 10, h: 0.3}}

	pointerSweep(aGroup, cGroup, st)

	assert.Len(t, st.F, 2)
}

func TestPointerSweep_EmptyGroupsAreNoOp(t *testing.T) {
	st := newSketchState(10)
	pointerSweep(nil, []hashCoordLike{{key: 1, h: 0.5}}, st)
	pointerSweep([]hashCoordLike{{key: 1, h: 0.5}}, nil, st)
	assert.Empty(t, st.F)
}
