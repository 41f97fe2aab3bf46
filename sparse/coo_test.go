package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IrakliGurgenidze/Matmul/hashctx"
	"github.com/IrakliGurgenidze/Matmul/sparse"
)

func mustCtx(t *testing.T) *hashctx.HashContext {
	t.Helper()
	hc, err := hashctx.NewWithSeeds(12345, 67890)
	require.NoError(t, err)
	return hc
}

func TestNewCOO_InvalidDimensions(t *testing.T) {
	hc := mustCtx(t)
	_, err := sparse.NewCOO(0, 5, nil, hc)
	assert.ErrorIs(t, err, sparse.ErrInvalidDimensions)

	_, err = sparse.NewCOO(5, -1, nil, hc)
	assert.ErrorIs(t, err, sparse.ErrInvalidDimensions)
}

func TestNewCOO_NilContext(t *testing.T) {
	_, err := sparse.NewCOO(2, 2, nil, nil)
	assert.ErrorIs(t, err, sparse.ErrNilHashContext)
}

func TestNewCOO_OutOfRange(t *testing.T) {
	hc := mustCtx(t)
	_, err := sparse.NewCOO(2, 2, []sparse.Coord{{Row: 2, Col: 0}}, hc)
	assert.ErrorIs(t, err, sparse.ErrOutOfRange)
}

func TestNewCOO_DuplicateCoord(t *testing.T) {
	hc := mustCtx(t)
	_, err := sparse.NewCOO(2, 2, []sparse.Coord{{Row: 0, Col: 1}, {Row: 0, Col: 1}}, hc)
	assert.ErrorIs(t, err, sparse.ErrDuplicateCoord)
}

func TestNewCOO_RoundTripAndHashCorrespondence(t *testing.T) {
	hc := mustCtx(t)
	in := []sparse.Coord{{Row: 0, Col: 1}, {Row: 1, Col: 0}}
	m, err := sparse.NewCOO(2, 2, in, hc)
	require.NoError(t, err)

	rows, cols := m.Shape()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 2, cols)

	assert.Equal(t, in, m.CoordsSlice())

	hashed := m.HashedCoords()
	require.Len(t, hashed, len(in))
	for i, c := range in {
		assert.Equal(t, c.Row, hashed[i].Row)
		assert.Equal(t, c.Col, hashed[i].Col)
		assert.Equal(t, hc.H1(c.Row), hashed[i].H1)
		assert.Equal(t, hc.H2(c.Col), hashed[i].H2)
	}
}
