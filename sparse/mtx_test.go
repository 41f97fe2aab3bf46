package sparse_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IrakliGurgenidze/Matmul/sparse"
)

func writeMTX(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "test.mtx")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// TestLoadCSRFromMTX_Scenario4 is end-to-end scenario 4 from the spec.
func TestLoadCSRFromMTX_Scenario4(t *testing.T) {
	path := writeMTX(t, "2 3 3\n1 2 3\n2 2 2\n2 3 1\n")

	m, err := sparse.LoadCSRFromMTX(path)
	require.NoError(t, err)

	rows, cols := m.Shape()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 3, cols)
	assert.Equal(t, []sparse.Coord{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 1, Col: 2}}, m.Coords())
}

func TestLoadCOOFromMTX_SkipsComments(t *testing.T) {
	hc := mustCtx(t)
	path := writeMTX(t, "% a comment\n\n2 2 3\n% another comment\n1 1 1\n1 2 0\n2 2 5\n")

	m, err := sparse.LoadCOOFromMTX(path, hc)
	require.NoError(t, err)

	// the zero-valued entry (1,2) must be dropped
	assert.ElementsMatch(t, []sparse.Coord{{Row: 0, Col: 0}, {Row: 1, Col: 1}}, m.CoordsSlice())
}

func TestLoadCSRFromMTX_MissingFile(t *testing.T) {
	_, err := sparse.LoadCSRFromMTX(filepath.Join(t.TempDir(), "missing.mtx"))
	assert.ErrorIs(t, err, sparse.ErrFileError)
}

func TestLoadCSRFromMTX_MalformedHeader(t *testing.T) {
	path := writeMTX(t, "not a header\n")
	_, err := sparse.LoadCSRFromMTX(path)
	assert.ErrorIs(t, err, sparse.ErrFileError)
}

func TestLoadCSRFromMTX_TruncatedFile(t *testing.T) {
	path := writeMTX(t, "2 2 3\n1 1 1\n")
	_, err := sparse.LoadCSRFromMTX(path)
	assert.ErrorIs(t, err, sparse.ErrFileError)
}
