package sparse

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/IrakliGurgenidze/Matmul/hashctx"
)

// nextDataLine advances sc past blank and '%'-comment lines and returns the
// next data line, or ok=false at EOF.
func nextDataLine(sc *bufio.Scanner) (line string, ok bool) {
	for sc.Scan() {
		line = strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}

		return line, true
	}

	return "", false
}

// parseMTXCoords reads the permissive Matrix Market coordinate grammar of
// §6: a header "M N nnz" followed by nnz "row col value" lines (1-based,
// 0-based on return), dropping zero-valued entries. No partial result is
// returned on error.
func parseMTXCoords(r io.Reader) (rows, cols int, coords []Coord, err error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	header, ok := nextDataLine(sc)
	if !ok {
		return 0, 0, nil, fmt.Errorf("parseMTXCoords: missing header line: %w", ErrFileError)
	}
	fields := strings.Fields(header)
	if len(fields) < 3 {
		return 0, 0, nil, fmt.Errorf("parseMTXCoords: malformed header %q: %w", header, ErrFileError)
	}
	rows, errR := strconv.Atoi(fields[0])
	cols, errC := strconv.Atoi(fields[1])
	nnz, errN := strconv.Atoi(fields[2])
	if errR != nil || errC != nil || errN != nil {
		return 0, 0, nil, fmt.Errorf("parseMTXCoords: non-integer header %q: %w", header, ErrFileError)
	}

	out := make([]Coord, 0, nnz)
	for i := 0; i < nnz; i++ {
		line, ok := nextDataLine(sc)
		if !ok {
			return 0, 0, nil, fmt.Errorf("parseMTXCoords: truncated at entry %d/%d: %w", i, nnz, ErrFileError)
		}
		fs := strings.Fields(line)
		if len(fs) < 3 {
			return 0, 0, nil, fmt.Errorf("parseMTXCoords: malformed entry %q: %w", line, ErrFileError)
		}
		r1, errR := strconv.Atoi(fs[0])
		c1, errC := strconv.Atoi(fs[1])
		val, errV := strconv.ParseFloat(fs[2], 64)
		if errR != nil || errC != nil || errV != nil {
			return 0, 0, nil, fmt.Errorf("parseMTXCoords: malformed entry %q: %w", line, ErrFileError)
		}
		if val == 0 {
			continue
		}
		out = append(out, Coord{Row: r1 - 1, Col: c1 - 1})
	}
	if err := sc.Err(); err != nil {
		return 0, 0, nil, fmt.Errorf("parseMTXCoords: %v: %w", err, ErrFileError)
	}

	return rows, cols, out, nil
}

// LoadCOOFromMTX opens and parses a Matrix Market coordinate file into a
// COO hashed under hc.
func LoadCOOFromMTX(path string, hc *hashctx.HashContext) (*COO, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sparse.LoadCOOFromMTX: %v: %w", err, ErrFileError)
	}
	defer f.Close()

	rows, cols, coords, err := parseMTXCoords(f)
	if err != nil {
		return nil, fmt.Errorf("sparse.LoadCOOFromMTX: %w", err)
	}

	m, err := NewCOO(rows, cols, coords, hc)
	if err != nil {
		return nil, fmt.Errorf("sparse.LoadCOOFromMTX: %w", err)
	}

	return m, nil
}

// LoadCSRFromMTX opens and parses a Matrix Market coordinate file directly
// into CSR form.
func LoadCSRFromMTX(path string) (*CSR, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sparse.LoadCSRFromMTX: %v: %w", err, ErrFileError)
	}
	defer f.Close()

	rows, cols, coords, err := parseMTXCoords(f)
	if err != nil {
		return nil, fmt.Errorf("sparse.LoadCSRFromMTX: %w", err)
	}

	m, err := NewCSR(rows, cols, coords)
	if err != nil {
		return nil, fmt.Errorf("sparse.LoadCSRFromMTX: %w", err)
	}

	return m, nil
}
