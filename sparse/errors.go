package sparse

import "errors"

// Sentinel errors for the sparse package. Algorithms return these directly
// or wrapped with fmt.Errorf("%w", ...); callers match with errors.Is.
//
// Error priority: constructors check shape first, then coordinates (NewCSR
// checks every index range before any duplicate; NewCOO checks range and
// duplication entry by entry). The .mtx loaders report parse failures
// before any constructor check runs.
var (
	// ErrInvalidDimensions indicates a requested M or N is not strictly positive.
	ErrInvalidDimensions = errors.New("sparse: dimensions must be > 0")

	// ErrOutOfRange indicates a coordinate lies outside the declared shape.
	ErrOutOfRange = errors.New("sparse: coordinate out of range")

	// ErrDuplicateCoord indicates the same (row, col) pair was supplied twice.
	ErrDuplicateCoord = errors.New("sparse: duplicate coordinate")

	// ErrNilHashContext indicates a HashCoord-producing constructor was
	// called without a *hashctx.HashContext.
	ErrNilHashContext = errors.New("sparse: hash context is nil")

	// ErrFileError wraps any failure to open, read, or parse a Matrix
	// Market file: unopenable file, malformed header, premature EOF, or a
	// non-numeric field.
	ErrFileError = errors.New("sparse: file error")
)
