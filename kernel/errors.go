package kernel

import "errors"

// ErrDimensionMismatch is returned when a left operand's column count does
// not equal a right operand's row count.
var ErrDimensionMismatch = errors.New("kernel: dimension mismatch")
