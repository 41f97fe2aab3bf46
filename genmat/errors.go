package genmat

import "errors"

// ErrInvalidSparsity is returned when sparsity is outside (0, 1].
var ErrInvalidSparsity = errors.New("genmat: sparsity must be in (0, 1]")
