package estimate

import "errors"

// ErrInvalidEpsilon is returned when epsilon is not in the open interval
// (0, 1), the domain over which k = floor(9/epsilon^2) is meaningful.
var ErrInvalidEpsilon = errors.New("estimate: epsilon must be in (0, 1)")
