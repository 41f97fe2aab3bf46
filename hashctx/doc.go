// Package hashctx provides the seeded integer hash and pairwise-independent
// combiner that the estimate and sparse packages build on.
//
// A HashContext holds two independent 64-bit seeds drawn once and reused for
// the lifetime of an estimation call (and any HashCoords it consumes). There
// is no package-level global: callers construct a HashContext explicitly via
// New or NewWithSeeds and thread it into the constructors that need it.
package hashctx
