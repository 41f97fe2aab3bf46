// Package sparse defines the Boolean sparse-matrix exchange formats used
// throughout this module: Coord and HashCoord (the coordinate-list
// vocabulary), COO (coordinate list plus precomputed per-axis hashes), and
// CSR (compressed sparse row). It also loads both from Matrix Market (.mtx)
// coordinate files.
//
// Matrices are immutable once constructed; every constructor validates
// shape and bounds up front and returns no partially built value on error.
package sparse
