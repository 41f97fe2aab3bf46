// Package genmat generates random sparse Boolean matrices for benchmarking
// and property testing, by rejection sampling distinct coordinates from a
// deterministic RNG.
package genmat
