package sparse

// Coord is a nonzero position in a Boolean sparse matrix. Equality is
// componentwise; it is the canonical exchange format between the sparse,
// estimate, kernel, and oracle packages.
type Coord struct {
	Row int
	Col int
}

// HashCoord is a Coord enriched with two precomputed hashes:
//
//	H1 = Hash(Row, seed1)
//	H2 = Hash(Col, seed2)
//
// When a HashCoord plays the role of an R1 tuple (left operand of a join),
// Col is the join key and H1 is its a-hash. As an R2 tuple (right operand),
// Row is the join key and H2 is its c-hash. As an output (a,c) candidate,
// Row=a, Col=c, and Combine(H1, H2) is the meaningful combined hash.
type HashCoord struct {
	Row int
	Col int
	H1  float64
	H2  float64
}
