// Matmul estimates the number of nonzeros in the Boolean product of two
// sparse matrices without computing the product, and provides Boolean
// SpGEMM kernels sized from that estimate.
//
// See package hashctx for the seeded hash layer, package sparse for the
// COO/CSR matrix representations, package estimate for the product-size
// sketch, package kernel for the multiplication kernels, package oracle
// for the exact-count reference used by tests, and package genmat for
// generating random sparse test matrices.
package matmul
