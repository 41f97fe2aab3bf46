// Package estimate implements the pairwise-hash min-sketch that estimates
// |A*B|_0, the number of nonzeros in the Boolean product of two sparse
// matrices, without materializing the product.
//
// The estimator treats Boolean matrix multiplication as the project-join
// query z = |pi_{a,c}(R1(a,b) join R2(b,c))|: it groups both operands by
// their shared inner dimension b, sweeps each matching pair of groups from
// the minimizer of a combined hash outward, and keeps the k smallest
// combined hashes seen across the whole join. The k-th smallest of z
// uniform samples has expected value k/(z+1), so z is recovered as k/p once
// the sketch fills to exactly k elements.
package estimate
