// Package kernel implements the Boolean sparse matrix multiplication
// kernels: a naive row-wise gather-scatter over CSR operands, and an
// estimator-sized kernel that uses estimate.EstimateProductSize as a
// capacity hint before materializing its output. Batched forms multiply one
// left operand by many right operands: the naive batch reuses one visited
// scratch buffer, and the estimator-sized batch groups the left operand once.
package kernel
