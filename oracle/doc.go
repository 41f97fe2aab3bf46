// Package oracle computes the exact join size a Boolean matrix product
// would have, by the same relational-join reasoning the estimator
// approximates. It exists for tests: measuring estimate.EstimateProductSize's
// absolute error and checking the multiplication kernels' outputs against
// ground truth.
package oracle
