// Package matrix provides a small row-major Dense matrix with optional
// row/column labels.
//
// It is the result type of pairwise statistics over a collection of step
// functions (covariance and correlation matrices): rows and columns share
// one label set, cells are addressable by index or by label, and NaN is a
// valid cell value unless WithValidateNaNInf is given.
package matrix
