// Package collection lifts step-function operations to collections.
//
// A collection is a slice of *stairs.Stairs, optionally paired with labels
// (FromMap flattens a keyed map in key order). Two families of operations
// are provided:
//
//   - Point-wise reducers (Mean, Median, Min, Max, Sum, Aggregate): every
//     member is sampled on the union of all breakpoints and each row is
//     collapsed to one level, giving a new step function.
//   - Pairwise statistics (Cov, Corr): every pair i ≤ j is evaluated on a
//     bounded worker pool and the results fill a labeled, symmetric
//     matrix.Dense.
//
// Members are never mutated. NaN propagates through the built-in reducers;
// supply a custom Reducer to skip it.
//
//	labels, fs := collection.FromMap(byRoom)
//	avg, err := collection.Mean(fs)
//	corr, err := collection.Corr(labels, fs, collection.WithWorkers(4))
package collection
