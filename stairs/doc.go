// Package stairs implements step functions ("stairs"): piecewise-constant
// real-valued functions over a totally ordered domain, together with an
// algebra over them.
//
// 🚀 What is a Stairs?
//
//	A Stairs is an initial value (the value on (-∞, first breakpoint]) plus
//	a sparse, strictly increasing set of breakpoints. Each breakpoint can be
//	read either as a delta (the signed change occurring there) or as a
//	value (the level on the half-open interval starting there). Exactly one
//	of the two views is authoritative at any time; the other is derived on
//	demand (prefix sum / successive difference) and memoized until the next
//	mutation.
//
// ✨ Key features:
//   - Layering: add a value over [start, end) in place, scalar or vectorized.
//   - Binary combination: + − × ÷, relational (<, >, ≤, ≥, =, ≠) and
//     logical (and, or, xor) operators, pairwise min/max.
//   - Queries: left/right limits, clipping, masking, fillna, slicing,
//     windowed aggregation.
//   - Statistics: integral, mean, percentiles, ECDF, mode, median,
//     variance, std, histograms, covariance and correlation with lag.
//   - Frame export and YAML round trip of the interval view.
//
// ⚙️ Usage:
//
//	s := stairs.New().
//		Layer(1, 10, 2).
//		Layer(-4, 5, -1.75)
//
//	v := s.Limit(3, stairs.SideRight)
//	total, _ := s.Integral()
//
//	both, err := s.Add(stairs.New().Layer(0, 2, 1))
//
// Closedness:
//
//	Every Stairs is either left-closed ([a,b) intervals, the default) or
//	right-closed ((a,b]). Combining two non-constant functions with
//	different closedness fails with ErrClosedMismatch.
//
// NaN:
//
//	NaN marks "undefined" spans (after Clip/Mask). Arithmetic propagates NaN
//	naturally; relational and logical operators force NaN wherever either
//	operand is NaN. Division by a pointwise zero yields NaN, division by a
//	structurally zero Stairs fails with ErrZeroDivision.
//
// Concurrency:
//
//	A Stairs is not safe for concurrent mutation. Operations other than
//	Layer return fresh instances and never share backing storage.
package stairs
