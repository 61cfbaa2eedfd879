// Package staircase is an in-memory algebra of step functions: build them
// from intervals, combine them like numbers, and summarize them like data.
//
// 🚀 What is a step function here?
//
//	A piecewise-constant function over a totally ordered domain (plain
//	floats or datetimes), stored as an initial level plus a sparse set of
//	breakpoints. Occupancy, inventory, headcount, machine state: anything
//	that changes at instants and holds in between.
//
// ✨ What you get:
//
//   - Layering: add a value over [start, end), one interval or many at once
//   - Arithmetic, relational and logical operators between functions or scalars
//   - Limits, sampling, clipping, masking, fillna, slicing and resampling
//   - Statistics: integral, mean, percentiles, ECDF, mode, variance,
//     histograms, covariance and correlation with lag
//   - Collections: point-wise mean/median/min/max/sum and labeled
//     covariance/correlation matrices computed on a worker pool
//
// Everything is organized under four subpackages:
//
//	domain/      endpoint sentinels (±∞) and the datetime ↔ hours adapter
//	stairs/      the Stairs type, its operators, queries and statistics
//	collection/  reducers and pairwise statistics over many functions
//	matrix/      the labeled dense matrix returned by collection
//
// Quick ASCII example:
//
//	   2 ┤   ┌───┐
//	   1 ┤───┘   └───
//	     └───1───3───
//
//	f := stairs.New(stairs.WithInitialValue(1)).Layer(1, 3, 1)
//
// See examples/ for end-to-end scenarios.
//
//	go get github.com/katalvlaran/staircase
package staircase
