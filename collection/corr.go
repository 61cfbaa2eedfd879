package collection

import (
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/sgostarter/i/l"

	"github.com/katalvlaran/staircase/matrix"
	"github.com/katalvlaran/staircase/stairs"
)

const (
	opCov  = "Cov"
	opCorr = "Corr"
)

type pairFunc func(a, b *stairs.Stairs, o stairs.CorrOptions) (float64, error)

type pair struct{ i, j int }

type pairResult struct {
	pair
	v   float64
	err error
}

// Cov returns the labeled, symmetric covariance matrix of fs.
func Cov(labels []string, fs []*stairs.Stairs, opts ...Option) (*matrix.Dense, error) {
	return pairwise(opCov, labels, fs, (*stairs.Stairs).Cov, opts...)
}

// Corr returns the labeled, symmetric correlation matrix of fs.
func Corr(labels []string, fs []*stairs.Stairs, opts ...Option) (*matrix.Dense, error) {
	return pairwise(opCorr, labels, fs, (*stairs.Stairs).Corr, opts...)
}

// pairwise evaluates fn over every pair i ≤ j on a bounded worker pool.
// Workers operate on private copies; the shared members are only read.
func pairwise(op string, labels []string, fs []*stairs.Stairs, fn pairFunc, opts ...Option) (*matrix.Dense, error) {
	o := gatherOptions(opts...)
	if len(fs) == 0 {
		return nil, collectionErrorf(op, ErrEmptyCollection)
	}
	if len(labels) != len(fs) {
		return nil, collectionErrorf(op, errors.Wrapf(stairs.ErrLengthMismatch, "%d labels, %d members", len(labels), len(fs)))
	}
	for i, f := range fs {
		if f == nil {
			return nil, collectionErrorf(op, errors.Wrapf(stairs.ErrNilStairs, "member %q", labels[i]))
		}
	}
	m, err := matrix.NewLabeled(labels)
	if err != nil {
		return nil, collectionErrorf(op, err)
	}

	n := len(fs)
	jobs := make(chan pair)
	results := make(chan pairResult, n)
	workers := o.workers
	if total := n * (n + 1) / 2; workers > total {
		workers = total
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for p := range jobs {
				v, err := fn(fs[p.i].Copy(), fs[p.j].Copy(), o.corr)
				results <- pairResult{pair: p, v: v, err: err}
			}
		}()
	}
	go func() {
		for i := 0; i < n; i++ {
			for j := i; j < n; j++ {
				jobs <- pair{i, j}
			}
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	var first error
	for r := range results {
		if r.err != nil {
			o.logger.WithFields(l.ErrorField(r.err), l.StringField("op", op),
				l.StringField("row", labels[r.i]), l.StringField("col", labels[r.j])).Error("pair failed")
			if first == nil {
				first = errors.Wrapf(r.err, "%s/%s", labels[r.i], labels[r.j])
			}

			continue
		}
		_ = m.Set(r.i, r.j, r.v)
		_ = m.Set(r.j, r.i, r.v)
	}
	if first != nil {
		return nil, collectionErrorf(op, first)
	}

	return m, nil
}
