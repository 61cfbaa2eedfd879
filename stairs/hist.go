package stairs

import (
	"math"
	"strings"

	"github.com/aclements/go-moremath/vec"
	"github.com/cockroachdb/errors"
)

const opHist = "Hist"

// Stat selects the normalization of histogram bins.
type Stat uint8

const (
	// StatProbability is the share of duration whose level falls in the bin.
	StatProbability Stat = iota
	// StatSum is the total duration whose level falls in the bin.
	StatSum
	// StatDensity is probability divided by bin width.
	StatDensity
	// StatFrequency is sum divided by bin width.
	StatFrequency
)

var statNames = [...]string{
	StatProbability: "probability",
	StatSum:         "sum",
	StatDensity:     "density",
	StatFrequency:   "frequency",
}

// String implements fmt.Stringer.
func (st Stat) String() string {
	if int(st) < len(statNames) {
		return statNames[st]
	}

	return "stat(?)"
}

// ParseStat maps a statistic name to Stat.
func ParseStat(s string) (Stat, error) {
	for i, name := range statNames {
		if strings.EqualFold(s, name) {
			return Stat(i), nil
		}
	}

	return 0, errors.Wrapf(ErrInvalidStat, "%q", s)
}

// Bin is one histogram bin over the value axis.
type Bin struct {
	Lower float64 `yaml:"lower"`
	Upper float64 `yaml:"upper"`
	Value float64 `yaml:"value"`
}

// Hist bins the levels of s over [lower, upper) by duration.
//
// bins are increasing edges on the value axis; nil means unit-width bins
// covering the level range. closed selects [a, b) (Left) or (a, b] (Right)
// bins.
//
// Errors:
//   - ErrInvalidBins for fewer than two or non-increasing edges.
//   - ErrInvalidStat for an unknown stat.
//   - ErrEmptyDistribution when s has no bounded, defined span in the window.
func (s *Stairs) Hist(lower, upper float64, bins []float64, closed Closed, stat Stat) ([]Bin, error) {
	if int(stat) >= len(statNames) {
		return nil, stairsErrorf(opHist, errors.Wrapf(ErrInvalidStat, "%d", stat))
	}
	d, err := s.durations(lower, upper)
	if err != nil {
		return nil, stairsErrorf(opHist, err)
	}
	if bins == nil {
		lo, hi := d.levels[0], d.levels[len(d.levels)-1]
		if math.IsInf(lo, 0) || math.IsInf(hi, 0) {
			return nil, stairsErrorf(opHist, errors.Wrap(ErrInvalidBins, "infinite level needs explicit edges"))
		}
		bins = unitBins(lo, hi, closed)
	}
	if err = validateBins(bins); err != nil {
		return nil, stairsErrorf(opHist, err)
	}

	shares := make([]float64, len(d.weights))
	for i, w := range d.weights {
		shares[i] = w / d.total
	}
	ecdf, err := FromDeltas(0, d.levels, shares)
	if err != nil {
		return nil, stairsErrorf(opHist, err)
	}

	// [a, b) bins take mass strictly below each edge, (a, b] bins mass at or below.
	side := SideRight
	if closed == Left {
		side = SideLeft
	}
	cdf := ecdf.LimitMany(bins, side)

	out := make([]Bin, len(bins)-1)
	for i := range out {
		a, b := bins[i], bins[i+1]
		p := cdf[i+1] - cdf[i]
		v := p
		switch stat {
		case StatSum:
			v = p * d.total
		case StatDensity:
			v = p / (b - a)
		case StatFrequency:
			v = p * d.total / (b - a)
		}
		out[i] = Bin{Lower: a, Upper: b, Value: v}
	}

	return out, nil
}

// unitBins returns integer edges covering [lo, hi] under closed.
func unitBins(lo, hi float64, closed Closed) []float64 {
	var from, to float64
	if closed == Left {
		from, to = math.Floor(lo), math.Floor(hi)+1
	} else {
		from, to = math.Ceil(lo)-1, math.Ceil(hi)
	}

	return vec.Linspace(from, to, int(to-from)+1)
}

func validateBins(bins []float64) error {
	if len(bins) < 2 {
		return errors.Wrapf(ErrInvalidBins, "%d edges", len(bins))
	}
	for i := 1; i < len(bins); i++ {
		if isNaN(bins[i]) || !(bins[i] > bins[i-1]) {
			return errors.Wrapf(ErrInvalidBins, "edge %d", i)
		}
	}

	return nil
}
