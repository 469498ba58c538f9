package ttest

import (
	"math"

	"hypotest/domain/ttest"
	"hypotest/internal/errors"
)

// Paired performs a dependent two-sample t-test: a one-sample test on the
// element-wise differences a[i]-b[i].
func Paired(a, b []float64, cfg ttest.Config) (ttest.Result, error) {
	cfg, err := validateConfig(cfg)
	if err != nil {
		return ttest.Result{}, err
	}
	if err := validateSample("sample 1", a); err != nil {
		return ttest.Result{}, err
	}
	if err := validateSample("sample 2", b); err != nil {
		return ttest.Result{}, err
	}
	if len(a) != len(b) {
		return ttest.Result{}, errors.InvalidInput(
			"paired test needs samples of equal length, got %d and %d", len(a), len(b))
	}
	if len(a) < 2 {
		return ttest.Result{}, errors.InvalidInput(
			"paired test needs at least 2 pairs, got %d", len(a))
	}

	diffs := make([]float64, len(a))
	for i := range a {
		diffs[i] = a[i] - b[i]
	}

	meanDiff, varDiff, err := moments(diffs)
	if err != nil {
		return ttest.Result{}, err
	}
	sd := math.Sqrt(varDiff)
	if sd == 0 || math.IsNaN(sd) || math.IsInf(sd, 0) {
		return ttest.Result{}, errors.Numeric("standard deviation of differences is %v", sd)
	}

	n := float64(len(diffs))
	tStat := meanDiff / (sd / math.Sqrt(n))

	return finish(ttest.KindPaired, tStat, n-1, cfg, a, b)
}
