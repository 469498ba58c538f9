// Package ttest computes Student's t-tests on two samples.
//
// Every function is pure: samples are read, never modified, and each call
// returns a fresh Result. Nothing here prints; reporting lives in
// internal/report.
package ttest

import (
	"math"

	"hypotest/domain/ttest"
	"hypotest/internal/errors"

	"github.com/montanaflynn/stats"
)

// Tester runs t-tests by kind. It satisfies ports.HypothesisTester.
type Tester struct{}

// NewTester creates a new t-test runner
func NewTester() *Tester {
	return &Tester{}
}

// Test dispatches to the test selected by kind
func (t *Tester) Test(kind ttest.Kind, a, b []float64, cfg ttest.Config) (ttest.Result, error) {
	return Run(kind, a, b, cfg)
}

// Run dispatches to the test selected by kind
func Run(kind ttest.Kind, a, b []float64, cfg ttest.Config) (ttest.Result, error) {
	switch kind {
	case ttest.KindIndependent:
		return Independent(a, b, cfg)
	case ttest.KindPaired:
		return Paired(a, b, cfg)
	case ttest.KindWelch:
		return Welch(a, b, cfg)
	}
	return ttest.Result{}, errors.InvalidInput("unknown test kind %q", kind)
}

// validateConfig checks alpha and fills in the default alternative
func validateConfig(cfg ttest.Config) (ttest.Config, error) {
	if math.IsNaN(cfg.Alpha) || cfg.Alpha <= 0 || cfg.Alpha >= 1 {
		return cfg, errors.InvalidInput("alpha must be in (0, 1), got %v", cfg.Alpha)
	}
	if cfg.Alternative == "" {
		cfg.Alternative = ttest.TwoSided
	}
	switch cfg.Alternative {
	case ttest.TwoSided, ttest.Less, ttest.Greater:
	default:
		return cfg, errors.InvalidInput("unknown alternative hypothesis %q", cfg.Alternative)
	}
	return cfg, nil
}

// validateSample rejects empty samples and non-finite values
func validateSample(name string, data []float64) error {
	if len(data) == 0 {
		return errors.InvalidInput("%s is empty", name)
	}
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.InvalidInput("%s[%d] is not finite (%v)", name, i, v)
		}
	}
	return nil
}

// moments returns the mean and unbiased (n-1) variance of data.
// Constant data has a variance of exactly 0, even when rounding in the mean
// would leave a tiny positive sum of squares.
func moments(data []float64) (mean, variance float64, err error) {
	mean, err = stats.Mean(data)
	if err != nil {
		return 0, 0, errors.Wrap(err, "failed to compute mean")
	}
	if isConstant(data) {
		return mean, 0, nil
	}
	variance, err = stats.SampleVariance(data)
	if err != nil {
		return 0, 0, errors.Wrap(err, "failed to compute sample variance")
	}
	return mean, variance, nil
}

// isConstant reports whether every value in data is identical
func isConstant(data []float64) bool {
	lo, err := stats.Min(data)
	if err != nil {
		return true
	}
	hi, _ := stats.Max(data)
	return lo == hi
}

// finish turns a statistic into a Result: p-value, decision, and echo fields
func finish(kind ttest.Kind, tStat, df float64, cfg ttest.Config, a, b []float64) (ttest.Result, error) {
	if math.IsNaN(tStat) || math.IsInf(tStat, 0) {
		return ttest.Result{}, errors.Numeric("t-statistic is undefined (%v)", tStat)
	}

	mean1, _ := stats.Mean(a)
	mean2, _ := stats.Mean(b)
	p := pValue(tStat, df, cfg.Alternative)

	return ttest.Result{
		Kind:             kind,
		Statistic:        tStat,
		PValue:           p,
		DegreesOfFreedom: df,
		RejectNull:       ttest.Decide(p, cfg.Alpha),
		Alpha:            cfg.Alpha,
		Alternative:      cfg.Alternative,
		Mean1:            mean1,
		Mean2:            mean2,
		N1:               len(a),
		N2:               len(b),
	}, nil
}
