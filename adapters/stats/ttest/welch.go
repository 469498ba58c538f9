package ttest

import (
	"math"

	"hypotest/domain/ttest"
	"hypotest/internal/errors"
)

// Welch performs Welch's t-test, which does not assume equal variances.
// Degrees of freedom come from the Welch-Satterthwaite equation and are
// generally not integral.
func Welch(a, b []float64, cfg ttest.Config) (ttest.Result, error) {
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
	if len(a) < 2 || len(b) < 2 {
		return ttest.Result{}, errors.InvalidInput(
			"welch test needs at least 2 observations per sample, got %d and %d", len(a), len(b))
	}

	tStat, df, err := computeWelchTTest(a, b)
	if err != nil {
		return ttest.Result{}, err
	}

	return finish(ttest.KindWelch, tStat, df, cfg, a, b)
}

// computeWelchTTest returns Welch's t-statistic and its degrees of freedom
func computeWelchTTest(group1, group2 []float64) (float64, float64, error) {
	n1 := float64(len(group1))
	n2 := float64(len(group2))

	mean1, var1, err := moments(group1)
	if err != nil {
		return 0, 0, err
	}
	mean2, var2, err := moments(group2)
	if err != nil {
		return 0, 0, err
	}

	// Welch's t-statistic: t = (mean1 - mean2) / sqrt(var1/n1 + var2/n2)
	se2 := var1/n1 + var2/n2
	if se2 == 0 || math.IsNaN(se2) || math.IsInf(se2, 0) {
		return 0, 0, errors.Numeric("standard error is %v", math.Sqrt(se2))
	}
	tStat := (mean1 - mean2) / math.Sqrt(se2)

	// Degrees of freedom using Welch-Satterthwaite equation
	df := se2 * se2 / (math.Pow(var1/n1, 2)/(n1-1) + math.Pow(var2/n2, 2)/(n2-1))

	return tStat, df, nil
}
