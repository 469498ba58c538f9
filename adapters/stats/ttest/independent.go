package ttest

import (
	"math"

	"hypotest/domain/ttest"
	"hypotest/internal/errors"
)

// Independent performs a two-sample t-test assuming equal population
// variances. The pooled variance weights each sample's variance by its
// degrees of freedom, so a single-observation sample is accepted as long as
// the other sample has at least two.
func Independent(a, b []float64, cfg ttest.Config) (ttest.Result, error) {
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

	n1 := float64(len(a))
	n2 := float64(len(b))
	df := n1 + n2 - 2
	if df <= 0 {
		return ttest.Result{}, errors.InvalidInput(
			"independent test needs more than 2 observations in total, got %d and %d", len(a), len(b))
	}

	mean1, var1, err := moments(a)
	if err != nil {
		return ttest.Result{}, err
	}
	mean2, var2, err := moments(b)
	if err != nil {
		return ttest.Result{}, err
	}

	// s_p^2 = ((n1-1)var1 + (n2-1)var2) / (n1+n2-2)
	pooled := ((n1-1)*var1 + (n2-1)*var2) / df
	if pooled == 0 || math.IsNaN(pooled) || math.IsInf(pooled, 0) {
		return ttest.Result{}, errors.Numeric("pooled variance is %v", pooled)
	}

	se := math.Sqrt(pooled * (1/n1 + 1/n2))
	tStat := (mean1 - mean2) / se

	return finish(ttest.KindIndependent, tStat, df, cfg, a, b)
}
