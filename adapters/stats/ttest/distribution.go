package ttest

import (
	"math"

	"hypotest/domain/ttest"

	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/stat/distuv"
)

// pValue returns the probability, under a Student's t-distribution with df
// degrees of freedom, of a statistic at least as extreme as tStat in the
// direction of the alternative.
func pValue(tStat, df float64, alt ttest.Alternative) float64 {
	var p float64
	switch alt {
	case ttest.Less:
		p = distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}.CDF(tStat)
	case ttest.Greater:
		// P(T >= t) = P(T <= -t) by symmetry
		p = distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}.CDF(-tStat)
	default:
		p = twoTailed(tStat, df)
	}
	return math.Min(1, math.Max(0, p))
}

// twoTailed evaluates P(|T| >= |t|) directly as I_x(df/2, 1/2) with
// x = df/(df+t^2), avoiding the cancellation in 2*(1-CDF(|t|)).
func twoTailed(tStat, df float64) float64 {
	if tStat == 0 {
		return 1
	}
	x := df / (df + tStat*tStat)
	return mathext.RegIncBeta(0.5*df, 0.5, x)
}
