package ports

import (
	"hypotest/domain/ttest"
)

// HypothesisTester computes a t-test of the given kind on two samples.
// Implementations must not retain or modify the samples.
type HypothesisTester interface {
	Test(kind ttest.Kind, a, b []float64, cfg ttest.Config) (ttest.Result, error)
}

// Reporter renders a result for humans or machines
type Reporter interface {
	Report(result ttest.Result, cfg ttest.Config) error
}

// SampleSource yields the two samples a test runs on
type SampleSource interface {
	Samples() (a, b []float64, err error)
}
