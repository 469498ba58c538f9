package ttest

import (
	"fmt"
	"strings"
)

// Kind selects which t-test is run
type Kind string

const (
	KindIndependent Kind = "independent" // pooled-variance two-sample test
	KindPaired      Kind = "paired"      // one-sample test on pairwise differences
	KindWelch       Kind = "welch"       // unequal-variance two-sample test
)

// Title is the report header for the test kind
func (k Kind) Title() string {
	switch k {
	case KindIndependent:
		return "Independent Two-Sample T-test"
	case KindPaired:
		return "Paired Two-Sample T-test"
	case KindWelch:
		return "Welch's Two-Sample T-test"
	default:
		return "T-test"
	}
}

// Alternative is the alternative hypothesis the p-value is computed against
type Alternative string

const (
	TwoSided Alternative = "two-sided"
	Less     Alternative = "less"    // mean(a) < mean(b)
	Greater  Alternative = "greater" // mean(a) > mean(b)
)

// ParseAlternative converts a user-supplied name into an Alternative
func ParseAlternative(s string) (Alternative, error) {
	switch Alternative(strings.ToLower(strings.TrimSpace(s))) {
	case TwoSided, "", "two_sided", "differs":
		return TwoSided, nil
	case Less:
		return Less, nil
	case Greater:
		return Greater, nil
	}
	return "", fmt.Errorf("unknown alternative hypothesis %q", s)
}

// Config controls a single test invocation. Build it from DefaultConfig
// rather than a zero value.
type Config struct {
	Alpha       float64     `json:"alpha"`
	Verbose     bool        `json:"verbose"`
	Alternative Alternative `json:"alternative"`
}

// DefaultConfig returns alpha=0.05, verbose reporting and a two-sided alternative
func DefaultConfig() Config {
	return Config{
		Alpha:       0.05,
		Verbose:     true,
		Alternative: TwoSided,
	}
}

// Result is the outcome of one test invocation
type Result struct {
	Kind             Kind        `json:"kind"`
	Statistic        float64     `json:"statistic"`
	PValue           float64     `json:"p_value"`
	DegreesOfFreedom float64     `json:"degrees_of_freedom"`
	RejectNull       bool        `json:"reject_null"`
	Alpha            float64     `json:"alpha"`
	Alternative      Alternative `json:"alternative"`
	Mean1            float64     `json:"sample1_mean"`
	Mean2            float64     `json:"sample2_mean"`
	N1               int         `json:"sample1_size"`
	N2               int         `json:"sample2_size"`
}

// Decide reports whether a p-value rejects the null hypothesis at alpha
func Decide(pValue, alpha float64) bool {
	return pValue < alpha
}
