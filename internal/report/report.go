// Package report renders t-test results. The statistical core never writes
// output itself; callers pick a Reporter and invoke it after a test.
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"hypotest/domain/ttest"
	"hypotest/internal/errors"
	"hypotest/ports"
)

// Format names a report encoding
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatJSON     Format = "json"
)

// Formats lists every supported format
var Formats = []Format{FormatText, FormatMarkdown, FormatHTML, FormatJSON}

// ParseFormat converts a user-supplied name into a Format
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", "txt":
		return FormatText, nil
	case "md":
		return FormatMarkdown, nil
	case FormatText, FormatMarkdown, FormatHTML, FormatJSON:
		return f, nil
	}
	return "", errors.InvalidInput("unknown report format %q", s)
}

// New returns a reporter for format writing to w
func New(format Format, w io.Writer) (ports.Reporter, error) {
	switch format {
	case FormatText, "":
		return NewTextReporter(w), nil
	case FormatMarkdown:
		return NewMarkdownReporter(w), nil
	case FormatHTML:
		return NewHTMLReporter(w), nil
	case FormatJSON:
		return NewJSONReporter(w), nil
	}
	return nil, errors.InvalidInput("unknown report format %q", format)
}

// Conclusion is the closing sentence of every report, e.g.
// "Reject the null hypothesis (p < 0.05)."
func Conclusion(result ttest.Result, alpha float64) string {
	if result.RejectNull {
		return fmt.Sprintf("Reject the null hypothesis (p < %s).", formatAlpha(alpha))
	}
	return fmt.Sprintf("Fail to reject the null hypothesis (p >= %s).", formatAlpha(alpha))
}

// alphaOf returns the alpha the decision was made with, so the conclusion
// always agrees with RejectNull. cfg only fills in for hand-built results.
func alphaOf(result ttest.Result, cfg ttest.Config) float64 {
	if result.Alpha > 0 {
		return result.Alpha
	}
	return cfg.Alpha
}

// formatAlpha prints alpha as given: 0.05 stays "0.05"
func formatAlpha(alpha float64) string {
	return strconv.FormatFloat(alpha, 'f', -1, 64)
}

// formatDoF prints integral degrees of freedom as integers
func formatDoF(df float64) string {
	if df == math.Trunc(df) && !math.IsInf(df, 0) {
		return strconv.FormatFloat(df, 'f', 0, 64)
	}
	return strconv.FormatFloat(df, 'f', 4, 64)
}

type row struct {
	label string
	value string
}

// rows returns the report body in its fixed order
func rows(result ttest.Result, alpha float64) []row {
	return []row{
		{"Sample 1 Mean", fmt.Sprintf("%.4f", result.Mean1)},
		{"Sample 2 Mean", fmt.Sprintf("%.4f", result.Mean2)},
		{"T-statistic", fmt.Sprintf("%.4f", result.Statistic)},
		{"P-value", fmt.Sprintf("%.4f", result.PValue)},
		{"Degrees of Freedom", formatDoF(result.DegreesOfFreedom)},
		{"Alpha", formatAlpha(alpha)},
	}
}
