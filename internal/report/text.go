package report

import (
	"fmt"
	"io"
	"strings"

	"hypotest/domain/ttest"
)

// TextReporter writes the plain console report, one field per line
type TextReporter struct {
	w io.Writer
}

// NewTextReporter creates a console reporter writing to w
func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{w: w}
}

// Report writes the header, the six fields and the conclusion
func (r *TextReporter) Report(result ttest.Result, cfg ttest.Config) error {
	alpha := alphaOf(result, cfg)

	var b strings.Builder
	fmt.Fprintf(&b, "%s:\n", result.Kind.Title())
	for _, field := range rows(result, alpha) {
		fmt.Fprintf(&b, "  %s: %s\n", field.label, field.value)
	}
	if result.Alternative != "" && result.Alternative != ttest.TwoSided {
		fmt.Fprintf(&b, "  Alternative: %s\n", result.Alternative)
	}
	fmt.Fprintf(&b, "  %s\n", Conclusion(result, alpha))

	_, err := io.WriteString(r.w, b.String())
	return err
}
