package report

import (
	"fmt"
	"io"
	"strings"

	"hypotest/domain/ttest"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// MarkdownReporter writes the report as a markdown table
type MarkdownReporter struct {
	w io.Writer
}

// NewMarkdownReporter creates a markdown reporter writing to w
func NewMarkdownReporter(w io.Writer) *MarkdownReporter {
	return &MarkdownReporter{w: w}
}

// Report writes the markdown document
func (r *MarkdownReporter) Report(result ttest.Result, cfg ttest.Config) error {
	_, err := io.WriteString(r.w, renderMarkdown(result, cfg))
	return err
}

func renderMarkdown(result ttest.Result, cfg ttest.Config) string {
	alpha := alphaOf(result, cfg)

	var b strings.Builder
	fmt.Fprintf(&b, "### %s\n\n", result.Kind.Title())
	b.WriteString("| Field | Value |\n")
	b.WriteString("|---|---|\n")
	for _, field := range rows(result, alpha) {
		fmt.Fprintf(&b, "| %s | %s |\n", field.label, field.value)
	}
	if result.Alternative != "" && result.Alternative != ttest.TwoSided {
		fmt.Fprintf(&b, "| Alternative | %s |\n", result.Alternative)
	}
	fmt.Fprintf(&b, "\n**%s**\n", Conclusion(result, alpha))
	return b.String()
}

// HTMLReporter renders the markdown report to an HTML fragment
type HTMLReporter struct {
	w io.Writer
}

// NewHTMLReporter creates an HTML reporter writing to w
func NewHTMLReporter(w io.Writer) *HTMLReporter {
	return &HTMLReporter{w: w}
}

// Report writes the HTML fragment
func (r *HTMLReporter) Report(result ttest.Result, cfg ttest.Config) error {
	// parsers keep state between documents, so build one per report
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})

	out := markdown.ToHTML([]byte(renderMarkdown(result, cfg)), p, renderer)
	_, err := r.w.Write(out)
	return err
}
