package report

import (
	"io"
	"time"

	"hypotest/domain/ttest"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Envelope is the JSON document written per result
type Envelope struct {
	RunID       string       `json:"run_id"`
	GeneratedAt time.Time    `json:"generated_at"`
	Test        string       `json:"test"`
	Result      ttest.Result `json:"result"`
	Conclusion  string       `json:"conclusion"`
}

// JSONReporter writes one indented JSON envelope per result
type JSONReporter struct {
	w   io.Writer
	now func() time.Time
}

// NewJSONReporter creates a JSON reporter writing to w
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{w: w, now: time.Now}
}

// Report encodes the envelope
func (r *JSONReporter) Report(result ttest.Result, cfg ttest.Config) error {
	env := Envelope{
		RunID:       uuid.NewString(),
		GeneratedAt: r.now().UTC(),
		Test:        result.Kind.Title(),
		Result:      result,
		Conclusion:  Conclusion(result, alphaOf(result, cfg)),
	}

	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(env)
}
