package app

import (
	"bytes"
	stderrors "errors"
	"testing"

	"hypotest/adapters/samples"
	"hypotest/adapters/stats/ttest"
	domain "hypotest/domain/ttest"
	"hypotest/internal/errors"
	"hypotest/internal/logging"
	"hypotest/internal/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mockReporter records calls and can be told to fail
type mockReporter struct {
	mock.Mock
}

func (m *mockReporter) Report(result domain.Result, cfg domain.Config) error {
	args := m.Called(result, cfg)
	return args.Error(0)
}

func TestCompare_VerboseWritesTextReport(t *testing.T) {
	var out bytes.Buffer
	svc := NewHypothesisService(ttest.NewTester(), report.NewTextReporter(&out), logging.Discard())

	result, err := svc.Compare(domain.KindIndependent,
		[]float64{25, 30, 28, 35, 40}, []float64{20, 26, 32, 29, 33}, domain.DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, 8.0, result.DegreesOfFreedom)
	assert.Contains(t, out.String(), "Independent Two-Sample T-test:\n")
	assert.Contains(t, out.String(), "  Degrees of Freedom: 8\n")
	assert.Contains(t, out.String(), "Fail to reject the null hypothesis (p >= 0.05).")
}

func TestCompare_QuietSkipsReport(t *testing.T) {
	reporter := new(mockReporter)
	svc := NewHypothesisService(ttest.NewTester(), reporter, logging.Discard())

	cfg := domain.DefaultConfig()
	cfg.Verbose = false
	_, err := svc.Compare(domain.KindPaired, []float64{80, 75, 85, 90, 82}, []float64{78, 77, 83, 88, 85}, cfg)
	require.NoError(t, err)

	reporter.AssertNotCalled(t, "Report", mock.Anything, mock.Anything)
}

func TestCompare_ReportFailureDoesNotAlterResult(t *testing.T) {
	a := []float64{80, 75, 85, 90, 82}
	b := []float64{78, 77, 83, 88, 85}
	cfg := domain.DefaultConfig()

	want, err := ttest.Paired(a, b, cfg)
	require.NoError(t, err)

	reporter := new(mockReporter)
	reporter.On("Report", want, cfg).Return(stderrors.New("stdout closed")).Once()

	var logs bytes.Buffer
	svc := NewHypothesisService(ttest.NewTester(), reporter, logging.New(&logs, logging.LevelWarn))

	got, err := svc.Compare(domain.KindPaired, a, b, cfg)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Contains(t, logs.String(), "failed to write report: stdout closed")
	reporter.AssertExpectations(t)
}

func TestCompare_ErrorsKeepTheirKind(t *testing.T) {
	svc := NewHypothesisService(ttest.NewTester(), nil, logging.Discard())

	_, err := svc.Compare(domain.KindPaired, []float64{1, 2, 3, 4, 5}, []float64{1, 2, 3, 4}, domain.DefaultConfig())
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrInvalidInput), "got %v", err)

	_, err = svc.Compare(domain.KindPaired, []float64{1, 2, 3}, []float64{1, 2, 3}, domain.DefaultConfig())
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrNumeric), "got %v", err)
}

func TestRun_FromInlineSource(t *testing.T) {
	svc := NewHypothesisService(ttest.NewTester(), nil, logging.Discard())

	result, err := svc.Run(TestRequest{
		Kind:   domain.KindPaired,
		Source: samples.InlineSource{A: "80,75,85,90,82", B: "78,77,83,88,85"},
		Config: domain.DefaultConfig(),
	})
	require.NoError(t, err)
	assert.Equal(t, 4.0, result.DegreesOfFreedom)

	_, err = svc.Run(TestRequest{Kind: domain.KindPaired, Config: domain.DefaultConfig()})
	assert.True(t, stderrors.Is(err, errors.ErrInvalidInput))

	_, err = svc.Run(TestRequest{
		Kind:   domain.KindIndependent,
		Source: samples.InlineSource{A: "1,2,x", B: "3"},
		Config: domain.DefaultConfig(),
	})
	assert.True(t, stderrors.Is(err, errors.ErrInvalidInput))
}
