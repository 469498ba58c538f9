package app

import (
	"hypotest/domain/ttest"
	"hypotest/internal/errors"
	"hypotest/internal/logging"
	"hypotest/ports"
)

// HypothesisService runs a t-test and, when asked, reports the outcome
type HypothesisService struct {
	tester   ports.HypothesisTester
	reporter ports.Reporter
	logger   *logging.Logger
}

// TestRequest defines inputs for one test invocation
type TestRequest struct {
	Kind   ttest.Kind
	Source ports.SampleSource
	Config ttest.Config
}

// NewHypothesisService creates a hypothesis service. reporter may be nil,
// in which case Verbose has no effect.
func NewHypothesisService(tester ports.HypothesisTester, reporter ports.Reporter, logger *logging.Logger) *HypothesisService {
	return &HypothesisService{
		tester:   tester,
		reporter: reporter,
		logger:   logger,
	}
}

// Compare runs the requested test on two samples. The result is returned
// whether or not the report succeeds; a failed report is only logged.
func (s *HypothesisService) Compare(kind ttest.Kind, a, b []float64, cfg ttest.Config) (ttest.Result, error) {
	s.logger.Debug("[HypothesisService] running %s test (n1=%d, n2=%d, alpha=%g)", kind, len(a), len(b), cfg.Alpha)

	result, err := s.tester.Test(kind, a, b, cfg)
	if err != nil {
		return ttest.Result{}, errors.Wrapf(err, "%s test failed", kind)
	}

	s.logger.Info("[HypothesisService] %s: t=%.4f p=%.4f df=%g reject=%t",
		kind, result.Statistic, result.PValue, result.DegreesOfFreedom, result.RejectNull)

	if cfg.Verbose && s.reporter != nil {
		if err := s.reporter.Report(result, cfg); err != nil {
			s.logger.Warn("[HypothesisService] failed to write report: %v", err)
		}
	}

	return result, nil
}

// Run loads samples from the request's source and compares them
func (s *HypothesisService) Run(req TestRequest) (ttest.Result, error) {
	if req.Source == nil {
		return ttest.Result{}, errors.InvalidInput("no sample source given")
	}
	a, b, err := req.Source.Samples()
	if err != nil {
		return ttest.Result{}, errors.Wrap(err, "failed to load samples")
	}
	return s.Compare(req.Kind, a, b, req.Config)
}
