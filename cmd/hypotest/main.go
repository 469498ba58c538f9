package main

import (
	"fmt"
	"io"
	"os"

	"hypotest/adapters/samples"
	"hypotest/adapters/stats/ttest"
	"hypotest/app"
	domain "hypotest/domain/ttest"
	"hypotest/internal/config"
	"hypotest/internal/logging"
	"hypotest/internal/report"
	"hypotest/ports"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// options are the flags shared by every test command
type options struct {
	a, b        string
	file        string
	sheet       string
	colA, colB  string
	alpha       float64
	alternative string
	format      string
	quiet       bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "hypotest",
		Short:         "Student's t-tests on two samples",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.Float64Var(&opts.alpha, "alpha", 0, "Significance level (default from HYPOTEST_ALPHA or 0.05)")
	flags.StringVar(&opts.alternative, "alternative", "", "Alternative hypothesis: two-sided|less|greater")
	flags.StringVar(&opts.format, "format", "", "Report format: text|markdown|html|json")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "Do not print a report")

	rootCmd.AddCommand(
		newDemoCmd(opts),
		newTestCmd(domain.KindIndependent, opts),
		newTestCmd(domain.KindPaired, opts),
		newTestCmd(domain.KindWelch, opts),
	)

	return rootCmd
}

func newDemoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in independent and paired examples",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, opts)
		},
	}
}

func newTestCmd(kind domain.Kind, opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   string(kind),
		Short: fmt.Sprintf("Run a %s", kind.Title()),
		Long: fmt.Sprintf(`Run a %s on two samples given inline or as two columns of a CSV/XLSX file.

Examples:
  hypotest %[2]s --a "25,30,28,35,40" --b "20,26,32,29,33"
  hypotest %[2]s --file trial.xlsx --sheet Results --col-a before --col-b after --alpha 0.01`, kind.Title(), kind),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTest(cmd, kind, opts)
		},
	}

	cmd.Flags().StringVar(&opts.a, "a", "", "Sample 1 as a comma separated list")
	cmd.Flags().StringVar(&opts.b, "b", "", "Sample 2 as a comma separated list")
	cmd.Flags().StringVar(&opts.file, "file", "", "CSV or XLSX file holding both samples")
	cmd.Flags().StringVar(&opts.sheet, "sheet", "", "Worksheet name for XLSX files (default from HYPOTEST_SHEET or Sheet1)")
	cmd.Flags().StringVar(&opts.colA, "col-a", "", "Column header for sample 1")
	cmd.Flags().StringVar(&opts.colB, "col-b", "", "Column header for sample 2")

	return cmd
}

// env bundles what every command needs after configuration is resolved
type env struct {
	cfg     *config.Config
	testCfg domain.Config
	logger  *logging.Logger
	service *app.HypothesisService
}

// setup loads .env and environment configuration, then applies flag overrides
func setup(cmd *cobra.Command, opts *options) (*env, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := logging.New(cmd.ErrOrStderr(), logging.ParseLevel(cfg.Log.Level, logging.LevelWarn))

	testCfg := cfg.TestDefaults()
	if cmd.Flags().Changed("alpha") {
		testCfg.Alpha = opts.alpha
	}
	if opts.alternative != "" {
		alt, err := domain.ParseAlternative(opts.alternative)
		if err != nil {
			return nil, err
		}
		testCfg.Alternative = alt
	}
	if opts.quiet {
		testCfg.Verbose = false
	}

	format := cfg.Report.Format
	if opts.format != "" {
		format = opts.format
	}
	reporter, err := newReporter(format, cmd.OutOrStdout())
	if err != nil {
		return nil, err
	}

	return &env{
		cfg:     cfg,
		testCfg: testCfg,
		logger:  logger,
		service: app.NewHypothesisService(ttest.NewTester(), reporter, logger),
	}, nil
}

func newReporter(format string, w io.Writer) (ports.Reporter, error) {
	f, err := report.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	return report.New(f, w)
}

func runTest(cmd *cobra.Command, kind domain.Kind, opts *options) error {
	e, err := setup(cmd, opts)
	if err != nil {
		return err
	}

	var source ports.SampleSource
	switch {
	case opts.file != "" && (opts.a != "" || opts.b != ""):
		return fmt.Errorf("use either --file or --a/--b, not both")
	case opts.file != "":
		sheet := opts.sheet
		if sheet == "" {
			sheet = e.cfg.Data.Sheet
		}
		source = samples.FileSource{
			Reader: samples.NewDataReader(opts.file, sheet, e.logger),
			ColA:   opts.colA,
			ColB:   opts.colB,
			Paired: kind == domain.KindPaired,
		}
	default:
		source = samples.InlineSource{A: opts.a, B: opts.b}
	}

	_, err = e.service.Run(app.TestRequest{Kind: kind, Source: source, Config: e.testCfg})
	return err
}

// demo samples: exam scores of two independent groups, and before/after
// measurements on the same five subjects
var (
	demoGroup1 = []float64{25, 30, 28, 35, 40}
	demoGroup2 = []float64{20, 26, 32, 29, 33}
	demoBefore = []float64{80, 75, 85, 90, 82}
	demoAfter  = []float64{78, 77, 83, 88, 85}
)

func runDemo(cmd *cobra.Command, opts *options) error {
	e, err := setup(cmd, opts)
	if err != nil {
		return err
	}

	if _, err := e.service.Compare(domain.KindIndependent, demoGroup1, demoGroup2, e.testCfg); err != nil {
		return err
	}

	if e.testCfg.Verbose {
		fmt.Fprint(cmd.OutOrStdout(), "\n\n")
	}

	_, err = e.service.Compare(domain.KindPaired, demoBefore, demoAfter, e.testCfg)
	return err
}
