// Command treeseq inspects event tables and the instruction streams that
// treeseq compositions emit.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/vango-dev/treeseq/internal/config"
	"github.com/vango-dev/treeseq/internal/errors"
	"github.com/vango-dev/treeseq/pkg/frames"
	"github.com/vango-dev/treeseq/pkg/middleware"
	"github.com/vango-dev/treeseq/pkg/treeseq"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	configPath string
	verbose    bool
	metrics    bool
	noColor    bool
}

func main() {
	rootCmd, opts := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		printError(os.Stderr, err, opts.verbose)
		os.Exit(1)
	}
}

func newRootCmd() (*cobra.Command, *globalOptions) {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "treeseq",
		Short: "Inspect render tree builder sequences",
		Long: `treeseq prints the event attribute tables and the exact instruction
stream (sequence numbers, scopes and attributes) emitted by treeseq
compositions.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			errors.SetColor(!opts.noColor)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to treeseq.json or treeseq.yaml")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log every builder instruction and print detailed errors")
	flags.BoolVar(&opts.metrics, "metrics", false, "print Prometheus instruction counters after the trace")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable ANSI colors in error output")

	rootCmd.AddCommand(
		eventsCmd(),
		lookupCmd(),
		iconCmd(opts),
		demoCmd(opts),
		versionCmd(),
	)

	return rootCmd, opts
}

// printError writes the full formatted error in verbose mode and a single
// line otherwise.
func printError(w io.Writer, err error, verbose bool) {
	if verbose {
		errors.FprintError(w, err)
		return
	}
	if te, ok := err.(*errors.Error); ok {
		fmt.Fprintf(w, "treeseq: %s\n", te.FormatCompact())
		return
	}
	fmt.Fprintf(w, "treeseq: %s\n", err)
}

// loadConfig resolves the config from --config or the working directory.
func (o *globalOptions) loadConfig() (*config.Config, error) {
	if o.configPath != "" {
		return config.LoadFile(o.configPath)
	}
	return config.LoadFromWorkingDir()
}

// render runs compose against a Recorder inside a span named after cmd,
// validates the recording and prints the trace. With --metrics the
// instruction counters follow the trace.
func (o *globalOptions) render(cmd *cobra.Command, compose func(b treeseq.Builder) (int, error)) error {
	cfg, err := o.loadConfig()
	if err != nil {
		return err
	}
	if o.verbose {
		cfg.LogLevel = "debug"
	}
	logger := cfg.Logger(cmd.ErrOrStderr())
	slog.SetDefault(logger)
	logger.Debug("config loaded", "path", cfg.Path())

	rec := frames.NewRecorder()
	mws := []middleware.Middleware{middleware.Logging(logger)}

	var reg *prometheus.Registry
	if o.metrics {
		reg = prometheus.NewRegistry()
		m := middleware.NewMetrics(
			middleware.WithNamespace(cfg.Metrics.Namespace),
			middleware.WithSubsystem(cfg.Metrics.Subsystem),
			middleware.WithRegistry(reg),
		)
		mws = append(mws, m.Middleware())
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var final int
	err = middleware.Trace(ctx, cmd.Name(), middleware.Chain(rec, mws...), func(_ context.Context, b treeseq.Builder) error {
		var err error
		final, err = compose(b)
		return err
	}, middleware.WithTracerName(cfg.Tracing.TracerName))
	if err != nil {
		return err
	}
	if err := rec.Validate(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printTrace(out, rec, final)
	if reg != nil {
		return printMetrics(out, reg)
	}
	return nil
}

func printTrace(w io.Writer, rec *frames.Recorder, final int) {
	fmt.Fprint(w, rec.String())
	fmt.Fprintf(w, "next sequence: %d\n", final)
}

func printMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
