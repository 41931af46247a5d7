// tedjust rewrites slicer G-code to change the extrusion flow and the
// extruding speed on selected layers.
//
// Usage:
//
//	tedjust [flags] file.gcode TWEAK...
//
// Tweaks:
//
//	L3.5      layer at 3.5mm
//	L3.5-5    layers between 3.5 and 5mm, borders included
//	L3.5+     layer at 3.5mm and everything above
//	F1.1      extrude 1.1 times as much on the selected layers
//	S30       extrude at 30mm/s on the selected layers
//
// Flags:
//
//	-rules string    rules file with [layer <sel>] sections, applied before TWEAK tokens
//	-o string        output path (default: <stem>.ted<ext> next to the input)
//	-suffix string   suffix inserted before the extension (default ".ted")
//	-sort-rules      sort rules by start height before resolving
//	-metrics string  write run counters in Prometheus text format
//	-v               debug logging
//
// Examples:
//
//	# More flow on the first layer
//	tedjust part.gcode L0.2 F1.1
//
//	# Faster above 10mm, slower and thicker for a bridge
//	tedjust part.gcode L10+ S100 L15.25-15.75 F1.1 S30
//
// Retraction and re-priming moves are never tweaked, and travel moves keep
// their speed.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"tedjust-go/pkg/config"
	"tedjust-go/pkg/errors"
	"tedjust-go/pkg/layers"
	"tedjust-go/pkg/log"
	"tedjust-go/pkg/metrics"
	"tedjust-go/pkg/rewrite"
)

const usageLine = "Usage: tedjust [flags] file.gcode L0 F1.1 L5.25-5.75 F1.1 S10 L20+ S200"

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

type options struct {
	rulesFile   string
	output      string
	suffix      string
	sortRules   bool
	metricsFile string
	verbose     bool

	input  string
	tweaks []string
}

// run executes one invocation and returns the process exit code.
func run(args []string, stderr io.Writer) int {
	logger := log.New("tedjust")
	logger.SetWriter(stderr)
	if stderr != os.Stderr {
		logger.SetColorize(false)
	}
	if err := log.ConfigureFromEnv(logger); err != nil {
		logger.WithError(err).Warn("ignoring log environment")
	}

	opts, err := parseFlags(args, stderr)
	if err != nil {
		return exitCode(logger, err)
	}
	if opts.verbose {
		logger.SetLevel(log.DEBUG)
	}

	runID := uuid.NewString()
	logger.SetField("run", runID)
	log.SetDefaultLogger(logger)

	if err := execute(opts, runID, logger); err != nil {
		return exitCode(logger, err)
	}
	return 0
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrUsage, "environment")
	}

	fs := flag.NewFlagSet("tedjust", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, usageLine)
		fs.PrintDefaults()
	}

	opts := &options{}
	fs.StringVar(&opts.rulesFile, "rules", settings.RulesFile, "rules file with [layer <sel>] sections, applied before tweak tokens")
	fs.StringVar(&opts.output, "o", "", "output path (default: <stem><suffix><ext> next to the input)")
	fs.StringVar(&opts.suffix, "suffix", settings.Suffix, "suffix inserted before the input's extension")
	fs.BoolVar(&opts.sortRules, "sort-rules", settings.SortRules, "sort rules by start height before resolving")
	fs.StringVar(&opts.metricsFile, "metrics", settings.MetricsFile, "write run counters in Prometheus text format to this file")
	fs.BoolVar(&opts.verbose, "v", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, errors.UsageError("help requested")
		}
		return nil, errors.Wrap(err, errors.ErrUsage, "flags")
	}

	rest := fs.Args()
	if len(rest) == 0 || (len(rest) == 1 && opts.rulesFile == "") {
		fs.Usage()
		return nil, errors.UsageError("need an input file and at least one tweak")
	}
	opts.input = rest[0]
	opts.tweaks = rest[1:]
	if opts.suffix == "" {
		opts.suffix = config.DefaultSuffix
	}
	return opts, nil
}

func execute(opts *options, runID string, logger *log.Logger) error {
	start := time.Now()

	tokens, err := collectTokens(opts, logger)
	if err != nil {
		return err
	}
	table := buildTable(tokens, opts.sortRules, logger)

	outPath := opts.output
	if outPath == "" {
		outPath = OutputPath(opts.input, opts.suffix)
	}
	if samePath(opts.input, outPath) {
		return errors.UsageError(fmt.Sprintf("output %s would overwrite the input", outPath))
	}

	in, err := os.Open(opts.input)
	if err != nil {
		return errors.IOError("open input", err)
	}
	defer in.Close()

	rw := rewrite.New(table)
	rw.SetLogger(log.GetLogger("rewrite"))
	err = writeAtomic(outPath, func(w io.Writer) error {
		if err := rewrite.WriteHeader(w, tokens); err != nil {
			return err
		}
		return rw.Rewrite(in, w)
	})
	if err != nil {
		return err
	}

	stats := rw.Stats()
	logger.WithFields(stats.Fields()).Infof("wrote %s", outPath)

	if opts.metricsFile != "" {
		if err := writeMetrics(opts.metricsFile, runID, stats, table, time.Since(start)); err != nil {
			// The G-code is already in place.
			logger.WithError(err).Warnf("metrics not written to %s", opts.metricsFile)
		}
	}
	return nil
}

// collectTokens returns the rules file tokens followed by the command line
// tweaks.
func collectTokens(opts *options, logger *log.Logger) ([]string, error) {
	var tokens []string
	if opts.rulesFile != "" {
		cfg, err := config.Load(opts.rulesFile)
		if err != nil {
			return nil, errors.RulesFileError(opts.rulesFile, err)
		}
		fileTokens, warnings, err := layers.TokensFromConfig(cfg)
		if err != nil {
			return nil, errors.RulesFileError(opts.rulesFile, err)
		}
		for _, w := range warnings {
			logger.WithError(w).WithField("path", opts.rulesFile).Warn("rules file")
		}
		logger.WithField("path", opts.rulesFile).Debugf("rules file tokens: %s", strings.Join(fileTokens, " "))
		tokens = append(tokens, fileTokens...)
	}
	return append(tokens, opts.tweaks...), nil
}

func buildTable(tokens []string, sortRules bool, logger *log.Logger) *layers.Table {
	table, warnings := layers.ParseArgs(tokens)
	for _, w := range warnings {
		logger.WithError(w).Warn("tweak ignored")
	}
	if table.Len() == 0 {
		logger.Warn("no rule sets a flow or speed, output will match input")
	}

	if !table.Ascending() {
		if sortRules {
			table = table.Sorted()
			logger.Info("rules sorted by start height")
		} else {
			logger.Warn("rules are not in ascending start order, later rules may never apply (see -sort-rules)")
		}
	}
	for _, r := range table.Rules() {
		logger.WithField("rule", r.String()).Debug("layer rule")
	}
	return table
}

func writeMetrics(path, runID string, stats rewrite.Stats, table *layers.Table, elapsed time.Duration) error {
	reg := metrics.NewRegistry()
	labels := metrics.Labels{"run": runID}
	if err := stats.Export(reg, labels); err != nil {
		return err
	}

	rules := metrics.NewGauge("tedjust_rules", "Layer rules in effect.")
	duration := metrics.NewGauge("tedjust_run_duration_seconds", "Wall time of the run.")
	reg.MustRegister(rules)
	reg.MustRegister(duration)
	rules.Set(labels, float64(table.Len()))
	duration.Set(labels, elapsed.Seconds())

	if err := reg.WriteFile(path); err != nil {
		return errors.IOError("write metrics", err)
	}
	return nil
}

func exitCode(logger *log.Logger, err error) int {
	if errors.Is(err, errors.ErrUsage) {
		logger.WithError(err).Error("nothing done")
		return 2
	}
	logger.WithError(err).Error("failed")
	return 1
}
