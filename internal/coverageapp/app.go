// internal/coverageapp/app.go
package coverageapp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"assayfilter/internal/cli"
	"assayfilter/internal/cmdutil"
	"assayfilter/internal/coverage"
	"assayfilter/internal/logging"
)

// NotifierFactory builds the alert channel; tests replace it.
var NotifierFactory = func(opts cli.Autosome, stdout io.Writer) (coverage.Notifier, error) {
	if opts.DryRun {
		return coverage.WriterNotifier{W: stdout}, nil
	}
	cfg, _, err := coverage.LoadMailConfig(opts.EnvFile)
	if err != nil {
		return nil, err
	}
	return coverage.NewSMTPNotifier(cfg), nil
}

// Run is the autosome-check entry point.
func Run(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	if len(argv) == 0 {
		argv = []string{"--help"}
	}
	opts, err := cli.ParseAutosome(argv, stdout, stderr)
	if err != nil {
		if errors.Is(err, cli.ErrHelp) {
			return cmdutil.ExitOK
		}
		cmdutil.Errorf(stderr, "%v", err)
		cli.PrintUsage(err)
		return cmdutil.ExitUsage
	}
	log := logging.Setup(stderr, "autosome-check", opts.Log.Level, opts.Log.Format)

	if fi, err := os.Stat(opts.VCF); err != nil || !fi.Mode().IsRegular() {
		cmdutil.Errorf(stderr, "VCF file not found: %s", opts.VCF)
		return cmdutil.ExitMissingFile
	}

	_, _ = fmt.Fprintln(stdout, "Checking variant distribution across autosomes...")

	mode := coverage.Prefix
	if opts.Exact {
		mode = coverage.Exact
	}
	counts, err := coverage.CountFile(opts.VCF, mode)
	if err != nil {
		return cmdutil.RuntimeExit(stderr, err)
	}
	if err := coverage.WriteReport(opts.Report, counts); err != nil {
		return cmdutil.RuntimeExit(stderr, err)
	}

	for n := 1; n <= coverage.Autosomes; n++ {
		if counts[n] == 0 {
			cmdutil.Errorf(stderr, "No variants found on chromosome %d", n)
			_, _ = fmt.Fprintf(stdout, "WARNING: No variants found on chromosome %d. "+
				"This may indicate an issue with sequencing or variant calling.\n", n)
			continue
		}
		_, _ = fmt.Fprintf(stdout, "Found %d variants on chromosome %d\n", counts[n], n)
	}
	log.Info("distribution written", "sample", opts.Sample, "report", opts.Report)

	missing := counts.Missing()
	if len(missing) == 0 {
		return cmdutil.ExitOK
	}

	// Alerting is a side channel: failures are reported, never fatal.
	notifier, err := NotifierFactory(opts, stdout)
	if err == nil {
		err = notifier.Notify(ctx, coverage.Alert{Sample: opts.Sample, Missing: missing})
	}
	if err != nil {
		log.Error("alert not delivered", "sample", opts.Sample, "error", err)
		cmdutil.Errorf(stderr, "Failed to send email: %v", err)
	}
	return cmdutil.ExitOK
}
