// internal/filterapp/app.go
package filterapp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"assayfilter/internal/cli"
	"assayfilter/internal/cmdutil"
	"assayfilter/internal/logging"
	"assayfilter/internal/runutil"
)

// MissingFileError is reported before any processing starts.
type MissingFileError struct {
	Label string // "Input" or "<Assay> gene list"
	Path  string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("%s file '%s' does not exist.", e.Label, e.Path)
}

// CheckFiles verifies the input and all three gene lists exist, in that
// order, and returns the first one that does not.
func CheckFiles(f cli.Filter) error {
	checks := []struct{ label, path string }{
		{"Input", f.Input},
		{"Heme gene list", f.HemeList},
		{"Solid gene list", f.SolidList},
		{"Comp gene list", f.CompList},
	}
	for _, c := range checks {
		if c.path == "-" && c.label == "Input" {
			continue
		}
		if !isFile(c.path) {
			return &MissingFileError{Label: c.label, Path: c.path}
		}
	}
	return nil
}

func isFile(p string) bool {
	fi, err := os.Stat(p)
	return err == nil && fi.Mode().IsRegular()
}

// Run is the filter-by-assay entry point. It returns the process exit code.
func Run(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	if len(argv) == 0 {
		argv = []string{"--help"}
	}
	opts, err := cli.ParseFilter(argv, stdout, stderr)
	if err != nil {
		if errors.Is(err, cli.ErrHelp) {
			return cmdutil.ExitOK
		}
		cmdutil.Errorf(stderr, "%v", err)
		cli.PrintUsage(err)
		return cmdutil.ExitUsage
	}

	log := logging.Setup(stderr, "filter-by-assay", opts.Log.Level, opts.Log.Format)

	if err := CheckFiles(opts); err != nil {
		cmdutil.Errorf(stderr, "%v", err)
		return cmdutil.ExitMissingFile
	}

	plat := runutil.DetectPlatform()
	workers := runutil.EffectiveWorkers(opts.Processes, plat)
	log.Debug("platform",
		"logical_cpus", plat.LogicalCPUs,
		"physical_cores", plat.PhysicalCores,
		"threads_per_core", plat.ThreadsPerCore,
		"cpu", plat.Brand,
		"memory", runutil.HumanBytes(plat.TotalMemory),
		"workers", workers,
	)
	if fi, err := os.Stat(opts.Input); err == nil {
		if w := runutil.MemoryWarning(fi.Size(), plat); w != "" {
			log.Warn(w, "input", opts.Input)
		}
	}

	st, err := Filter(ctx, Config{
		Assay:    opts.AssayType,
		Input:    opts.Input,
		Output:   opts.Output,
		GeneList: opts.GeneList(),
		Workers:  workers,
		Logger:   log,
	})
	if err != nil {
		return cmdutil.RuntimeExit(stderr, err)
	}

	_, _ = fmt.Fprintf(stdout, "Filtering complete. Output written to '%s'\n", opts.Output)
	_, _ = fmt.Fprintf(stdout, "Processing time: %.2f seconds\n", st.Elapsed.Seconds())
	return cmdutil.ExitOK
}
