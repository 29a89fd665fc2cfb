// internal/compareapp/app.go
package compareapp

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"assayfilter/internal/cli"
	"assayfilter/internal/cmdutil"
	"assayfilter/internal/logging"
	"assayfilter/internal/variants"
	"assayfilter/internal/writers"
)

// Run is the tsv-compare entry point.
func Run(_ context.Context, argv []string, stdout, stderr io.Writer) int {
	if len(argv) == 0 {
		argv = []string{"--help"}
	}
	opts, err := cli.ParseCompare(argv, stdout, stderr)
	if err != nil {
		if errors.Is(err, cli.ErrHelp) {
			return cmdutil.ExitOK
		}
		cmdutil.Errorf(stderr, "%v", err)
		cli.PrintUsage(err)
		return cmdutil.ExitUsage
	}
	log := logging.Setup(stderr, "tsv-compare", opts.Log.Level, opts.Log.Format)

	t := variants.Target{Gene: opts.Gene, Chrom: opts.Chrom, Pos: opts.Pos}
	files := []string{opts.File1, opts.File2}
	found := make([][]variants.Variant, len(files))
	for i, f := range files {
		vs, err := variants.Find(f, t)
		if err != nil {
			cmdutil.Errorf(stderr, "%v", err)
			return cmdutil.ExitMissingFile
		}
		log.Debug("scanned", "file", f, "matches", len(vs))
		found[i] = vs
	}

	w := bufio.NewWriter(stdout)
	for i, f := range files {
		if i > 0 {
			_, _ = fmt.Fprintln(w)
		}
		_, _ = fmt.Fprintf(w, "%s variants at position %s in %s:\n", t.Gene, t, f)
		printVariants(w, found[i])
	}
	if err := writers.IgnoreBrokenPipe(w.Flush()); err != nil {
		return cmdutil.RuntimeExit(stderr, err)
	}
	return cmdutil.ExitOK
}

func printVariants(w io.Writer, vs []variants.Variant) {
	if len(vs) == 0 {
		_, _ = fmt.Fprintln(w, "Not found")
		return
	}
	for _, v := range vs {
		_, _ = fmt.Fprintf(w, "Found %s variant with protein change: %s\n", v.Gene, v.ProteinChange)
		_, _ = fmt.Fprintf(w, "Sample: %s\n", v.Sample)
		_, _ = fmt.Fprintf(w, "Location: %s:%s %s>%s\n", v.Chrom, v.Pos, v.Ref, v.Alt)
		_, _ = fmt.Fprintf(w, "Protein Change: %s\n", v.ProteinChange)
		_, _ = fmt.Fprintln(w, "---")
	}
}
