// internal/cli/compare.go
package cli

import (
	"io"

	"github.com/alecthomas/kong"
)

// Compare holds the tsv-compare command line.
type Compare struct {
	File1 string `arg:"" help:"Path to first variant file."`
	File2 string `arg:"" help:"Path to second variant file."`
	Gene  string `default:"U2AF1" help:"Gene symbol to look for."`
	Chrom string `default:"chr21" help:"Chromosome to look for."`
	Pos   string `default:"43094670" help:"Position to look for."`

	Log     LogFlags         `embed:"" prefix:"log-"`
	Version kong.VersionFlag `help:"Print version and exit."`
}

// ParseCompare parses argv.
func ParseCompare(argv []string, stdout, stderr io.Writer) (Compare, error) {
	var c Compare
	err := parse(&c, "tsv-compare", "Look up one variant in two tab-separated variant reports.", argv, stdout, stderr)
	return c, err
}
