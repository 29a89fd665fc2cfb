// internal/cli/filter.go
package cli

import (
	"fmt"
	"io"

	"github.com/alecthomas/kong"

	"assayfilter/internal/rules"
)

// Default gene list locations, relative to the working directory.
const (
	DefaultHemeList  = "HemeReportable2025.txt"
	DefaultSolidList = "SolidReportable2025.txt"
	DefaultCompList  = "CompReportable2025.txt"
)

// Filter holds the filter-by-assay command line.
type Filter struct {
	Assay     string `arg:"" name:"assay" help:"Assay type (Heme, Solid, or Comp)."`
	Input     string `short:"i" required:"" placeholder:"PATH" help:"Input file path (.gz/.xz accepted, - for stdin)."`
	Output    string `short:"o" required:"" placeholder:"PATH" help:"Output file path (.gz compresses)."`
	HemeList  string `name:"heme-list" default:"HemeReportable2025.txt" placeholder:"PATH" help:"Path to Heme gene list file."`
	SolidList string `name:"solid-list" default:"SolidReportable2025.txt" placeholder:"PATH" help:"Path to Solid gene list file."`
	CompList  string `name:"comp-list" default:"CompReportable2025.txt" placeholder:"PATH" help:"Path to Comp gene list file."`
	Processes int    `short:"p" default:"0" help:"Number of workers (0 = number of CPU cores)."`

	Log     LogFlags         `embed:"" prefix:"log-"`
	Version kong.VersionFlag `help:"Print version and exit."`

	// AssayType is Assay after validation.
	AssayType rules.Assay `kong:"-"`
}

// ParseFilter parses argv into a validated Filter.
func ParseFilter(argv []string, stdout, stderr io.Writer) (Filter, error) {
	var f Filter
	if err := parse(&f, "filter-by-assay", "Filter a text file based on assay type and gene lists.", argv, stdout, stderr); err != nil {
		return f, err
	}
	a, err := rules.ParseAssay(f.Assay)
	if err != nil {
		return f, err
	}
	f.AssayType = a
	if f.Processes < 0 {
		return f, fmt.Errorf("--processes must be ≥ 0, got %d", f.Processes)
	}
	return f, nil
}

// GeneList returns the list path the selected assay reads.
func (f Filter) GeneList() string {
	switch f.AssayType {
	case rules.Heme:
		return f.HemeList
	case rules.Solid:
		return f.SolidList
	case rules.Comp:
		return f.CompList
	}
	return ""
}
