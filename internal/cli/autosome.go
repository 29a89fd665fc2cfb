// internal/cli/autosome.go
package cli

import (
	"errors"
	"io"
	"strings"

	"github.com/alecthomas/kong"
)

// Autosome holds the autosome-check command line.
type Autosome struct {
	Sample  string `arg:"" help:"Sample name; reads <sample>.final.smallvariants.vep.vcf."`
	VCF     string `name:"vcf" placeholder:"PATH" help:"Variant file to scan (default derived from sample)."`
	Report  string `placeholder:"PATH" help:"Distribution report path (default <sample>.chromosome_distribution.txt)."`
	Exact   bool   `help:"Count records whose CHROM column is exactly chrN instead of any line starting with chrN."`
	DryRun  bool   `name:"dry-run" help:"Print the alert instead of sending it."`
	EnvFile string `name:"env-file" default:".env" placeholder:"PATH" help:"Optional dotenv file with AUTOSOME_* mail settings."`

	Log     LogFlags         `embed:"" prefix:"log-"`
	Version kong.VersionFlag `help:"Print version and exit."`
}

// ParseAutosome parses argv and fills derived paths.
func ParseAutosome(argv []string, stdout, stderr io.Writer) (Autosome, error) {
	var a Autosome
	if err := parse(&a, "autosome-check", "Check variant distribution across autosomes and alert on gaps.", argv, stdout, stderr); err != nil {
		return a, err
	}
	if strings.TrimSpace(a.Sample) == "" {
		return a, errors.New("sample name must not be empty")
	}
	if a.VCF == "" {
		a.VCF = a.Sample + ".final.smallvariants.vep.vcf"
	}
	if a.Report == "" {
		a.Report = a.Sample + ".chromosome_distribution.txt"
	}
	return a, nil
}
