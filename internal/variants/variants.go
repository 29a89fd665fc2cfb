// internal/variants/variants.go
package variants

import (
	"errors"
	"fmt"
	"strings"

	"assayfilter/internal/lines"
)

// HeaderPrefix marks the column header line of a variant report.
const HeaderPrefix = "#Samplename\t"

// Required columns, in report order.
var Required = []string{"Gene", "Chrom", "Pos", "Ref", "Alt", "p_Change(SnpEff)"}

// ErrNoHeader is returned when no #Samplename header line exists.
var ErrNoHeader = errors.New("could not find header line")

// MissingColumnError lists what the header does offer.
type MissingColumnError struct {
	Column    string
	Available []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("required column not found in header - %q; available columns: %s",
		e.Column, strings.Join(e.Available, ", "))
}

// Target is the gene/chromosome/position triple being looked up.
type Target struct {
	Gene  string
	Chrom string
	Pos   string
}

func (t Target) String() string { return t.Chrom + ":" + t.Pos }

// Variant is one matching row.
type Variant struct {
	Sample        string
	Gene          string
	Chrom         string
	Pos           string
	Ref           string
	Alt           string
	ProteinChange string
}

// Find returns every row in path matching t. Lines starting with '#' and
// blank lines are skipped, as are rows too short for the required columns.
func Find(path string, t Target) ([]Variant, error) {
	header, err := readHeader(path)
	if err != nil {
		return nil, err
	}
	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var out []Variant
	err = lines.Scan(path, func(line string) error {
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			return nil
		}
		row := strings.Split(strings.TrimSpace(line), "\t")
		if idx.max >= len(row) {
			return nil
		}
		if row[idx.gene] != t.Gene || row[idx.chrom] != t.Chrom || row[idx.pos] != t.Pos {
			return nil
		}
		out = append(out, Variant{
			Sample:        row[0],
			Gene:          row[idx.gene],
			Chrom:         row[idx.chrom],
			Pos:           row[idx.pos],
			Ref:           row[idx.ref],
			Alt:           row[idx.alt],
			ProteinChange: row[idx.pchange],
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

var errStop = errors.New("stop")

func readHeader(path string) ([]string, error) {
	var header []string
	err := lines.Scan(path, func(line string) error {
		if strings.HasPrefix(line, HeaderPrefix) {
			header = strings.Split(strings.TrimSpace(line), "\t")
			return errStop
		}
		return nil
	})
	if err != nil && !errors.Is(err, errStop) {
		return nil, err
	}
	if header == nil {
		return nil, fmt.Errorf("%w in %s", ErrNoHeader, path)
	}
	return header, nil
}

type columns struct {
	gene, chrom, pos, ref, alt, pchange int
	max                                 int
}

func columnIndex(header []string) (columns, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		if _, dup := pos[h]; !dup {
			pos[h] = i
		}
	}
	var got [6]int
	for i, name := range Required {
		j, ok := pos[name]
		if !ok {
			return columns{}, &MissingColumnError{Column: name, Available: header}
		}
		got[i] = j
	}
	c := columns{gene: got[0], chrom: got[1], pos: got[2], ref: got[3], alt: got[4], pchange: got[5]}
	for _, j := range got {
		if j > c.max {
			c.max = j
		}
	}
	return c, nil
}
