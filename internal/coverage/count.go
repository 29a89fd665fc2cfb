// internal/coverage/count.go
package coverage

import (
	"strconv"
	"strings"

	"assayfilter/internal/lines"
)

// Autosomes are chr1..chr22.
const Autosomes = 22

// Counts holds per-autosome record counts; index 0 is unused.
type Counts [Autosomes + 1]int

// Missing returns the autosomes with a zero count, ascending.
func (c *Counts) Missing() []int {
	var out []int
	for n := 1; n <= Autosomes; n++ {
		if c[n] == 0 {
			out = append(out, n)
		}
	}
	return out
}

// Mode selects how a line is attributed to a chromosome.
type Mode int

const (
	// Prefix counts a line for chrN when it starts with "chrN", exactly as
	// `grep -c ^chrN` does; chr1 therefore also counts chr10..chr19.
	Prefix Mode = iota
	// Exact counts a line for chrN only when its first tab-separated
	// column is "chrN".
	Exact
)

// CountFile scans a (possibly compressed) VCF once and tallies autosomes.
func CountFile(path string, mode Mode) (Counts, error) {
	var c Counts
	err := lines.Scan(path, func(line string) error {
		c.Add(line, mode)
		return nil
	})
	return c, err
}

// Add attributes one line.
func (c *Counts) Add(line string, mode Mode) {
	rest, ok := strings.CutPrefix(line, "chr")
	if !ok {
		return
	}
	digits := rest
	for i := 0; i < len(rest); i++ {
		if rest[i] < '0' || rest[i] > '9' {
			digits = rest[:i]
			break
		}
	}
	if digits == "" {
		return
	}

	if mode == Exact {
		if len(digits) < len(rest) && rest[len(digits)] != '\t' {
			return
		}
		if n, err := strconv.Atoi(digits); err == nil && n >= 1 && n <= Autosomes {
			c[n]++
		}
		return
	}

	// Every chrN whose number is a prefix of the digit run matches ^chrN.
	for k := 1; k <= len(digits) && k <= 2; k++ {
		if digits[0] == '0' {
			break
		}
		if n, _ := strconv.Atoi(digits[:k]); n >= 1 && n <= Autosomes {
			c[n]++
		}
	}
}
