// internal/coverage/report.go
package coverage

import (
	"fmt"

	"assayfilter/internal/writers"
)

// WriteReport writes the two-column distribution table atomically.
func WriteReport(path string, c Counts) error {
	f, err := writers.Create(path)
	if err != nil {
		return err
	}
	defer f.Abort()
	if _, err := f.WriteString("Chromosome\tVariant_Count\n"); err != nil {
		return err
	}
	for n := 1; n <= Autosomes; n++ {
		if _, err := fmt.Fprintf(f, "chr%d\t%d\n", n, c[n]); err != nil {
			return err
		}
	}
	return f.Commit()
}
