// internal/rules/assay.go
package rules

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Assay is the sequencing panel category. It selects the reportable gene
// list and whether symbol normalization runs.
type Assay int

const (
	Heme Assay = iota + 1
	Solid
	Comp
)

// ErrUnknownAssay is returned by ParseAssay for anything outside Heme|Solid|Comp.
var ErrUnknownAssay = errors.New("unknown assay type")

// Assays lists every valid assay in display order.
var Assays = []Assay{Heme, Solid, Comp}

var folder = cases.Fold()

// ParseAssay maps a case-insensitive name onto an Assay.
func ParseAssay(s string) (Assay, error) {
	key := folder.String(strings.TrimSpace(s))
	for _, a := range Assays {
		if folder.String(a.String()) == key {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w %q (want Heme, Solid or Comp)", ErrUnknownAssay, s)
}

func (a Assay) String() string {
	switch a {
	case Heme:
		return "Heme"
	case Solid:
		return "Solid"
	case Comp:
		return "Comp"
	default:
		return fmt.Sprintf("Assay(%d)", int(a))
	}
}

// NeedsNormalization reports whether the symbol replacement rules apply.
func (a Assay) NeedsNormalization() bool {
	switch a {
	case Solid, Comp:
		return true
	default:
		return false
	}
}

// Valid reports whether a is one of the declared assays.
func (a Assay) Valid() bool {
	switch a {
	case Heme, Solid, Comp:
		return true
	default:
		return false
	}
}
