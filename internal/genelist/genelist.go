// internal/genelist/genelist.go
package genelist

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	"assayfilter/internal/lines"
)

// GeneSet is an immutable, case-sensitive set of reportable gene symbols
// plus the whole-word matcher compiled from them. Share it freely.
type GeneSet struct {
	symbols map[string]struct{}
	re      *regexp.Regexp // nil when the set is empty
}

// Load reads a gene list file: one symbol per line, surrounding whitespace
// trimmed, blank lines skipped. Compressed lists (.gz/.xz) are accepted.
func Load(path string) (*GeneSet, error) {
	rc, err := lines.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load gene list: %w", err)
	}
	defer func() { _ = rc.Close() }()
	gs, err := Parse(rc)
	if err != nil {
		return nil, fmt.Errorf("load gene list %s: %w", path, err)
	}
	return gs, nil
}

// Parse builds a GeneSet from r using the same rules as Load.
func Parse(r io.Reader) (*GeneSet, error) {
	var syms []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" {
			syms = append(syms, s)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return FromSymbols(syms...)
}

// FromSymbols builds a GeneSet directly. Duplicates collapse; empty
// strings are ignored.
func FromSymbols(syms ...string) (*GeneSet, error) {
	gs := &GeneSet{symbols: make(map[string]struct{}, len(syms))}
	for _, s := range syms {
		if s == "" {
			continue
		}
		gs.symbols[s] = struct{}{}
	}
	if len(gs.symbols) == 0 {
		return gs, nil
	}
	re, err := compileWholeWord(gs.Symbols())
	if err != nil {
		return nil, err
	}
	gs.re = re
	return gs, nil
}

// compileWholeWord builds \b(?:s1|s2|...)\b. Every alternative sits between
// the same \b anchors, so the union matches iff some single \bsym\b does.
func compileWholeWord(syms []string) (*regexp.Regexp, error) {
	quoted := make([]string, len(syms))
	for i, s := range syms {
		quoted[i] = regexp.QuoteMeta(s)
	}
	re, err := regexp.Compile(`\b(?:` + strings.Join(quoted, "|") + `)\b`)
	if err != nil {
		return nil, fmt.Errorf("compile gene matcher: %w", err)
	}
	return re, nil
}

// Has reports exact membership.
func (gs *GeneSet) Has(sym string) bool {
	_, ok := gs.symbols[sym]
	return ok
}

func (gs *GeneSet) Len() int { return len(gs.symbols) }

// Symbols returns the members longest first, then lexically.
func (gs *GeneSet) Symbols() []string {
	out := make([]string, 0, len(gs.symbols))
	for s := range gs.symbols {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return out[i] < out[j]
	})
	return out
}

// MatchWord reports whether line contains any member as a whole word
// (RE2 \b: bounded by a non-[0-9A-Za-z_] byte or the line edge).
func (gs *GeneSet) MatchWord(line string) bool {
	return gs.re != nil && gs.re.MatchString(line)
}

// FindWord returns the first whole-word member found in line.
func (gs *GeneSet) FindWord(line string) (string, bool) {
	if gs.re == nil {
		return "", false
	}
	m := gs.re.FindString(line)
	return m, m != ""
}
