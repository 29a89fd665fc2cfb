// internal/rules/rules.go
package rules

import "strings"

// ExcludedSymbol drops any line that mentions it, before normalization.
const ExcludedSymbol = "HLA-DRB1"

// Replacement rewrites one tab-terminated symbol. The trailing tab keeps
// MRE11A from touching MRE11AB and similar longer tokens.
type Replacement struct {
	Old string
	New string
}

// Replacements are applied in this order; each sees the previous one's output.
var Replacements = []Replacement{
	{Old: "MRE11A\t", New: "MRE11\t"},
	{Old: "H3F3A\t", New: "H3-3A\t"},
	{Old: "EIF1A\t", New: "EIF1AX\t"},
}

// RuleSet holds the exclusion literal and the replacement chain for one
// assay. It is immutable once built and safe for concurrent use.
type RuleSet struct {
	assay     Assay
	replacers []*strings.Replacer
}

// New builds the rule set for a. An invalid assay gets no replacements;
// callers are expected to have gone through ParseAssay.
func New(a Assay) *RuleSet {
	rs := &RuleSet{assay: a}
	if a.NeedsNormalization() {
		// One replacer per rule: a single multi-pair Replacer would not
		// feed rule N's output into rule N+1.
		for _, r := range Replacements {
			rs.replacers = append(rs.replacers, strings.NewReplacer(r.Old, r.New))
		}
	}
	return rs
}

func (rs *RuleSet) Assay() Assay { return rs.assay }

// ShouldExclude reports whether the exclusion literal occurs anywhere in line.
func (rs *RuleSet) ShouldExclude(line string) bool {
	return strings.Contains(line, ExcludedSymbol)
}

// Normalize applies the assay's replacements to every occurrence, in order.
func (rs *RuleSet) Normalize(line string) string {
	for _, r := range rs.replacers {
		line = r.Replace(line)
	}
	return line
}
