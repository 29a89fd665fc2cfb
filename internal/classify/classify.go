// internal/classify/classify.go
package classify

import (
	"assayfilter/internal/genelist"
	"assayfilter/internal/rules"
)

// Classifier binds a GeneSet and a RuleSet. Both are read-only, so one
// Classifier is shared by every worker.
type Classifier struct {
	genes *genelist.GeneSet
	rules *rules.RuleSet
}

func New(genes *genelist.GeneSet, rs *rules.RuleSet) *Classifier {
	return &Classifier{genes: genes, rules: rs}
}

// Classify returns the normalized line and true when it should be kept.
// Exclusion is checked on the raw line, gene matching on the normalized one.
// line must not carry its terminator.
func (c *Classifier) Classify(line string) (string, bool) {
	if c.rules.ShouldExclude(line) {
		return "", false
	}
	out := c.rules.Normalize(line)
	if !c.genes.MatchWord(out) {
		return "", false
	}
	return out, true
}

// Verdict explains a single decision. Used by debug logging and tests.
type Verdict struct {
	Kept     bool
	Excluded bool
	Gene     string
	Line     string
}

// Explain is Classify with the reason attached.
func (c *Classifier) Explain(line string) Verdict {
	if c.rules.ShouldExclude(line) {
		return Verdict{Excluded: true}
	}
	out := c.rules.Normalize(line)
	g, ok := c.genes.FindWord(out)
	if !ok {
		return Verdict{Line: out}
	}
	return Verdict{Kept: true, Gene: g, Line: out}
}
