package classify

import (
	"testing"

	"assayfilter/internal/genelist"
	"assayfilter/internal/rules"
)

func mustGenes(t *testing.T, syms ...string) *genelist.GeneSet {
	t.Helper()
	gs, err := genelist.FromSymbols(syms...)
	if err != nil {
		t.Fatal(err)
	}
	return gs
}

func TestSolidReplacementThenMatch(t *testing.T) {
	c := New(mustGenes(t, "MRE11"), rules.New(rules.Solid))
	got, ok := c.Classify("chr1\t100\tMRE11A\tSolid-sample")
	if !ok {
		t.Fatal("expected line to be kept")
	}
	if want := "chr1\t100\tMRE11\tSolid-sample"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestEachReplacementFeedsMatching(t *testing.T) {
	cases := []struct{ in, gene, want string }{
		{"chr1\t1\tMRE11A\tv", "MRE11", "chr1\t1\tMRE11\tv"},
		{"chr1\t1\tH3F3A\tv", "H3-3A", "chr1\t1\tH3-3A\tv"},
		{"chr1\t1\tEIF1A\tv", "EIF1AX", "chr1\t1\tEIF1AX\tv"},
	}
	for _, a := range []rules.Assay{rules.Solid, rules.Comp} {
		for _, tc := range cases {
			c := New(mustGenes(t, tc.gene), rules.New(a))
			got, ok := c.Classify(tc.in)
			if !ok || got != tc.want {
				t.Fatalf("%v %q: got %q,%v want %q", a, tc.in, got, ok, tc.want)
			}
		}
	}
}

func TestHemeKeepsLineVerbatim(t *testing.T) {
	c := New(mustGenes(t, "MRE11A", "MRE11"), rules.New(rules.Heme))
	in := "chr1\t100\tMRE11A\tHeme-sample"
	got, ok := c.Classify(in)
	if !ok || got != in {
		t.Fatalf("got %q,%v", got, ok)
	}
	// No normalization, so MRE11 alone cannot match MRE11A.
	c = New(mustGenes(t, "MRE11"), rules.New(rules.Heme))
	if _, ok := c.Classify(in); ok {
		t.Fatal("Heme must not rewrite MRE11A")
	}
}

func TestExclusionWinsForEveryAssay(t *testing.T) {
	in := "chr6\t32546546\tHLA-DRB1\tBRCA1\tmissense"
	for _, a := range rules.Assays {
		c := New(mustGenes(t, "BRCA1", "HLA-DRB1"), rules.New(a))
		if _, ok := c.Classify(in); ok {
			t.Fatalf("%v: HLA-DRB1 line must be excluded", a)
		}
		v := c.Explain(in)
		if !v.Excluded || v.Kept {
			t.Fatalf("%v: verdict %+v", a, v)
		}
	}
}

func TestExclusionCheckedBeforeNormalization(t *testing.T) {
	// Nothing in the rules produces HLA-DRB1, but the check must use the
	// raw line regardless: a raw match is dropped even if normalization
	// would have changed the surrounding text.
	c := New(mustGenes(t, "MRE11"), rules.New(rules.Comp))
	if _, ok := c.Classify("HLA-DRB1\tMRE11A\t"); ok {
		t.Fatal("expected exclusion")
	}
}

func TestNoGeneNoKeep(t *testing.T) {
	c := New(mustGenes(t, "TP53"), rules.New(rules.Solid))
	for _, in := range []string{"chr17\tTP53X\t", "chr17\tXTP53", "", "chr1\tBRCA1"} {
		if _, ok := c.Classify(in); ok {
			t.Fatalf("%q must not be kept", in)
		}
	}
}

func TestExplainReportsGene(t *testing.T) {
	c := New(mustGenes(t, "TP53", "BRCA1"), rules.New(rules.Heme))
	v := c.Explain("x\tBRCA1\ty")
	if !v.Kept || v.Gene != "BRCA1" || v.Line != "x\tBRCA1\ty" {
		t.Fatalf("verdict %+v", v)
	}
}
