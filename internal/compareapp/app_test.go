package compareapp

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const header = "#Samplename\tGene\tChrom\tPos\tRef\tAlt\tp_Change(SnpEff)\n"

func write(t *testing.T, dir, name, data string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestRunFoundAndNotFound(t *testing.T) {
	dir := t.TempDir()
	a := write(t, dir, "a.tsv", header+"S1\tU2AF1\tchr21\t43094670\tC\tT\tp.R156H\n")
	b := write(t, dir, "b.tsv", header+"S2\tTP53\tchr17\t7675088\tC\tT\tp.R175H\n")

	var out, errb bytes.Buffer
	code := Run(context.Background(), []string{a, b}, &out, &errb)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errb.String())
	}
	want := "U2AF1 variants at position chr21:43094670 in " + a + ":\n" +
		"Found U2AF1 variant with protein change: p.R156H\n" +
		"Sample: S1\n" +
		"Location: chr21:43094670 C>T\n" +
		"Protein Change: p.R156H\n" +
		"---\n" +
		"\n" +
		"U2AF1 variants at position chr21:43094670 in " + b + ":\n" +
		"Not found\n"
	if out.String() != want {
		t.Fatalf("stdout:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestRunCustomTarget(t *testing.T) {
	dir := t.TempDir()
	a := write(t, dir, "a.tsv", header+"S2\tTP53\tchr17\t7675088\tC\tT\tp.R175H\n")
	var out, errb bytes.Buffer
	code := Run(context.Background(), []string{a, a, "--gene", "TP53", "--chrom", "chr17", "--pos", "7675088"}, &out, &errb)
	if code != 0 || strings.Count(out.String(), "Protein Change: p.R175H") != 2 {
		t.Fatalf("exit %d stdout %q", code, out.String())
	}
}

func TestRunMissingHeader(t *testing.T) {
	dir := t.TempDir()
	a := write(t, dir, "a.tsv", "no header\n")
	var out, errb bytes.Buffer
	code := Run(context.Background(), []string{a, a}, &out, &errb)
	if code != 1 || !strings.Contains(errb.String(), "could not find header line") {
		t.Fatalf("exit %d stderr %q", code, errb.String())
	}
	if out.Len() != 0 {
		t.Fatalf("nothing may be printed before both files are read, got %q", out.String())
	}
}

func TestRunMissingFile(t *testing.T) {
	var out, errb bytes.Buffer
	code := Run(context.Background(), []string{"/nonexistent/a.tsv", "/nonexistent/b.tsv"}, &out, &errb)
	if code != 1 {
		t.Fatalf("want exit 1, got %d", code)
	}
}
