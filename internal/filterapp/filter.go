// internal/filterapp/filter.go
package filterapp

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"assayfilter/internal/classify"
	"assayfilter/internal/genelist"
	"assayfilter/internal/lines"
	"assayfilter/internal/logging"
	"assayfilter/internal/pipeline"
	"assayfilter/internal/rules"
	"assayfilter/internal/writers"
)

// Config is one filtering run.
type Config struct {
	Assay    rules.Assay
	Input    string
	Output   string
	GeneList string
	Workers  int
	Logger   *slog.Logger
}

// Stats summarizes a finished run.
type Stats struct {
	Assay    rules.Assay
	Genes    int
	Input    int
	Retained int
	Chunks   int
	Workers  int
	Elapsed  time.Duration
	Output   writers.Summary
}

// Filter loads the gene list and input, classifies every line in parallel
// and writes the retained lines, in input order, to cfg.Output. On any
// error nothing is written.
func Filter(ctx context.Context, cfg Config) (Stats, error) {
	start := time.Now()
	log := cfg.Logger
	if log == nil {
		log = logging.Discard()
	}
	if !cfg.Assay.Valid() {
		return Stats{}, fmt.Errorf("%w: %v", rules.ErrUnknownAssay, cfg.Assay)
	}

	genes, err := genelist.Load(cfg.GeneList)
	if err != nil {
		return Stats{}, err
	}
	log.Debug("gene list loaded", "path", cfg.GeneList, "genes", genes.Len())
	if genes.Len() == 0 {
		log.Warn("gene list is empty; no line can match", "path", cfg.GeneList)
	}
	clf := classify.New(genes, rules.New(cfg.Assay))

	in, err := lines.ReadFile(cfg.Input)
	if err != nil {
		return Stats{}, fmt.Errorf("read input: %w", err)
	}
	log.Debug("input loaded", "path", cfg.Input, "lines", len(in))

	pool := pipeline.NewPool(cfg.Workers)
	defer pool.Close()

	kept, chunks, err := pipeline.Run(ctx, pool, in, ClassifyChunk(clf))
	if err != nil {
		return Stats{}, fmt.Errorf("classify: %w", err)
	}
	log.Debug("classification done", "chunks", chunks, "chunk_size", pipeline.ChunkSize(len(in), pool.Workers()), "workers", pool.Workers())

	sum, err := writers.WriteLines(cfg.Output, kept)
	if err != nil {
		return Stats{}, err
	}

	st := Stats{
		Assay:    cfg.Assay,
		Genes:    genes.Len(),
		Input:    len(in),
		Retained: len(kept),
		Chunks:   chunks,
		Workers:  pool.Workers(),
		Elapsed:  time.Since(start),
		Output:   sum,
	}
	log.Info("filter complete",
		"assay", st.Assay.String(),
		"input_lines", st.Input,
		"retained", st.Retained,
		"chunks", st.Chunks,
		"workers", st.Workers,
		"output", sum.Path,
		"blake3", sum.Digest,
		"elapsed", st.Elapsed,
	)
	return st, nil
}

// ClassifyChunk adapts a Classifier to the pipeline. Terminators are
// stripped before classification and put back on retained lines.
func ClassifyChunk(c *classify.Classifier) pipeline.ChunkFunc {
	return func(ch pipeline.Chunk) ([]string, error) {
		var kept []string
		for _, raw := range ch.Lines {
			body, eol := lines.SplitTerminator(raw)
			if out, ok := c.Classify(body); ok {
				kept = append(kept, out+eol)
			}
		}
		return kept, nil
	}
}
