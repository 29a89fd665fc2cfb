// internal/pipeline/aggregate.go
package pipeline

import (
	"context"
	"fmt"
	"sort"
)

// Aggregate orders results by chunk index and concatenates their lines.
// The lowest-index failure, if any, is returned instead of a partial merge.
// Indices must be exactly 0..len(results)-1.
func Aggregate(results []Result) ([]string, error) {
	sorted := make([]Result, len(results))
	copy(sorted, results)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Index < sorted[j].Index })

	total := 0
	for i, r := range sorted {
		if r.Err != nil {
			return nil, r.Err
		}
		if r.Index != i {
			return nil, fmt.Errorf("aggregate: expected chunk %d, got %d", i, r.Index)
		}
		total += len(r.Lines)
	}

	out := make([]string, 0, total)
	for _, r := range sorted {
		out = append(out, r.Lines...)
	}
	return out, nil
}

// Run is Partition + Map + Aggregate on a pool the caller owns.
func Run(ctx context.Context, p *Pool, lines []string, fn ChunkFunc) ([]string, int, error) {
	chunks := Partition(lines, p.Workers())
	results, err := p.Map(ctx, chunks, fn)
	if err != nil {
		return nil, len(chunks), err
	}
	out, err := Aggregate(results)
	return out, len(chunks), err
}
