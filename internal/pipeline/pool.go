// internal/pipeline/pool.go
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ErrPoolClosed is returned by Map after Close.
var ErrPoolClosed = errors.New("pipeline: pool closed")

// ChunkFunc turns one chunk into its retained lines. It must not keep
// references to shared mutable state.
type ChunkFunc func(Chunk) ([]string, error)

// Result is one chunk's outcome: its retained lines, or the reason it failed.
type Result struct {
	Index int
	Lines []string
	Err   error
}

// WorkerError wraps a failure (error or recovered panic) inside one chunk.
type WorkerError struct {
	Chunk int
	Err   error
}

func (e *WorkerError) Error() string {
	return fmt.Sprintf("chunk %d: %v", e.Chunk, e.Err)
}

func (e *WorkerError) Unwrap() error { return e.Err }

// Pool is a caller-owned, fixed-size worker pool. Build it with NewPool,
// release it with Close; it holds no goroutines between Map calls.
type Pool struct {
	workers int

	mu     sync.Mutex
	closed bool
	active sync.WaitGroup
}

// NewPool returns a pool running at most workers chunks at once (>=1).
func NewPool(workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{workers: workers}
}

func (p *Pool) Workers() int { return p.workers }

// Map runs fn over every chunk and blocks until all have finished. Results
// come back in completion order, which is generally not chunk order; use
// Aggregate to restore it. The first failing chunk cancels the rest and its
// *WorkerError is returned; no retries are attempted.
func (p *Pool) Map(ctx context.Context, chunks []Chunk, fn ChunkFunc) ([]Result, error) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil, ErrPoolClosed
	}
	p.active.Add(1)
	p.mu.Unlock()
	defer p.active.Done()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)

	done := make(chan Result, len(chunks))
submit:
	for _, c := range chunks {
		select {
		case <-gctx.Done():
			break submit
		default:
		}
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			r := runChunk(c, fn)
			done <- r
			return r.Err
		})
	}
	err := g.Wait()
	close(done)

	results := make([]Result, 0, len(chunks))
	for r := range done {
		results = append(results, r)
	}
	if err != nil {
		return results, err
	}
	if cerr := ctx.Err(); cerr != nil {
		return results, cerr
	}
	return results, nil
}

// Close waits for in-flight Map calls and refuses new ones. Safe to call twice.
func (p *Pool) Close() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	p.active.Wait()
}

func runChunk(c Chunk, fn ChunkFunc) (r Result) {
	r.Index = c.Index
	defer func() {
		if v := recover(); v != nil {
			r.Lines = nil
			r.Err = &WorkerError{Chunk: c.Index, Err: fmt.Errorf("panic: %v", v)}
		}
	}()
	out, err := fn(c)
	if err != nil {
		return Result{Index: c.Index, Err: &WorkerError{Chunk: c.Index, Err: err}}
	}
	r.Lines = out
	return r
}
