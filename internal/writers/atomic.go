// internal/writers/atomic.go
package writers

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/pgzip"
	"github.com/zeebo/blake3"
)

// AtomicFile writes to a hidden temp file next to the destination and only
// renames it into place on Commit, so a failed run leaves no output behind.
// Paths ending in .gz are pgzip-compressed. Digest covers the uncompressed
// bytes.
type AtomicFile struct {
	path string
	tmp  *os.File
	zw   *pgzip.Writer
	bw   *bufio.Writer
	sum  hash.Hash
	n    int64
	done bool
}

// Create opens a temp file in path's directory.
func Create(path string) (*AtomicFile, error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	a := &AtomicFile{path: path, tmp: tmp, sum: blake3.New()}
	var sink io.Writer = tmp
	if strings.HasSuffix(path, ".gz") {
		zw, err := pgzip.NewWriterLevel(tmp, pgzip.BestSpeed)
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
			return nil, err
		}
		a.zw = zw
		sink = zw
	}
	a.bw = bufio.NewWriterSize(sink, 1<<20)
	return a, nil
}

func (a *AtomicFile) Write(p []byte) (int, error) {
	n, err := a.bw.Write(p)
	a.sum.Write(p[:n])
	a.n += int64(n)
	return n, err
}

func (a *AtomicFile) WriteString(s string) (int, error) {
	n, err := a.bw.WriteString(s)
	io.WriteString(a.sum, s[:n])
	a.n += int64(n)
	return n, err
}

// Bytes is the number of uncompressed bytes written so far.
func (a *AtomicFile) Bytes() int64 { return a.n }

// Digest is the BLAKE3-256 hex digest of the uncompressed bytes written.
func (a *AtomicFile) Digest() string { return hex.EncodeToString(a.sum.Sum(nil)) }

// Commit flushes, closes and renames the temp file onto the destination.
func (a *AtomicFile) Commit() error {
	if a.done {
		return errors.New("writers: commit after close")
	}
	a.done = true
	err := a.bw.Flush()
	if a.zw != nil {
		if cerr := a.zw.Close(); err == nil {
			err = cerr
		}
	}
	if cerr := a.tmp.Chmod(0o644); err == nil {
		err = cerr
	}
	if cerr := a.tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(a.tmp.Name(), a.path)
	}
	if err != nil {
		_ = os.Remove(a.tmp.Name())
		return fmt.Errorf("write %s: %w", a.path, err)
	}
	return nil
}

// Abort discards everything written. It is a no-op after Commit, so it can
// be deferred unconditionally.
func (a *AtomicFile) Abort() {
	if a.done {
		return
	}
	a.done = true
	if a.zw != nil {
		_ = a.zw.Close()
	}
	_ = a.tmp.Close()
	_ = os.Remove(a.tmp.Name())
}

// Summary describes a committed output file.
type Summary struct {
	Path   string
	Lines  int
	Bytes  int64
	Digest string
}

// WriteLines writes lines verbatim (they carry their own terminators) to
// path atomically.
func WriteLines(path string, lines []string) (Summary, error) {
	a, err := Create(path)
	if err != nil {
		return Summary{}, err
	}
	defer a.Abort()
	for _, l := range lines {
		if _, err := a.WriteString(l); err != nil {
			return Summary{}, fmt.Errorf("write %s: %w", path, err)
		}
	}
	if err := a.Commit(); err != nil {
		return Summary{}, err
	}
	return Summary{Path: path, Lines: len(lines), Bytes: a.Bytes(), Digest: a.Digest()}, nil
}
