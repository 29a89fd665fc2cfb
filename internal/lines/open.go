// internal/lines/open.go
package lines

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/klauspost/pgzip"
	"github.com/ulikunitz/xz"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	xzMagic   = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open returns a reader over path, decompressing gzip (parallel, via pgzip)
// or xz when the magic bytes or the file suffix say so. "-" reads stdin.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return sniff(io.NopCloser(os.Stdin), "")
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	rc, err := sniff(fh, path)
	if err != nil {
		_ = fh.Close()
		return nil, err
	}
	return rc, nil
}

func sniff(src io.ReadCloser, path string) (io.ReadCloser, error) {
	br := bufio.NewReaderSize(src, 1<<16)
	sig, _ := br.Peek(len(xzMagic))
	switch {
	case bytes.HasPrefix(sig, gzipMagic) || strings.HasSuffix(path, ".gz"):
		zr, err := pgzip.NewReader(br)
		if err != nil {
			return nil, err
		}
		return &multiReadCloser{Reader: zr, closers: []io.Closer{zr, src}}, nil
	case bytes.HasPrefix(sig, xzMagic) || strings.HasSuffix(path, ".xz"):
		xr, err := xz.NewReader(br)
		if err != nil {
			return nil, err
		}
		return &multiReadCloser{Reader: xr, closers: []io.Closer{src}}, nil
	}
	return &multiReadCloser{Reader: br, closers: []io.Closer{src}}, nil
}
