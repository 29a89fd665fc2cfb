// internal/lines/reader.go
package lines

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReadAll returns every line of r with its terminator kept ("\n" or
// "\r\n"); the last line may have none. Concatenating the result
// reproduces the input byte for byte.
func ReadAll(r io.Reader) ([]string, error) {
	br := bufio.NewReaderSize(r, 1<<20)
	var out []string
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			out = append(out, line)
		}
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
	}
}

// ReadFile opens path (see Open) and reads it with ReadAll.
func ReadFile(path string) ([]string, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	ls, err := ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return ls, nil
}

// SplitTerminator separates a line from its "\n" / "\r\n" terminator.
func SplitTerminator(line string) (body, eol string) {
	if strings.HasSuffix(line, "\r\n") {
		return line[:len(line)-2], "\r\n"
	}
	if strings.HasSuffix(line, "\n") {
		return line[:len(line)-1], "\n"
	}
	return line, ""
}

// Scan calls fn for each line of path without its terminator. It is the
// streaming counterpart of ReadFile for tools that never hold the file.
func Scan(path string, fn func(line string) error) error {
	rc, err := Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()
	sc := bufio.NewScanner(rc)
	sc.Buffer(make([]byte, 0, 1<<16), 64<<20)
	for sc.Scan() {
		if err := fn(strings.TrimSuffix(sc.Text(), "\r")); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("scan %s: %w", path, err)
	}
	return nil
}
