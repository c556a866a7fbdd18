// SPDX-License-Identifier: MIT

package edgelist

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrMalformedLine indicates a line that is not a "from to" pair of unsigned integers.
var ErrMalformedLine = errors.New("edgelist: malformed line")

// maxLine bounds a single line; edge-list lines are short.
const maxLine = 1 << 20

// Read parses pairs from r and calls fn for each one in file order. It stops
// at the first parse error or the first error returned by fn, which is
// returned wrapped with the line number. The count of delivered pairs is
// returned in every case.
func Read(r io.Reader, fn func(from, to uint64) error) (int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	var (
		line  int
		count int
	)
	for sc.Scan() {
		line++
		text := bytes.TrimSpace(sc.Bytes())
		if len(text) == 0 || text[0] == '#' {
			continue
		}

		from, to, err := parsePair(text)
		if err != nil {
			return count, fmt.Errorf("edgelist: line %d: %w", line, err)
		}
		if err = fn(from, to); err != nil {
			return count, fmt.Errorf("edgelist: line %d: %w", line, err)
		}
		count++
	}
	if err := sc.Err(); err != nil {
		return count, fmt.Errorf("edgelist: after line %d: %w", line, err)
	}

	return count, nil
}

// parsePair splits text into two fields and parses each as uint64.
func parsePair(text []byte) (uint64, uint64, error) {
	fields := strings.Fields(string(text))
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%q has %d fields, want 2: %w", text, len(fields), ErrMalformedLine)
	}

	from, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("from %q: %w", fields[0], errors.Join(ErrMalformedLine, err))
	}
	to, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("to %q: %w", fields[1], errors.Join(ErrMalformedLine, err))
	}

	return from, to, nil
}

// Open opens path for reading, gunzipping it when the name ends in ".gz".
// The path "-" means standard input.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("edgelist: open %s: %w", path, err)
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}

	zr, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("edgelist: gunzip %s: %w", path, err)
	}

	return &gzipFile{Reader: zr, f: f}, nil
}

// gzipFile closes both the decompressor and the file underneath.
type gzipFile struct {
	*gzip.Reader
	f *os.File
}

func (g *gzipFile) Close() error {
	return errors.Join(g.Reader.Close(), g.f.Close())
}

// ReadFile opens path with Open and streams it through Read.
func ReadFile(path string, fn func(from, to uint64) error) (int, error) {
	rc, err := Open(path)
	if err != nil {
		return 0, err
	}
	defer rc.Close()

	return Read(rc, fn)
}

// Count returns the number of distinct identifiers and links in path.
// The CLI uses it to size an engine when no capacity is configured.
func Count(path string) (nodes, links int, err error) {
	seen := make(map[uint64]struct{})
	links, err = ReadFile(path, func(from, to uint64) error {
		seen[from] = struct{}{}
		seen[to] = struct{}{}
		return nil
	})

	return len(seen), links, err
}
