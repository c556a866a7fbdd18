// SPDX-License-Identifier: MIT

package edgelist

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Writer emits "from\tto\n" lines. It satisfies builder.Linker, so fixtures
// can be streamed straight to a file. Call Flush (or Close for gzip output)
// when done.
type Writer struct {
	bw    *bufio.Writer
	zw    *gzip.Writer
	buf   []byte
	links int
}

// NewWriter returns a Writer on w. When compress is true the output is gzipped.
func NewWriter(w io.Writer, compress bool) *Writer {
	ew := &Writer{buf: make([]byte, 0, 48)}
	if compress {
		ew.zw = gzip.NewWriter(w)
		ew.bw = bufio.NewWriter(ew.zw)
	} else {
		ew.bw = bufio.NewWriter(w)
	}

	return ew
}

// Comment writes a "# text" line.
func (w *Writer) Comment(text string) error {
	_, err := fmt.Fprintf(w.bw, "# %s\n", text)
	return err
}

// Link writes one pair.
func (w *Writer) Link(from, to uint64) error {
	w.buf = strconv.AppendUint(w.buf[:0], from, 10)
	w.buf = append(w.buf, '\t')
	w.buf = strconv.AppendUint(w.buf, to, 10)
	w.buf = append(w.buf, '\n')
	if _, err := w.bw.Write(w.buf); err != nil {
		return fmt.Errorf("edgelist: write: %w", err)
	}
	w.links++

	return nil
}

// Links reports how many pairs were written.
func (w *Writer) Links() int { return w.links }

// Flush writes buffered data to the underlying writer.
func (w *Writer) Flush() error {
	if err := w.bw.Flush(); err != nil {
		return fmt.Errorf("edgelist: flush: %w", err)
	}
	if w.zw != nil {
		return w.zw.Flush()
	}

	return nil
}

// Close flushes and, for gzip output, terminates the gzip stream. It does
// not close the underlying writer.
func (w *Writer) Close() error {
	err := w.bw.Flush()
	if w.zw != nil {
		err = errors.Join(err, w.zw.Close())
	}

	return err
}
