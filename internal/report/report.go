// Package report renders ranking results in the output formats the CLI
// supports. Each format is a WriterFunc registered under its name.
package report

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/linkrank/pagerank"
)

// ErrUnknownFormat is returned by Write for a format nobody registered.
var ErrUnknownFormat = errors.New("report: unknown format")

// Report is one ranking run ready to be rendered.
type Report struct {
	RunID       string           `json:"run_id" yaml:"run_id"`
	Source      string           `json:"source" yaml:"source"`
	Damping     float64          `json:"damping" yaml:"damping"`
	Tolerance   float64          `json:"tolerance" yaml:"tolerance"`
	GeneratedAt time.Time        `json:"generated_at" yaml:"generated_at"`
	Stats       pagerank.Stats   `json:"stats" yaml:"stats"`
	Scores      []pagerank.Score `json:"scores" yaml:"scores"`
}

// New stamps a report with a fresh run ID and the current time.
func New(source string, damping, tolerance float64, stats pagerank.Stats, scores []pagerank.Score) Report {
	return Report{
		RunID:       uuid.NewString(),
		Source:      source,
		Damping:     damping,
		Tolerance:   tolerance,
		GeneratedAt: time.Now().UTC(),
		Stats:       stats,
		Scores:      scores,
	}
}

// WriterFunc renders r to w.
type WriterFunc func(w io.Writer, r Report) error

var (
	mu       sync.RWMutex
	registry = map[string]WriterFunc{
		"text": writeText,
		"json": writeJSON,
		"yaml": writeYAML,
		"toml": writeTOML,
	}
)

// Register adds or replaces the writer for format. Names are case-insensitive.
// Panics if fn is nil.
func Register(format string, fn WriterFunc) {
	if fn == nil {
		panic("report: Register(nil WriterFunc)")
	}
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(format)] = fn
}

// Formats lists the registered format names in sorted order.
func Formats() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Write renders r to w in the named format.
func Write(w io.Writer, format string, r Report) error {
	mu.RLock()
	fn, ok := registry[strings.ToLower(format)]
	mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w %q (have %s)", ErrUnknownFormat, format, strings.Join(Formats(), ", "))
	}
	if err := fn(w, r); err != nil {
		return fmt.Errorf("report: write %s: %w", format, err)
	}

	return nil
}
