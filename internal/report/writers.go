package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// writeText prints a header followed by an aligned id/score/percent table.
func writeText(w io.Writer, r Report) error {
	s := r.Stats
	if _, err := fmt.Fprintf(w, "# run %s source=%s damping=%g tolerance=%g\n", r.RunID, r.Source, r.Damping, r.Tolerance); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "# nodes=%d edges=%d dangling=%d iterations=%d delta=%.3g converged=%t elapsed=%s\n",
		s.Nodes, s.Edges, s.Dangling, s.Iterations, s.Delta, s.Converged, s.Elapsed.Round(time.Microsecond)); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "id\tscore\tpercent\t")
	for _, sc := range r.Scores {
		fmt.Fprintf(tw, "%d\t%.6f\t%.1f%%\t\n", sc.ID, sc.Value, sc.Value*100)
	}

	return tw.Flush()
}

func writeJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(r)
}

func writeYAML(w io.Writer, r Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}

	return enc.Close()
}

// tomlReport mirrors Report for TOML, whose integers are signed 64-bit.
// Identifiers are therefore written as decimal strings.
type tomlReport struct {
	RunID       string      `toml:"run_id"`
	Source      string      `toml:"source"`
	Damping     float64     `toml:"damping"`
	Tolerance   float64     `toml:"tolerance"`
	GeneratedAt time.Time   `toml:"generated_at"`
	Stats       tomlStats   `toml:"stats"`
	Scores      []tomlScore `toml:"scores"`
}

type tomlStats struct {
	Nodes      int     `toml:"nodes"`
	Edges      int     `toml:"edges"`
	Dangling   int     `toml:"dangling"`
	Iterations int     `toml:"iterations"`
	Delta      float64 `toml:"delta"`
	Converged  bool    `toml:"converged"`
	Elapsed    string  `toml:"elapsed"`
}

type tomlScore struct {
	ID    string  `toml:"id"`
	Score float64 `toml:"score"`
}

func writeTOML(w io.Writer, r Report) error {
	out := tomlReport{
		RunID:       r.RunID,
		Source:      r.Source,
		Damping:     r.Damping,
		Tolerance:   r.Tolerance,
		GeneratedAt: r.GeneratedAt,
		Stats: tomlStats{
			Nodes:      r.Stats.Nodes,
			Edges:      r.Stats.Edges,
			Dangling:   r.Stats.Dangling,
			Iterations: r.Stats.Iterations,
			Delta:      r.Stats.Delta,
			Converged:  r.Stats.Converged,
			Elapsed:    r.Stats.Elapsed.String(),
		},
		Scores: make([]tomlScore, len(r.Scores)),
	}
	for i, sc := range r.Scores {
		out.Scores[i] = tomlScore{ID: strconv.FormatUint(sc.ID, 10), Score: sc.Value}
	}

	return toml.NewEncoder(w).Encode(out)
}
