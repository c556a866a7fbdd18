package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linkrank/builder"
	"github.com/katalvlaran/linkrank/edgelist"
)

var generateKinds = []string{
	"cycle", "path", "star", "wheel", "grid", "complete", "bipartite", "random", "regular", "skewed", "wikipedia",
}

var generateCmd = &cobra.Command{
	Use:       "generate <kind>",
	Short:     "Write a synthetic edge list",
	Long:      "Write a synthetic edge list of the given kind: " + strings.Join(generateKinds, ", ") + ".",
	Args:      cobra.ExactArgs(1),
	ValidArgs: generateKinds,
	RunE:      runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.Int("nodes", 10, "number of nodes")
	f.Float64("p", 0.1, "link probability for random")
	f.Int("max-out", 20, "maximum out-links per node for skewed")
	f.Int("hot", 3, "number of hot nodes for skewed")
	f.Int("rows", 2, "rows for grid (--nodes is the column count)")
	f.Int("right", 2, "right-side size for bipartite (--nodes is the left side)")
	f.Int("degree", 3, "out-degree for regular")
	f.Int64("seed", 1, "random seed")
	f.Uint64("scatter", 0, "if non-zero, scatter identifiers over uint64 with this seed")
	f.StringP("output", "o", "-", "output file (- for stdout)")
	f.Bool("gzip", false, "gzip the output")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	nodes, _ := cmd.Flags().GetInt("nodes")
	p, _ := cmd.Flags().GetFloat64("p")
	maxOut, _ := cmd.Flags().GetInt("max-out")
	hot, _ := cmd.Flags().GetInt("hot")
	rows, _ := cmd.Flags().GetInt("rows")
	right, _ := cmd.Flags().GetInt("right")
	degree, _ := cmd.Flags().GetInt("degree")
	seed, _ := cmd.Flags().GetInt64("seed")
	scatter, _ := cmd.Flags().GetUint64("scatter")
	output, _ := cmd.Flags().GetString("output")
	compress, _ := cmd.Flags().GetBool("gzip")

	var cons builder.Constructor
	switch kind := strings.ToLower(args[0]); kind {
	case "cycle":
		cons = builder.Cycle(nodes)
	case "path":
		cons = builder.Path(nodes)
	case "star":
		cons = builder.Star(nodes)
	case "wheel":
		cons = builder.Wheel(nodes)
	case "grid":
		cons = builder.Grid(rows, nodes)
	case "complete":
		cons = builder.Complete(nodes)
	case "bipartite":
		cons = builder.CompleteBipartite(nodes, right)
	case "random":
		cons = builder.RandomSparse(nodes, p)
	case "regular":
		cons = builder.RandomRegular(nodes, degree)
	case "skewed":
		cons = builder.Skewed(nodes, maxOut, hot)
	case "wikipedia":
		cons = builder.Wikipedia()
	default:
		return fmt.Errorf("generate: unknown kind %q (want one of %s)", kind, strings.Join(generateKinds, ", "))
	}

	opts := []builder.BuilderOption{builder.WithSeed(seed)}
	if scatter != 0 {
		opts = append(opts, builder.WithIDScheme(builder.ScatteredIDs(scatter)))
	}

	var out io.Writer = cmd.OutOrStdout()
	if output != "-" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("generate: %w", err)
		}
		defer f.Close()
		out = f
	}

	w := edgelist.NewWriter(out, compress)
	if err := w.Comment(fmt.Sprintf("linkrank generate %s nodes=%d seed=%d", args[0], nodes, seed)); err != nil {
		return err
	}
	if err := builder.Build(w, opts, cons); err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	return w.Close()
}
