package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/linkrank/builder"
	"github.com/katalvlaran/linkrank/edgelist"
	"github.com/katalvlaran/linkrank/internal/config"
	"github.com/katalvlaran/linkrank/internal/metrics"
	"github.com/katalvlaran/linkrank/internal/report"
	"github.com/katalvlaran/linkrank/internal/watch"
	"github.com/katalvlaran/linkrank/pagerank"
)

const stdinPath = "-"

var errWatchStdin = errors.New("rank: --watch needs a file argument")

var rankCmd = &cobra.Command{
	Use:   "rank [file]",
	Short: "Rank the nodes of an edge list",
	Long: `Rank reads "from to" identifier pairs (one per line, # comments allowed,
.gz transparently decompressed) from file or stdin and prints every node's
PageRank score.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRank,
}

func init() {
	f := rankCmd.Flags()
	f.Int("capacity", 0, "maximum distinct nodes (0: count the input first)")
	f.Float64("damping", 0.85, "probability of following a link")
	f.Float64("tolerance", 0.0001, "L1 convergence tolerance")
	f.Int("workers", 0, "parallel workers per pass (0: GOMAXPROCS)")
	f.Int("max-iterations", 0, "stop after this many passes (0: until converged)")
	f.StringP("format", "f", "text", "output format: text, json, yaml, toml")
	f.String("sort", config.SortValue, "output order: value or index")
	f.IntP("top", "n", 0, "print only the first n scores (0: all)")
	f.BoolP("watch", "w", false, "re-rank whenever the file changes")
	f.Duration("debounce", 200*time.Millisecond, "quiet period before a change is re-ranked")
	f.String("metrics-addr", "", "serve Prometheus metrics on this address, e.g. :9090")

	for key, flag := range map[string]string{
		"capacity":       "capacity",
		"damping":        "damping",
		"tolerance":      "tolerance",
		"workers":        "workers",
		"max_iterations": "max-iterations",
		"format":         "format",
		"sort":           "sort",
		"top":            "top",
		"watch":          "watch",
		"debounce":       "debounce",
		"metrics_addr":   "metrics-addr",
	} {
		_ = viper.BindPFlag(key, f.Lookup(flag))
	}

	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log := newLogger(cmd, cfg)

	path := stdinPath
	if len(args) == 1 {
		path = args[0]
	}
	if cfg.Watch && path == stdinPath {
		return errWatchStdin
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := &ranker{cfg: cfg, path: path, in: cmd.InOrStdin(), out: cmd.OutOrStdout(), log: log}
	if cfg.MetricsAddr != "" {
		r.rec = metrics.NewRecorder()
		srv := serveMetrics(ctx, cfg.MetricsAddr, r.rec, log)
		defer srv.Close()
	}

	err = r.run()
	if !cfg.Watch {
		return err
	}
	if err != nil {
		log.Error("initial rank failed", "path", path, "err", err)
	}

	err = watch.New(path, cfg.Debounce, log).Run(ctx, r.run)
	log.Info("watch stopped", "path", path)

	return err
}

// ranker loads, ranks and reports one edge list. In watch mode it is run
// repeatedly and reuses its engine while the graph fits.
type ranker struct {
	cfg  config.Config
	path string
	in   io.Reader
	out  io.Writer
	log  *slog.Logger
	rec  *metrics.Recorder

	engine *pagerank.Engine
}

func (r *ranker) run() error {
	start := time.Now()
	e, err := r.load()
	if r.rec != nil {
		r.rec.ObserveLoad(err)
	}
	if err != nil {
		return err
	}
	r.log.Debug("loaded", "path", r.path, "nodes", e.Len(), "edges", e.Edges(), "elapsed", time.Since(start))

	scores, err := e.Ranks(r.cfg.Damping, r.cfg.Tolerance)
	if err != nil {
		return err
	}
	stats := e.LastStats()

	scores = order(scores, r.cfg.Sort, r.cfg.Top)
	rep := report.New(r.path, r.cfg.Damping, r.cfg.Tolerance, stats, scores)
	r.log.Info("ranked",
		"run_id", rep.RunID,
		"nodes", stats.Nodes,
		"edges", stats.Edges,
		"iterations", stats.Iterations,
		"converged", stats.Converged,
		"elapsed", stats.Elapsed)
	if !stats.Converged {
		r.log.Warn("iteration limit reached before convergence", "delta", stats.Delta)
	}

	return report.Write(r.out, r.cfg.Format, rep)
}

// load fills the engine from r.path. Stdin is buffered so it can be sized
// before any link is recorded.
func (r *ranker) load() (*pagerank.Engine, error) {
	var (
		capacity = r.cfg.Capacity
		pending  *builder.Collector
	)

	switch {
	case r.path == stdinPath:
		pending = &builder.Collector{}
		if _, err := edgelist.Read(r.in, pending.Link); err != nil {
			return nil, err
		}
		if capacity == 0 {
			capacity = distinct(pending.Edges)
		}
	case capacity == 0:
		nodes, _, err := edgelist.Count(r.path)
		if err != nil {
			return nil, err
		}
		capacity = nodes
	}

	e := r.engineFor(capacity)
	if pending != nil {
		if err := pending.Replay(e); err != nil {
			return nil, err
		}
		return e, nil
	}
	if _, err := edgelist.ReadFile(r.path, e.Link); err != nil {
		return nil, err
	}

	return e, nil
}

// engineFor returns a cleared engine that holds at least capacity nodes.
func (r *ranker) engineFor(capacity int) *pagerank.Engine {
	if r.engine != nil && r.engine.Capacity() >= capacity {
		r.engine.Clear()
		return r.engine
	}

	var opts []pagerank.Option
	if r.cfg.Workers > 0 {
		opts = append(opts, pagerank.WithWorkers(r.cfg.Workers))
	}
	if r.cfg.MaxIterations > 0 {
		opts = append(opts, pagerank.WithMaxIterations(r.cfg.MaxIterations))
	}
	if r.rec != nil {
		opts = append(opts, r.rec.Options()...)
	}
	r.engine = pagerank.New(capacity, opts...)

	return r.engine
}

func distinct(edges []builder.Edge) int {
	seen := make(map[uint64]struct{}, len(edges))
	for _, e := range edges {
		seen[e.From] = struct{}{}
		seen[e.To] = struct{}{}
	}

	return len(seen)
}

// order applies the configured sort and top-k limit.
func order(scores []pagerank.Score, by string, top int) []pagerank.Score {
	if by == config.SortValue {
		return pagerank.Top(scores, top)
	}
	if top > 0 && top < len(scores) {
		return scores[:top]
	}

	return scores
}

func serveMetrics(ctx context.Context, addr string, rec *metrics.Recorder, log *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", rec.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		log.Info("serving metrics", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server stopped", "err", err)
		}
	}()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	return srv
}
