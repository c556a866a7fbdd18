package pagerank_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linkrank/builder"
	"github.com/katalvlaran/linkrank/pagerank"
)

const (
	damping   = 0.85
	tolerance = 0.0001
)

// toPercentage rounds a score to a percentage with one decimal place.
func toPercentage(v float64) float64 {
	return math.Round(v*1000) / 10
}

// link records every pair on eng, failing the test on error.
func link(t *testing.T, eng *pagerank.Engine, pairs ...[2]uint64) {
	t.Helper()
	for _, p := range pairs {
		require.NoError(t, eng.Link(p[0], p[1]))
	}
}

// assertPercentages ranks eng and compares every node's rounded percentage.
func assertPercentages(t *testing.T, eng *pagerank.Engine, want map[uint64]float64) {
	t.Helper()
	scores, err := eng.Ranks(damping, tolerance)
	require.NoError(t, err)
	require.Len(t, scores, len(want))

	for _, s := range scores {
		exp, ok := want[s.ID]
		require.True(t, ok, "unexpected id %d", s.ID)
		assert.InDelta(t, exp, toPercentage(s.Value), 1e-4, "rank for %d should be %v but was %v", s.ID, exp, s.Value)
	}
}

// sum adds every score value.
func sum(scores []pagerank.Score) float64 {
	var total float64
	for _, s := range scores {
		total += s.Value
	}
	return total
}

func TestRank_SingleEdge(t *testing.T) {
	eng := pagerank.New(3)
	link(t, eng, [2]uint64{0, 1})
	assertPercentages(t, eng, map[uint64]float64{0: 35.1, 1: 64.9})
}

func TestRank_RecalculateAfterNewLink(t *testing.T) {
	eng := pagerank.New(3)
	link(t, eng, [2]uint64{0, 1})
	assertPercentages(t, eng, map[uint64]float64{1: 64.9, 0: 35.1})

	link(t, eng, [2]uint64{1, 2})
	assertPercentages(t, eng, map[uint64]float64{2: 47.4, 1: 34.1, 0: 18.4})
}

func TestRank_ClearThenRelink(t *testing.T) {
	eng := pagerank.New(3)
	link(t, eng, [2]uint64{0, 1}, [2]uint64{1, 2})
	eng.Clear()
	link(t, eng, [2]uint64{0, 1})
	assertPercentages(t, eng, map[uint64]float64{1: 64.9, 0: 35.1})
}

func TestRank_EmptyGraph(t *testing.T) {
	eng := pagerank.New(1)
	calls := 0
	require.NoError(t, eng.Rank(damping, tolerance, func(uint64, float64) { calls++ }))
	assert.Zero(t, calls, "rank of an empty graph must not report any node")

	scores, err := eng.Ranks(damping, tolerance)
	require.NoError(t, err)
	assert.NotNil(t, scores)
	assert.Empty(t, scores)
	stats := eng.LastStats()
	assert.Zero(t, stats.Nodes)
	assert.Zero(t, stats.Iterations)
	assert.True(t, stats.Converged)
}

func TestRank_DanglingNode(t *testing.T) {
	eng := pagerank.New(3)
	// 2 has no outbound links.
	link(t, eng, [2]uint64{0, 2}, [2]uint64{1, 2})
	assertPercentages(t, eng, map[uint64]float64{2: 57.4, 0: 21.3, 1: 21.3})
}

func TestRank_DuplicateLinksFromSingleSource(t *testing.T) {
	eng := pagerank.New(3)
	link(t, eng,
		[2]uint64{0, 2}, [2]uint64{0, 2}, [2]uint64{0, 2},
		[2]uint64{1, 2}, [2]uint64{1, 2})
	assertPercentages(t, eng, map[uint64]float64{2: 57.4, 0: 21.3, 1: 21.3})
}

func TestRank_DuplicateLinksShiftWeight(t *testing.T) {
	eng := pagerank.New(3)
	link(t, eng, [2]uint64{0, 1}, [2]uint64{0, 2})
	single, err := eng.Ranks(damping, 1e-10)
	require.NoError(t, err)

	link(t, eng, [2]uint64{0, 1})
	doubled, err := eng.Ranks(damping, 1e-10)
	require.NoError(t, err)

	// 0 now sends two thirds of its mass to 1.
	assert.Greater(t, doubled[1].Value, single[1].Value)
	assert.Less(t, doubled[2].Value, single[2].Value)
}

func TestRank_StarWithHubLoop(t *testing.T) {
	eng := pagerank.New(3)
	link(t, eng, [2]uint64{0, 2}, [2]uint64{1, 2}, [2]uint64{2, 2})
	assertPercentages(t, eng, map[uint64]float64{2: 90.0, 0: 5.0, 1: 5.0})
}

func TestRank_Cycle(t *testing.T) {
	eng := pagerank.New(5)
	require.NoError(t, builder.Build(eng, nil, builder.Cycle(5)))
	assertPercentages(t, eng, map[uint64]float64{0: 20, 1: 20, 2: 20, 3: 20, 4: 20})
}

func TestRank_ConvergingGraph(t *testing.T) {
	eng := pagerank.New(3)
	link(t, eng, [2]uint64{0, 1}, [2]uint64{0, 2}, [2]uint64{1, 2}, [2]uint64{2, 2})
	assertPercentages(t, eng, map[uint64]float64{2: 87.9, 1: 7.1, 0: 5.0})
}

func TestRank_Wikipedia(t *testing.T) {
	eng := pagerank.New(builder.WikipediaNodes)
	require.NoError(t, builder.Build(eng, nil, builder.Wikipedia()))
	assertPercentages(t, eng, map[uint64]float64{
		1:  38.4, // B
		2:  34.3, // C
		4:  8.1,  // E
		3:  3.9,  // D
		5:  3.9,  // F
		0:  3.3,  // A
		6:  1.6,  // G
		7:  1.6,  // H
		8:  1.6,  // I
		9:  1.6,  // J
		10: 1.6,  // K
	})
}

func TestRank_ScatteredIdentifiers(t *testing.T) {
	plain := pagerank.New(builder.WikipediaNodes)
	require.NoError(t, builder.Build(plain, nil, builder.Wikipedia()))

	idFn := builder.ScatteredIDs(99)
	scattered := pagerank.New(builder.WikipediaNodes)
	require.NoError(t, builder.Build(scattered, []builder.BuilderOption{builder.WithIDScheme(idFn)}, builder.Wikipedia()))

	want, err := plain.Ranks(damping, tolerance)
	require.NoError(t, err)
	got, err := scattered.Ranks(damping, tolerance)
	require.NoError(t, err)

	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, idFn(int(want[i].ID)), got[i].ID)
		assert.Equal(t, want[i].Value, got[i].Value)
	}
}

func TestRank_CallbackOrderIsFirstSeen(t *testing.T) {
	eng := pagerank.New(4)
	link(t, eng, [2]uint64{30, 10}, [2]uint64{20, 10}, [2]uint64{10, 40})

	var ids []uint64
	require.NoError(t, eng.Rank(damping, tolerance, func(id uint64, _ float64) {
		ids = append(ids, id)
	}))
	assert.Equal(t, []uint64{30, 10, 20, 40}, ids)
}

func TestRank_MassConservation(t *testing.T) {
	cases := map[string][]builder.Constructor{
		"path":     {builder.Path(50)},
		"star":     {builder.Star(40)},
		"complete": {builder.Complete(12)},
		"skewed":   {builder.Skewed(300, 30, 3)},
		"mixed":    {builder.Path(10), builder.Star(10), builder.Loop(3)},
	}

	for name, cons := range cases {
		t.Run(name, func(t *testing.T) {
			eng := pagerank.New(300)
			require.NoError(t, builder.Build(eng, []builder.BuilderOption{builder.WithSeed(11)}, cons...))

			scores, err := eng.Ranks(damping, 1e-8)
			require.NoError(t, err)
			assert.InDelta(t, 1.0, sum(scores), 1e-9)
			for _, s := range scores {
				assert.Greater(t, s.Value, 0.0, "id %d", s.ID)
			}
		})
	}
}

func TestRank_DanglingMassIsRedistributed(t *testing.T) {
	eng := pagerank.New(10)
	require.NoError(t, builder.Build(eng, nil, builder.Path(10)))

	scores, err := eng.Ranks(damping, 1e-10)
	require.NoError(t, err)

	teleport := (1 - damping) / 10
	last := scores[len(scores)-1]
	assert.Equal(t, uint64(9), last.ID)
	assert.Greater(t, last.Value, teleport)
	assert.InDelta(t, 1.0, sum(scores), 1e-9)
	assert.Equal(t, 1, eng.LastStats().Dangling)
}

func TestRank_NodeWithoutLinksStillScored(t *testing.T) {
	// A self-loop is the only way to register an isolated identifier.
	eng := pagerank.New(4)
	link(t, eng, [2]uint64{0, 1}, [2]uint64{2, 2})

	scores, err := eng.Ranks(damping, 1e-10)
	require.NoError(t, err)
	require.Len(t, scores, 3)
	assert.Equal(t, uint64(2), scores[2].ID)
	assert.Greater(t, scores[2].Value, 0.0)
}

func TestRank_Deterministic(t *testing.T) {
	eng := pagerank.New(6000, pagerank.WithWorkers(4))
	require.NoError(t, builder.Build(eng, []builder.BuilderOption{builder.WithSeed(3)}, builder.Skewed(6000, 12, 3)))

	first, err := eng.Ranks(damping, 1e-6)
	require.NoError(t, err)
	second, err := eng.Ranks(damping, 1e-6)
	require.NoError(t, err)
	assert.Equal(t, first, second, "repeated ranks must be bit-for-bit identical")
}

func TestRank_WorkerCountDoesNotChangeScores(t *testing.T) {
	edges, err := builder.Edges([]builder.BuilderOption{builder.WithSeed(8)}, builder.Skewed(7000, 10, 5))
	require.NoError(t, err)

	rank := func(workers int) []pagerank.Score {
		eng := pagerank.New(7000, pagerank.WithWorkers(workers))
		c := builder.Collector{Edges: edges}
		require.NoError(t, c.Replay(eng))
		scores, err := eng.Ranks(damping, 1e-8)
		require.NoError(t, err)
		return scores
	}

	serial, parallel := rank(1), rank(8)
	require.Len(t, parallel, len(serial))
	for i := range serial {
		assert.Equal(t, serial[i].ID, parallel[i].ID)
		assert.InDelta(t, serial[i].Value, parallel[i].Value, 1e-12)
	}
}

func TestRank_ResetReproducesScores(t *testing.T) {
	edges, err := builder.Edges([]builder.BuilderOption{builder.WithSeed(21)}, builder.RandomSparse(60, 0.05))
	require.NoError(t, err)
	c := builder.Collector{Edges: edges}

	eng := pagerank.New(60)
	require.NoError(t, c.Replay(eng))
	before, err := eng.Ranks(damping, tolerance)
	require.NoError(t, err)

	eng.Clear()
	require.NoError(t, c.Replay(eng))
	after, err := eng.Ranks(damping, tolerance)
	require.NoError(t, err)

	assert.Equal(t, before, after)
}

func TestRank_DoesNotMutateGraph(t *testing.T) {
	eng := pagerank.New(11)
	require.NoError(t, builder.Build(eng, nil, builder.Wikipedia()))
	dump := eng.String()

	_, err := eng.Ranks(damping, tolerance)
	require.NoError(t, err)
	assert.Equal(t, dump, eng.String())
	assert.Equal(t, 11, eng.Len())
	assert.Equal(t, 17, eng.Edges())
}

func TestRank_ZeroDampingIsUniform(t *testing.T) {
	eng := pagerank.New(11)
	require.NoError(t, builder.Build(eng, nil, builder.Wikipedia()))

	scores, err := eng.Ranks(0, tolerance)
	require.NoError(t, err)
	for _, s := range scores {
		assert.InDelta(t, 1.0/11, s.Value, 1e-12)
	}
}

func TestRank_InvalidParameters(t *testing.T) {
	eng := pagerank.New(2)
	link(t, eng, [2]uint64{0, 1})
	noop := func(uint64, float64) {}

	tests := []struct {
		name string
		d    float64
		tol  float64
		want error
	}{
		{"negative damping", -0.1, tolerance, pagerank.ErrInvalidDamping},
		{"damping above one", 1.1, tolerance, pagerank.ErrInvalidDamping},
		{"NaN damping", math.NaN(), tolerance, pagerank.ErrInvalidDamping},
		{"negative tolerance", damping, -1, pagerank.ErrInvalidTolerance},
		{"NaN tolerance", damping, math.NaN(), pagerank.ErrInvalidTolerance},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, eng.Rank(tc.d, tc.tol, noop), tc.want)
			_, err := eng.Ranks(tc.d, tc.tol)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	assert.ErrorIs(t, eng.Rank(damping, tolerance, nil), pagerank.ErrNilCallback)
}

func TestRank_MaxIterations(t *testing.T) {
	eng := pagerank.New(3, pagerank.WithMaxIterations(1))
	require.NoError(t, builder.Build(eng, nil, builder.Path(3)))

	scores, err := eng.Ranks(damping, 0)
	require.NoError(t, err)
	stats := eng.LastStats()
	assert.Equal(t, 1, stats.Iterations)
	assert.False(t, stats.Converged)
	assert.Greater(t, stats.Delta, 0.0)
	assert.InDelta(t, 1.0, sum(scores), 1e-12)
}

func TestRank_Hooks(t *testing.T) {
	var deltas []float64
	var ranked []pagerank.Stats
	eng := pagerank.New(11,
		pagerank.WithOnIteration(func(iteration int, delta float64) {
			assert.Equal(t, len(deltas)+1, iteration)
			deltas = append(deltas, delta)
		}),
		pagerank.WithOnRanked(func(s pagerank.Stats) { ranked = append(ranked, s) }),
	)
	require.NoError(t, builder.Build(eng, nil, builder.Wikipedia()))

	_, err := eng.Ranks(damping, tolerance)
	require.NoError(t, err)

	require.Len(t, ranked, 1)
	s := ranked[0]
	assert.Equal(t, eng.LastStats(), s)
	assert.Equal(t, 11, s.Nodes)
	assert.Equal(t, 17, s.Edges)
	assert.Equal(t, 1, s.Dangling)
	assert.True(t, s.Converged)
	assert.Len(t, deltas, s.Iterations)
	assert.Greater(t, s.Iterations, 1)
	assert.LessOrEqual(t, deltas[len(deltas)-1], tolerance)
	assert.Greater(t, deltas[0], tolerance)
	assert.Equal(t, s.Delta, deltas[len(deltas)-1])
}

func TestRank_FirstPassAlwaysRuns(t *testing.T) {
	eng := pagerank.New(1)
	link(t, eng, [2]uint64{4, 4})

	scores, err := eng.Ranks(damping, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, eng.LastStats().Iterations)
	require.Len(t, scores, 1)
	assert.InDelta(t, 1.0, scores[0].Value, 1e-15)
}

func TestSortByValueAndTop(t *testing.T) {
	scores := []pagerank.Score{{ID: 0, Value: 0.1}, {ID: 1, Value: 0.5}, {ID: 2, Value: 0.1}, {ID: 3, Value: 0.3}}

	top := pagerank.Top(scores, 2)
	assert.Equal(t, []pagerank.Score{{ID: 1, Value: 0.5}, {ID: 3, Value: 0.3}}, top)
	assert.Equal(t, uint64(0), scores[0].ID, "Top leaves its input alone")

	assert.Len(t, pagerank.Top(scores, 0), 4)
	assert.Len(t, pagerank.Top(scores, 10), 4)

	pagerank.SortByValue(scores)
	assert.Equal(t, []uint64{1, 3, 0, 2}, []uint64{scores[0].ID, scores[1].ID, scores[2].ID, scores[3].ID},
		"ties keep their original order")
}
