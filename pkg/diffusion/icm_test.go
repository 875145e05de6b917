package diffusion

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/gossip-diffusion/pkg/centrality"
	"github.com/dd0wney/gossip-diffusion/pkg/graph"
)

func clubDegree(t *testing.T) centrality.Table {
	t.Helper()
	degree, err := centrality.DegreeCentrality(graph.ClubNetwork())
	require.NoError(t, err)
	return degree
}

func TestSimulateICM_Deterministic(t *testing.T) {
	g := graph.ClubNetwork()
	degree := clubDegree(t)
	seeds := MustSeedSet(g, 12, 5)

	first, err := SimulateICM(g, degree, seeds, rand.New(rand.NewSource(42)), ICMOptions{})
	require.NoError(t, err)
	second, err := SimulateICM(g, degree, seeds, rand.New(rand.NewSource(42)), ICMOptions{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, HaltExhausted, first.Halt)
	assert.True(t, first.IsActive(12) && first.IsActive(5))
}

func TestSimulateICM_HubFrequency(t *testing.T) {
	g := graph.ClubNetwork()
	degree := clubDegree(t)
	seeds := MustSeedSet(g, 12, 5)

	const trials = 200
	grew := 0
	total := 0
	for i := 0; i < trials; i++ {
		result, err := SimulateICM(g, degree, seeds, rand.New(rand.NewSource(int64(i))), ICMOptions{})
		require.NoError(t, err)

		assert.True(t, result.IsActive(12) && result.IsActive(5), "seeds must stay active")
		if result.Size() > 2 {
			grew++
		}
		total += result.Size()
	}

	// Node 12 alone tries 24 other neighbors at p = 26/33
	assert.GreaterOrEqual(t, float64(grew)/trials, 0.95)
	assert.Greater(t, float64(total)/trials, 10.0)
}

func TestSimulateICM_ConstantDraws(t *testing.T) {
	g := graph.ClubNetwork()
	degree := clubDegree(t)

	all, err := SimulateICM(g, degree, MustSeedSet(g, 23), constantSource(0), ICMOptions{})
	require.NoError(t, err)
	assert.Equal(t, g.Nodes(), all.Active, "a zero draw always succeeds")

	none, err := SimulateICM(g, degree, MustSeedSet(g, 23), constantSource(0.999), ICMOptions{})
	require.NoError(t, err)
	assert.Equal(t, []uint64{23}, none.Active)
	assert.Empty(t, none.Rounds)
	assert.Equal(t, HaltExhausted, none.Halt)
}

func TestSimulateICM_Errors(t *testing.T) {
	g := graph.ClubNetwork()
	degree := clubDegree(t)

	_, err := SimulateICM(g, degree, MustSeedSet(g, 1), nil, ICMOptions{})
	assert.ErrorIs(t, err, ErrNilRandomSource)

	partial := centrality.Table{1: 0.5}
	_, err = SimulateICM(g, partial, MustSeedSet(g, 1), constantSource(0), ICMOptions{})
	assert.ErrorIs(t, err, ErrMissingEntry)
	assert.ErrorIs(t, err, ErrMetricsUnavailable)

	_, err = SimulateICM(g, degree, MustSeedSet(g, 1), constantSource(0), ICMOptions{MaxRounds: -1})
	assert.ErrorIs(t, err, ErrInvalidOptions)
}

func TestSimulateICM_UnreachableEntriesNotRequired(t *testing.T) {
	g := graph.MustNew(nil, []graph.Edge{{From: 1, To: 2}, {From: 3, To: 4}})
	degree := centrality.Table{1: 1, 2: 1}

	result, err := SimulateICM(g, degree, MustSeedSet(g, 1), constantSource(0), ICMOptions{})
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2}, result.Active)
}

func TestSimulateCascade_TrialOrder(t *testing.T) {
	g := graph.MustNew(nil, []graph.Edge{{From: 1, To: 2}, {From: 1, To: 3}, {From: 2, To: 4}})
	source := &sequenceSource{draws: []float64{0.9, 0.1}}

	result, err := SimulateCascade(g, MustSeedSet(g, 1), 0.5, source, ICMOptions{})
	require.NoError(t, err)

	// 1->2 draws 0.9 and fails, 1->3 draws 0.1 and succeeds; 3 has no
	// inactive neighbors so no further draws happen.
	assert.Equal(t, []uint64{1, 3}, result.Active)
	assert.Equal(t, []Round{{Index: 1, Activated: []uint64{3}}}, result.Rounds)
	assert.Equal(t, 2, source.taken)
}

func TestSimulateCascade_CertainSpread(t *testing.T) {
	g := graph.MustNew(nil, []graph.Edge{{From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 4}, {From: 4, To: 5}})

	result, err := SimulateCascade(g, MustSeedSet(g, 1), 1, constantSource(0.5), ICMOptions{})
	require.NoError(t, err)

	assert.Equal(t, []uint64{1, 2, 3, 4, 5}, result.Active)
	require.Len(t, result.Rounds, 4)
	assert.Equal(t, Round{Index: 4, Activated: []uint64{5}}, result.Rounds[3])

	_, err = SimulateCascade(g, MustSeedSet(g, 1), 1, constantSource(0.5), ICMOptions{MaxRounds: 2})
	assert.ErrorIs(t, err, ErrRoundLimit)
}

func TestSimulateCascade_ZeroProbability(t *testing.T) {
	g := graph.ClubNetwork()

	result, err := SimulateCascade(g, MustSeedSet(g, 12, 5), 0, constantSource(0), ICMOptions{})
	require.NoError(t, err)
	assert.Equal(t, []uint64{5, 12}, result.Active)
	assert.Equal(t, []uint64{12, 5}, result.Seeds)
}

func TestSimulateCascade_InvalidProbability(t *testing.T) {
	g := graph.ClubNetwork()

	for _, p := range []float64{-0.1, 1.5, math.NaN()} {
		_, err := SimulateCascade(g, MustSeedSet(g, 1), p, constantSource(0), ICMOptions{})
		assert.ErrorIs(t, err, ErrInvalidProbability, "p = %v", p)
	}
}
