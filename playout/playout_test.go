package playout_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/ludeme/config"
	"github.com/domino14/ludeme/game"
	"github.com/domino14/ludeme/playout"
	"github.com/domino14/ludeme/testhelpers"
)

func load(t *testing.T, name string) *game.Game {
	t.Helper()
	g, _, err := testhelpers.Load(name)
	require.NoError(t, err)
	return g
}

func TestPlayTerminates(t *testing.T) {
	is := is.New(t)
	g := load(t, "tictactoe")
	for seed := uint64(1); seed <= 20; seed++ {
		rec := playout.Play(g.NewTrial(seed), 0)
		is.True(rec.Finished)
		is.True(rec.Moves >= 5 && rec.Moves <= 9)
	}
}

func TestPlayMaxMoves(t *testing.T) {
	is := is.New(t)
	g := load(t, "hopper")
	rec := playout.Play(g.NewTrial(3), 4)
	is.Equal(rec.Moves, 4)
	is.True(!rec.Finished)
}

func runWith(t *testing.T, g *game.Game, threads int) *playout.Summary {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigRngSeed, 42)
	cfg.Set(config.ConfigPlayoutThreads, threads)
	cfg.Set(config.ConfigPlayoutMaxMoves, 200)
	r := playout.NewRunner(cfg, g)
	require.Equal(t, uint64(42), r.Seed())
	s, err := r.Run(context.Background(), 40)
	require.NoError(t, err)
	return s
}

func TestRunIsReproducible(t *testing.T) {
	g := load(t, "flipper")
	one := runWith(t, g, 1)
	four := runWith(t, g, 4)
	assert.Equal(t, one.Wins, four.Wins)
	assert.Equal(t, one.Draws, four.Draws)
	assert.Equal(t, one.Lengths, four.Lengths)
	assert.NotEqual(t, one.RunID, four.RunID)
	assert.Len(t, one.RunID, 36)
	assert.Equal(t, 40, one.Playouts)
	assert.Equal(t, 40, one.Wins[1]+one.Wins[2]+one.Draws+one.Unfinished)
}

func TestRunCancelled(t *testing.T) {
	g := load(t, "tictactoe")
	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigPlayoutThreads, 2)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := playout.NewRunner(cfg, g).Run(ctx, 100)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunCounts(t *testing.T) {
	g := load(t, "tictactoe")
	r := playout.NewRunner(config.DefaultConfig(), g)

	_, err := r.Run(context.Background(), -1)
	assert.ErrorIs(t, err, playout.ErrNegativeCount)

	s, err := r.Run(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Playouts)
	assert.Empty(t, s.Lengths)
	assert.Equal(t, 0.0, s.WinRate(1))
	var buf bytes.Buffer
	assert.NoError(t, s.Histogram(&buf, 5))
	assert.Zero(t, buf.Len())
}

func TestSummarize(t *testing.T) {
	is := is.New(t)
	g := testhelpers.NewGame(t, game.Options{})
	records := []playout.Record{
		{Moves: 5, Result: game.NewResult(2, 1, game.OutcomeWin), Finished: true},
		{Moves: 7, Result: game.NewResult(2, 2, game.OutcomeWin), Finished: true},
		{Moves: 9, Result: game.NewResult(2, 0, game.OutcomeDraw), Finished: true},
		{Moves: 3},
	}
	s := playout.Summarize(g, records)
	is.Equal(s.Wins, []int{0, 1, 1})
	is.Equal(s.Draws, 1)
	is.Equal(s.Unfinished, 1)
	is.Equal(s.MeanLength, 6.0)
	is.Equal(s.WinRate(1), 0.25)
	is.Equal(s.WinRate(3), 0.0)
	assert.Contains(t, s.String(), "TestSummarize: 4 playouts")

	var buf bytes.Buffer
	is.NoErr(s.Histogram(&buf, 4))
	is.True(buf.Len() > 0)

	empty := playout.Summarize(g, nil)
	is.NoErr(empty.Histogram(&buf, 4))
	is.Equal(empty.WinRate(1), 0.0)
}
