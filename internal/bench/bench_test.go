package bench

import (
	"bytes"
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/store"
)

var smallList = []string{"IRATE", "CRANE", "SLATE", "CRATE", "TRACE"}

func TestPlay_Wins(t *testing.T) {
	s := solver.New(smallList)
	g, err := game.New("TRACE", game.WithMaxGuesses(len(smallList)))
	require.NoError(t, err)

	require.NoError(t, Play(context.Background(), s, g))
	assert.True(t, g.Won)
	assert.Equal(t, "IRATE", g.History()[0].Guess)
}

func TestPlay_NoCandidate(t *testing.T) {
	s := solver.New([]string{"CRANE", "SLATE"})
	g, err := game.New("MOULD")
	require.NoError(t, err)

	err = Play(context.Background(), s, g)
	assert.ErrorIs(t, err, solver.ErrNoCandidate)
	assert.False(t, g.Finished)
}

func TestPlay_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g, err := game.New("CRANE")
	require.NoError(t, err)
	assert.ErrorIs(t, Play(ctx, solver.New(smallList), g), context.Canceled)
}

func TestRun(t *testing.T) {
	var done atomic.Int32
	st := store.NewMemoryStore()
	r, err := Run(context.Background(), solver.New(smallList), smallList, Options{
		Workers:    2,
		MaxGuesses: len(smallList),
		Store:      st,
		Progress:   func() { done.Add(1) },
	})
	require.NoError(t, err)

	assert.Equal(t, 5, r.Games)
	assert.Equal(t, 5, r.Wins)
	assert.Equal(t, 1, r.Best)
	assert.Empty(t, r.Failed)
	assert.EqualValues(t, 5, done.Load())
	assert.InDelta(t, 100.0, r.WinRate(), 1e-9)

	sum := 0
	for _, n := range r.Distribution {
		sum += n
	}
	assert.Equal(t, 5, sum)

	games, err := st.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, games, 5)
}

func TestRun_RecordsSolverFailures(t *testing.T) {
	r, err := Run(context.Background(), solver.New([]string{"CRANE", "SLATE"}), []string{"MOULD", "CRANE"}, Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, r.Games)
	assert.Equal(t, 1, r.Wins)
	assert.Equal(t, []string{"MOULD"}, r.Failed)
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, solver.New(smallList), smallList, Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSummarize(t *testing.T) {
	play := func(secret string, max int, guesses ...string) *game.Game {
		g, err := game.New(secret, game.WithMaxGuesses(max))
		require.NoError(t, err)
		for _, w := range guesses {
			_, _, err := g.ApplyGuess(w)
			require.NoError(t, err)
		}
		return g
	}
	games := []*game.Game{
		play("CRANE", 6, "CRANE"),
		play("SLATE", 6, "IRATE", "SLATE"),
		play("MOIST", 1, "CRANE"),
	}

	r := Summarize(games)
	assert.Equal(t, 3, r.Games)
	assert.Equal(t, 2, r.Wins)
	assert.Equal(t, 1, r.Best)
	assert.Equal(t, 2, r.Worst)
	assert.InDelta(t, 1.5, r.Average, 1e-9)
	assert.Equal(t, map[int]int{1: 1, 2: 1}, r.Distribution)
	assert.Equal(t, []string{"MOIST"}, r.Failed)

	var buf bytes.Buffer
	r.Print(&buf)
	assert.Contains(t, buf.String(), "wins:    2 (66.7%)")
	assert.Contains(t, buf.String(), "failed:  [MOIST]")
}
