// internal/bench/bench.go
//
// Solver benchmark: plays the solver against many secrets in parallel and
// summarises how it did.
//
// Responsibilities:
//   - Play: drive a single game with the solver until it is finished.
//   - Run: fan games out over a bounded errgroup, collect them in a Store.
//   - Summarize: turn finished games into a Report (best/worst/average/
//     distribution/failures).
//
// A game that runs out of candidates is recorded as a failure, not an error;
// only context cancellation and engine errors abort a run.

package bench

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/store"
)

// Options tunes a benchmark run. The zero value is usable.
type Options struct {
	Workers    int             // parallel games; defaults to GOMAXPROCS
	MaxGuesses int             // per-game ceiling; defaults to the engine's
	Store      store.Store     // where finished games go; defaults to memory
	Progress   func()          // called once per finished game, from any goroutine
	Logger     *zerolog.Logger // defaults to a no-op logger
}

// Play asks s for guesses and applies them to g until g is finished.
// It returns solver.ErrNoCandidate (wrapped) when the solver gives up.
func Play(ctx context.Context, s *solver.Solver, g *game.Game) error {
	for !g.Finished {
		if err := ctx.Err(); err != nil {
			return err
		}
		guess, err := s.Next(g.History())
		if err != nil {
			return fmt.Errorf("game %s after %d guesses: %w", g.ID, g.Guesses(), err)
		}
		if _, _, err := g.ApplyGuess(guess); err != nil {
			return fmt.Errorf("game %s: apply %s: %w", g.ID, guess, err)
		}
	}
	return nil
}

// Run plays one game per secret and returns the summary.
func Run(ctx context.Context, s *solver.Solver, secrets []string, opts Options) (Report, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	st := opts.Store
	if st == nil {
		st = store.NewMemoryStore()
	}
	var gameOpts []game.Option
	if opts.MaxGuesses > 0 {
		gameOpts = append(gameOpts, game.WithMaxGuesses(opts.MaxGuesses))
	}

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for _, secret := range secrets {
		if gctx.Err() != nil {
			break
		}
		secret := secret
		eg.Go(func() error {
			g, err := game.New(secret, gameOpts...)
			if err != nil {
				return err
			}
			if err := Play(gctx, s, g); err != nil {
				if !errors.Is(err, solver.ErrNoCandidate) {
					return err
				}
				logger.Warn().Err(err).Str("secret", secret).Msg("solver gave up")
			}
			if err := st.Save(gctx, g); err != nil {
				return err
			}
			if opts.Progress != nil {
				opts.Progress()
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Report{}, err
	}
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	games, err := st.List(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("list games: %w", err)
	}
	r := Summarize(games)
	logger.Info().
		Int("games", r.Games).
		Int("wins", r.Wins).
		Float64("average", r.Average).
		Msg("benchmark finished")
	return r, nil
}
