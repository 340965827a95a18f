// internal/solver/solver.go
//
// Solver: a word list with its Index built once, plus a logger.
// Next is SelectGuess without the per-call index rebuild.

package solver

import (
	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
)

// Solver picks guesses for one word list. The Index is built once in New
// and shared read-only, so a Solver may serve many games concurrently.
type Solver struct {
	ix  *Index
	log zerolog.Logger
}

// Option configures a Solver.
type Option func(*Solver)

// WithLogger sets the logger used for per-turn debug output.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Solver) { s.log = l }
}

// New indexes words and returns a Solver over them.
func New(words []string, opts ...Option) *Solver {
	s := &Solver{ix: BuildIndexes(words), log: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Index exposes the cached index.
func (s *Solver) Index() *Index { return s.ix }

// Next returns the guess to play after h, or ErrNoCandidate.
func (s *Solver) Next(h game.History) (string, error) {
	if len(h) == 0 {
		return Opener, nil
	}
	guess, n, err := s.ix.best(h)
	if err != nil {
		s.log.Debug().Int("turn", len(h)+1).Msg("no candidates left")
		return "", err
	}
	s.log.Debug().
		Int("turn", len(h)+1).
		Uint("candidates", n).
		Str("guess", guess).
		Int("score", s.ix.Score(guess)).
		Msg("selected guess")
	return guess, nil
}

// Candidates returns the words still consistent with h, in list order.
func (s *Solver) Candidates(h game.History) []string {
	return s.ix.CandidateWords(h)
}
