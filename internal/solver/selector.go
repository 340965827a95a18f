// internal/solver/selector.go
//
// Guess selection.
//
// With no history the opener is always IRATE, a precomputed high-coverage
// word. Afterwards every surviving candidate is ranked by its frequency
// score and the strictly highest wins; ties go to the candidate that comes
// first in the word list.

package solver

import (
	"errors"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
)

// Opener is the fixed first guess.
const Opener = "IRATE"

// ErrNoCandidate is returned when no word is consistent with the history.
// It does not distinguish a contradictory history from a word list that
// lacks the secret.
var ErrNoCandidate = errors.New("no candidate word left")

// SelectGuess picks the next guess for h over words.
// Indexes are rebuilt on every call; use a Solver to reuse them.
func SelectGuess(words []string, h game.History) (string, error) {
	if len(h) == 0 {
		return Opener, nil
	}
	guess, _, err := BuildIndexes(words).best(h)
	return guess, err
}

// best returns the top-scoring candidate for h and the candidate count.
func (ix *Index) best(h game.History) (string, uint, error) {
	cand := ix.Candidates(h)
	best, bestScore := "", 0
	for i, ok := cand.NextSet(0); ok; i, ok = cand.NextSet(i + 1) {
		w := ix.words[i]
		if s := ix.Score(w); s > bestScore {
			best, bestScore = w, s
		}
	}
	if best == "" {
		return "", 0, ErrNoCandidate
	}
	return best, cand.Count(), nil
}
