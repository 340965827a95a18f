// internal/game/engine.go
//
// Core game engine for a single Wordle session.
// Responsibilities:
//   - Score guesses using the two-pass Wordle algorithm (ComputeFeedback).
//   - Create new games around a fixed secret with a guess ceiling.
//   - Validate and apply guesses (length, alphabetic, optional allowed list).
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - Secret selection (random or daily) happens in the caller; the engine
//     never reaches for a word list on its own.
//   - Words are canonical uppercase A–Z.
package game

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const defaultMaxGuesses = 10

// Option configures a Game at construction time.
type Option func(*Game)

// WithMaxGuesses overrides the guess ceiling. Values below 1 are ignored.
func WithMaxGuesses(n int) Option {
	return func(g *Game) {
		if n > 0 {
			g.MaxGuesses = n
		}
	}
}

// WithAllowed restricts guesses to words contained in d.
func WithAllowed(d Dictionary) Option {
	return func(g *Game) { g.allowed = d }
}

// New constructs a new game around secret.
// The secret is normalised to uppercase and must be a valid word.
func New(secret string, opts ...Option) (*Game, error) {
	s, ok := Normalize(secret)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSecret, secret)
	}
	g := &Game{
		ID:         uuid.NewString(),
		Secret:     s,
		MaxGuesses: defaultMaxGuesses,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// ApplyGuess validates and scores a guess, mutating the game state.
// Returns: the feedback, the new state, or an error.
//
// Validation rules:
//   - Game must not be finished.
//   - Guess must be exactly WordLen letters A–Z (case-insensitive).
//   - Guess must be in the allowed dictionary when one is configured.
//
// State transitions:
//   - If all tiles are Hit → Finished = true, Won = true.
//   - Else if the number of guesses reaches MaxGuesses → Finished = true (loss).
func (g *Game) ApplyGuess(guess string) (Feedback, State, error) {
	if g.Finished {
		return nil, g.State(), ErrFinished
	}
	w, ok := Normalize(guess)
	if !ok {
		return nil, g.State(), fmt.Errorf("%w: %q", ErrInvalidGuess, guess)
	}
	if g.allowed != nil && !g.allowed.Contains(w) {
		return nil, g.State(), fmt.Errorf("%w: %s", ErrNotInWordList, w)
	}

	fb := scoreGuess(g.Secret, w)
	g.history = g.history.Append(Turn{Guess: w, Feedback: fb})

	if fb.Solved() {
		g.Finished, g.Won = true, true
	} else if len(g.history) >= g.MaxGuesses {
		g.Finished = true
	}
	return fb, g.State(), nil
}

// State reports the current lifecycle state.
func (g *Game) State() State {
	if g.Finished {
		if g.Won {
			return StateWon
		}
		return StateLost
	}
	return StatePlaying
}

// History returns the turns played so far. The result is a copy.
func (g *Game) History() History {
	return append(History(nil), g.history...)
}

// Guesses returns how many guesses have been applied.
func (g *Game) Guesses() int { return len(g.history) }

// ComputeFeedback scores guess against secret.
//
// Both words are uppercased first; surrounding whitespace makes a word invalid. An invalid guess yields a nil
// Feedback and ErrInvalidGuess; an invalid secret yields ErrInvalidSecret.
func ComputeFeedback(guess, secret string) (Feedback, error) {
	g, ok := Normalize(guess)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidGuess, guess)
	}
	s, ok := Normalize(secret)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSecret, secret)
	}
	return scoreGuess(s, g), nil
}

// scoreGuess implements the two-pass scoring algorithm.
//
// Pass 1:
//   - Mark exact matches as Hit.
//   - Count the secret letters left over at non-hit positions.
//
// Pass 2:
//   - Left to right, a non-hit guess letter is Present while leftover count
//     remains for it (and consumes one); otherwise it stays Absent.
//
// Hit+Present marks for a letter therefore never exceed its count in secret,
// and surplus duplicates lose to earlier positions.
func scoreGuess(secret, guess string) Feedback {
	res := make(Feedback, WordLen)

	// Leftover secret letters (A–Z) at non-hit positions.
	var counts [26]int

	for i := 0; i < WordLen; i++ {
		if guess[i] == secret[i] {
			res[i] = MarkHit
		} else {
			counts[idx(secret[i])]++
		}
	}

	for i := 0; i < WordLen; i++ {
		if res[i] == MarkHit {
			continue
		}
		if j := idx(guess[i]); counts[j] > 0 {
			res[i] = MarkPresent
			counts[j]--
		}
	}
	return res
}

// Normalize uppercases w and reports whether the result is a valid word
// (exactly WordLen letters A–Z). Whitespace is not stripped; readers of
// line-oriented input trim before calling it.
func Normalize(w string) (string, bool) {
	w = strings.ToUpper(w)
	if len(w) != WordLen || !isAlpha(w) {
		return "", false
	}
	return w, true
}

// idx maps an uppercase ASCII letter to 0..25.
// Assumes inputs are validated to A–Z elsewhere.
func idx(b byte) int { return int(b - 'A') }

// isAlpha checks that a string consists only of uppercase A–Z.
func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
