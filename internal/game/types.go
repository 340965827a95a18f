// internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - Mark: per-letter result of a guess (hit/present/absent).
//   - Feedback: the five marks produced for one guess.
//   - Turn/History: the guess/feedback pairs accumulated over a game.
//   - Game: state for a single in-progress or finished game.

package game

import "errors"

// WordLen is the number of letters in every word.
const WordLen = 5

// Mark represents the evaluation result for a single letter in a guess.
//   - MarkHit:     letter is correct and in the correct position.
//   - MarkPresent: letter exists in the secret but in a different position.
//   - MarkAbsent:  letter is not in the secret beyond already-marked occurrences.
type Mark uint8

const (
	MarkAbsent Mark = iota
	MarkPresent
	MarkHit
)

func (m Mark) String() string {
	switch m {
	case MarkHit:
		return "hit"
	case MarkPresent:
		return "present"
	case MarkAbsent:
		return "absent"
	}
	return "unknown"
}

// Feedback is the ordered, index-aligned result of scoring one guess.
// A nil Feedback only ever accompanies ErrInvalidGuess.
type Feedback []Mark

// Turn is one guess and the feedback it received.
type Turn struct {
	Guess    string
	Feedback Feedback
}

// History is the append-only sequence of turns of one game.
type History []Turn

// Append returns a new History with t added at the end.
// The receiver is left untouched so earlier snapshots stay valid.
func (h History) Append(t Turn) History {
	out := make(History, len(h), len(h)+1)
	copy(out, h)
	return append(out, t)
}

// State is the coarse lifecycle state of a game.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

var (
	ErrInvalidGuess  = errors.New("invalid guess")
	ErrInvalidSecret = errors.New("invalid secret")
	ErrFinished      = errors.New("game finished")
	ErrNotInWordList = errors.New("not in word list")
	ErrBadFeedback   = errors.New("malformed feedback")
)

// Game holds the state of a single Wordle game session.
type Game struct {
	ID         string  // Unique game identifier (uuid).
	Secret     string  // The solution word (always uppercase).
	MaxGuesses int     // Guess ceiling; reaching it without a win loses.
	Finished   bool    // True once the game is over (won or lost).
	Won        bool    // True if the game was finished with a win.
	history    History // Guesses made so far, with their feedback.
	allowed    Dictionary
}

// Dictionary reports whether a normalised guess may be played.
type Dictionary interface {
	Contains(word string) bool
}
