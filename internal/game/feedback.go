package game

import (
	"fmt"
	"strings"
)

// AbsentSymbol is the placeholder used for MarkAbsent in encoded feedback.
const AbsentSymbol = '-'

// Solved reports whether every mark is a Hit.
func (f Feedback) Solved() bool {
	if len(f) != WordLen {
		return false
	}
	for _, m := range f {
		if m != MarkHit {
			return false
		}
	}
	return true
}

// Encode renders f in the case-encoded form for guess:
// uppercase letter for Hit, lowercase letter for Present, '-' for Absent.
// An empty Feedback, or one whose length differs from guess, encodes to "".
func (f Feedback) Encode(guess string) string {
	if len(f) == 0 || len(f) != len(guess) {
		return ""
	}
	guess = strings.ToUpper(guess)
	var b strings.Builder
	b.Grow(len(f))
	for i, m := range f {
		switch m {
		case MarkHit:
			b.WriteByte(guess[i])
		case MarkPresent:
			b.WriteByte(guess[i] + ('a' - 'A'))
		default:
			b.WriteByte(AbsentSymbol)
		}
	}
	return b.String()
}

// ParseFeedback decodes a case-encoded feedback string for guess.
// Every letter in s must match the guess letter at the same position.
func ParseFeedback(guess, s string) (Feedback, error) {
	g, ok := Normalize(guess)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidGuess, guess)
	}
	if len(s) != WordLen {
		return nil, fmt.Errorf("%w: %q has %d symbols", ErrBadFeedback, s, len(s))
	}
	fb := make(Feedback, WordLen)
	for i := 0; i < WordLen; i++ {
		c := s[i]
		switch {
		case c == AbsentSymbol:
			fb[i] = MarkAbsent
		case c == g[i]:
			fb[i] = MarkHit
		case c == g[i]+('a'-'A'):
			fb[i] = MarkPresent
		default:
			return nil, fmt.Errorf("%w: %q does not match %s at position %d", ErrBadFeedback, s, g, i+1)
		}
	}
	return fb, nil
}
