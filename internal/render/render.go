// Package render formats guesses and their feedback for the terminal.
package render

import (
	"strings"

	"github.com/TwiN/go-color"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
)

// Tiles colours each letter of guess by its mark: green for Hit, yellow for
// Present, gray for Absent. Letters are separated by a space.
func Tiles(guess string, fb game.Feedback) string {
	guess = strings.ToUpper(guess)
	if len(fb) != len(guess) {
		return guess
	}
	var b strings.Builder
	for i, m := range fb {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(color.Ize(markColor(m), string(guess[i])))
	}
	return b.String()
}

// Plain renders the case-encoded feedback (e.g. "-e-E-").
func Plain(guess string, fb game.Feedback) string {
	return fb.Encode(guess)
}

func markColor(m game.Mark) string {
	switch m {
	case game.MarkHit:
		return color.Green
	case game.MarkPresent:
		return color.Yellow
	default:
		return color.Gray
	}
}
