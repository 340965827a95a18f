// internal/solver/filter.go
//
// Candidate filtering.
//
// A history is reduced to green, yellow and black keys per (letter, position).
// Candidates start from every valid offset and are narrowed with bitset
// intersection (greens, yellow letters) and difference (yellow positions,
// blacks). A black letter that is known to be in the word only rules out its
// own position. Turns with a malformed guess or feedback are ignored; guesses
// are compared case-insensitively.

package solver

import (
	"strings"

	"github.com/bits-and-blooms/bitset"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
)

// keys classifies every (letter, position) pair seen across a history.
type keys struct {
	green, yellow, black [letters][game.WordLen]bool

	// known[l] is set when l was Hit or Present anywhere in the history.
	known   [letters]bool
	yellows [letters]bool
}

func classify(h game.History) *keys {
	k := &keys{}
	for _, t := range h {
		guess := strings.ToUpper(t.Guess)
		if !valid(guess) || len(t.Feedback) != game.WordLen {
			continue
		}
		for p, m := range t.Feedback {
			l := guess[p] - 'A'
			switch m {
			case game.MarkHit:
				k.green[l][p] = true
				k.known[l] = true
			case game.MarkPresent:
				k.yellow[l][p] = true
				k.yellows[l] = true
				k.known[l] = true
			default:
				k.black[l][p] = true
			}
		}
	}
	return k
}

// Candidates returns the offsets of words consistent with every turn in h.
// The result is computed from the full word list on every call.
//
//   - green (l, p): the word has l at p.
//   - yellow (l, p): the word does not have l at p, but contains l somewhere.
//   - black (l, p): if l was Hit or Present anywhere in h, the word does not
//     have l at p; otherwise the word does not contain l at all.
func (ix *Index) Candidates(h game.History) *bitset.BitSet {
	k := classify(h)
	cand := ix.all.Clone()

	for l := 0; l < letters; l++ {
		if k.yellows[l] {
			cand.InPlaceIntersection(ix.anywhere[l])
		}
		for p := 0; p < game.WordLen; p++ {
			if k.green[l][p] {
				cand.InPlaceIntersection(ix.positions[l][p])
			}
			if k.yellow[l][p] {
				cand.InPlaceDifference(ix.positions[l][p])
			}
			if !k.black[l][p] {
				continue
			}
			if k.known[l] {
				cand.InPlaceDifference(ix.positions[l][p])
			} else {
				cand.InPlaceDifference(ix.anywhere[l])
			}
		}
	}
	return cand
}

// CandidateWords returns the surviving words in word-list order.
func (ix *Index) CandidateWords(h game.History) []string {
	cand := ix.Candidates(h)
	out := make([]string, 0, cand.Count())
	for i, ok := cand.NextSet(0); ok; i, ok = cand.NextSet(i + 1) {
		out = append(out, ix.words[i])
	}
	return out
}
