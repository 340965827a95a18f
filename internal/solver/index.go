// internal/solver/index.go
//
// Index construction over a word list.
//
// An Index holds, for every (letter, position) pair, the set of word-list
// offsets having that letter at that position, plus a global letter
// frequency table. Sets are bitsets over offsets so candidate filtering is
// plain set algebra. Built once from the full list; immutable afterwards and
// safe for concurrent readers.

package solver

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
)

const letters = 26

// Index is the position index and frequency table for one word list.
type Index struct {
	words []string

	// all holds the offsets of every well-formed word.
	all *bitset.BitSet

	// positions[l][p] holds the offsets of words with letter l at position p.
	positions [letters][game.WordLen]*bitset.BitSet

	// anywhere[l] holds the offsets of words containing letter l at all.
	anywhere [letters]*bitset.BitSet

	// Freq counts every occurrence of each letter across all positions of
	// all words in the list.
	Freq [letters]int
}

// BuildIndexes scans words once and returns their Index.
//
// Duplicates are not removed: each copy gets its own offset and counts again
// in Freq. Entries that are not WordLen uppercase letters are skipped.
func BuildIndexes(words []string) *Index {
	n := uint(len(words))
	ix := &Index{words: words, all: bitset.New(n)}
	for l := 0; l < letters; l++ {
		ix.anywhere[l] = bitset.New(n)
		for p := 0; p < game.WordLen; p++ {
			ix.positions[l][p] = bitset.New(n)
		}
	}

	for i, w := range words {
		if !valid(w) {
			continue
		}
		ix.all.Set(uint(i))
		for p := 0; p < game.WordLen; p++ {
			l := w[p] - 'A'
			ix.positions[l][p].Set(uint(i))
			ix.anywhere[l].Set(uint(i))
			ix.Freq[l]++
		}
	}
	return ix
}

// Len returns the size of the underlying word list.
func (ix *Index) Len() int { return len(ix.words) }

// Word returns the word at offset i.
func (ix *Index) Word(i uint) string { return ix.words[i] }

// At returns the offsets of words having letter at position pos.
// The returned set must not be modified.
func (ix *Index) At(letter byte, pos int) *bitset.BitSet {
	return ix.positions[letter-'A'][pos]
}

// Score is the frequency score of word: the sum of Freq over its letters,
// each occurrence counted.
func (ix *Index) Score(word string) int {
	score := 0
	for i := 0; i < len(word); i++ {
		if c := word[i]; c >= 'A' && c <= 'Z' {
			score += ix.Freq[c-'A']
		}
	}
	return score
}

func valid(w string) bool {
	if len(w) != game.WordLen {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'A' || w[i] > 'Z' {
			return false
		}
	}
	return true
}
