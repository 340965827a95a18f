// internal/words/words.go
//
// Provides word list loading for the solver and game engine.
//
// Responsibilities:
//   - Load a word list from a file, or fall back to the embedded default.
//   - Normalise entries (trim, uppercase) and keep only 5-letter A–Z words.
//   - Supply small helpers: Random (crypto-random pick) and Set (lookups).
//
// File format:
//   - One word per line; blank lines and lines starting with '#' are skipped.
//   - Entries that are not 5 letters are dropped silently.
//   - Duplicates are kept; callers that care about them dedupe themselves.
//
// Lists are passed around explicitly; this package keeps no global state.

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/robalobadob/wordle/apps/solver/assets"
	"github.com/robalobadob/wordle/apps/solver/internal/game"
)

// ErrEmptyList is returned when a source yields no valid words.
var ErrEmptyList = errors.New("words: list is empty")

// Load reads the word list at path.
// An empty path selects the embedded default list.
func Load(path string) ([]string, error) {
	if path == "" {
		return Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()
	list, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return list, nil
}

// Default returns the embedded word list.
func Default() ([]string, error) {
	f, err := assets.Words()
	if err != nil {
		return nil, fmt.Errorf("open embedded word list: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads one word per line from r and returns the valid ones,
// uppercased, in input order.
func Parse(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if w, ok := game.Normalize(line); ok {
			out = append(out, w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrEmptyList
	}
	return out, nil
}

// Random returns a cryptographically random word from list.
// It returns "" when list is empty.
func Random(list []string) string {
	if len(list) == 0 {
		return ""
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(list))))
	if err != nil {
		return list[0]
	}
	return list[n.Int64()]
}

// Set is a lookup set of words.
type Set map[string]struct{}

// NewSet converts a list of words into a lookup set.
func NewSet(list []string) Set {
	m := make(Set, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// Contains reports whether w (case-insensitive) is in the set.
func (s Set) Contains(w string) bool {
	_, ok := s[strings.ToUpper(w)]
	return ok
}

// Dedupe returns list without repeated words, keeping first occurrences.
func Dedupe(list []string) []string {
	seen := make(Set, len(list))
	out := make([]string, 0, len(list))
	for _, w := range list {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
