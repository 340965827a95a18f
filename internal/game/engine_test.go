package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encoded(t *testing.T, guess, secret string) string {
	t.Helper()
	fb, err := ComputeFeedback(guess, secret)
	require.NoError(t, err)
	return fb.Encode(guess)
}

func TestComputeFeedback_Examples(t *testing.T) {
	cases := []struct {
		guess, secret, want string
	}{
		{"LEVER", "EATEN", "-e-E-"},
		{"lever", "EATEN", "-e-E-"},
		{"LEVER", "LOWER", "L--ER"},
		{"MOMMY", "MADAM", "M-m--"},
		{"ARGUE", "MOTTO", "-----"},
		{"EABCE", "DFGHE", "----E"},
		{"SPEED", "ABIDE", "--e-d"},
		{"ERASE", "SPEED", "e--se"},
	}
	for _, tc := range cases {
		t.Run(tc.guess+"/"+tc.secret, func(t *testing.T) {
			assert.Equal(t, tc.want, encoded(t, tc.guess, tc.secret))
		})
	}
}

func TestComputeFeedback_SelfIsAllHit(t *testing.T) {
	for _, w := range sampleWords {
		fb, err := ComputeFeedback(w, w)
		require.NoError(t, err)
		assert.True(t, fb.Solved(), w)
		assert.Equal(t, w, fb.Encode(w))
	}
}

func TestComputeFeedback_InvalidGuess(t *testing.T) {
	for _, g := range []string{"", "CAT", "CRANES", "CR4NE", "CRAN-", "ÉCLAT", " LEVER", "LEVER\n", "\tlever "} {
		fb, err := ComputeFeedback(g, "CRANE")
		assert.Nil(t, fb, g)
		assert.True(t, errors.Is(err, ErrInvalidGuess), g)
		assert.Equal(t, "", fb.Encode(g))
	}
}

func TestEncode_LengthMismatch(t *testing.T) {
	fb, err := ComputeFeedback("LEVER", "EATEN")
	require.NoError(t, err)
	assert.Equal(t, "-e-E-", fb.Encode("lever"))
	assert.Equal(t, "", fb.Encode("LEV"))
	assert.Equal(t, "", fb.Encode(" LEVER"))
}

func TestComputeFeedback_InvalidSecret(t *testing.T) {
	_, err := ComputeFeedback("CRANE", "CRAN")
	assert.ErrorIs(t, err, ErrInvalidSecret)
}

func TestComputeFeedback_Multiplicity(t *testing.T) {
	for _, secret := range sampleWords {
		for _, guess := range sampleWords {
			fb, err := ComputeFeedback(guess, secret)
			require.NoError(t, err)
			require.Len(t, fb, WordLen)

			marked := map[byte]int{}
			for i, m := range fb {
				if m != MarkAbsent {
					marked[guess[i]]++
				}
				if m == MarkHit {
					assert.Equal(t, secret[i], guess[i])
				}
			}
			for letter, n := range marked {
				assert.LessOrEqual(t, n, strings.Count(secret, string(letter)),
					"%s vs %s letter %c", guess, secret, letter)
			}
		}
	}
}

func TestParseFeedback(t *testing.T) {
	fb, err := ParseFeedback("lever", "-e-E-")
	require.NoError(t, err)
	assert.Equal(t, Feedback{MarkAbsent, MarkPresent, MarkAbsent, MarkHit, MarkAbsent}, fb)

	_, err = ParseFeedback("LEVER", "-x-E-")
	assert.ErrorIs(t, err, ErrBadFeedback)
	_, err = ParseFeedback("LEVER", "-e-E")
	assert.ErrorIs(t, err, ErrBadFeedback)
	_, err = ParseFeedback("LEV", "-e-")
	assert.ErrorIs(t, err, ErrInvalidGuess)
}

func TestGame_WinAndLose(t *testing.T) {
	g, err := New("crane", WithMaxGuesses(2))
	require.NoError(t, err)
	assert.Equal(t, "CRANE", g.Secret)
	assert.NotEmpty(t, g.ID)

	fb, st, err := g.ApplyGuess("IRATE")
	require.NoError(t, err)
	assert.Equal(t, StatePlaying, st)
	assert.Equal(t, "-RA-E", fb.Encode("IRATE"))

	_, st, err = g.ApplyGuess("crane")
	require.NoError(t, err)
	assert.Equal(t, StateWon, st)
	assert.True(t, g.Won)

	_, _, err = g.ApplyGuess("CRANE")
	assert.ErrorIs(t, err, ErrFinished)

	lost, err := New("CRANE", WithMaxGuesses(1))
	require.NoError(t, err)
	_, st, err = lost.ApplyGuess("SLATE")
	require.NoError(t, err)
	assert.Equal(t, StateLost, st)
	assert.Equal(t, 1, lost.Guesses())
}

func TestGame_RejectsWithoutConsumingTurn(t *testing.T) {
	g, err := New("CRANE", WithAllowed(dict{"CRANE": {}, "IRATE": {}}))
	require.NoError(t, err)

	_, _, err = g.ApplyGuess("ZZZZZ")
	assert.ErrorIs(t, err, ErrNotInWordList)
	_, _, err = g.ApplyGuess("CR")
	assert.ErrorIs(t, err, ErrInvalidGuess)
	assert.Equal(t, 0, g.Guesses())

	_, _, err = g.ApplyGuess("IRATE")
	require.NoError(t, err)
	h := g.History()
	require.Len(t, h, 1)
	assert.Equal(t, "IRATE", h[0].Guess)
}

func TestNew_InvalidSecret(t *testing.T) {
	_, err := New("toolong")
	assert.ErrorIs(t, err, ErrInvalidSecret)
}

func TestHistory_AppendDoesNotAlias(t *testing.T) {
	var h History
	a := h.Append(Turn{Guess: "IRATE"})
	b := a.Append(Turn{Guess: "CRANE"})
	c := a.Append(Turn{Guess: "SLATE"})
	assert.Len(t, a, 1)
	assert.Equal(t, "CRANE", b[1].Guess)
	assert.Equal(t, "SLATE", c[1].Guess)
}

type dict map[string]struct{}

func (d dict) Contains(w string) bool { _, ok := d[w]; return ok }

var sampleWords = []string{
	"EATEN", "LOWER", "LEVER", "MADAM", "MOMMY", "MOTTO", "ARGUE", "IRATE",
	"SPEED", "ABIDE", "ERASE", "GEESE", "LLAMA", "ALLAY", "ROBOT", "TOTEM",
	"EERIE", "SASSY", "CRANE", "PREEN", "MOIST", "KAYAK", "LEVEL", "NANNY",
}
