// internal/bench/report.go
//
// Benchmark summary: win count, best/worst/average guesses over wins and the
// guess distribution. Unsolved secrets are listed separately.

package bench

import (
	"fmt"
	"io"
	"sort"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
)

// Report summarises a set of finished (or abandoned) games.
type Report struct {
	Games        int
	Wins         int
	Best         int         // fewest guesses in a win
	Worst        int         // most guesses in a win
	Average      float64     // mean guesses over wins
	Distribution map[int]int // guesses → number of wins
	Failed       []string    // secrets that were not solved, sorted
}

// Summarize builds a Report from games.
func Summarize(games []*game.Game) Report {
	r := Report{Games: len(games), Distribution: map[int]int{}}
	total := 0
	for _, g := range games {
		if !g.Won {
			r.Failed = append(r.Failed, g.Secret)
			continue
		}
		n := g.Guesses()
		r.Wins++
		total += n
		r.Distribution[n]++
		if r.Best == 0 || n < r.Best {
			r.Best = n
		}
		if n > r.Worst {
			r.Worst = n
		}
	}
	if r.Wins > 0 {
		r.Average = float64(total) / float64(r.Wins)
	}
	sort.Strings(r.Failed)
	return r
}

// WinRate is the share of games won, in percent.
func (r Report) WinRate() float64 {
	if r.Games == 0 {
		return 0
	}
	return 100 * float64(r.Wins) / float64(r.Games)
}

// Print writes a human readable summary to w.
func (r Report) Print(w io.Writer) {
	fmt.Fprintf(w, "games:   %d\n", r.Games)
	fmt.Fprintf(w, "wins:    %d (%.1f%%)\n", r.Wins, r.WinRate())
	fmt.Fprintf(w, "best:    %d\n", r.Best)
	fmt.Fprintf(w, "worst:   %d\n", r.Worst)
	fmt.Fprintf(w, "average: %.3f\n", r.Average)

	keys := make([]int, 0, len(r.Distribution))
	for k := range r.Distribution {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "  %2d: %d\n", k, r.Distribution[k])
	}
	if len(r.Failed) > 0 {
		fmt.Fprintf(w, "failed:  %v\n", r.Failed)
	}
}
