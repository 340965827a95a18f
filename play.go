package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/internal/bench"
	"github.com/robalobadob/wordle/apps/solver/internal/daily"
	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/render"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

var (
	playSecret      string
	playDaily       bool
	playInteractive bool
	playReveal      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play one game",
	Long: `Play one game of Wordle.

By default the solver plays against a random secret from the word list.
With --interactive the guesses are read from stdin instead.

Examples:
  wordle play                     # solver vs random secret
  wordle play --secret preen      # solver vs a fixed secret
  wordle play --daily -i          # you vs today's secret`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	f := playCmd.Flags()
	f.StringVar(&playSecret, "secret", "", "Fixed secret word")
	f.BoolVar(&playDaily, "daily", false, "Use today's secret (derived from the date and --daily-salt)")
	f.String("daily-salt", "local_dev_salt", "Salt for the daily secret")
	f.BoolVarP(&playInteractive, "interactive", "i", false, "Read guesses from stdin")
	f.BoolVar(&playReveal, "reveal", false, "Print the secret before the first guess")
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	list, err := loadWords()
	if err != nil {
		return err
	}

	secret := playSecret
	switch {
	case secret != "":
	case playDaily:
		secret = daily.Secret(time.Now(), cfg.DailySalt, list)
		log.Debug().Str("date", daily.DateKey(time.Now())).Msg("daily secret")
	default:
		secret = words.Random(list)
	}

	opts := []game.Option{game.WithMaxGuesses(cfg.MaxGuesses)}
	if playInteractive {
		opts = append(opts, game.WithAllowed(words.NewSet(list)))
	}
	g, err := game.New(secret, opts...)
	if err != nil {
		return err
	}
	log.Debug().Str("game", g.ID).Int("maxGuesses", g.MaxGuesses).Msg("game started")

	out := cmd.OutOrStdout()
	if playReveal {
		fmt.Fprintf(out, "secret: %s\n", g.Secret)
	}

	if playInteractive {
		err = playStdin(cmd.InOrStdin(), out, g)
	} else {
		err = playSolver(cmd, out, solver.New(list, solver.WithLogger(log.Logger)), g)
	}
	if err != nil {
		return err
	}

	switch g.State() {
	case game.StateWon:
		fmt.Fprintf(out, "solved in %d guesses\n", g.Guesses())
	case game.StateLost:
		fmt.Fprintf(out, "out of guesses, the secret was %s\n", g.Secret)
	}
	return nil
}

func playSolver(cmd *cobra.Command, out io.Writer, s *solver.Solver, g *game.Game) error {
	err := bench.Play(cmd.Context(), s, g)
	printHistory(out, g.History())
	if errors.Is(err, solver.ErrNoCandidate) {
		fmt.Fprintf(out, "no candidate left, the secret was %s\n", g.Secret)
		return nil
	}
	return err
}

func playStdin(in io.Reader, out io.Writer, g *game.Game) error {
	sc := bufio.NewScanner(in)
	for !g.Finished {
		fmt.Fprintf(out, "guess %d/%d> ", g.Guesses()+1, g.MaxGuesses)
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}
		guess := strings.TrimSpace(sc.Text())
		fb, _, err := g.ApplyGuess(guess)
		switch {
		case errors.Is(err, game.ErrInvalidGuess):
			fmt.Fprintf(out, "guess must be %d letters\n", game.WordLen)
			continue
		case errors.Is(err, game.ErrNotInWordList):
			fmt.Fprintln(out, "not in word list")
			continue
		case err != nil:
			return err
		}
		w, _ := game.Normalize(guess)
		fmt.Fprintln(out, render.Tiles(w, fb))
	}
	return nil
}

func printHistory(out io.Writer, h game.History) {
	for i, t := range h {
		fmt.Fprintf(out, "%2d  %s  %s\n", i+1, render.Tiles(t.Guess, t.Feedback), render.Plain(t.Guess, t.Feedback))
	}
}
