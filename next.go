package main

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

var nextShow int

var nextCmd = &cobra.Command{
	Use:   "next [GUESS:FEEDBACK ...]",
	Short: "Suggest the next guess for a game in progress",
	Long: `Suggest the next guess from the turns played so far.

Each turn is the guess and its encoded feedback joined by a colon:
uppercase for green, lowercase for yellow, '-' for gray.

Examples:
  wordle next                         # IRATE
  wordle next IRATE:-RA-E             # best candidate after one turn
  wordle next IRATE:-RA-E CRANE:-RA-E --show 10`,
	RunE: runNext,
}

func init() {
	nextCmd.Flags().IntVar(&nextShow, "show", 0, "Also list up to N remaining candidates")
	rootCmd.AddCommand(nextCmd)
}

func runNext(cmd *cobra.Command, args []string) error {
	h, err := parseHistory(args)
	if err != nil {
		return err
	}
	list, err := loadWords()
	if err != nil {
		return err
	}
	s := solver.New(list, solver.WithLogger(log.Logger))

	out := cmd.OutOrStdout()
	guess, err := s.Next(h)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, guess)

	if nextShow > 0 && len(h) > 0 {
		cand := s.Candidates(h)
		fmt.Fprintf(out, "%d candidates\n", len(cand))
		if len(cand) > nextShow {
			cand = cand[:nextShow]
		}
		for _, w := range cand {
			fmt.Fprintf(out, "  %s %d\n", w, s.Index().Score(w))
		}
	}
	return nil
}

// parseHistory decodes GUESS:FEEDBACK arguments into a History.
func parseHistory(args []string) (game.History, error) {
	var h game.History
	for _, arg := range args {
		guess, enc, ok := strings.Cut(arg, ":")
		if !ok {
			return nil, fmt.Errorf("turn %q: expected GUESS:FEEDBACK", arg)
		}
		guess = strings.TrimSpace(guess)
		fb, err := game.ParseFeedback(guess, enc)
		if err != nil {
			return nil, fmt.Errorf("turn %q: %w", arg, err)
		}
		h = h.Append(game.Turn{Guess: strings.ToUpper(guess), Feedback: fb})
	}
	return h, nil
}
