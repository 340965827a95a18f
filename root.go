package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/internal/config"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "wordle",
	Short: "Play and solve Wordle",
	Long: `wordle scores guesses, plays games against a frequency-ranked solver
and benchmarks that solver over a word list.

Configuration is read from flags, then WORDLE_* environment variables
(a .env file in the working directory is loaded first).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(cmd.Flags())
		if err != nil {
			return err
		}
		cfg = c
		zerolog.SetGlobalLevel(cfg.Level())
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("log-level", "info", "Log level: trace, debug, info, warn, error")
	pf.String("words", "", "Word list file, one word per line (default: embedded list)")
	pf.Int("max-guesses", 10, "Guess ceiling per game")
}

// loadWords reads the configured word list.
func loadWords() ([]string, error) {
	list, err := words.Load(cfg.WordsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load word list: %w", err)
	}
	log.Debug().Int("words", len(list)).Str("file", cfg.WordsFile).Msg("word list loaded")
	return list, nil
}
