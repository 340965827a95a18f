package main

import (
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/internal/bench"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

var (
	benchLimit      int
	benchNoProgress bool
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run the solver against every word in the list",
	Long: `Play one solver game per word of the list (each word is the secret
once) and print the guess distribution.

Examples:
  wordle bench                  # whole list, one worker per CPU
  wordle bench --limit 200 -w 4`,
	Args: cobra.NoArgs,
	RunE: runBench,
}

func init() {
	f := benchCmd.Flags()
	f.IntP("workers", "w", 0, "Parallel games (default: number of CPUs)")
	f.IntVar(&benchLimit, "limit", 0, "Only use the first N words as secrets")
	f.BoolVar(&benchNoProgress, "no-progress", false, "Disable the progress bar")
	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	list, err := loadWords()
	if err != nil {
		return err
	}
	secrets := words.Dedupe(list)
	if benchLimit > 0 && benchLimit < len(secrets) {
		secrets = secrets[:benchLimit]
	}

	opts := bench.Options{
		Workers:    cfg.Workers,
		MaxGuesses: cfg.MaxGuesses,
		Logger:     &log.Logger,
	}
	if !benchNoProgress {
		bar := progressbar.Default(int64(len(secrets)), "playing")
		opts.Progress = func() { _ = bar.Add(1) }
	}

	log.Info().Int("secrets", len(secrets)).Int("workers", cfg.Workers).Msg("benchmark started")
	r, err := bench.Run(cmd.Context(), solver.New(list), secrets, opts)
	if err != nil {
		return err
	}
	r.Print(cmd.OutOrStdout())
	return nil
}
