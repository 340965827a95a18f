package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/render"
)

var feedbackColor bool

var feedbackCmd = &cobra.Command{
	Use:   "feedback GUESS SECRET",
	Short: "Score a guess against a secret",
	Long: `Print the feedback for GUESS against SECRET.

Uppercase letters are hits, lowercase letters are present elsewhere,
'-' marks an absent letter.

Examples:
  wordle feedback lever eaten     # -e-E-
  wordle feedback mommy madam -c  # coloured tiles`,
	Args: cobra.ExactArgs(2),
	RunE: runFeedback,
}

func init() {
	feedbackCmd.Flags().BoolVarP(&feedbackColor, "color", "c", false, "Print coloured tiles instead of the encoded string")
	rootCmd.AddCommand(feedbackCmd)
}

func runFeedback(cmd *cobra.Command, args []string) error {
	fb, err := game.ComputeFeedback(args[0], args[1])
	if err != nil {
		return err
	}
	guess, _ := game.Normalize(args[0])
	out := cmd.OutOrStdout()
	if feedbackColor {
		fmt.Fprintln(out, render.Tiles(guess, fb))
		return nil
	}
	fmt.Fprintln(out, render.Plain(guess, fb))
	return nil
}
