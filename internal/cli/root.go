package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/wordguess/internal/factory"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg := DefaultConfig()

	return &cobra.Command{
		Use:   "wordguess",
		Short: "Guess the secret word one letter at a time",
		Long: `wordguess picks a secret word and asks for one letter per turn.

Correct letters are revealed wherever they appear in the word. Each wrong
letter costs a turn; the game ends when the word is revealed or the turns
run out.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)

			app, err := factory.New(factory.Config{
				Words:    cfg.Words,
				MaxTurns: cfg.MaxTurns,
				Logger:   logger,
			})
			if err != nil {
				logger.Error("failed to create application", slog.String("error", err.Error()))
				return err
			}

			reader := NewLineReader(cmd.InOrStdin(), cmd.OutOrStdout())
			defer reader.Close()

			game := NewGame(app.GameController, reader, NewOutput(cmd.OutOrStdout(), cfg), cfg)
			_, err = game.Play()
			return err
		},
	}
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
