package factory

import (
	"io"
	"log/slog"

	"github.com/mcoot/wordguess/internal/dependencies/clock"
	"github.com/mcoot/wordguess/internal/dependencies/random"
	"github.com/mcoot/wordguess/internal/services/game"
	"github.com/mcoot/wordguess/internal/services/wordlist"
)

// App contains all wired application components
type App struct {
	// External dependencies
	Clock  clock.Clock
	Random random.Random
	Logger *slog.Logger

	// Services
	WordList       *wordlist.Service
	GameController *game.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// Words is the candidate list for the secret word.
	// If empty, wordlist.DefaultWords is used
	Words []string
	// MaxTurns is the number of incorrect guesses allowed.
	// If zero, model.DefaultMaxTurns is used
	MaxTurns int
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	return newWithDependencies(cfg, clock.New(), random.New())
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(cfg Config, clk clock.Clock, rnd random.Random) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	words := cfg.Words
	if len(words) == 0 {
		words = wordlist.DefaultWords
	}

	wordService, err := wordlist.New(words, logger)
	if err != nil {
		return nil, err
	}

	return &App{
		Clock:          clk,
		Random:         rnd,
		Logger:         logger,
		WordList:       wordService,
		GameController: game.NewController(wordService, cfg.MaxTurns, clk, rnd, logger),
	}, nil
}
