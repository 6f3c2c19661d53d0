package cli

import (
	"log/slog"

	"github.com/mcoot/wordguess/internal/model"
	"github.com/mcoot/wordguess/internal/services/wordlist"
)

// Config holds CLI configuration
type Config struct {
	Words    []string
	MaxTurns int

	// Separator joins mask positions when displayed
	Separator string
	Prompt    string

	// LogLevel applies to the stderr logger; game output goes to stdout
	LogLevel slog.Level
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Words:     wordlist.DefaultWords,
		MaxTurns:  model.DefaultMaxTurns,
		Separator: " ",
		Prompt:    "Guess a letter: ",
		LogLevel:  slog.LevelWarn,
	}
}
