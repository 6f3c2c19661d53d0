package wordlist

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/mcoot/wordguess/internal/dependencies/random"
	"github.com/mcoot/wordguess/internal/model"
)

// DefaultWords is the built-in candidate list
var DefaultWords = []string{
	"python", "programming", "computer", "keyboard", "developer", "algorithm", "variable",
}

// Service holds the fixed set of candidate secret words
type Service struct {
	words  []string
	logger *slog.Logger
}

// New creates a word list service from the given candidates.
// Words are normalized to uppercase; duplicates are dropped.
func New(words []string, logger *slog.Logger) (*Service, error) {
	normalized, err := normalize(words)
	if err != nil {
		return nil, err
	}

	logger.Debug("word list loaded", slog.Int("word_count", len(normalized)))

	return &Service{
		words:  normalized,
		logger: logger,
	}, nil
}

func normalize(words []string) ([]string, error) {
	seen := make(map[string]struct{}, len(words))
	result := make([]string, 0, len(words))

	for _, w := range words {
		word := strings.ToUpper(strings.TrimSpace(w))
		if err := ValidateWord(word); err != nil {
			return nil, fmt.Errorf("candidate %q: %w", w, err)
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		result = append(result, word)
	}

	if len(result) == 0 {
		return nil, model.ErrEmptyWordList
	}
	return result, nil
}

// ValidateWord checks that word is non-empty and uppercase A-Z only
func ValidateWord(word string) error {
	if word == "" {
		return model.ErrInvalidWord
	}
	for _, r := range word {
		if r < 'A' || r > 'Z' {
			return model.ErrInvalidWord
		}
	}
	return nil
}

// Choose picks a word uniformly at random
func (s *Service) Choose(rnd random.Random) (string, error) {
	if len(s.words) == 0 {
		return "", model.ErrEmptyWordList
	}
	return s.words[rnd.Intn(len(s.words))], nil
}

// Words returns a copy of the candidate list
func (s *Service) Words() []string {
	out := make([]string, len(s.words))
	copy(out, s.words)
	return out
}

// WordCount returns the number of candidates
func (s *Service) WordCount() int {
	return len(s.words)
}

// Contains reports whether word (any case) is a candidate
func (s *Service) Contains(word string) bool {
	upper := strings.ToUpper(word)
	for _, w := range s.words {
		if w == upper {
			return true
		}
	}
	return false
}

type ServiceInterface interface {
	Choose(rnd random.Random) (string, error)
	Words() []string
	WordCount() int
	Contains(word string) bool
}

var _ ServiceInterface = (*Service)(nil)
