package game

import (
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/mcoot/wordguess/internal/dependencies/clock"
	"github.com/mcoot/wordguess/internal/dependencies/random"
	"github.com/mcoot/wordguess/internal/model"
	"github.com/mcoot/wordguess/internal/services/wordlist"
)

// Controller drives a session from word selection to outcome
type Controller struct {
	words    wordlist.ServiceInterface
	maxTurns int
	clock    clock.Clock
	random   random.Random
	logger   *slog.Logger
}

// NewController creates a new game Controller.
// A non-positive maxTurns falls back to model.DefaultMaxTurns.
func NewController(
	words wordlist.ServiceInterface,
	maxTurns int,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	if maxTurns <= 0 {
		maxTurns = model.DefaultMaxTurns
	}
	return &Controller{
		words:    words,
		maxTurns: maxTurns,
		clock:    clock,
		random:   random,
		logger:   logger,
	}
}

// Start selects a secret word and creates a fresh session for it
func (c *Controller) Start() (*model.Session, error) {
	word, err := c.words.Choose(c.random)
	if err != nil {
		return nil, err
	}
	return c.StartWithWord(word)
}

// StartWithWord creates a session for a known word
func (c *Controller) StartWithWord(word string) (*model.Session, error) {
	word = strings.ToUpper(word)
	if err := wordlist.ValidateWord(word); err != nil {
		return nil, err
	}

	id := model.SessionID(c.random.String(8, random.SessionIDAlphabet))
	session := model.NewSession(id, word, c.maxTurns, c.clock.Now())

	c.logger.Info("session started",
		slog.String("session_id", string(id)),
		slog.Int("word_length", len(word)),
		slog.Int("max_turns", c.maxTurns),
	)

	return session, nil
}

// ValidateGuess uppercases raw input and checks it is a new single letter.
// Surrounding whitespace counts toward the length. It never modifies the session.
func (c *Controller) ValidateGuess(session *model.Session, input string) (rune, error) {
	input = strings.ToUpper(input)
	if utf8.RuneCountInString(input) != 1 {
		return 0, model.ErrInvalidGuess
	}

	letter, _ := utf8.DecodeRuneInString(input)
	if letter < 'A' || letter > 'Z' {
		return 0, model.ErrInvalidGuess
	}
	if session.HasGuessed(letter) {
		return 0, model.ErrAlreadyGuessed
	}
	return letter, nil
}

// ApplyGuess records letter and either reveals every matching position or
// costs one turn. Repeats and non-letters are rejected without side effects.
func (c *Controller) ApplyGuess(session *model.Session, letter rune) (model.GuessResult, error) {
	if session.IsOver() {
		return model.GuessResult{}, model.ErrGameComplete
	}
	if letter < 'A' || letter > 'Z' {
		return model.GuessResult{}, model.ErrInvalidGuess
	}
	if session.HasGuessed(letter) {
		return model.GuessResult{}, model.ErrAlreadyGuessed
	}

	session.Guessed[letter] = true
	session.GuessOrder = append(session.GuessOrder, letter)

	revealed := 0
	for i, r := range session.Word {
		if r == letter {
			session.Mask[i] = letter
			revealed++
		}
	}

	if revealed == 0 {
		session.TurnsRemaining--
	}

	result := model.GuessResult{
		Letter:         letter,
		Hit:            revealed > 0,
		Revealed:       revealed,
		TurnsRemaining: session.TurnsRemaining,
		State:          session.State(),
	}

	c.logger.Debug("guess applied",
		slog.String("session_id", string(session.ID)),
		slog.String("letter", string(letter)),
		slog.Bool("hit", result.Hit),
		slog.Int("turns_remaining", session.TurnsRemaining),
	)

	if session.IsOver() {
		c.finish(session)
	}

	return result, nil
}

// Guess validates then applies raw player input
func (c *Controller) Guess(session *model.Session, input string) (model.GuessResult, error) {
	if session.IsOver() {
		return model.GuessResult{}, model.ErrGameComplete
	}
	letter, err := c.ValidateGuess(session, input)
	if err != nil {
		return model.GuessResult{}, err
	}
	return c.ApplyGuess(session, letter)
}

// Abandon marks a session that ended without an outcome, e.g. on end of input
func (c *Controller) Abandon(session *model.Session) {
	if session.IsOver() || !session.FinishedAt.IsZero() {
		return
	}
	session.FinishedAt = c.clock.Now()
	c.logger.Info("session abandoned",
		slog.String("session_id", string(session.ID)),
		slog.Int("guesses", len(session.GuessOrder)),
		slog.Duration("duration", clock.Elapsed(c.clock, session.StartedAt)),
	)
}

func (c *Controller) finish(session *model.Session) {
	session.FinishedAt = c.clock.Now()
	c.logger.Info("session completed",
		slog.String("session_id", string(session.ID)),
		slog.String("outcome", string(session.State())),
		slog.Int("guesses", len(session.GuessOrder)),
		slog.Int("turns_remaining", session.TurnsRemaining),
		slog.Duration("duration", clock.Elapsed(c.clock, session.StartedAt)),
	)
}

// Interface for dependency injection
type ControllerInterface interface {
	Start() (*model.Session, error)
	StartWithWord(word string) (*model.Session, error)
	ValidateGuess(session *model.Session, input string) (rune, error)
	ApplyGuess(session *model.Session, letter rune) (model.GuessResult, error)
	Guess(session *model.Session, input string) (model.GuessResult, error)
	Abandon(session *model.Session)
}

var _ ControllerInterface = (*Controller)(nil)
