package model

import (
	"strings"
	"time"
)

// Placeholder marks an unrevealed position in the display mask
const Placeholder = '_'

// DefaultMaxTurns is the number of incorrect guesses allowed per game
const DefaultMaxTurns = 6

// SessionID identifies a single game session in logs
type SessionID string

// SessionState represents the current phase of a session
type SessionState string

const (
	SessionStatePlaying SessionState = "playing"
	SessionStateWon     SessionState = "won"
	SessionStateLost    SessionState = "lost"
)

// Session holds all state for one game, from word selection to outcome
type Session struct {
	ID   SessionID
	Word string // Uppercase A-Z, never mutated

	// Mask has one entry per letter of Word; Placeholder until revealed
	Mask []rune

	// Guessed is the set of submitted letters; GuessOrder keeps submission order
	Guessed    map[rune]bool
	GuessOrder []rune

	TurnsRemaining int
	MaxTurns       int

	StartedAt  time.Time
	FinishedAt time.Time
}

// NewSession creates a session for word with every position masked
func NewSession(id SessionID, word string, maxTurns int, startedAt time.Time) *Session {
	mask := make([]rune, len(word))
	for i := range mask {
		mask[i] = Placeholder
	}
	return &Session{
		ID:             id,
		Word:           word,
		Mask:           mask,
		Guessed:        make(map[rune]bool),
		TurnsRemaining: maxTurns,
		MaxTurns:       maxTurns,
		StartedAt:      startedAt,
	}
}

// IsRevealed returns true once no placeholder remains in the mask
func (s *Session) IsRevealed() bool {
	for _, r := range s.Mask {
		if r == Placeholder {
			return false
		}
	}
	return true
}

// IsOver returns true when the word is revealed or no turns remain
func (s *Session) IsOver() bool {
	return s.IsRevealed() || s.TurnsRemaining <= 0
}

// State derives the session phase. A revealed mask wins even if the
// revealing guess was made on the last turn.
func (s *Session) State() SessionState {
	switch {
	case s.IsRevealed():
		return SessionStateWon
	case s.TurnsRemaining <= 0:
		return SessionStateLost
	default:
		return SessionStatePlaying
	}
}

// HasGuessed reports whether letter was already submitted
func (s *Session) HasGuessed(letter rune) bool {
	return s.Guessed[letter]
}

// MaskString joins the mask positions with sep, e.g. "C _ T"
func (s *Session) MaskString(sep string) string {
	parts := make([]string, len(s.Mask))
	for i, r := range s.Mask {
		parts[i] = string(r)
	}
	return strings.Join(parts, sep)
}

// GuessedLetters returns the submitted letters in the order they were guessed
func (s *Session) GuessedLetters() []string {
	letters := make([]string, len(s.GuessOrder))
	for i, r := range s.GuessOrder {
		letters[i] = string(r)
	}
	return letters
}

// GuessResult describes the effect of one applied guess
type GuessResult struct {
	Letter   rune
	Hit      bool
	Revealed int // Number of mask positions revealed by this guess

	TurnsRemaining int
	State          SessionState
}
