package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewSessionMasksEveryPosition(t *testing.T) {
	s := NewSession("ID", "CAT", DefaultMaxTurns, time.Time{})

	assert.Equal(t, []rune{'_', '_', '_'}, s.Mask)
	assert.Equal(t, "_ _ _", s.MaskString(" "))
	assert.Equal(t, 6, s.TurnsRemaining)
	assert.Equal(t, SessionStatePlaying, s.State())
	assert.False(t, s.IsOver())
	assert.Empty(t, s.GuessedLetters())
}

func TestRevealedMaskWinsOverExhaustedTurns(t *testing.T) {
	s := NewSession("ID", "CAT", DefaultMaxTurns, time.Time{})
	s.Mask = []rune("CAT")
	s.TurnsRemaining = 0

	assert.True(t, s.IsOver())
	assert.Equal(t, SessionStateWon, s.State())
}

func TestExhaustedTurnsLoses(t *testing.T) {
	s := NewSession("ID", "CAT", DefaultMaxTurns, time.Time{})
	s.TurnsRemaining = 0

	assert.True(t, s.IsOver())
	assert.Equal(t, SessionStateLost, s.State())
}

func TestGuessedLettersKeepsOrder(t *testing.T) {
	s := NewSession("ID", "CAT", DefaultMaxTurns, time.Time{})
	s.GuessOrder = []rune{'X', 'A'}

	assert.Equal(t, []string{"X", "A"}, s.GuessedLetters())
}

