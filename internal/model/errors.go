package model

import "errors"

// Common errors used across the application
var (
	// Guess errors, recovered by re-prompting the player
	ErrInvalidGuess   = errors.New("guess must be a single letter")
	ErrAlreadyGuessed = errors.New("letter has already been guessed")

	// Session errors
	ErrGameComplete = errors.New("game is already complete")

	// Word list errors
	ErrEmptyWordList = errors.New("word list is empty")
	ErrInvalidWord   = errors.New("word must contain only letters A-Z")
)

