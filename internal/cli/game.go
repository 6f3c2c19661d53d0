package cli

import (
	"errors"

	"github.com/mcoot/wordguess/internal/model"
	"github.com/mcoot/wordguess/internal/services/game"
)

// Game runs one interactive session against a LineReader
type Game struct {
	controller game.ControllerInterface
	reader     LineReader
	out        *Output
	prompt     string
}

// NewGame creates a Game
func NewGame(controller game.ControllerInterface, reader LineReader, out *Output, cfg *Config) *Game {
	return &Game{
		controller: controller,
		reader:     reader,
		out:        out,
		prompt:     cfg.Prompt,
	}
}

// Play selects a word and loops prompt, read, guess until the session ends.
// Invalid input is reported and re-prompted without touching the session.
func (g *Game) Play() (*model.Session, error) {
	session, err := g.controller.Start()
	if err != nil {
		return nil, err
	}

	g.out.Welcome(session)

	for !session.IsOver() {
		g.out.State(session)

		input, err := g.reader.ReadLine(g.prompt)
		if err != nil {
			if errors.Is(err, ErrInputClosed) {
				g.controller.Abandon(session)
				g.out.Abandoned(session)
				return session, nil
			}
			return session, err
		}

		result, err := g.controller.Guess(session, input)
		switch {
		case errors.Is(err, model.ErrInvalidGuess):
			g.out.InvalidGuess()
		case errors.Is(err, model.ErrAlreadyGuessed):
			g.out.RepeatGuess()
		case err != nil:
			return session, err
		default:
			g.out.Feedback(result)
		}
	}

	g.out.Outcome(session)
	return session, nil
}
