package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordguess/internal/factory"
	"github.com/mcoot/wordguess/internal/model"
)

type GameSuite struct {
	suite.Suite
	app *factory.TestApp
	cfg *Config
	out *bytes.Buffer
}

func TestGameSuite(t *testing.T) {
	suite.Run(t, new(GameSuite))
}

func (s *GameSuite) SetupTest() {
	s.app = factory.NewTestApp()
	s.cfg = DefaultConfig()
	s.out = &bytes.Buffer{}
}

func (s *GameSuite) play(word string, lines ...string) *model.Session {
	s.app.QueueWord(word)
	input := strings.NewReader(strings.Join(lines, "\n") + "\n")
	reader := NewBufferedReader(input, s.out)
	game := NewGame(s.app.GameController, reader, NewOutput(s.out, s.cfg), s.cfg)

	session, err := game.Play()
	s.Require().NoError(err)
	return session
}

func (s *GameSuite) TestWinTranscript() {
	session := s.play("CAT", "C", "A", "T")

	expected := `Welcome to the Word Guessing Game!
The word has 3 letters.
You have 6 turns to guess the word.

_ _ _
Turns left: 6
Guess a letter: Good guess! The letter 'C' is in the word.

C _ _
Turns left: 6
Guessed letters: C
Guess a letter: Good guess! The letter 'A' is in the word.

C A _
Turns left: 6
Guessed letters: C, A
Guess a letter: Good guess! The letter 'T' is in the word.

C A T
Congratulations! You guessed the word: CAT
`
	s.Equal(expected, s.out.String())
	s.Equal(model.SessionStateWon, session.State())
	s.Equal(6, session.TurnsRemaining)
}

func (s *GameSuite) TestLossDisclosesWord() {
	session := s.play("CAT", "X", "Y", "Z", "Q", "W", "E")

	s.Equal(0, session.TurnsRemaining)
	s.Equal("_ _ _", session.MaskString(" "))
	s.Contains(s.out.String(), "Sorry, 'X' is not in the word.")
	s.Contains(s.out.String(), "Turns left: 1")
	s.True(strings.HasSuffix(s.out.String(), "\n_ _ _\nYou ran out of turns. The word was: CAT\n"))
}

func (s *GameSuite) TestInvalidInputIsRepromptedWithoutCost() {
	session := s.play("CAT", "ab", "", "7", "c", "a", "t")

	s.Equal(3, strings.Count(s.out.String(), "Please enter a single letter."))
	s.Equal(6, session.TurnsRemaining)
	s.Equal(model.SessionStateWon, session.State())
}

func (s *GameSuite) TestOversizedLineIsOneInvalidGuess() {
	session := s.play("CAT", strings.Repeat("q", 70000), "c", "a", "t")

	s.Equal(1, strings.Count(s.out.String(), "Please enter a single letter."))
	s.Equal(6, session.TurnsRemaining)
	s.Equal(model.SessionStateWon, session.State())
	s.Contains(s.out.String(), "Congratulations! You guessed the word: CAT")
}

func (s *GameSuite) TestPaddedLetterIsInvalid() {
	session := s.play("CAT", " x", "x ", "c", "a", "t")

	s.Equal(2, strings.Count(s.out.String(), "Please enter a single letter."))
	s.Equal(6, session.TurnsRemaining)
	s.Equal([]string{"C", "A", "T"}, session.GuessedLetters())
}

func (s *GameSuite) TestRepeatIsRejected() {
	session := s.play("CAT", "c", "c", "a", "t")

	s.Equal(1, strings.Count(s.out.String(), "You already guessed that letter. Try a new one."))
	s.Equal(6, session.TurnsRemaining)
	s.Equal([]string{"C", "A", "T"}, session.GuessedLetters())
}

func (s *GameSuite) TestLinesAfterGameEndAreIgnored() {
	session := s.play("CAT", "c", "a", "t", "x", "y")

	s.Equal([]string{"C", "A", "T"}, session.GuessedLetters())
	s.Equal(3, strings.Count(s.out.String(), "Guess a letter: "))
}

func (s *GameSuite) TestEndOfInputAbandons() {
	session := s.play("BANANA", "a")

	s.Equal(model.SessionStatePlaying, session.State())
	s.False(session.FinishedAt.IsZero())
	s.True(strings.HasSuffix(s.out.String(), "\nGoodbye! The word was: BANANA\n"))
	s.NotContains(s.out.String(), "Congratulations")
}

func (s *GameSuite) TestReaderErrorIsReturned() {
	s.app.QueueWord("CAT")
	boom := errors.New("boom")
	game := NewGame(s.app.GameController, failingReader{err: boom}, NewOutput(s.out, s.cfg), s.cfg)

	_, err := game.Play()
	s.ErrorIs(err, boom)
}

type failingReader struct {
	err error
}

func (r failingReader) ReadLine(string) (string, error) { return "", r.err }
func (r failingReader) Close() error                    { return nil }
