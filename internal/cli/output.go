package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mcoot/wordguess/internal/model"
)

// Output renders game messages. Styles come from a renderer bound to the
// writer, so non-terminal writers receive plain text.
type Output struct {
	w   io.Writer
	sep string

	bannerStyle  lipgloss.Style
	maskStyle    lipgloss.Style
	infoStyle    lipgloss.Style
	goodStyle    lipgloss.Style
	badStyle     lipgloss.Style
	warningStyle lipgloss.Style
}

// NewOutput creates a new Output writing to w
func NewOutput(w io.Writer, cfg *Config) *Output {
	r := lipgloss.NewRenderer(w)
	return &Output{
		w:            w,
		sep:          cfg.Separator,
		bannerStyle:  r.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		maskStyle:    r.NewStyle().Bold(true),
		infoStyle:    r.NewStyle().Foreground(lipgloss.Color("8")),
		goodStyle:    r.NewStyle().Foreground(lipgloss.Color("10")),
		badStyle:     r.NewStyle().Foreground(lipgloss.Color("9")),
		warningStyle: r.NewStyle().Foreground(lipgloss.Color("11")),
	}
}

// Welcome prints the banner, word length and turn allowance
func (o *Output) Welcome(s *model.Session) {
	o.println(o.bannerStyle.Render("Welcome to the Word Guessing Game!"))
	o.println(fmt.Sprintf("The word has %d letters.", len(s.Word)))
	o.println(fmt.Sprintf("You have %d turns to guess the word.", s.MaxTurns))
}

// State prints the mask, the turns left and any letters guessed so far
func (o *Output) State(s *model.Session) {
	o.println("")
	o.println(o.maskStyle.Render(s.MaskString(o.sep)))
	o.println(fmt.Sprintf("Turns left: %d", s.TurnsRemaining))
	if letters := s.GuessedLetters(); len(letters) > 0 {
		o.println(o.infoStyle.Render("Guessed letters: " + strings.Join(letters, ", ")))
	}
}

// Feedback reports whether a guess hit or missed
func (o *Output) Feedback(r model.GuessResult) {
	if r.Hit {
		o.println(o.goodStyle.Render(fmt.Sprintf("Good guess! The letter '%c' is in the word.", r.Letter)))
		return
	}
	o.println(o.badStyle.Render(fmt.Sprintf("Sorry, '%c' is not in the word.", r.Letter)))
}

// InvalidGuess reports input that is not a single letter
func (o *Output) InvalidGuess() {
	o.println(o.warningStyle.Render("Please enter a single letter."))
}

// RepeatGuess reports a letter that was already submitted
func (o *Output) RepeatGuess() {
	o.println(o.warningStyle.Render("You already guessed that letter. Try a new one."))
}

// Outcome prints the final mask and the win or loss line
func (o *Output) Outcome(s *model.Session) {
	o.println("")
	o.println(o.maskStyle.Render(s.MaskString(o.sep)))
	if s.State() == model.SessionStateWon {
		o.println(o.goodStyle.Render("Congratulations! You guessed the word: " + s.Word))
		return
	}
	o.println(o.badStyle.Render("You ran out of turns. The word was: " + s.Word))
}

// Abandoned prints the word when the player leaves mid-game
func (o *Output) Abandoned(s *model.Session) {
	o.println("")
	o.println(o.infoStyle.Render("Goodbye! The word was: " + s.Word))
}

func (o *Output) println(line string) {
	fmt.Fprintln(o.w, line)
}
