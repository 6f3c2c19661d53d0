package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"golang.org/x/term"
)

// ErrInputClosed is returned when the player closes input (EOF or Ctrl+C)
var ErrInputClosed = errors.New("input closed")

// LineReader reads one line of player input per prompt
type LineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// NewLineReader returns a line-editing reader when in is a terminal,
// and a buffered line reader otherwise (pipes, files, tests)
func NewLineReader(in io.Reader, out io.Writer) LineReader {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return NewTerminalReader()
	}
	return NewBufferedReader(in, out)
}

// TerminalReader reads input through liner, giving arrow-key editing
type TerminalReader struct {
	line *liner.State
}

// NewTerminalReader takes over the terminal until Close is called
func NewTerminalReader() *TerminalReader {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &TerminalReader{line: line}
}

// ReadLine prompts and reads a line
func (r *TerminalReader) ReadLine(prompt string) (string, error) {
	input, err := r.line.Prompt(prompt)
	if err != nil {
		return "", linerError(err)
	}
	return input, nil
}

// linerError maps Ctrl+C and Ctrl+D at the prompt to ErrInputClosed
func linerError(err error) error {
	if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
		return ErrInputClosed
	}
	return err
}

// Close restores the terminal
func (r *TerminalReader) Close() error {
	return r.line.Close()
}

// BufferedReader reads newline-delimited input from any reader.
// Lines have no length limit, so an oversized line is one invalid guess.
type BufferedReader struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewBufferedReader creates a reader that echoes prompts to out
func NewBufferedReader(in io.Reader, out io.Writer) *BufferedReader {
	return &BufferedReader{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// ReadLine writes prompt and reads the next line without its line ending.
// A final line with no trailing newline is still returned.
func (r *BufferedReader) ReadLine(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)
	line, err := r.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// Close is a no-op; the underlying reader belongs to the caller
func (r *BufferedReader) Close() error {
	return nil
}
