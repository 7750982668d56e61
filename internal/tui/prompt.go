// Package tui asks the operator for input, interactively on a terminal and
// line by line otherwise.
package tui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/manifoldco/promptui"
	"golang.org/x/term"
)

// ErrNoInput is returned when input ends before an answer is read.
var ErrNoInput = errors.New("no input")

// Prompter asks one question and returns the answer without its line terminator.
type Prompter interface {
	Ask(label string) (string, error)
}

// NewPrompter returns a promptui prompter when in is a terminal and a line
// reader otherwise.
func NewPrompter(in io.Reader, out io.Writer) Prompter {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return &Terminal{in: f, out: out}
	}
	return NewLines(in, out)
}

// Terminal prompts with promptui.
type Terminal struct {
	in  io.ReadCloser
	out io.Writer
	// run defaults to (*promptui.Prompt).Run.
	run func(*promptui.Prompt) (string, error)
}

func (t *Terminal) Ask(label string) (string, error) {
	prompt := &promptui.Prompt{
		Label:  strings.TrimRight(label, ": "),
		Stdin:  t.in,
		Stdout: nopCloser{t.out},
	}
	run := t.run
	if run == nil {
		run = (*promptui.Prompt).Run
	}
	result, err := run(prompt)
	if errors.Is(err, promptui.ErrEOF) || errors.Is(err, promptui.ErrInterrupt) {
		return "", errors.Wrap(ErrNoInput, err.Error())
	}
	if err != nil {
		return "", errors.Wrap(err, "read input")
	}
	return result, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// Lines prints each label on its own line and reads one line of input.
type Lines struct {
	r   *bufio.Reader
	out io.Writer
}

func NewLines(in io.Reader, out io.Writer) *Lines {
	return &Lines{r: bufio.NewReader(in), out: out}
}

func (l *Lines) Ask(label string) (string, error) {
	fmt.Fprintln(l.out, label)
	line, err := l.r.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err == io.EOF {
		return "", errors.WithHint(ErrNoInput, "input ended before "+strings.TrimRight(label, ": ")+" was answered")
	}
	if err != nil {
		return "", errors.Wrap(err, "read input")
	}
	return strings.TrimRight(line, "\r\n"), nil
}
