package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrCancelled is returned when the user interrupts a prompt or input ends.
var ErrCancelled = errors.New("prompt cancelled")

// LinePrompter asks questions over plain line-based I/O. It is used when
// stdin is not a terminal and in tests.
type LinePrompter struct {
	// QuitWord, when set, cancels a Confirm question.
	QuitWord string

	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter returns a LinePrompter reading answers from in and
// writing prompts to out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// Input prints prompt and returns the next line without its line ending.
func (p *LinePrompter) Input(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt+" ")
	line, err := p.in.ReadString('\n')
	if errors.Is(err, io.EOF) && line == "" {
		fmt.Fprintln(p.out)
		return "", ErrCancelled
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Confirm asks a yes/no question until it gets y or n.
// Prompts answered with QuitWord return ErrCancelled.
func (p *LinePrompter) Confirm(prompt string) (bool, error) {
	q := prompt + " (y/n)"
	for {
		answer, err := p.Input(q)
		if err != nil {
			return false, err
		}
		if p.QuitWord != "" && strings.TrimSpace(answer) == p.QuitWord {
			return false, ErrCancelled
		}
		if yes, ok := ParseYesNo(answer); ok {
			return yes, nil
		}
		q = "Invalid input. Please answer y or n:"
	}
}

// ParseYesNo interprets a yes/no answer. ok is false for anything else.
func ParseYesNo(s string) (yes bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	}
	return false, false
}
