package diary

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chris-regnier/diary/internal/event"
	"github.com/chris-regnier/diary/internal/ui"
)

// ask returns the trimmed answer to prompt. The quit word or a cancelled
// prompt yields ErrAborted.
func (e *Engine) ask(prompt string) (string, error) {
	if e.prompter == nil {
		return "", fmt.Errorf("%w: no interactive input available", ErrAborted)
	}
	answer, err := e.prompter.Input(prompt)
	if errors.Is(err, ui.ErrCancelled) {
		return "", ErrAborted
	}
	if err != nil {
		return "", err
	}
	answer = strings.TrimSpace(answer)
	if e.quitWord != "" && answer == e.quitWord {
		return "", ErrAborted
	}
	return answer, nil
}

// askNonEmpty repeats prompt until the answer is non-empty.
func (e *Engine) askNonEmpty(prompt string) (string, error) {
	for {
		answer, err := e.ask(prompt)
		if err != nil {
			return "", err
		}
		if event.ValidateTitle(answer) == nil {
			return answer, nil
		}
	}
}

func (e *Engine) confirm(prompt string) (bool, error) {
	if e.prompter == nil {
		return false, fmt.Errorf("%w: no interactive input available", ErrAborted)
	}
	ok, err := e.prompter.Confirm(prompt)
	if errors.Is(err, ui.ErrCancelled) {
		return false, ErrAborted
	}
	return ok, err
}
