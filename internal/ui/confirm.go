package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type confirmModel struct {
	prompt    string
	quitWord  string
	typed     string
	confirmed bool
	cancelled bool
	done      bool
	theme     Theme
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch strings.ToLower(key.String()) {
	case "y":
		m.confirmed = true
		m.done = true
		return m, tea.Quit
	case "n", "enter":
		m.confirmed = false
		m.done = true
		return m, tea.Quit
	case "esc", "ctrl+c":
		return m.cancel()
	}

	// Typing the quit word cancels; keys that stray from it start over.
	if key.Type == tea.KeyRunes && m.quitWord != "" {
		m.typed += string(key.Runes)
		if m.typed == m.quitWord {
			return m.cancel()
		}
		if !strings.HasPrefix(m.quitWord, m.typed) {
			m.typed = ""
		}
	}
	return m, nil
}

func (m confirmModel) cancel() (tea.Model, tea.Cmd) {
	m.cancelled = true
	m.done = true
	return m, tea.Quit
}

func (m confirmModel) View() string {
	prompt := m.theme.PromptStyle().Render(m.prompt)
	if m.done {
		answer := "no"
		if m.cancelled {
			answer = "cancelled"
		} else if m.confirmed {
			answer = "yes"
		}
		return fmt.Sprintf("%s %s\n", prompt, m.theme.AccentStyle().Render(answer))
	}
	return fmt.Sprintf("%s %s", prompt, m.theme.DangerStyle().Render("[y/N]")) + " "
}

// Confirm shows an interactive confirmation prompt and returns true if the
// user confirms. Esc, ctrl+c and typing quitWord cancel with ErrCancelled.
func Confirm(prompt, quitWord string, theme Theme) (bool, error) {
	m := confirmModel{prompt: prompt, quitWord: quitWord, theme: theme}
	p := tea.NewProgram(m)
	result, err := p.Run()
	if err != nil {
		return false, err
	}
	final := result.(confirmModel)
	if final.cancelled {
		return false, ErrCancelled
	}
	return final.confirmed, nil
}
