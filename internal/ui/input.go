package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type inputModel struct {
	prompt    string
	input     textinput.Model
	done      bool
	cancelled bool
	theme     Theme
}

func newInputModel(prompt string, theme Theme) inputModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 200
	ti.Focus()
	return inputModel{prompt: prompt, input: ti, theme: theme}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	prompt := m.theme.PromptStyle().Render(m.prompt)
	if m.done {
		if m.cancelled {
			return prompt + "\n"
		}
		return prompt + " " + m.theme.AccentStyle().Render(m.input.Value()) + "\n"
	}
	return prompt + " " + m.input.View()
}

// Input shows an interactive single-line text prompt.
func Input(prompt string, theme Theme) (string, error) {
	p := tea.NewProgram(newInputModel(prompt, theme))
	result, err := p.Run()
	if err != nil {
		return "", err
	}
	m := result.(inputModel)
	if m.cancelled {
		return "", ErrCancelled
	}
	return m.input.Value(), nil
}

// TUIPrompter asks questions with Bubble Tea prompts.
type TUIPrompter struct {
	Theme Theme
	// QuitWord, when set, cancels a Confirm question.
	QuitWord string
}

// Input prompts for a line of text.
func (p TUIPrompter) Input(prompt string) (string, error) {
	return Input(prompt, p.Theme)
}

// Confirm prompts for a yes/no answer.
func (p TUIPrompter) Confirm(prompt string) (bool, error) {
	return Confirm(prompt, p.QuitWord, p.Theme)
}
