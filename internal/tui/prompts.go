package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gca.dev/gca/internal/config"
	gcaerrors "gca.dev/gca/internal/errors"
)

// SelectOption represents an option in a selection prompt
type SelectOption struct {
	Label string // What to show
	Value string // Value to return
}

// Prompter asks the operator for decisions.
// Every method returns errors.ErrCanceled when the operator backs out.
type Prompter interface {
	// Select shows a menu and returns the Value of the chosen option
	Select(title string, options []SelectOption) (string, error)
	// Input reads one line of free text
	Input(prompt string) (string, error)
	// Confirm asks a yes/no question
	Confirm(prompt string) (bool, error)
}

// NewPrompter picks the prompter for the given streams. Full-screen prompts
// need a real terminal on stdin; anything else falls back to numbered menus.
func NewPrompter(in io.Reader, out io.Writer) Prompter {
	if config.NonInteractive() || in != os.Stdin || !IsTTY() {
		return NewLinePrompter(in, out)
	}
	return &TerminalPrompter{out: out}
}

// TerminalPrompter drives arrow-key menus and inline inputs on a TTY
type TerminalPrompter struct {
	out io.Writer
}

// Select prompts with an arrow-key menu
func (p *TerminalPrompter) Select(title string, options []SelectOption) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("no options to select from")
	}

	labels := make([]string, len(options))
	for i, opt := range options {
		labels[i] = opt.Label
	}

	var idx int
	prompt := &survey.Select{
		Message:  title,
		Options:  labels,
		PageSize: len(labels),
	}
	if err := survey.AskOne(prompt, &idx); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", gcaerrors.ErrCanceled
		}
		return "", err
	}
	return options[idx].Value, nil
}

// Input prompts for a single line of text
func (p *TerminalPrompter) Input(prompt string) (string, error) {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 80

	m := textInputModel{
		textInput: ti,
		prompt:    prompt,
	}

	prog := tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithOutput(p.out))
	model, err := prog.Run()
	if err != nil {
		return "", err
	}

	if finalModel, ok := model.(textInputModel); ok {
		if finalModel.err != nil {
			return "", finalModel.err
		}
		return strings.TrimSpace(finalModel.textInput.Value()), nil
	}

	return "", fmt.Errorf("unexpected model type")
}

// Confirm prompts for a yes/no answer. The default is no.
func (p *TerminalPrompter) Confirm(prompt string) (bool, error) {
	m := confirmModel{prompt: prompt}

	prog := tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithOutput(p.out))
	model, err := prog.Run()
	if err != nil {
		return false, err
	}

	if finalModel, ok := model.(confirmModel); ok {
		if finalModel.err != nil {
			return false, finalModel.err
		}
		return finalModel.choice, nil
	}

	return false, fmt.Errorf("unexpected model type")
}

// textInputModel is a simple text input prompt model
type textInputModel struct {
	textInput textinput.Model
	prompt    string
	done      bool
	err       error
}

func (m textInputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textInputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.err = gcaerrors.ErrCanceled
			m.done = true
			return m, tea.Quit
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m textInputModel) View() string {
	if m.done {
		return ""
	}
	styleObj := lipgloss.NewStyle().Margin(1, 0)
	return styleObj.Render(fmt.Sprintf("%s\n%s\n\n%s", m.prompt, m.textInput.View(), ColorDim("(Press Enter to submit, Ctrl+C to cancel)")))
}

// confirmModel is a yes/no confirmation prompt model
type confirmModel struct {
	prompt string
	choice bool
	done   bool
	err    error
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.err = gcaerrors.ErrCanceled
			m.done = true
			return m, tea.Quit
		case tea.KeyRunes:
			switch strings.ToLower(string(msg.Runes)) {
			case "y":
				m.choice = true
				m.done = true
				return m, tea.Quit
			case "n":
				m.choice = false
				m.done = true
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	styleObj := lipgloss.NewStyle().Margin(1, 0)
	return styleObj.Render(fmt.Sprintf("%s %s\n\n%s", Bold(m.prompt), "[y/N]", ColorDim("(Press y or n, Enter for no, Ctrl+C to cancel)")))
}
