package tui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// NonInteractiveEnv disables every prompt when set
const NonInteractiveEnv = "PACKAGER_NON_INTERACTIVE"

// ErrInteractiveDisabled is returned when prompts are disabled via PACKAGER_NON_INTERACTIVE
var ErrInteractiveDisabled = fmt.Errorf("interactive prompts are disabled (%s is set)", NonInteractiveEnv)

// ErrCanceled is returned when the operator aborts a prompt
var ErrCanceled = errors.New("canceled")

func checkInteractiveAllowed() error {
	if os.Getenv(NonInteractiveEnv) != "" {
		return ErrInteractiveDisabled
	}
	return nil
}

// confirmModel is a yes/no prompt; Enter keeps the default
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
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.Type {
	case tea.KeyEnter:
		m.done = true
		return m, tea.Quit
	case tea.KeyCtrlC, tea.KeyEsc:
		m.err = ErrCanceled
		m.done = true
		return m, tea.Quit
	case tea.KeyRunes:
		switch strings.ToLower(string(key.Runes)) {
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
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	yesNo := "[y/N]"
	if m.choice {
		yesNo = "[Y/n]"
	}
	return lipgloss.NewStyle().Margin(1, 0).Render(fmt.Sprintf("%s %s", m.prompt, ColorDim(yesNo)))
}

// PromptConfirm asks a yes/no question
func PromptConfirm(prompt string, defaultValue bool) (bool, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return false, err
	}

	p := tea.NewProgram(confirmModel{prompt: prompt, choice: defaultValue}, tea.WithInput(os.Stdin), tea.WithOutput(os.Stdout))
	model, err := p.Run()
	if err != nil {
		return false, err
	}
	final, ok := model.(confirmModel)
	if !ok {
		return false, fmt.Errorf("unexpected model type")
	}
	if final.err != nil {
		return false, final.err
	}
	return final.choice, nil
}

// PromptInput asks for a line of text, offering defaultValue
func PromptInput(message, defaultValue string) (string, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return "", err
	}

	var answer string
	prompt := &survey.Input{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &answer); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", ErrCanceled
		}
		return "", err
	}
	return answer, nil
}
