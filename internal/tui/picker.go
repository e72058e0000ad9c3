package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type pickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Submit key.Binding
	Cancel key.Binding
}

var pickerKeys = pickerKeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Toggle: key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle")),
	Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
	Cancel: key.NewBinding(key.WithKeys("ctrl+c", "esc", "q"), key.WithHelp("esc", "cancel")),
}

// PickerModel lets the operator choose several items. The result keeps the order in
// which items were toggled on, which is the order jobs will run in.
type PickerModel struct {
	Title    string
	Items    []string
	Cursor   int
	Selected []int
	Done     bool
	Err      error
}

// NewPickerModel creates a picker over items
func NewPickerModel(title string, items []string) PickerModel {
	return PickerModel{Title: title, Items: items}
}

// position returns where idx sits in the selection order, or -1
func (m PickerModel) position(idx int) int {
	for i, s := range m.Selected {
		if s == idx {
			return i
		}
	}
	return -1
}

// Init initializes the bubbletea model
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles key presses
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, pickerKeys.Cancel):
		m.Err = ErrCanceled
		m.Done = true
		return m, tea.Quit
	case key.Matches(keyMsg, pickerKeys.Up):
		if m.Cursor > 0 {
			m.Cursor--
		}
	case key.Matches(keyMsg, pickerKeys.Down):
		if m.Cursor < len(m.Items)-1 {
			m.Cursor++
		}
	case key.Matches(keyMsg, pickerKeys.Toggle):
		if len(m.Items) == 0 {
			break
		}
		if pos := m.position(m.Cursor); pos >= 0 {
			m.Selected = append(m.Selected[:pos:pos], m.Selected[pos+1:]...)
		} else {
			m.Selected = append(m.Selected, m.Cursor)
		}
	case key.Matches(keyMsg, pickerKeys.Submit):
		// Enter without any toggles picks the item under the cursor.
		if len(m.Selected) == 0 && len(m.Items) > 0 {
			m.Selected = []int{m.Cursor}
		}
		m.Done = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the list with the selection order next to each picked item
func (m PickerModel) View() string {
	if m.Done {
		return ""
	}

	var b strings.Builder
	b.WriteString(ColorHeader(m.Title))
	b.WriteString("\n\n")
	for i, item := range m.Items {
		cursor := "  "
		if i == m.Cursor {
			cursor = cursorStyle.Render("▸ ")
		}
		mark := "[ ]"
		if pos := m.position(i); pos >= 0 {
			mark = fmt.Sprintf("[%d]", pos+1)
		}
		fmt.Fprintf(&b, "%s%s %d) %s\n", cursor, mark, i+1, item)
	}
	b.WriteString("\n")
	b.WriteString(ColorDim(strings.Join([]string{
		pickerKeys.Toggle.Help().Key + " " + pickerKeys.Toggle.Help().Desc,
		pickerKeys.Submit.Help().Key + " " + pickerKeys.Submit.Help().Desc,
		pickerKeys.Cancel.Help().Key + " " + pickerKeys.Cancel.Help().Desc,
	}, " • ")))
	return b.String()
}

// PromptPick shows the picker and returns the chosen indexes in selection order
func PromptPick(title string, items []string) ([]int, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return nil, err
	}

	p := tea.NewProgram(NewPickerModel(title, items), tea.WithInput(os.Stdin), tea.WithOutput(os.Stdout))
	model, err := p.Run()
	if err != nil {
		return nil, err
	}
	final, ok := model.(PickerModel)
	if !ok {
		return nil, fmt.Errorf("unexpected model type")
	}
	if final.Err != nil {
		return nil, final.Err
	}
	return final.Selected, nil
}
