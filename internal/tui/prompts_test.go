package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestConfirmModel(t *testing.T) {
	t.Parallel()

	t.Run("enter keeps the default", func(t *testing.T) {
		t.Parallel()
		m, _ := confirmModel{prompt: "Skip tests?", choice: true}.Update(tea.KeyMsg{Type: tea.KeyEnter})
		final := m.(confirmModel)
		require.True(t, final.done)
		require.True(t, final.choice)
	})

	t.Run("n answers no", func(t *testing.T) {
		t.Parallel()
		m, _ := confirmModel{choice: true}.Update(runes("N"))
		require.False(t, m.(confirmModel).choice)
	})

	t.Run("escape cancels", func(t *testing.T) {
		t.Parallel()
		m, _ := confirmModel{}.Update(tea.KeyMsg{Type: tea.KeyEsc})
		require.ErrorIs(t, m.(confirmModel).err, ErrCanceled)
	})

	t.Run("view shows the default", func(t *testing.T) {
		t.Parallel()
		require.Contains(t, confirmModel{prompt: "Dry run?", choice: true}.View(), "[Y/n]")
	})
}

func TestPromptsDisabled(t *testing.T) {
	t.Setenv(NonInteractiveEnv, "1")

	_, err := PromptConfirm("Skip tests?", true)
	require.ErrorIs(t, err, ErrInteractiveDisabled)
	_, err = PromptInput("Config file", "package.yml")
	require.ErrorIs(t, err, ErrInteractiveDisabled)
	_, err = PromptPick("Jobs", []string{"a"})
	require.ErrorIs(t, err, ErrInteractiveDisabled)
}

func TestPickerModel(t *testing.T) {
	t.Parallel()

	press := func(m PickerModel, msgs ...tea.KeyMsg) PickerModel {
		for _, msg := range msgs {
			next, _ := m.Update(msg)
			m = next.(PickerModel)
		}
		return m
	}
	down := tea.KeyMsg{Type: tea.KeyDown}
	up := tea.KeyMsg{Type: tea.KeyUp}
	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	t.Run("keeps toggle order", func(t *testing.T) {
		t.Parallel()
		m := press(NewPickerModel("Jobs", []string{"a", "b", "c"}), down, down, space, up, up, space, enter)
		require.True(t, m.Done)
		require.NoError(t, m.Err)
		require.Equal(t, []int{2, 0}, m.Selected)
	})

	t.Run("toggling twice removes", func(t *testing.T) {
		t.Parallel()
		m := press(NewPickerModel("Jobs", []string{"a", "b"}), space, down, space, up, space)
		require.Equal(t, []int{1}, m.Selected)
		require.Contains(t, m.View(), "[1] 2) b")
	})

	t.Run("enter alone picks the cursor", func(t *testing.T) {
		t.Parallel()
		m := press(NewPickerModel("Jobs", []string{"a", "b"}), down, down, enter)
		require.Equal(t, []int{1}, m.Selected)
	})

	t.Run("escape cancels", func(t *testing.T) {
		t.Parallel()
		m := press(NewPickerModel("Jobs", []string{"a"}), tea.KeyMsg{Type: tea.KeyEsc})
		require.ErrorIs(t, m.Err, ErrCanceled)
	})
}
