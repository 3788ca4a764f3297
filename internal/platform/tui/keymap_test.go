package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionStart},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart},
		{"p", runeKey('p'), core.ActionPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{"r", runeKey('r'), core.ActionRestart},
		{"ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionScreenshot},
		{"ctrl+y", tea.KeyMsg{Type: tea.KeyCtrlY}, core.ActionCopy},
		{"?", runeKey('?'), core.ActionHelp},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('z'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Action(tc.msg); got != tc.expected {
				t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestKeyMapHelpCoversBindings(t *testing.T) {
	keys := DefaultKeyMap()

	if got := len(keys.ShortHelp()); got != 5 {
		t.Errorf("len(ShortHelp()) = %d, expected 5", got)
	}

	total := 0
	for _, group := range keys.FullHelp() {
		total += len(group)
	}
	if total != 7 {
		t.Errorf("FullHelp() lists %d bindings, expected 7", total)
	}
}
