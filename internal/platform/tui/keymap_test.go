package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappypac/internal/core"
)

func TestMapKeyToFrame(t *testing.T) {
	tests := []struct {
		name      string
		msg       tea.KeyMsg
		textInput bool
		action    core.Action
		chars     string
		quit      bool
	}{
		{"space flaps and types", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, false, core.ActionJump, " ", false},
		{"enter confirms", tea.KeyMsg{Type: tea.KeyEnter}, true, core.ActionConfirm, "", false},
		{"backspace deletes", tea.KeyMsg{Type: tea.KeyBackspace}, true, core.ActionDelete, "", false},
		{"runes typed in text input", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}, true, core.ActionNone, "a", false},
		{"q typed in text input", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, true, core.ActionNone, "q", false},
		{"q quits while playing", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, false, core.ActionNone, "", true},
		{"runes ignored while playing", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}, false, core.ActionNone, "", false},
		{"ctrl+c always quits", tea.KeyMsg{Type: tea.KeyCtrlC}, true, core.ActionNone, "", true},
		{"esc always quits", tea.KeyMsg{Type: tea.KeyEsc}, true, core.ActionNone, "", true},
	}

	keys := DefaultKeyMap()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			frame := core.NewInputFrame()
			quit := keys.MapKeyToFrame(tc.msg, &frame, tc.textInput)

			if quit != tc.quit {
				t.Errorf("quit = %v, expected %v", quit, tc.quit)
			}
			if tc.action != core.ActionNone && !frame.Has(tc.action) {
				t.Errorf("Action %v not set", tc.action)
			}
			if got := string(frame.Chars); got != tc.chars {
				t.Errorf("Chars = %q, expected %q", got, tc.chars)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()
	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp is empty")
	}

	n := 0
	for _, col := range keys.FullHelp() {
		n += len(col)
	}
	if n != 6 {
		t.Errorf("FullHelp lists %d bindings, expected 6", n)
	}
}
