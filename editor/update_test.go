package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyMap_Commands(t *testing.T) {
	km := DefaultKeyMap()
	cases := []struct {
		name string
		msg  tea.KeyMsg
		want []Command
	}{
		{name: "left", msg: tea.KeyMsg{Type: tea.KeyLeft}, want: []Command{MoveCommand(DirLeft)}},
		{name: "down", msg: tea.KeyMsg{Type: tea.KeyDown}, want: []Command{MoveCommand(DirDown)}},
		{name: "page up", msg: tea.KeyMsg{Type: tea.KeyPgUp}, want: []Command{MoveCommand(DirPageUp)}},
		{name: "page down", msg: tea.KeyMsg{Type: tea.KeyPgDown}, want: []Command{MoveCommand(DirPageDown)}},
		{name: "home", msg: tea.KeyMsg{Type: tea.KeyHome}, want: []Command{MoveCommand(DirHome)}},
		{name: "end", msg: tea.KeyMsg{Type: tea.KeyEnd}, want: []Command{MoveCommand(DirEnd)}},
		{name: "backspace", msg: tea.KeyMsg{Type: tea.KeyBackspace}, want: []Command{{Kind: CommandBackspace}}},
		{name: "ctrl+h", msg: tea.KeyMsg{Type: tea.KeyCtrlH}, want: []Command{{Kind: CommandBackspace}}},
		{name: "delete", msg: tea.KeyMsg{Type: tea.KeyDelete}, want: []Command{{Kind: CommandDelete}}},
		{name: "enter", msg: tea.KeyMsg{Type: tea.KeyEnter}, want: []Command{{Kind: CommandEnter}}},
		{name: "save", msg: tea.KeyMsg{Type: tea.KeyCtrlS}, want: []Command{{Kind: CommandSave}}},
		{name: "search", msg: tea.KeyMsg{Type: tea.KeyCtrlF}, want: []Command{{Kind: CommandSearch}}},
		{name: "quit", msg: tea.KeyMsg{Type: tea.KeyCtrlQ}, want: []Command{{Kind: CommandQuit}}},
		{name: "esc", msg: tea.KeyMsg{Type: tea.KeyEsc}, want: []Command{{Kind: CommandDismiss}}},
		{name: "tab", msg: tea.KeyMsg{Type: tea.KeyTab}, want: []Command{InsertCommand('\t')}},
		{name: "space", msg: tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, want: []Command{InsertCommand(' ')}},
		{name: "rune", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, want: []Command{InsertCommand('x')}},
		{
			name: "paste",
			msg:  tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a\r\nb")},
			want: []Command{InsertCommand('a'), {Kind: CommandEnter}, InsertCommand('b')},
		},
		{name: "alt rune", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true}, want: nil},
		{name: "unbound", msg: tea.KeyMsg{Type: tea.KeyCtrlB}, want: nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := km.Commands(tc.msg)
			if len(got) != len(tc.want) {
				t.Fatalf("commands=%v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("command %d=%v, want %v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestKeyMap_CustomBindings(t *testing.T) {
	km := DefaultKeyMap()
	km.Quit.SetKeys("ctrl+x")

	if got := km.Commands(tea.KeyMsg{Type: tea.KeyCtrlQ}); len(got) != 0 {
		t.Fatalf("old quit key still bound: %v", got)
	}
	got := km.Commands(tea.KeyMsg{Type: tea.KeyCtrlX})
	if len(got) != 1 || got[0].Kind != CommandQuit {
		t.Fatalf("commands=%v, want quit", got)
	}
}

func TestConfig_ZeroKeyMapUsesDefaults(t *testing.T) {
	e, _ := newTestEditor(t, Config{}, Size{Width: 10, Height: 3})
	if got := e.KeyMap().Quit.Keys(); len(got) != 1 || got[0] != "ctrl+q" {
		t.Fatalf("quit keys=%v", got)
	}
}
