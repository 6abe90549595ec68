package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Commands decodes a key press. Unbound keys decode to nothing; a paste of
// several runes decodes to one insert per rune.
func (km KeyMap) Commands(msg tea.KeyMsg) []Command {
	switch {
	case key.Matches(msg, km.Left):
		return []Command{MoveCommand(DirLeft)}
	case key.Matches(msg, km.Right):
		return []Command{MoveCommand(DirRight)}
	case key.Matches(msg, km.Up):
		return []Command{MoveCommand(DirUp)}
	case key.Matches(msg, km.Down):
		return []Command{MoveCommand(DirDown)}
	case key.Matches(msg, km.PageUp):
		return []Command{MoveCommand(DirPageUp)}
	case key.Matches(msg, km.PageDown):
		return []Command{MoveCommand(DirPageDown)}
	case key.Matches(msg, km.Home):
		return []Command{MoveCommand(DirHome)}
	case key.Matches(msg, km.End):
		return []Command{MoveCommand(DirEnd)}

	case key.Matches(msg, km.Backspace):
		return []Command{{Kind: CommandBackspace}}
	case key.Matches(msg, km.Delete):
		return []Command{{Kind: CommandDelete}}
	case key.Matches(msg, km.Enter):
		return []Command{{Kind: CommandEnter}}

	case key.Matches(msg, km.Save):
		return []Command{{Kind: CommandSave}}
	case key.Matches(msg, km.Search):
		return []Command{{Kind: CommandSearch}}
	case key.Matches(msg, km.Quit):
		return []Command{{Kind: CommandQuit}}
	case key.Matches(msg, km.Dismiss):
		return []Command{{Kind: CommandDismiss}}
	}

	switch msg.Type {
	case tea.KeyTab:
		return []Command{InsertCommand('\t')}
	case tea.KeySpace:
		return []Command{InsertCommand(' ')}
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return nil
		}
		out := make([]Command, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			switch r {
			case '\r':
				continue
			case '\n':
				out = append(out, Command{Kind: CommandEnter})
			default:
				out = append(out, InsertCommand(r))
			}
		}
		return out
	}
	return nil
}
