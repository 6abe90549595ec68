package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/iw2rmb/quire/editor"
)

// Decode turns a tcell event into editor commands. Unknown events decode to
// nothing.
func Decode(ev tcell.Event) []editor.Command {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		return []editor.Command{editor.ResizeCommand(editor.Size{Width: w, Height: h})}
	case *tcell.EventKey:
		if cmd, ok := decodeKey(ev); ok {
			return []editor.Command{cmd}
		}
	}
	return nil
}

func decodeKey(ev *tcell.EventKey) (editor.Command, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return editor.MoveCommand(editor.DirLeft), true
	case tcell.KeyRight:
		return editor.MoveCommand(editor.DirRight), true
	case tcell.KeyUp:
		return editor.MoveCommand(editor.DirUp), true
	case tcell.KeyDown:
		return editor.MoveCommand(editor.DirDown), true
	case tcell.KeyHome:
		return editor.MoveCommand(editor.DirHome), true
	case tcell.KeyEnd:
		return editor.MoveCommand(editor.DirEnd), true
	case tcell.KeyPgUp:
		return editor.MoveCommand(editor.DirPageUp), true
	case tcell.KeyPgDn:
		return editor.MoveCommand(editor.DirPageDown), true

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return editor.Command{Kind: editor.CommandBackspace}, true
	case tcell.KeyDelete:
		return editor.Command{Kind: editor.CommandDelete}, true
	case tcell.KeyEnter:
		return editor.Command{Kind: editor.CommandEnter}, true
	case tcell.KeyTab:
		return editor.InsertCommand('\t'), true

	case tcell.KeyCtrlS:
		return editor.Command{Kind: editor.CommandSave}, true
	case tcell.KeyCtrlF:
		return editor.Command{Kind: editor.CommandSearch}, true
	case tcell.KeyCtrlQ:
		return editor.Command{Kind: editor.CommandQuit}, true
	case tcell.KeyEsc:
		return editor.Command{Kind: editor.CommandDismiss}, true

	case tcell.KeyRune:
		if ev.Modifiers()&(tcell.ModAlt|tcell.ModCtrl) != 0 {
			return editor.Command{}, false
		}
		return editor.InsertCommand(ev.Rune()), true
	}
	return editor.Command{}, false
}
