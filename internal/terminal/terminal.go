// Package terminal runs an editor directly on a tcell screen.
package terminal

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/iw2rmb/quire/editor"
)

// Run drives ed on an initialized screen until the editor quits or ctx is
// done. The screen is finalized on return, panics included.
func Run(ctx context.Context, ed *editor.Editor, s tcell.Screen) error {
	defer s.Fini()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = s.PostEvent(tcell.NewEventInterrupt(ctx.Err()))
		case <-done:
		}
	}()

	t := NewTcell(s)
	ed.Handle(editor.ResizeCommand(t.Size()))
	Paint(t, ed.Frame())

	for !ed.ShouldQuit() {
		ev := s.PollEvent()
		if ev == nil {
			return nil
		}
		if _, ok := ev.(*tcell.EventInterrupt); ok {
			return ctx.Err()
		}
		for _, cmd := range Decode(ev) {
			ed.Handle(cmd)
			if ed.ShouldQuit() {
				return nil
			}
		}
		Paint(t, ed.Frame())
	}
	return nil
}
