package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/iw2rmb/quire/editor"
	"github.com/iw2rmb/quire/internal/grapheme"
)

// Terminal is the screen the editor draws on.
type Terminal interface {
	Size() editor.Size
	MoveCaret(p editor.Position)
	ClearRow(row int)
	// Print draws text from p and returns the number of cells used. Text
	// past the right edge is dropped.
	Print(p editor.Position, text string, st tcell.Style) int
	HideCaret()
	ShowCaret()
	Flush()
}

// Tcell is a Terminal backed by a tcell screen.
type Tcell struct {
	s     tcell.Screen
	caret editor.Position
}

func NewTcell(s tcell.Screen) *Tcell {
	return &Tcell{s: s}
}

func (t *Tcell) Size() editor.Size {
	w, h := t.s.Size()
	return editor.Size{Width: w, Height: h}
}

func (t *Tcell) MoveCaret(p editor.Position) {
	t.caret = p
	t.s.ShowCursor(p.Col, p.Row)
}

func (t *Tcell) ClearRow(row int) {
	w, _ := t.s.Size()
	for x := 0; x < w; x++ {
		t.s.SetContent(x, row, ' ', nil, tcell.StyleDefault)
	}
}

func (t *Tcell) Print(p editor.Position, text string, st tcell.Style) int {
	w, _ := t.s.Size()
	x := p.Col
	for _, c := range grapheme.Clusters(text) {
		cw := max(c.Width, 1)
		if x+cw > w {
			break
		}
		runes := []rune(c.Text)
		t.s.SetContent(x, p.Row, runes[0], runes[1:], st)
		x += cw
	}
	return x - p.Col
}

func (t *Tcell) HideCaret() { t.s.HideCursor() }

func (t *Tcell) ShowCaret() { t.s.ShowCursor(t.caret.Col, t.caret.Row) }

func (t *Tcell) Flush() { t.s.Show() }
