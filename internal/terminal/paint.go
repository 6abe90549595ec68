package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/iw2rmb/quire/annotated"
	"github.com/iw2rmb/quire/editor"
)

// Paint draws f on t. The caret is hidden while rows are redrawn.
func Paint(t Terminal, f editor.Frame) {
	t.HideCaret()
	for y := 0; y < f.Size.Height; y++ {
		t.ClearRow(y)
		if y < len(f.Rows) {
			paintRow(t, y, f.Rows[y])
		}
	}
	if f.Size.Width > 0 && f.Size.Height > 0 {
		t.MoveCaret(f.Caret)
		t.ShowCaret()
	}
	t.Flush()
}

func paintRow(t Terminal, y int, row editor.Row) {
	if row.Content == nil {
		return
	}
	x := 0
	for part := range row.Content.All() {
		x += t.Print(editor.Position{Row: y, Col: x}, part.Text, StyleFor(row.Kind, part.Category))
	}
}

// StyleFor maps a row kind and category to a cell style using the editor
// palette.
func StyleFor(kind editor.RowKind, cat annotated.Category) tcell.Style {
	st := tcell.StyleDefault
	if kind == editor.RowStatus {
		return st.Reverse(true)
	}
	if kind != editor.RowText {
		return st
	}
	c, ok := editor.Palette(cat)
	if !ok {
		return st
	}
	st = st.Foreground(tcell.GetColor(c.Fg))
	if c.Bg != "" {
		st = st.Background(tcell.GetColor(c.Bg))
	}
	return st
}
