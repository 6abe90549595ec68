package editor

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/quire/annotated"
)

// RowKind tells a renderer how to style a Frame row.
type RowKind uint8

const (
	RowText    RowKind = iota // a text-area row; parts carry categories
	RowStatus                 // the inverted status bar
	RowMessage                // the message bar
	RowPrompt                 // the command bar
)

// Row is one screen row of a Frame.
type Row struct {
	Kind    RowKind
	Content *annotated.String
}

// Frame is everything a renderer needs to draw one screen.
type Frame struct {
	Size  Size
	Rows  []Row
	Caret Position
}

// Frame lays out the screen: the text area on top, then the status bar,
// then the message or command bar on the last row. With a single row only
// the bottom bar is drawn; with no rows or columns the frame is empty.
func (e *Editor) Frame() Frame {
	f := Frame{Size: e.size}
	w, h := e.size.Width, e.size.Height
	if w == 0 || h == 0 {
		return f
	}

	if h > 2 {
		for _, s := range e.view.Rows() {
			f.Rows = append(f.Rows, Row{Kind: RowText, Content: s})
		}
	}
	if h > 1 {
		status := renderStatus(e.Status(), w)
		status += strings.Repeat(" ", max(w-runewidth.StringWidth(status), 0))
		f.Rows = append(f.Rows, Row{Kind: RowStatus, Content: annotated.New(status)})
	}

	bottom := h - 1
	if e.mode == ModeNormal {
		msg := runewidth.Truncate(e.Message(), w, "")
		f.Rows = append(f.Rows, Row{Kind: RowMessage, Content: annotated.New(msg)})
		c := e.view.CaretPosition()
		f.Caret = Position{Row: min(c.Row, bottom), Col: min(c.Col, w-1)}
	} else {
		f.Rows = append(f.Rows, Row{Kind: RowPrompt, Content: annotated.New(e.prompt.render(w))})
		f.Caret = Position{Row: bottom, Col: min(e.prompt.caretCol(w), w-1)}
	}
	e.view.MarkDrawn()
	return f
}
