package editor

import (
	"strings"

	"github.com/iw2rmb/quire"
	"github.com/iw2rmb/quire/annotated"
	"github.com/iw2rmb/quire/buffer"
	"github.com/iw2rmb/quire/highlight"
)

// View owns the caret, the scroll offset and the size of the text area.
// It maps buffer locations to screen positions and produces the annotated
// text of each visible row.
type View struct {
	buf *buffer.Buffer

	loc    buffer.Location
	scroll Position
	size   Size

	fileType highlight.FileType
	pipeline *highlight.Pipeline
	search   *SearchInfo

	needsRedraw bool
}

func NewView(buf *buffer.Buffer) *View {
	v := &View{
		buf:         buf,
		fileType:    highlight.FileType{Name: highlight.TextType},
		pipeline:    highlight.NewPipeline(nil),
		needsRedraw: true,
	}
	return v
}

func (v *View) Buffer() *buffer.Buffer { return v.buf }
func (v *View) Location() buffer.Location { return v.loc }
func (v *View) Scroll() Position { return v.scroll }
func (v *View) Size() Size { return v.size }
func (v *View) FileType() highlight.FileType { return v.fileType }

// NeedsRedraw reports whether anything changed since the last MarkDrawn.
func (v *View) NeedsRedraw() bool { return v.needsRedraw }
func (v *View) MarkDrawn() { v.needsRedraw = false }

// Load reads path into the buffer and picks the file type. The caret returns
// to the top on success.
func (v *View) Load(path string) error {
	if err := v.buf.Load(path); err != nil {
		return err
	}
	v.loc = buffer.Location{}
	v.scroll = Position{}
	v.detectFileType()
	v.needsRedraw = true
	return nil
}

func (v *View) Save() error {
	return v.buf.Save()
}

// SaveAs writes to path; the new name may change the file type.
func (v *View) SaveAs(path string) error {
	if err := v.buf.SaveAs(path); err != nil {
		return err
	}
	v.detectFileType()
	v.needsRedraw = true
	return nil
}

func (v *View) detectFileType() {
	info := v.buf.FileInfo()
	v.fileType = highlight.DetectFileType(info.Path(), []byte(v.buf.Text()))
	v.pipeline.SetSyntax(v.fileType.Highlighter())
}

// Status summarizes the buffer for the caret's line.
func (v *View) Status() buffer.Status {
	return v.buf.Status(v.loc.LineIndex)
}

// Resize changes the text area and scrolls the caret back into view.
func (v *View) Resize(size Size) {
	v.size = Size{Width: max(size.Width, 0), Height: max(size.Height, 0)}
	v.scrollLocationIntoView()
	v.needsRedraw = true
}

// HandleEdit applies a text-changing command at the caret and moves the
// caret to follow it. Other commands are ignored.
func (v *View) HandleEdit(cmd Command) {
	switch cmd.Kind {
	case CommandInsert:
		v.insert(cmd.Rune)
	case CommandEnter:
		v.buf.InsertNewline(v.loc)
		v.HandleMove(DirRight)
	case CommandBackspace:
		if v.loc.LineIndex > 0 || v.loc.GraphemeIndex > 0 {
			v.HandleMove(DirLeft)
			v.buf.Delete(v.loc)
		}
	case CommandDelete:
		v.buf.Delete(v.loc)
	default:
		return
	}
	v.pipeline.Invalidate()
	v.needsRedraw = true
}

func (v *View) insert(r rune) {
	before := v.buf.Line(v.loc.LineIndex).GraphemeCount()
	v.buf.InsertRune(r, v.loc)
	after := v.buf.Line(v.loc.LineIndex).GraphemeCount()
	// A combining mark merges into the previous grapheme and adds none.
	if after > before {
		v.HandleMove(DirRight)
	}
}

// CaretPosition is the caret's screen position within the text area.
func (v *View) CaretPosition() Position {
	p := v.textPosition()
	return Position{Row: max(p.Row-v.scroll.Row, 0), Col: max(p.Col-v.scroll.Col, 0)}
}

// textPosition is the caret in document display coordinates.
func (v *View) textPosition() Position {
	return Position{
		Row: v.loc.LineIndex,
		Col: v.buf.Line(v.loc.LineIndex).WidthUntil(v.loc.GraphemeIndex),
	}
}

// VisibleRow returns the text of screen row row: the visible slice of a
// buffer line, "~" past the end of the buffer, or the welcome banner on an
// empty buffer.
func (v *View) VisibleRow(row int) *annotated.String {
	if row < 0 || row >= v.size.Height || v.size.Width == 0 {
		return annotated.New("")
	}
	lineIdx := row + v.scroll.Row
	if lineIdx < v.buf.Height() {
		line := v.buf.Line(lineIdx)
		left := v.scroll.Col
		return line.AnnotatedVisible(left, left+v.size.Width, v.annotations(lineIdx, line))
	}
	if v.buf.IsEmpty() && row == v.size.Height/3 {
		return annotated.New(welcomeLine(v.size.Width))
	}
	return annotated.New("~")
}

func welcomeLine(width int) string {
	msg := quire.Banner()
	if width <= len(msg) {
		return "~"
	}
	pad := (width - len(msg)) / 2
	line := "~" + strings.Repeat(" ", max(pad-1, 0)) + msg
	if len(line) > width {
		line = line[:width]
	}
	return line
}

// Rows returns VisibleRow for every row of the text area.
func (v *View) Rows() []*annotated.String {
	if v.size.Width == 0 {
		return nil
	}
	out := make([]*annotated.String, v.size.Height)
	for i := range out {
		out[i] = v.VisibleRow(i)
	}
	return out
}
