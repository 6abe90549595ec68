package buffer

import "github.com/iw2rmb/quire/internal/invariant"

// InsertRune inserts r at at. On the row past the last line it starts a new
// line holding r.
func (b *Buffer) InsertRune(r rune, at Location) {
	invariant.Check(at.LineIndex >= 0 && at.LineIndex <= len(b.lines), "insert on line %d of %d", at.LineIndex, len(b.lines))
	switch {
	case at.LineIndex == len(b.lines):
		b.lines = append(b.lines, NewLine(string(r)))
	case at.LineIndex >= 0 && at.LineIndex < len(b.lines):
		l := &b.lines[at.LineIndex]
		l.InsertRune(r, clampInt(at.GraphemeIndex, 0, l.GraphemeCount()))
	default:
		return
	}
	b.dirty = true
}

// InsertNewline splits the line at at, moving the rest to a new line below.
func (b *Buffer) InsertNewline(at Location) {
	invariant.Check(at.LineIndex >= 0 && at.LineIndex <= len(b.lines), "newline on line %d of %d", at.LineIndex, len(b.lines))
	switch {
	case at.LineIndex == len(b.lines):
		b.lines = append(b.lines, Line{})
	case at.LineIndex >= 0 && at.LineIndex < len(b.lines):
		rest := b.lines[at.LineIndex].Split(at.GraphemeIndex)
		b.lines = append(b.lines, Line{})
		copy(b.lines[at.LineIndex+2:], b.lines[at.LineIndex+1:])
		b.lines[at.LineIndex+1] = rest
	default:
		return
	}
	b.dirty = true
}

// Delete removes the grapheme at at. At the end of a line it joins the next
// line onto it. At the end of the buffer it does nothing.
func (b *Buffer) Delete(at Location) {
	if at.LineIndex < 0 || at.LineIndex >= len(b.lines) {
		return
	}
	l := &b.lines[at.LineIndex]
	switch {
	case at.GraphemeIndex >= 0 && at.GraphemeIndex < l.GraphemeCount():
		l.Delete(at.GraphemeIndex)
	case at.GraphemeIndex >= l.GraphemeCount() && at.LineIndex+1 < len(b.lines):
		next := b.lines[at.LineIndex+1]
		l.Append(next)
		b.lines = append(b.lines[:at.LineIndex+1], b.lines[at.LineIndex+2:]...)
	default:
		return
	}
	b.dirty = true
}
