package editor

import "github.com/iw2rmb/quire/buffer"

// HandleMove moves the caret and scrolls it into view. The caret may rest on
// the row just past the last line.
func (v *View) HandleMove(dir Direction) {
	v.loc = v.moveLocation(v.loc, dir)
	v.scrollLocationIntoView()
	v.needsRedraw = true
}

func (v *View) moveLocation(loc buffer.Location, dir Direction) buffer.Location {
	height := v.buf.Height()
	lineLen := func(i int) int { return v.buf.Line(i).GraphemeCount() }

	switch dir {
	case DirLeft:
		if loc.GraphemeIndex > 0 {
			loc.GraphemeIndex--
		} else if loc.LineIndex > 0 {
			loc.LineIndex--
			loc.GraphemeIndex = lineLen(loc.LineIndex)
		}
	case DirRight:
		if loc.GraphemeIndex < lineLen(loc.LineIndex) {
			loc.GraphemeIndex++
		} else {
			loc.GraphemeIndex = 0
			loc.LineIndex = min(loc.LineIndex+1, height)
		}
	case DirUp:
		loc.LineIndex = max(loc.LineIndex-1, 0)
	case DirDown:
		loc.LineIndex = min(loc.LineIndex+1, height)
	case DirPageUp:
		loc.LineIndex = max(loc.LineIndex-v.size.Height, 0)
	case DirPageDown:
		loc.LineIndex = min(loc.LineIndex+v.size.Height, height)
	case DirHome:
		loc.GraphemeIndex = 0
	case DirEnd:
		loc.GraphemeIndex = lineLen(loc.LineIndex)
	}

	loc.LineIndex = clampInt(loc.LineIndex, 0, height)
	loc.GraphemeIndex = clampInt(loc.GraphemeIndex, 0, lineLen(loc.LineIndex))
	return loc
}
