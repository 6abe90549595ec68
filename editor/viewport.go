package editor

// scrollLocationIntoView shifts the scroll offset just enough to show the
// caret. A zero-sized text area keeps the offset unchanged.
func (v *View) scrollLocationIntoView() {
	p := v.textPosition()
	if next, ok := follow(v.scroll.Row, p.Row, v.size.Height); ok {
		v.scroll.Row = next
		v.needsRedraw = true
	}
	if next, ok := follow(v.scroll.Col, p.Col, v.size.Width); ok {
		v.scroll.Col = next
		v.needsRedraw = true
	}
}

// follow returns the offset that keeps to inside [offset, offset+extent).
func follow(offset, to, extent int) (int, bool) {
	if extent <= 0 {
		return offset, false
	}
	if to < offset {
		return to, true
	}
	if to >= offset+extent {
		return to - extent + 1, true
	}
	return offset, false
}
