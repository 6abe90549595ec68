package buffer

// SearchForward looks for query at or after from, wrapping past the last
// line back to the first. The starting line is visited twice: from from on
// the first visit, whole on the last, so a match before from is still found.
func (b *Buffer) SearchForward(query string, from Location) (Location, bool) {
	n := len(b.lines)
	if query == "" || n == 0 {
		return Location{}, false
	}
	start := clampInt(from.LineIndex, 0, n) % n
	for step := 0; step <= n; step++ {
		idx := (start + step) % n
		l := b.lines[idx]
		col := 0
		if step == 0 && from.LineIndex < n {
			col = clampInt(from.GraphemeIndex, 0, l.GraphemeCount())
		}
		if g, ok := l.SearchForward(query, col); ok {
			return Location{LineIndex: idx, GraphemeIndex: g}, true
		}
	}
	return Location{}, false
}

// SearchBackward looks for a match starting before from, wrapping past the
// first line to the last.
func (b *Buffer) SearchBackward(query string, from Location) (Location, bool) {
	n := len(b.lines)
	if query == "" || n == 0 {
		return Location{}, false
	}
	start := clampInt(from.LineIndex, 0, n-1)
	for step := 0; step <= n; step++ {
		idx := ((start-step)%n + n) % n
		l := b.lines[idx]
		col := l.GraphemeCount()
		if step == 0 && from.LineIndex < n {
			col = clampInt(from.GraphemeIndex, 0, l.GraphemeCount())
		}
		if g, ok := l.SearchBackward(query, col); ok {
			return Location{LineIndex: idx, GraphemeIndex: g}, true
		}
	}
	return Location{}, false
}
