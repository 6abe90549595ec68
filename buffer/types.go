package buffer

// Location points into the buffer by (line, grapheme). Both are 0-based.
// LineIndex may equal the buffer height: that is the empty row after the
// last line, where typing starts a new line.
type Location struct {
	LineIndex     int
	GraphemeIndex int
}

// Status is the document summary shown by the status bar.
type Status struct {
	TotalLines       int
	CurrentLineIndex int
	Modified         bool
	FileName         string
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
