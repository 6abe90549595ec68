package editor

// Size is a terminal or component extent in cells.
type Size struct {
	Width  int
	Height int
}

// Position is a screen coordinate, 0-based.
type Position struct {
	Row int
	Col int
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
