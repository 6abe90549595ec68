package highlight

import (
	"strings"

	"github.com/iw2rmb/quire/annotated"
	"github.com/iw2rmb/quire/buffer"
)

// SearchHighlighter tags every non-overlapping occurrence of a query, plus
// the selected occurrence even when it overlaps one of those.
type SearchHighlighter struct {
	query    string
	selected *buffer.Location
}

func NewSearchHighlighter(query string, selected *buffer.Location) *SearchHighlighter {
	return &SearchHighlighter{query: query, selected: selected}
}

func (s *SearchHighlighter) HighlightLine(lineIndex int, line buffer.Line) []annotated.Annotation {
	matches := line.FindAll(s.query, 0, line.Len())
	if len(matches) == 0 {
		return nil
	}
	sel, hasSel := s.selectedByte(lineIndex, line)
	out := make([]annotated.Annotation, 0, len(matches)+1)
	for _, m := range matches {
		cat := annotated.Match
		if hasSel && m.Byte == sel {
			cat = annotated.SelectedMatch
			hasSel = false
		}
		out = append(out, annotated.Annotation{Category: cat, Start: m.Byte, End: m.Byte + len(s.query)})
	}
	// Later annotations win, so this overrides the matches it overlaps.
	if hasSel {
		out = append(out, annotated.Annotation{Category: annotated.SelectedMatch, Start: sel, End: sel + len(s.query)})
	}
	return out
}

// selectedByte returns the byte offset of the selected occurrence when it
// lies on this line and the query really starts there.
func (s *SearchHighlighter) selectedByte(lineIndex int, line buffer.Line) (int, bool) {
	if s.selected == nil || s.selected.LineIndex != lineIndex {
		return 0, false
	}
	g := s.selected.GraphemeIndex
	if g < 0 || g >= line.GraphemeCount() {
		return 0, false
	}
	b := line.GraphemeToByte(g)
	if !strings.HasPrefix(line.String()[b:], s.query) {
		return 0, false
	}
	return b, true
}
