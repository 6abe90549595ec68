package buffer

import (
	"strings"

	"github.com/iw2rmb/quire/annotated"
	"github.com/iw2rmb/quire/internal/grapheme"
	"github.com/iw2rmb/quire/internal/invariant"
)

const (
	// Ellipsis stands in for a wide glyph cut by the edge of the window.
	Ellipsis = '⋯'

	tabReplacement       = ' '
	blankReplacement     = '␣'
	controlReplacement   = '▯'
	zeroWidthReplacement = '·'
)

// fragment is one grapheme cluster of a Line.
type fragment struct {
	grapheme    string
	full        bool // renders two cells wide
	replacement rune // 0 when the grapheme renders as itself
	start       int  // byte offset in Line.text
}

func (f fragment) width() int {
	if f.full {
		return 2
	}
	return 1
}

func (f fragment) end() int { return f.start + len(f.grapheme) }

// Line is one logical line of text, segmented into grapheme clusters.
// The zero value is an empty line.
type Line struct {
	text      string
	fragments []fragment
}

// Match is one occurrence of a query within a Line.
type Match struct {
	Byte     int
	Grapheme int
}

// NewLine builds a Line from text, which must not contain a line break.
func NewLine(text string) Line {
	invariant.Check(!strings.ContainsAny(text, "\n"), "line text %q spans several lines", text)
	return Line{text: text, fragments: segment(text)}
}

func segment(text string) []fragment {
	clusters := grapheme.Clusters(text)
	if len(clusters) == 0 {
		return nil
	}
	out := make([]fragment, len(clusters))
	for i, c := range clusters {
		repl := replacementFor(c.Text, c.Width)
		out[i] = fragment{
			grapheme:    c.Text,
			full:        repl == 0 && c.Width >= 2,
			replacement: repl,
			start:       c.Start,
		}
	}
	return out
}

// replacementFor picks the glyph drawn instead of clusters that would
// otherwise be invisible or break the cell grid.
func replacementFor(cluster string, width int) rune {
	switch {
	case cluster == " ":
		return 0
	case cluster == "\t":
		return tabReplacement
	case width > 0 && grapheme.IsSpace(cluster):
		return blankReplacement
	case width == 0 && grapheme.IsControl(cluster):
		return controlReplacement
	case width == 0:
		return zeroWidthReplacement
	default:
		return 0
	}
}

func (l *Line) rebuild() { l.fragments = segment(l.text) }

func (l Line) String() string { return l.text }
func (l Line) Len() int { return len(l.text) }
func (l Line) GraphemeCount() int { return len(l.fragments) }
func (l Line) Width() int { return l.WidthUntil(len(l.fragments)) }
func (l Line) IsEmpty() bool { return l.text == "" }

// WidthUntil returns the display columns taken by the first i graphemes.
func (l Line) WidthUntil(i int) int {
	i = clampInt(i, 0, len(l.fragments))
	w := 0
	for _, f := range l.fragments[:i] {
		w += f.width()
	}
	return w
}

// InsertRune inserts r before grapheme i; i == GraphemeCount appends.
func (l *Line) InsertRune(r rune, i int) {
	invariant.Check(i >= 0 && i <= len(l.fragments), "insert at grapheme %d of %d", i, len(l.fragments))
	if i >= 0 && i < len(l.fragments) {
		at := l.fragments[i].start
		l.text = l.text[:at] + string(r) + l.text[at:]
	} else {
		l.text += string(r)
	}
	l.rebuild()
}

// AppendRune adds r at the end of the line.
func (l *Line) AppendRune(r rune) { l.InsertRune(r, len(l.fragments)) }

// Delete removes grapheme i. Out-of-range indexes are ignored.
func (l *Line) Delete(i int) {
	invariant.Check(i >= 0 && i < len(l.fragments), "delete grapheme %d of %d", i, len(l.fragments))
	if i < 0 || i >= len(l.fragments) {
		return
	}
	f := l.fragments[i]
	l.text = l.text[:f.start] + l.text[f.end():]
	l.rebuild()
}

// DeleteLast removes the final grapheme, if any.
func (l *Line) DeleteLast() {
	if len(l.fragments) == 0 {
		return
	}
	l.Delete(len(l.fragments) - 1)
}

// Append concatenates other onto l.
func (l *Line) Append(other Line) {
	l.text += other.text
	l.rebuild()
}

// Split truncates l before grapheme at and returns the remainder.
func (l *Line) Split(at int) Line {
	if at < 0 || at >= len(l.fragments) {
		return Line{}
	}
	off := l.fragments[at].start
	rest := l.text[off:]
	l.text = l.text[:off]
	l.rebuild()
	return NewLine(rest)
}

// GraphemeToByte returns the byte offset where grapheme i starts. The grapheme
// count maps to the length of the text.
func (l Line) GraphemeToByte(i int) int {
	invariant.Check(i >= 0 && i <= len(l.fragments), "grapheme %d of %d", i, len(l.fragments))
	if i <= 0 || len(l.fragments) == 0 {
		return 0
	}
	if i >= len(l.fragments) {
		return len(l.text)
	}
	return l.fragments[i].start
}

// ByteToGrapheme returns the index of the first grapheme starting at or after
// byte b.
func (l Line) ByteToGrapheme(b int) (int, bool) {
	if b < 0 || b > len(l.text) {
		return 0, false
	}
	for i, f := range l.fragments {
		if f.start >= b {
			return i, true
		}
	}
	return 0, false
}

// FindAll returns every occurrence of query starting inside the byte range
// [from, to). Overlapping occurrences are not reported.
func (l Line) FindAll(query string, from, to int) []Match {
	if query == "" {
		return nil
	}
	to = min(to, len(l.text))
	if from < 0 || from > to {
		return nil
	}
	var out []Match
	sub := l.text[from:to]
	off := 0
	for {
		k := strings.Index(sub[off:], query)
		if k < 0 {
			return out
		}
		b := from + off + k
		if g, ok := l.ByteToGrapheme(b); ok {
			out = append(out, Match{Byte: b, Grapheme: g})
		}
		off += k + len(query)
	}
}

// SearchForward returns the first match starting at or after grapheme from.
func (l Line) SearchForward(query string, from int) (int, bool) {
	invariant.Check(from >= 0 && from <= len(l.fragments), "search from grapheme %d of %d", from, len(l.fragments))
	if from < 0 {
		from = 0
	}
	if from >= len(l.fragments) {
		return 0, false
	}
	matches := l.FindAll(query, l.GraphemeToByte(from), len(l.text))
	if len(matches) == 0 {
		return 0, false
	}
	return matches[0].Grapheme, true
}

// SearchBackward returns the last match lying entirely before grapheme from.
func (l Line) SearchBackward(query string, from int) (int, bool) {
	invariant.Check(from >= 0 && from <= len(l.fragments), "search from grapheme %d of %d", from, len(l.fragments))
	from = min(from, len(l.fragments))
	if from <= 0 {
		return 0, false
	}
	matches := l.FindAll(query, 0, l.GraphemeToByte(from))
	if len(matches) == 0 {
		return 0, false
	}
	return matches[len(matches)-1].Grapheme, true
}

// VisibleGraphemes returns the text shown in display columns [left, right).
func (l Line) VisibleGraphemes(left, right int) string {
	return l.AnnotatedVisible(left, right, nil).Text()
}

// AnnotatedVisible returns the slice of the line shown in display columns
// [left, right), carrying anns along. Graphemes cut by either edge become
// Ellipsis, replaced graphemes are swapped for their glyph, and the result
// never spans more than right-left columns.
func (l Line) AnnotatedVisible(left, right int, anns []annotated.Annotation) *annotated.String {
	if left >= right {
		return annotated.New("")
	}
	out := annotated.New(l.text)
	out.AddAll(anns)

	// Walk right to left so byte offsets of unvisited fragments stay valid.
	fragEnd := l.Width()
	for i := len(l.fragments) - 1; i >= 0; i-- {
		f := l.fragments[i]
		colEnd := fragEnd
		colStart := colEnd - f.width()
		fragEnd = colStart

		if colStart > right {
			continue
		}
		if colStart < right && colEnd > right {
			out.Replace(f.start, out.Len(), string(Ellipsis))
			continue
		}
		if colStart == right {
			out.TruncateRightFrom(f.start)
			continue
		}

		if colEnd <= left {
			out.TruncateLeftUntil(f.end())
			break
		}
		if colStart < left && colEnd > left {
			out.Replace(0, f.end(), string(Ellipsis))
			break
		}

		if f.replacement != 0 {
			out.Replace(f.start, f.end(), string(f.replacement))
		}
	}
	return out
}
