// Package annotated pairs a single line of text with category-tagged byte
// ranges and keeps those ranges consistent while the text is edited.
package annotated

import (
	"iter"

	"github.com/iw2rmb/quire/internal/invariant"
)

// Category tags an annotated byte range.
type Category uint8

const (
	None Category = iota
	Match
	SelectedMatch
	Number
	Keyword
	Type
	KnownValue
	Char
	Lifetime
	StringLiteral
	Comment
)

func (c Category) String() string {
	switch c {
	case None:
		return "none"
	case Match:
		return "match"
	case SelectedMatch:
		return "selected-match"
	case Number:
		return "number"
	case Keyword:
		return "keyword"
	case Type:
		return "type"
	case KnownValue:
		return "known-value"
	case Char:
		return "char"
	case Lifetime:
		return "lifetime"
	case StringLiteral:
		return "string"
	case Comment:
		return "comment"
	default:
		return "unknown"
	}
}

// Annotation is a half-open byte range [Start, End) tagged with a Category.
type Annotation struct {
	Category Category
	Start    int
	End      int
}

// Part is one contiguous slice of an annotated String. Category is None for
// text no annotation covers.
type Part struct {
	Text     string
	Category Category
}

// String is text plus an unordered set of annotations over it.
type String struct {
	text        string
	annotations []Annotation
}

// New returns an annotated String without annotations.
func New(text string) *String {
	return &String{text: text}
}

func (s *String) Text() string { return s.text }
func (s *String) String() string { return s.text }
func (s *String) Len() int { return len(s.text) }

// Annotations returns a copy of the annotation set in insertion order.
func (s *String) Annotations() []Annotation {
	if len(s.annotations) == 0 {
		return nil
	}
	out := make([]Annotation, len(s.annotations))
	copy(out, s.annotations)
	return out
}

// Add appends an annotation. Overlaps are kept as-is; the most recently
// added annotation wins when parts are produced.
func (s *String) Add(cat Category, start, end int) {
	invariant.Check(start <= end, "annotation start %d > end %d", start, end)
	if start > end {
		return
	}
	s.annotations = append(s.annotations, Annotation{Category: cat, Start: start, End: end})
}

// AddAll appends every annotation in anns.
func (s *String) AddAll(anns []Annotation) {
	for _, a := range anns {
		s.Add(a.Category, a.Start, a.End)
	}
}

// Replace splices repl into the byte range [start, end) and moves every
// annotation boundary with the text:
//
//   - a boundary at or after end shifts by len(repl)-(end-start),
//   - a boundary inside the range is clamped into the replacement,
//   - a boundary before the range stays put.
//
// Annotations left empty, or starting at or past the new end of text, are
// dropped.
func (s *String) Replace(start, end int, repl string) {
	invariant.Check(start <= end, "replace start %d > end %d", start, end)
	if end > len(s.text) {
		end = len(s.text)
	}
	if start > end {
		start = end
	}
	s.text = s.text[:start] + repl + s.text[end:]

	delta := len(repl) - (end - start)
	limit := start + len(repl)
	move := func(b int) int {
		switch {
		case b >= end:
			return b + delta
		case b > start:
			return min(b, limit)
		default:
			return b
		}
	}

	kept := s.annotations[:0]
	for _, a := range s.annotations {
		a.Start = move(a.Start)
		a.End = move(a.End)
		if a.Start >= a.End || a.Start >= len(s.text) {
			continue
		}
		kept = append(kept, a)
	}
	s.annotations = kept
}

// TruncateRightFrom drops everything from byte i on.
func (s *String) TruncateRightFrom(i int) {
	s.Replace(i, len(s.text), "")
}

// TruncateLeftUntil drops everything before byte i.
func (s *String) TruncateLeftUntil(i int) {
	s.Replace(0, i, "")
}

// All yields the parts of s from left to right. Together they cover the text
// exactly once. Each call starts a fresh pass.
func (s *String) All() iter.Seq[Part] {
	return func(yield func(Part) bool) {
		i := 0
		for i < len(s.text) {
			end, cat := s.partAt(i)
			if !yield(Part{Text: s.text[i:end], Category: cat}) {
				return
			}
			i = end
		}
	}
}

// Parts collects All into a slice.
func (s *String) Parts() []Part {
	var out []Part
	for p := range s.All() {
		out = append(out, p)
	}
	return out
}

// partAt returns the end of the part starting at byte i and its category.
func (s *String) partAt(i int) (int, Category) {
	n := len(s.text)
	winner := -1
	for k := len(s.annotations) - 1; k >= 0; k-- {
		a := s.annotations[k]
		if a.Start <= i && i < a.End {
			winner = k
			break
		}
	}

	end := n
	cat := None
	from := 0
	if winner >= 0 {
		a := s.annotations[winner]
		end = min(a.End, n)
		cat = a.Category
		from = winner + 1
	}
	for _, a := range s.annotations[from:] {
		if a.Start > i && a.Start < end && a.Start < a.End {
			end = a.Start
		}
	}
	return end, cat
}
