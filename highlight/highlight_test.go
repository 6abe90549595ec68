package highlight

import (
	"testing"

	"github.com/iw2rmb/quire/annotated"
	"github.com/iw2rmb/quire/buffer"
)

func findAnn(anns []annotated.Annotation, start, end int) (annotated.Annotation, bool) {
	for _, a := range anns {
		if a.Start == start && a.End == end {
			return a, true
		}
	}
	return annotated.Annotation{}, false
}

func TestPipeline_CachesPerLine(t *testing.T) {
	calls := 0
	syntax := HighlighterFunc(func(_ int, line buffer.Line) []annotated.Annotation {
		calls++
		return []annotated.Annotation{{Category: annotated.Keyword, Start: 0, End: line.Len()}}
	})
	p := NewPipeline(syntax)

	if got := p.Annotations(0); got != nil {
		t.Fatalf("annotations before highlight=%v, want nil", got)
	}
	p.Highlight(0, buffer.NewLine("abc"))
	p.Annotations(0)
	p.Annotations(0)
	if calls != 1 {
		t.Fatalf("calls=%d, want 1", calls)
	}
	if got := p.Annotations(0); len(got) != 1 || got[0].End != 3 {
		t.Fatalf("annotations=%v", got)
	}

	if _, ok := p.Lookup(1); ok {
		t.Fatalf("line 1 reported as cached")
	}

	p.Invalidate()
	if _, ok := p.Lookup(0); ok {
		t.Fatalf("line 0 still cached after invalidate")
	}
	if got := p.Annotations(0); got != nil {
		t.Fatalf("annotations after invalidate=%v, want nil", got)
	}
}

func TestPipeline_SearchAfterSyntax(t *testing.T) {
	p := NewPipeline(NewWordHighlighter(Rust))
	sel := buffer.Location{LineIndex: 0, GraphemeIndex: 7}
	p.SetSearch("let", &sel)

	line := buffer.NewLine("let a; let b;")
	p.Highlight(0, line)
	anns := p.Annotations(0)

	s := annotated.New(line.String())
	s.AddAll(anns)
	var cats []annotated.Category
	for part := range s.All() {
		if part.Text == "let" {
			cats = append(cats, part.Category)
		}
	}
	if len(cats) != 2 || cats[0] != annotated.Match || cats[1] != annotated.SelectedMatch {
		t.Fatalf("let categories=%v, want [match selected-match]", cats)
	}

	p.SetSearch("", nil)
	p.Highlight(0, line)
	for _, a := range p.Annotations(0) {
		if a.Category == annotated.Match || a.Category == annotated.SelectedMatch {
			t.Fatalf("search annotations left after clearing: %v", a)
		}
	}
}

func TestSearchHighlighter_OnlySelectedLine(t *testing.T) {
	sel := buffer.Location{LineIndex: 3, GraphemeIndex: 0}
	h := NewSearchHighlighter("ab", &sel)
	anns := h.HighlightLine(2, buffer.NewLine("ab ab"))
	if len(anns) != 2 {
		t.Fatalf("annotations=%v", anns)
	}
	for _, a := range anns {
		if a.Category != annotated.Match {
			t.Fatalf("category=%v, want match", a.Category)
		}
	}
	if a, ok := findAnn(anns, 3, 5); !ok || a.Category != annotated.Match {
		t.Fatalf("second match missing: %v", anns)
	}
}

func TestSearchHighlighter_SelectedOverlappingMatch(t *testing.T) {
	line := buffer.NewLine("aaaa")
	sel := buffer.Location{LineIndex: 0, GraphemeIndex: 1}
	anns := NewSearchHighlighter("aa", &sel).HighlightLine(0, line)

	s := annotated.New(line.String())
	s.AddAll(anns)
	parts := s.Parts()
	want := []annotated.Part{
		{Text: "a", Category: annotated.Match},
		{Text: "aa", Category: annotated.SelectedMatch},
		{Text: "a", Category: annotated.Match},
	}
	if len(parts) != len(want) {
		t.Fatalf("parts=%v, want %v", parts, want)
	}
	for i := range want {
		if parts[i] != want[i] {
			t.Fatalf("part %d=%v, want %v", i, parts[i], want[i])
		}
	}
}

func TestSearchHighlighter_SelectedWithoutMatchIgnored(t *testing.T) {
	sel := buffer.Location{LineIndex: 0, GraphemeIndex: 1}
	for _, a := range NewSearchHighlighter("ab", &sel).HighlightLine(0, buffer.NewLine("ab ab")) {
		if a.Category == annotated.SelectedMatch {
			t.Fatalf("selected match at a location without the query: %v", a)
		}
	}
}

func TestFileType_Detect(t *testing.T) {
	if ft := DetectFileType("", nil); ft.Name != TextType || ft.Highlighter() != nil {
		t.Fatalf("unnamed=%v", ft)
	}
	if ft := DetectFileType("main.go", []byte("package main\n")); ft.Name != "Go" {
		t.Fatalf("main.go=%q, want Go", ft.Name)
	}
	ft := DetectFileType("main.go", nil)
	if _, ok := ft.Highlighter().(*WordHighlighter); !ok {
		t.Fatalf("Go should use the word highlighter")
	}
	if h := (FileType{Name: "Rust"}).Highlighter(); h == nil {
		t.Fatalf("Rust highlighter missing")
	}
}

func TestFileType_ChromaFallback(t *testing.T) {
	h := FileType{Name: "Python"}.Highlighter()
	ch, ok := h.(*ChromaHighlighter)
	if !ok {
		t.Fatalf("highlighter=%T, want *ChromaHighlighter", h)
	}
	if ch.Lexer() != "Python" {
		t.Fatalf("lexer=%q", ch.Lexer())
	}
	if h := (FileType{Name: "No Such Language"}).Highlighter(); h != nil {
		t.Fatalf("unknown language got %T", h)
	}
}
