// Package highlight produces per-line annotations for rendering: syntax
// categories from a language-specific highlighter, and search matches.
package highlight

import (
	"github.com/iw2rmb/quire/annotated"
	"github.com/iw2rmb/quire/buffer"
)

// Highlighter annotates a single line. Byte offsets in the result refer to
// line.String().
type Highlighter interface {
	HighlightLine(lineIndex int, line buffer.Line) []annotated.Annotation
}

// HighlighterFunc adapts a function to Highlighter.
type HighlighterFunc func(lineIndex int, line buffer.Line) []annotated.Annotation

func (f HighlighterFunc) HighlightLine(lineIndex int, line buffer.Line) []annotated.Annotation {
	return f(lineIndex, line)
}

// Pipeline combines an optional syntax highlighter with an optional search
// highlighter and caches their output per line. Search annotations come
// last, so they win where both cover the same bytes.
type Pipeline struct {
	syntax Highlighter
	search *SearchHighlighter

	cache map[int][]annotated.Annotation
}

func NewPipeline(syntax Highlighter) *Pipeline {
	return &Pipeline{syntax: syntax, cache: make(map[int][]annotated.Annotation)}
}

// SetSyntax swaps the syntax highlighter and drops cached results.
func (p *Pipeline) SetSyntax(h Highlighter) {
	p.syntax = h
	p.Invalidate()
}

// SetSearch enables match highlighting for query. The match at selected, if
// any, is tagged SelectedMatch. An empty query disables it.
func (p *Pipeline) SetSearch(query string, selected *buffer.Location) {
	if query == "" {
		p.search = nil
	} else {
		p.search = NewSearchHighlighter(query, selected)
	}
	p.Invalidate()
}

// Highlight recomputes and caches the annotations of line lineIndex.
func (p *Pipeline) Highlight(lineIndex int, line buffer.Line) {
	var out []annotated.Annotation
	if p.syntax != nil {
		out = append(out, p.syntax.HighlightLine(lineIndex, line)...)
	}
	if p.search != nil {
		out = append(out, p.search.HighlightLine(lineIndex, line)...)
	}
	p.cache[lineIndex] = out
}

// Annotations returns what the last Highlight call cached for lineIndex, or
// nil when the line was never highlighted.
func (p *Pipeline) Annotations(lineIndex int) []annotated.Annotation {
	return p.cache[lineIndex]
}

// Lookup is Annotations that also reports whether lineIndex is cached.
func (p *Pipeline) Lookup(lineIndex int) ([]annotated.Annotation, bool) {
	anns, ok := p.cache[lineIndex]
	return anns, ok
}

// Invalidate drops every cached line.
func (p *Pipeline) Invalidate() {
	clear(p.cache)
}
