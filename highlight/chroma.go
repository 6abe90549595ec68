package highlight

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/iw2rmb/quire/annotated"
	"github.com/iw2rmb/quire/buffer"
)

// ChromaHighlighter annotates lines with a chroma lexer. Lines are lexed one
// at a time, so constructs spanning lines (block comments, raw strings) are
// only recognised on their first line.
type ChromaHighlighter struct {
	lexer chroma.Lexer
}

// NewChromaHighlighter returns nil when chroma has no lexer named language.
func NewChromaHighlighter(language string) *ChromaHighlighter {
	l := lexers.Get(language)
	if l == nil {
		return nil
	}
	return &ChromaHighlighter{lexer: chroma.Coalesce(l)}
}

func (h *ChromaHighlighter) Lexer() string { return h.lexer.Config().Name }

func (h *ChromaHighlighter) HighlightLine(_ int, line buffer.Line) []annotated.Annotation {
	text := line.String()
	if text == "" {
		return nil
	}
	tokens, err := chroma.Tokenise(h.lexer, nil, text)
	if err != nil {
		return nil
	}

	var out []annotated.Annotation
	pos := 0
	for _, tok := range tokens {
		if tok.Type == chroma.EOFType || pos >= len(text) {
			break
		}
		start := pos
		end := min(pos+len(tok.Value), len(text))
		pos += len(tok.Value)
		if cat, ok := categoryOf(tok.Type); ok && start < end {
			out = append(out, annotated.Annotation{Category: cat, Start: start, End: end})
		}
	}
	return out
}

func categoryOf(t chroma.TokenType) (annotated.Category, bool) {
	switch {
	case t == chroma.KeywordType:
		return annotated.Type, true
	case t == chroma.KeywordConstant:
		return annotated.KnownValue, true
	case t.InCategory(chroma.Keyword):
		return annotated.Keyword, true
	case t.InSubCategory(chroma.LiteralNumber):
		return annotated.Number, true
	case t == chroma.LiteralStringChar:
		return annotated.Char, true
	case t.InSubCategory(chroma.LiteralString):
		return annotated.StringLiteral, true
	case t.InCategory(chroma.Comment):
		return annotated.Comment, true
	}
	return annotated.None, false
}
