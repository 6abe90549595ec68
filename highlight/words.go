package highlight

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iw2rmb/quire/annotated"
	"github.com/iw2rmb/quire/buffer"
	"github.com/iw2rmb/quire/internal/grapheme"
)

// Language is a fixed vocabulary for WordHighlighter.
type Language struct {
	Name        string
	Keywords    []string
	Types       []string
	KnownValues []string
	Quotes      string // single-line string delimiters
	Lifetimes   bool   // 'ident lifetime specifiers
	LineComment string
}

var Rust = Language{
	Name: "Rust",
	Keywords: []string{
		"break", "const", "continue", "crate", "else", "enum", "extern", "false",
		"fn", "for", "if", "impl", "in", "let", "loop", "match", "mod", "move",
		"mut", "pub", "ref", "return", "self", "Self", "static", "struct",
		"super", "trait", "true", "type", "unsafe", "use", "where", "while",
		"async", "await", "dyn", "abstract", "become", "box", "do", "final",
		"macro", "override", "priv", "typeof", "unsized", "virtual", "yield",
		"try", "macro_rules", "union",
	},
	Types: []string{
		"i8", "i16", "i32", "i64", "i128", "isize", "u8", "u16", "u32", "u64",
		"u128", "usize", "f32", "f64", "bool", "char", "Option", "Result",
		"String", "str", "Vec", "HashMap",
	},
	KnownValues: []string{"Some", "None", "Ok", "Err"},
	Quotes:      `"`,
	Lifetimes:   true,
	LineComment: "//",
}

var Go = Language{
	Name: "Go",
	Keywords: []string{
		"break", "case", "chan", "const", "continue", "default", "defer", "else",
		"fallthrough", "for", "func", "go", "goto", "if", "import", "interface",
		"map", "package", "range", "return", "select", "struct", "switch",
		"type", "var",
	},
	Types: []string{
		"any", "bool", "byte", "comparable", "complex64", "complex128", "error",
		"float32", "float64", "int", "int8", "int16", "int32", "int64", "rune",
		"string", "uint", "uint8", "uint16", "uint32", "uint64", "uintptr",
	},
	KnownValues: []string{"true", "false", "nil", "iota"},
	Quotes:      "\"`",
	LineComment: "//",
}

// WordHighlighter classifies word-boundary tokens against a Language.
type WordHighlighter struct {
	lang        Language
	keywords    map[string]struct{}
	types       map[string]struct{}
	knownValues map[string]struct{}
}

func NewWordHighlighter(lang Language) *WordHighlighter {
	return &WordHighlighter{
		lang:        lang,
		keywords:    toSet(lang.Keywords),
		types:       toSet(lang.Types),
		knownValues: toSet(lang.KnownValues),
	}
}

func toSet(words []string) map[string]struct{} {
	out := make(map[string]struct{}, len(words))
	for _, w := range words {
		out[w] = struct{}{}
	}
	return out
}

func (h *WordHighlighter) HighlightLine(_ int, line buffer.Line) []annotated.Annotation {
	text := line.String()
	var out []annotated.Annotation
	add := func(cat annotated.Category, start, end int) {
		out = append(out, annotated.Annotation{Category: cat, Start: start, End: end})
	}

	pos := 0
	for _, w := range grapheme.Words(text) {
		if w.Start < pos {
			continue
		}
		end := w.Start + len(w.Text)

		if h.lang.LineComment != "" && strings.HasPrefix(text[w.Start:], h.lang.LineComment) {
			add(annotated.Comment, w.Start, len(text))
			break
		}
		if len(w.Text) == 1 && strings.Contains(h.lang.Quotes, w.Text) {
			if q := closingQuote(text, w.Start+1, w.Text[0]); q >= 0 {
				add(annotated.StringLiteral, w.Start, q+1)
				pos = q + 1
			}
			continue
		}
		if w.Text == "'" {
			if n := charLiteralLen(text[w.Start:]); n > 0 {
				add(annotated.Char, w.Start, w.Start+n)
				pos = w.Start + n
				continue
			}
			if h.lang.Lifetimes {
				if n := identLen(text[end:]); n > 0 {
					add(annotated.Lifetime, w.Start, end+n)
					pos = end + n
				}
			}
			continue
		}

		switch {
		case isNumber(w.Text):
			add(annotated.Number, w.Start, end)
		case h.has(h.keywords, w.Text):
			add(annotated.Keyword, w.Start, end)
		case h.has(h.types, w.Text):
			add(annotated.Type, w.Start, end)
		case h.has(h.knownValues, w.Text):
			add(annotated.KnownValue, w.Start, end)
		}
	}
	return out
}

func (h *WordHighlighter) has(set map[string]struct{}, word string) bool {
	_, ok := set[word]
	return ok
}

// closingQuote returns the byte index of the first unescaped quote at or after
// from, or -1.
func closingQuote(text string, from int, quote byte) int {
	for i := from; i < len(text); i++ {
		switch text[i] {
		case '\\':
			if quote != '`' {
				i++
			}
		case quote:
			return i
		}
	}
	return -1
}

// charLiteralLen measures a character literal at the start of s: 'x', '\n',
// '\'' or '\u{1F600}'. It returns 0 when s does not start with one.
func charLiteralLen(s string) int {
	if len(s) < 3 || s[0] != '\'' {
		return 0
	}
	if s[1] == '\\' {
		// The byte after the backslash never closes the literal.
		if i := strings.IndexByte(s[3:], '\''); i >= 0 {
			return 3 + i + 1
		}
		return 0
	}
	body := grapheme.Split(s[1:])
	if len(body) < 2 || body[1] != "'" || body[0] == "'" {
		return 0
	}
	return 1 + len(body[0]) + 1
}

func identLen(s string) int {
	n := 0
	for n < len(s) {
		r, size := utf8.DecodeRuneInString(s[n:])
		if r == '_' || unicode.IsLetter(r) || (n > 0 && unicode.IsDigit(r)) {
			n += size
			continue
		}
		break
	}
	return n
}

// isNumber accepts decimal literals with '_' grouping, one '.', one
// exponent, and 0x/0o/0b integer literals.
func isNumber(word string) bool {
	if word == "" || word[0] < '0' || word[0] > '9' {
		return false
	}
	if len(word) >= 3 && word[0] == '0' {
		if base := radix(word[1]); base > 0 {
			for _, c := range word[2:] {
				if !isDigitIn(c, base) {
					return false
				}
			}
			return true
		}
	}

	seenDot, seenExp := false, false
	prevDigit := true
	for _, c := range word[1:] {
		switch {
		case c >= '0' && c <= '9':
			prevDigit = true
		case c == '_':
			if !prevDigit {
				return false
			}
			prevDigit = false
		case c == '.':
			if seenDot || seenExp || !prevDigit {
				return false
			}
			seenDot = true
			prevDigit = false
		case c == 'e' || c == 'E':
			if seenExp || !prevDigit {
				return false
			}
			seenExp = true
			prevDigit = false
		default:
			return false
		}
	}
	return prevDigit
}

func radix(c byte) int {
	switch c {
	case 'x', 'X':
		return 16
	case 'o', 'O':
		return 8
	case 'b', 'B':
		return 2
	}
	return 0
}

func isDigitIn(c rune, base int) bool {
	switch base {
	case 2:
		return c == '0' || c == '1'
	case 8:
		return c >= '0' && c <= '7'
	default:
		return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
	}
}
