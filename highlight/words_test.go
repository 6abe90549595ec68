package highlight

import (
	"testing"

	"github.com/iw2rmb/quire/annotated"
	"github.com/iw2rmb/quire/buffer"
)

func TestWordHighlighter_RustLetAndNumber(t *testing.T) {
	h := NewWordHighlighter(Rust)
	anns := h.HighlightLine(1, buffer.NewLine("    let x = 1;"))

	if a, ok := findAnn(anns, 4, 7); !ok || a.Category != annotated.Keyword {
		t.Fatalf("let: %v", anns)
	}
	if a, ok := findAnn(anns, 12, 13); !ok || a.Category != annotated.Number {
		t.Fatalf("1: %v", anns)
	}
	if len(anns) != 2 {
		t.Fatalf("annotations=%v, want 2", anns)
	}
}

func TestWordHighlighter_Categories(t *testing.T) {
	cases := []struct {
		name  string
		lang  Language
		text  string
		start int
		end   int
		want  annotated.Category
	}{
		{name: "type", lang: Rust, text: "let v: Vec<u8>", start: 7, end: 10, want: annotated.Type},
		{name: "known value", lang: Rust, text: "x = None", start: 4, end: 8, want: annotated.KnownValue},
		{name: "rust bool is a keyword", lang: Rust, text: "true", start: 0, end: 4, want: annotated.Keyword},
		{name: "char", lang: Rust, text: "c = 'a';", start: 4, end: 7, want: annotated.Char},
		{name: "escaped char", lang: Rust, text: `c = '\n';`, start: 4, end: 8, want: annotated.Char},
		{name: "lifetime", lang: Rust, text: "&'a str", start: 1, end: 3, want: annotated.Lifetime},
		{name: "string", lang: Rust, text: `s = "a \"b\" c";`, start: 4, end: 15, want: annotated.StringLiteral},
		{name: "comment", lang: Rust, text: "x // done", start: 2, end: 9, want: annotated.Comment},
		{name: "go nil", lang: Go, text: "err != nil", start: 7, end: 10, want: annotated.KnownValue},
		{name: "go func", lang: Go, text: "func main()", start: 0, end: 4, want: annotated.Keyword},
		{name: "go raw string", lang: Go, text: "s := `x`", start: 5, end: 8, want: annotated.StringLiteral},
		{name: "hex", lang: Go, text: "n := 0xFF", start: 5, end: 9, want: annotated.Number},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			anns := NewWordHighlighter(tc.lang).HighlightLine(0, buffer.NewLine(tc.text))
			a, ok := findAnn(anns, tc.start, tc.end)
			if !ok || a.Category != tc.want {
				t.Fatalf("annotations=%v, want %v at [%d,%d)", anns, tc.want, tc.start, tc.end)
			}
		})
	}
}

func TestWordHighlighter_NothingInsideStringsOrComments(t *testing.T) {
	anns := NewWordHighlighter(Rust).HighlightLine(0, buffer.NewLine(`"let 1" // fn 2`))
	if len(anns) != 2 {
		t.Fatalf("annotations=%v, want string and comment only", anns)
	}
	if anns[0].Category != annotated.StringLiteral || anns[1].Category != annotated.Comment {
		t.Fatalf("annotations=%v", anns)
	}
}

func TestIsNumber(t *testing.T) {
	cases := map[string]bool{
		"0":       true,
		"42":      true,
		"1_000":   true,
		"3.14":    true,
		"1e10":    true,
		"2.5E3":   true,
		"0x1F":    true,
		"0o17":    true,
		"0b1010":  true,
		"0b102":   false,
		"0x":      false,
		"1__0":    false,
		"1.2.3":   false,
		"1e5e5":   false,
		"1.":      false,
		"1_":      false,
		"abc":     false,
		"":        false,
		"1e5.0":   false,
		"12ab":    false,
		"0xZZ":    false,
		"9_9.9_9": true,
	}
	for in, want := range cases {
		if got := isNumber(in); got != want {
			t.Fatalf("isNumber(%q)=%v, want %v", in, got, want)
		}
	}
}
