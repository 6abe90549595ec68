package editor

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/quire/annotated"
)

func testStyle(profile termenv.Profile) Style {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(profile)
	return DefaultStyleFor(r)
}

func TestRenderFrame_PlainText(t *testing.T) {
	e, _ := newTestEditor(t, Config{}, Size{Width: 10, Height: 4})
	typeText(e, "ab")

	got := RenderFrame(e.Frame(), testStyle(termenv.Ascii))
	want := strings.Join([]string{
		"ab ",
		"~",
		strings.Repeat(" ", 10),
		"HELP: Ctrl",
	}, "\n")
	if got != want {
		t.Fatalf("frame:\n got: %q\nwant: %q", got, want)
	}
}

func TestRenderFrame_EmptySize(t *testing.T) {
	e, _ := newTestEditor(t, Config{}, Size{})
	if got := RenderFrame(e.Frame(), testStyle(termenv.Ascii)); got != "" {
		t.Fatalf("frame=%q, want empty", got)
	}
}

func TestRenderFrame_ColorsCategories(t *testing.T) {
	s := annotated.New("let x")
	s.Add(annotated.Keyword, 0, 3)
	f := Frame{
		Size:  Size{Width: 10, Height: 1},
		Rows:  []Row{{Kind: RowText, Content: s}},
		Caret: Position{Row: 0, Col: 9},
	}

	got := RenderFrame(f, testStyle(termenv.TrueColor))
	if !strings.Contains(got, "38;2;100;149;237") {
		t.Fatalf("keyword color missing: %q", got)
	}
	if !strings.Contains(got, " x") {
		t.Fatalf("plain text missing: %q", got)
	}
}

func TestRenderFrame_CaretInsideText(t *testing.T) {
	f := Frame{
		Size:  Size{Width: 10, Height: 1},
		Rows:  []Row{{Kind: RowText, Content: annotated.New("abc")}},
		Caret: Position{Row: 0, Col: 1},
	}
	got := RenderFrame(f, testStyle(termenv.TrueColor))
	if !strings.Contains(got, "\x1b[7mb") {
		t.Fatalf("caret not reversed: %q", got)
	}
	if !strings.HasPrefix(got, "a") || !strings.HasSuffix(got, "c") {
		t.Fatalf("text around caret: %q", got)
	}
}

func TestStyle_For(t *testing.T) {
	st := testStyle(termenv.TrueColor)

	if !st.For(RowStatus, annotated.Keyword).GetReverse() {
		t.Fatalf("status row not reversed")
	}
	if got := st.For(RowText, annotated.Keyword).GetForeground(); got != lipgloss.Color("#6495ed") {
		t.Fatalf("keyword fg=%v", got)
	}
	if _, ok := st.For(RowMessage, annotated.Keyword).GetForeground().(lipgloss.NoColor); !ok {
		t.Fatalf("message row picked up a category color")
	}
}

func TestPalette(t *testing.T) {
	c, ok := Palette(annotated.SelectedMatch)
	if !ok || c.Bg != "#fffb00" {
		t.Fatalf("selected match colors=%v ok=%v", c, ok)
	}
	if _, ok := Palette(annotated.None); ok {
		t.Fatalf("none has colors")
	}
}
