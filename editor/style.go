package editor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/quire/annotated"
)

// Colors is the foreground and optional background of a category, as
// "#rrggbb" strings.
type Colors struct {
	Fg string
	Bg string
}

var palette = map[annotated.Category]Colors{
	annotated.Match:         {Fg: "#ffffff", Bg: "#646464"},
	annotated.SelectedMatch: {Fg: "#ffffff", Bg: "#fffb00"},
	annotated.Number:        {Fg: "#ff6347"},
	annotated.Keyword:       {Fg: "#6495ed"},
	annotated.Type:          {Fg: "#ba55d3"},
	annotated.KnownValue:    {Fg: "#ffd700"},
	annotated.Char:          {Fg: "#00bfff"},
	annotated.Lifetime:      {Fg: "#48d1cc"},
	annotated.StringLiteral: {Fg: "#d33682"},
	annotated.Comment:       {Fg: "#228b22"},
}

// Palette returns the colors of cat; ok is false for unstyled text.
func Palette(cat annotated.Category) (Colors, bool) {
	c, ok := palette[cat]
	return c, ok
}

// Style controls the editor's rendering.
type Style struct {
	Text   lipgloss.Style
	Status lipgloss.Style
	Cursor lipgloss.Style

	Categories map[annotated.Category]lipgloss.Style
}

func DefaultStyle() Style {
	return DefaultStyleFor(lipgloss.DefaultRenderer())
}

// DefaultStyleFor builds the default style on r.
func DefaultStyleFor(r *lipgloss.Renderer) Style {
	cats := make(map[annotated.Category]lipgloss.Style, len(palette))
	for cat, c := range palette {
		st := r.NewStyle().Foreground(lipgloss.Color(c.Fg))
		if c.Bg != "" {
			st = st.Background(lipgloss.Color(c.Bg))
		}
		cats[cat] = st
	}
	return Style{
		Text:       r.NewStyle(),
		Status:     r.NewStyle().Reverse(true),
		Cursor:     r.NewStyle().Reverse(true),
		Categories: cats,
	}
}

// For returns the style of a row part.
func (s Style) For(kind RowKind, cat annotated.Category) lipgloss.Style {
	if kind == RowStatus {
		return s.Status
	}
	if st, ok := s.Categories[cat]; ok && kind == RowText {
		return st.Inherit(s.Text)
	}
	return s.Text
}
