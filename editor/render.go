package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/quire/internal/grapheme"
)

// RenderFrame draws f as a string of styled lines. The caret cell is drawn
// with st.Cursor; past the end of its row it is a styled space.
func RenderFrame(f Frame, st Style) string {
	if f.Size.Width == 0 || f.Size.Height == 0 {
		return ""
	}
	lines := make([]string, f.Size.Height)
	for i, row := range f.Rows {
		if i >= len(lines) {
			break
		}
		caretCol := -1
		if i == f.Caret.Row {
			caretCol = f.Caret.Col
		}
		lines[i] = renderRow(row, st, caretCol)
	}
	return strings.Join(lines, "\n")
}

func renderRow(row Row, st Style, caretCol int) string {
	var sb strings.Builder
	col := 0
	if row.Content != nil {
		for part := range row.Content.All() {
			base := st.For(row.Kind, part.Category)
			if caretCol < col || caretCol >= col+cellWidth(part.Text) {
				sb.WriteString(base.Render(part.Text))
				col += cellWidth(part.Text)
				continue
			}
			// The caret falls inside this part: split it around the caret cell.
			for _, c := range grapheme.Clusters(part.Text) {
				w := max(c.Width, 1)
				if col == caretCol {
					sb.WriteString(st.Cursor.Inherit(base).Render(c.Text))
				} else {
					sb.WriteString(base.Render(c.Text))
				}
				col += w
			}
		}
	}
	if caretCol >= col {
		sb.WriteString(strings.Repeat(" ", caretCol-col))
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

func cellWidth(s string) int {
	return lipgloss.Width(s)
}
