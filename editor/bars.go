package editor

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/quire/buffer"
)

// commandBar is the one-line prompt used by search and save-as.
type commandBar struct {
	prompt string
	value  buffer.Line
}

func newCommandBar(prompt string) commandBar {
	return commandBar{prompt: prompt}
}

func (c commandBar) Value() string { return c.value.String() }

func (c *commandBar) handleEdit(cmd Command) {
	switch cmd.Kind {
	case CommandInsert:
		c.value.AppendRune(cmd.Rune)
	case CommandBackspace:
		c.value.DeleteLast()
	}
}

// render returns the prompt and as much of the end of the value as fits in
// width, or "" when even the prompt does not fit.
func (c commandBar) render(width int) string {
	promptWidth := runewidth.StringWidth(c.prompt)
	area := max(width-promptWidth, 0)
	end := c.value.Width()
	start := max(end-area, 0)
	out := c.prompt + c.value.VisibleGraphemes(start, end)
	if runewidth.StringWidth(out) > width {
		return ""
	}
	return out
}

// caretCol is the caret column: just after the value, limited to width.
func (c commandBar) caretCol(width int) int {
	return min(runewidth.StringWidth(c.prompt)+c.value.Width(), width)
}

// messageBar holds the latest message and when it was set.
type messageBar struct {
	text string
	at   time.Time
}

func (m *messageBar) set(text string, now time.Time) {
	m.text = text
	m.at = now
}

func (m messageBar) current(now time.Time, ttl time.Duration) string {
	if m.text == "" || now.Sub(m.at) > ttl {
		return ""
	}
	return m.text
}

// DocumentStatus is what the status bar shows.
type DocumentStatus struct {
	buffer.Status
	FileType string
}

func (s DocumentStatus) lineCount() string {
	return fmt.Sprintf("%d lines", s.TotalLines)
}

func (s DocumentStatus) modifiedIndicator() string {
	if s.Modified {
		return "(modified)"
	}
	return ""
}

func (s DocumentStatus) positionIndicator() string {
	return fmt.Sprintf("%d/%d", s.CurrentLineIndex+1, s.TotalLines)
}

// renderStatus lays out the status bar in width cells: file name, line
// count and modified flag on the left, file type and position on the right.
// It returns "" when the text does not fit.
func renderStatus(s DocumentStatus, width int) string {
	left := fmt.Sprintf("%s - %s %s", s.FileName, s.lineCount(), s.modifiedIndicator())
	right := fmt.Sprintf("%s | %s", s.FileType, s.positionIndicator())
	remainder := max(width-runewidth.StringWidth(left), 0)
	pad := max(remainder-runewidth.StringWidth(right), 0)
	out := left + strings.Repeat(" ", pad) + right
	if runewidth.StringWidth(out) > width {
		return ""
	}
	return out
}

// Status returns the status bar contents.
func (e *Editor) Status() DocumentStatus {
	return DocumentStatus{Status: e.view.Status(), FileType: e.view.FileType().Name}
}
