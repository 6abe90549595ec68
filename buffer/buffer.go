package buffer

import (
	"fmt"
	"strings"
)

type Options struct {
	FS FileSystem // default: OSFileSystem
}

// Buffer is the document: its lines, the file they belong to, and whether
// they changed since the last load or save.
type Buffer struct {
	lines []Line
	file  FileInfo
	dirty bool

	fs FileSystem
}

// New returns a clean, unnamed buffer holding text.
func New(text string, opt Options) *Buffer {
	if opt.FS == nil {
		opt.FS = OSFileSystem{}
	}
	return &Buffer{lines: splitLines(text), fs: opt.FS}
}

// Load replaces the contents with the file at path. On error the buffer is
// left untouched.
func (b *Buffer) Load(path string) error {
	text, err := b.fs.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	b.lines = splitLines(text)
	b.file = NewFileInfo(path)
	b.dirty = false
	return nil
}

// Save writes the buffer to its file. It returns ErrNoPath when there is
// none; use SaveAs then.
func (b *Buffer) Save() error {
	if !b.file.HasPath() {
		return ErrNoPath
	}
	if err := b.write(b.file.Path()); err != nil {
		return err
	}
	b.dirty = false
	return nil
}

// SaveAs writes the buffer to path and adopts it as the buffer's file.
func (b *Buffer) SaveAs(path string) error {
	if path == "" {
		return ErrNoPath
	}
	if err := b.write(path); err != nil {
		return err
	}
	b.file = NewFileInfo(path)
	b.dirty = false
	return nil
}

func (b *Buffer) write(path string) error {
	lines := make([]string, len(b.lines))
	for i, l := range b.lines {
		lines[i] = l.String()
	}
	if err := b.fs.WriteLines(path, lines); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func (b *Buffer) Height() int { return len(b.lines) }
func (b *Buffer) IsEmpty() bool { return len(b.lines) == 0 }
func (b *Buffer) IsDirty() bool { return b.dirty }
func (b *Buffer) FileInfo() FileInfo { return b.file }

// Line returns line i, or an empty Line past the end.
func (b *Buffer) Line(i int) Line {
	if i < 0 || i >= len(b.lines) {
		return Line{}
	}
	return b.lines[i]
}

// Status summarizes the buffer for a cursor on line current.
func (b *Buffer) Status(current int) Status {
	return Status{
		TotalLines:       len(b.lines),
		CurrentLineIndex: current,
		Modified:         b.dirty,
		FileName:         b.file.Name(),
	}
}

// Text joins all lines with '\n'.
func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, l := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(l.String())
	}
	return sb.String()
}

// splitLines breaks text on '\n', dropping a trailing '\r' from each line.
// A final newline does not start another line, and "" has no lines.
func splitLines(text string) []Line {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	parts := strings.Split(text, "\n")
	out := make([]Line, len(parts))
	for i, p := range parts {
		out[i] = NewLine(strings.TrimSuffix(p, "\r"))
	}
	return out
}
