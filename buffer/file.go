package buffer

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoPath is returned by Save when the buffer has no file to write to.
var ErrNoPath = errors.New("buffer: no file path")

const noName = "[No Name]"

// FileInfo identifies the file backing a buffer. The zero value has no path.
type FileInfo struct {
	path string
}

func NewFileInfo(path string) FileInfo { return FileInfo{path: path} }

func (f FileInfo) Path() string { return f.path }
func (f FileInfo) HasPath() bool { return f.path != "" }

// Name is the base name of the path, or "[No Name]".
func (f FileInfo) Name() string {
	if f.path == "" {
		return noName
	}
	return filepath.Base(f.path)
}

func (f FileInfo) String() string { return f.Name() }

// FileSystem is the file I/O the buffer depends on.
type FileSystem interface {
	ReadFile(path string) (string, error)
	// WriteLines creates or truncates path and writes each line followed by
	// a newline.
	WriteLines(path string, lines []string) error
}

// OSFileSystem reads and writes the local disk.
type OSFileSystem struct{}

func (OSFileSystem) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (OSFileSystem) WriteLines(path string, lines []string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := w.WriteString(line); err != nil {
			return err
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return w.Flush()
}
