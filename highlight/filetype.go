package highlight

import (
	"github.com/go-enry/go-enry/v2"
)

// TextType is the file type of anything without a known language.
const TextType = "Text"

// FileType names the language of a document, as detected by go-enry.
type FileType struct {
	Name string
}

func (f FileType) String() string { return f.Name }

// DetectFileType guesses the language from the file name and, when the
// extension is ambiguous, the content.
func DetectFileType(fileName string, content []byte) FileType {
	if fileName == "" {
		return FileType{Name: TextType}
	}
	lang := enry.GetLanguage(fileName, content)
	if lang == "" {
		return FileType{Name: TextType}
	}
	return FileType{Name: lang}
}

// Highlighter returns the syntax highlighter for f: a built-in word set for
// Rust and Go, a chroma lexer for other known languages, nil for plain text.
func (f FileType) Highlighter() Highlighter {
	switch f.Name {
	case Rust.Name:
		return NewWordHighlighter(Rust)
	case Go.Name:
		return NewWordHighlighter(Go)
	case TextType, "":
		return nil
	}
	if h := NewChromaHighlighter(f.Name); h != nil {
		return h
	}
	return nil
}
