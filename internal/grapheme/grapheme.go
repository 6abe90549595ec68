package grapheme

import (
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Cluster is one grapheme cluster of a single-line string.
type Cluster struct {
	Text string
	// Start is the byte offset of the cluster in the segmented string.
	Start int
	// Width is the terminal cell width as reported by CellWidth.
	Width int
}

// Word is one UAX #29 word-boundary segment of a string.
type Word struct {
	Text  string
	Start int
}

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Clusters segments text and records each cluster's byte offset and width.
func Clusters(text string) []Cluster {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]Cluster, 0, len(text))
	for g.Next() {
		start, _ := g.Positions()
		s := g.Str()
		out = append(out, Cluster{Text: s, Start: start, Width: CellWidth(s)})
	}
	return out
}

// CellWidth returns the number of terminal cells cluster occupies.
// Control characters and lone combining marks report 0.
func CellWidth(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		fallback := uniseg.StringWidth(cluster)
		if fallback > w {
			w = fallback
		}
	}
	return w
}

// Words splits text on word boundaries. Runs of punctuation and whitespace
// come back as their own segments, so joining every Word.Text yields text.
func Words(text string) []Word {
	var out []Word
	state := -1
	rest := text
	off := 0
	for len(rest) > 0 {
		var w string
		w, rest, state = uniseg.FirstWordInString(rest, state)
		out = append(out, Word{Text: w, Start: off})
		off += len(w)
	}
	return out
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsControl reports whether cluster is exactly one control character.
func IsControl(cluster string) bool {
	n := 0
	ctl := false
	for _, r := range cluster {
		n++
		ctl = unicode.IsControl(r)
	}
	return n == 1 && ctl
}
