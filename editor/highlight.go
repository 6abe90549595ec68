package editor

import (
	"github.com/iw2rmb/quire/annotated"
	"github.com/iw2rmb/quire/buffer"
)

// annotations returns the pipeline's annotations for line lineIdx,
// highlighting it first if nothing is cached. Edits, searches and file type
// changes clear the cache.
func (v *View) annotations(lineIdx int, line buffer.Line) []annotated.Annotation {
	if anns, ok := v.pipeline.Lookup(lineIdx); ok {
		return anns
	}
	v.pipeline.Highlight(lineIdx, line)
	return v.pipeline.Annotations(lineIdx)
}
