// Package buffer implements the document model for quire: grapheme-segmented
// lines, cursor-relative edits, cyclic search, and file load/save.
//
// Locations are 0-based (LineIndex, GraphemeIndex) pairs. Byte offsets and
// display columns are derived per line and never stored across edits.
package buffer
