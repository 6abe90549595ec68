package editor

import "github.com/iw2rmb/quire/buffer"

// SearchInfo is the state of an active search: the query and where to go
// back to if the search is dismissed.
type SearchInfo struct {
	Query        string
	PrevLocation buffer.Location
	PrevScroll   Position
}

// Searching reports whether a search is active.
func (v *View) Searching() bool { return v.search != nil }

// SearchQuery returns the active query, or "".
func (v *View) SearchQuery() string {
	if v.search == nil {
		return ""
	}
	return v.search.Query
}

// EnterSearch starts a search, remembering the caret and scroll offset.
func (v *View) EnterSearch() {
	v.search = &SearchInfo{PrevLocation: v.loc, PrevScroll: v.scroll}
}

// ExitSearch ends the search and keeps the caret where it is.
func (v *View) ExitSearch() {
	v.search = nil
	v.pipeline.SetSearch("", nil)
	v.needsRedraw = true
}

// DismissSearch ends the search and restores the caret and scroll offset
// saved by EnterSearch.
func (v *View) DismissSearch() {
	if v.search != nil {
		v.loc = v.search.PrevLocation
		v.scroll = v.search.PrevScroll
		v.scrollLocationIntoView()
	}
	v.ExitSearch()
}

// Search sets the query and jumps to the first match at or after the caret.
func (v *View) Search(query string) {
	if v.search == nil {
		v.EnterSearch()
	}
	v.search.Query = query
	v.searchFrom(v.loc, true)
}

// SearchNext jumps to the next match, starting one grapheme right of the
// caret so the current match is skipped.
func (v *View) SearchNext() {
	from := v.loc
	if v.SearchQuery() != "" {
		from.GraphemeIndex++
	}
	v.searchFrom(from, true)
}

// SearchPrev jumps to the closest match before the caret.
func (v *View) SearchPrev() {
	v.searchFrom(v.loc, false)
}

func (v *View) searchFrom(from buffer.Location, forward bool) {
	if v.search == nil {
		return
	}
	q := v.search.Query
	if q != "" {
		var found buffer.Location
		var ok bool
		if forward {
			found, ok = v.buf.SearchForward(q, from)
		} else {
			found, ok = v.buf.SearchBackward(q, from)
		}
		if ok {
			v.loc = found
			v.scrollLocationIntoView()
		}
	}
	loc := v.loc
	v.pipeline.SetSearch(q, &loc)
	v.needsRedraw = true
}
