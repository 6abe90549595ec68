package buffer

import "testing"

func TestBuffer_InsertRune(t *testing.T) {
	b := New("ac", Options{FS: newMemFS(nil)})
	b.InsertRune('b', Location{LineIndex: 0, GraphemeIndex: 1})
	if b.Text() != "abc" || !b.IsDirty() {
		t.Fatalf("text=%q dirty=%v", b.Text(), b.IsDirty())
	}

	b.InsertRune('z', Location{LineIndex: 1})
	if b.Height() != 2 || b.Line(1).String() != "z" {
		t.Fatalf("text=%q", b.Text())
	}
}

func TestBuffer_InsertRune_EmptyBuffer(t *testing.T) {
	b := New("", Options{FS: newMemFS(nil)})
	b.InsertRune('界', Location{})
	if b.Height() != 1 || b.Line(0).Width() != 2 {
		t.Fatalf("height=%d width=%d", b.Height(), b.Line(0).Width())
	}
}

func TestBuffer_InsertNewline(t *testing.T) {
	b := New("hello world", Options{FS: newMemFS(nil)})
	b.InsertNewline(Location{LineIndex: 0, GraphemeIndex: 5})
	if b.Text() != "hello\n world" {
		t.Fatalf("text=%q", b.Text())
	}

	b.InsertNewline(Location{LineIndex: 2})
	if b.Height() != 3 || b.Line(2).String() != "" {
		t.Fatalf("text=%q", b.Text())
	}

	b.InsertNewline(Location{LineIndex: 0})
	if b.Text() != "\nhello\n world\n" {
		t.Fatalf("text=%q", b.Text())
	}
}

func TestBuffer_NewlineThenDeleteRestores(t *testing.T) {
	b := New("one\ntwo", Options{FS: newMemFS(nil)})
	at := Location{LineIndex: 1, GraphemeIndex: 3}
	b.InsertNewline(at)
	if b.Height() != 3 {
		t.Fatalf("height=%d, want 3", b.Height())
	}
	b.Delete(at)
	if b.Height() != 2 || b.Text() != "one\ntwo" {
		t.Fatalf("text=%q", b.Text())
	}

	mid := Location{LineIndex: 0, GraphemeIndex: 1}
	b.InsertNewline(mid)
	b.Delete(mid)
	if b.Text() != "one\ntwo" {
		t.Fatalf("text=%q", b.Text())
	}
}

func TestBuffer_Delete(t *testing.T) {
	b := New("ab\ncd", Options{FS: newMemFS(nil)})

	b.Delete(Location{LineIndex: 0, GraphemeIndex: 0})
	if b.Text() != "b\ncd" {
		t.Fatalf("text=%q", b.Text())
	}

	b.Delete(Location{LineIndex: 0, GraphemeIndex: 1})
	if b.Text() != "bcd" || b.Height() != 1 {
		t.Fatalf("join: text=%q", b.Text())
	}
}

func TestBuffer_Delete_EndOfBufferIsNoop(t *testing.T) {
	b := New("ab", Options{FS: newMemFS(nil)})
	b.Delete(Location{LineIndex: 0, GraphemeIndex: 2})
	b.Delete(Location{LineIndex: 1, GraphemeIndex: 0})
	if b.Text() != "ab" {
		t.Fatalf("text=%q", b.Text())
	}
	if b.IsDirty() {
		t.Fatalf("no-op delete must not mark dirty")
	}
}
