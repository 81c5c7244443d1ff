package insert_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"tagcomposer/insert"
	"tagcomposer/tag"
)

var taskTag = tag.Definition{ID: "task", Label: "Task", OpenTag: "<TASK>", CloseTag: "</TASK>"}

func TestInsertAfterText(t *testing.T) {
	got := insert.Insert("Hello", insert.Selection{Start: 5, End: 5}, taskTag)
	if got.Buffer != "Hello\n<TASK>\n\n</TASK>\n" {
		t.Fatalf("unexpected buffer %q", got.Buffer)
	}
	// The caret lands on the blank line: len("Hello\n<TASK>\n").
	if got.Cursor != 13 {
		t.Fatalf("expected cursor 13, got %d", got.Cursor)
	}
}

func TestInsertIntoEmpty(t *testing.T) {
	got := insert.Insert("", insert.Selection{}, taskTag)
	if got.Buffer != "<TASK>\n\n</TASK>\n" {
		t.Fatalf("unexpected buffer %q", got.Buffer)
	}
	if got.Cursor != 7 {
		t.Fatalf("expected cursor 7, got %d", got.Cursor)
	}
}

func TestInsertSeparator(t *testing.T) {
	cases := []struct {
		buffer string
		at     int
		sep    bool
	}{
		{"", 0, false},
		{"line\n", 5, false},
		{"line", 4, true},
		{"line\nmore", 7, true},
		{"abc", 0, false},
	}
	for _, c := range cases {
		got := insert.Insert(c.buffer, insert.Selection{Start: c.at, End: c.at}, taskTag)
		before := string([]rune(c.buffer)[:c.at])
		block := strings.TrimPrefix(got.Buffer, before)
		hasSep := strings.HasPrefix(block, "\n")
		if hasSep != c.sep {
			t.Fatalf("Insert(%q at %d): separator=%v, want %v (buffer %q)", c.buffer, c.at, hasSep, c.sep, got.Buffer)
		}
	}
}

func TestInsertReplacesSelection(t *testing.T) {
	got := insert.Insert("keep DROP tail", insert.Selection{Start: 5, End: 9}, taskTag)
	if got.Buffer != "keep \n<TASK>\n\n</TASK>\n tail" {
		t.Fatalf("unexpected buffer %q", got.Buffer)
	}
}

func TestInsertLengthAndCursorProperties(t *testing.T) {
	buffers := []string{"", "a", "Hello\nworld", "línea\n", "日本語のテキスト", "x\n\ny"}
	for _, b := range buffers {
		n := utf8.RuneCountInString(b)
		for s := 0; s <= n; s++ {
			for e := s; e <= n; e++ {
				got := insert.Insert(b, insert.Selection{Start: s, End: e}, taskTag)
				before := string([]rune(b)[:s])
				sep := 0
				if before != "" && !strings.HasSuffix(before, "\n") {
					sep = 1
				}
				wantLen := n - (e - s) + sep + len("<TASK>") + 2 + len("</TASK>") + 1
				gotLen := utf8.RuneCountInString(got.Buffer)
				if gotLen != wantLen {
					t.Fatalf("%q [%d,%d]: length %d, want %d", b, s, e, gotLen, wantLen)
				}
				if got.Cursor < 0 || got.Cursor > gotLen {
					t.Fatalf("%q [%d,%d]: cursor %d out of bounds", b, s, e, got.Cursor)
				}
				prefix := string([]rune(got.Buffer)[:got.Cursor])
				if !strings.HasSuffix(prefix, "<TASK>\n") {
					t.Fatalf("%q [%d,%d]: cursor %d not after open marker line", b, s, e, got.Cursor)
				}
			}
		}
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		in   insert.Selection
		n    int
		want insert.Selection
	}{
		{insert.Selection{Start: -3, End: 2}, 5, insert.Selection{Start: 0, End: 2}},
		{insert.Selection{Start: 4, End: 99}, 5, insert.Selection{Start: 4, End: 5}},
		{insert.Selection{Start: 4, End: 1}, 5, insert.Selection{Start: 1, End: 4}},
	}
	for _, c := range cases {
		if got := insert.Clamp(c.in, c.n); got != c.want {
			t.Fatalf("Clamp(%+v, %d) = %+v, want %+v", c.in, c.n, got, c.want)
		}
	}
	got := insert.Insert("Hi", insert.Selection{Start: 10, End: 40}, taskTag)
	if got.Buffer != "Hi\n<TASK>\n\n</TASK>\n" {
		t.Fatalf("out-of-range selection not clamped: %q", got.Buffer)
	}
}

func TestEnd(t *testing.T) {
	if got := insert.End("héllo"); got != (insert.Selection{Start: 5, End: 5}) {
		t.Fatalf("unexpected end selection %+v", got)
	}
}

func TestInsertKeepsInvalidUTF8(t *testing.T) {
	buf := "a\xffb\xfe"
	got := insert.Insert(buf, insert.End(buf), taskTag)
	if !strings.HasPrefix(got.Buffer, buf) {
		t.Fatalf("bytes before the caret were rewritten: %q", got.Buffer)
	}
	if got.Cursor != 4+1+len("<TASK>")+1 {
		t.Fatalf("unexpected cursor %d", got.Cursor)
	}

	got = insert.Insert(buf, insert.Selection{Start: 1, End: 2}, taskTag)
	if got.Buffer != "a\n<TASK>\n\n</TASK>\nb\xfe" {
		t.Fatalf("unexpected buffer %q", got.Buffer)
	}
}
