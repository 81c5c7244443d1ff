package insert

import (
	"strings"
	"unicode/utf8"

	"tagcomposer/tag"
)

// Selection is the caret or selected span of the editor.
type Selection struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Result is the buffer after an insertion and where the caret goes next.
type Result struct {
	Buffer string `json:"buffer"`
	Cursor int    `json:"cursor"`
}

// Clamp pulls both ends of sel into [0, length] and orders them.
func Clamp(sel Selection, length int) Selection {
	sel.Start = clampOffset(sel.Start, length)
	sel.End = clampOffset(sel.End, length)
	if sel.Start > sel.End {
		sel.Start, sel.End = sel.End, sel.Start
	}
	return sel
}

// End is a caret after the last rune of buffer.
func End(buffer string) Selection {
	n := utf8.RuneCountInString(buffer)
	return Selection{Start: n, End: n}
}

// Insert replaces the selected span of buffer with a block for d:
//
//	[\n]<OPEN>\n\n</CLOSE>\n
//
// The leading newline is added only when the text before the selection is
// non-empty and does not already end a line. The returned cursor sits on the
// blank line between the markers. The definition is used verbatim.
func Insert(buffer string, sel Selection, d tag.Definition) Result {
	sel = Clamp(sel, utf8.RuneCountInString(buffer))
	start := byteOffset(buffer, sel.Start)
	end := start + byteOffset(buffer[start:], sel.End-sel.Start)
	before := buffer[:start]
	after := buffer[end:]

	sep := ""
	if before != "" && !strings.HasSuffix(before, "\n") {
		sep = "\n"
	}

	var b strings.Builder
	b.Grow(len(buffer) + len(sep) + len(d.OpenTag) + len(d.CloseTag) + 3)
	b.WriteString(before)
	b.WriteString(sep)
	b.WriteString(d.OpenTag)
	b.WriteString("\n")
	cursor := sel.Start + utf8.RuneCountInString(sep) + utf8.RuneCountInString(d.OpenTag) + 1
	b.WriteString("\n")
	b.WriteString(d.CloseTag)
	b.WriteString("\n")
	b.WriteString(after)

	return Result{Buffer: b.String(), Cursor: cursor}
}

// byteOffset returns the byte index of the n-th rune of s. Invalid bytes
// count as one rune each, matching utf8.RuneCountInString, and are kept as is.
func byteOffset(s string, n int) int {
	i := 0
	for ; n > 0 && i < len(s); n-- {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return i
}

func clampOffset(off, length int) int {
	if off < 0 {
		return 0
	}
	if off > length {
		return length
	}
	return off
}
