package tag

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DeriveMarkers builds the conventional upper-case bracket pair for label.
// "My Task!" becomes <MY_TASK> / </MY_TASK>, and "ß" upper-cases to "SS". A
// label with no letters or digits yields two empty markers, which Add and
// Update reject.
func DeriveMarkers(label string) Markers {
	core := slugify(cases.Upper(language.Und).String(strings.TrimSpace(label)), isUpperAlnum, '_')
	if core == "" {
		return Markers{}
	}
	return Markers{OpenTag: "<" + core + ">", CloseTag: "</" + core + ">"}
}

// baseID is the lower-case hyphenated slug of label, or a time-based id
// when the label has nothing to slug.
func baseID(label string) string {
	if id := slugify(cases.Lower(language.Und).String(strings.TrimSpace(label)), isLowerAlnum, '-'); id != "" {
		return id
	}
	if v7, err := uuid.NewV7(); err == nil {
		return "tag-" + v7.String()
	}
	return "tag-" + strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// uniqueID appends -2, -3, ... to base until it is not in taken.
func uniqueID(base string, taken map[string]bool) string {
	candidate := base
	for n := 2; taken[candidate]; n++ {
		candidate = base + "-" + strconv.Itoa(n)
	}
	return candidate
}

// slugify collapses every run of rejected runes into a single sep and drops
// separators at either end.
func slugify(s string, keep func(rune) bool, sep rune) string {
	var b strings.Builder
	gap := false
	for _, r := range s {
		if !keep(r) {
			gap = true
			continue
		}
		if gap && b.Len() > 0 {
			b.WriteRune(sep)
		}
		gap = false
		b.WriteRune(r)
	}
	return b.String()
}

func isUpperAlnum(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func isLowerAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}
