package tag

// Draft is the transient state of an add or edit form. Markers follow the
// label: every SetLabel re-derives them, so they are never typed freely.
type Draft struct {
	Label    string `json:"label"`
	OpenTag  string `json:"openTag"`
	CloseTag string `json:"closeTag"`
	Hint     string `json:"hint"`
}

// DraftOf seeds an edit form from an existing definition.
func DraftOf(d Definition) Draft {
	return Draft{Label: d.Label, OpenTag: d.OpenTag, CloseTag: d.CloseTag, Hint: d.Hint}
}

// SetLabel stores label and refreshes both markers from it.
func (d *Draft) SetLabel(label string) {
	m := DeriveMarkers(label)
	d.Label = label
	d.OpenTag = m.OpenTag
	d.CloseTag = m.CloseTag
}

// SetHint stores hint verbatim; trimming happens on submit.
func (d *Draft) SetHint(hint string) {
	d.Hint = hint
}

// Clear empties every field.
func (d *Draft) Clear() {
	*d = Draft{}
}
