package tag

var defaults = []struct{ id, label, hint string }{
	{"task", "Task", "What should the model do?"},
	{"reference", "Reference", "Relevant context, sources, or links."},
	{"example", "Example", "Show the desired style or output."},
	{"criteria", "Criteria", "Rules or quality checks."},
	{"constraints", "Constraints", "Limits or things to avoid."},
	{"output", "Output", "Required output format."},
	{"details", "Details", "Extra specifics or background."},
	{"issue", "Issue", "Problem statement or bug report."},
	{"comment", "Comment", "Notes, observations, or side remarks."},
	{"important-note", "Important note", "Critical details or warnings."},
}

// Defaults returns a fresh copy of the built-in tag set.
func Defaults() Registry {
	out := make(Registry, 0, len(defaults))
	for _, d := range defaults {
		m := DeriveMarkers(d.label)
		out = append(out, Definition{
			ID:       d.id,
			Label:    d.label,
			OpenTag:  m.OpenTag,
			CloseTag: m.CloseTag,
			Hint:     d.hint,
		})
	}
	return out
}
