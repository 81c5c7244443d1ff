package tag

import "errors"

// Definition is a named pair of markers used to bracket a section of the
// composed text.
type Definition struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	OpenTag  string `json:"openTag"`
	CloseTag string `json:"closeTag"`
	Hint     string `json:"hint,omitempty"`
}

// Usable reports whether d can be inserted into a buffer.
func (d Definition) Usable() bool {
	return d.Label != "" && d.OpenTag != "" && d.CloseTag != ""
}

// Markers is the open/close pair derived from a label.
type Markers struct {
	OpenTag  string `json:"openTag"`
	CloseTag string `json:"closeTag"`
}

var (
	ErrValidation = errors.New("add label, open tag, and close tag")
	ErrNotFound   = errors.New("tag not found")
)
