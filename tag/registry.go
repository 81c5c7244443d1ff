package tag

import (
	"fmt"
	"strings"
)

// Registry is an ordered list of definitions. Order drives display and
// help selection. Every method leaves the receiver untouched and returns a
// fresh copy.
type Registry []Definition

// Clone returns a copy that shares no backing array with r.
func (r Registry) Clone() Registry {
	out := make(Registry, len(r))
	copy(out, r)
	return out
}

// Find returns the definition with the given id.
func (r Registry) Find(id string) (Definition, bool) {
	for _, d := range r {
		if d.ID == id {
			return d, true
		}
	}
	return Definition{}, false
}

// Add validates the fields and appends a new definition with an id derived
// from the label.
func (r Registry) Add(label, openTag, closeTag, hint string) (Registry, error) {
	d, err := normalize(label, openTag, closeTag, hint)
	if err != nil {
		return nil, err
	}

	taken := make(map[string]bool, len(r))
	for _, existing := range r {
		taken[existing.ID] = true
	}
	d.ID = uniqueID(baseID(d.Label), taken)

	out := make(Registry, 0, len(r)+1)
	out = append(out, r...)
	return append(out, d), nil
}

// Update replaces the fields of the definition with id in place. The id and
// position never change.
func (r Registry) Update(id, label, openTag, closeTag, hint string) (Registry, error) {
	d, err := normalize(label, openTag, closeTag, hint)
	if err != nil {
		return nil, err
	}

	out := r.Clone()
	for i := range out {
		if out[i].ID == id {
			d.ID = id
			out[i] = d
			return out, nil
		}
	}
	return nil, fmt.Errorf("update %q: %w", id, ErrNotFound)
}

// Delete drops the definition with id. A missing id is not an error.
func (r Registry) Delete(id string) Registry {
	out := make(Registry, 0, len(r))
	for _, d := range r {
		if d.ID != id {
			out = append(out, d)
		}
	}
	return out
}

// Help returns up to n definitions that carry a hint, in registry order.
func (r Registry) Help(n int) Registry {
	out := Registry{}
	for _, d := range r {
		if len(out) >= n {
			break
		}
		if d.Hint != "" {
			out = append(out, d)
		}
	}
	return out
}

// Reset returns the built-in defaults, whatever the current contents.
func Reset() Registry {
	return Defaults()
}

func normalize(label, openTag, closeTag, hint string) (Definition, error) {
	d := Definition{
		Label:    strings.TrimSpace(label),
		OpenTag:  strings.TrimSpace(openTag),
		CloseTag: strings.TrimSpace(closeTag),
		Hint:     strings.TrimSpace(hint),
	}
	if !d.Usable() {
		return Definition{}, ErrValidation
	}
	return d, nil
}
