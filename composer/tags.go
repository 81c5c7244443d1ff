package composer

import (
	"context"
	"errors"

	"tagcomposer/tag"
)

// AddTag appends a new definition. On a validation failure the registry is
// left alone and the failure is shown as a status message.
func (c *Composer) AddTag(ctx context.Context, label, openTag, closeTag, hint string) (tag.Definition, error) {
	c.mu.Lock()
	next, err := c.tags.Add(label, openTag, closeTag, hint)
	if err != nil {
		c.mu.Unlock()
		c.reportTagError(err)
		return tag.Definition{}, err
	}
	c.tags = next
	c.persistTags(ctx)
	added := next[len(next)-1]
	c.mu.Unlock()

	c.status.Set(MsgTagAdded)
	c.changed()
	return added, nil
}

// UpdateTag rewrites the definition with id in place.
func (c *Composer) UpdateTag(ctx context.Context, id, label, openTag, closeTag, hint string) (tag.Definition, error) {
	c.mu.Lock()
	next, err := c.tags.Update(id, label, openTag, closeTag, hint)
	if err != nil {
		c.mu.Unlock()
		c.reportTagError(err)
		return tag.Definition{}, err
	}
	c.tags = next
	c.persistTags(ctx)
	updated, _ := next.Find(id)
	c.mu.Unlock()

	c.status.Set(MsgTagUpdated)
	c.changed()
	return updated, nil
}

// DeleteTag removes the definition with id, if present. A tag under edit is
// dropped from the edit form too.
func (c *Composer) DeleteTag(ctx context.Context, id string) {
	c.mu.Lock()
	c.tags = c.tags.Delete(id)
	if c.forms.EditingID == id {
		c.forms.EditingID = ""
		c.forms.Edit.Clear()
	}
	c.persistTags(ctx)
	c.mu.Unlock()

	c.status.Set(MsgTagDeleted)
	c.changed()
}

// ResetTags replaces the registry with the built-in defaults.
func (c *Composer) ResetTags(ctx context.Context) {
	c.mu.Lock()
	c.tags = tag.Reset()
	if _, ok := c.tags.Find(c.forms.EditingID); !ok {
		c.forms.EditingID = ""
		c.forms.Edit.Clear()
	}
	c.persistTags(ctx)
	c.mu.Unlock()

	c.status.Set(MsgTagsReset)
	c.changed()
}

// SetNewLabel updates the add form's label and re-derives its markers.
func (c *Composer) SetNewLabel(label string) tag.Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.forms.New.SetLabel(label)
	return c.forms.New
}

// SetNewHint updates the add form's hint.
func (c *Composer) SetNewHint(hint string) tag.Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.forms.New.SetHint(hint)
	return c.forms.New
}

// SubmitNew adds the add form's draft and clears the form on success.
func (c *Composer) SubmitNew(ctx context.Context) (tag.Definition, error) {
	c.mu.RLock()
	d := c.forms.New
	c.mu.RUnlock()

	added, err := c.AddTag(ctx, d.Label, d.OpenTag, d.CloseTag, d.Hint)
	if err != nil {
		return tag.Definition{}, err
	}
	c.mu.Lock()
	c.forms.New.Clear()
	c.mu.Unlock()
	return added, nil
}

// BeginEdit loads the definition with id into the edit form, replacing any
// edit in progress.
func (c *Composer) BeginEdit(id string) (tag.Draft, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.tags.Find(id)
	if !ok {
		return tag.Draft{}, tag.ErrNotFound
	}
	c.forms.EditingID = id
	c.forms.Edit = tag.DraftOf(d)
	return c.forms.Edit, nil
}

// SetEditFields updates the edit form. Markers follow the label.
func (c *Composer) SetEditFields(label, hint string) (tag.Draft, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.forms.EditingID == "" {
		return tag.Draft{}, ErrNoEdit
	}
	c.forms.Edit.SetLabel(label)
	c.forms.Edit.SetHint(hint)
	return c.forms.Edit, nil
}

// SaveEdit writes the edit form back to its definition. The form stays open.
func (c *Composer) SaveEdit(ctx context.Context) (tag.Definition, error) {
	c.mu.RLock()
	id, d := c.forms.EditingID, c.forms.Edit
	c.mu.RUnlock()

	if id == "" {
		return tag.Definition{}, ErrNoEdit
	}
	return c.UpdateTag(ctx, id, d.Label, d.OpenTag, d.CloseTag, d.Hint)
}

func (c *Composer) reportTagError(err error) {
	if errors.Is(err, tag.ErrValidation) {
		c.status.Set(MsgInvalidTag)
	}
}
