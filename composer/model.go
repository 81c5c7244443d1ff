package composer

import (
	"context"
	"errors"

	"tagcomposer/insert"
	"tagcomposer/tag"
)

// Status texts shown after user actions.
const (
	MsgCopied        = "Copied to clipboard."
	MsgClipboard     = "Clipboard blocked. Select and copy manually."
	MsgNothingToCopy = "Nothing to copy yet."
	MsgCleared       = "Cleared."
	MsgAlreadyEmpty  = "Editor is already empty."
	MsgTagAdded      = "Tag added."
	MsgTagUpdated    = "Tag updated."
	MsgTagDeleted    = "Tag deleted."
	MsgTagsReset     = "Tags reset to defaults."
	MsgInvalidTag    = "Add label, open tag, and close tag."
)

// DefaultHelpCount is how many hinted tags the editor footer lists.
const DefaultHelpCount = 4

var (
	ErrClipboardDenied = errors.New("clipboard denied")
	ErrNothingToCopy   = errors.New("nothing to copy")
	ErrAlreadyEmpty    = errors.New("editor already empty")
	ErrNoEdit          = errors.New("no tag selected for editing")
)

// Clipboard receives the buffer on copy. Implementations return an error when
// the capability is refused or missing.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// ClipboardFunc adapts a function to Clipboard.
type ClipboardFunc func(ctx context.Context, text string) error

func (f ClipboardFunc) WriteText(ctx context.Context, text string) error { return f(ctx, text) }

// State is a copy of everything the presentation layer renders.
type State struct {
	Tags          tag.Registry     `json:"tags"`
	Help          tag.Registry     `json:"help"`
	Buffer        string           `json:"buffer"`
	Chars         int              `json:"chars"`
	Selection     insert.Selection `json:"selection"`
	PendingCursor *int             `json:"pendingCursor,omitempty"`
	Status        string           `json:"status"`
	Forms         Forms            `json:"forms"`
}

// Forms is the transient state of the add and edit forms. Only one tag can
// be under edit at a time.
type Forms struct {
	New       tag.Draft `json:"new"`
	Edit      tag.Draft `json:"edit"`
	EditingID string    `json:"editingId,omitempty"`
}
