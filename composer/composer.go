// Package composer owns the editable application state: the tag registry,
// the editor buffer and selection, the pending cursor and the form drafts.
// Every mutation goes through Composer, which runs the pure tag and insert
// transformations, persists the result and then announces it.
package composer

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"unicode/utf8"

	"tagcomposer/insert"
	"tagcomposer/status"
	"tagcomposer/storage"
	"tagcomposer/tag"
)

// Composer coordinates user actions. It is safe for concurrent use; actions
// are applied one at a time.
type Composer struct {
	mu        sync.RWMutex
	store     storage.Store
	status    *status.Notifier
	helpCount int

	tags    tag.Registry
	buffer  string
	sel     insert.Selection
	pending *int
	forms   Forms

	warned   bool
	watchMu  sync.Mutex
	watchers map[uint64]func()
	nextID   uint64
}

type Option func(*Composer)

// WithHelpCount sets how many hinted tags Snapshot lists.
func WithHelpCount(n int) Option {
	return func(c *Composer) {
		if n >= 0 {
			c.helpCount = n
		}
	}
}

// New loads persisted state from store. Missing, unreadable or invalid data
// falls back to the default tags and an empty buffer.
func New(ctx context.Context, store storage.Store, notifier *status.Notifier, opts ...Option) *Composer {
	if store == nil {
		store = storage.Unavailable{}
	}
	if notifier == nil {
		notifier = status.New(status.DefaultTimeout)
	}
	c := &Composer{
		store:     store,
		status:    notifier,
		helpCount: DefaultHelpCount,
		watchers:  make(map[uint64]func()),
	}
	for _, opt := range opts {
		opt(c)
	}

	raw, found, err := store.Get(ctx, storage.KeyTags)
	if err != nil {
		c.storageFailed("load tags", err)
		found = false
	}
	c.tags = tag.Decode(raw, found)

	text, _, err := store.Get(ctx, storage.KeyEditor)
	if err != nil {
		c.storageFailed("load editor", err)
		text = ""
	}
	c.buffer = text
	c.sel = insert.End(text)
	return c
}

// Snapshot returns a copy of the current state.
func (c *Composer) Snapshot() State {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s := State{
		Tags:      c.tags.Clone(),
		Help:      c.tags.Help(c.helpCount),
		Buffer:    c.buffer,
		Chars:     utf8.RuneCountInString(c.buffer),
		Selection: c.sel,
		Status:    c.status.Message(),
		Forms:     c.forms,
	}
	if c.pending != nil {
		p := *c.pending
		s.PendingCursor = &p
	}
	return s
}

// Tags returns a copy of the registry.
func (c *Composer) Tags() tag.Registry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tags.Clone()
}

// SetBuffer replaces the buffer with text typed by the user. A nil sel puts
// the caret at the end. Any cursor still pending from an insertion is
// dropped, since it points into the old text.
func (c *Composer) SetBuffer(ctx context.Context, text string, sel *insert.Selection) {
	c.mu.Lock()
	c.buffer = text
	c.sel = selectionIn(text, sel)
	c.pending = nil
	c.persistBuffer(ctx)
	c.mu.Unlock()

	c.changed()
}

// SetSelection records the caret or selected span, clamped into the buffer.
func (c *Composer) SetSelection(sel insert.Selection) {
	c.mu.Lock()
	c.sel = insert.Clamp(sel, utf8.RuneCountInString(c.buffer))
	c.mu.Unlock()
}

// InsertTag splices the tag with id into the buffer at sel, or at the last
// recorded selection when sel is nil. The new cursor is parked in the
// pending slot until TakePendingCursor collects it.
func (c *Composer) InsertTag(ctx context.Context, id string, sel *insert.Selection) (insert.Result, error) {
	return c.insertAt(ctx, id, nil, sel)
}

// InsertTagInto is InsertTag against text, the editor content the caller
// measured sel on. text replaces the buffer in the same step, so keystrokes
// not yet saved are not lost.
func (c *Composer) InsertTagInto(ctx context.Context, id, text string, sel *insert.Selection) (insert.Result, error) {
	return c.insertAt(ctx, id, &text, sel)
}

func (c *Composer) insertAt(ctx context.Context, id string, text *string, sel *insert.Selection) (insert.Result, error) {
	c.mu.Lock()
	d, ok := c.tags.Find(id)
	if !ok {
		c.mu.Unlock()
		return insert.Result{}, tag.ErrNotFound
	}
	buffer := c.buffer
	if text != nil {
		buffer = *text
	}
	at := c.sel
	if sel != nil {
		at = *sel
	}
	res := insert.Insert(buffer, insert.Clamp(at, utf8.RuneCountInString(buffer)), d)

	c.buffer = res.Buffer
	c.sel = insert.Selection{Start: res.Cursor, End: res.Cursor}
	cursor := res.Cursor
	c.pending = &cursor
	c.persistBuffer(ctx)
	c.mu.Unlock()

	c.changed()
	return res, nil
}

// TakePendingCursor hands out the cursor left by the last insertion, once.
func (c *Composer) TakePendingCursor() (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending == nil {
		return 0, false
	}
	p := *c.pending
	c.pending = nil
	return p, true
}

// Clear empties the buffer. A buffer holding only whitespace is left as is.
func (c *Composer) Clear(ctx context.Context) error {
	c.mu.Lock()
	if strings.TrimSpace(c.buffer) == "" {
		c.mu.Unlock()
		c.status.Set(MsgAlreadyEmpty)
		return ErrAlreadyEmpty
	}
	c.buffer = ""
	c.sel = insert.Selection{}
	c.pending = nil
	c.persistBuffer(ctx)
	c.mu.Unlock()

	c.status.Set(MsgCleared)
	c.changed()
	return nil
}

// Copy hands the buffer to clip. The buffer is never modified.
func (c *Composer) Copy(ctx context.Context, clip Clipboard) error {
	c.mu.RLock()
	text := c.buffer
	c.mu.RUnlock()

	if strings.TrimSpace(text) == "" {
		c.status.Set(MsgNothingToCopy)
		return ErrNothingToCopy
	}
	if clip == nil {
		c.status.Set(MsgClipboard)
		return ErrClipboardDenied
	}
	if err := clip.WriteText(ctx, text); err != nil {
		c.status.Set(MsgClipboard)
		if errors.Is(err, ErrClipboardDenied) {
			return err
		}
		return errors.Join(ErrClipboardDenied, err)
	}
	c.status.Set(MsgCopied)
	return nil
}

// Subscribe registers fn to run after every committed change. The returned
// func removes it.
func (c *Composer) Subscribe(fn func()) func() {
	c.watchMu.Lock()
	defer c.watchMu.Unlock()
	id := c.nextID
	c.nextID++
	c.watchers[id] = fn
	return func() {
		c.watchMu.Lock()
		defer c.watchMu.Unlock()
		delete(c.watchers, id)
	}
}

func (c *Composer) changed() {
	c.watchMu.Lock()
	fns := make([]func(), 0, len(c.watchers))
	for _, fn := range c.watchers {
		fns = append(fns, fn)
	}
	c.watchMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// persistBuffer and persistTags must be called with c.mu held.
func (c *Composer) persistBuffer(ctx context.Context) {
	if err := c.store.Set(ctx, storage.KeyEditor, c.buffer); err != nil {
		c.storageFailed("save editor", err)
	}
}

func (c *Composer) persistTags(ctx context.Context) {
	raw, err := tag.Encode(c.tags)
	if err != nil {
		log.Printf("encode tags: %v", err)
		return
	}
	if err := c.store.Set(ctx, storage.KeyTags, raw); err != nil {
		c.storageFailed("save tags", err)
	}
}

// storageFailed logs a persistence failure. An unavailable store is
// reported only once.
func (c *Composer) storageFailed(op string, err error) {
	if errors.Is(err, storage.ErrUnavailable) {
		if c.warned {
			return
		}
		c.warned = true
	}
	log.Printf("%s: %v", op, err)
}

func selectionIn(text string, sel *insert.Selection) insert.Selection {
	if sel == nil {
		return insert.End(text)
	}
	return insert.Clamp(*sel, utf8.RuneCountInString(text))
}
