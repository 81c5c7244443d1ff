// Package status holds the transient message shown after a user action.
//
// Every Set arms its own clear timer. A timer only clears the message it was
// armed for, so the message on display is always the most recent one and the
// last-armed timer is the one that finally empties it.
package status

import (
	"sync"
	"time"
)

// DefaultTimeout is how long a message stays up.
const DefaultTimeout = 2 * time.Second

// Observer receives the message after every change, including the clear.
type Observer func(message string)

// Subscription is an active observer registration.
type Subscription struct {
	id       uint64
	notifier *Notifier
}

// Unsubscribe removes the observer. It is safe to call more than once.
func (s *Subscription) Unsubscribe() {
	if s.notifier != nil {
		s.notifier.unsubscribe(s.id)
	}
}

// Notifier owns the current status message.
type Notifier struct {
	// deliverMu orders deliveries so observers see changes in the order
	// they were applied. Observers must not call Set.
	deliverMu sync.Mutex
	mu        sync.Mutex
	timeout   time.Duration
	message   string
	seq       uint64
	timers    map[uint64]*time.Timer
	observers map[uint64]Observer
	nextID    uint64
	closed    bool
}

// New creates a Notifier whose messages clear after timeout.
// A non-positive timeout uses DefaultTimeout.
func New(timeout time.Duration) *Notifier {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Notifier{
		timeout:   timeout,
		timers:    make(map[uint64]*time.Timer),
		observers: make(map[uint64]Observer),
	}
}

// Set shows message and arms a timer that clears it.
func (n *Notifier) Set(message string) {
	n.deliverMu.Lock()
	defer n.deliverMu.Unlock()

	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}
	n.seq++
	seq := n.seq
	n.message = message
	n.timers[seq] = time.AfterFunc(n.timeout, func() { n.expire(seq) })
	n.mu.Unlock()

	n.deliver(message)
}

// Message returns the message currently on display.
func (n *Notifier) Message() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.message
}

// Subscribe registers observer for every message change.
func (n *Notifier) Subscribe(observer Observer) *Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()
	id := n.nextID
	n.nextID++
	n.observers[id] = observer
	return &Subscription{id: id, notifier: n}
}

// Close stops all pending timers. Later Set calls are ignored.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.closed = true
	for seq, t := range n.timers {
		t.Stop()
		delete(n.timers, seq)
	}
}

func (n *Notifier) expire(seq uint64) {
	n.deliverMu.Lock()
	defer n.deliverMu.Unlock()

	n.mu.Lock()
	delete(n.timers, seq)
	if n.closed || seq != n.seq {
		n.mu.Unlock()
		return
	}
	n.message = ""
	n.mu.Unlock()

	n.deliver("")
}

// deliver must be called with n.deliverMu held.
func (n *Notifier) deliver(message string) {
	n.mu.Lock()
	observers := make([]Observer, 0, len(n.observers))
	for _, o := range n.observers {
		observers = append(observers, o)
	}
	n.mu.Unlock()

	for _, o := range observers {
		o(message)
	}
}

func (n *Notifier) unsubscribe(id uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.observers, id)
}
