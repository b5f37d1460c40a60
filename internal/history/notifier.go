package history

import "sync"

// Notifier is a single-writer, multi-subscriber change stream.
// The store fires it once per successful backup, synchronously, carrying
// only the affected resource. There is no buffering or replay:
// subscribers registered after an event never see it.
//
// A Notifier is owned by the store it is constructed with; there is no
// process-wide instance.
type Notifier struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func(Resource)
}

// NewNotifier creates an empty Notifier.
func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[int]func(Resource))}
}

// Subscribe registers fn to be called on every change event.
// The returned function removes the subscription; calling it more than
// once is harmless.
func (n *Notifier) Subscribe(fn func(Resource)) (unsubscribe func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	n.subs[id] = fn

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs, id)
	}
}

// Notify synchronously invokes every subscriber with the resource whose
// history gained a snapshot. Subscribers are called outside the lock so
// they may subscribe or unsubscribe from within the callback.
func (n *Notifier) Notify(resource Resource) {
	n.mu.Lock()
	fns := make([]func(Resource), 0, len(n.subs))
	for _, fn := range n.subs {
		fns = append(fns, fn)
	}
	n.mu.Unlock()

	for _, fn := range fns {
		fn(resource)
	}
}
