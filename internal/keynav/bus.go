package keynav

import "sync"

// Listener receives key events from a Source.
type Listener func(*Event)

// ListenerID identifies a registered listener. Func values are not comparable,
// so removal goes through the id returned by AddListener.
type ListenerID uint64

// Source is a global key-event source with add/remove listener semantics.
type Source interface {
	AddListener(l Listener) ListenerID
	RemoveListener(id ListenerID)
}

// Bus is the process-wide key source. The host feeds it with Dispatch;
// listeners run synchronously in registration order.
type Bus struct {
	mu        sync.Mutex
	nextID    ListenerID
	order     []ListenerID
	listeners map[ListenerID]Listener
}

// Ensure Bus implements Source.
var _ Source = (*Bus)(nil)

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[ListenerID]Listener),
	}
}

// AddListener registers l and returns its id. A nil listener is ignored and gets id 0.
func (b *Bus) AddListener(l Listener) ListenerID {
	if l == nil {
		return 0
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	id := b.nextID
	b.listeners[id] = l
	b.order = append(b.order, id)
	return id
}

// RemoveListener unregisters the listener with the given id.
// Unknown ids are ignored, so removal is idempotent.
func (b *Bus) RemoveListener(id ListenerID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.listeners[id]; !ok {
		return
	}
	delete(b.listeners, id)
	for i, o := range b.order {
		if o == id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of registered listeners.
func (b *Bus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.order)
}

// Dispatch delivers a new event for key to every listener and returns it,
// so the caller can inspect DefaultPrevented.
//
// Listeners registered during dispatch do not see the current event.
// Listeners removed during dispatch are skipped if they have not run yet.
func (b *Bus) Dispatch(key string) *Event {
	ev := NewEvent(key)
	b.mu.Lock()
	ids := append([]ListenerID(nil), b.order...)
	b.mu.Unlock()

	for _, id := range ids {
		b.mu.Lock()
		l, ok := b.listeners[id]
		b.mu.Unlock()
		if !ok {
			continue
		}
		l(ev)
	}
	return ev
}
