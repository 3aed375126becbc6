package keynav

import "sync"

// Options are the inputs of one attachment. The caller owns all state;
// the controller only reads Items and Focused and requests changes through the callbacks.
type Options[T comparable] struct {
	Items []T
	// Focused is the currently focused id, or nil for no focus.
	// A focused id missing from Items behaves like no focus for arrow moves.
	Focused    *T
	SetFocused func(T)
	// OnSelect is optional; Enter and Space are ignored without it.
	OnSelect func(T)
}

// indexOf returns the position of the focused id in items, or -1.
func (o Options[T]) indexOf() int {
	if o.Focused == nil {
		return -1
	}
	for i, item := range o.Items {
		if item == *o.Focused {
			return i
		}
	}
	return -1
}

func (o Options[T]) setFocused(id T) {
	if o.SetFocused != nil {
		o.SetFocused(id)
	}
}

// Handle applies the navigation table to a single event.
//
// Arrow, Home and End keys suppress the default action as soon as they match,
// even when the move is a no-op at a boundary. Enter and Space suppress it only
// when a focused id and a selection callback are both present. An empty item
// list ignores every key.
func Handle[T comparable](ev *Event, opts Options[T]) {
	if ev == nil || len(opts.Items) == 0 {
		return
	}
	index := opts.indexOf()
	last := len(opts.Items) - 1

	switch {
	case ev.Key == KeyArrowRight || ev.Key == KeyArrowDown:
		ev.PreventDefault()
		if index < last {
			opts.setFocused(opts.Items[index+1])
		}
	case ev.Key == KeyArrowLeft || ev.Key == KeyArrowUp:
		ev.PreventDefault()
		if index > 0 {
			opts.setFocused(opts.Items[index-1])
		}
	case ev.Key == KeyHome:
		ev.PreventDefault()
		opts.setFocused(opts.Items[0])
	case ev.Key == KeyEnd:
		ev.PreventDefault()
		opts.setFocused(opts.Items[last])
	case (ev.Key == KeyEnter || ev.Key == KeySpace) && opts.Focused != nil && opts.OnSelect != nil:
		ev.PreventDefault()
		opts.OnSelect(*opts.Focused)
	}
}

// Subscription is one listener registered on a Source. Release removes it.
type Subscription struct {
	src  Source
	id   ListenerID
	once sync.Once
}

// Attach subscribes a navigation listener for opts on src.
// The returned Subscription must be released when opts change or the owner goes away.
func Attach[T comparable](src Source, opts Options[T]) *Subscription {
	sub := &Subscription{src: src}
	if src == nil {
		return sub
	}
	sub.id = src.AddListener(func(ev *Event) {
		Handle(ev, opts)
	})
	return sub
}

// Release removes the listener. Safe to call more than once and on nil.
func (s *Subscription) Release() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		if s.src != nil {
			s.src.RemoveListener(s.id)
		}
	})
}

// Controller keeps exactly one active Subscription on a Source and swaps it
// whenever the caller supplies new inputs.
type Controller[T comparable] struct {
	src Source
	sub *Subscription
}

// NewController creates a detached controller for src.
func NewController[T comparable](src Source) *Controller[T] {
	return &Controller[T]{src: src}
}

// Sync releases the current subscription, if any, and attaches one for opts.
// Callbacks are func values and cannot be compared, so every Sync re-subscribes.
func (c *Controller[T]) Sync(opts Options[T]) {
	c.sub.Release()
	c.sub = Attach(c.src, opts)
}

// Close releases the active subscription.
func (c *Controller[T]) Close() {
	c.sub.Release()
	c.sub = nil
}

// Active reports whether the controller currently holds a subscription.
func (c *Controller[T]) Active() bool {
	return c.sub != nil
}
