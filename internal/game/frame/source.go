// Package frame fans a display-refresh signal out to frame callbacks.
package frame

import "sync"

// Source is a display-refresh frame source. The loop calls Dispatch once per
// presented frame and every subscriber runs in subscription order.
type Source struct {
	mu   sync.Mutex
	subs []subscriber
	next int
	n    uint64
}

type subscriber struct {
	id int
	fn func()
}

// Subscribe registers fn and returns a function that removes it. The
// returned function may be called more than once.
func (f *Source) Subscribe(fn func()) func() {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.next
	f.next++
	f.subs = append(f.subs, subscriber{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() { f.remove(id) })
	}
}

func (f *Source) remove(id int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, s := range f.subs {
		if s.id == id {
			f.subs = append(f.subs[:i], f.subs[i+1:]...)
			return
		}
	}
}

// Dispatch runs every subscriber once. Subscribers may unsubscribe from
// inside their callback.
func (f *Source) Dispatch() {
	f.mu.Lock()
	subs := append([]subscriber(nil), f.subs...)
	f.n++
	f.mu.Unlock()

	for _, s := range subs {
		s.fn()
	}
}

// Count returns the number of frames dispatched.
func (f *Source) Count() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.n
}

// Len returns the number of subscribers.
func (f *Source) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs)
}
