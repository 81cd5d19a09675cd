package memory

import (
	"sync"

	"superapp/storage"
)

type broadcaster struct {
	mu        sync.Mutex
	next      int
	listeners map[int]storage.Listener
}

func (b *broadcaster) subscribe(fn storage.Listener) func() {
	if fn == nil {
		return func() {}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.listeners == nil {
		b.listeners = make(map[int]storage.Listener)
	}
	id := b.next
	b.next++
	b.listeners[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.listeners, id)
			b.mu.Unlock()
		})
	}
}

// notify must be called without holding the owning store's lock.
func (b *broadcaster) notify(ev storage.Event) {
	b.mu.Lock()
	fns := make([]storage.Listener, 0, len(b.listeners))
	for i := 0; i < b.next; i++ {
		if fn, ok := b.listeners[i]; ok {
			fns = append(fns, fn)
		}
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}
