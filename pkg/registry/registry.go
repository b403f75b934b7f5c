// Package registry provides an ordered, concurrency-safe map from names to values.
package registry

import (
	"errors"
	"sync"
)

var (
	// ErrDuplicate is returned by Add when the name is already present.
	ErrDuplicate = errors.New("name already registered")
	// ErrMissing is returned by Remove when the name is absent.
	ErrMissing = errors.New("name not registered")
)

// Registry keeps values keyed by name in insertion order.
// The zero value is not usable; call New.
type Registry[T any] struct {
	mu    sync.RWMutex
	items map[string]T
	order []string
}

// New creates an empty registry.
func New[T any]() *Registry[T] {
	return &Registry[T]{items: make(map[string]T)}
}

// Add stores v under name. An existing entry is never overwritten.
func (r *Registry[T]) Add(name string, v T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[name]; ok {
		return ErrDuplicate
	}
	r.items[name] = v
	r.order = append(r.order, name)
	return nil
}

// Remove deletes name and returns the value it held.
func (r *Registry[T]) Remove(name string) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.items[name]
	if !ok {
		var zero T
		return zero, ErrMissing
	}
	delete(r.items, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return v, nil
}

// Get returns the value stored under name.
func (r *Registry[T]) Get(name string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.items[name]
	return v, ok
}

// Has reports whether name is registered.
func (r *Registry[T]) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// Len returns the number of entries.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Names returns a copy of the registered names in insertion order.
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Entry is a name/value pair returned by Snapshot.
type Entry[T any] struct {
	Name  string
	Value T
}

// Snapshot returns the entries in insertion order. The registry may be
// modified while the caller works on the snapshot.
func (r *Registry[T]) Snapshot() []Entry[T] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]Entry[T], 0, len(r.order))
	for _, name := range r.order {
		entries = append(entries, Entry[T]{Name: name, Value: r.items[name]})
	}
	return entries
}

// Each calls fn for every entry of a snapshot, in insertion order.
func (r *Registry[T]) Each(fn func(name string, v T)) {
	for _, e := range r.Snapshot() {
		fn(e.Name, e.Value)
	}
}
