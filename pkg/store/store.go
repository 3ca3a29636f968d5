// Package store holds records in memory for the lifetime of the process.
// There is no backend yet; every store starts from seed data and mutations
// are lost on exit.
package store

import (
	"errors"
	"fmt"
	"sync"
)

// ErrNotFound is returned when an id does not resolve to a record. Callers
// match it with errors.Is.
var ErrNotFound = errors.New("store: record not found")

// Record is anything a Store can hold. Records are value types; the id must
// be stable for the life of the record.
type Record interface {
	RecordID() string
}

// Store is an in-memory collection of records keyed by id. List returns
// records in insertion order. All methods are safe for concurrent use.
type Store[T Record] struct {
	name string

	mu    sync.RWMutex
	order []string
	items map[string]T

	watchMu  sync.Mutex
	watchers []chan Event
}

// New returns an empty store. The name tags change events so one watcher
// can serve several stores.
func New[T Record](name string) *Store[T] {
	return &Store[T]{
		name:  name,
		items: make(map[string]T),
	}
}

// Seed returns a store preloaded with the given records, in order.
func Seed[T Record](name string, records []T) *Store[T] {
	s := New[T](name)
	for _, r := range records {
		s.order = append(s.order, r.RecordID())
		s.items[r.RecordID()] = r
	}
	return s
}

// Len reports the number of records held.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Get returns the record with the given id, or ErrNotFound.
func (s *Store[T]) Get(id string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.items[id]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %s %q", ErrNotFound, s.name, id)
	}
	return r, nil
}

// List returns all records in insertion order. The slice is a copy; callers
// may reorder or filter it freely.
func (s *Store[T]) List() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id])
	}
	return out
}

// Create adds a record. The id must be set and unused.
func (s *Store[T]) Create(r T) error {
	id := r.RecordID()
	if id == "" {
		return fmt.Errorf("store: %s record has no id", s.name)
	}
	s.mu.Lock()
	if _, exists := s.items[id]; exists {
		s.mu.Unlock()
		return fmt.Errorf("store: %s %q already exists", s.name, id)
	}
	s.order = append(s.order, id)
	s.items[id] = r
	s.mu.Unlock()

	s.notify()
	return nil
}

// Update applies a mutation to the record with the given id. The apply
// function receives a copy; the store keeps the result only when apply
// returns nil. Returns ErrNotFound for unknown ids.
func (s *Store[T]) Update(id string, apply func(*T) error) error {
	s.mu.Lock()
	r, ok := s.items[id]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s %q", ErrNotFound, s.name, id)
	}
	if err := apply(&r); err != nil {
		s.mu.Unlock()
		return err
	}
	if r.RecordID() != id {
		s.mu.Unlock()
		return fmt.Errorf("store: %s %q update changed the id", s.name, id)
	}
	s.items[id] = r
	s.mu.Unlock()

	s.notify()
	return nil
}

// Delete removes the record with the given id. Returns ErrNotFound for
// unknown ids rather than silently succeeding.
func (s *Store[T]) Delete(id string) error {
	s.mu.Lock()
	if _, ok := s.items[id]; !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s %q", ErrNotFound, s.name, id)
	}
	delete(s.items, id)
	for i, candidate := range s.order {
		if candidate == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	s.notify()
	return nil
}
