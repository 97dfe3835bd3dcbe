// Package liststore provides the ordered in-memory collection behind every
// editable table of the console.
package liststore

import (
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Record is a stored row that can replace one of its fields by name.
type Record[T any] interface {
	RecordID() uuid.UUID
	WithField(field, value string) (T, error)
}

// Draft is the in-progress value of a record being added.
type Draft[T any] interface {
	Validate() error
	Build(id uuid.UUID) T
}

// Store is an insertion-ordered list of records. All methods are safe for
// concurrent use and every read returns a snapshot copy.
type Store[T Record[T], D Draft[T]] struct {
	mu    sync.RWMutex
	items []T
	newID func() (uuid.UUID, error)
}

// Option configures a Store.
type Option func(*options)

type options struct {
	newID func() (uuid.UUID, error)
}

// WithIDGenerator replaces the default UUIDv7 generator.
func WithIDGenerator(fn func() (uuid.UUID, error)) Option {
	return func(o *options) { o.newID = fn }
}

func New[T Record[T], D Draft[T]](opts ...Option) *Store[T, D] {
	o := options{newID: uuid.NewV7}
	for _, opt := range opts {
		opt(&o)
	}
	return &Store[T, D]{newID: o.newID}
}

// Add validates the draft, appends the built record and resets the draft to
// its zero value. A rejected draft is left untouched and nothing is stored.
func (s *Store[T, D]) Add(draft *D) (T, error) {
	var zero T
	if err := (*draft).Validate(); err != nil {
		return zero, err
	}
	id, err := s.newID()
	if err != nil {
		return zero, err
	}
	rec := (*draft).Build(id)

	s.mu.Lock()
	s.items = append(s.items, rec)
	s.mu.Unlock()

	var empty D
	*draft = empty
	return rec, nil
}

// Update replaces one field of the record with the given id. An absent id is a
// no-op and returns (zero, false, nil).
func (s *Store[T, D]) Update(id uuid.UUID, field, value string) (T, bool, error) {
	return s.Mutate(id, func(rec T) (T, error) {
		return rec.WithField(field, value)
	})
}

// Mutate applies fn to the record with the given id under the write lock.
// When fn fails the record is left unchanged.
func (s *Store[T, D]) Mutate(id uuid.UUID, fn func(T) (T, error)) (T, bool, error) {
	var zero T

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return zero, false, nil
	}
	next, err := fn(s.items[i])
	if err != nil {
		return zero, true, err
	}
	s.items[i] = next
	return next, true, nil
}

// Remove deletes the record with the given id and reports whether it existed.
func (s *Store[T, D]) Remove(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.items = slices.Delete(s.items, i, i+1)
	return true
}

// InsertIfAbsent appends rec unless a record with the same id is present.
func (s *Store[T, D]) InsertIfAbsent(rec T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(rec.RecordID()) >= 0 {
		return false
	}
	s.items = append(s.items, rec)
	return true
}

func (s *Store[T, D]) Get(id uuid.UUID) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		var zero T
		return zero, false
	}
	return s.items[i], true
}

func (s *Store[T, D]) List() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items)
}

// Filter returns the records matching pred, in insertion order.
func (s *Store[T, D]) Filter(pred func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0, len(s.items))
	for _, rec := range s.items {
		if pred(rec) {
			out = append(out, rec)
		}
	}
	return out
}

func (s *Store[T, D]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *Store[T, D]) Clear() {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()
}

func (s *Store[T, D]) indexOf(id uuid.UUID) int {
	return slices.IndexFunc(s.items, func(rec T) bool { return rec.RecordID() == id })
}
