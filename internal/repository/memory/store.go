// Package memory provides the process-local entity stores backing the dashboard.
package memory

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mamadbah2/finca/internal/domain/models"
)

// Record is satisfied by pointers to any entity embedding models.Base.
type Record[T any] interface {
	*T
	Meta() *models.Base
}

// Ordering selects how List sorts its result.
type Ordering int

const (
	// OrderInsertion keeps records in the order they were added.
	OrderInsertion Ordering = iota
	// OrderUpdatedDesc lists the most recently touched records first.
	OrderUpdatedDesc
)

// IDFunc allocates identifiers for new records.
type IDFunc func() string

// NewUUID is the default identifier source.
func NewUUID() string { return uuid.NewString() }

// Sequence returns an IDFunc yielding prefix-1, prefix-2, ... for deterministic tests.
func Sequence(prefix string) IDFunc {
	var mu sync.Mutex
	var n int
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

// Config customizes a Store. Zero values fall back to UUID ids, time.Now and insertion order.
type Config[T any] struct {
	// Seed is loaded on first access if the store is empty at that point.
	Seed     []T
	IDs      IDFunc
	Clock    func() time.Time
	Ordering Ordering
	// KeyName and Key declare a natural key; records with an empty key are not checked.
	KeyName string
	Key     func(T) string
}

// Store is an ordered, mutex-guarded collection of one entity type.
// Records returned by the store share optional-field pointers with the stored
// copy and must be treated as read-only.
type Store[T any, P Record[T]] struct {
	name     string
	cfg      Config[T]
	seedOnce sync.Once

	mu      sync.RWMutex
	items   []T
	index   map[string]int
	version uint64
}

// NewStore builds an empty store; the seed is applied lazily.
func NewStore[T any, P Record[T]](name string, cfg Config[T]) *Store[T, P] {
	if cfg.IDs == nil {
		cfg.IDs = NewUUID
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	return &Store[T, P]{
		name:  name,
		cfg:   cfg,
		index: make(map[string]int),
	}
}

// Name returns the store name used in errors and invalidation.
func (s *Store[T, P]) Name() string { return s.name }

// ensureSeeded runs the one-time seed gate. Once the gate has run, an emptied
// store stays empty.
func (s *Store[T, P]) ensureSeeded() {
	s.seedOnce.Do(func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if len(s.items) > 0 || len(s.cfg.Seed) == 0 {
			return
		}
		now := s.cfg.Clock()
		for _, rec := range s.cfg.Seed {
			meta := P(&rec).Meta()
			if meta.ID == "" {
				meta.ID = s.cfg.IDs()
			}
			if meta.CreatedAt.IsZero() {
				meta.CreatedAt = now
			}
			if meta.UpdatedAt.IsZero() {
				meta.UpdatedAt = meta.CreatedAt
			}
			s.index[meta.ID] = len(s.items)
			s.items = append(s.items, rec)
		}
	})
}

// List returns a copy of every record in the configured order.
func (s *Store[T, P]) List() []T {
	s.ensureSeeded()
	s.mu.RLock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	s.mu.RUnlock()

	if s.cfg.Ordering == OrderUpdatedDesc {
		sort.SliceStable(out, func(i, j int) bool {
			return P(&out[i]).Meta().UpdatedAt.After(P(&out[j]).Meta().UpdatedAt)
		})
	}
	return out
}

// Get returns the record with id; ok is false on a miss.
func (s *Store[T, P]) Get(id string) (rec T, ok bool) {
	s.ensureSeeded()
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[id]
	if !ok {
		return rec, false
	}
	return s.items[i], true
}

// Exists reports whether id is present.
func (s *Store[T, P]) Exists(id string) bool {
	_, ok := s.Get(id)
	return ok
}

// Find returns the records matching pred in insertion order.
func (s *Store[T, P]) Find(pred func(T) bool) []T {
	s.ensureSeeded()
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []T
	for _, rec := range s.items {
		if pred(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// Len returns the number of stored records.
func (s *Store[T, P]) Len() int {
	s.ensureSeeded()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Version increases on every successful mutation.
func (s *Store[T, P]) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Insert stamps rec with a fresh id and timestamps and appends it.
func (s *Store[T, P]) Insert(rec T) (T, error) {
	s.ensureSeeded()
	s.mu.Lock()
	defer s.mu.Unlock()

	meta := P(&rec).Meta()
	meta.ID = s.cfg.IDs()
	if _, taken := s.index[meta.ID]; taken {
		var zero T
		return zero, fmt.Errorf("%s: id %q already allocated", s.name, meta.ID)
	}
	if err := s.checkKey(rec, -1); err != nil {
		var zero T
		return zero, err
	}
	now := s.cfg.Clock()
	meta.CreatedAt = now
	meta.UpdatedAt = now

	s.index[meta.ID] = len(s.items)
	s.items = append(s.items, rec)
	s.version++
	return rec, nil
}

// Update applies mutate to a copy of the record and stores it if mutate succeeds.
// The id and creation time are preserved and the update time is bumped.
func (s *Store[T, P]) Update(id string, mutate func(*T) error) (T, error) {
	s.ensureSeeded()
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	i, ok := s.index[id]
	if !ok {
		return zero, fmt.Errorf("%s %q: %w", s.name, id, models.ErrNotFound)
	}

	next := s.items[i]
	original := *P(&next).Meta()
	if err := mutate(&next); err != nil {
		return zero, err
	}
	meta := P(&next).Meta()
	meta.ID = original.ID
	meta.CreatedAt = original.CreatedAt
	meta.UpdatedAt = s.cfg.Clock()

	if err := s.checkKey(next, i); err != nil {
		return zero, err
	}

	s.items[i] = next
	s.version++
	return next, nil
}

// Delete removes the record with id without touching dependents.
func (s *Store[T, P]) Delete(id string) error {
	s.ensureSeeded()
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return fmt.Errorf("%s %q: %w", s.name, id, models.ErrNotFound)
	}

	s.items = append(s.items[:i], s.items[i+1:]...)
	delete(s.index, id)
	for j := i; j < len(s.items); j++ {
		s.index[P(&s.items[j]).Meta().ID] = j
	}
	s.version++
	return nil
}

func (s *Store[T, P]) checkKey(rec T, self int) error {
	if s.cfg.Key == nil {
		return nil
	}
	key := s.cfg.Key(rec)
	if key == "" {
		return nil
	}
	for i, other := range s.items {
		if i != self && s.cfg.Key(other) == key {
			return fmt.Errorf("%s %s %q: %w", s.name, s.cfg.KeyName, key, models.ErrDuplicateKey)
		}
	}
	return nil
}
