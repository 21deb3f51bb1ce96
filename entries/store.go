package entries

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// ErrIndexOutOfRange is returned when an index does not address an entry.
var ErrIndexOutOfRange = errors.New("entry index out of range")

// Store is the ordered sequence of entries for one session. Entries are
// addressed by position; removing one shifts everything after it down.
type Store struct {
	mu      sync.RWMutex
	entries []PaperEntry
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Append adds the entry at the end and returns its index. An entry without
// an ID is given a fresh one.
func (s *Store) Append(entry PaperEntry) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	s.entries = append(s.entries, entry)
	return len(s.entries) - 1
}

// Replace overwrites the whole record at index. The replaced entry's ID is
// kept when the new one has none.
func (s *Store) Replace(index int, entry PaperEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.entries) {
		return fmt.Errorf("replace %d of %d: %w", index, len(s.entries), ErrIndexOutOfRange)
	}
	if entry.ID == "" {
		entry.ID = s.entries[index].ID
	}
	s.entries[index] = entry
	return nil
}

// Remove deletes the entry at index. Remaining entries keep their relative
// order and are re-indexed contiguously.
func (s *Store) Remove(index int) (PaperEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.entries) {
		return PaperEntry{}, fmt.Errorf("remove %d of %d: %w", index, len(s.entries), ErrIndexOutOfRange)
	}
	removed := s.entries[index]
	s.entries = append(s.entries[:index], s.entries[index+1:]...)
	return removed, nil
}

// Get returns the entry at index.
func (s *Store) Get(index int) (PaperEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if index < 0 || index >= len(s.entries) {
		return PaperEntry{}, fmt.Errorf("get %d of %d: %w", index, len(s.entries), ErrIndexOutOfRange)
	}
	return s.entries[index], nil
}

// IndexOf returns the current index of the entry with the given ID, or -1.
func (s *Store) IndexOf(id string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i, e := range s.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// List returns a copy of all entries in order.
func (s *Store) List() []PaperEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]PaperEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Clear drops every entry.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
}
