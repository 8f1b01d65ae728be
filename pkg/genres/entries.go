package genres

import (
	"fmt"
	"sync"
)

// Entries is a concurrent safe, insertion-ordered collection of entries.
type Entries struct {
	mu      sync.RWMutex
	entries map[int64]*Entry
	order   []int64
}

// EntriesOption defines a function that configures an Entries instance.
type EntriesOption func(*Entries)

// WithEntriesCapacity sets the initial capacity of the collection.
func WithEntriesCapacity(capacity int) EntriesOption {
	return func(e *Entries) {
		e.entries = make(map[int64]*Entry, capacity)
		e.order = make([]int64, 0, capacity)
	}
}

// NewEntries creates a new Entries collection with optional configuration.
func NewEntries(opts ...EntriesOption) *Entries {
	e := &Entries{
		entries: make(map[int64]*Entry),
		order:   make([]int64, 0),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Get returns an entry by id and whether it exists.
func (e *Entries) Get(id int64) (*Entry, bool) {
	e.mu.RLock()
	entry, ok := e.entries[id]
	e.mu.RUnlock()
	return entry, ok
}

// Add adds an entry, returning an error if its id is already present.
func (e *Entries) Add(entry *Entry) error {
	if entry == nil {
		return fmt.Errorf("entry cannot be nil")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.entries[entry.ID]; exists {
		return fmt.Errorf("entry with ID %d already exists", entry.ID)
	}

	e.entries[entry.ID] = entry
	e.order = append(e.order, entry.ID)
	return nil
}

// AddBatch adds multiple entries in a single operation, preserving slice
// order. Entries whose id is already present are skipped and reported in the
// returned map.
func (e *Entries) AddBatch(entries []Entry) map[int64]error {
	if len(entries) == 0 {
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	errors := make(map[int64]error)
	for i := range entries {
		entry := entries[i]
		if _, exists := e.entries[entry.ID]; exists {
			errors[entry.ID] = fmt.Errorf("entry with ID %d already exists", entry.ID)
			continue
		}
		e.entries[entry.ID] = &entry
		e.order = append(e.order, entry.ID)
	}

	if len(errors) == 0 {
		return nil
	}
	return errors
}

// Exists checks if an entry exists without returning it.
func (e *Entries) Exists(id int64) bool {
	e.mu.RLock()
	_, exists := e.entries[id]
	e.mu.RUnlock()
	return exists
}

// Len returns the number of entries.
func (e *Entries) Len() int {
	e.mu.RLock()
	length := len(e.entries)
	e.mu.RUnlock()
	return length
}

// List returns all entries in insertion order.
func (e *Entries) List() []Entry {
	e.mu.RLock()
	defer e.mu.RUnlock()

	result := make([]Entry, 0, len(e.order))
	for _, id := range e.order {
		if entry, ok := e.entries[id]; ok {
			result = append(result, *entry)
		}
	}
	return result
}

// Roots returns all level-1 entries in insertion order.
func (e *Entries) Roots() []Entry {
	e.mu.RLock()
	defer e.mu.RUnlock()

	var roots []Entry
	for _, id := range e.order {
		if entry, ok := e.entries[id]; ok && entry.IsRoot() {
			roots = append(roots, *entry)
		}
	}
	return roots
}

// Children returns the direct children of the given parent id in insertion
// order.
func (e *Entries) Children(parentID int64) []Entry {
	e.mu.RLock()
	defer e.mu.RUnlock()

	var children []Entry
	for _, id := range e.order {
		if entry, ok := e.entries[id]; ok && entry.ParentID == parentID && entry.ID != parentID {
			children = append(children, *entry)
		}
	}
	return children
}

// ForEach applies a function to each entry in insertion order. If the
// function returns false, iteration stops early.
func (e *Entries) ForEach(fn func(entry Entry) bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	for _, id := range e.order {
		entry, ok := e.entries[id]
		if !ok {
			continue
		}
		if !fn(*entry) {
			break
		}
	}
}

// ReplaceAll swaps the collection contents for the given entries, preserving
// slice order. Used after duplicate merging rewrites the dataset.
func (e *Entries) ReplaceAll(entries []Entry) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.entries = make(map[int64]*Entry, len(entries))
	e.order = make([]int64, 0, len(entries))
	for i := range entries {
		entry := entries[i]
		if _, exists := e.entries[entry.ID]; exists {
			continue
		}
		e.entries[entry.ID] = &entry
		e.order = append(e.order, entry.ID)
	}
}

// Clear removes all entries.
func (e *Entries) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.entries = make(map[int64]*Entry)
	e.order = e.order[:0]
}
