package items

import (
	"errors"
	"sync"
)

// ErrNotFound is returned by store lookups when no item matches the id.
var ErrNotFound = errors.New("item not found")

// Item is the stored record. IDs are assigned by the store and never reused.
type Item struct {
	ID          int64
	Name        string
	Description *string
	Price       float64
	IsAvailable bool
}

// Store holds all live items in insertion order. A single mutex makes every
// mutation one atomic step so the id-uniqueness invariant holds under
// concurrent handlers.
type Store struct {
	mu     sync.RWMutex
	items  []Item
	nextID int64
}

// NewStore returns an empty store whose counter starts at 1.
func NewStore() *Store {
	return &Store{nextID: 1}
}

// List returns a copy of all items in insertion order.
func (s *Store) List() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Get returns the item with the given id.
func (s *Store) Get(id int64) (Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if item.ID == id {
			return item, nil
		}
	}
	return Item{}, ErrNotFound
}

// Insert assigns the next id, appends the item, and returns it. The counter
// only moves forward, so deleted ids are never handed out again.
func (s *Store) Insert(item Item) Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = s.nextID
	s.nextID++
	s.items = append(s.items, item)
	return item
}

// Replace swaps every mutable field of the item with the given id, keeping
// its id and position in the enumeration order.
func (s *Store) Replace(id int64, item Item) (Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			item.ID = id
			s.items[i] = item
			return item, nil
		}
	}
	return Item{}, ErrNotFound
}

// Remove deletes the item with the given id and returns the removed record.
func (s *Store) Remove(id int64) (Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return item, nil
		}
	}
	return Item{}, ErrNotFound
}

// Len reports the number of live items.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
