// Package cart holds the session cart: an ordered collection of line items
// with totals derived from them. The store owns its items exclusively; all
// mutation goes through its methods and every mutation publishes one
// consistent snapshot to subscribers.
package cart

import (
	"sync"

	"cruisebook/internal/domain"
	"cruisebook/internal/notify"
)

// Store is the session cart store.
type Store struct {
	mu       sync.Mutex
	items    []domain.CartItem
	subs     []func(domain.CartSnapshot)
	notifier notify.Notifier
}

// NewStore returns an empty cart. The notifier receives one "added to cart"
// message per completed add.
func NewStore(notifier notify.Notifier) *Store {
	if notifier == nil {
		notifier = notify.Nop()
	}
	return &Store{notifier: notifier}
}

// Subscribe registers an observer called with a snapshot after every
// mutation. Subscribers must not call back into the store.
func (s *Store) Subscribe(fn func(domain.CartSnapshot)) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

// AddItem inserts the item, or merges into the existing line when an item
// with the same ID is already present. A quantity below 1 counts as 1.
func (s *Store) AddItem(item domain.CartItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	s.mu.Lock()
	merged := false
	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		s.items = append(s.items, item)
	}
	snap, subs := s.snapshotLocked()
	s.mu.Unlock()

	s.notifier.Notify(item.Name + " added to cart")
	publish(subs, snap)
}

// RemoveItem deletes the line with the given id. Unknown ids are a no-op.
func (s *Store) RemoveItem(id string) {
	s.mu.Lock()
	removed := false
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			removed = true
			break
		}
	}
	if !removed {
		s.mu.Unlock()
		return
	}
	snap, subs := s.snapshotLocked()
	s.mu.Unlock()

	publish(subs, snap)
}

// UpdateQuantity sets the quantity of the line with the given id. Quantities
// at or below zero remove the line. Unknown ids are a no-op.
func (s *Store) UpdateQuantity(id string, quantity int) {
	if quantity < 0 {
		quantity = 0
	}
	if quantity == 0 {
		s.RemoveItem(id)
		return
	}

	s.mu.Lock()
	found := false
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = quantity
			found = true
			break
		}
	}
	if !found {
		s.mu.Unlock()
		return
	}
	snap, subs := s.snapshotLocked()
	s.mu.Unlock()

	publish(subs, snap)
}

// Clear empties the cart. Used after a successful checkout.
func (s *Store) Clear() {
	s.mu.Lock()
	s.items = nil
	snap, subs := s.snapshotLocked()
	s.mu.Unlock()

	publish(subs, snap)
}

// Snapshot returns the items with totals recomputed from them.
func (s *Store) Snapshot() domain.CartSnapshot {
	s.mu.Lock()
	snap, _ := s.snapshotLocked()
	s.mu.Unlock()
	return snap
}

func (s *Store) snapshotLocked() (domain.CartSnapshot, []func(domain.CartSnapshot)) {
	items := make([]domain.CartItem, len(s.items))
	copy(items, s.items)

	snap := domain.CartSnapshot{Items: items}
	for _, item := range items {
		snap.ItemCount += item.Quantity
		snap.TotalCents += item.UnitPriceCents * int64(item.Quantity)
	}

	subs := make([]func(domain.CartSnapshot), len(s.subs))
	copy(subs, s.subs)
	return snap, subs
}

func publish(subs []func(domain.CartSnapshot), snap domain.CartSnapshot) {
	for _, fn := range subs {
		fn(snap)
	}
}
