// Package ownerset keeps references ordered by the control block they
// share, the order ownership.Owner.Before defines.
package ownerset

import (
	"iter"
	"slices"
	"sort"

	"github.com/on-the-ground/shared_instance_go/ownership"
)

// Set holds at most one reference per owner. References are kept, not
// cloned: inserting hands the reference to the set and Remove or Drain
// hands it back. Set is not safe for concurrent use.
type Set[P ownership.Owned] struct {
	items []P
}

// New returns an empty set with room for capacity references.
func New[P ownership.Owned](capacity int) *Set[P] {
	return &Set[P]{items: make([]P, 0, capacity)}
}

func (s *Set[P]) search(owner ownership.Owner) (int, bool) {
	idx := sort.Search(len(s.items), func(i int) bool {
		return !s.items[i].Owner().Before(owner)
	})
	found := idx < len(s.items) && s.items[idx].Owner() == owner
	return idx, found
}

// Insert adds p unless a reference to the same owner is already present.
// References to nothing are rejected.
func (s *Set[P]) Insert(p P) bool {
	owner := p.Owner()
	if owner.IsZero() {
		return false
	}
	idx, found := s.search(owner)
	if found {
		return false
	}

	s.items = slices.Insert(s.items, idx, p)
	return true
}

// Contains reports whether a reference sharing o's owner is present.
func (s *Set[P]) Contains(o ownership.Owned) bool {
	_, found := s.search(o.Owner())
	return found
}

// Remove takes out the reference sharing o's owner and returns it.
func (s *Set[P]) Remove(o ownership.Owned) (P, bool) {
	idx, found := s.search(o.Owner())
	if !found {
		var zero P
		return zero, false
	}
	p := s.items[idx]
	s.items = slices.Delete(s.items, idx, idx+1)
	return p, true
}

func (s *Set[P]) Len() int {
	return len(s.items)
}

// All yields the references in owner order.
func (s *Set[P]) All() iter.Seq[P] {
	return func(yield func(P) bool) {
		for _, p := range s.items {
			if !yield(p) {
				return
			}
		}
	}
}

// Drain empties the set and returns its references in owner order.
func (s *Set[P]) Drain() []P {
	items := s.items
	s.items = nil
	return items
}
