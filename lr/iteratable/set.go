package iteratable

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// Set is a set of items with a canonical order and an insertion order.
// Create one with NewSet.
type Set struct {
	cmp    utils.Comparator
	tree   *treeset.Set
	order  []interface{}
	cursor int
}

// NewSet creates an empty set. The comparator defines the canonical order of
// items and item identity.
func NewSet(comparator utils.Comparator) *Set {
	return &Set{
		cmp:    comparator,
		tree:   treeset.NewWith(comparator),
		cursor: -1,
	}
}

// Add adds items to the set, ignoring items already present.
// Returns the set itself.
func (s *Set) Add(items ...interface{}) *Set {
	for _, item := range items {
		if !s.tree.Contains(item) {
			s.tree.Add(item)
			s.order = append(s.order, item)
		}
	}
	return s
}

// Contains is true if item is an element of s.
func (s *Set) Contains(item interface{}) bool {
	return s.tree.Contains(item)
}

// Size returns the number of items in s.
func (s *Set) Size() int {
	return s.tree.Size()
}

// Empty is true for sets without items.
func (s *Set) Empty() bool {
	return s.tree.Empty()
}

// Values returns the items of s in canonical order.
func (s *Set) Values() []interface{} {
	return s.tree.Values()
}

// Copy returns a shallow copy of s, preserving insertion order.
func (s *Set) Copy() *Set {
	c := NewSet(s.cmp)
	c.Add(s.order...)
	return c
}

// Union adds all items of other to s. Returns s.
func (s *Set) Union(other *Set) *Set {
	if other != nil {
		s.Add(other.order...)
	}
	return s
}

// Difference removes all items from s which are elements of other. Returns s.
func (s *Set) Difference(other *Set) *Set {
	if other == nil {
		return s
	}
	kept := s.order[:0]
	for _, item := range s.order {
		if other.Contains(item) {
			s.tree.Remove(item)
		} else {
			kept = append(kept, item)
		}
	}
	s.order = kept
	return s
}

// Equals is true if s and other contain the same items, regardless of the
// order in which they were added.
func (s *Set) Equals(other *Set) bool {
	if other == nil || s.Size() != other.Size() {
		return false
	}
	for _, item := range s.order {
		if !other.Contains(item) {
			return false
		}
	}
	return true
}

// IterateOnce starts an iteration over s in insertion order. Usage:
//
//     S.IterateOnce()
//     for S.Next() {
//         item := S.Item()
//         …                    // may add items to S
//     }
//
func (s *Set) IterateOnce() {
	s.cursor = -1
}

// Next moves the iteration cursor to the next item, returning false if all
// items have been visited.
func (s *Set) Next() bool {
	if s.cursor < len(s.order) {
		s.cursor++
	}
	return s.cursor < len(s.order)
}

// Item returns the item at the iteration cursor, or nil.
func (s *Set) Item() interface{} {
	if s.cursor < 0 || s.cursor >= len(s.order) {
		return nil
	}
	return s.order[s.cursor]
}
