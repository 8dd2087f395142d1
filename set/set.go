// Package set implements a duplicate-free, insertion-ordered collection kept
// in a contiguous buffer. Membership is decided by a caller-supplied equality
// function, so elements need neither ordering nor hashing.
//
// Lookups are linear scans. Removal moves the last element into the freed
// slot, so the relative order of the remaining elements is not preserved.
package set

import (
	"fmt"
	"iter"

	"github.com/adapap/dedupset/slicehelpers"
)

// Equal reports whether a and b are the same element.
type Equal[T any] func(a, b T) bool

// Set is a duplicate-free collection of values of type T.
//
// A Set owns its buffer; copies made with Clone or Assign never share it.
// A Set is not safe for concurrent use.
type Set[T any] struct {
	eq    Equal[T]
	items []T // len(items) is the capacity; nil when the capacity is 0
	n     int
}

// New returns an empty set with no storage allocated.
func New[T any](eq Equal[T]) *Set[T] {
	if eq == nil {
		panic("set: nil equality function")
	}
	return &Set[T]{eq: eq}
}

// WithCapacity returns an empty set with exactly capacity slots allocated.
// It panics if capacity is negative.
func WithCapacity[T any](eq Equal[T], capacity int) *Set[T] {
	if capacity < 0 {
		panic(fmt.Sprintf("set: negative capacity %d", capacity))
	}
	s := New(eq)
	if capacity > 0 {
		s.items = make([]T, capacity)
	}
	return s
}

// Of returns a set holding values in order, with duplicates dropped.
func Of[T any](eq Equal[T], values ...T) *Set[T] {
	s := New(eq)
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// FromSeq drains seq into a new set. Elements equal to one already taken
// are skipped.
func FromSeq[T any](eq Equal[T], seq iter.Seq[T]) *Set[T] {
	s := New(eq)
	for v := range seq {
		s.Add(v)
	}
	return s
}

// Collect drains seq into a new set, converting every element first.
func Collect[S, T any](eq Equal[T], seq iter.Seq[S], convert func(S) T) *Set[T] {
	s := New(eq)
	for v := range seq {
		s.Add(convert(v))
	}
	return s
}

// Len returns the number of elements in the set.
func (s *Set[T]) Len() int {
	return s.n
}

// Cap returns the number of allocated slots.
func (s *Set[T]) Cap() int {
	return len(s.items)
}

// EqualFunc returns the equality function the set was built with.
func (s *Set[T]) EqualFunc() Equal[T] {
	return s.eq
}

// At returns the element stored at index i.
// It panics unless 0 <= i < Len().
func (s *Set[T]) At(i int) T {
	if i < 0 || i >= s.n {
		panic(fmt.Sprintf("set: index %d out of range [0, %d)", i, s.n))
	}
	return s.items[i]
}

// Contains reports whether an element equal to v is in the set.
func (s *Set[T]) Contains(v T) bool {
	return s.index(v) >= 0
}

func (s *Set[T]) index(v T) int {
	return slicehelpers.Index(s.items[:s.n], func(e T) bool {
		return s.eq(e, v)
	})
}

// Add inserts v at the end of the set. It returns false, leaving the set
// untouched, if an equal element is already present.
func (s *Set[T]) Add(v T) bool {
	if s.Contains(v) {
		return false
	}
	if len(s.items) == 0 {
		s.resize(1)
	} else if len(s.items) == s.n {
		s.resize(len(s.items) * 2)
	}
	s.push(v)
	return true
}

// push appends v without checking for duplicates. The caller guarantees a
// free slot.
func (s *Set[T]) push(v T) {
	s.items[s.n] = v
	s.n++
}

// Remove deletes the element equal to v and reports whether it was present.
// The last element takes the freed slot.
func (s *Set[T]) Remove(v T) bool {
	i := s.index(v)
	if i < 0 {
		return false
	}

	last := s.n - 1
	s.items[i], s.items[last] = s.items[last], s.items[i]
	var zero T
	s.items[last] = zero
	s.n--

	if len(s.items)/2 >= s.n {
		s.resize(len(s.items) * 3 / 4)
	}
	return true
}

// Equal reports whether s and other hold the same elements, in any order.
// Membership is decided with the equality function of s.
func (s *Set[T]) Equal(other *Set[T]) bool {
	if s == other {
		return true
	}
	if s.n != other.Len() {
		return false
	}
	for v := range other.Values() {
		if !s.Contains(v) {
			return false
		}
	}
	return true
}

// All returns an iterator over index/element pairs in storage order.
// The iterator is invalidated by the next call to a mutating method.
func (s *Set[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range s.items[:s.n] {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in storage order.
// The iterator is invalidated by the next call to a mutating method.
func (s *Set[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.items[:s.n] {
			if !yield(v) {
				return
			}
		}
	}
}

// Clear removes every element and releases the storage.
func (s *Set[T]) Clear() {
	s.items = nil
	s.n = 0
}

// Swap exchanges the contents and equality functions of s and other.
func (s *Set[T]) Swap(other *Set[T]) {
	s.eq, other.eq = other.eq, s.eq
	s.items, other.items = other.items, s.items
	s.n, other.n = other.n, s.n
}

// Clone returns an independent copy of s with the same capacity, order and
// equality function.
func (s *Set[T]) Clone() *Set[T] {
	c := WithCapacity(s.eq, len(s.items))
	copy(c.items, s.items[:s.n])
	c.n = s.n
	return c
}

// Assign replaces the contents of s with a copy of other.
// Assigning a set to itself does nothing.
func (s *Set[T]) Assign(other *Set[T]) {
	if s == other {
		return
	}
	tmp := other.Clone()
	s.Swap(tmp)
}
