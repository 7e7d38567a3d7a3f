package set

import (
	"cmp"
	"slices"
)

// Set formalizes set semantics for a map of keys with no values.
type Set[T comparable] map[T]struct{}

// New creates a new [Set] from the given values.
func New[T comparable](vals ...T) Set[T] {
	s := make(Set[T], len(vals))
	for _, v := range vals {
		s[v] = struct{}{}
	}
	return s
}

// Add adds values, initializing the [Set] if it's nil, and returns it.
func (s Set[T]) Add(val T, others ...T) Set[T] {
	if s == nil {
		s = Set[T]{}
	}
	s[val] = struct{}{}
	for _, v := range others {
		s[v] = struct{}{}
	}
	return s
}

func (s Set[T]) Remove(val T, others ...T) {
	delete(s, val)
	for _, v := range others {
		delete(s, v)
	}
}

func (s Set[T]) Has(val T) bool {
	_, ok := s[val]
	return ok
}

// HasAny determines if any of the given values are present in the [Set].
func (s Set[T]) HasAny(values ...T) bool {
	for _, value := range values {
		if s.Has(value) {
			return true
		}
	}
	return false
}

// Sorted returns the values of a [Set] in ascending order, or nil if it's empty.
func Sorted[T cmp.Ordered](s Set[T]) []T {
	if len(s) == 0 {
		return nil
	}
	vals := make([]T, 0, len(s))
	for v := range s {
		vals = append(vals, v)
	}
	slices.Sort(vals)
	return vals
}
