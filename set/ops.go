package set

import "fmt"

// Filter returns a new set with the elements of src for which keep returns
// true, in the iteration order of src.
func Filter[T any](src *Set[T], keep func(T) bool) *Set[T] {
	out := New(src.EqualFunc())
	for v := range src.Values() {
		if keep(v) {
			out.Add(v)
		}
	}
	return out
}

// FilterFunc is like Filter for predicates that can fail. The first error
// stops the scan and no set is returned.
func FilterFunc[T any](src *Set[T], keep func(T) (bool, error)) (*Set[T], error) {
	out := New(src.EqualFunc())
	i := 0
	for v := range src.Values() {
		ok, err := keep(v)
		if err != nil {
			return nil, fmt.Errorf("filter predicate failed on element %d: %w", i, err)
		}
		if ok {
			out.Add(v)
		}
		i++
	}
	return out, nil
}

// Union returns a copy of lhs extended with every element of rhs that lhs
// does not already hold.
func Union[T any](lhs, rhs *Set[T]) *Set[T] {
	out := lhs.Clone()
	for v := range rhs.Values() {
		out.Add(v)
	}
	return out
}

// IntersectByRight returns the elements of rhs that lhs contains, in the
// iteration order of rhs. The result uses the equality function of lhs.
func IntersectByRight[T any](lhs, rhs *Set[T]) *Set[T] {
	out := New(lhs.EqualFunc())
	for v := range rhs.Values() {
		if lhs.Contains(v) {
			out.Add(v)
		}
	}
	return out
}

// Difference returns the intersection of lhs and rhs, exactly like
// IntersectByRight. It does not subtract rhs from lhs.
//
// Deprecated: the name is misleading; use IntersectByRight.
func Difference[T any](lhs, rhs *Set[T]) *Set[T] {
	return IntersectByRight(lhs, rhs)
}
