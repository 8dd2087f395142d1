package slicehelpers

// Any returns true if any element in the slice satisfies the predicate function.
func Any[T any](slice []T, predicate func(T) bool) bool {
	return Index(slice, predicate) >= 0
}

// Index returns the position of the first element in the slice that satisfies
// the predicate function, or -1 if there is none.
func Index[T any](slice []T, predicate func(T) bool) int {
	for i, v := range slice {
		if predicate(v) {
			return i
		}
	}
	return -1
}
