package set

// MaxResizeStep bounds how many slots a single resize may add.
const MaxResizeStep = 200

// resize moves the elements into a fresh buffer of the requested capacity.
// The request is clamped to MaxResizeStep above the current capacity, then
// raised to Len() if it would not hold every element. A target of zero
// releases the storage.
func (s *Set[T]) resize(capacity int) {
	if capacity > len(s.items)+MaxResizeStep {
		capacity = len(s.items) + MaxResizeStep
	}
	if capacity < s.n {
		capacity = s.n
	}
	if capacity == 0 {
		s.Clear()
		return
	}

	// elements are already unique, so skip the duplicate scan
	tmp := WithCapacity(s.eq, capacity)
	for _, v := range s.items[:s.n] {
		tmp.push(v)
	}
	s.Swap(tmp)
}
