// Package dedupset provides ready-made equality functions for the
// containers in the set package.
package dedupset

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/adapap/dedupset/set"
)

// Comparable returns an equality function using the == operator.
func Comparable[T comparable]() set.Equal[T] {
	return func(a, b T) bool {
		return a == b
	}
}

// Pointer returns an equality function that compares the values two pointers
// refer to. Two nil pointers are equal; nil never equals a non-nil pointer.
func Pointer[T any](eq set.Equal[T]) set.Equal[*T] {
	return func(a, b *T) bool {
		if a == nil || b == nil {
			return a == b
		}
		return a == b || eq(*a, *b)
	}
}

// Text returns an equality function for strings that treats canonically
// equivalent Unicode sequences as equal, so a precomposed "è" matches "e"
// followed by a combining grave accent.
func Text() set.Equal[string] {
	return func(a, b string) bool {
		return norm.NFC.String(a) == norm.NFC.String(b)
	}
}

// FoldedText is like Text but also ignores case.
func FoldedText() set.Equal[string] {
	return func(a, b string) bool {
		// Casers keep state between calls
		fold := cases.Fold()
		return fold.String(norm.NFC.String(a)) == fold.String(norm.NFC.String(b))
	}
}
