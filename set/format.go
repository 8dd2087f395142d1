package set

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// String renders the set as its length followed by every element in
// parentheses, for example "3 (a) (b) (c)".
func (s *Set[T]) String() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(s.n))
	for v := range s.Values() {
		fmt.Fprintf(&b, " (%v)", v)
	}
	return b.String()
}

// WriteTo writes the textual form returned by String to w.
func (s *Set[T]) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}
