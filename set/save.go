package set

import (
	"fmt"
	"os"
)

// SaveStrings writes the textual form of s to the file at path, creating or
// truncating it.
func SaveStrings(s *Set[string], path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save set: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("save set: %w", cerr)
		}
	}()

	if _, err := s.WriteTo(f); err != nil {
		return fmt.Errorf("save set to %s: %w", path, err)
	}
	return nil
}
