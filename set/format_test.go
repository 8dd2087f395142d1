package set

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stringEq(a, b string) bool { return a == b }

func TestString(t *testing.T) {
	assert.Equal(t, "0", New(intEq).String())
	assert.Equal(t, "3 (12) (13) (15)", Of(intEq, 12, 13, 15, 12).String())
	assert.Equal(t, "2 ({1 2}) ({2 4})", Of(keyValueEq, keyValue{1, 2}, keyValue{2, 4}).String())

	s := Of(intEq, 1, 2, 3)
	s.Remove(1)
	assert.Equal(t, "2 (3) (2)", fmt.Sprint(s))
}

func TestWriteTo(t *testing.T) {
	var b strings.Builder
	n, err := Of(stringEq, "a", "bc").WriteTo(&b)
	require.NoError(t, err)
	assert.Equal(t, "2 (a) (bc)", b.String())
	assert.Equal(t, int64(len("2 (a) (bc)")), n)
}

func TestSaveStrings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "set.txt")
	s := New(stringEq)
	s.Add("best")
	s.Add("corso")
	s.Add("c++")
	s.Add("c++")

	require.NoError(t, SaveStrings(s, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "3 "))
	assert.Equal(t, "3 (best) (corso) (c++)", string(data))

	// existing content is truncated
	require.NoError(t, SaveStrings(Of(stringEq, "x"), path))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1 (x)", string(data))
}

func TestSaveStringsUnwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "set.txt")
	err := SaveStrings(Of(stringEq, "a"), path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
