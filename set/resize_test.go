package set

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapacityTrace(t *testing.T) {
	s := New(intEq)

	var grow []int
	for i := 0; i < 10; i++ {
		s.Add(i)
		grow = append(grow, s.Cap())
	}
	assert.Equal(t, []int{1, 2, 4, 4, 8, 8, 8, 8, 16, 16}, grow)

	var shrink []int
	for i := 0; i < 10; i++ {
		s.Remove(i)
		shrink = append(shrink, s.Cap())
	}
	assert.Equal(t, []int{16, 12, 12, 9, 9, 6, 4, 3, 2, 1}, shrink)
	assert.Equal(t, 0, s.Len())
}

func TestGrowthIsClamped(t *testing.T) {
	s := WithCapacity(intEq, 300)
	for i := 0; i < 300; i++ {
		require.True(t, s.Add(i))
	}
	require.Equal(t, 300, s.Cap())

	s.Add(300)
	assert.Equal(t, 300+MaxResizeStep, s.Cap())
	assert.Equal(t, 301, s.Len())
}

func TestShrinkReleasesStorage(t *testing.T) {
	s := WithCapacity(intEq, 1)
	s.Add(1)
	s.Remove(1)
	assert.Equal(t, 0, s.Cap())
	assert.Nil(t, s.items)

	s = WithCapacity(intEq, 1000)
	s.Add(1)
	s.Add(2)
	s.Remove(1)
	assert.Equal(t, 750, s.Cap())
	assert.Equal(t, []int{2}, s.items[:s.n])
}

func TestResizeFloor(t *testing.T) {
	s := Of(intEq, 1, 2, 3, 4, 5)
	s.resize(2)
	assert.Equal(t, 5, s.Cap())
	assert.Equal(t, 5, s.Len())
	assert.Equal(t, 1, s.At(0))
	assert.Equal(t, 5, s.At(4))

	s.resize(10_000)
	assert.Equal(t, 5+MaxResizeStep, s.Cap())
}

func TestResizeKeepsInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := New(intEq)
	present := map[int]bool{}

	for i := 0; i < 5000; i++ {
		v := rng.Intn(400)
		before := s.Cap()
		if rng.Intn(3) == 0 {
			assert.Equal(t, present[v], s.Remove(v))
			delete(present, v)
		} else {
			assert.Equal(t, !present[v], s.Add(v))
			present[v] = true
		}

		require.LessOrEqual(t, s.Cap(), before+MaxResizeStep)
		require.LessOrEqual(t, s.Len(), s.Cap())
		require.Equal(t, len(present), s.Len())
		require.Equal(t, s.Cap() == 0, s.items == nil)
	}

	for v := range present {
		assert.True(t, s.Contains(v))
	}
}
