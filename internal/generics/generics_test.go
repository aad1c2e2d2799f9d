package generics

import (
	"cmp"
	"github.com/stretchr/testify/assert"
	"slices"
	"strings"
	"testing"
)

func TestSliceMap(t *testing.T) {
	got := SliceMap([]int{1, 2, 3}, func(e int) string { return strings.Repeat("x", e) })
	assert.Equal(t, []string{"x", "xx", "xxx"}, got)
	assert.Empty(t, SliceMap([]int(nil), func(e int) int { return e }))
}

func TestSortedKeys(t *testing.T) {
	m := map[int]string{1: "1", 5: "5", 3: "3"}
	// Since the builtin map iterator in Go is deliberately non-deterministic, we
	// run it a bunch of times to show it is stably sorted.
	want := []int{1, 3, 5}
	for range 100 {
		got := slices.Collect(SortedKeys(m))
		if !slices.Equal(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestSet(t *testing.T) {
	// Sets are created empty.
	s := MakeSet[int](10)
	assert.Len(t, s, 0)

	// Check inserting and recovery.
	s.Insert(3, 7)
	assert.Len(t, s, 2)
	assert.True(t, s.Has(3))
	assert.True(t, s.Has(7))
	assert.False(t, s.Has(5))

	s2 := SetWith(5, 7)
	assert.Len(t, s2, 2)
	assert.True(t, s2.Has(5))
	assert.True(t, s2.Has(7))
	assert.False(t, s2.Has(3))

	s3 := s.Sub(s2)
	assert.Len(t, s3, 1)
	assert.True(t, s3.Has(3))

	s.Delete(7)
	assert.Len(t, s, 1)
	assert.True(t, s.Has(3))
	assert.False(t, s.Has(7))
	assert.True(t, s.Equal(s3))
	assert.False(t, s.Equal(s2))
	s4 := SetWith(-3)
	assert.False(t, s.Equal(s4))
}

func TestSortedSet(t *testing.T) {
	s := SetWith(7, -1, 3)
	assert.Equal(t, []int{-1, 3, 7}, SortedSet(s, cmp.Compare[int]))
	assert.Equal(t, []int{7, 3, -1}, SortedSet(s, func(a, b int) int { return b - a }))
}

func TestSumAndArgMax(t *testing.T) {
	assert.Equal(t, 6, Sum([]int{1, 2, 3}))
	assert.InDelta(t, float32(0.5), Sum([]float32{0.25, 0.25}), 1e-6)
	assert.Equal(t, 1, ArgMax([]float64{0.1, 0.7, 0.7, 0.2}))
	assert.Equal(t, -1, ArgMax([]int{}))
}

func TestSliceOrdering(t *testing.T) {
	s := []float32{7, -3, 2}
	assert.Equal(t, []int{1, 2, 0}, SliceOrdering(s, false))
	s2 := []int64{0, 1, 2}
	assert.Equal(t, []int{2, 1, 0}, SliceOrdering(s2, true))
}
