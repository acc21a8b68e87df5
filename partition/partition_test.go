package partition_test

import (
	"cmp"
	"math/rand"
	"slices"
	"testing"

	"github.com/davidvella/lazysort/partition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLomuto(t *testing.T) {
	tests := []struct {
		name   string
		buf    []int
		lo, hi int
		pivot  int
		want   int
	}{
		{
			name:  "pivot is the minimum",
			buf:   []int{3, 1, 2},
			lo:    0,
			hi:    2,
			pivot: 1,
			want:  0,
		},
		{
			name:  "pivot is the maximum",
			buf:   []int{1, 3, 2},
			lo:    0,
			hi:    2,
			pivot: 1,
			want:  2,
		},
		{
			name:  "duplicates stay before the pivot",
			buf:   []int{9, 7, 1, 1, 6, 3, 1, 4, 22},
			lo:    0,
			hi:    8,
			pivot: 4,
			want:  5,
		},
		{
			name:  "all equal",
			buf:   []int{5, 5, 5, 5},
			lo:    0,
			hi:    3,
			pivot: 1,
			want:  3,
		},
		{
			name:  "sub range",
			buf:   []int{100, 8, 2, 5, -100},
			lo:    1,
			hi:    3,
			pivot: 2,
			want:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := slices.Clone(tt.buf)
			pivotValue := tt.buf[tt.pivot]

			got := partition.Lomuto(tt.buf, tt.lo, tt.hi, tt.pivot, cmp.Compare[int])

			require.Equal(t, tt.want, got)
			assert.Equal(t, pivotValue, tt.buf[got])
			for i := tt.lo; i < got; i++ {
				assert.LessOrEqual(t, tt.buf[i], pivotValue, "index %d", i)
			}
			for i := got + 1; i <= tt.hi; i++ {
				assert.Greater(t, tt.buf[i], pivotValue, "index %d", i)
			}
			assert.Equal(t, before[:tt.lo], tt.buf[:tt.lo])
			assert.Equal(t, before[tt.hi+1:], tt.buf[tt.hi+1:])
			assert.ElementsMatch(t, before, tt.buf)
		})
	}
}

func TestLomutoComparesEachElementOnce(t *testing.T) {
	buf := rand.New(rand.NewSource(1)).Perm(100)
	var calls int
	partition.Lomuto(buf, 0, len(buf)-1, 50, func(a, b int) int {
		calls++
		return cmp.Compare(a, b)
	})
	assert.Equal(t, len(buf)-1, calls)
}

func TestLomutoPanics(t *testing.T) {
	buf := []int{1, 2, 3, 4}
	assert.Panics(t, func() { partition.Lomuto(buf, 0, 1, 0, cmp.Compare[int]) })
	assert.Panics(t, func() { partition.Lomuto(buf, 0, 4, 0, cmp.Compare[int]) })
	assert.Panics(t, func() { partition.Lomuto(buf, -1, 2, 0, cmp.Compare[int]) })
	assert.Panics(t, func() { partition.Lomuto(buf, 1, 3, 0, cmp.Compare[int]) })
}

func TestPivots(t *testing.T) {
	buf := []int{7, 0, 0, 3, 0, 0, 5}

	assert.Equal(t, 3, partition.Midpoint(buf, 0, 6, cmp.Compare[int]))
	assert.Equal(t, 4, partition.Midpoint(buf, 2, 6, cmp.Compare[int]))

	// first=7, middle=3, last=5: the median sits at the last index.
	assert.Equal(t, 6, partition.MedianOfThree(buf, 0, 6, cmp.Compare[int]))
	assert.Equal(t, 3, partition.MedianOfThree([]int{1, 0, 0, 2, 0, 0, 3}, 0, 6, cmp.Compare[int]))
	assert.Equal(t, 0, partition.MedianOfThree([]int{2, 0, 0, 1, 0, 0, 3}, 0, 6, cmp.Compare[int]))

	random := partition.Random[int](rand.New(rand.NewSource(42)))
	for range 100 {
		p := random(buf, 2, 5, cmp.Compare[int])
		assert.GreaterOrEqual(t, p, 2)
		assert.LessOrEqual(t, p, 5)
	}
}
