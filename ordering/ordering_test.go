package ordering_test

import (
	"math"
	"slices"
	"testing"

	"github.com/davidvella/lazysort/ordering"
	"github.com/stretchr/testify/assert"
)

func TestTotal(t *testing.T) {
	f := ordering.Total[int]()
	assert.Negative(t, f(1, 2))
	assert.Zero(t, f(2, 2))
	assert.Positive(t, f(3, 2))
	assert.True(t, f.Less(1, 2))
	assert.False(t, f.Less(2, 2))
}

func TestReverse(t *testing.T) {
	f := ordering.Reverse(ordering.Total[string]())
	assert.Positive(t, f("a", "b"))
	assert.Negative(t, f("b", "a"))
	assert.Zero(t, f("a", "a"))
}

func TestBy(t *testing.T) {
	type pair struct {
		key   float64
		value int
	}
	f := ordering.By(func(p pair) float64 { return p.key }, ordering.Total[float64]())

	pairs := []pair{{0.2, 1}, {0.9, 2}, {0.4, 3}, {0.1, 4}}
	slices.SortFunc(pairs, f)

	var got []int
	for _, p := range pairs {
		got = append(got, p.value)
	}
	assert.Equal(t, []int{4, 1, 3, 2}, got)
}

func TestPartial(t *testing.T) {
	nan := math.NaN()
	tests := []struct {
		name   string
		policy ordering.Policy
		a, b   float64
		want   int
	}{
		{name: "comparable less", policy: ordering.IncomparableFirst, a: 1, b: 2, want: -1},
		{name: "comparable greater", policy: ordering.IncomparableFirst, a: 2, b: 1, want: 1},
		{name: "comparable equal", policy: ordering.IncomparableLast, a: 1, b: 1, want: 0},
		{name: "first left nan", policy: ordering.IncomparableFirst, a: nan, b: 1, want: -1},
		{name: "first right nan", policy: ordering.IncomparableFirst, a: 1, b: nan, want: -1},
		{name: "last left nan", policy: ordering.IncomparableLast, a: nan, b: 1, want: 1},
		{name: "last both nan", policy: ordering.IncomparableLast, a: nan, b: nan, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := ordering.Partial[float64](ordering.PartialFloat[float64], tt.policy)
			assert.Equal(t, tt.want, f(tt.a, tt.b))
		})
	}
}

func TestPartialFloat(t *testing.T) {
	c, ok := ordering.PartialFloat[float32](1, 2)
	assert.True(t, ok)
	assert.Equal(t, -1, c)

	_, ok = ordering.PartialFloat(float32(math.NaN()), 2)
	assert.False(t, ok)
}

func TestFloat(t *testing.T) {
	nan := math.NaN()

	first := ordering.Float[float64](ordering.IncomparableFirst)
	assert.Negative(t, first(nan, math.Inf(-1)))
	assert.Positive(t, first(math.Inf(-1), nan))
	assert.Zero(t, first(nan, nan))
	assert.Negative(t, first(1, 2))

	last := ordering.Float[float64](ordering.IncomparableLast)
	assert.Positive(t, last(nan, math.Inf(1)))
	assert.Negative(t, last(math.Inf(1), nan))
	assert.Zero(t, last(nan, nan))

	data := []float64{3, nan, 1, nan, 2}
	slices.SortFunc(data, last)
	assert.Equal(t, []float64{1, 2, 3}, data[:3])
	assert.True(t, math.IsNaN(data[3]))
	assert.True(t, math.IsNaN(data[4]))
}

func TestPolicyString(t *testing.T) {
	assert.Equal(t, "incomparable-first", ordering.IncomparableFirst.String())
	assert.Equal(t, "incomparable-last", ordering.IncomparableLast.String())
	assert.Equal(t, "Policy(7)", ordering.Policy(7).String())
}
