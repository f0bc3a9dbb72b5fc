package rng

import (
	"cmp"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	min = -1
	max = 11
)

func Test(t *testing.T) {
	for _, test := range []struct {
		r    Range[int]
		want []int
	}{
		{Range[int]{}, nil},
		{From(1).To(3), []int{1, 2, 3}},
		{From(3).Below(4), []int{3}},
		{Above(2).To(5), []int{3, 4, 5}},
		{Above(8).Below(10), []int{9}},
		{From(9).Below(8), nil},
		{Below(2), []int{-1, 0, 1}},
		{To(0), []int{-1, 0}},
		{Above(9), []int{10, 11}},
	} {
		got := slice(test.r)
		if !slices.Equal(got, test.want) {
			t.Errorf("%s: got %v, want %v", test.r, got, test.want)
		}
		rb := test.r.Backwards()
		t.Log(rb)
		got = slice(rb)
		want := slices.Clone(test.want)
		slices.Reverse(want)
		if !slices.Equal(got, want) {
			t.Errorf("%s: got %v, want %v", rb, got, want)
		}
	}
}

// TestContains checks Contains against the enumeration in slice.
func TestContains(t *testing.T) {
	for _, r := range []Range[int]{
		{},
		All[int](),
		From(1).To(3),
		From(3).Below(4),
		Above(2).To(5),
		Above(8).Below(10),
		From(9).Below(8),
		Below(2),
		To(0),
		Above(9),
	} {
		var got []int
		for i := min; i <= max; i++ {
			if r.Contains(cmp.Compare[int], i) {
				got = append(got, i)
			}
		}
		assert.Equal(t, slice(r), got, "%s", r)
	}
}

func TestString(t *testing.T) {
	for _, test := range []struct {
		r    Range[int]
		want string
	}{
		{All[int](), "(-∞, ∞)"},
		{From(2), "[2, ∞)"},
		{Above(2), "(2, ∞)"},
		{To(2), "(-∞, 2]"},
		{Below(2), "(-∞, 2)"},
		{From(2).To(5), "[2, 5]"},
		{Above(2).Below(5).Backwards(), "(2, 5) backwards"},
	} {
		assert.Equal(t, test.want, test.r.String())
	}
}

func TestHighBoundTwice(t *testing.T) {
	assert.Panics(t, func() { From(1).To(3).Below(4) })
	assert.Panics(t, func() { To(3).To(4) })
}

func slice(r Range[int]) []int {
	lo, linf, lincl := r.Low()
	hi, hinf, hincl := r.High()
	if linf {
		lo = min
	} else if !lincl {
		lo++
	}
	if hinf {
		hi = max
	} else if !hincl {
		hi--
	}
	var ints []int
	if r.IsBackwards() {
		for i := hi; i >= lo; i-- {
			ints = append(ints, i)
		}

	} else {
		for i := lo; i <= hi; i++ {
			ints = append(ints, i)
		}
	}
	return ints
}
