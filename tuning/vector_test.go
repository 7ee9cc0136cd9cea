package tuning

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorEvaluate(t *testing.T) {
	v := NewVector(1, -1, 1)
	assert.Equal(t, 6, v.HalfSteps())
	assert.Equal(t, "45/32", v.Ratio().RatString())

	v = NewVector(1, 2, -2)
	assert.Equal(t, 0, v.HalfSteps())
	assert.Equal(t, "80/81", v.Ratio().RatString())

	v = NewVector(1, 0, 1)
	assert.Equal(t, 11, v.HalfSteps())
	assert.Equal(t, "15/8", v.Ratio().RatString())

	assert.Equal(t, 0, Vector{}.HalfSteps())
	assert.Equal(t, "1", Vector{}.Ratio().RatString())
}

func TestVectorAddNeg(t *testing.T) {
	for _, v := range []Vector{
		NewVector(1, -1, 1), NewVector(1, 2, -2), NewVector(-7, 0, 3), NewVector(0, 0, 0),
	} {
		sum := v.Add(v.Neg())
		assert.True(t, sum.IsZero())
		assert.Equal(t, 0, sum.HalfSteps())
		assert.Equal(t, "1", sum.Ratio().RatString())
	}
	assert.Equal(t, NewVector(3, 1, -1), NewVector(1, 2, -2).Add(NewVector(2, -1, 1)))
}

func TestVectorScale(t *testing.T) {
	v := NewVector(1, 2, -2)
	assert.Equal(t, Vector{}, v.Scale(0))
	assert.Equal(t, v, v.Scale(1))
	assert.Equal(t, v.Add(v).Add(v), v.Scale(3))
	assert.Equal(t, v.Neg().Add(v.Neg()), v.Scale(-2))
	assert.Equal(t, "6400/6561", v.Scale(2).Ratio().RatString())
}

func TestVectorExpand(t *testing.T) {
	assert.Equal(t, []Interval{
		MajorThird, MajorThird,
		PerfectFourth, PerfectFourth, PerfectFourth,
		InvertedPerfectFifth, InvertedPerfectFifth,
	}, NewVector(2, 3, -2).Expand())
	assert.Equal(t, []Interval{
		InvertedMajorThird, InvertedMajorThird,
		InvertedPerfectFourth, InvertedPerfectFourth, InvertedPerfectFourth,
		PerfectFifth, PerfectFifth,
	}, NewVector(-2, -3, 2).Expand())
	assert.Empty(t, Vector{}.Expand())

	v := NewVector(5, -4, 9)
	seq := v.Expand()
	assert.Len(t, seq, v.NumIntervals())
	steps, ratio := sum(seq)
	assert.Equal(t, v.HalfSteps(), steps)
	assert.Equal(t, v.Ratio().RatString(), ratio.RatString())
}

func TestVectorString(t *testing.T) {
	assert.Equal(t, "(1, 2, -2)", NewVector(1, 2, -2).String())
}

func TestVectorCents(t *testing.T) {
	for _, v := range []Vector{{}, NewVector(1, 2, -2), NewVector(-2, 3, -1), NewVector(23, 78, -68)} {
		assert.InDelta(t, Cents(v.Ratio()), v.Cents(), 1e-9, v.String())
	}
}

func TestVectorExponents(t *testing.T) {
	// 80/81 = 2^4 * 3^-4 * 5
	assert.Equal(t, [3]int{4, -4, 1}, NewVector(1, 2, -2).exponents())
	// 2048/2025 = 2^11 * 3^-4 * 5^-2
	assert.Equal(t, [3]int{11, -4, -2}, NewVector(-2, 3, -1).exponents())
	assert.Equal(t, [3]int{}, Vector{}.exponents())
}
