package tuning

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

var allIntervals = []Interval{
	Unison,
	MajorThird, InvertedMajorThird,
	PerfectFourth, InvertedPerfectFourth,
	PerfectFifth, InvertedPerfectFifth,
}

func TestIntervalRatio(t *testing.T) {
	assert.Equal(t, "1", Unison.Ratio().RatString())
	assert.Equal(t, "5/4", MajorThird.Ratio().RatString())
	assert.Equal(t, "4/5", InvertedMajorThird.Ratio().RatString())
	assert.Equal(t, "4/3", PerfectFourth.Ratio().RatString())
	assert.Equal(t, "3/4", InvertedPerfectFourth.Ratio().RatString())
	assert.Equal(t, "3/2", PerfectFifth.Ratio().RatString())
	assert.Equal(t, "2/3", InvertedPerfectFifth.Ratio().RatString())
}

func TestIntervalHalfSteps(t *testing.T) {
	assert.Equal(t, 0, Unison.HalfSteps())
	assert.Equal(t, 4, MajorThird.HalfSteps())
	assert.Equal(t, -4, InvertedMajorThird.HalfSteps())
	assert.Equal(t, 5, PerfectFourth.HalfSteps())
	assert.Equal(t, -5, InvertedPerfectFourth.HalfSteps())
	assert.Equal(t, 7, PerfectFifth.HalfSteps())
	assert.Equal(t, -7, InvertedPerfectFifth.HalfSteps())
}

func TestIntervalNeg(t *testing.T) {
	for _, i := range allIntervals {
		neg := i.Neg()
		assert.Equal(t, i, neg.Neg())
		assert.Equal(t, i.HalfSteps(), -neg.HalfSteps())
		assert.Equal(t, 0, i.Ratio().Cmp(new(big.Rat).Inv(neg.Ratio())), i.String())
	}
	assert.Equal(t, Unison, Unison.Neg())
}

func TestIntervalScale(t *testing.T) {
	for _, i := range allIntervals {
		for n := 1; n < 3; n++ {
			assert.Equal(t, i, i.Scale(n))
			assert.Equal(t, i.Neg(), i.Scale(-n))
		}
		assert.Equal(t, Unison, i.Scale(0))
	}
}

func TestIntervalString(t *testing.T) {
	assert.Equal(t, "MajorThird", MajorThird.String())
	assert.Equal(t, "InvertedPerfectFifth", InvertedPerfectFifth.String())
	assert.Equal(t, "Interval(9)", Interval(9).String())
}

// add up a sequence of intervals, returning total half steps and the product
// of their ratios
func sum(seq []Interval) (int, *big.Rat) {
	steps, ratio := 0, big.NewRat(1, 1)
	for _, i := range seq {
		steps += i.HalfSteps()
		ratio.Mul(ratio, i.Ratio())
	}
	return steps, ratio
}

func TestIntervalCents(t *testing.T) {
	assert.Equal(t, 0.0, Unison.Cents())
	for _, i := range allIntervals {
		assert.InDelta(t, Cents(i.Ratio()), i.Cents(), 1e-9, i.String())
		assert.Equal(t, -i.Cents(), i.Neg().Cents())
	}
	assert.Panics(t, func() { Interval(9).Cents() })
}

func TestSum(t *testing.T) {
	steps, ratio := sum([]Interval{MajorThird, InvertedPerfectFourth, PerfectFifth})
	assert.Equal(t, 6, steps)
	assert.Equal(t, "45/32", ratio.RatString())

	steps, ratio = sum([]Interval{MajorThird, PerfectFourth, PerfectFourth,
		InvertedPerfectFifth, InvertedPerfectFifth})
	assert.Equal(t, 0, steps)
	assert.Equal(t, "80/81", ratio.RatString())
}
