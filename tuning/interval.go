// Package tuning composes just-intonation intervals from three generators
// (major third 5/4, perfect fourth 4/3, perfect fifth 3/2) and searches for
// combinations that keep a fixed number of half steps while drifting the
// exact frequency ratio toward a target.
package tuning

import (
	"fmt"
	"math"
	"math/big"
)

// a generator interval; negative values are the inversions of the positive ones
type Interval int8

const (
	Unison        Interval = 0
	MajorThird    Interval = 1
	PerfectFourth Interval = 2
	PerfectFifth  Interval = 3

	InvertedMajorThird    = -MajorThird
	InvertedPerfectFourth = -PerfectFourth
	InvertedPerfectFifth  = -PerfectFifth
)

// Generators lists the three upward generators in axis order.
var Generators = [3]Interval{MajorThird, PerfectFourth, PerfectFifth}

// return the inverted interval
func (i Interval) Neg() Interval {
	return -i
}

// return the interval itself for n > 0, its inversion for n < 0 and unison
// for n == 0
func (i Interval) Scale(n int) Interval {
	switch {
	case n > 0:
		return i
	case n < 0:
		return -i
	}
	return Unison
}

// return the number of 12-tet half steps spanned by the interval
func (i Interval) HalfSteps() int {
	switch i {
	case Unison:
		return 0
	case MajorThird:
		return 4
	case PerfectFourth:
		return 5
	case PerfectFifth:
		return 7
	case InvertedMajorThird, InvertedPerfectFourth, InvertedPerfectFifth:
		return -(-i).HalfSteps()
	}
	panic(fmt.Sprintf("tuning: unknown interval %d", int8(i)))
}

// return the exact frequency ratio of the interval
func (i Interval) Ratio() *big.Rat {
	switch i {
	case Unison:
		return big.NewRat(1, 1)
	case MajorThird:
		return big.NewRat(5, 4)
	case PerfectFourth:
		return big.NewRat(4, 3)
	case PerfectFifth:
		return big.NewRat(3, 2)
	case InvertedMajorThird, InvertedPerfectFourth, InvertedPerfectFifth:
		return new(big.Rat).Inv((-i).Ratio())
	}
	panic(fmt.Sprintf("tuning: unknown interval %d", int8(i)))
}

// size in cents of the upward generators, indexed by Interval
var generatorCents = [4]float64{
	0,
	1200 * math.Log2(5.0/4),
	1200 * math.Log2(4.0/3),
	1200 * math.Log2(3.0/2),
}

// return the size of the interval in cents
func (i Interval) Cents() float64 {
	switch {
	case i >= Unison && i <= PerfectFifth:
		return generatorCents[i]
	case i >= InvertedPerfectFifth && i < Unison:
		return -generatorCents[-i]
	}
	panic(fmt.Sprintf("tuning: unknown interval %d", int8(i)))
}

func (i Interval) String() string {
	switch i {
	case Unison:
		return "Unison"
	case MajorThird:
		return "MajorThird"
	case PerfectFourth:
		return "PerfectFourth"
	case PerfectFifth:
		return "PerfectFifth"
	case InvertedMajorThird, InvertedPerfectFourth, InvertedPerfectFifth:
		return "Inverted" + (-i).String()
	}
	return fmt.Sprintf("Interval(%d)", int8(i))
}
