package tuning

import (
	"fmt"
	"math/big"
)

// a signed combination of the three generators
type Vector struct {
	Thirds  int // major thirds
	Fourths int // perfect fourths
	Fifths  int // perfect fifths
}

// return a new vector
func NewVector(thirds, fourths, fifths int) Vector {
	return Vector{Thirds: thirds, Fourths: fourths, Fifths: fifths}
}

// return the coefficients in axis order (see Generators)
func (v Vector) Coefficients() [3]int {
	return [3]int{v.Thirds, v.Fourths, v.Fifths}
}

// return the componentwise sum of two vectors
func (v Vector) Add(other Vector) Vector {
	return Vector{
		Thirds:  v.Thirds + other.Thirds,
		Fourths: v.Fourths + other.Fourths,
		Fifths:  v.Fifths + other.Fifths,
	}
}

// return the inverse of the vector
func (v Vector) Neg() Vector {
	return v.Scale(-1)
}

// return the vector added to itself n times; negative n adds the inverse
func (v Vector) Scale(n int) Vector {
	return Vector{Thirds: v.Thirds * n, Fourths: v.Fourths * n, Fifths: v.Fifths * n}
}

// return true if all coefficients are zero
func (v Vector) IsZero() bool {
	return v == Vector{}
}

// return the half steps spanned by the combination
func (v Vector) HalfSteps() int {
	return 4*v.Thirds + 5*v.Fourths + 7*v.Fifths
}

// return the exact frequency ratio of the combination
func (v Vector) Ratio() *big.Rat {
	r := big.NewRat(1, 1)
	for i, n := range v.Coefficients() {
		r.Mul(r, ratPow(Generators[i].Ratio(), n))
	}
	return r
}

// return the size of the combination in cents
func (v Vector) Cents() float64 {
	var c float64
	for i, n := range v.Coefficients() {
		c += float64(n) * Generators[i].Cents()
	}
	return c
}

// return the exponents of 2, 3 and 5 in the exact ratio. 5/4 = 2^-2 * 5,
// 4/3 = 2^2 * 3^-1 and 3/2 = 2^-1 * 3.
func (v Vector) exponents() [3]int {
	return [3]int{
		-2*v.Thirds + 2*v.Fourths - v.Fifths,
		v.Fifths - v.Fourths,
		v.Thirds,
	}
}

// return the number of generator steps the vector expands to
func (v Vector) NumIntervals() int {
	return abs(v.Thirds) + abs(v.Fourths) + abs(v.Fifths)
}

// Expand returns the unordered multiset of generator steps making up the
// vector, grouped by axis.
func (v Vector) Expand() []Interval {
	seq := make([]Interval, 0, v.NumIntervals())
	for i, n := range v.Coefficients() {
		step := Generators[i].Scale(n)
		for j := 0; j < abs(n); j++ {
			seq = append(seq, step)
		}
	}
	return seq
}

func (v Vector) String() string {
	return fmt.Sprintf("(%d, %d, %d)", v.Thirds, v.Fourths, v.Fifths)
}

// raise r to an integer power
func ratPow(r *big.Rat, n int) *big.Rat {
	if n < 0 {
		r, n = new(big.Rat).Inv(r), -n
	}
	num := new(big.Int).Exp(r.Num(), big.NewInt(int64(n)), nil)
	den := new(big.Int).Exp(r.Denom(), big.NewInt(int64(n)), nil)
	return new(big.Rat).SetFrac(num, den)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
