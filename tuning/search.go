package tuning

import (
	"fmt"
	"math/big"
)

var one = big.NewRat(1, 1)

// return 0, 1, -1, 2, -2, ..., m-1, -(m-1)
func signedSequence(m int) []int {
	seq := make([]int, 1, 2*m-1)
	for i := 1; i < m; i++ {
		seq = append(seq, i, -i)
	}
	return seq
}

// call f for every vector of shell m in search order, stopping early when f
// returns true. reports whether f stopped the walk.
func walkShell(m int, f func(Vector) bool) bool {
	seq := signedSequence(m)
	for _, n3 := range seq {
		for _, n4 := range seq {
			for _, n5 := range seq {
				if f(Vector{Thirds: n3, Fourths: n4, Fifths: n5}) {
					return true
				}
			}
		}
	}
	return false
}

// walk shells 1..maxRadius until f returns true
func walkShells(maxRadius int, f func(Vector) bool) bool {
	for m := 1; m <= maxRadius; m++ {
		if walkShell(m, f) {
			return true
		}
	}
	return false
}

// VectorForHalfSteps returns the first vector in search order spanning
// exactly target half steps.
func VectorForHalfSteps(target int, opts ...Option) (Vector, error) {
	o := buildOptions(opts)
	var found Vector
	ok := walkShells(o.MaxShellRadius, func(v Vector) bool {
		if v.HalfSteps() == target {
			found = v
			return true
		}
		return false
	})
	if !ok {
		return Vector{}, fmt.Errorf("%w: no vector spans %d half steps within shell radius %d",
			ErrSearchExhausted, target, o.MaxShellRadius)
	}
	o.Logger.Debug("found half step vector", "target", target, "vector", found.String())
	return found, nil
}

// DriftBracket returns two nonzero vectors spanning zero half steps, the
// first lowering the frequency ratio and the second raising it.
func DriftBracket(opts ...Option) (down, up Vector, err error) {
	o := buildOptions(opts)

	ok := walkShells(o.MaxShellRadius, func(v Vector) bool {
		if v.IsZero() || v.HalfSteps() != 0 {
			return false
		}
		if v.Ratio().Cmp(one) < 0 {
			down = v
			return true
		}
		return false
	})
	if !ok {
		return Vector{}, Vector{}, fmt.Errorf("%w: no downward drift vector within shell radius %d",
			ErrSearchExhausted, o.MaxShellRadius)
	}

	inv := down.Neg()
	ok = walkShells(o.MaxShellRadius, func(v Vector) bool {
		if v.IsZero() || v.HalfSteps() != 0 || excluded(o.BracketRule, v, inv) {
			return false
		}
		if v.Ratio().Cmp(one) > 0 {
			up = v
			return true
		}
		return false
	})
	if !ok {
		return Vector{}, Vector{}, fmt.Errorf("%w: no upward drift vector within shell radius %d",
			ErrSearchExhausted, o.MaxShellRadius)
	}

	o.Logger.Debug("found drift bracket", "down", down.String(), "up", up.String(),
		"rule", o.BracketRule.String())
	return down, up, nil
}

// report whether candidate v is ruled out as the upward vector, given the
// negated downward vector inv
func excluded(rule BracketRule, v, inv Vector) bool {
	if rule == BracketRuleNegation {
		return v == inv
	}
	// candidate must differ from inv in every coordinate
	return v.Thirds == inv.Thirds || v.Fourths == inv.Fourths || v.Fifths == inv.Fifths
}
