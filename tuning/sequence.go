package tuning

import (
	"fmt"
	"math"
	"math/big"

	"github.com/jangler/justdrift/distribute"
)

// Result describes a computed interval sequence and how it was found.
type Result struct {
	Base       Vector     // spans the target half steps
	Down, Up   Vector     // zero half step drift vectors
	Final      Vector     // base plus drift steps
	DriftSteps int        // number of drift vectors added to base
	ErrorCents float64    // distance of Final's ratio from the target
	Intervals  []Interval // Final expanded and evenly distributed
}

// HalfSteps returns the half steps spanned by the sequence.
func (r *Result) HalfSteps() int {
	return r.Final.HalfSteps()
}

// Ratio returns the exact frequency ratio of the sequence.
func (r *Result) Ratio() *big.Rat {
	return r.Final.Ratio()
}

// ComputeSequence finds a sequence of generator steps spanning halfSteps
// whose frequency ratio is within toleranceCents of ratio.
func ComputeSequence(halfSteps int, ratio *big.Rat, toleranceCents float64,
	opts ...Option) (*Result, error) {
	if ratio == nil || ratio.Sign() <= 0 {
		return nil, fmt.Errorf("%w: frequency scale must be positive", ErrInvalidParameter)
	}
	if !(toleranceCents > 0) || math.IsInf(toleranceCents, 1) {
		return nil, fmt.Errorf("%w: scale error must be a positive number of cents, got %v",
			ErrInvalidParameter, toleranceCents)
	}

	base, err := VectorForHalfSteps(halfSteps, opts...)
	if err != nil {
		return nil, err
	}
	down, up, err := DriftBracket(opts...)
	if err != nil {
		return nil, err
	}
	final, steps, err := Converge(base, down, up, ratio, toleranceCents, opts...)
	if err != nil {
		return nil, err
	}

	return &Result{
		Base:       base,
		Down:       down,
		Up:         up,
		Final:      final,
		DriftSteps: steps,
		ErrorCents: math.Abs(Cents(ratio) - final.Cents()),
		Intervals:  distribute.Schedule(final.Expand()),
	}, nil
}
