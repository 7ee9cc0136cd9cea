package tuning

import (
	"fmt"
	"math"
	"math/big"
)

// Cents returns 1200*log2(|r|).
func Cents(r *big.Rat) float64 {
	f, _ := new(big.Rat).Abs(r).Float64()
	return 1200 * math.Log2(f)
}

// below this distance in cents the direction of the next step is decided
// on the exact ratio
const exactCompareCents = 1e-6

// Converge adds down or up to base until its ratio equals target or lies
// within toleranceCents of it, and returns the result together with the
// number of vectors added. The loop stops with ErrConvergenceFailure after
// the configured number of iterations.
func Converge(base, down, up Vector, target *big.Rat, toleranceCents float64,
	opts ...Option) (Vector, int, error) {
	if target == nil || target.Sign() <= 0 {
		return base, 0, fmt.Errorf("%w: target ratio must be positive", ErrInvalidParameter)
	}
	if toleranceCents < 0 || math.IsNaN(toleranceCents) {
		return base, 0, fmt.Errorf("%w: tolerance %v cents", ErrInvalidParameter, toleranceCents)
	}
	o := buildOptions(opts)

	targetCents := Cents(target)
	targetExp, reachable := smoothExponents(target)
	acc := base
	for steps := 0; ; steps++ {
		diff := acc.Cents() - targetCents
		errCents := math.Abs(diff)
		if (reachable && acc.exponents() == targetExp) || errCents <= toleranceCents {
			o.Logger.Debug("drift converged", "steps", steps, "vector", acc.String(),
				"error_cents", errCents)
			return acc, steps, nil
		}
		if steps >= o.MaxIterations {
			return acc, steps, fmt.Errorf("%w: %.4f cents off after %d steps (tolerance %v)",
				ErrConvergenceFailure, errCents, steps, toleranceCents)
		}
		above := diff > 0
		if errCents < exactCompareCents {
			above = acc.Ratio().Cmp(target) > 0
		}
		if above {
			acc = acc.Add(down)
		} else {
			acc = acc.Add(up)
		}
	}
}

// return the exponents of 2, 3 and 5 in r. reports false if r has any other
// prime factor, in which case no vector reaches it exactly.
func smoothExponents(r *big.Rat) ([3]int, bool) {
	var e [3]int
	num := new(big.Int).Abs(r.Num())
	den := new(big.Int).Set(r.Denom())
	for i, p := range [3]int64{2, 3, 5} {
		bp := big.NewInt(p)
		e[i] = divideOut(num, bp) - divideOut(den, bp)
	}
	return e, num.Cmp(big.NewInt(1)) == 0 && den.Cmp(big.NewInt(1)) == 0
}

// divide n by p as often as it goes evenly, returning the count
func divideOut(n, p *big.Int) int {
	if n.Sign() == 0 {
		return 0
	}
	k := 0
	q, m := new(big.Int), new(big.Int)
	for {
		q.QuoRem(n, p, m)
		if m.Sign() != 0 {
			return k
		}
		n.Set(q)
		k++
	}
}

// DriftCents returns, for the start and every prefix of seq, how far the
// exact pitch lies from the 12-tet pitch with the same half steps, in cents.
func DriftCents(seq []Interval) []float64 {
	drift := make([]float64, len(seq)+1)
	steps, cents := 0, 0.0
	for i, step := range seq {
		steps += step.HalfSteps()
		cents += step.Cents()
		drift[i+1] = cents - 100*float64(steps)
	}
	return drift
}
