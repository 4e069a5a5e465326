package pricing

import (
	"fmt"
	"math"
)

// Binomial values p by backward induction on the tree selected by p.Tree.
// Early exercise is checked at every step for American options and at the
// step nearest each exercise date for Bermudan ones.
func Binomial(p Params) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if p.Steps < 1 {
		return 0, fmt.Errorf("%w: steps must be positive, got %d", ErrInvalidParams, p.Steps)
	}

	t := p.Expiry()
	l, err := newLattice(p, t)
	if err != nil {
		return 0, err
	}
	n := l.steps
	dt := t / float64(n)
	disc := math.Exp(-p.Rate * dt)
	pu, pd := l.pu, 1-l.pu
	exercisable := exerciseSteps(p, t, n)

	values := make([]float64, n+1)
	for j := 0; j <= n; j++ {
		values[j] = p.payoff(l.node(n, j))
	}
	for i := n - 1; i >= 0; i-- {
		early := exercisable != nil && exercisable[i]
		for j := 0; j <= i; j++ {
			v := disc * (pu*values[j+1] + pd*values[j])
			if early {
				v = math.Max(v, p.payoff(l.node(i, j)))
			}
			values[j] = v
		}
	}
	return values[0], nil
}

// exerciseSteps marks the steps where holding can be swapped for the payoff.
// nil means exercise at maturity only.
func exerciseSteps(p Params, t float64, n int) []bool {
	switch p.Exercise {
	case American:
		steps := make([]bool, n+1)
		for i := range steps {
			steps[i] = true
		}
		return steps
	case Bermudan:
		steps := make([]bool, n+1)
		for _, d := range p.ExerciseDates() {
			at := YearFraction(p.Settlement, d) / t * float64(n)
			i := int(math.Round(at))
			if i < 0 {
				i = 0
			}
			if i > n {
				i = n
			}
			steps[i] = true
		}
		return steps
	default:
		return nil
	}
}
