package pricing

import (
	"fmt"
	"math"
	"strings"
)

// TreeKind selects the binomial parameterization.
type TreeKind int

const (
	JarrowRudd TreeKind = iota
	CoxRossRubinstein
	AdditiveEQP
	Trigeorgis
	Tian
	LeisenReimer
	Joshi
)

var treeNames = map[TreeKind]string{
	JarrowRudd:        "Jarrow-Rudd",
	CoxRossRubinstein: "Cox-Ross-Rubinstein",
	AdditiveEQP:       "Additive equiprobabilities",
	Trigeorgis:        "Trigeorgis",
	Tian:              "Tian",
	LeisenReimer:      "Leisen-Reimer",
	Joshi:             "Joshi",
}

// Trees lists every parameterization in display order.
func Trees() []TreeKind {
	return []TreeKind{JarrowRudd, CoxRossRubinstein, AdditiveEQP, Trigeorgis, Tian, LeisenReimer, Joshi}
}

func (k TreeKind) String() string {
	if s, ok := treeNames[k]; ok {
		return s
	}
	return fmt.Sprintf("TreeKind(%d)", int(k))
}

// ParseTreeKind matches a tree by name, case-insensitively; "crr", "jr", "lr",
// "eqp" are accepted as short forms.
func ParseTreeKind(s string) (TreeKind, error) {
	switch strings.ToLower(s) {
	case "jr":
		return JarrowRudd, nil
	case "crr":
		return CoxRossRubinstein, nil
	case "eqp":
		return AdditiveEQP, nil
	case "lr":
		return LeisenReimer, nil
	}
	for k, name := range treeNames {
		if strings.EqualFold(name, s) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: tree %q", ErrInvalidParams, s)
}

// lattice is a recombining tree: node(i, j) is the underlying after i steps
// with j up-moves, pu the up probability of every step.
type lattice struct {
	steps int
	pu    float64
	node  func(i, j int) float64
}

// newLattice builds the tree for p over t years. Leisen-Reimer and Joshi need
// an odd number of steps; an even count is bumped by one.
func newLattice(p Params, t float64) (lattice, error) {
	n := p.Steps
	if p.Tree == LeisenReimer || p.Tree == Joshi {
		if n%2 == 0 {
			n++
		}
	}
	dt := t / float64(n)
	x0 := p.Spot
	v2 := p.Volatility * p.Volatility
	drift := (p.Rate - p.Dividend - 0.5*v2) * dt // log drift per step

	var l lattice
	switch p.Tree {
	case JarrowRudd:
		l = equalProbabilities(x0, drift, p.Volatility*math.Sqrt(dt))
	case AdditiveEQP:
		up := -0.5*drift + 0.5*math.Sqrt(4*v2*dt-3*drift*drift)
		l = equalProbabilities(x0, drift, up)
	case CoxRossRubinstein:
		dx := p.Volatility * math.Sqrt(dt)
		l = equalJumps(x0, dx, 0.5+0.5*drift/dx)
	case Trigeorgis:
		dx := math.Sqrt(v2*dt + drift*drift)
		l = equalJumps(x0, dx, 0.5+0.5*drift/dx)
	case Tian:
		q := math.Exp(v2 * dt)
		r := math.Exp(drift) * math.Sqrt(q)
		root := math.Sqrt(q*q + 2*q - 3)
		up := 0.5 * r * q * (q + 1 + root)
		down := 0.5 * r * q * (q + 1 - root)
		l = upDown(x0, up, down, (r-down)/(up-down))
	case LeisenReimer, Joshi:
		variance := v2 * t
		ermqdt := math.Exp(drift + 0.5*variance/float64(n))
		d2 := (math.Log(x0/p.Strike) + drift*float64(n)) / math.Sqrt(variance)
		prob := func(z float64) float64 { return peizerPratt(z, n) }
		if p.Tree == Joshi {
			k := float64(n-1) / 2
			prob = func(z float64) float64 { return joshiUpProb(k, z) }
		}
		pu := prob(d2)
		pdash := prob(d2 + math.Sqrt(variance))
		up := ermqdt * pdash / pu
		down := (ermqdt - pu*up) / (1 - pu)
		l = upDown(x0, up, down, pu)
	default:
		return lattice{}, fmt.Errorf("%w: tree %v", ErrUnsupported, p.Tree)
	}
	l.steps = n

	if math.IsNaN(l.pu) || l.pu < 0 || l.pu > 1 {
		return lattice{}, fmt.Errorf("%w: %v tree has up probability %v; use more steps",
			ErrInvalidParams, p.Tree, l.pu)
	}
	return l, nil
}

func equalProbabilities(x0, drift, up float64) lattice {
	return lattice{
		pu: 0.5,
		node: func(i, j int) float64 {
			return x0 * math.Exp(float64(i)*drift+float64(2*j-i)*up)
		},
	}
}

func equalJumps(x0, dx, pu float64) lattice {
	return lattice{
		pu: pu,
		node: func(i, j int) float64 {
			return x0 * math.Exp(float64(2*j-i)*dx)
		},
	}
}

func upDown(x0, up, down, pu float64) lattice {
	return lattice{
		pu: pu,
		node: func(i, j int) float64 {
			return x0 * math.Pow(down, float64(i-j)) * math.Pow(up, float64(j))
		},
	}
}

// peizerPratt is the Peizer-Pratt method 2 inversion of the normal CDF onto
// a binomial with n (odd) steps.
func peizerPratt(z float64, n int) float64 {
	fn := float64(n)
	r := z / (fn + 1.0/3.0 + 0.1/(fn+1))
	r *= r
	r = math.Exp(-r * (fn + 1.0/6.0))
	if z > 0 {
		return 0.5 + math.Sqrt(0.25*(1-r))
	}
	return 0.5 - math.Sqrt(0.25*(1-r))
}

// joshiUpProb is Joshi's fourth-order expansion of the up probability for a
// tree with 2k+1 steps.
func joshiUpProb(k, dj float64) float64 {
	alpha := dj / math.Sqrt(8.0)
	alpha2 := alpha * alpha
	alpha3 := alpha * alpha2
	alpha5 := alpha3 * alpha2
	alpha7 := alpha5 * alpha2
	beta := -0.375*alpha - alpha3
	gamma := (5.0/6.0)*alpha5 + (13.0/12.0)*alpha3 + (25.0/128.0)*alpha
	delta := -0.1025*alpha - 0.9285*alpha3 - 1.43*alpha5 - 0.5*alpha7

	rootk := math.Sqrt(k)
	p := 0.5
	p += alpha / rootk
	p += beta / (k * rootk)
	p += gamma / (k * k * rootk)
	p += delta / (k * k * k * rootk)
	return p
}
