package pricing

import (
	"fmt"
	"math"
	"strings"
	"time"
)

type OptionType int

const (
	Put OptionType = iota
	Call
)

func (t OptionType) String() string {
	switch t {
	case Put:
		return "Put"
	case Call:
		return "Call"
	default:
		return fmt.Sprintf("OptionType(%d)", int(t))
	}
}

// ParseOptionType accepts "put" or "call" in any case.
func ParseOptionType(s string) (OptionType, error) {
	switch strings.ToLower(s) {
	case "put", "p":
		return Put, nil
	case "call", "c":
		return Call, nil
	}
	return 0, fmt.Errorf("%w: option type %q", ErrInvalidParams, s)
}

type ExerciseKind int

const (
	European ExerciseKind = iota
	Bermudan
	American
)

func (e ExerciseKind) String() string {
	switch e {
	case European:
		return "European"
	case Bermudan:
		return "Bermudan"
	case American:
		return "American"
	default:
		return fmt.Sprintf("ExerciseKind(%d)", int(e))
	}
}

// DefaultBermudanPeriod is the spacing, in months, of Bermudan exercise dates.
const DefaultBermudanPeriod = 3

// Params fully describes one valuation. All fields are exported and the type is
// comparable, so it can key a map or a memocache.
type Params struct {
	Type       OptionType
	Spot       float64
	Strike     float64
	Dividend   float64 // continuous dividend yield
	Rate       float64 // continuously compounded risk-free rate
	Volatility float64

	// Settlement is the reference date of the flat curves; Maturity the last
	// exercise date. Use Date to build them.
	Settlement time.Time
	Maturity   time.Time

	Exercise ExerciseKind
	// BermudanPeriod spaces Bermudan exercise dates from Settlement, in months.
	// 0 => DefaultBermudanPeriod.
	BermudanPeriod int

	Tree  TreeKind
	Steps int
}

// Validate checks the inputs every engine relies on.
func (p Params) Validate() error {
	switch {
	case p.Type != Put && p.Type != Call:
		return fmt.Errorf("%w: option type %v", ErrInvalidParams, p.Type)
	case p.Exercise < European || p.Exercise > American:
		return fmt.Errorf("%w: exercise %v", ErrInvalidParams, p.Exercise)
	case !(p.Spot > 0):
		return fmt.Errorf("%w: spot must be positive, got %v", ErrInvalidParams, p.Spot)
	case !(p.Strike > 0):
		return fmt.Errorf("%w: strike must be positive, got %v", ErrInvalidParams, p.Strike)
	case !(p.Volatility > 0):
		return fmt.Errorf("%w: volatility must be positive, got %v", ErrInvalidParams, p.Volatility)
	case math.IsNaN(p.Rate) || math.IsInf(p.Rate, 0):
		return fmt.Errorf("%w: rate %v", ErrInvalidParams, p.Rate)
	case math.IsNaN(p.Dividend) || math.IsInf(p.Dividend, 0):
		return fmt.Errorf("%w: dividend %v", ErrInvalidParams, p.Dividend)
	case !p.Maturity.After(p.Settlement):
		return fmt.Errorf("%w: maturity %s not after settlement %s", ErrInvalidParams,
			p.Maturity.Format(time.DateOnly), p.Settlement.Format(time.DateOnly))
	case p.BermudanPeriod < 0:
		return fmt.Errorf("%w: bermudan period %d", ErrInvalidParams, p.BermudanPeriod)
	}
	return nil
}

// Expiry is the time to maturity in years (Actual/365 Fixed).
func (p Params) Expiry() float64 {
	return YearFraction(p.Settlement, p.Maturity)
}

// ExerciseDates lists Bermudan exercise dates: every BermudanPeriod months after
// Settlement, up to and including Maturity. Maturity is always the last date.
func (p Params) ExerciseDates() []time.Time {
	period := p.BermudanPeriod
	if period == 0 {
		period = DefaultBermudanPeriod
	}
	var out []time.Time
	for i := 1; ; i++ {
		d := AddMonths(p.Settlement, i*period)
		if !d.Before(p.Maturity) {
			break
		}
		out = append(out, d)
	}
	return append(out, p.Maturity)
}

func (p Params) payoff(s float64) float64 {
	if p.Type == Call {
		return math.Max(s-p.Strike, 0)
	}
	return math.Max(p.Strike-s, 0)
}
