package pricing

import (
	"fmt"
	"math"
)

// BlackScholes is the closed-form value of a European option.
func BlackScholes(p Params) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if p.Exercise != European {
		return 0, fmt.Errorf("%w: closed form needs European exercise, got %v", ErrUnsupported, p.Exercise)
	}

	t := p.Expiry()
	stdDev := p.Volatility * math.Sqrt(t)
	fwd := p.Spot * math.Exp((p.Rate-p.Dividend)*t)
	df := math.Exp(-p.Rate * t)
	d1 := math.Log(fwd/p.Strike)/stdDev + 0.5*stdDev
	d2 := d1 - stdDev

	if p.Type == Call {
		return df * (fwd*normCDF(d1) - p.Strike*normCDF(d2)), nil
	}
	return df * (p.Strike*normCDF(-d2) - fwd*normCDF(-d1)), nil
}

func normCDF(x float64) float64 {
	return 0.5 * math.Erfc(-x/math.Sqrt2)
}
