package pricing

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// referencePut is the classic textbook put: S=36, K=40, r=6%, q=0, vol=20%, 1y.
func referencePut() Params {
	return Params{
		Type:       Put,
		Spot:       36,
		Strike:     40,
		Dividend:   0,
		Rate:       0.06,
		Volatility: 0.20,
		Settlement: Date(1998, time.May, 17),
		Maturity:   Date(1999, time.May, 17),
		Exercise:   European,
		Steps:      801,
	}
}

// =============================================================================
// Closed form
// =============================================================================

func TestBlackScholes_ReferencePut(t *testing.T) {
	v, err := BlackScholes(referencePut())
	require.NoError(t, err)
	assert.InDelta(t, 3.844308, v, 1e-5)
}

func TestBlackScholes_PutCallParity(t *testing.T) {
	p := referencePut()
	p.Dividend = 0.02
	put, err := BlackScholes(p)
	require.NoError(t, err)

	p.Type = Call
	call, err := BlackScholes(p)
	require.NoError(t, err)

	tt := p.Expiry()
	parity := p.Spot*math.Exp(-p.Dividend*tt) - p.Strike*math.Exp(-p.Rate*tt)
	assert.InDelta(t, parity, call-put, 1e-10)
}

func TestBlackScholes_RejectsEarlyExercise(t *testing.T) {
	p := referencePut()
	p.Exercise = American
	_, err := BlackScholes(p)
	assert.ErrorIs(t, err, ErrUnsupported)
}

// =============================================================================
// Binomial trees
// =============================================================================

func TestBinomial_EuropeanConvergesForEveryTree(t *testing.T) {
	bs, err := BlackScholes(referencePut())
	require.NoError(t, err)

	for _, tree := range Trees() {
		t.Run(tree.String(), func(t *testing.T) {
			p := referencePut()
			p.Tree = tree
			v, err := Binomial(p)
			require.NoError(t, err)
			assert.InDelta(t, bs, v, 0.01)
		})
	}
}

func TestBinomial_EarlyExerciseOrdering(t *testing.T) {
	for _, tree := range []TreeKind{CoxRossRubinstein, LeisenReimer, Joshi} {
		t.Run(tree.String(), func(t *testing.T) {
			p := referencePut()
			p.Tree = tree

			eu, err := Binomial(p)
			require.NoError(t, err)

			p.Exercise = Bermudan
			berm, err := Binomial(p)
			require.NoError(t, err)

			p.Exercise = American
			am, err := Binomial(p)
			require.NoError(t, err)

			assert.Greater(t, berm, eu)
			assert.Greater(t, am, berm)
			assert.InDelta(t, 4.36, berm, 0.02)
			assert.True(t, am > 4.47 && am < 4.50, "american=%v", am)
		})
	}
}

func TestValidate_RejectsUnknownEnums(t *testing.T) {
	p := referencePut()
	p.Type = OptionType(2)
	assert.ErrorIs(t, p.Validate(), ErrInvalidParams)

	p = referencePut()
	p.Exercise = ExerciseKind(3)
	assert.ErrorIs(t, p.Validate(), ErrInvalidParams)

	_, err := BlackScholes(p)
	assert.ErrorIs(t, err, ErrInvalidParams)
}

func TestBinomial_OddStepTreesRoundUp(t *testing.T) {
	p := referencePut()
	p.Tree = LeisenReimer
	p.Steps = 800
	even, err := Binomial(p)
	require.NoError(t, err)

	p.Steps = 801
	odd, err := Binomial(p)
	require.NoError(t, err)
	assert.Equal(t, odd, even)
}

func TestBinomial_CallNeverBelowIntrinsic(t *testing.T) {
	p := referencePut()
	p.Type = Call
	p.Spot = 60
	p.Exercise = American
	p.Tree = Tian
	v, err := Binomial(p)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, v, p.Spot-p.Strike)
}

func TestBinomial_InvalidInputs(t *testing.T) {
	cases := map[string]func(*Params){
		"zero spot":         func(p *Params) { p.Spot = 0 },
		"negative strike":   func(p *Params) { p.Strike = -1 },
		"zero vol":          func(p *Params) { p.Volatility = 0 },
		"no steps":          func(p *Params) { p.Steps = 0 },
		"maturity in past":  func(p *Params) { p.Maturity = p.Settlement.AddDate(0, 0, -1) },
		"negative bermudan": func(p *Params) { p.BermudanPeriod = -3 },
		"unknown tree":      func(p *Params) { p.Tree = TreeKind(99) },
		"unknown type":      func(p *Params) { p.Type = OptionType(7) },
		"unknown exercise":  func(p *Params) { p.Exercise = ExerciseKind(-1) },
		"probability > 1":   func(p *Params) { p.Tree = CoxRossRubinstein; p.Rate = 5; p.Volatility = 0.01; p.Steps = 1 },
		"joshi with 1 step": func(p *Params) { p.Tree = Joshi; p.Steps = 1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			p := referencePut()
			mutate(&p)
			_, err := Binomial(p)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidParams) || errors.Is(err, ErrUnsupported), "err=%v", err)
		})
	}
}

// =============================================================================
// Dates and parsing
// =============================================================================

func TestExerciseDates_Quarterly(t *testing.T) {
	got := referencePut().ExerciseDates()
	want := []time.Time{
		Date(1998, time.August, 17),
		Date(1998, time.November, 17),
		Date(1999, time.February, 17),
		Date(1999, time.May, 17),
	}
	assert.Equal(t, want, got)
}

func TestAddMonths_ClampsToMonthEnd(t *testing.T) {
	assert.Equal(t, Date(1999, time.February, 28), AddMonths(Date(1999, time.January, 31), 1))
	assert.Equal(t, Date(2000, time.February, 29), AddMonths(Date(2000, time.January, 31), 1))
	assert.Equal(t, Date(1998, time.December, 15), AddMonths(Date(1999, time.January, 15), -1))
	assert.Equal(t, Date(2001, time.March, 31), AddMonths(Date(1999, time.December, 31), 15))
}

func TestYearFraction_Actual365(t *testing.T) {
	assert.Equal(t, 1.0, YearFraction(Date(1998, time.May, 17), Date(1999, time.May, 17)))
	assert.InDelta(t, 366.0/365.0, YearFraction(Date(2000, time.January, 1), Date(2001, time.January, 1)), 1e-15)
}

func TestParseTreeKind(t *testing.T) {
	for _, tree := range Trees() {
		got, err := ParseTreeKind(tree.String())
		require.NoError(t, err)
		assert.Equal(t, tree, got)
	}
	got, err := ParseTreeKind("CRR")
	require.NoError(t, err)
	assert.Equal(t, CoxRossRubinstein, got)

	_, err = ParseTreeKind("trinomial")
	assert.ErrorIs(t, err, ErrInvalidParams)
}

func TestParseOptionType(t *testing.T) {
	got, err := ParseOptionType("CALL")
	require.NoError(t, err)
	assert.Equal(t, Call, got)

	_, err = ParseOptionType("straddle")
	assert.ErrorIs(t, err, ErrInvalidParams)
}
