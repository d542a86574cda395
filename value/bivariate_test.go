// Copyright 2026 The QSym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// sampleBivariate builds z^2 + (1-q)*z - q^2*z^(-1) at the given order.
func sampleBivariate(order int) *Bivariate {
	b := NewBivariate("z", "q", order)
	b.setTerm(2, seriesOne("q", order))
	f := seriesOne("q", order)
	f.SetCoeff(1, big.NewRat(-1, 1))
	b.setTerm(1, f)
	b.setTerm(-1, seriesMonomial("q", big.NewRat(-1, 1), 2, order))
	return b
}

func TestBivariateOuterEqualsInnerPanics(t *testing.T) {
	require.Panics(t, func() { NewBivariate("q", "q", 5) })
}

func TestBivariateSubSelfIsZero(t *testing.T) {
	x := sampleBivariate(10)
	require.True(t, bivariateSub(x, x).IsZero())
}

func TestBivariateAddSelfEqualsDouble(t *testing.T) {
	x := sampleBivariate(10)
	two := big.NewRat(2, 1)
	require.True(t, bivariateAdd(x, x).Equal(bivariateScalarMul(two, x)))
}

func TestBivariateAddTruncatesToMin(t *testing.T) {
	a := sampleBivariate(10)
	b := sampleBivariate(6)
	sum := bivariateAdd(a, b)
	require.Equal(t, 6, sum.Order())
	for _, k := range sum.Exponents() {
		f := sum.Coeff(k)
		require.Equal(t, 6, f.Order())
		for _, e := range f.Exponents() {
			require.Less(t, e, 6)
		}
	}
}

func TestBivariateAddPrunesCancellation(t *testing.T) {
	x := sampleBivariate(10)
	sum := bivariateAdd(x, bivariateNeg(x))
	require.True(t, sum.IsZero())
	require.Empty(t, sum.Exponents())
}

func TestBivariateMulConvolution(t *testing.T) {
	// (z + z^(-1)) * (z - z^(-1)) = z^2 - z^(-2)
	one := func() *Series { return seriesOne("q", 8) }
	a := NewBivariate("z", "q", 8)
	a.setTerm(1, one())
	a.setTerm(-1, one())
	b := NewBivariate("z", "q", 8)
	b.setTerm(1, one())
	b.setTerm(-1, seriesNeg(one()))

	p := bivariateMul(a, b)
	require.Equal(t, []int{2, -2}, p.Exponents())
	require.True(t, one().Equal(p.Coeff(2)))
	require.True(t, seriesNeg(one()).Equal(p.Coeff(-2)))
}

func TestBivariateMismatchedVariablesPanic(t *testing.T) {
	a := sampleBivariate(8)
	w := NewBivariate("w", "q", 8)
	w.setTerm(0, seriesOne("q", 8))
	require.Panics(t, func() { bivariateAdd(a, w) })

	b := NewBivariate("z", "t", 8)
	b.setTerm(0, seriesOne("t", 8))
	require.Panics(t, func() { bivariateMul(a, b) })

	require.Panics(t, func() { bivariateSeriesMul(seriesOne("t", 8), a) })
}

func TestBivariateSeriesMul(t *testing.T) {
	x := sampleBivariate(10)
	f := seriesMonomial("q", big.NewRat(3, 1), 1, 10)
	p := bivariateSeriesMul(f, x)
	// z^2 coefficient was 1, becomes 3q.
	require.True(t, seriesMonomial("q", big.NewRat(3, 1), 1, 10).Equal(p.Coeff(2)))
	// z^(-1) coefficient was -q^2, becomes -3q^3.
	require.True(t, seriesMonomial("q", big.NewRat(-3, 1), 3, 10).Equal(p.Coeff(-1)))
}

func TestBivariateCoeffAbsentIsZero(t *testing.T) {
	x := sampleBivariate(10)
	f := x.Coeff(7)
	require.True(t, f.IsZero())
	require.Equal(t, 10, f.Order())
}

func TestBivariateSubstMonomial(t *testing.T) {
	// At z = -q: z^2 -> q^2, (1-q)*z -> -q + q^2, -q^2*z^(-1) -> q.
	// Total: 2*q^2.
	x := sampleBivariate(10)
	f := x.SubstMonomial(big.NewRat(-1, 1), 1)
	require.True(t, seriesMonomial("q", big.NewRat(2, 1), 2, 10).Equal(f))
}

func TestBivariateSubstZeroPanics(t *testing.T) {
	x := sampleBivariate(10)
	require.Panics(t, func() { x.SubstMonomial(new(big.Rat), 0) })
}

func TestBivariateShiftDown(t *testing.T) {
	b := NewBivariate("z", "q", 10)
	f := NewSeries("q", 10)
	f.SetCoeff(1, big.NewRat(1, 1))
	f.SetCoeff(4, big.NewRat(2, 1))
	b.setTerm(1, f)
	b.setTerm(0, seriesMonomial("q", big.NewRat(1, 1), 1, 10))

	z := bivariateShiftDown(b, 2, 6)
	require.Equal(t, 6, z.Order())
	// z^1 coefficient q + 2q^4 becomes 2q^2: the q term drops below zero.
	require.True(t, seriesMonomial("q", big.NewRat(2, 1), 2, 6).Equal(z.Coeff(1)))
	// z^0 coefficient q drops entirely and the term is pruned.
	require.Equal(t, []int{1}, z.Exponents())
}

func TestBivariateString(t *testing.T) {
	x := sampleBivariate(3)
	require.Equal(t, "z^2 + (1 - q)*z - q^2*z^(-1) + O(q^3)", x.String())
}
