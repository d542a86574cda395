// Copyright 2026 The QSym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTripleProdSymbolicStructure(t *testing.T) {
	// At order 5 the contributing n have n(n-1)/2 < 5: n in [-2, 3].
	// Each contributes (-1)^n * q^{n(n-1)/2} at z^n.
	b := tripleProdSymbolic("z", "q", 5)
	require.Equal(t, []int{3, 2, 1, 0, -1, -2}, b.Exponents())
	for n := -2; n <= 3; n++ {
		c := big.NewRat(1, 1)
		if n&1 != 0 {
			c = big.NewRat(-1, 1)
		}
		want := seriesMonomial("q", c, n*(n-1)/2, 5)
		require.True(t, want.Equal(b.Coeff(n)), "coefficient at z^%d", n)
	}
}

func TestQuinProdSymbolicStructure(t *testing.T) {
	// At order 5 the contributing m have m(3m+1)/2 < 5: m in {-1, 0, 1}.
	// Each contributes +1 at z^{3m} and -1 at z^{-3m-1}.
	b := quinProdSymbolic("z", "q", 5)
	require.Equal(t, []int{3, 2, 0, -1, -3, -4}, b.Exponents())

	one, minusOne := big.NewRat(1, 1), big.NewRat(-1, 1)
	require.True(t, seriesMonomial("q", one, 2, 5).Equal(b.Coeff(3)))       // m=1
	require.True(t, seriesMonomial("q", minusOne, 1, 5).Equal(b.Coeff(2)))  // m=-1
	require.True(t, seriesMonomial("q", one, 0, 5).Equal(b.Coeff(0)))       // m=0
	require.True(t, seriesMonomial("q", minusOne, 0, 5).Equal(b.Coeff(-1))) // m=0
	require.True(t, seriesMonomial("q", one, 1, 5).Equal(b.Coeff(-3)))      // m=-1
	require.True(t, seriesMonomial("q", minusOne, 2, 5).Equal(b.Coeff(-4))) // m=1
}

func TestTripleProdSymbolicSubstConstantMatchesNumeric(t *testing.T) {
	// Substituting a constant for z leaves every q-exponent unchanged, so
	// the collapsed series must match the numeric product exactly.
	b := tripleProdSymbolic("z", "q", 20)
	for _, c := range []*big.Rat{
		big.NewRat(2, 1),
		big.NewRat(-1, 1),
		big.NewRat(1, 2),
		big.NewRat(-3, 2),
	} {
		got := b.SubstMonomial(c, 0)
		want := tripleProdNumeric(qMonom(c, 0), "q", 20)
		require.True(t, want.Equal(got), "z = %s", c)
	}
}

func TestTripleProdSymbolicSubstMonomialMatchesNumeric(t *testing.T) {
	// Substituting z = c*q raises the q-exponent of the z^n term by n, so
	// sum terms just beyond the symbolic truncation can fall below it
	// after substitution. Compare only the coefficients low enough that no
	// such term reaches them.
	b := tripleProdSymbolic("z", "q", 12)
	for _, c := range []*big.Rat{big.NewRat(-1, 1), big.NewRat(3, 1)} {
		got := b.SubstMonomial(c, 1)
		want := tripleProdNumeric(qMonom(c, 1), "q", 12)
		for k := 0; k < 10; k++ {
			require.Equal(t, 0, want.Coeff(k).Cmp(got.Coeff(k)), "z = %s*q, coefficient of q^%d", c, k)
		}
	}
}

func TestQuinProdSymbolicSubstConstantMatchesNumeric(t *testing.T) {
	b := quinProdSymbolic("z", "q", 15)
	for _, c := range []*big.Rat{
		big.NewRat(2, 1),
		big.NewRat(-1, 1),
		big.NewRat(1, 2),
	} {
		got := b.SubstMonomial(c, 0)
		want := quinProdNumeric(qMonom(c, 0), "q", 15)
		require.True(t, want.Equal(got), "z = %s", c)
	}
}

func TestWinquistOneSymbolicSubstMatchesNumeric(t *testing.T) {
	// Symbolic first argument, numeric constant second.
	b := winquistOneSymbolic("z", qMonom(big.NewRat(3, 1), 0), true, "q", 10)
	got := b.SubstMonomial(big.NewRat(2, 1), 0)
	want := winquistNumeric(qMonom(big.NewRat(2, 1), 0), qMonom(big.NewRat(3, 1), 0), "q", 10)
	require.True(t, want.Equal(got))

	// Symbolic second argument, numeric monomial 2*q first: every factor
	// offset stays non-negative, so the substituted series must match the
	// numeric product exactly.
	b = winquistOneSymbolic("w", qMonom(big.NewRat(2, 1), 1), false, "q", 10)
	got = b.SubstMonomial(big.NewRat(3, 1), 0)
	want = winquistNumeric(qMonom(big.NewRat(2, 1), 1), qMonom(big.NewRat(3, 1), 0), "q", 10)
	require.True(t, want.Equal(got))
}

func TestWinquistOneSymbolicAnnihilation(t *testing.T) {
	// A numeric argument of 1 makes the factor (1 - b) vanish.
	b := winquistOneSymbolic("z", qMonom(big.NewRat(1, 1), 0), true, "q", 10)
	require.True(t, b.IsZero())
	require.Equal(t, 10, b.Order())
}

func TestWinquistOneSymbolicShiftConsistency(t *testing.T) {
	// A numeric argument 3*q^(-1) drives factor offsets negative and
	// exercises the internal shift. The coefficients below a given order
	// are exact, so recomputing at a higher order and retruncating must
	// reproduce the lower-order result.
	num := qMonom(big.NewRat(3, 1), -1)
	lo := winquistOneSymbolic("z", num, true, "q", 8)
	hi := winquistOneSymbolic("z", num, true, "q", 12)

	want := NewBivariate("z", "q", 8)
	for _, k := range hi.Exponents() {
		want.setTerm(k, retruncate(hi.Coeff(k), 8))
	}
	require.True(t, want.Equal(lo))
}

func TestWinquistBothSymbolicSubstMatchesNumeric(t *testing.T) {
	x := winquistBothSymbolic("a", "b", "q", 5)
	for _, pair := range [][2]*big.Rat{
		{big.NewRat(2, 1), big.NewRat(3, 1)},
		{big.NewRat(-2, 1), big.NewRat(3, 1)},
		{big.NewRat(1, 2), big.NewRat(5, 1)},
	} {
		got := x.SubstConstants(pair[0], pair[1])
		want := winquistNumeric(qMonom(pair[0], 0), qMonom(pair[1], 0), "q", 5)
		require.True(t, want.Equal(got), "a = %s, b = %s", pair[0], pair[1])
	}
}

func TestIsqrt(t *testing.T) {
	require.Equal(t, 0, isqrt(-4))
	require.Equal(t, 0, isqrt(0))
	require.Equal(t, 1, isqrt(3))
	require.Equal(t, 2, isqrt(4))
	require.Equal(t, 3, isqrt(15))
	require.Equal(t, 4, isqrt(16))
}
