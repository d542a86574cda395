// Copyright 2026 The QSym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func rat(p, q int64) Rational {
	return Rational{big.NewRat(p, q)}
}

func TestBinaryRationalArithmetic(t *testing.T) {
	require.Equal(t, "11/4", Binary(rat(2, 1), "+", rat(3, 4)).String())
	require.Equal(t, "5/4", Binary(rat(2, 1), "-", rat(3, 4)).String())
	require.Equal(t, "3/2", Binary(rat(2, 1), "*", rat(3, 4)).String())
	require.Equal(t, "8/3", Binary(rat(2, 1), "/", rat(3, 4)).String())
	require.Equal(t, "9/16", Binary(rat(3, 4), "^", rat(2, 1)).String())
	require.Equal(t, "16/9", Binary(rat(3, 4), "^", rat(-2, 1)).String())

	require.Panics(t, func() { Binary(rat(1, 1), "/", rat(0, 1)) })
	require.Panics(t, func() { Binary(rat(1, 1), "^", rat(1, 2)) })
}

func TestBinarySymbolAlgebra(t *testing.T) {
	z := Symbol("z")

	m, ok := Binary(rat(2, 1), "*", z).(Monom)
	require.True(t, ok)
	require.Equal(t, "2*z", m.String())

	m, ok = Binary(z, "*", z).(Monom)
	require.True(t, ok)
	require.Equal(t, "z^2", m.String())

	m, ok = Binary(z, "^", rat(3, 1)).(Monom)
	require.True(t, ok)
	require.Equal(t, "z^3", m.String())

	m, ok = Binary(m, "*", rat(-1, 2)).(Monom)
	require.True(t, ok)
	require.Equal(t, "-1/2*z^3", m.String())

	// Distinct symbols do not combine.
	require.Panics(t, func() { Binary(z, "*", Symbol("w")) })
}

func TestNewMonomCopiesCoefficient(t *testing.T) {
	c := big.NewRat(2, 1)
	m := NewMonom(c, "z", 1)
	c.SetInt64(99)
	require.Equal(t, 0, big.NewRat(2, 1).Cmp(m.Coeff))

	// The value-level operators build monomials the same way.
	r := rat(2, 1)
	m, ok := Binary(r, "*", Symbol("z")).(Monom)
	require.True(t, ok)
	r.SetInt64(99)
	require.Equal(t, 0, big.NewRat(2, 1).Cmp(m.Coeff))
}

func TestBinarySeriesPromotion(t *testing.T) {
	f := eulerSeries("q", 10)

	// Adding a rational adjusts the constant term.
	g, ok := Binary(f, "+", rat(1, 1)).(*Series)
	require.True(t, ok)
	require.Equal(t, 0, big.NewRat(2, 1).Cmp(g.Coeff(0)))

	g, ok = Binary(rat(2, 1), "*", f).(*Series)
	require.True(t, ok)
	require.Equal(t, 0, big.NewRat(-2, 1).Cmp(g.Coeff(1)))

	// Series ^ 2 is a truncated square.
	g, ok = Binary(f, "^", rat(2, 1)).(*Series)
	require.True(t, ok)
	require.True(t, seriesMul(f, f).Equal(g))

	require.Panics(t, func() { Binary(f, "^", rat(-1, 1)) })
}

func TestBinaryBivariatePromotion(t *testing.T) {
	b := tripleProdSymbolic("z", "q", 10)

	// A series operand acts at z^0.
	f := eulerSeries("q", 10)
	sum, ok := Binary(b, "+", f).(*Bivariate)
	require.True(t, ok)
	require.True(t, seriesAdd(b.Coeff(0), f).Equal(sum.Coeff(0)))
	require.True(t, b.Coeff(1).Equal(sum.Coeff(1)))

	// And multiplies every coefficient.
	prod, ok := Binary(f, "*", b).(*Bivariate)
	require.True(t, ok)
	require.True(t, seriesMul(f, b.Coeff(1)).Equal(prod.Coeff(1)))

	// Scalar multiplication.
	sc, ok := Binary(rat(3, 1), "*", b).(*Bivariate)
	require.True(t, ok)
	require.True(t, seriesScalarMul(big.NewRat(3, 1), b.Coeff(-1)).Equal(sc.Coeff(-1)))

	// Bivariate times bivariate convolves.
	sq, ok := Binary(b, "*", b).(*Bivariate)
	require.True(t, ok)
	require.True(t, bivariateMul(b, b).Equal(sq))
}

func TestUnaryNeg(t *testing.T) {
	require.Equal(t, "-3/4", Unary("-", rat(3, 4)).String())

	m, ok := Unary("-", Symbol("z")).(Monom)
	require.True(t, ok)
	require.Equal(t, "-z", m.String())

	f, ok := Unary("-", eulerSeries("q", 8)).(*Series)
	require.True(t, ok)
	require.Equal(t, 0, big.NewRat(-1, 1).Cmp(f.Coeff(0)))

	b, ok := Unary("-", tripleProdSymbolic("z", "q", 8)).(*Bivariate)
	require.True(t, ok)
	require.True(t, seriesNeg(seriesOne("q", 8)).Equal(b.Coeff(0)))
}
