// Copyright 2026 The QSym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "math/big"

// Series arithmetic. Binary operations require both operands to be in
// the same variable and truncate the result to the smaller of the two
// orders. All operations allocate a fresh result.

func sameVariable(op string, a, b *Series) {
	if a.variable != b.variable {
		panic(Errorf("%s: series in different variables %s and %s", op, a.variable, b.variable))
	}
}

func seriesAdd(a, b *Series) *Series {
	sameVariable("add", a, b)
	order := min(a.order, b.order)
	z := NewSeries(a.variable, order)
	for k, c := range a.coeff {
		z.addCoeff(k, c)
	}
	for k, c := range b.coeff {
		z.addCoeff(k, c)
	}
	return z
}

func seriesNeg(a *Series) *Series {
	z := NewSeries(a.variable, a.order)
	for k, c := range a.coeff {
		z.coeff[k] = new(big.Rat).Neg(c)
	}
	return z
}

func seriesSub(a, b *Series) *Series {
	sameVariable("subtract", a, b)
	return seriesAdd(a, seriesNeg(b))
}

func seriesScalarMul(s *big.Rat, a *Series) *Series {
	z := NewSeries(a.variable, a.order)
	if ratIsZero(s) {
		return z
	}
	for k, c := range a.coeff {
		z.coeff[k] = new(big.Rat).Mul(s, c)
	}
	return z
}

// seriesMul is the truncated convolution product.
func seriesMul(a, b *Series) *Series {
	sameVariable("multiply", a, b)
	order := min(a.order, b.order)
	z := NewSeries(a.variable, order)
	for i, ci := range a.coeff {
		if i >= order {
			continue
		}
		for j, cj := range b.coeff {
			if i+j >= order {
				continue
			}
			z.addCoeff(i+j, new(big.Rat).Mul(ci, cj))
		}
	}
	return z
}

// retruncate returns a re-truncated to the given (possibly lower) order.
func retruncate(a *Series, order int) *Series {
	if a.order <= order {
		return a.Copy()
	}
	z := NewSeries(a.variable, order)
	for k, c := range a.coeff {
		z.SetCoeff(k, c)
	}
	return z
}

// seriesShiftDown divides a by q^d, dropping any term whose shifted
// exponent is negative, and truncates to the given order. It undoes the
// uniform internal shift used by the Winquist accumulation.
func seriesShiftDown(a *Series, d, order int) *Series {
	z := NewSeries(a.variable, order)
	for k, c := range a.coeff {
		z.SetCoeff(k-d, c)
	}
	return z
}

// seriesPow raises a to a non-negative integer power.
func seriesPow(a *Series, n int) *Series {
	z := seriesOne(a.variable, a.order)
	for i := 0; i < n; i++ {
		z = seriesMul(z, a)
	}
	return z
}
