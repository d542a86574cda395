// Copyright 2026 The QSym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "math/big"

// Sum-form expansions of the product identities for symbolic outer
// arguments. Expanding the infinite product term by term is only possible
// when every outer argument is a concrete q-monomial; for a symbolic
// outer variable the closed-form summation side of each identity is built
// directly as a Bivariate or Trivariate series instead.

// tripleProdSymbolic builds the Jacobi triple product for a symbolic
// outer variable z:
//
//	sum_n (-1)^n * z^n * q^{n(n-1)/2}
//
// restricted to terms with q-exponent below the truncation order. The
// exponent n(n-1)/2 grows quadratically, so only O(sqrt(order)) values
// of n contribute on each side of zero.
func tripleProdSymbolic(outer, inner string, order int) *Bivariate {
	z := NewBivariate(outer, inner, order)
	bound := isqrt(2*order) + 2
	for n := -bound; n <= bound; n++ {
		e := n * (n - 1) / 2
		if e < 0 || e >= order {
			continue
		}
		c := ratOneConst
		if n&1 != 0 {
			c = ratMinusOneConst
		}
		f := z.Coeff(n)
		f.addCoeff(e, c)
		z.setTerm(n, f)
	}
	return z
}

// quinProdSymbolic builds the quintuple product for a symbolic outer
// variable z:
//
//	sum_m (z^{3m} - z^{-3m-1}) * q^{m(3m+1)/2}
//
// Each m contributes +1 at z^{3m} and -1 at z^{-3m-1}, both at
// q-exponent m(3m+1)/2.
func quinProdSymbolic(outer, inner string, order int) *Bivariate {
	z := NewBivariate(outer, inner, order)
	bound := isqrt(order) + 2
	for m := -bound; m <= bound; m++ {
		e := m * (3*m + 1) / 2
		if e < 0 || e >= order {
			continue
		}
		plus := z.Coeff(3 * m)
		plus.addCoeff(e, ratOneConst)
		z.setTerm(3*m, plus)
		minus := z.Coeff(-3*m - 1)
		minus.addCoeff(e, ratMinusOneConst)
		z.setTerm(-3*m-1, minus)
	}
	return z
}

// winquistFactor is one Pochhammer-type factor (c * z^p * q^s; q)_inf of
// the Winquist decomposition after the numeric argument has been folded
// in: p is the power of the remaining symbolic variable and s may be
// negative.
type winquistFactor struct {
	c *big.Rat
	p int
	s int
}

// winquistOneSymbolic computes Winquist's identity with exactly one
// symbolic outer argument. sym names the symbolic variable; num is the
// other, numeric, argument; symFirst records whether the symbolic
// argument was in the first position.
//
// Each of the eight factors becomes (c * z^p * q^s; q)_inf with
// c = num.Coeff^(numeric power) and s shifted by the numeric q-power, so
// s can go negative even though series coefficients cannot store
// negative q-exponents. A factor with s = -d < 0 is rewritten
//
//	q^{-d(d+1)/2} * prod_{j=1}^{d} (q^j - c*z^p) * (c*z^p; q)_inf
//
// so that every retained factor has non-negative exponents. The extracted
// powers accumulate into a single global shift D; the whole accumulation
// runs at internal order order+D and the shift is divided back out once
// at the end. Terms whose true q-exponent is negative are dropped there.
func winquistOneSymbolic(sym string, num Monom, symFirst bool, inner string, order int) *Bivariate {
	if ratIsZero(num.Coeff) {
		panic(Errorf("winquist: zero argument"))
	}

	factors := make([]winquistFactor, 0, len(winquistFactors))
	for _, f := range winquistFactors {
		symPow, numPow := f.pa, f.pb
		if !symFirst {
			symPow, numPow = f.pb, f.pa
		}
		factors = append(factors, winquistFactor{
			c: ratPow(num.Coeff, numPow),
			p: symPow,
			s: f.s + numPow*num.Exp,
		})
	}

	// Global shift: the sum of the q-powers extracted from the
	// negative-offset factor heads.
	shift := 0
	for _, f := range factors {
		if f.s < 0 {
			d := -f.s
			shift += d * (d + 1) / 2
		}
	}
	internal := order + shift

	euler := eulerSeries(inner, internal)
	acc := bivariateTerm(sym, 0, seriesMul(euler, euler))

	for _, f := range factors {
		// A purely numeric factor beginning (1 - q^0) annihilates
		// the whole product.
		if f.p == 0 && f.s == 0 && ratIsOne(f.c) {
			return NewBivariate(sym, inner, order)
		}
		if f.p == 0 && f.s >= 0 {
			// No symbolic part: the factor is a plain series.
			acc = bivariateSeriesMul(pochhammerSeries(f.c, f.s, inner, internal), acc)
			continue
		}
		if f.s < 0 {
			// Head: prod_{j=1}^{d} (q^j - c*z^p), exponents all
			// non-negative after the q^{-d(d+1)/2} extraction.
			for j := 1; j <= -f.s; j++ {
				head := NewBivariate(sym, inner, internal)
				hf := seriesMonomial(inner, ratOneConst, j, internal)
				if f.p == 0 {
					hf.addCoeff(0, new(big.Rat).Neg(f.c))
					head.setTerm(0, hf)
				} else {
					head.setTerm(0, hf)
					head.setTerm(f.p, seriesMonomial(inner, new(big.Rat).Neg(f.c), 0, internal))
				}
				acc = bivariateMul(acc, head)
			}
			// Tail: (c*z^p; q)_inf starting at exponent 0.
			acc = mulPochhammerBivariate(acc, f.c, f.p, 0, internal)
			continue
		}
		acc = mulPochhammerBivariate(acc, f.c, f.p, f.s, internal)
	}

	return bivariateShiftDown(acc, shift, order)
}

// mulPochhammerBivariate multiplies acc by (c * z^p * q^s; q)_inf =
// prod_{k>=0} (1 - c * z^p * q^{s+k}), s >= 0, by sequential truncated
// multiplication. Factors with s+k at or beyond the order are 1.
func mulPochhammerBivariate(acc *Bivariate, c *big.Rat, p, s, order int) *Bivariate {
	negc := new(big.Rat).Neg(c)
	for e := s; e < order; e++ {
		factor := NewBivariate(acc.Outer(), acc.Inner(), order)
		factor.setTerm(0, seriesOne(acc.Inner(), order))
		f := factor.Coeff(p)
		f.addCoeff(e, negc)
		factor.setTerm(p, f)
		acc = bivariateMul(acc, factor)
	}
	return acc
}

// winquistBothSymbolic computes Winquist's identity with both outer
// arguments symbolic, producing a Trivariate series. The factor
// decomposition is the same, but every factor now carries a pair of
// outer exponents. With two bare symbols the internal q-offsets stay in
// {0, 1, 2}, so the shift accumulators both remain zero and no internal
// shift is needed.
func winquistBothSymbolic(outerA, outerB, inner string, order int) *Trivariate {
	euler := eulerSeries(inner, order)
	acc := NewTrivariate(outerA, outerB, inner, order)
	acc.setTerm([2]int{0, 0}, seriesMul(euler, euler))

	for _, f := range winquistFactors {
		// (a^pa * b^pb * q^s; q)_inf, one sub-factor at a time.
		for e := f.s; e < order; e++ {
			acc = trivariateMulFactor(acc, ratOneConst, f.pa, f.pb, e)
		}
	}
	return acc
}

// isqrt returns the integer square root of n (the largest r with
// r*r <= n), 0 for negative n.
func isqrt(n int) int {
	if n <= 0 {
		return 0
	}
	r := 0
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}
