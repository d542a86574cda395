// Copyright 2026 The QSym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "math/big"

// Numeric infinite products. These expand a product one factor at a
// time, truncating after each multiplication. Factor k of a product like
// (q;q)_inf only touches exponents at q^k and above, so once k reaches
// the truncation order the remaining factors are all 1 and the partial
// product is exact to the order.

// productGenerator multiplies factors into a partial product on demand.
// ensure(n) applies factors with index below n; calling it again with a
// larger n applies only the factors not yet included.
type productGenerator struct {
	partial *Series
	next    int
	factor  func(k int) *Series
}

func newProductGenerator(variable string, order, start int, factor func(k int) *Series) *productGenerator {
	return &productGenerator{
		partial: seriesOne(variable, order),
		next:    start,
		factor:  factor,
	}
}

func (g *productGenerator) ensure(n int) {
	for g.next < n {
		g.partial = seriesMul(g.partial, g.factor(g.next))
		g.next++
	}
}

// eulerGenerator generates (q;q)_inf = prod_{k>=1} (1 - q^k), whose
// coefficients follow the pentagonal number theorem.
func eulerGenerator(variable string, order int) *productGenerator {
	return newProductGenerator(variable, order, 1, func(k int) *Series {
		f := seriesOne(variable, order)
		f.SetCoeff(k, ratMinusOneConst)
		return f
	})
}

// pochhammerGenerator generates (c*q^offset; q)_inf =
// prod_{k>=0} (1 - c*q^{offset+k}). Factors whose exponent is negative
// are skipped: the series representation holds no negative powers of q.
func pochhammerGenerator(c *big.Rat, offset int, variable string, order int) *productGenerator {
	negc := new(big.Rat).Neg(c)
	return newProductGenerator(variable, order, 0, func(k int) *Series {
		f := seriesOne(variable, order)
		exp := offset + k
		if exp >= 0 {
			// At exp 0 the -c lands on the constant term: 1 - c.
			f.addCoeff(exp, negc)
		}
		return f
	})
}

// eulerSeries returns (q;q)_inf to the given order.
func eulerSeries(variable string, order int) *Series {
	g := eulerGenerator(variable, order)
	g.ensure(order)
	return g.partial
}

// pochhammerSeries returns (c*q^offset; q)_inf to the given order.
func pochhammerSeries(c *big.Rat, offset int, variable string, order int) *Series {
	g := pochhammerGenerator(c, offset, variable, order)
	// Factor k has exponent offset+k; it becomes trivial once
	// offset+k >= order.
	g.ensure(max(order-offset, 1))
	return g.partial
}

// stepProduct returns prod_{n>=0} (1 - c*q^{base+step*n}) to the given
// order. Negative-exponent factors are skipped as in pochhammerSeries.
func stepProduct(c *big.Rat, base, step int, variable string, order int) *Series {
	if step <= 0 {
		panic(Errorf("step product with non-positive step %d", step))
	}
	negc := new(big.Rat).Neg(c)
	g := newProductGenerator(variable, order, 0, func(n int) *Series {
		f := seriesOne(variable, order)
		exp := base + step*n
		if exp >= 0 {
			f.addCoeff(exp, negc)
		}
		return f
	})
	n := 1
	if order > base {
		n = (order-base+step-1)/step + 1
	}
	g.ensure(n)
	return g.partial
}

// Etaq computes the generalized eta product
// (q^b; q^t)_inf = prod_{n>=0} (1 - q^{b+t*n}).
// For b <= 0 the first factor vanishes or is not representable and the
// product is the zero series.
func Etaq(b, t int, variable string, order int) *Series {
	if t <= 0 {
		panic(Errorf("etaq: step %d is not positive", t))
	}
	if b <= 0 {
		return NewSeries(variable, order)
	}
	return stepProduct(ratOneConst, b, t, variable, order)
}

// JacProd computes JAC(a,b) =
// (q^a; q^b)_inf * (q^{b-a}; q^b)_inf * (q^b; q^b)_inf, for 0 < a < b.
func JacProd(a, b int, variable string, order int) *Series {
	if a <= 0 || a >= b {
		panic(Errorf("jacprod: requires 0 < a < b, got a=%d, b=%d", a, b))
	}
	p := seriesMul(Etaq(a, b, variable, order), Etaq(b-a, b, variable, order))
	return seriesMul(p, Etaq(b, b, variable, order))
}

// tripleProdNumeric computes the Jacobi triple product for a q-monomial
// argument z = c*q^m:
//
//	prod_{n>=1}(1-q^n) * prod_{n>=0}(1-z*q^n) * prod_{n>=1}(1-q^n/z)
func tripleProdNumeric(z Monom, variable string, order int) *Series {
	if ratIsZero(z.Coeff) {
		panic(Errorf("tripleprod: zero argument"))
	}
	c, m := z.Coeff, z.Exp

	// (1 - c*q^m) appears as the first factor of the second product; if
	// it vanishes so does everything.
	if ratIsOne(c) && m == 0 {
		return NewSeries(variable, order)
	}
	inv := ratInv(c)
	// First factor of the third product is (1 - q^{1-m}/c).
	if ratIsOne(inv) && m == 1 {
		return NewSeries(variable, order)
	}

	p := seriesMul(eulerSeries(variable, order), pochhammerSeries(c, m, variable, order))
	return seriesMul(p, pochhammerSeries(inv, 1-m, variable, order))
}

// quinProdNumeric computes the quintuple product for z = c*q^m:
//
//	prod_{n>=1}(1-q^n)(1-z*q^n)(1-q^{n-1}/z)(1-z^2*q^{2n-1})(1-q^{2n-1}/z^2)
func quinProdNumeric(z Monom, variable string, order int) *Series {
	if ratIsZero(z.Coeff) {
		panic(Errorf("quinprod: zero argument"))
	}
	c, m := z.Coeff, z.Exp
	inv := ratInv(c)

	p := seriesMul(eulerSeries(variable, order), pochhammerSeries(c, m+1, variable, order))
	p = seriesMul(p, pochhammerSeries(inv, -m, variable, order))
	p = seriesMul(p, stepProduct(new(big.Rat).Mul(c, c), 2*m+1, 2, variable, order))
	return seriesMul(p, stepProduct(new(big.Rat).Mul(inv, inv), 1-2*m, 2, variable, order))
}

// winquistFactors is the factor decomposition of Winquist's product:
// after the (q;q)_inf^2 prefactor, eight Pochhammer factors of the form
// (a^pa * b^pb * q^s; q)_inf.
var winquistFactors = [8]struct {
	pa, pb, s int
}{
	{1, 0, 0},   // (a; q)
	{-1, 0, 1},  // (q/a; q)
	{0, 1, 0},   // (b; q)
	{0, -1, 1},  // (q/b; q)
	{1, 1, 0},   // (a*b; q)
	{-1, -1, 2}, // (q^2/(a*b); q)
	{1, -1, 0},  // (a/b; q)
	{-1, 1, 1},  // (q*b/a; q)
}

// winquistNumeric computes Winquist's product for q-monomial arguments
// a = ac*q^ap, b = bc*q^bp.
func winquistNumeric(a, b Monom, variable string, order int) *Series {
	if ratIsZero(a.Coeff) || ratIsZero(b.Coeff) {
		panic(Errorf("winquist: zero argument"))
	}
	euler := eulerSeries(variable, order)
	result := seriesMul(euler, euler)
	for _, f := range winquistFactors {
		c := new(big.Rat).Mul(ratPow(a.Coeff, f.pa), ratPow(b.Coeff, f.pb))
		offset := f.s + f.pa*a.Exp + f.pb*b.Exp
		// A factor (1 - q^0) annihilates the product.
		if ratIsOne(c) && offset == 0 {
			return NewSeries(variable, order)
		}
		result = seriesMul(result, pochhammerSeries(c, offset, variable, order))
	}
	return result
}
