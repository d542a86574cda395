// Copyright 2026 The QSym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"math/big"
	"sort"
)

// Trivariate is a sparse Laurent polynomial in two independent outer
// variables whose coefficients are truncated series in the inner
// variable:
//
//	f(a, b, q) = sum_{r,s} c_{r,s}(q) * a^r * b^s + O(q^order)
//
// It is produced only by Winquist's identity with both outer arguments
// symbolic. Its public arithmetic surface is deliberately narrower than
// Bivariate's: negation and substitution only. Binary arithmetic between
// two Trivariate values is an unsupported operation reported through the
// operator dispatch.
type Trivariate struct {
	outerA string
	outerB string
	inner  string
	terms  map[[2]int]*Series
	order  int
}

// NewTrivariate returns the zero trivariate series 0 + O(inner^order).
func NewTrivariate(outerA, outerB, inner string, order int) *Trivariate {
	if outerA == outerB || outerA == inner || outerB == inner {
		panic(Errorf("trivariate series variables %s, %s, %s are not distinct", outerA, outerB, inner))
	}
	return &Trivariate{
		outerA: outerA,
		outerB: outerB,
		inner:  inner,
		terms:  make(map[[2]int]*Series),
		order:  order,
	}
}

func (t *Trivariate) setTerm(key [2]int, f *Series) {
	if f == nil || f.IsZero() {
		delete(t.terms, key)
		return
	}
	t.terms[key] = f
}

// IsZero reports whether all coefficients are zero.
func (t *Trivariate) IsZero() bool {
	return len(t.terms) == 0
}

// Order returns the truncation order shared by all coefficients.
func (t *Trivariate) Order() int {
	return t.order
}

// OuterA returns the first outer variable's name.
func (t *Trivariate) OuterA() string {
	return t.outerA
}

// OuterB returns the second outer variable's name.
func (t *Trivariate) OuterB() string {
	return t.outerB
}

// Inner returns the inner variable's name.
func (t *Trivariate) Inner() string {
	return t.inner
}

// Exponents returns the (a-exponent, b-exponent) keys with nonzero
// coefficients, descending by a-exponent then by b-exponent, the
// deterministic order used for display.
func (t *Trivariate) Exponents() [][2]int {
	keys := make([][2]int, 0, len(t.terms))
	for k := range t.terms {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i][0] != keys[j][0] {
			return keys[i][0] > keys[j][0]
		}
		return keys[i][1] > keys[j][1]
	})
	return keys
}

// Coeff returns a copy of the coefficient series at a^r * b^s, the zero
// series for an absent term.
func (t *Trivariate) Coeff(r, s int) *Series {
	if f, ok := t.terms[[2]int{r, s}]; ok {
		return f.Copy()
	}
	return NewSeries(t.inner, t.order)
}

func (t *Trivariate) Eval(Context) Value {
	return t
}

// trivariateNeg negates every coefficient.
func trivariateNeg(a *Trivariate) *Trivariate {
	z := NewTrivariate(a.outerA, a.outerB, a.inner, a.order)
	for k, f := range a.terms {
		z.terms[k] = seriesNeg(f)
	}
	return z
}

// trivariateSeriesMul multiplies every coefficient by the series f.
// Internal: used by the Winquist accumulation for its prefactor.
func trivariateSeriesMul(f *Series, a *Trivariate) *Trivariate {
	order := min(f.Order(), a.order)
	z := NewTrivariate(a.outerA, a.outerB, a.inner, order)
	for k, g := range a.terms {
		z.setTerm(k, retruncate(seriesMul(f, g), order))
	}
	return z
}

// trivariateMulFactor multiplies the accumulator by the two-term factor
// (1 - c * a^r * b^s * q^e). Internal: this is the only multiplication
// the Winquist accumulation needs, so no general trivariate product is
// exposed.
func trivariateMulFactor(acc *Trivariate, c *big.Rat, r, s, e int) *Trivariate {
	if e >= acc.order {
		return acc
	}
	z := NewTrivariate(acc.outerA, acc.outerB, acc.inner, acc.order)
	negc := new(big.Rat).Neg(c)
	for k, f := range acc.terms {
		// 1 * f at the same key.
		if cur, ok := z.terms[k]; ok {
			z.setTerm(k, seriesAdd(cur, f))
		} else {
			z.setTerm(k, f.Copy())
		}
		// -c * q^e * f shifted to (k_a + r, k_b + s).
		shifted := NewSeries(acc.inner, acc.order)
		for _, x := range f.Exponents() {
			shifted.addCoeff(x+e, new(big.Rat).Mul(negc, f.Coeff(x)))
		}
		if shifted.IsZero() {
			continue
		}
		key := [2]int{k[0] + r, k[1] + s}
		if cur, ok := z.terms[key]; ok {
			z.setTerm(key, seriesAdd(cur, shifted))
		} else {
			z.setTerm(key, shifted)
		}
	}
	return z
}

// SubstConstants evaluates the trivariate series at constant values for
// both outer variables, collapsing it to a plain series.
func (t *Trivariate) SubstConstants(ca, cb *big.Rat) *Series {
	if ratIsZero(ca) || ratIsZero(cb) {
		panic(Errorf("substitution of zero for %s or %s", t.outerA, t.outerB))
	}
	z := NewSeries(t.inner, t.order)
	for k, f := range t.terms {
		scale := new(big.Rat).Mul(ratPow(ca, k[0]), ratPow(cb, k[1]))
		for _, e := range f.Exponents() {
			z.addCoeff(e, new(big.Rat).Mul(scale, f.Coeff(e)))
		}
	}
	return z
}
