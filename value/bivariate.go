// Copyright 2026 The QSym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"math/big"
	"sort"
)

// Bivariate is a sparse Laurent polynomial in an outer variable whose
// coefficients are truncated series in the inner variable:
//
//	f(z, q) = sum_k c_k(q) * z^k + O(q^order)
//
// The z-exponents may be negative. Invariants:
//   - no stored coefficient is the zero series
//   - every stored coefficient has exactly the shared truncation order
//   - the outer variable name differs from the inner variable name
type Bivariate struct {
	outer string
	inner string
	terms map[int]*Series
	order int
}

// NewBivariate returns the zero bivariate series 0 + O(inner^order).
func NewBivariate(outer, inner string, order int) *Bivariate {
	if outer == inner {
		panic(Errorf("bivariate series outer variable %s equals inner variable", outer))
	}
	return &Bivariate{
		outer: outer,
		inner: inner,
		terms: make(map[int]*Series),
		order: order,
	}
}

// bivariateTerm returns f * z^k; the inner variable and truncation order
// come from f.
func bivariateTerm(outer string, k int, f *Series) *Bivariate {
	b := NewBivariate(outer, f.Variable(), f.Order())
	b.setTerm(k, f.Copy())
	return b
}

// setTerm installs f at z^k, pruning zero. f must already share the
// bivariate's inner variable and order; the series is not copied.
func (b *Bivariate) setTerm(k int, f *Series) {
	if f == nil || f.IsZero() {
		delete(b.terms, k)
		return
	}
	b.terms[k] = f
}

// IsZero reports whether all coefficients are zero.
func (b *Bivariate) IsZero() bool {
	return len(b.terms) == 0
}

// Order returns the truncation order shared by all coefficients.
func (b *Bivariate) Order() int {
	return b.order
}

// Outer returns the outer variable's name.
func (b *Bivariate) Outer() string {
	return b.outer
}

// Inner returns the inner variable's name.
func (b *Bivariate) Inner() string {
	return b.inner
}

// Exponents returns the z-exponents with nonzero coefficients in
// descending order, the order used for display.
func (b *Bivariate) Exponents() []int {
	exps := make([]int, 0, len(b.terms))
	for k := range b.terms {
		exps = append(exps, k)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(exps)))
	return exps
}

// Coeff returns a copy of the coefficient series at z^k, the zero series
// for an absent term.
func (b *Bivariate) Coeff(k int) *Series {
	if f, ok := b.terms[k]; ok {
		return f.Copy()
	}
	return NewSeries(b.inner, b.order)
}

// Equal reports structural equality: same variables, same order, same
// terms.
func (b *Bivariate) Equal(c *Bivariate) bool {
	if b.outer != c.outer || b.inner != c.inner || b.order != c.order || len(b.terms) != len(c.terms) {
		return false
	}
	for k, f := range b.terms {
		g, ok := c.terms[k]
		if !ok || !f.Equal(g) {
			return false
		}
	}
	return true
}

func (b *Bivariate) Eval(Context) Value {
	return b
}

// sameBivariateVariables checks the precondition of every binary
// bivariate operation. Mixing outer or inner variables is a dispatch bug
// upstream, not a user error.
func sameBivariateVariables(op string, a, b *Bivariate) {
	if a.outer != b.outer {
		panic(Errorf("%s: bivariate series in different outer variables %s and %s", op, a.outer, b.outer))
	}
	if a.inner != b.inner {
		panic(Errorf("%s: bivariate series in different inner variables %s and %s", op, a.inner, b.inner))
	}
}

// bivariateNeg negates every coefficient.
func bivariateNeg(a *Bivariate) *Bivariate {
	z := NewBivariate(a.outer, a.inner, a.order)
	for k, f := range a.terms {
		z.terms[k] = seriesNeg(f)
	}
	return z
}

// bivariateAdd adds coefficients at matching z-exponents, truncating both
// sides to the smaller order and pruning entries that cancel.
func bivariateAdd(a, b *Bivariate) *Bivariate {
	sameBivariateVariables("add", a, b)
	order := min(a.order, b.order)
	z := NewBivariate(a.outer, a.inner, order)
	for k, f := range a.terms {
		z.setTerm(k, retruncate(f, order))
	}
	for k, f := range b.terms {
		g := retruncate(f, order)
		if cur, ok := z.terms[k]; ok {
			g = seriesAdd(cur, g)
		}
		z.setTerm(k, g)
	}
	return z
}

func bivariateSub(a, b *Bivariate) *Bivariate {
	sameBivariateVariables("subtract", a, b)
	return bivariateAdd(a, bivariateNeg(b))
}

// bivariateMul is the convolution over z-exponents: the coefficient at
// z^k is the sum of a[i]*b[j] over i+j = k. Only present keys are
// visited; the term maps stay small for the identities built here.
func bivariateMul(a, b *Bivariate) *Bivariate {
	sameBivariateVariables("multiply", a, b)
	order := min(a.order, b.order)
	z := NewBivariate(a.outer, a.inner, order)
	for i, f := range a.terms {
		for j, g := range b.terms {
			p := retruncate(seriesMul(f, g), order)
			if p.IsZero() {
				continue
			}
			k := i + j
			if cur, ok := z.terms[k]; ok {
				p = seriesAdd(cur, p)
			}
			z.setTerm(k, p)
		}
	}
	return z
}

// bivariateScalarMul multiplies every coefficient by the rational s.
func bivariateScalarMul(s *big.Rat, a *Bivariate) *Bivariate {
	z := NewBivariate(a.outer, a.inner, a.order)
	if ratIsZero(s) {
		return z
	}
	for k, f := range a.terms {
		z.setTerm(k, seriesScalarMul(s, f))
	}
	return z
}

// bivariateSeriesMul multiplies every coefficient by the series f,
// equivalent to multiplying by a bivariate with the single term f*z^0.
func bivariateSeriesMul(f *Series, a *Bivariate) *Bivariate {
	if f.Variable() != a.inner {
		panic(Errorf("multiply: series variable %s does not match inner variable %s", f.Variable(), a.inner))
	}
	order := min(f.Order(), a.order)
	z := NewBivariate(a.outer, a.inner, order)
	for k, g := range a.terms {
		z.setTerm(k, retruncate(seriesMul(f, g), order))
	}
	return z
}

// bivariateShiftDown divides every coefficient by q^d, dropping terms
// whose true exponent is negative, and truncates to the given order.
func bivariateShiftDown(a *Bivariate, d, order int) *Bivariate {
	z := NewBivariate(a.outer, a.inner, order)
	for k, f := range a.terms {
		z.setTerm(k, seriesShiftDown(f, d, order))
	}
	return z
}

// SubstMonomial evaluates the bivariate series at z = c * q^m, collapsing
// it to a plain series. A term c_k(q) * z^k becomes c^k * q^{m*k} *
// c_k(q); contributions whose exponents fall outside [0, order) are
// dropped, so substitutions that reintroduce negative true exponents
// lose those terms.
func (b *Bivariate) SubstMonomial(c *big.Rat, m int) *Series {
	if ratIsZero(c) {
		panic(Errorf("substitution of zero for %s", b.outer))
	}
	z := NewSeries(b.inner, b.order)
	for k, f := range b.terms {
		scale := ratPow(c, k)
		for _, e := range f.Exponents() {
			z.addCoeff(e+m*k, new(big.Rat).Mul(scale, f.Coeff(e)))
		}
	}
	return z
}
