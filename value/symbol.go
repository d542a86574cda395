// Copyright 2026 The QSym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "math/big"

// Symbol is a bare, unbound variable name. An identifier with no binding
// evaluates to a Symbol; the product-identity dispatch treats Symbols as
// the symbolic outer arguments.
type Symbol string

func (s Symbol) String() string {
	return string(s)
}

func (s Symbol) Eval(Context) Value {
	return s
}

// Monom is a q-monomial: an exact rational coefficient times an integer
// power of a single variable, such as 3*q^5 or -q^(-2). It is the
// "numeric" form of an outer argument to a product identity.
type Monom struct {
	Coeff *big.Rat
	Sym   string
	Exp   int
}

// NewMonom returns c * sym^e. A zero coefficient yields the monomial 0,
// which the product identities reject at dispatch.
func NewMonom(c *big.Rat, sym string, e int) Monom {
	return Monom{Coeff: ratCopy(c), Sym: sym, Exp: e}
}

func (m Monom) String() string {
	c := Rational{m.Coeff}
	switch {
	case m.Exp == 0:
		return c.String()
	case ratIsZero(m.Coeff):
		return "0"
	}
	v := powString(m.Sym, m.Exp)
	if ratIsOne(m.Coeff) {
		return v
	}
	if m.Coeff.Cmp(ratMinusOneConst) == 0 {
		return "-" + v
	}
	return c.String() + "*" + v
}

func (m Monom) Eval(Context) Value {
	return m
}
