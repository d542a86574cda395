// Copyright 2026 The QSym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "math/big"

// Unary applies the operator op to v. Negation is defined for every
// value kind, including Trivariate.
func Unary(op string, v Value) Value {
	if op != "-" {
		panic(Errorf("unknown unary operator %s", op))
	}
	switch a := v.(type) {
	case Rational:
		return Rational{new(big.Rat).Neg(a.Rat)}
	case Symbol:
		return NewMonom(ratMinusOneConst, string(a), 1)
	case Monom:
		return Monom{Coeff: new(big.Rat).Neg(a.Coeff), Sym: a.Sym, Exp: a.Exp}
	case *Series:
		return seriesNeg(a)
	case *Bivariate:
		return bivariateNeg(a)
	case *Trivariate:
		return trivariateNeg(a)
	}
	panic(Errorf("cannot negate %s", v))
}
