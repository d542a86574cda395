// Copyright 2026 The QSym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

// Dispatch for the product identities. Each outer argument arrives as a
// tagged value, either a Symbol (bare name) or a Monom (c * q^e), and is
// classified against the inner variable: a Symbol naming the inner
// variable itself is the monomial 1*q^1 in disguise and must take the
// numeric path, never the symbolic one.

// outerArg is a classified outer argument.
type outerArg struct {
	symbolic bool
	name     string // symbolic only
	mono     Monom  // numeric only
}

// classifyOuter classifies an outer argument of a product identity.
func classifyOuter(fn string, arg Value, inner string) outerArg {
	switch a := arg.(type) {
	case Symbol:
		if string(a) == inner {
			return outerArg{mono: NewMonom(ratOneConst, inner, 1)}
		}
		return outerArg{symbolic: true, name: string(a)}
	case Monom:
		if a.Sym != inner {
			if ratIsZero(a.Coeff) || a.Exp == 0 {
				return outerArg{mono: NewMonom(a.Coeff, inner, 0)}
			}
			panic(Errorf("%s: argument %s is not a %s-monomial", fn, a, inner))
		}
		return outerArg{mono: a}
	case Rational:
		return outerArg{mono: NewMonom(a.Rat, inner, 0)}
	}
	panic(Errorf("%s: argument %s is neither a symbol nor a %s-monomial", fn, arg, inner))
}

// TripleProd evaluates the Jacobi triple product identity at the outer
// argument z to the given truncation order. A numeric z takes the
// infinite-product expansion; a symbolic z takes the sum-form expansion
// and yields a Bivariate series.
func TripleProd(z Value, inner string, order int) Value {
	arg := classifyOuter("tripleprod", z, inner)
	if arg.symbolic {
		return tripleProdSymbolic(arg.name, inner, order)
	}
	return tripleProdNumeric(arg.mono, inner, order)
}

// QuinProd evaluates the quintuple product identity at the outer
// argument z to the given truncation order, routing exactly as
// TripleProd does.
func QuinProd(z Value, inner string, order int) Value {
	arg := classifyOuter("quinprod", z, inner)
	if arg.symbolic {
		return quinProdSymbolic(arg.name, inner, order)
	}
	return quinProdNumeric(arg.mono, inner, order)
}

// Winquist evaluates Winquist's identity at the outer arguments a and b.
// Zero symbolic arguments take the infinite-product expansion; exactly
// one, regardless of position, yields a Bivariate series; both yield a
// Trivariate series.
func Winquist(a, b Value, inner string, order int) Value {
	argA := classifyOuter("winquist", a, inner)
	argB := classifyOuter("winquist", b, inner)
	switch {
	case argA.symbolic && argB.symbolic:
		if argA.name == argB.name {
			panic(Errorf("winquist: symbolic arguments share the name %s", argA.name))
		}
		return winquistBothSymbolic(argA.name, argB.name, inner, order)
	case argA.symbolic:
		return winquistOneSymbolic(argA.name, argB.mono, true, inner, order)
	case argB.symbolic:
		return winquistOneSymbolic(argB.name, argA.mono, false, inner, order)
	}
	return winquistNumeric(argA.mono, argB.mono, inner, order)
}
