// Copyright 2026 The QSym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "math/big"

// Binary operators over values. The interpreter funnels every infix
// expression through Binary, which promotes operands as needed:
// rationals act as scalars on series, series act as z^0 coefficients on
// bivariate series. Binary arithmetic involving a Trivariate value is
// not defined and reported as an error.

// Binary applies the operator op to u and v.
func Binary(u Value, op string, v Value) Value {
	switch op {
	case "+":
		return add(u, v)
	case "-":
		return sub(u, v)
	case "*":
		return mul(u, v)
	case "/":
		return div(u, v)
	case "^":
		return pow(u, v)
	}
	panic(Errorf("unknown operator %s", op))
}

func trivariateUnsupported(op string) Error {
	return Errorf("unsupported operation: %s of a two-variable series; only negation and substitution are defined", op)
}

func add(u, v Value) Value {
	switch a := u.(type) {
	case Rational:
		switch b := v.(type) {
		case Rational:
			return Rational{new(big.Rat).Add(a.Rat, b.Rat)}
		case *Series:
			return seriesAdd(constSeries(a, b), b)
		}
	case *Series:
		switch b := v.(type) {
		case Rational:
			return seriesAdd(a, constSeries(b, a))
		case *Series:
			return seriesAdd(a, b)
		case *Bivariate:
			return bivariateAdd(bivariateTerm(b.Outer(), 0, retruncate(a, b.Order())), b)
		}
	case *Bivariate:
		switch b := v.(type) {
		case *Series:
			return bivariateAdd(a, bivariateTerm(a.Outer(), 0, retruncate(b, a.Order())))
		case *Bivariate:
			return bivariateAdd(a, b)
		}
	case *Trivariate:
		panic(trivariateUnsupported("addition"))
	}
	if _, ok := v.(*Trivariate); ok {
		panic(trivariateUnsupported("addition"))
	}
	panic(Errorf("cannot add %s and %s", u, v))
}

func sub(u, v Value) Value {
	switch v.(type) {
	case *Trivariate:
		panic(trivariateUnsupported("subtraction"))
	}
	if _, ok := u.(*Trivariate); ok {
		panic(trivariateUnsupported("subtraction"))
	}
	return add(u, Unary("-", v))
}

func mul(u, v Value) Value {
	switch a := u.(type) {
	case Rational:
		switch b := v.(type) {
		case Rational:
			return Rational{new(big.Rat).Mul(a.Rat, b.Rat)}
		case Symbol:
			return NewMonom(a.Rat, string(b), 1)
		case Monom:
			return Monom{Coeff: new(big.Rat).Mul(a.Rat, b.Coeff), Sym: b.Sym, Exp: b.Exp}
		case *Series:
			return seriesScalarMul(a.Rat, b)
		case *Bivariate:
			return bivariateScalarMul(a.Rat, b)
		}
	case Symbol:
		switch b := v.(type) {
		case Rational:
			return mul(b, a)
		case Symbol:
			if a == b {
				return NewMonom(ratOneConst, string(a), 2)
			}
		case Monom:
			if string(a) == b.Sym {
				return NewMonom(b.Coeff, b.Sym, b.Exp+1)
			}
		}
	case Monom:
		switch b := v.(type) {
		case Rational:
			return mul(b, a)
		case Symbol:
			return mul(v, u)
		case Monom:
			if a.Sym == b.Sym {
				return Monom{Coeff: new(big.Rat).Mul(a.Coeff, b.Coeff), Sym: a.Sym, Exp: a.Exp + b.Exp}
			}
		}
	case *Series:
		switch b := v.(type) {
		case Rational:
			return seriesScalarMul(b.Rat, a)
		case *Series:
			return seriesMul(a, b)
		case *Bivariate:
			return bivariateSeriesMul(a, b)
		}
	case *Bivariate:
		switch b := v.(type) {
		case Rational:
			return bivariateScalarMul(b.Rat, a)
		case *Series:
			return bivariateSeriesMul(b, a)
		case *Bivariate:
			return bivariateMul(a, b)
		}
	case *Trivariate:
		panic(trivariateUnsupported("multiplication"))
	}
	if _, ok := v.(*Trivariate); ok {
		panic(trivariateUnsupported("multiplication"))
	}
	panic(Errorf("cannot multiply %s and %s", u, v))
}

func div(u, v Value) Value {
	switch b := v.(type) {
	case Rational:
		if b.Sign() == 0 {
			panic(Errorf("division by zero"))
		}
		return mul(u, Rational{new(big.Rat).Inv(b.Rat)})
	}
	panic(Errorf("cannot divide %s by %s", u, v))
}

func pow(u, v Value) Value {
	n, ok := intArg(v)
	if !ok {
		panic(Errorf("exponent %s is not an integer", v))
	}
	switch a := u.(type) {
	case Rational:
		return Rational{ratPow(a.Rat, n)}
	case Symbol:
		return NewMonom(ratOneConst, string(a), n)
	case Monom:
		return Monom{Coeff: ratPow(a.Coeff, n), Sym: a.Sym, Exp: a.Exp * n}
	case *Series:
		if n < 0 {
			panic(Errorf("negative power of a series"))
		}
		return seriesPow(a, n)
	}
	panic(Errorf("cannot raise %s to a power", u))
}

// constSeries lifts a rational constant to a series at s's order and
// variable.
func constSeries(c Rational, s *Series) *Series {
	return seriesMonomial(s.Variable(), c.Rat, 0, s.Order())
}

// intArg extracts a (small) integer from a Rational value.
func intArg(v Value) (int, bool) {
	r, ok := v.(Rational)
	if !ok || !r.IsInt() || !r.Num().IsInt64() {
		return 0, false
	}
	return int(r.Num().Int64()), true
}
