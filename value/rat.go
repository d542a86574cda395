// Copyright 2026 The QSym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "math/big"

// Rational is an exact rational scalar. It wraps big.Rat; the embedded
// pointer is never shared with a stored series coefficient, since
// coefficients are always copied on the way in and out of a series.
type Rational struct {
	*big.Rat
}

func (r Rational) String() string {
	if r.IsInt() {
		return r.Num().String()
	}
	return r.Num().String() + "/" + r.Denom().String()
}

func (r Rational) Eval(Context) Value {
	return r
}

// RatInt returns x as a Rational.
func RatInt(x int64) Rational {
	return Rational{big.NewRat(x, 1)}
}

// SetRationalString parses a literal like "7", "-3", or "22/7".
func SetRationalString(s string) (Rational, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Rational{}, Error("rational number syntax: " + s)
	}
	return Rational{r}, nil
}

// ratCopy returns a fresh copy of r.
func ratCopy(r *big.Rat) *big.Rat {
	return new(big.Rat).Set(r)
}

func ratIsZero(r *big.Rat) bool {
	return r.Sign() == 0
}

func ratIsOne(r *big.Rat) bool {
	return r.Cmp(ratOneConst) == 0
}

// ratInv returns 1/r. It is an error to invert zero.
func ratInv(r *big.Rat) *big.Rat {
	if r.Sign() == 0 {
		panic(Errorf("division by zero"))
	}
	return new(big.Rat).Inv(r)
}

// ratPow returns r^n for any integer n (n < 0 inverts).
func ratPow(r *big.Rat, n int) *big.Rat {
	if n < 0 {
		return ratPow(ratInv(r), -n)
	}
	z := big.NewRat(1, 1)
	base := ratCopy(r)
	for i := 0; i < n; i++ {
		z.Mul(z, base)
	}
	return z
}

// Shared read-only constants. Never stored in a series and never mutated.
var (
	ratOneConst      = big.NewRat(1, 1)
	ratMinusOneConst = big.NewRat(-1, 1)
)
