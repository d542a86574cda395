// Copyright 2026 The QSym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Qsym is an interpreter for q-series computations with exact rational
arithmetic. A session works with truncated formal power series in q and
with the classical infinite product identities of the theory of
partitions.

Expressions use the operators + - * / ^ with the usual precedence, and
identifiers that are not bound by assignment stand for themselves as
symbols. The builtin functions are:

	etaq(b, t, q, T)        (q^b; q^t)_inf to order T
	jacprod(a, b, q, T)     JAC(a,b), the Jacobi triple product at q^a, q^b
	tripleprod(z, q, T)     Jacobi triple product at z
	quinprod(z, q, T)       quintuple product at z
	winquist(a, b, q, T)    Winquist's identity at a, b
	subs(f, c, m)           substitute z = c*q^m into a symbolic result
	coeff(f, k)             coefficient of q^k in a series

The final order argument T may be omitted, in which case the session
default (the --order flag) applies.

When an outer argument of tripleprod, quinprod or winquist is a bare
symbol distinct from the series variable, the result is a Laurent
polynomial in that symbol whose coefficients are series in q, computed
from the identity's summation side:

	f = tripleprod(z, q, 10)
	subs(f, -1, 0)

Winquist's identity accepts zero, one or two symbolic outer arguments,
producing a plain series, a one-variable Laurent series, or a
two-variable Laurent series respectively.
*/
package main
