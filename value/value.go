// Copyright 2026 The QSym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package value implements the data types and algorithms of the qsym
// engine: exact rationals, truncated formal power series in q, Laurent
// series in one or two outer variables with series coefficients, the
// classical q-series product identities (Jacobi triple product, quintuple
// product, Winquist's identity) in both their numeric and symbolic forms,
// and the operator dispatch that combines all of these.
package value

import (
	"fmt"

	"qsym.io/qsym/config"
)

// Value is the interface satisfied by every result the engine produces:
// Rational, Symbol, Monom, *Series, *Bivariate and *Trivariate.
type Value interface {
	// String returns the display form of the value.
	String() string

	// Eval evaluates the value in the given context. Values are
	// self-evaluating; the method exists so values satisfy Expr.
	Eval(Context) Value
}

// Expr is a parsed expression that can be evaluated to a Value.
type Expr interface {
	String() string

	Eval(Context) Value
}

// Context is the evaluation context provided by the interpreter: it holds
// the session configuration and the variable bindings.
type Context interface {
	Config() *config.Config

	// Lookup returns the value bound to name, or nil if name is unbound.
	Lookup(name string) Value

	// Assign binds name to the value.
	Assign(name string, v Value)
}

// Error is the type of all errors raised by the engine. Errors are
// panicked and recovered at the run loop, in the manner of a calculator:
// any single input line either produces values or one error.
type Error string

func (err Error) Error() string {
	return string(err)
}

// Errorf formats an Error. Call sites panic with the result; the panic is
// recovered at the run loop.
func Errorf(format string, args ...interface{}) Error {
	return Error(fmt.Sprintf(format, args...))
}
