// Copyright 2026 The QSym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

// The builtin functions of the qsym language. The parser resolves a call
// f(args...) through Call; argument validation happens here so the
// algorithms themselves can assume well-formed inputs.

type builtin struct {
	minArgs int
	maxArgs int
	fn      func(Context, []Value) Value
}

var builtins = map[string]builtin{
	"tripleprod": {2, 3, builtinTripleProd},
	"quinprod":   {2, 3, builtinQuinProd},
	"winquist":   {3, 4, builtinWinquist},
	"etaq":       {3, 4, builtinEtaq},
	"jacprod":    {3, 4, builtinJacProd},
	"subs":       {2, 3, builtinSubs},
	"coeff":      {2, 2, builtinCoeff},
}

// IsBuiltin reports whether name is a builtin function.
func IsBuiltin(name string) bool {
	_, ok := builtins[name]
	return ok
}

// Call invokes the builtin name on the evaluated arguments.
func Call(ctx Context, name string, args []Value) Value {
	b, ok := builtins[name]
	if !ok {
		panic(Errorf("unknown function %s", name))
	}
	if len(args) < b.minArgs || len(args) > b.maxArgs {
		panic(Errorf("%s: expected %d to %d arguments, got %d", name, b.minArgs, b.maxArgs, len(args)))
	}
	return b.fn(ctx, args)
}

// innerVariable checks that the series-indeterminate argument is a bare
// symbol and returns its name.
func innerVariable(fn string, v Value) string {
	s, ok := v.(Symbol)
	if !ok {
		panic(Errorf("%s: series variable argument %s is not a symbol", fn, v))
	}
	return string(s)
}

// truncationOrder returns the explicit order argument, validated to be a
// positive integer, or the session default when absent.
func truncationOrder(fn string, ctx Context, args []Value, index int) int {
	if len(args) <= index {
		return ctx.Config().Order()
	}
	n, ok := intArg(args[index])
	if !ok || n <= 0 {
		panic(Errorf("%s: truncation order %s is not a positive integer", fn, args[index]))
	}
	return n
}

func builtinTripleProd(ctx Context, args []Value) Value {
	inner := innerVariable("tripleprod", args[1])
	return TripleProd(args[0], inner, truncationOrder("tripleprod", ctx, args, 2))
}

func builtinQuinProd(ctx Context, args []Value) Value {
	inner := innerVariable("quinprod", args[1])
	return QuinProd(args[0], inner, truncationOrder("quinprod", ctx, args, 2))
}

func builtinWinquist(ctx Context, args []Value) Value {
	inner := innerVariable("winquist", args[2])
	return Winquist(args[0], args[1], inner, truncationOrder("winquist", ctx, args, 3))
}

func builtinEtaq(ctx Context, args []Value) Value {
	b, ok := intArg(args[0])
	if !ok {
		panic(Errorf("etaq: base %s is not an integer", args[0]))
	}
	t, ok := intArg(args[1])
	if !ok {
		panic(Errorf("etaq: step %s is not an integer", args[1]))
	}
	inner := innerVariable("etaq", args[2])
	return Etaq(b, t, inner, truncationOrder("etaq", ctx, args, 3))
}

func builtinJacProd(ctx Context, args []Value) Value {
	a, ok := intArg(args[0])
	if !ok {
		panic(Errorf("jacprod: argument %s is not an integer", args[0]))
	}
	b, ok := intArg(args[1])
	if !ok {
		panic(Errorf("jacprod: argument %s is not an integer", args[1]))
	}
	inner := innerVariable("jacprod", args[2])
	return JacProd(a, b, inner, truncationOrder("jacprod", ctx, args, 3))
}

// builtinSubs substitutes for the outer variable(s) of a symbolic
// product result. For a Bivariate f, subs(f, c, m) evaluates at
// z = c*q^m (m defaults to 0); for a Trivariate f, subs(f, ca, cb)
// evaluates both outer variables at constants.
func builtinSubs(ctx Context, args []Value) Value {
	switch f := args[0].(type) {
	case *Bivariate:
		c, ok := args[1].(Rational)
		if !ok {
			panic(Errorf("subs: %s is not a rational constant", args[1]))
		}
		m := 0
		if len(args) == 3 {
			var ok bool
			m, ok = intArg(args[2])
			if !ok {
				panic(Errorf("subs: exponent %s is not an integer", args[2]))
			}
		}
		return f.SubstMonomial(c.Rat, m)
	case *Trivariate:
		if len(args) != 3 {
			panic(Errorf("subs: a two-variable series needs constants for both variables"))
		}
		ca, ok := args[1].(Rational)
		if !ok {
			panic(Errorf("subs: %s is not a rational constant", args[1]))
		}
		cb, ok := args[2].(Rational)
		if !ok {
			panic(Errorf("subs: %s is not a rational constant", args[2]))
		}
		return f.SubstConstants(ca.Rat, cb.Rat)
	}
	panic(Errorf("subs: %s is not a symbolic series", args[0]))
}

func builtinCoeff(ctx Context, args []Value) Value {
	f, ok := args[0].(*Series)
	if !ok {
		panic(Errorf("coeff: %s is not a series", args[0]))
	}
	k, ok := intArg(args[1])
	if !ok {
		panic(Errorf("coeff: exponent %s is not an integer", args[1]))
	}
	if k < 0 || k >= f.Order() {
		panic(Errorf("coeff: exponent %d outside [0, %d)", k, f.Order()))
	}
	return Rational{f.Coeff(k)}
}
