// Copyright 2026 The QSym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"fmt"
	"strings"
)

// Display formats:
//
//	Series:     1 - q + 2*q^3 + O(q^10)
//	Bivariate:  (1 - q)*z^2 + q*z^(-1) + O(q^10)
//	Trivariate: (1 - q)*a^2*b - q*a*b^(-1) + O(q^10)
//
// Series terms print in ascending exponent order; Bivariate terms in
// descending z-exponent order; Trivariate terms descending by a-exponent
// then b-exponent.

// powString formats name^exp, with exp 1 bare and negative exponents
// parenthesized.
func powString(name string, exp int) string {
	switch {
	case exp == 1:
		return name
	case exp < 0:
		return fmt.Sprintf("%s^(%d)", name, exp)
	}
	return fmt.Sprintf("%s^%d", name, exp)
}

// writeTerm appends one term "c * varPart" to b, handling the leading
// sign, coefficient 1, and an empty variable part.
func writeTerm(b *strings.Builder, first bool, c Rational, varPart string) {
	neg := c.Sign() < 0
	abs := c
	if neg {
		abs = Rational{ratCopy(c.Rat)}
		abs.Neg(abs.Rat)
	}
	switch {
	case first && neg:
		b.WriteString("-")
	case !first && neg:
		b.WriteString(" - ")
	case !first:
		b.WriteString(" + ")
	}
	if varPart == "" {
		b.WriteString(abs.String())
		return
	}
	if abs.Cmp(ratOneConst) == 0 {
		b.WriteString(varPart)
		return
	}
	b.WriteString(abs.String())
	b.WriteString("*")
	b.WriteString(varPart)
}

func (s *Series) String() string {
	var b strings.Builder
	first := true
	for _, k := range s.Exponents() {
		varPart := ""
		if k != 0 {
			varPart = powString(s.variable, k)
		}
		writeTerm(&b, first, Rational{s.coeff[k]}, varPart)
		first = false
	}
	if !first {
		b.WriteString(" + ")
	}
	fmt.Fprintf(&b, "O(%s)", powString(s.variable, s.order))
	return b.String()
}

// termString formats a coefficient series for use inside a product term:
// single-term series print bare, multi-term series are parenthesized.
// The boolean result reports whether the printed form starts with a
// minus sign that the caller may hoist.
func termString(f *Series) (string, bool) {
	exps := f.Exponents()
	if len(exps) == 1 {
		k := exps[0]
		var b strings.Builder
		writeTerm(&b, true, Rational{f.coeff[k]}, seriesVarPart(f, k))
		out := b.String()
		if strings.HasPrefix(out, "-") {
			return out[1:], true
		}
		return out, false
	}
	var b strings.Builder
	b.WriteString("(")
	first := true
	for _, k := range exps {
		writeTerm(&b, first, Rational{f.coeff[k]}, seriesVarPart(f, k))
		first = false
	}
	b.WriteString(")")
	return b.String(), false
}

func seriesVarPart(f *Series, k int) string {
	if k == 0 {
		return ""
	}
	return powString(f.variable, k)
}

func (b *Bivariate) String() string {
	var sb strings.Builder
	first := true
	for _, k := range b.Exponents() {
		coeff, neg := termString(b.terms[k])
		switch {
		case first && neg:
			sb.WriteString("-")
		case !first && neg:
			sb.WriteString(" - ")
		case !first:
			sb.WriteString(" + ")
		}
		first = false
		if k == 0 {
			sb.WriteString(coeff)
			continue
		}
		if coeff == "1" {
			sb.WriteString(powString(b.outer, k))
			continue
		}
		sb.WriteString(coeff)
		sb.WriteString("*")
		sb.WriteString(powString(b.outer, k))
	}
	if !first {
		sb.WriteString(" + ")
	}
	fmt.Fprintf(&sb, "O(%s)", powString(b.inner, b.order))
	return sb.String()
}

func (t *Trivariate) String() string {
	var sb strings.Builder
	first := true
	for _, key := range t.Exponents() {
		coeff, neg := termString(t.terms[key])
		switch {
		case first && neg:
			sb.WriteString("-")
		case !first && neg:
			sb.WriteString(" - ")
		case !first:
			sb.WriteString(" + ")
		}
		first = false
		outer := outerPairString(t.outerA, t.outerB, key)
		if outer == "" {
			sb.WriteString(coeff)
			continue
		}
		if coeff == "1" {
			sb.WriteString(outer)
			continue
		}
		sb.WriteString(coeff)
		sb.WriteString("*")
		sb.WriteString(outer)
	}
	if !first {
		sb.WriteString(" + ")
	}
	fmt.Fprintf(&sb, "O(%s)", powString(t.inner, t.order))
	return sb.String()
}

// outerPairString formats a^r*b^s, omitting zero powers.
func outerPairString(a, b string, key [2]int) string {
	var parts []string
	if key[0] != 0 {
		parts = append(parts, powString(a, key[0]))
	}
	if key[1] != 0 {
		parts = append(parts, powString(b, key[1]))
	}
	return strings.Join(parts, "*")
}
