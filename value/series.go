// Copyright 2026 The QSym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"math/big"
	"sort"
)

// Series is a truncated formal power series in a single variable,
// conventionally q:
//
//	f(q) = sum_k c_k * q^k + O(q^order)
//
// Only nonzero coefficients are stored. Invariants:
//   - every stored exponent k satisfies 0 <= k < order
//   - no stored coefficient is zero
//   - stored *big.Rat values are owned by the series and never aliased
type Series struct {
	variable string
	coeff    map[int]*big.Rat
	order    int
}

// NewSeries returns the zero series 0 + O(variable^order).
func NewSeries(variable string, order int) *Series {
	return &Series{
		variable: variable,
		coeff:    make(map[int]*big.Rat),
		order:    order,
	}
}

// seriesOne returns 1 + O(q^order).
func seriesOne(variable string, order int) *Series {
	s := NewSeries(variable, order)
	s.SetCoeff(0, ratOneConst)
	return s
}

// seriesMonomial returns c*q^k + O(q^order).
func seriesMonomial(variable string, c *big.Rat, k, order int) *Series {
	s := NewSeries(variable, order)
	s.SetCoeff(k, c)
	return s
}

// Coeff returns a copy of the coefficient of q^k, zero for absent
// entries. The coefficient at or beyond the truncation order is unknown;
// asking for it is a caller bug.
func (s *Series) Coeff(k int) *big.Rat {
	if k >= s.order {
		panic(Errorf("coefficient of %s requested beyond truncation order %d", powString(s.variable, k), s.order))
	}
	if c, ok := s.coeff[k]; ok {
		return ratCopy(c)
	}
	return new(big.Rat)
}

// SetCoeff sets the coefficient of q^k to a copy of c. Exponents outside
// [0, order) are ignored; a zero value removes the entry.
func (s *Series) SetCoeff(k int, c *big.Rat) {
	if k < 0 || k >= s.order {
		return
	}
	if ratIsZero(c) {
		delete(s.coeff, k)
		return
	}
	s.coeff[k] = ratCopy(c)
}

// addCoeff adds a copy of c into the coefficient of q^k, pruning a
// resulting zero. Out-of-range exponents are ignored.
func (s *Series) addCoeff(k int, c *big.Rat) {
	if k < 0 || k >= s.order || ratIsZero(c) {
		return
	}
	cur, ok := s.coeff[k]
	if !ok {
		s.coeff[k] = ratCopy(c)
		return
	}
	cur.Add(cur, c)
	if ratIsZero(cur) {
		delete(s.coeff, k)
	}
}

// IsZero reports whether every coefficient is zero.
func (s *Series) IsZero() bool {
	return len(s.coeff) == 0
}

// Order returns the truncation order: coefficients are exact for
// exponents below it and unknown at or above it.
func (s *Series) Order() int {
	return s.order
}

// Variable returns the name of the series variable.
func (s *Series) Variable() string {
	return s.variable
}

// Exponents returns the exponents with nonzero coefficients, ascending.
func (s *Series) Exponents() []int {
	exps := make([]int, 0, len(s.coeff))
	for k := range s.coeff {
		exps = append(exps, k)
	}
	sort.Ints(exps)
	return exps
}

// Copy returns a deep copy of the series.
func (s *Series) Copy() *Series {
	c := NewSeries(s.variable, s.order)
	for k, v := range s.coeff {
		c.coeff[k] = ratCopy(v)
	}
	return c
}

// Equal reports whether the two series have the same variable, the same
// truncation order, and identical coefficients.
func (s *Series) Equal(t *Series) bool {
	if s.variable != t.variable || s.order != t.order || len(s.coeff) != len(t.coeff) {
		return false
	}
	for k, v := range s.coeff {
		w, ok := t.coeff[k]
		if !ok || v.Cmp(w) != 0 {
			return false
		}
	}
	return true
}

func (s *Series) Eval(Context) Value {
	return s
}
