// Copyright 2026 The QSym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package exec provides the evaluation context for qsym: the session
// configuration and the variable bindings shared by the parser and the
// run loop.
package exec

import (
	"qsym.io/qsym/config"
	"qsym.io/qsym/value"
)

// Context holds the state of one interpreter session. It implements
// value.Context.
type Context struct {
	config *config.Config
	vars   map[string]value.Value
}

// NewContext returns a fresh context using the given configuration.
func NewContext(conf *config.Config) *Context {
	return &Context{
		config: conf,
		vars:   make(map[string]value.Value),
	}
}

func (c *Context) Config() *config.Config {
	return c.config
}

// Lookup returns the value bound to name, or nil if name is unbound.
// Unbound identifiers evaluate to symbols; that is how q and the outer
// variables of the product identities come into being.
func (c *Context) Lookup(name string) value.Value {
	return c.vars[name]
}

// Assign binds name to v, replacing any previous binding.
func (c *Context) Assign(name string, v value.Value) {
	if value.IsBuiltin(name) {
		panic(value.Errorf("cannot assign to builtin function %s", name))
	}
	c.vars[name] = v
}
