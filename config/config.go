// Copyright 2026 The QSym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the configuration for a qsym session: the prompt,
// the output streams, the default truncation order for series, and debug
// flags. A single Config is created by the front end and threaded through
// the evaluation context.
package config

import (
	"io"
	"os"
)

// DefaultOrder is the truncation order used when a series function is
// called without an explicit order argument.
const DefaultOrder = 20

type Config struct {
	prompt    string
	order     int
	output    io.Writer
	errOutput io.Writer
	debug     map[string]bool
}

// Output returns the writer used for program output, default os.Stdout.
func (c *Config) Output() io.Writer {
	if c.output == nil {
		return os.Stdout
	}
	return c.output
}

func (c *Config) SetOutput(w io.Writer) {
	c.output = w
}

// ErrOutput returns the writer used for error output, default os.Stderr.
func (c *Config) ErrOutput() io.Writer {
	if c.errOutput == nil {
		return os.Stderr
	}
	return c.errOutput
}

func (c *Config) SetErrOutput(w io.Writer) {
	c.errOutput = w
}

// Order returns the default truncation order for series results.
func (c *Config) Order() int {
	if c.order <= 0 {
		return DefaultOrder
	}
	return c.order
}

// SetOrder sets the default truncation order. Non-positive values are
// ignored; Order falls back to DefaultOrder.
func (c *Config) SetOrder(order int) {
	c.order = order
}

func (c *Config) Prompt() string {
	return c.prompt
}

func (c *Config) SetPrompt(prompt string) {
	c.prompt = prompt
}

func (c *Config) Debug(flag string) bool {
	return c.debug[flag]
}

func (c *Config) SetDebug(flag string, state bool) {
	if c.debug == nil {
		c.debug = make(map[string]bool)
	}
	c.debug[flag] = state
}
