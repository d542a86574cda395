// Copyright 2026 The QSym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package run drives the qsym parser/evaluator loop. It is factored out
// of main so the interpreter can be exercised by tests and scripts.
package run

import (
	"fmt"

	"qsym.io/qsym/parse"
	"qsym.io/qsym/value"
)

// Run runs the parser/evaluator until EOF or error. The return value
// reports whether the input was consumed to EOF without error; the
// typical driver loops calling Run until it returns true, so one bad
// line does not end an interactive session. Errors raised during
// evaluation are value.Error panics; they are recovered here and
// reported to the configured error output.
func Run(p *parse.Parser, context value.Context, interactive bool) (success bool) {
	conf := context.Config()
	writer := conf.Output()
	defer func() {
		if conf.Debug("panic") {
			return
		}
		err := recover()
		if err == nil {
			return
		}
		if err, ok := err.(value.Error); ok {
			fmt.Fprintf(conf.ErrOutput(), "%s%s\n", p.Loc(), err)
			success = false
			return
		}
		panic(err)
	}()
	for {
		if interactive {
			fmt.Fprint(writer, conf.Prompt())
		}
		exprs, ok := p.Line()
		for _, expr := range exprs {
			if v := expr.Eval(context); v != nil {
				fmt.Fprintln(writer, v)
			}
		}
		if !ok {
			return true
		}
	}
}
