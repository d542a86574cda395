// Copyright 2026 The QSym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parse builds expression trees from scanned qsym input. The
// grammar is a small calculator language:
//
//	statement  = identifier '=' expression | expression
//	expression = term { ('+' | '-') term }
//	term       = unary { ('*' | '/') unary }
//	unary      = '-' unary | power
//	power      = primary [ '^' unary ]
//	primary    = number | identifier [ '(' expression-list ')' ] | '(' expression ')'
//
// Statements on a line are separated by semicolons. Evaluation happens
// through value.Binary, value.Unary and value.Call, so all type
// promotion and dispatch lives in the value package.
package parse

import (
	"fmt"

	"qsym.io/qsym/scan"
	"qsym.io/qsym/value"
)

// Parser reads tokens from a scanner and produces expression trees.
type Parser struct {
	scanner *scan.Scanner
	context value.Context
	tok     scan.Token
	peeked  bool
}

// NewParser returns a parser reading from scanner, evaluating in context.
func NewParser(scanner *scan.Scanner, context value.Context) *Parser {
	return &Parser{
		scanner: scanner,
		context: context,
	}
}

// Loc returns a location prefix for error messages.
func (p *Parser) Loc() string {
	return fmt.Sprintf("%s:%d: ", p.scanner.Name(), p.scanner.Line())
}

func (p *Parser) next() scan.Token {
	if p.peeked {
		p.peeked = false
		return p.tok
	}
	tok := p.scanner.Next()
	if tok.Type == scan.Error {
		p.errorf("%s", tok.Text)
	}
	return tok
}

func (p *Parser) peek() scan.Token {
	if !p.peeked {
		p.tok = p.scanner.Next()
		if p.tok.Type == scan.Error {
			p.errorf("%s", p.tok.Text)
		}
		p.peeked = true
	}
	return p.tok
}

func (p *Parser) errorf(format string, args ...interface{}) {
	panic(value.Errorf(format, args...))
}

// Line parses one line of input and returns its statements. ok is false
// once the input is exhausted.
func (p *Parser) Line() (exprs []value.Expr, ok bool) {
	for {
		tok := p.next()
		switch tok.Type {
		case scan.EOF:
			return exprs, false
		case scan.Newline:
			return exprs, true
		case scan.Semicolon:
			continue
		}
		exprs = append(exprs, p.statement(tok))
		switch sep := p.next(); sep.Type {
		case scan.EOF:
			return exprs, false
		case scan.Newline:
			return exprs, true
		case scan.Semicolon:
			// next statement
		default:
			p.errorf("unexpected %s", sep)
		}
	}
}

func (p *Parser) statement(tok scan.Token) value.Expr {
	if tok.Type == scan.Identifier && p.peek().Type == scan.Assign {
		p.next() // consume '='
		return &assignExpr{
			name: tok.Text,
			rhs:  p.expression(p.next()),
		}
	}
	return p.expression(tok)
}

func (p *Parser) expression(tok scan.Token) value.Expr {
	e := p.term(tok)
	for {
		next := p.peek()
		if next.Type != scan.Operator || (next.Text != "+" && next.Text != "-") {
			return e
		}
		op := p.next().Text
		e = &binaryExpr{op: op, left: e, right: p.term(p.next())}
	}
}

func (p *Parser) term(tok scan.Token) value.Expr {
	e := p.unary(tok)
	for {
		next := p.peek()
		if next.Type != scan.Operator || (next.Text != "*" && next.Text != "/") {
			return e
		}
		op := p.next().Text
		e = &binaryExpr{op: op, left: e, right: p.unary(p.next())}
	}
}

func (p *Parser) unary(tok scan.Token) value.Expr {
	if tok.Type == scan.Operator && tok.Text == "-" {
		return &unaryExpr{op: "-", operand: p.unary(p.next())}
	}
	return p.power(tok)
}

func (p *Parser) power(tok scan.Token) value.Expr {
	e := p.primary(tok)
	next := p.peek()
	if next.Type == scan.Operator && next.Text == "^" {
		p.next()
		return &binaryExpr{op: "^", left: e, right: p.unary(p.next())}
	}
	return e
}

func (p *Parser) primary(tok scan.Token) value.Expr {
	switch tok.Type {
	case scan.Number:
		r, err := value.SetRationalString(tok.Text)
		if err != nil {
			p.errorf("%s", err)
		}
		return r
	case scan.Identifier:
		if p.peek().Type == scan.LeftParen {
			p.next()
			return &callExpr{name: tok.Text, args: p.argumentList()}
		}
		return &variableExpr{name: tok.Text}
	case scan.LeftParen:
		e := p.expression(p.next())
		if tok := p.next(); tok.Type != scan.RightParen {
			p.errorf("expected ), found %s", tok)
		}
		return e
	}
	p.errorf("unexpected %s", tok)
	return nil
}

func (p *Parser) argumentList() []value.Expr {
	if p.peek().Type == scan.RightParen {
		p.next()
		return nil
	}
	var args []value.Expr
	for {
		args = append(args, p.expression(p.next()))
		switch tok := p.next(); tok.Type {
		case scan.RightParen:
			return args
		case scan.Comma:
			// next argument
		default:
			p.errorf("expected , or ) in argument list, found %s", tok)
		}
	}
}

// Expression trees.

type binaryExpr struct {
	op          string
	left, right value.Expr
}

func (e *binaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", e.left, e.op, e.right)
}

func (e *binaryExpr) Eval(ctx value.Context) value.Value {
	return value.Binary(e.left.Eval(ctx), e.op, e.right.Eval(ctx))
}

type unaryExpr struct {
	op      string
	operand value.Expr
}

func (e *unaryExpr) String() string {
	return fmt.Sprintf("(%s%s)", e.op, e.operand)
}

func (e *unaryExpr) Eval(ctx value.Context) value.Value {
	return value.Unary(e.op, e.operand.Eval(ctx))
}

type variableExpr struct {
	name string
}

func (e *variableExpr) String() string {
	return e.name
}

// Eval resolves the identifier: a bound variable evaluates to its value,
// an unbound one to a Symbol of the same name.
func (e *variableExpr) Eval(ctx value.Context) value.Value {
	if v := ctx.Lookup(e.name); v != nil {
		return v
	}
	return value.Symbol(e.name)
}

type callExpr struct {
	name string
	args []value.Expr
}

func (e *callExpr) String() string {
	return e.name + "(...)"
}

func (e *callExpr) Eval(ctx value.Context) value.Value {
	args := make([]value.Value, len(e.args))
	for i, a := range e.args {
		args[i] = a.Eval(ctx)
	}
	return value.Call(ctx, e.name, args)
}

type assignExpr struct {
	name string
	rhs  value.Expr
}

func (e *assignExpr) String() string {
	return e.name + " = " + e.rhs.String()
}

// Eval binds the variable and returns nil so assignments print nothing.
func (e *assignExpr) Eval(ctx value.Context) value.Value {
	ctx.Assign(e.name, e.rhs.Eval(ctx))
	return nil
}
