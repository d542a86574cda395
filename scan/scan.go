// Copyright 2026 The QSym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scan tokenizes qsym input: identifiers, integer and rational
// literals, the arithmetic operators, parentheses, commas, and
// assignment. Input is processed a line at a time; a '#' starts a
// comment that runs to the end of the line.
package scan

import (
	"bufio"
	"fmt"
	"io"
	"unicode"
)

// Type identifies the type of a token.
type Type int

const (
	EOF Type = iota
	Error
	Newline
	Assign     // '='
	Comma      // ','
	Identifier // alphanumeric identifier
	LeftParen  // '('
	Number     // integer or rational literal like 3 or 22/7
	Operator   // + - * / ^
	RightParen // ')'
	Semicolon  // ';'
)

// Token is a token returned by the scanner.
type Token struct {
	Type Type
	Line int
	Text string
}

func (t Token) String() string {
	switch t.Type {
	case EOF:
		return "EOF"
	case Error:
		return "error: " + t.Text
	case Newline:
		return "newline"
	}
	return fmt.Sprintf("%q", t.Text)
}

// Scanner tokenizes its input one line at a time.
type Scanner struct {
	r     *bufio.Reader
	name  string // name of the input, for error reports
	line  int
	input string // current line
	pos   int    // position within input
	done  bool
}

// New returns a Scanner reading from r; name is used in error reports.
func New(name string, r io.Reader) *Scanner {
	return &Scanner{
		r:    bufio.NewReader(r),
		name: name,
	}
}

// Name returns the name of the input.
func (s *Scanner) Name() string {
	return s.name
}

// Line returns the current line number.
func (s *Scanner) Line() int {
	return s.line
}

// loadLine reads the next line of input, stripping the trailing newline.
func (s *Scanner) loadLine() bool {
	if s.done {
		return false
	}
	line, err := s.r.ReadString('\n')
	if err != nil {
		s.done = true
		if len(line) == 0 {
			return false
		}
	}
	s.line++
	s.input = line
	s.pos = 0
	return true
}

// Next returns the next token. At the end of every line it returns a
// Newline token; at the end of input it returns EOF forever.
func (s *Scanner) Next() Token {
	for {
		for s.pos < len(s.input) {
			c := s.input[s.pos]
			switch {
			case c == '#':
				// Comment to end of line; keep the newline so the
				// line still terminates normally.
				s.pos = len(s.input)
				if s.pos > 0 && s.input[s.pos-1] == '\n' {
					s.pos--
				}
			case c == '\n':
				s.pos++
				return Token{Newline, s.line, "\n"}
			case c == ' ' || c == '\t' || c == '\r':
				s.pos++
			case c == '(':
				s.pos++
				return Token{LeftParen, s.line, "("}
			case c == ')':
				s.pos++
				return Token{RightParen, s.line, ")"}
			case c == ',':
				s.pos++
				return Token{Comma, s.line, ","}
			case c == ';':
				s.pos++
				return Token{Semicolon, s.line, ";"}
			case c == '=':
				s.pos++
				return Token{Assign, s.line, "="}
			case c == '+' || c == '-' || c == '*' || c == '/' || c == '^':
				s.pos++
				return Token{Operator, s.line, string(c)}
			case '0' <= c && c <= '9':
				return s.number()
			case isAlpha(rune(c)):
				return s.identifier()
			default:
				s.pos++
				return Token{Error, s.line, fmt.Sprintf("unrecognized character %q", c)}
			}
		}
		if !s.loadLine() {
			return Token{EOF, s.line, ""}
		}
	}
}

// number scans an unsigned integer literal. Rationals are assembled by
// the parser from the '/' operator, keeping the scanner simple.
func (s *Scanner) number() Token {
	start := s.pos
	for s.pos < len(s.input) && '0' <= s.input[s.pos] && s.input[s.pos] <= '9' {
		s.pos++
	}
	return Token{Number, s.line, s.input[start:s.pos]}
}

func (s *Scanner) identifier() Token {
	start := s.pos
	for s.pos < len(s.input) && isAlphaNum(rune(s.input[s.pos])) {
		s.pos++
	}
	return Token{Identifier, s.line, s.input[start:s.pos]}
}

func isAlpha(c rune) bool {
	return c == '_' || unicode.IsLetter(c)
}

func isAlphaNum(c rune) bool {
	return isAlpha(c) || unicode.IsDigit(c)
}
