// Copyright 2026 The QSym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package run

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"qsym.io/qsym/config"
	"qsym.io/qsym/exec"
	"qsym.io/qsym/parse"
	"qsym.io/qsym/scan"
)

// interpret runs a whole script and returns the stdout and stderr text.
func interpret(script string) (string, string) {
	var out, errOut bytes.Buffer
	conf := &config.Config{}
	conf.SetOutput(&out)
	conf.SetErrOutput(&errOut)
	context := exec.NewContext(conf)
	p := parse.NewParser(scan.New("test", strings.NewReader(script)), context)
	for !Run(p, context, false) {
	}
	return out.String(), errOut.String()
}

func TestRunScript(t *testing.T) {
	out, errOut := interpret("2 + 3/4\n")
	require.Equal(t, "11/4\n", out)
	require.Empty(t, errOut)
}

func TestRunSeriesPipeline(t *testing.T) {
	script := `# triple product at z = -1
f = tripleprod(z, q, 5)
subs(f, -1, 0)
`
	out, errOut := interpret(script)
	require.Equal(t, "2 + 2*q + 2*q^3 + O(q^5)\n", out)
	require.Empty(t, errOut)
}

func TestRunWinquistPipeline(t *testing.T) {
	// Substituting constants into the symbolic result must print the
	// same series as the all-numeric call.
	script := `w = winquist(a, b, q, 5)
subs(w, 2, 3)
winquist(2, 3, q, 5)
`
	out, errOut := interpret(script)
	require.Empty(t, errOut)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, lines[0], lines[1])
}

func TestRunErrorRecovery(t *testing.T) {
	out, errOut := interpret("1/0\n2 + 2\n")
	require.Equal(t, "4\n", out)
	require.Contains(t, errOut, "division by zero")
	require.Contains(t, errOut, "test:")
}

func TestRunInteractivePrompt(t *testing.T) {
	var out bytes.Buffer
	conf := &config.Config{}
	conf.SetPrompt("> ")
	conf.SetOutput(&out)
	conf.SetErrOutput(&out)
	context := exec.NewContext(conf)
	p := parse.NewParser(scan.New("test", strings.NewReader("2+2\n")), context)
	require.True(t, Run(p, context, true))
	require.Equal(t, "> 4\n> ", out.String())
}
