// Copyright 2026 The QSym Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"qsym.io/qsym/config"
	"qsym.io/qsym/exec"
	"qsym.io/qsym/parse"
	"qsym.io/qsym/run"
	"qsym.io/qsym/scan"
)

var (
	prompt string
	order  int
	debug  bool
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "qsym [file ...]",
		Short: "qsym is an interpreter for q-series computations",
		Long: `qsym evaluates q-series expressions: truncated formal power series
in q, the classical product identities (tripleprod, quinprod, winquist,
etaq, jacprod), and their symbolic forms in one or two outer variables.
With no arguments it reads from standard input; otherwise it runs the
named files in order.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runQsym,
	}
	cmd.Flags().StringVar(&prompt, "prompt", "", "interactive prompt")
	cmd.Flags().IntVar(&order, "order", config.DefaultOrder, "default series truncation order")
	cmd.Flags().BoolVar(&debug, "debug-panic", false, "do not recover evaluation errors; panic instead")
	return cmd
}

func runQsym(cmd *cobra.Command, args []string) error {
	conf := &config.Config{}
	conf.SetPrompt(prompt)
	conf.SetOrder(order)
	conf.SetDebug("panic", debug)
	context := exec.NewContext(conf)

	if len(args) == 0 {
		interpret(conf, context, "<stdin>", os.Stdin, true)
		return nil
	}
	for _, name := range args {
		fd, err := os.Open(name)
		if err != nil {
			return err
		}
		interpret(conf, context, name, fd, false)
		fd.Close()
	}
	return nil
}

// interpret parses and evaluates the input until EOF, restarting the
// run loop after each reported error.
func interpret(conf *config.Config, context *exec.Context, name string, fd *os.File, interactive bool) {
	scanner := scan.New(name, fd)
	parser := parse.NewParser(scanner, context)
	for !run.Run(parser, context, interactive) {
	}
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("qsym: ")
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
