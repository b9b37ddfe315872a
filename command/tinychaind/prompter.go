// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
)

type prompter interface {
	AppendHistory(string)
	Prompt(p string) (string, error)
}

// line reader for pipes and terminals liner cannot drive
type dumbterm struct {
	r *bufio.Reader
	w io.Writer
}

func (d dumbterm) Prompt(p string) (string, error) {
	fmt.Fprint(d.w, p)
	line, err := d.r.ReadString('\n')
	if io.EOF == err && "" != line {
		err = nil
	}
	return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"), err
}

func (d dumbterm) AppendHistory(string) {}

// select a prompter for stdin, the returned function must be called
// on exit to save history and restore the terminal
func newPrompter(historyFile string, interactive bool) (prompter, func()) {
	if !liner.TerminalSupported() || !interactive {
		return dumbterm{r: bufio.NewReader(os.Stdin), w: os.Stdout}, func() {}
	}

	lr := liner.NewLiner()
	lr.SetCtrlCAborts(true)
	lr.SetTabCompletionStyle(liner.TabPrints)
	lr.SetCompleter(completeCommand)

	if f, err := os.Open(historyFile); nil == err {
		lr.ReadHistory(f)
		f.Close()
	}

	atExit := func() {
		if f, err := os.OpenFile(historyFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600); nil == err {
			lr.WriteHistory(f)
			f.Close()
		}
		lr.Close()
	}
	return lr, atExit
}

// command names starting with the typed prefix
func completeCommand(line string) []string {
	if strings.Contains(line, " ") {
		return nil
	}
	completions := []string{}
	for _, c := range consoleCommands(nil) {
		if strings.HasPrefix(c.Name, line) {
			completions = append(completions, c.Name)
		}
	}
	return completions
}
