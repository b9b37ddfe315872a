// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tinychaind/background"
	"github.com/bitmark-inc/tinychaind/block"
	"github.com/bitmark-inc/tinychaind/fault"
	"github.com/bitmark-inc/tinychaind/node"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

const historyFileName = "console.history"

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "daemon", HasArg: getoptions.NO_ARGUMENT, Short: 'd'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "connect", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'x'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	quiet := len(options["quiet"]) > 0
	verbose := len(options["verbose"]) > 0

	var output io.Writer = os.Stdout
	if quiet {
		output = ioutil.Discard
	}

	log.Info("initialise node")
	n, err := node.New(&theConfiguration.Node, block.DigestHasher{}, output)
	if nil != err {
		log.Criticalf("node initialise error: %s", err)
		exitwithstatus.Message("node initialise error: %s", err)
	}

	err = n.Start()
	if nil != err {
		log.Criticalf("node start error: %s", err)
		exitwithstatus.Message("node start error: %s", err)
	}
	defer n.Stop()

	if verbose {
		fmt.Printf("listening on: %s\n", n.Address())
	}

	// dial configured peers then any from the command line
	// a malformed address is fatal, an unreachable peer is not
	peers := append(theConfiguration.Node.Connect, options["connect"]...)
	for _, address := range peers {
		err := n.Connect(address)
		if fault.IsErrInvalid(err) {
			log.Criticalf("connect to: %q  error: %s", address, err)
			exitwithstatus.Message("%s: invalid peer address: %q  error: %s", program, address, err)
		}
		if nil != err {
			log.Warnf("connect to: %q  error: %s", address, err)
			if !quiet {
				fmt.Printf("connect to: %q  error: %s\n", address, err)
			}
			continue
		}
		log.Infof("connected to: %q", address)
	}

	var processes background.Processes
	if n.IsMiner() {
		processes = append(processes, node.NewAutoMiner(n, 0))
	}
	bg := background.Start(processes, nil)
	defer bg.Stop()

	if len(options["daemon"]) > 0 {
		waitForSignal(log, quiet)
		return
	}

	historyFile := filepath.Join(theConfiguration.DataDirectory, historyFileName)
	p, atExit := newPrompter(historyFile, !quiet)
	defer atExit()

	newConsole(n, os.Stdout).run(p)
	log.Info("console closed")
}

func waitForSignal(log *logger.L, quiet bool) {
	// wait for CTRL-C before shutting down to allow manual testing
	if !quiet {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if !quiet {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}
	log.Info("shutting down…")
}
