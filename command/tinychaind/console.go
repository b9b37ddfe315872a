// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/tinychaind/block"
	"github.com/bitmark-inc/tinychaind/node"
)

const consolePrompt = "tinychain> "

// returned by the quit command to end the console loop
var errQuit = errors.New("quit")

// interactive command interpreter for one node
type console struct {
	log  *logger.L
	node *node.Node
	out  io.Writer
	app  *cli.App
}

func newConsole(n *node.Node, out io.Writer) *console {
	c := &console{
		log:  logger.New("console"),
		node: n,
		out:  out,
	}

	app := cli.NewApp()
	app.Name = "tinychain"
	app.Usage = "tinychain node console"
	app.HideVersion = true
	app.Writer = out
	app.ErrWriter = out
	app.Commands = consoleCommands(c)
	app.Action = func(ctx *cli.Context) error {
		return fmt.Errorf("unknown command: %q  (try: help)", ctx.Args().First())
	}
	c.app = app

	return c
}

// the command table, c is only dereferenced when a command runs
func consoleCommands(c *console) []cli.Command {
	return []cli.Command{
		{
			Name:   "start",
			Usage:  "start listening for peers",
			Action: func(ctx *cli.Context) error { return c.start() },
		},
		{
			Name:   "stop",
			Usage:  "stop listening and drop all peers",
			Action: func(ctx *cli.Context) error { return c.node.Stop() },
		},
		{
			Name:      "connect",
			Usage:     "connect to a peer",
			ArgsUsage: "<host:port|multiaddr>",
			Action:    func(ctx *cli.Context) error { return c.connect(ctx.Args()) },
		},
		{
			Name:   "peers",
			Usage:  "list connected peers",
			Action: func(ctx *cli.Context) error { return c.peers() },
		},
		{
			Name:   "chain",
			Usage:  "print the chain",
			Action: func(ctx *cli.Context) error { c.node.PrintChain(); return nil },
		},
		{
			Name:            "tx",
			Usage:           "submit a transaction",
			ArgsUsage:       "<from->to:amount>",
			SkipFlagParsing: true,
			Action:          func(ctx *cli.Context) error { return c.transaction(ctx.Args()) },
		},
		{
			Name:   "mine",
			Usage:  "mine pending transactions into a block",
			Action: func(ctx *cli.Context) error { return c.mine() },
		},
		{
			Name:   "pending",
			Usage:  "list pending transactions",
			Action: func(ctx *cli.Context) error { return c.pending() },
		},
		{
			Name:   "info",
			Usage:  "show node status and counters",
			Action: func(ctx *cli.Context) error { return c.info() },
		},
		{
			Name:    "quit",
			Aliases: []string{"exit"},
			Usage:   "stop the node and exit",
			Action:  func(ctx *cli.Context) error { return errQuit },
		},
	}
}

// execute one input line
//
// returns errQuit when the console should finish
func (c *console) execute(line string) error {
	words := strings.Fields(line)
	if 0 == len(words) {
		return nil
	}

	err := c.app.Run(append([]string{"tinychain"}, words...))
	if errQuit == err {
		return err
	}
	if nil != err {
		c.log.Debugf("command: %q  error: %s", words[0], err)
		fmt.Fprintf(c.out, "error: %s\n", err)
	}
	return nil
}

// read and execute lines until quit or end of input
func (c *console) run(p prompter) {
	for {
		line, err := p.Prompt(consolePrompt)
		if nil != err {
			if io.EOF != err {
				c.log.Infof("prompt error: %s", err)
			}
			fmt.Fprintln(c.out)
			return
		}

		if "" != strings.TrimSpace(line) {
			p.AppendHistory(line)
		}

		if errQuit == c.execute(line) {
			return
		}
	}
}

func (c *console) start() error {
	if err := c.node.Start(); nil != err {
		return err
	}
	fmt.Fprintf(c.out, "listening on: %s\n", c.node.Address())
	return nil
}

func (c *console) connect(args cli.Args) error {
	if 1 != len(args) {
		return errors.New("connect needs exactly one address")
	}
	if err := c.node.Connect(args.First()); nil != err {
		return err
	}
	fmt.Fprintf(c.out, "connected to: %s\n", args.First())
	return nil
}

func (c *console) peers() error {
	peers := c.node.Peers()
	fmt.Fprintf(c.out, "peers: %d\n", len(peers))
	for i, address := range peers {
		fmt.Fprintf(c.out, "  %d: %s\n", i+1, address)
	}
	return nil
}

func (c *console) transaction(args cli.Args) error {
	if 0 == len(args) {
		return errors.New("tx needs a transaction: from->to:amount")
	}
	text := strings.Join(args, " ")
	if err := c.node.SubmitTransaction(text); nil != err {
		return err
	}
	fmt.Fprintf(c.out, "submitted: %s\n", text)
	return nil
}

func (c *console) mine() error {
	b, err := c.node.Mine()
	if nil != err {
		return err
	}
	if nil == b {
		fmt.Fprintf(c.out, "no pending transactions\n")
		return nil
	}
	fmt.Fprintf(c.out, "mined block: %d  hash: %s  nonce: %d\n", b.Index, block.Short(b.Hash), b.Nonce)
	return nil
}

func (c *console) pending() error {
	txs := c.node.Reservoir().Snapshot()
	fmt.Fprintf(c.out, "pending: %d\n", len(txs))
	for i, tx := range txs {
		fmt.Fprintf(c.out, "  %d: %s\n", i+1, tx)
	}
	return nil
}

func (c *console) info() error {
	n := c.node
	ch := n.Chain()
	latest := ch.Latest()
	stats := n.Statistics()

	address := "-"
	if a := n.Address(); nil != a {
		address = a.String()
	}

	fmt.Fprintf(c.out, "running:         %t\n", n.IsRunning())
	fmt.Fprintf(c.out, "listening:       %s\n", address)
	fmt.Fprintf(c.out, "miner:           %t\n", n.IsMiner())
	fmt.Fprintf(c.out, "difficulty:      %d\n", ch.Difficulty())
	fmt.Fprintf(c.out, "policy:          %s\n", ch.Policy())
	fmt.Fprintf(c.out, "height:          %d\n", ch.Height())
	fmt.Fprintf(c.out, "latest:          %s\n", block.Short(latest.Hash))
	fmt.Fprintf(c.out, "peers:           %d\n", len(n.Peers()))
	fmt.Fprintf(c.out, "pending:         %d\n", n.Reservoir().Count())
	fmt.Fprintf(c.out, "connections:     %d\n", stats.Connections)
	fmt.Fprintf(c.out, "transactions:    %d\n", stats.Transactions)
	fmt.Fprintf(c.out, "blocks accepted: %d\n", stats.BlocksAccepted)
	fmt.Fprintf(c.out, "blocks rejected: %d\n", stats.BlocksRejected)
	fmt.Fprintf(c.out, "blocks mined:    %d\n", stats.BlocksMined)
	fmt.Fprintf(c.out, "dropped:         %d\n", stats.Dropped)
	return nil
}
