// Copyright 2014 The go-ethereum Authors
// This file is part of go-ethereum.
//
// go-ethereum is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-ethereum is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-ethereum. If not, see <http://www.gnu.org/licenses/>.
// abigen generates Go bindings for contract ABIs and encodes or decodes
// ABI payloads from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/ethereum/go-abi/internal/debug"
	"github.com/ethereum/go-abi/internal/flags"
	"github.com/urfave/cli/v2"
)

var app = flags.NewApp("the contract ABI toolkit")

func init() {
	app.Commands = []*cli.Command{
		// See bindcmd.go:
		bindCommand,
		// See codeccmd.go:
		selectorCommand,
		encodeCommand,
		decodeCommand,
		revertCommand,
		// See config.go:
		dumpConfigCommand,
	}
	app.Flags = flags.Merge([]cli.Flag{configFileFlag}, debug.Flags)
	app.Before = func(ctx *cli.Context) error {
		if err := applyLogConfig(ctx); err != nil {
			return err
		}
		return debug.Setup(ctx)
	}
	app.After = func(ctx *cli.Context) error {
		debug.Exit()
		return nil
	}
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
