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
package main

import (
	"fmt"

	"github.com/ethereum/go-abi/accounts/abi"
	"github.com/ethereum/go-abi/common/hexutil"
	"github.com/ethereum/go-abi/internal/flags"
	"github.com/ethereum/go-abi/log"
	"github.com/urfave/cli/v2"
)

var (
	sigFlag = &cli.StringFlag{
		Name:     "sig",
		Usage:    "Function signature, e.g. 'transfer(address to, uint256 amount)'",
		Required: true,
		Category: flags.CodecCategory,
	}
	noSelectorFlag = &cli.BoolFlag{
		Name:     "no-selector",
		Usage:    "Omit the 4-byte function selector",
		Category: flags.CodecCategory,
	}
	typesFlag = &cli.StringFlag{
		Name:     "types",
		Usage:    "Comma separated parameter types, e.g. '(address,uint256[])'",
		Category: flags.CodecCategory,
	}
	selectorFlag = &cli.BoolFlag{
		Name:     "selector",
		Usage:    "Input starts with a 4-byte function selector",
		Category: flags.CodecCategory,
	}

	selectorCommand = &cli.Command{
		Action:    printSelector,
		Name:      "selector",
		Usage:     "Print the 4-byte selector of a function signature",
		ArgsUsage: "<signature>",
		Description: `
The selector command normalises a human-written signature, which may carry
parameter names and the int/uint aliases, and prints its selector followed
by the canonical signature.`,
	}
	encodeCommand = &cli.Command{
		Action:    encodeCall,
		Name:      "encode",
		Usage:     "Encode call data from textual arguments",
		ArgsUsage: "<arg1> <arg2> ...",
		Flags:     []cli.Flag{sigFlag, noSelectorFlag},
		Description: `
Arguments are given in declaration order. Integers may be decimal or 0x hex,
byte types are hex, strings are raw text and composite values are JSON
arrays of literals, e.g.

    abigen encode --sig 'transfer(address,uint256)' 0x00000000000000000000000000000000000000ff 1000`,
	}
	decodeCommand = &cli.Command{
		Action:    decodeData,
		Name:      "decode",
		Usage:     "Decode ABI encoded data",
		ArgsUsage: "<hex>",
		Flags:     []cli.Flag{typesFlag, selectorFlag},
	}
	revertCommand = &cli.Command{
		Action:    printRevert,
		Name:      "revert",
		Usage:     "Print the reason of Error(string) or Panic(uint256) revert data",
		ArgsUsage: "<hex>",
	}
)

// printSelector is the selector command.
func printSelector(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.Exit("Expected exactly one signature argument", 1)
	}
	name, args, err := abi.ParseSignature(ctx.Args().First())
	if err != nil {
		return err
	}
	types := args.Types()
	sel := abi.ComputeSelector(name, types...)
	fmt.Fprintf(ctx.App.Writer, "%s %s\n", sel.Hex(), abi.Signature(name, types...))
	return nil
}

// encodeCall is the encode command.
func encodeCall(ctx *cli.Context) error {
	name, args, err := abi.ParseSignature(ctx.String(sigFlag.Name))
	if err != nil {
		return err
	}
	if ctx.NArg() != len(args) {
		return cli.Exit(fmt.Sprintf("Signature takes %d arguments, got %d", len(args), ctx.NArg()), 1)
	}
	b := abi.NewBuilder()
	if !ctx.Bool(noSelectorFlag.Name) {
		b.Name(name)
	}
	for i, arg := range args {
		v, err := abi.ParseValue(arg.Type, ctx.Args().Get(i))
		if err != nil {
			return fmt.Errorf("argument %d (%s): %w", i, arg.Type, err)
		}
		b.Push(v)
	}
	log.Debug("Encoding call", "signature", b.Signature(), "args", len(args))
	fmt.Fprintln(ctx.App.Writer, hexutil.Encode(b.Build()))
	return nil
}

// decodeData is the decode command.
func decodeData(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.Exit("Expected exactly one hex argument", 1)
	}
	data, err := hexutil.DecodeUnprefixed(ctx.Args().First())
	if err != nil {
		return fmt.Errorf("%w: %v", abi.ErrInvalidHex, err)
	}
	if ctx.Bool(selectorFlag.Name) {
		if len(data) < 4 {
			return &abi.BoundsError{Offset: 0, Need: 4, Have: len(data)}
		}
		fmt.Fprintf(ctx.App.Writer, "selector: %s\n", hexutil.Encode(data[:4]))
		data = data[4:]
	}
	types, err := abi.ParseTypes(ctx.String(typesFlag.Name))
	if err != nil {
		return err
	}
	values, err := abi.Decode(data, types...)
	if err != nil {
		return err
	}
	for i, v := range values {
		fmt.Fprintf(ctx.App.Writer, "%d %s: %v\n", i, v.Type(), v)
	}
	return nil
}

// printRevert is the revert command.
func printRevert(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.Exit("Expected exactly one hex argument", 1)
	}
	data, err := hexutil.DecodeUnprefixed(ctx.Args().First())
	if err != nil {
		return fmt.Errorf("%w: %v", abi.ErrInvalidHex, err)
	}
	reason, err := abi.UnpackRevert(data)
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, reason)
	return nil
}
