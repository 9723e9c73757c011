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
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/ethereum/go-abi/accounts/abi"
	"github.com/ethereum/go-abi/accounts/abi/bind"
	"github.com/ethereum/go-abi/internal/flags"
	"github.com/ethereum/go-abi/log"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

var (
	abiFlag = &cli.StringSliceFlag{
		Name:     "abi",
		Usage:    "Path to a contract ABI JSON file or build artifact (- for STDIN), repeatable",
		Category: flags.BindCategory,
	}
	typeFlag = &cli.StringSliceFlag{
		Name:     "type",
		Usage:    "Go struct name for each contract (default = ABI file name)",
		Category: flags.BindCategory,
	}
	pkgFlag = &cli.StringFlag{
		Name:     "pkg",
		Usage:    "Package name to generate the binding into",
		Category: flags.BindCategory,
	}
	outFlag = &flags.PathFlag{
		Name:     "out",
		Usage:    "Output file for the generated binding (default = stdout)",
		Category: flags.BindCategory,
	}
	aliasFlag = &cli.StringFlag{
		Name:     "alias",
		Usage:    "Comma separated aliases for method, event and error renaming, e.g. 'original1=alias1, original2=alias2'",
		Category: flags.BindCategory,
	}

	bindFlags = []cli.Flag{
		abiFlag,
		typeFlag,
		pkgFlag,
		outFlag,
		aliasFlag,
	}

	bindCommand = &cli.Command{
		Action:    bindContracts,
		Name:      "bind",
		Usage:     "Generate Go bindings for contract ABIs",
		ArgsUsage: " ",
		Flags:     bindFlags,
		Description: `
The bind command parses one or more contract ABIs and writes a single Go
source file holding a typed codec per contract. Values from the [Bind]
section of the --config file are used unless overridden by flags.`,
	}
)

// setBindConfig applies the bind flags to cfg.
func setBindConfig(ctx *cli.Context, cfg *bindConfig) error {
	if ctx.IsSet(pkgFlag.Name) {
		cfg.Pkg = ctx.String(pkgFlag.Name)
	}
	if ctx.IsSet(outFlag.Name) {
		cfg.Out = ctx.String(outFlag.Name)
	}
	if ctx.IsSet(aliasFlag.Name) {
		aliases, err := parseAliases(ctx.String(aliasFlag.Name))
		if err != nil {
			return err
		}
		if cfg.Aliases == nil {
			cfg.Aliases = make(map[string]string)
		}
		for k, v := range aliases {
			cfg.Aliases[k] = v
		}
	}
	return nil
}

// parseAliases parses the --alias flag value.
func parseAliases(s string) (map[string]string, error) {
	aliases := make(map[string]string)
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		original, alias, ok := strings.Cut(field, "=")
		original, alias = strings.TrimSpace(original), strings.TrimSpace(alias)
		if !ok || original == "" || alias == "" {
			return nil, fmt.Errorf("invalid alias %q, want original=alias", field)
		}
		aliases[original] = alias
	}
	return aliases, nil
}

// contractType derives a contract type name from an ABI file path.
func contractType(path string) string {
	if path == "-" {
		return "Contract"
	}
	name := filepath.Base(path)
	if i := strings.IndexByte(name, '.'); i > 0 {
		name = name[:i]
	}
	return name
}

// extractABI returns the ABI array of data, which is either the ABI itself
// or a build artifact holding it under the "abi" key.
func extractABI(data []byte) ([]byte, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return trimmed, nil
	}
	var artifact struct {
		ABI json.RawMessage `json:"abi"`
	}
	if err := json.Unmarshal(trimmed, &artifact); err != nil {
		return nil, err
	}
	if len(artifact.ABI) == 0 {
		return nil, fmt.Errorf("artifact has no abi field")
	}
	return artifact.ABI, nil
}

// readABIs loads and validates the given ABI files concurrently.
func readABIs(ctx *cli.Context, paths []string) ([]string, error) {
	abis := make([]string, len(paths))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			var (
				data []byte
				err  error
			)
			if path == "-" {
				data, err = io.ReadAll(ctx.App.Reader)
			} else {
				data, err = os.ReadFile(path)
			}
			if err != nil {
				return fmt.Errorf("failed to read ABI %s: %w", path, err)
			}
			data, err = extractABI(data)
			if err != nil {
				return fmt.Errorf("failed to read ABI %s: %w", path, err)
			}
			parsed, err := abi.JSON(bytes.NewReader(data))
			if err != nil {
				return fmt.Errorf("failed to parse ABI %s: %w", path, err)
			}
			log.Debug("Loaded contract ABI", "file", path, "methods", len(parsed.Methods), "events", len(parsed.Events), "errors", len(parsed.Errors))
			abis[i] = string(data)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return abis, nil
}

// bindContracts is the bind command.
func bindContracts(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	paths := ctx.StringSlice(abiFlag.Name)
	if len(paths) == 0 {
		return cli.Exit("No contract ABI specified (--abi)", 1)
	}
	if cfg.Bind.Pkg == "" {
		return cli.Exit("No destination package specified (--pkg)", 1)
	}
	types := ctx.StringSlice(typeFlag.Name)
	switch {
	case len(types) == 0:
		for _, path := range paths {
			types = append(types, contractType(path))
		}
	case len(types) != len(paths):
		return cli.Exit(fmt.Sprintf("Got %d --type values for %d --abi files", len(types), len(paths)), 1)
	}
	abis, err := readABIs(ctx, paths)
	if err != nil {
		return err
	}
	code, err := bind.Bind(types, abis, cfg.Bind.Pkg, cfg.Bind.Aliases)
	if err != nil {
		return fmt.Errorf("failed to generate ABI binding: %w", err)
	}
	if cfg.Bind.Out == "" {
		_, err = io.WriteString(ctx.App.Writer, code)
		return err
	}
	if err := os.WriteFile(cfg.Bind.Out, []byte(code), 0600); err != nil {
		return fmt.Errorf("failed to write ABI binding: %w", err)
	}
	log.Info("Generated contract bindings", "contracts", len(types), "pkg", cfg.Bind.Pkg, "out", cfg.Bind.Out)
	return nil
}
