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
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
	"unicode"

	"github.com/ethereum/go-abi/internal/debug"
	"github.com/ethereum/go-abi/internal/flags"
	"github.com/ethereum/go-abi/internal/version"
	"github.com/naoina/toml"
	"github.com/urfave/cli/v2"
)

var (
	configFileFlag = &flags.PathFlag{
		Name:     "config",
		Usage:    "TOML configuration file",
		Category: flags.MiscCategory,
	}

	dumpConfigCommand = &cli.Command{
		Action:      dumpConfig,
		Name:        "dumpconfig",
		Usage:       "Export configuration values in a TOML format",
		ArgsUsage:   "<dumpfile (optional)>",
		Flags:       bindFlags,
		Description: `Export configuration values in TOML format (to stdout by default).`,
	}
)

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		var link string
		if unicode.IsUpper(rune(rt.Name()[0])) && rt.PkgPath() != "main" {
			link = fmt.Sprintf(", see https://godoc.org/%s#%s for available fields", rt.PkgPath(), rt.Name())
		}
		return fmt.Errorf("field '%s' is not defined in %s%s", field, rt.String(), link)
	},
}

// bindConfig holds the defaults of the bind command.
type bindConfig struct {
	Pkg     string            `toml:",omitempty"`
	Out     string            `toml:",omitempty"`
	Aliases map[string]string `toml:",omitempty"`
}

// logConfig holds the defaults of the logging flags.
type logConfig struct {
	Verbosity int
	Vmodule   string `toml:",omitempty"`
	Format    string `toml:",omitempty"`
}

type abigenConfig struct {
	Bind bindConfig
	Log  logConfig
}

var defaultConfig = abigenConfig{
	Log: logConfig{
		Verbosity: debug.VerbosityFlag.Value,
		Format:    "terminal",
	},
}

func loadConfig(file string, cfg *abigenConfig) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = decodeConfig(f, cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

func decodeConfig(r io.Reader, cfg *abigenConfig) error {
	return tomlSettings.NewDecoder(bufio.NewReader(r)).Decode(cfg)
}

// loadBaseConfig loads the abigenConfig based on the config file, without
// applying any command line flags.
func loadBaseConfig(ctx *cli.Context) (abigenConfig, error) {
	cfg := defaultConfig
	if ctx.IsSet(configFileFlag.Name) {
		if err := loadConfig(ctx.String(configFileFlag.Name), &cfg); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// applyLogConfig copies the logging settings of the config file into the
// logging flags that were not set on the command line.
func applyLogConfig(ctx *cli.Context) error {
	cfg, err := loadBaseConfig(ctx)
	if err != nil {
		return err
	}
	set := func(name, value string) error {
		if ctx.IsSet(name) || value == "" {
			return nil
		}
		return ctx.Set(name, value)
	}
	if err := set(debug.VerbosityFlag.Name, strconv.Itoa(cfg.Log.Verbosity)); err != nil {
		return err
	}
	if err := set(debug.LogVmoduleFlag.Name, cfg.Log.Vmodule); err != nil {
		return err
	}
	return set(debug.LogFormatFlag.Name, cfg.Log.Format)
}

// makeConfig loads the configuration file and applies the command line
// flags on top of it.
func makeConfig(ctx *cli.Context) (abigenConfig, error) {
	cfg, err := loadBaseConfig(ctx)
	if err != nil {
		return cfg, err
	}
	if err := setBindConfig(ctx, &cfg.Bind); err != nil {
		return cfg, err
	}
	if ctx.IsSet(debug.VerbosityFlag.Name) {
		cfg.Log.Verbosity = ctx.Int(debug.VerbosityFlag.Name)
	}
	if ctx.IsSet(debug.LogVmoduleFlag.Name) {
		cfg.Log.Vmodule = ctx.String(debug.LogVmoduleFlag.Name)
	}
	if ctx.IsSet(debug.LogFormatFlag.Name) {
		cfg.Log.Format = ctx.String(debug.LogFormatFlag.Name)
	}
	return cfg, nil
}

// dumpConfig is the dumpconfig command.
func dumpConfig(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	out, err := tomlSettings.Marshal(&cfg)
	if err != nil {
		return err
	}

	var dump io.Writer = ctx.App.Writer
	if ctx.NArg() > 0 {
		file, err := os.OpenFile(ctx.Args().Get(0), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return err
		}
		defer file.Close()
		dump = file
	}
	if _, err := io.WriteString(dump, "# abigen "+version.WithMeta+"\n\n"); err != nil {
		return err
	}
	_, err = dump.Write(out)
	return err
}
