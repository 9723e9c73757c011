// Copyright 2015 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package flags

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestPathExpansion(t *testing.T) {
	home := HomeDir()
	tests := map[string]string{
		"":                   "",
		"/home/someuser/tmp": "/home/someuser/tmp",
		"~/tmp":              home + "/tmp",
		"~thisOtherUser/b/":  "~thisOtherUser/b",
		"$DDDXXX/a/b":        "/tmp/a/b",
		"/a/b/../c":          "/a/c",
		"./abi/../out.go":    "out.go",
	}
	t.Setenv("DDDXXX", "/tmp")
	for test, expected := range tests {
		assert.Equal(t, expected, expandPath(test), "input %q", test)
	}
}

func TestPathFlagApply(t *testing.T) {
	t.Setenv("ABIGEN_TEST_OUT", "~/bindings/token.go")

	f := &PathFlag{Name: "out", Aliases: []string{"o"}, EnvVars: []string{"ABIGEN_TEST_OUT"}}
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	require.NoError(t, f.Apply(set))
	assert.True(t, f.IsSet())
	assert.Equal(t, HomeDir()+"/bindings/token.go", set.Lookup("o").Value.String())
	assert.Empty(t, f.GetValue())

	require.NoError(t, set.Parse([]string{"-o", "/tmp/x/../token.go"}))
	assert.Equal(t, "/tmp/token.go", set.Lookup("out").Value.String())
	assert.Equal(t, []string{"out", "o"}, f.Names())
}

func TestMerge(t *testing.T) {
	a := &PathFlag{Name: "a"}
	b := &PathFlag{Name: "b"}
	merged := Merge(nil, []cli.Flag{a}, []cli.Flag{b})
	assert.Len(t, merged, 2)
}
