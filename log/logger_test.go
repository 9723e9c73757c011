// Copyright 2023 The go-ethereum Authors
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

package log

import (
	"bytes"
	"errors"
	"log/slog"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestWriteTimeTermFormat(t *testing.T) {
	var b bytes.Buffer
	writeTimeTermFormat(&b, time.Date(2024, time.March, 7, 9, 4, 5, 123456789, time.UTC))
	require.Equal(t, "03-07|09:04:05.123", b.String())
}

func TestTerminalHandler(t *testing.T) {
	out := new(bytes.Buffer)
	l := NewLogger(NewTerminalHandler(out, false))
	l.Info("Packed call", "method", "transfer", "size", 68)

	have := out.String()
	require.True(t, strings.HasPrefix(have, "INFO ["), "have %q", have)
	want := "Packed call" + strings.Repeat(" ", termMsgJust-len("Packed call")) + " method=transfer size=68\n"
	require.True(t, strings.HasSuffix(have, want), "have %q", have)
}

func TestTerminalHandlerLevel(t *testing.T) {
	out := new(bytes.Buffer)
	l := NewLogger(NewTerminalHandlerWithLevel(out, LevelWarn, false))
	l.Info("dropped")
	require.Zero(t, out.Len())
	l.Warn("kept")
	require.Contains(t, out.String(), "kept")
}

func TestLogfmtHandler(t *testing.T) {
	out := new(bytes.Buffer)
	l := NewLogger(LogfmtHandler(out))
	l.Debug("decoded", "value", big.NewInt(-5), "word", uint256.NewInt(7))
	have := out.String()
	require.Contains(t, have, "lvl=debug")
	require.Contains(t, have, "msg=decoded value=-5 word=7")
}

func TestJSONHandler(t *testing.T) {
	out := new(bytes.Buffer)
	l := NewLogger(JSONHandler(out))
	l.Error("failed", "err", errors.New("abi: unexpected end of input"))
	require.Contains(t, out.String(), `"lvl":"error"`)
	require.Contains(t, out.String(), `"err":"abi: unexpected end of input"`)
}

func TestOddAttributes(t *testing.T) {
	out := new(bytes.Buffer)
	l := NewLogger(LogfmtHandler(out))
	l.Info("odd", "key")
	require.Contains(t, out.String(), errorKey)
}

func TestFormatValues(t *testing.T) {
	tests := []struct {
		v    slog.Value
		want string
	}{
		{slog.Int64Value(999), "999"},
		{slog.Int64Value(-1234567), "-1,234,567"},
		{slog.Uint64Value(100000), "100,000"},
		{slog.AnyValue(new(big.Int).Lsh(big.NewInt(1), 64)), "18,446,744,073,709,551,616"},
		{slog.AnyValue(new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 64))), "-18,446,744,073,709,551,616"},
		{slog.AnyValue(new(uint256.Int).Lsh(uint256.NewInt(1), 64)), "18,446,744,073,709,551,616"},
		{slog.AnyValue((*big.Int)(nil)), "<nil>"},
		{slog.StringValue("with space"), `"with space"`},
		{slog.BoolValue(true), "true"},
	}
	for i, tt := range tests {
		have := string(FormatSlogValue(tt.v, nil))
		require.Equal(t, tt.want, have, "test %d", i)
	}
}

func TestFromLegacyLevel(t *testing.T) {
	require.Equal(t, LevelCrit, FromLegacyLevel(0))
	require.Equal(t, LevelInfo, FromLegacyLevel(3))
	require.Equal(t, LevelTrace, FromLegacyLevel(5))
	require.Equal(t, LevelTrace, FromLegacyLevel(9))
	require.Equal(t, LevelCrit, FromLegacyLevel(-1))
}

func TestGlogVerbosity(t *testing.T) {
	out := new(bytes.Buffer)
	glog := NewGlogHandler(LogfmtHandler(out))
	glog.Verbosity(LevelWarn)
	l := NewLogger(glog)

	l.Info("hidden")
	require.Zero(t, out.Len())

	require.NoError(t, glog.Vmodule("logger_test.go=4"))
	l.Debug("visible")
	require.Contains(t, out.String(), "visible")

	require.ErrorIs(t, glog.Vmodule("foo"), errVmoduleSyntax)
	require.ErrorIs(t, glog.Vmodule("foo=bar"), errVmoduleSyntax)
}
