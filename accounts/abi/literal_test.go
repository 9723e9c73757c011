// Copyright 2016 The go-ethereum Authors
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

package abi

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-abi/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		typ   string
		input string
		want  Value
	}{
		{"uint8", "255", Uint8(255)},
		{"uint64", "0xff", Uint64(255)},
		{"int16", "-0x10", Int16(-16)},
		{"int32", " -42 ", Int32(-42)},
		{"bool", "true", Bool(true)},
		{"bool", "false", Bool(false)},
		{"address", "0x00000000000000000000000000000000000000aa", Address{common.HexToAddress("0xaa")}},
		{"address", "00000000000000000000000000000000000000aa", Address{common.HexToAddress("0xaa")}},
		{"bytes", "0x0102", Bytes{1, 2}},
		{"bytes", "", Bytes{}},
		{"string", " spaced ", MustNewString(" spaced ")},
		{"uint8[]", "[1, 2, 3]", listOf(t, MustNewType("uint8[]"), Uint8(1), Uint8(2), Uint8(3))},
		{"(uint8,string)", `[7, "seven"]`, NewTuple(Uint8(7), MustNewString("seven"))},
		{"bytes2[2]", `["0x0102", "0x0304"]`, listOf(t, MustNewType("bytes2[2]"), mustFixed(t, 1, 2), mustFixed(t, 3, 4))},
		{"uint16[][]", "[[1],[]]", listOf(t, MustNewType("uint16[][]"),
			listOf(t, MustNewType("uint16[]"), Uint16(1)),
			listOf(t, MustNewType("uint16[]")))},
	}
	for _, tt := range tests {
		v, err := ParseValue(MustNewType(tt.typ), tt.input)
		require.NoError(t, err, "%s %q", tt.typ, tt.input)
		assert.True(t, EqualValues(tt.want, v), "%s %q: have %v want %v", tt.typ, tt.input, v, tt.want)
	}
}

func TestParseValueUint256(t *testing.T) {
	max := "115792089237316195423570985008687907853269984665640564039457584007913129639935"
	v, err := ParseValue(MustNewType("uint256"), max)
	require.NoError(t, err)
	want, _ := new(big.Int).SetString(max, 10)
	assert.Equal(t, want, v.(Uint).Big())

	_, err = ParseValue(MustNewType("uint256"), max+"0")
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestParseValueErrors(t *testing.T) {
	tests := []struct {
		typ   string
		input string
		want  error
	}{
		{"uint8", "256", ErrOutOfRange},
		{"uint8", "-1", ErrOutOfRange},
		{"uint8", "abc", ErrOutOfRange},
		{"uint8", "+1", ErrOutOfRange},
		{"uint8", "0xzz", ErrInvalidHex},
		{"int8", "-129", ErrOutOfRange},
		{"bool", "yes", ErrOutOfRange},
		{"address", "0x1234", ErrInvalidLength},
		{"address", "0xgg", ErrInvalidHex},
		{"bytes4", "0x010203", ErrInvalidLength},
		{"bytes", "0x123", ErrInvalidHex},
		{"string", "\xff", ErrInvalidUTF8},
		{"uint8[2]", "[1]", ErrInvalidLength},
		{"(bool,bool)", "[true]", ErrInvalidLength},
		{"uint8[]", "[1, 300]", ErrOutOfRange},
	}
	for _, tt := range tests {
		_, err := ParseValue(MustNewType(tt.typ), tt.input)
		assert.ErrorIs(t, err, tt.want, "%s %q", tt.typ, tt.input)
	}
	_, err := ParseValue(MustNewType("uint8[]"), "1,2")
	assert.Error(t, err)
}

// listOf builds a slice or array value of type typ for comparisons.
func listOf(t *testing.T, typ Type, values ...Value) Value {
	t.Helper()
	var (
		v   Value
		err error
	)
	if typ.T == SliceTy {
		v, err = NewSlice(*typ.Elem, values...)
	} else {
		v, err = NewArray(*typ.Elem, values...)
	}
	require.NoError(t, err)
	return v
}

func mustFixed(t *testing.T, b ...byte) FixedBytes {
	t.Helper()
	v, err := NewFixedBytes(len(b), b)
	require.NoError(t, err)
	return v
}
