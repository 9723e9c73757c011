// Copyright 2014 The go-ethereum Authors
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
package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCopyBytes(t *testing.T) {
	input := []byte{1, 2, 3, 4}

	v := CopyBytes(input)
	assert.Equal(t, input, v)
	v[0] = 99
	assert.Equal(t, byte(1), input[0], "source modified")
	assert.Nil(t, CopyBytes(nil))
}

func TestLeftPadBytes(t *testing.T) {
	val := []byte{1, 2, 3, 4}
	padded := []byte{0, 0, 0, 0, 1, 2, 3, 4}

	assert.Equal(t, padded, LeftPadBytes(val, 8))
	assert.Equal(t, val, LeftPadBytes(val, 2))
}

func TestRightPadBytes(t *testing.T) {
	val := []byte{1, 2, 3, 4}
	padded := []byte{1, 2, 3, 4, 0, 0, 0, 0}

	assert.Equal(t, padded, RightPadBytes(val, 8))
	assert.Equal(t, val, RightPadBytes(val, 2))
}

func TestFromHex(t *testing.T) {
	tests := []struct {
		input string
		want  []byte
	}{
		{"0x01", []byte{1}},
		{"0X01", []byte{1}},
		{"01", []byte{1}},
		{"0x1", []byte{1}},
		{"0xabcd", []byte{0xab, 0xcd}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FromHex(tt.input), "input %q", tt.input)
	}
	assert.Empty(t, FromHex(""))
}

func TestHex2Bytes(t *testing.T) {
	assert.Equal(t, []byte{0xde, 0xad}, Hex2Bytes("dead"))
	assert.Equal(t, "dead", Bytes2Hex([]byte{0xde, 0xad}))
	assert.Empty(t, Hex2Bytes("zz"))
}
