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
package common

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytesConversion(t *testing.T) {
	bytes := []byte{5}
	hash := BytesToHash(bytes)

	var exp Hash
	exp[31] = 5
	assert.Equal(t, exp, hash)

	// Longer input keeps the rightmost bytes.
	long := make([]byte, 40)
	long[0], long[39] = 0xff, 0x01
	addr := BytesToAddress(long)
	assert.Equal(t, byte(0x01), addr[19])
	assert.Equal(t, byte(0x00), addr[0])
}

func TestIsHexAddress(t *testing.T) {
	tests := []struct {
		str string
		exp bool
	}{
		{"0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed", true},
		{"5aaeb6053f3e94c9b9a09f33669435e7ef1beaed", true},
		{"0X5aaeb6053f3e94c9b9a09f33669435e7ef1beaed", true},
		{"0XAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA", true},
		{"0xAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA", true},
		{"0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed1", false},
		{"0x5aaeb6053f3e94c9b9a09f33669435e7ef1beae", false},
		{"5aaeb6053f3e94c9b9a09f33669435e7ef1beaed11", false},
		{"0xxaaeb6053f3e94c9b9a09f33669435e7ef1beaed", false},
	}
	for _, test := range tests {
		assert.Equal(t, test.exp, IsHexAddress(test.str), test.str)
	}
}

func TestHashHex(t *testing.T) {
	h := HexToHash("0x01")
	assert.Equal(t, "0x0000000000000000000000000000000000000000000000000000000000000001", h.Hex())
	assert.Equal(t, h.Hex(), h.String())
	assert.Equal(t, "000000..000001", h.TerminalString())
}

func TestAddressJSON(t *testing.T) {
	addr := HexToAddress("0x00000000000000000000000000000000000000ff")
	enc, err := json.Marshal(addr)
	require.NoError(t, err)
	assert.Equal(t, `"0x00000000000000000000000000000000000000ff"`, string(enc))

	var dec Address
	require.NoError(t, json.Unmarshal(enc, &dec))
	assert.Equal(t, addr, dec)

	assert.Error(t, json.Unmarshal([]byte(`"0x01"`), &dec))
	assert.Error(t, json.Unmarshal([]byte(`"00000000000000000000000000000000000000ff"`), &dec))
}

func TestHashJSON(t *testing.T) {
	var h Hash
	require.NoError(t, json.Unmarshal([]byte(`"0x0000000000000000000000000000000000000000000000000000000000000102"`), &h))
	assert.Equal(t, []byte{1, 2}, h.Bytes()[30:])
	assert.Error(t, json.Unmarshal([]byte(`"0x0102"`), &h))
}
