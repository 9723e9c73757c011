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
	"github.com/ethereum/go-abi/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderUnnamed(t *testing.T) {
	b := NewBuilder().Push(Bytes("random bytes"))
	_, ok := b.Selector()
	assert.False(t, ok)
	assert.Empty(t, b.Signature())

	data := b.Build()
	require.Len(t, data, 96)
	assert.Equal(t, concat(word(0x20), word(12), padded("random bytes")), data)
}

func TestBuilderTransfer(t *testing.T) {
	to := common.HexToAddress("0x00000000000000000000000000000000000000aa")
	amount, err := NewUint(256, big.NewInt(1000))
	require.NoError(t, err)

	b := NewBuilder().Name("transfer").Push(Address{to}).Push(amount)
	assert.Equal(t, "transfer(address,uint256)", b.Signature())
	assert.Equal(t, []Type{TypeAddress, MustNewType("uint256")}, b.Types())
	sel, ok := b.Selector()
	require.True(t, ok)
	assert.Equal(t, "0xa9059cbb", sel.Hex())

	data := b.Build()
	assert.Equal(t, hexutil.MustDecode("0xa9059cbb"), data[:4])
	assert.Equal(t, concat(common.LeftPadBytes(to[:], 32), word(1000)), data[4:])
}

func TestBuilderOffsetsSkipSelector(t *testing.T) {
	data := NewBuilder().Name("f").Push(MustNewString("abc")).Build()
	require.Len(t, data, 4+96)
	// the offset counts from the first head word, not from the selector
	assert.Equal(t, word(0x20), data[4:36])

	values, err := Decode(data[4:], TypeString)
	require.NoError(t, err)
	assert.Equal(t, "abc", values[0].(String).String())
}

func TestBuilderNoParams(t *testing.T) {
	data := NewBuilder().Name("totalSupply").Build()
	assert.Equal(t, SelectorFromSignature("totalSupply()").Bytes(), data)
	assert.Empty(t, NewBuilder().Build())
}

func TestBuilderConsumed(t *testing.T) {
	b := NewBuilder().Name("f")
	b.Build()
	assert.PanicsWithValue(t, errBuilderConsumed, func() { b.Push(Bool(true)) })
	assert.PanicsWithValue(t, errBuilderConsumed, func() { b.Name("g") })
	assert.PanicsWithValue(t, errBuilderConsumed, func() { b.Build() })
}

func TestBuilderZeroValues(t *testing.T) {
	var (
		amount Uint
		delta  Int
		tag    FixedBytes
	)
	b := NewBuilder().Name("transfer").Push(Address{}).Push(amount)
	assert.Equal(t, "transfer(address,uint256)", b.Signature())
	assert.Equal(t, SelectorFromSignature("transfer(address,uint256)").Bytes(), b.Build()[:4])

	assert.Equal(t, 256, delta.Bits())
	assert.Equal(t, "int256", delta.Type().String())
	assert.Equal(t, 32, tag.Size())
	assert.Equal(t, "bytes32", tag.Type().String())
	assert.Equal(t, make([]byte, 32), tag.Encode())
	assert.Equal(t, "()", Tuple{}.Type().String())
	assert.Empty(t, Encode(Tuple{}))
}

func TestBuilderRejectsUntyped(t *testing.T) {
	tests := []struct {
		value Value
		want  string
	}{
		{nil, "abi: unsupported arg type: nil"},
		{Slice{}, "abi: unsupported arg type: zero abi.Slice"},
		{Array{}, "abi: unsupported arg type: zero abi.Array"},
	}
	for _, tt := range tests {
		assert.PanicsWithError(t, tt.want, func() { NewBuilder().Name("f").Push(tt.value) })
		assert.PanicsWithError(t, tt.want, func() { Encode(Bool(true), tt.value) })
		assert.PanicsWithError(t, tt.want, func() { NewTuple(Bool(true), tt.value) })
	}
	// A slice whose element type is a zero slice is no better.
	_, err := NewSlice(SliceOf(Type{}))
	assert.ErrorIs(t, err, ErrUnsupportedType)
	_, err = NewSlice(TypeBool, Bool(true), nil)
	assert.ErrorIs(t, err, ErrTypeMismatch)
}
