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

package marshal

import (
	"math/big"
	"reflect"
	"testing"

	"github.com/ethereum/go-abi/accounts/abi"
	"github.com/ethereum/go-abi/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func word(n uint64) []byte {
	w := uint256.NewInt(n).Bytes32()
	return w[:]
}

type mixed struct {
	A uint8
	B []uint64
	C uint8
	D []int32
}

func TestMarshalStructLayout(t *testing.T) {
	v := mixed{A: 0x44, B: []uint64{0xaa, 0xbb}, C: 0x55, D: []int32{0xcc, 0xdd}}
	data, err := Marshal(v)
	require.NoError(t, err)
	require.Len(t, data, 320)

	var want []byte
	for _, w := range []uint64{0x44, 0x80, 0x55, 0xe0, 2, 0xaa, 0xbb, 2, 0xcc, 0xdd} {
		want = append(want, word(w)...)
	}
	assert.Equal(t, want, data)

	var out mixed
	require.NoError(t, Unmarshal(data, &out))
	assert.Equal(t, v, out)
}

func TestMarshalSingleValue(t *testing.T) {
	data, err := Marshal("hello")
	require.NoError(t, err)
	// a lone dynamic value is laid out like a single argument
	assert.Equal(t, abi.Encode(abi.MustNewString("hello")), data)

	var s string
	require.NoError(t, Unmarshal(data, &s))
	assert.Equal(t, "hello", s)

	data, err = Marshal([]uint16{1, 2})
	require.NoError(t, err)
	var nums []uint16
	require.NoError(t, Unmarshal(data, &nums))
	assert.Equal(t, []uint16{1, 2}, nums)

	assert.Error(t, Unmarshal(data, nums))
	assert.Error(t, Unmarshal(data, nil))
}

func TestTypeOf(t *testing.T) {
	type inner struct {
		X int16
		Y common.Address
	}
	tests := []struct {
		v    interface{}
		want string
	}{
		{uint8(0), "uint8"},
		{int64(0), "int64"},
		{uint(0), "uint64"},
		{true, "bool"},
		{"", "string"},
		{[]byte{}, "bytes"},
		{[4]byte{}, "bytes4"},
		{[32]byte{}, "bytes32"},
		{[33]byte{}, "uint8[33]"},
		{common.Address{}, "address"},
		{abi.Address{}, "address"},
		{abi.FunctionRef{}, "function"},
		{new(big.Int), "int256"},
		{new(uint256.Int), "uint256"},
		{uint256.Int{}, "uint256"},
		{[]string{}, "string[]"},
		{[2][]bool{}, "bool[][2]"},
		{inner{}, "(int16,address)"},
		{[]inner{}, "(int16,address)[]"},
		{new(inner), "(int16,address)"},
	}
	for _, tt := range tests {
		typ, err := TypeOf(reflect.TypeOf(tt.v))
		require.NoError(t, err, "%T", tt.v)
		assert.Equal(t, tt.want, typ.String(), "%T", tt.v)
	}

	typ, err := TypeOf(reflect.TypeOf(inner{}))
	require.NoError(t, err)
	assert.Equal(t, "inner", typ.TupleRawName)
	assert.Equal(t, []string{"X", "Y"}, typ.TupleRawNames)

	for _, bad := range []interface{}{1.5, map[string]int{}, abi.Uint256(1), struct{ V abi.Value }{}, make(chan int)} {
		_, err := TypeOf(reflect.TypeOf(bad))
		assert.ErrorIs(t, err, abi.ErrUnsupportedType, "%T", bad)
	}
}

type order struct {
	Amount *big.Int `abi:"amount,uint96"`
	Fee    uint32   `abi:",uint24"`
	Memo   string   `abi:"-"`
	Width  abi.Uint `abi:"width,uint40"`
	hidden bool
}

func TestStructTags(t *testing.T) {
	typ, err := TypeOf(reflect.TypeOf(order{}))
	require.NoError(t, err)
	assert.Equal(t, "(uint96,uint24,uint40)", typ.String())
	assert.Equal(t, []string{"amount", "Fee", "width"}, typ.TupleRawNames)

	width, err := abi.NewUint(40, big.NewInt(5))
	require.NoError(t, err)
	in := order{Amount: big.NewInt(1000), Fee: 30, Memo: "skipped", Width: width}
	data, err := Marshal(in)
	require.NoError(t, err)
	assert.Len(t, data, 96)

	var out order
	require.NoError(t, Unmarshal(data, &out))
	assert.Equal(t, big.NewInt(1000), out.Amount)
	assert.Equal(t, uint32(30), out.Fee)
	assert.Empty(t, out.Memo)
	assert.True(t, abi.EqualValues(width, out.Width))

	// the declared width is enforced
	_, err = Marshal(order{Amount: new(big.Int).Lsh(big.NewInt(1), 96), Width: width})
	assert.ErrorIs(t, err, abi.ErrOutOfRange)
	_, err = Marshal(order{Amount: big.NewInt(1), Fee: 1 << 24, Width: width})
	assert.ErrorIs(t, err, abi.ErrOutOfRange)
}

func TestValueOfType(t *testing.T) {
	v, err := ValueOfType(big.NewInt(70000), abi.MustNewType("uint24"))
	require.NoError(t, err)
	assert.Equal(t, "uint24", v.Type().String())

	v, err = ValueOfType([]int{1, -2}, abi.MustNewType("int8[2]"))
	require.NoError(t, err)
	assert.Equal(t, "int8[2]", v.Type().String())

	v, err = ValueOfType(abi.Bool(true), abi.TypeBool)
	require.NoError(t, err)
	assert.Equal(t, abi.Bool(true), v)

	tests := []struct {
		v    interface{}
		typ  string
		want error
	}{
		{big.NewInt(-1), "uint8", abi.ErrOutOfRange},
		{"text", "uint8", abi.ErrTypeMismatch},
		{[]int{1}, "int8[2]", abi.ErrInvalidLength},
		{[]byte{1, 2}, "bytes4", abi.ErrInvalidLength},
		{[]byte{1, 2}, "address", abi.ErrInvalidLength},
		{nil, "bool", abi.ErrTypeMismatch},
		{(*big.Int)(nil), "bool", abi.ErrTypeMismatch},
		{abi.Bool(true), "uint8", abi.ErrTypeMismatch},
		{struct{ A, B bool }{}, "(bool)", abi.ErrTypeMismatch},
		{"\xff", "string", abi.ErrInvalidUTF8},
	}
	for _, tt := range tests {
		_, err := ValueOfType(tt.v, abi.MustNewType(tt.typ))
		assert.ErrorIs(t, err, tt.want, "%v as %s", tt.v, tt.typ)
	}
}

func TestAssign(t *testing.T) {
	var (
		i8     int8
		u64    uint64
		i      int
		n      *big.Int
		u      *uint256.Int
		addr   common.Address
		word32 [32]byte
		front  [8]byte
		raw    []byte
		iface  interface{}
		ptr    *uint16
	)
	b4, _ := abi.NewFixedBytes(4, []byte{1, 2, 3, 4})
	a := abi.Address{Address: common.HexToAddress("0x01")}

	require.NoError(t, AssignTo(abi.Int8(-5), &i8))
	assert.Equal(t, int8(-5), i8)
	require.NoError(t, AssignTo(abi.Uint8(200), &u64))
	assert.Equal(t, uint64(200), u64)
	require.NoError(t, AssignTo(abi.Int16(-300), &i))
	assert.Equal(t, -300, i)
	require.NoError(t, AssignTo(abi.Uint256(9), &n))
	assert.Equal(t, big.NewInt(9), n)
	require.NoError(t, AssignTo(abi.Uint256(9), &u))
	assert.Equal(t, uint256.NewInt(9), u)
	require.NoError(t, AssignTo(a, &addr))
	assert.Equal(t, a.Address, addr)
	require.NoError(t, AssignTo(a, &word32))
	assert.Equal(t, common.LeftPadBytes(a.Bytes(), 32), word32[:])
	require.NoError(t, AssignTo(b4, &front))
	assert.Equal(t, [8]byte{1, 2, 3, 4}, front)
	require.NoError(t, AssignTo(abi.Bytes{7}, &raw))
	assert.Equal(t, []byte{7}, raw)
	require.NoError(t, AssignTo(abi.Bool(true), &iface))
	assert.Equal(t, abi.Bool(true), iface)
	require.NoError(t, AssignTo(abi.Uint16(3), &ptr))
	require.NotNil(t, ptr)
	assert.Equal(t, uint16(3), *ptr)

	assert.ErrorIs(t, AssignTo(abi.Int16(300), &i8), abi.ErrOutOfRange)
	assert.ErrorIs(t, AssignTo(abi.Int8(-1), &u64), abi.ErrOutOfRange)
	assert.ErrorIs(t, AssignTo(abi.Bool(true), &u64), abi.ErrTypeMismatch)
	assert.ErrorIs(t, AssignTo(abi.MustNewString("x"), &raw), abi.ErrTypeMismatch)
	assert.ErrorIs(t, AssignTo(abi.Int8(-1), &u), abi.ErrOutOfRange)
	assert.ErrorIs(t, AssignTo(abi.Bytes{1}, &u64), abi.ErrTypeMismatch)
	assert.Error(t, AssignTo(abi.Bool(true), i8))
	assert.Error(t, Assign(abi.Bool(true), reflect.ValueOf(i8)))
}
