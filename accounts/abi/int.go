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
	"fmt"
	"math"
	"math/big"

	"github.com/holiman/uint256"
	"golang.org/x/exp/constraints"
)

// Int is a signed integer of 8 to 256 bits. The value is kept as its 256 bit
// two's complement, which is exactly its ABI word. The zero Int is int256 0.
// Int 是 8 到 256 位的有符号整数，以 256 位补码形式保存。
type Int struct {
	bits int
	v    uint256.Int
}

// Uint is an unsigned integer of 8 to 256 bits. The zero Uint is uint256 0.
// Uint 是 8 到 256 位的无符号整数。
type Uint struct {
	bits int
	v    uint256.Int
}

// NewInt returns the int<bits> value of v, failing with ErrOutOfRange if v
// does not fit the width.
func NewInt(bits int, v *big.Int) (Int, error) {
	typ, err := IntType(bits)
	if err != nil {
		return Int{}, err
	}
	var (
		max = new(big.Int).Lsh(big.NewInt(1), uint(bits-1))
		min = new(big.Int).Neg(max)
	)
	if v.Cmp(min) < 0 || v.Cmp(max) >= 0 {
		return Int{}, &RangeError{Type: typ.String(), Value: v.String()}
	}
	x := Int{bits: bits}
	x.v.SetFromBig(new(big.Int).Abs(v))
	if v.Sign() < 0 {
		x.v.Neg(&x.v)
	}
	return x, nil
}

// IntFrom returns the int<bits> value of any Go signed integer.
func IntFrom[T constraints.Signed](bits int, v T) (Int, error) {
	return NewInt(bits, big.NewInt(int64(v)))
}

// NewUint returns the uint<bits> value of v, failing with ErrOutOfRange if v
// is negative or wider than bits.
func NewUint(bits int, v *big.Int) (Uint, error) {
	typ, err := UintType(bits)
	if err != nil {
		return Uint{}, err
	}
	if v.Sign() < 0 || v.BitLen() > bits {
		return Uint{}, &RangeError{Type: typ.String(), Value: v.String()}
	}
	x := Uint{bits: bits}
	x.v.SetFromBig(v)
	return x, nil
}

// UintFrom returns the uint<bits> value of any Go unsigned integer.
func UintFrom[T constraints.Unsigned](bits int, v T) (Uint, error) {
	return NewUint(bits, new(big.Int).SetUint64(uint64(v)))
}

func intFromInt64(bits int, v int64) Int {
	x := Int{bits: bits}
	if v < 0 {
		x.v.SetUint64(uint64(-v))
		x.v.Neg(&x.v)
	} else {
		x.v.SetUint64(uint64(v))
	}
	return x
}

func uintFromUint64(bits int, v uint64) Uint {
	x := Uint{bits: bits}
	x.v.SetUint64(v)
	return x
}

// Shorthands for the widths that have a native Go type.
func Int8(v int8) Int       { return intFromInt64(8, int64(v)) }
func Int16(v int16) Int     { return intFromInt64(16, int64(v)) }
func Int32(v int32) Int     { return intFromInt64(32, int64(v)) }
func Int64(v int64) Int     { return intFromInt64(64, v) }
func Uint8(v uint8) Uint    { return uintFromUint64(8, uint64(v)) }
func Uint16(v uint16) Uint  { return uintFromUint64(16, uint64(v)) }
func Uint32(v uint32) Uint  { return uintFromUint64(32, uint64(v)) }
func Uint64(v uint64) Uint  { return uintFromUint64(64, v) }
func Uint256(v uint64) Uint { return uintFromUint64(256, v) }

// NewUint256 returns the uint256 value of v.
func NewUint256(v *uint256.Int) Uint {
	return Uint{bits: 256, v: *v}
}

func (x Int) Type() Type {
	bits := x.Bits()
	return Type{T: IntTy, Size: bits, stringKind: fmt.Sprintf("int%d", bits)}
}

func (x Int) EncodedLen() int { return 32 }

func (x Int) Encode() []byte {
	word := x.v.Bytes32()
	return word[:]
}

// Bits returns the declared width.
func (x Int) Bits() int { return widthOrDefault(x.bits) }

// Big returns the value as a big integer.
func (x Int) Big() *big.Int {
	if x.v.Sign() >= 0 {
		return x.v.ToBig()
	}
	abs := new(uint256.Int).Neg(&x.v)
	return new(big.Int).Neg(abs.ToBig())
}

// Int64 returns the value if it fits an int64.
func (x Int) Int64() (int64, bool) {
	b := x.Big()
	return b.Int64(), b.IsInt64()
}

func (x Int) String() string { return x.Big().String() }

func (x Uint) Type() Type {
	bits := x.Bits()
	return Type{T: UintTy, Size: bits, stringKind: fmt.Sprintf("uint%d", bits)}
}

func (x Uint) EncodedLen() int { return 32 }

func (x Uint) Encode() []byte {
	word := x.v.Bytes32()
	return word[:]
}

// Bits returns the declared width.
func (x Uint) Bits() int { return widthOrDefault(x.bits) }

// Big returns the value as a big integer.
func (x Uint) Big() *big.Int { return x.v.ToBig() }

// Uint256 returns a copy of the value.
func (x Uint) Uint256() *uint256.Int { return x.v.Clone() }

// Uint64 returns the value if it fits an uint64.
func (x Uint) Uint64() (uint64, bool) { return x.v.Uint64(), x.v.IsUint64() }

func (x Uint) String() string { return x.v.Dec() }

// readInteger decodes an integer word, rejecting words that are not a proper
// sign or zero extension of the declared width.
// readInteger 解码整数字，拒绝不是所声明宽度的正确符号扩展或零扩展的字。
func readInteger(typ Type, word []byte) (Value, error) {
	var v uint256.Int
	v.SetBytes32(word)

	if typ.T == UintTy {
		if v.BitLen() > typ.Size {
			return nil, &RangeError{Type: typ.String(), Value: v.Hex()}
		}
		return Uint{bits: typ.Size, v: v}, nil
	}
	if typ.Size < 256 {
		var ext uint256.Int
		ext.ExtendSign(&v, uint256.NewInt(uint64(typ.Size/8-1)))
		if !ext.Eq(&v) {
			return nil, &RangeError{Type: typ.String(), Value: v.Hex()}
		}
	}
	return Int{bits: typ.Size, v: v}, nil
}

// readLength decodes a length or offset word into an int.
func readLength(word []byte) (int, error) {
	var v uint256.Int
	v.SetBytes32(word)
	if !v.IsUint64() || v.Uint64() > math.MaxInt32 {
		return 0, &RangeError{Type: "uint256", Value: v.Hex()}
	}
	return int(v.Uint64()), nil
}

// packNum packs the given length or offset as a 32 byte word.
func packNum(n int) []byte {
	word := uint256.NewInt(uint64(n)).Bytes32()
	return word[:]
}

// widthOrDefault maps the width of a zero value to 256.
func widthOrDefault(bits int) int {
	if bits == 0 {
		return 256
	}
	return bits
}
