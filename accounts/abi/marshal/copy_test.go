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
	"strings"
	"testing"

	"github.com/ethereum/go-abi/accounts/abi"
	"github.com/ethereum/go-abi/common"
	"github.com/ethereum/go-abi/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const poolABI = `[
	{"type":"function","name":"reserves","inputs":[],"outputs":[{"name":"reserve0","type":"uint112"},{"name":"reserve1","type":"uint112"},{"name":"_timestamp","type":"uint32"}]},
	{"type":"function","name":"owner","inputs":[],"outputs":[{"name":"","type":"address"}]},
	{"type":"function","name":"pair","inputs":[],"outputs":[{"name":"","type":"address"},{"name":"","type":"address"}]},
	{"type":"function","name":"clash","inputs":[],"outputs":[{"name":"value","type":"uint8"},{"name":"_value","type":"uint8"}]},
	{"type":"event","name":"Swap","inputs":[{"name":"sender","type":"address","indexed":true},{"name":"amountIn","type":"uint256","indexed":false},{"name":"path","type":"string","indexed":true},{"name":"amountOut","type":"uint256","indexed":false}]},
	{"type":"event","name":"Sync","anonymous":true,"inputs":[{"name":"reserve","type":"uint112","indexed":false}]},
	{"type":"error","name":"Slippage","inputs":[{"name":"minOut","type":"uint256"}]}
]`

func mustPool(t *testing.T) abi.ABI {
	t.Helper()
	parsed, err := abi.JSON(strings.NewReader(poolABI))
	require.NoError(t, err)
	return parsed
}

func u112(t *testing.T, n int64) abi.Uint {
	t.Helper()
	v, err := abi.NewUint(112, big.NewInt(n))
	require.NoError(t, err)
	return v
}

func TestUnpackIntoStruct(t *testing.T) {
	pool := mustPool(t)
	ts, _ := abi.UintFrom(32, uint32(1700000000))
	data := abi.Encode(u112(t, 10), u112(t, 20), ts)

	var out struct {
		Reserve0  *big.Int
		Reserve1  *big.Int
		Timestamp uint32
	}
	require.NoError(t, UnpackIntoInterface(pool, &out, "reserves", data))
	assert.Equal(t, big.NewInt(10), out.Reserve0)
	assert.Equal(t, big.NewInt(20), out.Reserve1)
	assert.Equal(t, uint32(1700000000), out.Timestamp)

	var tagged struct {
		First  *big.Int `abi:"reserve0"`
		Second *big.Int `abi:"reserve1"`
		Time   uint64   `abi:"_timestamp"`
	}
	require.NoError(t, UnpackIntoInterface(pool, &tagged, "reserves", data))
	assert.Equal(t, big.NewInt(20), tagged.Second)
	assert.Equal(t, uint64(1700000000), tagged.Time)

	var list []interface{}
	require.NoError(t, UnpackIntoInterface(pool, &list, "reserves", data))
	require.Len(t, list, 3)
	assert.Equal(t, "10", list[0].(abi.Uint).String())

	var short [2]*big.Int
	assert.Error(t, UnpackIntoInterface(pool, &short, "reserves", data))

	var missing struct {
		Reserve0 *big.Int `abi:"nope"`
	}
	assert.Error(t, UnpackIntoInterface(pool, &missing, "reserves", data))
	assert.Error(t, UnpackIntoInterface(pool, &out, "unknown", data))
	assert.Error(t, UnpackIntoInterface(pool, out, "reserves", data))
}

func TestUnpackSingleOutput(t *testing.T) {
	pool := mustPool(t)
	owner := common.HexToAddress("0x00000000000000000000000000000000000000ee")
	data := abi.Encode(abi.Address{Address: owner})

	var addr common.Address
	require.NoError(t, UnpackIntoInterface(pool, &addr, "owner", data))
	assert.Equal(t, owner, addr)

	var wrapped struct{ Owner common.Address }
	require.NoError(t, UnpackIntoInterface(pool, &wrapped, "owner", data))
	assert.Equal(t, owner, wrapped.Owner)

	var pair [2]common.Address
	require.NoError(t, UnpackIntoInterface(pool, &pair, "pair", abi.Encode(abi.Address{Address: owner}, abi.Address{})))
	assert.Equal(t, owner, pair[0])
}

func TestUnpackNameClash(t *testing.T) {
	pool := mustPool(t)
	data := abi.Encode(abi.Uint8(1), abi.Uint8(2))

	var out struct{ Value uint8 }
	err := UnpackIntoInterface(pool, &out, "clash", data)
	assert.Error(t, err)

	var tagged struct {
		Value  uint8
		Value2 uint8 `abi:"_value"`
	}
	require.NoError(t, UnpackIntoInterface(pool, &tagged, "clash", data))
	assert.Equal(t, uint8(1), tagged.Value)
	assert.Equal(t, uint8(2), tagged.Value2)
}

type swapEvent struct {
	Sender    common.Address
	AmountIn  *big.Int
	Path      common.Hash
	AmountOut *big.Int
}

func TestUnpackLog(t *testing.T) {
	pool := mustPool(t)
	event := pool.Events["Swap"]
	sender := common.HexToAddress("0x00000000000000000000000000000000000000aa")

	query, err := abi.MakeTopics(
		[]abi.Value{abi.Address{Address: sender}},
		[]abi.Value{abi.MustNewString("weth/usdc")},
	)
	require.NoError(t, err)
	topics := []common.Hash{event.ID, query[0][0], query[1][0]}
	data := abi.Encode(abi.Uint256(5), abi.Uint256(7))

	var out swapEvent
	require.NoError(t, UnpackLog(event, &out, topics, data))
	assert.Equal(t, sender, out.Sender)
	assert.Equal(t, big.NewInt(5), out.AmountIn)
	assert.Equal(t, big.NewInt(7), out.AmountOut)
	assert.Equal(t, crypto.Keccak256Hash([]byte("weth/usdc")), out.Path)

	assert.Error(t, UnpackLog(event, &out, nil, data))
	assert.Error(t, UnpackLog(event, &out, []common.Hash{{}, query[0][0], query[1][0]}, data))
	assert.Error(t, UnpackLog(event, &out, topics[:2], data))
	assert.ErrorIs(t, UnpackLog(event, &out, topics, data[:40]), abi.ErrUnexpectedEOF)

	// anonymous events carry no id topic
	var sync struct{ Reserve *big.Int }
	require.NoError(t, UnpackLog(pool.Events["Sync"], &sync, nil, abi.Encode(u112(t, 3))))
	assert.Equal(t, big.NewInt(3), sync.Reserve)
}

func TestCopyFieldsError(t *testing.T) {
	pool := mustPool(t)
	e := pool.Errors["Slippage"]
	data := abi.NewBuilder().Name("Slippage").Push(abi.Uint256(99)).Build()

	values, err := e.Unpack(data)
	require.NoError(t, err)
	var out struct{ MinOut *big.Int }
	require.NoError(t, CopyFields(e.Inputs, &out, values))
	assert.Equal(t, big.NewInt(99), out.MinOut)

	assert.ErrorIs(t, CopyFields(e.Inputs, &out, nil), abi.ErrTypeMismatch)
	assert.Error(t, CopyFields(e.Inputs, out, values))
	assert.NoError(t, CopyFields(nil, &out, nil))
}
