// Copyright 2018 The go-ethereum Authors
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
	"errors"
	"fmt"

	"github.com/ethereum/go-abi/common"
	"github.com/ethereum/go-abi/crypto"
)

// MakeTopics converts a filter query argument list into a filter topic set.
// Elementary values become their encoded word, string and bytes values the
// Keccak-256 hash of their content.
// MakeTopics 将过滤器查询参数列表转换为过滤器主题集合。
func MakeTopics(query ...[]Value) ([][]common.Hash, error) {
	topics := make([][]common.Hash, len(query))
	for i, filter := range query {
		for _, rule := range filter {
			topic, err := makeTopic(rule)
			if err != nil {
				return nil, err
			}
			topics[i] = append(topics[i], topic)
		}
	}
	return topics, nil
}

func makeTopic(rule Value) (common.Hash, error) {
	switch rule := rule.(type) {
	case String:
		return crypto.Keccak256Hash([]byte(rule.s)), nil
	case Bytes:
		return crypto.Keccak256Hash(rule), nil
	case Array, Slice, Tuple:
		// Indexed arrays and structs are stored as the hash of a packed
		// encoding this package does not produce.
		return common.Hash{}, &UnsupportedTypeError{Type: "indexed " + rule.Type().String()}
	case nil:
		return common.Hash{}, fmt.Errorf("%w: nil topic value", ErrTypeMismatch)
	default:
		return common.BytesToHash(rule.Encode()), nil
	}
}

// ParseTopics converts the indexed topic fields into actual log field values.
//
// Note, dynamic types cannot be reconstructed since they get mapped to Keccak256
// hashes as the topic value! They are returned as the bytes32 hash.
// ParseTopics 将索引主题字段转换为实际的日志字段值。
// 注意：动态类型无法重建，因为它们被映射为主题值的 Keccak256 哈希！
func ParseTopics(fields Arguments, topics []common.Hash) ([]Value, error) {
	values := make([]Value, 0, len(fields))
	err := parseTopicWithSetter(fields, topics, func(_ Argument, v Value) {
		values = append(values, v)
	})
	if err != nil {
		return nil, err
	}
	return values, nil
}

// ParseTopicsIntoMap converts the indexed topic field-value pairs into map key-value pairs.
// ParseTopicsIntoMap 将索引主题字段值对转换为映射键值对。
func ParseTopicsIntoMap(out map[string]Value, fields Arguments, topics []common.Hash) error {
	return parseTopicWithSetter(fields, topics, func(arg Argument, v Value) {
		out[arg.Name] = v
	})
}

// parseTopicWithSetter converts the indexed topic field-value pairs and stores them using the
// provided set function.
func parseTopicWithSetter(fields Arguments, topics []common.Hash, setter func(Argument, Value)) error {
	// Sanity check that the fields and topics match up
	if len(fields) != len(topics) {
		return errors.New("topic/field count mismatch")
	}
	for i, arg := range fields {
		if !arg.Indexed {
			return errors.New("non-indexed field in topic reconstruction")
		}
		var (
			reconstr Value
			err      error
		)
		switch arg.Type.T {
		case TupleTy:
			return errors.New("tuple type in topic reconstruction")
		case StringTy, BytesTy, SliceTy, ArrayTy:
			// Array types (including strings and bytes) have their keccak256 hashes stored in the topic- not a hash
			// whose bytes can be decoded to the actual value- so the best we can do is retrieve that hash
			// 数组类型的主题存储的是其 Keccak256 哈希值，因此我们只能检索该哈希值。
			reconstr = HashToFixedBytes(topics[i])
		default:
			reconstr, err = readBody(arg.Type, topics[i][:], 0)
			if err != nil {
				return fmt.Errorf("topic %d (%s): %w", i, arg.Name, err)
			}
		}
		setter(arg, reconstr)
	}
	return nil
}
