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
	"strings"

	"github.com/ethereum/go-abi/common"
	"github.com/ethereum/go-abi/crypto"
)

// Event is an event potentially triggered by the EVM's LOG mechanism. The Event
// holds type information (inputs) about the yielded output. Anonymous events
// don't get the signature canonical representation as the first LOG topic.
// Event 是可能由 EVM 的 LOG 机制触发的事件。匿名事件不会将签名作为第一个主题。
type Event struct {
	// Name is the event name used for internal representation. It's derived from
	// the raw name and a suffix will be added in the case of event overloading:
	// foo(int256,int256) resolves to foo, a later foo(uint256,uint256) to foo0.
	// Name 是内部使用的事件名称，重载时会添加后缀。
	Name string

	// RawName is the raw event name parsed from ABI.
	RawName   string
	Anonymous bool
	Inputs    Arguments
	str       string

	// Sig contains the canonical signature, e.g. "foo(uint32,int256)".
	Sig string

	// ID is the Keccak-256 hash of Sig, the first topic of non-anonymous
	// events.
	// ID 是 Sig 的 Keccak-256 哈希，即非匿名事件的第一个主题。
	ID common.Hash
}

// NewEvent creates a new Event. Unnamed inputs are named arg<i>, and the id,
// signature and string representation are precomputed.
// NewEvent 创建一个新的 Event，并预计算 ID、签名和字符串表示。
func NewEvent(name, rawName string, anonymous bool, inputs Arguments) Event {
	inputs = nameArguments(inputs, "arg")
	names := make([]string, len(inputs))
	for i, input := range inputs {
		if input.Indexed {
			names[i] = fmt.Sprintf("%v indexed %v", input.Type, input.Name)
		} else {
			names[i] = fmt.Sprintf("%v %v", input.Type, input.Name)
		}
	}
	sig := Signature(rawName, inputs.Types()...)

	return Event{
		Name:      name,
		RawName:   rawName,
		Anonymous: anonymous,
		Inputs:    inputs,
		str:       fmt.Sprintf("event %v(%v)", rawName, strings.Join(names, ", ")),
		Sig:       sig,
		ID:        crypto.Keccak256Hash([]byte(sig)),
	}
}

// String returns the string representation of the event.
func (e Event) String() string {
	return e.str
}

// Unpack decodes the non-indexed fields of a log's data.
func (e Event) Unpack(data []byte) ([]Value, error) {
	return e.Inputs.Unpack(data)
}

// nameArguments returns a copy of args in which unnamed arguments are named
// prefix<i>.
func nameArguments(args Arguments, prefix string) Arguments {
	named := make(Arguments, len(args))
	for i, arg := range args {
		if arg.Name == "" {
			arg.Name = fmt.Sprintf("%s%d", prefix, i)
		}
		named[i] = arg
	}
	return named
}
