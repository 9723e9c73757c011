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

package abi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/ethereum/go-abi/common"
)

// The ABI holds information about a contract's context and available
// invocable methods. It will allow you to type check function calls and
// packs data accordingly.
// ABI 包含有关合约上下文和可调用方法的信息。
type ABI struct {
	Constructor Method
	Methods     map[string]Method
	Events      map[string]Event
	Errors      map[string]Error

	// Additional "special" functions introduced in solidity v0.6.0.
	// Each contract can only define one fallback and receive function.
	// Solidity v0.6.0 中引入的附加“特殊”函数。
	Fallback Method // Note it's also used to represent legacy fallback before v0.6.0
	Receive  Method
}

// JSON returns a parsed ABI interface and error if it failed.
// JSON 返回解析后的 ABI 接口，如果失败则返回错误。
func JSON(reader io.Reader) (ABI, error) {
	dec := json.NewDecoder(reader)

	var abi ABI
	if err := dec.Decode(&abi); err != nil {
		return ABI{}, err
	}
	return abi, nil
}

// Pack the given method name to conform the ABI. Method call's data
// will consist of method_id, args0, arg1, ... argN. The empty name packs
// the constructor arguments, which carry no method id.
// Pack 将给定的方法名称打包以符合 ABI。空名称表示构造函数参数，不带方法 ID。
func (abi ABI) Pack(name string, values ...Value) ([]byte, error) {
	if name == "" {
		return abi.Constructor.Inputs.Pack(values...)
	}
	method, exist := abi.Methods[name]
	if !exist {
		return nil, fmt.Errorf("method '%s' not found", name)
	}
	arguments, err := method.Inputs.Pack(values...)
	if err != nil {
		return nil, err
	}
	return append(method.ID.Bytes(), arguments...), nil
}

func (abi ABI) getArguments(name string) (Arguments, error) {
	// since there can't be naming collisions with contracts and events,
	// we need to decide whether we're calling a method, event or an error
	// 需要决定我们是在调用方法、事件还是错误
	var args Arguments
	if method, ok := abi.Methods[name]; ok {
		args = method.Outputs
	}
	if event, ok := abi.Events[name]; ok {
		args = event.Inputs
	}
	if err, ok := abi.Errors[name]; ok {
		args = err.Inputs
	}
	if args == nil {
		return nil, fmt.Errorf("abi: could not locate named method, event or error: %s", name)
	}
	return args, nil
}

// Unpack decodes the outputs of a method, or the non-indexed fields of an
// event or error, from data.
// Unpack 根据 ABI 解包输出。
func (abi ABI) Unpack(name string, data []byte) ([]Value, error) {
	args, err := abi.getArguments(name)
	if err != nil {
		return nil, err
	}
	return args.Unpack(data)
}

// UnpackIntoMap unpacks the named outputs into v.
// UnpackIntoMap 将输出解包到提供的映射中。
func (abi ABI) UnpackIntoMap(v map[string]Value, name string, data []byte) error {
	args, err := abi.getArguments(name)
	if err != nil {
		return err
	}
	return args.UnpackIntoMap(v, data)
}

// UnmarshalJSON implements json.Unmarshaler interface.
// UnmarshalJSON 实现 json.Unmarshaler 接口。
func (abi *ABI) UnmarshalJSON(data []byte) error {
	var fields []struct {
		Type    string
		Name    string
		Inputs  []Argument
		Outputs []Argument

		// Status indicator which can be: "pure", "view",
		// "nonpayable" or "payable".
		StateMutability string

		// Deprecated Status indicators, but removed in v0.6.0.
		Constant bool // True if function is either pure or view
		Payable  bool // True if function is payable

		// Event relevant indicator represents the event is
		// declared as anonymous.
		Anonymous bool
	}
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	abi.Methods = make(map[string]Method)
	abi.Events = make(map[string]Event)
	abi.Errors = make(map[string]Error)
	for _, field := range fields {
		switch field.Type {
		case "constructor":
			abi.Constructor = NewMethod("", "", Constructor, field.StateMutability, field.Constant, field.Payable, field.Inputs, nil)
		case "function":
			name := ResolveNameConflict(field.Name, func(s string) bool { _, ok := abi.Methods[s]; return ok })
			abi.Methods[name] = NewMethod(name, field.Name, Function, field.StateMutability, field.Constant, field.Payable, field.Inputs, field.Outputs)
		case "fallback":
			if abi.HasFallback() {
				return errors.New("only single fallback is allowed")
			}
			abi.Fallback = NewMethod("", "", Fallback, field.StateMutability, field.Constant, field.Payable, nil, nil)
		case "receive":
			if abi.HasReceive() {
				return errors.New("only single receive is allowed")
			}
			if field.StateMutability != "payable" {
				return errors.New("the statemutability of receive can only be payable")
			}
			abi.Receive = NewMethod("", "", Receive, field.StateMutability, field.Constant, field.Payable, nil, nil)
		case "event":
			name := ResolveNameConflict(field.Name, func(s string) bool { _, ok := abi.Events[s]; return ok })
			abi.Events[name] = NewEvent(name, field.Name, field.Anonymous, field.Inputs)
		case "error":
			// Errors cannot be overloaded or overridden but are inherited,
			// no need to resolve the name conflict here.
			// 错误不能被重载或覆盖，但可以被继承，此处无需解析名称冲突。
			abi.Errors[field.Name] = NewError(field.Name, field.Inputs)
		default:
			return fmt.Errorf("abi: could not recognize type %v of field %v", field.Type, field.Name)
		}
	}
	return nil
}

// MethodById looks up a method by the 4-byte id.
// MethodById 通过 4 字节 ID 查找方法。
func (abi *ABI) MethodById(sigdata []byte) (*Method, error) {
	if len(sigdata) < 4 {
		return nil, fmt.Errorf("data too short (%d bytes) for abi method lookup", len(sigdata))
	}
	var id Selector
	copy(id[:], sigdata)
	for _, method := range abi.Methods {
		if method.ID == id {
			return &method, nil
		}
	}
	return nil, fmt.Errorf("no method with id: %s", id)
}

// EventByID looks an event up by its topic hash.
// EventByID 通过主题哈希查找事件。
func (abi *ABI) EventByID(topic common.Hash) (*Event, error) {
	for _, event := range abi.Events {
		if event.ID == topic {
			return &event, nil
		}
	}
	return nil, fmt.Errorf("no event with id: %s", topic.Hex())
}

// ErrorByID looks up an error by the 4-byte id.
// ErrorByID 通过 4 字节 ID 查找错误。
func (abi *ABI) ErrorByID(sigdata [4]byte) (*Error, error) {
	for _, errABI := range abi.Errors {
		if errABI.ID == Selector(sigdata) {
			return &errABI, nil
		}
	}
	return nil, fmt.Errorf("no error with id: %#x", sigdata[:])
}

// HasFallback returns an indicator whether a fallback function is included.
func (abi *ABI) HasFallback() bool {
	return abi.Fallback.Type == Fallback
}

// HasReceive returns an indicator whether a receive function is included.
func (abi *ABI) HasReceive() bool {
	return abi.Receive.Type == Receive
}

var (
	// revertSelector is a special function selector for revert reason unpacking.
	revertSelector = SelectorFromSignature("Error(string)")

	// panicSelector is a special function selector for panic reason unpacking.
	panicSelector = SelectorFromSignature("Panic(uint256)")

	errRevertData = errors.New("abi: invalid data for unpacking revert reason")
)

// panicReasons map is for readable panic codes
// see this linkage for the details
// https://docs.soliditylang.org/en/v0.8.21/control-structures.html#panic-via-assert-and-error-via-require
// the reason string list is copied from ether.js
// https://github.com/ethers-io/ethers.js/blob/fa3a883ff7c88611ce766f58bdd4b8ac90814470/src.ts/abi/interface.ts#L207-L218
var panicReasons = map[uint64]string{
	0x00: "generic panic",
	0x01: "assert(false)",
	0x11: "arithmetic underflow or overflow",
	0x12: "division or modulo by zero",
	0x21: "enum overflow",
	0x22: "invalid encoded storage byte array accessed",
	0x31: "out-of-bounds array access; popping on an empty array",
	0x32: "out-of-bounds access of an array or bytesN",
	0x41: "out of memory",
	0x51: "uninitialized function",
}

// UnpackRevert resolves the abi-encoded revert reason. According to the solidity
// docs https://solidity.readthedocs.io/en/latest/control-structures.html#revert,
// the provided revert reason is abi-encoded as if it were a call to function
// `Error(string)` or `Panic(uint256)`.
// UnpackRevert 解析 ABI 编码的 revert 原因。
func UnpackRevert(data []byte) (string, error) {
	if len(data) < 4 {
		return "", errRevertData
	}
	var sel Selector
	copy(sel[:], data)
	switch sel {
	case revertSelector:
		unpacked, err := Decode(data[4:], TypeString)
		if err != nil {
			return "", err
		}
		return unpacked[0].(String).String(), nil
	case panicSelector:
		unpacked, err := Decode(data[4:], MustNewType("uint256"))
		if err != nil {
			return "", err
		}
		code := unpacked[0].(Uint)
		if c, ok := code.Uint64(); ok {
			if reason, ok := panicReasons[c]; ok {
				return reason, nil
			}
		}
		return fmt.Sprintf("unknown panic code: %#x", code.Big()), nil
	default:
		return "", errRevertData
	}
}
